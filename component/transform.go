package component

import "github.com/lixenwraith/balthazar/vmath"

// TransformComponent is an entity's world position, mirrored from physics each tick for bodies
type TransformComponent struct {
	Pos vmath.Vec2
}
