package system

import (
	"github.com/lixenwraith/balthazar/component"
	"github.com/lixenwraith/balthazar/engine"
	"github.com/lixenwraith/balthazar/parameter"
)

// PhysicsSystem steps the physics space and mirrors the player body into its transform
type PhysicsSystem struct {
	engine.SystemBase
}

// NewPhysicsSystem creates the physics step system
func NewPhysicsSystem(world *engine.World) *PhysicsSystem {
	return &PhysicsSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *PhysicsSystem) Name() string {
	return "physics"
}

func (s *PhysicsSystem) Priority() int {
	return parameter.PriorityPhysics
}

func (s *PhysicsSystem) Update() {
	r := s.Resource
	if r.Physics == nil || r.Time == nil {
		return
	}
	r.Physics.Space.Step(r.Time.DT())

	if r.Player == nil {
		return
	}
	pc, ok := s.World.Players.GetComponent(r.Player.Entity)
	if !ok {
		return
	}
	if pos, ok := r.Physics.Space.Position(pc.Body); ok {
		s.World.Transforms.SetComponent(r.Player.Entity, component.TransformComponent{Pos: pos})
	}
}
