package physics

import "github.com/lixenwraith/balthazar/vmath"

// BodyHandle identifies a body owned by a Backend; zero is never issued
type BodyHandle uint32

// JointHandle identifies a joint owned by a Backend; zero is never issued
type JointHandle uint32

// Backend is the body/joint factory consumed by the cord subsystem
// Callers hold handles only and must despawn explicitly; lookups on stale handles fail softly
type Backend interface {
	SpawnBody(pos vmath.Vec2, radius, damping float64) BodyHandle
	SpawnStaticBody(pos vmath.Vec2, radius float64) BodyHandle
	DespawnBody(h BodyHandle)

	// SpawnDistanceJoint keeps the anchor distance between a and b within [min, max]
	SpawnDistanceJoint(a, b BodyHandle, min, max float64) JointHandle
	// SpawnFixedJoint pins a to localAnchor in b's frame and locks relative rotation
	SpawnFixedJoint(a, b BodyHandle, localAnchor vmath.Vec2) JointHandle
	DespawnJoint(h JointHandle)

	Position(h BodyHandle) (vmath.Vec2, bool)
}
