package physics

import (
	"math"
	"sync"

	"github.com/jakecoffman/cp"
	"github.com/pkg/errors"

	"github.com/lixenwraith/balthazar/vmath"
)

var (
	// ErrUnknownBody is returned when a handle does not resolve to a live body
	ErrUnknownBody = errors.New("physics: unknown body handle")
	// ErrNotDriven is returned when Drive targets a body spawned without a control body
	ErrNotDriven = errors.New("physics: body has no drive")
)

// drive is a kinematic control body pulling its character through a bias-free pivot
// The pivot's force cap lets joints on the character win over steering
type drive struct {
	control *cp.Body
	pivot   *cp.Constraint
}

type bodyEntry struct {
	body  *cp.Body
	shape *cp.Shape
	drive *drive
}

type jointEntry struct {
	a, b        BodyHandle
	constraints []*cp.Constraint
}

// Space is a chipmunk-backed Backend with handle arenas over bodies and joints
// Top-down: gravity is zero, motion is driven by velocities and joints
type Space struct {
	mu    sync.Mutex
	space *cp.Space

	nextBody  BodyHandle
	nextJoint JointHandle
	bodies    map[BodyHandle]bodyEntry
	joints    map[JointHandle]jointEntry
}

// NewSpace creates an empty space with the given solver iteration count
func NewSpace(iterations uint) *Space {
	s := cp.NewSpace()
	s.SetGravity(cp.Vector{})
	if iterations > 0 {
		s.Iterations = iterations
	}
	return &Space{
		space:     s,
		nextBody:  1,
		nextJoint: 1,
		bodies:    make(map[BodyHandle]bodyEntry),
		joints:    make(map[JointHandle]jointEntry),
	}
}

func toCP(v vmath.Vec2) cp.Vector   { return cp.Vector{X: v.X, Y: v.Y} }
func fromCP(v cp.Vector) vmath.Vec2 { return vmath.Vec2{X: v.X, Y: v.Y} }

// dampedVelocity returns a velocity integrator applying linear damping v *= 1/(1+dt*c)
func dampedVelocity(linear float64) cp.BodyVelocityFunc {
	return func(body *cp.Body, gravity cp.Vector, damping, dt float64) {
		cp.BodyUpdateVelocity(body, gravity, damping/(1+dt*linear), dt)
	}
}

// addBody registers body with a circle shape; sensor shapes report contact but never collide
func (s *Space) addBody(body *cp.Body, pos vmath.Vec2, radius float64, sensor bool) BodyHandle {
	body.SetPosition(toCP(pos))
	s.space.AddBody(body)
	shape := s.space.AddShape(cp.NewCircle(body, radius, cp.Vector{}))
	shape.SetFriction(0)
	shape.SetSensor(sensor)

	h := s.nextBody
	s.nextBody++
	s.bodies[h] = bodyEntry{body: body, shape: shape}
	return h
}

// SpawnBody creates a dynamic non-colliding circle body with linear damping
func (s *Space) SpawnBody(pos vmath.Vec2, radius, damping float64) BodyHandle {
	s.mu.Lock()
	defer s.mu.Unlock()

	const mass = 1.0
	body := cp.NewBody(mass, cp.MomentForCircle(mass, 0, radius, cp.Vector{}))
	body.SetVelocityUpdateFunc(dampedVelocity(damping))
	return s.addBody(body, pos, radius, true)
}

// SpawnCharacter creates a non-rotating dynamic body steered through Drive
// maxForce caps the steering force; a non-positive value leaves it unbounded
func (s *Space) SpawnCharacter(pos vmath.Vec2, radius, damping, maxForce float64) BodyHandle {
	s.mu.Lock()
	defer s.mu.Unlock()

	body := cp.NewBody(1.0, math.Inf(1))
	body.SetVelocityUpdateFunc(dampedVelocity(damping))
	h := s.addBody(body, pos, radius, false)

	control := s.space.AddBody(cp.NewKinematicBody())
	control.SetPosition(toCP(pos))
	pivot := cp.NewPivotJoint2(control, body, cp.Vector{}, cp.Vector{})
	pivot.SetMaxBias(0)
	if maxForce > 0 {
		pivot.SetMaxForce(maxForce)
	}
	s.space.AddConstraint(pivot)

	entry := s.bodies[h]
	entry.drive = &drive{control: control, pivot: pivot}
	s.bodies[h] = entry
	return h
}

// SpawnStaticBody creates an immovable non-colliding circle body
func (s *Space) SpawnStaticBody(pos vmath.Vec2, radius float64) BodyHandle {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.addBody(cp.NewStaticBody(), pos, radius, true)
}

// DespawnBody removes a body, its shape and every joint still referencing it
func (s *Space) DespawnBody(h BodyHandle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.bodies[h]
	if !ok {
		return
	}
	for jh, j := range s.joints {
		if j.a == h || j.b == h {
			s.removeJointLocked(jh)
		}
	}
	if d := entry.drive; d != nil {
		s.space.RemoveConstraint(d.pivot)
		s.space.RemoveBody(d.control)
	}
	s.space.RemoveShape(entry.shape)
	s.space.RemoveBody(entry.body)
	delete(s.bodies, h)
}

func (s *Space) addJoint(a, b BodyHandle, constraints ...*cp.Constraint) JointHandle {
	for _, c := range constraints {
		c.SetCollideBodies(false)
		s.space.AddConstraint(c)
	}
	h := s.nextJoint
	s.nextJoint++
	s.joints[h] = jointEntry{a: a, b: b, constraints: constraints}
	return h
}

// SpawnDistanceJoint links body centers with a slide joint limited to [min, max]
// Returns zero if either body is unknown
func (s *Space) SpawnDistanceJoint(a, b BodyHandle, min, max float64) JointHandle {
	s.mu.Lock()
	defer s.mu.Unlock()

	ea, okA := s.bodies[a]
	eb, okB := s.bodies[b]
	if !okA || !okB {
		return 0
	}
	return s.addJoint(a, b, cp.NewSlideJoint(ea.body, eb.body, cp.Vector{}, cp.Vector{}, min, max))
}

// SpawnFixedJoint pins a's center to localAnchor on b and gears their rotation together
// Returns zero if either body is unknown
func (s *Space) SpawnFixedJoint(a, b BodyHandle, localAnchor vmath.Vec2) JointHandle {
	s.mu.Lock()
	defer s.mu.Unlock()

	ea, okA := s.bodies[a]
	eb, okB := s.bodies[b]
	if !okA || !okB {
		return 0
	}
	pivot := cp.NewPivotJoint2(ea.body, eb.body, cp.Vector{}, toCP(localAnchor))
	gear := cp.NewGearJoint(ea.body, eb.body, 0, 1)
	return s.addJoint(a, b, pivot, gear)
}

// DespawnJoint removes a joint; unknown handles are ignored
func (s *Space) DespawnJoint(h JointHandle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeJointLocked(h)
}

func (s *Space) removeJointLocked(h JointHandle) {
	entry, ok := s.joints[h]
	if !ok {
		return
	}
	for _, c := range entry.constraints {
		s.space.RemoveConstraint(c)
	}
	delete(s.joints, h)
}

// Position returns the body's world position
func (s *Space) Position(h BodyHandle) (vmath.Vec2, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.bodies[h]
	if !ok {
		return vmath.Vec2{}, false
	}
	return fromCP(entry.body.Position()), true
}

// Drive sets the target velocity of a character's control body
// The solver accelerates the character toward v within the drive force, so joints keep acting on it
func (s *Space) Drive(h BodyHandle, v vmath.Vec2) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.bodies[h]
	if !ok {
		return errors.Wrapf(ErrUnknownBody, "drive %d", h)
	}
	if entry.drive == nil {
		return errors.Wrapf(ErrNotDriven, "drive %d", h)
	}
	// Keep the control body on the character so the pivot anchors coincide
	entry.drive.control.SetPosition(entry.body.Position())
	entry.drive.control.SetVelocity(v.X, v.Y)
	return nil
}

// SetVelocity overrides a body's linear velocity
// Joint corrections on a body overwritten every step are lost; steer characters with Drive
func (s *Space) SetVelocity(h BodyHandle, v vmath.Vec2) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.bodies[h]
	if !ok {
		return errors.Wrapf(ErrUnknownBody, "set velocity on %d", h)
	}
	entry.body.SetVelocity(v.X, v.Y)
	return nil
}

// Velocity returns the body's linear velocity
func (s *Space) Velocity(h BodyHandle) (vmath.Vec2, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.bodies[h]
	if !ok {
		return vmath.Vec2{}, false
	}
	return fromCP(entry.body.Velocity()), true
}

// Step advances the simulation by dt seconds
func (s *Space) Step(dt float64) {
	if dt <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.space.Step(dt)
}

// BodyCount returns the number of live bodies
func (s *Space) BodyCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bodies)
}

// JointCount returns the number of live joints
func (s *Space) JointCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.joints)
}
