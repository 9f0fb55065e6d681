package cord

import (
	"github.com/lixenwraith/balthazar/physics"
	"github.com/lixenwraith/balthazar/vmath"
)

// Chain manages the physics bodies and joints of a chain-mode cord
type Chain struct {
	Backend physics.Backend
	Player  physics.BodyHandle
}

// NewChain binds a backend and the player body
func NewChain(backend physics.Backend, player physics.BodyHandle) *Chain {
	return &Chain{Backend: backend, Player: player}
}

// Build spawns the initial segments on the line from origin toward the player
// The segment count covers CurrentLength so the physical chain can reach the pull threshold
// Existing state bodies are left untouched; Build refuses a non-empty chain
func (c *Chain) Build(s *State, origin vmath.Vec2) bool {
	if len(s.Segments) > 0 {
		return false
	}
	playerPos, ok := c.Backend.Position(c.Player)
	if !ok {
		return false
	}
	cfg := &s.Config
	dir := vmath.V2Normalize(vmath.V2Sub(playerPos, origin))
	radius := cfg.SegmentSize / 2

	// Enough bodies to span the current length, never fewer than the configured start
	n := max(cfg.InitialSegments, s.TargetSegments())
	for i := 0; i < n; i++ {
		pos := vmath.V2Add(origin, vmath.V2Scale(dir, float64(i+1)*cfg.SegmentLength))
		s.Segments = append(s.Segments, c.Backend.SpawnBody(pos, radius, cfg.BuildDamping))
	}
	lo, hi := cfg.BuildJoint.Limits(cfg.SegmentLength)
	for i := 0; i+1 < len(s.Segments); i++ {
		s.Joints = append(s.Joints, c.Backend.SpawnDistanceJoint(s.Segments[i], s.Segments[i+1], lo, hi))
	}
	s.Joints = append(s.Joints, c.Backend.SpawnFixedJoint(s.Segments[len(s.Segments)-1], c.Player, cfg.BackpackOffset))
	return true
}

// AddSegment extends the chain by one body placed toward the player
func (c *Chain) AddSegment(s *State) bool {
	if len(s.Segments) == 0 || len(s.Joints) == 0 {
		return false
	}
	last := s.Segments[len(s.Segments)-1]
	lastPos, ok := c.Backend.Position(last)
	if !ok {
		return false
	}
	playerPos, ok := c.Backend.Position(c.Player)
	if !ok {
		return false
	}

	cfg := &s.Config
	// Coincident points give a zero direction and stack the new body on the last one
	dir := vmath.V2Normalize(vmath.V2Sub(playerPos, lastPos))
	pos := vmath.V2Add(lastPos, vmath.V2Scale(dir, cfg.SegmentLength))
	seg := c.Backend.SpawnBody(pos, cfg.SegmentSize/2, cfg.SegmentDamping)

	playerJoint := s.Joints[len(s.Joints)-1]
	c.Backend.DespawnJoint(playerJoint)
	s.Joints = s.Joints[:len(s.Joints)-1]

	lo, hi := cfg.SegmentJoint.Limits(cfg.SegmentLength)
	s.Joints = append(s.Joints,
		c.Backend.SpawnDistanceJoint(last, seg, lo, hi),
		c.Backend.SpawnFixedJoint(seg, c.Player, cfg.BackpackOffset),
	)
	s.Segments = append(s.Segments, seg)
	return true
}

// RemoveSegment drops the player-side body and rejoins the new last segment to the player
// Refuses at the two-segment floor
func (c *Chain) RemoveSegment(s *State) bool {
	if len(s.Segments) <= MinSegments || len(s.Joints) < 2 {
		return false
	}
	last := s.Segments[len(s.Segments)-1]
	s.Segments = s.Segments[:len(s.Segments)-1]

	for _, j := range s.Joints[len(s.Joints)-2:] {
		c.Backend.DespawnJoint(j)
	}
	s.Joints = s.Joints[:len(s.Joints)-2]
	c.Backend.DespawnBody(last)

	newLast := s.Segments[len(s.Segments)-1]
	s.Joints = append(s.Joints, c.Backend.SpawnFixedJoint(newLast, c.Player, s.Config.BackpackOffset))
	return true
}

// AttachAnchor joins the first segment to an attachment point body
func (c *Chain) AttachAnchor(s *State, pt AttachmentPoint) bool {
	if s.IsAttached() || len(s.Segments) == 0 || !pt.ID.Valid() {
		return false
	}
	lo, hi := s.Config.AnchorJoint.Limits(s.Config.SegmentLength)
	j := c.Backend.SpawnDistanceJoint(pt.Body, s.Segments[0], lo, hi)
	if j == 0 {
		return false
	}
	s.Joints = append([]physics.JointHandle{j}, s.Joints...)
	s.Attached = pt.ID
	return true
}

// DetachAnchor removes the anchor joint at the head of the joint list
func (c *Chain) DetachAnchor(s *State) bool {
	if !s.IsAttached() {
		return false
	}
	if len(s.Joints) > 0 {
		c.Backend.DespawnJoint(s.Joints[0])
		s.Joints = s.Joints[1:]
	}
	s.Attached = 0
	return true
}

// Positions returns live segment positions in chain order, skipping unresolved handles
func (c *Chain) Positions(s *State) []vmath.Vec2 {
	out := make([]vmath.Vec2, 0, len(s.Segments))
	for _, h := range s.Segments {
		if p, ok := c.Backend.Position(h); ok {
			out = append(out, p)
		}
	}
	return out
}

// Teardown despawns every joint and segment, leaving the state detached and empty
func (c *Chain) Teardown(s *State) {
	for _, j := range s.Joints {
		c.Backend.DespawnJoint(j)
	}
	for _, h := range s.Segments {
		c.Backend.DespawnBody(h)
	}
	s.Joints, s.Segments = nil, nil
	s.Attached = 0
}
