package cord

import (
	"math"

	"github.com/lixenwraith/balthazar/vmath"
)

// LengthInput carries one tick of controller input
type LengthInput struct {
	Retract   bool
	PlayerPos vmath.Vec2
	// AnchorPos is valid only when AnchorFound is set
	AnchorPos   vmath.Vec2
	AnchorFound bool
	DT          float64
}

// SegmentAdjuster grows or shrinks the physical chain by one segment
// Implementations return false when the request cannot be served this tick
type SegmentAdjuster interface {
	AddSegment(s *State) bool
	RemoveSegment(s *State) bool
}

// LengthChange summarizes what UpdateLength did
type LengthChange struct {
	Delta   float64
	Added   int
	Removed int
}

// Changed reports whether length or segment count moved
func (c LengthChange) Changed() bool {
	return c.Delta != 0 || c.Added != 0 || c.Removed != 0
}

// UpdateLength applies the extension/retraction control law for one tick
// A nil adjuster changes length only, as in trail mode
func UpdateLength(s *State, in LengthInput, adj SegmentAdjuster) LengthChange {
	var change LengthChange
	if !s.IsAttached() {
		return change
	}
	cfg := &s.Config
	if in.DT <= 0 {
		// Length holds still; the flag follows input as on a full tick
		if !in.Retract {
			s.IsRetracting = false
		} else if s.CurrentLength > cfg.MinLength {
			s.IsRetracting = true
		}
		return change
	}
	prev := s.CurrentLength

	if in.Retract {
		if s.CurrentLength <= cfg.MinLength {
			return change
		}
		s.IsRetracting = true
		s.CurrentLength = math.Max(s.CurrentLength-cfg.RetractionSpeed*in.DT, cfg.MinLength)
		change.Delta = s.CurrentLength - prev
		if adj != nil {
			floor := max(s.TargetSegments(), MinSegments)
			for len(s.Segments) > floor {
				if !adj.RemoveSegment(s) {
					break
				}
				change.Removed++
			}
		}
		return change
	}

	s.IsRetracting = false
	if !in.AnchorFound {
		return change
	}

	distance := vmath.V2Dist(in.PlayerPos, in.AnchorPos)
	if distance < s.CurrentLength*cfg.PullThreshold || s.CurrentLength >= cfg.MaxLength {
		return change
	}
	s.CurrentLength = math.Min(s.CurrentLength+cfg.ExtensionSpeed*in.DT, cfg.MaxLength)
	change.Delta = s.CurrentLength - prev
	if adj != nil {
		target := s.TargetSegments()
		for len(s.Segments) < target {
			if !adj.AddSegment(s) {
				break
			}
			change.Added++
		}
	}
	return change
}
