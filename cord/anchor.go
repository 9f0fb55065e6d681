package cord

import (
	"github.com/lixenwraith/balthazar/core"
	"github.com/lixenwraith/balthazar/physics"
	"github.com/lixenwraith/balthazar/vmath"
)

// Anchor is a fixed pole the cord can attach to
type Anchor struct {
	ID  core.Entity
	Pos vmath.Vec2
}

// AttachmentPoint is the lazily created sub-point of an anchor that joints bind to
type AttachmentPoint struct {
	ID     core.Entity
	Parent core.Entity
	Pos    vmath.Vec2
	Body   physics.BodyHandle
}

// PointSpawner creates the entity and body backing a new attachment point
// A zero entity signals failure
type PointSpawner func(parent Anchor) (core.Entity, physics.BodyHandle)

// Registry tracks anchors and their attachment points for one session
// Entries are never removed
type Registry struct {
	anchors []Anchor
	points  []AttachmentPoint
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers an anchor; duplicate ids are ignored
func (r *Registry) Add(id core.Entity, pos vmath.Vec2) bool {
	if !id.Valid() {
		return false
	}
	for _, a := range r.anchors {
		if a.ID == id {
			return false
		}
	}
	r.anchors = append(r.anchors, Anchor{ID: id, Pos: pos})
	return true
}

// Anchors returns a copy of all registered anchors in registration order
func (r *Registry) Anchors() []Anchor {
	out := make([]Anchor, len(r.anchors))
	copy(out, r.anchors)
	return out
}

// Points returns a copy of all attachment points created so far
func (r *Registry) Points() []AttachmentPoint {
	out := make([]AttachmentPoint, len(r.points))
	copy(out, r.points)
	return out
}

// InRange returns anchors within radius of p, inclusive, in registration order
func (r *Registry) InRange(p vmath.Vec2, radius float64) []Anchor {
	var out []Anchor
	for _, a := range r.anchors {
		if vmath.V2Dist(p, a.Pos) <= radius {
			out = append(out, a)
		}
	}
	return out
}

// Nearest returns the closest anchor within radius
// Ties keep the first anchor found
func (r *Registry) Nearest(p vmath.Vec2, radius float64) (Anchor, bool) {
	var (
		best  Anchor
		found bool
		bestD float64
	)
	for _, a := range r.InRange(p, radius) {
		d := vmath.V2Dist(p, a.Pos)
		if !found || d < bestD {
			best, bestD, found = a, d, true
		}
	}
	return best, found
}

// EnsurePoint returns the attachment point for an anchor, creating it on first use
// With a nil spawner the anchor itself serves as the point
func (r *Registry) EnsurePoint(a Anchor, spawn PointSpawner) (AttachmentPoint, bool) {
	for _, pt := range r.points {
		if pt.Parent == a.ID {
			return pt, true
		}
	}

	pt := AttachmentPoint{ID: a.ID, Parent: a.ID, Pos: a.Pos}
	if spawn != nil {
		id, body := spawn(a)
		if !id.Valid() {
			return AttachmentPoint{}, false
		}
		pt.ID, pt.Body = id, body
	}
	r.points = append(r.points, pt)
	return pt, true
}

// Point resolves an attachment point by its own id
func (r *Registry) Point(id core.Entity) (AttachmentPoint, bool) {
	for _, pt := range r.points {
		if pt.ID == id {
			return pt, true
		}
	}
	return AttachmentPoint{}, false
}

// Position resolves an attachment point or an anchor to its world position
func (r *Registry) Position(id core.Entity) (vmath.Vec2, bool) {
	if pt, ok := r.Point(id); ok {
		return pt.Pos, true
	}
	for _, a := range r.anchors {
		if a.ID == id {
			return a.Pos, true
		}
	}
	return vmath.Vec2{}, false
}

// Parent maps an attachment point to its anchor; anchors map to themselves
func (r *Registry) Parent(id core.Entity) (core.Entity, bool) {
	if pt, ok := r.Point(id); ok {
		return pt.Parent, true
	}
	for _, a := range r.anchors {
		if a.ID == id {
			return a.ID, true
		}
	}
	return core.None, false
}
