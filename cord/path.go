package cord

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/lixenwraith/balthazar/physics"
	"github.com/lixenwraith/balthazar/vmath"
)

// ControlPoints assembles the render sequence: anchor, segments or trail, player backpack
// The returned slice is freshly allocated
func ControlPoints(s *State, reg *Registry, backend physics.Backend, playerPos vmath.Vec2) []vmath.Vec2 {
	var pts []vmath.Vec2

	if s.IsAttached() && reg != nil {
		if p, ok := reg.Position(s.Attached); ok {
			pts = append(pts, p)
		}
	}

	switch s.Mode {
	case ModeChain:
		if backend != nil {
			for _, h := range s.Segments {
				if p, ok := backend.Position(h); ok {
					pts = append(pts, p)
				}
			}
		}
	case ModeTrail:
		// Trail head duplicates the anchor tile
		trail := s.Trail
		if len(pts) > 0 && len(trail) > 0 && vmath.V2Near(pts[0], trail[0], s.Config.TrailEpsilon) {
			trail = trail[1:]
		}
		pts = append(pts, trail...)
	}

	return append(pts, vmath.V2Add(playerPos, s.Config.BackpackOffset))
}

// Curve selects the smoothing family used to render the cord
type Curve uint8

const (
	CurveCatmullRom Curve = iota
	CurveBezier
)

// Samples per control-point span for each family
const (
	CatmullRomSamples = 8
	BezierSamples     = 64
)

func (c Curve) String() string {
	if c == CurveBezier {
		return "bezier"
	}
	return "catmull"
}

// ParseCurve maps a curve name to a Curve
func ParseCurve(s string) (Curve, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "catmull", "catmull-rom", "catmullrom":
		return CurveCatmullRom, nil
	case "bezier":
		return CurveBezier, nil
	}
	return CurveCatmullRom, errors.Errorf("unknown curve %q", s)
}

// Sample densifies control points with the selected family
func (c Curve) Sample(points []vmath.Vec2) []vmath.Vec2 {
	if c == CurveBezier {
		return vmath.SampleBezier(points, BezierSamples)
	}
	return vmath.SampleCatmullRom(points, CatmullRomSamples)
}
