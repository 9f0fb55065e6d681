package vmath

import "math"

// BezierTangentFactor is the fraction of a pair's distance used to place control points
const BezierTangentFactor = 0.25

// CatmullRom evaluates the uniform Catmull-Rom spline through p1..p2 at t in [0, 1]
func CatmullRom(p0, p1, p2, p3 Vec2, t float64) Vec2 {
	t2 := t * t
	t3 := t2 * t

	eval := func(a, b, c, d float64) float64 {
		return 0.5 * (2*b +
			(-a+c)*t +
			(2*a-5*b+4*c-d)*t2 +
			(-a+3*b-3*c+d)*t3)
	}
	return Vec2{
		X: eval(p0.X, p1.X, p2.X, p3.X),
		Y: eval(p0.Y, p1.Y, p2.Y, p3.Y),
	}
}

// SampleCatmullRom produces a dense polyline through control points
// Endpoints are duplicated to form boundary windows; the final control point is appended
// Fewer than two points yield nil, exactly two are returned unchanged
func SampleCatmullRom(points []Vec2, samplesPerSegment int) []Vec2 {
	if len(points) < 2 {
		return nil
	}
	if len(points) == 2 || samplesPerSegment < 1 {
		out := make([]Vec2, len(points))
		copy(out, points)
		return out
	}

	out := make([]Vec2, 0, (len(points)-1)*samplesPerSegment+1)
	for i := 0; i < len(points)-1; i++ {
		p0 := points[i]
		if i > 0 {
			p0 = points[i-1]
		}
		p1 := points[i]
		p2 := points[i+1]
		p3 := points[i+1]
		if i+2 < len(points) {
			p3 = points[i+2]
		}

		for j := 0; j < samplesPerSegment; j++ {
			t := float64(j) / float64(samplesPerSegment)
			out = append(out, CatmullRom(p0, p1, p2, p3, t))
		}
	}
	out = append(out, points[len(points)-1])
	return out
}

// CubicBezier evaluates a cubic Bezier curve at t in [0, 1]
func CubicBezier(p0, c1, c2, p1 Vec2, t float64) Vec2 {
	u := 1 - t
	b0 := u * u * u
	b1 := 3 * u * u * t
	b2 := 3 * u * t * t
	b3 := t * t * t
	return Vec2{
		X: b0*p0.X + b1*c1.X + b2*c2.X + b3*p1.X,
		Y: b0*p0.Y + b1*c1.Y + b2*c2.Y + b3*p1.Y,
	}
}

// tangentAt returns the normalized tangent at points[i] from its neighbors
func tangentAt(points []Vec2, i int) Vec2 {
	prev := points[max(i-1, 0)]
	next := points[min(i+1, len(points)-1)]
	return V2Normalize(V2Sub(next, prev))
}

// SampleBezier renders each consecutive waypoint pair as a cubic Bezier
// Control points sit along each endpoint's tangent at a quarter of the pair distance
func SampleBezier(points []Vec2, samplesPerSegment int) []Vec2 {
	if len(points) < 2 {
		return nil
	}
	if samplesPerSegment < 1 {
		samplesPerSegment = 1
	}

	out := make([]Vec2, 0, (len(points)-1)*samplesPerSegment+1)
	for i := 0; i < len(points)-1; i++ {
		p0, p1 := points[i], points[i+1]
		offset := V2Dist(p0, p1) * BezierTangentFactor
		c1 := V2Add(p0, V2Scale(tangentAt(points, i), offset))
		c2 := V2Sub(p1, V2Scale(tangentAt(points, i+1), offset))

		for j := 0; j < samplesPerSegment; j++ {
			t := float64(j) / float64(samplesPerSegment)
			out = append(out, CubicBezier(p0, c1, c2, p1, t))
		}
	}
	out = append(out, points[len(points)-1])
	return out
}

// Quad is an oriented rectangle spanning two consecutive polyline points
type Quad struct {
	Center Vec2
	Length float64 // Extent along the direction of travel
	Width  float64 // Cord thickness
	Angle  float64 // Radians, atan2 of the segment direction
}

// Quads converts a polyline into oriented rectangles between consecutive points
func Quads(points []Vec2, width float64) []Quad {
	if len(points) < 2 {
		return nil
	}
	quads := make([]Quad, 0, len(points)-1)
	for i := 0; i < len(points)-1; i++ {
		d := V2Sub(points[i+1], points[i])
		quads = append(quads, Quad{
			Center: V2Mid(points[i], points[i+1]),
			Length: V2Mag(d),
			Width:  width,
			Angle:  V2Angle(d),
		})
	}
	return quads
}

// Endpoints returns the two ends of the quad's center line
func (q Quad) Endpoints() (Vec2, Vec2) {
	half := V2Scale(Vec2{math.Cos(q.Angle), math.Sin(q.Angle)}, q.Length/2)
	return V2Sub(q.Center, half), V2Add(q.Center, half)
}
