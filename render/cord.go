package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/balthazar/cord"
	"github.com/lixenwraith/balthazar/engine"
	"github.com/lixenwraith/balthazar/parameter"
	"github.com/lixenwraith/balthazar/physics"
	"github.com/lixenwraith/balthazar/system"
	"github.com/lixenwraith/balthazar/vmath"
)

// CordRenderer draws the smoothed cord from anchor to backpack
type CordRenderer struct {
	engine.SystemBase
}

func NewCordRenderer(world *engine.World) *CordRenderer {
	return &CordRenderer{SystemBase: engine.NewSystemBase(world)}
}

func (c *CordRenderer) IsVisible() bool {
	t := c.Resource.Toggles
	return t == nil || t.CordSystems
}

func (c *CordRenderer) Render(ctx RenderContext, buf *Buffer) {
	r := c.Resource
	if r.Cord == nil {
		return
	}
	playerPos, ok := system.PlayerPosition(c.World, r)
	if !ok {
		return
	}

	var backend physics.Backend
	if r.Cord.Chain != nil {
		backend = r.Cord.Chain.Backend
	}
	points := r.Cord.Curve.Sample(cord.ControlPoints(r.Cord.State, r.Cord.Registry, backend, playerPos))

	base := CordColor
	if r.Cord.State.IsRetracting {
		base = RetractColor
	}
	fg := TrueColor(lit(r, base))

	var attrs tcell.AttrMask
	for _, q := range vmath.Quads(points, parameter.CordWidth) {
		if q.Width*ctx.Zoom >= 1.5 {
			attrs = tcell.AttrBold
		} else {
			attrs = 0
		}
		a, b := q.Endpoints()
		x1, y1 := ctx.Project(a)
		x2, y2 := ctx.Project(b)
		glyph := CordGlyph(x2-x1, y2-y1)
		vmath.Traverse(x1, y1, x2, y2, func(x, y int) bool {
			if !ctx.Visible(x, y) {
				return true
			}
			switch buf.Get(x, y).Rune {
			case parameter.PoleGlyph, parameter.AttachmentGlyph:
				return true
			}
			buf.Set(x, y, glyph, fg, attrs)
			return true
		})
	}
}

// CordGlyph picks a line rune for a screen-space direction, rows growing downward
func CordGlyph(dx, dy float64) rune {
	if dx == 0 && dy == 0 {
		return parameter.CordGlyphHorizontal
	}
	// Fold to [0, π) with up as positive
	a := math.Atan2(-dy, dx)
	if a < 0 {
		a += math.Pi
	}
	if a >= math.Pi {
		a -= math.Pi
	}
	switch {
	case a < math.Pi/8 || a >= 7*math.Pi/8:
		return parameter.CordGlyphHorizontal
	case a < 3*math.Pi/8:
		return parameter.CordGlyphRising
	case a < 5*math.Pi/8:
		return parameter.CordGlyphVertical
	default:
		return parameter.CordGlyphFalling
	}
}
