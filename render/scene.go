package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/balthazar/component"
	"github.com/lixenwraith/balthazar/engine"
	"github.com/lixenwraith/balthazar/parameter"
	"github.com/lixenwraith/balthazar/system"
)

// RegisterDefaults wires the standard scene renderers; call after the game resources exist
func RegisterDefaults(o *Orchestrator, world *engine.World) {
	o.Register(NewSkyRenderer(world), parameter.RenderPrioritySky)
	o.Register(NewGroundRenderer(world), parameter.RenderPriorityGround)
	o.Register(NewPoleRenderer(world), parameter.RenderPriorityPoles)
	o.Register(NewCordRenderer(world), parameter.RenderPriorityCord)
	o.Register(NewPlayerRenderer(world), parameter.RenderPriorityPlayer)
	o.Register(NewHUDRenderer(world), parameter.RenderPriorityHUD)
}

// lit applies the current ambient light to base; without a day/night resource base is returned
func lit(r engine.Resource, base colorful.Color) colorful.Color {
	if r.DayNight == nil {
		return base
	}
	return system.Tint(base, r.DayNight.Ambient, r.DayNight.Brightness)
}

// SkyRenderer paints the background with the sky color
type SkyRenderer struct {
	engine.SystemBase
}

func NewSkyRenderer(world *engine.World) *SkyRenderer {
	return &SkyRenderer{SystemBase: engine.NewSystemBase(world)}
}

func (s *SkyRenderer) Render(ctx RenderContext, buf *Buffer) {
	if s.Resource.DayNight == nil {
		return
	}
	buf.Fill(TrueColor(s.Resource.DayNight.Sky))
}

// GroundRenderer dots the isometric tile centers around the camera
type GroundRenderer struct {
	engine.SystemBase
}

func NewGroundRenderer(world *engine.World) *GroundRenderer {
	return &GroundRenderer{SystemBase: engine.NewSystemBase(world)}
}

func (g *GroundRenderer) Render(ctx RenderContext, buf *Buffer) {
	r := g.Resource
	if r.Cord == nil || r.Cord.Grid.TileSize <= 0 {
		return
	}
	grid := r.Cord.Grid
	fg := TrueColor(lit(r, GroundColor))
	cx, cy := grid.Cell(ctx.Center)
	for gx := cx - parameter.GroundRadius; gx <= cx+parameter.GroundRadius; gx++ {
		for gy := cy - parameter.GroundRadius; gy <= cy+parameter.GroundRadius; gy++ {
			x, y := ctx.ToScreen(grid.ToWorld(gx, gy))
			buf.Set(x, y, parameter.GroundGlyph, fg, 0)
		}
	}
}

// PoleRenderer draws poles with labels and marks attachment points
type PoleRenderer struct {
	engine.SystemBase
}

func NewPoleRenderer(world *engine.World) *PoleRenderer {
	return &PoleRenderer{SystemBase: engine.NewSystemBase(world)}
}

func (p *PoleRenderer) Render(ctx RenderContext, buf *Buffer) {
	w := p.World
	r := p.Resource
	label := TrueColor(LabelColor)

	for _, e := range w.Poles.GetAllEntities() {
		t, ok := w.Transforms.GetComponent(e)
		if !ok {
			continue
		}
		pole, _ := w.Poles.GetComponent(e)
		base := colorful.Color{R: 1, G: 1, B: 1}
		if tint, ok := w.Tints.GetComponent(e); ok {
			base = tint.Current
		}
		x, y := ctx.ToScreen(t.Pos)
		buf.Set(x, y, parameter.PoleGlyph, TrueColor(base), tcell.AttrBold)
		if pole.Label != "" {
			col := x + 1
			for _, ch := range pole.Label {
				buf.Set(col, y-1, ch, label, 0)
				col++
			}
		}
	}

	if r.Cord == nil || !r.Cord.State.IsAttached() {
		return
	}
	attached := r.Cord.State.Attached
	if !w.AttachmentPoints.HasEntity(attached) {
		return
	}
	if t, ok := w.Transforms.GetComponent(attached); ok {
		x, y := ctx.ToScreen(t.Pos)
		buf.Set(x, y, parameter.AttachmentGlyph, TrueColor(AttachColor), tcell.AttrBold)
	}
}

// PlayerRenderer draws the player glyph for its facing
type PlayerRenderer struct {
	engine.SystemBase
}

func NewPlayerRenderer(world *engine.World) *PlayerRenderer {
	return &PlayerRenderer{SystemBase: engine.NewSystemBase(world)}
}

func (p *PlayerRenderer) Render(ctx RenderContext, buf *Buffer) {
	w := p.World
	r := p.Resource
	if r.Player == nil {
		return
	}
	pc, ok := w.Players.GetComponent(r.Player.Entity)
	if !ok {
		return
	}
	t, ok := w.Transforms.GetComponent(r.Player.Entity)
	if !ok {
		return
	}
	base := colorful.Color{R: 1, G: 1, B: 1}
	if tint, ok := w.Tints.GetComponent(r.Player.Entity); ok {
		base = tint.Current
	}
	x, y := ctx.ToScreen(t.Pos)
	buf.Set(x, y, PlayerGlyph(pc.Facing), TrueColor(base), tcell.AttrBold)
}

// PlayerGlyph returns the sprite rune for a facing
func PlayerGlyph(d component.Direction) rune {
	if int(d) < len(parameter.PlayerGlyphs) {
		return parameter.PlayerGlyphs[d]
	}
	return parameter.PlayerGlyphs[component.FacingDown]
}
