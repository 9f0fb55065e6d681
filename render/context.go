package render

import (
	"math"
	"time"

	"github.com/lixenwraith/balthazar/engine"
	"github.com/lixenwraith/balthazar/parameter"
	"github.com/lixenwraith/balthazar/vmath"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	GameTime time.Duration
	IsPaused bool

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int

	// Camera center in world coordinates and cells per world unit horizontally
	Center vmath.Vec2
	Zoom   float64
}

// NewRenderContext snapshots time and camera state; caller holds the world update lock
func NewRenderContext(r engine.Resource, width, height int, paused bool) RenderContext {
	ctx := RenderContext{
		IsPaused:     paused,
		ScreenWidth:  width,
		ScreenHeight: height,
		Zoom:         parameter.CameraDefaultZoom,
	}
	if r.Time != nil {
		ctx.GameTime = r.Time.GameTime
	}
	if r.Camera != nil {
		ctx.Center = r.Camera.Center
		if r.Camera.Zoom > 0 {
			ctx.Zoom = r.Camera.Zoom
		}
	}
	return ctx
}

// Project maps a world point to fractional screen cells
// World Y points up, screen rows grow downward
func (c RenderContext) Project(p vmath.Vec2) (float64, float64) {
	fx := float64(c.ScreenWidth)/2 + (p.X-c.Center.X)*c.Zoom
	fy := float64(c.ScreenHeight)/2 - (p.Y-c.Center.Y)*c.Zoom*parameter.CellAspect
	return fx, fy
}

// ToScreen maps a world point to the cell containing it
func (c RenderContext) ToScreen(p vmath.Vec2) (int, int) {
	fx, fy := c.Project(p)
	return int(math.Floor(fx)), int(math.Floor(fy))
}

// ToWorld maps the center of screen cell (x, y) back to world coordinates
func (c RenderContext) ToWorld(x, y int) vmath.Vec2 {
	return vmath.Vec2{
		X: c.Center.X + (float64(x)+0.5-float64(c.ScreenWidth)/2)/c.Zoom,
		Y: c.Center.Y - (float64(y)+0.5-float64(c.ScreenHeight)/2)/(c.Zoom*parameter.CellAspect),
	}
}

// Visible reports whether a cell lies on screen
func (c RenderContext) Visible(x, y int) bool {
	return x >= 0 && x < c.ScreenWidth && y >= 0 && y < c.ScreenHeight
}
