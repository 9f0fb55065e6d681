package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/balthazar/engine"
)

const batteryBarWidth = 10

// HUDRenderer draws the status line, the toggle panel and the transient message
type HUDRenderer struct {
	engine.SystemBase
}

func NewHUDRenderer(world *engine.World) *HUDRenderer {
	return &HUDRenderer{SystemBase: engine.NewSystemBase(world)}
}

func (h *HUDRenderer) Render(ctx RenderContext, buf *Buffer) {
	width, height := buf.Size()
	if width == 0 || height == 0 {
		return
	}
	bar := tcell.StyleDefault.Foreground(TrueColor(HUDFg)).Background(TrueColor(HUDBg))

	// Status line
	for x := 0; x < width; x++ {
		buf.SetStyle(x, 0, ' ', bar)
	}
	line := h.statusLine()
	buf.SetString(0, 0, runewidth.Truncate(line, width, "…"), bar)

	if ctx.IsPaused {
		label := " PAUSED "
		w := runewidth.StringWidth(label)
		buf.SetString(width-w, 0, label, bar.Foreground(TrueColor(HUDWarn)).Bold(true))
	}

	h.drawToggles(buf, width, height, bar)

	if h.Resource.Message != nil {
		if text, ok := h.Resource.Message.Active(ctx.GameTime); ok && height > 1 {
			text = runewidth.Truncate(text, width, "…")
			x := (width - runewidth.StringWidth(text)) / 2
			buf.SetString(x, height-1, text, bar.Foreground(TrueColor(HUDMessage)).Bold(true))
		}
	}
}

// statusLine formats cord, battery and clock state
func (h *HUDRenderer) statusLine() string {
	r := h.Resource
	line := " "
	if r.Cord != nil {
		st := r.Cord.State
		line += fmt.Sprintf("%s len %.0f/%.0f", st.Mode, st.CurrentLength, st.Config.MaxLength)
		if r.Cord.Chain != nil {
			line += fmt.Sprintf(" seg %d", len(st.Segments))
		} else {
			line += fmt.Sprintf(" trail %d", len(st.Trail))
		}
		if st.IsRetracting {
			line += " ↺"
		}
		line += " │ " + h.anchorLabel()
	}
	if r.Player != nil {
		if b, ok := h.World.Batteries.GetComponent(r.Player.Entity); ok {
			line += " │ bat " + BatteryBar(b.Ratio(), batteryBarWidth) + fmt.Sprintf(" %3.0f%%", b.Ratio()*100)
		}
	}
	if r.DayNight != nil {
		phase := "night"
		if r.DayNight.IsDay {
			phase = "day"
		}
		line += fmt.Sprintf(" │ %s %s", Clock(r.DayNight.Fraction()), phase)
	}
	return line
}

// anchorLabel names the attached pole or reports the detached state
func (h *HUDRenderer) anchorLabel() string {
	r := h.Resource
	st := r.Cord.State
	if !st.IsAttached() {
		return "detached"
	}
	if pole, ok := r.Cord.Registry.Parent(st.Attached); ok {
		if pc, ok := h.World.Poles.GetComponent(pole); ok && pc.Label != "" {
			return "pole " + pc.Label
		}
	}
	return "attached"
}

// drawToggles renders the numbered toggle panel right-aligned below the status line
func (h *HUDRenderer) drawToggles(buf *Buffer, width, height int, bar tcell.Style) {
	t := h.Resource.Toggles
	if t == nil || height < len(engine.ToggleNames)+2 {
		return
	}
	on := bar.Foreground(TrueColor(HUDOn))
	off := bar.Foreground(TrueColor(HUDOff))

	panel := 0
	for _, name := range engine.ToggleNames {
		panel = max(panel, runewidth.StringWidth(name)+8)
	}
	x0 := width - panel
	if x0 < 0 {
		return
	}
	for i, name := range engine.ToggleNames {
		y := i + 1
		for x := x0; x < width; x++ {
			buf.SetStyle(x, y, ' ', bar)
		}
		n := buf.SetString(x0+1, y, fmt.Sprintf("%d %s ", i+1, name), bar)
		value, _ := t.Get(name)
		if value {
			buf.SetString(x0+1+n, y, "on", on)
		} else {
			buf.SetString(x0+1+n, y, "off", off)
		}
	}
}

// BatteryBar renders ratio as a fixed-width block gauge
func BatteryBar(ratio float64, width int) string {
	ratio = math.Max(0, math.Min(1, ratio))
	filled := int(math.Round(ratio * float64(width)))
	out := make([]rune, width)
	for i := range out {
		if i < filled {
			out[i] = '█'
		} else {
			out[i] = '░'
		}
	}
	return string(out)
}

// Clock formats a cycle fraction as a 24-hour time, midnight at zero
func Clock(fraction float64) string {
	minutes := int(fraction*24*60) % (24 * 60)
	if minutes < 0 {
		minutes += 24 * 60
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

