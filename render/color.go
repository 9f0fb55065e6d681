package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Base colors before day/night tinting
var (
	GroundColor  = colorful.Color{R: 0.35, G: 0.45, B: 0.3}
	CordColor    = colorful.Color{R: 0.95, G: 0.55, B: 0.15}
	RetractColor = colorful.Color{R: 1.0, G: 0.85, B: 0.35}
	LabelColor   = colorful.Color{R: 0.85, G: 0.85, B: 0.9}
	AttachColor  = colorful.Color{R: 0.3, G: 0.9, B: 1.0}

	HUDFg      = colorful.Color{R: 0.9, G: 0.9, B: 0.9}
	HUDBg      = colorful.Color{R: 0.08, G: 0.08, B: 0.1}
	HUDOn      = colorful.Color{R: 0.4, G: 0.9, B: 0.4}
	HUDOff     = colorful.Color{R: 0.9, G: 0.35, B: 0.35}
	HUDWarn    = colorful.Color{R: 1.0, G: 0.75, B: 0.2}
	HUDMessage = colorful.Color{R: 1.0, G: 1.0, B: 0.6}
)

// TrueColor converts a colorful color to a tcell RGB color, clamping out-of-gamut values
func TrueColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
