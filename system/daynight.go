package system

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/balthazar/component"
	"github.com/lixenwraith/balthazar/engine"
	"github.com/lixenwraith/balthazar/parameter"
	"github.com/lixenwraith/balthazar/status"
)

// Keyframes at midnight, dawn, noon and dusk
var (
	ambientKeys = [4]colorful.Color{
		{R: 0.1, G: 0.1, B: 0.2},
		{R: 1.0, G: 0.6, B: 0.4},
		{R: 1.0, G: 1.0, B: 0.95},
		{R: 1.0, G: 0.5, B: 0.3},
	}
	skyKeys = [4]colorful.Color{
		{R: 0.05, G: 0.05, B: 0.15},
		{R: 0.4, G: 0.3, B: 0.5},
		{R: 0.53, G: 0.81, B: 0.92},
		{R: 0.8, G: 0.4, B: 0.3},
	}
)

// Brightness of daylight for a cycle fraction, peaking at noon and floored at MinBrightness
func Brightness(fraction float64) float64 {
	return math.Max((1-math.Cos(2*math.Pi*fraction))/2, parameter.MinBrightness)
}

// IsDay reports whether the fraction lies strictly between dawn and dusk
func IsDay(fraction float64) bool {
	return fraction > 0.25 && fraction < 0.75
}

// AmbientColor interpolates the light tint in quarter-day steps
func AmbientColor(fraction float64) colorful.Color {
	return keyframe(ambientKeys, fraction)
}

// SkyColor interpolates the background color in quarter-day steps
func SkyColor(fraction float64) colorful.Color {
	return keyframe(skyKeys, fraction)
}

func keyframe(keys [4]colorful.Color, fraction float64) colorful.Color {
	fraction -= math.Floor(fraction)
	q := fraction * 4
	i := int(q)
	if i > 3 {
		i = 3
	}
	return keys[i].BlendRgb(keys[(i+1)%4], q-float64(i))
}

// Tint multiplies a base color by ambient light and brightness
func Tint(base, ambient colorful.Color, brightness float64) colorful.Color {
	return colorful.Color{
		R: base.R * ambient.R * brightness,
		G: base.G * ambient.G * brightness,
		B: base.B * ambient.B * brightness,
	}
}

// DayNightSystem advances the lighting cycle and retints affected entities
type DayNightSystem struct {
	engine.SystemBase

	statTime *status.AtomicFloat
	statDay  *status.AtomicString
}

// NewDayNightSystem creates the day/night cycle system
func NewDayNightSystem(world *engine.World) *DayNightSystem {
	s := &DayNightSystem{SystemBase: engine.NewSystemBase(world)}
	if reg := s.Resource.Status; reg != nil {
		s.statTime = reg.Floats.Get("daynight.time")
		s.statDay = reg.Strings.Get("daynight.phase")
	}
	return s
}

func (s *DayNightSystem) Name() string {
	return "daynight"
}

func (s *DayNightSystem) Priority() int {
	return parameter.PriorityDayNight
}

func (s *DayNightSystem) Update() {
	d := s.Resource.DayNight
	if d == nil || s.Resource.Time == nil {
		return
	}

	d.TimeOfDay += s.Resource.Time.DT() * d.Speed
	if d.Duration > 0 {
		d.TimeOfDay = math.Mod(d.TimeOfDay, d.Duration)
		if d.TimeOfDay < 0 {
			d.TimeOfDay += d.Duration
		}
	}
	Refresh(d)

	for _, e := range s.World.Tints.GetAllEntities() {
		s.World.Tints.Update(e, func(t *component.TintComponent) {
			t.Current = Tint(t.Base, d.Ambient, d.Brightness)
		})
	}

	if s.statTime != nil {
		s.statTime.Set(d.TimeOfDay)
		if d.IsDay {
			s.statDay.Store("day")
		} else {
			s.statDay.Store("night")
		}
	}
}

// Refresh recomputes derived lighting fields from TimeOfDay
func Refresh(d *engine.DayNightResource) {
	f := d.Fraction()
	d.Brightness = Brightness(f)
	d.Ambient = AmbientColor(f)
	d.Sky = SkyColor(f)
	d.IsDay = IsDay(f)
}
