package system

import (
	"github.com/lixenwraith/balthazar/component"
	"github.com/lixenwraith/balthazar/engine"
	"github.com/lixenwraith/balthazar/parameter"
	"github.com/lixenwraith/balthazar/status"
)

// PowerSystem charges the player's battery from the attached pole and from sunlight
type PowerSystem struct {
	engine.SystemBase

	statBattery *status.AtomicFloat
	statSource  *status.AtomicString
}

// NewPowerSystem creates the power transfer system
func NewPowerSystem(world *engine.World) *PowerSystem {
	s := &PowerSystem{SystemBase: engine.NewSystemBase(world)}
	if reg := s.Resource.Status; reg != nil {
		s.statBattery = reg.Floats.Get("player.battery")
		s.statSource = reg.Strings.Get("player.power_source")
	}
	return s
}

func (s *PowerSystem) Name() string {
	return "power"
}

func (s *PowerSystem) Priority() int {
	return parameter.PriorityPower
}

func (s *PowerSystem) Update() {
	r := s.Resource
	if r.Player == nil || r.Time == nil {
		return
	}
	player := r.Player.Entity
	dt := r.Time.DT()

	poleOutput := s.attachedOutput()
	solarOutput := 0.0
	if panel, ok := s.World.SolarPanels.GetComponent(player); ok {
		brightness := 1.0
		if r.DayNight != nil {
			brightness = r.DayNight.Brightness
		}
		solarOutput = panel.MaxOutput * brightness
	}

	var charge float64
	s.World.Batteries.Update(player, func(b *component.BatteryComponent) {
		b.Add((poleOutput + solarOutput) * dt)
		charge = b.Charge
	})

	if s.statBattery != nil {
		s.statBattery.Set(charge)
		switch {
		case poleOutput > 0:
			s.statSource.Store("pole")
		case solarOutput > 0:
			s.statSource.Store("solar")
		default:
			s.statSource.Store("none")
		}
	}
}

// attachedOutput resolves the power source through the attachment point's parent pole
func (s *PowerSystem) attachedOutput() float64 {
	c := s.Resource.Cord
	if c == nil || !c.State.IsAttached() {
		return 0
	}
	parent, ok := c.Registry.Parent(c.State.Attached)
	if !ok {
		return 0
	}
	src, ok := s.World.PowerSources.GetComponent(parent)
	if !ok {
		return 0
	}
	return src.MaxOutput
}
