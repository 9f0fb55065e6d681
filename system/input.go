package system

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/balthazar/engine"
	"github.com/lixenwraith/balthazar/input"
	"github.com/lixenwraith/balthazar/logger"
	"github.com/lixenwraith/balthazar/parameter"
)

// InputSystem resolves buffered key state and remote commands into the tick's InputResource
// Toggle requests are applied here so later systems see the new gates in the same tick
type InputSystem struct {
	engine.SystemBase

	state    *input.State
	commands <-chan string
	now      func() time.Time
	log      *logrus.Entry
}

// NewInputSystem creates the input resolver; state and commands may be nil
func NewInputSystem(world *engine.World, state *input.State, commands <-chan string) *InputSystem {
	return &InputSystem{
		SystemBase: engine.NewSystemBase(world),
		state:      state,
		commands:   commands,
		now:        time.Now,
		log:        logger.System("input"),
	}
}

func (s *InputSystem) Name() string {
	return "input"
}

func (s *InputSystem) Priority() int {
	return parameter.PriorityInput
}

func (s *InputSystem) Update() {
	in := s.Resource.Input
	if in == nil {
		return
	}
	in.Reset()

	if s.state != nil {
		snap := s.state.Snapshot(s.now())
		in.Move = snap.Move
		in.Retract = snap.Retract
		for _, a := range snap.Edges {
			switch a {
			case input.ActionToggleAttach:
				in.ToggleAttach = true
			case input.ActionZoomIn:
				in.Zoom++
			case input.ActionZoomOut:
				in.Zoom--
			default:
				if i, ok := a.ToggleIndex(); ok && i < len(engine.ToggleNames) {
					in.Toggles = append(in.Toggles, engine.ToggleNames[i])
				}
			}
		}
	}

	s.drainCommands(in)
	s.applyToggles(in.Toggles)
}

func (s *InputSystem) drainCommands(in *engine.InputResource) {
	if s.commands == nil {
		return
	}
	for {
		select {
		case name, ok := <-s.commands:
			if !ok {
				s.commands = nil
				return
			}
			in.Toggles = append(in.Toggles, name)
		default:
			return
		}
	}
}

func (s *InputSystem) applyToggles(names []string) {
	toggles := s.Resource.Toggles
	if toggles == nil {
		return
	}
	for _, name := range names {
		value, ok := toggles.Flip(name)
		if !ok {
			s.log.WithField("toggle", name).Warn("unknown toggle")
			continue
		}
		s.log.WithFields(logrus.Fields{"toggle": name, "enabled": value}).Info("system toggled")
		if s.Resource.Message != nil && s.Resource.Time != nil {
			state := "off"
			if value {
				state = "on"
			}
			s.Resource.Message.Show(name+": "+state, s.Resource.Time.GameTime, parameter.MessageDuration)
		}
	}
}
