package system

import (
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/balthazar/cord"
	"github.com/lixenwraith/balthazar/core"
	"github.com/lixenwraith/balthazar/engine"
	"github.com/lixenwraith/balthazar/logger"
	"github.com/lixenwraith/balthazar/parameter"
)

// AttachSystem handles the edge-triggered attach/detach command
type AttachSystem struct {
	engine.SystemBase
	log *logrus.Entry
}

// NewAttachSystem creates the attachment toggle system
func NewAttachSystem(world *engine.World) *AttachSystem {
	return &AttachSystem{
		SystemBase: engine.NewSystemBase(world),
		log:        logger.System("attach"),
	}
}

func (s *AttachSystem) Name() string {
	return "attach"
}

func (s *AttachSystem) Priority() int {
	return parameter.PriorityAttach
}

func (s *AttachSystem) Update() {
	r := s.Resource
	if r.Input == nil || !r.Input.ToggleAttach || r.Cord == nil {
		return
	}
	if r.Toggles != nil && !r.Toggles.CordSystems {
		return
	}
	playerPos, ok := PlayerPosition(s.World, r)
	if !ok {
		return
	}

	st := r.Cord.State
	prev := st.Attached
	outcome := r.Cord.Attacher.Toggle(st, playerPos)

	var (
		text  string
		sound core.SoundType = -1
	)
	switch outcome {
	case cord.OutcomeAttached:
		label := s.poleLabel(st.Attached)
		text = "Attached to " + label
		sound = core.SoundAttach
		s.log.WithFields(logrus.Fields{"point": st.Attached, "pole": label}).Info("cord attached")
	case cord.OutcomeDetached:
		text = "Detached"
		sound = core.SoundDetach
		s.log.WithField("point", prev).Info("cord detached")
	case cord.OutcomeNoAnchor:
		text = "No anchor in range"
		sound = core.SoundNoAnchor
		s.log.WithField("range", st.Config.AttachmentRange).Info("no anchor in range")
	case cord.OutcomeRefused:
		text = "Cannot attach"
		s.log.Warn("attach refused")
	default:
		return
	}

	if r.Message != nil && r.Time != nil {
		r.Message.Show(text, r.Time.GameTime, parameter.MessageDuration)
	}
	if sound >= 0 && r.Audio != nil {
		r.Audio.Queue(sound)
	}
}

func (s *AttachSystem) poleLabel(point core.Entity) string {
	parent, ok := s.Resource.Cord.Registry.Parent(point)
	if !ok {
		return "pole"
	}
	if pole, ok := s.World.Poles.GetComponent(parent); ok && pole.Label != "" {
		return "pole " + pole.Label
	}
	return "pole"
}
