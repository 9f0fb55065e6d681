package system

import (
	"sync/atomic"

	"github.com/lixenwraith/balthazar/core"
	"github.com/lixenwraith/balthazar/engine"
	"github.com/lixenwraith/balthazar/parameter"
)

// AudioSystem flushes the tick's queued cues to the player, one play per cue type
type AudioSystem struct {
	engine.SystemBase

	statPlayed  *atomic.Int64
	statDropped *atomic.Int64
}

// NewAudioSystem creates the audio cue system
func NewAudioSystem(world *engine.World) *AudioSystem {
	s := &AudioSystem{SystemBase: engine.NewSystemBase(world)}
	if reg := s.Resource.Status; reg != nil {
		s.statPlayed = reg.Ints.Get("audio.played")
		s.statDropped = reg.Ints.Get("audio.dropped")
	}
	return s
}

func (s *AudioSystem) Name() string {
	return "audio"
}

func (s *AudioSystem) Priority() int {
	return parameter.PriorityAudio
}

func (s *AudioSystem) Update() {
	a := s.Resource.Audio
	if a == nil || len(a.Pending) == 0 {
		return
	}
	var seen [core.SoundTypeCount]bool
	for _, sound := range a.Pending {
		if sound < 0 || sound >= core.SoundTypeCount || seen[sound] {
			continue
		}
		seen[sound] = true
		played := a.Player != nil && a.Player.IsRunning() && a.Player.Play(sound)
		if s.statPlayed == nil {
			continue
		}
		if played {
			s.statPlayed.Add(1)
		} else {
			s.statDropped.Add(1)
		}
	}
	a.Pending = a.Pending[:0]
}
