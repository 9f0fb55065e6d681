package audio

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"

	"github.com/lixenwraith/balthazar/core"
	"github.com/lixenwraith/balthazar/logger"
	"github.com/lixenwraith/balthazar/parameter"
)

// Player mixes cue streamers into the system speaker
// Without a usable output device it runs silently and Play reports false
type Player struct {
	config *AudioConfig
	mixer  *beep.Mixer

	// init is swapped by tests to avoid touching the sound device
	init func(beep.SampleRate, int) error

	running    atomic.Bool
	muted      atomic.Bool
	silentMode atomic.Bool

	mu sync.Mutex
}

// NewPlayer creates a cue player; a nil config uses defaults
func NewPlayer(cfg *AudioConfig) *Player {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	p := &Player{
		config: cfg,
		mixer:  &beep.Mixer{},
		init:   speaker.Init,
	}
	p.muted.Store(!cfg.Enabled)
	return p
}

// Start opens the speaker; device failure degrades to silent mode rather than an error
func (p *Player) Start() error {
	if !p.running.CompareAndSwap(false, true) {
		return errors.New("audio player already running")
	}
	if !p.config.Enabled {
		p.silentMode.Store(true)
		return nil
	}

	rate := beep.SampleRate(p.config.SampleRate)
	if err := p.init(rate, rate.N(parameter.AudioBufferWindow)); err != nil {
		logger.System("audio").WithError(err).Warn("speaker unavailable, audio disabled")
		p.silentMode.Store(true)
		return nil
	}
	speaker.Play(p.mixer)
	return nil
}

// Name identifies the player in service logs
func (p *Player) Name() string {
	return "audio"
}

// Stop silences all cues and releases the speaker; repeated calls are no-ops
func (p *Player) Stop() error {
	if !p.running.CompareAndSwap(true, false) {
		return nil
	}
	if p.silentMode.Load() {
		return nil
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	return nil
}

// Play mixes in the cue for st
func (p *Player) Play(st core.SoundType) bool {
	if !p.IsEnabled() {
		return false
	}
	s := GetSoundEffect(st, p.config)
	if s == nil {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	return true
}

// ToggleMute flips mute and returns true if sound is now on
func (p *Player) ToggleMute() bool {
	muted := !p.muted.Load()
	p.muted.Store(muted)
	return !muted
}

// IsRunning reports whether Start has been called
func (p *Player) IsRunning() bool {
	return p.running.Load()
}

// IsEnabled returns true when running, unmuted and attached to a device
func (p *Player) IsEnabled() bool {
	return p.running.Load() && !p.muted.Load() && !p.silentMode.Load()
}
