package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/balthazar/core"
	"github.com/lixenwraith/balthazar/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-length wave generator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = -1.0
			if o.phase < 0.5 {
				val = 1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with attack/release shaping over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; zero or less is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// note is one shaped tone
func note(freq float64, d, attack, release time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, attack, release, rate)
}

// CreateAttachSound is a rising two-note chime
func CreateAttachSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.AttachNoteDuration
	return beep.Seq(
		note(659.25, d, parameter.AttachAttack, parameter.AttachRelease, WaveSine, rate),
		note(987.77, d, parameter.AttachAttack, parameter.AttachRelease, WaveSine, rate),
	)
}

// CreateDetachSound is the attach chime reversed
func CreateDetachSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.AttachNoteDuration
	return beep.Seq(
		note(987.77, d, parameter.AttachAttack, parameter.AttachRelease, WaveSine, rate),
		note(493.88, d, parameter.AttachAttack, parameter.AttachRelease, WaveSine, rate),
	)
}

// CreateNoAnchorSound is a short low buzz
func CreateNoAnchorSound(rate beep.SampleRate) beep.Streamer {
	return note(110, parameter.NoAnchorDuration, parameter.NoAnchorAttack, parameter.NoAnchorRelease, WaveSaw, rate)
}

// CreateBatteryEmptySound is a falling square tone over noise
func CreateBatteryEmptySound(rate beep.SampleRate) beep.Streamer {
	d := parameter.BatteryEmptyDuration
	return beep.Mix(
		newVolume(note(220, d, parameter.BatteryEmptyAttack, parameter.BatteryEmptyRelease, WaveSquare, rate), 0.6),
		newVolume(note(0, d/2, parameter.BatteryEmptyAttack, d/4, WaveNoise, rate), 0.2),
	)
}

// GetSoundEffect returns the streamer for a cue scaled by the configured volumes
func GetSoundEffect(st core.SoundType, cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	var s beep.Streamer
	switch st {
	case core.SoundAttach:
		s = CreateAttachSound(rate)
	case core.SoundDetach:
		s = CreateDetachSound(rate)
	case core.SoundNoAnchor:
		s = CreateNoAnchorSound(rate)
	case core.SoundBatteryEmpty:
		s = CreateBatteryEmptySound(rate)
	default:
		return nil
	}
	return newVolume(s, cfg.EffectVolumes[st]*cfg.MasterVolume)
}
