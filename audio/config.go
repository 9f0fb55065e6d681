package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/balthazar/core"
	"github.com/lixenwraith/balthazar/parameter"
)

// Environment overrides
const (
	EnvAudioEnabled = "BALTHAZAR_AUDIO_ENABLED"
	EnvMasterVolume = "BALTHAZAR_MASTER_VOLUME"
	EnvSFXVolumes   = "BALTHAZAR_SFX_VOLUMES"
)

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	EffectVolumes [core.SoundTypeCount]float64
	SampleRate    int
}

// DefaultAudioConfig returns enabled audio at moderate volume
func DefaultAudioConfig() *AudioConfig {
	cfg := &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   parameter.AudioSampleRate,
	}
	for i := range cfg.EffectVolumes {
		cfg.EffectVolumes[i] = 1.0
	}
	return cfg
}

// LoadAudioConfig reads overrides from environment variables
// BALTHAZAR_MASTER_VOLUME is 0-100; BALTHAZAR_SFX_VOLUMES is a JSON object keyed by cue name
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampUnit(float64(val) / 100.0)
		}
	}

	if effectVols := os.Getenv(EnvSFXVolumes); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
				if v, ok := volumes[st.String()]; ok {
					cfg.EffectVolumes[st] = clampUnit(v)
				}
			}
		}
	}

	return cfg
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
