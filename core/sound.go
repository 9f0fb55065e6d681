package core

// SoundType represents different sound cues
type SoundType int

const (
	SoundAttach       SoundType = iota // Cord latched onto a pole
	SoundDetach                        // Cord released
	SoundNoAnchor                      // Attach pressed with nothing in range
	SoundBatteryEmpty                  // Battery reached zero
	SoundTypeCount
)

// String returns the cue name used in logs and telemetry
func (s SoundType) String() string {
	switch s {
	case SoundAttach:
		return "attach"
	case SoundDetach:
		return "detach"
	case SoundNoAnchor:
		return "no_anchor"
	case SoundBatteryEmpty:
		return "battery_empty"
	default:
		return "unknown"
	}
}
