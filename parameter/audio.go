package parameter

import "time"

// Audio
const (
	AudioSampleRate   = 44100
	AudioBufferWindow = 100 * time.Millisecond

	AttachNoteDuration = 70 * time.Millisecond
	AttachAttack       = 5 * time.Millisecond
	AttachRelease      = 40 * time.Millisecond

	NoAnchorDuration = 180 * time.Millisecond
	NoAnchorAttack   = 5 * time.Millisecond
	NoAnchorRelease  = 60 * time.Millisecond

	BatteryEmptyDuration = 400 * time.Millisecond
	BatteryEmptyAttack   = 10 * time.Millisecond
	BatteryEmptyRelease  = 250 * time.Millisecond
)
