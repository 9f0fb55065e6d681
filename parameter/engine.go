package parameter

import "time"

// Game Loop & Engine Timing
const (
	// GameUpdateInterval is the simulation tick
	GameUpdateInterval = 16 * time.Millisecond

	// FrameUpdateInterval is the fallback redraw interval when no tick arrives
	FrameUpdateInterval = 33 * time.Millisecond

	// PhysicsIterations is the constraint solver iteration count
	PhysicsIterations = 20

	// MessageDuration is how long HUD notices stay visible
	MessageDuration = 2 * time.Second

	// HoldWindow is how long a key counts as held after its last press or repeat
	HoldWindow = 350 * time.Millisecond
)
