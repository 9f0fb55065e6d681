package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityInput     = 0
	PriorityMovement  = 10
	PriorityPhysics   = 20 // Steps the space and mirrors body positions
	PriorityCord      = 30 // Length control then segment or trail reconciliation
	PriorityAttach    = 40 // After segment updates so the toggle sees settled state
	PriorityPower     = 50
	PriorityDayNight  = 60
	PriorityCamera    = 70
	PriorityAudio     = 80
	PriorityTelemetry = 1000 // After all others
)

// Render Priorities (lower draws first)
const (
	RenderPrioritySky    = 0
	RenderPriorityGround = 10
	RenderPriorityPoles  = 20
	RenderPriorityCord   = 30
	RenderPriorityPlayer = 40
	RenderPriorityHUD    = 100
)
