package parameter

// Isometric ground
const (
	TileSize     = 32.0
	GroundOffset = 0.0
	GroundRadius = 12 // Tiles drawn in each direction from the view center
)

// Day/night cycle
const (
	DayDuration   = 120.0 // Seconds per full cycle
	DayStartTime  = 60.0  // Noon
	DaySpeed      = 1.0
	MinBrightness = 0.2
)

// Camera
const (
	CameraZoomStep = 1.1
	CameraMinZoom  = 0.1
	CameraMaxZoom  = 10.0
	// CameraDefaultZoom is terminal cells per world unit horizontally
	CameraDefaultZoom = 0.25
	// CellAspect compensates for terminal cells being about twice as tall as wide
	CellAspect = 0.5
)
