package parameter

// Player movement and power budget
const (
	PlayerSpeed         = 300.0
	PlayerRadius        = 20.0
	PlayerLinearDamping = 1.5
	// PlayerDriveForce caps the steering force so a taut cord holds the player
	PlayerDriveForce = 2000.0

	// PlayerFacingThreshold is the minimum input magnitude that updates facing
	PlayerFacingThreshold = 0.1

	BatteryCapacity  = 100.0
	BatteryDrainRate = 10.0 // Charge per second while moving
	SolarMaxOutput   = 5.0  // Charge per second at full brightness

	PoleMaxOutput = 20.0
	PoleRadius    = 8.0
)
