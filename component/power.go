package component

// PoleComponent marks a power pole the cord can attach to
type PoleComponent struct {
	Label string
}

// PowerSourceComponent emits charge per second to an attached player
type PowerSourceComponent struct {
	MaxOutput float64
}

// SolarPanelComponent charges its battery scaled by daylight brightness
type SolarPanelComponent struct {
	MaxOutput float64
}

// BatteryComponent stores charge in [0, Max]
type BatteryComponent struct {
	Charge float64
	Max    float64
}

// Add adjusts charge by delta, clamped to [0, Max], and returns the applied amount
func (b *BatteryComponent) Add(delta float64) float64 {
	prev := b.Charge
	b.Charge += delta
	if b.Charge > b.Max {
		b.Charge = b.Max
	}
	if b.Charge < 0 {
		b.Charge = 0
	}
	return b.Charge - prev
}

// Empty reports whether no charge remains
func (b BatteryComponent) Empty() bool {
	return b.Charge <= 0
}

// Ratio is charge as a fraction of capacity
func (b BatteryComponent) Ratio() float64 {
	if b.Max <= 0 {
		return 0
	}
	return b.Charge / b.Max
}
