package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/balthazar/cord"
	"github.com/lixenwraith/balthazar/parameter"
	"github.com/lixenwraith/balthazar/vmath"
)

// Environment overrides, applied after the YAML file
const (
	EnvMode      = "BALTHAZAR_MODE"
	EnvCurve     = "BALTHAZAR_CURVE"
	EnvDebugAddr = "BALTHAZAR_DEBUG_ADDR"
)

// PlayerConfig tunes the controlled character
type PlayerConfig struct {
	Start       vmath.Vec2 `yaml:"start"`
	Speed       float64    `yaml:"speed"`
	Radius      float64    `yaml:"radius"`
	Damping     float64    `yaml:"damping"`
	DriveForce  float64    `yaml:"drive_force"`
	Battery     float64    `yaml:"battery"`
	DrainRate   float64    `yaml:"drain_rate"`
	SolarOutput float64    `yaml:"solar_output"`
}

// PoleConfig places one power pole
type PoleConfig struct {
	Label     string  `yaml:"label"`
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	MaxOutput float64 `yaml:"max_output"`
}

// Position returns the pole location as a world vector
func (p PoleConfig) Position() vmath.Vec2 {
	return vmath.Vec2{X: p.X, Y: p.Y}
}

// DayNightConfig tunes the lighting cycle
type DayNightConfig struct {
	Duration float64 `yaml:"duration"`
	Start    float64 `yaml:"start"`
	Speed    float64 `yaml:"speed"`
}

// GridConfig is the isometric ground geometry
type GridConfig struct {
	TileSize     float64 `yaml:"tile_size"`
	GroundOffset float64 `yaml:"ground_offset"`
}

// DebugConfig controls the telemetry server
type DebugConfig struct {
	// Addr enables the websocket feed when non-empty, e.g. "127.0.0.1:8089"
	Addr string `yaml:"addr"`
}

// Config is the full runtime configuration
type Config struct {
	Mode  string `yaml:"mode"`
	Curve string `yaml:"curve"`

	Cord     cord.Config    `yaml:"cord"`
	Player   PlayerConfig   `yaml:"player"`
	Poles    []PoleConfig   `yaml:"poles"`
	DayNight DayNightConfig `yaml:"day_night"`
	Grid     GridConfig     `yaml:"grid"`
	Debug    DebugConfig    `yaml:"debug"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Mode:  cord.ModeChain.String(),
		Curve: cord.CurveCatmullRom.String(),
		Cord:  cord.DefaultConfig(),
		Player: PlayerConfig{
			Start:       vmath.Vec2{X: 40},
			Speed:       parameter.PlayerSpeed,
			Radius:      parameter.PlayerRadius,
			Damping:     parameter.PlayerLinearDamping,
			DriveForce:  parameter.PlayerDriveForce,
			Battery:     parameter.BatteryCapacity,
			DrainRate:   parameter.BatteryDrainRate,
			SolarOutput: parameter.SolarMaxOutput,
		},
		Poles: []PoleConfig{
			{Label: "A", X: 0, Y: 0, MaxOutput: parameter.PoleMaxOutput},
			{Label: "B", X: 320, Y: 160, MaxOutput: parameter.PoleMaxOutput},
			{Label: "C", X: -288, Y: 224, MaxOutput: parameter.PoleMaxOutput},
		},
		DayNight: DayNightConfig{
			Duration: parameter.DayDuration,
			Start:    parameter.DayStartTime,
			Speed:    parameter.DaySpeed,
		},
		Grid: GridConfig{
			TileSize:     parameter.TileSize,
			GroundOffset: parameter.GroundOffset,
		},
	}
}

// Load reads path as YAML layered over Default; an empty path yields the defaults
// Keys absent from the file keep their default values; a poles list replaces the default set
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}

// LoadEnvFile loads KEY=VALUE pairs from path into the process environment
// A missing file is not an error; existing variables win
func LoadEnvFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "stat env file %s", path)
	}
	return errors.Wrapf(godotenv.Load(path), "load env file %s", path)
}

// ApplyEnv overlays environment overrides onto cfg
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvMode)); v != "" {
		c.Mode = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvCurve)); v != "" {
		c.Curve = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvDebugAddr)); v != "" {
		c.Debug.Addr = v
	}
}

// CordMode parses Mode
func (c Config) CordMode() (cord.Mode, error) {
	return cord.ParseMode(c.Mode)
}

// CordCurve parses Curve
func (c Config) CordCurve() (cord.Curve, error) {
	return cord.ParseCurve(c.Curve)
}

// Validate checks cross-field consistency
func (c Config) Validate() error {
	if _, err := c.CordMode(); err != nil {
		return errors.Wrap(err, "mode")
	}
	if _, err := c.CordCurve(); err != nil {
		return errors.Wrap(err, "curve")
	}
	if err := c.Cord.Validate(); err != nil {
		return errors.Wrap(err, "cord")
	}
	if len(c.Poles) == 0 {
		return errors.New("at least one pole is required")
	}
	if c.Player.Radius <= 0 || c.Player.Speed < 0 || c.Player.Battery < 0 {
		return errors.New("player radius must be positive, speed and battery non-negative")
	}
	if c.Player.DriveForce <= 0 {
		return errors.Errorf("player.drive_force %v must be positive", c.Player.DriveForce)
	}
	if c.DayNight.Duration <= 0 {
		return errors.Errorf("day_night.duration %v must be positive", c.DayNight.Duration)
	}
	if c.Grid.TileSize <= 0 {
		return errors.Errorf("grid.tile_size %v must be positive", c.Grid.TileSize)
	}
	return nil
}

// IsoGrid returns the isometric grid described by the config
func (c Config) IsoGrid() vmath.IsoGrid {
	return vmath.IsoGrid{TileSize: c.Grid.TileSize, GroundOffset: c.Grid.GroundOffset}
}
