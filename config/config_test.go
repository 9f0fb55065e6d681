package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/balthazar/cord"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadEmptyPathIsDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Cord.MaxLength != cord.DefaultConfig().MaxLength {
		t.Errorf("max length = %v", cfg.Cord.MaxLength)
	}
}

func TestLoadSparseOverride(t *testing.T) {
	path := writeFile(t, "balthazar.yaml", `
mode: trail
cord:
  max_length: 300
  anchor_joint:
    min: 0.8
    max: 1.2
poles:
  - label: Z
    x: 64
    y: 32
    max_output: 15
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Mode != "trail" {
		t.Errorf("mode = %q", cfg.Mode)
	}
	if cfg.Cord.MaxLength != 300 {
		t.Errorf("max length = %v, want 300", cfg.Cord.MaxLength)
	}
	if cfg.Cord.MinLength != 50 || cfg.Cord.RetractionSpeed != 300 {
		t.Errorf("unset keys lost defaults: %+v", cfg.Cord)
	}
	if cfg.Cord.AnchorJoint.Min != 0.8 || cfg.Cord.BuildJoint.Min != 0.99 {
		t.Errorf("bands = %+v / %+v", cfg.Cord.AnchorJoint, cfg.Cord.BuildJoint)
	}
	if len(cfg.Poles) != 1 || cfg.Poles[0].Label != "Z" {
		t.Errorf("poles = %+v", cfg.Poles)
	}
	if cfg.Player.Speed != 300 {
		t.Errorf("player speed = %v", cfg.Player.Speed)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("validate: %v", err)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
	bad := writeFile(t, "bad.yaml", "cord: [1, 2\n")
	if _, err := Load(bad); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"mode", func(c *Config) { c.Mode = "rope" }},
		{"curve", func(c *Config) { c.Curve = "nurbs" }},
		{"cord", func(c *Config) { c.Cord.SegmentLength = 0 }},
		{"poles", func(c *Config) { c.Poles = nil }},
		{"player", func(c *Config) { c.Player.Radius = 0 }},
		{"drive", func(c *Config) { c.Player.DriveForce = 0 }},
		{"day", func(c *Config) { c.DayNight.Duration = 0 }},
		{"grid", func(c *Config) { c.Grid.TileSize = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestEnvFileAndOverrides(t *testing.T) {
	path := writeFile(t, ".env", "BALTHAZAR_CURVE=bezier\nBALTHAZAR_DEBUG_ADDR=127.0.0.1:9000\n")
	t.Setenv(EnvMode, "trail")
	t.Setenv(EnvCurve, "")
	os.Unsetenv(EnvCurve)
	os.Unsetenv(EnvDebugAddr)
	t.Cleanup(func() { os.Unsetenv(EnvDebugAddr) })

	if err := LoadEnvFile(path); err != nil {
		t.Fatal(err)
	}
	cfg := Default()
	cfg.ApplyEnv()
	if cfg.Mode != "trail" || cfg.Curve != "bezier" || cfg.Debug.Addr != "127.0.0.1:9000" {
		t.Errorf("cfg = %q %q %q", cfg.Mode, cfg.Curve, cfg.Debug.Addr)
	}
	if c, _ := cfg.CordCurve(); c != cord.CurveBezier {
		t.Errorf("curve = %v", c)
	}
}

func TestEnvFileMissingIsFine(t *testing.T) {
	if err := LoadEnvFile(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Errorf("missing env file: %v", err)
	}
}
