package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/balthazar/config"
	"github.com/lixenwraith/balthazar/input"
)

func setFlag(t *testing.T, p *string, v string) {
	t.Helper()
	old := *p
	*p = v
	t.Cleanup(func() { *p = old })
}

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.yaml")
	if err := os.WriteFile(path, []byte("mode: chain\ncurve: bezier\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(config.EnvMode, "")
	t.Setenv(config.EnvCurve, "")
	t.Setenv(config.EnvDebugAddr, "")
	setFlag(t, envFlag, filepath.Join(dir, "missing.env"))
	setFlag(t, configFlag, path)
	setFlag(t, modeFlag, "trail")
	setFlag(t, curveFlag, "")
	setFlag(t, debugAddrFlag, "127.0.0.1:0")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Mode != "trail" {
		t.Errorf("mode = %q, want flag value", cfg.Mode)
	}
	if cfg.Curve != "bezier" {
		t.Errorf("curve = %q, want file value", cfg.Curve)
	}
	if cfg.Debug.Addr != "127.0.0.1:0" {
		t.Errorf("debug addr = %q", cfg.Debug.Addr)
	}
}

func TestLoadConfigRejectsBadMode(t *testing.T) {
	setFlag(t, envFlag, filepath.Join(t.TempDir(), "missing.env"))
	setFlag(t, configFlag, "")
	setFlag(t, modeFlag, "rope")

	if _, err := loadConfig(); err == nil {
		t.Error("expected validation error for unknown mode")
	}
}

func TestLoadKeyTable(t *testing.T) {
	kt, err := loadKeyTable("")
	if err != nil {
		t.Fatalf("default table: %v", err)
	}
	if kt.Runes[' '] != input.ActionToggleAttach {
		t.Errorf("space = %v", kt.Runes[' '])
	}

	path := filepath.Join(t.TempDir(), "keys.yaml")
	if err := os.WriteFile(path, []byte("runes:\n  e: toggle_attach\n  space: none\n"), 0644); err != nil {
		t.Fatal(err)
	}
	kt, err = loadKeyTable(path)
	if err != nil {
		t.Fatalf("override table: %v", err)
	}
	if kt.Runes['e'] != input.ActionToggleAttach {
		t.Errorf("e = %v", kt.Runes['e'])
	}
	if _, ok := kt.Runes[' ']; ok {
		t.Error("space binding should be removed")
	}
	if kt.Runes['w'] != input.ActionMoveUp {
		t.Error("unrelated default bindings should survive")
	}

	if _, err := loadKeyTable(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing keymap")
	}
}
