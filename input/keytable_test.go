package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestMergeKeyTable(t *testing.T) {
	base := DefaultKeyTable()
	override := &KeyTable{
		Runes: map[rune]Action{
			'e': ActionToggleAttach,
			' ': ActionNone,
		},
		Keys: map[tcell.Key]Action{
			tcell.KeyEscape: ActionNone,
		},
	}

	merged := MergeKeyTable(base, override)

	if merged.Runes['e'] != ActionToggleAttach {
		t.Error("override binding missing")
	}
	if _, ok := merged.Runes[' ']; ok {
		t.Error("ActionNone override should remove binding")
	}
	if _, ok := merged.Keys[tcell.KeyEscape]; ok {
		t.Error("ActionNone key override should remove binding")
	}
	if merged.Runes['w'] != ActionMoveUp {
		t.Error("unrelated base binding lost")
	}
	if base.Runes[' '] != ActionToggleAttach {
		t.Error("base table mutated")
	}
}

func TestMergeNilOverride(t *testing.T) {
	base := DefaultKeyTable()
	merged := MergeKeyTable(base, nil)
	if len(merged.Runes) != len(base.Runes) || len(merged.Keys) != len(base.Keys) {
		t.Error("nil override should return an equal copy")
	}
}

func TestLoadKeyConfig(t *testing.T) {
	data := []byte(`
runes:
  e: toggle_attach
  space: none
keys:
  Enter: toggle_attach
`)
	kt, err := LoadKeyConfig(data)
	if err != nil {
		t.Fatalf("LoadKeyConfig: %v", err)
	}
	if kt.Runes['e'] != ActionToggleAttach {
		t.Errorf("rune e = %v", kt.Runes['e'])
	}
	if a, ok := kt.Runes[' ']; !ok || a != ActionNone {
		t.Errorf("space alias = %v, %v", a, ok)
	}
	if kt.Keys[tcell.KeyEnter] != ActionToggleAttach {
		t.Errorf("Enter = %v", kt.Keys[tcell.KeyEnter])
	}
}

func TestLoadKeyConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown action", "runes:\n  e: fly\n"},
		{"multi-char rune", "runes:\n  ee: retract\n"},
		{"unknown key", "keys:\n  NotAKey: quit\n"},
		{"bad yaml", "runes: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadKeyConfig([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestActionNames(t *testing.T) {
	a, ok := ActionByName(" Toggle_Attach ")
	if !ok || a != ActionToggleAttach {
		t.Errorf("ActionByName = %v, %v", a, ok)
	}
	if ActionRetract.String() != "retract" {
		t.Errorf("String = %q", ActionRetract.String())
	}
	if !ActionRetractLeft.IsHeld() || ActionPause.IsHeld() {
		t.Error("IsHeld classification wrong")
	}
	if i, ok := ActionToggle4.ToggleIndex(); !ok || i != 3 {
		t.Errorf("ToggleIndex = %d, %v", i, ok)
	}
}
