package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to actions
type KeyTable struct {
	// Printable keys, case-sensitive
	Runes map[rune]Action

	// Special keys (arrows, Ctrl+*, Esc)
	Keys map[tcell.Key]Action
}

// DefaultKeyTable returns the default key bindings
// Lowercase WASD moves, uppercase (Shift) WASD moves while retracting
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Runes: map[rune]Action{
			'w': ActionMoveUp,
			's': ActionMoveDown,
			'a': ActionMoveLeft,
			'd': ActionMoveRight,
			'W': ActionRetractUp,
			'S': ActionRetractDown,
			'A': ActionRetractLeft,
			'D': ActionRetractRight,
			'r': ActionRetract,
			' ': ActionToggleAttach,
			'1': ActionToggle1,
			'2': ActionToggle2,
			'3': ActionToggle3,
			'4': ActionToggle4,
			'5': ActionToggle5,
			'+': ActionZoomIn,
			'=': ActionZoomIn,
			'-': ActionZoomOut,
			'p': ActionPause,
			'm': ActionMute,
			'q': ActionQuit,
		},
		Keys: map[tcell.Key]Action{
			tcell.KeyUp:     ActionMoveUp,
			tcell.KeyDown:   ActionMoveDown,
			tcell.KeyLeft:   ActionMoveLeft,
			tcell.KeyRight:  ActionMoveRight,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
			tcell.KeyCtrlQ:  ActionQuit,
		},
	}
}

// Clone returns a deep copy of the table
func (kt *KeyTable) Clone() *KeyTable {
	out := &KeyTable{
		Runes: make(map[rune]Action, len(kt.Runes)),
		Keys:  make(map[tcell.Key]Action, len(kt.Keys)),
	}
	for r, a := range kt.Runes {
		out.Runes[r] = a
	}
	for k, a := range kt.Keys {
		out.Keys[k] = a
	}
	return out
}

// MergeKeyTable applies a sparse override onto a copy of base
// An override bound to ActionNone removes the base binding
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	out := base.Clone()
	if override == nil {
		return out
	}
	for r, a := range override.Runes {
		if a == ActionNone {
			delete(out.Runes, r)
			continue
		}
		out.Runes[r] = a
	}
	for k, a := range override.Keys {
		if a == ActionNone {
			delete(out.Keys, k)
			continue
		}
		out.Keys[k] = a
	}
	return out
}

// Lookup resolves the action for a key event
// Shifted arrow movement is promoted to its retracting variant
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	a := kt.Keys[ev.Key()]
	if ev.Modifiers()&tcell.ModShift != 0 {
		switch a {
		case ActionMoveUp:
			return ActionRetractUp
		case ActionMoveDown:
			return ActionRetractDown
		case ActionMoveLeft:
			return ActionRetractLeft
		case ActionMoveRight:
			return ActionRetractRight
		}
	}
	return a
}
