package input

import "strings"

// Action is a semantic command bound to a key
type Action uint8

const (
	ActionNone Action = iota

	// Held actions, sampled with a hold window
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionRetract

	// Held movement that also retracts, used for shifted WASD
	ActionRetractUp
	ActionRetractDown
	ActionRetractLeft
	ActionRetractRight

	// Edge actions, delivered once per press
	ActionToggleAttach
	ActionToggle1
	ActionToggle2
	ActionToggle3
	ActionToggle4
	ActionToggle5
	ActionZoomIn
	ActionZoomOut
	ActionPause
	ActionMute
	ActionQuit

	actionCount
)

var actionNames = map[string]Action{
	"none":          ActionNone,
	"move_up":       ActionMoveUp,
	"move_down":     ActionMoveDown,
	"move_left":     ActionMoveLeft,
	"move_right":    ActionMoveRight,
	"retract":       ActionRetract,
	"retract_up":    ActionRetractUp,
	"retract_down":  ActionRetractDown,
	"retract_left":  ActionRetractLeft,
	"retract_right": ActionRetractRight,
	"toggle_attach": ActionToggleAttach,
	"toggle_1":      ActionToggle1,
	"toggle_2":      ActionToggle2,
	"toggle_3":      ActionToggle3,
	"toggle_4":      ActionToggle4,
	"toggle_5":      ActionToggle5,
	"zoom_in":       ActionZoomIn,
	"zoom_out":      ActionZoomOut,
	"pause":         ActionPause,
	"mute":          ActionMute,
	"quit":          ActionQuit,
}

// ActionByName resolves a config action name
func ActionByName(name string) (Action, bool) {
	a, ok := actionNames[strings.ToLower(strings.TrimSpace(name))]
	return a, ok
}

// String returns the config name of the action
func (a Action) String() string {
	for name, v := range actionNames {
		if v == a {
			return name
		}
	}
	return "unknown"
}

// IsHeld reports whether the action is sampled continuously rather than per press
func (a Action) IsHeld() bool {
	return a >= ActionMoveUp && a <= ActionRetractRight
}

// ToggleIndex returns the zero-based system toggle slot for toggle actions
func (a Action) ToggleIndex() (int, bool) {
	if a >= ActionToggle1 && a <= ActionToggle5 {
		return int(a - ActionToggle1), true
	}
	return 0, false
}
