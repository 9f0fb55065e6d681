package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/balthazar/vmath"
)

// Snapshot is the per-tick view of input
type Snapshot struct {
	// Move is the summed movement axes, y-up, each component in [-1, 1]
	Move vmath.Vec2

	// Retract is true while any retracting action is held
	Retract bool

	// Edges lists the edge actions pressed since the previous snapshot, in order
	Edges []Action
}

// Has reports whether an edge action was pressed
func (s Snapshot) Has(a Action) bool {
	for _, e := range s.Edges {
		if e == a {
			return true
		}
	}
	return false
}

// State accumulates terminal key events between ticks
// Terminals report presses and auto-repeats but not releases, so a held action
// stays active for a window after its last event
type State struct {
	mu     sync.Mutex
	table  *KeyTable
	window time.Duration
	held   [actionCount]time.Time
	edges  []Action
}

// NewState creates an input state over a key table
func NewState(table *KeyTable, window time.Duration) *State {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &State{
		table:  table,
		window: window,
	}
}

// HandleEvent records a key event at the given time
// Returns the resolved action, ActionNone for unbound keys and non-key events
func (s *State) HandleEvent(ev tcell.Event, now time.Time) Action {
	kev, ok := ev.(*tcell.EventKey)
	if !ok {
		return ActionNone
	}
	a := s.table.Lookup(kev)
	if a == ActionNone {
		return ActionNone
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if a.IsHeld() {
		s.held[a] = now
		// Opposite axis presses cancel the stale direction immediately
		if opp := opposite(a); opp != ActionNone {
			s.held[opp] = time.Time{}
			s.held[retractVariant(opp)] = time.Time{}
			s.held[moveVariant(opp)] = time.Time{}
		}
	} else {
		s.edges = append(s.edges, a)
	}
	return a
}

// Snapshot samples held actions at now and drains queued edges
func (s *State) Snapshot(now time.Time) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	var snap Snapshot
	active := func(a Action) bool {
		t := s.held[a]
		return !t.IsZero() && now.Sub(t) <= s.window
	}

	if active(ActionMoveUp) || active(ActionRetractUp) {
		snap.Move.Y++
	}
	if active(ActionMoveDown) || active(ActionRetractDown) {
		snap.Move.Y--
	}
	if active(ActionMoveRight) || active(ActionRetractRight) {
		snap.Move.X++
	}
	if active(ActionMoveLeft) || active(ActionRetractLeft) {
		snap.Move.X--
	}
	snap.Retract = active(ActionRetract) || active(ActionRetractUp) ||
		active(ActionRetractDown) || active(ActionRetractLeft) || active(ActionRetractRight)

	if len(s.edges) > 0 {
		snap.Edges = s.edges
		s.edges = nil
	}
	return snap
}

// Reset clears held keys and pending edges
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.held = [actionCount]time.Time{}
	s.edges = nil
}

func opposite(a Action) Action {
	switch a {
	case ActionMoveUp, ActionRetractUp:
		return ActionMoveDown
	case ActionMoveDown, ActionRetractDown:
		return ActionMoveUp
	case ActionMoveLeft, ActionRetractLeft:
		return ActionMoveRight
	case ActionMoveRight, ActionRetractRight:
		return ActionMoveLeft
	}
	return ActionNone
}

func retractVariant(a Action) Action {
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
	return a
}

func moveVariant(a Action) Action {
	switch a {
	case ActionRetractUp:
		return ActionMoveUp
	case ActionRetractDown:
		return ActionMoveDown
	case ActionRetractLeft:
		return ActionMoveLeft
	case ActionRetractRight:
		return ActionMoveRight
	}
	return a
}
