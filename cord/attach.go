package cord

import "github.com/lixenwraith/balthazar/vmath"

// Outcome is the user-visible result of a toggle command
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeAttached
	OutcomeDetached
	// OutcomeNoAnchor means no anchor was within range; state is unchanged
	OutcomeNoAnchor
	// OutcomeRefused means an anchor was found but the link could not be made
	OutcomeRefused
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAttached:
		return "attached"
	case OutcomeDetached:
		return "detached"
	case OutcomeNoAnchor:
		return "no anchor in range"
	case OutcomeRefused:
		return "attach refused"
	default:
		return "none"
	}
}

// Attacher runs the detached/attached state machine
type Attacher struct {
	Registry *Registry
	// Chain is nil in trail mode
	Chain *Chain
	// Spawn creates attachment point bodies; nil attaches directly to anchors
	Spawn PointSpawner
}

// Toggle handles one edge-triggered attach command
func (a *Attacher) Toggle(s *State, playerPos vmath.Vec2) Outcome {
	if s.IsAttached() {
		if a.Detach(s) {
			return OutcomeDetached
		}
		return OutcomeNone
	}

	anchor, ok := a.Registry.Nearest(playerPos, s.Config.AttachmentRange)
	if !ok {
		return OutcomeNoAnchor
	}
	pt, ok := a.Registry.EnsurePoint(anchor, a.Spawn)
	if !ok {
		return OutcomeRefused
	}
	if !a.Attach(s, pt) {
		return OutcomeRefused
	}
	return OutcomeAttached
}

// Attach links the cord to pt; repeated calls while attached are no-ops
func (a *Attacher) Attach(s *State, pt AttachmentPoint) bool {
	if s.IsAttached() || !pt.ID.Valid() {
		return false
	}
	if s.Mode == ModeChain && a.Chain != nil {
		return a.Chain.AttachAnchor(s, pt)
	}
	s.Trail = s.Trail[:0]
	s.Attached = pt.ID
	return true
}

// Detach releases the cord; the chain stays alive and free
func (a *Attacher) Detach(s *State) bool {
	if !s.IsAttached() {
		return false
	}
	s.Trail = s.Trail[:0]
	if s.Mode == ModeChain && a.Chain != nil {
		return a.Chain.DetachAnchor(s)
	}
	s.Attached = 0
	return true
}
