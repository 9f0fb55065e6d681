package system

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/balthazar/cord"
	"github.com/lixenwraith/balthazar/engine"
	"github.com/lixenwraith/balthazar/logger"
	"github.com/lixenwraith/balthazar/parameter"
	"github.com/lixenwraith/balthazar/status"
	"github.com/lixenwraith/balthazar/vmath"
)

// CordSystem runs the length controller, then segment or trail reconciliation
// Must complete before rendering samples the cord for the same tick
type CordSystem struct {
	engine.SystemBase
	log *logrus.Entry

	statLength     *status.AtomicFloat
	statSegments   *atomic.Int64
	statJoints     *atomic.Int64
	statTrail      *atomic.Int64
	statRetracting *atomic.Bool
	statAttached   *atomic.Bool
}

// NewCordSystem creates the cord controller system
func NewCordSystem(world *engine.World) *CordSystem {
	s := &CordSystem{
		SystemBase: engine.NewSystemBase(world),
		log:        logger.System("cord"),
	}
	if reg := s.Resource.Status; reg != nil {
		s.statLength = reg.Floats.Get("cord.length")
		s.statSegments = reg.Ints.Get("cord.segments")
		s.statJoints = reg.Ints.Get("cord.joints")
		s.statTrail = reg.Ints.Get("cord.trail")
		s.statRetracting = reg.Bools.Get("cord.retracting")
		s.statAttached = reg.Bools.Get("cord.attached")
	}
	return s
}

func (s *CordSystem) Name() string {
	return "cord"
}

func (s *CordSystem) Priority() int {
	return parameter.PriorityCord
}

func (s *CordSystem) Update() {
	r := s.Resource
	if r.Cord == nil || r.Time == nil {
		return
	}
	defer s.publish()
	if r.Toggles != nil && !r.Toggles.CordSystems {
		return
	}

	playerPos, ok := PlayerPosition(s.World, r)
	if !ok {
		return
	}
	st := r.Cord.State

	in := cord.LengthInput{
		PlayerPos: playerPos,
		DT:        r.Time.DT(),
	}
	if r.Input != nil {
		in.Retract = r.Input.Retract
	}
	if st.IsAttached() {
		in.AnchorPos, in.AnchorFound = r.Cord.Registry.Position(st.Attached)
	}

	var adj cord.SegmentAdjuster
	if st.Mode == cord.ModeChain && r.Cord.Chain != nil {
		adj = r.Cord.Chain
	}
	change := cord.UpdateLength(st, in, adj)
	if change.Added > 0 || change.Removed > 0 {
		s.log.WithFields(logrus.Fields{
			"length":   st.CurrentLength,
			"added":    change.Added,
			"removed":  change.Removed,
			"segments": len(st.Segments),
		}).Debug("segments reconciled")
	}

	if st.Mode == cord.ModeTrail && in.AnchorFound {
		if cord.UpdateTrail(st, r.Cord.Grid, playerPos, in.AnchorPos) == cord.TrailInitialized {
			s.log.WithField("tile", st.Trail[0]).Debug("trail started")
		}
	}
}

func (s *CordSystem) publish() {
	if s.statLength == nil {
		return
	}
	st := s.Resource.Cord.State
	s.statLength.Set(st.CurrentLength)
	s.statSegments.Store(int64(len(st.Segments)))
	s.statJoints.Store(int64(len(st.Joints)))
	s.statTrail.Store(int64(len(st.Trail)))
	s.statRetracting.Store(st.IsRetracting)
	s.statAttached.Store(st.IsAttached())
}

// PlayerPosition resolves the player's world position from its transform
func PlayerPosition(w *engine.World, r engine.Resource) (vmath.Vec2, bool) {
	if r.Player == nil {
		return vmath.Vec2{}, false
	}
	t, ok := w.Transforms.GetComponent(r.Player.Entity)
	if !ok {
		return vmath.Vec2{}, false
	}
	return t.Pos, true
}
