package system

import (
	"github.com/lixenwraith/balthazar/engine"
	"github.com/lixenwraith/balthazar/network"
	"github.com/lixenwraith/balthazar/parameter"
)

// Publisher receives telemetry snapshots
type Publisher interface {
	Publish(*network.Snapshot)
}

// TelemetrySystem builds a snapshot every SnapshotInterval ticks
type TelemetrySystem struct {
	engine.SystemBase

	publisher Publisher
	interval  int64
}

// NewTelemetrySystem creates the telemetry system; a nil publisher makes it idle
func NewTelemetrySystem(world *engine.World, publisher Publisher) *TelemetrySystem {
	return &TelemetrySystem{
		SystemBase: engine.NewSystemBase(world),
		publisher:  publisher,
		interval:   parameter.SnapshotInterval,
	}
}

func (s *TelemetrySystem) Name() string {
	return "telemetry"
}

func (s *TelemetrySystem) Priority() int {
	return parameter.PriorityTelemetry
}

func (s *TelemetrySystem) Update() {
	if s.publisher == nil || s.Resource.Time == nil {
		return
	}
	if s.Resource.Time.FrameNumber%s.interval != 0 {
		return
	}
	s.publisher.Publish(BuildSnapshot(s.World, s.Resource))
}

// BuildSnapshot captures the current simulation state
func BuildSnapshot(w *engine.World, r engine.Resource) *network.Snapshot {
	snap := &network.Snapshot{Toggles: make(map[string]bool, len(engine.ToggleNames))}

	if r.Time != nil {
		snap.Tick = r.Time.FrameNumber
		snap.GameTime = r.Time.GameTime.Seconds()
	}
	if r.Cord != nil {
		st := r.Cord.State
		snap.Mode = st.Mode.String()
		snap.CordLength = st.CurrentLength
		snap.Segments = len(st.Segments)
		snap.Joints = len(st.Joints)
		snap.Trail = len(st.Trail)
		snap.Retracting = st.IsRetracting
		snap.Attached = st.IsAttached()
		if parent, ok := r.Cord.Registry.Parent(st.Attached); ok {
			if pole, ok := w.Poles.GetComponent(parent); ok {
				snap.AnchorLabel = pole.Label
			}
		}
	}
	if r.Player != nil {
		if b, ok := w.Batteries.GetComponent(r.Player.Entity); ok {
			snap.Battery = b.Charge
		}
	}
	if r.DayNight != nil {
		snap.TimeOfDay = r.DayNight.TimeOfDay
		snap.IsDay = r.DayNight.IsDay
	}
	if r.Toggles != nil {
		for _, name := range engine.ToggleNames {
			snap.Toggles[name], _ = r.Toggles.Get(name)
		}
	}
	if r.Status != nil {
		snap.Metrics = r.Status.Snapshot()
	}
	return snap
}
