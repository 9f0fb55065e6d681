package engine

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/balthazar/config"
	"github.com/lixenwraith/balthazar/core"
	"github.com/lixenwraith/balthazar/cord"
	"github.com/lixenwraith/balthazar/physics"
	"github.com/lixenwraith/balthazar/status"
	"github.com/lixenwraith/balthazar/vmath"
)

// Resource caches typed resource pointers for systems
// Missing resources resolve to nil
type Resource struct {
	Config   *config.Config
	Time     *TimeResource
	Input    *InputResource
	Toggles  *TogglesResource
	Camera   *CameraResource
	DayNight *DayNightResource
	Message  *MessageResource
	Cord     *CordResource
	Physics  *PhysicsResource
	Player   *PlayerResource
	Audio    *AudioResource

	Status *status.Registry
}

// GetResourceStore resolves all known resources from the world
func GetResourceStore(w *World) Resource {
	rs := w.Resources
	var r Resource
	r.Config, _ = GetResource[*config.Config](rs)
	r.Time, _ = GetResource[*TimeResource](rs)
	r.Input, _ = GetResource[*InputResource](rs)
	r.Toggles, _ = GetResource[*TogglesResource](rs)
	r.Camera, _ = GetResource[*CameraResource](rs)
	r.DayNight, _ = GetResource[*DayNightResource](rs)
	r.Message, _ = GetResource[*MessageResource](rs)
	r.Cord, _ = GetResource[*CordResource](rs)
	r.Physics, _ = GetResource[*PhysicsResource](rs)
	r.Player, _ = GetResource[*PlayerResource](rs)
	r.Audio, _ = GetResource[*AudioResource](rs)
	r.Status, _ = GetResource[*status.Registry](rs)
	return r
}

// TimeResource is refreshed by the scheduler before systems run
type TimeResource struct {
	// GameTime is simulated time elapsed since start, frozen while paused
	GameTime    time.Duration
	DeltaTime   time.Duration
	FrameNumber int64
}

// Update modifies fields in place; caller holds the world update lock
func (tr *TimeResource) Update(gameTime, deltaTime time.Duration, frameNumber int64) {
	tr.GameTime = gameTime
	tr.DeltaTime = deltaTime
	tr.FrameNumber = frameNumber
}

// DT returns the tick delta in seconds
func (tr *TimeResource) DT() float64 {
	return tr.DeltaTime.Seconds()
}

// InputResource is the per-tick view of player intent
// Edge fields are true for exactly one tick per key press
type InputResource struct {
	Move         vmath.Vec2
	Retract      bool
	ToggleAttach bool
	Zoom         int
	Toggles      []string
}

// Reset clears all intent; called at the start of each tick
func (in *InputResource) Reset() {
	in.Move = vmath.Vec2{}
	in.Retract = false
	in.ToggleAttach = false
	in.Zoom = 0
	in.Toggles = in.Toggles[:0]
}

// Toggle names, in display and hotkey order
const (
	TogglePlayerMovement = "player_movement"
	ToggleCordSystems    = "cord_systems"
	ToggleCameraFollow   = "camera_follow"
	ToggleCameraZoom     = "camera_zoom"
	TogglePlayerRotation = "player_rotation"
)

// ToggleNames lists every system toggle; index+1 is the hotkey digit
var ToggleNames = []string{
	TogglePlayerMovement,
	ToggleCordSystems,
	ToggleCameraFollow,
	ToggleCameraZoom,
	TogglePlayerRotation,
}

// TogglesResource gates optional systems at runtime
type TogglesResource struct {
	PlayerMovement bool
	CordSystems    bool
	CameraFollow   bool
	CameraZoom     bool
	PlayerRotation bool
}

// NewTogglesResource returns toggles with every system enabled
func NewTogglesResource() *TogglesResource {
	return &TogglesResource{
		PlayerMovement: true,
		CordSystems:    true,
		CameraFollow:   true,
		CameraZoom:     true,
		PlayerRotation: true,
	}
}

func (t *TogglesResource) field(name string) *bool {
	switch name {
	case TogglePlayerMovement:
		return &t.PlayerMovement
	case ToggleCordSystems:
		return &t.CordSystems
	case ToggleCameraFollow:
		return &t.CameraFollow
	case ToggleCameraZoom:
		return &t.CameraZoom
	case TogglePlayerRotation:
		return &t.PlayerRotation
	}
	return nil
}

// Get returns a toggle value; ok is false for unknown names
func (t *TogglesResource) Get(name string) (value, ok bool) {
	if p := t.field(name); p != nil {
		return *p, true
	}
	return false, false
}

// Set assigns a toggle value; unknown names are ignored
func (t *TogglesResource) Set(name string, value bool) bool {
	if p := t.field(name); p != nil {
		*p = value
		return true
	}
	return false
}

// Flip inverts a toggle and returns its new value
func (t *TogglesResource) Flip(name string) (value, ok bool) {
	p := t.field(name)
	if p == nil {
		return false, false
	}
	*p = !*p
	return *p, true
}

// CameraResource is the world-space view center and zoom factor
type CameraResource struct {
	Center vmath.Vec2
	Zoom   float64
}

// DayNightResource is the ambient lighting state
type DayNightResource struct {
	// TimeOfDay is seconds into the cycle, in [0, Duration)
	TimeOfDay float64
	Duration  float64
	Speed     float64

	Brightness float64
	Ambient    colorful.Color
	Sky        colorful.Color
	IsDay      bool
}

// Fraction is TimeOfDay normalized to [0,1), where 0 is midnight and 0.5 is noon
func (d *DayNightResource) Fraction() float64 {
	if d.Duration <= 0 {
		return 0
	}
	return d.TimeOfDay / d.Duration
}

// MessageResource is the transient HUD line
type MessageResource struct {
	Text  string
	Until time.Duration
}

// Show sets the message visible until now+ttl of game time
func (m *MessageResource) Show(text string, now, ttl time.Duration) {
	m.Text = text
	m.Until = now + ttl
}

// Active returns the message if it has not expired
func (m *MessageResource) Active(now time.Duration) (string, bool) {
	if m.Text == "" || now >= m.Until {
		return "", false
	}
	return m.Text, true
}

// CordResource bundles the cord state with its collaborators
type CordResource struct {
	State    *cord.State
	Registry *cord.Registry
	// Chain is nil in trail mode
	Chain    *cord.Chain
	Attacher *cord.Attacher
	Grid     vmath.IsoGrid
	Curve    cord.Curve
}

// PhysicsResource exposes the physics space
type PhysicsResource struct {
	Space *physics.Space
}

// PlayerResource holds the player entity reference
type PlayerResource struct {
	Entity core.Entity
}

// AudioPlayer is the minimal cue interface used by systems
type AudioPlayer interface {
	Play(core.SoundType) bool
	IsRunning() bool
}

// AudioResource queues cues raised during a tick for the audio system
type AudioResource struct {
	// Player is nil when audio is unavailable
	Player  AudioPlayer
	Pending []core.SoundType
}

// Queue schedules a cue for playback at the end of the tick
func (a *AudioResource) Queue(sound core.SoundType) {
	a.Pending = append(a.Pending, sound)
}
