package system

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/lixenwraith/balthazar/component"
	"github.com/lixenwraith/balthazar/config"
	"github.com/lixenwraith/balthazar/cord"
	"github.com/lixenwraith/balthazar/core"
	"github.com/lixenwraith/balthazar/engine"
	"github.com/lixenwraith/balthazar/logger"
	"github.com/lixenwraith/balthazar/parameter"
	"github.com/lixenwraith/balthazar/vmath"
)

func TestMovementDrainsBattery(t *testing.T) {
	g := newTestGame(t, func(c *config.Config) { c.Mode = "trail" })
	x0, _ := g.playerPos()

	g.press('d')
	g.step(10)

	x1, _ := g.playerPos()
	if x1 <= x0 {
		t.Errorf("player x = %v, want > %v", x1, x0)
	}
	pc, _ := g.world.Players.GetComponent(g.res.Player.Entity)
	if pc.Facing != component.FacingRight || !pc.Moving {
		t.Errorf("player = %+v, want moving right", pc)
	}
	// Attached to a pole, so charging offsets drain; detach to isolate the drain
	g.press(' ')
	g.step(1)
	before := g.battery()
	g.press('d')
	g.step(10)
	if g.battery() >= before {
		t.Errorf("battery = %v, want below %v while moving detached", g.battery(), before)
	}
}

func TestMovementStopsWhenBatteryEmpty(t *testing.T) {
	g := newTestGame(t, func(c *config.Config) {
		c.Mode = "trail"
		c.Player.Start = vmath.Vec2{X: 1000}
		c.Player.SolarOutput = 0
		c.Player.Battery = 0.01
	})

	g.press('d')
	g.step(3)

	pc, _ := g.world.Players.GetComponent(g.res.Player.Entity)
	v, _ := g.res.Physics.Space.Velocity(pc.Body)
	if v.X != 0 || v.Y != 0 {
		t.Errorf("velocity = %+v, want zero with empty battery", v)
	}
	if text, ok := g.res.Message.Active(g.res.Time.GameTime); !ok || text != "Battery empty" {
		t.Errorf("message = %q, %v", text, ok)
	}
	if s := g.audio.sounds(); len(s) != 1 || s[0] != core.SoundBatteryEmpty {
		t.Errorf("sounds = %v, want [battery_empty]", s)
	}
}

func TestAttachToggleDetachesAndReattaches(t *testing.T) {
	g := newTestGame(t, nil)
	st := g.res.Cord.State
	point := st.Attached

	g.press(' ')
	g.step(1)
	if st.IsAttached() {
		t.Fatal("toggle should detach")
	}
	if len(st.Joints) != st.ExpectedJoints() {
		t.Errorf("joints = %d, want %d detached", len(st.Joints), st.ExpectedJoints())
	}
	if text, _ := g.res.Message.Active(g.res.Time.GameTime); text != "Detached" {
		t.Errorf("message = %q", text)
	}

	g.press(' ')
	g.step(1)
	if st.Attached != point {
		t.Errorf("reattached to %v, want reused point %v", st.Attached, point)
	}
	if text, _ := g.res.Message.Active(g.res.Time.GameTime); text != "Attached to pole A" {
		t.Errorf("message = %q", text)
	}

	sounds := g.audio.sounds()
	if len(sounds) != 2 || sounds[0] != core.SoundDetach || sounds[1] != core.SoundAttach {
		t.Errorf("sounds = %v, want [detach attach]", sounds)
	}
	if g.world.AttachmentPoints.CountEntities() != 1 {
		t.Error("reattach should not spawn a second attachment point")
	}
}

func TestAttachNoAnchorInRange(t *testing.T) {
	g := newTestGame(t, func(c *config.Config) { c.Player.Start = vmath.Vec2{X: 1000, Y: 1000} })

	g.press(' ')
	g.step(1)

	if g.res.Cord.State.IsAttached() {
		t.Error("should remain detached")
	}
	if text, _ := g.res.Message.Active(g.res.Time.GameTime); text != "No anchor in range" {
		t.Errorf("message = %q", text)
	}
	if s := g.audio.sounds(); len(s) != 1 || s[0] != core.SoundNoAnchor {
		t.Errorf("sounds = %v", s)
	}
}

func TestPowerChargesFromAttachedPole(t *testing.T) {
	g := newTestGame(t, func(c *config.Config) {
		c.Player.SolarOutput = 0
		c.Player.Battery = 100
	})
	g.world.Batteries.Update(g.res.Player.Entity, func(b *component.BatteryComponent) { b.Charge = 50 })

	g.step(60)

	want := 50 + parameter.PoleMaxOutput*60*parameter.GameUpdateInterval.Seconds()
	if got := g.battery(); math.Abs(got-want) > 1e-6 {
		t.Errorf("battery = %v, want %v", got, want)
	}
}

func TestPowerSolarScalesWithBrightness(t *testing.T) {
	g := newTestGame(t, func(c *config.Config) {
		c.Player.Start = vmath.Vec2{X: 1000}
		c.DayNight.Speed = 0
	})
	g.world.Batteries.Update(g.res.Player.Entity, func(b *component.BatteryComponent) { b.Charge = 0 })

	g.step(60)

	// Start time is noon, brightness 1
	want := parameter.SolarMaxOutput * 60 * parameter.GameUpdateInterval.Seconds()
	if got := g.battery(); math.Abs(got-want) > 1e-6 {
		t.Errorf("battery = %v, want %v", got, want)
	}
}

func TestRemoteToggleDisablesCord(t *testing.T) {
	g := newTestGame(t, nil)
	g.commands <- engine.ToggleCordSystems
	g.step(1)

	if g.res.Toggles.CordSystems {
		t.Fatal("cord_systems should be off")
	}
	g.press(' ')
	g.step(1)
	if !g.res.Cord.State.IsAttached() {
		t.Error("attach toggle must be ignored while cord systems are off")
	}
}

func TestToggleHotkeys(t *testing.T) {
	g := newTestGame(t, nil)
	g.press('3')
	g.step(1)
	if g.res.Toggles.CameraFollow {
		t.Error("key 3 should flip camera_follow")
	}
	if text, _ := g.res.Message.Active(g.res.Time.GameTime); text != "camera_follow: off" {
		t.Errorf("message = %q", text)
	}
}

func TestCameraFollowAndZoom(t *testing.T) {
	g := newTestGame(t, nil)
	g.press('+')
	g.step(1)

	px, py := g.playerPos()
	if g.res.Camera.Center.X != px || g.res.Camera.Center.Y != py {
		t.Errorf("camera = %+v, want player (%v,%v)", g.res.Camera.Center, px, py)
	}
	want := parameter.CameraDefaultZoom * parameter.CameraZoomStep
	if math.Abs(g.res.Camera.Zoom-want) > 1e-9 {
		t.Errorf("zoom = %v, want %v", g.res.Camera.Zoom, want)
	}
}

func TestZoomByClamps(t *testing.T) {
	if z := ZoomBy(parameter.CameraMaxZoom, 5); z != parameter.CameraMaxZoom {
		t.Errorf("zoom in past max = %v", z)
	}
	if z := ZoomBy(parameter.CameraMinZoom, -5); z != parameter.CameraMinZoom {
		t.Errorf("zoom out past min = %v", z)
	}
}

func TestFacing(t *testing.T) {
	tests := []struct {
		move vmath.Vec2
		want component.Direction
		ok   bool
	}{
		{vmath.Vec2{X: 1}, component.FacingRight, true},
		{vmath.Vec2{X: -1, Y: 0.5}, component.FacingLeft, true},
		{vmath.Vec2{Y: 1}, component.FacingUp, true},
		{vmath.Vec2{X: 0.5, Y: -1}, component.FacingDown, true},
		{vmath.Vec2{X: 0.05}, 0, false},
	}
	for _, tt := range tests {
		got, ok := Facing(tt.move)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("Facing(%+v) = %v, %v; want %v, %v", tt.move, got, ok, tt.want, tt.ok)
		}
	}
}

func TestTelemetryEveryInterval(t *testing.T) {
	g := newTestGame(t, nil)
	g.step(parameter.SnapshotInterval*2 + 1)

	if len(g.publisher.snaps) != 2 {
		t.Fatalf("snapshots = %d, want 2", len(g.publisher.snaps))
	}
	snap := g.publisher.snaps[1]
	if snap.Tick != parameter.SnapshotInterval*2 {
		t.Errorf("tick = %d", snap.Tick)
	}
	if !snap.Attached || snap.AnchorLabel != "A" || snap.Mode != "chain" {
		t.Errorf("snapshot = %+v", snap)
	}
	if len(snap.Toggles) != len(engine.ToggleNames) {
		t.Errorf("toggles = %v", snap.Toggles)
	}
	if _, ok := snap.Metrics["cord.length"]; !ok {
		t.Error("metrics should include cord.length")
	}
}

func TestCordLengthStaysInBoundsUnderPlay(t *testing.T) {
	g := newTestGame(t, nil)
	st := g.res.Cord.State

	for i := 0; i < 40; i++ {
		switch i % 4 {
		case 0, 1:
			g.press('d')
		case 2:
			g.press('S')
		case 3:
			g.press('a')
		}
		g.step(5)

		if st.CurrentLength < st.Config.MinLength || st.CurrentLength > st.Config.MaxLength {
			t.Fatalf("tick %d: length %v out of bounds", i, st.CurrentLength)
		}
		if len(st.Segments) < cord.MinSegments {
			t.Fatalf("tick %d: segments %d below floor", i, len(st.Segments))
		}
		if len(st.Joints) != st.ExpectedJoints() {
			t.Fatalf("tick %d: joints %d, want %d", i, len(st.Joints), st.ExpectedJoints())
		}
	}
}

// tether returns the player's distance from the attached anchor and the longest reach of the current chain
func (g *testGame) tether(t *testing.T) (dist, reach float64) {
	t.Helper()
	st := g.res.Cord.State
	anchor, ok := g.res.Cord.Registry.Position(st.Attached)
	if !ok {
		t.Fatal("cord not attached")
	}
	p, _ := PlayerPosition(g.world, g.res)
	cfg := st.Config
	_, anchorHi := cfg.AnchorJoint.Limits(cfg.SegmentLength)
	_, segHi := cfg.SegmentJoint.Limits(cfg.SegmentLength)
	reach = anchorHi + float64(len(st.Segments)-1)*segHi + vmath.V2Mag(cfg.BackpackOffset)
	return vmath.V2Dist(p, anchor), reach
}

func TestChainHoldsPlayerWalkingAway(t *testing.T) {
	g := newTestGame(t, nil)
	st := g.res.Cord.State
	x0, _ := g.playerPos()

	g.press('d')
	for i := 0; i < 12; i++ {
		g.step(10)
		dist, reach := g.tether(t)
		if dist > reach*1.1+5 {
			t.Fatalf("tick %d: player %.1f from anchor, chain reaches %.1f (length %.1f)", (i+1)*10, dist, reach, st.CurrentLength)
		}
	}

	x1, _ := g.playerPos()
	if x1 <= x0 {
		t.Errorf("player x = %v, want > %v", x1, x0)
	}
	// Pulling taut extends the cord no faster than the extension speed
	elapsed := 120 * parameter.GameUpdateInterval.Seconds()
	if st.CurrentLength <= st.Config.MinLength {
		t.Errorf("length = %v, want extension while pulling", st.CurrentLength)
	}
	if limit := st.Config.MinLength + st.Config.ExtensionSpeed*elapsed + 1; st.CurrentLength > limit {
		t.Errorf("length = %v, want <= %v", st.CurrentLength, limit)
	}
	if free := x0 + st.Config.MaxLength; x1 > free {
		t.Errorf("player x = %v ran past %v", x1, free)
	}
}

func TestRetractPullsPlayerIn(t *testing.T) {
	g := newTestGame(t, nil)
	st := g.res.Cord.State

	g.press('d')
	g.step(90)
	out, _ := g.tether(t)

	g.input.Reset()
	g.press('r')
	g.step(150)

	if st.CurrentLength != st.Config.MinLength {
		t.Errorf("length = %v, want %v", st.CurrentLength, st.Config.MinLength)
	}
	in, reach := g.tether(t)
	if in > out/2 {
		t.Errorf("player %.1f from anchor after retracting, was %.1f", in, out)
	}
	if in > reach*1.1+5 {
		t.Errorf("player %.1f from anchor, chain reaches %.1f", in, reach)
	}
}

func TestMovementLogsDriveFailure(t *testing.T) {
	prev := logger.Log
	t.Cleanup(func() { logger.Log = prev })
	t.Setenv("LOG_LEVEL", "debug")
	var buf bytes.Buffer
	logger.Init(&buf)

	g := newTestGame(t, func(c *config.Config) { c.Mode = "trail" })
	g.world.Players.Update(g.res.Player.Entity, func(p *component.PlayerComponent) {
		p.Body = 999
	})
	g.press('d')
	g.step(1)

	out := buf.String()
	if !strings.Contains(out, "drive player") || !strings.Contains(out, "system=movement") {
		t.Errorf("log output missing drive failure:\n%s", out)
	}
}
