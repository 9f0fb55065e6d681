package system

import (
	"sync"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/balthazar/config"
	"github.com/lixenwraith/balthazar/core"
	"github.com/lixenwraith/balthazar/engine"
	"github.com/lixenwraith/balthazar/input"
	"github.com/lixenwraith/balthazar/network"
	"github.com/lixenwraith/balthazar/parameter"
)

type fakeAudio struct {
	mu     sync.Mutex
	played []core.SoundType
}

func (a *fakeAudio) Play(s core.SoundType) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.played = append(a.played, s)
	return true
}

func (a *fakeAudio) IsRunning() bool { return true }

func (a *fakeAudio) sounds() []core.SoundType {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]core.SoundType(nil), a.played...)
}

type fakePublisher struct {
	snaps []*network.Snapshot
}

func (p *fakePublisher) Publish(s *network.Snapshot) {
	p.snaps = append(p.snaps, s)
}

// testGame is a fully wired world driven tick by tick
type testGame struct {
	world     *engine.World
	sched     *engine.ClockScheduler
	input     *input.State
	commands  chan string
	audio     *fakeAudio
	publisher *fakePublisher
	res       engine.Resource
}

func newTestGame(t *testing.T, mutate func(*config.Config)) *testGame {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(&cfg)
	}
	g := &testGame{
		world:     engine.NewWorld(),
		input:     input.NewState(nil, time.Hour),
		commands:  make(chan string, 8),
		audio:     &fakeAudio{},
		publisher: &fakePublisher{},
	}
	err := NewGame(g.world, cfg, Options{
		Input:     g.input,
		Commands:  g.commands,
		Audio:     g.audio,
		Publisher: g.publisher,
	})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	g.sched, _ = engine.NewClockScheduler(g.world, parameter.GameUpdateInterval)
	g.res = engine.GetResourceStore(g.world)
	return g
}

func (g *testGame) press(r rune) {
	g.input.HandleEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone), time.Now())
}

func (g *testGame) step(n int) {
	for i := 0; i < n; i++ {
		g.sched.Step(parameter.GameUpdateInterval)
	}
}

func (g *testGame) battery() float64 {
	b, _ := g.world.Batteries.GetComponent(g.res.Player.Entity)
	return b.Charge
}

func (g *testGame) playerPos() (x, y float64) {
	p, _ := PlayerPosition(g.world, g.res)
	return p.X, p.Y
}
