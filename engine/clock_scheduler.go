package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/balthazar/core"
	"github.com/lixenwraith/balthazar/status"
)

// MaxTickDelta caps the simulated step after stalls so joints stay stable
const MaxTickDelta = 100 * time.Millisecond

// ClockScheduler runs world systems on a fixed tick in its own goroutine
// Every tick executes under the world update lock; renderers sync on the returned channel
type ClockScheduler struct {
	world   *World
	timeRes *TimeResource

	tickInterval time.Duration
	now          func() time.Time

	mu       sync.Mutex
	lastTick time.Time
	gameTime time.Duration

	tickCount atomic.Int64
	paused    atomic.Bool

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	updateDone chan struct{}

	statTicks  *atomic.Int64
	statPaused *atomic.Bool
}

// NewClockScheduler creates a scheduler for world and returns it with the update-done channel
// Requires TimeResource; status metrics are wired when a Registry is present
func NewClockScheduler(world *World, tickInterval time.Duration) (*ClockScheduler, <-chan struct{}) {
	updateDone := make(chan struct{}, 1)
	cs := &ClockScheduler{
		world:        world,
		timeRes:      MustGetResource[*TimeResource](world.Resources),
		tickInterval: tickInterval,
		now:          time.Now,
		stopChan:     make(chan struct{}),
		updateDone:   updateDone,
	}
	if reg, ok := GetResource[*status.Registry](world.Resources); ok {
		cs.statTicks = reg.Ints.Get("engine.ticks")
		cs.statPaused = reg.Bools.Get("engine.paused")
	}
	return cs, updateDone
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.mu.Lock()
		cs.lastTick = cs.now()
		cs.mu.Unlock()
		cs.wg.Add(1)
		core.Go(cs.loop)
	}
}

// Stop halts the scheduler loop and waits for the in-flight tick
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		if cs.running.CompareAndSwap(true, false) {
			close(cs.stopChan)
			cs.wg.Wait()
		}
	})
}

// SetPaused freezes or resumes game time; paused ticks skip systems
func (cs *ClockScheduler) SetPaused(paused bool) {
	cs.paused.Store(paused)
	if cs.statPaused != nil {
		cs.statPaused.Store(paused)
	}
}

// TogglePause flips the pause state and returns the new value
func (cs *ClockScheduler) TogglePause() bool {
	p := !cs.paused.Load()
	cs.SetPaused(p)
	return p
}

// IsPaused reports the pause state
func (cs *ClockScheduler) IsPaused() bool {
	return cs.paused.Load()
}

// TickCount returns the number of executed ticks
func (cs *ClockScheduler) TickCount() int64 {
	return cs.tickCount.Load()
}

func (cs *ClockScheduler) loop() {
	defer cs.wg.Done()

	ticker := time.NewTicker(cs.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		case <-ticker.C:
			now := cs.now()
			cs.mu.Lock()
			dt := now.Sub(cs.lastTick)
			cs.lastTick = now
			cs.mu.Unlock()

			if cs.paused.Load() {
				continue
			}
			cs.Step(dt)

			select {
			case cs.updateDone <- struct{}{}:
			default:
			}
		}
	}
}

// Step executes exactly one tick of dt synchronously, clamped to MaxTickDelta
func (cs *ClockScheduler) Step(dt time.Duration) {
	if dt > MaxTickDelta {
		dt = MaxTickDelta
	}
	if dt < 0 {
		dt = 0
	}

	cs.world.RunSafe(func() {
		cs.mu.Lock()
		cs.gameTime += dt
		gameTime := cs.gameTime
		cs.mu.Unlock()

		frame := cs.tickCount.Add(1)
		cs.timeRes.Update(gameTime, dt, frame)
		cs.world.UpdateLocked()
	})

	if cs.statTicks != nil {
		cs.statTicks.Store(cs.tickCount.Load())
	}
}
