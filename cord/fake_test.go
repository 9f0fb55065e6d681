package cord

import (
	"github.com/lixenwraith/balthazar/core"
	"github.com/lixenwraith/balthazar/physics"
	"github.com/lixenwraith/balthazar/vmath"
)

type fakeBody struct {
	pos     vmath.Vec2
	radius  float64
	damping float64
	static  bool
}

type fakeJoint struct {
	a, b   physics.BodyHandle
	min    float64
	max    float64
	fixed  bool
	anchor vmath.Vec2
}

// fakeBackend records spawns and despawns without simulating
type fakeBackend struct {
	next    uint32
	bodies  map[physics.BodyHandle]*fakeBody
	joints  map[physics.JointHandle]*fakeJoint
	spawned int
	removed int
}

var _ physics.Backend = (*fakeBackend)(nil)

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		bodies: make(map[physics.BodyHandle]*fakeBody),
		joints: make(map[physics.JointHandle]*fakeJoint),
	}
}

func (f *fakeBackend) id() uint32 {
	f.next++
	return f.next
}

func (f *fakeBackend) SpawnBody(pos vmath.Vec2, radius, damping float64) physics.BodyHandle {
	h := physics.BodyHandle(f.id())
	f.bodies[h] = &fakeBody{pos: pos, radius: radius, damping: damping}
	f.spawned++
	return h
}

func (f *fakeBackend) SpawnStaticBody(pos vmath.Vec2, radius float64) physics.BodyHandle {
	h := physics.BodyHandle(f.id())
	f.bodies[h] = &fakeBody{pos: pos, radius: radius, static: true}
	f.spawned++
	return h
}

func (f *fakeBackend) DespawnBody(h physics.BodyHandle) {
	if _, ok := f.bodies[h]; ok {
		delete(f.bodies, h)
		f.removed++
	}
}

func (f *fakeBackend) SpawnDistanceJoint(a, b physics.BodyHandle, min, max float64) physics.JointHandle {
	if f.bodies[a] == nil || f.bodies[b] == nil {
		return 0
	}
	h := physics.JointHandle(f.id())
	f.joints[h] = &fakeJoint{a: a, b: b, min: min, max: max}
	return h
}

func (f *fakeBackend) SpawnFixedJoint(a, b physics.BodyHandle, anchor vmath.Vec2) physics.JointHandle {
	if f.bodies[a] == nil || f.bodies[b] == nil {
		return 0
	}
	h := physics.JointHandle(f.id())
	f.joints[h] = &fakeJoint{a: a, b: b, fixed: true, anchor: anchor}
	return h
}

func (f *fakeBackend) DespawnJoint(h physics.JointHandle) {
	delete(f.joints, h)
}

func (f *fakeBackend) Position(h physics.BodyHandle) (vmath.Vec2, bool) {
	b, ok := f.bodies[h]
	if !ok {
		return vmath.Vec2{}, false
	}
	return b.pos, true
}

func (f *fakeBackend) move(h physics.BodyHandle, p vmath.Vec2) {
	if b, ok := f.bodies[h]; ok {
		b.pos = p
	}
}

// chainFixture is a built, attached chain-mode cord with one pole at the origin
type chainFixture struct {
	backend  *fakeBackend
	player   physics.BodyHandle
	state    *State
	chain    *Chain
	registry *Registry
	attacher *Attacher
	pole     core.Entity
}

func newChainFixture(cfg Config, playerPos vmath.Vec2) *chainFixture {
	fb := newFakeBackend()
	player := fb.SpawnBody(playerPos, 20, 1.5)
	s, err := NewState(cfg, ModeChain)
	if err != nil {
		panic(err)
	}
	ch := NewChain(fb, player)
	reg := NewRegistry()
	pole := core.Entity(100)
	reg.Add(pole, vmath.Vec2{})

	nextPoint := core.Entity(1000)
	att := &Attacher{
		Registry: reg,
		Chain:    ch,
		Spawn: func(parent Anchor) (core.Entity, physics.BodyHandle) {
			nextPoint++
			return nextPoint, fb.SpawnStaticBody(parent.Pos, 0.5)
		},
	}
	ch.Build(s, vmath.Vec2{})
	return &chainFixture{backend: fb, player: player, state: s, chain: ch, registry: reg, attacher: att, pole: pole}
}
