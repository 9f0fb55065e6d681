package cord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/balthazar/core"
	"github.com/lixenwraith/balthazar/vmath"
)

func TestToggleNoAnchorInRange(t *testing.T) {
	f := newChainFixture(chainConfig(), vmath.Vec2{X: 40})
	s := f.state
	joints := len(s.Joints)

	out := f.attacher.Toggle(s, vmath.Vec2{X: 500})
	assert.Equal(t, OutcomeNoAnchor, out)
	assert.False(t, s.IsAttached())
	assert.Len(t, s.Joints, joints)
	assert.Empty(t, f.registry.Points())
}

func TestAttachTwiceIsNoop(t *testing.T) {
	f := newChainFixture(chainConfig(), vmath.Vec2{X: 40})
	s := f.state
	require.Equal(t, OutcomeAttached, f.attacher.Toggle(s, vmath.Vec2{X: 40}))

	pt, ok := f.registry.Point(s.Attached)
	require.True(t, ok)
	before := append([]uint32(nil), jointIDs(s)...)

	assert.False(t, f.attacher.Attach(s, pt))
	assert.Equal(t, before, jointIDs(s))
	assert.Equal(t, pt.ID, s.Attached)
}

func TestReattachReusesPoint(t *testing.T) {
	f := newChainFixture(chainConfig(), vmath.Vec2{X: 40})
	s := f.state
	require.Equal(t, OutcomeAttached, f.attacher.Toggle(s, vmath.Vec2{X: 40}))
	first := s.Attached
	spawned := f.backend.spawned

	require.Equal(t, OutcomeDetached, f.attacher.Toggle(s, vmath.Vec2{X: 40}))
	require.Equal(t, OutcomeAttached, f.attacher.Toggle(s, vmath.Vec2{X: 40}))
	assert.Equal(t, first, s.Attached)
	assert.Equal(t, spawned, f.backend.spawned)
	assert.Len(t, f.registry.Points(), 1)
}

func TestDetachWhenFreeIsNoop(t *testing.T) {
	f := newChainFixture(chainConfig(), vmath.Vec2{X: 40})
	assert.False(t, f.attacher.Detach(f.state))
}

func TestTrailModeAttachClearsTrail(t *testing.T) {
	s, err := NewState(DefaultConfig(), ModeTrail)
	require.NoError(t, err)
	reg := NewRegistry()
	reg.Add(9, vmath.Vec2{X: 10})
	a := &Attacher{Registry: reg}

	s.Trail = []vmath.Vec2{{X: 1}, {X: 2}}
	require.Equal(t, OutcomeAttached, a.Toggle(s, vmath.Vec2{}))
	assert.Equal(t, core.Entity(9), s.Attached)
	assert.Empty(t, s.Trail)
	assert.Empty(t, s.Joints)

	s.Trail = []vmath.Vec2{{X: 10}, {X: 26, Y: 8}}
	require.Equal(t, OutcomeDetached, a.Toggle(s, vmath.Vec2{}))
	assert.False(t, s.IsAttached())
	assert.Empty(t, s.Trail)
}

func TestToggleRefusedWithoutSegments(t *testing.T) {
	s, err := NewState(chainConfig(), ModeChain)
	require.NoError(t, err)
	fb := newFakeBackend()
	reg := NewRegistry()
	reg.Add(3, vmath.Vec2{})
	a := &Attacher{Registry: reg, Chain: NewChain(fb, fb.SpawnBody(vmath.Vec2{}, 1, 0))}

	assert.Equal(t, OutcomeRefused, a.Toggle(s, vmath.Vec2{}))
	assert.False(t, s.IsAttached())
}

func jointIDs(s *State) []uint32 {
	out := make([]uint32, len(s.Joints))
	for i, j := range s.Joints {
		out[i] = uint32(j)
	}
	return out
}
