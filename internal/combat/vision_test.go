package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLook_MooreRadius(t *testing.T) {
	a := bot(GenericKind, "Alpha", 1, 1)
	b := bot(GenericKind, "Bravo", 1, 3)
	battle, events := scripted(10, 5, nil, a, b)

	assert.Empty(t, battle.Look(a))
	assert.False(t, a.SawTarget)
	assert.Empty(t, battle.Look(b))
	assert.Equal(t, 2, countType(*events, EvSeeNone))

	c := bot(GenericKind, "Charlie", 2, 2)
	battle.Robots = append(battle.Robots, c)
	assert.Equal(t, []*Robot{a, b}, battle.Look(c))
	assert.True(t, c.SawTarget)
}

func TestLook_NeverSeesSelfOrDead(t *testing.T) {
	a := bot(VisionScout.String(), "Alpha", 0, 0)
	b := bot(GenericKind, "Bravo", 1, 0)
	c := bot(GenericKind, "Charlie", 5, 5)
	c.Alive = false
	battle, _ := scripted(10, 10, nil, a, b, c)
	battle.Turn = 1

	seen := battle.Look(a)
	assert.Equal(t, []*Robot{b}, seen)
	assert.NotContains(t, seen, a)
	assert.NotContains(t, seen, c)
}

func TestLook_HiddenRobotsInvisible(t *testing.T) {
	scout := bot(VisionScout.String(), "Scout", 0, 0)
	near := bot(GenericKind, "Near", 1, 1)
	near.Hidden = true
	far := bot(GenericKind, "Far", 7, 7)
	far.Hidden = true
	battle, _ := scripted(10, 10, nil, scout, near, far)
	battle.Turn = 1

	assert.Empty(t, battle.Look(scout))
	assert.False(t, scout.SawTarget)
}

func TestLook_ScoutSeesEveryoneOncePerTurn(t *testing.T) {
	scout := bot(VisionScout.String(), "Scout", 0, 0)
	b := bot(GenericKind, "Bravo", 9, 9)
	c := bot(GenericKind, "Charlie", 1, 0)
	battle, events := scripted(10, 10, nil, scout, b, c)
	battle.Turn = 1

	first := battle.Look(scout)
	second := battle.Look(scout)
	assert.Equal(t, []*Robot{b, c}, first)
	assert.Equal(t, first, second)
	assert.Equal(t, ScoutCharges-1, scout.ScansLeft)
	assert.Equal(t, 1, countType(*events, EvScan))

	battle.Turn = 2
	battle.Look(scout)
	assert.Equal(t, ScoutCharges-2, scout.ScansLeft)
}

func TestLook_ScoutWithoutScansFallsBackToMoore(t *testing.T) {
	scout := bot(VisionScout.String(), "Scout", 0, 0)
	scout.ScansLeft = 0
	far := bot(GenericKind, "Far", 9, 9)
	near := bot(GenericKind, "Near", 0, 1)
	battle, events := scripted(10, 10, nil, scout, far, near)
	battle.Turn = 1

	assert.Equal(t, []*Robot{near}, battle.Look(scout))
	assert.Equal(t, 0, scout.ScansLeft)
	assert.Zero(t, countType(*events, EvScan))
}

func TestLook_TrackAcquiresOnceAndKeepsOrder(t *testing.T) {
	tracker := bot(VisionTrack.String(), "Tracker", 5, 5)
	b := bot(GenericKind, "Bravo", 0, 0)
	c := bot(GenericKind, "Charlie", 9, 0)
	d := bot(GenericKind, "Delta", 0, 9)
	e := bot(GenericKind, "Echo", 9, 9)
	f := bot(GenericKind, "Foxtrot", 5, 6)
	battle, events := scripted(10, 10, nil, tracker, b, c, d, e, f)

	seen := battle.Look(tracker)
	require.Len(t, tracker.Tracked, TrackLimit)
	assert.Equal(t, []*Robot{b, c, d}, tracker.Tracked)
	// Tracked robots come first, then the Moore neighbor.
	assert.Equal(t, []*Robot{b, c, d, f}, seen)

	c.Hidden = true
	d.Alive = false
	e.Pos = Pos{X: 4, Y: 4}
	seen = battle.Look(tracker)
	assert.Equal(t, []*Robot{b, e, f}, seen)
	assert.Equal(t, []*Robot{b, c, d}, tracker.Tracked)
	assert.Equal(t, 1, countType(*events, EvTrack))
}

func TestLook_Idempotent(t *testing.T) {
	tracker := bot(VisionTrack.String(), "Tracker", 2, 2)
	b := bot(GenericKind, "Bravo", 3, 3)
	c := bot(GenericKind, "Charlie", 8, 1)
	battle, _ := scripted(10, 10, nil, tracker, b, c)
	battle.Turn = 1

	first := battle.Look(tracker)
	tracked := append([]*Robot(nil), tracker.Tracked...)
	second := battle.Look(tracker)
	assert.Equal(t, first, second)
	assert.Equal(t, tracked, tracker.Tracked)
}

func TestThink_HideCharges(t *testing.T) {
	h := bot(MoveHide.String(), "Hider", 0, 0)
	battle, events := scripted(5, 5, nil, h)

	for i := 0; i < HideCharges; i++ {
		battle.Think(h)
		assert.True(t, h.Hidden)
		battle.Move(h)
		assert.True(t, h.Hidden, "hidden survives the move phase of the turn it was set")
	}
	assert.Equal(t, 0, h.HidesLeft)

	battle.Think(h)
	battle.Move(h)
	assert.False(t, h.Hidden)
	assert.Equal(t, HideCharges, countType(*events, EvHide))
}
