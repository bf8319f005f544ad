package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"robot_arena/internal/combat"
)

func robot(kind, name string, sym rune, x, y int) *combat.Robot {
	r, _ := combat.NewRobot(kind, name, sym, combat.Pos{X: x, Y: y}, combat.DefaultProfile)
	return r
}

func TestGrid(t *testing.T) {
	a := robot("GenericRobot", "Kidd", 'A', 0, 0)
	b := robot("HideBot", "Shade", 'B', 2, 1)
	b.Hidden = true
	c := robot("JumpBot", "Jet", 'C', 3, 1)
	d := robot("ScoutBot", "Gone", 'D', 1, 1)
	d.Alive = false

	got := Grid(combat.Battlefield{Width: 4, Height: 2}, []*combat.Robot{a, b, c, d})

	want := "+----+\n" +
		"|A...|\n" +
		"|...C|\n" +
		"+----+\n"
	assert.Equal(t, want, got)
}

func TestStatusLine(t *testing.T) {
	a := robot("JumpBot", "Kidd", 'A', 3, 6)
	a.JumpsLeft = 2
	a.Ammo = 9
	a.Kills = 1
	assert.Equal(t, "Kidd at (3,6) shells=9 lives=2 kills=1 | Upgrades: JumpBot(2)", StatusLine(a))

	g := robot("GenericRobot", "Plain", 'B', 0, 0)
	g.SelfDestruct()
	assert.Equal(t, "Plain at (0,0) shells=10 lives=2 kills=0 | Upgrades: none [DEAD]", StatusLine(g))

	s := robot("ScoutBot", "Alien", 'C', 1, 2)
	s.Lives = 0
	assert.Contains(t, StatusLine(s), "Upgrades: ScoutBot(3)")
}

func TestTranscript_RendersTurn(t *testing.T) {
	var buf bytes.Buffer
	tr := New(&buf, true)
	field := combat.Battlefield{Width: 3, Height: 1}
	a := robot("GenericRobot", "Kidd", 'A', 0, 0)
	robots := []*combat.Robot{a}

	require.NoError(t, tr.Header("run-1", 9, field, 1))
	require.NoError(t, tr.Board(1, field, robots))
	tr.Event(combat.Event{Turn: 1, Type: combat.EvMove, Actor: "Kidd", Payload: map[string]any{"x": 1, "y": 0}})
	tr.Event(combat.Event{Turn: 1, Type: combat.EvTurnStart})
	require.NoError(t, tr.Status(1, robots))
	require.NoError(t, tr.Footer(combat.Result{Turns: 1, Winner: "Kidd"}))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "=== run run-1 seed=9 battlefield=3x1 robots=1 ===\n"))
	assert.Contains(t, out, "Turn 1\n+---+\n|A..|\n+---+\n")
	assert.Contains(t, out, "  Kidd moves to (1,0)\n")
	assert.Contains(t, out, "Kidd at (0,0) shells=10 lives=2 kills=0 | Upgrades: none\n")
	assert.Contains(t, out, "Game over after 1 turns: Kidd wins")
}

func TestTranscript_QuietNarration(t *testing.T) {
	var buf bytes.Buffer
	tr := New(&buf, false)
	tr.Event(combat.Event{Type: combat.EvMove, Actor: "Kidd", Payload: map[string]any{"x": 1, "y": 0}})
	assert.Empty(t, buf.String())
}

type failWriter struct{ n int }

func (f *failWriter) Write(p []byte) (int, error) {
	f.n++
	return 0, errors.New("disk full")
}

func TestTranscript_StickyError(t *testing.T) {
	w := &failWriter{}
	tr := New(w, true)
	field := combat.Battlefield{Width: 1, Height: 1}

	assert.Error(t, tr.Header("x", 1, field, 0))
	assert.Error(t, tr.Board(1, field, nil))
	assert.Error(t, tr.Footer(combat.Result{}))
	assert.Equal(t, 1, w.n)
}

func TestNarrate(t *testing.T) {
	tests := []struct {
		ev   combat.Event
		want string
	}{
		{combat.Event{Type: combat.EvFire, Actor: "A", Target: "B", Payload: map[string]any{"shots": 3, "ammo": 4}}, "A fires 3 rounds at B (shells left 4)"},
		{combat.Event{Type: combat.EvFire, Actor: "A", Target: "B", Payload: map[string]any{"shots": 1, "ammo": 4}}, "A fires at B (shells left 4)"},
		{combat.Event{Type: combat.EvHit, Actor: "A", Target: "B", Payload: map[string]any{"health": 0, "outcome": "killed"}}, "A hits B, target down"},
		{combat.Event{Type: combat.EvTrack, Actor: "A", Payload: map[string]any{"tracked": []string{"B", "C"}}}, "A starts tracking B, C"},
		{combat.Event{Type: combat.EvUpgrade, Actor: "A", Payload: map[string]any{"category": "vision", "variant": "ScoutBot", "count": 2}}, "A upgrades vision to ScoutBot (2/3)"},
		{combat.Event{Type: combat.EvSelfDestruct, Actor: "A"}, "A is out of shells and self-destructs"},
		{combat.Event{Type: combat.EvSee, Actor: "A", Target: "B"}, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Narrate(tt.ev), tt.ev.Type)
	}
}
