package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"

	"robot_arena/internal/combat"
)

func TestRecorder_Totals(t *testing.T) {
	rec, err := NewRecorder(noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)

	events := []combat.Event{
		{Type: combat.EvFire, Actor: "A", Payload: map[string]any{"kind": "SemiAutoBot"}},
		{Type: combat.EvHit, Actor: "A", Target: "B"},
		{Type: combat.EvMiss, Actor: "A", Target: "B"},
		{Type: combat.EvShielded, Actor: "A", Target: "C"},
		{Type: combat.EvDestroyed, Actor: "A", Target: "B"},
		{Type: combat.EvUpgrade, Actor: "A", Payload: map[string]any{"variant": "JumpBot"}},
		{Type: combat.EvFire, Actor: "C"},
		{Type: combat.EvSelfDestruct, Actor: "C"},
		{Type: combat.EvRespawn, Actor: "B"},
		{Type: combat.EvMove, Actor: "B"},
	}
	for _, ev := range events {
		rec.Observe(ev)
	}

	assert.Equal(t, Totals{
		Shots:         2,
		Hits:          2,
		Misses:        1,
		Shielded:      1,
		Kills:         1,
		SelfDestructs: 1,
		Respawns:      1,
		Upgrades:      1,
	}, rec.Totals())
}

func TestRecorder_GlobalMeter(t *testing.T) {
	rec, err := NewRecorder(nil)
	require.NoError(t, err)
	rec.Observe(combat.Event{Type: combat.EvFire, Actor: "A"})
	assert.Equal(t, int64(1), rec.Totals().Shots)
}
