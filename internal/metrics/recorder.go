package metrics

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"robot_arena/internal/combat"
)

const instrumentationName = "robot_arena/internal/metrics"

// Meter returns the arena meter from the global provider (no-op unless one
// is installed).
func Meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// Totals is a plain tally of what the recorder has counted.
type Totals struct {
	Shots         int64 `json:"shots"`
	Hits          int64 `json:"hits"`
	Misses        int64 `json:"misses"`
	Shielded      int64 `json:"shielded"`
	Kills         int64 `json:"kills"`
	SelfDestructs int64 `json:"self_destructs"`
	Respawns      int64 `json:"respawns"`
	Upgrades      int64 `json:"upgrades"`
}

// Recorder turns the combat event stream into counters.
type Recorder struct {
	shots         metric.Int64Counter
	hits          metric.Int64Counter
	misses        metric.Int64Counter
	kills         metric.Int64Counter
	selfDestructs metric.Int64Counter
	respawns      metric.Int64Counter
	upgrades      metric.Int64Counter

	mu     sync.Mutex
	totals Totals
}

func NewRecorder(m metric.Meter) (*Recorder, error) {
	if m == nil {
		m = Meter()
	}
	r := &Recorder{}
	var err error
	counter := func(dst *metric.Int64Counter, name, desc string) {
		if err != nil {
			return
		}
		*dst, err = m.Int64Counter(name, metric.WithDescription(desc))
		if err != nil {
			err = fmt.Errorf("creating %s counter: %w", name, err)
		}
	}
	counter(&r.shots, "arena.shots", "Shells fired")
	counter(&r.hits, "arena.hits", "Shot trials that landed, shielded or not")
	counter(&r.misses, "arena.misses", "Shot trials that missed")
	counter(&r.kills, "arena.kills", "Robots destroyed by gunfire")
	counter(&r.selfDestructs, "arena.self_destructs", "Robots that ran out of shells")
	counter(&r.respawns, "arena.respawns", "Robots returned to the battlefield")
	counter(&r.upgrades, "arena.upgrades", "Upgrades granted on kill")
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Observe counts one event. Its signature fits combat.Options.Emit.
func (r *Recorder) Observe(ev combat.Event) {
	ctx := context.Background()
	actor := metric.WithAttributes(attribute.String("robot", ev.Actor))

	r.mu.Lock()
	defer r.mu.Unlock()
	switch ev.Type {
	case combat.EvFire:
		r.totals.Shots++
		kind, _ := ev.Payload["kind"].(string)
		if kind == "" {
			kind = combat.GenericKind
		}
		r.shots.Add(ctx, 1, metric.WithAttributes(attribute.String("robot", ev.Actor), attribute.String("kind", kind)))
	case combat.EvHit:
		r.totals.Hits++
		r.hits.Add(ctx, 1, actor)
	case combat.EvShielded:
		r.totals.Hits++
		r.totals.Shielded++
		r.hits.Add(ctx, 1, metric.WithAttributes(attribute.String("robot", ev.Actor), attribute.Bool("shielded", true)))
	case combat.EvMiss:
		r.totals.Misses++
		r.misses.Add(ctx, 1, actor)
	case combat.EvDestroyed:
		r.totals.Kills++
		r.kills.Add(ctx, 1, actor)
	case combat.EvSelfDestruct:
		r.totals.SelfDestructs++
		r.selfDestructs.Add(ctx, 1, actor)
	case combat.EvRespawn:
		r.totals.Respawns++
		r.respawns.Add(ctx, 1, actor)
	case combat.EvUpgrade:
		r.totals.Upgrades++
		variant, _ := ev.Payload["variant"].(string)
		r.upgrades.Add(ctx, 1, metric.WithAttributes(attribute.String("robot", ev.Actor), attribute.String("variant", variant)))
	}
}

// Totals returns a copy of the tallies so far.
func (r *Recorder) Totals() Totals {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.totals
}
