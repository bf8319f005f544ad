package combat

import (
	"encoding/json"
	"fmt"
)

// RobotSummary is a robot's standing at the end of a run.
type RobotSummary struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Kind     string `json:"kind"`
	Alive    bool   `json:"alive"`
	Lives    int    `json:"lives"`
	Kills    int    `json:"kills"`
	Deaths   int    `json:"deaths"`
	Upgrades int    `json:"upgrades"`
	Movement string `json:"movement,omitempty"`
	Shooting string `json:"shooting,omitempty"`
	Vision   string `json:"vision,omitempty"`
}

type Result struct {
	RunID  string         `json:"run_id,omitempty"`
	Seed   int64          `json:"seed"`
	Turns  int            `json:"turns"`
	Winner string         `json:"winner,omitempty"`
	Robots []RobotSummary `json:"robots"`
	Events []Event        `json:"events,omitempty"`
}

// Draw reports a run that ended without a single survivor.
func (r Result) Draw() bool { return r.Winner == "" }

// Step plays one full turn: board, respawn, every live robot's cycle in
// roster order, death collection, status.
func (b *Battle) Step() error {
	b.Turn++
	b.emit(Event{Type: EvTurnStart, Payload: map[string]any{"alive": b.AliveCount(), "queued": len(b.queue)}})

	if err := b.CheckIntegrity(); err != nil {
		return err
	}
	if b.Renderer != nil {
		if err := b.Renderer.Board(b.Turn, b.Field, b.Robots); err != nil {
			return fmt.Errorf("render board: %w", err)
		}
	}

	b.respawnNext()

	for _, r := range b.Robots {
		if !r.Alive {
			continue
		}
		b.Think(r)
		b.Look(r)
		if r.SawTarget {
			b.Fire(r)
		}
		b.Move(r)
	}

	b.collectDead()

	if err := b.CheckIntegrity(); err != nil {
		return err
	}
	if b.Renderer != nil {
		if err := b.Renderer.Status(b.Turn, b.Robots); err != nil {
			return fmt.Errorf("render status: %w", err)
		}
	}
	return nil
}

// respawnNext brings back the head of the queue on a random free cell. A full
// field leaves it queued for the next turn.
func (b *Battle) respawnNext() {
	if len(b.queue) == 0 {
		return
	}
	r := b.queue[0]
	free := b.Field.freeCells(b.Robots)
	if len(free) == 0 {
		b.Log.Debug().Str("robot", r.Name).Int("turn", b.Turn).Msg("respawn blocked, field is full")
		b.emit(Event{Type: EvRespawnBlocked, Actor: r.Name})
		return
	}
	b.queue = b.queue[1:]
	r.Respawn(free[b.Dice.Pick(len(free))])
	b.emit(Event{Type: EvRespawn, Actor: r.Name, Payload: map[string]any{
		"x": r.Pos.X, "y": r.Pos.Y, "lives": r.Lives,
	}})
}

// collectDead queues robots that died this turn and still have a life to
// spend. The rest leave the game for good.
func (b *Battle) collectDead() {
	for _, r := range b.Robots {
		if r.Alive || r.queued || r.eliminated {
			continue
		}
		if r.Lives > 0 {
			r.Lives--
			r.queued = true
			b.queue = append(b.queue, r)
			b.emit(Event{Type: EvQueued, Actor: r.Name, Payload: map[string]any{"lives": r.Lives}})
			continue
		}
		r.eliminated = true
		b.emit(Event{Type: EvEliminated, Actor: r.Name})
	}
}

// Over reports whether the run has hit its turn limit or is down to one
// robot with nobody waiting to respawn.
func (b *Battle) Over() bool {
	if b.MaxTurns > 0 && b.Turn >= b.MaxTurns {
		return true
	}
	return b.AliveCount() <= 1 && len(b.queue) == 0
}

// Run steps until Over. The partial result is returned alongside any error.
func (b *Battle) Run() (Result, error) {
	b.Log.Debug().Int("robots", len(b.Robots)).Int("maxTurns", b.MaxTurns).Int64("seed", b.Seed).Msg("battle start")
	for !b.Over() {
		if err := b.Step(); err != nil {
			b.Log.Error().Err(err).Int("turn", b.Turn).Msg("battle aborted")
			return b.Result(), err
		}
	}
	res := b.Result()
	b.Log.Debug().Int("turns", res.Turns).Str("winner", res.Winner).Msg("battle over")
	return res, nil
}

func (b *Battle) Result() Result {
	res := Result{
		RunID:  b.RunID,
		Seed:   b.Seed,
		Turns:  b.Turn,
		Events: b.events,
	}
	if b.AliveCount() == 1 && len(b.queue) == 0 {
		for _, r := range b.Robots {
			if r.Alive {
				res.Winner = r.Name
			}
		}
	}
	for _, r := range b.Robots {
		res.Robots = append(res.Robots, RobotSummary{
			Name:     r.Name,
			Symbol:   string(r.Symbol),
			Kind:     r.Kind,
			Alive:    r.Alive,
			Lives:    r.Lives,
			Kills:    r.Kills,
			Deaths:   r.Deaths,
			Upgrades: r.UpgradeCount,
			Movement: r.Movement.String(),
			Shooting: r.Shooting.String(),
			Vision:   r.Vision.String(),
		})
	}
	return res
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
