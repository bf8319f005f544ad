package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"robot_arena/internal/combat"
	"robot_arena/internal/config"
	"robot_arena/internal/metrics"
	"robot_arena/internal/util"
)

type batchSummary struct {
	BatchID  string             `json:"batch_id"`
	Runs     int                `json:"runs"`
	Seed     int64              `json:"seed"`
	Policy   string             `json:"policy"`
	Wins     map[string]int     `json:"wins"`
	WinRate  map[string]float64 `json:"win_rate"`
	Draws    int                `json:"draws"`
	AvgTurns float64            `json:"avg_turns"`
	Kills    map[string]int     `json:"kills"`
	Totals   metrics.Totals     `json:"totals"`
}

// runBatch plays s.Runs games one after another with seeds seed, seed+1, ...
func runBatch(s config.Settings, setup *config.Setup, policy combat.UpgradePolicy, seed int64, rec *metrics.Recorder, logger zerolog.Logger) error {
	sum := batchSummary{
		BatchID: uuid.NewString(),
		Runs:    s.Runs,
		Seed:    seed,
		Policy:  policy.String(),
		Wins:    map[string]int{},
		WinRate: map[string]float64{},
		Kills:   map[string]int{},
	}
	turns := 0
	for i := 0; i < s.Runs; i++ {
		runSeed := seed + int64(i)
		b, err := combat.NewBattle(setup, s.Base(), combat.Options{
			Dice:   util.NewDice(util.New(runSeed), s.HitChance),
			Policy: policy,
			Log:    &logger,
			Emit:   rec.Observe,
			RunID:  fmt.Sprintf("%s/%d", sum.BatchID, i),
			Seed:   runSeed,
		})
		if err != nil {
			return err
		}
		res, err := b.Run()
		if err != nil {
			return fmt.Errorf("run %d (seed %d): %w", i, runSeed, err)
		}
		turns += res.Turns
		if res.Draw() {
			sum.Draws++
		} else {
			sum.Wins[res.Winner]++
		}
		for _, r := range res.Robots {
			sum.Kills[r.Name] += r.Kills
		}
		logger.Debug().Int("run", i).Int64("seed", runSeed).Int("turns", res.Turns).Str("winner", res.Winner).Msg("run finished")
	}
	for name, w := range sum.Wins {
		sum.WinRate[name] = float64(w) / float64(s.Runs)
	}
	sum.AvgTurns = float64(turns) / float64(s.Runs)
	sum.Totals = rec.Totals()

	if err := os.WriteFile(s.Summary, combat.MarshalPretty(sum), 0644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	logger.Info().Int("runs", s.Runs).Int("draws", sum.Draws).Float64("avgTurns", sum.AvgTurns).Str("summary", s.Summary).Msg("batch finished")
	return nil
}
