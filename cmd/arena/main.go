package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"robot_arena/internal/combat"
	"robot_arena/internal/config"
	"robot_arena/internal/logging"
	"robot_arena/internal/metrics"
	"robot_arena/internal/render"
	"robot_arena/internal/util"
)

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("arena", pflag.ContinueOnError)
	fs.String("config", ".", "directory holding an optional arena.yaml")
	fs.String("setup", "setup.txt", "setup file (.txt roster or .yaml scenario)")
	fs.Int64("seed", 0, "random seed, 0 picks one from the clock")
	fs.String("transcript", "log.txt", "transcript file for a single run")
	fs.String("log-level", "info", "diagnostics level: trace|debug|info|warn|error")
	fs.String("log-file", "", "also write JSON diagnostics to this file")
	fs.String("events", "", "write the result with its full event list to this JSON file")
	fs.Int("runs", 1, "number of sequential runs; more than one writes a summary instead of a transcript")
	fs.String("summary", "summary.json", "summary file for batch runs")
	fs.Bool("quiet", false, "do not echo the transcript to stdout")
	fs.Bool("narrate", true, "narrate every action in the transcript")
	fs.Int("hit-chance", util.DefaultHitChance, "percent chance a shot lands")
	fs.String("upgrade-policy", "any-kill", "which kills earn an upgrade: any-kill|default-kill")
	fs.Int("profile-health", combat.DefaultProfile.Health, "starting health")
	fs.Int("profile-ammo", combat.DefaultProfile.Ammo, "starting shells")
	fs.Int("profile-lives", combat.DefaultProfile.Lives, "extra lives")
	return fs
}

func main() {
	boot := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Timestamp().Logger()

	fs := newFlagSet()
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		boot.Error().Err(err).Msg("bad arguments")
		os.Exit(2)
	}
	configDir, _ := fs.GetString("config")

	s, err := config.LoadSettings(viper.New(), configDir, fs)
	if err != nil {
		boot.Error().Err(err).Msg("configuration error")
		os.Exit(1)
	}

	var logFile io.Writer
	if s.LogFile != "" {
		f, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			boot.Error().Err(err).Str("path", s.LogFile).Msg("cannot open log file")
			os.Exit(1)
		}
		defer f.Close()
		logFile = f
	}
	logger := logging.New(s.LogLevel, os.Stderr, logFile)

	if err := run(s, logger); err != nil {
		msg := "arena failed"
		switch {
		case errors.Is(err, config.ErrConfig), errors.Is(err, combat.ErrPlacement):
			msg = "configuration error"
		case errors.Is(err, combat.ErrIntegrity):
			msg = "integrity violation"
		}
		logger.Error().Err(err).Msg(msg)
		os.Exit(1)
	}
}

func run(s config.Settings, logger zerolog.Logger) error {
	setup, err := config.Load(s.Setup, s.Base())
	if err != nil {
		return err
	}
	policy, err := combat.ParseUpgradePolicy(s.UpgradePolicy)
	if err != nil {
		return fmt.Errorf("%w: %v", config.ErrConfig, err)
	}
	seed := s.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info().
		Str("setup", s.Setup).
		Int("width", setup.Grid.Width).Int("height", setup.Grid.Height).
		Int("steps", setup.Steps).Int("robots", len(setup.Robots)).
		Int64("seed", seed).Str("policy", policy.String()).
		Msg("setup loaded")

	rec, err := metrics.NewRecorder(nil)
	if err != nil {
		return err
	}
	if s.Runs > 1 {
		return runBatch(s, setup, policy, seed, rec, logger)
	}
	return runSingle(s, setup, policy, seed, rec, logger)
}

func runSingle(s config.Settings, setup *config.Setup, policy combat.UpgradePolicy, seed int64, rec *metrics.Recorder, logger zerolog.Logger) error {
	f, err := os.Create(s.Transcript)
	if err != nil {
		return fmt.Errorf("%w: create transcript: %v", config.ErrConfig, err)
	}
	defer f.Close()
	var w io.Writer = f
	if !s.Quiet {
		w = io.MultiWriter(os.Stdout, f)
	}
	tr := render.New(w, s.Narrate)

	runID := uuid.NewString()
	b, err := combat.NewBattle(setup, s.Base(), combat.Options{
		Dice:     util.NewDice(util.New(seed), s.HitChance),
		Policy:   policy,
		Log:      &logger,
		Emit:     combat.Tee(tr.Event, rec.Observe),
		Renderer: tr,
		Record:   s.Events != "",
		RunID:    runID,
		Seed:     seed,
	})
	if err != nil {
		return err
	}
	if err := tr.Header(runID, seed, b.Field, len(b.Robots)); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}
	res, runErr := b.Run()
	if err := tr.Footer(res); err != nil && runErr == nil {
		runErr = fmt.Errorf("write transcript: %w", err)
	}
	if s.Events != "" {
		if err := os.WriteFile(s.Events, combat.MarshalPretty(res), 0644); err != nil {
			logger.Error().Err(err).Str("path", s.Events).Msg("cannot write events")
		}
	}
	if runErr != nil {
		return runErr
	}

	t := rec.Totals()
	logger.Info().
		Str("run", runID).Int("turns", res.Turns).Str("winner", res.Winner).
		Int64("shots", t.Shots).Int64("kills", t.Kills).Int64("respawns", t.Respawns).
		Str("transcript", s.Transcript).
		Msg("single run finished")
	return nil
}
