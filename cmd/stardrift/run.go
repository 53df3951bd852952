package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/stardrift/internal/core"
	"github.com/vovakirdan/stardrift/internal/engine"
	"github.com/vovakirdan/stardrift/internal/games/stardrift"
	"github.com/vovakirdan/stardrift/internal/storage"
)

var (
	flagDuration    time.Duration
	flagAutoRestart bool
	flagRecord      bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a headless autopilot session",
	Long: `Run the simulation on the wall clock without a screen. The built-in
autopilot steers the craft and every emitted snapshot is logged.

Examples:
  stardrift run
  stardrift run --duration 2m --auto-restart
  stardrift run --seed 42 --difficulty hard --record`,
	Args: cobra.NoArgs,
	Run:  runHeadless,
}

func init() {
	runCmd.Flags().DurationVar(&flagDuration, "duration", 30*time.Second, "How long to run (0 = until interrupted)")
	runCmd.Flags().BoolVar(&flagAutoRestart, "auto-restart", false, "Start a new run after each game over")
	runCmd.Flags().BoolVar(&flagRecord, "record", false, "Save finished runs to the scores database")
	runCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	runCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runHeadless(cmd *cobra.Command, args []string) {
	stardrift.SetConfigPath(flagConfig)
	stardrift.SetDifficultyPreset(flagDifficulty)

	logger := newLogger("stardrift-run")

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var store *storage.Store
	if flagRecord {
		s, err := storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open scores database", "error", err)
		} else {
			store = s
			defer store.Close()
		}
	}

	rules := stardrift.LoadRules()
	eng := engine.New(engine.Options{
		TickRate:    flagFPS,
		Seed:        seed,
		Rules:       rules,
		Autopilot:   true,
		AutoRestart: flagAutoRestart,
		Logger:      logger,
	})

	var last core.Snapshot
	eng.Observe(func(snap core.Snapshot) {
		logger.Info("snapshot",
			"score", snap.Score,
			"level", snap.Level,
			"progress", snap.Progress,
			"missed", snap.Missed,
			"game_over", snap.GameOver,
		)
		if snap.GameOver && !last.GameOver && store != nil {
			run := storage.RunFromSnapshot(stardrift.ID, snap, causeOf(snap, rules))
			if _, err := store.SaveRun(run); err != nil {
				logger.Warn("could not save run", "error", err)
			}
		}
		last = snap
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if flagDuration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, flagDuration)
		defer cancel()
	}

	logger.Info("starting headless run", "seed", seed, "fps", flagFPS, "duration", flagDuration)
	if err := eng.Run(ctx); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		fmt.Fprintf(os.Stderr, "Error running engine: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Final: score %d, level %d, collected %d\n", last.Score, last.Level, last.Collected())
}

// causeOf infers why a run ended from its final snapshot.
func causeOf(snap core.Snapshot, r stardrift.Rules) string {
	if snap.Missed >= r.MaxMissed {
		return string(stardrift.CauseMissed)
	}
	return string(stardrift.CauseCollision)
}
