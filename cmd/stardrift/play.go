package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/stardrift/internal/core"
	"github.com/vovakirdan/stardrift/internal/games/stardrift"
	"github.com/vovakirdan/stardrift/internal/platform/tui"
	"github.com/vovakirdan/stardrift/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Open the start screen and play Star Drift.

Controls:
  WASD/Arrows  - Thrust
  P            - Pause
  R            - Restart (after game over)
  Esc/B        - Back to the start screen
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower, sparser debris
  normal - Default tuning
  hard   - Faster, denser debris
  fixed  - Debris speed does not grow with level

Examples:
  stardrift play
  stardrift play --difficulty easy
  stardrift play --config ./my-stardrift.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	stardrift.SetConfigPath(flagConfig)
	stardrift.SetDifficultyPreset(flagDifficulty)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	logger := newLogger("stardrift")

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	best, err := storage.OpenBest(stardrift.ID, logger)
	if err != nil {
		logger.Warn("could not open best score store", "error", err)
		best = storage.NewBestStore(nil, logger)
	}

	runErr := tui.Run(store, best, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

func newLogger(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}
