// stardrift is a terminal arcade game: steer a craft through drifting debris
// and collect the resources that float past.
//
// Usage:
//
//	stardrift play            - Play in this terminal
//	stardrift serve           - Start SSH server for remote play
//	stardrift scores          - Show the best runs
//	stardrift run             - Run a headless autopilot session
//	stardrift list            - List registered games
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.stardrift/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/stardrift/internal/games/stardrift"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stardrift",
	Short: "Star Drift - dodge debris, collect resources",
	Long: `Star Drift is a real-time arcade game for the terminal. Thrust your
craft around the field, avoid the debris and pick up the resources
drifting past. One hit ends the run, and so do three missed resources.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View the best runs
  run      - Headless autopilot session
  list     - Show registered games

Examples:
  stardrift play
  stardrift play --difficulty hard
  stardrift serve --ssh :2222
  stardrift scores
  stardrift run --duration 30s --seed 7`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.stardrift/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(runCmd)
}
