package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/stardrift/internal/games/stardrift"
	"github.com/vovakirdan/stardrift/internal/storage"
)

var (
	flagScoresLimit int
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the top runs recorded in the scores database, along with
totals over every run.

Examples:
  stardrift scores
  stardrift scores --limit 25
  stardrift scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(stardrift.ID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All runs deleted.")
		return
	}

	runs, err := store.TopRuns(stardrift.ID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Runs - Star Drift")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'stardrift play' to set the first score!")
		return
	}

	fmt.Printf("  %-4s  %-6s  %-9s  %-5s  %-9s  %s\n", "Rank", "Score", "Collected", "Level", "Ended by", "Date")
	fmt.Printf("  %-4s  %-6s  %-9s  %-5s  %-9s  %s\n", "----", "-----", "---------", "-----", "--------", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-6d  %-9d  %-5d  %-9s  %s\n",
			i+1, r.Score, r.Collected, r.Level, r.Cause, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.HighScore(stardrift.ID); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	if stats, err := store.GameStats(stardrift.ID); err == nil {
		fmt.Printf("Runs: %d  Avg: %.1f  Collected: %d  Best level: %d  Hit debris: %d\n",
			stats.RunsCount, stats.AvgScore, stats.TotalCollected, stats.BestLevel, stats.Collisions)
	}
}
