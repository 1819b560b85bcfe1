package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/forestrun/internal/registry"
	"github.com/vovakirdan/forestrun/internal/storage"
)

var (
	flagScoresLimit int
	flagRecentRuns  int
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores and recent runs",
	Long: `Display the top scores, totals and the latest runs for a mode
(default: forestrun).

Examples:
  forestrun scores
  forestrun scores forestrun_logs --runs 20
  forestrun scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of top scores to show")
	scoresCmd.Flags().IntVar(&flagRecentRuns, "runs", 5, "Number of recent runs to show (0 to hide)")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores and runs for the mode")
}

func runScores(cmd *cobra.Command, args []string) {
	mode, err := modeArg(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(mode); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Printf("Cleared scores and runs for %s.\n", game.Title())
		return
	}

	if err := printScores(store, mode, game.Title()); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}
	if flagRecentRuns > 0 {
		if err := printRuns(store, mode); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		}
	}
}

func printScores(store *storage.Store, mode, title string) error {
	scores, err := store.TopScores(mode, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'forestrun play %s' to set the first high score!\n", mode)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(mode)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d   Runs: %d   Average: %.1f   Most laps: %d\n",
		stats.HighScore, stats.GamesCount, stats.AvgScore, stats.BestLaps)
	return nil
}

func printRuns(store *storage.Store, mode string) error {
	runs, err := store.RecentRuns(mode, flagRecentRuns)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("Recent runs:")
	fmt.Printf("  %-16s  %-6s  %-4s  %-8s  %-4s  %s\n", "Date", "Score", "Laps", "Time", "Hits", "Seed")
	for _, r := range runs {
		fmt.Printf("  %-16s  %-6d  %-4d  %-8s  %-4d  %d\n",
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.Score, r.Laps, r.Duration(flagFPS).Round(time.Second), r.LivesLost, r.Seed)
	}
	return nil
}
