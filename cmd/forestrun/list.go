package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/forestrun/internal/registry"
	"github.com/vovakirdan/forestrun/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game modes",
	Long:  `Shows every registered game mode with its best stored score.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No modes available.")
		return
	}

	// Best scores are optional; a missing database just leaves the column empty
	var stats map[string]*storage.GameStats
	if store, err := storage.Open(flagDBPath); err == nil {
		stats, _ = store.GetAllGamesStats()
		store.Close()
	}

	fmt.Println("Game modes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "ID", "Best", "Description")
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "--", "----", "-----------")

	for _, g := range games {
		best := "-"
		if s, ok := stats[g.ID]; ok {
			best = fmt.Sprintf("%d", s.HighScore)
		}
		fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, g.ID, best, g.Description)
	}

	fmt.Println()
	fmt.Println("Run 'forestrun play <id>' to play a mode.")
}
