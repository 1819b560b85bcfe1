package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/forestrun/internal/games/forestrun"
	"github.com/vovakirdan/forestrun/internal/platform/tui"
	"github.com/vovakirdan/forestrun/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start a run of the given mode (default: forestrun).

Controls:
  Left/A/H   - Move left
  Right/D/L  - Move right
  Click      - Move toward the clicked half of the screen
  P          - Pause
  R/Space    - Restart (after game over)
  Esc/B      - Leave (while paused or after game over)
  Ctrl+S     - Save a text screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slow logs, five lives, long immunity after a hit
  normal - Default pace
  hard   - Fast logs, two lives, short immunity
  fixed  - Default pace that never speeds up between laps

Examples:
  forestrun play
  forestrun play forestrun_logs
  forestrun play --difficulty hard
  forestrun play --config ./my-forest.yaml --log-file run.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	mode, err := modeArg(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	events, logFile, err := openEventLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	cfg := terminalConfig()

	runErr := tui.Run(game, store, events, cfg)

	if g, ok := game.(*forestrun.Game); ok && g.ConfigError() != nil {
		fmt.Fprintf(os.Stderr, "Warning: config not used, played with defaults: %v\n", g.ConfigError())
	}

	// Close before a potential exit
	if store != nil {
		store.Close()
	}
	logFile.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
