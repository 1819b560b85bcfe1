// forestrun is an endless forest runner for the terminal.
//
// Usage:
//
//	forestrun list              - List game modes
//	forestrun play [mode]       - Play a mode (default: forestrun)
//	forestrun menu              - Pick a mode interactively
//	forestrun serve             - Start SSH server for remote play
//	forestrun scores [mode]     - Show high scores and recent runs
//	forestrun simulate [mode]   - Run headless with the autopilot
//	forestrun config            - Print or write the default config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.forestrun/scores.db)
//	--config <path>       - Load game config from a YAML file
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-file <path>     - Append every game event to a log file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "forestrun",
	Short: "Forest Run - dodge falling logs in your terminal",
	Long: `Forest Run is an endless runner for the terminal. Steer left and right
between falling logs, keep ahead of the chaser, and survive as many laps
as you can.

Available commands:
  list      - Show game modes
  play      - Play a mode directly
  menu      - Interactive mode picker
  serve     - Start SSH server for remote play
  scores    - View high scores and recent runs
  simulate  - Headless seeded run with the autopilot
  config    - Print or write the default config

Examples:
  forestrun play
  forestrun play forestrun_logs --difficulty hard
  forestrun serve --ssh :2222
  forestrun simulate --seed 42 --runs 5`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.forestrun/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append game events to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}
