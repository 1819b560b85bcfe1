package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/forestrun/internal/core"
	"github.com/vovakirdan/forestrun/internal/games/forestrun"
	"github.com/vovakirdan/forestrun/internal/platform/tui"
	"github.com/vovakirdan/forestrun/internal/registry"
	"github.com/vovakirdan/forestrun/internal/storage"
)

var (
	flagSimRuns  int
	flagSimTicks int
	flagSimIdle  bool
	flagSimSave  bool
	flagSimShow  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [mode]",
	Short: "Run headless with the autopilot",
	Long: `Play runs without a terminal, as fast as possible, with a simple
autopilot steering the runner. The same --seed always gives the same runs.

Examples:
  forestrun simulate --seed 42
  forestrun simulate --runs 10 --difficulty hard
  forestrun simulate --idle --show
  forestrun simulate --save --log-file events.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimRuns, "runs", 1, "Number of runs to finish")
	simulateCmd.Flags().IntVar(&flagSimTicks, "ticks", 60*60*30, "Give up after this many ticks in total")
	simulateCmd.Flags().BoolVar(&flagSimIdle, "idle", false, "Leave the runner standing still")
	simulateCmd.Flags().BoolVar(&flagSimSave, "save", false, "Store finished runs in the scores database")
	simulateCmd.Flags().BoolVar(&flagSimShow, "show", false, "Print the final frame")
}

func runSimulate(_ *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "simulate"})

	mode, err := modeArg(args)
	if err != nil {
		return err
	}
	if err := applyGameFlags(); err != nil {
		return err
	}

	created, err := registry.Create(mode)
	if err != nil {
		return err
	}
	game, ok := created.(*forestrun.Game)
	if !ok {
		return fmt.Errorf("mode %q cannot run headless", mode)
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	game.Reset(cfg)
	if err := game.ConfigError(); err != nil {
		logger.Warn("config not used, running with defaults", "error", err)
	}

	events, logFile, err := openEventLog()
	if err != nil {
		return err
	}
	defer logFile.Close()

	var store *storage.Store
	if flagSimSave {
		if store = openStore(); store != nil {
			defer store.Close()
		}
	}

	h := &forestrun.Headless{
		Game:   game,
		OnStep: func(res core.StepResult) { events.Record(mode, res) },
		OnRunEnd: func(sum core.RunSummary) {
			kv := []any{
				"score", sum.Score,
				"laps", sum.Laps,
				"ticks", sum.Ticks,
				"time", (time.Duration(sum.Ticks) * time.Second / time.Duration(max(flagFPS, 1))).Round(time.Millisecond),
			}
			if store != nil {
				id, err := store.SaveRun(mode, sum)
				if err != nil {
					logger.Warn("could not save run", "error", err)
				} else {
					kv = append(kv, "id", id)
				}
				if sum.Score > 0 {
					//nolint:errcheck // The run row already holds the score
					store.SaveScore(mode, sum.Score)
				}
			}
			logger.Info("run finished", kv...)
		},
	}
	if !flagSimIdle {
		h.Pilot = forestrun.NewAutopilot()
	}

	logger.Info("starting", "mode", mode, "seed", cfg.Seed, "runs", flagSimRuns, "autopilot", h.Pilot != nil)
	runs := h.Play(flagSimRuns, flagSimTicks)

	if len(runs) < flagSimRuns {
		logger.Warn("tick limit reached", "finished", len(runs), "wanted", flagSimRuns,
			"score", game.State().Score, "lives", game.State().Lives)
	}

	if len(runs) > 0 {
		best, total := 0, 0
		for _, r := range runs {
			best = max(best, r.Score)
			total += r.Score
		}
		logger.Info("summary", "runs", len(runs), "best", best, "average", float64(total)/float64(len(runs)))
	}

	if flagSimShow {
		screen := core.NewScreen(80, 24)
		game.Render(screen)
		fmt.Print(tui.PlainText(screen))
	}

	return nil
}
