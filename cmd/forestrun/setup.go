package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/forestrun/internal/config"
	"github.com/vovakirdan/forestrun/internal/core"
	"github.com/vovakirdan/forestrun/internal/games/forestrun"
	"github.com/vovakirdan/forestrun/internal/platform/tui"
	"github.com/vovakirdan/forestrun/internal/registry"
	"github.com/vovakirdan/forestrun/internal/storage"
)

// modeArg returns the mode named in args, or the default mode.
func modeArg(args []string) (string, error) {
	mode := registry.Default()
	if len(args) > 0 {
		mode = args[0]
	}
	if !registry.Exists(mode) {
		return "", fmt.Errorf("unknown mode %q (run 'forestrun list' to see modes)", mode)
	}
	return mode, nil
}

// applyGameFlags hands --config and --difficulty to the game package.
func applyGameFlags() error {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	forestrun.SetConfigPath(flagConfig)
	forestrun.SetDifficultyPreset(flagDifficulty)
	return nil
}

// terminalConfig builds the runtime config from the flags and the terminal size.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database. Play goes on without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openEventLog opens --log-file for appending. Without the flag it returns a
// nil log, which records nothing.
func openEventLog() (*tui.EventLog, io.Closer, error) {
	if flagLogFile == "" {
		return nil, nopCloser{}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return tui.NewEventLog(f, true), f, nil
}
