// Package tui runs Forest Run in a terminal with Bubble Tea.
// It owns the tick loop, key and mouse mapping, the menu and scoreboard
// screens, and the SSH server that hands each session its own model.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/forestrun/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
// Loop identifies the model that scheduled it, so a tick still in flight
// from an abandoned game never drives the next one.
type TickMsg struct {
	At   time.Time
	Loop uint64
}

var loopSeq atomic.Uint64

// nextLoop returns a fresh tick loop identifier.
func nextLoop() uint64 {
	return loopSeq.Add(1)
}

// tickInterval returns the wall-clock time between two ticks.
func tickInterval(cfg core.RuntimeConfig) time.Duration {
	return time.Duration(cfg.TickSeconds() * float64(time.Second))
}

// tickCmd schedules the next tick of the given loop.
func tickCmd(cfg core.RuntimeConfig, loop uint64) tea.Cmd {
	return tea.Tick(tickInterval(cfg), func(t time.Time) tea.Msg {
		return TickMsg{At: t, Loop: loop}
	})
}
