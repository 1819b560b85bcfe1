package tui

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/forestrun/internal/core"
)

// EventLog writes game events to a structured log, one line per event.
// A nil *EventLog discards everything.
type EventLog struct {
	logger *log.Logger
	tick   int
}

// NewEventLog creates an event log writing to w.
func NewEventLog(w io.Writer, timestamps bool) *EventLog {
	return NewEventLogger(log.NewWithOptions(w, log.Options{
		ReportTimestamp: timestamps,
		Prefix:          "forestrun",
		Level:           log.DebugLevel,
	}))
}

// NewEventLogger creates an event log on top of an existing logger.
func NewEventLogger(l *log.Logger) *EventLog {
	return &EventLog{logger: l}
}

// Record logs the events of one step. It counts every call as a tick.
func (l *EventLog) Record(gameID string, res core.StepResult) {
	if l == nil {
		return
	}
	l.tick++

	for _, e := range res.Events {
		kv := []any{
			"game", gameID,
			"tick", l.tick,
			"event", e.Name,
			"value", e.Value,
			"score", res.State.Score,
			"lives", res.State.Lives,
		}
		if e.Cue != "" {
			kv = append(kv, "cue", e.Cue)
		}

		switch e.Name {
		case "life_lost", "game_over", "game_over_reached":
			l.logger.Warn("run event", kv...)
		case "obstacle_spawned", "loop":
			l.logger.Debug("run event", kv...)
		default:
			l.logger.Info("run event", kv...)
		}
	}
}

// Reset restarts the tick counter, for a new game.
func (l *EventLog) Reset() {
	if l != nil {
		l.tick = 0
	}
}
