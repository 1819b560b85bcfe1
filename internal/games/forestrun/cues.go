package forestrun

import "github.com/vovakirdan/forestrun/internal/games/forestrun/sim"

// Cue names a sound the audio layer should play.
type Cue string

const (
	CueNone     Cue = ""
	CueStart    Cue = "start"
	CueRunning  Cue = "running" // Background loop, started with the run
	CueHit      Cue = "biting"
	CueGameOver Cue = "game_over"
)

// CueFor returns the sound for a run event.
func CueFor(e sim.Event) Cue {
	switch e.Kind {
	case sim.EventRunStarted:
		return CueStart
	case sim.EventLifeLost:
		return CueHit
	case sim.EventGameOverReached:
		return CueGameOver
	default:
		return CueNone
	}
}
