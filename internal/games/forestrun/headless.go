package forestrun

import "github.com/vovakirdan/forestrun/internal/core"

// Headless drives a Game without a terminal, for simulations and tests.
type Headless struct {
	Game  *Game
	Pilot *Autopilot // Nil leaves the runner standing still

	// OnStep, if set, sees every step result.
	OnStep func(core.StepResult)
	// OnRunEnd, if set, is called once per finished run.
	OnRunEnd func(core.RunSummary)
}

// Play steps until runs runs have ended or maxTicks ticks have passed, and
// returns the summaries of the finished runs. Finished runs are restarted
// while more are wanted. Game must already be Reset.
func (h *Headless) Play(runs, maxTicks int) []core.RunSummary {
	var done []core.RunSummary
	over := h.Game.State().GameOver

	for t := 0; t < maxTicks && len(done) < runs; t++ {
		res := h.Game.Step(h.input())
		if h.OnStep != nil {
			h.OnStep(res)
		}

		if res.State.GameOver && !over {
			sum := h.Game.RunSummary()
			done = append(done, sum)
			if h.OnRunEnd != nil {
				h.OnRunEnd(sum)
			}
		}
		over = res.State.GameOver
	}
	return done
}

// input picks the next frame: the pilot's choice, or a restart once the run is over.
func (h *Headless) input() core.InputFrame {
	snap := h.Game.Snapshot()
	if h.Pilot != nil {
		return h.Pilot.Frame(snap, h.Game.Config())
	}

	in := core.NewInputFrame()
	if h.Game.State().GameOver {
		in.Set(core.ActionRestart)
	}
	return in
}
