package forestrun

import (
	"math"

	"github.com/vovakirdan/forestrun/internal/core"
	"github.com/vovakirdan/forestrun/internal/games/forestrun/sim"
)

// Autopilot steers the runner away from logs it is about to meet.
// It is used by the headless simulator and never looks at future spawns.
type Autopilot struct {
	// LookaheadTicks is how far ahead a log counts as a threat.
	LookaheadTicks int
	// Margin is extra horizontal clearance in world units.
	Margin float64
}

// NewAutopilot returns an autopilot with one second of lookahead.
func NewAutopilot() *Autopilot {
	return &Autopilot{LookaheadTicks: 60, Margin: 10}
}

// Decide returns the intent for the next tick.
func (a *Autopilot) Decide(s sim.RunState, cfg sim.Config) sim.Intent {
	if s.GameOver {
		return sim.Intent{}
	}

	threat, ok := a.nearestThreat(s, cfg)
	if !ok {
		return sim.Intent{}
	}

	// Pass the log on whichever side has more room.
	center := cfg.Width / 2
	if threat.Pos.X >= center {
		return sim.Intent{Left: true}
	}
	return sim.Intent{Right: true}
}

// Frame wraps Decide in a platform input frame, restarting finished runs.
func (a *Autopilot) Frame(snap sim.Snapshot, cfg sim.Config) core.InputFrame {
	in := core.NewInputFrame()
	if snap.Phase == sim.PhaseGameOver {
		in.Set(core.ActionRestart)
		return in
	}

	intent := a.Decide(snap.State, cfg)
	if intent.Left {
		in.Set(core.ActionLeft)
	}
	if intent.Right {
		in.Set(core.ActionRight)
	}
	return in
}

// nearestThreat finds the closest log ahead of the runner that would hit it
// if the runner stayed where it is.
func (a *Autopilot) nearestThreat(s sim.RunState, cfg sim.Config) (sim.Obstacle, bool) {
	closing := s.ObstacleSpeed + cfg.ForwardSpeed
	reach := cfg.ObstacleHalf.Y + cfg.PlayerHalf.Y + closing*float64(a.LookaheadTicks)
	clearance := cfg.ObstacleHalf.X + cfg.PlayerHalf.X + a.Margin

	var best sim.Obstacle
	bestGap := math.Inf(1)
	for _, o := range s.Obstacles {
		gap := s.PlayerPos.Y - o.Pos.Y
		if gap < -(cfg.ObstacleHalf.Y+cfg.PlayerHalf.Y) || gap > reach {
			continue
		}
		if math.Abs(o.Pos.X-s.PlayerPos.X) >= clearance {
			continue
		}
		if gap < bestGap {
			best, bestGap = o, gap
		}
	}
	return best, !math.IsInf(bestGap, 1)
}
