package forestrun

import (
	"github.com/vovakirdan/forestrun/internal/config"
	"github.com/vovakirdan/forestrun/internal/core"
	"github.com/vovakirdan/forestrun/internal/games/forestrun/sim"
)

// SimConfig turns the YAML configuration into run constants.
// The difficulty level shifts the starting log speed and spawn cadence;
// a fixed preset turns off the per-lap speedup.
func SimConfig(fc config.ForestRunConfig) sim.Config {
	d := config.NewDifficultyManager(fc.Difficulty)

	return sim.Config{
		Width:              fc.World.Width,
		Height:             fc.World.Height,
		HorizontalBoundary: fc.World.HorizontalBoundary,
		TopBoundary:        fc.World.TopBoundary,
		BottomBoundary:     fc.World.Height - fc.World.BottomMargin,
		ScrollSpeed:        fc.World.ScrollSpeed,

		ObstacleSpeed: d.ObstacleSpeed(fc.Obstacles.Speed),
		LapSpeedup:    d.LapSpeedup(fc.Obstacles.LapSpeedup),
		PlayerSpeed:   fc.Runner.Speed,
		ForwardSpeed:  fc.Runner.ForwardSpeed,

		MaxObstacles:       fc.Obstacles.Max,
		SpawnIntervalMs:    d.SpawnInterval(fc.Obstacles.SpawnIntervalMs),
		MinObstacleSpacing: fc.Obstacles.MinSpacing,
		SpawnRange:         fc.Obstacles.SpawnRange,

		HazardEnabled:   fc.Hazard.Enabled,
		HazardSmoothing: fc.Hazard.Smoothing,
		HazardOffset:    fc.Hazard.Offset,

		ObstacleContact: fc.Obstacles.Contact,
		ScoreReward:     fc.Rules.ScoreReward,
		StartingLives:   fc.Rules.StartingLives,

		PlayerHalf:   core.Vec2{X: fc.Runner.HalfWidth, Y: fc.Runner.HalfHeight},
		ObstacleHalf: core.Vec2{X: fc.Obstacles.HalfWidth, Y: fc.Obstacles.HalfHeight},
		HazardHalf:   core.Vec2{X: fc.Hazard.HalfWidth, Y: fc.Hazard.HalfHeight},

		ImpulseMs:         fc.Runner.ImpulseMs,
		HitMessageMs:      fc.Rules.HitMessageMs,
		InvulnerabilityMs: fc.Rules.InvulnerabilityMs,
	}
}
