package config

import (
	_ "embed"
)

//go:embed defaults/forestrun.yaml
var defaultForestRunYAML []byte

// DefaultForestRunConfig returns the default Forest Run configuration.
func DefaultForestRunConfig() ForestRunConfig {
	return ForestRunConfig{
		World: ForestRunWorld{
			Width:              800,
			Height:             600,
			HorizontalBoundary: 150,
			TopBoundary:        0,
			BottomMargin:       50,
			ScrollSpeed:        1,
		},
		Runner: ForestRunRunner{
			Speed:        300,
			ForwardSpeed: 1,
			HalfWidth:    26,
			HalfHeight:   61,
			ImpulseMs:    200,
		},
		Obstacles: ForestRunObstacles{
			Speed:           2,
			LapSpeedup:      0.5,
			Max:             5,
			SpawnIntervalMs: 4000,
			MinSpacing:      400,
			SpawnRange:      150,
			HalfWidth:       100,
			HalfHeight:      40,
			Contact:         true,
		},
		Hazard: ForestRunHazard{
			Enabled:    true,
			Smoothing:  0.1,
			Offset:     150,
			HalfWidth:  24,
			HalfHeight: 24,
		},
		Rules: ForestRunRules{
			StartingLives:     3,
			ScoreReward:       10,
			HitMessageMs:      1500,
			InvulnerabilityMs: 0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Scaling: ScalingConfig{
				SpeedMultiplier:   1.0,
				IntervalReduction: 2500,
				MinSpawnInterval:  1500,
			},
		},
	}
}
