package config

import "math"

// DifficultyManager turns a difficulty level into concrete run constants.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables lap progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether logs speed up on every lap.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Level returns the difficulty level (0.0 to 1.0) the run starts at.
func (d *DifficultyManager) Level() float64 {
	return d.initialLevel
}

// ObstacleSpeed returns the starting log speed for the current level.
func (d *DifficultyManager) ObstacleSpeed(base float64) float64 {
	// Speed increases from base to base * (1 + speedMultiplier)
	return base * (1.0 + d.initialLevel*d.cfg.Scaling.SpeedMultiplier)
}

// SpawnInterval returns the spawn cadence in milliseconds for the current level.
func (d *DifficultyManager) SpawnInterval(baseMs int) int {
	reduction := int(d.initialLevel * float64(d.cfg.Scaling.IntervalReduction))
	result := baseMs - reduction
	if floor := d.cfg.Scaling.MinSpawnInterval; floor > 0 && result < floor {
		result = floor
	}
	if result < 1 {
		result = 1
	}
	return result
}

// LapSpeedup returns the per-lap log speed gain, or 0 when progression is off.
func (d *DifficultyManager) LapSpeedup(base float64) float64 {
	if !d.cfg.Enabled {
		return 0
	}
	return base
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
