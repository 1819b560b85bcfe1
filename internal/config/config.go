// Package config provides YAML-based game configuration loading and
// difficulty presets for Forest Run.
package config

// ForestRunConfig contains all configuration for the Forest Run game.
// Distances are in world units of the 800x600 logical playfield.
type ForestRunConfig struct {
	World      ForestRunWorld     `yaml:"world"`
	Runner     ForestRunRunner    `yaml:"runner"`
	Obstacles  ForestRunObstacles `yaml:"obstacles"`
	Hazard     ForestRunHazard    `yaml:"hazard"`
	Rules      ForestRunRules     `yaml:"rules"`
	Difficulty DifficultyConfig   `yaml:"difficulty"`
}

// ForestRunWorld defines the playfield.
type ForestRunWorld struct {
	Width              float64 `yaml:"width"`
	Height             float64 `yaml:"height"`
	HorizontalBoundary float64 `yaml:"horizontal_boundary"`
	TopBoundary        float64 `yaml:"top_boundary"`
	BottomMargin       float64 `yaml:"bottom_margin"` // Respawn line sits this far above the bottom
	ScrollSpeed        float64 `yaml:"scroll_speed"`
}

// ForestRunRunner defines the player.
type ForestRunRunner struct {
	Speed        float64 `yaml:"speed"`         // Horizontal, units per second
	ForwardSpeed float64 `yaml:"forward_speed"` // Upward, units per tick
	HalfWidth    float64 `yaml:"half_width"`
	HalfHeight   float64 `yaml:"half_height"`
	ImpulseMs    int     `yaml:"impulse_ms"`
}

// ForestRunObstacles defines the falling logs.
type ForestRunObstacles struct {
	Speed           float64 `yaml:"speed"`
	LapSpeedup      float64 `yaml:"lap_speedup"`
	Max             int     `yaml:"max"`
	SpawnIntervalMs int     `yaml:"spawn_interval_ms"`
	MinSpacing      float64 `yaml:"min_spacing"`
	SpawnRange      float64 `yaml:"spawn_range"`
	HalfWidth       float64 `yaml:"half_width"`
	HalfHeight      float64 `yaml:"half_height"`
	Contact         bool    `yaml:"contact"`
}

// ForestRunHazard defines the chaser.
type ForestRunHazard struct {
	Enabled    bool    `yaml:"enabled"`
	Smoothing  float64 `yaml:"smoothing"`
	Offset     float64 `yaml:"offset"`
	HalfWidth  float64 `yaml:"half_width"`
	HalfHeight float64 `yaml:"half_height"`
}

// ForestRunRules defines lives, scoring and message timing.
type ForestRunRules struct {
	StartingLives     int `yaml:"starting_lives"`
	ScoreReward       int `yaml:"score_reward"`
	HitMessageMs      int `yaml:"hit_message_ms"`
	InvulnerabilityMs int `yaml:"invulnerability_ms"`
}

// DifficultyConfig defines how a preset shifts the starting pace.
type DifficultyConfig struct {
	Enabled      bool          `yaml:"enabled"`       // false keeps logs at one speed for the whole run
	InitialLevel float64       `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Scaling      ScalingConfig `yaml:"scaling"`
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Multiplier added to log speed at max difficulty
	IntervalReduction int     `yaml:"interval_reduction"` // Spawn interval reduction (ms) at max difficulty
	MinSpawnInterval  int     `yaml:"min_spawn_interval"` // Spawn interval floor (ms)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown names return "".
func ParsePreset(name string) DifficultyPreset {
	switch DifficultyPreset(name) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(name)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
