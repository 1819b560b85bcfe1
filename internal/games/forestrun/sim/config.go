// Package sim is the deterministic run simulation behind Forest Run.
// It owns player motion, log spawning, the chaser, collisions, scoring and
// the life/game-over lifecycle. It has no knowledge of terminals, timers or
// sound; the platform drives it with ticks and input events and observes the
// resulting snapshots.
package sim

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/forestrun/internal/core"
)

// Config holds the constants of one run. Coordinates are logical world units
// with the origin at the top-left corner and y growing downward.
type Config struct {
	Width  float64 // World width
	Height float64 // World height

	HorizontalBoundary float64 // Player x is kept in [HorizontalBoundary, Width-HorizontalBoundary]
	TopBoundary        float64 // Passing above this y completes a lap
	BottomBoundary     float64 // Respawn and lap-wrap y

	ScrollSpeed   float64 // Background advance per tick
	ObstacleSpeed float64 // Initial log fall per tick
	LapSpeedup    float64 // Added to the log speed on every lap
	PlayerSpeed   float64 // Horizontal speed in units per second
	ForwardSpeed  float64 // Upward progress per tick

	MaxObstacles       int     // Concurrent log cap
	SpawnIntervalMs    int     // Controller spawn cadence
	MinObstacleSpacing float64 // Spawns wait while last spawn y plus this is past Height
	SpawnRange         float64 // Spawn x is drawn from Width/2 +- SpawnRange

	HazardEnabled   bool    // Whether the chaser takes part in the run
	HazardSmoothing float64 // Easing factor in (0, 1]
	HazardOffset    float64 // Chaser target distance below the player

	ObstacleContact bool // Whether touching a log costs a life

	ScoreReward   int // Points per log that leaves the screen
	StartingLives int

	PlayerHalf   core.Vec2 // Player box half extents
	ObstacleHalf core.Vec2 // Log box half extents
	HazardHalf   core.Vec2 // Chaser box half extents

	ImpulseMs         int // How long a single left/right press keeps the runner moving
	HitMessageMs      int // How long "Remaining lives" stays visible
	InvulnerabilityMs int // Grace period after a hit, 0 disables it
}

// DefaultConfig returns the classic 800x600 setup.
func DefaultConfig() Config {
	return Config{
		Width:              800,
		Height:             600,
		HorizontalBoundary: 150,
		TopBoundary:        0,
		BottomBoundary:     550,
		ScrollSpeed:        1,
		ObstacleSpeed:      2,
		LapSpeedup:         0.5,
		PlayerSpeed:        300,
		ForwardSpeed:       1,
		MaxObstacles:       5,
		SpawnIntervalMs:    4000,
		MinObstacleSpacing: 400,
		SpawnRange:         150,
		HazardEnabled:      true,
		HazardSmoothing:    0.1,
		HazardOffset:       150,
		ObstacleContact:    true,
		ScoreReward:        10,
		StartingLives:      3,
		PlayerHalf:         core.Vec2{X: 26, Y: 61},
		ObstacleHalf:       core.Vec2{X: 100, Y: 40},
		HazardHalf:         core.Vec2{X: 24, Y: 24},
		ImpulseMs:          200,
		HitMessageMs:       1500,
		InvulnerabilityMs:  0,
	}
}

// Validate reports every invalid field. Values are never clamped.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Width > 0, "width must be positive, got %v", c.Width)
	check(c.Height > 0, "height must be positive, got %v", c.Height)
	check(c.HorizontalBoundary >= 0, "horizontal boundary must not be negative, got %v", c.HorizontalBoundary)
	check(2*c.HorizontalBoundary <= c.Width, "horizontal boundary %v leaves no room in width %v", c.HorizontalBoundary, c.Width)
	check(c.TopBoundary >= 0, "top boundary must not be negative, got %v", c.TopBoundary)
	check(c.BottomBoundary >= 0, "bottom boundary must not be negative, got %v", c.BottomBoundary)
	check(c.BottomBoundary <= c.Height, "bottom boundary %v is below height %v", c.BottomBoundary, c.Height)
	check(c.TopBoundary < c.BottomBoundary, "top boundary %v must be above bottom boundary %v", c.TopBoundary, c.BottomBoundary)
	check(c.ScrollSpeed >= 0, "scroll speed must not be negative, got %v", c.ScrollSpeed)
	check(c.ObstacleSpeed >= 0, "obstacle speed must not be negative, got %v", c.ObstacleSpeed)
	check(c.LapSpeedup >= 0, "lap speedup must not be negative, got %v", c.LapSpeedup)
	check(c.PlayerSpeed >= 0, "player speed must not be negative, got %v", c.PlayerSpeed)
	check(c.ForwardSpeed >= 0, "forward speed must not be negative, got %v", c.ForwardSpeed)
	check(c.SpawnIntervalMs > 0, "spawn interval must be positive, got %d", c.SpawnIntervalMs)
	check(c.MinObstacleSpacing >= 0, "obstacle spacing must not be negative, got %v", c.MinObstacleSpacing)
	check(c.SpawnRange >= 0, "spawn range must not be negative, got %v", c.SpawnRange)
	check(c.HazardSmoothing > 0 && c.HazardSmoothing <= 1, "hazard smoothing must be in (0, 1], got %v", c.HazardSmoothing)
	check(c.HazardOffset >= 0, "hazard offset must not be negative, got %v", c.HazardOffset)
	check(c.ScoreReward >= 0, "score reward must not be negative, got %d", c.ScoreReward)
	check(c.StartingLives > 0, "starting lives must be positive, got %d", c.StartingLives)
	check(c.PlayerHalf.X > 0 && c.PlayerHalf.Y > 0, "player extents must be positive, got %v", c.PlayerHalf)
	check(c.ObstacleHalf.X > 0 && c.ObstacleHalf.Y > 0, "obstacle extents must be positive, got %v", c.ObstacleHalf)
	check(c.HazardHalf.X > 0 && c.HazardHalf.Y > 0, "hazard extents must be positive, got %v", c.HazardHalf)
	check(c.ImpulseMs > 0, "impulse duration must be positive, got %d", c.ImpulseMs)
	check(c.HitMessageMs >= 0, "hit message duration must not be negative, got %d", c.HitMessageMs)
	check(c.InvulnerabilityMs >= 0, "invulnerability must not be negative, got %d", c.InvulnerabilityMs)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("sim: invalid config: %w", errors.Join(errs...))
}

// centerX is the horizontal middle of the world.
func (c Config) centerX() float64 {
	return c.Width / 2
}
