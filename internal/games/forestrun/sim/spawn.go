package sim

import "github.com/vovakirdan/forestrun/internal/core"

// RNG is the random source used for spawn positions.
// *math/rand.Rand satisfies it; tests pass a seeded one for reproducible runs.
type RNG interface {
	Float64() float64
}

// MaybeSpawn adds a log at the top of the world when the run allows one.
// It knows nothing about timing; the caller decides how often to ask.
//
// No log is spawned when:
//   - the run is over
//   - the population is at MaxObstacles (so a cap of 0 or less never spawns)
//   - a log exists and the spawn y of the last one plus MinObstacleSpacing
//     is past the bottom of the world
func MaybeSpawn(s *RunState, cfg Config, rng RNG) (Obstacle, bool) {
	if s.GameOver {
		return Obstacle{}, false
	}
	if len(s.Obstacles) >= cfg.MaxObstacles {
		return Obstacle{}, false
	}
	if len(s.Obstacles) > 0 && s.HasLastObstacle && s.LastObstacleY+cfg.MinObstacleSpacing > cfg.Height {
		return Obstacle{}, false
	}

	low := cfg.centerX() - cfg.SpawnRange
	x := low + rng.Float64()*2*cfg.SpawnRange

	o := Obstacle{
		ID:  s.nextObstacleID,
		Pos: core.Vec2{X: x, Y: 0},
	}
	s.nextObstacleID++

	s.Obstacles = append(s.Obstacles, o)
	s.LastObstacleY = o.Pos.Y
	s.HasLastObstacle = true

	return o, true
}
