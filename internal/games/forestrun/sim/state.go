package sim

import (
	"fmt"

	"github.com/vovakirdan/forestrun/internal/core"
)

// Obstacle is a falling log. It lives only inside RunState.Obstacles.
type Obstacle struct {
	ID  uint64
	Pos core.Vec2 // Center
}

// Box returns the collision box of the log.
func (o Obstacle) Box(cfg Config) core.Box {
	return core.NewBox(o.Pos, cfg.ObstacleHalf)
}

// Background holds the two recycling band offsets. They always differ by
// exactly one world height.
type Background struct {
	Offset1 float64
	Offset2 float64
}

// RunState is the complete mutable record of one attempt.
// Build it with NewRunState and rebuild it with Reset; nothing else should
// construct one so no log, score or timer leaks across restarts.
type RunState struct {
	PlayerPos core.Vec2
	PlayerVel core.Vec2 // X in units per second, Y in units per tick

	Lives int
	Score int

	Obstacles []Obstacle

	HazardPos    core.Vec2
	HazardActive bool

	GameOver bool

	// LastObstacleY is where the most recently spawned log appeared. Only
	// MaybeSpawn writes it; it is meaningful once HasLastObstacle is set.
	LastObstacleY   float64
	HasLastObstacle bool

	Laps          int        // Times the runner wrapped from top to bottom
	ObstacleSpeed float64    // Current log fall per tick
	Background    Background // Cosmetic scroll offsets
	Invulnerable  float64    // Seconds of hit immunity left

	nextObstacleID uint64
}

// NewRunState validates cfg and returns a fresh run.
func NewRunState(cfg Config) (*RunState, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &RunState{}
	Reset(s, cfg)
	return s, nil
}

// Reset discards everything in s and re-applies the start values.
func Reset(s *RunState, cfg Config) {
	player := core.Vec2{X: cfg.centerX(), Y: cfg.BottomBoundary}

	*s = RunState{
		PlayerPos:     player,
		PlayerVel:     core.Vec2{X: 0, Y: -cfg.ForwardSpeed},
		Lives:         cfg.StartingLives,
		Score:         0,
		Obstacles:     make([]Obstacle, 0, max(cfg.MaxObstacles, 0)),
		HazardPos:     core.Vec2{X: player.X, Y: player.Y + cfg.HazardOffset},
		HazardActive:  cfg.HazardEnabled,
		ObstacleSpeed: cfg.ObstacleSpeed,
		Background: Background{
			Offset1: 0,
			Offset2: -cfg.Height,
		},
		nextObstacleID: 1,
	}
}

// PlayerBox returns the runner's collision box.
func (s *RunState) PlayerBox(cfg Config) core.Box {
	return core.NewBox(s.PlayerPos, cfg.PlayerHalf)
}

// HazardBox returns the chaser's collision box.
func (s *RunState) HazardBox(cfg Config) core.Box {
	return core.NewBox(s.HazardPos, cfg.HazardHalf)
}

// Clone returns a deep copy of the state.
func (s *RunState) Clone() *RunState {
	c := *s
	c.Obstacles = append(make([]Obstacle, 0, len(s.Obstacles)), s.Obstacles...)
	return &c
}

// CheckInvariants reports the first broken run invariant, if any.
func (s *RunState) CheckInvariants() error {
	if s.Lives < 0 {
		return fmt.Errorf("sim: lives went negative: %d", s.Lives)
	}
	if s.Score < 0 {
		return fmt.Errorf("sim: score went negative: %d", s.Score)
	}
	if s.GameOver != (s.Lives == 0) {
		return fmt.Errorf("sim: game over flag %v disagrees with lives %d", s.GameOver, s.Lives)
	}
	return nil
}

// removeObstacle deletes the log at index i, keeping order.
func (s *RunState) removeObstacle(i int) {
	s.Obstacles = append(s.Obstacles[:i], s.Obstacles[i+1:]...)
}
