package sim

import "github.com/vovakirdan/forestrun/internal/core"

// Resolve applies the consequences of overlaps and of logs leaving the screen.
//
// Contacts are measured against the runner's box as it was when Resolve
// started, so a log hit and a chaser hit in the same tick both cost a life.
// A log counts as off screen once its lower edge passes the world height.
// Calling Resolve on a finished run changes nothing.
func Resolve(s *RunState, cfg Config) []Event {
	if s.GameOver {
		return nil
	}

	var events []Event
	player := s.PlayerBox(cfg)
	vulnerable := s.Invulnerable <= 0
	hit := false

	for i := 0; i < len(s.Obstacles) && !s.GameOver; {
		o := s.Obstacles[i]

		switch {
		case cfg.ObstacleContact && vulnerable && player.Overlaps(o.Box(cfg)):
			s.removeObstacle(i)
			events = loseLife(s, cfg, events, SourceObstacle, o.ID)
			hit = true

		case offScreen(o, cfg):
			s.removeObstacle(i)
			s.Score += cfg.ScoreReward
			events = append(events, Event{
				Kind:       EventObstacleCleared,
				ObstacleID: o.ID,
				Points:     cfg.ScoreReward,
			})

		default:
			i++
		}
	}

	// The chaser is never removed, only its contact counts.
	if !s.GameOver && s.HazardActive && vulnerable && player.Overlaps(s.HazardBox(cfg)) {
		events = loseLife(s, cfg, events, SourceHazard, 0)
		hit = true
	}

	if hit && !s.GameOver && cfg.InvulnerabilityMs > 0 {
		s.Invulnerable = float64(cfg.InvulnerabilityMs) / 1000
	}

	return events
}

// offScreen reports whether the log's lower edge passed the bottom of the world.
func offScreen(o Obstacle, cfg Config) bool {
	return o.Pos.Y+cfg.ObstacleHalf.Y > cfg.Height
}

// loseLife takes one life and either ends the run or respawns the runner.
func loseLife(s *RunState, cfg Config, events []Event, src HitSource, obstacleID uint64) []Event {
	s.Lives--
	if s.Lives < 0 {
		s.Lives = 0
	}

	events = append(events, Event{
		Kind:       EventLifeLost,
		Source:     src,
		ObstacleID: obstacleID,
		Lives:      s.Lives,
	})

	if s.Lives == 0 {
		s.GameOver = true
		s.PlayerVel = core.Vec2{}
		return append(events, Event{Kind: EventGameOver, Score: s.Score})
	}

	s.PlayerPos.Y = cfg.BottomBoundary
	return events
}
