package sim

import "github.com/vovakirdan/forestrun/internal/core"

// Intent is the directional input held during a tick.
type Intent struct {
	Left  bool
	Right bool
}

// Direction returns -1 for left, 1 for right and 0 for none or both.
func (i Intent) Direction() float64 {
	switch {
	case i.Left && !i.Right:
		return -1
	case i.Right && !i.Left:
		return 1
	default:
		return 0
	}
}

// Advance moves everything in the world by one tick.
// Horizontal player speed is per second and scaled by dt; forward progress,
// log fall, scrolling and chaser easing are fixed per tick.
// Logs that fall past the bottom stay in place for Resolve to score.
func Advance(s *RunState, cfg Config, in Intent, dt float64) {
	if s.GameOver {
		return
	}

	if s.Invulnerable > 0 {
		s.Invulnerable = max(0, s.Invulnerable-dt)
	}

	advancePlayer(s, cfg, in, dt)
	advanceObstacles(s)
	advanceBackground(&s.Background, cfg)
	advanceHazard(s, cfg)
}

// advancePlayer applies the intent, clamps to the horizontal boundary and
// handles the lap wrap at the top.
func advancePlayer(s *RunState, cfg Config, in Intent, dt float64) {
	s.PlayerVel = core.Vec2{
		X: in.Direction() * cfg.PlayerSpeed,
		Y: -cfg.ForwardSpeed,
	}

	x := s.PlayerPos.X + s.PlayerVel.X*dt
	s.PlayerPos.X = core.ClampF(x, cfg.HorizontalBoundary, cfg.Width-cfg.HorizontalBoundary)
	s.PlayerPos.Y += s.PlayerVel.Y

	if s.PlayerPos.Y < cfg.TopBoundary {
		shift := cfg.BottomBoundary - s.PlayerPos.Y
		s.PlayerPos.Y = cfg.BottomBoundary
		s.Laps++
		s.ObstacleSpeed += cfg.LapSpeedup

		// The chaser wraps with the runner so the lap does not drag it
		// through the respawn point.
		s.HazardPos.Y += shift
	}
}

// advanceObstacles drops every log by the current fall speed.
func advanceObstacles(s *RunState) {
	for i := range s.Obstacles {
		s.Obstacles[i].Pos.Y += s.ObstacleSpeed
	}
}

// advanceBackground scrolls both bands and recycles whichever one left the
// bottom so it sits exactly one height above the other.
func advanceBackground(b *Background, cfg Config) {
	b.Offset1 += cfg.ScrollSpeed
	b.Offset2 += cfg.ScrollSpeed

	if b.Offset1 >= cfg.Height {
		b.Offset1 = b.Offset2 - cfg.Height
	}
	if b.Offset2 >= cfg.Height {
		b.Offset2 = b.Offset1 - cfg.Height
	}
}

// advanceHazard eases the chaser toward its spot behind the runner.
func advanceHazard(s *RunState, cfg Config) {
	if !s.HazardActive {
		return
	}

	target := core.Vec2{X: s.PlayerPos.X, Y: s.PlayerPos.Y + cfg.HazardOffset}
	s.HazardPos = s.HazardPos.Lerp(target, cfg.HazardSmoothing)

	if s.HazardPos.Y < 0 {
		s.HazardPos.Y = cfg.BottomBoundary
	}
}
