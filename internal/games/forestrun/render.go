package forestrun

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/forestrun/internal/core"
	"github.com/vovakirdan/forestrun/internal/games/forestrun/sim"
)

// Visual characters for rendering
const (
	TreeChar    = '♣'
	GroundChar  = '·'
	LogChar     = '═'
	RunnerChar  = '█'
	RunnerHead  = '●'
	ChaserChar  = '▓'
	HeartFull   = '♥'
	HeartEmpty  = '♡'
	treeSpacing = 60.0 // World units between tree rows
)

// hudRows is the number of screen rows above the playfield: the status line
// and a divider.
const hudRows = 2

// viewport maps world units to screen cells.
type viewport struct {
	cols, rows int     // Playfield size in cells
	top        int     // First playfield row
	sx, sy     float64 // Cells per world unit
}

func newViewport(screenW, screenH int, cfg sim.Config) viewport {
	cols := max(screenW, 1)
	rows := max(screenH-hudRows, 1)
	return viewport{
		cols: cols,
		rows: rows,
		top:  hudRows,
		sx:   float64(cols) / cfg.Width,
		sy:   float64(rows) / cfg.Height,
	}
}

// toCell returns the cell containing world point p.
func (v viewport) toCell(p core.Vec2) (int, int) {
	return int(math.Floor(p.X * v.sx)), v.top + int(math.Floor(p.Y*v.sy))
}

// toWorld returns the world point at the center of cell (x, y).
func (v viewport) toWorld(x, y int) (float64, float64) {
	return (float64(x) + 0.5) / v.sx, (float64(y-v.top) + 0.5) / v.sy
}

// field returns the playfield cells.
func (v viewport) field() core.Rect {
	return core.NewRect(0, v.top, v.cols, v.rows)
}

// boxRect returns the cells covered by b, never smaller than one cell.
func (v viewport) boxRect(b core.Box) core.Rect {
	x0 := int(math.Floor((b.Center.X - b.Half.X) * v.sx))
	x1 := int(math.Ceil((b.Center.X + b.Half.X) * v.sx))
	y0 := int(math.Floor((b.Center.Y - b.Half.Y) * v.sy))
	y1 := int(math.Ceil((b.Center.Y + b.Half.Y) * v.sy))
	return core.NewRect(x0, v.top+y0, max(x1-x0, 1), max(y1-y0, 1))
}

// Render draws the current game state to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	g.view = newViewport(dst.Width(), dst.Height(), g.cfg)
	s := g.snap.State

	g.drawForest(dst, s.Background)

	for _, o := range s.Obstacles {
		g.drawBox(dst, o.Box(g.cfg), LogChar, core.ColorBark)
	}

	if s.HazardActive {
		g.drawBox(dst, s.HazardBox(g.cfg), ChaserChar, core.ColorRed)
	}

	g.drawRunner(dst, s)
	g.drawHUD(dst, s)

	if g.snap.Message != "" && g.snap.Phase == sim.PhaseRunning {
		dst.DrawTextCenteredColor(g.view.top+g.view.rows/2, g.snap.Message, core.ColorBrightYellow)
	}

	if g.paused {
		dst.DrawTextCenteredColor(dst.Height()/2, "PAUSED - Press P to continue", core.ColorBrightWhite)
	}

	if g.snap.Phase == sim.PhaseGameOver {
		g.drawGameOver(dst, s)
	}
}

// drawBox fills the cells of b that fall inside the playfield. It reports
// false when none do.
func (g *Game) drawBox(dst *core.Screen, b core.Box, ch rune, c core.Color) (core.Rect, bool) {
	r := g.view.boxRect(b)
	f := g.view.field()
	if !r.Intersects(f) {
		return core.Rect{}, false
	}

	x0, y0 := max(r.X, f.X), max(r.Y, f.Y)
	x1, y1 := min(r.Right(), f.Right()), min(r.Bottom(), f.Bottom())
	r = core.NewRect(x0, y0, x1-x0, y1-y0)
	dst.DrawRectColor(r, ch, c)
	return r, true
}

// drawForest scrolls tree rows down the two margins outside the runner's lane.
func (g *Game) drawForest(dst *core.Screen, bg sim.Background) {
	laneLeft := g.cfg.HorizontalBoundary - g.cfg.PlayerHalf.X
	laneRight := g.cfg.Width - laneLeft

	for row := 0; row < g.view.rows; row++ {
		_, wy := g.view.toWorld(0, g.view.top+row)
		phase := math.Mod(wy-bg.Offset1, treeSpacing)
		if phase < 0 {
			phase += treeSpacing
		}
		treeRow := phase < treeSpacing/3

		for col := 0; col < g.view.cols; col++ {
			wx, _ := g.view.toWorld(col, 0)
			if wx >= laneLeft && wx <= laneRight {
				continue
			}
			y := g.view.top + row
			switch {
			case treeRow && col%3 == row%2:
				dst.SetColor(col, y, TreeChar, core.ColorPine)
			case col%4 == 0:
				dst.SetColor(col, y, GroundChar, core.ColorMoss)
			}
		}
	}
}

// drawRunner draws the player, blinking while immune after a hit.
func (g *Game) drawRunner(dst *core.Screen, s sim.RunState) {
	if s.Invulnerable > 0 && (g.frame/6)%2 == 1 {
		return
	}
	r, ok := g.drawBox(dst, s.PlayerBox(g.cfg), RunnerChar, core.ColorBrightWhite)
	if !ok {
		return
	}
	cx, _ := r.Center()
	dst.SetColor(cx, r.Y, RunnerHead, core.ColorBrightYellow)
}

// drawHUD draws lives, score and lap on the top row, over a divider.
func (g *Game) drawHUD(dst *core.Screen, s sim.RunState) {
	dst.DrawHLine(0, hudRows-1, dst.Width(), '─')

	var hearts strings.Builder
	for i := 0; i < g.cfg.StartingLives; i++ {
		if i < s.Lives {
			hearts.WriteRune(HeartFull)
		} else {
			hearts.WriteRune(HeartEmpty)
		}
	}
	dst.DrawTextColor(1, 0, hearts.String(), core.ColorBrightRed)

	info := fmt.Sprintf("Score: %d  Lap: %d", s.Score, s.Laps+1)
	dst.DrawTextColor(g.cfg.StartingLives+3, 0, info, core.ColorBrightWhite)

	help := "←/→ move  P pause  Q quit"
	dst.DrawTextColor(dst.Width()-len([]rune(help))-1, 0, help, core.ColorGray)
}

// drawGameOver draws the final score box.
func (g *Game) drawGameOver(dst *core.Screen, s sim.RunState) {
	lines := []string{
		"GAME OVER",
		"",
		fmt.Sprintf("Score: %d   Laps: %d", s.Score, s.Laps),
		"",
		g.snap.Message,
	}

	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	w += 4
	h := len(lines) + 2

	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, l := range lines {
		c := core.ColorBrightWhite
		if i == 0 {
			c = core.ColorBrightRed
		}
		dst.DrawTextCenteredColor(box.Y+1+i, l, c)
	}
}
