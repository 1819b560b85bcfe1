package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/forestrun/internal/core"
	"github.com/vovakirdan/forestrun/internal/storage"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColor(0, 0, "ab", core.ColorRed)
	s.DrawTextColor(2, 0, "cd", core.ColorGreen)
	s.DrawTextColor(0, 1, "plain", core.ColorDefault)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	for i, want := range []string{"abcd", "plain"} {
		if lipgloss.Width(lines[i]) != 10 {
			t.Errorf("line %d width = %d, want 10", i, lipgloss.Width(lines[i]))
		}
		if !strings.Contains(stripRuns(lines[i]), want) {
			t.Errorf("line %d = %q, want it to contain %q", i, lines[i], want)
		}
	}
}

func TestPlainTextTrimsRows(t *testing.T) {
	s := core.NewScreen(8, 3)
	s.DrawTextColor(1, 0, "♥♥", core.ColorRed)
	s.DrawHLine(0, 1, 8, '─')

	want := " ♥♥\n────────\n\n"
	if got := PlainText(s); got != want {
		t.Errorf("PlainText = %q, want %q", got, want)
	}
}

// stripRuns drops everything but printable runes, joining styled runs.
func stripRuns(s string) string {
	var b strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEsc = true
		case inEsc && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'):
			inEsc = false
		case !inEsc:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q, want %q", got, "  ab")
	}
	if got := centerText("toolong", 3); got != "toolong" {
		t.Errorf("centerText = %q, want unchanged", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"Forest Run", 20, "Forest Run"},
		{"Forest Run: Logs Only", 10, "Forest Ru."},
		{"♣♣♣♣", 3, "♣♣."},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(nil, testConfig())
	if len(m.items) == 0 {
		t.Fatal("menu has no items")
	}
	if !strings.Contains(m.View(), "Press Space to start") {
		t.Error("start prompt missing")
	}

	next, cmd := m.Update(keyMsg("space"))
	m = next.(MenuModel)
	if cmd == nil || m.Selected() == nil {
		t.Fatal("space did not select")
	}
	if r := m.Result(); r.GameID != m.items[0].GameID || r.Quit {
		t.Errorf("Result = %+v", r)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(nil, testConfig())
	next, _ := m.Update(keyMsg("tab"))
	if r := next.(MenuModel).Result(); !r.WantsScoreboard {
		t.Errorf("tab Result = %+v", r)
	}

	m = NewMenuModel(nil, testConfig())
	next, _ = m.Update(keyMsg("q"))
	if r := next.(MenuModel).Result(); !r.Quit {
		t.Errorf("q Result = %+v", r)
	}
}

func TestMenuShowsBestScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()
	store.SaveScore("stub", 12)

	m := NewMenuModel(store, testConfig())
	if !strings.Contains(m.View(), "best 12") {
		t.Errorf("menu view missing best score:\n%s", m.View())
	}
}

func TestScoreboardToggleView(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()
	store.SaveScore("stub", 9)
	store.SaveRun("stub", core.RunSummary{Seed: 3, Score: 9, Laps: 1, Ticks: 120})

	m := NewScoreboardModel(store, 100, 30)
	if len(m.scores) != 1 || !strings.Contains(m.View(), "HIGH SCORES") {
		t.Fatalf("scores = %v", m.scores)
	}

	next, _ := m.Update(keyMsg("v"))
	m = next.(ScoreboardModel)
	if m.view != viewRecentRuns || len(m.runs) != 1 {
		t.Fatalf("view = %v runs = %v", m.view, m.runs)
	}
	if !strings.Contains(m.View(), "RECENT RUNS") {
		t.Error("title did not switch")
	}

	next, cmd := m.Update(keyMsg("esc"))
	if !next.(ScoreboardModel).IsGoingBack() || cmd == nil {
		t.Error("esc should leave the scoreboard")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	if !strings.Contains(m.View(), "No scores database") {
		t.Errorf("view = %q", m.View())
	}
}

func TestSessionFlow(t *testing.T) {
	s := NewSessionModel(nil, nil, testConfig(), "tester")

	step := func(msg tea.Msg) {
		t.Helper()
		next, _ := s.Update(msg)
		s = next.(SessionModel)
	}

	step(keyMsg("tab"))
	if s.screen != screenScoreboard {
		t.Fatalf("screen = %v after tab, want scoreboard", s.screen)
	}
	step(keyMsg("esc"))
	if s.screen != screenMenu {
		t.Fatalf("screen = %v after esc, want menu", s.screen)
	}

	step(keyMsg("enter"))
	if s.screen != screenGame || s.game == nil {
		t.Fatalf("screen = %v after enter, want game", s.screen)
	}
	if s.game.quitOnBack {
		t.Error("session games must return to the menu")
	}

	step(keyMsg("q"))
	if !s.quitting {
		t.Error("q in game should end the session")
	}
}
