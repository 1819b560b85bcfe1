package registry

import (
	"testing"

	"github.com/vovakirdan/forestrun/internal/core"
)

type stubGame struct {
	id    string
	state core.GameState
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) { g.state = core.GameState{} }
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{State: g.state} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return g.state }

// reset clears the global registry for the duration of a test.
func reset(t *testing.T) {
	t.Helper()
	mu.Lock()
	saved := entries
	entries = make(map[string]entry)
	mu.Unlock()

	t.Cleanup(func() {
		mu.Lock()
		entries = saved
		mu.Unlock()
	})
}

func TestRegisterAndCreate(t *testing.T) {
	reset(t)

	Register(GameInfo{ID: "b", Title: "Bee"}, func() Game { return &stubGame{id: "b"} })
	Register(GameInfo{ID: "a"}, func() Game { return &stubGame{id: "a"} })

	list := List()
	if len(list) != 2 {
		t.Fatalf("List() = %d entries, want 2", len(list))
	}
	// Registration order, not alphabetical
	if list[0].ID != "b" || list[1].ID != "a" {
		t.Errorf("List() order = %s, %s, want b, a", list[0].ID, list[1].ID)
	}
	if list[1].Title != "Stub a" {
		t.Errorf("missing title not filled from the game: %q", list[1].Title)
	}
	if Default() != "b" {
		t.Errorf("Default() = %q, want b", Default())
	}

	g, err := Create("a")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "a" {
		t.Errorf("Create returned %q", g.ID())
	}
	if !Exists("a") || Exists("zzz") {
		t.Error("Exists disagrees with registrations")
	}
}

func TestCreateUnknown(t *testing.T) {
	reset(t)

	if _, err := Create("missing"); err == nil {
		t.Error("Create of unknown id should fail")
	}
	if Default() != "" {
		t.Errorf("Default() = %q on empty registry", Default())
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	reset(t)

	Register(GameInfo{ID: "x", Title: "X"}, func() Game { return &stubGame{id: "x"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register(GameInfo{ID: "x", Title: "X"}, func() Game { return &stubGame{id: "x"} })
}
