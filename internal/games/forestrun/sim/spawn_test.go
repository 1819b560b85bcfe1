package sim

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/forestrun/internal/core"
)

func newTestState(t *testing.T, cfg Config) *RunState {
	t.Helper()
	s, err := NewRunState(cfg)
	if err != nil {
		t.Fatalf("NewRunState: %v", err)
	}
	return s
}

func TestMaybeSpawnAtCap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxObstacles = 5
	s := newTestState(t, cfg)

	for i := 0; i < 5; i++ {
		s.Obstacles = append(s.Obstacles, Obstacle{ID: uint64(i + 1), Pos: core.Vec2{X: 400, Y: float64(500 - i*100)}})
	}
	before := append([]Obstacle(nil), s.Obstacles...)

	_, ok := MaybeSpawn(s, cfg, rand.New(rand.NewSource(1)))
	if ok {
		t.Fatal("MaybeSpawn spawned past the cap")
	}
	if len(s.Obstacles) != len(before) {
		t.Fatalf("obstacle count changed: %d -> %d", len(before), len(s.Obstacles))
	}
	for i := range before {
		if s.Obstacles[i] != before[i] {
			t.Errorf("obstacle %d changed: %+v -> %+v", i, before[i], s.Obstacles[i])
		}
	}
}

func TestMaybeSpawnNonPositiveCap(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, limit := range []int{0, -1} {
		cfg := DefaultConfig()
		cfg.MaxObstacles = limit
		s := newTestState(t, cfg)

		for i := 0; i < 10; i++ {
			if _, ok := MaybeSpawn(s, cfg, rng); ok {
				t.Fatalf("MaxObstacles=%d spawned a log", limit)
			}
		}
	}
}

func TestMaybeSpawnGameOver(t *testing.T) {
	cfg := DefaultConfig()
	s := newTestState(t, cfg)
	s.Lives = 0
	s.GameOver = true

	if _, ok := MaybeSpawn(s, cfg, rand.New(rand.NewSource(1))); ok {
		t.Error("MaybeSpawn spawned after game over")
	}
}

func TestMaybeSpawnPlacement(t *testing.T) {
	cfg := DefaultConfig()
	rng := rand.New(rand.NewSource(99))

	low := cfg.Width/2 - cfg.SpawnRange
	high := cfg.Width/2 + cfg.SpawnRange

	for i := 0; i < 1000; i++ {
		s := newTestState(t, cfg)
		o, ok := MaybeSpawn(s, cfg, rng)
		if !ok {
			t.Fatal("MaybeSpawn refused an empty world")
		}
		if o.Pos.X < low || o.Pos.X > high {
			t.Fatalf("spawn x = %v outside [%v, %v]", o.Pos.X, low, high)
		}
		if o.Pos.Y != 0 {
			t.Fatalf("spawn y = %v, want 0", o.Pos.Y)
		}
		if !s.HasLastObstacle || s.LastObstacleY != 0 {
			t.Fatalf("last obstacle not recorded: has=%v y=%v", s.HasLastObstacle, s.LastObstacleY)
		}
	}
}

func TestMaybeSpawnSpacing(t *testing.T) {
	tests := []struct {
		name    string
		lastY   float64
		spacing float64
		want    bool
	}{
		{"room left", 100, 400, true},
		{"exactly at the bottom", 200, 400, true},
		{"past the bottom", 201, 400, false},
		{"far down", 450, 400, false},
		{"spacing taller than the world", 0, 700, false},
		{"no spacing", 599, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.MinObstacleSpacing = tt.spacing
			s := newTestState(t, cfg)
			s.Obstacles = append(s.Obstacles, Obstacle{ID: 1, Pos: core.Vec2{X: 400, Y: tt.lastY}})
			s.HasLastObstacle = true
			s.LastObstacleY = tt.lastY

			_, ok := MaybeSpawn(s, cfg, rand.New(rand.NewSource(3)))
			if ok != tt.want {
				t.Errorf("lastY=%v spacing=%v height=%v: spawned=%v, want %v",
					tt.lastY, tt.spacing, cfg.Height, ok, tt.want)
			}
		})
	}
}

func TestMaybeSpawnLastYOnlyMovesOnSpawn(t *testing.T) {
	cfg := DefaultConfig()
	s := newTestState(t, cfg)
	rng := rand.New(rand.NewSource(3))

	first, ok := MaybeSpawn(s, cfg, rng)
	if !ok {
		t.Fatal("first spawn refused")
	}

	for i := 0; i < 100; i++ {
		Advance(s, cfg, Intent{}, 1.0/60)
	}
	if s.LastObstacleY != 0 {
		t.Fatalf("LastObstacleY = %v after falling, want the spawn y 0", s.LastObstacleY)
	}

	second, ok := MaybeSpawn(s, cfg, rng)
	if !ok {
		t.Fatal("second spawn refused")
	}
	if second.ID == first.ID {
		t.Errorf("obstacle ids repeat: %d", second.ID)
	}
	if len(s.Obstacles) != 2 {
		t.Errorf("Obstacles = %d, want 2", len(s.Obstacles))
	}
}

func TestMaybeSpawnEmptyWorldIgnoresSpacing(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinObstacleSpacing = 1000
	s := newTestState(t, cfg)
	s.HasLastObstacle = true
	s.LastObstacleY = 0

	if _, ok := MaybeSpawn(s, cfg, rand.New(rand.NewSource(5))); !ok {
		t.Error("spawn refused with no logs on screen")
	}
}

func TestMaybeSpawnDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinObstacleSpacing = 0
	cfg.MaxObstacles = 20

	run := func() []float64 {
		s := newTestState(t, cfg)
		rng := rand.New(rand.NewSource(2024))
		var xs []float64
		for i := 0; i < 20; i++ {
			o, ok := MaybeSpawn(s, cfg, rng)
			if !ok {
				t.Fatalf("spawn %d refused", i)
			}
			xs = append(xs, o.Pos.X)
		}
		return xs
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("spawn %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}
