// Package forestrun plugs the Forest Run simulation into the terminal platform.
// It loads the YAML config, maps platform input to the run controller and
// draws snapshots into a character screen. The rules live in package sim.
package forestrun

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/forestrun/internal/config"
	"github.com/vovakirdan/forestrun/internal/core"
	"github.com/vovakirdan/forestrun/internal/games/forestrun/sim"
	"github.com/vovakirdan/forestrun/internal/registry"
)

// Mode IDs registered with the platform.
const (
	ModeClassic = "forestrun"      // Logs and the chaser
	ModeLogs    = "forestrun_logs" // Logs only, no chaser
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game adapts a sim.Controller to registry.Game.
type Game struct {
	mode      string
	runtime   core.RuntimeConfig
	cfg       sim.Config
	ctrl      *sim.Controller
	snap      sim.Snapshot
	view      viewport
	paused    bool
	configErr error // Set when the config file failed to load or was rejected

	laps      int // Laps in the current run
	livesLost int // Lives lost in the current run
	frame     int // Animation counter, advances on every unpaused tick
}

// New creates a Forest Run game for the given mode.
func New(mode string) *Game {
	return &Game{mode: mode}
}

// ID returns the unique identifier for this mode.
func (g *Game) ID() string {
	return g.mode
}

// Title returns the display name for this mode.
func (g *Game) Title() string {
	if g.mode == ModeLogs {
		return "Forest Run: Logs Only"
	}
	return "Forest Run"
}

// Reset loads the configuration and starts a fresh run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	fc, loadErr := config.LoadForestRun(configPath)
	if loadErr != nil {
		fc = config.DefaultForestRunConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyForestRunPreset(&fc, difficultyPreset)
	}

	cfg := SimConfig(fc)
	if g.mode == ModeLogs {
		cfg.HazardEnabled = false
	}

	rng := rand.New(rand.NewSource(runtime.Seed))
	ctrl, err := sim.NewController(cfg, rng)
	g.configErr = errors.Join(loadErr, err)
	if err != nil {
		// An unusable user file must not block play
		cfg = SimConfig(config.DefaultForestRunConfig())
		cfg.HazardEnabled = g.mode != ModeLogs
		ctrl, _ = sim.NewController(cfg, rng)
	}

	g.cfg = cfg
	g.ctrl = ctrl
	g.snap = ctrl.Snapshot()
	g.view = newViewport(runtime.ScreenW, runtime.ScreenH, cfg)
	g.paused = false
	g.laps = 0
	g.livesLost = 0
	g.frame = 0
}

// ConfigError returns why the configuration could not be used as given: a file
// that failed to load, or values the simulation rejected. Defaults are in use
// for whichever part failed.
func (g *Game) ConfigError() error {
	return g.configErr
}

// Config returns the simulation constants of the current run.
func (g *Game) Config() sim.Config {
	return g.cfg
}

// Snapshot returns the latest post-tick snapshot.
func (g *Game) Snapshot() sim.Snapshot {
	return g.snap
}

// AddObserver forwards o to the run controller. Call it after Reset.
func (g *Game) AddObserver(o sim.Observer) {
	g.ctrl.AddObserver(o)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	// Handle pause toggle
	if in.Has(core.ActionPause) && g.snap.Phase == sim.PhaseRunning {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	for _, p := range in.Presses {
		if !g.view.field().Contains(p.X, p.Y) {
			continue // HUD
		}
		x, y := g.view.toWorld(p.X, p.Y)
		g.ctrl.Press(x, y)
	}
	if in.Has(core.ActionLeft) {
		g.ctrl.KeyDown(sim.KeyLeft)
	}
	if in.Has(core.ActionRight) {
		g.ctrl.KeyDown(sim.KeyRight)
	}
	if in.Has(core.ActionRestart) {
		g.ctrl.KeyDown(sim.KeyRestart)
	}
	if in.Has(core.ActionConfirm) {
		g.ctrl.KeyDown(sim.KeySpace)
	}

	events := g.ctrl.Tick(g.runtime.TickSeconds())
	g.snap = g.ctrl.Snapshot()
	g.frame++

	for _, e := range events {
		switch e.Kind {
		case sim.EventRunStarted:
			g.laps = 0
			g.livesLost = 0
		case sim.EventLifeLost:
			g.livesLost++
		case sim.EventLap:
			g.laps = e.Lap
		}
	}

	return core.StepResult{
		State:  g.State(),
		Events: coreEvents(events),
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.snap.State.Score,
		Lives:    g.snap.State.Lives,
		GameOver: g.snap.Phase == sim.PhaseGameOver,
		Paused:   g.paused,
	}
}

// RunSummary describes the current run for the history table.
func (g *Game) RunSummary() core.RunSummary {
	return core.RunSummary{
		Seed:      g.runtime.Seed,
		Score:     g.snap.State.Score,
		Laps:      g.laps,
		Ticks:     int(g.snap.Tick),
		LivesLost: g.livesLost,
	}
}

// coreEvents converts run events into platform events with sound cues.
func coreEvents(events []sim.Event) []core.Event {
	if len(events) == 0 {
		return nil
	}
	out := make([]core.Event, 0, len(events))
	for _, e := range events {
		out = append(out, core.Event{
			Name:  e.Kind.String(),
			Cue:   string(CueFor(e)),
			Value: eventValue(e),
		})
		if e.Kind == sim.EventRunStarted {
			// The background loop runs until game over
			out = append(out, core.Event{Name: "loop", Cue: string(CueRunning)})
		}
	}
	return out
}

func eventValue(e sim.Event) int {
	switch e.Kind {
	case sim.EventObstacleCleared:
		return e.Points
	case sim.EventLifeLost:
		return e.Lives
	case sim.EventGameOver, sim.EventGameOverReached:
		return e.Score
	case sim.EventLap:
		return e.Lap
	case sim.EventObstacleSpawned:
		return int(e.ObstacleID)
	default:
		return 0
	}
}

// Register Forest Run modes on package initialization
func init() {
	registry.Register(registry.GameInfo{
		ID:          ModeClassic,
		Title:       "Forest Run",
		Description: "Dodge falling logs while the chaser closes in",
	}, func() registry.Game {
		return New(ModeClassic)
	})
	registry.Register(registry.GameInfo{
		ID:          ModeLogs,
		Title:       "Forest Run: Logs Only",
		Description: "Falling logs only, no chaser",
	}, func() registry.Game {
		return New(ModeLogs)
	})
}
