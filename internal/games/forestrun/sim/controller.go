package sim

import (
	"errors"
	"fmt"
)

// Phase is the controller state.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	if p == PhaseGameOver {
		return "game_over"
	}
	return "running"
}

// Key is a discrete key press the controller understands.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyRestart // R
	KeySpace
)

// Messages shown by the render layer.
const (
	GameOverMessage = "Lives are finished. Press R to restart."
)

// HitMessage is the text shown for a while after a life is lost.
func HitMessage(lives int) string {
	return fmt.Sprintf("Remaining lives: %d", lives)
}

// Snapshot is a read-only copy of the run handed to render and audio layers.
type Snapshot struct {
	State   RunState
	Phase   Phase
	Message string  // Transient hit message or the game-over prompt
	Tick    uint64  // Ticks simulated in this run
	Elapsed float64 // Seconds simulated in this run
}

// Observer receives the snapshot and events after every tick.
// Observers must not call back into the controller.
type Observer interface {
	Observe(snap Snapshot, events []Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(snap Snapshot, events []Event)

// Observe calls f.
func (f ObserverFunc) Observe(snap Snapshot, events []Event) {
	f(snap, events)
}

type inputKind int

const (
	inputPress inputKind = iota
	inputKey
)

type inputEvent struct {
	kind inputKind
	x, y float64
	key  Key
}

// Controller owns the canonical RunState and drives it one tick at a time.
// Input arriving between ticks is queued and applied at the top of the next
// tick. A Controller is not safe for concurrent use.
type Controller struct {
	cfg   Config
	rng   RNG
	state *RunState

	phase   Phase
	message string
	started bool

	intent     Intent
	impulseID  uint64
	messageID  uint64
	timers     Scheduler
	spawnClock float64

	queue     []inputEvent
	observers []Observer

	tick    uint64
	elapsed float64
}

// NewController validates cfg and starts a run.
func NewController(cfg Config, rng RNG) (*Controller, error) {
	if rng == nil {
		return nil, errors.New("sim: controller needs a random source")
	}
	state, err := NewRunState(cfg)
	if err != nil {
		return nil, err
	}
	return &Controller{
		cfg:   cfg,
		rng:   rng,
		state: state,
		phase: PhaseRunning,
	}, nil
}

// Config returns the run constants.
func (c *Controller) Config() Config {
	return c.cfg
}

// Phase returns the current controller state.
func (c *Controller) Phase() Phase {
	return c.phase
}

// AddObserver registers o for post-tick notifications.
func (c *Controller) AddObserver(o Observer) {
	c.observers = append(c.observers, o)
}

// Press queues a pointer press at world coordinates (x, y).
func (c *Controller) Press(x, y float64) {
	c.queue = append(c.queue, inputEvent{kind: inputPress, x: x, y: y})
}

// KeyDown queues a key press.
func (c *Controller) KeyDown(k Key) {
	c.queue = append(c.queue, inputEvent{kind: inputKey, key: k})
}

// Restart starts a fresh run. It only works from the game-over state and
// reports whether a restart happened.
func (c *Controller) Restart() bool {
	if c.phase != PhaseGameOver {
		return false
	}
	Reset(c.state, c.cfg)
	c.timers.Clear()
	c.intent = Intent{}
	c.impulseID = 0
	c.messageID = 0
	c.message = ""
	c.spawnClock = 0
	c.tick = 0
	c.elapsed = 0
	c.phase = PhaseRunning
	c.started = false
	return true
}

// Tick advances the run by dt seconds and returns what happened.
func (c *Controller) Tick(dt float64) []Event {
	var events []Event

	c.drainInput()

	if !c.started {
		c.started = true
		events = append(events, Event{Kind: EventRunStarted})
	}

	if c.phase == PhaseGameOver {
		c.notify(events)
		return events
	}

	c.fireTimers(dt)

	lapsBefore := c.state.Laps
	Advance(c.state, c.cfg, c.intent, dt)
	if c.state.Laps != lapsBefore {
		events = append(events, Event{Kind: EventLap, Lap: c.state.Laps})
	}

	c.spawnClock += dt
	interval := float64(c.cfg.SpawnIntervalMs) / 1000
	if c.spawnClock >= interval {
		c.spawnClock -= interval
		if o, ok := MaybeSpawn(c.state, c.cfg, c.rng); ok {
			events = append(events, Event{Kind: EventObstacleSpawned, ObstacleID: o.ID})
		}
	}

	resolved := Resolve(c.state, c.cfg)
	events = append(events, resolved...)
	c.applyOutcomes(resolved)

	c.tick++
	c.elapsed += dt

	if c.state.GameOver && c.phase == PhaseRunning {
		c.enterGameOver()
		events = append(events, Event{Kind: EventGameOverReached, Score: c.state.Score})
	}

	c.notify(events)
	return events
}

// Snapshot returns a deep copy of the current run.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		State:   *c.state.Clone(),
		Phase:   c.phase,
		Message: c.message,
		Tick:    c.tick,
		Elapsed: c.elapsed,
	}
}

// drainInput applies every queued input event in arrival order.
func (c *Controller) drainInput() {
	queue := c.queue
	c.queue = nil

	for _, ev := range queue {
		switch ev.kind {
		case inputPress:
			if c.phase != PhaseRunning {
				continue
			}
			if ev.x < c.cfg.Width/2 {
				c.impulse(Intent{Left: true})
			} else {
				c.impulse(Intent{Right: true})
			}

		case inputKey:
			switch ev.key {
			case KeyLeft:
				if c.phase == PhaseRunning {
					c.impulse(Intent{Left: true})
				}
			case KeyRight:
				if c.phase == PhaseRunning {
					c.impulse(Intent{Right: true})
				}
			case KeyRestart, KeySpace:
				c.Restart()
			}
		}
	}
}

// impulse holds a direction for ImpulseMs. A new impulse replaces the old one.
func (c *Controller) impulse(in Intent) {
	c.intent = in
	if c.impulseID != 0 {
		c.timers.Cancel(c.impulseID)
	}
	c.impulseID = c.timers.After(c.cfg.ImpulseMs, ActionReleaseMove)
}

// fireTimers advances the scheduler and applies every due action.
func (c *Controller) fireTimers(dt float64) {
	for _, d := range c.timers.Advance(dt) {
		switch d.Kind {
		case ActionReleaseMove:
			if d.ID == c.impulseID {
				c.intent = Intent{}
				c.impulseID = 0
			}
		case ActionClearMessage:
			if d.ID == c.messageID {
				c.message = ""
				c.messageID = 0
			}
		}
	}
}

// applyOutcomes sets the transient message for lives lost this tick.
func (c *Controller) applyOutcomes(events []Event) {
	for _, e := range events {
		if e.Kind != EventLifeLost || e.Lives == 0 {
			continue
		}
		c.message = HitMessage(e.Lives)
		if c.messageID != 0 {
			c.timers.Cancel(c.messageID)
		}
		c.messageID = c.timers.After(c.cfg.HitMessageMs, ActionClearMessage)
	}
}

func (c *Controller) enterGameOver() {
	c.phase = PhaseGameOver
	c.timers.Clear()
	c.intent = Intent{}
	c.impulseID = 0
	c.messageID = 0
	c.message = GameOverMessage
}

func (c *Controller) notify(events []Event) {
	if len(c.observers) == 0 {
		return
	}
	snap := c.Snapshot()
	for _, o := range c.observers {
		o.Observe(snap, events)
	}
}
