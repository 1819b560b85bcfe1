package sim

// EventKind identifies what happened during a tick.
type EventKind int

const (
	EventNone            EventKind = iota
	EventRunStarted                // A fresh run began (first tick after create or restart)
	EventObstacleSpawned           // A log appeared at the top
	EventObstacleCleared           // A log left the screen without touching the runner
	EventLifeLost                  // The runner touched a log or the chaser
	EventGameOver                  // Lives reached zero inside Resolve
	EventGameOverReached           // The controller moved from Running to GameOver
	EventLap                       // The runner wrapped from the top to the bottom
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventRunStarted:
		return "run_started"
	case EventObstacleSpawned:
		return "obstacle_spawned"
	case EventObstacleCleared:
		return "obstacle_cleared"
	case EventLifeLost:
		return "life_lost"
	case EventGameOver:
		return "game_over"
	case EventGameOverReached:
		return "game_over_reached"
	case EventLap:
		return "lap"
	default:
		return "none"
	}
}

// HitSource tells which entity cost a life.
type HitSource int

const (
	SourceNone HitSource = iota
	SourceObstacle
	SourceHazard
)

// String returns a short name for the hit source.
func (h HitSource) String() string {
	switch h {
	case SourceObstacle:
		return "obstacle"
	case SourceHazard:
		return "hazard"
	default:
		return "none"
	}
}

// Event is a single observable outcome. Only the fields relevant to Kind are set.
type Event struct {
	Kind       EventKind
	Source     HitSource // EventLifeLost
	ObstacleID uint64    // Spawned, cleared or hit log
	Points     int       // EventObstacleCleared
	Lives      int       // Lives left after EventLifeLost
	Score      int       // Final score on EventGameOver / EventGameOverReached
	Lap        int       // EventLap
}

// HasKind reports whether any event in the list is of kind k.
func HasKind(events []Event, k EventKind) bool {
	for _, e := range events {
		if e.Kind == k {
			return true
		}
	}
	return false
}

// CountKind returns how many events in the list are of kind k.
func CountKind(events []Event, k EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == k {
			n++
		}
	}
	return n
}
