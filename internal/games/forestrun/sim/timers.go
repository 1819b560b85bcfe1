package sim

import "sort"

// ActionKind is a deferred change the controller applies when its time comes.
type ActionKind int

const (
	ActionNone         ActionKind = iota
	ActionClearMessage            // Hide the transient hit message
	ActionReleaseMove             // End a left/right impulse
)

// Deferred is one pending entry in the scheduler.
type Deferred struct {
	ID     uint64
	FireAt float64 // Scheduler time in seconds
	Kind   ActionKind
}

// Scheduler is a list of (fire time, action) entries driven by tick time.
// It never runs callbacks itself; the owner drains due entries each tick
// and decides what they mean.
type Scheduler struct {
	now     float64
	nextID  uint64
	pending []Deferred
}

// After schedules kind to fire delayMs milliseconds from now and returns its id.
func (s *Scheduler) After(delayMs int, kind ActionKind) uint64 {
	s.nextID++
	s.pending = append(s.pending, Deferred{
		ID:     s.nextID,
		FireAt: s.now + float64(delayMs)/1000,
		Kind:   kind,
	})
	return s.nextID
}

// Cancel drops the entry with the given id. It reports whether one was pending.
func (s *Scheduler) Cancel(id uint64) bool {
	for i, d := range s.pending {
		if d.ID == id {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return true
		}
	}
	return false
}

// Advance moves the clock forward by dt and removes and returns every entry
// that is now due, earliest first.
func (s *Scheduler) Advance(dt float64) []Deferred {
	s.now += dt

	var due []Deferred
	kept := s.pending[:0]
	for _, d := range s.pending {
		if d.FireAt <= s.now {
			due = append(due, d)
		} else {
			kept = append(kept, d)
		}
	}
	s.pending = kept

	sort.SliceStable(due, func(i, j int) bool {
		if due[i].FireAt != due[j].FireAt {
			return due[i].FireAt < due[j].FireAt
		}
		return due[i].ID < due[j].ID
	})
	return due
}

// Clear cancels everything and restarts the clock.
func (s *Scheduler) Clear() {
	s.now = 0
	s.pending = s.pending[:0]
}
