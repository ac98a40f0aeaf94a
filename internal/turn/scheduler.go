// Package turn provides the round-robin turn scheduler for encounters.
//
// The scheduler keeps two collections. The round order is the queue of
// participants still due to act in the current round; it is fixed when the
// round starts. The roster holds every participant sorted by speed and is
// re-sorted on every update cycle, so speed changes only affect rounds that
// have not started yet.
package turn

import (
	"cmp"
	"errors"
	"math"
	"slices"

	"github.com/samdwyer/termquest/internal/entity"
)

// ErrEmptyRound is the panic value raised when Advance is called without an
// open round. It means SetParticipants was never called.
var ErrEmptyRound = errors.New("turn: round order is empty")

// SpeedSource looks up the current speed of a participant.
// entity.Arena satisfies it.
type SpeedSource interface {
	Speed(id entity.ID) (int, bool)
}

// Observer is notified whenever a new round starts.
type Observer interface {
	RoundStarted(round int, order []entity.ID)
}

// Scheduler orders turns among the participants of an encounter.
// It is not safe for concurrent use.
type Scheduler struct {
	speeds   SpeedSource
	current  []entity.ID // Round order, front is acting
	roster   []entity.ID // Next-round roster, ascending speed
	cursor   int         // Selection index into Entries()
	round    int
	observer Observer
}

// NewScheduler creates a scheduler reading speeds from the given source.
func NewScheduler(speeds SpeedSource) *Scheduler {
	return &Scheduler{speeds: speeds}
}

// SetObserver registers an observer for round starts. Pass nil to remove it.
func (s *Scheduler) SetObserver(o Observer) {
	s.observer = o
}

// SetParticipants replaces the roster with ids sorted by ascending speed and
// opens a new round in that order. Equal speeds keep their input order.
func (s *Scheduler) SetParticipants(ids []entity.ID) {
	s.roster = make([]entity.ID, len(ids))
	copy(s.roster, ids)
	s.sortRoster()
	s.current = s.rosterCopy()
	s.cursor = 0
	s.round = 1
	s.notify()
}

// RefreshOrdering re-sorts the roster by current speeds. The round in
// progress keeps its order.
func (s *Scheduler) RefreshOrdering() {
	s.sortRoster()
}

// Advance ends the current turn and returns the participant now due to act.
// When the last participant of a round finishes, the round rolls over: the
// new round order is taken from the roster. Advance panics with
// ErrEmptyRound if no round is open. The boolean is false only when the
// roster itself is empty after a rollover.
func (s *Scheduler) Advance() (entity.ID, bool) {
	switch len(s.current) {
	case 0:
		panic(ErrEmptyRound)
	case 1:
		s.rollover()
	default:
		s.current = s.current[1:]
		s.clampCursor()
	}
	return s.CurrentTurn()
}

// CurrentTurn returns the participant whose turn it is without changing
// anything. The boolean is false when no round is open.
func (s *Scheduler) CurrentTurn() (entity.ID, bool) {
	if len(s.current) == 0 {
		return 0, false
	}
	return s.current[0], true
}

// Remove drops a participant from both the round order and the roster.
// If that empties the round in progress, the next round starts at once.
func (s *Scheduler) Remove(id entity.ID) {
	s.roster = slices.DeleteFunc(s.roster, func(e entity.ID) bool { return e == id })
	wasOpen := len(s.current) > 0
	s.current = slices.DeleteFunc(s.current, func(e entity.ID) bool { return e == id })
	if wasOpen && len(s.current) == 0 && len(s.roster) > 0 {
		s.rollover()
		return
	}
	s.clampCursor()
}

// Round returns the number of the round in progress, starting at 1.
// It is 0 before SetParticipants.
func (s *Scheduler) Round() int {
	return s.round
}

// RoundOrder returns the participants still due to act this round.
func (s *Scheduler) RoundOrder() []entity.ID {
	return slices.Clone(s.current)
}

// Roster returns every participant in next-round order.
func (s *Scheduler) Roster() []entity.ID {
	return s.rosterCopy()
}

// Entries returns the round order followed by the roster, as displayed by
// the turn panel.
func (s *Scheduler) Entries() []entity.ID {
	entries := make([]entity.ID, 0, len(s.current)+len(s.roster))
	entries = append(entries, s.current...)
	return append(entries, s.roster...)
}

// Cursor returns the selected index into Entries.
func (s *Scheduler) Cursor() int {
	return s.cursor
}

// MoveCursor moves the selection by delta, staying within Entries.
func (s *Scheduler) MoveCursor(delta int) {
	s.cursor += delta
	if s.cursor < 0 {
		s.cursor = 0
	}
	s.clampCursor()
}

func (s *Scheduler) rollover() {
	s.current = s.rosterCopy()
	s.round++
	s.clampCursor()
	s.notify()
}

func (s *Scheduler) clampCursor() {
	last := len(s.current) + len(s.roster) - 1
	if last < 0 {
		last = 0
	}
	if s.cursor > last {
		s.cursor = last
	}
}

func (s *Scheduler) sortRoster() {
	slices.SortStableFunc(s.roster, func(a, b entity.ID) int {
		return cmp.Compare(s.speedOf(a), s.speedOf(b))
	})
}

// speedOf returns the participant's speed. Unknown IDs sort last.
func (s *Scheduler) speedOf(id entity.ID) int {
	speed, ok := s.speeds.Speed(id)
	if !ok {
		return math.MaxInt
	}
	return speed
}

func (s *Scheduler) rosterCopy() []entity.ID {
	return slices.Clone(s.roster)
}

func (s *Scheduler) notify() {
	if s.observer != nil {
		s.observer.RoundStarted(s.round, slices.Clone(s.current))
	}
}
