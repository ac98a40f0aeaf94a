package event

import (
	"errors"
	"time"
)

// DefaultBudget is how long Poll collects events before returning.
const DefaultBudget = 25 * time.Millisecond

// ErrSourceDisconnected is returned by Poll once the Source has stopped and
// every queued event has been consumed.
var ErrSourceDisconnected = errors.New("event: source disconnected")

// Policy selects which event Poll keeps when several arrive within one
// budget.
type Policy int

const (
	// Latest keeps only the most recent event of the window and discards
	// the rest.
	Latest Policy = iota
	// Oldest returns the first queued event and leaves the others for later
	// calls, so nothing is lost.
	Oldest
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case Latest:
		return "latest"
	case Oldest:
		return "oldest"
	default:
		return "unknown"
	}
}

// Dispatcher hands the update loop one event per Poll. It is the only
// reader of its queue.
type Dispatcher struct {
	queue  *Queue
	policy Policy
	now    func() time.Time
}

// NewDispatcher creates a dispatcher reading from queue with the given policy.
func NewDispatcher(queue *Queue, policy Policy) *Dispatcher {
	return &Dispatcher{
		queue:  queue,
		policy: policy,
		now:    time.Now,
	}
}

// Poll collects events for up to budget and returns one of them, or a Tick
// if none arrived. It never blocks past the budget.
func (d *Dispatcher) Poll(budget time.Duration) (Event, error) {
	deadline := d.now().Add(budget)

	var (
		last Event
		have bool
	)
	for {
		ev, status := d.queue.TryRecv()
		switch status {
		case Received:
			if d.policy == Oldest {
				return ev, nil
			}
			last, have = ev, true
			continue
		case Closed:
			return Event{}, ErrSourceDisconnected
		}

		remaining := deadline.Sub(d.now())
		if remaining <= 0 {
			if have {
				return last, nil
			}
			return Tick(), nil
		}
		d.wait(remaining)
	}
}

// wait sleeps until the queue signals or the duration passes.
func (d *Dispatcher) wait(timeout time.Duration) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-d.queue.Ready():
	case <-timer.C:
	}
}
