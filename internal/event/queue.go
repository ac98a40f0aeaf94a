package event

import "sync"

// RecvStatus reports the outcome of a non-blocking receive.
type RecvStatus int

const (
	// Received means an event was returned.
	Received RecvStatus = iota
	// Empty means nothing is queued but the sender is still attached.
	Empty
	// Closed means the sender has gone and the queue is drained.
	Closed
)

// Queue is an unbounded FIFO connecting the Source to the Dispatcher.
// Send never blocks; if the reader falls behind, events accumulate.
type Queue struct {
	mu     sync.Mutex
	items  []Event
	closed bool
	ready  chan struct{} // Signalled (buffer 1) when items are added or the queue closes
}

// NewQueue creates an empty, open queue.
func NewQueue() *Queue {
	return &Queue{ready: make(chan struct{}, 1)}
}

// Send appends an event. It reports false if the queue is already closed.
func (q *Queue) Send(ev Event) bool {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	q.items = append(q.items, ev)
	q.mu.Unlock()
	q.signal()
	return true
}

// TryRecv removes the oldest event without blocking. Queued events are
// still delivered after Close; Closed is reported only once drained.
func (q *Queue) TryRecv() (Event, RecvStatus) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		if q.closed {
			return Event{}, Closed
		}
		return Event{}, Empty
	}
	ev := q.items[0]
	q.items[0] = Event{}
	q.items = q.items[1:]
	return ev, Received
}

// Ready returns a channel that receives a value after Send or Close.
// A wake-up may be spurious; callers re-check with TryRecv.
func (q *Queue) Ready() <-chan struct{} {
	return q.ready
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Close detaches the sender. It is safe to call more than once.
func (q *Queue) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.signal()
}

func (q *Queue) signal() {
	select {
	case q.ready <- struct{}{}:
	default:
	}
}
