package event

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Poller waits for terminal input. PollInput returns within timeout; ok is
// false when nothing arrived. A timeout of zero checks without waiting.
type Poller interface {
	PollInput(ctx context.Context, timeout time.Duration) (ev Event, ok bool, err error)
}

// Source runs the input/clock loop. It is the only writer of its queue.
type Source struct {
	poller   Poller
	queue    *Queue
	interval time.Duration
	now      func() time.Time
	logger   *zap.Logger
}

// NewSource creates a source that emits one Tick per interval and forwards
// input from poller in between.
func NewSource(poller Poller, queue *Queue, interval time.Duration, logger *zap.Logger) *Source {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Source{
		poller:   poller,
		queue:    queue,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

// Run loops until ctx is cancelled or the poller fails. The queue is closed
// on return, which the Dispatcher reports as ErrSourceDisconnected.
// Cancellation is a normal shutdown and returns nil.
func (s *Source) Run(ctx context.Context) error {
	defer s.queue.Close()

	lastTick := s.now()
	for {
		if ctx.Err() != nil {
			s.logger.Debug("event source stopped")
			return nil
		}

		// Never wait past the next tick.
		timeout := s.interval - s.now().Sub(lastTick)
		if timeout < 0 {
			timeout = 0
		}

		ev, ok, err := s.poller.PollInput(ctx, timeout)
		if err != nil {
			s.logger.Error("input poll failed", zap.Error(err))
			return fmt.Errorf("poll input: %w", err)
		}
		if ok && forwardable(ev) {
			s.queue.Send(ev)
		}

		if s.now().Sub(lastTick) >= s.interval {
			s.queue.Send(Tick())
			lastTick = s.now()
		}
	}
}

// forwardable drops key releases and repeats.
func forwardable(ev Event) bool {
	return ev.Type != TypeKey || ev.Key.Kind == KeyPress
}
