package game

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/samdwyer/termquest/internal/entity"
	"github.com/samdwyer/termquest/internal/telemetry"
)

// roundObserver records a span and a log line for every round the
// scheduler opens.
type roundObserver struct {
	ctx    context.Context
	tracer trace.Tracer
	arena  *entity.Arena
	logger *zap.Logger
}

func newRoundObserver(ctx context.Context, arena *entity.Arena, logger *zap.Logger) *roundObserver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &roundObserver{
		ctx:    ctx,
		tracer: telemetry.Tracer("turn"),
		arena:  arena,
		logger: logger,
	}
}

func (o *roundObserver) RoundStarted(round int, order []entity.ID) {
	first := ""
	if len(order) > 0 {
		if ent := o.arena.Get(order[0]); ent != nil {
			first = ent.Name
		}
	}

	_, span := o.tracer.Start(o.ctx, "turn.rollover")
	span.SetAttributes(
		attribute.Int("turn.round", round),
		attribute.Int("turn.participants", len(order)),
		attribute.String("turn.first", first),
	)
	span.End()

	o.logger.Info("round started",
		zap.Int("round", round),
		zap.Int("participants", len(order)),
		zap.String("first", first),
	)
}
