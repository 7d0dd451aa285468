package service

import (
	"context"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
)

// LogSink writes events to the log. It is used when the Redis feed is disabled.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger.With("component", "events")}
}

func (that *LogSink) Publish(ctx context.Context, event entity.Event) error {
	attrs := []any{"kind", event.Kind, "round", event.Round, "moves", event.Moves}
	if event.Position != nil {
		attrs = append(attrs, "position", event.Position.String())
	}
	if event.Mark != entity.NoMark {
		attrs = append(attrs, "mark", event.Mark.String())
	}
	if event.Kind != entity.EventStarted {
		attrs = append(attrs, "outcome", event.Outcome.String())
	}

	that.logger.DebugContext(ctx, "game event", attrs...)

	return nil
}
