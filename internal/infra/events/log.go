package events

import (
	"context"
	"log/slog"
)

// LogPublisher writes events to the structured log when no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, topic string, payload []byte) error {
	p.logger.InfoContext(ctx, "domain event", slog.String("topic", topic), slog.String("payload", string(payload)))
	return nil
}
