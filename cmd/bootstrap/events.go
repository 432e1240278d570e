package bootstrap

import (
	"context"
	"log/slog"

	"venue-booking/internal/infra/events"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewEventPublisher relays to RabbitMQ when AMQP_URL is set and to the log
// otherwise.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.EventPublisher, error) {
	if cfg.Events.AMQPURL == "" {
		logger.Info("AMQP_URL not set, events are written to the log")
		return events.NewLogPublisher(logger), nil
	}

	publisher, err := events.NewAMQPPublisher(cfg.Events.AMQPURL, cfg.Events.Exchange)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	return publisher, nil
}
