package bootstrap

import (
	"context"

	"venue-booking/internal/infra/readstore"
	sqlc "venue-booking/internal/infra/sqlc/generated"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/pkg/metrics"
	"venue-booking/internal/pkg/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var ObservabilityModule = fx.Module("observability",
	fx.Provide(
		metrics.New,
	),
	fx.Invoke(
		SetupTracing,
		WatchOutbox,
	),
)

func SetupTracing(lc fx.Lifecycle, cfg config.Config) error {
	shutdown, err := tracing.Setup(context.Background(), cfg.Tracing)
	if err != nil {
		return err
	}
	lc.Append(fx.Hook{
		OnStop: shutdown,
	})
	return nil
}

func WatchOutbox(m *metrics.Metrics, pool *pgxpool.Pool) {
	store := readstore.NewOutboxReadStore(sqlc.New(), pool)
	m.WatchOutbox(store.CountByStatus)
}
