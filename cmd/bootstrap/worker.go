package bootstrap

import (
	"context"
	"log/slog"

	"venue-booking/internal/infra/repository"
	sqlc "venue-booking/internal/infra/sqlc/generated"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/pkg/metrics"
	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/shared"
	"venue-booking/internal/worker"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewOutboxProcessor,
		NewIdempotencyCleaner,
		NewScheduler,
	),
	fx.Invoke(StartScheduler),
)

func NewOutboxProcessor(
	uow shared.UnitOfWork,
	revenue commands.RevenueCommands,
	publisher shared.EventPublisher,
	clk clock.Clock,
	m *metrics.Metrics,
	cfg config.Config,
) *worker.OutboxProcessor {
	return worker.NewOutboxProcessor(uow, revenue, publisher, clk, m, cfg.Worker.BatchSize, cfg.Worker.ClaimLease)
}

func NewIdempotencyCleaner(pool *pgxpool.Pool) *worker.IdempotencyCleaner {
	return worker.NewIdempotencyCleaner(repository.NewIdempotencyRepository(sqlc.New(), pool))
}

func NewScheduler(cfg config.Config, outbox *worker.OutboxProcessor, cleaner *worker.IdempotencyCleaner) (*worker.Scheduler, error) {
	return worker.NewScheduler(cfg.Worker, outbox, cleaner)
}

func StartScheduler(lc fx.Lifecycle, cfg config.Config, s *worker.Scheduler) {
	if !cfg.Worker.Enabled {
		slog.Info("background worker disabled")
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return s.Stop(ctx)
		},
	})
}
