package worker

import (
	"context"
	"log/slog"

	"venue-booking/internal/pkg/config"
	"venue-booking/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the background jobs on cron schedules. Overlapping runs of
// the same job are skipped.
type Scheduler struct {
	cron *cron.Cron
}

func NewScheduler(cfg config.WorkerConfig, outbox *OutboxProcessor, cleaner *IdempotencyCleaner) (*Scheduler, error) {
	logger := cron.PrintfLogger(slog.NewLogLogger(slog.Default().Handler(), slog.LevelDebug))
	c := cron.New(
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)

	if _, err := c.AddFunc(cfg.OutboxSchedule, func() {
		if _, err := outbox.RunOnce(context.Background()); err != nil {
			slog.Error("outbox run failed", "error", err.Error())
		}
	}); err != nil {
		return nil, errs.Wrap(err, "schedule outbox job")
	}

	if _, err := c.AddFunc(cfg.CleanupSchedule, func() {
		if _, err := cleaner.RunOnce(context.Background()); err != nil {
			slog.Error("idempotency cleanup failed", "error", err.Error())
		}
	}); err != nil {
		return nil, errs.Wrap(err, "schedule idempotency cleanup")
	}

	return &Scheduler{cron: c}, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	slog.Info("background scheduler started", "jobs", len(s.cron.Entries()))
}

// Stop prevents new runs and waits for running jobs until ctx ends.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop().Done()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
