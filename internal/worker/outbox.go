package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/shared"
)

const (
	baseBackoff = 2 * time.Second
	maxBackoff  = 10 * time.Minute
)

var ErrUnknownJobKind = errs.New("unknown outbox job kind")

// JobRecorder counts outbox job outcomes.
type JobRecorder interface {
	OutboxJob(kind, result string)
}

// OutboxProcessor drains due outbox jobs: deferred revenue postings and
// domain events relayed to the broker.
type OutboxProcessor struct {
	uow       shared.UnitOfWork
	revenue   commands.RevenueCommands
	publisher shared.EventPublisher
	clock     clock.Clock
	recorder  JobRecorder
	batchSize int32
	lease     time.Duration
}

func NewOutboxProcessor(
	uow shared.UnitOfWork,
	revenue commands.RevenueCommands,
	publisher shared.EventPublisher,
	clk clock.Clock,
	recorder JobRecorder,
	batchSize int32,
	lease time.Duration,
) *OutboxProcessor {
	return &OutboxProcessor{
		uow:       uow,
		revenue:   revenue,
		publisher: publisher,
		clock:     clk,
		recorder:  recorder,
		batchSize: batchSize,
		lease:     lease,
	}
}

// RunOnce claims one batch and settles every job in it. Claiming commits
// before the jobs run, so a slow job never holds the row locks. A job left in
// processing longer than the lease is claimed again.
func (p *OutboxProcessor) RunOnce(ctx context.Context) (int, error) {
	staleBefore := p.clock.Now().Add(-p.lease)

	var jobs []shared.ClaimedJob
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		claimed, err := tx.Outbox().ClaimDue(ctx, tx.DB(), p.batchSize, staleBefore)
		jobs = claimed
		return err
	})
	if err != nil {
		return 0, errs.Wrap(err, "claim outbox jobs")
	}

	for _, job := range jobs {
		p.settle(ctx, job, p.handle(ctx, job))
	}
	return len(jobs), nil
}

func (p *OutboxProcessor) handle(ctx context.Context, job shared.ClaimedJob) error {
	switch job.Kind {
	case shared.OutboxKindRevenuePosting:
		var payload shared.RevenuePostingPayload
		if err := json.Unmarshal(job.Payload, &payload); err != nil {
			return errs.Wrap(err, "decode revenue posting payload")
		}
		_, err := p.revenue.Post(ctx, payload.BookingID)
		return err
	case shared.OutboxKindEvent:
		return p.publisher.Publish(ctx, job.Topic, job.Payload)
	default:
		return ErrUnknownJobKind
	}
}

func (p *OutboxProcessor) settle(ctx context.Context, job shared.ClaimedJob, jobErr error) {
	logger := slog.With("job_id", job.ID, "kind", job.Kind, "attempt", job.Attempts)

	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if jobErr == nil {
			return tx.Outbox().Complete(ctx, tx.DB(), job.ID)
		}
		status, runAt := p.nextRun(job, jobErr)
		return tx.Outbox().Reschedule(ctx, tx.DB(), job.ID, status, runAt, jobErr.Error())
	})

	result := "done"
	switch {
	case jobErr == nil:
		logger.Debug("outbox job done")
	case permanent(job, jobErr):
		result = "failed"
		logger.Error("outbox job failed permanently", "error", jobErr.Error())
	default:
		result = "retry"
		logger.Warn("outbox job failed, rescheduled", "error", jobErr.Error())
	}
	p.recorder.OutboxJob(job.Kind, result)

	if err != nil {
		logger.Error("failed to settle outbox job", "error", err.Error())
	}
}

func (p *OutboxProcessor) nextRun(job shared.ClaimedJob, jobErr error) (string, time.Time) {
	now := p.clock.Now()
	if permanent(job, jobErr) {
		return shared.OutboxStatusFailed, now
	}
	return shared.OutboxStatusQueued, now.Add(Backoff(job.Attempts))
}

// permanent reports whether retrying cannot help: attempts are used up, or
// the error is a domain verdict rather than an outage.
func permanent(job shared.ClaimedJob, err error) bool {
	if job.Attempts >= job.MaxAttempts {
		return true
	}
	if errs.Is(err, ErrUnknownJobKind) {
		return true
	}
	switch errs.KindOf(err) {
	case errs.KindNotFound, errs.KindPolicyViolation, errs.KindValidation:
		return true
	}
	return false
}

// Backoff doubles from two seconds per attempt, capped at ten minutes.
func Backoff(attempt int32) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	d := baseBackoff
	for i := int32(1); i < attempt; i++ {
		d *= 2
		if d >= maxBackoff {
			return maxBackoff
		}
	}
	return d
}
