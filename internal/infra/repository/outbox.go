package repository

import (
	"context"
	"time"

	"venue-booking/internal/infra"
	sqlc "venue-booking/internal/infra/sqlc/generated"
	"venue-booking/internal/pkg/pgconv"
	"venue-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OutboxWriteQueries interface {
	CreateOutboxJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOutboxJobParams) error
	ClaimDueOutboxJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimDueOutboxJobsParams) ([]sqlc.OutboxJobs, error)
	CompleteOutboxJob(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	RescheduleOutboxJob(ctx context.Context, db sqlc.DBTX, arg sqlc.RescheduleOutboxJobParams) error
}

type OutboxRepository struct {
	queries OutboxWriteQueries
	db      sqlc.DBTX
}

func NewOutboxRepository(queries OutboxWriteQueries, db sqlc.DBTX) *OutboxRepository {
	return &OutboxRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OutboxRepository) Enqueue(ctx context.Context, tx sqlc.DBTX, job shared.OutboxJob) error {
	params := sqlc.CreateOutboxJobParams{
		Kind:        job.Kind,
		Topic:       job.Topic,
		Payload:     job.Payload,
		MaxAttempts: job.MaxAttempts,
		RunAt:       pgtype.Timestamptz{Time: job.RunAt, Valid: true},
	}

	err := r.queries.CreateOutboxJob(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to enqueue outbox job", err)
	}

	return nil
}

// ClaimDue moves due queued jobs to processing, along with processing jobs
// last touched before staleBefore. Locked rows are skipped so concurrent
// workers never claim the same job.
func (r *OutboxRepository) ClaimDue(ctx context.Context, tx sqlc.DBTX, limit int32, staleBefore time.Time) ([]shared.ClaimedJob, error) {
	rows, err := r.queries.ClaimDueOutboxJobs(ctx, tx, sqlc.ClaimDueOutboxJobsParams{
		StaleBefore: pgconv.TimeToPgtype(staleBefore),
		BatchLimit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim outbox jobs", err)
	}

	jobs := make([]shared.ClaimedJob, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, shared.ClaimedJob{
			ID:          row.ID,
			Kind:        row.Kind,
			Topic:       row.Topic,
			Payload:     row.Payload,
			Attempts:    row.Attempts,
			MaxAttempts: row.MaxAttempts,
		})
	}
	return jobs, nil
}

func (r *OutboxRepository) Complete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	if err := r.queries.CompleteOutboxJob(ctx, tx, id); err != nil {
		return infra.WrapRepoErr("failed to complete outbox job", err)
	}
	return nil
}

func (r *OutboxRepository) Reschedule(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status string, runAt time.Time, lastError string) error {
	params := sqlc.RescheduleOutboxJobParams{
		ID:        id,
		Status:    status,
		RunAt:     pgconv.TimeToPgtype(runAt),
		LastError: pgconv.StringToPgtype(lastError),
	}

	err := r.queries.RescheduleOutboxJob(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to reschedule outbox job", err)
	}

	return nil
}
