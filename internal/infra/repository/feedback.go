package repository

import (
	"context"

	"venue-booking/internal/domain/feedback"
	"venue-booking/internal/infra"
	"venue-booking/internal/infra/repository/converter"
	sqlc "venue-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type FeedbackWriteQueries interface {
	UpsertFeedback(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertFeedbackParams) (sqlc.Feedback, error)
}

type FeedbackRepository struct {
	queries FeedbackWriteQueries
	db      sqlc.DBTX
}

func NewFeedbackRepository(queries FeedbackWriteQueries, db sqlc.DBTX) *FeedbackRepository {
	return &FeedbackRepository{
		queries: queries,
		db:      db,
	}
}

// Upsert writes the single feedback of a booking and returns the stored id,
// which differs from f.ID() when an earlier entry was replaced.
func (r *FeedbackRepository) Upsert(ctx context.Context, tx sqlc.DBTX, f *feedback.Feedback) (uuid.UUID, error) {
	row, err := r.queries.UpsertFeedback(ctx, tx, converter.FeedbackToUpsertParams(f))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to upsert feedback", err)
	}
	return row.ID, nil
}
