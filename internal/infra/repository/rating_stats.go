package repository

import (
	"context"

	"venue-booking/internal/infra"
	sqlc "venue-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type RatingStatsQueries interface {
	RecalcHallRatingStats(ctx context.Context, db sqlc.DBTX, hallID uuid.UUID) error
}

type RatingStatsRepository struct {
	q  RatingStatsQueries
	db sqlc.DBTX
}

func NewRatingStatsRepository(q RatingStatsQueries, db sqlc.DBTX) *RatingStatsRepository {
	return &RatingStatsRepository{q: q, db: db}
}

func (r *RatingStatsRepository) RecalcHallRatingStats(ctx context.Context, tx sqlc.DBTX, hallID uuid.UUID) error {
	if err := r.q.RecalcHallRatingStats(ctx, tx, hallID); err != nil {
		return infra.WrapRepoErr("failed to recalc hall rating stats", err)
	}
	return nil
}
