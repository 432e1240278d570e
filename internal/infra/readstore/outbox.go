package readstore

import (
	"context"

	"venue-booking/internal/infra"
	sqlc "venue-booking/internal/infra/sqlc/generated"
)

type OutboxReadQueries interface {
	CountOutboxJobsByStatus(ctx context.Context, db sqlc.DBTX, status string) (int64, error)
}

type OutboxReadStore struct {
	queries OutboxReadQueries
	db      sqlc.DBTX
}

func NewOutboxReadStore(queries OutboxReadQueries, db sqlc.DBTX) *OutboxReadStore {
	return &OutboxReadStore{queries: queries, db: db}
}

func (r *OutboxReadStore) CountByStatus(ctx context.Context, status string) (int64, error) {
	n, err := r.queries.CountOutboxJobsByStatus(ctx, r.db, status)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count outbox jobs", err)
	}
	return n, nil
}
