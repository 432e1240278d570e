package readstore

import (
	"context"

	"venue-booking/internal/infra"
	sqlc "venue-booking/internal/infra/sqlc/generated"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/pgconv"
	"venue-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type IdempotencyReadQueries interface {
	GetIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.GetIdempotencyKeyParams) (sqlc.IdempotencyKeys, error)
}

type IdempotencyReadStore struct {
	queries IdempotencyReadQueries
	clock   clock.Clock
}

func NewIdempotencyReadStore(queries IdempotencyReadQueries, clk clock.Clock) *IdempotencyReadStore {
	return &IdempotencyReadStore{
		queries: queries,
		clock:   clk,
	}
}

func (r *IdempotencyReadStore) Get(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	params := sqlc.GetIdempotencyKeyParams{
		Key:    key,
		UserID: userID,
	}

	row, err := r.queries.GetIdempotencyKey(ctx, tx, params)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}

	record := &shared.IdempotencyRecord{
		Key:             row.Key,
		UserID:          row.UserID,
		Status:          row.Status,
		RequestHash:     row.RequestHash,
		ResultBookingID: pgconv.UUIDPtrFromPgtype(row.ResultBookingID),
		ExpiresAt:       pgconv.TimeFromPgtype(row.ExpiresAt),
	}

	// an expired key behaves as if it was never stored
	if r.clock.Now().After(record.ExpiresAt) {
		return nil, infra.WrapRepoErr("idempotency key expired", nil, infra.KindNotFound)
	}

	return record, nil
}
