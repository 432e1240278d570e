package repository

import (
	"context"

	"venue-booking/internal/domain/hall"
	"venue-booking/internal/infra"
	"venue-booking/internal/infra/repository/converter"
	sqlc "venue-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type HallWriteQueries interface {
	CreateHall(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateHallParams) (sqlc.Halls, error)
	GetHallByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Halls, error)
	UpdateHall(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateHallParams) (int64, error)
}

type HallRepository struct {
	queries HallWriteQueries
	db      sqlc.DBTX
}

func NewHallRepository(queries HallWriteQueries, db sqlc.DBTX) *HallRepository {
	return &HallRepository{
		queries: queries,
		db:      db,
	}
}

func (r *HallRepository) Create(ctx context.Context, tx sqlc.DBTX, h *hall.Hall) error {
	if _, err := r.queries.CreateHall(ctx, tx, converter.HallToCreateParams(h)); err != nil {
		return infra.WrapRepoErr("failed to create hall", err)
	}
	return nil
}

func (r *HallRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*hall.Hall, error) {
	row, err := r.queries.GetHallByIDForUpdate(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock hall", err)
	}
	return converter.HallFromRow(row), nil
}

func (r *HallRepository) Update(ctx context.Context, tx sqlc.DBTX, h *hall.Hall) error {
	n, err := r.queries.UpdateHall(ctx, tx, converter.HallToUpdateParams(h))
	if err != nil {
		return infra.WrapRepoErr("failed to update hall", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("hall not found", nil, infra.KindNotFound)
	}
	return nil
}
