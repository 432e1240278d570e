package repository

import (
	"context"

	"venue-booking/internal/domain/slot"
	"venue-booking/internal/infra"
	"venue-booking/internal/infra/repository/converter"
	sqlc "venue-booking/internal/infra/sqlc/generated"
	"venue-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SlotWriteQueries interface {
	CreateSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSlotParams) (sqlc.Slots, error)
	GetSlotByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Slots, error)
	FindAvailableSlotForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.FindAvailableSlotForUpdateParams) (sqlc.Slots, error)
	UpdateSlotState(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateSlotStateParams) (int64, error)
	DeleteSlot(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type SlotRepository struct {
	queries SlotWriteQueries
	db      sqlc.DBTX
}

func NewSlotRepository(queries SlotWriteQueries, db sqlc.DBTX) *SlotRepository {
	return &SlotRepository{
		queries: queries,
		db:      db,
	}
}

// Create inserts a slot. An overlapping blocking slot surfaces as KindConflict.
func (r *SlotRepository) Create(ctx context.Context, tx sqlc.DBTX, s *slot.Slot) error {
	if _, err := r.queries.CreateSlot(ctx, tx, converter.SlotToCreateParams(s)); err != nil {
		return infra.WrapRepoErr("failed to create slot", err)
	}
	return nil
}

func (r *SlotRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*slot.Slot, error) {
	row, err := r.queries.GetSlotByIDForUpdate(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock slot", err)
	}
	return toSlot(row)
}

func (r *SlotRepository) FindAvailableForUpdate(ctx context.Context, tx sqlc.DBTX, hallID uuid.UUID, iv slot.Interval) (*slot.Slot, error) {
	params := sqlc.FindAvailableSlotForUpdateParams{
		HallID:    hallID,
		Date:      pgconv.DateToPgtype(iv.Date()),
		StartTime: pgconv.MinutesToPgtime(iv.Start().Minutes()),
		EndTime:   pgconv.MinutesToPgtime(iv.End().Minutes()),
	}
	row, err := r.queries.FindAvailableSlotForUpdate(ctx, tx, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find available slot", err)
	}
	return toSlot(row)
}

func (r *SlotRepository) Save(ctx context.Context, tx sqlc.DBTX, s *slot.Slot) error {
	n, err := r.queries.UpdateSlotState(ctx, tx, converter.SlotToUpdateParams(s))
	if err != nil {
		return infra.WrapRepoErr("failed to update slot", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SlotRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteSlot(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete slot", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}
	return nil
}

func toSlot(row sqlc.Slots) (*slot.Slot, error) {
	s, err := converter.SlotFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert slot row", err)
	}
	return s, nil
}
