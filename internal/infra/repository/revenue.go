package repository

import (
	"context"

	"venue-booking/internal/domain/revenue"
	"venue-booking/internal/infra"
	"venue-booking/internal/infra/repository/converter"
	sqlc "venue-booking/internal/infra/sqlc/generated"
	"venue-booking/internal/pkg/pgconv"
	"venue-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type RevenueWriteQueries interface {
	GetRevenueSource(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetRevenueSourceRow, error)
	InsertRevenueRecord(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertRevenueRecordParams) (sqlc.RevenueRecords, error)
	GetRevenueRecordByBookingID(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) (sqlc.RevenueRecords, error)
	GetRevenueRecordByBookingIDForUpdate(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) (sqlc.RevenueRecords, error)
	UpdateRevenueRecordStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRevenueRecordStatusParams) (int64, error)
}

type RevenueRepository struct {
	queries RevenueWriteQueries
	db      sqlc.DBTX
}

func NewRevenueRepository(queries RevenueWriteQueries, db sqlc.DBTX) *RevenueRepository {
	return &RevenueRepository{
		queries: queries,
		db:      db,
	}
}

// Source loads the booking joined with its hall and customer.
func (r *RevenueRepository) Source(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID) (*shared.RevenueSource, error) {
	row, err := r.queries.GetRevenueSource(ctx, tx, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load revenue source", err)
	}
	snapshot, err := converter.RevenueSnapshotFromSource(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert revenue source", err)
	}
	return &shared.RevenueSource{Snapshot: snapshot, BookingStatus: row.Status}, nil
}

func (r *RevenueRepository) Insert(ctx context.Context, tx sqlc.DBTX, rec *revenue.Record) (bool, error) {
	_, err := r.queries.InsertRevenueRecord(ctx, tx, converter.RevenueToInsertParams(rec))
	if err != nil {
		// ON CONFLICT DO NOTHING returns no row
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to insert revenue record", err)
	}
	return true, nil
}

func (r *RevenueRepository) FindByBookingID(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID) (*revenue.Record, error) {
	row, err := r.queries.GetRevenueRecordByBookingID(ctx, tx, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find revenue record", err)
	}
	return toRevenueRecord(row)
}

func (r *RevenueRepository) FindByBookingIDForUpdate(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID) (*revenue.Record, error) {
	row, err := r.queries.GetRevenueRecordByBookingIDForUpdate(ctx, tx, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock revenue record", err)
	}
	return toRevenueRecord(row)
}

func (r *RevenueRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, rec *revenue.Record) error {
	params := sqlc.UpdateRevenueRecordStatusParams{
		ID:        rec.ID(),
		Status:    rec.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(rec.UpdatedAt()),
	}
	n, err := r.queries.UpdateRevenueRecordStatus(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update revenue record", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("revenue record not found", nil, infra.KindNotFound)
	}
	return nil
}

func toRevenueRecord(row sqlc.RevenueRecords) (*revenue.Record, error) {
	rec, err := converter.RevenueFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert revenue row", err)
	}
	return rec, nil
}
