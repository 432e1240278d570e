package repository

import (
	"context"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/infra"
	"venue-booking/internal/infra/repository/converter"
	sqlc "venue-booking/internal/infra/sqlc/generated"
	"venue-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (sqlc.Bookings, error)
	GetBookingByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	GetBookingBySlotIDForUpdate(ctx context.Context, db sqlc.DBTX, slotID pgtype.UUID) (sqlc.Bookings, error)
	UpdateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingParams) (int64, error)
	DeleteBooking(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	if _, err := r.queries.CreateBooking(ctx, tx, converter.BookingToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByIDForUpdate(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	return toBooking(row)
}

func (r *BookingRepository) FindBySlotIDForUpdate(ctx context.Context, tx sqlc.DBTX, slotID uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingBySlotIDForUpdate(ctx, tx, pgconv.UUIDToPgtype(slotID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock booking by slot", err)
	}
	return toBooking(row)
}

func (r *BookingRepository) Save(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	n, err := r.queries.UpdateBooking(ctx, tx, converter.BookingToUpdateParams(b))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteBooking(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func toBooking(row sqlc.Bookings) (*booking.Booking, error) {
	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert booking row", err)
	}
	return b, nil
}
