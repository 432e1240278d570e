package converter

import (
	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/slot"
	sqlc "venue-booking/internal/infra/sqlc/generated"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	iv := intervalToColumns(b.Interval())
	amounts := b.Amounts()
	return sqlc.CreateBookingParams{
		ID:                    b.ID(),
		HallID:                b.HallID(),
		CustomerID:            b.CustomerID(),
		SlotID:                pgconv.UUIDPtrToPgtype(b.SlotID()),
		Date:                  iv.Date,
		StartTime:             iv.StartTime,
		EndTime:               iv.EndTime,
		TotalMinutes:          pgconv.IntToInt32(b.Interval().DurationMinutes()),
		TotalAmount:           amounts.Total,
		PlatformFeeAmount:     amounts.PlatformFee,
		OwnerCommissionAmount: amounts.OwnerCommission,
		Status:                b.Status().String(),
		PaymentState:          b.Payment().String(),
		FromPublishedSlot:     b.FromPublishedSlot(),
		SpecialRequirements:   pgconv.StringPtrToPgtype(b.SpecialRequirements()),
		CreatedAt:             pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:             pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingToUpdateParams(b *booking.Booking) sqlc.UpdateBookingParams {
	return sqlc.UpdateBookingParams{
		ID:                 b.ID(),
		SlotID:             pgconv.UUIDPtrToPgtype(b.SlotID()),
		Status:             b.Status().String(),
		PaymentState:       b.Payment().String(),
		CancellationReason: pgconv.StringPtrToPgtype(b.CancellationReason()),
		CancelledAt:        pgconv.TimePtrToPgtype(b.CancelledAt()),
		RefundAmount:       pgconv.Int64PtrToPgtype(b.RefundAmount()),
		RefundFraction:     pgconv.Float64PtrToPgtype(b.RefundFraction()),
		ActualCheckIn:      pgconv.TimePtrToPgtype(b.ActualCheckIn()),
		CompletedAt:        pgconv.TimePtrToPgtype(b.CompletedAt()),
		UpdatedAt:          pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingFromRow(row sqlc.Bookings) (*booking.Booking, error) {
	iv, err := IntervalFromColumns(row.Date, row.StartTime, row.EndTime)
	if err != nil {
		return nil, errs.Wrap(err, "invalid booking interval")
	}
	fraction, err := pgconv.Float64PtrFromPgtype(row.RefundFraction)
	if err != nil {
		return nil, errs.Wrap(err, "invalid refund fraction")
	}
	return booking.Reconstruct(booking.Snapshot{
		ID:         row.ID,
		HallID:     row.HallID,
		CustomerID: row.CustomerID,
		SlotID:     pgconv.UUIDPtrFromPgtype(row.SlotID),
		Interval:   iv,
		Amounts: slot.Amounts{
			Total:           row.TotalAmount,
			PlatformFee:     row.PlatformFeeAmount,
			OwnerCommission: row.OwnerCommissionAmount,
		},
		Status:              booking.Status(row.Status),
		Payment:             slot.PaymentState(row.PaymentState),
		FromPublishedSlot:   row.FromPublishedSlot,
		SpecialRequirements: pgconv.StringPtrFromPgtype(row.SpecialRequirements),
		CancellationReason:  pgconv.StringPtrFromPgtype(row.CancellationReason),
		CancelledAt:         pgconv.TimePtrFromPgtype(row.CancelledAt),
		RefundAmount:        pgconv.Int64PtrFromPgtype(row.RefundAmount),
		RefundFraction:      fraction,
		ActualCheckIn:       pgconv.TimePtrFromPgtype(row.ActualCheckIn),
		CompletedAt:         pgconv.TimePtrFromPgtype(row.CompletedAt),
		CreatedAt:           pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:           pgconv.TimeFromPgtype(row.UpdatedAt),
	}), nil
}
