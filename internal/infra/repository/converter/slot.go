package converter

import (
	"time"

	"venue-booking/internal/domain/slot"
	sqlc "venue-booking/internal/infra/sqlc/generated"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

// stateColumns is the flat form of a slot state variant.
type stateColumns struct {
	Lifecycle          string
	CustomerID         pgtype.UUID
	BookingID          pgtype.UUID
	Payment            string
	Amounts            slot.Amounts
	CancellationReason pgtype.Text
	CancelledAt        pgtype.Timestamptz
	RefundAmount       pgtype.Int8
	CheckedInAt        pgtype.Timestamptz
	CompletedAt        pgtype.Timestamptz
	NoShowAt           pgtype.Timestamptz
}

func flattenState(st slot.State) stateColumns {
	cols := stateColumns{
		Lifecycle: st.Lifecycle().String(),
		Payment:   slot.PaymentNotApplicable.String(),
	}
	b, ok := slot.BookedPart(st)
	if !ok {
		return cols
	}
	cols.CustomerID = pgconv.UUIDToPgtype(b.CustomerID)
	cols.BookingID = pgconv.UUIDToPgtype(b.BookingID)
	cols.Payment = b.Payment.String()
	cols.Amounts = b.Amounts

	switch v := st.(type) {
	case slot.Completed:
		cols.CheckedInAt = pgconv.TimePtrToPgtype(v.CheckedInAt)
		cols.CompletedAt = pgconv.TimeToPgtype(v.CompletedAt)
	case slot.Cancelled:
		cols.CancellationReason = pgconv.StringToPgtype(v.Reason)
		cols.CancelledAt = pgconv.TimeToPgtype(v.CancelledAt)
		refund := v.RefundAmount
		cols.RefundAmount = pgconv.Int64PtrToPgtype(&refund)
	case slot.NoShow:
		cols.NoShowAt = pgconv.TimeToPgtype(v.MarkedAt)
	}
	return cols
}

func SlotToCreateParams(s *slot.Slot) sqlc.CreateSlotParams {
	iv := intervalToColumns(s.Interval())
	st := flattenState(s.State())
	return sqlc.CreateSlotParams{
		ID:                    s.ID(),
		HallID:                s.HallID(),
		Date:                  iv.Date,
		StartTime:             iv.StartTime,
		EndTime:               iv.EndTime,
		StartsAt:              pgconv.TimestampToPgtype(s.Interval().StartsAt()),
		EndsAt:                pgconv.TimestampToPgtype(s.Interval().EndsAt()),
		LifecycleState:        st.Lifecycle,
		CustomerID:            st.CustomerID,
		BookingID:             st.BookingID,
		PaymentState:          st.Payment,
		TotalAmount:           st.Amounts.Total,
		PlatformFeeAmount:     st.Amounts.PlatformFee,
		OwnerCommissionAmount: st.Amounts.OwnerCommission,
		RecurringPattern:      s.RecurringPattern(),
		CreatedAt:             pgconv.TimeToPgtype(s.CreatedAt()),
		UpdatedAt:             pgconv.TimeToPgtype(s.UpdatedAt()),
	}
}

func SlotToUpdateParams(s *slot.Slot) sqlc.UpdateSlotStateParams {
	st := flattenState(s.State())
	return sqlc.UpdateSlotStateParams{
		ID:                    s.ID(),
		LifecycleState:        st.Lifecycle,
		CustomerID:            st.CustomerID,
		BookingID:             st.BookingID,
		PaymentState:          st.Payment,
		TotalAmount:           st.Amounts.Total,
		PlatformFeeAmount:     st.Amounts.PlatformFee,
		OwnerCommissionAmount: st.Amounts.OwnerCommission,
		CancellationReason:    st.CancellationReason,
		CancelledAt:           st.CancelledAt,
		RefundAmount:          st.RefundAmount,
		CheckedInAt:           st.CheckedInAt,
		CompletedAt:           st.CompletedAt,
		NoShowAt:              st.NoShowAt,
		UpdatedAt:             pgconv.TimeToPgtype(s.UpdatedAt()),
	}
}

func SlotFromRow(row sqlc.Slots) (*slot.Slot, error) {
	iv, err := IntervalFromColumns(row.Date, row.StartTime, row.EndTime)
	if err != nil {
		return nil, errs.Wrap(err, "invalid slot interval")
	}
	st, err := stateFromRow(row)
	if err != nil {
		return nil, err
	}
	return slot.Reconstruct(
		row.ID,
		row.HallID,
		iv,
		st,
		row.RecurringPattern,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func stateFromRow(row sqlc.Slots) (slot.State, error) {
	lifecycle := slot.LifecycleState(row.LifecycleState)
	if lifecycle == slot.LifecycleAvailable {
		return slot.Available{}, nil
	}
	if !row.CustomerID.Valid || !row.BookingID.Valid {
		return nil, slot.ErrInconsistentSlotData
	}

	booked := slot.Booked{
		CustomerID: row.CustomerID.Bytes,
		BookingID:  row.BookingID.Bytes,
		Amounts: slot.Amounts{
			Total:           row.TotalAmount,
			PlatformFee:     row.PlatformFeeAmount,
			OwnerCommission: row.OwnerCommissionAmount,
		},
		Payment: slot.PaymentState(row.PaymentState),
	}

	switch lifecycle {
	case slot.LifecycleConfirmed:
		return slot.Confirmed{Booked: booked}, nil
	case slot.LifecycleCompleted:
		return slot.Completed{
			Booked:      booked,
			CheckedInAt: pgconv.TimePtrFromPgtype(row.CheckedInAt),
			CompletedAt: timeOr(row.CompletedAt, row.UpdatedAt),
		}, nil
	case slot.LifecycleCancelled:
		var refund int64
		if row.RefundAmount.Valid {
			refund = row.RefundAmount.Int64
		}
		return slot.Cancelled{
			Booked:       booked,
			Reason:       row.CancellationReason.String,
			CancelledAt:  timeOr(row.CancelledAt, row.UpdatedAt),
			RefundAmount: refund,
		}, nil
	case slot.LifecycleNoShow:
		return slot.NoShow{Booked: booked, MarkedAt: timeOr(row.NoShowAt, row.UpdatedAt)}, nil
	default:
		return nil, slot.ErrInconsistentSlotData
	}
}

func timeOr(t, fallback pgtype.Timestamptz) time.Time {
	if t.Valid {
		return t.Time
	}
	return fallback.Time
}
