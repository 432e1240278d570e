package converter

import (
	"venue-booking/internal/domain/revenue"
	"venue-booking/internal/domain/slot"
	sqlc "venue-booking/internal/infra/sqlc/generated"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/pkg/pgconv"
)

func RevenueToInsertParams(r *revenue.Record) sqlc.InsertRevenueRecordParams {
	s := r.Snapshot()
	iv := intervalToColumns(s.Interval)
	return sqlc.InsertRevenueRecordParams{
		ID:                    r.ID(),
		BookingID:             s.BookingID,
		HallID:                s.HallID,
		HallName:              s.HallName,
		OwnerID:               s.OwnerID,
		CustomerID:            s.CustomerID,
		CustomerEmail:         s.CustomerEmail,
		Date:                  iv.Date,
		StartTime:             iv.StartTime,
		EndTime:               iv.EndTime,
		TotalAmount:           s.Amounts.Total,
		PlatformFeeAmount:     s.Amounts.PlatformFee,
		OwnerCommissionAmount: s.Amounts.OwnerCommission,
		CompletedAt:           pgconv.TimeToPgtype(s.CompletedAt),
		TransactionRef:        r.TransactionRef(),
		Status:                r.Status().String(),
		CreatedAt:             pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:             pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func RevenueFromRow(row sqlc.RevenueRecords) (*revenue.Record, error) {
	iv, err := IntervalFromColumns(row.Date, row.StartTime, row.EndTime)
	if err != nil {
		return nil, errs.Wrap(err, "invalid revenue interval")
	}
	snapshot := revenue.Snapshot{
		BookingID:     row.BookingID,
		HallID:        row.HallID,
		HallName:      row.HallName,
		OwnerID:       row.OwnerID,
		CustomerID:    row.CustomerID,
		CustomerEmail: row.CustomerEmail,
		Interval:      iv,
		Amounts: slot.Amounts{
			Total:           row.TotalAmount,
			PlatformFee:     row.PlatformFeeAmount,
			OwnerCommission: row.OwnerCommissionAmount,
		},
		CompletedAt: pgconv.TimeFromPgtype(row.CompletedAt),
	}
	return revenue.Reconstruct(
		row.ID,
		snapshot,
		row.TransactionRef,
		revenue.Status(row.Status),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func RevenueSnapshotFromSource(row sqlc.GetRevenueSourceRow) (revenue.Snapshot, error) {
	iv, err := IntervalFromColumns(row.Date, row.StartTime, row.EndTime)
	if err != nil {
		return revenue.Snapshot{}, errs.Wrap(err, "invalid booking interval")
	}
	return revenue.Snapshot{
		BookingID:     row.BookingID,
		HallID:        row.HallID,
		HallName:      row.HallName,
		OwnerID:       row.OwnerID,
		CustomerID:    row.CustomerID,
		CustomerEmail: row.CustomerEmail,
		Interval:      iv,
		Amounts: slot.Amounts{
			Total:           row.TotalAmount,
			PlatformFee:     row.PlatformFeeAmount,
			OwnerCommission: row.OwnerCommissionAmount,
		},
		CompletedAt: pgconv.TimeFromPgtype(row.CompletedAt),
	}, nil
}
