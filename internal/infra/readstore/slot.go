package readstore

import (
	"context"

	"venue-booking/internal/infra"
	sqlc "venue-booking/internal/infra/sqlc/generated"
	"venue-booking/internal/pkg/pgconv"
	"venue-booking/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type SlotReadStore struct {
	db sqlc.DBTX
}

func NewSlotReadStore(db sqlc.DBTX) *SlotReadStore {
	return &SlotReadStore{db: db}
}

var slotColumns = []string{
	"id", "hall_id", "date", "start_time", "end_time", "lifecycle_state",
	"customer_id", "booking_id", "payment_state", "total_amount",
	"platform_fee_amount", "owner_commission_amount", "recurring_pattern", "created_at",
}

// List returns a hall's slots ordered by date then start time.
func (r *SlotReadStore) List(ctx context.Context, hallID uuid.UUID, f queries.SlotFilter) (*queries.Page[*queries.SlotView], error) {
	page := f.PageRequest.Normalize()
	where := slotConditions(hallID, f)

	var total int64
	countSQL, countArgs, err := psql.Select("COUNT(*)").From("slots").Where(where).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build slot count query", err)
	}
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, infra.WrapRepoErr("failed to count slots", err)
	}

	listSQL, args, err := slotListQuery(where, page).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build slot list query", err)
	}
	rows, err := r.db.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slots", err)
	}
	items, err := pgx.CollectRows(rows, scanSlotView)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan slots", err)
	}

	return &queries.Page[*queries.SlotView]{Items: items, Page: page.Page, Limit: page.Limit, Total: total}, nil
}

func slotConditions(hallID uuid.UUID, f queries.SlotFilter) sq.And {
	where := sq.And{sq.Eq{"hall_id": hallID}}
	if f.From != nil {
		where = append(where, sq.GtOrEq{"date": pgconv.DateToPgtype(*f.From)})
	}
	if f.To != nil {
		where = append(where, sq.LtOrEq{"date": pgconv.DateToPgtype(*f.To)})
	}
	if f.State != nil {
		where = append(where, sq.Eq{"lifecycle_state": *f.State})
	}
	switch {
	case f.AvailableOnly:
		where = append(where, sq.Eq{"lifecycle_state": "available"})
	case f.BookedOnly:
		where = append(where, sq.NotEq{"lifecycle_state": "available"})
	}
	return where
}

func slotListQuery(where sq.Sqlizer, page queries.PageRequest) sq.SelectBuilder {
	return psql.Select(slotColumns...).
		From("slots").
		Where(where).
		OrderBy("date ASC", "start_time ASC", "id ASC").
		Limit(uint64(page.Limit)). // #nosec G115 -- normalized limit is positive
		Offset(page.Offset())
}

func scanSlotView(row pgx.CollectableRow) (*queries.SlotView, error) {
	var s sqlc.Slots
	err := row.Scan(&s.ID, &s.HallID, &s.Date, &s.StartTime, &s.EndTime, &s.LifecycleState,
		&s.CustomerID, &s.BookingID, &s.PaymentState, &s.TotalAmount,
		&s.PlatformFeeAmount, &s.OwnerCommissionAmount, &s.RecurringPattern, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &queries.SlotView{
		ID:                    s.ID,
		HallID:                s.HallID,
		Date:                  formatDate(s.Date),
		StartTime:             formatClock(s.StartTime),
		EndTime:               formatClock(s.EndTime),
		DurationHours:         spanHours(s.StartTime, s.EndTime),
		LifecycleState:        s.LifecycleState,
		IsAvailable:           s.LifecycleState == "available",
		CustomerID:            pgconv.UUIDPtrFromPgtype(s.CustomerID),
		BookingID:             pgconv.UUIDPtrFromPgtype(s.BookingID),
		PaymentState:          s.PaymentState,
		TotalAmount:           s.TotalAmount,
		PlatformFeeAmount:     s.PlatformFeeAmount,
		OwnerCommissionAmount: s.OwnerCommissionAmount,
		RecurringPattern:      s.RecurringPattern,
		CreatedAt:             pgconv.TimeFromPgtype(s.CreatedAt),
	}, nil
}
