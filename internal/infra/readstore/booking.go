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

type BookingReadStore struct {
	db sqlc.DBTX
}

func NewBookingReadStore(db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

var bookingColumns = []string{
	"b.id", "b.hall_id", "h.name", "h.owner_id", "b.customer_id", "u.email", "b.slot_id",
	"b.date", "b.start_time", "b.end_time", "b.total_amount", "b.platform_fee_amount",
	"b.owner_commission_amount", "b.status", "b.payment_state", "b.special_requirements",
	"b.cancellation_reason", "b.cancelled_at", "b.refund_amount", "b.refund_fraction",
	"b.actual_check_in", "b.completed_at", "b.created_at", "b.updated_at",
}

func bookingBase(columns ...string) sq.SelectBuilder {
	return psql.Select(columns...).
		From("bookings b").
		Join("halls h ON h.id = b.hall_id").
		Join("users u ON u.id = b.customer_id")
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	query, args, err := bookingBase(bookingColumns...).Where(sq.Eq{"b.id": id}).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	view, err := pgx.CollectExactlyOneRow(rows, scanBookingView)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan booking", err)
	}
	return view, nil
}

func (r *BookingReadStore) List(ctx context.Context, f queries.BookingFilter) (*queries.Page[*queries.BookingView], error) {
	page := f.PageRequest.Normalize()
	where := bookingConditions(f)

	var total int64
	countSQL, countArgs, err := bookingBase("COUNT(*)").Where(where).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking count query", err)
	}
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, infra.WrapRepoErr("failed to count bookings", err)
	}

	listSQL, args, err := bookingBase(bookingColumns...).
		Where(where).
		OrderBy("b.date DESC", "b.start_time DESC", "b.id DESC").
		Limit(uint64(page.Limit)). // #nosec G115 -- normalized limit is positive
		Offset(page.Offset()).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking list query", err)
	}
	rows, err := r.db.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	items, err := pgx.CollectRows(rows, scanBookingView)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan bookings", err)
	}

	return &queries.Page[*queries.BookingView]{Items: items, Page: page.Page, Limit: page.Limit, Total: total}, nil
}

func bookingConditions(f queries.BookingFilter) sq.And {
	where := sq.And{}
	if f.HallID != nil {
		where = append(where, sq.Eq{"b.hall_id": *f.HallID})
	}
	if f.CustomerID != nil {
		where = append(where, sq.Eq{"b.customer_id": *f.CustomerID})
	}
	if f.OwnerID != nil {
		where = append(where, sq.Eq{"h.owner_id": *f.OwnerID})
	}
	if f.From != nil {
		where = append(where, sq.GtOrEq{"b.date": pgconv.DateToPgtype(*f.From)})
	}
	if f.To != nil {
		where = append(where, sq.LtOrEq{"b.date": pgconv.DateToPgtype(*f.To)})
	}
	if f.Status != nil {
		where = append(where, sq.Eq{"b.status": *f.Status})
	}
	if f.PaymentState != nil {
		where = append(where, sq.Eq{"b.payment_state": *f.PaymentState})
	}
	if f.VisibleTo != nil {
		where = append(where, sq.Or{sq.Eq{"b.customer_id": *f.VisibleTo}, sq.Eq{"h.owner_id": *f.VisibleTo}})
	}
	return where
}

func scanBookingView(row pgx.CollectableRow) (*queries.BookingView, error) {
	var (
		b             sqlc.Bookings
		hallName      string
		ownerID       uuid.UUID
		customerEmail string
	)
	err := row.Scan(&b.ID, &b.HallID, &hallName, &ownerID, &b.CustomerID, &customerEmail, &b.SlotID,
		&b.Date, &b.StartTime, &b.EndTime, &b.TotalAmount, &b.PlatformFeeAmount,
		&b.OwnerCommissionAmount, &b.Status, &b.PaymentState, &b.SpecialRequirements,
		&b.CancellationReason, &b.CancelledAt, &b.RefundAmount, &b.RefundFraction,
		&b.ActualCheckIn, &b.CompletedAt, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	refundFraction, err := pgconv.Float64PtrFromPgtype(b.RefundFraction)
	if err != nil {
		return nil, err
	}
	return &queries.BookingView{
		ID:                    b.ID,
		HallID:                b.HallID,
		HallName:              hallName,
		OwnerID:               ownerID,
		CustomerID:            b.CustomerID,
		CustomerEmail:         customerEmail,
		SlotID:                pgconv.UUIDPtrFromPgtype(b.SlotID),
		Date:                  formatDate(b.Date),
		StartTime:             formatClock(b.StartTime),
		EndTime:               formatClock(b.EndTime),
		TotalHours:            spanHours(b.StartTime, b.EndTime),
		TotalAmount:           b.TotalAmount,
		PlatformFeeAmount:     b.PlatformFeeAmount,
		OwnerCommissionAmount: b.OwnerCommissionAmount,
		Status:                b.Status,
		PaymentState:          b.PaymentState,
		SpecialRequirements:   pgconv.StringPtrFromPgtype(b.SpecialRequirements),
		CancellationReason:    pgconv.StringPtrFromPgtype(b.CancellationReason),
		CancelledAt:           pgconv.TimePtrFromPgtype(b.CancelledAt),
		RefundAmount:          pgconv.Int64PtrFromPgtype(b.RefundAmount),
		RefundFraction:        refundFraction,
		ActualCheckIn:         pgconv.TimePtrFromPgtype(b.ActualCheckIn),
		CompletedAt:           pgconv.TimePtrFromPgtype(b.CompletedAt),
		CreatedAt:             pgconv.TimeFromPgtype(b.CreatedAt),
		UpdatedAt:             pgconv.TimeFromPgtype(b.UpdatedAt),
	}, nil
}
