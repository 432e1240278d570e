package readstore

import (
	"context"

	"venue-booking/internal/infra"
	sqlc "venue-booking/internal/infra/sqlc/generated"
	"venue-booking/internal/pkg/pgconv"
	"venue-booking/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

type RevenueReadStore struct {
	db sqlc.DBTX
}

func NewRevenueReadStore(db sqlc.DBTX) *RevenueReadStore {
	return &RevenueReadStore{db: db}
}

var revenueColumns = []string{
	"id", "booking_id", "hall_id", "hall_name", "owner_id", "customer_id", "customer_email",
	"date", "start_time", "end_time", "total_amount", "platform_fee_amount",
	"owner_commission_amount", "completed_at", "transaction_ref", "status", "created_at",
}

// List pages the ledger newest first. after, when set, is the last row of the previous page.
func (r *RevenueReadStore) List(ctx context.Context, f queries.RevenueFilter, after *queries.RevenueKeyset, limit int32) ([]*queries.RevenueRecordView, error) {
	where := revenueConditions(f)
	if after != nil {
		where = append(where, sq.Expr("(completed_at, id) < (?, ?)", after.CompletedAt, after.ID))
	}

	query, args, err := psql.Select(revenueColumns...).
		From("revenue_records").
		Where(where).
		OrderBy("completed_at DESC", "id DESC").
		Limit(uint64(limit)). // #nosec G115 -- callers pass a validated positive limit
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build revenue list query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list revenue records", err)
	}
	items, err := pgx.CollectRows(rows, scanRevenueView)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan revenue records", err)
	}
	return items, nil
}

// Summary totals the records matching f. Refunded records are counted but
// excluded from the amount sums.
func (r *RevenueReadStore) Summary(ctx context.Context, f queries.RevenueFilter) (queries.RevenueTotals, error) {
	query, args, err := psql.Select(
		"COUNT(*)",
		"COUNT(*) FILTER (WHERE status = 'refunded')",
		"COALESCE(SUM(total_amount) FILTER (WHERE status <> 'refunded'), 0)::bigint",
		"COALESCE(SUM(platform_fee_amount) FILTER (WHERE status <> 'refunded'), 0)::bigint",
		"COALESCE(SUM(owner_commission_amount) FILTER (WHERE status <> 'refunded'), 0)::bigint",
	).
		From("revenue_records").
		Where(revenueConditions(f)).
		ToSql()
	if err != nil {
		return queries.RevenueTotals{}, infra.WrapRepoErr("failed to build revenue summary query", err)
	}

	var t queries.RevenueTotals
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&t.RecordCount, &t.RefundedCount, &t.TotalAmount, &t.PlatformFeeAmount, &t.OwnerCommissionAmount)
	if err != nil {
		return queries.RevenueTotals{}, infra.WrapRepoErr("failed to summarize revenue", err)
	}
	return t, nil
}

// revenueConditions bounds completed_at to the half-open range [From, To).
func revenueConditions(f queries.RevenueFilter) sq.And {
	where := sq.And{}
	if f.OwnerID != nil {
		where = append(where, sq.Eq{"owner_id": *f.OwnerID})
	}
	if f.HallID != nil {
		where = append(where, sq.Eq{"hall_id": *f.HallID})
	}
	if f.From != nil {
		where = append(where, sq.GtOrEq{"completed_at": *f.From})
	}
	if f.To != nil {
		where = append(where, sq.Lt{"completed_at": *f.To})
	}
	if f.Status != nil {
		where = append(where, sq.Eq{"status": *f.Status})
	}
	return where
}

func scanRevenueView(row pgx.CollectableRow) (*queries.RevenueRecordView, error) {
	var rr sqlc.RevenueRecords
	err := row.Scan(&rr.ID, &rr.BookingID, &rr.HallID, &rr.HallName, &rr.OwnerID, &rr.CustomerID, &rr.CustomerEmail,
		&rr.Date, &rr.StartTime, &rr.EndTime, &rr.TotalAmount, &rr.PlatformFeeAmount,
		&rr.OwnerCommissionAmount, &rr.CompletedAt, &rr.TransactionRef, &rr.Status, &rr.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &queries.RevenueRecordView{
		ID:                    rr.ID,
		BookingID:             rr.BookingID,
		HallID:                rr.HallID,
		HallName:              rr.HallName,
		OwnerID:               rr.OwnerID,
		CustomerID:            rr.CustomerID,
		CustomerEmail:         rr.CustomerEmail,
		Date:                  formatDate(rr.Date),
		StartTime:             formatClock(rr.StartTime),
		EndTime:               formatClock(rr.EndTime),
		TotalAmount:           rr.TotalAmount,
		PlatformFeeAmount:     rr.PlatformFeeAmount,
		OwnerCommissionAmount: rr.OwnerCommissionAmount,
		CompletedAt:           pgconv.TimeFromPgtype(rr.CompletedAt),
		TransactionRef:        rr.TransactionRef,
		Status:                rr.Status,
		CreatedAt:             pgconv.TimeFromPgtype(rr.CreatedAt),
	}, nil
}
