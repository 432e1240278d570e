package queries

import (
	"context"
	"time"

	"venue-booking/internal/domain/revenue"
	"venue-booking/internal/domain/user"
	"venue-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

// RevenueKeyset is the position of the last row of a ledger page.
type RevenueKeyset struct {
	CompletedAt time.Time
	ID          uuid.UUID
}

type RevenueReadStore interface {
	List(ctx context.Context, f RevenueFilter, after *RevenueKeyset, limit int32) ([]*RevenueRecordView, error)
	Summary(ctx context.Context, f RevenueFilter) (RevenueTotals, error)
}

type RevenueQueries interface {
	List(ctx context.Context, f RevenueFilter, actor user.Actor) ([]*RevenueRecordView, *Cursor, error)
	Summary(ctx context.Context, period string, at *time.Time, hallID *uuid.UUID, actor user.Actor) (*RevenueSummary, error)
}

type revenueQueriesImpl struct {
	readStore RevenueReadStore
	clock     clock.Clock
}

func NewRevenueQueries(readStore RevenueReadStore, clk clock.Clock) RevenueQueries {
	return &revenueQueriesImpl{readStore: readStore, clock: clk}
}

// scopeRevenue limits hall owners to the ledger of their own halls.
func scopeRevenue(f RevenueFilter, actor user.Actor) RevenueFilter {
	if !actor.IsAdmin() {
		id := actor.ID
		f.OwnerID = &id
	}
	return f
}

func (q *revenueQueriesImpl) List(ctx context.Context, f RevenueFilter, actor user.Actor) ([]*RevenueRecordView, *Cursor, error) {
	f = scopeRevenue(f, actor)
	limit := ValidateLimit(f.Limit)

	var after *RevenueKeyset
	if f.Cursor != nil && f.Cursor.After != "" {
		completedAt, id, err := DecodeAfterCursor(f.Cursor.After)
		if err != nil {
			return nil, nil, ErrInvalidCursor
		}
		after = &RevenueKeyset{CompletedAt: completedAt, ID: id}
	}

	rows, err := q.readStore.List(ctx, f, after, int32(limit+1)) // #nosec G115 -- limit is capped by ValidateLimit
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CompletedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

// Summary totals the calendar month or week containing at, read in the
// marketplace time zone. A missing at means now.
func (q *revenueQueriesImpl) Summary(ctx context.Context, period string, at *time.Time, hallID *uuid.UUID, actor user.Actor) (*RevenueSummary, error) {
	p, err := revenue.NewPeriod(period)
	if err != nil {
		return nil, err
	}

	ref := q.clock.Now()
	if at != nil {
		y, m, d := at.Date()
		ref = time.Date(y, m, d, 12, 0, 0, 0, ref.Location())
	}
	from, to := p.Bounds(ref)

	f := scopeRevenue(RevenueFilter{HallID: hallID, From: &from, To: &to}, actor)
	totals, err := q.readStore.Summary(ctx, f)
	if err != nil {
		return nil, err
	}

	return &RevenueSummary{
		Period:        string(p),
		From:          from,
		To:            to,
		RevenueTotals: totals,
	}, nil
}
