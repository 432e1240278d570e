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

type HallViewQueries interface {
	GetHallByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Halls, error)
	GetHallRatingStats(ctx context.Context, db sqlc.DBTX, hallID uuid.UUID) (sqlc.HallRatingStats, error)
}

type HallReadStore struct {
	queries HallViewQueries
	db      sqlc.DBTX
}

func NewHallReadStore(queries HallViewQueries, db sqlc.DBTX) *HallReadStore {
	return &HallReadStore{
		queries: queries,
		db:      db,
	}
}

var hallColumns = []string{
	"id", "owner_id", "name", "description", "location", "capacity",
	"price_per_hour", "approval_status", "rejection_reason", "created_at", "updated_at",
}

func (r *HallReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.HallView, error) {
	row, err := r.queries.GetHallByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hall not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find hall by ID", err)
	}
	return toHallView(row), nil
}

func (r *HallReadStore) List(ctx context.Context, f queries.HallFilter) (*queries.Page[*queries.HallView], error) {
	page := f.PageRequest.Normalize()
	where := hallConditions(f)

	var total int64
	countSQL, countArgs, err := psql.Select("COUNT(*)").From("halls").Where(where).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build hall count query", err)
	}
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, infra.WrapRepoErr("failed to count halls", err)
	}

	listSQL, args, err := psql.Select(hallColumns...).
		From("halls").
		Where(where).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(page.Limit)). // #nosec G115 -- normalized limit is positive
		Offset(page.Offset()).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build hall list query", err)
	}

	rows, err := r.db.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list halls", err)
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.HallView, error) {
		var h sqlc.Halls
		err := row.Scan(&h.ID, &h.OwnerID, &h.Name, &h.Description, &h.Location, &h.Capacity,
			&h.PricePerHour, &h.ApprovalStatus, &h.RejectionReason, &h.CreatedAt, &h.UpdatedAt)
		return toHallView(h), err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan halls", err)
	}

	return &queries.Page[*queries.HallView]{Items: items, Page: page.Page, Limit: page.Limit, Total: total}, nil
}

func hallConditions(f queries.HallFilter) sq.And {
	where := sq.And{}
	if !f.Visibility.AllStatuses {
		visible := sq.Or{sq.Eq{"approval_status": "approved"}}
		if f.Visibility.OwnerID != nil {
			visible = append(visible, sq.Eq{"owner_id": *f.Visibility.OwnerID})
		}
		where = append(where, visible)
	}
	if f.OwnerID != nil {
		where = append(where, sq.Eq{"owner_id": *f.OwnerID})
	}
	if f.ApprovalStatus != nil {
		where = append(where, sq.Eq{"approval_status": *f.ApprovalStatus})
	}
	if f.Location != nil && *f.Location != "" {
		where = append(where, sq.ILike{"location": containsPattern(*f.Location)})
	}
	if f.MinCapacity != nil {
		where = append(where, sq.GtOrEq{"capacity": *f.MinCapacity})
	}
	return where
}

// RatingStats returns zero stats for a hall without feedback.
func (r *HallReadStore) RatingStats(ctx context.Context, hallID uuid.UUID) (*queries.HallRatingStatsView, error) {
	row, err := r.queries.GetHallRatingStats(ctx, r.db, hallID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return &queries.HallRatingStatsView{HallID: hallID}, nil
		}
		return nil, infra.WrapRepoErr("failed to get hall rating stats", err)
	}
	return &queries.HallRatingStatsView{
		HallID:        row.HallID,
		FeedbackCount: row.FeedbackCount,
		AverageRating: row.AverageRating,
		Rating1Count:  row.Rating1,
		Rating2Count:  row.Rating2,
		Rating3Count:  row.Rating3,
		Rating4Count:  row.Rating4,
		Rating5Count:  row.Rating5,
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func toHallView(row sqlc.Halls) *queries.HallView {
	return &queries.HallView{
		ID:              row.ID,
		OwnerID:         row.OwnerID,
		Name:            row.Name,
		Description:     row.Description,
		Location:        row.Location,
		Capacity:        row.Capacity,
		PricePerHour:    row.PricePerHour,
		ApprovalStatus:  row.ApprovalStatus,
		RejectionReason: pgconv.StringPtrFromPgtype(row.RejectionReason),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
