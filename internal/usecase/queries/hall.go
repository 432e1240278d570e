package queries

import (
	"context"

	"venue-booking/internal/domain/hall"
	"venue-booking/internal/domain/user"
	"venue-booking/internal/infra"

	"github.com/google/uuid"
)

type HallReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*HallView, error)
	List(ctx context.Context, f HallFilter) (*Page[*HallView], error)
	RatingStats(ctx context.Context, hallID uuid.UUID) (*HallRatingStatsView, error)
}

type HallQueries interface {
	GetByID(ctx context.Context, id uuid.UUID, viewer *user.Actor) (*HallView, error)
	List(ctx context.Context, f HallFilter, viewer *user.Actor) (*Page[*HallView], error)
	RatingStats(ctx context.Context, hallID uuid.UUID) (*HallRatingStatsView, error)
}

type hallQueriesImpl struct {
	readStore HallReadStore
}

func NewHallQueries(readStore HallReadStore) HallQueries {
	return &hallQueriesImpl{readStore: readStore}
}

// GetByID hides unapproved halls from everyone but their owner and admins.
func (q *hallQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, viewer *user.Actor) (*HallView, error) {
	return findVisibleHall(ctx, q.readStore, id, viewer)
}

func findVisibleHall(ctx context.Context, store HallReadStore, id uuid.UUID, viewer *user.Actor) (*HallView, error) {
	h, err := store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, hall.ErrHallNotFound
		}
		return nil, err
	}
	if h.ApprovalStatus == hall.ApprovalApproved.String() || managesHall(h, viewer) {
		return h, nil
	}
	return nil, hall.ErrHallNotFound
}

func managesHall(h *HallView, viewer *user.Actor) bool {
	return viewer != nil && (viewer.IsAdmin() || viewer.ID == h.OwnerID)
}

func (q *hallQueriesImpl) List(ctx context.Context, f HallFilter, viewer *user.Actor) (*Page[*HallView], error) {
	f.Visibility = HallVisibility{}
	if viewer != nil {
		if viewer.IsAdmin() {
			f.Visibility.AllStatuses = true
		} else {
			id := viewer.ID
			f.Visibility.OwnerID = &id
		}
	}
	return q.readStore.List(ctx, f)
}

func (q *hallQueriesImpl) RatingStats(ctx context.Context, hallID uuid.UUID) (*HallRatingStatsView, error) {
	if _, err := q.readStore.FindByID(ctx, hallID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, hall.ErrHallNotFound
		}
		return nil, err
	}
	return q.readStore.RatingStats(ctx, hallID)
}
