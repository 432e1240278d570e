package queries

import (
	"context"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/user"
	"venue-booking/internal/infra"

	"github.com/google/uuid"
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, f BookingFilter) (*Page[*BookingView], error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID, actor user.Actor) (*BookingView, error)
	List(ctx context.Context, f BookingFilter, actor user.Actor) (*Page[*BookingView], error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actor user.Actor) (*BookingView, error) {
	b, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, err
	}
	if !actor.IsAdmin() && actor.ID != b.CustomerID && actor.ID != b.OwnerID {
		return nil, booking.ErrActorNotAllowed
	}
	return b, nil
}

// List narrows the filter to what the actor may see. Customers see their
// own bookings and hall owners also see bookings at their halls.
func (q *bookingQueriesImpl) List(ctx context.Context, f BookingFilter, actor user.Actor) (*Page[*BookingView], error) {
	id := actor.ID
	switch actor.Role {
	case user.RoleAdmin:
	case user.RoleHallOwner:
		f.VisibleTo = &id
	default:
		f.CustomerID = &id
	}
	return q.readStore.List(ctx, f)
}
