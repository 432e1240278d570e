package queries

import (
	"context"

	"venue-booking/internal/infra"
	"venue-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound = errs.Sentinel("user not found", errs.ErrNotFound)
	ErrUserInactive = errs.Sentinel("user inactive", errs.ErrForbidden)
)

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	FindByEmail(ctx context.Context, email string) (*AuthorizedUserView, string, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error) {
	user, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, ErrUserInactive
	}

	return user, nil
}
