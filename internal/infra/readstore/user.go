package readstore

import (
	"context"

	"github.com/google/uuid"

	"venue-booking/internal/infra"
	sqlc "venue-booking/internal/infra/sqlc/generated"
	"venue-booking/internal/pkg/pgconv"
	"venue-booking/internal/usecase/queries"
)

type UserReadQueries interface {
	FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
	FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return toAuthorizedUserView(row), nil
}

// FindByEmail also returns the password hash for credential checks.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	row, err := r.queries.FindUserByEmail(ctx, r.db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	return toAuthorizedUserView(row), row.PasswordHash, nil
}

func toAuthorizedUserView(row sqlc.Users) *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:        row.ID,
		Email:     row.Email,
		Role:      row.Role,
		FullName:  row.FullName,
		IsActive:  row.IsActive,
		LastLogin: pgconv.TimePtrFromPgtype(row.LastLogin),
	}
}
