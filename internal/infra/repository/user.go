package repository

import (
	"context"

	"venue-booking/internal/domain/user"
	"venue-booking/internal/infra"
	sqlc "venue-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.Users, error)
	UpdateUserLastLogin(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
}

type UserRepository struct {
	queries UserWriteQueries
	db      sqlc.DBTX
}

func NewUserRepository(queries UserWriteQueries, db sqlc.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

// Create registers an account. A taken email surfaces as KindDuplicateKey.
func (r *UserRepository) Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (uuid.UUID, error) {
	params := sqlc.CreateUserParams{
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		FullName:     u.FullName(),
	}

	row, err := r.queries.CreateUser(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return row.ID, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error {
	err := r.queries.UpdateUserLastLogin(ctx, tx, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}
