//go:build unit || e2e

package builder

import (
	"time"

	"venue-booking/internal/domain/user"
	sqlc "venue-booking/internal/infra/sqlc/generated"
	"venue-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	FullName     string
	IsActive     bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Role:         "customer",
		FullName:     "Test User",
		IsActive:     true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(email, u.PasswordHash, role, u.FullName)
}

func (u *UserBuilder) BuildInfra() sqlc.Users {
	now := time.Now()
	return sqlc.Users{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		FullName:     u.FullName,
		LastLogin:    pgtype.Timestamptz{},
		IsActive:     u.IsActive,
		CreatedAt:    pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:    pgtype.Timestamptz{Time: now, Valid: true},
	}
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       u.ID,
		Email:    u.Email,
		Role:     u.Role,
		FullName: u.FullName,
		IsActive: u.IsActive,
	}
}

func (u *UserBuilder) BuildActor() user.Actor {
	return user.Actor{ID: u.ID, Role: user.Role(u.Role)}
}

// Fluent builder methods
func (u *UserBuilder) WithID(id uuid.UUID) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) WithFullName(name string) *UserBuilder {
	u.FullName = name
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
