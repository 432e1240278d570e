//go:build unit

package repository

import (
	"context"
	"testing"

	"venue-booking/internal/domain/user"
	"venue-booking/internal/infra"
	sqlc "venue-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserWriteQueries struct {
	mock.Mock
}

func (m *MockUserWriteQueries) UpdateUserLastLogin(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error {
	args := m.Called(ctx, db, id)
	return args.Error(0)
}

func (m *MockUserWriteQueries) CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.Users, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

// sqlc.DBTX implementation for MockUserWriteQueries
func (m *MockUserWriteQueries) Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockUserWriteQueries) Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *MockUserWriteQueries) QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

func TestUpdateLastLogin(t *testing.T) {
	testUserID := uuid.New()

	tests := []struct {
		name      string
		userID    uuid.UUID
		mockError error
		wantError bool
	}{
		{
			name:      "success",
			userID:    testUserID,
			mockError: nil,
			wantError: false,
		},
		{
			name:      "database error",
			userID:    testUserID,
			mockError: assert.AnError,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserWriteQueries)
			mockQueries.On("UpdateUserLastLogin", mock.Anything, mock.Anything, tt.userID).Return(tt.mockError)

			repo := NewUserRepository(mockQueries, mockQueries)

			err := repo.UpdateLastLogin(context.Background(), mockQueries, tt.userID)

			if tt.wantError {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				assert.NoError(t, err)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestCreateUser(t *testing.T) {
	email, err := user.NewEmail("owner@example.com")
	require.NoError(t, err)
	u, err := user.NewUser(email, "hash", user.RoleHallOwner, "Hall Owner")
	require.NoError(t, err)
	storedID := uuid.New()

	tests := []struct {
		name      string
		row       sqlc.Users
		mockError error
		wantID    uuid.UUID
		wantKind  infra.RepositoryErrorKind
	}{
		{
			name:   "success returns stored id",
			row:    sqlc.Users{ID: storedID},
			wantID: storedID,
		},
		{
			name:      "duplicate email",
			mockError: &pgconn.PgError{Code: "23505"},
			wantKind:  infra.KindDuplicateKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserWriteQueries)
			mockQueries.On("CreateUser", mock.Anything, mock.Anything, sqlc.CreateUserParams{
				Email:        "owner@example.com",
				PasswordHash: "hash",
				Role:         "hall_owner",
				FullName:     "Hall Owner",
			}).Return(tt.row, tt.mockError)

			repo := NewUserRepository(mockQueries, mockQueries)
			id, err := repo.Create(context.Background(), mockQueries, u)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}
