//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"venue-booking/internal/infra"
	"venue-booking/internal/infra/repository"
	repositorymock "venue-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// RecalcHallRatingStats Tests
// =============================================================================

func TestRatingStatsRepository_RecalcHallRatingStats(t *testing.T) {
	ctx := context.Background()
	hallID := uuid.New()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockRatingStatsQueries, uuid.UUID, *mockDBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: rating stats recalculated successfully",
			setupMock: func(mock *repositorymock.MockRatingStatsQueries, hID uuid.UUID, tx *mockDBTX) {
				mock.EXPECT().RecalcHallRatingStats(ctx, tx, hID).Return(nil)
			},
			expectedError: false,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockRatingStatsQueries, hID uuid.UUID, tx *mockDBTX) {
				mock.EXPECT().RecalcHallRatingStats(ctx, tx, hID).Return(errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: hall not found",
			setupMock: func(mock *repositorymock.MockRatingStatsQueries, hID uuid.UUID, tx *mockDBTX) {
				mock.EXPECT().RecalcHallRatingStats(ctx, tx, hID).Return(errors.New("hall not found"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockRatingStatsQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewRatingStatsRepository(mockQueries, mockDB)

			tc.setupMock(mockQueries, hallID, mockDB)

			actualError := repo.RecalcHallRatingStats(ctx, mockDB, hallID)

			if tc.expectedError {
				require.Error(t, actualError)
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				}
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}
