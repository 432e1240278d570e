//go:build unit

package repository_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"venue-booking/internal/infra/repository"
	sqlc "venue-booking/internal/infra/sqlc/generated"
	"venue-booking/internal/usecase/shared"
	repositorymock "venue-booking/tests/mock/repository"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOutboxRepository_Enqueue(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockOutboxWriteQueries(ctrl)
	tx := &mockDBTX{}
	repo := repository.NewOutboxRepository(mockQueries, tx)

	runAt := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	payload := json.RawMessage(`{"booking_id":"x"}`)

	mockQueries.EXPECT().CreateOutboxJob(ctx, tx, sqlc.CreateOutboxJobParams{
		Kind:        shared.OutboxKindRevenuePosting,
		Topic:       "revenue.post",
		Payload:     payload,
		MaxAttempts: 5,
		RunAt:       pgtype.Timestamptz{Time: runAt, Valid: true},
	}).Return(nil)

	err := repo.Enqueue(ctx, tx, shared.OutboxJob{
		Kind:        shared.OutboxKindRevenuePosting,
		Topic:       "revenue.post",
		Payload:     payload,
		MaxAttempts: 5,
		RunAt:       runAt,
	})
	require.NoError(t, err)
}

func TestOutboxRepository_ClaimDue(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockOutboxWriteQueries(ctrl)
	tx := &mockDBTX{}
	repo := repository.NewOutboxRepository(mockQueries, tx)

	id1, id2 := uuid.New(), uuid.New()
	staleBefore := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	mockQueries.EXPECT().ClaimDueOutboxJobs(ctx, tx, sqlc.ClaimDueOutboxJobsParams{
		StaleBefore: pgtype.Timestamptz{Time: staleBefore, Valid: true},
		BatchLimit:  10,
	}).Return([]sqlc.OutboxJobs{
		{ID: id1, Kind: "revenue_posting", Topic: "revenue.post", Payload: []byte(`{}`), Status: "processing", Attempts: 1, MaxAttempts: 5},
		{ID: id2, Kind: "event", Topic: "booking.created", Payload: []byte(`{"a":1}`), Status: "processing", Attempts: 3, MaxAttempts: 5},
	}, nil)

	jobs, err := repo.ClaimDue(ctx, tx, 10, staleBefore)
	require.NoError(t, err)

	want := []shared.ClaimedJob{
		{ID: id1, Kind: "revenue_posting", Topic: "revenue.post", Payload: json.RawMessage(`{}`), Attempts: 1, MaxAttempts: 5},
		{ID: id2, Kind: "event", Topic: "booking.created", Payload: json.RawMessage(`{"a":1}`), Attempts: 3, MaxAttempts: 5},
	}
	if diff := cmp.Diff(want, jobs); diff != "" {
		t.Errorf("claimed jobs mismatch (-want +got):\n%s", diff)
	}
}

func TestOutboxRepository_Reschedule(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockOutboxWriteQueries(ctrl)
	tx := &mockDBTX{}
	repo := repository.NewOutboxRepository(mockQueries, tx)

	id := uuid.New()
	runAt := time.Date(2030, 1, 1, 0, 1, 0, 0, time.UTC)
	mockQueries.EXPECT().RescheduleOutboxJob(ctx, tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.RescheduleOutboxJobParams) error {
			assert.Equal(t, id, arg.ID)
			assert.Equal(t, shared.OutboxStatusQueued, arg.Status)
			assert.Equal(t, "broker unavailable", arg.LastError.String)
			assert.True(t, arg.RunAt.Time.Equal(runAt))
			return nil
		})

	require.NoError(t, repo.Reschedule(ctx, tx, id, shared.OutboxStatusQueued, runAt, "broker unavailable"))
}
