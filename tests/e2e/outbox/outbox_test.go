//go:build e2e

package outbox_test

import (
	"testing"
	"time"

	"venue-booking/internal/infra/repository"
	sqlc "venue-booking/internal/infra/sqlc/generated"
	"venue-booking/internal/usecase/shared"
	"venue-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type outboxSuite struct {
	e2e.SharedSuite
	repo *repository.OutboxRepository
}

func TestOutboxSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(outboxSuite))
}

func (s *outboxSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.repo = repository.NewOutboxRepository(sqlc.New(), s.DB)
}

// insertJob stores a job whose updated_at lies age in the past.
func (s *outboxSuite) insertJob(status string, age time.Duration) uuid.UUID {
	var id uuid.UUID
	err := s.DB.QueryRow(s.T().Context(), `
		INSERT INTO outbox_jobs (kind, topic, payload, status, attempts, max_attempts, run_at, updated_at)
		VALUES ('revenue_posting', 'revenue.post', '{}', $1, 1, 8, NOW() - make_interval(secs => $2), NOW() - make_interval(secs => $2))
		RETURNING id`, status, age.Seconds()).Scan(&id)
	require.NoError(s.T(), err)
	return id
}

func (s *outboxSuite) status(id uuid.UUID) (string, int32) {
	var (
		status   string
		attempts int32
	)
	err := s.DB.QueryRow(s.T().Context(), "SELECT status, attempts FROM outbox_jobs WHERE id = $1", id).Scan(&status, &attempts)
	require.NoError(s.T(), err)
	return status, attempts
}

func claimedIDs(jobs []shared.ClaimedJob) []uuid.UUID {
	ids := make([]uuid.UUID, len(jobs))
	for i, j := range jobs {
		ids[i] = j.ID
	}
	return ids
}

func (s *outboxSuite) TestClaimDue() {
	s.Run("success: abandoned processing jobs are taken over", func() {
		t := s.T()
		queued := s.insertJob(shared.OutboxStatusQueued, time.Minute)
		abandoned := s.insertJob(shared.OutboxStatusProcessing, 30*time.Minute)
		running := s.insertJob(shared.OutboxStatusProcessing, 10*time.Second)
		done := s.insertJob(shared.OutboxStatusDone, time.Hour)

		jobs, err := s.repo.ClaimDue(t.Context(), s.DB, 10, time.Now().Add(-5*time.Minute))
		require.NoError(t, err)
		assert.ElementsMatch(t, []uuid.UUID{queued, abandoned}, claimedIDs(jobs))

		status, attempts := s.status(abandoned)
		assert.Equal(t, shared.OutboxStatusProcessing, status)
		assert.Equal(t, int32(2), attempts)

		status, attempts = s.status(running)
		assert.Equal(t, shared.OutboxStatusProcessing, status)
		assert.Equal(t, int32(1), attempts)

		status, _ = s.status(done)
		assert.Equal(t, shared.OutboxStatusDone, status)
	})

	s.Run("success: a fresh claim is not taken twice", func() {
		t := s.T()
		id := s.insertJob(shared.OutboxStatusQueued, time.Minute)
		staleBefore := time.Now().Add(-5 * time.Minute)

		first, err := s.repo.ClaimDue(t.Context(), s.DB, 10, staleBefore)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{id}, claimedIDs(first))

		second, err := s.repo.ClaimDue(t.Context(), s.DB, 10, staleBefore)
		require.NoError(t, err)
		assert.Empty(t, second)
	})
}
