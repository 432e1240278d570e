//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"venue-booking/internal/infra"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/shared"
	sharedmock "venue-booking/tests/mock/shared"

	"github.com/jackc/pgx/v5"
	"go.uber.org/mock/gomock"
)

// 72 hours before the default builder booking.
var testNow = time.Date(2026, 11, 28, 10, 0, 0, 0, time.UTC)

type txEnv struct {
	ctrl        *gomock.Controller
	uow         *sharedmock.MockUnitOfWork
	tx          *sharedmock.MockTx
	reads       *sharedmock.MockCommandReads
	halls       *sharedmock.MockHallRepository
	slots       *sharedmock.MockSlotRepository
	bookings    *sharedmock.MockBookingRepository
	revenue     *sharedmock.MockRevenueRepository
	feedback    *sharedmock.MockFeedbackRepository
	ratingStats *sharedmock.MockRatingStatsRepository
	idempotency *sharedmock.MockIdempotencyRepository
	outbox      *sharedmock.MockOutboxRepository
	clock       *clock.MockClock
	recorder    *fakeRecorder
}

// newTxEnv runs every Within callback inline against mocked repositories.
func newTxEnv(t *testing.T) *txEnv {
	t.Helper()
	ctrl := gomock.NewController(t)
	e := &txEnv{
		ctrl:        ctrl,
		uow:         sharedmock.NewMockUnitOfWork(ctrl),
		tx:          sharedmock.NewMockTx(ctrl),
		reads:       sharedmock.NewMockCommandReads(ctrl),
		halls:       sharedmock.NewMockHallRepository(ctrl),
		slots:       sharedmock.NewMockSlotRepository(ctrl),
		bookings:    sharedmock.NewMockBookingRepository(ctrl),
		revenue:     sharedmock.NewMockRevenueRepository(ctrl),
		feedback:    sharedmock.NewMockFeedbackRepository(ctrl),
		ratingStats: sharedmock.NewMockRatingStatsRepository(ctrl),
		idempotency: sharedmock.NewMockIdempotencyRepository(ctrl),
		outbox:      sharedmock.NewMockOutboxRepository(ctrl),
		clock:       clock.NewMockClock(testNow),
		recorder:    &fakeRecorder{},
	}

	e.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, e.tx)
		}).AnyTimes()

	e.tx.EXPECT().DB().Return(nil).AnyTimes()
	e.tx.EXPECT().Reads().Return(e.reads).AnyTimes()
	e.tx.EXPECT().Halls().Return(e.halls).AnyTimes()
	e.tx.EXPECT().Slots().Return(e.slots).AnyTimes()
	e.tx.EXPECT().Bookings().Return(e.bookings).AnyTimes()
	e.tx.EXPECT().Revenue().Return(e.revenue).AnyTimes()
	e.tx.EXPECT().Feedback().Return(e.feedback).AnyTimes()
	e.tx.EXPECT().RatingStats().Return(e.ratingStats).AnyTimes()
	e.tx.EXPECT().Idempotency().Return(e.idempotency).AnyTimes()
	e.tx.EXPECT().Outbox().Return(e.outbox).AnyTimes()
	return e
}

// expectEvents accepts any number of event jobs in the outbox.
func (e *txEnv) expectEvents() {
	e.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, job shared.OutboxJob) error {
			if job.Kind != shared.OutboxKindEvent {
				e.ctrl.T.Fatalf("unexpected outbox job kind %q", job.Kind)
			}
			return nil
		}).AnyTimes()
}

func (e *txEnv) bookingCommands(revenue commands.RevenueCommands) commands.BookingCommands {
	return commands.NewBookingCommands(e.uow, revenue, e.clock, e.recorder, commands.DefaultSettings())
}

func notFound() error {
	return infra.WrapRepoErr("row not found", pgx.ErrNoRows)
}

type fakeRecorder struct {
	mu             sync.Mutex
	operations     map[string]int
	failures       map[string]int
	postingFailure int
}

func (r *fakeRecorder) BookingOperation(operation string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.operations == nil {
		r.operations = map[string]int{}
		r.failures = map[string]int{}
	}
	r.operations[operation]++
	if err != nil {
		r.failures[operation]++
	}
}

func (r *fakeRecorder) RevenuePostingFailed() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.postingFailure++
}
