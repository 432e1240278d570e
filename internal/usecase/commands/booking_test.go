//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/hall"
	"venue-booking/internal/domain/revenue"
	"venue-booking/internal/domain/slot"
	"venue-booking/internal/domain/user"
	"venue-booking/internal/infra"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/shared"
	"venue-booking/tests/common/builder"
	commandsmock "venue-booking/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func approvedHall(ownerID uuid.UUID) *shared.HallSnapshot {
	return &shared.HallSnapshot{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		Name:         "Main Hall",
		PricePerHour: 5000,
		Approval:     hall.ApprovalApproved.String(),
	}
}

func TestBookingCommands_Create(t *testing.T) {
	ctx := context.Background()
	customer := user.Actor{ID: uuid.New(), Role: user.RoleCustomer}

	t.Run("success: converts a published slot in place", func(t *testing.T) {
		e := newTxEnv(t)
		e.expectEvents()
		h := approvedHall(uuid.New())
		req := builder.NewBookingBuilder().WithHall(h.ID, h.OwnerID).BuildCreateRequestDTO()
		iv, err := req.ToDomain()
		require.NoError(t, err)
		published := slot.NewAvailable(h.ID, iv, nil, testNow)

		e.reads.EXPECT().HallByID(gomock.Any(), h.ID).Return(h, nil)
		e.slots.EXPECT().FindAvailableForUpdate(gomock.Any(), gomock.Any(), h.ID, iv).Return(published, nil)
		e.slots.EXPECT().Save(gomock.Any(), gomock.Any(), published).
			DoAndReturn(func(_ context.Context, _ any, s *slot.Slot) error {
				assert.Equal(t, slot.LifecycleConfirmed, s.Lifecycle())
				return nil
			})
		var created *booking.Booking
		e.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, b *booking.Booking) error {
				created = b
				return nil
			})

		result, err := e.bookingCommands(nil).Create(ctx, req, customer, nil)
		require.NoError(t, err)
		require.NotNil(t, created)

		assert.False(t, result.IsReplayed)
		assert.Equal(t, created.ID(), result.BookingID)
		assert.Equal(t, booking.StatusConfirmed, created.Status())
		assert.Equal(t, published.ID(), *created.SlotID())
		assert.Equal(t, slot.Amounts{Total: 10000, PlatformFee: 500, OwnerCommission: 9000}, created.Amounts())

		booked, ok := published.Booked()
		require.True(t, ok)
		assert.Equal(t, created.ID(), booked.BookingID)
		assert.Equal(t, 1, e.recorder.operations["create"])
	})

	t.Run("success: inserts a booked slot when none is published", func(t *testing.T) {
		e := newTxEnv(t)
		e.expectEvents()
		h := approvedHall(uuid.New())
		req := builder.NewBookingBuilder().WithHall(h.ID, h.OwnerID).BuildCreateRequestDTO()

		e.reads.EXPECT().HallByID(gomock.Any(), h.ID).Return(h, nil)
		e.slots.EXPECT().FindAvailableForUpdate(gomock.Any(), gomock.Any(), h.ID, gomock.Any()).Return(nil, notFound())
		var inserted *slot.Slot
		e.slots.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, s *slot.Slot) error {
				inserted = s
				return nil
			})
		e.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, b *booking.Booking) error {
				assert.Equal(t, booking.StatusPending, b.Status())
				assert.Equal(t, inserted.ID(), *b.SlotID())
				return nil
			})

		_, err := e.bookingCommands(nil).Create(ctx, req, customer, nil)
		require.NoError(t, err)
		booked, ok := inserted.Booked()
		require.True(t, ok)
		assert.Equal(t, customer.ID, booked.CustomerID)
	})

	t.Run("error: overlap reported by the exclusion constraint", func(t *testing.T) {
		e := newTxEnv(t)
		h := approvedHall(uuid.New())
		req := builder.NewBookingBuilder().WithHall(h.ID, h.OwnerID).BuildCreateRequestDTO()

		e.reads.EXPECT().HallByID(gomock.Any(), h.ID).Return(h, nil)
		e.slots.EXPECT().FindAvailableForUpdate(gomock.Any(), gomock.Any(), h.ID, gomock.Any()).Return(nil, notFound())
		e.slots.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("create slot", &pgconn.PgError{Code: "23P01"}))

		_, err := e.bookingCommands(nil).Create(ctx, req, customer, nil)
		assert.True(t, errs.Is(err, booking.ErrBookingConflict))
		assert.Equal(t, 1, e.recorder.failures["create"])
	})

	t.Run("error: hall not approved", func(t *testing.T) {
		e := newTxEnv(t)
		h := approvedHall(uuid.New())
		h.Approval = hall.ApprovalPending.String()
		req := builder.NewBookingBuilder().WithHall(h.ID, h.OwnerID).BuildCreateRequestDTO()
		e.reads.EXPECT().HallByID(gomock.Any(), h.ID).Return(h, nil)

		_, err := e.bookingCommands(nil).Create(ctx, req, customer, nil)
		assert.True(t, errs.Is(err, hall.ErrHallNotApproved))
	})

	t.Run("error: unknown hall", func(t *testing.T) {
		e := newTxEnv(t)
		req := builder.NewBookingBuilder().BuildCreateRequestDTO()
		e.reads.EXPECT().HallByID(gomock.Any(), req.HallID).Return(nil, notFound())

		_, err := e.bookingCommands(nil).Create(ctx, req, customer, nil)
		assert.True(t, errs.Is(err, hall.ErrHallNotFound))
	})

	t.Run("error: start already passed", func(t *testing.T) {
		e := newTxEnv(t)
		req := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.Date = "2026-11-27" }).BuildCreateRequestDTO()

		_, err := e.bookingCommands(nil).Create(ctx, req, customer, nil)
		assert.True(t, errs.Is(err, booking.ErrStartInPast))
	})

	t.Run("success: replay returns the stored booking", func(t *testing.T) {
		e := newTxEnv(t)
		key := uuid.New()
		stored := uuid.New()
		req := builder.NewBookingBuilder().BuildCreateRequestDTO()

		var hash string
		e.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), key, customer.ID, "POST /api/bookings", gomock.Any(), testNow.Add(commands.DefaultSettings().IdempotencyTTL)).
			DoAndReturn(func(_ context.Context, _ any, _, _ uuid.UUID, _ string, requestHash string, _ any) error {
				hash = requestHash
				return nil
			})
		e.reads.EXPECT().IdempotencyByKey(gomock.Any(), key, customer.ID).
			DoAndReturn(func(context.Context, uuid.UUID, uuid.UUID) (*shared.IdempotencyRecord, error) {
				return &shared.IdempotencyRecord{
					Key:             key,
					UserID:          customer.ID,
					Status:          shared.IdempotencyStatusCompleted,
					RequestHash:     hash,
					ResultBookingID: &stored,
				}, nil
			})

		result, err := e.bookingCommands(nil).Create(ctx, req, customer, &key)
		require.NoError(t, err)
		assert.True(t, result.IsReplayed)
		assert.Equal(t, stored, result.BookingID)
	})

	t.Run("error: key reused with a different body", func(t *testing.T) {
		e := newTxEnv(t)
		key := uuid.New()
		req := builder.NewBookingBuilder().BuildCreateRequestDTO()

		e.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), key, customer.ID, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		e.reads.EXPECT().IdempotencyByKey(gomock.Any(), key, customer.ID).
			Return(&shared.IdempotencyRecord{Status: shared.IdempotencyStatusCompleted, RequestHash: "other"}, nil)

		_, err := e.bookingCommands(nil).Create(ctx, req, customer, &key)
		assert.True(t, errs.Is(err, booking.ErrIdempotencyKeyMismatch))
	})

	t.Run("success: fresh key is completed with the new booking", func(t *testing.T) {
		e := newTxEnv(t)
		e.expectEvents()
		key := uuid.New()
		h := approvedHall(uuid.New())
		req := builder.NewBookingBuilder().WithHall(h.ID, h.OwnerID).BuildCreateRequestDTO()

		var hash string
		e.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), key, customer.ID, gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, _, _ uuid.UUID, _ string, requestHash string, _ any) error {
				hash = requestHash
				return nil
			})
		e.reads.EXPECT().IdempotencyByKey(gomock.Any(), key, customer.ID).
			DoAndReturn(func(context.Context, uuid.UUID, uuid.UUID) (*shared.IdempotencyRecord, error) {
				return &shared.IdempotencyRecord{Status: shared.IdempotencyStatusProcessing, RequestHash: hash}, nil
			})
		e.reads.EXPECT().HallByID(gomock.Any(), h.ID).Return(h, nil)
		e.slots.EXPECT().FindAvailableForUpdate(gomock.Any(), gomock.Any(), h.ID, gomock.Any()).Return(nil, notFound())
		e.slots.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		e.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		var completedWith uuid.UUID
		e.idempotency.EXPECT().UpdateStatusCompleted(gomock.Any(), gomock.Any(), key, customer.ID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, _, _ uuid.UUID, _ string, bookingID uuid.UUID) error {
				completedWith = bookingID
				return nil
			})

		result, err := e.bookingCommands(nil).Create(ctx, req, customer, &key)
		require.NoError(t, err)
		assert.False(t, result.IsReplayed)
		assert.Equal(t, result.BookingID, completedWith)
	})
}

func TestBookingCommands_Cancel(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	customerID := uuid.New()

	setup := func(t *testing.T, published bool) (*txEnv, *booking.Booking, *slot.Slot) {
		e := newTxEnv(t)
		e.expectEvents()
		bb := builder.NewBookingBuilder().WithCustomer(customerID).
			With(func(b *builder.BookingBuilder) { b.FromPublishedSlot = published })
		b := bb.BuildDomain()
		s := slot.Reconstruct(bb.SlotID, bb.HallID, bb.Interval(), slot.Confirmed{Booked: b.Booked()}, nil, testNow, testNow)

		e.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)
		e.reads.EXPECT().HallByID(gomock.Any(), b.HallID()).Return(&shared.HallSnapshot{ID: b.HallID(), OwnerID: ownerID}, nil)
		return e, b, s
	}

	t.Run("success: customer cancel restores a published slot", func(t *testing.T) {
		e, b, s := setup(t, true)
		e.slots.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), s.ID()).Return(s, nil)
		e.slots.EXPECT().Save(gomock.Any(), gomock.Any(), s).Return(nil)
		e.bookings.EXPECT().Save(gomock.Any(), gomock.Any(), b).Return(nil)

		result, err := e.bookingCommands(nil).Cancel(ctx, b.ID(), "change of plans", user.Actor{ID: customerID, Role: user.RoleCustomer})
		require.NoError(t, err)

		assert.Equal(t, int64(8000), result.RefundAmount)
		assert.Equal(t, 0.8, result.RefundFraction)
		assert.True(t, s.IsAvailability())
		assert.Nil(t, b.SlotID())
		assert.Equal(t, booking.StatusCancelled, b.Status())
	})

	t.Run("success: owner cancel keeps the slot as cancelled", func(t *testing.T) {
		e, b, s := setup(t, true)
		e.slots.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), s.ID()).Return(s, nil)
		e.slots.EXPECT().Save(gomock.Any(), gomock.Any(), s).Return(nil)
		e.bookings.EXPECT().Save(gomock.Any(), gomock.Any(), b).Return(nil)

		_, err := e.bookingCommands(nil).Cancel(ctx, b.ID(), "maintenance", user.Actor{ID: ownerID, Role: user.RoleHallOwner})
		require.NoError(t, err)

		state, ok := s.State().(slot.Cancelled)
		require.True(t, ok)
		assert.Equal(t, "maintenance", state.Reason)
		assert.Equal(t, slot.PaymentRefunded, state.Payment)
		assert.NotNil(t, b.SlotID())
	})

	t.Run("error: inside the cancellation floor", func(t *testing.T) {
		e, b, _ := setup(t, false)
		e.clock.Set(testNow.Add(60 * time.Hour))

		_, err := e.bookingCommands(nil).Cancel(ctx, b.ID(), "", user.Actor{ID: customerID, Role: user.RoleCustomer})
		assert.True(t, errs.Is(err, booking.ErrCancellationTooLate))
		assert.Equal(t, 1, e.recorder.failures["cancel"])
	})

	t.Run("error: unknown booking", func(t *testing.T) {
		e := newTxEnv(t)
		id := uuid.New()
		e.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), id).Return(nil, notFound())

		_, err := e.bookingCommands(nil).Cancel(ctx, id, "", user.Actor{ID: customerID, Role: user.RoleCustomer})
		assert.True(t, errs.Is(err, booking.ErrBookingNotFound))
	})
}

func TestBookingCommands_CancelBySlot(t *testing.T) {
	ctx := context.Background()
	owner := user.Actor{ID: uuid.New(), Role: user.RoleHallOwner}

	t.Run("error: open slot has no booking", func(t *testing.T) {
		e := newTxEnv(t)
		iv := builder.NewBookingBuilder().Interval()
		open := slot.NewAvailable(uuid.New(), iv, nil, testNow)
		e.bookings.EXPECT().FindBySlotIDForUpdate(gomock.Any(), gomock.Any(), open.ID()).Return(nil, notFound())
		e.slots.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), open.ID()).Return(open, nil)

		_, err := e.bookingCommands(nil).CancelBySlot(ctx, open.ID(), "", owner)
		assert.True(t, errs.Is(err, slot.ErrSlotNotLinked))
	})

	t.Run("error: unknown slot", func(t *testing.T) {
		e := newTxEnv(t)
		id := uuid.New()
		e.bookings.EXPECT().FindBySlotIDForUpdate(gomock.Any(), gomock.Any(), id).Return(nil, notFound())
		e.slots.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), id).Return(nil, notFound())

		_, err := e.bookingCommands(nil).CancelBySlot(ctx, id, "", owner)
		assert.True(t, errs.Is(err, slot.ErrSlotNotFound))
	})
}

func TestBookingCommands_Delete(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("success: owner force-deletes an active booking with its slot", func(t *testing.T) {
		e := newTxEnv(t)
		bb := builder.NewBookingBuilder()
		b := bb.BuildDomain()

		e.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)
		e.reads.EXPECT().HallByID(gomock.Any(), b.HallID()).Return(&shared.HallSnapshot{ID: b.HallID(), OwnerID: ownerID}, nil)
		e.slots.EXPECT().Delete(gomock.Any(), gomock.Any(), bb.SlotID).Return(nil)
		e.bookings.EXPECT().Delete(gomock.Any(), gomock.Any(), b.ID()).Return(nil)
		e.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, job shared.OutboxJob) error {
				assert.Equal(t, shared.TopicBookingDeleted, job.Topic)
				var event shared.BookingEvent
				require.NoError(t, json.Unmarshal(job.Payload, &event))
				assert.Equal(t, "cancelled", event.Status)
				require.NotNil(t, event.Refund)
				assert.Equal(t, int64(8000), *event.Refund)
				return nil
			})

		err := e.bookingCommands(nil).Delete(ctx, b.ID(), user.Actor{ID: ownerID, Role: user.RoleHallOwner})
		require.NoError(t, err)
	})

	t.Run("error: completed bookings stay", func(t *testing.T) {
		e := newTxEnv(t)
		b := builder.NewBookingBuilder().WithStatus(booking.StatusCompleted).BuildDomain()
		e.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)
		e.reads.EXPECT().HallByID(gomock.Any(), b.HallID()).Return(&shared.HallSnapshot{ID: b.HallID(), OwnerID: ownerID}, nil)

		err := e.bookingCommands(nil).Delete(ctx, b.ID(), user.Actor{ID: ownerID, Role: user.RoleHallOwner})
		assert.True(t, errs.Is(err, booking.ErrNotDeletable))
	})
}

func TestBookingCommands_Complete(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	owner := user.Actor{ID: ownerID, Role: user.RoleHallOwner}

	setup := func(t *testing.T) (*txEnv, *booking.Booking, *slot.Slot, *commandsmock.MockRevenueCommands) {
		e := newTxEnv(t)
		bb := builder.NewBookingBuilder()
		b := bb.BuildDomain()
		s := slot.Reconstruct(bb.SlotID, bb.HallID, bb.Interval(), slot.Confirmed{Booked: b.Booked()}, nil, testNow, testNow)

		e.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)
		e.reads.EXPECT().HallByID(gomock.Any(), b.HallID()).Return(&shared.HallSnapshot{ID: b.HallID(), OwnerID: ownerID}, nil)
		return e, b, s, commandsmock.NewMockRevenueCommands(e.ctrl)
	}

	t.Run("success: posts revenue after completing", func(t *testing.T) {
		e, b, s, rev := setup(t)
		e.expectEvents()
		e.slots.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), s.ID()).Return(s, nil)
		e.slots.EXPECT().Save(gomock.Any(), gomock.Any(), s).Return(nil)
		e.bookings.EXPECT().Save(gomock.Any(), gomock.Any(), b).Return(nil)
		record := revenue.NewRecord(revenue.Snapshot{BookingID: b.ID(), CompletedAt: testNow}, testNow)
		rev.EXPECT().Post(gomock.Any(), b.ID()).Return(record, nil)

		result, err := e.bookingCommands(rev).Complete(ctx, b.ID(), owner)
		require.NoError(t, err)
		assert.Same(t, record, result.Revenue)
		assert.Equal(t, slot.LifecycleCompleted, s.Lifecycle())
		assert.Equal(t, booking.StatusCompleted, b.Status())
	})

	t.Run("success: failed posting is queued for retry", func(t *testing.T) {
		e, b, s, rev := setup(t)
		e.slots.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), s.ID()).Return(s, nil)
		e.slots.EXPECT().Save(gomock.Any(), gomock.Any(), s).Return(nil)
		e.bookings.EXPECT().Save(gomock.Any(), gomock.Any(), b).Return(nil)
		rev.EXPECT().Post(gomock.Any(), b.ID()).Return(nil, errors.New("ledger unavailable"))

		var kinds []string
		e.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, job shared.OutboxJob) error {
				kinds = append(kinds, job.Kind)
				if job.Kind == shared.OutboxKindRevenuePosting {
					var payload shared.RevenuePostingPayload
					require.NoError(t, json.Unmarshal(job.Payload, &payload))
					assert.Equal(t, b.ID(), payload.BookingID)
				}
				return nil
			}).Times(2)

		result, err := e.bookingCommands(rev).Complete(ctx, b.ID(), owner)
		require.NoError(t, err)
		assert.Nil(t, result.Revenue)
		assert.Equal(t, []string{shared.OutboxKindEvent, shared.OutboxKindRevenuePosting}, kinds)
		assert.Equal(t, 1, e.recorder.postingFailure)
	})

	t.Run("success: replay on a completed booking only re-posts", func(t *testing.T) {
		e := newTxEnv(t)
		b := builder.NewBookingBuilder().WithStatus(booking.StatusCompleted).BuildDomain()
		rev := commandsmock.NewMockRevenueCommands(e.ctrl)
		e.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)
		e.reads.EXPECT().HallByID(gomock.Any(), b.HallID()).Return(&shared.HallSnapshot{ID: b.HallID(), OwnerID: ownerID}, nil)
		rev.EXPECT().Post(gomock.Any(), b.ID()).Return(&revenue.Record{}, nil)

		_, err := e.bookingCommands(rev).Complete(ctx, b.ID(), owner)
		require.NoError(t, err)
	})

	t.Run("error: customer cannot complete", func(t *testing.T) {
		e, b, _, rev := setup(t)
		_, err := e.bookingCommands(rev).Complete(ctx, b.ID(), user.Actor{ID: b.CustomerID(), Role: user.RoleCustomer})
		assert.True(t, errs.Is(err, booking.ErrActorNotAllowed))
	})
}

func TestBookingCommands_MarkNoShow(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	owner := user.Actor{ID: ownerID, Role: user.RoleHallOwner}

	t.Run("error: before the start", func(t *testing.T) {
		e := newTxEnv(t)
		b := builder.NewBookingBuilder().BuildDomain()
		e.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)
		e.reads.EXPECT().HallByID(gomock.Any(), b.HallID()).Return(&shared.HallSnapshot{ID: b.HallID(), OwnerID: ownerID}, nil)

		err := e.bookingCommands(nil).MarkNoShow(ctx, b.ID(), owner)
		assert.True(t, errs.Is(err, booking.ErrNoShowTooEarly))
	})

	t.Run("success: after the start", func(t *testing.T) {
		e := newTxEnv(t)
		e.expectEvents()
		bb := builder.NewBookingBuilder()
		b := bb.BuildDomain()
		s := slot.Reconstruct(bb.SlotID, bb.HallID, bb.Interval(), slot.Confirmed{Booked: b.Booked()}, nil, testNow, testNow)
		e.clock.Set(bb.Interval().StartsAt())

		e.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)
		e.reads.EXPECT().HallByID(gomock.Any(), b.HallID()).Return(&shared.HallSnapshot{ID: b.HallID(), OwnerID: ownerID}, nil)
		e.slots.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), s.ID()).Return(s, nil)
		e.slots.EXPECT().Save(gomock.Any(), gomock.Any(), s).Return(nil)
		e.bookings.EXPECT().Save(gomock.Any(), gomock.Any(), b).Return(nil)

		require.NoError(t, e.bookingCommands(nil).MarkNoShow(ctx, b.ID(), owner))
		assert.Equal(t, booking.StatusNoShow, b.Status())
		assert.Equal(t, slot.LifecycleNoShow, s.Lifecycle())
	})
}
