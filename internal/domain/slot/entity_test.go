//go:build unit

package slot_test

import (
	"testing"
	"time"

	"venue-booking/internal/domain/slot"
	"venue-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBooked() slot.Booked {
	return slot.Booked{
		CustomerID: uuid.New(),
		BookingID:  uuid.New(),
		Amounts:    slot.Amounts{Total: 10000, PlatformFee: 500, OwnerCommission: 9000},
		Payment:    slot.PaymentPending,
	}
}

func TestSlotLifecycle(t *testing.T) {
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	iv := mustInterval(t, "2026-12-01", "10:00", "12:00")

	t.Run("published slot is open with zero amounts", func(t *testing.T) {
		s := slot.NewAvailable(uuid.New(), iv, nil, now)
		assert.True(t, s.IsAvailability())
		assert.Equal(t, slot.LifecycleAvailable, s.Lifecycle())
		_, booked := s.Booked()
		assert.False(t, booked)
		assert.NoError(t, s.EnsureWithdrawable())
	})

	t.Run("book converts in place and blocks a second booking", func(t *testing.T) {
		s := slot.NewAvailable(uuid.New(), iv, nil, now)
		id := s.ID()
		b := newBooked()

		require.NoError(t, s.Book(b, now.Add(time.Minute)))
		assert.Equal(t, id, s.ID())
		assert.Equal(t, slot.LifecycleConfirmed, s.Lifecycle())
		assert.False(t, s.IsAvailability())
		got, ok := s.Booked()
		require.True(t, ok)
		assert.Equal(t, b, got)
		assert.Equal(t, now.Add(time.Minute), s.UpdatedAt())

		assert.True(t, errs.Is(s.Book(newBooked(), now), slot.ErrSlotNotAvailable))
		assert.True(t, errs.Is(s.EnsureWithdrawable(), slot.ErrSlotNotWithdrawable))
	})

	t.Run("release clears the booking", func(t *testing.T) {
		s := slot.NewConfirmed(uuid.New(), iv, newBooked(), now)
		require.NoError(t, s.Release(now))
		assert.True(t, s.IsAvailability())
		_, ok := s.Booked()
		assert.False(t, ok)
	})

	t.Run("cancel keeps the booking reference", func(t *testing.T) {
		b := newBooked()
		s := slot.NewConfirmed(uuid.New(), iv, b, now)
		require.NoError(t, s.Cancel("rain", 8000, slot.PaymentRefunded, now))

		state, ok := s.State().(slot.Cancelled)
		require.True(t, ok)
		assert.Equal(t, "rain", state.Reason)
		assert.Equal(t, int64(8000), state.RefundAmount)
		assert.Equal(t, slot.PaymentRefunded, state.Payment)
		assert.Equal(t, b.BookingID, state.BookingID)
		assert.False(t, s.Lifecycle().Blocking())
	})

	t.Run("complete and no-show only from confirmed", func(t *testing.T) {
		s := slot.NewConfirmed(uuid.New(), iv, newBooked(), now)
		checkedIn := now.Add(time.Hour)
		require.NoError(t, s.Complete(&checkedIn, checkedIn))
		assert.Equal(t, slot.LifecycleCompleted, s.Lifecycle())
		assert.True(t, s.Lifecycle().Blocking())

		assert.True(t, errs.Is(s.MarkNoShow(now), slot.ErrInvalidSlotState))
		assert.True(t, errs.Is(s.Release(now), slot.ErrInvalidSlotState))
		assert.True(t, errs.Is(s.Cancel("", 0, slot.PaymentPending, now), slot.ErrInvalidSlotState))
	})

	t.Run("open slot cannot be completed", func(t *testing.T) {
		s := slot.NewAvailable(uuid.New(), iv, nil, now)
		assert.True(t, errs.Is(s.Complete(nil, now), slot.ErrInvalidSlotState))
		assert.True(t, errs.Is(s.MarkNoShow(now), slot.ErrInvalidSlotState))
	})
}
