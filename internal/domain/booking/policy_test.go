//go:build unit

package booking_test

import (
	"testing"
	"time"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/user"
	"venue-booking/internal/pkg/errs"
	"venue-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The default builder booking starts 2026-12-01 10:00.
var bookingStart = time.Date(2026, 12, 1, 10, 0, 0, 0, time.UTC)

func TestRefundFraction(t *testing.T) {
	policy := booking.DefaultPolicy()

	cases := []struct {
		name       string
		hours      float64
		privileged bool
		want       float64
		err        error
	}{
		{name: "well ahead", hours: 72, want: 0.8},
		{name: "exactly at the early threshold", hours: 48, want: 0.5},
		{name: "between floor and threshold", hours: 30, want: 0.5},
		{name: "exactly at the floor", hours: 24, want: 0.5},
		{name: "inside the floor", hours: 23.9, err: booking.ErrCancellationTooLate},
		{name: "already started", hours: -1, err: booking.ErrCancellationTooLate},
		{name: "inside the floor privileged", hours: 2, privileged: true, want: 0},
		{name: "early band privileged", hours: 100, privileged: true, want: 0.8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := policy.RefundFraction(tc.hours, tc.privileged)
			if tc.err != nil {
				assert.True(t, errs.Is(err, tc.err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPolicyClock(t *testing.T) {
	b := builder.NewBookingBuilder()
	iv := b.Interval()

	t.Run("hours measured in the policy zone", func(t *testing.T) {
		policy := booking.DefaultPolicy()
		policy.Location = time.FixedZone("UTC+2", 2*60*60)
		// 10:00 at UTC+2 is 08:00 UTC.
		now := time.Date(2026, 12, 1, 6, 0, 0, 0, time.UTC)
		assert.InDelta(t, 2.0, policy.HoursUntilStart(iv, now), 1e-9)
		assert.False(t, policy.HasStarted(iv, now))
		assert.True(t, policy.HasStarted(iv, now.Add(2*time.Hour)))
	})

	t.Run("nil location falls back to UTC", func(t *testing.T) {
		policy := booking.DefaultPolicy()
		policy.Location = nil
		assert.InDelta(t, 24.0, policy.HoursUntilStart(iv, bookingStart.Add(-24*time.Hour)), 1e-9)
	})
}

func TestPlanCancellation(t *testing.T) {
	policy := booking.DefaultPolicy()
	ownerID := uuid.New()
	customerID := uuid.New()

	customer := user.Actor{ID: customerID, Role: user.RoleCustomer}
	owner := user.Actor{ID: ownerID, Role: user.RoleHallOwner}
	admin := user.Actor{ID: uuid.New(), Role: user.RoleAdmin}
	stranger := user.Actor{ID: uuid.New(), Role: user.RoleCustomer}

	newBooking := func(status booking.Status, published bool) *booking.Booking {
		return builder.NewBookingBuilder().
			WithCustomer(customerID).
			WithStatus(status).
			With(func(b *builder.BookingBuilder) { b.FromPublishedSlot = published }).
			BuildDomain()
	}

	cases := []struct {
		name      string
		actor     user.Actor
		status    booking.Status
		published bool
		before    time.Duration
		want      booking.CancellationPlan
		err       error
	}{
		{
			name: "customer early on a published slot restores it", actor: customer,
			status: booking.StatusConfirmed, published: true, before: 72 * time.Hour,
			want: booking.CancellationPlan{Fraction: 0.8, Refund: 8000, RestoreSlot: true},
		},
		{
			name: "customer late on a direct booking", actor: customer,
			status: booking.StatusPending, before: 30 * time.Hour,
			want: booking.CancellationPlan{Fraction: 0.5, Refund: 5000},
		},
		{
			name: "customer inside the floor", actor: customer,
			status: booking.StatusConfirmed, before: 3 * time.Hour,
			err: booking.ErrCancellationTooLate,
		},
		{
			name: "owner inside the floor is still refused", actor: owner,
			status: booking.StatusConfirmed, published: true, before: 3 * time.Hour,
			err: booking.ErrCancellationTooLate,
		},
		{
			name: "owner early does not restore the slot", actor: owner,
			status: booking.StatusConfirmed, published: true, before: 72 * time.Hour,
			want: booking.CancellationPlan{Fraction: 0.8, Refund: 8000},
		},
		{
			name: "admin inside the floor refunds nothing", actor: admin,
			status: booking.StatusConfirmed, before: 3 * time.Hour,
			want: booking.CancellationPlan{Fraction: 0, Refund: 0},
		},
		{
			name: "stranger", actor: stranger,
			status: booking.StatusConfirmed, before: 72 * time.Hour,
			err: booking.ErrActorNotAllowed,
		},
		{
			name: "already cancelled", actor: customer,
			status: booking.StatusCancelled, before: 72 * time.Hour,
			err: booking.ErrNotCancellable,
		},
		{
			name: "completed", actor: admin,
			status: booking.StatusCompleted, before: 72 * time.Hour,
			err: booking.ErrNotCancellable,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := newBooking(tc.status, tc.published)
			got, err := booking.PlanCancellation(b, ownerID, tc.actor, policy, bookingStart.Add(-tc.before))
			if tc.err != nil {
				assert.True(t, errs.Is(err, tc.err), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPlanDeletion(t *testing.T) {
	policy := booking.DefaultPolicy()
	ownerID := uuid.New()
	customerID := uuid.New()

	customer := user.Actor{ID: customerID, Role: user.RoleCustomer}
	owner := user.Actor{ID: ownerID, Role: user.RoleHallOwner}
	admin := user.Actor{ID: uuid.New(), Role: user.RoleAdmin}

	cases := []struct {
		name   string
		actor  user.Actor
		status booking.Status
		before time.Duration
		want   booking.DeletionPlan
		err    error
	}{
		{name: "customer removes a cancelled booking", actor: customer, status: booking.StatusCancelled},
		{name: "customer cannot force-delete an active booking", actor: customer, status: booking.StatusConfirmed, before: 72 * time.Hour, err: booking.ErrActorNotAllowed},
		{
			name: "owner force-deletes with the policy refund", actor: owner, status: booking.StatusConfirmed, before: 72 * time.Hour,
			want: booking.DeletionPlan{CancelFirst: true, Fraction: 0.8, Refund: 8000},
		},
		{
			name: "admin force-deletes inside the floor", actor: admin, status: booking.StatusPending, before: time.Hour,
			want: booking.DeletionPlan{CancelFirst: true},
		},
		{name: "completed bookings stay", actor: admin, status: booking.StatusCompleted, err: booking.ErrNotDeletable},
		{name: "no-show bookings stay", actor: owner, status: booking.StatusNoShow, err: booking.ErrNotDeletable},
		{name: "stranger", actor: user.Actor{ID: uuid.New(), Role: user.RoleHallOwner}, status: booking.StatusCancelled, err: booking.ErrActorNotAllowed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewBookingBuilder().WithCustomer(customerID).WithStatus(tc.status).BuildDomain()
			got, err := booking.PlanDeletion(b, ownerID, tc.actor, policy, bookingStart.Add(-tc.before))
			if tc.err != nil {
				assert.True(t, errs.Is(err, tc.err), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestVisibility(t *testing.T) {
	ownerID := uuid.New()
	b := builder.NewBookingBuilder().BuildDomain()

	assert.NoError(t, booking.EnsureVisibleTo(b, ownerID, user.Actor{ID: b.CustomerID(), Role: user.RoleCustomer}))
	assert.NoError(t, booking.EnsureVisibleTo(b, ownerID, user.Actor{ID: ownerID, Role: user.RoleHallOwner}))
	assert.True(t, errs.Is(booking.EnsureVisibleTo(b, ownerID, user.Actor{ID: uuid.New(), Role: user.RoleHallOwner}), booking.ErrActorNotAllowed))

	assert.True(t, errs.Is(booking.EnsureManagedBy(b, ownerID, user.Actor{ID: b.CustomerID(), Role: user.RoleCustomer}), booking.ErrActorNotAllowed))
	assert.NoError(t, booking.EnsureManagedBy(b, ownerID, user.Actor{ID: uuid.New(), Role: user.RoleAdmin}))
}
