//go:build unit

package feedback_test

import (
	"strings"
	"testing"
	"time"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/feedback"
	"venue-booking/internal/domain/user"
	"venue-booking/internal/pkg/errs"
	"venue-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFeedback(t *testing.T) {
	now := time.Date(2026, 12, 2, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		rating  int
		comment string
		err     error
	}{
		{name: "lowest rating", rating: 1, comment: "too cold"},
		{name: "highest rating", rating: 5, comment: "great acoustics"},
		{name: "rating below range", rating: 0, comment: "x", err: feedback.ErrInvalidRating},
		{name: "rating above range", rating: 6, comment: "x", err: feedback.ErrInvalidRating},
		{name: "blank comment", rating: 4, comment: "  \n ", err: feedback.ErrEmptyComment},
		{name: "comment at the limit counts runes", rating: 4, comment: strings.Repeat("ü", feedback.MaxCommentLength)},
		{name: "comment too long", rating: 4, comment: strings.Repeat("a", feedback.MaxCommentLength+1), err: feedback.ErrCommentTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := feedback.NewFeedback(uuid.Nil, uuid.New(), uuid.New(), uuid.New(), tt.rating, tt.comment, now)
			if tt.err != nil {
				assert.True(t, errs.Is(err, tt.err))
				assert.Nil(t, f)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, f.ID())
			assert.Equal(t, tt.rating, f.Rating().Value())
			assert.Equal(t, strings.TrimSpace(tt.comment), f.Comment().String())
		})
	}
}

func TestForBooking(t *testing.T) {
	now := time.Date(2026, 12, 2, 9, 0, 0, 0, time.UTC)
	customerID := uuid.New()
	customer := user.Actor{ID: customerID, Role: user.RoleCustomer}

	tests := []struct {
		name   string
		status booking.Status
		actor  user.Actor
		err    error
	}{
		{name: "customer of a completed booking", status: booking.StatusCompleted, actor: customer},
		{name: "booking not completed yet", status: booking.StatusConfirmed, actor: customer, err: feedback.ErrBookingNotCompleted},
		{name: "no-show booking", status: booking.StatusNoShow, actor: customer, err: feedback.ErrBookingNotCompleted},
		{name: "someone else", status: booking.StatusCompleted, actor: user.Actor{ID: uuid.New(), Role: user.RoleAdmin}, err: feedback.ErrNotBookingCustomer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := builder.NewBookingBuilder().WithCustomer(customerID).WithStatus(tt.status).BuildDomain()

			f, err := feedback.ForBooking(b, tt.actor, 5, "lovely", now)
			if tt.err != nil {
				assert.True(t, errs.Is(err, tt.err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, b.ID(), f.BookingID())
			assert.Equal(t, b.HallID(), f.HallID())
			assert.Equal(t, customerID, f.CustomerID())
		})
	}
}
