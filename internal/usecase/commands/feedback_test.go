//go:build unit

package commands_test

import (
	"context"
	"testing"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/feedback"
	"venue-booking/internal/domain/user"
	reqdto "venue-booking/internal/handler/dto/request"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/commands"
	"venue-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestFeedbackCommands_Submit(t *testing.T) {
	ctx := context.Background()
	req := reqdto.SubmitFeedbackRequest{Rating: 4, Comment: "good sound"}

	t.Run("success: upserts and refreshes rating stats", func(t *testing.T) {
		e := newTxEnv(t)
		b := builder.NewBookingBuilder().WithStatus(booking.StatusCompleted).BuildDomain()
		feedbackID := uuid.New()

		e.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)
		e.feedback.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, f *feedback.Feedback) (uuid.UUID, error) {
				assert.Equal(t, 4, f.Rating().Value())
				assert.Equal(t, b.HallID(), f.HallID())
				return feedbackID, nil
			})
		e.ratingStats.EXPECT().RecalcHallRatingStats(gomock.Any(), gomock.Any(), b.HallID()).Return(nil)

		id, err := commands.NewFeedbackCommands(e.uow, e.clock).Submit(ctx, b.ID(), req, user.Actor{ID: b.CustomerID(), Role: user.RoleCustomer})
		require.NoError(t, err)
		assert.Equal(t, feedbackID, id)
	})

	t.Run("error: booking still confirmed", func(t *testing.T) {
		e := newTxEnv(t)
		b := builder.NewBookingBuilder().BuildDomain()
		e.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)

		_, err := commands.NewFeedbackCommands(e.uow, e.clock).Submit(ctx, b.ID(), req, user.Actor{ID: b.CustomerID(), Role: user.RoleCustomer})
		assert.True(t, errs.Is(err, feedback.ErrBookingNotCompleted))
	})

	t.Run("error: unknown booking", func(t *testing.T) {
		e := newTxEnv(t)
		id := uuid.New()
		e.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), id).Return(nil, notFound())

		_, err := commands.NewFeedbackCommands(e.uow, e.clock).Submit(ctx, id, req, user.Actor{ID: uuid.New(), Role: user.RoleCustomer})
		assert.True(t, errs.Is(err, booking.ErrBookingNotFound))
	})
}
