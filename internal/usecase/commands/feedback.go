package commands

import (
	"context"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/feedback"
	"venue-booking/internal/domain/user"
	reqdto "venue-booking/internal/handler/dto/request"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type FeedbackCommands interface {
	// Submit writes or overwrites the feedback of a completed booking and
	// refreshes the hall rating stats.
	Submit(ctx context.Context, bookingID uuid.UUID, req reqdto.SubmitFeedbackRequest, actor user.Actor) (uuid.UUID, error)
}

type feedbackCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewFeedbackCommands(uow shared.UnitOfWork, clk clock.Clock) FeedbackCommands {
	return &feedbackCommandsImpl{uow: uow, clock: clk}
}

func (c *feedbackCommandsImpl) Submit(ctx context.Context, bookingID uuid.UUID, req reqdto.SubmitFeedbackRequest, actor user.Actor) (uuid.UUID, error) {
	var id uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByIDForUpdate(ctx, tx.DB(), bookingID)
		if err != nil {
			return notFoundAs(err, booking.ErrBookingNotFound)
		}

		f, err := feedback.ForBooking(b, actor, req.Rating, req.Comment, c.clock.Now())
		if err != nil {
			return err
		}

		id, err = tx.Feedback().Upsert(ctx, tx.DB(), f)
		if err != nil {
			return err
		}
		return tx.RatingStats().RecalcHallRatingStats(ctx, tx.DB(), b.HallID())
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}
