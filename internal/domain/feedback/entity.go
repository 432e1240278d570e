package feedback

import (
	"time"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/user"
	"venue-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidRating       = errs.Sentinel("rating must be between 1 and 5", errs.ErrValidation)
	ErrEmptyComment        = errs.Sentinel("comment cannot be empty", errs.ErrValidation)
	ErrCommentTooLong      = errs.Sentinel("comment exceeds maximum length", errs.ErrValidation)
	ErrBookingNotCompleted = errs.Sentinel("feedback is only accepted for completed bookings", errs.ErrPolicyViolation)
	ErrNotBookingCustomer  = errs.Sentinel("only the booking customer can leave feedback", errs.ErrForbidden)
)

// Feedback is the single rating a customer leaves for a completed booking.
type Feedback struct {
	id         uuid.UUID
	bookingID  uuid.UUID
	hallID     uuid.UUID
	customerID uuid.UUID
	rating     Rating
	comment    Comment
	createdAt  time.Time
	updatedAt  time.Time
}

func NewFeedback(id, bookingID, hallID, customerID uuid.UUID, ratingValue int, commentText string, now time.Time) (*Feedback, error) {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Feedback{
		id:         id,
		bookingID:  bookingID,
		hallID:     hallID,
		customerID: customerID,
		rating:     rating,
		comment:    comment,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// ForBooking checks eligibility and builds the feedback in one step.
func ForBooking(b *booking.Booking, actor user.Actor, ratingValue int, commentText string, now time.Time) (*Feedback, error) {
	if err := EnsureEligible(b, actor); err != nil {
		return nil, err
	}
	return NewFeedback(uuid.Nil, b.ID(), b.HallID(), b.CustomerID(), ratingValue, commentText, now)
}

// EnsureEligible accepts only the customer of a completed booking.
func EnsureEligible(b *booking.Booking, actor user.Actor) error {
	if actor.ID != b.CustomerID() {
		return ErrNotBookingCustomer
	}
	if b.Status() != booking.StatusCompleted {
		return ErrBookingNotCompleted
	}
	return nil
}

func (f *Feedback) ID() uuid.UUID         { return f.id }
func (f *Feedback) BookingID() uuid.UUID  { return f.bookingID }
func (f *Feedback) HallID() uuid.UUID     { return f.hallID }
func (f *Feedback) CustomerID() uuid.UUID { return f.customerID }
func (f *Feedback) Rating() Rating        { return f.rating }
func (f *Feedback) Comment() Comment      { return f.comment }
func (f *Feedback) CreatedAt() time.Time  { return f.createdAt }
func (f *Feedback) UpdatedAt() time.Time  { return f.updatedAt }
