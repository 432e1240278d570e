package booking

import (
	"strings"
	"time"

	"venue-booking/internal/domain/slot"
	"venue-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound         = errs.Sentinel("booking not found", errs.ErrNotFound)
	ErrBookingConflict         = errs.Sentinel("hall already booked for this time slot", errs.ErrConflict)
	ErrStartInPast             = errs.Sentinel("booking start time is in the past", errs.ErrPolicyViolation)
	ErrNotCancellable          = errs.Sentinel("only pending or confirmed bookings can be cancelled", errs.ErrPolicyViolation)
	ErrNotConfirmable          = errs.Sentinel("only pending bookings can be confirmed", errs.ErrPolicyViolation)
	ErrNotCheckInable          = errs.Sentinel("only confirmed bookings can be checked in", errs.ErrPolicyViolation)
	ErrNotCompletable          = errs.Sentinel("only confirmed bookings can be completed", errs.ErrPolicyViolation)
	ErrNoShowNotAllowed        = errs.Sentinel("only confirmed bookings can be marked as no-show", errs.ErrPolicyViolation)
	ErrNoShowTooEarly          = errs.Sentinel("booking has not started yet", errs.ErrPolicyViolation)
	ErrNotDeletable            = errs.Sentinel("completed or no-show bookings cannot be deleted", errs.ErrPolicyViolation)
	ErrActorNotAllowed         = errs.Sentinel("actor is not allowed to act on this booking", errs.ErrForbidden)
	ErrSpecialRequirementsLong = errs.Sentinel("special requirements are too long", errs.ErrValidation)
	ErrIdempotencyKeyMismatch  = errs.Sentinel("idempotency key reused with a different request", errs.ErrConflict)
)

type Booking struct {
	id                  uuid.UUID
	hallID              uuid.UUID
	customerID          uuid.UUID
	slotID              *uuid.UUID
	interval            slot.Interval
	amounts             slot.Amounts
	status              Status
	payment             slot.PaymentState
	fromPublishedSlot   bool
	specialRequirements *string
	cancellationReason  *string
	cancelledAt         *time.Time
	refundAmount        *int64
	refundFraction      *float64
	actualCheckIn       *time.Time
	completedAt         *time.Time
	createdAt           time.Time
	updatedAt           time.Time
}

// NewBooking starts a reservation. Converting a published slot confirms
// it immediately, otherwise it waits for the owner.
func NewBooking(
	id, hallID, customerID, slotID uuid.UUID,
	interval slot.Interval,
	amounts slot.Amounts,
	fromPublishedSlot bool,
	specialRequirements string,
	now time.Time,
) (*Booking, error) {
	var special *string
	if s := strings.TrimSpace(specialRequirements); s != "" {
		if len(s) > MaxSpecialRequirementsLength {
			return nil, ErrSpecialRequirementsLong
		}
		special = &s
	}
	if id == uuid.Nil {
		id = uuid.New()
	}

	status := StatusPending
	if fromPublishedSlot {
		status = StatusConfirmed
	}

	return &Booking{
		id:                  id,
		hallID:              hallID,
		customerID:          customerID,
		slotID:              &slotID,
		interval:            interval,
		amounts:             amounts,
		status:              status,
		payment:             slot.PaymentPending,
		fromPublishedSlot:   fromPublishedSlot,
		specialRequirements: special,
		createdAt:           now,
		updatedAt:           now,
	}, nil
}

// Snapshot is the flat persisted form of a booking.
type Snapshot struct {
	ID                  uuid.UUID
	HallID              uuid.UUID
	CustomerID          uuid.UUID
	SlotID              *uuid.UUID
	Interval            slot.Interval
	Amounts             slot.Amounts
	Status              Status
	Payment             slot.PaymentState
	FromPublishedSlot   bool
	SpecialRequirements *string
	CancellationReason  *string
	CancelledAt         *time.Time
	RefundAmount        *int64
	RefundFraction      *float64
	ActualCheckIn       *time.Time
	CompletedAt         *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func Reconstruct(s Snapshot) *Booking {
	return &Booking{
		id:                  s.ID,
		hallID:              s.HallID,
		customerID:          s.CustomerID,
		slotID:              s.SlotID,
		interval:            s.Interval,
		amounts:             s.Amounts,
		status:              s.Status,
		payment:             s.Payment,
		fromPublishedSlot:   s.FromPublishedSlot,
		specialRequirements: s.SpecialRequirements,
		cancellationReason:  s.CancellationReason,
		cancelledAt:         s.CancelledAt,
		refundAmount:        s.RefundAmount,
		refundFraction:      s.RefundFraction,
		actualCheckIn:       s.ActualCheckIn,
		completedAt:         s.CompletedAt,
		createdAt:           s.CreatedAt,
		updatedAt:           s.UpdatedAt,
	}
}

func (b *Booking) Snapshot() Snapshot {
	return Snapshot{
		ID:                  b.id,
		HallID:              b.hallID,
		CustomerID:          b.customerID,
		SlotID:              b.slotID,
		Interval:            b.interval,
		Amounts:             b.amounts,
		Status:              b.status,
		Payment:             b.payment,
		FromPublishedSlot:   b.fromPublishedSlot,
		SpecialRequirements: b.specialRequirements,
		CancellationReason:  b.cancellationReason,
		CancelledAt:         b.cancelledAt,
		RefundAmount:        b.refundAmount,
		RefundFraction:      b.refundFraction,
		ActualCheckIn:       b.actualCheckIn,
		CompletedAt:         b.completedAt,
		CreatedAt:           b.createdAt,
		UpdatedAt:           b.updatedAt,
	}
}

// Booked is the reference carried by the shadow slot.
func (b *Booking) Booked() slot.Booked {
	return slot.Booked{
		CustomerID: b.customerID,
		BookingID:  b.id,
		Amounts:    b.amounts,
		Payment:    b.payment,
	}
}

func (b *Booking) Confirm(now time.Time) error {
	if b.status != StatusPending {
		return ErrNotConfirmable
	}
	b.status = StatusConfirmed
	b.updatedAt = now
	return nil
}

func (b *Booking) Cancel(reason string, fraction float64, refund int64, now time.Time) error {
	if !b.status.Active() {
		return ErrNotCancellable
	}
	reason = strings.TrimSpace(reason)
	b.status = StatusCancelled
	b.cancellationReason = &reason
	b.cancelledAt = &now
	b.refundFraction = &fraction
	b.refundAmount = &refund
	if refund > 0 {
		b.payment = slot.PaymentRefunded
	}
	b.updatedAt = now
	return nil
}

func (b *Booking) CheckIn(now time.Time) error {
	if b.status != StatusConfirmed {
		return ErrNotCheckInable
	}
	b.actualCheckIn = &now
	b.status = StatusCompleted
	b.completedAt = &now
	b.updatedAt = now
	return nil
}

// Complete reports alreadyCompleted for a replay on a completed booking.
func (b *Booking) Complete(now time.Time) (alreadyCompleted bool, err error) {
	switch b.status {
	case StatusCompleted:
		return true, nil
	case StatusConfirmed:
		b.status = StatusCompleted
		b.completedAt = &now
		b.updatedAt = now
		return false, nil
	default:
		return false, ErrNotCompletable
	}
}

func (b *Booking) MarkNoShow(policy Policy, now time.Time) error {
	if b.status != StatusConfirmed {
		return ErrNoShowNotAllowed
	}
	if !policy.HasStarted(b.interval, now) {
		return ErrNoShowTooEarly
	}
	b.status = StatusNoShow
	b.updatedAt = now
	return nil
}

// DetachSlot drops the slot link, used after the slot row is deleted.
func (b *Booking) DetachSlot() {
	b.slotID = nil
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) HallID() uuid.UUID            { return b.hallID }
func (b *Booking) CustomerID() uuid.UUID        { return b.customerID }
func (b *Booking) SlotID() *uuid.UUID           { return b.slotID }
func (b *Booking) Interval() slot.Interval      { return b.interval }
func (b *Booking) Amounts() slot.Amounts        { return b.amounts }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) Payment() slot.PaymentState   { return b.payment }
func (b *Booking) FromPublishedSlot() bool      { return b.fromPublishedSlot }
func (b *Booking) SpecialRequirements() *string { return b.specialRequirements }
func (b *Booking) CancellationReason() *string  { return b.cancellationReason }
func (b *Booking) CancelledAt() *time.Time      { return b.cancelledAt }
func (b *Booking) RefundAmount() *int64         { return b.refundAmount }
func (b *Booking) RefundFraction() *float64     { return b.refundFraction }
func (b *Booking) ActualCheckIn() *time.Time    { return b.actualCheckIn }
func (b *Booking) CompletedAt() *time.Time      { return b.completedAt }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }
