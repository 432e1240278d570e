package slot

import (
	"encoding/json"
	"time"

	"venue-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrSlotNotFound         = errs.Sentinel("slot not found", errs.ErrNotFound)
	ErrSlotNotAvailable     = errs.Sentinel("slot is not open for booking", errs.ErrConflict)
	ErrSlotNotWithdrawable  = errs.Sentinel("only available slots can be withdrawn", errs.ErrPolicyViolation)
	ErrInvalidSlotState     = errs.Sentinel("slot state does not allow this transition", errs.ErrPolicyViolation)
	ErrSlotNotLinked        = errs.Sentinel("slot is not linked to a booking", errs.ErrNotFound)
	ErrInconsistentSlotData = errs.New("stored slot columns do not describe a valid state")
)

type Slot struct {
	id               uuid.UUID
	hallID           uuid.UUID
	interval         Interval
	state            State
	recurringPattern json.RawMessage
	createdAt        time.Time
	updatedAt        time.Time
}

// NewAvailable publishes an open slot with zero amounts.
func NewAvailable(hallID uuid.UUID, interval Interval, recurringPattern json.RawMessage, now time.Time) *Slot {
	return &Slot{
		id:               uuid.New(),
		hallID:           hallID,
		interval:         interval,
		state:            Available{},
		recurringPattern: recurringPattern,
		createdAt:        now,
		updatedAt:        now,
	}
}

// NewConfirmed creates a slot directly in the booked state for a booking
// that did not match any published slot.
func NewConfirmed(hallID uuid.UUID, interval Interval, booked Booked, now time.Time) *Slot {
	return &Slot{
		id:        uuid.New(),
		hallID:    hallID,
		interval:  interval,
		state:     Confirmed{Booked: booked},
		createdAt: now,
		updatedAt: now,
	}
}

func Reconstruct(id, hallID uuid.UUID, interval Interval, state State, recurringPattern json.RawMessage, createdAt, updatedAt time.Time) *Slot {
	return &Slot{
		id:               id,
		hallID:           hallID,
		interval:         interval,
		state:            state,
		recurringPattern: recurringPattern,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// Book converts an open slot in place.
func (s *Slot) Book(booked Booked, now time.Time) error {
	if _, ok := s.state.(Available); !ok {
		return ErrSlotNotAvailable
	}
	s.state = Confirmed{Booked: booked}
	s.updatedAt = now
	return nil
}

// Release returns a booked slot to the open pool, clearing references and amounts.
func (s *Slot) Release(now time.Time) error {
	if _, ok := s.state.(Confirmed); !ok {
		return ErrInvalidSlotState
	}
	s.state = Available{}
	s.updatedAt = now
	return nil
}

func (s *Slot) Cancel(reason string, refund int64, payment PaymentState, now time.Time) error {
	c, ok := s.state.(Confirmed)
	if !ok {
		return ErrInvalidSlotState
	}
	b := c.Booked
	b.Payment = payment
	s.state = Cancelled{Booked: b, Reason: reason, CancelledAt: now, RefundAmount: refund}
	s.updatedAt = now
	return nil
}

func (s *Slot) Complete(checkedInAt *time.Time, now time.Time) error {
	c, ok := s.state.(Confirmed)
	if !ok {
		return ErrInvalidSlotState
	}
	s.state = Completed{Booked: c.Booked, CheckedInAt: checkedInAt, CompletedAt: now}
	s.updatedAt = now
	return nil
}

func (s *Slot) MarkNoShow(now time.Time) error {
	c, ok := s.state.(Confirmed)
	if !ok {
		return ErrInvalidSlotState
	}
	s.state = NoShow{Booked: c.Booked, MarkedAt: now}
	s.updatedAt = now
	return nil
}

func (s *Slot) EnsureWithdrawable() error {
	if !s.IsAvailability() {
		return ErrSlotNotWithdrawable
	}
	return nil
}

func (s *Slot) IsAvailability() bool {
	_, ok := s.state.(Available)
	return ok
}

func (s *Slot) Booked() (Booked, bool) {
	return BookedPart(s.state)
}

func (s *Slot) ID() uuid.UUID                     { return s.id }
func (s *Slot) HallID() uuid.UUID                 { return s.hallID }
func (s *Slot) Interval() Interval                { return s.interval }
func (s *Slot) State() State                      { return s.state }
func (s *Slot) Lifecycle() LifecycleState         { return s.state.Lifecycle() }
func (s *Slot) RecurringPattern() json.RawMessage { return s.recurringPattern }
func (s *Slot) CreatedAt() time.Time              { return s.createdAt }
func (s *Slot) UpdatedAt() time.Time              { return s.updatedAt }
