package booking

import (
	"time"

	"venue-booking/internal/domain/user"

	"github.com/google/uuid"
)

// Party describes how an actor relates to a booking.
type Party struct {
	Customer bool
	Owner    bool
	Admin    bool
}

func PartyOf(b *Booking, hallOwnerID uuid.UUID, actor user.Actor) Party {
	return Party{
		Customer: actor.ID == b.customerID,
		Owner:    actor.ID == hallOwnerID,
		Admin:    actor.IsAdmin(),
	}
}

func (p Party) Any() bool        { return p.Customer || p.Owner || p.Admin }
func (p Party) Privileged() bool { return p.Owner || p.Admin }

// EnsureVisibleTo allows the customer, the hall owner and admins.
func EnsureVisibleTo(b *Booking, hallOwnerID uuid.UUID, actor user.Actor) error {
	if !PartyOf(b, hallOwnerID, actor).Any() {
		return ErrActorNotAllowed
	}
	return nil
}

// EnsureManagedBy allows the hall owner and admins.
func EnsureManagedBy(b *Booking, hallOwnerID uuid.UUID, actor user.Actor) error {
	if !PartyOf(b, hallOwnerID, actor).Privileged() {
		return ErrActorNotAllowed
	}
	return nil
}

// CancellationPlan is the outcome of applying the refund policy.
type CancellationPlan struct {
	Fraction    float64
	Refund      int64
	RestoreSlot bool
}

// PlanCancellation checks who may cancel and at what refund. Only the
// administrator band ignores the cancellation floor.
func PlanCancellation(b *Booking, hallOwnerID uuid.UUID, actor user.Actor, policy Policy, now time.Time) (CancellationPlan, error) {
	party := PartyOf(b, hallOwnerID, actor)
	if !party.Any() {
		return CancellationPlan{}, ErrActorNotAllowed
	}
	if !b.status.Active() {
		return CancellationPlan{}, ErrNotCancellable
	}
	fraction, err := policy.RefundFraction(policy.HoursUntilStart(b.interval, now), party.Admin)
	if err != nil {
		return CancellationPlan{}, err
	}
	return CancellationPlan{
		Fraction:    fraction,
		Refund:      policy.RefundAmount(b.amounts.Total, fraction),
		RestoreSlot: party.Customer && !party.Admin && b.fromPublishedSlot,
	}, nil
}

// DeletionPlan says whether the booking has to be cancelled before removal.
type DeletionPlan struct {
	CancelFirst bool
	Fraction    float64
	Refund      int64
}

// PlanDeletion allows removing cancelled bookings by any party, and
// force-deleting active ones by the hall owner or an admin.
func PlanDeletion(b *Booking, hallOwnerID uuid.UUID, actor user.Actor, policy Policy, now time.Time) (DeletionPlan, error) {
	party := PartyOf(b, hallOwnerID, actor)
	if !party.Any() {
		return DeletionPlan{}, ErrActorNotAllowed
	}
	switch {
	case b.status == StatusCancelled:
		return DeletionPlan{}, nil
	case b.status.Active():
		if !party.Privileged() {
			return DeletionPlan{}, ErrActorNotAllowed
		}
		fraction, err := policy.RefundFraction(policy.HoursUntilStart(b.interval, now), true)
		if err != nil {
			return DeletionPlan{}, err
		}
		return DeletionPlan{
			CancelFirst: true,
			Fraction:    fraction,
			Refund:      policy.RefundAmount(b.amounts.Total, fraction),
		}, nil
	default:
		return DeletionPlan{}, ErrNotDeletable
	}
}
