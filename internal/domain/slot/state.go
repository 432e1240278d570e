package slot

import (
	"time"

	"github.com/google/uuid"
)

type LifecycleState string

const (
	LifecycleAvailable LifecycleState = "available"
	LifecycleConfirmed LifecycleState = "confirmed"
	LifecycleCompleted LifecycleState = "completed"
	LifecycleCancelled LifecycleState = "cancelled"
	LifecycleNoShow    LifecycleState = "no_show"
)

func (s LifecycleState) String() string { return string(s) }

func (s LifecycleState) IsValid() bool {
	switch s {
	case LifecycleAvailable, LifecycleConfirmed, LifecycleCompleted, LifecycleCancelled, LifecycleNoShow:
		return true
	default:
		return false
	}
}

// Blocking states take part in the per-hall overlap guard.
func (s LifecycleState) Blocking() bool {
	return s == LifecycleConfirmed || s == LifecycleCompleted
}

type PaymentState string

const (
	PaymentNotApplicable PaymentState = "not_applicable"
	PaymentPending       PaymentState = "pending"
	PaymentPartial       PaymentState = "partial"
	PaymentPaid          PaymentState = "paid"
	PaymentRefunded      PaymentState = "refunded"
)

func (p PaymentState) String() string { return string(p) }

func (p PaymentState) IsValid() bool {
	switch p {
	case PaymentNotApplicable, PaymentPending, PaymentPartial, PaymentPaid, PaymentRefunded:
		return true
	default:
		return false
	}
}

// Booked is the part every non-available state carries.
type Booked struct {
	CustomerID uuid.UUID
	BookingID  uuid.UUID
	Amounts    Amounts
	Payment    PaymentState
}

// State is the tagged lifecycle of a slot. Whether a record is an open
// availability slot is derived from the variant and cannot disagree with it.
type State interface {
	Lifecycle() LifecycleState
	isState()
}

type Available struct{}

type Confirmed struct {
	Booked
}

type Completed struct {
	Booked
	CheckedInAt *time.Time
	CompletedAt time.Time
}

type Cancelled struct {
	Booked
	Reason       string
	CancelledAt  time.Time
	RefundAmount int64
}

type NoShow struct {
	Booked
	MarkedAt time.Time
}

func (Available) Lifecycle() LifecycleState { return LifecycleAvailable }
func (Confirmed) Lifecycle() LifecycleState { return LifecycleConfirmed }
func (Completed) Lifecycle() LifecycleState { return LifecycleCompleted }
func (Cancelled) Lifecycle() LifecycleState { return LifecycleCancelled }
func (NoShow) Lifecycle() LifecycleState    { return LifecycleNoShow }

func (Available) isState() {}
func (Confirmed) isState() {}
func (Completed) isState() {}
func (Cancelled) isState() {}
func (NoShow) isState()    {}

// BookedPart returns the booking references of a non-available state.
func BookedPart(s State) (Booked, bool) {
	switch v := s.(type) {
	case Confirmed:
		return v.Booked, true
	case Completed:
		return v.Booked, true
	case Cancelled:
		return v.Booked, true
	case NoShow:
		return v.Booked, true
	default:
		return Booked{}, false
	}
}
