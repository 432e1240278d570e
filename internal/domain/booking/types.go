package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
	StatusNoShow    Status = "no_show"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted, StatusNoShow:
		return true
	default:
		return false
	}
}

// Active bookings still hold their slot.
func (s Status) Active() bool {
	return s == StatusPending || s == StatusConfirmed
}

const MaxSpecialRequirementsLength = 2000
