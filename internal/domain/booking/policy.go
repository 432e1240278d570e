package booking

import (
	"time"

	"venue-booking/internal/domain/slot"
	"venue-booking/internal/pkg/errs"
)

var (
	ErrCancellationTooLate = errs.Sentinel("bookings cannot be cancelled within the cancellation window", errs.ErrPolicyViolation)
)

// Policy holds the marketplace rules loaded from configuration.
type Policy struct {
	Split                    slot.FeeSplit
	CancellationFloor        time.Duration
	EarlyRefundThreshold     time.Duration
	EarlyRefundFraction      float64
	LateRefundFraction       float64
	Location                 *time.Location
	MaxRecurrenceOccurrences int
}

func DefaultPolicy() Policy {
	return Policy{
		Split:                    slot.FeeSplit{PlatformFeeRate: 0.05, OwnerCommissionRate: 0.90},
		CancellationFloor:        24 * time.Hour,
		EarlyRefundThreshold:     48 * time.Hour,
		EarlyRefundFraction:      0.80,
		LateRefundFraction:       0.50,
		Location:                 time.UTC,
		MaxRecurrenceOccurrences: 366,
	}
}

func (p Policy) location() *time.Location {
	if p.Location == nil {
		return time.UTC
	}
	return p.Location
}

// HoursUntilStart measures from now to the interval start read as a wall
// clock in the policy zone.
func (p Policy) HoursUntilStart(iv slot.Interval, now time.Time) float64 {
	return iv.StartIn(p.location()).Sub(now).Hours()
}

func (p Policy) HasStarted(iv slot.Interval, now time.Time) bool {
	return !now.Before(iv.StartIn(p.location()))
}

// RefundFraction applies the refund bands. Privileged callers skip the
// cancellation floor and receive nothing inside it.
func (p Policy) RefundFraction(hoursUntilStart float64, privileged bool) (float64, error) {
	floor := p.CancellationFloor.Hours()
	early := p.EarlyRefundThreshold.Hours()
	switch {
	case hoursUntilStart > early:
		return p.EarlyRefundFraction, nil
	case hoursUntilStart >= floor:
		return p.LateRefundFraction, nil
	case privileged:
		return 0, nil
	default:
		return 0, ErrCancellationTooLate
	}
}

func (p Policy) RefundAmount(total int64, fraction float64) int64 {
	return slot.RoundShare(total, fraction)
}

func (p Policy) Price(iv slot.Interval, pricePerHour int64) (slot.Amounts, error) {
	return p.Split.Compute(iv, pricePerHour)
}
