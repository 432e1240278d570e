package slot

import (
	"math"

	"venue-booking/internal/pkg/errs"
)

// MaxPricePerHour keeps a full-day total well inside int64 and exact in float64.
const MaxPricePerHour int64 = 1_000_000_000_000

var ErrPriceOutOfRange = errs.Sentinel("price per hour is out of range", errs.ErrValidation)

// Amounts are integer base-currency units.
type Amounts struct {
	Total           int64
	PlatformFee     int64
	OwnerCommission int64
}

func (a Amounts) IsZero() bool {
	return a.Total == 0 && a.PlatformFee == 0 && a.OwnerCommission == 0
}

// FeeSplit is the single platform/owner split applied to every booking.
type FeeSplit struct {
	PlatformFeeRate     float64
	OwnerCommissionRate float64
}

// Compute prices an interval at pricePerHour. The total rounds half up on
// whole minutes so fractional hours never drift through float math.
func (s FeeSplit) Compute(iv Interval, pricePerHour int64) (Amounts, error) {
	if pricePerHour < 0 || pricePerHour > MaxPricePerHour {
		return Amounts{}, ErrPriceOutOfRange
	}
	minutes := int64(iv.DurationMinutes())
	total := (minutes*pricePerHour*2 + 60) / 120
	return Amounts{
		Total:           total,
		PlatformFee:     RoundShare(total, s.PlatformFeeRate),
		OwnerCommission: RoundShare(total, s.OwnerCommissionRate),
	}, nil
}

func RoundShare(total int64, rate float64) int64 {
	return int64(math.Round(float64(total) * rate))
}
