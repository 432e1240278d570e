package revenue

import (
	"time"

	"venue-booking/internal/pkg/errs"

	"github.com/jinzhu/now"
)

var ErrInvalidPeriod = errs.Sentinel("period must be month or week", errs.ErrValidation)

type Period string

const (
	PeriodMonth Period = "month"
	PeriodWeek  Period = "week"
)

func NewPeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodMonth, PeriodWeek:
		return Period(s), nil
	case "":
		return PeriodMonth, nil
	default:
		return "", ErrInvalidPeriod
	}
}

// Bounds returns the half-open [from, to) window containing at. Weeks start on Monday.
func (p Period) Bounds(at time.Time) (from, to time.Time) {
	cfg := &now.Config{WeekStartDay: time.Monday, TimeLocation: at.Location()}
	n := cfg.With(at)
	switch p {
	case PeriodWeek:
		from = n.BeginningOfWeek()
		return from, from.AddDate(0, 0, 7)
	default:
		from = n.BeginningOfMonth()
		return from, from.AddDate(0, 1, 0)
	}
}
