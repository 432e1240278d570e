package slot

import (
	"fmt"
	"time"

	"venue-booking/internal/pkg/errs"
)

var (
	ErrInvalidClockTime = errs.Sentinel("time must be HH:MM in 24h format", errs.ErrValidation)
	ErrInvalidDate      = errs.Sentinel("date must be YYYY-MM-DD", errs.ErrValidation)
)

const (
	minutesPerDay = 24 * 60
	DateLayout    = "2006-01-02"
)

// ClockTime is a wall-clock time of day with minute precision.
type ClockTime struct {
	minutes int
}

func ParseClockTime(s string) (ClockTime, error) {
	if len(s) != 5 || s[2] != ':' {
		return ClockTime{}, ErrInvalidClockTime
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return ClockTime{}, ErrInvalidClockTime
	}
	return ClockTime{minutes: t.Hour()*60 + t.Minute()}, nil
}

func ClockTimeFromMinutes(m int) (ClockTime, error) {
	if m < 0 || m >= minutesPerDay {
		return ClockTime{}, ErrInvalidClockTime
	}
	return ClockTime{minutes: m}, nil
}

func MustClockTime(s string) ClockTime {
	c, err := ParseClockTime(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c ClockTime) Minutes() int { return c.minutes }

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.minutes/60, c.minutes%60)
}

// ParseDate reads a calendar date and normalises it to midnight UTC.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// CalendarDate drops the time and zone of t, keeping its local calendar day.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
