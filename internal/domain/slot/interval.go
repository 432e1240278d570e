package slot

import (
	"time"
)

// Interval is a bookable span on a calendar date. When end is not after
// start the span crosses midnight and ends on the following day.
type Interval struct {
	date  time.Time
	start ClockTime
	end   ClockTime
}

func NewInterval(date time.Time, start, end ClockTime) Interval {
	return Interval{date: CalendarDate(date), start: start, end: end}
}

// ParseInterval builds an interval from wire strings.
func ParseInterval(date, start, end string) (Interval, error) {
	d, err := ParseDate(date)
	if err != nil {
		return Interval{}, err
	}
	s, err := ParseClockTime(start)
	if err != nil {
		return Interval{}, err
	}
	e, err := ParseClockTime(end)
	if err != nil {
		return Interval{}, err
	}
	return NewInterval(d, s, e), nil
}

func (iv Interval) Date() time.Time       { return iv.date }
func (iv Interval) Start() ClockTime      { return iv.start }
func (iv Interval) End() ClockTime        { return iv.end }
func (iv Interval) CrossesMidnight() bool { return iv.end.minutes <= iv.start.minutes }

func (iv Interval) DurationMinutes() int {
	d := iv.end.minutes - iv.start.minutes
	if d <= 0 {
		d += minutesPerDay
	}
	return d
}

func (iv Interval) Hours() float64 {
	return float64(iv.DurationMinutes()) / 60
}

// StartsAt is the zone-naive start, labelled UTC.
func (iv Interval) StartsAt() time.Time {
	return iv.date.Add(time.Duration(iv.start.minutes) * time.Minute)
}

func (iv Interval) EndsAt() time.Time {
	return iv.StartsAt().Add(time.Duration(iv.DurationMinutes()) * time.Minute)
}

// StartIn interprets the naive start as a wall clock in loc.
func (iv Interval) StartIn(loc *time.Location) time.Time {
	y, m, d := iv.date.Date()
	return time.Date(y, m, d, iv.start.minutes/60, iv.start.minutes%60, 0, 0, loc)
}

// Overlaps uses half-open absolute spans, so back-to-back intervals do not collide.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.StartsAt().Before(other.EndsAt()) && iv.EndsAt().After(other.StartsAt())
}

func (iv Interval) Equal(other Interval) bool {
	return iv.date.Equal(other.date) && iv.start == other.start && iv.end == other.end
}
