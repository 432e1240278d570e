package slot

import (
	"encoding/json"
	"strings"
	"time"

	"venue-booking/internal/pkg/errs"

	"github.com/jinzhu/now"
)

var (
	ErrInvalidFrequency     = errs.Sentinel("recurrence frequency must be daily or weekly", errs.ErrValidation)
	ErrInvalidWeekday       = errs.Sentinel("unknown day of week in recurrence", errs.ErrValidation)
	ErrRecurrenceEndsBefore = errs.Sentinel("recurrence end date is before the start date", errs.ErrValidation)
	ErrTooManyOccurrences   = errs.Sentinel("recurrence produces too many occurrences", errs.ErrValidation)
)

type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
)

// Recurrence is stored verbatim on every slot it produced.
type Recurrence struct {
	Frequency  Frequency `json:"frequency"`
	EndDate    string    `json:"endDate"`
	DaysOfWeek []string  `json:"daysOfWeek"`
}

var weekCalendar = &now.Config{WeekStartDay: time.Sunday, TimeLocation: time.UTC}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Expand lists the calendar days from start to EndDate inclusive whose
// weekday matches the pattern, walking whole calendar weeks.
func (r Recurrence) Expand(start time.Time, maxOccurrences int) ([]time.Time, error) {
	if r.Frequency != FrequencyDaily && r.Frequency != FrequencyWeekly {
		return nil, ErrInvalidFrequency
	}
	last, err := ParseDate(r.EndDate)
	if err != nil {
		return nil, err
	}
	first := CalendarDate(start)
	if last.Before(first) {
		return nil, ErrRecurrenceEndsBefore
	}

	days, err := r.matchingWeekdays(first.Weekday())
	if err != nil {
		return nil, err
	}

	// Bound the walk as well as the output so a distant end date is rejected early.
	if last.Sub(first) > time.Duration(maxOccurrences)*7*24*time.Hour {
		return nil, ErrTooManyOccurrences
	}

	var out []time.Time
	for week := weekCalendar.With(first).BeginningOfWeek(); !week.After(last); week = week.AddDate(0, 0, 7) {
		for offset := range 7 {
			d := week.AddDate(0, 0, offset)
			if d.Before(first) || d.After(last) || !days[d.Weekday()] {
				continue
			}
			out = append(out, d)
			if len(out) > maxOccurrences {
				return nil, ErrTooManyOccurrences
			}
		}
	}
	return out, nil
}

func (r Recurrence) matchingWeekdays(startDay time.Weekday) (map[time.Weekday]bool, error) {
	days := make(map[time.Weekday]bool, 7)
	if len(r.DaysOfWeek) == 0 {
		if r.Frequency == FrequencyWeekly {
			days[startDay] = true
			return days, nil
		}
		for _, wd := range weekdayNames {
			days[wd] = true
		}
		return days, nil
	}
	for _, name := range r.DaysOfWeek {
		wd, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, ErrInvalidWeekday
		}
		days[wd] = true
	}
	return days, nil
}

func (r Recurrence) JSON() (json.RawMessage, error) {
	return json.Marshal(r)
}

// Occurrences expands the optional recurrence into the dates to publish.
func Occurrences(date time.Time, rec *Recurrence, maxOccurrences int) ([]time.Time, json.RawMessage, error) {
	if rec == nil {
		return []time.Time{CalendarDate(date)}, nil, nil
	}
	dates, err := rec.Expand(date, maxOccurrences)
	if err != nil {
		return nil, nil, err
	}
	pattern, err := rec.JSON()
	if err != nil {
		return nil, nil, err
	}
	return dates, pattern, nil
}
