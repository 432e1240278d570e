//go:build unit

package revenue_test

import (
	"testing"
	"time"

	"venue-booking/internal/domain/revenue"
	"venue-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPeriod(t *testing.T) {
	p, err := revenue.NewPeriod("")
	require.NoError(t, err)
	assert.Equal(t, revenue.PeriodMonth, p)

	p, err = revenue.NewPeriod("week")
	require.NoError(t, err)
	assert.Equal(t, revenue.PeriodWeek, p)

	_, err = revenue.NewPeriod("year")
	assert.True(t, errs.Is(err, revenue.ErrInvalidPeriod))
}

func TestPeriodBounds(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

	tests := []struct {
		name   string
		period revenue.Period
		at     time.Time
		from   time.Time
		to     time.Time
	}{
		{name: "month mid-way", period: revenue.PeriodMonth, at: time.Date(2026, 10, 19, 15, 4, 0, 0, time.UTC), from: day(2026, 10, 1), to: day(2026, 11, 1)},
		{name: "month rolls over the year", period: revenue.PeriodMonth, at: day(2026, 12, 31), from: day(2026, 12, 1), to: day(2027, 1, 1)},
		{name: "february of a leap year", period: revenue.PeriodMonth, at: day(2028, 2, 29), from: day(2028, 2, 1), to: day(2028, 3, 1)},
		{name: "week starts on monday", period: revenue.PeriodWeek, at: day(2026, 10, 14), from: day(2026, 10, 12), to: day(2026, 10, 19)},
		{name: "sunday belongs to the previous week", period: revenue.PeriodWeek, at: time.Date(2026, 10, 18, 23, 59, 0, 0, time.UTC), from: day(2026, 10, 12), to: day(2026, 10, 19)},
		{name: "monday opens a new week", period: revenue.PeriodWeek, at: day(2026, 10, 19), from: day(2026, 10, 19), to: day(2026, 10, 26)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to := tt.period.Bounds(tt.at)
			assert.True(t, tt.from.Equal(from), "from: want %s, got %s", tt.from, from)
			assert.True(t, tt.to.Equal(to), "to: want %s, got %s", tt.to, to)
		})
	}
}
