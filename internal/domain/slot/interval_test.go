//go:build unit

package slot_test

import (
	"testing"
	"time"

	"venue-booking/internal/domain/slot"
	"venue-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustInterval(t *testing.T, date, start, end string) slot.Interval {
	t.Helper()
	iv, err := slot.ParseInterval(date, start, end)
	require.NoError(t, err)
	return iv
}

func TestParseClockTime(t *testing.T) {
	cases := []struct {
		in      string
		minutes int
		err     error
	}{
		{in: "00:00", minutes: 0},
		{in: "09:30", minutes: 570},
		{in: "23:59", minutes: 1439},
		{in: "24:00", err: slot.ErrInvalidClockTime},
		{in: "9:30", err: slot.ErrInvalidClockTime},
		{in: "09:60", err: slot.ErrInvalidClockTime},
		{in: "0930", err: slot.ErrInvalidClockTime},
		{in: "ab:cd", err: slot.ErrInvalidClockTime},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			ct, err := slot.ParseClockTime(tc.in)
			if tc.err != nil {
				assert.True(t, errs.Is(err, tc.err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.minutes, ct.Minutes())
			assert.Equal(t, tc.in, ct.String())
		})
	}
}

func TestParseInterval(t *testing.T) {
	t.Run("rejects a malformed date", func(t *testing.T) {
		_, err := slot.ParseInterval("2026/12/01", "10:00", "12:00")
		assert.True(t, errs.Is(err, slot.ErrInvalidDate))
	})

	t.Run("normalises the date to midnight UTC", func(t *testing.T) {
		iv := mustInterval(t, "2026-12-01", "10:00", "12:00")
		assert.Equal(t, time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC), iv.Date())
	})
}

func TestIntervalDuration(t *testing.T) {
	cases := []struct {
		name     string
		start    string
		end      string
		minutes  int
		crossing bool
	}{
		{name: "same day", start: "10:00", end: "12:30", minutes: 150},
		{name: "ends at midnight", start: "22:00", end: "00:00", minutes: 120, crossing: true},
		{name: "crosses midnight", start: "22:00", end: "02:00", minutes: 240, crossing: true},
		{name: "equal bounds span a full day", start: "08:00", end: "08:00", minutes: 1440, crossing: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			iv := mustInterval(t, "2026-12-01", tc.start, tc.end)
			assert.Equal(t, tc.minutes, iv.DurationMinutes())
			assert.InDelta(t, float64(tc.minutes)/60, iv.Hours(), 1e-9)
			assert.Equal(t, tc.crossing, iv.CrossesMidnight())
			assert.Equal(t, iv.StartsAt().Add(time.Duration(tc.minutes)*time.Minute), iv.EndsAt())
		})
	}
}

func TestIntervalOverlaps(t *testing.T) {
	base := mustInterval(t, "2026-12-01", "10:00", "12:00")
	cases := []struct {
		name  string
		other slot.Interval
		want  bool
	}{
		{name: "identical", other: base, want: true},
		{name: "partially overlapping", other: mustInterval(t, "2026-12-01", "11:00", "13:00"), want: true},
		{name: "contained", other: mustInterval(t, "2026-12-01", "10:30", "11:00"), want: true},
		{name: "back to back after", other: mustInterval(t, "2026-12-01", "12:00", "14:00"), want: false},
		{name: "back to back before", other: mustInterval(t, "2026-12-01", "08:00", "10:00"), want: false},
		{name: "other day", other: mustInterval(t, "2026-12-02", "10:00", "12:00"), want: false},
		{name: "previous night crossing into the morning", other: mustInterval(t, "2026-11-30", "23:00", "10:30"), want: true},
		{name: "previous night ending at the start", other: mustInterval(t, "2026-11-30", "23:00", "10:00"), want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, base.Overlaps(tc.other))
			assert.Equal(t, tc.want, tc.other.Overlaps(base), "overlap is symmetric")
		})
	}
}

func TestIntervalStartIn(t *testing.T) {
	iv := mustInterval(t, "2026-12-01", "10:00", "12:00")
	plusTwo := time.FixedZone("UTC+2", 2*60*60)

	start := iv.StartIn(plusTwo)
	assert.Equal(t, time.Date(2026, 12, 1, 8, 0, 0, 0, time.UTC), start.UTC())
}

func TestFeeSplitCompute(t *testing.T) {
	split := slot.FeeSplit{PlatformFeeRate: 0.05, OwnerCommissionRate: 0.90}

	cases := []struct {
		name    string
		start   string
		end     string
		price   int64
		want    slot.Amounts
	}{
		{name: "whole hours", start: "10:00", end: "12:00", price: 5000, want: slot.Amounts{Total: 10000, PlatformFee: 500, OwnerCommission: 9000}},
		{name: "fractional hours", start: "10:00", end: "11:30", price: 5000, want: slot.Amounts{Total: 7500, PlatformFee: 375, OwnerCommission: 6750}},
		{name: "half unit rounds up", start: "10:00", end: "10:01", price: 30, want: slot.Amounts{Total: 1, PlatformFee: 0, OwnerCommission: 1}},
		{name: "below half rounds down", start: "10:00", end: "10:01", price: 29, want: slot.Amounts{Total: 0}},
		{name: "overnight", start: "22:00", end: "02:00", price: 1000, want: slot.Amounts{Total: 4000, PlatformFee: 200, OwnerCommission: 3600}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := split.Compute(mustInterval(t, "2026-12-01", tc.start, tc.end), tc.price)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("full day at the price ceiling keeps the split", func(t *testing.T) {
		got, err := split.Compute(mustInterval(t, "2026-12-01", "00:00", "00:00"), slot.MaxPricePerHour)
		require.NoError(t, err)
		assert.Equal(t, 24*slot.MaxPricePerHour, got.Total)
		assert.Equal(t, got.Total/20, got.PlatformFee)
		assert.Equal(t, got.Total/10*9, got.OwnerCommission)
	})

	t.Run("price above the ceiling is rejected", func(t *testing.T) {
		_, err := split.Compute(mustInterval(t, "2026-12-01", "10:00", "13:00"), 100_000_000_000_000_000)
		assert.True(t, errs.Is(err, slot.ErrPriceOutOfRange))
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}
