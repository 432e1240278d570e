//go:build unit

package slot_test

import (
	"encoding/json"
	"testing"
	"time"

	"venue-booking/internal/domain/slot"
	"venue-booking/internal/pkg/errs"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dates(t *testing.T, ss ...string) []time.Time {
	t.Helper()
	out := make([]time.Time, len(ss))
	for i, s := range ss {
		d, err := slot.ParseDate(s)
		require.NoError(t, err)
		out[i] = d
	}
	return out
}

func TestRecurrenceExpand(t *testing.T) {
	// 2026-12-01 is a Tuesday.
	start := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		rec  slot.Recurrence
		want []time.Time
		err  error
	}{
		{
			name: "weekly without days repeats the start weekday",
			rec:  slot.Recurrence{Frequency: slot.FrequencyWeekly, EndDate: "2026-12-22"},
			want: dates(t, "2026-12-01", "2026-12-08", "2026-12-15", "2026-12-22"),
		},
		{
			name: "weekly on listed days",
			rec:  slot.Recurrence{Frequency: slot.FrequencyWeekly, EndDate: "2026-12-10", DaysOfWeek: []string{"Thursday", " tuesday "}},
			want: dates(t, "2026-12-01", "2026-12-03", "2026-12-08", "2026-12-10"),
		},
		{
			name: "days earlier in the start week wait for the next week",
			rec:  slot.Recurrence{Frequency: slot.FrequencyWeekly, EndDate: "2026-12-14", DaysOfWeek: []string{"saturday", "monday"}},
			want: dates(t, "2026-12-05", "2026-12-07", "2026-12-12", "2026-12-14"),
		},
		{
			name: "daily without days covers every day",
			rec:  slot.Recurrence{Frequency: slot.FrequencyDaily, EndDate: "2026-12-04"},
			want: dates(t, "2026-12-01", "2026-12-02", "2026-12-03", "2026-12-04"),
		},
		{
			name: "start excluded when its weekday is not listed",
			rec:  slot.Recurrence{Frequency: slot.FrequencyDaily, EndDate: "2026-12-07", DaysOfWeek: []string{"saturday", "sunday"}},
			want: dates(t, "2026-12-05", "2026-12-06"),
		},
		{
			name: "end date equal to start",
			rec:  slot.Recurrence{Frequency: slot.FrequencyWeekly, EndDate: "2026-12-01"},
			want: dates(t, "2026-12-01"),
		},
		{
			name: "unknown frequency",
			rec:  slot.Recurrence{Frequency: "monthly", EndDate: "2026-12-31"},
			err:  slot.ErrInvalidFrequency,
		},
		{
			name: "end before start",
			rec:  slot.Recurrence{Frequency: slot.FrequencyDaily, EndDate: "2026-11-30"},
			err:  slot.ErrRecurrenceEndsBefore,
		},
		{
			name: "unknown weekday",
			rec:  slot.Recurrence{Frequency: slot.FrequencyWeekly, EndDate: "2026-12-31", DaysOfWeek: []string{"funday"}},
			err:  slot.ErrInvalidWeekday,
		},
		{
			name: "malformed end date",
			rec:  slot.Recurrence{Frequency: slot.FrequencyWeekly, EndDate: "31.12.2026"},
			err:  slot.ErrInvalidDate,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.rec.Expand(start, 52)
			if tc.err != nil {
				assert.True(t, errs.Is(err, tc.err), "got %v", err)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("occurrences mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRecurrenceExpandLimit(t *testing.T) {
	start := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)

	t.Run("daily series over the cap", func(t *testing.T) {
		rec := slot.Recurrence{Frequency: slot.FrequencyDaily, EndDate: "2026-12-31"}
		_, err := rec.Expand(start, 10)
		assert.True(t, errs.Is(err, slot.ErrTooManyOccurrences))
	})

	t.Run("exactly at the cap", func(t *testing.T) {
		rec := slot.Recurrence{Frequency: slot.FrequencyDaily, EndDate: "2026-12-10"}
		got, err := rec.Expand(start, 10)
		require.NoError(t, err)
		assert.Len(t, got, 10)
	})

	t.Run("distant end date rejected before walking", func(t *testing.T) {
		rec := slot.Recurrence{Frequency: slot.FrequencyWeekly, EndDate: "2099-01-01"}
		_, err := rec.Expand(start, 52)
		assert.True(t, errs.Is(err, slot.ErrTooManyOccurrences))
	})
}

func TestOccurrences(t *testing.T) {
	date := time.Date(2026, 12, 1, 15, 30, 0, 0, time.UTC)

	t.Run("without recurrence publishes the single date", func(t *testing.T) {
		got, pattern, err := slot.Occurrences(date, nil, 52)
		require.NoError(t, err)
		assert.Equal(t, dates(t, "2026-12-01"), got)
		assert.Nil(t, pattern)
	})

	t.Run("stores the pattern verbatim", func(t *testing.T) {
		rec := &slot.Recurrence{Frequency: slot.FrequencyWeekly, EndDate: "2026-12-08", DaysOfWeek: []string{"tuesday"}}
		got, pattern, err := slot.Occurrences(date, rec, 52)
		require.NoError(t, err)
		assert.Len(t, got, 2)

		var decoded slot.Recurrence
		require.NoError(t, json.Unmarshal(pattern, &decoded))
		assert.Equal(t, *rec, decoded)
	})
}
