//go:build unit

package readstore

import (
	"testing"
	"time"

	"venue-booking/internal/pkg/pgconv"
	"venue-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHallConditions(t *testing.T) {
	ownerID := uuid.New()
	location := "ber_lin"
	minCapacity := 50

	t.Run("anonymous callers only see approved halls", func(t *testing.T) {
		sql, args, err := hallConditions(queries.HallFilter{}).ToSql()
		require.NoError(t, err)
		assert.Contains(t, sql, "approval_status = ?")
		assert.Equal(t, []any{"approved"}, args)
	})

	t.Run("owners also see their own listings", func(t *testing.T) {
		f := queries.HallFilter{Visibility: queries.HallVisibility{OwnerID: &ownerID}}
		sql, args, err := hallConditions(f).ToSql()
		require.NoError(t, err)
		assert.Contains(t, sql, "approval_status = ? OR owner_id = ?")
		assert.Equal(t, []any{"approved", ownerID.String()}, args)
	})

	t.Run("admins see every status with filters applied", func(t *testing.T) {
		f := queries.HallFilter{
			Location:    &location,
			MinCapacity: &minCapacity,
			Visibility:  queries.HallVisibility{AllStatuses: true},
		}
		sql, args, err := hallConditions(f).ToSql()
		require.NoError(t, err)
		assert.NotContains(t, sql, "approval_status")
		assert.Contains(t, sql, "location ILIKE ?")
		assert.Contains(t, sql, "capacity >= ?")
		assert.Equal(t, []any{`%ber\_lin%`, 50}, args)
	})
}

func TestSlotConditions(t *testing.T) {
	hallID := uuid.New()
	from := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)

	t.Run("available only", func(t *testing.T) {
		sql, args, err := slotConditions(hallID, queries.SlotFilter{AvailableOnly: true, From: &from}).ToSql()
		require.NoError(t, err)
		assert.Contains(t, sql, "hall_id = ?")
		assert.Contains(t, sql, "date >= ?")
		assert.Contains(t, sql, "lifecycle_state = ?")
		require.Len(t, args, 3)
		assert.Equal(t, hallID.String(), args[0])
		assert.Equal(t, "available", args[2])
	})

	t.Run("booked only", func(t *testing.T) {
		sql, args, err := slotConditions(hallID, queries.SlotFilter{BookedOnly: true}).ToSql()
		require.NoError(t, err)
		assert.Contains(t, sql, "lifecycle_state <> ?")
		assert.Equal(t, []any{hallID.String(), "available"}, args)
	})
}

func TestBookingConditions(t *testing.T) {
	userID := uuid.New()
	status := "confirmed"

	sql, args, err := bookingConditions(queries.BookingFilter{Status: &status, VisibleTo: &userID}).ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "b.status = ?")
	assert.Contains(t, sql, "b.customer_id = ? OR h.owner_id = ?")
	assert.Equal(t, []any{"confirmed", userID.String(), userID.String()}, args)
}

func TestRevenueConditions(t *testing.T) {
	from := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)

	sql, args, err := revenueConditions(queries.RevenueFilter{From: &from, To: &to}).ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "completed_at >= ?")
	assert.Contains(t, sql, "completed_at < ?", "upper bound is exclusive")
	assert.Equal(t, []any{from, to}, args)
}

func TestRowFormatting(t *testing.T) {
	tests := []struct {
		name  string
		start int
		end   int
		hours float64
	}{
		{name: "same day", start: 600, end: 750, hours: 2.5},
		{name: "ends at midnight", start: 22 * 60, end: 0, hours: 2},
		{name: "crosses midnight", start: 23 * 60, end: 60, hours: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.hours, spanHours(pgconv.MinutesToPgtime(tt.start), pgconv.MinutesToPgtime(tt.end)), 1e-9)
		})
	}

	assert.Equal(t, "09:05", formatClock(pgconv.MinutesToPgtime(545)))
	assert.Equal(t, "2026-12-01", formatDate(pgconv.DateToPgtype(time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC))))
	assert.Equal(t, "", formatDate(pgconv.DatePtrToPgtype(nil)))
	assert.Equal(t, `%100\%%`, containsPattern("100%"))
}
