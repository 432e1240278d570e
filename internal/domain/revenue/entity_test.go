//go:build unit

package revenue_test

import (
	"regexp"
	"testing"
	"time"

	"venue-booking/internal/domain/revenue"
	"venue-booking/internal/pkg/errs"
	"venue-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord(t *testing.T) {
	b := builder.NewBookingBuilder()
	completedAt := time.Date(2026, 12, 1, 12, 5, 0, 0, time.UTC)
	now := completedAt.Add(time.Minute)

	record := revenue.NewRecord(revenue.Snapshot{
		BookingID:   b.ID,
		HallID:      b.HallID,
		OwnerID:     b.OwnerID,
		CustomerID:  b.CustomerID,
		Interval:    b.Interval(),
		Amounts:     b.Amounts,
		CompletedAt: completedAt,
	}, now)

	assert.Equal(t, revenue.StatusRecorded, record.Status())
	assert.Equal(t, b.ID, record.BookingID())
	assert.Regexp(t, regexp.MustCompile(`^REV-20261201-[0-9a-f]{8}$`), record.TransactionRef())
	assert.Equal(t, now, record.CreatedAt())

	refundedAt := now.Add(time.Hour)
	require.NoError(t, record.MarkRefunded(refundedAt))
	assert.Equal(t, revenue.StatusRefunded, record.Status())
	assert.Equal(t, refundedAt, record.UpdatedAt())
	assert.Equal(t, b.Amounts, record.Snapshot().Amounts, "amounts stay on refund")

	assert.True(t, errs.Is(record.MarkRefunded(refundedAt), revenue.ErrAlreadyRefunded))
}

func TestNewTransactionRef(t *testing.T) {
	at := time.Date(2026, 1, 2, 23, 30, 0, 0, time.FixedZone("UTC-3", -3*60*60))
	a := revenue.NewTransactionRef(at)
	c := revenue.NewTransactionRef(at)

	assert.Regexp(t, `^REV-20260103-`, a, "date is taken in UTC")
	assert.NotEqual(t, a, c)
}
