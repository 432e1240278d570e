//go:build unit

package pgconv_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"venue-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func TestMinutesRoundTrip(t *testing.T) {
	for _, m := range []int{0, 1, 600, 22*60 + 30, 1439} {
		assert.Equal(t, m, pgconv.MinutesFromPgtime(pgconv.MinutesToPgtime(m)))
	}
}

func TestDateConversion(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	in := time.Date(2025, 3, 14, 23, 45, 0, 0, tokyo)

	pd := pgconv.DateToPgtype(in)
	assert.True(t, pd.Valid)
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), pgconv.DateFromPgtype(pd))
	assert.True(t, pgconv.DateFromPgtype(pgtype.Date{}).IsZero())
	assert.False(t, pgconv.DatePtrToPgtype(nil).Valid)
}

func TestNullablePointers(t *testing.T) {
	id := uuid.New()
	assert.Equal(t, &id, pgconv.UUIDPtrFromPgtype(pgconv.UUIDPtrToPgtype(&id)))
	assert.Nil(t, pgconv.UUIDPtrFromPgtype(pgconv.UUIDPtrToPgtype(nil)))

	amount := int64(1500)
	assert.Equal(t, &amount, pgconv.Int64PtrFromPgtype(pgconv.Int64PtrToPgtype(&amount)))
	assert.Nil(t, pgconv.Int64PtrFromPgtype(pgconv.Int64PtrToPgtype(nil)))

	now := time.Now()
	got := pgconv.TimePtrFromPgtype(pgconv.TimePtrToPgtype(&now))
	assert.NotNil(t, got)
	assert.True(t, now.Equal(*got))
	assert.Nil(t, pgconv.TimePtrFromPgtype(pgconv.TimePtrToPgtype(nil)))

	fraction := 0.8
	f, err := pgconv.Float64PtrFromPgtype(pgconv.Float64PtrToPgtype(&fraction))
	assert.NoError(t, err)
	assert.InDelta(t, 0.8, *f, 1e-9)
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.True(t, pgconv.IsNoRows(sql.ErrNoRows))
	assert.True(t, pgconv.IsNoRows(fmt.Errorf("wrapped: %w", pgx.ErrNoRows)))
	assert.False(t, pgconv.IsNoRows(errors.New("other")))
}
