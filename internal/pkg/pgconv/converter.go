package pgconv

import (
	"database/sql"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var ErrInvalidFloat64Value = errors.New("invalid float64 value in pgtype.Float8")

const microsPerMinute = int64(time.Minute / time.Microsecond)

func UUIDPtrFromPgtype(pu pgtype.UUID) *uuid.UUID {
	if !pu.Valid {
		return nil
	}
	id := uuid.UUID(pu.Bytes)
	return &id
}

func StringPtrFromPgtype(pt pgtype.Text) *string {
	if !pt.Valid {
		return nil
	}
	return &pt.String
}

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time
}

func TimePtrFromPgtype(pt pgtype.Timestamptz) *time.Time {
	if !pt.Valid {
		return nil
	}
	t := pt.Time
	return &t
}

func Float64PtrFromPgtype(pf pgtype.Float8) (*float64, error) {
	if !pf.Valid {
		return nil, nil
	}

	value, err := pf.Float64Value()
	if err != nil {
		return nil, ErrInvalidFloat64Value
	}

	return &value.Float64, nil
}

func Float64PtrFromNumeric(pn pgtype.Numeric) (*float64, error) {
	if !pn.Valid {
		return nil, nil
	}

	value, err := pn.Float64Value()
	if err != nil {
		return nil, ErrInvalidFloat64Value
	}

	return &value.Float64, nil
}

func Int32PtrFromPgtype(pi pgtype.Int4) *int32 {
	if !pi.Valid {
		return nil
	}
	return &pi.Int32
}

func Int64PtrFromPgtype(pi pgtype.Int8) *int64 {
	if !pi.Valid {
		return nil
	}
	return &pi.Int64
}

// DateFromPgtype returns the calendar date as midnight UTC.
func DateFromPgtype(pd pgtype.Date) time.Time {
	if !pd.Valid {
		return time.Time{}
	}
	y, m, d := pd.Time.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// MinutesFromPgtime converts a time-of-day column into minutes after midnight.
func MinutesFromPgtime(pt pgtype.Time) int {
	return int(pt.Microseconds / microsPerMinute)
}

func UUIDToPgtype(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

func UUIDPtrToPgtype(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{Valid: false}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}

func StringToPgtype(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: true}
}

func StringPtrToPgtype(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func TimePtrToPgtype(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{Valid: false}
	}
	return pgtype.Timestamptz{Time: *t, Valid: true}
}

// TimestampToPgtype stores a wall-clock value without zone.
func TimestampToPgtype(t time.Time) pgtype.Timestamp {
	return pgtype.Timestamp{Time: t, Valid: true}
}

func DateToPgtype(t time.Time) pgtype.Date {
	y, m, d := t.Date()
	return pgtype.Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), Valid: true}
}

func DatePtrToPgtype(t *time.Time) pgtype.Date {
	if t == nil {
		return pgtype.Date{Valid: false}
	}
	return DateToPgtype(*t)
}

func MinutesToPgtime(minutes int) pgtype.Time {
	return pgtype.Time{Microseconds: int64(minutes) * microsPerMinute, Valid: true}
}

func Int64PtrToPgtype(v *int64) pgtype.Int8 {
	if v == nil {
		return pgtype.Int8{Valid: false}
	}
	return pgtype.Int8{Int64: *v, Valid: true}
}

func Float64PtrToPgtype(v *float64) pgtype.Float8 {
	if v == nil {
		return pgtype.Float8{Valid: false}
	}
	return pgtype.Float8{Float64: *v, Valid: true}
}

// IntToInt32 clamps to the int32 range.
func IntToInt32(v int) int32 {
	switch {
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < math.MinInt32:
		return math.MinInt32
	}
	return int32(v)
}

func IntToInt16(v int) int16 {
	switch {
	case v > math.MaxInt16:
		return math.MaxInt16
	case v < math.MinInt16:
		return math.MinInt16
	}
	return int16(v)
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
