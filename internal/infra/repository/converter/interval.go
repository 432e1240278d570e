package converter

import (
	"venue-booking/internal/domain/slot"
	"venue-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

// IntervalFromColumns rebuilds an interval from its date and time-of-day columns.
func IntervalFromColumns(date pgtype.Date, start, end pgtype.Time) (slot.Interval, error) {
	s, err := slot.ClockTimeFromMinutes(pgconv.MinutesFromPgtime(start))
	if err != nil {
		return slot.Interval{}, err
	}
	e, err := slot.ClockTimeFromMinutes(pgconv.MinutesFromPgtime(end))
	if err != nil {
		return slot.Interval{}, err
	}
	return slot.NewInterval(pgconv.DateFromPgtype(date), s, e), nil
}

type intervalColumns struct {
	Date      pgtype.Date
	StartTime pgtype.Time
	EndTime   pgtype.Time
}

func intervalToColumns(iv slot.Interval) intervalColumns {
	return intervalColumns{
		Date:      pgconv.DateToPgtype(iv.Date()),
		StartTime: pgconv.MinutesToPgtime(iv.Start().Minutes()),
		EndTime:   pgconv.MinutesToPgtime(iv.End().Minutes()),
	}
}
