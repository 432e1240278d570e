package request

import (
	"time"

	"venue-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ListRevenueQuery struct {
	HallID *string `form:"hall_id" binding:"omitempty,uuid"`
	From   *string `form:"from"`
	To     *string `form:"to"`
	Status *string `form:"status" binding:"omitempty,oneof=recorded refunded"`
	Cursor string  `form:"cursor"`
	Limit  int     `form:"limit" binding:"omitempty,min=1,max=200"`
}

// ToFilter reads from/to as calendar days; to is inclusive, so the upper
// bound moves to the start of the following day.
func (q *ListRevenueQuery) ToFilter() (queries.RevenueFilter, error) {
	hallID, err := parseOptionalUUID(q.HallID)
	if err != nil {
		return queries.RevenueFilter{}, err
	}
	from, err := parseOptionalDate(q.From)
	if err != nil {
		return queries.RevenueFilter{}, err
	}
	to, err := parseOptionalDate(q.To)
	if err != nil {
		return queries.RevenueFilter{}, err
	}
	if to != nil {
		next := to.AddDate(0, 0, 1)
		to = &next
	}
	f := queries.RevenueFilter{
		HallID: hallID,
		From:   from,
		To:     to,
		Status: q.Status,
		Limit:  q.Limit,
	}
	if q.Cursor != "" {
		f.Cursor = &queries.Cursor{After: q.Cursor}
	}
	return f, nil
}

type RevenueSummaryQuery struct {
	Period string  `form:"period" binding:"omitempty,oneof=month week"`
	At     *string `form:"at"`
	HallID *string `form:"hall_id" binding:"omitempty,uuid"`
}

func (q *RevenueSummaryQuery) Parse() (*time.Time, *uuid.UUID, error) {
	at, err := parseOptionalDate(q.At)
	if err != nil {
		return nil, nil, err
	}
	hallID, err := parseOptionalUUID(q.HallID)
	if err != nil {
		return nil, nil, err
	}
	return at, hallID, nil
}
