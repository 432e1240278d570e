package request

import (
	"venue-booking/internal/domain/slot"
	"venue-booking/internal/usecase/queries"
)

type RecurrenceRequest struct {
	Frequency  string   `json:"frequency" binding:"required,oneof=daily weekly"`
	EndDate    string   `json:"end_date" binding:"required"`
	DaysOfWeek []string `json:"days_of_week"`
}

type CreateSlotsRequest struct {
	Date       string             `json:"date" binding:"required"`
	StartTime  string             `json:"start_time" binding:"required"`
	EndTime    string             `json:"end_time" binding:"required"`
	Recurrence *RecurrenceRequest `json:"recurrence"`
}

func (r *CreateSlotsRequest) ToDomain() (slot.Interval, *slot.Recurrence, error) {
	iv, err := slot.ParseInterval(r.Date, r.StartTime, r.EndTime)
	if err != nil {
		return slot.Interval{}, nil, err
	}
	if r.Recurrence == nil {
		return iv, nil, nil
	}
	return iv, &slot.Recurrence{
		Frequency:  slot.Frequency(r.Recurrence.Frequency),
		EndDate:    r.Recurrence.EndDate,
		DaysOfWeek: r.Recurrence.DaysOfWeek,
	}, nil
}

type CancelSlotRequest struct {
	Reason string `json:"reason" binding:"max=1000"`
}

type ListSlotsQuery struct {
	From          *string `form:"from"`
	To            *string `form:"to"`
	State         *string `form:"state" binding:"omitempty,oneof=available confirmed completed cancelled no_show"`
	AvailableOnly bool    `form:"available_only"`
	BookedOnly    bool    `form:"booked_only"`
	Page          int     `form:"page" binding:"omitempty,min=1"`
	Limit         int     `form:"limit" binding:"omitempty,min=1,max=200"`
}

func (q *ListSlotsQuery) ToFilter() (queries.SlotFilter, error) {
	from, err := parseOptionalDate(q.From)
	if err != nil {
		return queries.SlotFilter{}, err
	}
	to, err := parseOptionalDate(q.To)
	if err != nil {
		return queries.SlotFilter{}, err
	}
	return queries.SlotFilter{
		From:          from,
		To:            to,
		State:         q.State,
		AvailableOnly: q.AvailableOnly,
		BookedOnly:    q.BookedOnly,
		PageRequest:   queries.PageRequest{Page: q.Page, Limit: q.Limit},
	}, nil
}
