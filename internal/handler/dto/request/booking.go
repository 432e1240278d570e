package request

import (
	"venue-booking/internal/domain/slot"
	"venue-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	HallID              uuid.UUID `json:"hall_id" binding:"required"`
	Date                string    `json:"date" binding:"required"`
	StartTime           string    `json:"start_time" binding:"required"`
	EndTime             string    `json:"end_time" binding:"required"`
	SpecialRequirements string    `json:"special_requirements" binding:"max=2000"`
}

func (r *CreateBookingRequest) ToDomain() (slot.Interval, error) {
	return slot.ParseInterval(r.Date, r.StartTime, r.EndTime)
}

type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"max=1000"`
}

type SubmitFeedbackRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required,max=1000"`
}

type ListBookingsQuery struct {
	HallID       *string `form:"hall_id" binding:"omitempty,uuid"`
	CustomerID   *string `form:"customer_id" binding:"omitempty,uuid"`
	OwnerID      *string `form:"owner_id" binding:"omitempty,uuid"`
	From         *string `form:"from"`
	To           *string `form:"to"`
	Status       *string `form:"status" binding:"omitempty,oneof=pending confirmed cancelled completed no_show"`
	PaymentState *string `form:"payment_state" binding:"omitempty,oneof=not_applicable pending partial paid refunded"`
	Page         int     `form:"page" binding:"omitempty,min=1"`
	Limit        int     `form:"limit" binding:"omitempty,min=1,max=200"`
}

func (q *ListBookingsQuery) ToFilter() (queries.BookingFilter, error) {
	var f queries.BookingFilter
	var err error
	if f.HallID, err = parseOptionalUUID(q.HallID); err != nil {
		return queries.BookingFilter{}, err
	}
	if f.CustomerID, err = parseOptionalUUID(q.CustomerID); err != nil {
		return queries.BookingFilter{}, err
	}
	if f.OwnerID, err = parseOptionalUUID(q.OwnerID); err != nil {
		return queries.BookingFilter{}, err
	}
	if f.From, err = parseOptionalDate(q.From); err != nil {
		return queries.BookingFilter{}, err
	}
	if f.To, err = parseOptionalDate(q.To); err != nil {
		return queries.BookingFilter{}, err
	}
	f.Status = q.Status
	f.PaymentState = q.PaymentState
	f.PageRequest = queries.PageRequest{Page: q.Page, Limit: q.Limit}
	return f, nil
}
