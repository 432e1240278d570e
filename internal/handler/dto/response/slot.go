package response

import (
	"encoding/json"
	"time"

	"venue-booking/internal/domain/slot"
	"venue-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SlotResponse struct {
	ID                    uuid.UUID       `json:"id"`
	HallID                uuid.UUID       `json:"hall_id"`
	Date                  string          `json:"date"`
	StartTime             string          `json:"start_time"`
	EndTime               string          `json:"end_time"`
	DurationHours         float64         `json:"duration_hours"`
	LifecycleState        string          `json:"lifecycle_state"`
	IsAvailable           bool            `json:"is_available"`
	CustomerID            *uuid.UUID      `json:"customer_id,omitempty"`
	BookingID             *uuid.UUID      `json:"booking_id,omitempty"`
	PaymentState          string          `json:"payment_state"`
	TotalAmount           int64           `json:"total_amount"`
	PlatformFeeAmount     int64           `json:"platform_fee_amount"`
	OwnerCommissionAmount int64           `json:"owner_commission_amount"`
	RecurringPattern      json.RawMessage `json:"recurring_pattern,omitempty"`
	CreatedAt             time.Time       `json:"created_at"`
}

func FromSlotView(v *queries.SlotView) *SlotResponse {
	var res SlotResponse
	_ = copier.Copy(&res, v)
	return &res
}

// FromSlot renders a freshly written slot.
func FromSlot(s *slot.Slot) *SlotResponse {
	iv := s.Interval()
	res := &SlotResponse{
		ID:               s.ID(),
		HallID:           s.HallID(),
		Date:             iv.Date().Format(time.DateOnly),
		StartTime:        iv.Start().String(),
		EndTime:          iv.End().String(),
		DurationHours:    iv.Hours(),
		LifecycleState:   s.Lifecycle().String(),
		IsAvailable:      s.IsAvailability(),
		PaymentState:     slot.PaymentNotApplicable.String(),
		RecurringPattern: s.RecurringPattern(),
		CreatedAt:        s.CreatedAt(),
	}
	if booked, ok := s.Booked(); ok {
		customerID, bookingID := booked.CustomerID, booked.BookingID
		res.CustomerID = &customerID
		res.BookingID = &bookingID
		res.PaymentState = booked.Payment.String()
		res.TotalAmount = booked.Amounts.Total
		res.PlatformFeeAmount = booked.Amounts.PlatformFee
		res.OwnerCommissionAmount = booked.Amounts.OwnerCommission
	}
	return res
}

func FromSlots(slots []*slot.Slot) []*SlotResponse {
	res := make([]*SlotResponse, len(slots))
	for i, s := range slots {
		res[i] = FromSlot(s)
	}
	return res
}
