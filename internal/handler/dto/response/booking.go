package response

import (
	"time"

	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID                    uuid.UUID  `json:"id"`
	HallID                uuid.UUID  `json:"hall_id"`
	HallName              string     `json:"hall_name"`
	OwnerID               uuid.UUID  `json:"owner_id"`
	CustomerID            uuid.UUID  `json:"customer_id"`
	CustomerEmail         string     `json:"customer_email"`
	SlotID                *uuid.UUID `json:"slot_id,omitempty"`
	Date                  string     `json:"date"`
	StartTime             string     `json:"start_time"`
	EndTime               string     `json:"end_time"`
	TotalHours            float64    `json:"total_hours"`
	TotalAmount           int64      `json:"total_amount"`
	PlatformFeeAmount     int64      `json:"platform_fee_amount"`
	OwnerCommissionAmount int64      `json:"owner_commission_amount"`
	Status                string     `json:"status"`
	PaymentState          string     `json:"payment_state"`
	SpecialRequirements   *string    `json:"special_requirements,omitempty"`
	CancellationReason    *string    `json:"cancellation_reason,omitempty"`
	CancelledAt           *time.Time `json:"cancelled_at,omitempty"`
	RefundAmount          *int64     `json:"refund_amount,omitempty"`
	RefundFraction        *float64   `json:"refund_fraction,omitempty"`
	ActualCheckIn         *time.Time `json:"actual_check_in,omitempty"`
	CompletedAt           *time.Time `json:"completed_at,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	var res BookingResponse
	_ = copier.Copy(&res, v)
	return &res
}

type CancellationResponse struct {
	BookingID      uuid.UUID `json:"booking_id"`
	RefundAmount   int64     `json:"refund_amount"`
	RefundFraction float64   `json:"refund_fraction"`
}

func FromCancellation(r *commands.CancellationResult) *CancellationResponse {
	return &CancellationResponse{
		BookingID:      r.BookingID,
		RefundAmount:   r.RefundAmount,
		RefundFraction: r.RefundFraction,
	}
}

// CompletionResponse reports RevenueDeferred when the ledger entry will be
// written by the retry worker.
type CompletionResponse struct {
	BookingID       uuid.UUID              `json:"booking_id"`
	Revenue         *RevenueRecordResponse `json:"revenue,omitempty"`
	RevenueDeferred bool                   `json:"revenue_deferred"`
}

func FromCompletion(r *commands.CompletionResult) *CompletionResponse {
	res := &CompletionResponse{BookingID: r.BookingID, RevenueDeferred: r.Revenue == nil}
	if r.Revenue != nil {
		res.Revenue = FromRevenueRecord(r.Revenue)
	}
	return res
}

type FeedbackResponse struct {
	ID        uuid.UUID `json:"id"`
	BookingID uuid.UUID `json:"booking_id"`
}
