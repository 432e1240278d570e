package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EventPublisher relays outbox events to subscribers outside the service.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, payload []byte) error
}

const (
	TopicBookingCreated   = "booking.created"
	TopicBookingConfirmed = "booking.confirmed"
	TopicBookingCancelled = "booking.cancelled"
	TopicBookingCompleted = "booking.completed"
	TopicBookingNoShow    = "booking.no_show"
	TopicBookingDeleted   = "booking.deleted"
	TopicRevenueRecorded  = "revenue.recorded"
	TopicRevenueRefunded  = "revenue.refunded"
)

type BookingEvent struct {
	BookingID  uuid.UUID `json:"booking_id"`
	HallID     uuid.UUID `json:"hall_id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Status     string    `json:"status"`
	Date       string    `json:"date"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	Total      int64     `json:"total_amount"`
	Refund     *int64    `json:"refund_amount,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type RevenueEvent struct {
	RecordID       uuid.UUID `json:"record_id"`
	BookingID      uuid.UUID `json:"booking_id"`
	HallID         uuid.UUID `json:"hall_id"`
	TransactionRef string    `json:"transaction_ref"`
	Status         string    `json:"status"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// RevenuePostingPayload is the body of a revenue_posting outbox job.
type RevenuePostingPayload struct {
	BookingID uuid.UUID `json:"booking_id"`
}
