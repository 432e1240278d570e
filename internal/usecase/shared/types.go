package shared

import (
	"encoding/json"
	"time"

	"venue-booking/internal/domain/revenue"

	"github.com/google/uuid"
)

// Minimal snapshot for command read operations
type HallSnapshot struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Name         string
	PricePerHour int64
	Approval     string
}

type BookingSnapshot struct {
	ID         uuid.UUID
	HallID     uuid.UUID
	CustomerID uuid.UUID
	Status     string
}

type IdempotencyRecord struct {
	Key             uuid.UUID
	UserID          uuid.UUID
	Status          string
	RequestHash     string
	ResultBookingID *uuid.UUID
	ExpiresAt       time.Time
}

const (
	IdempotencyStatusProcessing = "processing"
	IdempotencyStatusCompleted  = "completed"
)

// RevenueSource is the booking data a ledger entry is built from.
type RevenueSource struct {
	Snapshot      revenue.Snapshot
	BookingStatus string
}

const (
	OutboxKindRevenuePosting = "revenue_posting"
	OutboxKindEvent          = "event"

	OutboxStatusQueued     = "queued"
	OutboxStatusProcessing = "processing"
	OutboxStatusDone       = "done"
	OutboxStatusFailed     = "failed"
)

type OutboxJob struct {
	Kind        string
	Topic       string
	Payload     json.RawMessage
	MaxAttempts int32
	RunAt       time.Time
}

type ClaimedJob struct {
	ID          uuid.UUID
	Kind        string
	Topic       string
	Payload     json.RawMessage
	Attempts    int32
	MaxAttempts int32
}
