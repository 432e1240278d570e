package queries

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	FullName  string     `json:"full_name"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

type HallView struct {
	ID              uuid.UUID `json:"id"`
	OwnerID         uuid.UUID `json:"owner_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Location        string    `json:"location"`
	Capacity        int32     `json:"capacity"`
	PricePerHour    int64     `json:"price_per_hour"`
	ApprovalStatus  string    `json:"approval_status"`
	RejectionReason *string   `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type SlotView struct {
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

type BookingView struct {
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

type RevenueRecordView struct {
	ID                    uuid.UUID `json:"id"`
	BookingID             uuid.UUID `json:"booking_id"`
	HallID                uuid.UUID `json:"hall_id"`
	HallName              string    `json:"hall_name"`
	OwnerID               uuid.UUID `json:"owner_id"`
	CustomerID            uuid.UUID `json:"customer_id"`
	CustomerEmail         string    `json:"customer_email"`
	Date                  string    `json:"date"`
	StartTime             string    `json:"start_time"`
	EndTime               string    `json:"end_time"`
	TotalAmount           int64     `json:"total_amount"`
	PlatformFeeAmount     int64     `json:"platform_fee_amount"`
	OwnerCommissionAmount int64     `json:"owner_commission_amount"`
	CompletedAt           time.Time `json:"completed_at"`
	TransactionRef        string    `json:"transaction_ref"`
	Status                string    `json:"status"`
	CreatedAt             time.Time `json:"created_at"`
}

// RevenueTotals sums recorded entries. Refunded entries are only counted.
type RevenueTotals struct {
	RecordCount           int64 `json:"record_count"`
	RefundedCount         int64 `json:"refunded_count"`
	TotalAmount           int64 `json:"total_amount"`
	PlatformFeeAmount     int64 `json:"platform_fee_amount"`
	OwnerCommissionAmount int64 `json:"owner_commission_amount"`
}

type RevenueSummary struct {
	Period string    `json:"period"`
	From   time.Time `json:"from"`
	To     time.Time `json:"to"`
	RevenueTotals
}

type HallRatingStatsView struct {
	HallID        uuid.UUID `json:"hall_id"`
	FeedbackCount int32     `json:"feedback_count"`
	AverageRating float64   `json:"average_rating"`
	Rating1Count  int32     `json:"rating_1_count"`
	Rating2Count  int32     `json:"rating_2_count"`
	Rating3Count  int32     `json:"rating_3_count"`
	Rating4Count  int32     `json:"rating_4_count"`
	Rating5Count  int32     `json:"rating_5_count"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Page is one offset page of a filtered listing.
type Page[T any] struct {
	Items []T   `json:"items"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

type PageRequest struct {
	Page  int
	Limit int
}

// Normalize clamps the request to a valid first-based page.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	p.Limit = ValidateLimit(p.Limit)
	return p
}

func (p PageRequest) Offset() uint64 {
	return uint64((p.Page - 1) * p.Limit) // #nosec G115 -- normalized values are positive
}

type HallFilter struct {
	OwnerID        *uuid.UUID
	ApprovalStatus *string
	Location       *string
	MinCapacity    *int
	Visibility     HallVisibility
	PageRequest
}

// HallVisibility restricts non-approved halls. Unless AllStatuses is set only
// approved halls and those owned by OwnerID are visible.
type HallVisibility struct {
	AllStatuses bool
	OwnerID     *uuid.UUID
}

type SlotFilter struct {
	From          *time.Time
	To            *time.Time
	State         *string
	AvailableOnly bool
	BookedOnly    bool
	PageRequest
}

type BookingFilter struct {
	HallID       *uuid.UUID
	CustomerID   *uuid.UUID
	OwnerID      *uuid.UUID
	From         *time.Time
	To           *time.Time
	Status       *string
	PaymentState *string
	// VisibleTo keeps bookings the user made or that were made at their halls.
	VisibleTo    *uuid.UUID
	PageRequest
}

type RevenueFilter struct {
	OwnerID *uuid.UUID
	HallID  *uuid.UUID
	From    *time.Time
	To      *time.Time
	Status  *string
	Cursor  *Cursor
	Limit   int
}
