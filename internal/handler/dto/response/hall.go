package response

import (
	"time"

	"venue-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type HallResponse struct {
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

func FromHallView(v *queries.HallView) *HallResponse {
	var res HallResponse
	_ = copier.Copy(&res, v)
	return &res
}

type HallRatingStatsResponse struct {
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

func FromHallRatingStats(v *queries.HallRatingStatsView) *HallRatingStatsResponse {
	var res HallRatingStatsResponse
	_ = copier.Copy(&res, v)
	return &res
}
