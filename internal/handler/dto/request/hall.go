package request

import (
	"venue-booking/internal/domain/hall"
	"venue-booking/internal/pkg/patch"
	"venue-booking/internal/usecase/queries"
)

type CreateHallRequest struct {
	Name         string `json:"name" binding:"required,max=255"`
	Description  string `json:"description" binding:"max=5000"`
	Location     string `json:"location" binding:"required"`
	Capacity     int    `json:"capacity" binding:"required,min=1"`
	PricePerHour int64  `json:"price_per_hour" binding:"required,min=1,max=1000000000000"`
}

func (r *CreateHallRequest) ToDomain() hall.Details {
	return hall.Details{
		Name:         r.Name,
		Description:  r.Description,
		Location:     r.Location,
		Capacity:     r.Capacity,
		PricePerHour: r.PricePerHour,
	}
}

// UpdateHallRequest is a partial update; omitted fields keep their value.
type UpdateHallRequest struct {
	Name         *string `json:"name" binding:"omitempty,max=255"`
	Description  *string `json:"description" binding:"omitempty,max=5000"`
	Location     *string `json:"location"`
	Capacity     *int    `json:"capacity" binding:"omitempty,min=1"`
	PricePerHour *int64  `json:"price_per_hour" binding:"omitempty,min=1,max=1000000000000"`
}

func (r *UpdateHallRequest) ToDomain(existing *hall.Hall) hall.Details {
	return hall.Details{
		Name:         patch.Coalesce(r.Name, existing.Name()),
		Description:  patch.Coalesce(r.Description, existing.Description()),
		Location:     patch.Coalesce(r.Location, existing.Location()),
		Capacity:     patch.Coalesce(r.Capacity, existing.Capacity()),
		PricePerHour: patch.Coalesce(r.PricePerHour, existing.PricePerHour()),
	}
}

type RejectHallRequest struct {
	Reason string `json:"reason" binding:"required,max=1000"`
}

type ListHallsQuery struct {
	OwnerID        *string `form:"owner_id" binding:"omitempty,uuid"`
	ApprovalStatus *string `form:"approval_status" binding:"omitempty,oneof=pending approved rejected"`
	Location       *string `form:"location" binding:"omitempty,max=255"`
	MinCapacity    *int    `form:"min_capacity" binding:"omitempty,min=1"`
	Page           int     `form:"page" binding:"omitempty,min=1"`
	Limit          int     `form:"limit" binding:"omitempty,min=1,max=200"`
}

func (q *ListHallsQuery) ToFilter() (queries.HallFilter, error) {
	ownerID, err := parseOptionalUUID(q.OwnerID)
	if err != nil {
		return queries.HallFilter{}, err
	}
	return queries.HallFilter{
		OwnerID:        ownerID,
		ApprovalStatus: q.ApprovalStatus,
		Location:       q.Location,
		MinCapacity:    q.MinCapacity,
		PageRequest:    queries.PageRequest{Page: q.Page, Limit: q.Limit},
	}, nil
}
