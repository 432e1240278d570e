//go:build unit || e2e

package builder

import (
	"time"

	"venue-booking/internal/domain/hall"
	reqdto "venue-booking/internal/handler/dto/request"
	"venue-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type HallBuilder struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	Name           string
	Description    string
	Location       string
	Capacity       int
	PricePerHour   int64
	ApprovalStatus hall.ApprovalStatus
	CreatedAt      time.Time
}

func NewHallBuilder() *HallBuilder {
	return &HallBuilder{
		ID:             uuid.New(),
		OwnerID:        uuid.New(),
		Name:           "Main Hall",
		Description:    "Ground floor hall with a stage",
		Location:       "Berlin",
		Capacity:       120,
		PricePerHour:   5000,
		ApprovalStatus: hall.ApprovalApproved,
		CreatedAt:      time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC),
	}
}

func (h *HallBuilder) With(mutate func(*HallBuilder)) *HallBuilder {
	mutate(h)
	return h
}

func (h *HallBuilder) details() hall.Details {
	return hall.Details{
		Name:         h.Name,
		Description:  h.Description,
		Location:     h.Location,
		Capacity:     h.Capacity,
		PricePerHour: h.PricePerHour,
	}
}

func (h *HallBuilder) BuildDomain() *hall.Hall {
	var reason *string
	if h.ApprovalStatus == hall.ApprovalRejected {
		r := "incomplete listing"
		reason = &r
	}
	return hall.ReconstructHall(h.ID, h.OwnerID, h.details(), h.ApprovalStatus, reason, h.CreatedAt, h.CreatedAt)
}

func (h *HallBuilder) BuildCreateRequestDTO() reqdto.CreateHallRequest {
	return reqdto.CreateHallRequest{
		Name:         h.Name,
		Description:  h.Description,
		Location:     h.Location,
		Capacity:     h.Capacity,
		PricePerHour: h.PricePerHour,
	}
}

func (h *HallBuilder) BuildView() *queries.HallView {
	return &queries.HallView{
		ID:             h.ID,
		OwnerID:        h.OwnerID,
		Name:           h.Name,
		Description:    h.Description,
		Location:       h.Location,
		Capacity:       int32(h.Capacity), // #nosec G115 -- test data
		PricePerHour:   h.PricePerHour,
		ApprovalStatus: h.ApprovalStatus.String(),
		CreatedAt:      h.CreatedAt,
		UpdatedAt:      h.CreatedAt,
	}
}

func (h *HallBuilder) WithOwner(ownerID uuid.UUID) *HallBuilder {
	h.OwnerID = ownerID
	return h
}

func (h *HallBuilder) WithApproval(status hall.ApprovalStatus) *HallBuilder {
	h.ApprovalStatus = status
	return h
}
