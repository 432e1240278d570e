package hall

import (
	"strings"
	"time"

	"venue-booking/internal/domain/slot"
	"venue-booking/internal/domain/user"
	"venue-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyHallName    = errs.Sentinel("hall name cannot be empty", errs.ErrValidation)
	ErrHallNameTooLong  = errs.Sentinel("hall name is too long (max 255 characters)", errs.ErrValidation)
	ErrEmptyLocation    = errs.Sentinel("hall location cannot be empty", errs.ErrValidation)
	ErrInvalidCapacity  = errs.Sentinel("hall capacity must be positive", errs.ErrValidation)
	ErrInvalidPrice     = errs.Sentinel("price per hour must be between 1 and 1000000000000", errs.ErrValidation)
	ErrHallNotFound     = errs.Sentinel("hall not found", errs.ErrNotFound)
	ErrHallNotApproved  = errs.Sentinel("hall is not approved for booking", errs.ErrPolicyViolation)
	ErrNotHallManager   = errs.Sentinel("actor does not manage this hall", errs.ErrForbidden)
	ErrRejectionReason  = errs.Sentinel("rejection reason is required", errs.ErrValidation)
	ErrAlreadyModerated = errs.Sentinel("hall already has this approval status", errs.ErrConflict)
)

const MaxHallNameLength = 255

type Hall struct {
	id              uuid.UUID
	ownerID         uuid.UUID
	name            string
	description     string
	location        string
	capacity        int
	pricePerHour    int64
	approval        ApprovalStatus
	rejectionReason *string
	createdAt       time.Time
	updatedAt       time.Time
}

// Details groups the owner-editable attributes.
type Details struct {
	Name         string
	Description  string
	Location     string
	Capacity     int
	PricePerHour int64
}

func (d Details) validate() (Details, error) {
	d.Name = strings.TrimSpace(d.Name)
	d.Location = strings.TrimSpace(d.Location)
	d.Description = strings.TrimSpace(d.Description)
	switch {
	case d.Name == "":
		return d, ErrEmptyHallName
	case len(d.Name) > MaxHallNameLength:
		return d, ErrHallNameTooLong
	case d.Location == "":
		return d, ErrEmptyLocation
	case d.Capacity <= 0:
		return d, ErrInvalidCapacity
	case d.PricePerHour <= 0 || d.PricePerHour > slot.MaxPricePerHour:
		return d, ErrInvalidPrice
	}
	return d, nil
}

// NewHall lists a venue. New listings wait for admin approval.
func NewHall(ownerID uuid.UUID, details Details, now time.Time) (*Hall, error) {
	d, err := details.validate()
	if err != nil {
		return nil, err
	}
	return &Hall{
		id:           uuid.New(),
		ownerID:      ownerID,
		name:         d.Name,
		description:  d.Description,
		location:     d.Location,
		capacity:     d.Capacity,
		pricePerHour: d.PricePerHour,
		approval:     ApprovalPending,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructHall(id, ownerID uuid.UUID, details Details, approval ApprovalStatus, rejectionReason *string, createdAt, updatedAt time.Time) *Hall {
	return &Hall{
		id:              id,
		ownerID:         ownerID,
		name:            details.Name,
		description:     details.Description,
		location:        details.Location,
		capacity:        details.Capacity,
		pricePerHour:    details.PricePerHour,
		approval:        approval,
		rejectionReason: rejectionReason,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Update replaces the editable attributes. A price change sends the listing
// back to moderation.
func (h *Hall) Update(details Details, now time.Time) error {
	d, err := details.validate()
	if err != nil {
		return err
	}
	if d.PricePerHour != h.pricePerHour {
		h.approval = ApprovalPending
		h.rejectionReason = nil
	}
	h.name = d.Name
	h.description = d.Description
	h.location = d.Location
	h.capacity = d.Capacity
	h.pricePerHour = d.PricePerHour
	h.updatedAt = now
	return nil
}

func (h *Hall) Approve(now time.Time) error {
	if h.approval == ApprovalApproved {
		return ErrAlreadyModerated
	}
	h.approval = ApprovalApproved
	h.rejectionReason = nil
	h.updatedAt = now
	return nil
}

func (h *Hall) Reject(reason string, now time.Time) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrRejectionReason
	}
	if h.approval == ApprovalRejected {
		return ErrAlreadyModerated
	}
	h.approval = ApprovalRejected
	h.rejectionReason = &reason
	h.updatedAt = now
	return nil
}

func (h *Hall) EnsureBookable() error {
	if h.approval != ApprovalApproved {
		return ErrHallNotApproved
	}
	return nil
}

// EnsureManagedBy allows the owning account and admins.
func (h *Hall) EnsureManagedBy(actor user.Actor) error {
	return EnsureManagedBy(h.ownerID, actor)
}

func EnsureManagedBy(ownerID uuid.UUID, actor user.Actor) error {
	if actor.IsAdmin() || actor.ID == ownerID {
		return nil
	}
	return ErrNotHallManager
}

func (h *Hall) ID() uuid.UUID            { return h.id }
func (h *Hall) OwnerID() uuid.UUID       { return h.ownerID }
func (h *Hall) Name() string             { return h.name }
func (h *Hall) Description() string      { return h.description }
func (h *Hall) Location() string         { return h.location }
func (h *Hall) Capacity() int            { return h.capacity }
func (h *Hall) PricePerHour() int64      { return h.pricePerHour }
func (h *Hall) Approval() ApprovalStatus { return h.approval }
func (h *Hall) RejectionReason() *string { return h.rejectionReason }
func (h *Hall) IsApproved() bool         { return h.approval == ApprovalApproved }
func (h *Hall) CreatedAt() time.Time     { return h.createdAt }
func (h *Hall) UpdatedAt() time.Time     { return h.updatedAt }
