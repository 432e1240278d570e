package queries

import (
	"context"

	"venue-booking/internal/domain/slot"
	"venue-booking/internal/domain/user"
	"venue-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrConflictingSlotFilter = errs.Sentinel("available and booked filters are mutually exclusive", errs.ErrValidation)

type SlotReadStore interface {
	List(ctx context.Context, hallID uuid.UUID, f SlotFilter) (*Page[*SlotView], error)
}

type SlotQueries interface {
	ListByHall(ctx context.Context, hallID uuid.UUID, f SlotFilter, viewer *user.Actor) (*Page[*SlotView], error)
}

type slotQueriesImpl struct {
	halls HallReadStore
	slots SlotReadStore
}

func NewSlotQueries(halls HallReadStore, slots SlotReadStore) SlotQueries {
	return &slotQueriesImpl{halls: halls, slots: slots}
}

// ListByHall follows the hall's visibility. Booking details on a slot are
// shown only to the hall's managers and to the customer who holds it.
func (q *slotQueriesImpl) ListByHall(ctx context.Context, hallID uuid.UUID, f SlotFilter, viewer *user.Actor) (*Page[*SlotView], error) {
	if f.AvailableOnly && f.BookedOnly {
		return nil, ErrConflictingSlotFilter
	}
	h, err := findVisibleHall(ctx, q.halls, hallID, viewer)
	if err != nil {
		return nil, err
	}
	page, err := q.slots.List(ctx, hallID, f)
	if err != nil {
		return nil, err
	}
	if managesHall(h, viewer) {
		return page, nil
	}
	for _, v := range page.Items {
		if viewer != nil && v.CustomerID != nil && *v.CustomerID == viewer.ID {
			continue
		}
		redactBooking(v)
	}
	return page, nil
}

func redactBooking(v *SlotView) {
	if v.CustomerID == nil && v.BookingID == nil {
		return
	}
	v.CustomerID = nil
	v.BookingID = nil
	v.PaymentState = slot.PaymentNotApplicable.String()
	v.TotalAmount = 0
	v.PlatformFeeAmount = 0
	v.OwnerCommissionAmount = 0
}
