package commands

import (
	"context"

	"venue-booking/internal/domain/hall"
	"venue-booking/internal/domain/slot"
	"venue-booking/internal/domain/user"
	reqdto "venue-booking/internal/handler/dto/request"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type SlotCommands interface {
	// Create publishes one open slot per occurrence of the optional recurrence.
	Create(ctx context.Context, hallID uuid.UUID, req reqdto.CreateSlotsRequest, actor user.Actor) ([]*slot.Slot, error)
	// Delete withdraws an open slot.
	Delete(ctx context.Context, slotID uuid.UUID, actor user.Actor) error
}

type slotCommandsImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	settings Settings
}

func NewSlotCommands(uow shared.UnitOfWork, clk clock.Clock, settings Settings) SlotCommands {
	return &slotCommandsImpl{
		uow:      uow,
		clock:    clk,
		settings: settings,
	}
}

func (c *slotCommandsImpl) Create(ctx context.Context, hallID uuid.UUID, req reqdto.CreateSlotsRequest, actor user.Actor) ([]*slot.Slot, error) {
	iv, rec, err := req.ToDomain()
	if err != nil {
		return nil, err
	}
	dates, pattern, err := slot.Occurrences(iv.Date(), rec, c.settings.Policy.MaxRecurrenceOccurrences)
	if err != nil {
		return nil, err
	}

	var created []*slot.Slot
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		h, err := tx.Reads().HallByID(ctx, hallID)
		if err != nil {
			return notFoundAs(err, hall.ErrHallNotFound)
		}
		if err := hall.EnsureManagedBy(h.OwnerID, actor); err != nil {
			return err
		}

		now := c.clock.Now()
		created = make([]*slot.Slot, 0, len(dates))
		for _, d := range dates {
			s := slot.NewAvailable(h.ID, slot.NewInterval(d, iv.Start(), iv.End()), pattern, now)
			if err := tx.Slots().Create(ctx, tx.DB(), s); err != nil {
				return err
			}
			created = append(created, s)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (c *slotCommandsImpl) Delete(ctx context.Context, slotID uuid.UUID, actor user.Actor) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Slots().FindByIDForUpdate(ctx, tx.DB(), slotID)
		if err != nil {
			return notFoundAs(err, slot.ErrSlotNotFound)
		}
		h, err := tx.Reads().HallByID(ctx, s.HallID())
		if err != nil {
			return notFoundAs(err, hall.ErrHallNotFound)
		}
		if err := hall.EnsureManagedBy(h.OwnerID, actor); err != nil {
			return err
		}
		if err := s.EnsureWithdrawable(); err != nil {
			return err
		}
		return notFoundAs(tx.Slots().Delete(ctx, tx.DB(), s.ID()), slot.ErrSlotNotFound)
	})
}
