package commands

import (
	"context"

	"venue-booking/internal/domain/hall"
	"venue-booking/internal/domain/user"
	reqdto "venue-booking/internal/handler/dto/request"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrModerationAdminOnly = errs.Sentinel("only administrators can moderate halls", errs.ErrForbidden)

type HallCommands interface {
	Create(ctx context.Context, req reqdto.CreateHallRequest, actor user.Actor) (*hall.Hall, error)
	Update(ctx context.Context, hallID uuid.UUID, req reqdto.UpdateHallRequest, actor user.Actor) (*hall.Hall, error)
	Approve(ctx context.Context, hallID uuid.UUID, actor user.Actor) (*hall.Hall, error)
	Reject(ctx context.Context, hallID uuid.UUID, req reqdto.RejectHallRequest, actor user.Actor) (*hall.Hall, error)
}

type hallCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewHallCommands(uow shared.UnitOfWork, clk clock.Clock) HallCommands {
	return &hallCommandsImpl{uow: uow, clock: clk}
}

func (c *hallCommandsImpl) Create(ctx context.Context, req reqdto.CreateHallRequest, actor user.Actor) (*hall.Hall, error) {
	h, err := hall.NewHall(actor.ID, req.ToDomain(), c.clock.Now())
	if err != nil {
		return nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Halls().Create(ctx, tx.DB(), h)
	})
	if err != nil {
		return nil, err
	}
	return h, nil
}

func (c *hallCommandsImpl) Update(ctx context.Context, hallID uuid.UUID, req reqdto.UpdateHallRequest, actor user.Actor) (*hall.Hall, error) {
	return c.modify(ctx, hallID, func(h *hall.Hall) error {
		if err := h.EnsureManagedBy(actor); err != nil {
			return err
		}
		return h.Update(req.ToDomain(h), c.clock.Now())
	})
}

func (c *hallCommandsImpl) Approve(ctx context.Context, hallID uuid.UUID, actor user.Actor) (*hall.Hall, error) {
	if !actor.IsAdmin() {
		return nil, ErrModerationAdminOnly
	}
	return c.modify(ctx, hallID, func(h *hall.Hall) error {
		return h.Approve(c.clock.Now())
	})
}

func (c *hallCommandsImpl) Reject(ctx context.Context, hallID uuid.UUID, req reqdto.RejectHallRequest, actor user.Actor) (*hall.Hall, error) {
	if !actor.IsAdmin() {
		return nil, ErrModerationAdminOnly
	}
	return c.modify(ctx, hallID, func(h *hall.Hall) error {
		return h.Reject(req.Reason, c.clock.Now())
	})
}

func (c *hallCommandsImpl) modify(ctx context.Context, hallID uuid.UUID, apply func(h *hall.Hall) error) (*hall.Hall, error) {
	var updated *hall.Hall
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		h, err := tx.Halls().FindByIDForUpdate(ctx, tx.DB(), hallID)
		if err != nil {
			return notFoundAs(err, hall.ErrHallNotFound)
		}
		if err := apply(h); err != nil {
			return err
		}
		if err := tx.Halls().Update(ctx, tx.DB(), h); err != nil {
			return notFoundAs(err, hall.ErrHallNotFound)
		}
		updated = h
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
