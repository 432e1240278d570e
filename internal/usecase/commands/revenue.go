package commands

import (
	"context"
	"time"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/revenue"
	"venue-booking/internal/domain/user"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrRefundAdminOnly = errs.Sentinel("only administrators can refund revenue", errs.ErrForbidden)

type RevenueCommands interface {
	// Post records the ledger entry of a completed booking. Posting twice
	// returns the record written the first time.
	Post(ctx context.Context, bookingID uuid.UUID) (*revenue.Record, error)
	Refund(ctx context.Context, bookingID uuid.UUID, actor user.Actor) (*revenue.Record, error)
}

type revenueCommandsImpl struct {
	uow         shared.UnitOfWork
	clock       clock.Clock
	maxAttempts int32
}

func NewRevenueCommands(uow shared.UnitOfWork, clk clock.Clock, settings Settings) RevenueCommands {
	return &revenueCommandsImpl{
		uow:         uow,
		clock:       clk,
		maxAttempts: settings.OutboxMaxAttempts,
	}
}

func (c *revenueCommandsImpl) Post(ctx context.Context, bookingID uuid.UUID) (*revenue.Record, error) {
	var rec *revenue.Record
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		src, err := tx.Revenue().Source(ctx, tx.DB(), bookingID)
		if err != nil {
			return notFoundAs(err, booking.ErrBookingNotFound)
		}
		if src.BookingStatus != booking.StatusCompleted.String() {
			return revenue.ErrBookingIncomplete
		}

		now := c.clock.Now()
		candidate := revenue.NewRecord(src.Snapshot, now)
		inserted, err := tx.Revenue().Insert(ctx, tx.DB(), candidate)
		if err != nil {
			return err
		}
		if !inserted {
			rec, err = tx.Revenue().FindByBookingID(ctx, tx.DB(), bookingID)
			return err
		}

		rec = candidate
		return enqueueEvent(ctx, tx, shared.TopicRevenueRecorded, revenueEvent(rec, now), now, c.maxAttempts)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (c *revenueCommandsImpl) Refund(ctx context.Context, bookingID uuid.UUID, actor user.Actor) (*revenue.Record, error) {
	if !actor.IsAdmin() {
		return nil, ErrRefundAdminOnly
	}

	var rec *revenue.Record
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Revenue().FindByBookingIDForUpdate(ctx, tx.DB(), bookingID)
		if err != nil {
			return notFoundAs(err, revenue.ErrRecordNotFound)
		}

		now := c.clock.Now()
		if err := found.MarkRefunded(now); err != nil {
			return err
		}
		if err := tx.Revenue().UpdateStatus(ctx, tx.DB(), found); err != nil {
			return err
		}

		rec = found
		return enqueueEvent(ctx, tx, shared.TopicRevenueRefunded, revenueEvent(found, now), now, c.maxAttempts)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func revenueEvent(rec *revenue.Record, now time.Time) shared.RevenueEvent {
	snap := rec.Snapshot()
	return shared.RevenueEvent{
		RecordID:       rec.ID(),
		BookingID:      snap.BookingID,
		HallID:         snap.HallID,
		TransactionRef: rec.TransactionRef(),
		Status:         rec.Status().String(),
		OccurredAt:     now.UTC(),
	}
}
