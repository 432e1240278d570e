package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/hall"
	"venue-booking/internal/domain/revenue"
	"venue-booking/internal/domain/slot"
	"venue-booking/internal/domain/user"
	reqdto "venue-booking/internal/handler/dto/request"
	"venue-booking/internal/infra"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const createBookingEndpoint = "POST /api/bookings"

var (
	ErrIdempotencyRecordBroken = errs.New("completed idempotency key has no booking")
	ErrIdempotencyStatus       = errs.New("invalid idempotency key status")
)

type CreateBookingResult struct {
	BookingID  uuid.UUID
	IsReplayed bool
}

type CancellationResult struct {
	BookingID      uuid.UUID
	RefundAmount   int64
	RefundFraction float64
}

// CompletionResult carries the ledger entry, or nil when posting was
// deferred to the outbox worker.
type CompletionResult struct {
	BookingID uuid.UUID
	Revenue   *revenue.Record
}

type BookingCommands interface {
	Create(ctx context.Context, req reqdto.CreateBookingRequest, actor user.Actor, idempotencyKey *uuid.UUID) (*CreateBookingResult, error)
	Cancel(ctx context.Context, bookingID uuid.UUID, reason string, actor user.Actor) (*CancellationResult, error)
	CancelBySlot(ctx context.Context, slotID uuid.UUID, reason string, actor user.Actor) (*CancellationResult, error)
	Delete(ctx context.Context, bookingID uuid.UUID, actor user.Actor) error
	Confirm(ctx context.Context, bookingID uuid.UUID, actor user.Actor) error
	CheckIn(ctx context.Context, bookingID uuid.UUID, actor user.Actor) (*CompletionResult, error)
	Complete(ctx context.Context, bookingID uuid.UUID, actor user.Actor) (*CompletionResult, error)
	MarkNoShow(ctx context.Context, bookingID uuid.UUID, actor user.Actor) error
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	revenue  RevenueCommands
	clock    clock.Clock
	recorder Recorder
	settings Settings
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	revenueCommands RevenueCommands,
	clk clock.Clock,
	recorder Recorder,
	settings Settings,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:      uow,
		revenue:  revenueCommands,
		clock:    clk,
		recorder: recorder,
		settings: settings,
	}
}

func (c *bookingCommandsImpl) Create(
	ctx context.Context,
	req reqdto.CreateBookingRequest,
	actor user.Actor,
	idempotencyKey *uuid.UUID,
) (*CreateBookingResult, error) {
	result, err := c.create(ctx, req, actor, idempotencyKey)
	c.recorder.BookingOperation("create", err)
	return result, err
}

func (c *bookingCommandsImpl) create(
	ctx context.Context,
	req reqdto.CreateBookingRequest,
	actor user.Actor,
	idempotencyKey *uuid.UUID,
) (*CreateBookingResult, error) {
	iv, err := req.ToDomain()
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	if c.settings.Policy.HasStarted(iv, now) {
		return nil, booking.ErrStartInPast
	}
	requestHash := calculateRequestHash(req)

	var result *CreateBookingResult
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if idempotencyKey != nil {
			replayed, err := c.claimIdempotencyKey(ctx, tx, *idempotencyKey, actor.ID, requestHash, now)
			if err != nil {
				return err
			}
			if replayed != nil {
				result = &CreateBookingResult{BookingID: *replayed, IsReplayed: true}
				return nil
			}
		}

		b, err := c.reserve(ctx, tx, req.HallID, iv, req.SpecialRequirements, actor, now)
		if err != nil {
			return err
		}

		if idempotencyKey != nil {
			if err := tx.Idempotency().UpdateStatusCompleted(ctx, tx.DB(), *idempotencyKey, actor.ID, requestHash, b.ID()); err != nil {
				return err
			}
		}

		result = &CreateBookingResult{BookingID: b.ID()}
		return c.emit(ctx, tx, shared.TopicBookingCreated, b, now)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// reserve applies the sync rule: an open slot with the same interval is
// converted in place, otherwise a booked slot is inserted. Either write is
// guarded by the per-hall exclusion constraint.
func (c *bookingCommandsImpl) reserve(
	ctx context.Context,
	tx shared.Tx,
	hallID uuid.UUID,
	iv slot.Interval,
	specialRequirements string,
	actor user.Actor,
	now time.Time,
) (*booking.Booking, error) {
	h, err := tx.Reads().HallByID(ctx, hallID)
	if err != nil {
		return nil, notFoundAs(err, hall.ErrHallNotFound)
	}
	if h.Approval != hall.ApprovalApproved.String() {
		return nil, hall.ErrHallNotApproved
	}

	published, err := tx.Slots().FindAvailableForUpdate(ctx, tx.DB(), h.ID, iv)
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, err
	}

	amounts, err := c.settings.Policy.Price(iv, h.PricePerHour)
	if err != nil {
		return nil, err
	}
	bookingID := uuid.New()

	s := published
	if s == nil {
		s = slot.NewConfirmed(h.ID, iv, slot.Booked{
			CustomerID: actor.ID,
			BookingID:  bookingID,
			Amounts:    amounts,
			Payment:    slot.PaymentPending,
		}, now)
	}

	b, err := booking.NewBooking(bookingID, h.ID, actor.ID, s.ID(), iv, amounts, published != nil, specialRequirements, now)
	if err != nil {
		return nil, err
	}

	if published != nil {
		if err := s.Book(b.Booked(), now); err != nil {
			return nil, err
		}
		err = tx.Slots().Save(ctx, tx.DB(), s)
	} else {
		err = tx.Slots().Create(ctx, tx.DB(), s)
	}
	if err != nil {
		return nil, conflictAs(err, booking.ErrBookingConflict)
	}

	if err := tx.Bookings().Create(ctx, tx.DB(), b); err != nil {
		return nil, err
	}
	return b, nil
}

// claimIdempotencyKey returns the booking of a completed replay, or nil when
// this transaction owns the key. A processing row is only ever visible to
// the transaction that wrote it, since the key is completed before commit.
func (c *bookingCommandsImpl) claimIdempotencyKey(
	ctx context.Context,
	tx shared.Tx,
	key, userID uuid.UUID,
	requestHash string,
	now time.Time,
) (*uuid.UUID, error) {
	expiresAt := now.Add(c.settings.IdempotencyTTL)
	if err := tx.Idempotency().TryInsert(ctx, tx.DB(), key, userID, createBookingEndpoint, requestHash, expiresAt); err != nil {
		return nil, err
	}

	existing, err := tx.Reads().IdempotencyByKey(ctx, key, userID)
	if err != nil {
		return nil, err
	}
	if existing.RequestHash != requestHash {
		return nil, booking.ErrIdempotencyKeyMismatch
	}

	switch existing.Status {
	case shared.IdempotencyStatusCompleted:
		if existing.ResultBookingID == nil {
			return nil, ErrIdempotencyRecordBroken
		}
		return existing.ResultBookingID, nil
	case shared.IdempotencyStatusProcessing:
		return nil, nil
	default:
		return nil, ErrIdempotencyStatus
	}
}

func (c *bookingCommandsImpl) Cancel(ctx context.Context, bookingID uuid.UUID, reason string, actor user.Actor) (*CancellationResult, error) {
	var result *CancellationResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByIDForUpdate(ctx, tx.DB(), bookingID)
		if err != nil {
			return notFoundAs(err, booking.ErrBookingNotFound)
		}
		result, err = c.cancelLocked(ctx, tx, b, reason, actor)
		return err
	})
	c.recorder.BookingOperation("cancel", err)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CancelBySlot cancels the booking a slot shadows. The booking row is
// locked before the slot, the same order Cancel uses.
func (c *bookingCommandsImpl) CancelBySlot(ctx context.Context, slotID uuid.UUID, reason string, actor user.Actor) (*CancellationResult, error) {
	var result *CancellationResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindBySlotIDForUpdate(ctx, tx.DB(), slotID)
		if err != nil {
			if !infra.IsKind(err, infra.KindNotFound) {
				return err
			}
			if _, findErr := tx.Slots().FindByIDForUpdate(ctx, tx.DB(), slotID); findErr != nil {
				return notFoundAs(findErr, slot.ErrSlotNotFound)
			}
			return slot.ErrSlotNotLinked
		}
		result, err = c.cancelLocked(ctx, tx, b, reason, actor)
		return err
	})
	c.recorder.BookingOperation("cancel", err)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *bookingCommandsImpl) cancelLocked(
	ctx context.Context,
	tx shared.Tx,
	b *booking.Booking,
	reason string,
	actor user.Actor,
) (*CancellationResult, error) {
	h, err := tx.Reads().HallByID(ctx, b.HallID())
	if err != nil {
		return nil, notFoundAs(err, hall.ErrHallNotFound)
	}

	now := c.clock.Now()
	plan, err := booking.PlanCancellation(b, h.OwnerID, actor, c.settings.Policy, now)
	if err != nil {
		return nil, err
	}
	if err := b.Cancel(reason, plan.Fraction, plan.Refund, now); err != nil {
		return nil, err
	}

	if slotID := b.SlotID(); slotID != nil {
		s, err := tx.Slots().FindByIDForUpdate(ctx, tx.DB(), *slotID)
		if err != nil {
			return nil, notFoundAs(err, slot.ErrSlotNotFound)
		}
		if plan.RestoreSlot {
			err = s.Release(now)
			b.DetachSlot()
		} else {
			err = s.Cancel(derefReason(b), plan.Refund, b.Payment(), now)
		}
		if err != nil {
			return nil, err
		}
		if err := tx.Slots().Save(ctx, tx.DB(), s); err != nil {
			return nil, err
		}
	}

	if err := tx.Bookings().Save(ctx, tx.DB(), b); err != nil {
		return nil, err
	}
	if err := c.emit(ctx, tx, shared.TopicBookingCancelled, b, now); err != nil {
		return nil, err
	}

	return &CancellationResult{
		BookingID:      b.ID(),
		RefundAmount:   plan.Refund,
		RefundFraction: plan.Fraction,
	}, nil
}

// Delete removes a cancelled booking, or force-deletes an active one for the
// hall owner or an admin after cancelling it.
func (c *bookingCommandsImpl) Delete(ctx context.Context, bookingID uuid.UUID, actor user.Actor) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByIDForUpdate(ctx, tx.DB(), bookingID)
		if err != nil {
			return notFoundAs(err, booking.ErrBookingNotFound)
		}
		h, err := tx.Reads().HallByID(ctx, b.HallID())
		if err != nil {
			return notFoundAs(err, hall.ErrHallNotFound)
		}

		now := c.clock.Now()
		plan, err := booking.PlanDeletion(b, h.OwnerID, actor, c.settings.Policy, now)
		if err != nil {
			return err
		}
		if plan.CancelFirst {
			if err := b.Cancel("deleted by hall manager", plan.Fraction, plan.Refund, now); err != nil {
				return err
			}
		}

		if slotID := b.SlotID(); slotID != nil {
			if err := tx.Slots().Delete(ctx, tx.DB(), *slotID); err != nil && !infra.IsKind(err, infra.KindNotFound) {
				return err
			}
			b.DetachSlot()
		}
		if err := tx.Bookings().Delete(ctx, tx.DB(), b.ID()); err != nil {
			return notFoundAs(err, booking.ErrBookingNotFound)
		}
		return c.emit(ctx, tx, shared.TopicBookingDeleted, b, now)
	})
	c.recorder.BookingOperation("delete", err)
	return err
}

func (c *bookingCommandsImpl) Confirm(ctx context.Context, bookingID uuid.UUID, actor user.Actor) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := c.lockManaged(ctx, tx, bookingID, actor)
		if err != nil {
			return err
		}

		now := c.clock.Now()
		if err := b.Confirm(now); err != nil {
			return err
		}
		if err := tx.Bookings().Save(ctx, tx.DB(), b); err != nil {
			return err
		}
		return c.emit(ctx, tx, shared.TopicBookingConfirmed, b, now)
	})
	c.recorder.BookingOperation("confirm", err)
	return err
}

// CheckIn records arrival, which also completes the booking and posts revenue.
func (c *bookingCommandsImpl) CheckIn(ctx context.Context, bookingID uuid.UUID, actor user.Actor) (*CompletionResult, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := c.lockManaged(ctx, tx, bookingID, actor)
		if err != nil {
			return err
		}

		now := c.clock.Now()
		if err := b.CheckIn(now); err != nil {
			return err
		}
		if err := c.updateSlot(ctx, tx, b, func(s *slot.Slot) error { return s.Complete(b.ActualCheckIn(), now) }); err != nil {
			return err
		}
		if err := tx.Bookings().Save(ctx, tx.DB(), b); err != nil {
			return err
		}
		return c.emit(ctx, tx, shared.TopicBookingCompleted, b, now)
	})
	c.recorder.BookingOperation("check_in", err)
	if err != nil {
		return nil, err
	}

	return &CompletionResult{BookingID: bookingID, Revenue: c.postRevenue(ctx, bookingID)}, nil
}

// Complete commits the status change first; revenue posting follows in its
// own transaction and never fails the completion.
func (c *bookingCommandsImpl) Complete(ctx context.Context, bookingID uuid.UUID, actor user.Actor) (*CompletionResult, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := c.lockManaged(ctx, tx, bookingID, actor)
		if err != nil {
			return err
		}

		now := c.clock.Now()
		alreadyCompleted, err := b.Complete(now)
		if err != nil || alreadyCompleted {
			return err
		}
		if err := c.updateSlot(ctx, tx, b, func(s *slot.Slot) error { return s.Complete(nil, now) }); err != nil {
			return err
		}
		if err := tx.Bookings().Save(ctx, tx.DB(), b); err != nil {
			return err
		}
		return c.emit(ctx, tx, shared.TopicBookingCompleted, b, now)
	})
	c.recorder.BookingOperation("complete", err)
	if err != nil {
		return nil, err
	}

	return &CompletionResult{BookingID: bookingID, Revenue: c.postRevenue(ctx, bookingID)}, nil
}

func (c *bookingCommandsImpl) MarkNoShow(ctx context.Context, bookingID uuid.UUID, actor user.Actor) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := c.lockManaged(ctx, tx, bookingID, actor)
		if err != nil {
			return err
		}

		now := c.clock.Now()
		if err := b.MarkNoShow(c.settings.Policy, now); err != nil {
			return err
		}
		if err := c.updateSlot(ctx, tx, b, func(s *slot.Slot) error { return s.MarkNoShow(now) }); err != nil {
			return err
		}
		if err := tx.Bookings().Save(ctx, tx.DB(), b); err != nil {
			return err
		}
		return c.emit(ctx, tx, shared.TopicBookingNoShow, b, now)
	})
	c.recorder.BookingOperation("no_show", err)
	return err
}

// lockManaged locks the booking and checks the actor owns its hall or is an admin.
func (c *bookingCommandsImpl) lockManaged(ctx context.Context, tx shared.Tx, bookingID uuid.UUID, actor user.Actor) (*booking.Booking, error) {
	b, err := tx.Bookings().FindByIDForUpdate(ctx, tx.DB(), bookingID)
	if err != nil {
		return nil, notFoundAs(err, booking.ErrBookingNotFound)
	}
	h, err := tx.Reads().HallByID(ctx, b.HallID())
	if err != nil {
		return nil, notFoundAs(err, hall.ErrHallNotFound)
	}
	if err := booking.EnsureManagedBy(b, h.OwnerID, actor); err != nil {
		return nil, err
	}
	return b, nil
}

// updateSlot mirrors a booking transition on its shadow slot.
func (c *bookingCommandsImpl) updateSlot(ctx context.Context, tx shared.Tx, b *booking.Booking, apply func(s *slot.Slot) error) error {
	slotID := b.SlotID()
	if slotID == nil {
		return nil
	}
	s, err := tx.Slots().FindByIDForUpdate(ctx, tx.DB(), *slotID)
	if err != nil {
		return notFoundAs(err, slot.ErrSlotNotFound)
	}
	if err := apply(s); err != nil {
		return err
	}
	return tx.Slots().Save(ctx, tx.DB(), s)
}

// postRevenue posts best-effort. A failure is counted and handed to the
// outbox worker for retry.
func (c *bookingCommandsImpl) postRevenue(ctx context.Context, bookingID uuid.UUID) *revenue.Record {
	rec, err := c.revenue.Post(ctx, bookingID)
	if err == nil {
		return rec
	}

	c.recorder.RevenuePostingFailed()
	slog.Error("revenue posting failed, queued for retry",
		"booking_id", bookingID,
		"error", err.Error(),
	)

	payload, err := json.Marshal(shared.RevenuePostingPayload{BookingID: bookingID})
	if err != nil {
		slog.Error("failed to encode revenue posting job", "booking_id", bookingID, "error", err.Error())
		return nil
	}
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Outbox().Enqueue(ctx, tx.DB(), shared.OutboxJob{
			Kind:        shared.OutboxKindRevenuePosting,
			Payload:     payload,
			MaxAttempts: c.settings.OutboxMaxAttempts,
			RunAt:       c.clock.Now(),
		})
	})
	if err != nil {
		slog.Error("failed to queue revenue posting", "booking_id", bookingID, "error", err.Error())
	}
	return nil
}

func (c *bookingCommandsImpl) emit(ctx context.Context, tx shared.Tx, topic string, b *booking.Booking, now time.Time) error {
	iv := b.Interval()
	event := shared.BookingEvent{
		BookingID:  b.ID(),
		HallID:     b.HallID(),
		CustomerID: b.CustomerID(),
		Status:     b.Status().String(),
		Date:       iv.Date().Format(time.DateOnly),
		StartTime:  iv.Start().String(),
		EndTime:    iv.End().String(),
		Total:      b.Amounts().Total,
		Refund:     b.RefundAmount(),
		OccurredAt: now.UTC(),
	}
	return enqueueEvent(ctx, tx, topic, event, now, c.settings.OutboxMaxAttempts)
}

func derefReason(b *booking.Booking) string {
	if r := b.CancellationReason(); r != nil {
		return *r
	}
	return ""
}

func calculateRequestHash(req reqdto.CreateBookingRequest) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
