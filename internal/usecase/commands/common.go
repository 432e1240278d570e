package commands

import (
	"context"
	"encoding/json"
	"time"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/infra"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/shared"
)

// Recorder receives command outcome counters.
type Recorder interface {
	BookingOperation(operation string, err error)
	RevenuePostingFailed()
}

type nopRecorder struct{}

func (nopRecorder) BookingOperation(string, error) {}
func (nopRecorder) RevenuePostingFailed()          {}

// NopRecorder discards every observation.
func NopRecorder() Recorder { return nopRecorder{} }

// Settings carries the tunables of the write side.
type Settings struct {
	Policy            booking.Policy
	IdempotencyTTL    time.Duration
	OutboxMaxAttempts int32
}

func DefaultSettings() Settings {
	return Settings{
		Policy:            booking.DefaultPolicy(),
		IdempotencyTTL:    24 * time.Hour,
		OutboxMaxAttempts: 8,
	}
}

// notFoundAs replaces a repository miss with the domain sentinel.
func notFoundAs(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return sentinel
	}
	return err
}

// conflictAs replaces an exclusion or unique violation with the domain sentinel.
func conflictAs(err, sentinel error) error {
	if infra.IsKind(err, infra.KindConflict) || infra.IsKind(err, infra.KindDuplicateKey) {
		return sentinel
	}
	return err
}

// enqueueEvent records a domain event in the outbox of the current transaction.
func enqueueEvent(ctx context.Context, tx shared.Tx, topic string, event any, now time.Time, maxAttempts int32) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "marshal event")
	}
	return tx.Outbox().Enqueue(ctx, tx.DB(), shared.OutboxJob{
		Kind:        shared.OutboxKindEvent,
		Topic:       topic,
		Payload:     payload,
		MaxAttempts: maxAttempts,
		RunAt:       now,
	})
}
