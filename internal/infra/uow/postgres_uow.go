package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"venue-booking/internal/infra"
	"venue-booking/internal/infra/readstore"
	"venue-booking/internal/infra/repository"
	sqlc "venue-booking/internal/infra/sqlc/generated"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/pkg/tracing"
	"venue-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool  *pgxpool.Pool
	q     *sqlc.Queries
	clock clock.Clock
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, clk clock.Clock) shared.UnitOfWork {
	return &PostgresUoW{
		pool:  pool,
		q:     q,
		clock: clk,
	}
}

// Overlaps are rejected by the slot exclusion constraint and transitions
// run under row locks, so ReadCommitted applies.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	ctx, span := tracing.Start(ctx, "uow.Within")
	defer span.End()

	err := u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
	recordSpanError(span, err)
	return err
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	ctx, span := tracing.Start(ctx, "uow.WithinReadOnly")
	defer span.End()

	err := u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
	recordSpanError(span, err)
	return err
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		trace.SpanFromContext(ctx).SetAttributes(attribute.Int("uow.attempt", attempt+1))

		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

// recordSpanError leaves expected domain outcomes out of the error status.
func recordSpanError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	if errs.KindOf(err) == errs.KindInternal {
		span.SetStatus(codes.Error, err.Error())
	}
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	hallRepo        shared.HallRepository
	slotRepo        shared.SlotRepository
	bookingRepo     shared.BookingRepository
	revenueRepo     shared.RevenueRepository
	feedbackRepo    shared.FeedbackRepository
	ratingStatsRepo shared.RatingStatsRepository
	idempotencyRepo shared.IdempotencyRepository
	outboxRepo      shared.OutboxRepository
	userRepo        shared.UserRepository
	commandReads    shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Halls() shared.HallRepository {
	if t.hallRepo == nil {
		t.hallRepo = repository.NewHallRepository(t.uow.q, t.dbtx)
	}
	return t.hallRepo
}

func (t *pgTx) Slots() shared.SlotRepository {
	if t.slotRepo == nil {
		t.slotRepo = repository.NewSlotRepository(t.uow.q, t.dbtx)
	}
	return t.slotRepo
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.uow.q, t.dbtx)
	}
	return t.bookingRepo
}

func (t *pgTx) Revenue() shared.RevenueRepository {
	if t.revenueRepo == nil {
		t.revenueRepo = repository.NewRevenueRepository(t.uow.q, t.dbtx)
	}
	return t.revenueRepo
}

func (t *pgTx) Feedback() shared.FeedbackRepository {
	if t.feedbackRepo == nil {
		t.feedbackRepo = repository.NewFeedbackRepository(t.uow.q, t.dbtx)
	}
	return t.feedbackRepo
}

func (t *pgTx) RatingStats() shared.RatingStatsRepository {
	if t.ratingStatsRepo == nil {
		t.ratingStatsRepo = repository.NewRatingStatsRepository(t.uow.q, t.dbtx)
	}
	return t.ratingStatsRepo
}

func (t *pgTx) Idempotency() shared.IdempotencyRepository {
	if t.idempotencyRepo == nil {
		t.idempotencyRepo = repository.NewIdempotencyRepository(t.uow.q, t.dbtx)
	}
	return t.idempotencyRepo
}

func (t *pgTx) Outbox() shared.OutboxRepository {
	if t.outboxRepo == nil {
		t.outboxRepo = repository.NewOutboxRepository(t.uow.q, t.dbtx)
	}
	return t.outboxRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.uow.q, t.dbtx)
	}
	return t.userRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	hallStore        *readstore.HallReadStore
	idempotencyStore *readstore.IdempotencyReadStore
}

func (r *commandReads) HallByID(ctx context.Context, id uuid.UUID) (*shared.HallSnapshot, error) {
	if r.hallStore == nil {
		r.hallStore = readstore.NewHallReadStore(r.uow.q, r.dbtx)
	}

	h, err := r.hallStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &shared.HallSnapshot{
		ID:           h.ID,
		OwnerID:      h.OwnerID,
		Name:         h.Name,
		PricePerHour: h.PricePerHour,
		Approval:     h.ApprovalStatus,
	}, nil
}

func (r *commandReads) BookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	row, err := r.uow.q.GetBookingByID(ctx, r.dbtx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return &shared.BookingSnapshot{
		ID:         row.ID,
		HallID:     row.HallID,
		CustomerID: row.CustomerID,
		Status:     row.Status,
	}, nil
}

func (r *commandReads) IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	if r.idempotencyStore == nil {
		r.idempotencyStore = readstore.NewIdempotencyReadStore(r.uow.q, r.uow.clock)
	}

	return r.idempotencyStore.Get(ctx, r.dbtx, key, userID)
}
