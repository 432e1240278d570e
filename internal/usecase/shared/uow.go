package shared

import (
	"context"
	"time"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/feedback"
	"venue-booking/internal/domain/hall"
	"venue-booking/internal/domain/revenue"
	"venue-booking/internal/domain/slot"
	"venue-booking/internal/domain/user"
	sqlc "venue-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Halls() HallRepository
	Slots() SlotRepository
	Bookings() BookingRepository
	Revenue() RevenueRepository
	Feedback() FeedbackRepository
	RatingStats() RatingStatsRepository
	Idempotency() IdempotencyRepository
	Outbox() OutboxRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	HallByID(ctx context.Context, id uuid.UUID) (*HallSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
}

type HallRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, h *hall.Hall) error
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*hall.Hall, error)
	Update(ctx context.Context, tx sqlc.DBTX, h *hall.Hall) error
}

type SlotRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, s *slot.Slot) error
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*slot.Slot, error)
	FindAvailableForUpdate(ctx context.Context, tx sqlc.DBTX, hallID uuid.UUID, iv slot.Interval) (*slot.Slot, error)
	Save(ctx context.Context, tx sqlc.DBTX, s *slot.Slot) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error)
	FindBySlotIDForUpdate(ctx context.Context, tx sqlc.DBTX, slotID uuid.UUID) (*booking.Booking, error)
	Save(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type RevenueRepository interface {
	Source(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID) (*RevenueSource, error)
	// Insert reports false when a record for the booking already exists.
	Insert(ctx context.Context, tx sqlc.DBTX, r *revenue.Record) (bool, error)
	FindByBookingID(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID) (*revenue.Record, error)
	FindByBookingIDForUpdate(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID) (*revenue.Record, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, r *revenue.Record) error
}

type FeedbackRepository interface {
	Upsert(ctx context.Context, tx sqlc.DBTX, f *feedback.Feedback) (uuid.UUID, error)
}

type RatingStatsRepository interface {
	RecalcHallRatingStats(ctx context.Context, tx sqlc.DBTX, hallID uuid.UUID) error
}

type IdempotencyRepository interface {
	TryInsert(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) error
	UpdateStatusCompleted(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, resultHash string, bookingID uuid.UUID) error
}

type OutboxRepository interface {
	Enqueue(ctx context.Context, tx sqlc.DBTX, job OutboxJob) error
	ClaimDue(ctx context.Context, tx sqlc.DBTX, limit int32, staleBefore time.Time) ([]ClaimedJob, error)
	Complete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	Reschedule(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status string, runAt time.Time, lastError string) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (uuid.UUID, error)
}
