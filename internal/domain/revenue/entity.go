package revenue

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"venue-booking/internal/domain/slot"
	"venue-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRecordNotFound    = errs.Sentinel("revenue record not found", errs.ErrNotFound)
	ErrAlreadyRefunded   = errs.Sentinel("revenue record already refunded", errs.ErrConflict)
	ErrBookingIncomplete = errs.Sentinel("revenue is only posted for completed bookings", errs.ErrPolicyViolation)
)

type Status string

const (
	StatusRecorded Status = "recorded"
	StatusRefunded Status = "refunded"
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	return s == StatusRecorded || s == StatusRefunded
}

// Snapshot is the denormalized view of a completed booking copied into the ledger.
type Snapshot struct {
	BookingID     uuid.UUID
	HallID        uuid.UUID
	HallName      string
	OwnerID       uuid.UUID
	CustomerID    uuid.UUID
	CustomerEmail string
	Interval      slot.Interval
	Amounts       slot.Amounts
	CompletedAt   time.Time
}

// Record is an append-only ledger entry. Only the status changes after creation.
type Record struct {
	id             uuid.UUID
	snapshot       Snapshot
	transactionRef string
	status         Status
	createdAt      time.Time
	updatedAt      time.Time
}

func NewRecord(snapshot Snapshot, now time.Time) *Record {
	return &Record{
		id:             uuid.New(),
		snapshot:       snapshot,
		transactionRef: NewTransactionRef(snapshot.CompletedAt),
		status:         StatusRecorded,
		createdAt:      now,
		updatedAt:      now,
	}
}

func Reconstruct(id uuid.UUID, snapshot Snapshot, transactionRef string, status Status, createdAt, updatedAt time.Time) *Record {
	return &Record{
		id:             id,
		snapshot:       snapshot,
		transactionRef: transactionRef,
		status:         status,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// NewTransactionRef formats REV-YYYYMMDD-xxxxxxxx.
func NewTransactionRef(at time.Time) string {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		u := uuid.New()
		copy(b[:], u[:4])
	}
	return fmt.Sprintf("REV-%s-%s", at.UTC().Format("20060102"), hex.EncodeToString(b[:]))
}

func (r *Record) MarkRefunded(now time.Time) error {
	if r.status == StatusRefunded {
		return ErrAlreadyRefunded
	}
	r.status = StatusRefunded
	r.updatedAt = now
	return nil
}

func (r *Record) ID() uuid.UUID          { return r.id }
func (r *Record) Snapshot() Snapshot     { return r.snapshot }
func (r *Record) BookingID() uuid.UUID   { return r.snapshot.BookingID }
func (r *Record) TransactionRef() string { return r.transactionRef }
func (r *Record) Status() Status         { return r.status }
func (r *Record) CreatedAt() time.Time   { return r.createdAt }
func (r *Record) UpdatedAt() time.Time   { return r.updatedAt }
