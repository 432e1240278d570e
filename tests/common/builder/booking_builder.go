//go:build unit || e2e

package builder

import (
	"time"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/slot"
	reqdto "venue-booking/internal/handler/dto/request"
	"venue-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID                  uuid.UUID
	HallID              uuid.UUID
	OwnerID             uuid.UUID
	CustomerID          uuid.UUID
	SlotID              uuid.UUID
	Date                string
	StartTime           string
	EndTime             string
	SpecialRequirements string
	Status              booking.Status
	Payment             slot.PaymentState
	Amounts             slot.Amounts
	FromPublishedSlot   bool
	CreatedAt           time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:         uuid.New(),
		HallID:     uuid.New(),
		OwnerID:    uuid.New(),
		CustomerID: uuid.New(),
		SlotID:     uuid.New(),
		Date:       "2026-12-01",
		StartTime:  "10:00",
		EndTime:    "12:00",
		Status:     booking.StatusConfirmed,
		Payment:    slot.PaymentPending,
		Amounts:    slot.Amounts{Total: 10000, PlatformFee: 1000, OwnerCommission: 9000},
		CreatedAt:  time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) Interval() slot.Interval {
	iv, err := slot.ParseInterval(b.Date, b.StartTime, b.EndTime)
	if err != nil {
		panic(err)
	}
	return iv
}

func (b *BookingBuilder) BuildDomain() *booking.Booking {
	slotID := b.SlotID
	var special *string
	if b.SpecialRequirements != "" {
		s := b.SpecialRequirements
		special = &s
	}
	return booking.Reconstruct(booking.Snapshot{
		ID:                  b.ID,
		HallID:              b.HallID,
		CustomerID:          b.CustomerID,
		SlotID:              &slotID,
		Interval:            b.Interval(),
		Amounts:             b.Amounts,
		Status:              b.Status,
		Payment:             b.Payment,
		FromPublishedSlot:   b.FromPublishedSlot,
		SpecialRequirements: special,
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.CreatedAt,
	})
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		HallID:              b.HallID,
		Date:                b.Date,
		StartTime:           b.StartTime,
		EndTime:             b.EndTime,
		SpecialRequirements: b.SpecialRequirements,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	slotID := b.SlotID
	iv := b.Interval()
	return &queries.BookingView{
		ID:                    b.ID,
		HallID:                b.HallID,
		HallName:              "Main Hall",
		OwnerID:               b.OwnerID,
		CustomerID:            b.CustomerID,
		CustomerEmail:         "customer@example.com",
		SlotID:                &slotID,
		Date:                  b.Date,
		StartTime:             b.StartTime,
		EndTime:               b.EndTime,
		TotalHours:            iv.Hours(),
		TotalAmount:           b.Amounts.Total,
		PlatformFeeAmount:     b.Amounts.PlatformFee,
		OwnerCommissionAmount: b.Amounts.OwnerCommission,
		Status:                b.Status.String(),
		PaymentState:          b.Payment.String(),
		CreatedAt:             b.CreatedAt,
		UpdatedAt:             b.CreatedAt,
	}
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithCustomer(customerID uuid.UUID) *BookingBuilder {
	b.CustomerID = customerID
	return b
}

func (b *BookingBuilder) WithHall(hallID, ownerID uuid.UUID) *BookingBuilder {
	b.HallID = hallID
	b.OwnerID = ownerID
	return b
}
