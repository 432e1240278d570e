//go:build unit

package hall_test

import (
	"strings"
	"testing"
	"time"

	"venue-booking/internal/domain/hall"
	"venue-booking/internal/domain/slot"
	"venue-booking/internal/domain/user"
	"venue-booking/internal/pkg/errs"
	"venue-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDetails() hall.Details {
	return hall.Details{
		Name:         "Main Hall",
		Description:  "Ground floor",
		Location:     "Berlin",
		Capacity:     120,
		PricePerHour: 5000,
	}
}

func TestNewHall(t *testing.T) {
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		mutate func(*hall.Details)
		err    error
	}{
		{name: "valid listing", mutate: func(*hall.Details) {}},
		{name: "name at the limit", mutate: func(d *hall.Details) { d.Name = strings.Repeat("n", hall.MaxHallNameLength) }},
		{name: "blank name", mutate: func(d *hall.Details) { d.Name = "   " }, err: hall.ErrEmptyHallName},
		{name: "name too long", mutate: func(d *hall.Details) { d.Name = strings.Repeat("n", hall.MaxHallNameLength+1) }, err: hall.ErrHallNameTooLong},
		{name: "blank location", mutate: func(d *hall.Details) { d.Location = "" }, err: hall.ErrEmptyLocation},
		{name: "zero capacity", mutate: func(d *hall.Details) { d.Capacity = 0 }, err: hall.ErrInvalidCapacity},
		{name: "negative price", mutate: func(d *hall.Details) { d.PricePerHour = -1 }, err: hall.ErrInvalidPrice},
		{name: "price at the ceiling", mutate: func(d *hall.Details) { d.PricePerHour = slot.MaxPricePerHour }},
		{name: "price above the ceiling", mutate: func(d *hall.Details) { d.PricePerHour = slot.MaxPricePerHour + 1 }, err: hall.ErrInvalidPrice},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDetails()
			tt.mutate(&d)
			ownerID := uuid.New()

			h, err := hall.NewHall(ownerID, d, now)
			if tt.err != nil {
				assert.True(t, errs.Is(err, tt.err))
				assert.Nil(t, h)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, ownerID, h.OwnerID())
			assert.Equal(t, hall.ApprovalPending, h.Approval())
			assert.False(t, h.IsApproved())
			assert.True(t, errs.Is(h.EnsureBookable(), hall.ErrHallNotApproved))
		})
	}

	t.Run("trims text fields", func(t *testing.T) {
		d := validDetails()
		d.Name = "  Main Hall  "
		d.Location = " Berlin "
		h, err := hall.NewHall(uuid.New(), d, now)
		require.NoError(t, err)
		assert.Equal(t, "Main Hall", h.Name())
		assert.Equal(t, "Berlin", h.Location())
	})
}

func TestHallUpdate(t *testing.T) {
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

	t.Run("price change sends the hall back to moderation", func(t *testing.T) {
		h := builder.NewHallBuilder().BuildDomain()
		require.True(t, h.IsApproved())

		d := validDetails()
		d.PricePerHour = 6000
		require.NoError(t, h.Update(d, now))
		assert.Equal(t, hall.ApprovalPending, h.Approval())
		assert.Equal(t, int64(6000), h.PricePerHour())
		assert.Equal(t, now, h.UpdatedAt())
	})

	t.Run("other edits keep the approval", func(t *testing.T) {
		h := builder.NewHallBuilder().BuildDomain()
		d := validDetails()
		d.Capacity = 80
		d.Description = "Renovated"
		require.NoError(t, h.Update(d, now))
		assert.True(t, h.IsApproved())
		assert.Equal(t, 80, h.Capacity())
	})

	t.Run("invalid details leave the hall untouched", func(t *testing.T) {
		h := builder.NewHallBuilder().BuildDomain()
		d := validDetails()
		d.Capacity = -5
		assert.True(t, errs.Is(h.Update(d, now), hall.ErrInvalidCapacity))
		assert.Equal(t, 120, h.Capacity())
	})
}

func TestHallModeration(t *testing.T) {
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

	t.Run("approve a pending hall", func(t *testing.T) {
		h := builder.NewHallBuilder().WithApproval(hall.ApprovalPending).BuildDomain()
		require.NoError(t, h.Approve(now))
		assert.NoError(t, h.EnsureBookable())
		assert.True(t, errs.Is(h.Approve(now), hall.ErrAlreadyModerated))
	})

	t.Run("reject needs a reason", func(t *testing.T) {
		h := builder.NewHallBuilder().WithApproval(hall.ApprovalPending).BuildDomain()
		assert.True(t, errs.Is(h.Reject("  ", now), hall.ErrRejectionReason))

		require.NoError(t, h.Reject(" blurry photos ", now))
		assert.Equal(t, hall.ApprovalRejected, h.Approval())
		require.NotNil(t, h.RejectionReason())
		assert.Equal(t, "blurry photos", *h.RejectionReason())
		assert.True(t, errs.Is(h.Reject("again", now), hall.ErrAlreadyModerated))
	})

	t.Run("approving a rejected hall clears the reason", func(t *testing.T) {
		h := builder.NewHallBuilder().WithApproval(hall.ApprovalRejected).BuildDomain()
		require.NoError(t, h.Approve(now))
		assert.Nil(t, h.RejectionReason())
	})
}

func TestHallEnsureManagedBy(t *testing.T) {
	ownerID := uuid.New()
	h := builder.NewHallBuilder().WithOwner(ownerID).BuildDomain()

	assert.NoError(t, h.EnsureManagedBy(user.Actor{ID: ownerID, Role: user.RoleHallOwner}))
	assert.NoError(t, h.EnsureManagedBy(user.Actor{ID: uuid.New(), Role: user.RoleAdmin}))
	assert.True(t, errs.Is(h.EnsureManagedBy(user.Actor{ID: uuid.New(), Role: user.RoleHallOwner}), hall.ErrNotHallManager))
}
