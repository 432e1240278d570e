//go:build unit

package commands_test

import (
	"context"
	"testing"

	"venue-booking/internal/domain/hall"
	"venue-booking/internal/domain/slot"
	"venue-booking/internal/domain/user"
	reqdto "venue-booking/internal/handler/dto/request"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/shared"
	"venue-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSlotCommands_Create(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	owner := user.Actor{ID: ownerID, Role: user.RoleHallOwner}
	h := &shared.HallSnapshot{ID: uuid.New(), OwnerID: ownerID, Approval: hall.ApprovalApproved.String()}

	t.Run("success: one slot per occurrence", func(t *testing.T) {
		e := newTxEnv(t)
		req := reqdto.CreateSlotsRequest{
			Date:       "2026-12-01",
			StartTime:  "18:00",
			EndTime:    "22:00",
			Recurrence: &reqdto.RecurrenceRequest{Frequency: "weekly", EndDate: "2026-12-15"},
		}
		e.reads.EXPECT().HallByID(gomock.Any(), h.ID).Return(h, nil)
		e.slots.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(3)

		created, err := commands.NewSlotCommands(e.uow, e.clock, commands.DefaultSettings()).Create(ctx, h.ID, req, owner)
		require.NoError(t, err)
		require.Len(t, created, 3)
		for i, day := range []string{"2026-12-01", "2026-12-08", "2026-12-15"} {
			assert.Equal(t, day, created[i].Interval().Date().Format("2006-01-02"))
			assert.True(t, created[i].IsAvailability())
			assert.JSONEq(t, `{"frequency":"weekly","endDate":"2026-12-15","daysOfWeek":null}`, string(created[i].RecurringPattern()))
		}
	})

	t.Run("error: not the hall owner", func(t *testing.T) {
		e := newTxEnv(t)
		req := reqdto.CreateSlotsRequest{Date: "2026-12-01", StartTime: "18:00", EndTime: "22:00"}
		e.reads.EXPECT().HallByID(gomock.Any(), h.ID).Return(h, nil)

		_, err := commands.NewSlotCommands(e.uow, e.clock, commands.DefaultSettings()).
			Create(ctx, h.ID, req, user.Actor{ID: uuid.New(), Role: user.RoleHallOwner})
		assert.True(t, errs.Is(err, hall.ErrNotHallManager))
	})

	t.Run("error: recurrence over the cap", func(t *testing.T) {
		e := newTxEnv(t)
		settings := commands.DefaultSettings()
		settings.Policy.MaxRecurrenceOccurrences = 2
		req := reqdto.CreateSlotsRequest{
			Date:       "2026-12-01",
			StartTime:  "18:00",
			EndTime:    "22:00",
			Recurrence: &reqdto.RecurrenceRequest{Frequency: "daily", EndDate: "2026-12-05"},
		}

		_, err := commands.NewSlotCommands(e.uow, e.clock, settings).Create(ctx, h.ID, req, owner)
		assert.True(t, errs.Is(err, slot.ErrTooManyOccurrences))
	})
}

func TestSlotCommands_Delete(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	owner := user.Actor{ID: ownerID, Role: user.RoleHallOwner}
	iv := builder.NewBookingBuilder().Interval()

	t.Run("success: open slot withdrawn", func(t *testing.T) {
		e := newTxEnv(t)
		s := slot.NewAvailable(uuid.New(), iv, nil, testNow)
		e.slots.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), s.ID()).Return(s, nil)
		e.reads.EXPECT().HallByID(gomock.Any(), s.HallID()).Return(&shared.HallSnapshot{ID: s.HallID(), OwnerID: ownerID}, nil)
		e.slots.EXPECT().Delete(gomock.Any(), gomock.Any(), s.ID()).Return(nil)

		require.NoError(t, commands.NewSlotCommands(e.uow, e.clock, commands.DefaultSettings()).Delete(ctx, s.ID(), owner))
	})

	t.Run("error: booked slot stays", func(t *testing.T) {
		e := newTxEnv(t)
		s := slot.NewConfirmed(uuid.New(), iv, slot.Booked{BookingID: uuid.New(), CustomerID: uuid.New()}, testNow)
		e.slots.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), s.ID()).Return(s, nil)
		e.reads.EXPECT().HallByID(gomock.Any(), s.HallID()).Return(&shared.HallSnapshot{ID: s.HallID(), OwnerID: ownerID}, nil)

		err := commands.NewSlotCommands(e.uow, e.clock, commands.DefaultSettings()).Delete(ctx, s.ID(), owner)
		assert.True(t, errs.Is(err, slot.ErrSlotNotWithdrawable))
	})

	t.Run("error: unknown slot", func(t *testing.T) {
		e := newTxEnv(t)
		id := uuid.New()
		e.slots.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), id).Return(nil, notFound())

		err := commands.NewSlotCommands(e.uow, e.clock, commands.DefaultSettings()).Delete(ctx, id, owner)
		assert.True(t, errs.Is(err, slot.ErrSlotNotFound))
	})
}
