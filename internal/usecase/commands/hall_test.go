//go:build unit

package commands_test

import (
	"context"
	"testing"

	"venue-booking/internal/domain/hall"
	"venue-booking/internal/domain/user"
	reqdto "venue-booking/internal/handler/dto/request"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/commands"
	"venue-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHallCommands(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	owner := user.Actor{ID: ownerID, Role: user.RoleHallOwner}
	admin := user.Actor{ID: uuid.New(), Role: user.RoleAdmin}

	t.Run("create: new listing is pending", func(t *testing.T) {
		e := newTxEnv(t)
		e.halls.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		h, err := commands.NewHallCommands(e.uow, e.clock).Create(ctx, builder.NewHallBuilder().BuildCreateRequestDTO(), owner)
		require.NoError(t, err)
		assert.Equal(t, hall.ApprovalPending, h.Approval())
		assert.Equal(t, ownerID, h.OwnerID())
		assert.Equal(t, testNow, h.CreatedAt())
	})

	t.Run("create: invalid details never reach the database", func(t *testing.T) {
		e := newTxEnv(t)
		req := builder.NewHallBuilder().BuildCreateRequestDTO()
		req.Name = "  "

		_, err := commands.NewHallCommands(e.uow, e.clock).Create(ctx, req, owner)
		assert.True(t, errs.Is(err, hall.ErrEmptyHallName))
	})

	t.Run("update: price change returns the hall to moderation", func(t *testing.T) {
		e := newTxEnv(t)
		existing := builder.NewHallBuilder().WithOwner(ownerID).BuildDomain()
		e.halls.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), existing.ID()).Return(existing, nil)
		e.halls.EXPECT().Update(gomock.Any(), gomock.Any(), existing).Return(nil)

		price := int64(7000)
		h, err := commands.NewHallCommands(e.uow, e.clock).Update(ctx, existing.ID(), reqdto.UpdateHallRequest{PricePerHour: &price}, owner)
		require.NoError(t, err)
		assert.Equal(t, hall.ApprovalPending, h.Approval())
		assert.Equal(t, "Main Hall", h.Name())
	})

	t.Run("update: other owners are refused", func(t *testing.T) {
		e := newTxEnv(t)
		existing := builder.NewHallBuilder().BuildDomain()
		e.halls.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), existing.ID()).Return(existing, nil)

		_, err := commands.NewHallCommands(e.uow, e.clock).Update(ctx, existing.ID(), reqdto.UpdateHallRequest{}, owner)
		assert.True(t, errs.Is(err, hall.ErrNotHallManager))
	})

	t.Run("approve: admin only", func(t *testing.T) {
		e := newTxEnv(t)
		_, err := commands.NewHallCommands(e.uow, e.clock).Approve(ctx, uuid.New(), owner)
		assert.True(t, errs.Is(err, commands.ErrModerationAdminOnly))
	})

	t.Run("approve: unknown hall", func(t *testing.T) {
		e := newTxEnv(t)
		id := uuid.New()
		e.halls.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), id).Return(nil, notFound())

		_, err := commands.NewHallCommands(e.uow, e.clock).Approve(ctx, id, admin)
		assert.True(t, errs.Is(err, hall.ErrHallNotFound))
	})

	t.Run("reject: stores the reason", func(t *testing.T) {
		e := newTxEnv(t)
		existing := builder.NewHallBuilder().WithApproval(hall.ApprovalPending).BuildDomain()
		e.halls.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), existing.ID()).Return(existing, nil)
		e.halls.EXPECT().Update(gomock.Any(), gomock.Any(), existing).Return(nil)

		h, err := commands.NewHallCommands(e.uow, e.clock).Reject(ctx, existing.ID(), reqdto.RejectHallRequest{Reason: "no fire exit"}, admin)
		require.NoError(t, err)
		assert.Equal(t, "no fire exit", *h.RejectionReason())
	})
}
