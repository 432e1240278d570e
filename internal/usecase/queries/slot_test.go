//go:build unit

package queries_test

import (
	"context"
	"testing"

	"venue-booking/internal/domain/hall"
	"venue-booking/internal/domain/user"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/queries"
	queriesmock "venue-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type slotListFixture struct {
	halls  *queriesmock.MockHallReadStore
	slots  *queriesmock.MockSlotReadStore
	q      queries.SlotQueries
	hall   *queries.HallView
	holder uuid.UUID
	booked uuid.UUID
}

func newSlotListFixture(t *testing.T, approval hall.ApprovalStatus) *slotListFixture {
	ctrl := gomock.NewController(t)
	f := &slotListFixture{
		halls:  queriesmock.NewMockHallReadStore(ctrl),
		slots:  queriesmock.NewMockSlotReadStore(ctrl),
		hall:   &queries.HallView{ID: uuid.New(), OwnerID: uuid.New(), ApprovalStatus: approval.String()},
		holder: uuid.New(),
		booked: uuid.New(),
	}
	f.q = queries.NewSlotQueries(f.halls, f.slots)
	f.halls.EXPECT().FindByID(gomock.Any(), f.hall.ID).Return(f.hall, nil).AnyTimes()
	return f
}

// page returns a fresh listing with one open and one booked slot.
func (f *slotListFixture) page() *queries.Page[*queries.SlotView] {
	holder, booked := f.holder, f.booked
	return &queries.Page[*queries.SlotView]{
		Items: []*queries.SlotView{
			{ID: uuid.New(), HallID: f.hall.ID, LifecycleState: "available", IsAvailable: true, PaymentState: "not_applicable"},
			{
				ID: uuid.New(), HallID: f.hall.ID, LifecycleState: "confirmed",
				CustomerID: &holder, BookingID: &booked, PaymentState: "pending",
				TotalAmount: 1500, PlatformFeeAmount: 75, OwnerCommissionAmount: 1350,
			},
		},
		Page: 1, Limit: 20, Total: 2,
	}
}

func (f *slotListFixture) list(t *testing.T, viewer *user.Actor) []*queries.SlotView {
	t.Helper()
	f.slots.EXPECT().List(gomock.Any(), f.hall.ID, gomock.Any()).Return(f.page(), nil)
	page, err := f.q.ListByHall(context.Background(), f.hall.ID, queries.SlotFilter{}, viewer)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	return page.Items
}

func assertBookingHidden(t *testing.T, v *queries.SlotView) {
	t.Helper()
	assert.Nil(t, v.CustomerID)
	assert.Nil(t, v.BookingID)
	assert.Equal(t, "not_applicable", v.PaymentState)
	assert.Zero(t, v.TotalAmount)
	assert.Zero(t, v.PlatformFeeAmount)
	assert.Zero(t, v.OwnerCommissionAmount)
	assert.Equal(t, "confirmed", v.LifecycleState)
}

func TestSlotQueries_ListByHall(t *testing.T) {
	ctx := context.Background()

	t.Run("anonymous viewers see occupancy without booking details", func(t *testing.T) {
		f := newSlotListFixture(t, hall.ApprovalApproved)
		items := f.list(t, nil)
		assert.True(t, items[0].IsAvailable)
		assertBookingHidden(t, items[1])
	})

	t.Run("other customers see occupancy without booking details", func(t *testing.T) {
		f := newSlotListFixture(t, hall.ApprovalApproved)
		items := f.list(t, &user.Actor{ID: uuid.New(), Role: user.RoleCustomer})
		assertBookingHidden(t, items[1])
	})

	t.Run("the holding customer sees their booking", func(t *testing.T) {
		f := newSlotListFixture(t, hall.ApprovalApproved)
		items := f.list(t, &user.Actor{ID: f.holder, Role: user.RoleCustomer})
		require.NotNil(t, items[1].BookingID)
		assert.Equal(t, f.booked, *items[1].BookingID)
		assert.Equal(t, int64(1500), items[1].TotalAmount)
	})

	t.Run("the owner and admins see everything", func(t *testing.T) {
		f := newSlotListFixture(t, hall.ApprovalApproved)
		for _, viewer := range []*user.Actor{
			{ID: f.hall.OwnerID, Role: user.RoleHallOwner},
			{ID: uuid.New(), Role: user.RoleAdmin},
		} {
			items := f.list(t, viewer)
			require.NotNil(t, items[1].CustomerID)
			assert.Equal(t, f.holder, *items[1].CustomerID)
			assert.Equal(t, int64(1350), items[1].OwnerCommissionAmount)
		}
	})

	t.Run("unapproved hall is hidden from the public", func(t *testing.T) {
		for _, viewer := range []*user.Actor{nil, {ID: uuid.New(), Role: user.RoleCustomer}, {ID: uuid.New(), Role: user.RoleHallOwner}} {
			f := newSlotListFixture(t, hall.ApprovalPending)
			_, err := f.q.ListByHall(ctx, f.hall.ID, queries.SlotFilter{}, viewer)
			assert.True(t, errs.Is(err, hall.ErrHallNotFound))
		}
	})

	t.Run("unapproved hall is listed for its owner", func(t *testing.T) {
		f := newSlotListFixture(t, hall.ApprovalRejected)
		items := f.list(t, &user.Actor{ID: f.hall.OwnerID, Role: user.RoleHallOwner})
		assert.NotNil(t, items[1].BookingID)
	})

	t.Run("conflicting filters are rejected before any lookup", func(t *testing.T) {
		f := newSlotListFixture(t, hall.ApprovalApproved)
		_, err := f.q.ListByHall(ctx, f.hall.ID, queries.SlotFilter{AvailableOnly: true, BookedOnly: true}, nil)
		assert.True(t, errs.Is(err, queries.ErrConflictingSlotFilter))
	})
}
