//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/hall"
	"venue-booking/internal/domain/slot"
	"venue-booking/internal/domain/user"
	"venue-booking/internal/handler/api"
	reqdto "venue-booking/internal/handler/dto/request"
	resdto "venue-booking/internal/handler/dto/response"
	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/queries"
	"venue-booking/tests/common/httptest"
	commandsmock "venue-booking/tests/mock/commands"
	queriesmock "venue-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SlotHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSlotCommands
	mockBookings *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockSlotQueries
	handler      *api.SlotHandler
	owner        user.Actor
}

func (s *SlotHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSlotCommands(s.mockCtrl)
	s.mockBookings = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSlotQueries(s.mockCtrl)
	s.handler = api.NewSlotHandler(s.mockCommands, s.mockBookings, s.mockQueries)
	s.owner = user.Actor{ID: uuid.New(), Role: user.RoleHallOwner}

	fakeAuth := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.owner.ID)
			c.Set("user_role", s.owner.Role)
		}
		c.Next()
	}

	s.router.POST("/halls/:id/slots", fakeAuth, s.handler.Create)
	s.router.GET("/halls/:id/slots", fakeAuth, s.handler.List)
	s.router.DELETE("/slots/:id", fakeAuth, s.handler.Delete)
	s.router.POST("/slots/:id/cancel", fakeAuth, s.handler.Cancel)
}

func (s *SlotHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSlotHandlerSuite(t *testing.T) {
	suite.Run(t, new(SlotHandlerTestSuite))
}

func (s *SlotHandlerTestSuite) TestCreate() {
	hallID := uuid.New()
	url := "/halls/" + hallID.String() + "/slots"
	reqBody := reqdto.CreateSlotsRequest{
		Date:      "2026-12-01",
		StartTime: "18:00",
		EndTime:   "22:00",
		Recurrence: &reqdto.RecurrenceRequest{
			Frequency:  "weekly",
			EndDate:    "2026-12-15",
			DaysOfWeek: []string{"tuesday"},
		},
	}

	s.Run("success: returns every published slot", func() {
		now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
		pattern := []byte(`{"frequency":"weekly","end_date":"2026-12-15","days_of_week":["tuesday"]}`)
		var created []*slot.Slot
		for _, d := range []string{"2026-12-01", "2026-12-08", "2026-12-15"} {
			iv, err := slot.ParseInterval(d, "18:00", "22:00")
			s.Require().NoError(err)
			created = append(created, slot.NewAvailable(hallID, iv, pattern, now))
		}
		s.mockCommands.EXPECT().Create(gomock.Any(), hallID, reqBody, s.owner).Return(created, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var response []resdto.SlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Require().Len(response, 3)
		s.Equal("2026-12-08", response[1].Date)
		s.Equal("available", response[1].LifecycleState)
		s.True(response[1].IsAvailable)
		s.InDelta(4.0, response[1].DurationHours, 1e-9)
	})

	s.Run("error: 400 for an unknown frequency", func() {
		bad := reqBody
		bad.Recurrence = &reqdto.RecurrenceRequest{Frequency: "monthly", EndDate: "2027-01-01"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, bad, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps domain errors", func() {
		for _, tc := range []struct {
			err    error
			status int
		}{
			{slot.ErrTooManyOccurrences, http.StatusBadRequest},
			{hall.ErrNotHallManager, http.StatusForbidden},
			{booking.ErrBookingConflict, http.StatusConflict},
		} {
			s.mockCommands.EXPECT().Create(gomock.Any(), hallID, reqBody, s.owner).Return(nil, tc.err).Times(1)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
			httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.err.Error())
		}
	})

	s.Run("error: 401 without an authenticated actor", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *SlotHandlerTestSuite) TestList() {
	hallID := uuid.New()
	url := "/halls/" + hallID.String() + "/slots"

	s.Run("success: forwards the filter", func() {
		s.mockQueries.EXPECT().ListByHall(gomock.Any(), hallID, gomock.Any(), gomock.Nil()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, f queries.SlotFilter, _ *user.Actor) (*queries.Page[*queries.SlotView], error) {
				s.True(f.AvailableOnly)
				s.Require().NotNil(f.To)
				return &queries.Page[*queries.SlotView]{
					Items: []*queries.SlotView{{ID: uuid.New(), HallID: hallID, Date: "2026-12-01", LifecycleState: "available", IsAvailable: true}},
					Page:  1,
					Limit: 20,
					Total: 1,
				}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?available_only=true&to=2026-12-31", nil, "")

		var response resdto.PageResponse[resdto.SlotResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Items, 1)
		s.True(response.Items[0].IsAvailable)
	})

	s.Run("success: passes the signed-in viewer", func() {
		s.mockQueries.EXPECT().ListByHall(gomock.Any(), hallID, gomock.Any(), &s.owner).
			Return(&queries.Page[*queries.SlotView]{Items: []*queries.SlotView{}, Page: 1, Limit: 20}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 404 for a hall the viewer cannot see", func() {
		s.mockQueries.EXPECT().ListByHall(gomock.Any(), hallID, gomock.Any(), gomock.Nil()).
			Return(nil, hall.ErrHallNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "hall not found")
	})

	s.Run("error: 400 when both availability filters are set", func() {
		s.mockQueries.EXPECT().ListByHall(gomock.Any(), hallID, gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrConflictingSlotFilter).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?available_only=true&booked_only=true", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "mutually exclusive")
	})
}

func (s *SlotHandlerTestSuite) TestDelete() {
	id := uuid.New()

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id, s.owner).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/slots/"+id.String(), nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 422 for a booked slot", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id, s.owner).Return(slot.ErrSlotNotWithdrawable).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/slots/"+id.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "only available slots")
	})
}

func (s *SlotHandlerTestSuite) TestCancel() {
	id := uuid.New()
	bookingID := uuid.New()

	s.Run("success: cancels the linked booking", func() {
		s.mockBookings.EXPECT().CancelBySlot(gomock.Any(), id, "venue flooded", s.owner).
			Return(&commands.CancellationResult{BookingID: bookingID, RefundAmount: 10000, RefundFraction: 1}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/slots/"+id.String()+"/cancel",
			reqdto.CancelSlotRequest{Reason: "venue flooded"}, "token")

		var response resdto.CancellationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bookingID, response.BookingID)
		s.Equal(int64(10000), response.RefundAmount)
	})

	s.Run("error: 404 for an open slot", func() {
		s.mockBookings.EXPECT().CancelBySlot(gomock.Any(), id, "", s.owner).Return(nil, slot.ErrSlotNotLinked).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/slots/"+id.String()+"/cancel", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not linked")
	})
}
