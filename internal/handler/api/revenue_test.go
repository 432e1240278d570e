//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"venue-booking/internal/domain/revenue"
	"venue-booking/internal/domain/user"
	"venue-booking/internal/handler/api"
	resdto "venue-booking/internal/handler/dto/response"
	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/queries"
	"venue-booking/tests/common/builder"
	"venue-booking/tests/common/httptest"
	commandsmock "venue-booking/tests/mock/commands"
	queriesmock "venue-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RevenueHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRevenueCommands
	mockQueries  *queriesmock.MockRevenueQueries
	handler      *api.RevenueHandler
	actor        user.Actor
}

func (s *RevenueHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRevenueCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRevenueQueries(s.mockCtrl)
	s.handler = api.NewRevenueHandler(s.mockCommands, s.mockQueries)
	s.actor = user.Actor{ID: uuid.New(), Role: user.RoleAdmin}

	fakeAuth := func(c *gin.Context) {
		c.Set("user_id", s.actor.ID)
		c.Set("user_role", s.actor.Role)
		c.Next()
	}

	g := s.router.Group("/revenue", fakeAuth)
	g.GET("", s.handler.List)
	g.GET("/summary", s.handler.Summary)
	g.POST("/:bookingId/refund", s.handler.Refund)
}

func (s *RevenueHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRevenueHandlerSuite(t *testing.T) {
	suite.Run(t, new(RevenueHandlerTestSuite))
}

func (s *RevenueHandlerTestSuite) TestList() {
	s.Run("success: returns items and the next cursor", func() {
		view := &queries.RevenueRecordView{ID: uuid.New(), BookingID: uuid.New(), TotalAmount: 10000, Status: "recorded"}
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), s.actor).
			DoAndReturn(func(_ context.Context, f queries.RevenueFilter, _ user.Actor) ([]*queries.RevenueRecordView, *queries.Cursor, error) {
				s.Require().NotNil(f.To)
				s.Equal(time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC), *f.To, "to is inclusive")
				s.Require().NotNil(f.Cursor)
				s.Equal("abc", f.Cursor.After)
				s.Equal(10, f.Limit)
				return []*queries.RevenueRecordView{view}, &queries.Cursor{After: "next-page"}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/revenue?to=2026-10-31&cursor=abc&limit=10", nil, "")

		var response resdto.RevenueListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Items, 1)
		s.Equal(view.ID, response.Items[0].ID)
		s.Equal("next-page", response.NextCursor)
	})

	s.Run("error: 400 for a broken cursor", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), s.actor).Return(nil, nil, queries.ErrInvalidCursor).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/revenue?cursor=broken", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid pagination cursor")
	})

	s.Run("error: 400 for an unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/revenue?status=pending", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})
}

func (s *RevenueHandlerTestSuite) TestSummary() {
	s.Run("success: passes period, reference date and hall", func() {
		hallID := uuid.New()
		at := time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)
		s.mockQueries.EXPECT().Summary(gomock.Any(), "week", &at, &hallID, s.actor).
			Return(&queries.RevenueSummary{
				Period: "week",
				From:   time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC),
				To:     time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC),
				RevenueTotals: queries.RevenueTotals{
					RecordCount: 2, TotalAmount: 30000, PlatformFeeAmount: 3000, OwnerCommissionAmount: 27000,
				},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/revenue/summary?period=week&at=2026-10-14&hall_id="+hallID.String(), nil, "")

		var response resdto.RevenueSummaryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(2), response.RecordCount)
		s.Equal(int64(27000), response.OwnerCommissionAmount)
	})

	s.Run("error: 400 for an unknown period", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/revenue/summary?period=year", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})

	s.Run("error: 400 for a malformed reference date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/revenue/summary?at=14.10.2026", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "YYYY-MM-DD")
	})
}

func (s *RevenueHandlerTestSuite) TestRefund() {
	b := builder.NewBookingBuilder()
	completedAt := time.Date(2026, 12, 1, 12, 0, 0, 0, time.UTC)

	s.Run("success: returns the refunded record", func() {
		record := revenue.NewRecord(revenue.Snapshot{
			BookingID:   b.ID,
			HallID:      b.HallID,
			OwnerID:     b.OwnerID,
			CustomerID:  b.CustomerID,
			Interval:    b.Interval(),
			Amounts:     b.Amounts,
			CompletedAt: completedAt,
		}, completedAt)
		s.Require().NoError(record.MarkRefunded(completedAt.Add(time.Hour)))
		s.mockCommands.EXPECT().Refund(gomock.Any(), b.ID, s.actor).Return(record, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/revenue/"+b.ID.String()+"/refund", nil, "")

		var response resdto.RevenueRecordResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("refunded", response.Status)
		s.Equal(b.ID, response.BookingID)
	})

	s.Run("error: maps domain errors", func() {
		for _, tc := range []struct {
			err    error
			status int
		}{
			{revenue.ErrRecordNotFound, http.StatusNotFound},
			{revenue.ErrAlreadyRefunded, http.StatusConflict},
			{commands.ErrRefundAdminOnly, http.StatusForbidden},
		} {
			s.mockCommands.EXPECT().Refund(gomock.Any(), b.ID, s.actor).Return(nil, tc.err).Times(1)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/revenue/"+b.ID.String()+"/refund", nil, "")
			httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.err.Error())
		}
	})

	s.Run("error: 400 for a malformed booking id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/revenue/nope/refund", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid bookingId")
	})
}
