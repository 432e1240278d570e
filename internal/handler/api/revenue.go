package api

import (
	"net/http"

	reqdto "venue-booking/internal/handler/dto/request"
	resdto "venue-booking/internal/handler/dto/response"
	"venue-booking/internal/handler/httperr"
	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RevenueHandler struct {
	cmds commands.RevenueCommands
	q    queries.RevenueQueries
}

func NewRevenueHandler(cmds commands.RevenueCommands, q queries.RevenueQueries) *RevenueHandler {
	return &RevenueHandler{cmds: cmds, q: q}
}

// @Summary List revenue records
// @Description Keyset-paginated ledger, newest completion first. Owners see their halls only.
// @Tags revenue
// @Produce json
// @Security BearerAuth
// @Param hall_id query string false "Hall ID"
// @Param from query string false "First completion date (YYYY-MM-DD)"
// @Param to query string false "Last completion date (YYYY-MM-DD)"
// @Param status query string false "recorded or refunded"
// @Param cursor query string false "Cursor from the previous page"
// @Param limit query int false "Limit"
// @Success 200 {object} resdto.RevenueListResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /revenue [get]
func (h *RevenueHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var query reqdto.ListRevenueQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	items, next, err := h.q.List(c.Request.Context(), filter, actor)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRevenueList(items, next))
}

// @Summary Revenue summary
// @Description Totals of recorded entries for the month or ISO week containing at
// @Tags revenue
// @Produce json
// @Security BearerAuth
// @Param period query string false "month or week"
// @Param at query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Param hall_id query string false "Hall ID"
// @Success 200 {object} resdto.RevenueSummaryResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /revenue/summary [get]
func (h *RevenueHandler) Summary(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var query reqdto.RevenueSummaryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	at, hallID, err := query.Parse()
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	summary, err := h.q.Summary(c.Request.Context(), query.Period, at, hallID, actor)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRevenueSummary(summary))
}

// @Summary Refund revenue
// @Description Mark the ledger entry of a booking as refunded
// @Tags revenue
// @Produce json
// @Security BearerAuth
// @Param bookingId path string true "Booking ID"
// @Success 200 {object} resdto.RevenueRecordResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /revenue/{bookingId}/refund [post]
func (h *RevenueHandler) Refund(c *gin.Context) {
	bookingID, ok := pathID(c, "bookingId")
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	record, err := h.cmds.Refund(c.Request.Context(), bookingID, actor)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRevenueRecord(record))
}
