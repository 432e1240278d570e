package api

import (
	"net/http"

	reqdto "venue-booking/internal/handler/dto/request"
	resdto "venue-booking/internal/handler/dto/response"
	"venue-booking/internal/handler/httperr"
	"venue-booking/internal/handler/middleware"
	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SlotHandler struct {
	cmds     commands.SlotCommands
	bookings commands.BookingCommands
	q        queries.SlotQueries
}

func NewSlotHandler(cmds commands.SlotCommands, bookings commands.BookingCommands, q queries.SlotQueries) *SlotHandler {
	return &SlotHandler{cmds: cmds, bookings: bookings, q: q}
}

// @Summary Publish slots
// @Description Publish an open slot, or one per occurrence of a weekly or daily recurrence
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hall ID"
// @Param request body reqdto.CreateSlotsRequest true "Create slots request"
// @Success 201 {array} resdto.SlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /halls/{id}/slots [post]
func (h *SlotHandler) Create(c *gin.Context) {
	hallID, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	slots, err := h.cmds.Create(c.Request.Context(), hallID, req, actor)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSlots(slots))
}

// @Summary List hall slots
// @Tags slots
// @Produce json
// @Param id path string true "Hall ID"
// @Param from query string false "First date (YYYY-MM-DD)"
// @Param to query string false "Last date (YYYY-MM-DD)"
// @Param state query string false "Lifecycle state"
// @Param available_only query bool false "Only open slots"
// @Param booked_only query bool false "Only booked slots"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} resdto.PageResponse[resdto.SlotResponse]
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /halls/{id}/slots [get]
func (h *SlotHandler) List(c *gin.Context) {
	hallID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var query reqdto.ListSlotsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	page, err := h.q.ListByHall(c.Request.Context(), hallID, filter, middleware.GetOptionalActor(c))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPage(page, resdto.FromSlotView))
}

// @Summary Withdraw slot
// @Description Delete an open slot that nobody has booked
// @Tags slots
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /slots/{id} [delete]
func (h *SlotHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id, actor); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Cancel slot booking
// @Description Cancel the booking held on a slot
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Param request body reqdto.CancelSlotRequest false "Cancellation reason"
// @Success 200 {object} resdto.CancellationResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /slots/{id}/cancel [post]
func (h *SlotHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CancelSlotRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	result, err := h.bookings.CancelBySlot(c.Request.Context(), id, req.Reason, actor)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCancellation(result))
}
