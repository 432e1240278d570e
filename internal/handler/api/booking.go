package api

import (
	"context"
	"net/http"

	"venue-booking/internal/domain/user"
	reqdto "venue-booking/internal/handler/dto/request"
	resdto "venue-booking/internal/handler/dto/response"
	"venue-booking/internal/handler/httperr"
	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const idempotentReplayedHeader = "Idempotent-Replayed"

type BookingHandler struct {
	cmds     commands.BookingCommands
	feedback commands.FeedbackCommands
	q        queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, feedback commands.FeedbackCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, feedback: feedback, q: q}
}

// @Summary Create booking
// @Description Book a time range in a hall. A matching published slot is converted in place.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Idempotency key (UUID)"
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.BookingResponse
// @Success 200 {object} resdto.BookingResponse "Replayed"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	key, ok := idempotencyKey(c)
	if !ok {
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), req, actor, key)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), result.BookingID, actor)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load booking", nil)
		return
	}
	status := http.StatusCreated
	if result.IsReplayed {
		c.Header(idempotentReplayedHeader, "true")
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromBookingView(view))
}

// @Summary List bookings
// @Description Customers see their own bookings, hall owners the bookings of their halls.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param hall_id query string false "Hall ID"
// @Param customer_id query string false "Customer ID"
// @Param owner_id query string false "Owner ID"
// @Param from query string false "First date (YYYY-MM-DD)"
// @Param to query string false "Last date (YYYY-MM-DD)"
// @Param status query string false "Booking status"
// @Param payment_state query string false "Payment state"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} resdto.PageResponse[resdto.BookingResponse]
// @Failure 400 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var query reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	page, err := h.q.List(c.Request.Context(), filter, actor)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPage(page, resdto.FromBookingView))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id, actor)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Cancel booking
// @Description Cancel a pending or confirmed booking and compute the refund
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.CancelBookingRequest false "Cancellation reason"
// @Success 200 {object} resdto.CancellationResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CancelBookingRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	result, err := h.cmds.Cancel(c.Request.Context(), id, req.Reason, actor)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCancellation(result))
}

// @Summary Delete booking
// @Description Delete a cancelled booking. Hall managers may force-delete an active one.
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
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

// @Summary Confirm booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/confirm [post]
func (h *BookingHandler) Confirm(c *gin.Context) {
	h.transition(c, h.cmds.Confirm)
}

// @Summary Mark no-show
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/no-show [post]
func (h *BookingHandler) MarkNoShow(c *gin.Context) {
	h.transition(c, h.cmds.MarkNoShow)
}

// @Summary Check in
// @Description Record arrival and complete the booking. Revenue is posted best-effort.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.CompletionResponse
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/check-in [post]
func (h *BookingHandler) CheckIn(c *gin.Context) {
	h.complete(c, h.cmds.CheckIn)
}

// @Summary Complete booking
// @Description Complete the booking and post its revenue. Repeating the call returns the same record.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.CompletionResponse
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/complete [post]
func (h *BookingHandler) Complete(c *gin.Context) {
	h.complete(c, h.cmds.Complete)
}

// @Summary Submit feedback
// @Description Rate a completed booking. Submitting again overwrites the previous feedback.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.SubmitFeedbackRequest true "Feedback"
// @Success 200 {object} resdto.FeedbackResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/feedback [put]
func (h *BookingHandler) SubmitFeedback(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	feedbackID, err := h.feedback.Submit(c.Request.Context(), id, req, actor)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FeedbackResponse{ID: feedbackID, BookingID: id})
}

func (h *BookingHandler) transition(c *gin.Context, run func(ctx context.Context, id uuid.UUID, actor user.Actor) error) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := run(c.Request.Context(), id, actor); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id, actor)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load booking", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

func (h *BookingHandler) complete(c *gin.Context, run func(ctx context.Context, id uuid.UUID, actor user.Actor) (*commands.CompletionResult, error)) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	result, err := run(c.Request.Context(), id, actor)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCompletion(result))
}
