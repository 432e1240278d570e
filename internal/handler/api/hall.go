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
	"github.com/google/uuid"
)

type HallHandler struct {
	cmds commands.HallCommands
	q    queries.HallQueries
}

func NewHallHandler(cmds commands.HallCommands, q queries.HallQueries) *HallHandler {
	return &HallHandler{cmds: cmds, q: q}
}

// @Summary Create hall
// @Description Register a hall. New halls start pending approval.
// @Tags halls
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateHallRequest true "Create hall request"
// @Success 201 {object} resdto.HallResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /halls [post]
func (h *HallHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateHallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	created, err := h.cmds.Create(c.Request.Context(), req, actor)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), created.ID(), &actor)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load hall", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromHallView(view))
}

// @Summary List halls
// @Description Approved halls are public. Owners also see their own, admins see all.
// @Tags halls
// @Produce json
// @Param owner_id query string false "Owner ID"
// @Param approval_status query string false "pending, approved or rejected"
// @Param location query string false "Location substring"
// @Param min_capacity query int false "Minimum capacity"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} resdto.PageResponse[resdto.HallResponse]
// @Failure 400 {object} httperr.Response
// @Router /halls [get]
func (h *HallHandler) List(c *gin.Context) {
	var query reqdto.ListHallsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	page, err := h.q.List(c.Request.Context(), filter, middleware.GetOptionalActor(c))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPage(page, resdto.FromHallView))
}

// @Summary Get hall
// @Tags halls
// @Produce json
// @Param id path string true "Hall ID"
// @Success 200 {object} resdto.HallResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /halls/{id} [get]
func (h *HallHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id, middleware.GetOptionalActor(c))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHallView(view))
}

// @Summary Update hall
// @Description Partially update a hall. Owners may edit their own halls.
// @Tags halls
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hall ID"
// @Param request body reqdto.UpdateHallRequest true "Update hall request"
// @Success 200 {object} resdto.HallResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /halls/{id} [patch]
func (h *HallHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.UpdateHallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if _, err := h.cmds.Update(c.Request.Context(), id, req, actor); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	h.respondWithHall(c, id)
}

// @Summary Approve hall
// @Tags halls
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hall ID"
// @Success 200 {object} resdto.HallResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /halls/{id}/approve [post]
func (h *HallHandler) Approve(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if _, err := h.cmds.Approve(c.Request.Context(), id, actor); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	h.respondWithHall(c, id)
}

// @Summary Reject hall
// @Tags halls
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hall ID"
// @Param request body reqdto.RejectHallRequest true "Rejection reason"
// @Success 200 {object} resdto.HallResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /halls/{id}/reject [post]
func (h *HallHandler) Reject(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.RejectHallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if _, err := h.cmds.Reject(c.Request.Context(), id, req, actor); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	h.respondWithHall(c, id)
}

// @Summary Hall rating stats
// @Tags halls
// @Produce json
// @Param id path string true "Hall ID"
// @Success 200 {object} resdto.HallRatingStatsResponse
// @Failure 404 {object} httperr.Response
// @Router /halls/{id}/rating-stats [get]
func (h *HallHandler) RatingStats(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	stats, err := h.q.RatingStats(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHallRatingStats(stats))
}

func (h *HallHandler) respondWithHall(c *gin.Context, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), id, middleware.GetOptionalActor(c))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load hall", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHallView(view))
}
