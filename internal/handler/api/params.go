package api

import (
	"net/http"

	"venue-booking/internal/domain/user"
	"venue-booking/internal/handler/httperr"
	"venue-booking/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const idempotencyKeyHeader = "Idempotency-Key"

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}

func requireActor(c *gin.Context) (user.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return user.Actor{}, false
	}
	return actor, true
}

// idempotencyKey reads the optional Idempotency-Key header.
func idempotencyKey(c *gin.Context) (*uuid.UUID, bool) {
	raw := c.GetHeader(idempotencyKeyHeader)
	if raw == "" {
		return nil, true
	}
	key, err := uuid.Parse(raw)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Idempotency-Key must be a UUID", nil)
		return nil, false
	}
	return &key, true
}

// bindOptionalJSON accepts an empty body.
func bindOptionalJSON(c *gin.Context, dst any) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return false
	}
	return true
}
