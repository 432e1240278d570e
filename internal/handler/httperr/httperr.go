package httperr

import (
	"errors"
	"net/http"

	"venue-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// KindDetail tells clients which taxonomy kind produced the error.
type KindDetail struct {
	Kind errs.Kind `json:"kind"`
}

// AbortWithError preserves the original error for logging. A nil err is
// recorded as msg.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithDomainError maps the kind of err onto a status. Classified errors
// expose their message; anything unclassified becomes a 500.
func AbortWithDomainError(c *gin.Context, err error) {
	kind := errs.KindOf(err)
	status := StatusOf(kind)
	if status == http.StatusInternalServerError {
		AbortWithError(c, status, err, "Internal server error", nil)
		return
	}
	AbortWithError(c, status, err, err.Error(), KindDetail{Kind: kind})
}

func StatusOf(kind errs.Kind) int {
	switch kind {
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindConflict:
		return http.StatusConflict
	case errs.KindPolicyViolation:
		return http.StatusUnprocessableEntity
	case errs.KindForbidden:
		return http.StatusForbidden
	case errs.KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
