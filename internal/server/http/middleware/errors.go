package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/procurement-console/internal/domain/errors"
	"github.com/polkiloo/procurement-console/internal/server/http/dto"
)

// StatusFor maps a console error to its HTTP status.
func StatusFor(err error) int {
	var gwErr *domainErrors.GatewayError
	switch {
	case errors.Is(err, domainErrors.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.As(err, &gwErr):
		return http.StatusBadGateway
	case errors.Is(err, domainErrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domainErrors.ErrNotFound),
		errors.Is(err, domainErrors.ErrLineOutOfRange),
		errors.Is(err, domainErrors.ErrNoReview):
		return http.StatusNotFound
	case errors.Is(err, domainErrors.ErrUnknownField):
		return http.StatusBadRequest
	case errors.Is(err, domainErrors.ErrNotReviewable):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Fail aborts with the notice for err. Gateway detail and validation
// problems are shown as is, known console errors by their text, anything
// else by fallback.
func Fail(c *gin.Context, err error, fallback string) {
	status := StatusFor(err)
	resp := dto.ErrorResponse{Error: domainErrors.UserMessage(err, fallback)}

	var vErr *domainErrors.ValidationError
	if errors.As(err, &vErr) {
		resp.Problems = vErr.Problems
	}
	if status == http.StatusForbidden || status == http.StatusNotFound ||
		status == http.StatusBadRequest || status == http.StatusConflict {
		resp.Error = err.Error()
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(status, resp)
}

// BadRequest aborts with 400 and message.
func BadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: message})
}
