package httpx

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MikeMC777/marketplace-api/internal/apperr"
)

// HTTPError represents a standard error in JSON.
// swagger:model
type HTTPError struct {
	// example: user not found
	Error string `json:"error"`
}

// Status maps an error kind to its HTTP status.
func Status(err error) int {
	switch {
	case errors.Is(err, apperr.ErrInvalid):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Fail is the single place where handler errors become responses. It logs
// the error and writes the mapped status. Client-facing kinds keep their own
// message; everything else is replaced with msg.
func Fail(c *gin.Context, err error, msg string) {
	status := Status(err)
	out := msg
	if apperr.Is(err) {
		out = err.Error()
	}

	log := L(c)
	if status >= http.StatusInternalServerError {
		log.Error(msg, zap.Error(err))
	} else {
		log.Info(msg, zap.Int("status", status), zap.Error(err))
	}
	c.AbortWithStatusJSON(status, HTTPError{Error: out})
}

// BindJSON decodes the request body into dst, reporting decode failures as
// apperr.ErrInvalid.
func BindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return &bindError{err: err}
	}
	return nil
}

type bindError struct{ err error }

func (e *bindError) Error() string { return "invalid json: " + e.err.Error() }

func (e *bindError) Unwrap() []error { return []error{apperr.ErrInvalid, e.err} }
