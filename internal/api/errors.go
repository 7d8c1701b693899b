package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recipedex/backend/internal/types"
)

// writeError maps the core's sentinel errors to HTTP status codes. The
// not-found vs upstream-error distinction is deliberate: callers need to
// know whether the recipe doesn't exist or the provider was unreachable.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, types.ErrValidation):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, types.ErrNotFound), errors.Is(err, types.ErrUpstreamNotFound):
		status = http.StatusNotFound
	case errors.Is(err, types.ErrUpstreamError):
		status = http.StatusBadGateway
	case errors.Is(err, types.ErrReadOnlySource):
		status = http.StatusForbidden
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
