// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"courier/internal/modules/estimate"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writeEstimateError maps calculation failures onto HTTP statuses.
// Only a distance-provider failure is a client error; everything else
// surfaces as a server error with the error's message.
func writeEstimateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, estimate.ErrDistanceUnavailable):
		writeError(c, http.StatusBadRequest, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, err.Error())
	}
}
