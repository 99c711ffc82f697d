// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripgen/internal/ai"
	"tripgen/internal/modules/trip"
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

// writePipelineError maps core pipeline failures onto HTTP statuses. The
// aggregate provider message is passed through verbatim; it is built to be
// displayed as-is, one provider-attributed line per failure.
func writePipelineError(c *gin.Context, err error) {
	var agg *ai.AggregateError
	var norm *ai.NormalizationError
	switch {
	case errors.Is(err, trip.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.As(err, &agg):
		writeError(c, http.StatusBadGateway, agg.Error())
	case errors.As(err, &norm):
		writeError(c, http.StatusBadGateway, norm.Error())
	case errors.Is(err, trip.ErrNoPlaces):
		writeError(c, http.StatusBadGateway, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
