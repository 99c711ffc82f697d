// README: Itinerary generation handler.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"tripgen/internal/modules/trip"
)

// planTimeout covers a full multi-chunk generation; each chunk may burn
// through the whole provider fallback chain.
const planTimeout = 10 * time.Minute

type TripHandler struct {
	planner *trip.Planner
}

func NewTripHandler(planner *trip.Planner) *TripHandler {
	return &TripHandler{planner: planner}
}

type planReq struct {
	Locations []string     `json:"locations"`
	StartDate string       `json:"start_date"`
	EndDate   string       `json:"end_date"`
	Places    []trip.Place `json:"places,omitempty"`
	AutoMode  bool         `json:"auto_mode"`
}

type planResp struct {
	Itinerary *trip.Itinerary `json:"itinerary"`
}

// Plan handles POST /api/trips/plan.
func (h *TripHandler) Plan(c *gin.Context) {
	var req planReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid start_date, want YYYY-MM-DD")
		return
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid end_date, want YYYY-MM-DD")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), planTimeout)
	defer cancel()

	itin, err := h.planner.Generate(ctx, trip.PlanRequest{
		Locations: req.Locations,
		StartDate: start,
		EndDate:   end,
		Places:    req.Places,
		AutoMode:  req.AutoMode,
	}, func(provider string) {
		log.Info().Str("provider", provider).Msg("trying provider")
	})
	if err != nil {
		writePipelineError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, planResp{Itinerary: itin})
}
