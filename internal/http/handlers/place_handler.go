// README: Place discovery/enrichment/nearby handlers.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tripgen/internal/modules/trip"
)

// placeTimeout covers one pipeline run through the full fallback chain.
const placeTimeout = 4 * time.Minute

type PlaceHandler struct {
	places *trip.Service
}

func NewPlaceHandler(places *trip.Service) *PlaceHandler {
	return &PlaceHandler{places: places}
}

type discoverReq struct {
	Destination string `json:"destination"`
}

type placesResp struct {
	Places []trip.Place `json:"places"`
}

// Discover handles POST /api/places/discover.
func (h *PlaceHandler) Discover(c *gin.Context) {
	var req discoverReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), placeTimeout)
	defer cancel()

	places, err := h.places.Discover(ctx, req.Destination, nil)
	if err != nil {
		writePipelineError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, placesResp{Places: places})
}

type enrichReq struct {
	Name        string `json:"name"`
	Destination string `json:"destination"`
}

// Enrich handles POST /api/places/enrich.
func (h *PlaceHandler) Enrich(c *gin.Context) {
	var req enrichReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), placeTimeout)
	defer cancel()

	place, err := h.places.Enrich(ctx, req.Name, req.Destination, nil)
	if err != nil {
		writePipelineError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"place": place})
}

type nearbyReq struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// Nearby handles POST /api/places/nearby.
func (h *PlaceHandler) Nearby(c *gin.Context) {
	var req nearbyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), placeTimeout)
	defer cancel()

	places, err := h.places.Nearby(ctx, req.Name, req.Lat, req.Lng, nil)
	if err != nil {
		writePipelineError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, placesResp{Places: places})
}
