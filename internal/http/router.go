// README: HTTP router registration.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tripgen/internal/http/handlers"
	"tripgen/internal/http/middleware"
	"tripgen/internal/modules/trip"
	"tripgen/internal/modules/usage"
)

// ShutdownTimeout bounds graceful drain of in-flight requests.
const ShutdownTimeout = 15 * time.Second

func NewRouter(planner *trip.Planner, places *trip.Service, usageSvc *usage.Service) http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	tripHandler := handlers.NewTripHandler(planner)
	r.POST("/api/trips/plan", tripHandler.Plan)

	placeHandler := handlers.NewPlaceHandler(places)
	r.POST("/api/places/discover", placeHandler.Discover)
	r.POST("/api/places/nearby", placeHandler.Nearby)
	r.POST("/api/places/enrich", placeHandler.Enrich)

	usageHandler := handlers.NewUsageHandler(usageSvc)
	r.GET("/api/usage/stats", usageHandler.Stats)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
