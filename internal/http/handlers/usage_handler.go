// README: Provider-call accounting handler.
package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"tripgen/internal/modules/usage"
)

type UsageHandler struct {
	usage *usage.Service
}

func NewUsageHandler(svc *usage.Service) *UsageHandler {
	return &UsageHandler{usage: svc}
}

// Stats handles GET /api/usage/stats?hours=24.
func (h *UsageHandler) Stats(c *gin.Context) {
	hours := 24
	if v := c.Query("hours"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(c, http.StatusBadRequest, "invalid hours")
			return
		}
		hours = n
	}

	since := time.Now().Add(-time.Duration(hours) * time.Hour)
	stats, err := h.usage.ProviderStats(c.Request.Context(), since)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"since": since.UTC().Format(time.RFC3339), "calls": stats})
}
