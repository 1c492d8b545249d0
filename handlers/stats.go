package handlers

import (
	"net/http"

	"github.com/vikash1kr1209/bireenamedico/services/stats"

	"github.com/gin-gonic/gin"
)

// StatsHandler exposes the dashboard statistics.
type StatsHandler struct {
	Stats stats.StatsAggregator
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(agg stats.StatsAggregator) *StatsHandler {
	return &StatsHandler{Stats: agg}
}

// GetStatsHandler handles GET /api/admin/stats. Counts are recomputed on
// every request.
func (h *StatsHandler) GetStatsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Stats.Summary())
}
