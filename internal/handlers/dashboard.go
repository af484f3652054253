package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hireline/applicant-tracking-api/internal/services"
)

type DashboardHandler struct {
	dashboard *services.DashboardService
}

func NewDashboardHandler(dashboard *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Summary returns the headline dashboard counts. With ?cache=true, a result
// computed within the last 30 seconds is reused and flagged.
func (h *DashboardHandler) Summary(c *gin.Context) {
	useCache := c.Query("cache") == "true"
	entry, fromCache, err := h.dashboard.Summary(c.Request.Context(), useCache)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	body := gin.H{
		"data":    entry.Data,
		"cacheAt": entry.CachedAt,
		"exp":     entry.ExpiresAt,
	}
	if fromCache {
		body["form"] = "cache"
	}
	c.JSON(http.StatusOK, body)
}

// StatusSummary returns per-status application counts plus completed
// interviews, with the same opt-in cache.
func (h *DashboardHandler) StatusSummary(c *gin.Context) {
	useCache := c.Query("cache") == "true"
	entry, fromCache, err := h.dashboard.StatusCounts(c.Request.Context(), useCache)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	body := gin.H{
		"data":    entry.Data,
		"cacheAt": entry.CachedAt,
		"exp":     entry.ExpiresAt,
	}
	if fromCache {
		body["form"] = "cache"
	}
	c.JSON(http.StatusOK, body)
}
