package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tommytoyou/bost-lawn-care/services"
)

type DashboardHandler struct {
	content *services.ContentStore
	now     func() time.Time
}

func NewDashboardHandler(content *services.ContentStore, now func() time.Time) *DashboardHandler {
	if now == nil {
		now = time.Now
	}
	return &DashboardHandler{content: content, now: now}
}

// GetDashboardOverview returns collection counts and the latest bookings.
func (h *DashboardHandler) GetDashboardOverview(c *gin.Context) {
	c.JSON(http.StatusOK, h.content.Overview(c.Request.Context(), h.now()))
}
