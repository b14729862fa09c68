package handler

import (
	"github.com/crm/backend/internal/application/dashboard"
	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the aggregate dashboard snapshot
type DashboardHandler struct {
	BaseHandler
	service *dashboard.Service
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(service *dashboard.Service) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// RegisterRoutes registers the dashboard routes
func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.Snapshot)
}

// Snapshot returns the dashboard metrics, optionally scoped to one owner.
func (h *DashboardHandler) Snapshot(c *gin.Context) {
	snapshot, err := h.service.Snapshot(c.Request.Context(), dashboard.Filter{
		OwnerID: c.Query("owner_id"),
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, snapshot)
}
