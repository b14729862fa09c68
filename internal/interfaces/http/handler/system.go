package handler

import (
	"github.com/crm/backend/internal/domain/crm"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/crm/backend/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
)

// SystemHandler serves the service root, schema export, and the connectivity
// diagnostic. The diagnostic reports store failures in its body instead of
// propagating them, so the check itself never fails.
type SystemHandler struct {
	BaseHandler
	store shared.Store
	mongo *config.MongoConfig
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(store shared.Store, mongo *config.MongoConfig) *SystemHandler {
	return &SystemHandler{store: store, mongo: mongo}
}

// RegisterRoutes registers the system routes at the engine root
func (h *SystemHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/", h.Root)
	r.GET("/schema", h.Schema)
	r.GET("/test", h.Test)
}

// Root reports that the service is up.
func (h *SystemHandler) Root(c *gin.Context) {
	h.Success(c, gin.H{"message": "CRM Backend Running"})
}

// Schema exports the collection names so UI tools can discover them.
func (h *SystemHandler) Schema(c *gin.Context) {
	h.Success(c, gin.H{"collections": crm.Collections()})
}

// Test probes the store and reports connectivity flags. Always 200.
func (h *SystemHandler) Test(c *gin.Context) {
	response := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      flag(h.mongo.URI != ""),
		"database_name":     flag(h.mongo.Database != ""),
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if h.mongo.Configured() {
		ctx := c.Request.Context()
		if err := h.store.Ping(ctx); err != nil {
			response["database"] = "❌ Error: " + truncate(err.Error(), 50)
		} else {
			response["connection_status"] = "Connected"
			response["database"] = "✅ Connected & Working"
			if names, err := h.store.Collections(ctx); err == nil {
				if len(names) > 10 {
					names = names[:10]
				}
				response["collections"] = names
			}
		}
	}

	h.Success(c, response)
}

func flag(set bool) string {
	if set {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
