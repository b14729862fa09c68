package handler

import (
	"github.com/crm/backend/internal/domain/crm"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/gin-gonic/gin"
)

// ActivityHandler handles activity endpoints. Activities are append-only
// timeline entries, so there is no update route.
type ActivityHandler struct {
	BaseHandler
	store shared.Store
}

// NewActivityHandler creates a new ActivityHandler
func NewActivityHandler(store shared.Store) *ActivityHandler {
	return &ActivityHandler{store: store}
}

// RegisterRoutes registers the activity routes
func (h *ActivityHandler) RegisterRoutes(rg *gin.RouterGroup) {
	activities := rg.Group("/activities")
	activities.POST("", h.Create)
	activities.GET("", h.List)
}

// Create validates the payload against the activity schema and inserts it.
// Type defaults to "note" when omitted.
func (h *ActivityHandler) Create(c *gin.Context) {
	var payload crm.Activity
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.BindingError(c, err)
		return
	}
	payload.ApplyDefaults()

	id, err := h.store.Insert(c.Request.Context(), crm.CollectionActivity, payload.Document())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, gin.H{"_id": id})
}

// List returns activities filtered by the record they relate to.
func (h *ActivityHandler) List(c *gin.Context) {
	limit, err := parseLimit(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	filter := shared.Document{}
	if relatedType := c.Query("related_type"); relatedType != "" {
		filter["related_type"] = relatedType
	}
	if relatedID := c.Query("related_id"); relatedID != "" {
		filter["related_id"] = relatedID
	}

	docs, err := h.store.Find(c.Request.Context(), crm.CollectionActivity, filter, shared.FindOptions{Limit: limit})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, emptyIfNil(docs))
}
