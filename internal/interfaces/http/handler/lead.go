package handler

import (
	"github.com/crm/backend/internal/domain/crm"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/gin-gonic/gin"
)

// LeadHandler handles lead CRUD endpoints
type LeadHandler struct {
	BaseHandler
	store shared.Store
}

// NewLeadHandler creates a new LeadHandler
func NewLeadHandler(store shared.Store) *LeadHandler {
	return &LeadHandler{store: store}
}

// RegisterRoutes registers the lead routes
func (h *LeadHandler) RegisterRoutes(rg *gin.RouterGroup) {
	leads := rg.Group("/leads")
	leads.POST("", h.Create)
	leads.GET("", h.List)
	leads.PATCH("/:id", h.Update)
}

// Create validates the payload against the lead schema and inserts it.
func (h *LeadHandler) Create(c *gin.Context) {
	var payload crm.Lead
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.BindingError(c, err)
		return
	}
	payload.ApplyDefaults()

	id, err := h.store.Insert(c.Request.Context(), crm.CollectionLead, payload.Document())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, gin.H{"_id": id})
}

// List returns leads filtered by status and free-text search. The q term is
// matched case-insensitively against name, email, and phone.
func (h *LeadHandler) List(c *gin.Context) {
	limit, err := parseLimit(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	filter := shared.Document{}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}
	if q := c.Query("q"); q != "" {
		filter["$or"] = []shared.Document{
			{"name": containsCI(q)},
			{"email": containsCI(q)},
			{"phone": containsCI(q)},
		}
	}

	docs, err := h.store.Find(c.Request.Context(), crm.CollectionLead, filter, shared.FindOptions{Limit: limit})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, emptyIfNil(docs))
}

// Update overlays the provided fields onto an existing lead.
func (h *LeadHandler) Update(c *gin.Context) {
	var payload crm.LeadUpdate
	if err := decodeStrict(c, &payload); err != nil {
		h.BindingError(c, err)
		return
	}

	fields := payload.Fields()
	if len(fields) == 0 {
		h.BadRequest(c, "No recognized fields to update")
		return
	}

	if err := h.store.UpdateByID(c.Request.Context(), crm.CollectionLead, c.Param("id"), fields); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, gin.H{"updated": true})
}
