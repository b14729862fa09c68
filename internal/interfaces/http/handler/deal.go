package handler

import (
	"github.com/crm/backend/internal/domain/crm"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/gin-gonic/gin"
)

// DealHandler handles deal CRUD endpoints
type DealHandler struct {
	BaseHandler
	store shared.Store
}

// NewDealHandler creates a new DealHandler
func NewDealHandler(store shared.Store) *DealHandler {
	return &DealHandler{store: store}
}

// RegisterRoutes registers the deal routes
func (h *DealHandler) RegisterRoutes(rg *gin.RouterGroup) {
	deals := rg.Group("/deals")
	deals.POST("", h.Create)
	deals.GET("", h.List)
	deals.PATCH("/:id", h.Update)
}

// Create validates the payload against the deal schema and inserts it.
// Stage defaults to "prospecting" when omitted.
func (h *DealHandler) Create(c *gin.Context) {
	var payload crm.Deal
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.BindingError(c, err)
		return
	}
	payload.ApplyDefaults()

	id, err := h.store.Insert(c.Request.Context(), crm.CollectionDeal, payload.Document())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, gin.H{"_id": id})
}

// List returns deals filtered by stage and free-text search on the title.
func (h *DealHandler) List(c *gin.Context) {
	limit, err := parseLimit(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	filter := shared.Document{}
	if stage := c.Query("stage"); stage != "" {
		filter["stage"] = stage
	}
	if q := c.Query("q"); q != "" {
		filter["title"] = containsCI(q)
	}

	docs, err := h.store.Find(c.Request.Context(), crm.CollectionDeal, filter, shared.FindOptions{Limit: limit})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, emptyIfNil(docs))
}

// Update overlays the provided fields onto an existing deal.
func (h *DealHandler) Update(c *gin.Context) {
	var payload crm.DealUpdate
	if err := decodeStrict(c, &payload); err != nil {
		h.BindingError(c, err)
		return
	}

	fields := payload.Fields()
	if len(fields) == 0 {
		h.BadRequest(c, "No recognized fields to update")
		return
	}

	if err := h.store.UpdateByID(c.Request.Context(), crm.CollectionDeal, c.Param("id"), fields); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, gin.H{"updated": true})
}
