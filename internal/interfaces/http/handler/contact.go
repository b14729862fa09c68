package handler

import (
	"github.com/crm/backend/internal/domain/crm"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/gin-gonic/gin"
)

// ContactHandler handles contact endpoints
type ContactHandler struct {
	BaseHandler
	store shared.Store
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(store shared.Store) *ContactHandler {
	return &ContactHandler{store: store}
}

// RegisterRoutes registers the contact routes
func (h *ContactHandler) RegisterRoutes(rg *gin.RouterGroup) {
	contacts := rg.Group("/contacts")
	contacts.POST("", h.Create)
	contacts.GET("", h.List)
}

// Create validates the payload against the contact schema and inserts it.
func (h *ContactHandler) Create(c *gin.Context) {
	var payload crm.Contact
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.BindingError(c, err)
		return
	}
	payload.ApplyDefaults()

	id, err := h.store.Insert(c.Request.Context(), crm.CollectionContact, payload.Document())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, gin.H{"_id": id})
}

// List returns contacts filtered by account and free-text search. The q term
// is matched case-insensitively against first name, last name, and email.
func (h *ContactHandler) List(c *gin.Context) {
	limit, err := parseLimit(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	filter := shared.Document{}
	if accountID := c.Query("account_id"); accountID != "" {
		filter["account_id"] = accountID
	}
	if q := c.Query("q"); q != "" {
		filter["$or"] = []shared.Document{
			{"first_name": containsCI(q)},
			{"last_name": containsCI(q)},
			{"email": containsCI(q)},
		}
	}

	docs, err := h.store.Find(c.Request.Context(), crm.CollectionContact, filter, shared.FindOptions{Limit: limit})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, emptyIfNil(docs))
}
