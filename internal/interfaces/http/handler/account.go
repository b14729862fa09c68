package handler

import (
	"github.com/crm/backend/internal/domain/crm"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/gin-gonic/gin"
)

// AccountHandler handles account endpoints
type AccountHandler struct {
	BaseHandler
	store shared.Store
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(store shared.Store) *AccountHandler {
	return &AccountHandler{store: store}
}

// RegisterRoutes registers the account routes
func (h *AccountHandler) RegisterRoutes(rg *gin.RouterGroup) {
	accounts := rg.Group("/accounts")
	accounts.POST("", h.Create)
	accounts.GET("", h.List)
}

// Create validates the payload against the account schema and inserts it.
func (h *AccountHandler) Create(c *gin.Context) {
	var payload crm.Account
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.BindingError(c, err)
		return
	}
	payload.ApplyDefaults()

	id, err := h.store.Insert(c.Request.Context(), crm.CollectionAccount, payload.Document())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, gin.H{"_id": id})
}

// List returns accounts filtered by industry and free-text search on the name.
func (h *AccountHandler) List(c *gin.Context) {
	limit, err := parseLimit(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	filter := shared.Document{}
	if industry := c.Query("industry"); industry != "" {
		filter["industry"] = industry
	}
	if q := c.Query("q"); q != "" {
		filter["name"] = containsCI(q)
	}

	docs, err := h.store.Find(c.Request.Context(), crm.CollectionAccount, filter, shared.FindOptions{Limit: limit})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, emptyIfNil(docs))
}
