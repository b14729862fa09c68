package handler

import (
	"github.com/crm/backend/internal/domain/crm"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/gin-gonic/gin"
)

// UserHandler handles user endpoints
type UserHandler struct {
	BaseHandler
	store shared.Store
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(store shared.Store) *UserHandler {
	return &UserHandler{store: store}
}

// RegisterRoutes registers the user routes
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.POST("", h.Create)
	users.GET("", h.List)
}

// Create validates the payload against the user schema and inserts it.
// Role defaults to "rep" and is_active to true when omitted.
func (h *UserHandler) Create(c *gin.Context) {
	var payload crm.User
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.BindingError(c, err)
		return
	}
	payload.ApplyDefaults()

	id, err := h.store.Insert(c.Request.Context(), crm.CollectionUser, payload.Document())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, gin.H{"_id": id})
}

// List returns users filtered by role and team.
func (h *UserHandler) List(c *gin.Context) {
	limit, err := parseLimit(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	filter := shared.Document{}
	if role := c.Query("role"); role != "" {
		filter["role"] = role
	}
	if team := c.Query("team"); team != "" {
		filter["team"] = team
	}

	docs, err := h.store.Find(c.Request.Context(), crm.CollectionUser, filter, shared.FindOptions{Limit: limit})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, emptyIfNil(docs))
}
