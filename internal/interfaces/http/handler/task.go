package handler

import (
	"time"

	"github.com/crm/backend/internal/domain/crm"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/gin-gonic/gin"
)

// TaskHandler handles task CRUD endpoints
type TaskHandler struct {
	BaseHandler
	store shared.Store
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(store shared.Store) *TaskHandler {
	return &TaskHandler{store: store}
}

// RegisterRoutes registers the task routes
func (h *TaskHandler) RegisterRoutes(rg *gin.RouterGroup) {
	tasks := rg.Group("/tasks")
	tasks.POST("", h.Create)
	tasks.GET("", h.List)
	tasks.PATCH("/:id", h.Update)
}

// Create validates the payload against the task schema and inserts it.
// Type defaults to "follow-up" and priority to "medium" when omitted.
func (h *TaskHandler) Create(c *gin.Context) {
	var payload crm.Task
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.BindingError(c, err)
		return
	}
	payload.ApplyDefaults()

	id, err := h.store.Insert(c.Request.Context(), crm.CollectionTask, payload.Document())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, gin.H{"_id": id})
}

// List returns tasks filtered by owner and due date. The due parameter keeps
// only tasks whose due_date falls on or before the given instant.
func (h *TaskHandler) List(c *gin.Context) {
	limit, err := parseLimit(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	filter := shared.Document{}
	if ownerID := c.Query("owner_id"); ownerID != "" {
		filter["owner_id"] = ownerID
	}
	if due := c.Query("due"); due != "" {
		cutoff, err := parseDue(due)
		if err != nil {
			h.BadRequest(c, "due must be an RFC 3339 timestamp or a YYYY-MM-DD date")
			return
		}
		filter["due_date"] = shared.Document{"$lte": cutoff}
	}

	docs, err := h.store.Find(c.Request.Context(), crm.CollectionTask, filter, shared.FindOptions{Limit: limit})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, emptyIfNil(docs))
}

// Update overlays the provided fields onto an existing task.
func (h *TaskHandler) Update(c *gin.Context) {
	var payload crm.TaskUpdate
	if err := decodeStrict(c, &payload); err != nil {
		h.BindingError(c, err)
		return
	}

	fields := payload.Fields()
	if len(fields) == 0 {
		h.BadRequest(c, "No recognized fields to update")
		return
	}

	if err := h.store.UpdateByID(c.Request.Context(), crm.CollectionTask, c.Param("id"), fields); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, gin.H{"updated": true})
}

// parseDue accepts either a full timestamp or a bare date. A bare date is
// treated as end of that day in UTC so "due today" includes the whole day.
func parseDue(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, err
	}
	return t.Add(24*time.Hour - time.Nanosecond).UTC(), nil
}
