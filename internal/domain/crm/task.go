package crm

import (
	"time"

	"github.com/crm/backend/internal/domain/shared"
)

// Task is a follow-up item owned by a user, optionally linked to another
// record via related_type/related_id.
type Task struct {
	Type        string     `json:"type" binding:"omitempty,oneof=call meeting follow-up email"`
	Title       string     `json:"title" binding:"required"`
	DueDate     *time.Time `json:"due_date"`
	Priority    string     `json:"priority" binding:"omitempty,oneof=low medium high"`
	OwnerID     string     `json:"owner_id"`
	RelatedType string     `json:"related_type" binding:"omitempty,oneof=lead contact deal account"`
	RelatedID   string     `json:"related_id"`
	Notes       string     `json:"notes"`
	Completed   bool       `json:"completed"`
}

// ApplyDefaults fills schema defaults for fields the payload omitted.
func (t *Task) ApplyDefaults() {
	if t.Type == "" {
		t.Type = "follow-up"
	}
	if t.Priority == "" {
		t.Priority = "medium"
	}
}

// Document renders the task as a store document.
func (t Task) Document() shared.Document {
	doc := shared.Document{
		"type":      t.Type,
		"title":     t.Title,
		"priority":  t.Priority,
		"completed": t.Completed,
	}
	putPtr(doc, "due_date", t.DueDate)
	putString(doc, "owner_id", t.OwnerID)
	putString(doc, "related_type", t.RelatedType)
	putString(doc, "related_id", t.RelatedID)
	putString(doc, "notes", t.Notes)
	return doc
}

// TaskUpdate is the typed partial-update payload for a task.
type TaskUpdate struct {
	Type        *string    `json:"type" binding:"omitempty,oneof=call meeting follow-up email"`
	Title       *string    `json:"title" binding:"omitempty,min=1"`
	DueDate     *time.Time `json:"due_date"`
	Priority    *string    `json:"priority" binding:"omitempty,oneof=low medium high"`
	OwnerID     *string    `json:"owner_id"`
	RelatedType *string    `json:"related_type" binding:"omitempty,oneof=lead contact deal account"`
	RelatedID   *string    `json:"related_id"`
	Notes       *string    `json:"notes"`
	Completed   *bool      `json:"completed"`
}

// Fields returns the provided fields as a store overlay document.
func (u TaskUpdate) Fields() shared.Document {
	doc := shared.Document{}
	putPtr(doc, "type", u.Type)
	putPtr(doc, "title", u.Title)
	putPtr(doc, "due_date", u.DueDate)
	putPtr(doc, "priority", u.Priority)
	putPtr(doc, "owner_id", u.OwnerID)
	putPtr(doc, "related_type", u.RelatedType)
	putPtr(doc, "related_id", u.RelatedID)
	putPtr(doc, "notes", u.Notes)
	putPtr(doc, "completed", u.Completed)
	return doc
}
