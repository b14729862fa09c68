package crm

import "github.com/crm/backend/internal/domain/shared"

// Activity is a timeline entry recorded against another record.
type Activity struct {
	Subject     string `json:"subject" binding:"required"`
	Type        string `json:"type" binding:"omitempty,oneof=note call email meeting status-change"`
	UserID      string `json:"user_id"`
	RelatedType string `json:"related_type" binding:"omitempty,oneof=lead contact deal account"`
	RelatedID   string `json:"related_id"`
	Details     string `json:"details"`
}

// ApplyDefaults fills schema defaults for fields the payload omitted.
func (a *Activity) ApplyDefaults() {
	if a.Type == "" {
		a.Type = "note"
	}
}

// Document renders the activity as a store document.
func (a Activity) Document() shared.Document {
	doc := shared.Document{
		"subject": a.Subject,
		"type":    a.Type,
	}
	putString(doc, "user_id", a.UserID)
	putString(doc, "related_type", a.RelatedType)
	putString(doc, "related_id", a.RelatedID)
	putString(doc, "details", a.Details)
	return doc
}
