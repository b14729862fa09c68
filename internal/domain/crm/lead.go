package crm

import "github.com/crm/backend/internal/domain/shared"

// Lead is an unqualified prospect, tracked until it converts or is lost.
type Lead struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone"`
	Status  string `json:"status" binding:"omitempty,oneof=new contacted qualified lost"`
	Source  string `json:"source"`
	OwnerID string `json:"owner_id"`
	Score   *int   `json:"score" binding:"omitempty,gte=0,lte=100"`
	Notes   string `json:"notes"`
}

// ApplyDefaults fills schema defaults for fields the payload omitted.
func (l *Lead) ApplyDefaults() {
	if l.Status == "" {
		l.Status = "new"
	}
}

// Document renders the lead as a store document.
func (l Lead) Document() shared.Document {
	doc := shared.Document{
		"name":   l.Name,
		"status": l.Status,
	}
	putString(doc, "email", l.Email)
	putString(doc, "phone", l.Phone)
	putString(doc, "source", l.Source)
	putString(doc, "owner_id", l.OwnerID)
	putPtr(doc, "score", l.Score)
	putString(doc, "notes", l.Notes)
	return doc
}

// LeadUpdate is the typed partial-update payload for a lead. Every field is
// optional and only provided fields are overlaid onto the stored document;
// unknown fields are rejected at decode time.
type LeadUpdate struct {
	Name    *string `json:"name" binding:"omitempty,min=1"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Phone   *string `json:"phone"`
	Status  *string `json:"status" binding:"omitempty,oneof=new contacted qualified lost"`
	Source  *string `json:"source"`
	OwnerID *string `json:"owner_id"`
	Score   *int    `json:"score" binding:"omitempty,gte=0,lte=100"`
	Notes   *string `json:"notes"`
}

// Fields returns the provided fields as a store overlay document.
func (u LeadUpdate) Fields() shared.Document {
	doc := shared.Document{}
	putPtr(doc, "name", u.Name)
	putPtr(doc, "email", u.Email)
	putPtr(doc, "phone", u.Phone)
	putPtr(doc, "status", u.Status)
	putPtr(doc, "source", u.Source)
	putPtr(doc, "owner_id", u.OwnerID)
	putPtr(doc, "score", u.Score)
	putPtr(doc, "notes", u.Notes)
	return doc
}
