package crm

import (
	"time"

	"github.com/crm/backend/internal/domain/shared"
)

// Deal is an opportunity moving through the sales pipeline. Stage is
// free-text so teams can rename their pipeline without a schema change.
type Deal struct {
	Title       string     `json:"title" binding:"required"`
	AccountID   string     `json:"account_id"`
	ContactID   string     `json:"contact_id"`
	Value       float64    `json:"value" binding:"gte=0"`
	CloseDate   *time.Time `json:"close_date"`
	Stage       string     `json:"stage"`
	Probability *int       `json:"probability" binding:"omitempty,gte=0,lte=100"`
	LostReason  string     `json:"lost_reason"`
	OwnerID     string     `json:"owner_id"`
}

// ApplyDefaults fills schema defaults for fields the payload omitted.
func (d *Deal) ApplyDefaults() {
	if d.Stage == "" {
		d.Stage = "prospecting"
	}
}

// Document renders the deal as a store document.
func (d Deal) Document() shared.Document {
	doc := shared.Document{
		"title": d.Title,
		"value": d.Value,
		"stage": d.Stage,
	}
	putString(doc, "account_id", d.AccountID)
	putString(doc, "contact_id", d.ContactID)
	putPtr(doc, "close_date", d.CloseDate)
	putPtr(doc, "probability", d.Probability)
	putString(doc, "lost_reason", d.LostReason)
	putString(doc, "owner_id", d.OwnerID)
	return doc
}

// DealUpdate is the typed partial-update payload for a deal.
type DealUpdate struct {
	Title       *string    `json:"title" binding:"omitempty,min=1"`
	AccountID   *string    `json:"account_id"`
	ContactID   *string    `json:"contact_id"`
	Value       *float64   `json:"value" binding:"omitempty,gte=0"`
	CloseDate   *time.Time `json:"close_date"`
	Stage       *string    `json:"stage" binding:"omitempty,min=1"`
	Probability *int       `json:"probability" binding:"omitempty,gte=0,lte=100"`
	LostReason  *string    `json:"lost_reason"`
	OwnerID     *string    `json:"owner_id"`
}

// Fields returns the provided fields as a store overlay document.
func (u DealUpdate) Fields() shared.Document {
	doc := shared.Document{}
	putPtr(doc, "title", u.Title)
	putPtr(doc, "account_id", u.AccountID)
	putPtr(doc, "contact_id", u.ContactID)
	putPtr(doc, "value", u.Value)
	putPtr(doc, "close_date", u.CloseDate)
	putPtr(doc, "stage", u.Stage)
	putPtr(doc, "probability", u.Probability)
	putPtr(doc, "lost_reason", u.LostReason)
	putPtr(doc, "owner_id", u.OwnerID)
	return doc
}
