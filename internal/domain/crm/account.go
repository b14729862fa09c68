package crm

import "github.com/crm/backend/internal/domain/shared"

// Account is a company the CRM does business with.
type Account struct {
	Name     string   `json:"name" binding:"required"`
	Industry string   `json:"industry"`
	Size     string   `json:"size"`
	Region   string   `json:"region"`
	Tags     []string `json:"tags"`
}

// ApplyDefaults fills schema defaults for fields the payload omitted.
func (a *Account) ApplyDefaults() {}

// Document renders the account as a store document.
func (a Account) Document() shared.Document {
	doc := shared.Document{
		"name": a.Name,
		"tags": tagList(a.Tags),
	}
	putString(doc, "industry", a.Industry)
	putString(doc, "size", a.Size)
	putString(doc, "region", a.Region)
	return doc
}
