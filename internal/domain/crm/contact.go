package crm

import "github.com/crm/backend/internal/domain/shared"

// Contact is a person attached to an account.
type Contact struct {
	FirstName string   `json:"first_name" binding:"required"`
	LastName  string   `json:"last_name"`
	Email     string   `json:"email" binding:"omitempty,email"`
	Phone     string   `json:"phone"`
	AccountID string   `json:"account_id"`
	Title     string   `json:"title"`
	Tags      []string `json:"tags"`
}

// ApplyDefaults fills schema defaults for fields the payload omitted.
func (c *Contact) ApplyDefaults() {}

// Document renders the contact as a store document.
func (c Contact) Document() shared.Document {
	doc := shared.Document{
		"first_name": c.FirstName,
		"tags":       tagList(c.Tags),
	}
	putString(doc, "last_name", c.LastName)
	putString(doc, "email", c.Email)
	putString(doc, "phone", c.Phone)
	putString(doc, "account_id", c.AccountID)
	putString(doc, "title", c.Title)
	return doc
}
