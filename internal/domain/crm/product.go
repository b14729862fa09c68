package crm

import "github.com/crm/backend/internal/domain/shared"

// Product is reference-only: the schema ships with the system and its
// collection is reported by the schema endpoint, but no handler serves it.
type Product struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"gte=0"`
	Category    string  `json:"category" binding:"required"`
	InStock     *bool   `json:"in_stock"`
}

// ApplyDefaults fills schema defaults for fields the payload omitted.
func (p *Product) ApplyDefaults() {}

// Document renders the product as a store document.
func (p Product) Document() shared.Document {
	doc := shared.Document{
		"title":    p.Title,
		"price":    p.Price,
		"category": p.Category,
		"in_stock": boolOrDefault(p.InStock, true),
	}
	putString(doc, "description", p.Description)
	return doc
}
