package crm

import "github.com/crm/backend/internal/domain/shared"

// User is a CRM operator: an admin, a manager, or a sales rep.
type User struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Role     string `json:"role" binding:"omitempty,oneof=admin manager rep"`
	Team     string `json:"team"`
	IsActive *bool  `json:"is_active"`
}

// ApplyDefaults fills schema defaults for fields the payload omitted.
func (u *User) ApplyDefaults() {
	if u.Role == "" {
		u.Role = "rep"
	}
}

// Document renders the user as a store document.
func (u User) Document() shared.Document {
	doc := shared.Document{
		"name":      u.Name,
		"email":     u.Email,
		"role":      u.Role,
		"is_active": boolOrDefault(u.IsActive, true),
	}
	putString(doc, "team", u.Team)
	return doc
}
