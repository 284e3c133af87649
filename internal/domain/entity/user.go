package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile is a staff account. Customers ordering from the storefront have no account.
type UserProfile struct {
	ID          uuid.UUID `json:"id"`           // The Global Unique Identifier (GUID) for the user.
	Email       string    `json:"email"`        // Login identifier.
	DisplayName string    `json:"display_name"` // Name shown in the console.
	Role        Role      `json:"role"`         // Admin or Volunteer.
	CreatedAt   time.Time `json:"created_at"`   // Timestamp of when this account was created.
	UpdatedAt   time.Time `json:"updated_at"`   // Timestamp of the last modification.
}

// Roles returns the role set carried in access tokens.
func (u *UserProfile) Roles() Roles {
	return u.Role.Grants()
}
