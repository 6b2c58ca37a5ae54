package models

import (
	"time"

	"github.com/google/uuid"
)

// Role constants
const (
	RoleUser     = "user"
	RoleBusiness = "business"
	RoleAdmin    = "admin"
)

// Profile represents a user authenticated via OIDC.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	Sub       string    `json:"sub"` // OIDC subject identifier
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	AvatarURL string    `json:"avatar_url"`
	Role      string    `json:"role"` // user, business, admin
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsAdmin returns true if the profile has the admin role.
func (p *Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// IsBusiness returns true if the profile belongs to a business owner.
func (p *Profile) IsBusiness() bool {
	return p.Role == RoleBusiness
}

// DisplayName returns the full name, falling back to the email address.
func (p *Profile) DisplayName() string {
	if p.FullName != "" {
		return p.FullName
	}
	return p.Email
}
