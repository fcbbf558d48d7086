package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Portal roles. Role decides which page groups a session may reach.
const (
	RoleAdmin       = "admin"
	RoleBulkUser    = "bulk_user"
	RolePrivateUser = "private_user"
)

// Profile matches the profiles table defined in migrations.
// ClientLink is the organization name used to scope a non-admin
// user's visible rows.
type Profile struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	ClientLink   string     `json:"client_link"`
	FullName     string     `json:"full_name"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
}

func (p *Profile) Prepare() {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	p.FullName = strings.TrimSpace(p.FullName)
	p.ClientLink = strings.TrimSpace(p.ClientLink)
}
