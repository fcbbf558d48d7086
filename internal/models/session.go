package models

import (
	"github.com/google/uuid"
)

// Session is the record stored in Redis per login, keyed by the JWT
// jti. It carries everything the page handlers need without touching
// Postgres on every request.
type Session struct {
	ProfileID  uuid.UUID `json:"profile_id"`
	Role       string    `json:"role"`
	ClientLink string    `json:"client_link"`
	FullName   string    `json:"full_name"`
}
