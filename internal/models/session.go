package models

import (
	"time"

	"github.com/google/uuid"
)

// Authentication methods
const (
	AuthMethodPassword = "password"
	AuthMethodOIDC     = "oidc"
)

// Session is the token issued by the authenticator once a user has proven
// access to the dashboard.
type Session struct {
	ID        uuid.UUID `json:"id"`
	Subject   string    `json:"subject"`
	Method    string    `json:"method"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Valid reports whether the session is usable at the given time.
func (s *Session) Valid(now time.Time) bool {
	if s == nil || s.ID == uuid.Nil {
		return false
	}
	return now.Before(s.ExpiresAt)
}
