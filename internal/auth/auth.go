// Package auth issues and verifies dashboard sessions. Handlers never see
// credentials; they only receive the Session issued here.
package auth

import (
	"crypto/subtle"
	"time"

	"github.com/google/uuid"

	"fraudmatrix/internal/models"
)

// SharedSubject is the subject recorded for password logins, which carry
// no user identity.
const SharedSubject = "shared"

// Issuer creates sessions with a fixed lifetime.
type Issuer struct {
	ttl time.Duration
	now func() time.Time
}

// NewIssuer creates an issuer for sessions lasting ttl.
func NewIssuer(ttl time.Duration) *Issuer {
	return &Issuer{ttl: ttl, now: time.Now}
}

// Issue creates a new session for subject.
func (i *Issuer) Issue(subject, method string) *models.Session {
	now := i.now()
	return &models.Session{
		ID:        uuid.New(),
		Subject:   subject,
		Method:    method,
		IssuedAt:  now,
		ExpiresAt: now.Add(i.ttl),
	}
}

// PasswordAuthenticator checks a submitted password against the shared one.
type PasswordAuthenticator struct {
	password []byte
	issuer   *Issuer
}

// NewPasswordAuthenticator creates an authenticator for the shared password.
// An empty password disables password login.
func NewPasswordAuthenticator(password string, issuer *Issuer) *PasswordAuthenticator {
	return &PasswordAuthenticator{password: []byte(password), issuer: issuer}
}

// Enabled reports whether a shared password is configured.
func (a *PasswordAuthenticator) Enabled() bool {
	return len(a.password) > 0
}

// Authenticate returns a new session if password matches.
func (a *PasswordAuthenticator) Authenticate(password string) (*models.Session, error) {
	if !a.Enabled() {
		return nil, ErrAuthDisabled
	}
	if subtle.ConstantTimeCompare([]byte(password), a.password) != 1 {
		return nil, ErrInvalidCredentials
	}
	return a.issuer.Issue(SharedSubject, models.AuthMethodPassword), nil
}
