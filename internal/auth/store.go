package auth

import (
	"time"

	"github.com/gofiber/fiber/v3/middleware/session"
	"github.com/google/uuid"

	"fraudmatrix/internal/models"
)

// Session keys. Values are stored as primitives so any storage backend can
// encode them.
const (
	keySessionID = "auth_session"
	keySubject   = "auth_subject"
	keyMethod    = "auth_method"
	keyIssuedAt  = "auth_issued_at"
	keyExpiresAt = "auth_expires_at"
)

// Save writes s into the request session and rotates the session ID.
func Save(sess *session.Middleware, s *models.Session) error {
	if err := sess.Regenerate(); err != nil {
		return err
	}
	sess.Set(keySessionID, s.ID.String())
	sess.Set(keySubject, s.Subject)
	sess.Set(keyMethod, s.Method)
	sess.Set(keyIssuedAt, s.IssuedAt.Unix())
	sess.Set(keyExpiresAt, s.ExpiresAt.Unix())
	return nil
}

// FromSession reads the dashboard session back. It returns ErrNoSession if
// nothing was stored and ErrSessionExpired if the TTL has passed.
func FromSession(sess *session.Middleware, now time.Time) (*models.Session, error) {
	if sess == nil {
		return nil, ErrNoSession
	}

	rawID, _ := sess.Get(keySessionID).(string)
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, ErrNoSession
	}

	subject, _ := sess.Get(keySubject).(string)
	method, _ := sess.Get(keyMethod).(string)
	issuedAt, _ := sess.Get(keyIssuedAt).(int64)
	expiresAt, _ := sess.Get(keyExpiresAt).(int64)

	s := &models.Session{
		ID:        id,
		Subject:   subject,
		Method:    method,
		IssuedAt:  time.Unix(issuedAt, 0),
		ExpiresAt: time.Unix(expiresAt, 0),
	}
	if !s.Valid(now) {
		return nil, ErrSessionExpired
	}
	return s, nil
}

// Expire drops the identity keys but keeps the session alive, so values
// set afterwards in the same request are still saved.
func Expire(sess *session.Middleware) {
	if sess == nil {
		return
	}
	for _, key := range []string{keySessionID, keySubject, keyMethod, keyIssuedAt, keyExpiresAt} {
		sess.Delete(key)
	}
}

// Clear removes the dashboard session.
func Clear(sess *session.Middleware) error {
	if sess == nil {
		return nil
	}
	return sess.Destroy()
}
