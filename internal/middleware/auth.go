package middleware

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"fraudmatrix/internal/auth"
	"fraudmatrix/internal/models"
)

// LocalsSession is the c.Locals key holding the *models.Session.
const LocalsSession = "session"

// AuthMiddleware gates routes on a dashboard session.
type AuthMiddleware struct {
	now func() time.Time
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware() *AuthMiddleware {
	return &AuthMiddleware{now: time.Now}
}

// RequireAuth ensures the request carries a valid dashboard session.
// Pages redirect to /login; API routes get a 401.
func (m *AuthMiddleware) RequireAuth(c fiber.Ctx) error {
	sess := session.FromContext(c)

	s, err := auth.FromSession(sess, m.now())
	if err != nil {
		if errors.Is(err, auth.ErrSessionExpired) {
			slog.Info("dashboard session expired", "ip", c.IP())
			auth.Expire(sess)
		}

		if isAPIRequest(c) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status": "error",
				"error":  "authentication required",
			})
		}

		if sess != nil && c.Method() == fiber.MethodGet {
			sess.Set("redirect_after_login", c.OriginalURL())
		}
		return c.Redirect().To("/login")
	}

	c.Locals(LocalsSession, s)
	return c.Next()
}

// OptionalAuth loads the session if present, but doesn't require it.
func (m *AuthMiddleware) OptionalAuth(c fiber.Ctx) error {
	if s, err := auth.FromSession(session.FromContext(c), m.now()); err == nil {
		c.Locals(LocalsSession, s)
	}
	return c.Next()
}

// CurrentSession returns the session placed by RequireAuth or OptionalAuth.
func CurrentSession(c fiber.Ctx) *models.Session {
	s, _ := c.Locals(LocalsSession).(*models.Session)
	return s
}

func isAPIRequest(c fiber.Ctx) bool {
	return strings.HasPrefix(c.Path(), "/api/")
}
