package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"fraudmatrix/internal/auth"
	"fraudmatrix/internal/config"
	"fraudmatrix/internal/metrics"
	"fraudmatrix/internal/middleware"
	"fraudmatrix/internal/models"
	"fraudmatrix/internal/validation"
)

// AuthHandler handles the shared-password login and logout.
type AuthHandler struct {
	authenticator *auth.PasswordAuthenticator
	cfg           *config.Config
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authenticator *auth.PasswordAuthenticator, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authenticator: authenticator, cfg: cfg}
}

// Show renders the login page. Signed-in users go straight to the dashboard.
func (h *AuthHandler) Show(c fiber.Ctx) error {
	if middleware.CurrentSession(c) != nil {
		return c.Redirect().To("/")
	}
	return h.render(c, fiber.StatusOK, "")
}

// Login checks the submitted password and issues a dashboard session.
func (h *AuthHandler) Login(c fiber.Ctx) error {
	if !h.authenticator.Enabled() {
		return fiber.NewError(fiber.StatusNotFound, "password login is disabled")
	}

	password := c.FormValue("password")
	if valid, msg := validation.ValidatePassword(password); !valid {
		metrics.RecordLogin(models.AuthMethodPassword, metrics.OutcomeRejected)
		return h.render(c, fiber.StatusBadRequest, msg)
	}

	s, err := h.authenticator.Authenticate(password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			metrics.RecordLogin(models.AuthMethodPassword, metrics.OutcomeFailure)
			slog.Warn("dashboard login failed", "ip", c.IP())
			return h.render(c, fiber.StatusUnauthorized, "Password incorrect. Please try again.")
		}
		return err
	}

	sess := session.FromContext(c)
	if sess == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session not available")
	}

	redirectURL := popRedirect(sess)
	if err := auth.Save(sess, s); err != nil {
		return err
	}

	metrics.RecordLogin(models.AuthMethodPassword, metrics.OutcomeSuccess)
	slog.Info("dashboard login", "session", s.ID, "method", s.Method, "ip", c.IP())

	return c.Redirect().To(redirectURL)
}

// Logout clears the dashboard session.
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	if err := auth.Clear(session.FromContext(c)); err != nil {
		slog.Error("failed to clear session", "error", err)
	}
	return c.Redirect().To("/login")
}

func (h *AuthHandler) render(c fiber.Ctx, status int, errMsg string) error {
	return c.Status(status).Render("login", MergeBranding(fiber.Map{
		"Title":           "Sign in",
		"PasswordEnabled": h.authenticator.Enabled(),
		"OIDCEnabled":     h.cfg.IsOIDCEnabled(),
		"Error":           errMsg,
	}, h.cfg))
}

// popRedirect returns the page the user asked for before being sent to the
// login page, or "/". Only local paths are honoured.
func popRedirect(sess *session.Middleware) string {
	redirectURL := "/"
	if saved, ok := sess.Get("redirect_after_login").(string); ok && isLocalPath(saved) {
		redirectURL = saved
	}
	sess.Delete("redirect_after_login")
	return redirectURL
}

func isLocalPath(p string) bool {
	return len(p) > 0 && p[0] == '/' && (len(p) == 1 || (p[1] != '/' && p[1] != '\\'))
}
