package handlers

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"
	"golang.org/x/oauth2"

	"fraudmatrix/internal/auth"
	"fraudmatrix/internal/config"
	"fraudmatrix/internal/metrics"
	"fraudmatrix/internal/models"
)

// OIDCHandler handles single sign-on flows. The identity provider replaces
// the shared password; a successful callback issues the same dashboard
// session as a password login.
type OIDCHandler struct {
	provider     *oidc.Provider
	oauth2Config oauth2.Config
	verifier     *oidc.IDTokenVerifier
	issuer       *auth.Issuer
	cfg          *config.Config
}

// NewOIDCHandler creates a new OIDC handler.
func NewOIDCHandler(ctx context.Context, cfg *config.Config, issuer *auth.Issuer) (*OIDCHandler, error) {
	provider, err := oidc.NewProvider(ctx, cfg.OIDCIssuer)
	if err != nil {
		return nil, err
	}

	oauth2Config := oauth2.Config{
		ClientID:     cfg.OIDCClientID,
		ClientSecret: cfg.OIDCClientSecret,
		RedirectURL:  cfg.OIDCRedirectURL,
		Endpoint:     provider.Endpoint(),
		Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
	}

	verifier := provider.Verifier(&oidc.Config{ClientID: cfg.OIDCClientID})

	return &OIDCHandler{
		provider:     provider,
		oauth2Config: oauth2Config,
		verifier:     verifier,
		issuer:       issuer,
		cfg:          cfg,
	}, nil
}

// Login initiates the OIDC login flow.
func (h *OIDCHandler) Login(c fiber.Ctx) error {
	state, err := generateState()
	if err != nil {
		return fmt.Errorf("failed to generate oauth state: %w", err)
	}

	sess := session.FromContext(c)
	if sess == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session not available")
	}
	sess.Set("oauth_state", state)

	return c.Redirect().To(h.oauth2Config.AuthCodeURL(state))
}

// Callback handles the OIDC callback after authentication.
func (h *OIDCHandler) Callback(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session not available")
	}

	// Verify state
	savedState, _ := sess.Get("oauth_state").(string)
	if savedState == "" || savedState != c.Query("state") {
		metrics.RecordLogin(models.AuthMethodOIDC, metrics.OutcomeRejected)
		return fiber.NewError(fiber.StatusBadRequest, "invalid state")
	}
	sess.Delete("oauth_state")

	oauth2Token, err := h.oauth2Config.Exchange(c.Context(), c.Query("code"))
	if err != nil {
		metrics.RecordLogin(models.AuthMethodOIDC, metrics.OutcomeFailure)
		return fiber.NewError(fiber.StatusBadRequest, "failed to exchange code")
	}

	rawIDToken, ok := oauth2Token.Extra("id_token").(string)
	if !ok {
		metrics.RecordLogin(models.AuthMethodOIDC, metrics.OutcomeFailure)
		return fiber.NewError(fiber.StatusBadRequest, "missing id_token")
	}

	idToken, err := h.verifier.Verify(c.Context(), rawIDToken)
	if err != nil {
		metrics.RecordLogin(models.AuthMethodOIDC, metrics.OutcomeFailure)
		return fiber.NewError(fiber.StatusBadRequest, "invalid id_token")
	}

	var claims struct {
		Email string `json:"email"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return err
	}

	subject := claims.Email
	if subject == "" {
		subject = idToken.Subject
	}
	if h.cfg.IsDev() {
		log.Printf("OIDC login for subject %q", subject)
	}

	redirectURL := popRedirect(sess)
	s := h.issuer.Issue(subject, models.AuthMethodOIDC)
	if err := auth.Save(sess, s); err != nil {
		return err
	}
	metrics.RecordLogin(models.AuthMethodOIDC, metrics.OutcomeSuccess)

	return c.Redirect().To(redirectURL)
}

func generateState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
