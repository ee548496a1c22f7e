package server

import (
	"context"
	"errors"
	"log"

	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fraudmatrix/internal/auth"
	"fraudmatrix/internal/handlers"
	"fraudmatrix/internal/handlers/api"
	"fraudmatrix/internal/metrics"
	"fraudmatrix/internal/middleware"
	"fraudmatrix/internal/scenarios"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(ctx context.Context, store *scenarios.Store) error {
	metrics.Init(store, s.Cfg.Matrix.BusinessValues, s.Cfg.Matrix.Feasibilities)

	issuer := auth.NewIssuer(s.Cfg.SessionTTL)
	authenticator := auth.NewPasswordAuthenticator(s.Cfg.DashboardPassword, issuer)

	if !s.Cfg.IsPasswordEnabled() && !s.Cfg.IsOIDCEnabled() {
		return errors.New("no sign-in method configured: set DASHBOARD_PASSWORD or OIDC_ISSUER")
	}

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authenticator, s.Cfg)
	dashboardHandler := handlers.NewDashboardHandler(store, s.Cfg)
	probeHandler := handlers.NewProbeHandler(store)
	matrixAPI := api.NewMatrixHandler(store, s.Cfg)

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Auth routes
	s.App.Get("/login", authMiddleware.OptionalAuth, authHandler.Show)
	s.App.Post("/login", authHandler.Login)
	s.App.Post("/logout", authHandler.Logout)

	if s.Cfg.IsOIDCEnabled() {
		oidcHandler, err := handlers.NewOIDCHandler(ctx, s.Cfg, issuer)
		if err != nil {
			return err
		}
		s.App.Get("/auth/login", oidcHandler.Login)
		s.App.Get("/auth/callback", oidcHandler.Callback)
	} else {
		log.Println("OIDC sign-on is disabled. Set OIDC_ISSUER to enable.")
	}

	// Dashboard
	s.App.Get("/", authMiddleware.RequireAuth, dashboardHandler.Index)
	s.App.Get("/quadrants/:key", authMiddleware.RequireAuth, dashboardHandler.Quadrant)

	// JSON API
	v1 := s.App.Group("/api/v1", authMiddleware.RequireAuth)
	v1.Get("/matrix", matrixAPI.Matrix)
	v1.Get("/quadrants/:key", matrixAPI.Quadrant)
	v1.Get("/summary", matrixAPI.Summary)

	return nil
}
