package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Dataset
	DataFile string // Path to the fraud framework CSV

	// TLS/mTLS
	TLSEnabled  bool
	TLSCertFile string
	TLSKeyFile  string
	TLSCAFile   string // CA for verifying client certs (mTLS)

	// Shared password gate. Empty disables password login.
	DashboardPassword string

	// OIDC (optional single sign-on)
	OIDCIssuer       string
	OIDCClientID     string
	OIDCClientSecret string
	OIDCRedirectURL  string

	// Session
	SessionSecret string        // Used for encrypting cookies
	SessionTTL    time.Duration // Lifetime of an issued dashboard session
	RedisURL      string        // Optional session storage, e.g. "redis://localhost:6379/0"

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// Rate limiting
	RateLimitMax int // Requests per minute per IP

	// Site Branding
	SiteTitle   string // env: SITE_TITLE, default: "Fraud Framework Priority Matrix"
	SiteTagline string // env: SITE_TAGLINE
	SiteFooter  string // env: SITE_FOOTER
	SiteLogoURL string // env: SITE_LOGO_URL, default: "" (no logo, text only)

	// Matrix holds optional overrides from the YAML config file.
	Matrix MatrixConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:               getEnv("ENV", "development"),
		ServerAddr:        getEnv("SERVER_ADDR", ":8501"),
		BaseURL:           getEnv("BASE_URL", "http://localhost:8501"),
		DataFile:          getEnv("DATA_FILE", "fraud_framework.csv"),
		TLSEnabled:        getEnv("TLS_ENABLED", "") != "",
		TLSCertFile:       getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:        getEnv("TLS_KEY_FILE", ""),
		TLSCAFile:         getEnv("TLS_CA_FILE", ""),
		DashboardPassword: getEnv("DASHBOARD_PASSWORD", ""),
		OIDCIssuer:        getEnv("OIDC_ISSUER", ""),
		OIDCClientID:      getEnv("OIDC_CLIENT_ID", ""),
		OIDCClientSecret:  getEnv("OIDC_CLIENT_SECRET", ""),
		OIDCRedirectURL:   getEnv("OIDC_REDIRECT_URL", "http://localhost:8501/auth/callback"),
		SessionSecret:     getEnv("SESSION_SECRET", "change-me-in-production-min-32-chars"),
		SessionTTL:        getDuration("SESSION_TTL", 8*time.Hour),
		RedisURL:          getEnv("REDIS_URL", ""),
		CORSOrigins:       getEnv("CORS_ORIGINS", ""),
		RateLimitMax:      getInt("RATE_LIMIT_MAX", 100),

		SiteTitle:   getEnv("SITE_TITLE", "Fraud Framework Priority Matrix"),
		SiteTagline: getEnv("SITE_TAGLINE", "Click on any quadrant to explore scenarios in detail"),
		SiteFooter:  getEnv("SITE_FOOTER", "Fraud Framework Priority Matrix"),
		SiteLogoURL: getEnv("SITE_LOGO_URL", ""),

		Matrix: DefaultMatrixConfig(),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// IsMTLSEnabled returns true if mTLS is configured with a CA file.
func (c *Config) IsMTLSEnabled() bool {
	return c.TLSEnabled && c.TLSCAFile != ""
}

// IsPasswordEnabled returns true if the shared password gate is configured.
func (c *Config) IsPasswordEnabled() bool {
	return c.DashboardPassword != ""
}

// IsOIDCEnabled returns true if single sign-on is configured.
func (c *Config) IsOIDCEnabled() bool {
	return c.OIDCIssuer != ""
}
