package middleware

import (
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"fraudmatrix/internal/auth"
	"fraudmatrix/internal/models"
)

// newTestApp wires the session middleware, a login route that issues a
// session with the given ttl, and protected page and API routes.
func newTestApp(t *testing.T, ttl time.Duration) *fiber.App {
	t.Helper()

	app := fiber.New()
	sessionMiddleware, _ := session.NewWithStore(session.Config{
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
	app.Use(sessionMiddleware)

	issuer := auth.NewIssuer(ttl)
	app.Post("/login", func(c fiber.Ctx) error {
		if err := auth.Save(session.FromContext(c), issuer.Issue(auth.SharedSubject, models.AuthMethodPassword)); err != nil {
			return err
		}
		return c.SendString("ok")
	})

	m := NewAuthMiddleware()
	app.Get("/", m.RequireAuth, func(c fiber.Ctx) error {
		s := CurrentSession(c)
		if s == nil {
			return c.Status(500).SendString("no session in locals")
		}
		return c.SendString(s.Method)
	})
	app.Get("/api/v1/matrix", m.RequireAuth, func(c fiber.Ctx) error {
		return c.SendString("api")
	})
	app.Get("/redirect-target", func(c fiber.Ctx) error {
		target, _ := session.FromContext(c).Get("redirect_after_login").(string)
		return c.SendString(target)
	})
	app.Get("/login", m.OptionalAuth, func(c fiber.Ctx) error {
		if CurrentSession(c) != nil {
			return c.SendString("signed-in")
		}
		return c.SendString("anonymous")
	})

	return app
}

func login(t *testing.T, app *fiber.App) []*http.Cookie {
	t.Helper()
	req, _ := http.NewRequest(http.MethodPost, "/login", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("login: expected 200, got %d", resp.StatusCode)
	}
	return resp.Cookies()
}

func get(t *testing.T, app *fiber.App, path string, cookies []*http.Cookie) (*http.Response, string) {
	t.Helper()
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	body, _ := io.ReadAll(resp.Body)
	return resp, string(body)
}

func TestRequireAuth_RedirectsAnonymousPage(t *testing.T) {
	app := newTestApp(t, time.Hour)

	resp, _ := get(t, app, "/", nil)
	if resp.StatusCode != fiber.StatusSeeOther && resp.StatusCode != fiber.StatusFound {
		t.Fatalf("expected redirect, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/login" {
		t.Errorf("Location = %q, want /login", loc)
	}
}

func TestRequireAuth_APIUnauthorized(t *testing.T) {
	app := newTestApp(t, time.Hour)

	resp, body := get(t, app, "/api/v1/matrix", nil)
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", resp.StatusCode, body)
	}
}

func TestRequireAuth_AllowsSession(t *testing.T) {
	app := newTestApp(t, time.Hour)
	cookies := login(t, app)

	resp, body := get(t, app, "/", cookies)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, body)
	}
	if body != models.AuthMethodPassword {
		t.Errorf("body = %q, want %q", body, models.AuthMethodPassword)
	}
}

func TestRequireAuth_RejectsExpiredSession(t *testing.T) {
	app := newTestApp(t, -time.Minute)
	cookies := login(t, app)

	resp, _ := get(t, app, "/api/v1/matrix", cookies)
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("expected 401 for expired session, got %d", resp.StatusCode)
	}
}

func TestRequireAuth_ExpiredSessionKeepsDeepLink(t *testing.T) {
	app := newTestApp(t, -time.Minute)
	cookies := login(t, app)

	resp, _ := get(t, app, "/?quadrant=High-Low", cookies)
	if resp.StatusCode != fiber.StatusSeeOther && resp.StatusCode != fiber.StatusFound {
		t.Fatalf("expected redirect, got %d", resp.StatusCode)
	}
	if len(resp.Cookies()) > 0 {
		cookies = resp.Cookies()
	}

	if _, body := get(t, app, "/redirect-target", cookies); body != "/?quadrant=High-Low" {
		t.Errorf("redirect_after_login = %q, want /?quadrant=High-Low", body)
	}

	// The identity is gone, so the same cookie is still rejected.
	resp, _ = get(t, app, "/api/v1/matrix", cookies)
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("expected 401 after expiry, got %d", resp.StatusCode)
	}
}

func TestOptionalAuth(t *testing.T) {
	app := newTestApp(t, time.Hour)

	if _, body := get(t, app, "/login", nil); body != "anonymous" {
		t.Errorf("anonymous body = %q", body)
	}

	cookies := login(t, app)
	if _, body := get(t, app, "/login", cookies); body != "signed-in" {
		t.Errorf("signed-in body = %q", body)
	}
}
