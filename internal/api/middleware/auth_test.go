package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/usermanager/user-management-api/internal/core/domain"
	"github.com/usermanager/user-management-api/internal/core/token"
)

var testTokenConfig = token.Config{
	Secret:   "secret",
	Issuer:   "usermanager",
	Audience: "usermanager-api",
	TTL:      time.Hour,
}

func signedToken(t *testing.T, user *domain.User) string {
	t.Helper()
	issuer, err := token.NewIssuer(testTokenConfig)
	if err != nil {
		t.Fatalf("new issuer: %v", err)
	}
	signed, err := issuer.Issue(user)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	return signed
}

func newValidator(t *testing.T) *token.Validator {
	t.Helper()
	v, err := token.NewValidator(testTokenConfig)
	if err != nil {
		t.Fatalf("new validator: %v", err)
	}
	return v
}

func TestAuthenticate_ValidToken(t *testing.T) {
	e := echo.New()
	signed := signedToken(t, &domain.User{ID: "u1", Name: "Alice", Email: "a@x.com", Role: domain.RoleAdmin})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Authenticate(newValidator(t))(func(c echo.Context) error {
		called = true
		claims, ok := ClaimsFrom(c)
		if !ok {
			t.Fatalf("claims not attached")
		}
		if claims.Subject != "u1" || claims.Role != domain.RoleAdmin {
			t.Fatalf("unexpected claims: %+v", claims)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthenticate_InvalidTokenPassesThroughUnauthenticated(t *testing.T) {
	e := echo.New()

	for _, header := range []string{"", "Token abc", "Bearer not-a-token"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set(echo.HeaderAuthorization, header)
		}
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := Authenticate(newValidator(t))(func(c echo.Context) error {
			if _, ok := ClaimsFrom(c); ok {
				t.Fatalf("claims attached for header %q", header)
			}
			return c.NoContent(http.StatusOK)
		})

		if err := handler(c); err != nil {
			t.Fatalf("handler error for header %q: %v", header, err)
		}
	}
}

func TestRequireAuth(t *testing.T) {
	e := echo.New()

	// unauthenticated → 401
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	err := RequireAuth()(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}

	// authenticated → passes
	c = e.NewContext(req, httptest.NewRecorder())
	c.Set(claimsKey, &token.Claims{Role: domain.RoleUser})

	called := false
	if err := RequireAuth()(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestRequireRole(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	// no claims → 401, not 403
	c := e.NewContext(req, httptest.NewRecorder())
	err := RequireRole(domain.RoleAdmin)(func(c echo.Context) error { return nil })(c)
	if he, ok := err.(*echo.HTTPError); !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for missing claims, got %v", err)
	}

	// wrong role → 403
	c = e.NewContext(req, httptest.NewRecorder())
	c.Set(claimsKey, &token.Claims{Role: domain.RoleUser})
	err = RequireRole(domain.RoleAdmin)(func(c echo.Context) error { return nil })(c)
	if he, ok := err.(*echo.HTTPError); !ok || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for wrong role, got %v", err)
	}

	// exact role → passes
	c = e.NewContext(req, httptest.NewRecorder())
	c.Set(claimsKey, &token.Claims{Role: domain.RoleAdmin})
	called := false
	if err := RequireRole(domain.RoleAdmin)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}
