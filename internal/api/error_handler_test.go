package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/usermanager/user-management-api/internal/core/domain"
)

func render(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)
	return rec.Code, rec.Body.String()
}

func TestErrorHandler_DomainMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrDuplicateUsername, http.StatusConflict},
		{domain.ErrDuplicateEmail, http.StatusConflict},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrInvalidRole, http.StatusBadRequest},
		{domain.ErrTooManyAttempts, http.StatusTooManyRequests},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{echo.NewHTTPError(http.StatusForbidden, "insufficient role"), http.StatusForbidden},
	}
	for _, tc := range cases {
		code, _ := render(t, tc.err)
		if code != tc.code {
			t.Fatalf("error %v: expected %d, got %d", tc.err, tc.code, code)
		}
	}
}

func TestErrorHandler_InvalidCredentialShapesAreIdentical(t *testing.T) {
	// Unknown username and wrong password both surface as
	// ErrInvalidCredentials from the auth service; the rendered envelope
	// must be byte-identical so neither reveals which check failed.
	codeA, bodyA := render(t, domain.ErrInvalidCredentials)
	codeB, bodyB := render(t, fmt.Errorf("sign in: %w", domain.ErrInvalidCredentials))

	if codeA != codeB || bodyA != bodyB {
		t.Fatalf("expected identical shapes, got %d %q vs %d %q", codeA, bodyA, codeB, bodyB)
	}
}

func TestErrorHandler_UnexpectedErrorIsGeneric(t *testing.T) {
	cause := errors.New("mongo: connection reset while reading password_hash")
	code, body := render(t, fmt.Errorf("find user: %w: %w", domain.ErrStoreUnavailable, cause))

	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if body != "{\"error\":\"internal server error\"}\n" {
		t.Fatalf("response leaked internals: %q", body)
	}
}
