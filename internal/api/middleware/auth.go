package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/usermanager/user-management-api/internal/api/metrics"
	"github.com/usermanager/user-management-api/internal/core/token"
)

// claimsKey is the echo context key under which validated claims are stored.
const claimsKey = "auth_claims"

// Authenticate validates the bearer token, when one is presented, and
// attaches the resulting claims to the request context. It never fails the
// request itself: a missing, malformed, or invalid token simply leaves the
// request unauthenticated and the gates downstream decide what that means
// for the operation at hand.
func Authenticate(validator *token.Validator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := bearerToken(c)
			if raw == "" {
				return next(c)
			}

			claims, err := validator.Validate(raw)
			if err != nil {
				metrics.TokenValidationsTotal.WithLabelValues("invalid").Inc()
				return next(c)
			}

			metrics.TokenValidationsTotal.WithLabelValues("valid").Inc()
			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

// ClaimsFrom returns the claims attached by Authenticate, or false when the
// request is unauthenticated.
func ClaimsFrom(c echo.Context) (*token.Claims, bool) {
	claims, ok := c.Get(claimsKey).(*token.Claims)
	return claims, ok
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
