package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/usermanager/user-management-api/internal/api/metrics"
	"github.com/usermanager/user-management-api/internal/core/domain"
	"github.com/usermanager/user-management-api/internal/core/ports"
)

// AuthHandler exposes sign-up and sign-in over HTTP.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignUp registers a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signUpRequest  true  "User registration details"
// @Success      201   {object}  signUpResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /auth/signup [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.authService.SignUp(c.Request().Context(), ports.SignUpInput{
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
		Email:    req.Email,
		Dob:      req.Dob,
		Address:  req.Address,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateUsername) || errors.Is(err, domain.ErrDuplicateEmail) {
			metrics.SignUpsTotal.WithLabelValues("duplicate").Inc()
		}
		return err
	}

	metrics.SignUpsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusCreated, signUpResponse{
		ID:    profile.ID,
		Name:  profile.Name,
		Email: profile.Email,
	})
}

// SignIn verifies credentials and returns a session token.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signInRequest  true  "Sign-in credentials"
// @Success      200   {object}  signInResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /auth/signin [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.SignIn(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.SignInsTotal.WithLabelValues("invalid_credentials").Inc()
		case errors.Is(err, domain.ErrTooManyAttempts):
			metrics.SignInsTotal.WithLabelValues("throttled").Inc()
		}
		return err
	}

	metrics.SignInsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, signInResponse{
		AccessToken: result.AccessToken,
		ExpiresIn:   result.ExpiresIn,
	})
}
