package ports

import (
	"context"
	"time"

	"github.com/usermanager/user-management-api/internal/core/domain"
)

// SignUpInput carries the attributes of a new credential record. The
// plaintext password is hashed and discarded inside the service. Role must
// be empty or RoleUser; sign-up never grants anything else.
type SignUpInput struct {
	Username string
	Password string
	Name     string
	Email    string
	Dob      time.Time
	Address  string
	Role     string
}

// SignInResult is the outcome of a successful sign-in: the signed session
// token and its lifetime in seconds.
type SignInResult struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

type AuthService interface {
	SignUp(ctx context.Context, in SignUpInput) (*domain.PublicProfile, error)
	SignIn(ctx context.Context, username, password string) (*SignInResult, error)
}
