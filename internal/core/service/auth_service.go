package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/usermanager/user-management-api/internal/core/domain"
	"github.com/usermanager/user-management-api/internal/core/ports"
	"github.com/usermanager/user-management-api/internal/core/token"
	"github.com/usermanager/user-management-api/internal/pkg/password"
)

// AuthService implements sign-up and sign-in. It holds no mutable state of
// its own; every dependency is immutable after construction, so concurrent
// requests share it freely.
type AuthService struct {
	repo    ports.UserRepository
	hasher  *password.Hasher
	issuer  *token.Issuer
	limiter ports.SignInLimiter
}

// NewAuthService wires the service. limiter may be nil, in which case
// sign-in attempts are not throttled.
func NewAuthService(repo ports.UserRepository, hasher *password.Hasher, issuer *token.Issuer, limiter ports.SignInLimiter) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, issuer: issuer, limiter: limiter}
}

// SignUp registers a new credential record. The uniqueness pre-checks are an
// optimization only: two concurrent sign-ups can both pass them, and the
// store's own unique constraints are the authoritative guard; Insert maps a
// constraint violation back to the same duplicate errors.
func (s *AuthService) SignUp(ctx context.Context, in ports.SignUpInput) (*domain.PublicProfile, error) {
	// Roles are not self-service: sign-up only ever creates User accounts.
	// Admin is granted by out-of-band provisioning, never by this path.
	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}
	if role != domain.RoleUser {
		return nil, domain.ErrInvalidRole
	}

	if existing, err := s.repo.FindByUsername(ctx, in.Username); err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicateUsername
	}

	if existing, err := s.repo.FindByEmail(ctx, in.Email); err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicateEmail
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     in.Username,
		PasswordHash: hash,
		Name:         in.Name,
		Email:        in.Email,
		Dob:          in.Dob,
		Address:      in.Address,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Insert(ctx, user)
	if err != nil {
		return nil, err
	}

	profile := created.Public()
	return &profile, nil
}

// SignIn verifies credentials and mints a session token. An unknown username
// and a wrong password produce the identical domain.ErrInvalidCredentials so
// the boundary never reveals which one it was.
func (s *AuthService) SignIn(ctx context.Context, username, plaintext string) (*ports.SignInResult, error) {
	// The limiter is best-effort: a read failure degrades throttling,
	// never sign-in itself.
	if s.limiter != nil {
		if blocked, err := s.limiter.Blocked(ctx, username); err == nil && blocked {
			return nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, s.failedAttempt(ctx, username)
		}
		return nil, err
	}

	if !s.hasher.Verify(plaintext, user.PasswordHash) {
		return nil, s.failedAttempt(ctx, username)
	}

	if s.limiter != nil {
		_ = s.limiter.Reset(ctx, username)
	}

	signed, err := s.issuer.Issue(user)
	if err != nil {
		return nil, err
	}

	return &ports.SignInResult{
		AccessToken: signed,
		ExpiresIn:   int64(s.issuer.Lifetime().Seconds()),
	}, nil
}

func (s *AuthService) failedAttempt(ctx context.Context, username string) error {
	if s.limiter != nil {
		_ = s.limiter.RecordFailure(ctx, username)
	}
	return domain.ErrInvalidCredentials
}
