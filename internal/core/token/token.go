// Package token mints and validates the stateless session tokens issued at
// sign-in. Tokens are HS256-signed JWTs; they are signed, not encrypted, so
// claims must never carry secrets. There is no revocation list: a token
// stays valid until its expiry instant. That is a deliberate trade-off,
// statelessness keeps validation free of I/O at the cost of not being able
// to kill a session early.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/usermanager/user-management-api/internal/core/domain"
)

// Claims is the identity assertion carried by a session token.
type Claims struct {
	jwt.RegisteredClaims
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Config is the immutable, process-wide signing configuration. It is built
// once at startup and injected into the issuer and validator; nothing
// mutates it afterwards.
type Config struct {
	Secret   string
	Issuer   string
	Audience string
	TTL      time.Duration
}

// Validate reports a configuration error when any required field is absent.
// Callers treat a failure here as startup-fatal.
func (c Config) Validate() error {
	if c.Secret == "" {
		return errors.New("token: signing secret is required")
	}
	if c.Issuer == "" {
		return errors.New("token: issuer is required")
	}
	if c.Audience == "" {
		return errors.New("token: audience is required")
	}
	if c.TTL <= 0 {
		return errors.New("token: lifetime must be positive")
	}
	return nil
}

// Issuer mints signed session tokens.
type Issuer struct {
	cfg Config
}

func NewIssuer(cfg Config) (*Issuer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Issuer{cfg: cfg}, nil
}

// Issue returns a signed compact token for the user with
// issued-at = now and expires-at = now + TTL. Altering any claim after
// signing invalidates the signature.
func (i *Issuer) Issue(user *domain.User) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    i.cfg.Issuer,
			Audience:  jwt.ClaimStrings{i.cfg.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.cfg.TTL)),
		},
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(i.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Lifetime returns the configured token lifetime.
func (i *Issuer) Lifetime() time.Duration {
	return i.cfg.TTL
}

// Validator checks inbound tokens: signature, issuer, audience, expiry.
// Validation is pure computation and safe to run fully in parallel.
type Validator struct {
	cfg Config
}

func NewValidator(cfg Config) (*Validator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Validator{cfg: cfg}, nil
}

// Validate parses and verifies a compact token. Any failure (bad signature,
// foreign issuer or audience, missing or past expiry) returns an error and
// the caller treats the request as unauthenticated.
func (v *Validator) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, v.keyFunc,
		jwt.WithIssuer(v.cfg.Issuer),
		jwt.WithAudience(v.cfg.Audience),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	)
	if err != nil {
		return nil, fmt.Errorf("validate token: %w", err)
	}
	if !parsed.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	return claims, nil
}

func (v *Validator) keyFunc(t *jwt.Token) (interface{}, error) {
	if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	return []byte(v.cfg.Secret), nil
}
