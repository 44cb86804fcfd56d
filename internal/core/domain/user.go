package domain

import (
	"errors"
	"time"
)

// Roles form a closed set; there is no hierarchy between them.
const (
	RoleUser  = "User"
	RoleAdmin = "Admin"
)

var ErrDuplicateUsername = errors.New("username already in use")
var ErrInvalidRole = errors.New("invalid role")
var ErrDuplicateEmail = errors.New("email already in use")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrTooManyAttempts = errors.New("too many sign-in attempts")
var ErrStoreUnavailable = errors.New("credential store unavailable")

// User is the durable credential record. The identifier is assigned exactly
// once at sign-up and never reused; the password hash is never empty once a
// record exists.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Dob          time.Time `json:"dob,omitempty"`
	Address      string    `json:"address,omitempty"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PublicProfile is the projection of a user that is safe to return to
// clients; it never carries the password hash.
type PublicProfile struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Dob     time.Time `json:"dob,omitempty"`
	Address string    `json:"address,omitempty"`
	Role    string    `json:"role"`
}

// Public returns the client-safe projection of the user.
func (u *User) Public() PublicProfile {
	return PublicProfile{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Dob:     u.Dob,
		Address: u.Address,
		Role:    u.Role,
	}
}
