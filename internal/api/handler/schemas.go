package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth request / response types ---

// Username and name lengths mirror the column limits of the user record.
type signUpRequest struct {
	Username string    `json:"username" validate:"required,max=30"`
	Password string    `json:"password" validate:"required,min=8,maxbytes=72"`
	Name     string    `json:"name"     validate:"required,max=50"`
	Email    string    `json:"email"    validate:"required,email,max=50"`
	Dob      time.Time `json:"dob,omitempty"`
	Address  string    `json:"address,omitempty" validate:"max=100"`
}

type signInRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type signUpResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type signInResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// --- User request / response types ---

type updateUserRequest struct {
	Name    string    `json:"name"    validate:"required,max=50"`
	Email   string    `json:"email"   validate:"required,email,max=50"`
	Dob     time.Time `json:"dob,omitempty"`
	Address string    `json:"address,omitempty" validate:"max=100"`
}

type currentUserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
