package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// RegisterRequest represents the request payload for account registration
type RegisterRequest struct {
	FirstName string `json:"firstName" validate:"required,max=255" example:"Ada"`
	LastName  string `json:"lastName" validate:"required,max=255" example:"Lovelace"`
	Email     string `json:"email" validate:"required,email,max=255" example:"ada@example.com"`
	Password  string `json:"password" validate:"required,min=6,max=72" example:"s3cret-pass"`
}

// LoginRequest represents the request payload for login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=255" example:"ada@example.com"`
	Password string `json:"password" validate:"required,max=72" example:"s3cret-pass"`
}

// Normalize trims the fields so blank values fail validation
func (r *RegisterRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.TrimSpace(r.Email)
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
}

// LoginResult is returned by the auth flow on successful login.
// The token is written to the session cookie and never serialised into a response body.
type LoginResult struct {
	Account   AccountDTO
	Token     string
	ExpiresAt time.Time
}

// AccountDTO is the public view of an account; it never carries the password hash
type AccountDTO struct {
	ID        uuid.UUID `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	FirstName string    `json:"first_name" example:"Ada"`
	LastName  string    `json:"last_name" example:"Lovelace"`
	Email     string    `json:"email" example:"ada@example.com"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
