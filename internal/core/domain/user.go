package domain

import (
	"errors"
	"time"
)

// Role is the closed set of account roles. The stored value is the
// uppercase tag, and the same tag is embedded in token claims.
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleMerchant Role = "MERCHANT"
)

// Valid reports whether r is a member of the role enum.
func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleMerchant
}

var (
	ErrUserExists      = errors.New("user already exists")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
	ErrInvalidRole     = errors.New("invalid role")
	ErrSignupFailed    = errors.New("signup failed")
	ErrTooManyAttempts = errors.New("too many login attempts")
)

// User models an account holder. Records are created once on signup and
// never mutated or deleted by this service.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	CreatedAt    time.Time `json:"created_at"`
}
