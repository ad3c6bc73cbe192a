package ports

import (
	"context"

	"github.com/shopforge/commerce-api/internal/core/domain"
)

// SignupInput carries the validated signup fields into the service.
type SignupInput struct {
	Email     string
	Password  string
	Role      domain.Role
	FirstName string
	LastName  string
}

type AuthService interface {
	Signup(ctx context.Context, in SignupInput) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
