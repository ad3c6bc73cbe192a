package ports

import (
	"context"

	"github.com/shopforge/commerce-api/internal/core/domain"
)

// AuthRepository defines the interface for user persistence. Create must
// fail with domain.ErrUserExists on a duplicate email — the store's own
// uniqueness constraint is the real backstop behind the service-level
// pre-check.
type AuthRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
