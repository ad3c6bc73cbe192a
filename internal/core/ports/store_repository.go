package ports

import (
	"context"

	"github.com/shopforge/commerce-api/internal/core/domain"
)

// StoreRepository persists stores and their configurations.
type StoreRepository interface {
	CreateStore(ctx context.Context, store *domain.Store) (*domain.Store, error)
	// FindByIDAndOwner returns the store only when it exists and belongs
	// to ownerID; otherwise domain.ErrStoreNotFound.
	FindByIDAndOwner(ctx context.Context, id, ownerID string) (*domain.Store, error)
	CreateConfig(ctx context.Context, cfg *domain.StoreConfig) (*domain.StoreConfig, error)
}
