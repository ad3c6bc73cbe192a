package ports

import (
	"context"

	"github.com/shopforge/commerce-api/internal/core/domain"
)

type CreateStoreInput struct {
	Name        string
	Description string
	Domain      string
}

type CreateStoreConfigInput struct {
	StoreID        string
	Theme          string
	LogoURL        string
	BannerURL      string
	PrimaryColor   string
	SecondaryColor string
	Metadata       map[string]any
}

type StoreService interface {
	CreateStore(ctx context.Context, ownerID string, in CreateStoreInput) (*domain.Store, error)
	CreateStoreConfig(ctx context.Context, ownerID string, in CreateStoreConfigInput) (*domain.StoreConfig, error)
}
