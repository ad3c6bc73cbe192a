package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/shopforge/commerce-api/internal/api/metrics"
	"github.com/shopforge/commerce-api/internal/core/domain"
	"github.com/shopforge/commerce-api/internal/core/ports"
)

type StoreService struct {
	repo   ports.StoreRepository
	logger zerolog.Logger
}

func NewStoreService(repo ports.StoreRepository, logger zerolog.Logger) *StoreService {
	return &StoreService{repo: repo, logger: logger}
}

func (s *StoreService) CreateStore(ctx context.Context, ownerID string, in ports.CreateStoreInput) (*domain.Store, error) {
	store := &domain.Store{
		OwnerID:     ownerID,
		Name:        in.Name,
		Description: in.Description,
		Domain:      in.Domain,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.CreateStore(ctx, store)
	if err != nil {
		s.logger.Error().Err(err).Str("owner_id", ownerID).Msg("store creation failed")
		return nil, err
	}

	metrics.StoresCreatedTotal.Inc()
	s.logger.Info().Str("store_id", created.ID).Str("owner_id", ownerID).Msg("store created")
	return created, nil
}

// CreateStoreConfig attaches a configuration to one of the caller's own
// stores. A store that does not exist or belongs to someone else yields
// ErrStoreNotFound either way, so ownership cannot be probed.
func (s *StoreService) CreateStoreConfig(ctx context.Context, ownerID string, in ports.CreateStoreConfigInput) (*domain.StoreConfig, error) {
	store, err := s.repo.FindByIDAndOwner(ctx, in.StoreID, ownerID)
	if err != nil {
		return nil, err
	}

	cfg := &domain.StoreConfig{
		StoreID:        store.ID,
		Theme:          in.Theme,
		LogoURL:        in.LogoURL,
		BannerURL:      in.BannerURL,
		PrimaryColor:   in.PrimaryColor,
		SecondaryColor: in.SecondaryColor,
		Metadata:       in.Metadata,
		CreatedAt:      time.Now().UTC(),
	}

	created, err := s.repo.CreateConfig(ctx, cfg)
	if err != nil {
		s.logger.Error().Err(err).Str("store_id", store.ID).Msg("store config creation failed")
		return nil, err
	}

	s.logger.Info().Str("store_id", store.ID).Str("config_id", created.ID).Msg("store config created")
	return created, nil
}
