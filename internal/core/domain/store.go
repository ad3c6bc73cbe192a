package domain

import (
	"errors"
	"time"
)

var (
	ErrStoreNotFound  = errors.New("store not found")
	ErrDuplicateStore = errors.New("store already exists")
)

// Store is a merchant-owned storefront.
type Store struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Domain      string    `json:"domain"`
	CreatedAt   time.Time `json:"created_at"`
}

// StoreConfig holds the presentation settings for a store. One store may
// accumulate several configs; the storefront renders the latest.
type StoreConfig struct {
	ID             string         `json:"id"`
	StoreID        string         `json:"store_id"`
	Theme          string         `json:"theme"`
	LogoURL        string         `json:"logo_url,omitempty"`
	BannerURL      string         `json:"banner_url,omitempty"`
	PrimaryColor   string         `json:"primary_color,omitempty"`
	SecondaryColor string         `json:"secondary_color,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}
