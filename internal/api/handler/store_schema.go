package handler

import "time"

type createStoreRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description"`
	Domain      string `json:"domain"      validate:"required"`
}

type createStoreConfigRequest struct {
	StoreID        string         `json:"store_id"        validate:"required"`
	Theme          string         `json:"theme"           validate:"required"`
	LogoURL        string         `json:"logo_url"`
	BannerURL      string         `json:"banner_url"`
	PrimaryColor   string         `json:"primary_color"`
	SecondaryColor string         `json:"secondary_color"`
	Metadata       map[string]any `json:"metadata"`
}

// Response types owned by the transport layer, intentionally separate
// from domain types so the JSON contract is not coupled to internal
// changes.

type storeResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Domain      string    `json:"domain"`
	CreatedAt   time.Time `json:"created_at"`
}

type storeConfigResponse struct {
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
