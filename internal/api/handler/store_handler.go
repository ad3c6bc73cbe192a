package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopforge/commerce-api/internal/core/domain"
	"github.com/shopforge/commerce-api/internal/core/ports"
)

type StoreHandler struct {
	storeService ports.StoreService
}

func NewStoreHandler(storeService ports.StoreService) *StoreHandler {
	return &StoreHandler{storeService: storeService}
}

// CreateStore creates a storefront owned by the authenticated merchant.
//
// @Summary      Create a store
// @Tags         stores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createStoreRequest  true  "Store details"
// @Success      201   {object}  storeResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Router       /api/v1/createStore [post]
func (h *StoreHandler) CreateStore(c echo.Context) error {
	ownerID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createStoreRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid input.")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	store, err := h.storeService.CreateStore(c.Request().Context(), ownerID, ports.CreateStoreInput{
		Name:        req.Name,
		Description: req.Description,
		Domain:      req.Domain,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toStoreResponse(store))
}

// CreateStoreConfig attaches a configuration to one of the caller's stores.
//
// @Summary      Create a store configuration
// @Tags         stores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createStoreConfigRequest  true  "Store configuration"
// @Success      201   {object}  storeConfigResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/v1/createStoreConfig [post]
func (h *StoreHandler) CreateStoreConfig(c echo.Context) error {
	ownerID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createStoreConfigRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid input.")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cfg, err := h.storeService.CreateStoreConfig(c.Request().Context(), ownerID, ports.CreateStoreConfigInput{
		StoreID:        req.StoreID,
		Theme:          req.Theme,
		LogoURL:        req.LogoURL,
		BannerURL:      req.BannerURL,
		PrimaryColor:   req.PrimaryColor,
		SecondaryColor: req.SecondaryColor,
		Metadata:       req.Metadata,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toStoreConfigResponse(cfg))
}

func toStoreResponse(s *domain.Store) storeResponse {
	return storeResponse{
		ID:          s.ID,
		OwnerID:     s.OwnerID,
		Name:        s.Name,
		Description: s.Description,
		Domain:      s.Domain,
		CreatedAt:   s.CreatedAt,
	}
}

func toStoreConfigResponse(c *domain.StoreConfig) storeConfigResponse {
	return storeConfigResponse{
		ID:             c.ID,
		StoreID:        c.StoreID,
		Theme:          c.Theme,
		LogoURL:        c.LogoURL,
		BannerURL:      c.BannerURL,
		PrimaryColor:   c.PrimaryColor,
		SecondaryColor: c.SecondaryColor,
		Metadata:       c.Metadata,
		CreatedAt:      c.CreatedAt,
	}
}
