// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"giftscout/internal/delivery/http/response"
	"giftscout/internal/domain/entity"
	domainerrors "giftscout/internal/domain/errors"
	"giftscout/internal/domain/service"
	"giftscout/internal/store"
	"giftscout/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// BusinessHandlerParams holds dependencies for BusinessHandler, injected by Fx.
// The geocoder is optional: without one, lookups answer with a configuration
// error while the rest of the business surface keeps working.
type BusinessHandlerParams struct {
	fx.In

	Usecase  usecase.SearchUsecase
	Store    *store.Store
	Geocoder service.Geocoder `optional:"true"`
	Logger   *slog.Logger
}

// BusinessHandler holds dependencies for business-focus handlers.
type BusinessHandler struct {
	uc       usecase.SearchUsecase
	store    *store.Store
	geocoder service.Geocoder
	logger   *slog.Logger
}

// NewBusinessHandler is the constructor for BusinessHandler, injected by Fx.
func NewBusinessHandler(params BusinessHandlerParams) *BusinessHandler {
	return &BusinessHandler{
		uc:       params.Usecase,
		store:    params.Store,
		geocoder: params.Geocoder,
		logger:   params.Logger,
	}
}

// SetBusinessRequest represents the request body for focusing a business.
type SetBusinessRequest struct {
	ID        string  `json:"id"`
	Name      string  `json:"name" validate:"required"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
	PlaceType string  `json:"place_type"`
}

// SetBusiness focuses a business and starts the search pipeline for it.
func (h *BusinessHandler) SetBusiness(c echo.Context) error {
	var req SetBusinessRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid business input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if req.ID == "" {
		req.ID = uuid.New().String()
	}

	business := entity.Business{
		ID:        req.ID,
		Name:      req.Name,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		PlaceType: req.PlaceType,
	}

	if err := h.uc.SetBusiness(c.Request().Context(), business); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "Business focused")
}

// GetBusiness returns the currently focused business, null when none.
func (h *BusinessHandler) GetBusiness(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.store.CurrentBusiness(), "")
}

// ClearBusiness drops the focused business along with the result set.
func (h *BusinessHandler) ClearBusiness(c echo.Context) error {
	h.uc.ClearBusiness(c.Request().Context())

	return response.Success(c, http.StatusOK, nil, "Business cleared")
}

// Lookup resolves a free-form query into business candidates.
func (h *BusinessHandler) Lookup(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Query parameter q is required")
	}

	if h.geocoder == nil {
		return domainerrors.ErrConfigurationMissing.WithDetails("no geocoding provider configured")
	}

	candidates, err := h.geocoder.Lookup(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, candidates, "")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
