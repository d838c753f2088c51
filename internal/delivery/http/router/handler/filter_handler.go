package handler

import (
	"log/slog"
	"net/http"

	"giftscout/internal/delivery/http/response"
	"giftscout/internal/domain/entity"
	domainerrors "giftscout/internal/domain/errors"
	"giftscout/internal/store"
	"giftscout/internal/usecase"

	"github.com/labstack/echo/v4"
)

// FilterHandler holds dependencies for filter and preset handlers.
type FilterHandler struct {
	uc     usecase.SearchUsecase
	store  *store.Store
	logger *slog.Logger
}

// NewFilterHandler is the constructor for FilterHandler, injected by Fx.
func NewFilterHandler(uc usecase.SearchUsecase, st *store.Store, logger *slog.Logger) *FilterHandler {
	return &FilterHandler{
		uc:     uc,
		store:  st,
		logger: logger,
	}
}

// GetFilters returns the active filter set.
func (h *FilterHandler) GetFilters(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.store.Filters(), "")
}

// PatchFilters merges a filter patch. A JSON null value clears that
// dimension; the estimate refresh is debounced behind the scenes.
func (h *FilterHandler) PatchFilters(c echo.Context) error {
	var body map[string]any
	if err := c.Bind(&body); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid filter patch")
	}

	patch := make(entity.SearchFilters, len(body))
	for key, value := range body {
		patch[entity.FilterDimension(key)] = value
	}

	h.uc.ApplyFilters(c.Request().Context(), patch)

	return response.Success(c, http.StatusOK, h.store.Filters(), "Filters updated")
}

// ResetFilters clears every filter dimension.
func (h *FilterHandler) ResetFilters(c echo.Context) error {
	h.uc.ResetFilters(c.Request().Context())

	return response.Success(c, http.StatusOK, h.store.Filters(), "Filters reset")
}

// GetSuggestions lists the built-in filter suggestions.
func (h *FilterHandler) GetSuggestions(c echo.Context) error {
	return response.Success(c, http.StatusOK, entity.DefaultFilterSuggestions(), "")
}

// ListPresets returns the saved filter presets.
func (h *FilterHandler) ListPresets(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.store.FilterPresets(), "")
}

// SavePresetRequest represents the request body for saving a preset.
type SavePresetRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// SavePreset snapshots the active filters under a name.
func (h *FilterHandler) SavePreset(c echo.Context) error {
	var req SavePresetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preset input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	preset := h.store.SaveFilterPreset(req.Name, req.Description)

	return response.Success(c, http.StatusCreated, preset, "Preset saved")
}

// LoadPreset replaces the active filters with a saved preset.
func (h *FilterHandler) LoadPreset(c echo.Context) error {
	id := c.Param("id")
	if !h.store.LoadFilterPreset(id) {
		return domainerrors.ErrPresetNotFound.WithDetails(id)
	}

	// Kick the debounced estimate for the newly loaded filters.
	h.uc.ApplyFilters(c.Request().Context(), nil)

	return response.Success(c, http.StatusOK, h.store.Filters(), "Preset loaded")
}

// DeletePreset removes a saved preset.
func (h *FilterHandler) DeletePreset(c echo.Context) error {
	id := c.Param("id")
	if !h.store.DeleteFilterPreset(id) {
		return domainerrors.ErrPresetNotFound.WithDetails(id)
	}

	return response.Success(c, http.StatusOK, nil, "Preset deleted")
}
