package handler

import (
	"log/slog"
	"net/http"

	"giftscout/internal/delivery/http/response"
	"giftscout/internal/store"
	"giftscout/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SearchHandler holds dependencies for search pipeline handlers.
type SearchHandler struct {
	uc     usecase.SearchUsecase
	store  *store.Store
	logger *slog.Logger
}

// NewSearchHandler is the constructor for SearchHandler, injected by Fx.
func NewSearchHandler(uc usecase.SearchUsecase, st *store.Store, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{
		uc:     uc,
		store:  st,
		logger: logger,
	}
}

// RunSearch executes the estimate-before-fetch pipeline for the focused
// business and reports how many people the result set now holds.
func (h *SearchHandler) RunSearch(c echo.Context) error {
	if err := h.uc.RunSearch(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"count":   len(h.store.People()),
		"loading": h.store.IsLoading(),
	}, "Search completed")
}

// GetEstimate returns the debounced result-volume estimate, null when no
// estimate is available.
func (h *SearchHandler) GetEstimate(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"estimate": h.store.FilterResultCount(),
	}, "")
}

// GetColumns lists the provider's available record fields.
func (h *SearchHandler) GetColumns(c echo.Context) error {
	columns, err := h.uc.Columns(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"columns": columns}, "")
}

// ListPeople returns the current result set.
func (h *SearchHandler) ListPeople(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.store.People(), "")
}
