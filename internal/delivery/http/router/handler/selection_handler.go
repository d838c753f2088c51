package handler

import (
	"log/slog"
	"net/http"

	"giftscout/internal/delivery/http/response"
	"giftscout/internal/store"

	"github.com/labstack/echo/v4"
)

// SelectionHandler holds dependencies for selection and person-card handlers.
type SelectionHandler struct {
	store  *store.Store
	logger *slog.Logger
}

// NewSelectionHandler is the constructor for SelectionHandler, injected by Fx.
func NewSelectionHandler(st *store.Store, logger *slog.Logger) *SelectionHandler {
	return &SelectionHandler{
		store:  st,
		logger: logger,
	}
}

// GetSelection returns the selected people keyed by identity.
func (h *SelectionHandler) GetSelection(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"people": h.store.SelectedPeople(),
		"count":  h.store.SelectionCount(),
	}, "")
}

// ToggleSelection flips the selection state of one discovered person.
func (h *SelectionHandler) ToggleSelection(c echo.Context) error {
	id := c.Param("id")

	for _, person := range h.store.People() {
		if person.ID == id {
			h.store.TogglePersonSelection(person)

			return response.Success(c, http.StatusOK, map[string]any{
				"selected": h.store.IsSelected(id),
				"count":    h.store.SelectionCount(),
			}, "Selection updated")
		}
	}

	return response.NotFound(c, "PERSON_NOT_FOUND", "Person is not part of the current result set")
}

// ClearSelection empties the selection.
func (h *SelectionHandler) ClearSelection(c echo.Context) error {
	h.store.ClearSelection()

	return response.Success(c, http.StatusOK, nil, "Selection cleared")
}

// GetFocusedPerson returns the person whose card is open, null when none.
func (h *SelectionHandler) GetFocusedPerson(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.store.SelectedPerson(), "")
}

// FocusPerson opens the card for one discovered person.
func (h *SelectionHandler) FocusPerson(c echo.Context) error {
	id := c.Param("id")

	for _, person := range h.store.People() {
		if person.ID == id {
			h.store.SetSelectedPerson(&person)

			return response.Success(c, http.StatusOK, person, "")
		}
	}

	return response.NotFound(c, "PERSON_NOT_FOUND", "Person is not part of the current result set")
}

// UnfocusPerson closes the person card.
func (h *SelectionHandler) UnfocusPerson(c echo.Context) error {
	h.store.SetSelectedPerson(nil)

	return response.Success(c, http.StatusOK, nil, "")
}
