package handler

import (
	"log/slog"
	"net/http"

	"giftscout/internal/delivery/http/response"
	"giftscout/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
)

// MapHandler holds dependencies for map camera and event handlers.
type MapHandler struct {
	store  *store.Store
	logger *slog.Logger
}

// NewMapHandler is the constructor for MapHandler, injected by Fx.
func NewMapHandler(st *store.Store, logger *slog.Logger) *MapHandler {
	return &MapHandler{
		store:  st,
		logger: logger,
	}
}

// GetMapState returns the camera state held by the store.
func (h *MapHandler) GetMapState(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.store.MapState(), "")
}

// MapStateRequest carries a partial camera update; absent fields are
// untouched. Center is [longitude, latitude].
type MapStateRequest struct {
	Center  *orb.Point `json:"center"`
	Zoom    *float64   `json:"zoom" validate:"omitempty,gte=0,lte=24"`
	Pitch   *float64   `json:"pitch" validate:"omitempty,gte=0,lte=85"`
	Bearing *float64   `json:"bearing" validate:"omitempty,gte=-180,lte=180"`
}

// SetMapState merges a partial camera update into the store.
func (h *MapHandler) SetMapState(c echo.Context) error {
	var req MapStateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid map state input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	h.store.SetMapState(req.patch())

	return response.Success(c, http.StatusOK, h.store.MapState(), "Map state updated")
}

// MoveEnd records the camera the renderer settled on after a user gesture.
// Same shape as SetMapState; kept separate so renderer reports and operator
// commands stay distinguishable in logs.
func (h *MapHandler) MoveEnd(c echo.Context) error {
	var req MapStateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid map state input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	h.store.SetMapState(req.patch())

	return response.Success(c, http.StatusOK, h.store.MapState(), "")
}

// MarkerClickRequest represents a marker click reported by the renderer.
type MarkerClickRequest struct {
	PersonID string `json:"person_id" validate:"required"`
}

// MarkerClick opens the card for the person behind a clicked marker.
func (h *MapHandler) MarkerClick(c echo.Context) error {
	var req MarkerClickRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid marker click input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	for _, person := range h.store.People() {
		if person.ID == req.PersonID {
			h.store.SetSelectedPerson(&person)

			return response.Success(c, http.StatusOK, person, "")
		}
	}

	return response.NotFound(c, "PERSON_NOT_FOUND", "Person is not part of the current result set")
}

func (r *MapStateRequest) patch() store.MapStatePatch {
	return store.MapStatePatch{
		Center:  r.Center,
		Zoom:    r.Zoom,
		Pitch:   r.Pitch,
		Bearing: r.Bearing,
	}
}
