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

// GiftHandler holds dependencies for gift catalog and order handlers.
type GiftHandler struct {
	uc     usecase.GiftUsecase
	store  *store.Store
	logger *slog.Logger
}

// NewGiftHandler is the constructor for GiftHandler, injected by Fx.
func NewGiftHandler(uc usecase.GiftUsecase, st *store.Store, logger *slog.Logger) *GiftHandler {
	return &GiftHandler{
		uc:     uc,
		store:  st,
		logger: logger,
	}
}

// GetCatalog lists the available gifts.
func (h *GiftHandler) GetCatalog(c echo.Context) error {
	catalog, err := h.uc.Catalog(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, catalog, "")
}

// OpenGiftSelection opens the gift selection panel.
func (h *GiftHandler) OpenGiftSelection(c echo.Context) error {
	h.store.OpenGiftSelection()

	return response.Success(c, http.StatusOK, map[string]bool{
		"show_gift_selection": h.store.ShowGiftSelection(),
	}, "")
}

// CloseGiftSelection closes the gift selection panel.
func (h *GiftHandler) CloseGiftSelection(c echo.Context) error {
	h.store.CloseGiftSelection()

	return response.Success(c, http.StatusOK, map[string]bool{
		"show_gift_selection": h.store.ShowGiftSelection(),
	}, "")
}

// SendGiftsRequest represents the request body for sending a gift to the
// current selection.
type SendGiftsRequest struct {
	GiftID  string `json:"gift_id" validate:"required"`
	Message string `json:"message"`
}

// SendGifts sends the chosen gift to every selected person and returns the
// order confirmation, tracking QR included when enabled.
func (h *GiftHandler) SendGifts(c echo.Context) error {
	var req SendGiftsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	confirmation, err := h.uc.SendGifts(c.Request().Context(), req.GiftID, req.Message)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, confirmation, "Order created")
}

// GetCurrentOrder returns the most recent order and the confirmation flag.
func (h *GiftHandler) GetCurrentOrder(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"order":             h.store.CurrentOrder(),
		"show_confirmation": h.store.ShowOrderConfirmation(),
	}, "")
}

// CloseOrderConfirmation dismisses the order confirmation panel.
func (h *GiftHandler) CloseOrderConfirmation(c echo.Context) error {
	h.store.CloseOrderConfirmation()

	return response.Success(c, http.StatusOK, nil, "")
}

// GetOrderStatus looks up the provider-side status of an order.
func (h *GiftHandler) GetOrderStatus(c echo.Context) error {
	status, err := h.uc.OrderStatus(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"status": status}, "")
}
