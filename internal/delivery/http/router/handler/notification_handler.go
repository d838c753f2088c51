package handler

import (
	"log/slog"
	"net/http"

	"giftscout/internal/delivery/http/response"
	"giftscout/internal/store"
	"giftscout/internal/usecase"

	"github.com/labstack/echo/v4"
)

// NotificationHandler holds dependencies for notification handlers.
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	store  *store.Store
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler, injected by Fx.
func NewNotificationHandler(uc usecase.NotificationUsecase, st *store.Store, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		uc:     uc,
		store:  st,
		logger: logger,
	}
}

// ListNotifications returns the live notifications, oldest first.
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.store.Notifications(), "")
}

// DismissNotification removes one notification, cancelling its pending
// auto-dismiss if any. Dismissing an unknown id is a no-op.
func (h *NotificationHandler) DismissNotification(c echo.Context) error {
	h.uc.Dismiss(c.Param("id"))

	return response.Success(c, http.StatusOK, nil, "Notification dismissed")
}
