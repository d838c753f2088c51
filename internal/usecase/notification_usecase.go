package usecase

import (
	"time"

	"giftscout/internal/domain/entity"
)

// NotificationUsecase raises operator-facing notifications and reaps expired
// ones.
type NotificationUsecase interface {
	// Notify appends a notification; a zero duration makes it sticky.
	Notify(kind entity.NotificationKind, message string, duration time.Duration) entity.AppNotification

	// Dismiss removes a notification before its duration elapses.
	Dismiss(id string)

	// Start begins auto-dismissing notifications after their durations.
	Start()

	// Stop cancels pending dismissals and unsubscribes from the store.
	Stop()
}
