package entity

import (
	"time"
)

// NotificationKind is the severity of an in-app notification.
type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
	NotificationWarning NotificationKind = "warning"
	NotificationInfo    NotificationKind = "info"
)

// AppNotification is an operator-facing toast. The store only appends and
// removes; honoring Duration (auto-dismiss) is the consumer's responsibility.
type AppNotification struct {
	ID        string           `json:"id"`
	Kind      NotificationKind `json:"kind"`
	Message   string           `json:"message"`
	Timestamp time.Time        `json:"timestamp"`
	Duration  time.Duration    `json:"duration,omitempty"` // Zero means sticky.
}
