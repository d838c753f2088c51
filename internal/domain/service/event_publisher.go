package service

import (
	"context"
	"time"
)

// OrderEvent is published after a gift order is created, for downstream
// consumers (reporting, billing reconciliation).
type OrderEvent struct {
	RequestID      string    `json:"request_id,omitempty"` // For distributed tracing.
	OrderID        string    `json:"order_id"`
	GiftID         string    `json:"gift_id"`
	GiftName       string    `json:"gift_name"`
	RecipientCount int       `json:"recipient_count"`
	TotalPrice     float64   `json:"total_price"`
	Status         string    `json:"status"`
	BusinessID     string    `json:"business_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// EventPublisher publishes order events to a message queue.
type EventPublisher interface {
	// PublishOrderEvent publishes an order event for async processing.
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
