package entity

import (
	"time"
)

// Gift is one catalog item offered by the fulfillment provider or the
// built-in catalog.
type Gift struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"` // Non-negative, in the provider's currency.
	ImageURL    string  `json:"image_url,omitempty"`
	Category    string  `json:"category,omitempty"`
	ProviderID  string  `json:"provider_id,omitempty"` // Provider-side identity, distinct from the local one.
}

// OrderStatus is the lifecycle status of a gift order.
type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "processing" // Accepted by the fulfillment provider.
	OrderStatusSent       OrderStatus = "sent"       // Completed (or simulated completion in demo mode).
	OrderStatusUnknown    OrderStatus = "unknown"    // Status lookup failed.
)

// GiftOrder records one completed gift-send action: one gift sent to one or
// more recipients. Recipients are a snapshot of the selection at send time,
// not a live reference, and TotalPrice is fixed at creation and never
// recomputed.
type GiftOrder struct {
	ID              string      `json:"id"`
	Gift            Gift        `json:"gift"`
	Recipients      []Person    `json:"recipients"`
	Message         string      `json:"message,omitempty"`
	TotalPrice      float64     `json:"total_price"` // gift.Price * len(Recipients) at creation time.
	Status          OrderStatus `json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
	ProviderOrderID string      `json:"provider_order_id,omitempty"`
}
