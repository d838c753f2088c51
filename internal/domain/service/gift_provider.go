package service

import (
	"context"

	"giftscout/internal/domain/entity"
)

// GiftProvider fetches the gift catalog and submits batched send requests to
// the fulfillment provider, degrading gracefully when unconfigured.
type GiftProvider interface {
	// Catalog returns the provider catalog, or the built-in catalog when
	// the provider is unconfigured or errors (the error is logged, never
	// raised here).
	Catalog(ctx context.Context) ([]entity.Gift, error)

	// SendGift submits one batched request covering every recipient and
	// returns the resulting order. It never returns a partially-filled
	// order: on transport failure the error carries the provider message
	// when available.
	SendGift(ctx context.Context, gift entity.Gift, recipients []entity.Person, message string) (*entity.GiftOrder, error)

	// OrderStatus is a best-effort status lookup; "unknown" on any error.
	OrderStatus(ctx context.Context, orderID string) (entity.OrderStatus, error)

	// IsConfigured reports whether the provider API key is present.
	IsConfigured() bool
}
