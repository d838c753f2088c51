package usecase

import (
	"context"

	"giftscout/internal/domain/entity"
)

// OrderConfirmation is the gift-send result handed to the delivery layer:
// the created order plus an optional PNG QR code linking to order tracking.
type OrderConfirmation struct {
	Order      entity.GiftOrder `json:"order"`
	TrackingQR []byte           `json:"tracking_qr,omitempty"` // PNG bytes; empty when QR codes are disabled.
}

// GiftUsecase drives the gift catalog and the send flow over the current
// selection.
type GiftUsecase interface {
	// Catalog returns the available gifts.
	Catalog(ctx context.Context) ([]entity.Gift, error)

	// SendGifts sends the gift with the given id to every currently selected
	// person, records the order and clears the selection. The message is
	// truncated to 500 runes.
	SendGifts(ctx context.Context, giftID, message string) (*OrderConfirmation, error)

	// OrderStatus looks up the provider-side status of an order.
	OrderStatus(ctx context.Context, orderID string) (entity.OrderStatus, error)
}
