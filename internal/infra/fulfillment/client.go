// Package fulfillment implements the gift provider client behind the
// GiftProvider port. Without an API key it serves a built-in catalog and
// simulates sends so the rest of the flow stays exercisable.
package fulfillment

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"giftscout/config"
	"giftscout/internal/domain/entity"
	"giftscout/internal/domain/service"
)

// simulatedSendDelay approximates the provider round trip in demo mode.
const simulatedSendDelay = 1500 * time.Millisecond

type client struct {
	cfg        *config.FulfillmentConfig
	httpClient *http.Client
	logger     *slog.Logger
	sendDelay  time.Duration
}

// NewClient builds a GiftProvider backed by the fulfillment API.
func NewClient(cfg *config.FulfillmentConfig, logger *slog.Logger) service.GiftProvider {
	return &client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
		sendDelay:  simulatedSendDelay,
	}
}

func (c *client) IsConfigured() bool {
	return c.cfg.APIKey != ""
}

type catalogItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Cost        float64 `json:"cost"`
	ImageURL    string  `json:"image_url"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
}

type catalogResponse struct {
	Items []catalogItem `json:"items"`
}

// Catalog fetches the provider catalog, falling back to the built-in catalog
// when unconfigured or on any fetch failure.
func (c *client) Catalog(ctx context.Context) ([]entity.Gift, error) {
	if !c.IsConfigured() {
		return builtinCatalog(), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"/v1/catalog", nil)
	if err != nil {
		return builtinCatalog(), nil
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("catalog fetch failed, serving built-in catalog", slog.Any("error", err))

		return builtinCatalog(), nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("catalog fetch failed, serving built-in catalog", slog.Int("status", resp.StatusCode))

		return builtinCatalog(), nil
	}

	var decoded catalogResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		c.logger.Warn("catalog decode failed, serving built-in catalog", slog.Any("error", err))

		return builtinCatalog(), nil
	}

	gifts := make([]entity.Gift, 0, len(decoded.Items))
	for _, item := range decoded.Items {
		price := item.Price
		if price == 0 {
			price = item.Cost
		}
		imageURL := item.ImageURL
		if imageURL == "" {
			imageURL = item.Image
		}
		gifts = append(gifts, entity.Gift{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Price:       price,
			ImageURL:    imageURL,
			Category:    item.Category,
			ProviderID:  item.ID,
		})
	}

	return gifts, nil
}

type sendRecipient struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
}

type sendRequest struct {
	GiftID    string        `json:"gift_id"`
	Recipient sendRecipient `json:"recipient"`
	Message   string        `json:"message"`
}

type batchSendRequest struct {
	Sends []sendRequest `json:"sends"`
}

type batchSendResponse struct {
	OrderID string `json:"order_id"`
	ID      string `json:"id"`
	Message string `json:"message"`
}

// SendGift submits one batched request covering every recipient. In demo mode
// the send is simulated with a short delay and reported as already sent.
func (c *client) SendGift(ctx context.Context, gift entity.Gift, recipients []entity.Person, message string) (*entity.GiftOrder, error) {
	if !c.IsConfigured() {
		return c.simulateSend(ctx, gift, recipients, message)
	}

	batch := batchSendRequest{Sends: make([]sendRequest, 0, len(recipients))}
	for _, r := range recipients {
		giftID := gift.ProviderID
		if giftID == "" {
			giftID = gift.ID
		}
		batch.Sends = append(batch.Sends, sendRequest{
			GiftID: giftID,
			Recipient: sendRecipient{
				Name:    r.DisplayName(),
				Email:   r.Email,
				Phone:   r.Phone,
				Address: r.Address,
				Zip:     r.ZipCode,
			},
			Message: message,
		})
	}

	payload, err := json.Marshal(batch)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/v1/sends/batch", bytes.NewReader(payload))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "send request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var decoded batchSendResponse
	_ = json.Unmarshal(raw, &decoded)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if decoded.Message != "" {
			return nil, errors.Errorf("provider rejected send: %s", decoded.Message)
		}

		return nil, errors.Errorf("provider returned status %d", resp.StatusCode)
	}

	providerOrderID := decoded.OrderID
	if providerOrderID == "" {
		providerOrderID = decoded.ID
	}

	order := &entity.GiftOrder{
		ID:              "order-" + uuid.NewString(),
		Gift:            gift,
		Recipients:      append([]entity.Person(nil), recipients...),
		Message:         message,
		TotalPrice:      gift.Price * float64(len(recipients)),
		Status:          entity.OrderStatusProcessing,
		CreatedAt:       time.Now(),
		ProviderOrderID: providerOrderID,
	}

	c.logger.Info("gift batch submitted",
		slog.String("order_id", order.ID),
		slog.String("provider_order_id", providerOrderID),
		slog.Int("recipients", len(recipients)),
	)

	return order, nil
}

func (c *client) simulateSend(ctx context.Context, gift entity.Gift, recipients []entity.Person, message string) (*entity.GiftOrder, error) {
	select {
	case <-time.After(c.sendDelay):
	case <-ctx.Done():
		return nil, errors.WithStack(ctx.Err())
	}

	return &entity.GiftOrder{
		ID:         "order-" + uuid.NewString(),
		Gift:       gift,
		Recipients: append([]entity.Person(nil), recipients...),
		Message:    message,
		TotalPrice: gift.Price * float64(len(recipients)),
		Status:     entity.OrderStatusSent,
		CreatedAt:  time.Now(),
	}, nil
}

// OrderStatus is best effort; failures map to OrderStatusUnknown without an
// error so callers can render something.
func (c *client) OrderStatus(ctx context.Context, orderID string) (entity.OrderStatus, error) {
	if !c.IsConfigured() {
		return entity.OrderStatusSent, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"/v1/orders/"+orderID, nil)
	if err != nil {
		return entity.OrderStatusUnknown, nil
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return entity.OrderStatusUnknown, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return entity.OrderStatusUnknown, nil
	}

	var decoded struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil || decoded.Status == "" {
		return entity.OrderStatusUnknown, nil
	}

	return entity.OrderStatus(decoded.Status), nil
}

func (c *client) authorize(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")
}
