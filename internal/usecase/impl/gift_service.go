package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	deliverycontext "giftscout/internal/delivery/context"
	"giftscout/internal/domain/entity"
	domainerrors "giftscout/internal/domain/errors"
	"giftscout/internal/domain/service"
	"giftscout/internal/store"
	"giftscout/internal/usecase"
)

// maxGiftMessageRunes bounds the personalized message attached to a send.
const maxGiftMessageRunes = 500

type giftService struct {
	store     *store.Store
	provider  service.GiftProvider
	publisher service.EventPublisher
	qr        service.QRCodeService
	logger    *slog.Logger
}

// NewGiftService creates the gift flow service. qr may be nil when QR codes
// are disabled.
func NewGiftService(
	st *store.Store,
	provider service.GiftProvider,
	publisher service.EventPublisher,
	qr service.QRCodeService,
	logger *slog.Logger,
) usecase.GiftUsecase {
	return &giftService{
		store:     st,
		provider:  provider,
		publisher: publisher,
		qr:        qr,
		logger:    logger,
	}
}

// Catalog returns the available gifts.
func (s *giftService) Catalog(ctx context.Context) ([]entity.Gift, error) {
	return s.provider.Catalog(ctx)
}

// SendGifts sends one gift to every selected person in a single batch. The
// selection is snapshotted before the send, so selection changes mid-flight
// cannot alter the batch.
func (s *giftService) SendGifts(ctx context.Context, giftID, message string) (*usecase.OrderConfirmation, error) {
	gift, ok := s.findGift(ctx, giftID)
	if !ok {
		s.store.AddNotification(entity.NotificationWarning, "Choose a gift before sending", 5*time.Second)

		return nil, domainerrors.ErrValidationDeclined.WithDetails("unknown gift id: " + giftID)
	}

	selection := s.store.SelectedPeople()
	if len(selection) == 0 {
		s.store.AddNotification(entity.NotificationWarning, "Select at least one person before sending", 5*time.Second)

		return nil, domainerrors.ErrValidationDeclined.WithDetails("empty selection")
	}

	recipients := make([]entity.Person, 0, len(selection))
	for _, p := range selection {
		recipients = append(recipients, p)
	}

	message = truncateRunes(message, maxGiftMessageRunes)

	order, err := s.provider.SendGift(ctx, gift, recipients, message)
	if err != nil {
		s.logger.Error("gift send failed", slog.Any("error", err))
		s.store.AddNotification(entity.NotificationError, "Sending gifts failed", 5*time.Second)

		return nil, domainerrors.ErrSendFailed.WithDetails(err.Error())
	}

	s.store.CreateOrder(*order)
	s.store.ClearSelection()
	s.store.AddNotification(entity.NotificationSuccess,
		"Gifts are on their way to "+pluralRecipients(len(recipients)), 5*time.Second)

	s.publishOrderEvent(ctx, order)

	confirmation := &usecase.OrderConfirmation{Order: *order}
	if s.qr != nil {
		png, err := s.qr.GenerateOrderTrackingQR(order.ID)
		if err != nil {
			s.logger.Warn("order tracking QR generation failed", slog.Any("error", err))
		} else {
			confirmation.TrackingQR = png
		}
	}

	return confirmation, nil
}

// OrderStatus looks up the provider-side status of an order.
func (s *giftService) OrderStatus(ctx context.Context, orderID string) (entity.OrderStatus, error) {
	return s.provider.OrderStatus(ctx, orderID)
}

func (s *giftService) findGift(ctx context.Context, giftID string) (entity.Gift, bool) {
	if giftID == "" {
		return entity.Gift{}, false
	}

	gifts, err := s.provider.Catalog(ctx)
	if err != nil {
		return entity.Gift{}, false
	}
	for _, g := range gifts {
		if g.ID == giftID {
			return g, true
		}
	}

	return entity.Gift{}, false
}

// publishOrderEvent is best effort; a publish failure never fails the send.
func (s *giftService) publishOrderEvent(ctx context.Context, order *entity.GiftOrder) {
	event := &service.OrderEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:        order.ID,
		GiftID:         order.Gift.ID,
		GiftName:       order.Gift.Name,
		RecipientCount: len(order.Recipients),
		TotalPrice:     order.TotalPrice,
		Status:         string(order.Status),
		CreatedAt:      order.CreatedAt,
	}
	if business := s.store.CurrentBusiness(); business != nil {
		event.BusinessID = business.ID
	}

	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		s.logger.Warn("order event publish failed",
			slog.String("order_id", order.ID),
			slog.Any("error", err),
		)
	}
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}

	return string(runes[:limit])
}

func pluralRecipients(n int) string {
	if n == 1 {
		return "1 person"
	}

	return strconv.Itoa(n) + " people"
}
