package qrcode

import (
	"fmt"
	"strings"

	"giftscout/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance. An empty baseURL
// disables tracking codes: generation returns nil bytes without error.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimSuffix(baseURL, "/"),
	}
}

// GenerateOrderTrackingQR generates a PNG QR code pointing at the order's
// tracking page.
func (s *qrcodeService) GenerateOrderTrackingQR(orderID string) ([]byte, error) {
	if s.baseURL == "" {
		return nil, nil
	}

	trackingURL := fmt.Sprintf("%s/orders/%s", s.baseURL, orderID)

	qrCode, err := qrcode.New(trackingURL, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
