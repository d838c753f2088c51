package service

// QRCodeService defines the interface for order-tracking QR code generation.
type QRCodeService interface {
	// GenerateOrderTrackingQR generates a PNG QR code that resolves to the
	// order's tracking page. Returns nil bytes when tracking links are not
	// configured.
	GenerateOrderTrackingQR(orderID string) ([]byte, error)
}
