package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateShareQR generates a PNG QR code encoding a share landing URL
	GenerateShareQR(shareURL string) ([]byte, error)
}
