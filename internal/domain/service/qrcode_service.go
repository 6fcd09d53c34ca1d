package service

// QRCodeService generates QR codes for storefront deep links.
type QRCodeService interface {
	// GenerateProductQR returns a PNG QR code linking to the storefront page
	// of the given product.
	GenerateProductQR(productID string) ([]byte, error)
}
