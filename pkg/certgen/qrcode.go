package certgen

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

// VerificationURL builds the payload encoded into the QR code. The shape
// <frontend>/verify/<number> is what printed certificates carry and must
// stay stable.
func VerificationURL(frontendURL, certificateNumber string) string {
	return fmt.Sprintf("%s/verify/%s", strings.TrimRight(frontendURL, "/"), certificateNumber)
}

// Size 512 gives a comfortably scannable PNG; the PDF stamp scales it down.
func GenerateQRCode(link, outputPath string, size int) error {
	err := qrcode.WriteFile(link, qrcode.Medium, size, outputPath)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}
	return nil
}
