// Package services: services/qrcode_service.go
package services

import (
	"errors"
	"strings"

	"github.com/skip2/go-qrcode"
)

// QRCodeEncoder matches qrcode.Encode so tests can substitute it.
type QRCodeEncoder func(content string, level qrcode.RecoveryLevel, size int) ([]byte, error)

// GenerateQRCode renders content as a square PNG of size pixels.
// A nil encoder uses qrcode.Encode.
func GenerateQRCode(content string, size int, encoder QRCodeEncoder) ([]byte, error) {
	if size <= 0 {
		return nil, errors.New("invalid dimensions: size must be positive")
	}
	if strings.TrimSpace(content) == "" {
		return nil, errors.New("qr code content is empty")
	}
	if encoder == nil {
		encoder = qrcode.Encode
	}
	return encoder(content, qrcode.Medium, size)
}
