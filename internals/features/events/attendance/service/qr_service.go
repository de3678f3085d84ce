package service

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

// BuildCheckinURL: payload QR adalah URL check-in, fungsi murni dari
// base URL + registration id — hasilnya selalu sama untuk input sama,
// jadi aman di-cache lama di sisi client/CDN.
func BuildCheckinURL(baseURL string, registrationID uuid.UUID) string {
	return fmt.Sprintf("%s/attendance/%s", strings.TrimRight(baseURL, "/"), registrationID)
}

// GenerateQRPNG render URL check-in jadi PNG.
func GenerateQRPNG(baseURL string, registrationID uuid.UUID, size int) ([]byte, error) {
	if size <= 0 {
		size = 256
	}
	png, err := qrcode.Encode(BuildCheckinURL(baseURL, registrationID), qrcode.Medium, size)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat QR code")
	}
	return png, nil
}
