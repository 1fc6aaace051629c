package service

import (
	"github.com/google/uuid"
)

// QRCodeService renders share codes for public profiles
type QRCodeService interface {
	// GenerateProfileQR returns a PNG QR code that opens the profile of userID
	GenerateProfileQR(userID uuid.UUID) ([]byte, error)

	// ProfileURL returns the link encoded in the profile QR code
	ProfileURL(userID uuid.UUID) string
}
