package qrcode

import (
	"strings"

	"devconnector/config"
	"devconnector/internal/domain/service"
	"devconnector/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a QR code service from the qrcode section of the config
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeServiceWith(256, "M", "")
	}

	return NewQRCodeServiceWith(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

// NewQRCodeServiceWith creates a QR code service with explicit settings
func NewQRCodeServiceWith(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(errorCorrectionLevel),
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// ProfileURL returns the public profile link, relative when no base URL is set
func (s *qrcodeService) ProfileURL(userID uuid.UUID) string {
	return s.baseURL + "/profile/" + userID.String()
}

// GenerateProfileQR renders ProfileURL as a PNG
func (s *qrcodeService) GenerateProfileQR(userID uuid.UUID) ([]byte, error) {
	code, err := qrcode.New(s.ProfileURL(userID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := code.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
