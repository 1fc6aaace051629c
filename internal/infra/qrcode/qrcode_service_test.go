package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"devconnector/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeServiceWith(tt.size, tt.errorCorrectionLevel, "")
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_ProfileURL(t *testing.T) {
	userID := uuid.New()

	relative := NewQRCodeServiceWith(256, "M", "")
	assert.Equal(t, "/profile/"+userID.String(), relative.ProfileURL(userID))

	absolute := NewQRCodeServiceWith(256, "M", "https://devconnector.example.com/")
	assert.Equal(t, "https://devconnector.example.com/profile/"+userID.String(), absolute.ProfileURL(userID))
}

func TestQRCodeService_GenerateProfileQR(t *testing.T) {
	service := NewQRCodeService(&config.Config{
		QRCode: &config.QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M", BaseURL: "https://devconnector.example.com"},
	})

	qrBytes, err := service.GenerateProfileQR(uuid.New())
	require.NoError(t, err)
	require.NotEmpty(t, qrBytes)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateProfileQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeServiceWith(tt.size, "M", "")

			qrBytes, err := service.GenerateProfileQR(uuid.New())
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(qrBytes))
			require.NoError(t, err)
			assert.Equal(t, tt.size, img.Bounds().Dx())
		})
	}
}

func TestQRCodeService_DistinctUsersDistinctCodes(t *testing.T) {
	service := NewQRCodeService(&config.Config{})

	first, err := service.GenerateProfileQR(uuid.New())
	require.NoError(t, err)
	second, err := service.GenerateProfileQR(uuid.New())
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
