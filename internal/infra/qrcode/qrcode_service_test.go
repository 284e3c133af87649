package qrcode

import (
	"testing"

	"cafe/config"
	domainerrors "cafe/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		in   string
		want qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"low", qrcode.Low},
		{"M", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
		{"", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecoveryLevel(tt.in))
		})
	}
}

func TestQRCodeService_GeneratePickupQR(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		svc := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{Size: size}})

		png, err := svc.GeneratePickupQR(uuid.New())
		require.NoError(t, err)
		require.Greater(t, len(png), 4)

		// PNG magic number
		assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, png[:4])
	}
}

func TestQRCodeService_PickupPayloadRoundTrip(t *testing.T) {
	svc := NewQRCodeService(nil)
	orderID := uuid.New()

	payload := svc.PickupPayload(orderID)
	assert.Equal(t, "cafe://pre-order/"+orderID.String(), payload)

	parsed, err := svc.ParsePickupQR(payload)
	require.NoError(t, err)
	assert.Equal(t, orderID, parsed)
}

func TestQRCodeService_CustomBaseURL(t *testing.T) {
	svc := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{BaseURL: "https://cafe.example/pickup/"}})
	orderID := uuid.New()

	assert.Equal(t, "https://cafe.example/pickup/"+orderID.String(), svc.PickupPayload(orderID))

	_, err := svc.ParsePickupQR("cafe://pre-order/" + orderID.String())
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidQRCode))
}

func TestQRCodeService_ParsePickupQR_Invalid(t *testing.T) {
	svc := NewQRCodeService(nil)
	id := uuid.New().String()

	tests := []struct {
		name    string
		payload string
	}{
		{"empty", ""},
		{"other scheme", "https://pre-order/" + id},
		{"other host", "cafe://menu/" + id},
		{"missing id", "cafe://pre-order/"},
		{"not a uuid", "cafe://pre-order/latte"},
		{"extra path", "cafe://pre-order/" + id + "/extra"},
		{"query", "cafe://pre-order/" + id + "?x=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ParsePickupQR(tt.payload)
			assert.Equal(t, uuid.Nil, got)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidQRCode))
		})
	}
}
