package qrcode

import (
	"strings"

	"cafe/config"
	domainerrors "cafe/internal/domain/errors"
	"cafe/internal/domain/service"
	"cafe/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	defaultBaseURL = "cafe://pre-order"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates the pickup code service from configuration
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level, baseURL := defaultSize, "", defaultBaseURL
	if cfg != nil && cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = cfg.QRCode.ErrorCorrectionLevel
		if cfg.QRCode.BaseURL != "" {
			baseURL = strings.TrimRight(cfg.QRCode.BaseURL, "/")
		}
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(level),
		baseURL:              baseURL,
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToLower(level) {
	case "l", "low":
		return qrcode.Low
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// PickupPayload returns the text encoded in the pickup code of an order
func (s *qrcodeService) PickupPayload(orderID uuid.UUID) string {
	return s.baseURL + "/" + orderID.String()
}

// GeneratePickupQR renders the pickup code of an order as PNG
func (s *qrcodeService) GeneratePickupQR(orderID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.PickupPayload(orderID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParsePickupQR accepts only payloads produced by PickupPayload
func (s *qrcodeService) ParsePickupQR(qrData string) (uuid.UUID, error) {
	raw, ok := strings.CutPrefix(strings.TrimSpace(qrData), s.baseURL+"/")
	if !ok || raw == "" || strings.ContainsAny(raw, "/?#") {
		return uuid.Nil, errors.Wrapf(domainerrors.ErrInvalidQRCode, "unexpected payload %q", qrData)
	}

	orderID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.Wrap(domainerrors.ErrInvalidQRCode, err.Error())
	}

	return orderID, nil
}
