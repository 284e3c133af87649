package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"cafe/internal/delivery/api/response"
	deliverycontext "cafe/internal/delivery/context"
	"cafe/internal/domain/constants"
	"cafe/internal/domain/service"
	"cafe/internal/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UploadHandlerParams holds dependencies for UploadHandler, injected by Fx.
type UploadHandlerParams struct {
	fx.In

	Storage service.BlobStorage
	Logger  *slog.Logger
}

// UploadHandler serves stored payment proofs and menu images.
type UploadHandler struct {
	storage service.BlobStorage
	logger  *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler.
func NewUploadHandler(params UploadHandlerParams) *UploadHandler {
	return &UploadHandler{storage: params.Storage, logger: params.Logger}
}

var servedPrefixes = []string{
	constants.PaymentProofPrefix + "/",
	constants.MenuImagePrefix + "/",
}

// ServeUpload streams the object named by the rest of the path.
func (h *UploadHandler) ServeUpload(c echo.Context) error {
	key, err := url.PathUnescape(c.Param("*"))
	if err != nil || !servableKey(key) {
		return response.NotFound(c, "UPLOAD_NOT_FOUND", "File not found")
	}

	reader, contentType, err := h.storage.Open(c.Request().Context(), key)
	if errors.Is(err, service.ErrBlobNotFound) {
		return response.NotFound(c, "UPLOAD_NOT_FOUND", "File not found")
	}
	if err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
			Error("Failed to open upload", slog.String("key", key), slog.Any("error", err))

		return response.InternalServerError(c, "UPLOAD_READ_FAILED", "Failed to read file")
	}
	defer reader.Close()

	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=86400")

	return c.Stream(http.StatusOK, contentType, reader)
}

func servableKey(key string) bool {
	if strings.Contains(key, "..") {
		return false
	}
	for _, prefix := range servedPrefixes {
		if rest, ok := strings.CutPrefix(key, prefix); ok && rest != "" && !strings.Contains(rest, "/") {
			return true
		}
	}

	return false
}
