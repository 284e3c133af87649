package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"cafe/internal/delivery/api/response"
	deliverycontext "cafe/internal/delivery/context"
	domainerrors "cafe/internal/domain/errors"
	"cafe/internal/errors"

	"github.com/labstack/echo/v4"
)

// statusClientClosedRequest is logged when the caller hung up before the
// handler returned. Nothing is written back.
const statusClientClosedRequest = 499

// ErrorMiddleware is the API's echo.HTTPErrorHandler.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError renders domain errors with their own code, echo errors with
// a code derived from the status, and anything else as an opaque 500.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.log(c).Error("Request failed", slog.Any("error", err), slog.String("code", appErr.ErrorCode()))
		}
		_ = response.AppError(c, appErr)

		return
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		_ = response.Error(c, httpErr.Code, statusCode(httpErr.Code), echoMessage(httpErr), nil)

		return
	}

	if errors.Is(err, context.Canceled) && c.Request().Context().Err() != nil {
		m.log(c).Debug("Client went away", slog.Int("status", statusClientClosedRequest), slog.String("path", c.Path()))

		return
	}

	m.log(c).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
	_ = response.InternalServerError(c, domainerrors.ErrInternalError.ErrorCode(), "Internal server error, please try again later")
}

// statusCode turns 413 into REQUEST_ENTITY_TOO_LARGE and so on.
func statusCode(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "HTTP_ERROR"
	}

	return strings.ToUpper(strings.NewReplacer(" ", "_", "-", "_", "'", "").Replace(text))
}

func echoMessage(httpErr *echo.HTTPError) string {
	if msg, ok := httpErr.Message.(string); ok && msg != "" {
		return msg
	}

	return http.StatusText(httpErr.Code)
}

func (m *ErrorMiddleware) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
}
