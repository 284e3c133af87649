// Package response renders the JSON envelopes returned by the API. Every body
// carries a meta block with the request ID so a client can quote it back.
package response

import (
	"net/http"

	deliverycontext "cafe/internal/delivery/context"
	domainerrors "cafe/internal/domain/errors"
	"cafe/internal/errors"

	"github.com/labstack/echo/v4"
)

// Meta is attached to every envelope.
type Meta struct {
	RequestID string `json:"request_id"`
}

// SuccessResponse wraps a payload.
type SuccessResponse struct {
	Data any   `json:"data"`
	Meta *Meta `json:"meta"`
}

// ErrorResponse wraps a failure.
type ErrorResponse struct {
	Error *Problem `json:"error"`
	Meta  *Meta    `json:"meta"`
}

// Problem describes a failure. Code is stable and meant for clients to branch
// on; Message is for people.
type Problem struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func metaOf(c echo.Context) *Meta {
	return &Meta{RequestID: deliverycontext.GetRequestID(c)}
}

// Success writes data with the given status.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{Data: data, Meta: metaOf(c)})
}

// Error writes a failure envelope. Details never leave the server on 401, 403
// or any 5xx.
func Error(c echo.Context, statusCode int, errorCode, message string, details any) error {
	if !exposesDetails(statusCode) {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &Problem{Code: errorCode, Message: message, Details: details},
		Meta:  metaOf(c),
	})
}

func exposesDetails(statusCode int) bool {
	switch {
	case statusCode >= http.StatusInternalServerError:
		return false
	case statusCode == http.StatusUnauthorized, statusCode == http.StatusForbidden:
		return false
	default:
		return true
	}
}

func Unauthorized(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

func Forbidden(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, nil)
}

func NotFound(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, nil)
}

func InternalServerError(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// AppError renders a domain error with its own status and code.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), detailsOf(appErr))
}

// detailsOf prefers the per-field map of a validation failure over the free
// text details string.
func detailsOf(appErr domainerrors.AppError) any {
	if fieldErr, ok := errors.AsType[*domainerrors.FieldError](appErr); ok {
		return fieldErr.Fields()
	}
	if d := appErr.Details(); d != "" {
		return d
	}

	return nil
}

// HandleAppError renders domain errors and hands anything else, with a stack,
// to the centralized error handler.
func HandleAppError(c echo.Context, err error) error {
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return AppError(c, appErr)
	}

	return errors.WithStack(err)
}
