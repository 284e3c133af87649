package middleware

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"cafe/internal/delivery/api/response"
	domainerrors "cafe/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails any
	}{
		{
			name:        "field error exposes fields",
			err:         domainerrors.NewFieldError(map[string]string{"studentName": "is required"}),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantDetails: map[string]any{"studentName": "is required"},
		},
		{
			name:        "wrapped domain error with details",
			err:         errors.Wrap(domainerrors.ErrInsufficientStock.WithDetails("item-1"), "checkout"),
			wantStatus:  http.StatusConflict,
			wantCode:    "INSUFFICIENT_STOCK",
			wantDetails: "item-1",
		},
		{
			name:       "server errors hide details",
			err:        errors.Wrap(domainerrors.ErrUploadFailed.WithDetails("bucket down"), "upload"),
			wantStatus: http.StatusBadGateway,
			wantCode:   "UPLOAD_FAILED",
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusRequestEntityTooLarge, "Request Entity Too Large"),
			wantStatus: http.StatusRequestEntityTooLarge,
			wantCode:   "REQUEST_ENTITY_TOO_LARGE",
		},
		{
			name:       "route not found",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "unknown error",
			err:        errors.New("pq: connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
			assert.NotEmpty(t, body.Meta.RequestID)
			assert.NotContains(t, rec.Body.String(), "pq:")
		})
	}
}

func TestErrorMiddleware_ClientGone(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	e := echo.New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx), rec)

	m.HandleHTTPError(errors.Wrap(context.Canceled, "load menu"), c)

	assert.Empty(t, rec.Body.String())
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, "METHOD_NOT_ALLOWED", statusCode(http.StatusMethodNotAllowed))
	assert.Equal(t, "IM_A_TEAPOT", statusCode(http.StatusTeapot))
	assert.Equal(t, "HTTP_ERROR", statusCode(599))
}
