package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	apimiddleware "cafe/internal/delivery/api/middleware"
	"cafe/internal/delivery/api/validator"
	deliverycontext "cafe/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

// pngFixture is the PNG signature plus the start of an IHDR chunk, enough for
// content sniffing.
var pngFixture = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(newDiscardLogger()).HandleHTTPError

	return e
}

// request describes one handler invocation. A nil user means the route is
// public or the identity is missing.
type request struct {
	method      string
	target      string
	body        io.Reader
	contentType string
	user        *uuid.UUID
	params      map[string]string
}

func invoke(t *testing.T, h echo.HandlerFunc, r request) *httptest.ResponseRecorder {
	t.Helper()

	e := newTestEcho()
	req := httptest.NewRequest(r.method, r.target, r.body)
	if r.contentType != "" {
		req.Header.Set(echo.HeaderContentType, r.contentType)
	} else if r.body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	for name, value := range r.params {
		c.SetParamNames(append(c.ParamNames(), name)...)
		c.SetParamValues(append(c.ParamValues(), value)...)
	}
	if r.user != nil {
		deliverycontext.SetIdentity(c, *r.user, []string{"admin"})
	}

	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &out))

	return out
}

func fieldDetails(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()

	env := decode(t, rec)
	require.NotNil(t, env.Error)

	var fields map[string]string
	require.NoError(t, json.Unmarshal(env.Error.Details, &fields), string(env.Error.Details))

	return fields
}
