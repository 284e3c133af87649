package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cafe/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerMiddleware_Handle(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		took      time.Duration
		handler   echo.HandlerFunc
		wantLevel string
	}{
		{
			name:    "fast success is quiet",
			took:    10 * time.Millisecond,
			handler: func(c echo.Context) error { return c.NoContent(http.StatusOK) },
		},
		{
			name:      "fast success in debug",
			debug:     true,
			took:      10 * time.Millisecond,
			handler:   func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			wantLevel: "INFO",
		},
		{
			name:      "slow success",
			took:      3 * time.Second,
			handler:   func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			wantLevel: "WARN",
		},
		{
			name:      "client error",
			took:      time.Millisecond,
			handler:   func(echo.Context) error { return echo.ErrNotFound },
			wantLevel: "WARN",
		},
		{
			name:      "server error",
			took:      time.Millisecond,
			handler:   func(echo.Context) error { return echo.ErrInternalServerError },
			wantLevel: "ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug
			cfg.HTTP.SlowRequest = 2 * time.Second

			m := NewLoggerMiddleware(slog.New(slog.NewTextHandler(&buf, nil)), cfg)
			start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
			calls := 0
			m.now = func() time.Time {
				calls++
				if calls == 1 {
					return start
				}

				return start.Add(tt.took)
			}

			e := echo.New()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/menu", nil), httptest.NewRecorder())

			require.NoError(t, m.Handle(tt.handler)(c))

			if tt.wantLevel == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), "level="+tt.wantLevel)
			assert.Contains(t, buf.String(), "uri=/api/v1/menu")
		})
	}
}
