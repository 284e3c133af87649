package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"cafe/config"
	deliverycontext "cafe/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes one access log line per request. Failures and slow
// requests are always logged; everything else only in debug mode.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
	slow   time.Duration
	now    func() time.Time
}

func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  cfg.Env.Debug,
		slow:   cfg.HTTP.SlowRequest,
		now:    time.Now,
	}
}

func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := m.now()

		err := next(c)
		if err != nil {
			// The status is only known once the error handler has written it.
			c.Error(err)
		}

		latency := m.now().Sub(start)
		if level, ok := m.level(c.Response().Status, latency); ok {
			m.write(c, level, latency, err)
		}

		return nil
	}
}

func (m *LoggerMiddleware) level(status int, latency time.Duration) (slog.Level, bool) {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError, true
	case status >= http.StatusBadRequest:
		return slog.LevelWarn, true
	case m.slow > 0 && latency >= m.slow:
		return slog.LevelWarn, true
	case m.debug:
		return slog.LevelInfo, true
	default:
		return slog.LevelInfo, false
	}
}

func (m *LoggerMiddleware) write(c echo.Context, level slog.Level, latency time.Duration, err error) {
	req := c.Request()
	res := c.Response()

	attrs := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("uri", req.URL.Path),
		slog.Int("status", res.Status),
		slog.Int64("bytes_out", res.Size),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}
	if req.URL.RawQuery != "" {
		attrs = append(attrs, slog.String("query", req.URL.RawQuery))
	}
	if userID, ok := deliverycontext.GetUserID(c); ok {
		attrs = append(attrs, slog.String("user_id", userID.String()))
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	// The request scoped logger already carries request_id.
	deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).
		LogAttrs(req.Context(), level, "HTTP Request", attrs...)
}
