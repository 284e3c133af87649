package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cafe/config"
	deliverycontext "cafe/internal/delivery/context"
	"cafe/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// queryLogger routes gorm output through slog. Queries run inside a request
// log through that request's logger so they carry its request_id.
type queryLogger struct {
	base          *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newQueryLogger(base *slog.Logger, cfg *config.Config) logger.Interface {
	l := &queryLogger{base: base, level: logger.Warn}
	if cfg == nil {
		return l
	}

	if cfg.Env.Debug {
		l.level = logger.Info
	}
	if cfg.Database != nil {
		l.slowThreshold = cfg.Database.SlowQueryThreshold
	}

	return l
}

func (l *queryLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *queryLogger) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.base)
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *queryLogger) printf(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args ...any) {
	out := l.log(ctx)
	if l.level < threshold || out == nil {
		return
	}

	out.LogAttrs(ctx, level, "gorm", slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	out := l.log(ctx)
	if out == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	level, msg, ok := l.classify(err, elapsed)
	if !ok {
		return
	}

	sql, rows := fc()
	attrs := []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	out.LogAttrs(ctx, level, msg, attrs...)
}

// classify picks how a finished query is logged. Misses and constraint
// violations are answered with domain errors by the repositories, so they
// stay below error level.
func (l *queryLogger) classify(err error, elapsed time.Duration) (slog.Level, string, bool) {
	switch {
	case err != nil && errors.Is(err, gorm.ErrRecordNotFound):
		return slog.LevelDebug, "Query found no rows", l.level >= logger.Info
	case err != nil && isExpectedViolation(err):
		return slog.LevelWarn, "Query rejected by constraint", l.level >= logger.Warn
	case err != nil:
		return slog.LevelError, "Query failed", l.level >= logger.Error
	case l.slowThreshold > 0 && elapsed > l.slowThreshold:
		return slog.LevelWarn, "Slow query", l.level >= logger.Warn
	default:
		return slog.LevelDebug, "Query", l.level >= logger.Info
	}
}

func isExpectedViolation(err error) bool {
	return isUniqueConstraintViolation(err) ||
		isCheckConstraintViolation(err) ||
		isForeignKeyConstraintViolation(err)
}
