package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"cafe/config"
	deliverycontext "cafe/internal/delivery/context"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}

	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func sqlFunc() (string, int64) {
	return "UPDATE menu_items SET stock = stock - 1", 0
}

func TestQueryLogger_Classify(t *testing.T) {
	cfg := &config.Config{Database: &config.DatabaseConfig{SlowQueryThreshold: 100 * time.Millisecond}}
	l := newQueryLogger(nil, cfg).(*queryLogger)

	tests := []struct {
		name    string
		err     error
		elapsed time.Duration
		level   slog.Level
		logged  bool
	}{
		{name: "fast query", elapsed: time.Millisecond, level: slog.LevelDebug, logged: false},
		{name: "slow query", elapsed: time.Second, level: slog.LevelWarn, logged: true},
		{name: "not found", err: gorm.ErrRecordNotFound, level: slog.LevelDebug, logged: false},
		{name: "stock check", err: &pgconn.PgError{Code: pgCheckViolation}, level: slog.LevelWarn, logged: true},
		{name: "duplicate email", err: gorm.ErrDuplicatedKey, level: slog.LevelWarn, logged: true},
		{name: "driver failure", err: sql.ErrConnDone, level: slog.LevelError, logged: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, _, logged := l.classify(tt.err, tt.elapsed)

			assert.Equal(t, tt.level, level)
			assert.Equal(t, tt.logged, logged)
		})
	}
}

func TestQueryLogger_UsesRequestLogger(t *testing.T) {
	base, baseBuf := newBufferLogger()
	reqLogger, reqBuf := newBufferLogger()
	l := newQueryLogger(base, &config.Config{})

	ctx := deliverycontext.WithLogger(context.Background(), reqLogger.With(slog.String("request_id", "req-1")))
	l.Trace(ctx, time.Now(), sqlFunc, sql.ErrConnDone)

	assert.Empty(t, baseBuf.String())
	assert.Contains(t, reqBuf.String(), "request_id=req-1")
	assert.Contains(t, reqBuf.String(), "Query failed")
}

func TestPoolMonitor_Report(t *testing.T) {
	logger, buf := newBufferLogger()
	m := &poolMonitor{logger: logger, interval: time.Second, warnWait: 50 * time.Millisecond}

	m.report(context.Background(), sql.DBStats{WaitCount: 3}, sql.DBStats{WaitCount: 3})
	assert.Empty(t, buf.String())

	m.report(context.Background(),
		sql.DBStats{WaitCount: 1, WaitDuration: time.Millisecond},
		sql.DBStats{WaitCount: 3, WaitDuration: 201 * time.Millisecond},
	)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "waits=2")
	assert.Contains(t, buf.String(), "avgWait=100ms")
}
