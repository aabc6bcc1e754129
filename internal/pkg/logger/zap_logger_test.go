package logger

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observed(t *testing.T) *observer.ObservedLogs {
	core, logs := observer.New(zapcore.DebugLevel)
	prev := GetGlobalLogger()
	SetGlobalLogger(NewFromZap(zap.New(core)))
	t.Cleanup(func() { SetGlobalLogger(prev) })
	return logs
}

func TestGlobalHelpers(t *testing.T) {
	logs := observed(t)

	Info("ticket purchased", String("ticket_id", "t-1"))
	Warn("publish failed", Err(errors.New("broker down")))
	ErrorCtx(context.Background(), "store failed", Int("attempt", 1))

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "t-1", entries[0].ContextMap()["ticket_id"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "broker down", entries[1].ContextMap()["error"])
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
}

func TestNewZapLogger_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "svc.log")
	l, err := NewZapLogger(ZapConfig{Level: "debug", FilePath: path, ServiceName: "ticketing-service"}, nil)
	require.NoError(t, err)
	l.Info("hello")
	require.NoError(t, l.Close())
	assert.FileExists(t, path)
}

func TestNewZapLogger_BadLevelFallsBackToInfo(t *testing.T) {
	l, err := NewZapLogger(ZapConfig{Level: "loud"}, nil)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
}

func TestZapEchoMiddleware(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewFromZap(zap.New(core))

	e := echo.New()
	e.Use(ZapEchoMiddleware(l))
	e.GET("/ok", func(c echo.Context) error {
		c.Set("passenger_id", "p-1")
		return c.NoContent(http.StatusOK)
	})
	e.GET("/missing", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "nope")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "Request processed", entries[0].Message)
	assert.Equal(t, "p-1", entries[0].ContextMap()["subject"])
	assert.Equal(t, "Client error", entries[1].Message)
	assert.Equal(t, int64(http.StatusNotFound), entries[1].ContextMap()["status"])
}

func TestLogHTTPRequest_ServerError(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewFromZap(zap.New(core))

	l.LogHTTPRequest(nil, http.MethodPost, "/api/v1/tickets", "127.0.0.1", "p-1", "req-1", 500, 3*time.Millisecond, errors.New("boom"))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "boom", entries[0].ContextMap()["error"])
}
