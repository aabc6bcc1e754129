package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/health"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/logger"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
)

func testLogger() *logger.ZapLogger {
	return logger.NewFromZap(zap.NewNop())
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func TestShutdownManager_ReverseOrder(t *testing.T) {
	sm := NewShutdownManager(testLogger())

	var order []string
	for _, name := range []string{"postgres", "redis", "bus"} {
		name := name
		sm.Register(name, func(context.Context) error {
			order = append(order, name)
			return nil
		})
	}

	require.NoError(t, sm.Shutdown(context.Background()))
	assert.Equal(t, []string{"bus", "redis", "postgres"}, order)
}

func TestShutdownManager_ContinuesAfterError(t *testing.T) {
	sm := NewShutdownManager(testLogger())

	closed := false
	sm.RegisterCloser("postgres", closerFunc(func() error {
		closed = true
		return nil
	}))
	sm.Register("bus", func(context.Context) error {
		return errors.New("drain timeout")
	})

	err := sm.Shutdown(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bus: drain timeout")
	assert.True(t, closed)
}

func TestShutdownManager_ConcurrentRegister(t *testing.T) {
	sm := NewShutdownManager(testLogger())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sm.Register("c", func(context.Context) error { return nil })
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, sm.Len())
}

func TestNewGracefulServer_Defaults(t *testing.T) {
	e := echo.New()
	s := NewGracefulServer(e, testLogger(), models.ServerConfig{Port: 0, ReadTimeout: 5}, nil)

	assert.Equal(t, defaultShutdownTimeout, s.shutdownTimeout)
	assert.Equal(t, 5*time.Second, e.Server.ReadTimeout)
	assert.NotNil(t, s.components)
}

func TestGracefulServer_RunStopsOnCancel(t *testing.T) {
	sm := NewShutdownManager(testLogger())
	stopped := make(chan struct{})
	sm.Register("consumer", func(context.Context) error {
		close(stopped)
		return nil
	})

	s := NewGracefulServer(echo.New(), testLogger(), models.ServerConfig{Port: 0, ShutdownTimeout: 1}, sm)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	<-stopped
}

func TestNewEcho(t *testing.T) {
	configs := &models.Config{
		App:     models.AppConfig{Version: "0.1.0"},
		Metrics: models.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
	e := NewEcho(configs, "ticketing-service", testLogger(), nil, map[string]health.Pinger{
		"postgres": health.PingFunc(func(context.Context) error { return nil }),
	})
	e.GET("/boom", func(c echo.Context) error { panic("x") })

	for path, code := range map[string]int{
		"/health":  http.StatusOK,
		"/ready":   http.StatusOK,
		"/metrics": http.StatusOK,
		"/boom":    http.StatusInternalServerError,
	} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, code, rec.Code, path)
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"), path)
	}
}
