package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/health"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/logger"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/metrics"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/middleware"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
	nrpkg "github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/newrelic"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/validator"
)

const defaultShutdownTimeout = 30 * time.Second

// NewEcho builds the router every service shares: recovery, request ids,
// tracing, access logs, metrics, validation and the health endpoints
func NewEcho(configs *models.Config, serviceName string, zapLogger *logger.ZapLogger, nrApp *newrelic.Application, deps map[string]health.Pinger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validator.New()

	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.RequestContextMiddleware(serviceName))
	e.Use(nrpkg.EchoMiddleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(echomw.BodyLimit("1M"))

	if configs.Metrics.Enabled {
		e.Use(metrics.EchoMiddleware())
		metrics.Register(e, configs.Metrics.Path)
	}

	health.RegisterHealthEndpoints(e, serviceName, configs.App.Version, deps)
	return e
}

// GracefulServer wraps Echo server with graceful shutdown capabilities
type GracefulServer struct {
	echo            *echo.Echo
	logger          *logger.ZapLogger
	port            int
	shutdownTimeout time.Duration
	components      *ShutdownManager
}

// NewGracefulServer creates a new server with graceful shutdown
func NewGracefulServer(e *echo.Echo, zapLogger *logger.ZapLogger, cfg models.ServerConfig, components *ShutdownManager) *GracefulServer {
	timeout := time.Duration(cfg.ShutdownTimeout) * time.Second
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	if cfg.ReadTimeout > 0 {
		e.Server.ReadTimeout = time.Duration(cfg.ReadTimeout) * time.Second
	}
	if cfg.WriteTimeout > 0 {
		e.Server.WriteTimeout = time.Duration(cfg.WriteTimeout) * time.Second
	}
	if components == nil {
		components = NewShutdownManager(zapLogger)
	}

	return &GracefulServer{
		echo:            e,
		logger:          zapLogger,
		port:            cfg.Port,
		shutdownTimeout: timeout,
		components:      components,
	}
}

// Run serves HTTP until ctx is cancelled or the listener fails, then stops
// the server and the registered components
func (s *GracefulServer) Run(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.port)
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("Starting HTTP server", logger.String("address", addr))
		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		s.logger.Info("Received shutdown signal", logger.Err(ctx.Err()))
	case serveErr = <-errCh:
		if serveErr != nil {
			s.logger.Error("HTTP server failed", logger.Err(serveErr))
		}
	}

	if err := s.Shutdown(); err != nil && serveErr == nil {
		serveErr = err
	}
	return serveErr
}

// Shutdown gracefully shuts down the server, then the components
func (s *GracefulServer) Shutdown() error {
	s.logger.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	err := s.echo.Shutdown(ctx)
	if err != nil {
		s.logger.Error("Server forced to shutdown", logger.Err(err))
	}

	s.components.Shutdown(ctx)
	s.logger.Info("Server shutdown completed")
	return err
}

// ShutdownManager collects cleanup functions and runs them in reverse
// registration order, so later components stop before what they depend on
type ShutdownManager struct {
	logger    *logger.ZapLogger
	mu        sync.Mutex
	names     []string
	functions []func(context.Context) error
}

// NewShutdownManager creates a new shutdown manager
func NewShutdownManager(zapLogger *logger.ZapLogger) *ShutdownManager {
	return &ShutdownManager{logger: zapLogger}
}

// Register adds a named cleanup function
func (sm *ShutdownManager) Register(name string, fn func(context.Context) error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.names = append(sm.names, name)
	sm.functions = append(sm.functions, fn)
}

// RegisterCloser adds a component that only needs Close
func (sm *ShutdownManager) RegisterCloser(name string, closer interface{ Close() error }) {
	sm.Register(name, func(context.Context) error { return closer.Close() })
}

// Len returns the number of registered components
func (sm *ShutdownManager) Len() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return len(sm.functions)
}

// Shutdown executes all registered cleanup functions and returns the
// errors joined; a failing component does not stop the others
func (sm *ShutdownManager) Shutdown(ctx context.Context) error {
	sm.mu.Lock()
	names := append([]string(nil), sm.names...)
	functions := append([]func(context.Context) error(nil), sm.functions...)
	sm.mu.Unlock()

	sm.logger.Info("Starting graceful shutdown of components", logger.Int("components", len(functions)))

	var errs []error
	for i := len(functions) - 1; i >= 0; i-- {
		if err := functions[i](ctx); err != nil {
			sm.logger.Error("Error during component shutdown",
				logger.String("component", names[i]),
				logger.Err(err))
			errs = append(errs, fmt.Errorf("%s: %w", names[i], err))
		}
	}

	sm.logger.Info("All components shutdown completed")
	return errors.Join(errs...)
}
