package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(e *echo.Echo, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestRegisterHealthEndpoints(t *testing.T) {
	e := echo.New()
	RegisterHealthEndpoints(e, "ticketing", "1.2.3", map[string]Pinger{
		"postgres": PingFunc(func(context.Context) error { return nil }),
	})

	rec := serve(e, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())

	rec = serve(e, "/ping")
	require.Equal(t, http.StatusOK, rec.Code)
	var info BuildInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "ticketing", info.ServiceName)
	assert.Equal(t, "1.2.3", info.Version)

	rec = serve(e, "/ready")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReadyHandler_DependencyDown(t *testing.T) {
	e := echo.New()
	RegisterHealthEndpoints(e, "notification", "dev", map[string]Pinger{
		"postgres": PingFunc(func(context.Context) error { return nil }),
		"redis":    PingFunc(func(context.Context) error { return errors.New("connection refused") }),
	})

	rec := serve(e, "/ready")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var report ReadinessReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, "not ready", report.Status)
	assert.Equal(t, "ok", report.Dependencies["postgres"])
	assert.Equal(t, "connection refused", report.Dependencies["redis"])
}
