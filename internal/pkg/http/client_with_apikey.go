package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	nethttp "net/http"
	"time"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/circuitbreaker"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/logger"
	nrpkg "github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/newrelic"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/requestcontext"
)

const (
	// DefaultTimeout for HTTP requests
	DefaultTimeout = 10 * time.Second
	// APIKeyHeader is the header name for API key
	APIKeyHeader = "X-API-Key"
)

// APIKeyClient calls another service's JSON API with an API key, behind a
// circuit breaker
type APIKeyClient struct {
	client      *nethttp.Client
	breaker     *circuitbreaker.CircuitBreaker
	apiKey      string
	baseURL     string
	serviceName string
}

// NewAPIKeyClient creates a client for serviceName at baseURL
func NewAPIKeyClient(apiKey, serviceName, baseURL string, timeout time.Duration, breakers *circuitbreaker.Manager) *APIKeyClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &APIKeyClient{
		client:      &nethttp.Client{Timeout: timeout},
		breaker:     breakers.GetOrCreate(serviceName),
		apiKey:      apiKey,
		baseURL:     baseURL,
		serviceName: serviceName,
	}
}

// GetJSON performs a GET and decodes the response data into result
func (c *APIKeyClient) GetJSON(ctx context.Context, endpoint string, result interface{}) error {
	return c.call(ctx, nethttp.MethodGet, endpoint, nil, result)
}

// PostJSON performs a POST with a JSON body and decodes the response data into result
func (c *APIKeyClient) PostJSON(ctx context.Context, endpoint string, body interface{}, result interface{}) error {
	return c.call(ctx, nethttp.MethodPost, endpoint, body, result)
}

func (c *APIKeyClient) call(ctx context.Context, method, endpoint string, body, result interface{}) error {
	return c.breaker.Execute(ctx, func(ctx context.Context) error {
		resp, err := c.doRequest(ctx, method, endpoint, body)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		return c.decode(resp, result)
	})
}

func (c *APIKeyClient) decode(resp *nethttp.Response, result interface{}) error {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s response: %w", c.serviceName, err)
	}

	var env envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil && resp.StatusCode < 400 {
			return fmt.Errorf("failed to decode %s response: %w", c.serviceName, err)
		}
	}

	if resp.StatusCode >= 400 {
		msg := env.Error
		if msg == "" {
			msg = nethttp.StatusText(resp.StatusCode)
		}
		return &StatusError{
			Service:    c.serviceName,
			StatusCode: resp.StatusCode,
			Code:       env.ErrorCode,
			Message:    msg,
		}
	}

	if result == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, result); err != nil {
		return fmt.Errorf("failed to decode %s response data: %w", c.serviceName, err)
	}
	return nil
}

// doRequest performs the actual HTTP request with API key authentication
func (c *APIKeyClient) doRequest(ctx context.Context, method, endpoint string, body interface{}) (*nethttp.Response, error) {
	url := c.baseURL + endpoint

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(APIKeyHeader, c.apiKey)
	}
	if requestID := requestcontext.GetRequestID(ctx); requestID != "" {
		req.Header.Set(requestcontext.HeaderRequestID, requestID)
	}

	logger.Debug("Making HTTP request",
		logger.String("method", method),
		logger.String("url", url),
		logger.String("service", c.serviceName))

	resp, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*nethttp.Response, error) {
		return c.client.Do(req)
	})
	if err != nil {
		logger.ErrorCtx(ctx, "HTTP request failed",
			logger.String("method", method),
			logger.String("url", url),
			logger.String("service", c.serviceName),
			logger.Err(err))
		return nil, fmt.Errorf("request to %s failed: %w", c.serviceName, err)
	}

	return resp, nil
}

// AsStatusError unwraps a StatusError from err
func AsStatusError(err error) (*StatusError, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
