package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/circuitbreaker"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/logger"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/requestcontext"
)

type trip struct {
	TripID         string `json:"tripId"`
	AvailableSeats int    `json:"availableSeats"`
}

func newClient(t *testing.T, handler http.HandlerFunc) *APIKeyClient {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	breakers := circuitbreaker.NewManager(logger.NewFromZap(zap.NewNop()))
	return NewAPIKeyClient("secret-key", "transport-service", srv.URL, time.Second, breakers)
}

func TestAPIKeyClient_GetJSON(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret-key", r.Header.Get(APIKeyHeader))
		assert.Equal(t, "req-42", r.Header.Get(requestcontext.HeaderRequestID))
		assert.Equal(t, "/internal/trips/t-1", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    map[string]interface{}{"tripId": "t-1", "availableSeats": 3},
		})
	})

	ctx := requestcontext.WithRequestID(context.Background(), "req-42")
	var got trip
	require.NoError(t, client.GetJSON(ctx, "/internal/trips/t-1", &got))
	assert.Equal(t, trip{TripID: "t-1", AvailableSeats: 3}, got)
}

func TestAPIKeyClient_PostJSON(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "t-1", body["tripId"])
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success":true,"message":"ok"}`))
	})

	err := client.PostJSON(context.Background(), "/internal/trips/t-1/reserve-seat", map[string]string{"tripId": "t-1"}, nil)
	assert.NoError(t, err)
}

func TestAPIKeyClient_StatusError(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"success":false,"error":"Trip not found","errorCode":"TRIP_NOT_FOUND","code":404}`))
	})

	var got trip
	err := client.GetJSON(context.Background(), "/internal/trips/missing", &got)
	require.Error(t, err)

	se, ok := AsStatusError(err)
	require.True(t, ok)
	assert.True(t, se.NotFound())
	assert.True(t, se.ClientError())
	assert.Equal(t, "TRIP_NOT_FOUND", se.Code)
	assert.Equal(t, "Trip not found", se.Message)
}

func TestAPIKeyClient_ServerErrorWithoutBody(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	err := client.GetJSON(context.Background(), "/x", nil)
	se, ok := AsStatusError(err)
	require.True(t, ok)
	assert.False(t, se.ClientError())
	assert.Equal(t, "Bad Gateway", se.Message)
}

func TestAPIKeyClient_Unreachable(t *testing.T) {
	breakers := circuitbreaker.NewManager(logger.NewFromZap(zap.NewNop()))
	client := NewAPIKeyClient("", "payment-service", "http://127.0.0.1:1", 200*time.Millisecond, breakers)

	err := client.GetJSON(context.Background(), "/x", nil)
	require.Error(t, err)
	_, ok := AsStatusError(err)
	assert.False(t, ok)
	assert.Contains(t, err.Error(), "request to payment-service failed")
}
