package gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/apperror"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/cache"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/circuitbreaker"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/config"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/constants"
	httpclient "github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/http"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/logger"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/middleware"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
)

// HTTPGateway bundles the clients for every service ticketing calls
type HTTPGateway struct {
	Passenger *PassengerClient
	Transport *TransportClient
	Payment   *PaymentClient
}

// NewHTTPGateway creates the upstream clients. Passenger lookups are cached
// in Redis when redisClient is not nil.
func NewHTTPGateway(cfg *models.Config, breakers *circuitbreaker.Manager, redisClient *redis.Client) *HTTPGateway {
	timeout := config.RequestTimeout(cfg)
	apiKey := cfg.APIKey.TicketingService

	var passengerCache *cache.JSONCache
	if redisClient != nil {
		passengerCache = cache.NewJSONCache(redisClient, constants.KeyPassengerCache, cfg.Ticketing.PassengerCacheTTL)
	}

	return &HTTPGateway{
		Passenger: NewPassengerClient(
			httpclient.NewAPIKeyClient(apiKey, middleware.ServicePassenger, cfg.Services.PassengerServiceURL, timeout, breakers),
			passengerCache),
		Transport: NewTransportClient(
			httpclient.NewAPIKeyClient(apiKey, middleware.ServiceTransport, cfg.Services.TransportServiceURL, timeout, breakers)),
		Payment: NewPaymentClient(
			httpclient.NewAPIKeyClient(apiKey, middleware.ServicePayment, cfg.Services.PaymentServiceURL, timeout, breakers)),
	}
}

// upstreamError translates a failed call. A 404 becomes notFoundCode, a coded
// 4xx keeps the upstream's code, anything else is UPSTREAM_ERROR.
func upstreamError(err error, notFoundCode, what string) error {
	if se, ok := httpclient.AsStatusError(err); ok {
		switch {
		case se.NotFound():
			return apperror.NotFound(notFoundCode, fmt.Sprintf("%s not found", what))
		case se.ClientError() && se.Code != "":
			return apperror.Validation(se.Code, se.Message)
		}
	}
	if errors.Is(err, circuitbreaker.ErrCircuitBreakerOpen) || errors.Is(err, circuitbreaker.ErrTooManyRequests) {
		return apperror.Internal(constants.ErrCodeUpstream, "Upstream service temporarily unavailable", err)
	}
	return apperror.Internal(constants.ErrCodeUpstream, fmt.Sprintf("Failed to reach upstream for %s", what), err)
}

// PassengerClient reads passengers from the passenger service
type PassengerClient struct {
	api   *httpclient.APIKeyClient
	cache *cache.JSONCache
}

// NewPassengerClient creates a passenger client; cache may be nil
func NewPassengerClient(api *httpclient.APIKeyClient, cache *cache.JSONCache) *PassengerClient {
	return &PassengerClient{api: api, cache: cache}
}

// GetPassenger returns the passenger, served from cache when fresh
func (gw *PassengerClient) GetPassenger(ctx context.Context, passengerID string) (*models.Passenger, error) {
	if gw.cache != nil {
		var cached models.Passenger
		found, err := gw.cache.Get(ctx, passengerID, &cached)
		if err != nil {
			logger.WarnCtx(ctx, "Passenger cache read failed",
				logger.String("passenger_id", passengerID),
				logger.Err(err))
		}
		if found {
			return &cached, nil
		}
	}

	var p models.Passenger
	if err := gw.api.GetJSON(ctx, "/internal/passengers/"+passengerID, &p); err != nil {
		logger.WarnCtx(ctx, "Failed to get passenger",
			logger.String("passenger_id", passengerID),
			logger.Err(err))
		return nil, upstreamError(err, constants.ErrCodePassengerNotFound, "Passenger "+passengerID)
	}

	if gw.cache != nil {
		if err := gw.cache.Set(ctx, passengerID, &p); err != nil {
			logger.WarnCtx(ctx, "Passenger cache write failed",
				logger.String("passenger_id", passengerID),
				logger.Err(err))
		}
	}
	return &p, nil
}

// TransportClient reads trips and moves seats in the transport service.
// Trips are never cached since seat counts must be current.
type TransportClient struct {
	api *httpclient.APIKeyClient
}

// NewTransportClient creates a transport client
func NewTransportClient(api *httpclient.APIKeyClient) *TransportClient {
	return &TransportClient{api: api}
}

// GetTrip returns the trip
func (gw *TransportClient) GetTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	var trip models.Trip
	if err := gw.api.GetJSON(ctx, "/internal/trips/"+tripID, &trip); err != nil {
		logger.WarnCtx(ctx, "Failed to get trip",
			logger.String("trip_id", tripID),
			logger.Err(err))
		return nil, upstreamError(err, constants.ErrCodeTripNotFound, "Trip "+tripID)
	}
	return &trip, nil
}

// ReserveSeat takes one seat on the trip
func (gw *TransportClient) ReserveSeat(ctx context.Context, tripID string) (*models.Trip, error) {
	var trip models.Trip
	if err := gw.api.PostJSON(ctx, "/internal/trips/"+tripID+"/reserve-seat", nil, &trip); err != nil {
		return nil, upstreamError(err, constants.ErrCodeTripNotFound, "Trip "+tripID)
	}
	return &trip, nil
}

// ReleaseSeat gives one seat back
func (gw *TransportClient) ReleaseSeat(ctx context.Context, tripID string) error {
	if err := gw.api.PostJSON(ctx, "/internal/trips/"+tripID+"/release-seat", nil, nil); err != nil {
		return upstreamError(err, constants.ErrCodeTripNotFound, "Trip "+tripID)
	}
	return nil
}

// PaymentClient settles tickets through the payment service
type PaymentClient struct {
	api *httpclient.APIKeyClient
}

// NewPaymentClient creates a payment client
func NewPaymentClient(api *httpclient.APIKeyClient) *PaymentClient {
	return &PaymentClient{api: api}
}

// ProcessPayment runs one simulated settlement
func (gw *PaymentClient) ProcessPayment(ctx context.Context, req *models.PaymentRequest) (*models.PaymentResponse, error) {
	var resp models.PaymentResponse
	if err := gw.api.PostJSON(ctx, "/internal/payments", req, &resp); err != nil {
		logger.ErrorCtx(ctx, "Payment request failed",
			logger.String("ticket_id", req.TicketID),
			logger.Err(err))
		return nil, upstreamError(err, constants.ErrCodeTicketNotFound, "Ticket "+req.TicketID)
	}
	return &resp, nil
}

// GetPayment reads a payment back for confirmation
func (gw *PaymentClient) GetPayment(ctx context.Context, paymentID string) (*models.Payment, error) {
	var p models.Payment
	if err := gw.api.GetJSON(ctx, "/internal/payments/"+paymentID, &p); err != nil {
		logger.WarnCtx(ctx, "Failed to get payment",
			logger.String("payment_id", paymentID),
			logger.Err(err))
		return nil, upstreamError(err, constants.ErrCodePaymentNotFound, "Payment "+paymentID)
	}
	return &p, nil
}
