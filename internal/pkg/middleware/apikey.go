package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/utils"
)

const (
	APIKeyHeader = "X-API-Key"

	// ContextCallerService holds the name of the service whose key matched
	ContextCallerService = "caller_service"
)

// Service names used when allowing callers
const (
	ServicePassenger = "passenger-service"
	ServiceTransport = "transport-service"
	ServiceTicketing = "ticketing-service"
	ServicePayment   = "payment-service"
)

// ServiceAPIKeys maps service names to the keys they present
func ServiceAPIKeys(cfg models.APIKeyConfig) map[string]string {
	return map[string]string{
		ServicePassenger: cfg.PassengerService,
		ServiceTransport: cfg.TransportService,
		ServiceTicketing: cfg.TicketingService,
		ServicePayment:   cfg.PaymentService,
	}
}

// ValidateAPIKey middleware validates the API key for service-to-service communication
func ValidateAPIKey(cfg models.APIKeyConfig, allowedServices ...string) echo.MiddlewareFunc {
	keys := ServiceAPIKeys(cfg)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "API key is required")
			}

			for _, service := range allowedServices {
				expected := keys[service]
				if expected != "" && subtle.ConstantTimeCompare([]byte(apiKey), []byte(expected)) == 1 {
					c.Set(ContextCallerService, service)
					return next(c)
				}
			}

			return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid API key")
		}
	}
}
