package handler

import (
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/middleware"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
	"github.com/davidNdantsi/DSA-Assignment2-2025/services/passenger"
	httpHandler "github.com/davidNdantsi/DSA-Assignment2-2025/services/passenger/handler/http"
)

const (
	loginAttempts = 10
	loginWindow   = time.Minute
)

// Handler combines all handlers for the passenger service
type Handler struct {
	passengerHTTP *httpHandler.PassengerHandler
	cfg           *models.Config
	redis         *redis.Client
}

// NewHandler creates a new combined handler
func NewHandler(passengerUC passenger.PassengerUC, cfg *models.Config, redisClient *redis.Client) *Handler {
	return &Handler{
		passengerHTTP: httpHandler.NewPassengerHandler(passengerUC),
		cfg:           cfg,
		redis:         redisClient,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1/passengers")
	api.POST("", h.passengerHTTP.Register)
	if h.redis != nil {
		api.POST("/login", h.passengerHTTP.Login, middleware.IPRateLimiter(loginAttempts, loginWindow, h.redis))
	} else {
		api.POST("/login", h.passengerHTTP.Login)
	}
	api.GET("/:passengerID", h.passengerHTTP.GetPassenger, middleware.JWTAuthMiddleware(h.cfg.JWT))

	internal := e.Group("/internal/passengers", middleware.ValidateAPIKey(h.cfg.APIKey,
		middleware.ServiceTicketing, middleware.ServiceTransport, middleware.ServicePayment))
	internal.GET("", h.passengerHTTP.ListPassengers)
	internal.GET("/:passengerID", h.passengerHTTP.GetPassenger)
	internal.PATCH("/:passengerID/status", h.passengerHTTP.UpdateStatus)
}
