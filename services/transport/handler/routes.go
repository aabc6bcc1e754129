package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/middleware"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
	"github.com/davidNdantsi/DSA-Assignment2-2025/services/transport"
	httpHandler "github.com/davidNdantsi/DSA-Assignment2-2025/services/transport/handler/http"
)

// Handler combines all handlers for the transport service
type Handler struct {
	transportHTTP *httpHandler.TransportHandler
	cfg           *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(transportUC transport.TransportUC, cfg *models.Config) *Handler {
	return &Handler{
		transportHTTP: httpHandler.NewTransportHandler(transportUC),
		cfg:           cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	routes := api.Group("/routes")
	routes.POST("", h.transportHTTP.CreateRoute)
	routes.GET("", h.transportHTTP.ListRoutes)
	routes.GET("/nearby", h.transportHTTP.NearbyRoutes)
	routes.GET("/:routeID", h.transportHTTP.GetRoute)

	trips := api.Group("/trips")
	trips.POST("", h.transportHTTP.CreateTrip)
	trips.GET("", h.transportHTTP.ListTrips)
	trips.GET("/:tripID", h.transportHTTP.GetTrip)
	trips.PUT("/:tripID", h.transportHTTP.UpdateTrip)
	trips.PATCH("/:tripID/status", h.transportHTTP.UpdateTripStatus)
	trips.POST("/:tripID/delay", h.transportHTTP.DelayTrip)
	trips.POST("/:tripID/cancel", h.transportHTTP.CancelTrip)

	// Internal routes for service-to-service communication (API key required)
	internal := e.Group("/internal/trips", middleware.ValidateAPIKey(h.cfg.APIKey, middleware.ServiceTicketing))
	internal.GET("/:tripID", h.transportHTTP.GetTrip)
	internal.POST("/:tripID/reserve-seat", h.transportHTTP.ReserveSeat)
	internal.POST("/:tripID/release-seat", h.transportHTTP.ReleaseSeat)
}
