package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/middleware"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
	"github.com/davidNdantsi/DSA-Assignment2-2025/services/ticketing"
	httpHandler "github.com/davidNdantsi/DSA-Assignment2-2025/services/ticketing/handler/http"
)

// Handler combines all handlers for the ticketing service
type Handler struct {
	ticketHTTP *httpHandler.TicketHandler
	cfg        *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(ticketUC ticketing.TicketUC, cfg *models.Config) *Handler {
	return &Handler{
		ticketHTTP: httpHandler.NewTicketHandler(ticketUC),
		cfg:        cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1", middleware.JWTAuthMiddleware(h.cfg.JWT))

	tickets := api.Group("/tickets")
	tickets.POST("", h.ticketHTTP.Purchase)
	tickets.GET("/:ticketID", h.ticketHTTP.GetTicket)
	tickets.GET("/:ticketID/pdf", h.ticketHTTP.TicketPDF)
	tickets.POST("/:ticketID/pay", h.ticketHTTP.PayTicket)
	tickets.POST("/:ticketID/confirm-payment", h.ticketHTTP.ConfirmPayment)
	tickets.POST("/:ticketID/validate", h.ticketHTTP.ValidateTicket)

	api.GET("/passengers/:passengerID/tickets", h.ticketHTTP.ListByPassenger)

	// Internal routes for service-to-service communication (API key required)
	internal := e.Group("/internal/tickets", middleware.ValidateAPIKey(h.cfg.APIKey,
		middleware.ServiceTicketing, middleware.ServiceTransport))
	internal.POST("/expire", h.ticketHTTP.ExpireTickets)
}
