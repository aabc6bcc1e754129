package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/middleware"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
	"github.com/davidNdantsi/DSA-Assignment2-2025/services/payment"
	httpHandler "github.com/davidNdantsi/DSA-Assignment2-2025/services/payment/handler/http"
)

// Handler combines all handlers for the payment service
type Handler struct {
	paymentHTTP *httpHandler.PaymentHandler
	cfg         *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(paymentUC payment.PaymentUC, cfg *models.Config) *Handler {
	return &Handler{
		paymentHTTP: httpHandler.NewPaymentHandler(paymentUC),
		cfg:         cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1/payments", middleware.JWTAuthMiddleware(h.cfg.JWT))
	api.GET("/:paymentID", h.paymentHTTP.GetPayment)
	api.GET("/ticket/:ticketID", h.paymentHTTP.GetPaymentByTicket)

	// Internal routes for service-to-service communication (API key required)
	internal := e.Group("/internal/payments", middleware.ValidateAPIKey(h.cfg.APIKey, middleware.ServiceTicketing))
	internal.POST("", h.paymentHTTP.ProcessPayment)
	internal.GET("/:paymentID", h.paymentHTTP.GetPayment)
	internal.POST("/:paymentID/refund", h.paymentHTTP.RefundPayment)
}
