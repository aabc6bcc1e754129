package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/middleware"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
	"github.com/davidNdantsi/DSA-Assignment2-2025/services/notification"
	httpHandler "github.com/davidNdantsi/DSA-Assignment2-2025/services/notification/handler/http"
)

// Handler combines all HTTP handlers for the notification service
type Handler struct {
	notificationHTTP *httpHandler.NotificationHandler
	cfg              *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(notificationUC notification.NotificationUC, cfg *models.Config) *Handler {
	return &Handler{
		notificationHTTP: httpHandler.NewNotificationHandler(notificationUC),
		cfg:              cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1", middleware.JWTAuthMiddleware(h.cfg.JWT))
	api.GET("/notifications/:notificationID", h.notificationHTTP.GetNotification)
	api.GET("/passengers/:passengerID/notifications", h.notificationHTTP.ListByPassenger)
}
