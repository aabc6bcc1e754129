package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/middleware"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/utils"
	"github.com/davidNdantsi/DSA-Assignment2-2025/services/notification"
)

// NotificationHandler serves the notification read API
type NotificationHandler struct {
	notificationUC notification.NotificationUC
}

// NewNotificationHandler creates a new notification HTTP handler
func NewNotificationHandler(notificationUC notification.NotificationUC) *NotificationHandler {
	return &NotificationHandler{notificationUC: notificationUC}
}

// GetNotification returns one notification addressed to the caller or broadcast
func (h *NotificationHandler) GetNotification(c echo.Context) error {
	n, err := h.notificationUC.GetNotification(c.Request().Context(), c.Param("notificationID"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	if self, ok := middleware.PassengerID(c); ok && n.PassengerID != self && n.PassengerID != models.BroadcastRecipient {
		return utils.ForbiddenResponse(c, "Notification belongs to another passenger")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Notification retrieved successfully", n)
}

// ListByPassenger returns the passenger's notifications, newest first
func (h *NotificationHandler) ListByPassenger(c echo.Context) error {
	passengerID := c.Param("passengerID")
	if self, ok := middleware.PassengerID(c); ok && self != passengerID {
		return utils.ForbiddenResponse(c, "Cannot read another passenger's notifications")
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	out, err := h.notificationUC.ListByPassenger(c.Request().Context(), passengerID, limit)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Notifications retrieved successfully", out)
}
