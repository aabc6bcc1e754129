package notification

import (
	"context"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/events"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
)

// NotificationUC renders bus events into notifications and delivers them
type NotificationUC interface {
	// Handle dispatches a classified message to its notification builder
	Handle(ctx context.Context, msg events.Message) (*models.Notification, error)
	NotifyScheduleUpdate(ctx context.Context, event *events.ScheduleUpdateEvent) (*models.Notification, error)
	NotifyTicketCreated(ctx context.Context, event *events.TicketCreatedEvent) (*models.Notification, error)
	NotifyTicketValidated(ctx context.Context, event *events.TicketValidatedEvent) (*models.Notification, error)

	GetNotification(ctx context.Context, notificationID string) (*models.Notification, error)
	ListByPassenger(ctx context.Context, passengerID string, limit int) ([]*models.Notification, error)
}
