package notification

import (
	"context"
	"time"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_notification.go -package=mocks github.com/davidNdantsi/DSA-Assignment2-2025/services/notification NotificationRepo,ProcessedStore,NotificationUC

// NotificationRepo defines the interface for notification data access operations
type NotificationRepo interface {
	CreateNotification(ctx context.Context, n *models.Notification) error
	// UpdateStatus rewrites the delivery fields of a stored notification
	UpdateStatus(ctx context.Context, notificationID string, status models.NotificationStatus, sentAt *time.Time, errorMessage *string) error
	GetNotification(ctx context.Context, notificationID string) (*models.Notification, error)
	// ListByPassenger returns the passenger's notifications and broadcasts, newest first
	ListByPassenger(ctx context.Context, passengerID string, limit int) ([]*models.Notification, error)
}

// ProcessedStore remembers which bus messages were already handled
type ProcessedStore interface {
	// MarkProcessed records topic/key and reports false if it was already recorded
	MarkProcessed(ctx context.Context, topic, key string) (bool, error)
}
