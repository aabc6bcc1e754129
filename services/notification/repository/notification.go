package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/apperror"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/constants"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
)

const (
	notificationColumns = `notification_id, passenger_id, notification_type, channel, subject, message,
	status, error_message, created_at, sent_at, metadata`

	defaultListLimit = 50
	maxListLimit     = 200
)

// NotificationRepo implements the notification.NotificationRepo interface
type NotificationRepo struct {
	db *sqlx.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *sqlx.DB) *NotificationRepo {
	return &NotificationRepo{db: db}
}

// CreateNotification inserts a notification
func (r *NotificationRepo) CreateNotification(ctx context.Context, n *models.Notification) error {
	query := `
		INSERT INTO notifications (` + notificationColumns + `)
		VALUES (:notification_id, :passenger_id, :notification_type, :channel, :subject, :message,
			:status, :error_message, :created_at, :sent_at, :metadata)
	`

	if _, err := r.db.NamedExecContext(ctx, query, n); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// UpdateStatus rewrites status, sent_at and error_message
func (r *NotificationRepo) UpdateStatus(ctx context.Context, notificationID string, status models.NotificationStatus, sentAt *time.Time, errorMessage *string) error {
	query := `UPDATE notifications SET status = $2, sent_at = $3, error_message = $4 WHERE notification_id = $1`

	res, err := r.db.ExecContext(ctx, query, notificationID, status, sentAt, errorMessage)
	if err != nil {
		return fmt.Errorf("failed to update notification status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return apperror.NotFound(constants.ErrCodeNotificationNotFound, fmt.Sprintf("Notification %s not found", notificationID))
	}
	return nil
}

// GetNotification retrieves a notification by id
func (r *NotificationRepo) GetNotification(ctx context.Context, notificationID string) (*models.Notification, error) {
	var n models.Notification
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE notification_id = $1`

	if err := r.db.GetContext(ctx, &n, query, notificationID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound(constants.ErrCodeNotificationNotFound, fmt.Sprintf("Notification %s not found", notificationID))
		}
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}
	return &n, nil
}

// ListByPassenger returns notifications addressed to passengerID or broadcast to everyone
func (r *NotificationRepo) ListByPassenger(ctx context.Context, passengerID string, limit int) ([]*models.Notification, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	query := `
		SELECT ` + notificationColumns + ` FROM notifications
		WHERE passenger_id = $1 OR passenger_id = $2
		ORDER BY created_at DESC
		LIMIT $3
	`

	out := []*models.Notification{}
	if err := r.db.SelectContext(ctx, &out, query, passengerID, models.BroadcastRecipient, limit); err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return out, nil
}
