package usecase

import (
	"context"
	"fmt"
	"strconv"
	"text/template"
	"time"

	"github.com/google/uuid"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/apperror"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/constants"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/events"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/logger"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/metrics"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
	nrpkg "github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/newrelic"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/utils"
	"github.com/davidNdantsi/DSA-Assignment2-2025/services/notification"
)

const maxErrorMessage = 500

type notifierUC struct {
	cfg     *models.Config
	repo    notification.NotificationRepo
	console func(n *models.Notification)
	now     func() time.Time
	newID   func() string
}

// NewNotifierUC creates the notification usecase
func NewNotifierUC(cfg *models.Config, repo notification.NotificationRepo) notification.NotificationUC {
	return &notifierUC{
		cfg:     cfg,
		repo:    repo,
		console: logConsole,
		now:     time.Now,
		newID:   func() string { return uuid.New().String() },
	}
}

func logConsole(n *models.Notification) {
	logger.Info("Notification\n"+n.Message,
		logger.String("notification_id", n.NotificationID),
		logger.String("passenger_id", n.PassengerID),
		logger.String("type", n.NotificationType.String()),
		logger.String("subject", n.Subject))
}

// Handle dispatches msg to its builder
func (uc *notifierUC) Handle(ctx context.Context, msg events.Message) (*models.Notification, error) {
	switch m := msg.(type) {
	case *events.ScheduleUpdateEvent:
		return uc.NotifyScheduleUpdate(ctx, m)
	case *events.TicketCreatedEvent:
		return uc.NotifyTicketCreated(ctx, m)
	case *events.TicketValidatedEvent:
		return uc.NotifyTicketValidated(ctx, m)
	default:
		return nil, fmt.Errorf("%w: %T", events.ErrUnknownMessageFormat, msg)
	}
}

// NotifyScheduleUpdate broadcasts a trip change to every passenger
func (uc *notifierUC) NotifyScheduleUpdate(ctx context.Context, event *events.ScheduleUpdateEvent) (*models.Notification, error) {
	subject := fmt.Sprintf("Route %s: %s", event.RouteNumber, scheduleHeadline(event))
	meta := models.Metadata{
		"eventId":      event.EventID,
		"disruptionId": event.DisruptionID,
		"tripId":       event.TripID,
		"routeId":      event.RouteID,
		"eventType":    string(event.EventType),
		"severity":     string(event.Severity),
		"newStatus":    event.NewStatus.String(),
	}
	if event.DelayMinutes > 0 {
		meta["delayMinutes"] = strconv.Itoa(event.DelayMinutes)
	}
	return uc.build(ctx, models.BroadcastRecipient, models.NotificationTypeScheduleUpdate, subject, scheduleUpdateTmpl, event, meta)
}

func scheduleHeadline(event *events.ScheduleUpdateEvent) string {
	switch event.EventType {
	case events.EventTypeDelay:
		return fmt.Sprintf("trip delayed by %d min", event.DelayMinutes)
	case events.EventTypeCancellation:
		return "trip cancelled"
	default:
		return "trip now " + event.NewStatus.String()
	}
}

// NotifyTicketCreated confirms a purchase to the buyer
func (uc *notifierUC) NotifyTicketCreated(ctx context.Context, event *events.TicketCreatedEvent) (*models.Notification, error) {
	meta := models.Metadata{
		"ticketId": event.TicketID,
		"tripId":   event.TripID,
		"routeId":  event.RouteID,
		"fare":     strconv.FormatFloat(event.Fare, 'f', 2, 64),
	}
	subject := fmt.Sprintf("Ticket %s purchased for route %s", event.TicketID, event.RouteNumber)
	return uc.build(ctx, event.PassengerID, models.NotificationTypeTicketCreated, subject, ticketCreatedTmpl, event, meta)
}

// NotifyTicketValidated confirms boarding to the ticket holder
func (uc *notifierUC) NotifyTicketValidated(ctx context.Context, event *events.TicketValidatedEvent) (*models.Notification, error) {
	meta := models.Metadata{
		"validationId": event.ValidationID,
		"ticketId":     event.TicketID,
		"tripId":       event.TripID,
	}
	subject := fmt.Sprintf("Ticket %s validated", event.TicketID)
	return uc.build(ctx, event.PassengerID, models.NotificationTypeTicketValidated, subject, ticketValidatedTmpl, event, meta)
}

func (uc *notifierUC) build(ctx context.Context, recipient string, typ models.NotificationType, subject string,
	tmpl *template.Template, data interface{}, meta models.Metadata) (*models.Notification, error) {
	body, err := render(tmpl, data)
	if err != nil {
		return nil, err
	}

	n := &models.Notification{
		NotificationID:   uc.newID(),
		PassengerID:      recipient,
		NotificationType: typ,
		Channel:          models.NotificationChannelInApp,
		Subject:          subject,
		Message:          body,
		Status:           models.NotificationStatusPending,
		CreatedAt:        uc.now().UTC(),
		Metadata:         meta,
	}
	return n, uc.send(ctx, n)
}

func advance(n *models.Notification, next models.NotificationStatus) error {
	if !n.Status.CanTransitionTo(next) {
		return fmt.Errorf("notification %s cannot move from %s to %s", n.NotificationID, n.Status, next)
	}
	n.Status = next
	return nil
}

// send delivers n to the enabled sinks. Persistence failures mark n FAILED
// and are not returned.
func (uc *notifierUC) send(ctx context.Context, n *models.Notification) error {
	if uc.cfg.Notification.ConsoleEnabled {
		uc.console(n)
	}

	if !uc.cfg.Notification.StorageEnabled {
		if err := advance(n, models.NotificationStatusSent); err != nil {
			return err
		}
		metrics.RecordNotification(n.NotificationType.String(), n.Status.String())
		return nil
	}

	err := nrpkg.WithSegment(ctx, "notification.persist", func() error {
		return uc.repo.CreateNotification(ctx, n)
	})
	if err != nil {
		msg := utils.Truncate(err.Error(), maxErrorMessage)
		n.ErrorMessage = &msg
		if advErr := advance(n, models.NotificationStatusFailed); advErr != nil {
			return advErr
		}
		logger.ErrorCtx(ctx, "Failed to persist notification",
			logger.String("notification_id", n.NotificationID),
			logger.String("type", n.NotificationType.String()),
			logger.Err(err))
		nrpkg.NoticeError(ctx, err)
		metrics.RecordNotification(n.NotificationType.String(), n.Status.String())
		return nil
	}

	sentAt := uc.now().UTC()
	if err := advance(n, models.NotificationStatusDelivered); err != nil {
		return err
	}
	n.SentAt = &sentAt
	if err := uc.repo.UpdateStatus(ctx, n.NotificationID, n.Status, n.SentAt, nil); err != nil {
		logger.WarnCtx(ctx, "Failed to record notification delivery",
			logger.String("notification_id", n.NotificationID),
			logger.Err(err))
	}

	metrics.RecordNotification(n.NotificationType.String(), n.Status.String())
	logger.InfoCtx(ctx, "Notification delivered",
		logger.String("notification_id", n.NotificationID),
		logger.String("passenger_id", n.PassengerID),
		logger.String("type", n.NotificationType.String()))
	return nil
}

// GetNotification returns one notification
func (uc *notifierUC) GetNotification(ctx context.Context, notificationID string) (*models.Notification, error) {
	if notificationID == "" {
		return nil, apperror.Validation(constants.ErrCodeValidation, "notificationId is required")
	}
	return uc.repo.GetNotification(ctx, notificationID)
}

// ListByPassenger returns a passenger's notifications including broadcasts
func (uc *notifierUC) ListByPassenger(ctx context.Context, passengerID string, limit int) ([]*models.Notification, error) {
	if passengerID == "" {
		return nil, apperror.Validation(constants.ErrCodeValidation, "passengerId is required")
	}
	return uc.repo.ListByPassenger(ctx, passengerID, limit)
}
