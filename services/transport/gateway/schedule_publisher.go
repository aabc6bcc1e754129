package gateway

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/broker"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/events"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/logger"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/metrics"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
	nrpkg "github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/newrelic"
)

// SchedulePublisher sends ScheduleUpdateEvents keyed by trip id
type SchedulePublisher struct {
	publisher broker.Publisher
	topic     string
	now       func() time.Time
	newID     func() string
}

// NewSchedulePublisher creates a publisher writing to topic
func NewSchedulePublisher(publisher broker.Publisher, topic string) *SchedulePublisher {
	return &SchedulePublisher{
		publisher: publisher,
		topic:     topic,
		now:       time.Now,
		newID:     func() string { return uuid.New().String() },
	}
}

func failed(msg string) models.PublishResult {
	return models.PublishResult{Success: false, ErrorMessage: msg}
}

// Publish announces trip's post-update state. Nothing is sent when the
// status did not change.
func (p *SchedulePublisher) Publish(ctx context.Context, trip *models.Trip, previousStatus models.TripStatus, eventType events.EventType) models.PublishResult {
	if previousStatus == trip.Status {
		metrics.RecordPublished(p.topic, metrics.OutcomeSkipped)
		logger.DebugCtx(ctx, "Schedule update skipped, status unchanged",
			logger.String("trip_id", trip.TripID),
			logger.String("status", trip.Status.String()))
		return models.PublishResult{Success: true, Skipped: true}
	}

	event := events.NewScheduleUpdateEvent(p.newID(), trip, previousStatus, eventType, p.now())
	data, err := events.Encode(event)
	if err != nil {
		metrics.RecordPublished(p.topic, metrics.OutcomeFailure)
		return failed(err.Error())
	}

	err = nrpkg.WithSegment(ctx, "bus.publish/"+p.topic, func() error {
		return p.publisher.Publish(ctx, p.topic, trip.TripID, data)
	})
	if err != nil {
		metrics.RecordPublished(p.topic, metrics.OutcomeFailure)
		return failed(err.Error())
	}

	metrics.RecordPublished(p.topic, metrics.OutcomeSuccess)
	logger.InfoCtx(ctx, "Schedule update published",
		logger.String("event_id", event.EventID),
		logger.String("trip_id", trip.TripID),
		logger.String("event_type", string(event.EventType)),
		logger.String("severity", string(event.Severity)),
		logger.String("previous_status", previousStatus.String()),
		logger.String("new_status", trip.Status.String()))
	return models.PublishResult{Success: true}
}
