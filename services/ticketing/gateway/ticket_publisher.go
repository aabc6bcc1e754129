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

// TicketPublisher sends ticket events keyed by ticket id
type TicketPublisher struct {
	publisher      broker.Publisher
	createdTopic   string
	validatedTopic string
	newID          func() string
}

// NewTicketPublisher creates a publisher for the configured ticket topics
func NewTicketPublisher(publisher broker.Publisher, topics models.TopicsConfig) *TicketPublisher {
	return &TicketPublisher{
		publisher:      publisher,
		createdTopic:   topics.TicketCreated,
		validatedTopic: topics.TicketValidated,
		newID:          func() string { return uuid.New().String() },
	}
}

// PublishCreated announces a purchase
func (p *TicketPublisher) PublishCreated(ctx context.Context, ticket *models.Ticket) models.PublishResult {
	return p.send(ctx, p.createdTopic, ticket.TicketID, events.NewTicketCreatedEvent(ticket))
}

// PublishValidated announces a boarding check with a fresh validation id
func (p *TicketPublisher) PublishValidated(ctx context.Context, ticket *models.Ticket, at time.Time) models.PublishResult {
	return p.send(ctx, p.validatedTopic, ticket.TicketID, events.NewTicketValidatedEvent(p.newID(), ticket, at))
}

func (p *TicketPublisher) send(ctx context.Context, topic, key string, msg events.Message) models.PublishResult {
	data, err := events.Encode(msg)
	if err != nil {
		metrics.RecordPublished(topic, metrics.OutcomeFailure)
		return models.PublishResult{ErrorMessage: err.Error()}
	}

	err = nrpkg.WithSegment(ctx, "bus.publish/"+topic, func() error {
		return p.publisher.Publish(ctx, topic, key, data)
	})
	if err != nil {
		metrics.RecordPublished(topic, metrics.OutcomeFailure)
		return models.PublishResult{ErrorMessage: err.Error()}
	}

	metrics.RecordPublished(topic, metrics.OutcomeSuccess)
	logger.InfoCtx(ctx, "Ticket event published",
		logger.String("topic", topic),
		logger.String("ticket_id", key),
		logger.String("kind", msg.Kind().String()))
	return models.PublishResult{Success: true}
}
