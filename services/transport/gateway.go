package transport

import (
	"context"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/events"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
)

// ScheduleEventPublisher announces trip state changes on the bus. Failures
// are reported in the result, never returned as errors.
type ScheduleEventPublisher interface {
	Publish(ctx context.Context, trip *models.Trip, previousStatus models.TripStatus, eventType events.EventType) models.PublishResult
}
