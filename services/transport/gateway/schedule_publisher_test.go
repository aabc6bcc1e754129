package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/broker"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/events"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
)

const topic = "schedule-updates"

func newTestPublisher(bus *broker.MemoryBus) *SchedulePublisher {
	p := NewSchedulePublisher(bus, topic)
	p.now = func() time.Time { return time.Date(2025, 10, 1, 7, 40, 0, 0, time.UTC) }
	p.newID = func() string { return "evt-1" }
	return p
}

func delayedTrip(minutes int) *models.Trip {
	return &models.Trip{
		TripID:       "t-1",
		RouteID:      "r-1",
		RouteNumber:  "21",
		Status:       models.TripStatusDelayed,
		DelayMinutes: minutes,
		DelayReason:  "Roadworks on Independence Ave",
	}
}

func TestPublish_WireShape(t *testing.T) {
	bus := broker.NewMemoryBus()
	p := newTestPublisher(bus)

	res := p.Publish(context.Background(), delayedTrip(35), models.TripStatusScheduled, events.EventTypeDelay)
	require.True(t, res.Success)
	assert.False(t, res.Skipped)

	published := bus.Published(topic)
	require.Len(t, published, 1)
	assert.Equal(t, "t-1", published[0].Key)

	var wire map[string]interface{}
	require.NoError(t, json.Unmarshal(published[0].Value, &wire))
	assert.Equal(t, "evt-1", wire["eventId"])
	assert.Equal(t, "evt-1", wire["disruptionId"])
	assert.Equal(t, "DELAY", wire["eventType"])
	assert.Equal(t, "HIGH", wire["severity"])
	assert.Equal(t, "SCHEDULED", wire["previousStatus"])
	assert.Equal(t, "DELAYED", wire["newStatus"])
	assert.Equal(t, float64(35), wire["delayMinutes"])
	assert.Equal(t, "21", wire["routeNumber"])
	assert.Equal(t, "2025-10-01T07:40:00Z", wire["timestamp"])

	msg, err := events.Decode(published[0].Value)
	require.NoError(t, err)
	assert.Equal(t, events.KindScheduleUpdate, msg.Kind())
}

func TestPublish_SeverityByDelay(t *testing.T) {
	bus := broker.NewMemoryBus()
	p := newTestPublisher(bus)

	p.Publish(context.Background(), delayedTrip(10), models.TripStatusScheduled, events.EventTypeDelay)

	var wire map[string]interface{}
	require.NoError(t, json.Unmarshal(bus.Published(topic)[0].Value, &wire))
	assert.Equal(t, "MEDIUM", wire["severity"])
}

func TestPublish_SkippedWhenStatusUnchanged(t *testing.T) {
	bus := broker.NewMemoryBus()
	p := newTestPublisher(bus)

	trip := &models.Trip{TripID: "t-1", Status: models.TripStatusScheduled, DriverName: "Johannes"}
	res := p.Publish(context.Background(), trip, models.TripStatusScheduled, events.EventTypeScheduleChange)

	assert.True(t, res.Success)
	assert.True(t, res.Skipped)
	assert.Empty(t, bus.Published(topic))
}

func TestPublish_FailureIsSoft(t *testing.T) {
	bus := broker.NewMemoryBus()
	bus.SetPublishError(errors.New("nats: no responders available"))
	p := newTestPublisher(bus)

	res := p.Publish(context.Background(), delayedTrip(5), models.TripStatusScheduled, events.EventTypeDelay)

	assert.False(t, res.Success)
	assert.Contains(t, res.ErrorMessage, "no responders")
}
