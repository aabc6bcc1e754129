package events

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
)

func TestClassify_ScheduleUpdateWinsOverTicketMarkers(t *testing.T) {
	payload := map[string]interface{}{
		"eventId":        "evt-1",
		"disruptionId":   "evt-1",
		"severity":       "HIGH",
		"eventType":      "CANCELLATION",
		"tripId":         "trip-1",
		"previousStatus": "SCHEDULED",
		"newStatus":      "CANCELLED",
		"qrCode":         "TKT-XYZ",
		"purchaseTime":   "2025-10-01T08:00:00Z",
		"validationId":   "val-1",
		"validatedAt":    "2025-10-01T08:00:00Z",
	}

	msg, err := Classify(payload)
	require.NoError(t, err)
	require.Equal(t, KindScheduleUpdate, msg.Kind())

	evt := msg.(*ScheduleUpdateEvent)
	assert.Equal(t, "evt-1", evt.EventID)
	assert.Equal(t, EventTypeCancellation, evt.EventType)
	assert.Equal(t, models.TripStatusCancelled, evt.NewStatus)
}

func TestClassify_MarkersAloneMakeAScheduleUpdate(t *testing.T) {
	msg, err := Classify(map[string]interface{}{
		"disruptionId": "D-7",
		"severity":     "HIGH",
		"tripId":       "t-1",
		"qrCode":       "QR",
		"purchaseTime": "2025-10-01T06:00:00Z",
	})
	require.NoError(t, err)
	require.Equal(t, KindScheduleUpdate, msg.Kind())

	evt := msg.(*ScheduleUpdateEvent)
	assert.Equal(t, EventTypeScheduleChange, evt.EventType)
	assert.Equal(t, "D-7", evt.Key())
}

func TestClassify_MissingEventTypeFollowsNewStatus(t *testing.T) {
	msg, err := Classify(map[string]interface{}{
		"disruptionId": "D-8",
		"severity":     "HIGH",
		"newStatus":    "CANCELLED",
	})
	require.NoError(t, err)
	assert.Equal(t, EventTypeCancellation, msg.(*ScheduleUpdateEvent).EventType)

	_, err = Classify(map[string]interface{}{
		"disruptionId": "D-8",
		"severity":     "HIGH",
		"eventType":    nil,
		"newStatus":    "DELAYED",
	})
	require.NoError(t, err)

	_, err = Classify(map[string]interface{}{
		"disruptionId": "D-8",
		"severity":     "HIGH",
		"eventType":    "",
	})
	assert.ErrorIs(t, err, ErrMalformedMessage)
}

func TestMessageKeyFallbacks(t *testing.T) {
	assert.Equal(t, "ev-1", (&ScheduleUpdateEvent{EventID: "ev-1", DisruptionID: "D-1"}).Key())
	assert.Equal(t, "D-1", (&ScheduleUpdateEvent{DisruptionID: "D-1"}).Key())
	assert.Equal(t, "tk-1", (&TicketCreatedEvent{TicketID: "tk-1", QRCode: "QR"}).Key())
	assert.Equal(t, "QR", (&TicketCreatedEvent{QRCode: "QR"}).Key())
}

func TestClassify_TicketValidatedBeforeCreated(t *testing.T) {
	payload := map[string]interface{}{
		"validationId": "val-1",
		"validatedAt":  "2025-10-01T08:00:00Z",
		"ticketId":     "tkt-1",
		"qrCode":       "TKT-XYZ",
		"purchaseTime": "2025-10-01T07:00:00Z",
	}

	msg, err := Classify(payload)
	require.NoError(t, err)
	assert.Equal(t, KindTicketValidated, msg.Kind())
	assert.Equal(t, "val-1", msg.Key())
}

func TestClassify_TicketCreated(t *testing.T) {
	payload := map[string]interface{}{
		"ticketId":     "tkt-1",
		"passengerId":  "p-1",
		"fare":         12.5,
		"qrCode":       "TKT-XYZ",
		"purchaseTime": float64(1759305600000),
	}

	msg, err := Classify(payload)
	require.NoError(t, err)
	evt := msg.(*TicketCreatedEvent)
	assert.Equal(t, 12.5, evt.Fare)
	assert.Equal(t, time.Date(2025, 10, 1, 8, 0, 0, 0, time.UTC), evt.PurchaseTime)
}

func TestClassify_SingleMarkerIsNotEnough(t *testing.T) {
	tests := []map[string]interface{}{
		{"disruptionId": "d-1"},
		{"severity": "HIGH", "qrCode": "abc"},
		{"validationId": "v-1", "purchaseTime": "2025-10-01T07:00:00Z"},
		{},
	}
	for _, payload := range tests {
		_, err := Classify(payload)
		assert.ErrorIs(t, err, ErrUnknownMessageFormat, "%v", payload)
	}
}

func TestClassify_NullMarkerCountsAsAbsent(t *testing.T) {
	payload := map[string]interface{}{
		"disruptionId": nil,
		"severity":     "LOW",
		"qrCode":       "TKT-XYZ",
		"purchaseTime": "2025-10-01T07:00:00Z",
	}

	msg, err := Classify(payload)
	require.NoError(t, err)
	assert.Equal(t, KindTicketCreated, msg.Kind())
}

func TestClassify_MalformedShape(t *testing.T) {
	_, err := Classify(map[string]interface{}{
		"disruptionId": "d-1",
		"severity":     "CATASTROPHIC",
		"eventType":    "DELAY",
	})
	assert.ErrorIs(t, err, ErrMalformedMessage)

	_, err = Classify(map[string]interface{}{
		"disruptionId": "d-1",
		"severity":     "LOW",
		"eventType":    "DELAY",
		"newStatus":    "TELEPORTED",
	})
	assert.ErrorIs(t, err, ErrMalformedMessage)
	assert.True(t, errors.Is(err, ErrMalformedMessage))

	_, err = Classify(map[string]interface{}{
		"qrCode":       "TKT",
		"purchaseTime": "yesterday",
	})
	assert.ErrorIs(t, err, ErrMalformedMessage)
}

func TestDecode(t *testing.T) {
	_, err := Decode([]byte("not json"))
	assert.ErrorIs(t, err, ErrMalformedMessage)

	_, err = Decode([]byte("null"))
	assert.ErrorIs(t, err, ErrMalformedMessage)

	_, err = Decode([]byte(`{"hello":"world"}`))
	assert.ErrorIs(t, err, ErrUnknownMessageFormat)

	msg, err := Decode([]byte(`{"validationId":"v-1","validatedAt":"2025-10-01T08:00:00","ticketId":"t-1"}`))
	require.NoError(t, err)
	evt := msg.(*TicketValidatedEvent)
	assert.Equal(t, time.Date(2025, 10, 1, 8, 0, 0, 0, time.UTC), evt.ValidatedAt)
}

func TestEncodeThenDecodeScheduleUpdate(t *testing.T) {
	trip := &models.Trip{
		TripID:       "trip-9",
		RouteID:      "route-1",
		RouteNumber:  "R1",
		Status:       models.TripStatusDelayed,
		DelayMinutes: 45,
		DelayReason:  "Road works",
	}
	at := time.Date(2025, 10, 1, 9, 30, 0, 0, time.UTC)
	evt := NewScheduleUpdateEvent("evt-9", trip, models.TripStatusScheduled, EventTypeDelay, at)

	data, err := Encode(evt)
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "evt-9", raw["disruptionId"])
	assert.Equal(t, "HIGH", raw["severity"])

	msg, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, evt, msg)
}

func TestEventTypeForStatus(t *testing.T) {
	assert.Equal(t, EventTypeDelay, EventTypeForStatus(models.TripStatusDelayed))
	assert.Equal(t, EventTypeCancellation, EventTypeForStatus(models.TripStatusCancelled))
	assert.Equal(t, EventTypeScheduleChange, EventTypeForStatus(models.TripStatusInProgress))
	assert.Equal(t, EventTypeScheduleChange, EventTypeForStatus(models.TripStatusCompleted))
}

func TestSeverityFor(t *testing.T) {
	assert.Equal(t, SeverityHigh, SeverityFor(EventTypeCancellation, 0))
	assert.Equal(t, SeverityHigh, SeverityFor(EventTypeDelay, 30))
	assert.Equal(t, SeverityMedium, SeverityFor(EventTypeDelay, 29))
	assert.Equal(t, SeverityLow, SeverityFor(EventTypeScheduleChange, 90))
}

func TestParseEventType(t *testing.T) {
	got, err := ParseEventType("ROUTE_UPDATE")
	require.NoError(t, err)
	assert.Equal(t, EventTypeRouteUpdate, got)

	_, err = ParseEventType("delay")
	assert.ErrorIs(t, err, models.ErrUnknownEnumValue)
}
