// Package events defines the messages exchanged over the bus and the
// structural classifier used to recognise untyped payloads.
package events

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
)

// EventType describes what happened to a trip
type EventType string

const (
	EventTypeDelay          EventType = "DELAY"
	EventTypeCancellation   EventType = "CANCELLATION"
	EventTypeScheduleChange EventType = "SCHEDULE_CHANGE"
	EventTypeRouteUpdate    EventType = "ROUTE_UPDATE"
)

var EventTypes = []EventType{
	EventTypeDelay,
	EventTypeCancellation,
	EventTypeScheduleChange,
	EventTypeRouteUpdate,
}

// ParseEventType converts a canonical name into an EventType
func ParseEventType(s string) (EventType, error) {
	for _, v := range EventTypes {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: event type %q", models.ErrUnknownEnumValue, s)
}

func (t EventType) Value() (driver.Value, error) {
	if _, err := ParseEventType(string(t)); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Severity ranks how disruptive a schedule change is for riders
type Severity string

const (
	SeverityLow    Severity = "LOW"
	SeverityMedium Severity = "MEDIUM"
	SeverityHigh   Severity = "HIGH"
)

// ParseSeverity converts a canonical name into a Severity
func ParseSeverity(s string) (Severity, error) {
	switch Severity(s) {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return Severity(s), nil
	}
	return "", fmt.Errorf("%w: severity %q", models.ErrUnknownEnumValue, s)
}

// MajorDelayMinutes is the delay at which a DELAY becomes HIGH severity
const MajorDelayMinutes = 30

// EventTypeForStatus picks the event type describing a move into newStatus
func EventTypeForStatus(newStatus models.TripStatus) EventType {
	switch newStatus {
	case models.TripStatusDelayed:
		return EventTypeDelay
	case models.TripStatusCancelled:
		return EventTypeCancellation
	default:
		return EventTypeScheduleChange
	}
}

// SeverityFor grades an event
func SeverityFor(eventType EventType, delayMinutes int) Severity {
	switch eventType {
	case EventTypeCancellation:
		return SeverityHigh
	case EventTypeDelay:
		if delayMinutes >= MajorDelayMinutes {
			return SeverityHigh
		}
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// Kind tags the three known message shapes
type Kind int

const (
	KindUnknown Kind = iota
	KindScheduleUpdate
	KindTicketValidated
	KindTicketCreated
)

func (k Kind) String() string {
	switch k {
	case KindScheduleUpdate:
		return "schedule_update"
	case KindTicketValidated:
		return "ticket_validated"
	case KindTicketCreated:
		return "ticket_created"
	default:
		return "unknown"
	}
}

// Message is implemented by every classified bus message
type Message interface {
	Kind() Kind
	// Key identifies the fact the message reports, for deduplication
	Key() string
}

// ScheduleUpdateEvent records one observed trip state change
type ScheduleUpdateEvent struct {
	EventID        string            `json:"eventId"`
	DisruptionID   string            `json:"disruptionId"`
	EventType      EventType         `json:"eventType"`
	Severity       Severity          `json:"severity"`
	TripID         string            `json:"tripId"`
	RouteID        string            `json:"routeId"`
	RouteNumber    string            `json:"routeNumber"`
	PreviousStatus models.TripStatus `json:"previousStatus"`
	NewStatus      models.TripStatus `json:"newStatus"`
	DelayMinutes   int               `json:"delayMinutes"`
	Reason         string            `json:"reason,omitempty"`
	Timestamp      time.Time         `json:"timestamp"`
}

func (e *ScheduleUpdateEvent) Kind() Kind { return KindScheduleUpdate }

// Key falls back to the disruption id for producers that send no eventId
func (e *ScheduleUpdateEvent) Key() string {
	if e.EventID != "" {
		return e.EventID
	}
	return e.DisruptionID
}

// NewScheduleUpdateEvent builds the event for trip's post-update state
func NewScheduleUpdateEvent(eventID string, trip *models.Trip, previous models.TripStatus, eventType EventType, at time.Time) *ScheduleUpdateEvent {
	return &ScheduleUpdateEvent{
		EventID:        eventID,
		DisruptionID:   eventID,
		EventType:      eventType,
		Severity:       SeverityFor(eventType, trip.DelayMinutes),
		TripID:         trip.TripID,
		RouteID:        trip.RouteID,
		RouteNumber:    trip.RouteNumber,
		PreviousStatus: previous,
		NewStatus:      trip.Status,
		DelayMinutes:   trip.DelayMinutes,
		Reason:         trip.DelayReason,
		Timestamp:      at.UTC(),
	}
}

// TicketCreatedEvent announces a purchase
type TicketCreatedEvent struct {
	TicketID     string    `json:"ticketId"`
	PassengerID  string    `json:"passengerId"`
	TripID       string    `json:"tripId"`
	RouteID      string    `json:"routeId"`
	RouteNumber  string    `json:"routeNumber"`
	Fare         float64   `json:"fare"`
	QRCode       string    `json:"qrCode"`
	PurchaseTime time.Time `json:"purchaseTime"`
	ValidUntil   time.Time `json:"validUntil"`
}

func (e *TicketCreatedEvent) Kind() Kind { return KindTicketCreated }

// Key falls back to the QR code, which is unique per ticket
func (e *TicketCreatedEvent) Key() string {
	if e.TicketID != "" {
		return e.TicketID
	}
	return e.QRCode
}

// NewTicketCreatedEvent builds the purchase announcement for ticket
func NewTicketCreatedEvent(ticket *models.Ticket) *TicketCreatedEvent {
	return &TicketCreatedEvent{
		TicketID:     ticket.TicketID,
		PassengerID:  ticket.PassengerID,
		TripID:       ticket.TripID,
		RouteID:      ticket.RouteID,
		RouteNumber:  ticket.RouteNumber,
		Fare:         ticket.Fare,
		QRCode:       ticket.QRCode,
		PurchaseTime: ticket.PurchasedAt.UTC(),
		ValidUntil:   ticket.ValidUntil.UTC(),
	}
}

// TicketValidatedEvent announces a successful boarding check
type TicketValidatedEvent struct {
	ValidationID string    `json:"validationId"`
	TicketID     string    `json:"ticketId"`
	PassengerID  string    `json:"passengerId"`
	TripID       string    `json:"tripId"`
	RouteNumber  string    `json:"routeNumber"`
	ValidatedAt  time.Time `json:"validatedAt"`
}

func (e *TicketValidatedEvent) Kind() Kind  { return KindTicketValidated }
func (e *TicketValidatedEvent) Key() string { return e.ValidationID }

// NewTicketValidatedEvent builds the validation announcement for ticket
func NewTicketValidatedEvent(validationID string, ticket *models.Ticket, at time.Time) *TicketValidatedEvent {
	return &TicketValidatedEvent{
		ValidationID: validationID,
		TicketID:     ticket.TicketID,
		PassengerID:  ticket.PassengerID,
		TripID:       ticket.TripID,
		RouteNumber:  ticket.RouteNumber,
		ValidatedAt:  at.UTC(),
	}
}
