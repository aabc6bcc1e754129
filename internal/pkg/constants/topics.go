package constants

// Bus topics
const (
	// Transport Service
	TopicScheduleUpdates = "schedule-updates"

	// Ticketing Service
	TopicTicketCreated   = "ticket-created"
	TopicTicketValidated = "ticket-validated"
)

// Bus infrastructure names
const (
	StreamName           = "TRANSIT_STREAM"
	ExchangeName         = "transit.events"
	DefaultConsumerGroup = "notification-service"
	HeaderMessageKey     = "Transit-Key"
)
