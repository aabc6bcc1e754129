package constants

// Redis key formats
const (
	// Notification Service
	KeyProcessedMessage = "notification:processed:%s:%s" // Format: notification:processed:{topic}:{message_key}

	// Ticketing Service
	KeyPassengerCache = "ticketing:passenger:%s" // Format: ticketing:passenger:{passenger_id}
)
