package constants

// Machine-readable error codes returned in the errorCode field
const (
	ErrCodePassengerNotFound       = "PASSENGER_NOT_FOUND"
	ErrCodeInactivePassenger       = "INACTIVE_PASSENGER"
	ErrCodeTripNotFound            = "TRIP_NOT_FOUND"
	ErrCodeNoSeats                 = "NO_SEATS"
	ErrCodeInvalidTripStatus       = "INVALID_TRIP_STATUS"
	ErrCodeTicketNotFound          = "TICKET_NOT_FOUND"
	ErrCodeInvalidTicketStatus     = "INVALID_TICKET_STATUS"
	ErrCodeTicketExpired           = "TICKET_EXPIRED"
	ErrCodeInvalidStatusTransition = "INVALID_STATUS_TRANSITION"
	ErrCodeRouteNotFound           = "ROUTE_NOT_FOUND"
	ErrCodePaymentNotFound         = "PAYMENT_NOT_FOUND"
	ErrCodeInvalidPaymentStatus    = "INVALID_PAYMENT_STATUS"
	ErrCodeNotificationNotFound    = "NOTIFICATION_NOT_FOUND"
	ErrCodeValidation              = "VALIDATION_ERROR"
	ErrCodeDuplicateEmail          = "DUPLICATE_EMAIL"
	ErrCodeInvalidCredentials      = "INVALID_CREDENTIALS"
	ErrCodeDatabase                = "DATABASE_ERROR"
	ErrCodeUpstream                = "UPSTREAM_ERROR"
	ErrCodeInternal                = "INTERNAL_ERROR"
	ErrCodeRateLimited             = "RATE_LIMITED"
)
