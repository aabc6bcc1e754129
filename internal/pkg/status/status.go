// Package status validates lifecycle transitions for trips and tickets.
package status

import (
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/apperror"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/constants"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
)

var tripEdges = map[models.TripStatus][]models.TripStatus{
	models.TripStatusScheduled:  {models.TripStatusInProgress, models.TripStatusDelayed, models.TripStatusCancelled},
	models.TripStatusInProgress: {models.TripStatusCompleted, models.TripStatusDelayed, models.TripStatusCancelled},
	models.TripStatusDelayed:    {models.TripStatusInProgress, models.TripStatusCancelled},
	models.TripStatusCompleted:  nil,
	models.TripStatusCancelled:  nil,
}

var ticketEdges = map[models.TicketStatus][]models.TicketStatus{
	models.TicketStatusCreated:   {models.TicketStatusPaid, models.TicketStatusExpired},
	models.TicketStatusPaid:      {models.TicketStatusValidated, models.TicketStatusExpired},
	models.TicketStatusValidated: nil,
	models.TicketStatusExpired:   nil,
}

func allowed[T comparable](edges map[T][]T, current, target T) bool {
	next, known := edges[current]
	if !known {
		return false
	}
	if _, known := edges[target]; !known {
		return false
	}
	if current == target {
		return true
	}
	for _, n := range next {
		if n == target {
			return true
		}
	}
	return false
}

// IsValidTripTransition reports whether a trip may move from current to target.
// Same-state moves are legal so retries stay idempotent.
func IsValidTripTransition(current, target models.TripStatus) bool {
	return allowed(tripEdges, current, target)
}

// IsValidTicketTransition reports whether a ticket may move from current to target
func IsValidTicketTransition(current, target models.TicketStatus) bool {
	return allowed(ticketEdges, current, target)
}

// IsTerminalTrip reports whether no transition leaves s
func IsTerminalTrip(s models.TripStatus) bool {
	next, known := tripEdges[s]
	return known && len(next) == 0
}

// IsTerminalTicket reports whether no transition leaves s
func IsTerminalTicket(s models.TicketStatus) bool {
	next, known := ticketEdges[s]
	return known && len(next) == 0
}

// ValidateTripTransition returns an INVALID_STATUS_TRANSITION error for illegal moves
func ValidateTripTransition(current, target models.TripStatus) error {
	if IsValidTripTransition(current, target) {
		return nil
	}
	return apperror.Validation(constants.ErrCodeInvalidStatusTransition,
		"Cannot change trip status from "+string(current)+" to "+string(target))
}

// ValidateTicketTransition returns an INVALID_TICKET_STATUS error for illegal moves
func ValidateTicketTransition(current, target models.TicketStatus) error {
	if IsValidTicketTransition(current, target) {
		return nil
	}
	return apperror.Validation(constants.ErrCodeInvalidTicketStatus,
		"Cannot change ticket status from "+string(current)+" to "+string(target))
}
