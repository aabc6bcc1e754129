package ticketing

import (
	"context"
	"time"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
)

// PassengerGW looks passengers up in the passenger service
type PassengerGW interface {
	GetPassenger(ctx context.Context, passengerID string) (*models.Passenger, error)
}

// TransportGW reads trips and moves seats in the transport service
type TransportGW interface {
	GetTrip(ctx context.Context, tripID string) (*models.Trip, error)
	ReserveSeat(ctx context.Context, tripID string) (*models.Trip, error)
	ReleaseSeat(ctx context.Context, tripID string) error
}

// PaymentGW settles tickets through the payment service
type PaymentGW interface {
	ProcessPayment(ctx context.Context, req *models.PaymentRequest) (*models.PaymentResponse, error)
	GetPayment(ctx context.Context, paymentID string) (*models.Payment, error)
}

// TicketEventPublisher announces ticket lifecycle events. Failures are
// reported in the result, never returned as errors.
type TicketEventPublisher interface {
	PublishCreated(ctx context.Context, ticket *models.Ticket) models.PublishResult
	PublishValidated(ctx context.Context, ticket *models.Ticket, at time.Time) models.PublishResult
}
