package ticketing

import (
	"context"
	"time"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_ticketing.go -package=mocks github.com/davidNdantsi/DSA-Assignment2-2025/services/ticketing TicketRepo,TicketUC,PassengerGW,TransportGW,PaymentGW,TicketEventPublisher

// TicketRepo defines the interface for ticket data access operations.
// The conditional writes report false when the ticket was not in the
// expected state, or does not exist.
type TicketRepo interface {
	CreateTicket(ctx context.Context, ticket *models.Ticket) error
	GetTicket(ctx context.Context, ticketID string) (*models.Ticket, error)
	ListTicketsByPassenger(ctx context.Context, passengerID string) ([]*models.Ticket, error)

	// ConfirmPayment moves a CREATED ticket to PAID and records paymentID
	ConfirmPayment(ctx context.Context, ticketID, paymentID string) (bool, error)
	// MarkValidated moves a PAID ticket to VALIDATED
	MarkValidated(ctx context.Context, ticketID string, at time.Time) (bool, error)
	// MarkExpired moves a CREATED or PAID ticket to EXPIRED
	MarkExpired(ctx context.Context, ticketID string) (bool, error)
	// ExpireStale expires every CREATED or PAID ticket whose validity ended before now
	ExpireStale(ctx context.Context, now time.Time) (int64, error)
}
