package ticketing

import (
	"context"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
)

// TicketUC represents the ticket lifecycle usecase interface
type TicketUC interface {
	Purchase(ctx context.Context, req *models.PurchaseTicketRequest) (*models.Ticket, error)
	GetTicket(ctx context.Context, ticketID string) (*models.Ticket, error)
	ListTicketsByPassenger(ctx context.Context, passengerID string) ([]*models.Ticket, error)
	ConfirmPayment(ctx context.Context, ticketID, paymentID string) (*models.Ticket, error)
	PayTicket(ctx context.Context, ticketID string, method models.PaymentMethod) (*models.PayTicketResponse, error)
	ValidateTicket(ctx context.Context, ticketID string) (*models.Ticket, error)
	ExpireStale(ctx context.Context) (*models.ExpireTicketsResponse, error)
	TicketPDF(ctx context.Context, ticketID string) ([]byte, string, error)
}
