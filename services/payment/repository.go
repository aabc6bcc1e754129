package payment

import (
	"context"
	"time"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_payment.go -package=mocks github.com/davidNdantsi/DSA-Assignment2-2025/services/payment PaymentRepo,PaymentUC

// PaymentRepo defines the interface for payment data access operations
type PaymentRepo interface {
	CreatePayment(ctx context.Context, payment *models.Payment) error
	GetPayment(ctx context.Context, paymentID string) (*models.Payment, error)
	// GetPaymentByTicket returns the most recent payment for a ticket
	GetPaymentByTicket(ctx context.Context, ticketID string) (*models.Payment, error)
	// ResolvePayment writes the outcome of a PENDING payment. It reports
	// false when the payment was no longer PENDING.
	ResolvePayment(ctx context.Context, payment *models.Payment) (bool, error)
	// RefundPayment moves a SUCCESS payment to REFUNDED
	RefundPayment(ctx context.Context, paymentID string, at time.Time) (bool, error)
}
