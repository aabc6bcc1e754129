package payment

import (
	"context"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
)

// PaymentUC represents the payment simulator usecase interface
type PaymentUC interface {
	ProcessPayment(ctx context.Context, req *models.PaymentRequest) (*models.PaymentResponse, error)
	GetPayment(ctx context.Context, paymentID string) (*models.Payment, error)
	GetPaymentByTicket(ctx context.Context, ticketID string) (*models.Payment, error)
	RefundPayment(ctx context.Context, paymentID string) (*models.Payment, error)
}
