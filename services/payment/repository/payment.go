package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/apperror"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/constants"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
)

const paymentColumns = `payment_id, ticket_id, passenger_id, amount, currency, status, payment_method,
	transaction_reference, failure_reason, created_at, processed_at, refunded_at`

// PaymentRepo implements the payment.PaymentRepo interface
type PaymentRepo struct {
	db *sqlx.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *sqlx.DB) *PaymentRepo {
	return &PaymentRepo{db: db}
}

// CreatePayment inserts a payment
func (r *PaymentRepo) CreatePayment(ctx context.Context, payment *models.Payment) error {
	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES (:payment_id, :ticket_id, :passenger_id, :amount, :currency, :status, :payment_method,
			:transaction_reference, :failure_reason, :created_at, :processed_at, :refunded_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, payment); err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

// GetPayment retrieves a payment by id
func (r *PaymentRepo) GetPayment(ctx context.Context, paymentID string) (*models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE payment_id = $1`
	return r.get(ctx, query, paymentID, fmt.Sprintf("Payment %s not found", paymentID))
}

// GetPaymentByTicket retrieves the latest payment made for a ticket
func (r *PaymentRepo) GetPaymentByTicket(ctx context.Context, ticketID string) (*models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE ticket_id = $1 ORDER BY created_at DESC LIMIT 1`
	return r.get(ctx, query, ticketID, fmt.Sprintf("No payment found for ticket %s", ticketID))
}

func (r *PaymentRepo) get(ctx context.Context, query, arg, notFound string) (*models.Payment, error) {
	var p models.Payment
	if err := r.db.GetContext(ctx, &p, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound(constants.ErrCodePaymentNotFound, notFound)
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return &p, nil
}

// ResolvePayment records the simulator's outcome for a PENDING payment
func (r *PaymentRepo) ResolvePayment(ctx context.Context, payment *models.Payment) (bool, error) {
	query := `
		UPDATE payments SET
			status = $2,
			transaction_reference = $3,
			failure_reason = $4,
			processed_at = $5
		WHERE payment_id = $1 AND status = 'PENDING'
	`

	res, err := r.db.ExecContext(ctx, query,
		payment.PaymentID,
		payment.Status,
		payment.TransactionReference,
		payment.FailureReason,
		payment.ProcessedAt,
	)
	if err != nil {
		return false, fmt.Errorf("failed to resolve payment: %w", err)
	}
	return affected(res)
}

// RefundPayment refunds a successful payment
func (r *PaymentRepo) RefundPayment(ctx context.Context, paymentID string, at time.Time) (bool, error) {
	query := `
		UPDATE payments SET status = 'REFUNDED', refunded_at = $2
		WHERE payment_id = $1 AND status = 'SUCCESS'
	`

	res, err := r.db.ExecContext(ctx, query, paymentID, at)
	if err != nil {
		return false, fmt.Errorf("failed to refund payment: %w", err)
	}
	return affected(res)
}

func affected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return n > 0, nil
}
