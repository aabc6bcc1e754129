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

const ticketColumns = `ticket_id, passenger_id, trip_id, route_id, route_number, fare, status,
	qr_code, purchased_at, validated_at, valid_until, payment_id`

// TicketRepo implements the ticketing.TicketRepo interface
type TicketRepo struct {
	db *sqlx.DB
}

// NewTicketRepository creates a new ticket repository
func NewTicketRepository(db *sqlx.DB) *TicketRepo {
	return &TicketRepo{db: db}
}

// CreateTicket inserts a ticket
func (r *TicketRepo) CreateTicket(ctx context.Context, ticket *models.Ticket) error {
	query := `
		INSERT INTO tickets (` + ticketColumns + `)
		VALUES (:ticket_id, :passenger_id, :trip_id, :route_id, :route_number, :fare, :status,
			:qr_code, :purchased_at, :validated_at, :valid_until, :payment_id)
	`

	if _, err := r.db.NamedExecContext(ctx, query, ticket); err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}
	return nil
}

// GetTicket retrieves a ticket by id
func (r *TicketRepo) GetTicket(ctx context.Context, ticketID string) (*models.Ticket, error) {
	var ticket models.Ticket
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE ticket_id = $1`

	if err := r.db.GetContext(ctx, &ticket, query, ticketID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound(constants.ErrCodeTicketNotFound, fmt.Sprintf("Ticket %s not found", ticketID))
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	return &ticket, nil
}

// ListTicketsByPassenger returns a passenger's tickets, newest first
func (r *TicketRepo) ListTicketsByPassenger(ctx context.Context, passengerID string) ([]*models.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE passenger_id = $1 ORDER BY purchased_at DESC`

	tickets := []*models.Ticket{}
	if err := r.db.SelectContext(ctx, &tickets, query, passengerID); err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return tickets, nil
}

// ConfirmPayment marks a CREATED ticket as PAID
func (r *TicketRepo) ConfirmPayment(ctx context.Context, ticketID, paymentID string) (bool, error) {
	query := `
		UPDATE tickets SET status = 'PAID', payment_id = $2
		WHERE ticket_id = $1 AND status = 'CREATED'
	`

	res, err := r.db.ExecContext(ctx, query, ticketID, paymentID)
	if err != nil {
		return false, fmt.Errorf("failed to confirm payment: %w", err)
	}
	return affected(res)
}

// MarkValidated marks a PAID ticket as VALIDATED
func (r *TicketRepo) MarkValidated(ctx context.Context, ticketID string, at time.Time) (bool, error) {
	query := `
		UPDATE tickets SET status = 'VALIDATED', validated_at = $2
		WHERE ticket_id = $1 AND status = 'PAID'
	`

	res, err := r.db.ExecContext(ctx, query, ticketID, at)
	if err != nil {
		return false, fmt.Errorf("failed to validate ticket: %w", err)
	}
	return affected(res)
}

// MarkExpired expires a single CREATED or PAID ticket
func (r *TicketRepo) MarkExpired(ctx context.Context, ticketID string) (bool, error) {
	query := `
		UPDATE tickets SET status = 'EXPIRED'
		WHERE ticket_id = $1 AND status IN ('CREATED', 'PAID')
	`

	res, err := r.db.ExecContext(ctx, query, ticketID)
	if err != nil {
		return false, fmt.Errorf("failed to expire ticket: %w", err)
	}
	return affected(res)
}

// ExpireStale expires every unused ticket past its validity in one statement
func (r *TicketRepo) ExpireStale(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE tickets SET status = 'EXPIRED'
		WHERE status IN ('CREATED', 'PAID') AND valid_until < $1
	`

	res, err := r.db.ExecContext(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("failed to expire stale tickets: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return n, nil
}

func affected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return n > 0, nil
}
