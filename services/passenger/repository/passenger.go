package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/apperror"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/constants"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
)

const uniqueViolation = "23505"

const passengerColumns = `passenger_id, first_name, last_name, email, phone, password_hash, status, created_at, updated_at`

// PassengerRepo stores passengers in Postgres
type PassengerRepo struct {
	db *sqlx.DB
}

// NewPassengerRepository creates a new passenger repository
func NewPassengerRepository(db *sqlx.DB) *PassengerRepo {
	return &PassengerRepo{db: db}
}

func passengerNotFound(id string) error {
	return apperror.NotFound(constants.ErrCodePassengerNotFound, fmt.Sprintf("Passenger %s not found", id))
}

// CreatePassenger inserts a new passenger; a taken email becomes DUPLICATE_EMAIL
func (r *PassengerRepo) CreatePassenger(ctx context.Context, p *models.Passenger) error {
	query := `
		INSERT INTO passengers (` + passengerColumns + `)
		VALUES (:passenger_id, :first_name, :last_name, :email, :phone, :password_hash, :status, :created_at, :updated_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, p); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperror.Validation(constants.ErrCodeDuplicateEmail, "Email is already registered")
		}
		return fmt.Errorf("failed to create passenger: %w", err)
	}
	return nil
}

// GetPassengerByID retrieves a passenger by id
func (r *PassengerRepo) GetPassengerByID(ctx context.Context, passengerID string) (*models.Passenger, error) {
	var p models.Passenger
	query := `SELECT ` + passengerColumns + ` FROM passengers WHERE passenger_id = $1`

	if err := r.db.GetContext(ctx, &p, query, passengerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, passengerNotFound(passengerID)
		}
		return nil, fmt.Errorf("failed to get passenger: %w", err)
	}
	return &p, nil
}

// GetPassengerByEmail retrieves a passenger by login email, case-insensitively
func (r *PassengerRepo) GetPassengerByEmail(ctx context.Context, email string) (*models.Passenger, error) {
	var p models.Passenger
	query := `SELECT ` + passengerColumns + ` FROM passengers WHERE email = $1`

	if err := r.db.GetContext(ctx, &p, query, strings.ToLower(email)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, passengerNotFound(email)
		}
		return nil, fmt.Errorf("failed to get passenger by email: %w", err)
	}
	return &p, nil
}

// UpdateStatus sets a passenger's account status and returns the stored row
func (r *PassengerRepo) UpdateStatus(ctx context.Context, passengerID string, status models.PassengerStatus) (*models.Passenger, error) {
	var p models.Passenger
	query := `
		UPDATE passengers SET status = $2, updated_at = NOW()
		WHERE passenger_id = $1
		RETURNING ` + passengerColumns

	if err := r.db.GetContext(ctx, &p, query, passengerID, status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, passengerNotFound(passengerID)
		}
		return nil, fmt.Errorf("failed to update passenger status: %w", err)
	}
	return &p, nil
}

// ListPassengers pages through passengers, newest first
func (r *PassengerRepo) ListPassengers(ctx context.Context, limit, offset int) ([]*models.Passenger, error) {
	passengers := []*models.Passenger{}
	query := `SELECT ` + passengerColumns + ` FROM passengers ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	if err := r.db.SelectContext(ctx, &passengers, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list passengers: %w", err)
	}
	return passengers, nil
}
