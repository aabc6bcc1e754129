package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/apperror"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/constants"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
)

const tripColumns = `trip_id, route_id, route_number, scheduled_departure, scheduled_arrival,
	actual_departure, actual_arrival, total_seats, available_seats, fare, status,
	delay_reason, delay_minutes, driver_name, vehicle_id, created_at, updated_at`

// CreateTrip inserts a trip
func (r *TransportRepo) CreateTrip(ctx context.Context, trip *models.Trip) error {
	query := `
		INSERT INTO trips (` + tripColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	_, err := r.db.ExecContext(ctx, query,
		trip.TripID,
		trip.RouteID,
		trip.RouteNumber,
		trip.ScheduledDeparture,
		trip.ScheduledArrival,
		trip.ActualDeparture,
		trip.ActualArrival,
		trip.TotalSeats,
		trip.AvailableSeats,
		trip.Fare,
		trip.Status,
		trip.DelayReason,
		trip.DelayMinutes,
		trip.DriverName,
		trip.VehicleID,
		trip.CreatedAt,
		trip.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create trip: %w", err)
	}
	return nil
}

// GetTrip retrieves a trip by id
func (r *TransportRepo) GetTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	var trip models.Trip
	query := `SELECT ` + tripColumns + ` FROM trips WHERE trip_id = $1`

	if err := r.db.GetContext(ctx, &trip, query, tripID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound(constants.ErrCodeTripNotFound, fmt.Sprintf("Trip %s not found", tripID))
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	return &trip, nil
}

// ListTrips returns trips matching filter ordered by departure
func (r *TransportRepo) ListTrips(ctx context.Context, filter models.TripFilter) ([]*models.Trip, error) {
	var (
		where []string
		args  []interface{}
	)
	if filter.RouteID != "" {
		args = append(args, filter.RouteID)
		where = append(where, fmt.Sprintf("route_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}

	query := `SELECT ` + tripColumns + ` FROM trips`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY scheduled_departure`

	trips := []*models.Trip{}
	if err := r.db.SelectContext(ctx, &trips, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	return trips, nil
}

// UpdateTrip writes every mutable trip field, guarded by the previous status
func (r *TransportRepo) UpdateTrip(ctx context.Context, trip *models.Trip, previous models.TripStatus) (bool, error) {
	query := `
		UPDATE trips SET
			status = $3,
			scheduled_departure = $4,
			scheduled_arrival = $5,
			actual_departure = $6,
			actual_arrival = $7,
			delay_reason = $8,
			delay_minutes = $9,
			driver_name = $10,
			vehicle_id = $11,
			updated_at = $12
		WHERE trip_id = $1 AND status = $2
	`

	res, err := r.db.ExecContext(ctx, query,
		trip.TripID,
		previous,
		trip.Status,
		trip.ScheduledDeparture,
		trip.ScheduledArrival,
		trip.ActualDeparture,
		trip.ActualArrival,
		trip.DelayReason,
		trip.DelayMinutes,
		trip.DriverName,
		trip.VehicleID,
		trip.UpdatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update trip: %w", err)
	}
	return affected(res)
}

// ReserveSeat decrements available seats in a single conditional statement
func (r *TransportRepo) ReserveSeat(ctx context.Context, tripID string) (bool, error) {
	query := `
		UPDATE trips SET available_seats = available_seats - 1, updated_at = NOW()
		WHERE trip_id = $1 AND available_seats > 0 AND status = 'SCHEDULED'
	`

	res, err := r.db.ExecContext(ctx, query, tripID)
	if err != nil {
		return false, fmt.Errorf("failed to reserve seat: %w", err)
	}
	return affected(res)
}

// ReleaseSeat increments available seats up to the trip's capacity
func (r *TransportRepo) ReleaseSeat(ctx context.Context, tripID string) (bool, error) {
	query := `
		UPDATE trips SET available_seats = available_seats + 1, updated_at = NOW()
		WHERE trip_id = $1 AND available_seats < total_seats
	`

	res, err := r.db.ExecContext(ctx, query, tripID)
	if err != nil {
		return false, fmt.Errorf("failed to release seat: %w", err)
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
