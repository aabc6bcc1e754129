package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/apperror"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/constants"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
)

const routeColumns = `route_id, route_number, name, origin, destination, stops, base_fare, active, created_at`

// TransportRepo stores routes and trips in Postgres
type TransportRepo struct {
	db *sqlx.DB
}

// NewTransportRepository creates a new transport repository
func NewTransportRepository(db *sqlx.DB) *TransportRepo {
	return &TransportRepo{db: db}
}

// CreateRoute inserts a route
func (r *TransportRepo) CreateRoute(ctx context.Context, route *models.Route) error {
	query := `
		INSERT INTO routes (` + routeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(ctx, query,
		route.RouteID,
		route.RouteNumber,
		route.Name,
		route.Origin,
		route.Destination,
		route.Stops,
		route.BaseFare,
		route.Active,
		route.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create route: %w", err)
	}
	return nil
}

// GetRoute retrieves a route by id
func (r *TransportRepo) GetRoute(ctx context.Context, routeID string) (*models.Route, error) {
	var route models.Route
	query := `SELECT ` + routeColumns + ` FROM routes WHERE route_id = $1`

	if err := r.db.GetContext(ctx, &route, query, routeID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound(constants.ErrCodeRouteNotFound, fmt.Sprintf("Route %s not found", routeID))
		}
		return nil, fmt.Errorf("failed to get route: %w", err)
	}
	return &route, nil
}

// ListRoutes returns routes ordered by route number
func (r *TransportRepo) ListRoutes(ctx context.Context, activeOnly bool) ([]*models.Route, error) {
	routes := []*models.Route{}
	query := `SELECT ` + routeColumns + ` FROM routes`
	if activeOnly {
		query += ` WHERE active = TRUE`
	}
	query += ` ORDER BY route_number`

	if err := r.db.SelectContext(ctx, &routes, query); err != nil {
		return nil, fmt.Errorf("failed to list routes: %w", err)
	}
	return routes, nil
}
