package transport

import (
	"context"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_transport.go -package=mocks github.com/davidNdantsi/DSA-Assignment2-2025/services/transport TransportRepo,TransportUC,ScheduleEventPublisher

// TransportRepo defines the interface for route and trip data access operations
type TransportRepo interface {
	CreateRoute(ctx context.Context, route *models.Route) error
	GetRoute(ctx context.Context, routeID string) (*models.Route, error)
	ListRoutes(ctx context.Context, activeOnly bool) ([]*models.Route, error)

	CreateTrip(ctx context.Context, trip *models.Trip) error
	GetTrip(ctx context.Context, tripID string) (*models.Trip, error)
	ListTrips(ctx context.Context, filter models.TripFilter) ([]*models.Trip, error)
	// UpdateTrip persists trip only while its stored status is still previous.
	// It reports false when no row matched.
	UpdateTrip(ctx context.Context, trip *models.Trip, previous models.TripStatus) (bool, error)
	// ReserveSeat takes one seat from a SCHEDULED trip with seats left
	ReserveSeat(ctx context.Context, tripID string) (bool, error)
	// ReleaseSeat returns one seat, never exceeding total seats
	ReleaseSeat(ctx context.Context, tripID string) (bool, error)
}
