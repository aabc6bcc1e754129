package transport

import (
	"context"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
)

// TransportUC represents the transport usecase interface
type TransportUC interface {
	CreateRoute(ctx context.Context, req *models.CreateRouteRequest) (*models.Route, error)
	GetRoute(ctx context.Context, routeID string) (*models.Route, error)
	ListRoutes(ctx context.Context) ([]*models.Route, error)
	FindRoutesNear(ctx context.Context, lat, lng float64) ([]*models.Route, error)

	CreateTrip(ctx context.Context, req *models.CreateTripRequest) (*models.Trip, error)
	GetTrip(ctx context.Context, tripID string) (*models.Trip, error)
	ListTrips(ctx context.Context, filter models.TripFilter) ([]*models.Trip, error)
	UpdateTrip(ctx context.Context, tripID string, update models.TripUpdate) (*models.Trip, error)
	UpdateTripStatus(ctx context.Context, tripID string, status models.TripStatus) (*models.Trip, error)
	DelayTrip(ctx context.Context, tripID string, minutes int, reason string) (*models.Trip, error)
	CancelTrip(ctx context.Context, tripID string, reason string) (*models.Trip, error)

	ReserveSeat(ctx context.Context, tripID string) (*models.Trip, error)
	ReleaseSeat(ctx context.Context, tripID string) (*models.Trip, error)
}
