package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/apperror"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/constants"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/logger"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/utils"
	"github.com/davidNdantsi/DSA-Assignment2-2025/services/transport"
)

// stops are stored at ~5m resolution and searched by ~5km cells
const stopStoragePrecision uint = 9

type transportUC struct {
	cfg       *models.Config
	repo      transport.TransportRepo
	publisher transport.ScheduleEventPublisher
	now       func() time.Time
}

// NewTransportUC creates a new transport use case
func NewTransportUC(cfg *models.Config, repo transport.TransportRepo, publisher transport.ScheduleEventPublisher) transport.TransportUC {
	return &transportUC{
		cfg:       cfg,
		repo:      repo,
		publisher: publisher,
		now:       time.Now,
	}
}

// CreateRoute stores a route, indexing every stop by geohash
func (uc *transportUC) CreateRoute(ctx context.Context, req *models.CreateRouteRequest) (*models.Route, error) {
	stops := make(models.Stops, len(req.Stops))
	for i, s := range req.Stops {
		s.Geohash = utils.EncodePoint(utils.GeoPoint{Latitude: s.Latitude, Longitude: s.Longitude}, stopStoragePrecision)
		stops[i] = s
	}

	route := &models.Route{
		RouteID:     uuid.New().String(),
		RouteNumber: req.RouteNumber,
		Name:        req.Name,
		Origin:      req.Origin,
		Destination: req.Destination,
		Stops:       stops,
		BaseFare:    req.BaseFare,
		Active:      true,
		CreatedAt:   uc.now().UTC(),
	}
	if err := uc.repo.CreateRoute(ctx, route); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Route created",
		logger.String("route_id", route.RouteID),
		logger.String("route_number", route.RouteNumber),
		logger.Int("stops", len(stops)))
	return route, nil
}

// GetRoute returns a route by id
func (uc *transportUC) GetRoute(ctx context.Context, routeID string) (*models.Route, error) {
	return uc.repo.GetRoute(ctx, routeID)
}

// ListRoutes returns active routes
func (uc *transportUC) ListRoutes(ctx context.Context) ([]*models.Route, error) {
	return uc.repo.ListRoutes(ctx, true)
}

// FindRoutesNear returns active routes with a stop in the search cell
// around (lat, lng) or its neighbours, nearest stop first
func (uc *transportUC) FindRoutesNear(ctx context.Context, lat, lng float64) ([]*models.Route, error) {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, apperror.Validation(constants.ErrCodeValidation, "Coordinates out of range")
	}

	routes, err := uc.repo.ListRoutes(ctx, true)
	if err != nil {
		return nil, err
	}

	origin := utils.GeoPoint{Latitude: lat, Longitude: lng}
	cells := utils.SearchCells(origin, utils.StopGeohashPrecision)

	type candidate struct {
		route    *models.Route
		distance float64
	}
	var found []candidate
	for _, route := range routes {
		best := -1.0
		for _, stop := range route.Stops {
			if !utils.InCells(stop.Geohash, cells) {
				continue
			}
			d := utils.CalculateDistance(origin, utils.GeoPoint{Latitude: stop.Latitude, Longitude: stop.Longitude})
			if best < 0 || d < best {
				best = d
			}
		}
		if best >= 0 {
			found = append(found, candidate{route: route, distance: best})
		}
	}

	sort.SliceStable(found, func(i, j int) bool { return found[i].distance < found[j].distance })

	out := make([]*models.Route, len(found))
	for i, c := range found {
		out[i] = c.route
	}
	return out, nil
}

// CreateTrip schedules a trip on an active route with every seat free
func (uc *transportUC) CreateTrip(ctx context.Context, req *models.CreateTripRequest) (*models.Trip, error) {
	route, err := uc.repo.GetRoute(ctx, req.RouteID)
	if err != nil {
		return nil, err
	}
	if !route.Active {
		return nil, apperror.Validation(constants.ErrCodeValidation, fmt.Sprintf("Route %s is not active", route.RouteNumber))
	}

	now := uc.now().UTC()
	trip := &models.Trip{
		TripID:             uuid.New().String(),
		RouteID:            route.RouteID,
		RouteNumber:        route.RouteNumber,
		ScheduledDeparture: req.ScheduledDeparture.UTC(),
		ScheduledArrival:   req.ScheduledArrival.UTC(),
		TotalSeats:         req.TotalSeats,
		AvailableSeats:     req.TotalSeats,
		Fare:               route.BaseFare,
		Status:             models.TripStatusScheduled,
		DriverName:         req.DriverName,
		VehicleID:          req.VehicleID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.repo.CreateTrip(ctx, trip); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Trip created",
		logger.String("trip_id", trip.TripID),
		logger.String("route_number", trip.RouteNumber),
		logger.Time("scheduled_departure", trip.ScheduledDeparture))
	return trip, nil
}

// GetTrip returns a trip by id
func (uc *transportUC) GetTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	return uc.repo.GetTrip(ctx, tripID)
}

// ListTrips returns trips matching filter
func (uc *transportUC) ListTrips(ctx context.Context, filter models.TripFilter) ([]*models.Trip, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, apperror.Validation(constants.ErrCodeValidation, fmt.Sprintf("Unknown trip status %q", filter.Status))
	}
	return uc.repo.ListTrips(ctx, filter)
}
