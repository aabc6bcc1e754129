package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/apperror"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/broker"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/constants"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/events"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/utils"
	"github.com/davidNdantsi/DSA-Assignment2-2025/services/transport/gateway"
	"github.com/davidNdantsi/DSA-Assignment2-2025/services/transport/mocks"
)

var (
	fixedNow  = time.Date(2025, 10, 1, 7, 0, 0, 0, time.UTC)
	departure = fixedNow.Add(30 * time.Minute)
)

type fixture struct {
	uc        *transportUC
	repo      *mocks.MockTransportRepo
	publisher *mocks.MockScheduleEventPublisher
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockTransportRepo(ctrl)
	pub := mocks.NewMockScheduleEventPublisher(ctrl)

	uc := NewTransportUC(&models.Config{}, repo, pub).(*transportUC)
	uc.now = func() time.Time { return fixedNow }
	return fixture{uc: uc, repo: repo, publisher: pub}
}

func scheduledTrip() *models.Trip {
	return &models.Trip{
		TripID:             "t-1",
		RouteID:            "r-1",
		RouteNumber:        "21",
		ScheduledDeparture: departure,
		ScheduledArrival:   departure.Add(45 * time.Minute),
		TotalSeats:         40,
		AvailableSeats:     12,
		Fare:               14.5,
		Status:             models.TripStatusScheduled,
	}
}

func TestCreateRoute_IndexesStops(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().CreateRoute(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.Route) error {
			require.Len(t, r.Stops, 1)
			assert.Len(t, r.Stops[0].Geohash, int(stopStoragePrecision))
			assert.True(t, r.Active)
			return nil
		})

	route, err := f.uc.CreateRoute(context.Background(), &models.CreateRouteRequest{
		RouteNumber: "21",
		Name:        "Katutura - CBD",
		Stops:       []models.Stop{{Name: "Wernhil", Latitude: -22.5609, Longitude: 17.0658}},
		BaseFare:    14.5,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, route.RouteID)
}

func TestFindRoutesNear(t *testing.T) {
	f := newFixture(t)

	stop := func(name string, lat, lng float64) models.Stop {
		return models.Stop{Name: name, Latitude: lat, Longitude: lng,
			Geohash: utils.EncodePoint(utils.GeoPoint{Latitude: lat, Longitude: lng}, stopStoragePrecision)}
	}
	far := &models.Route{RouteID: "far", Stops: models.Stops{stop("Swakopmund", -22.6784, 14.5266)}}
	near := &models.Route{RouteID: "near", Stops: models.Stops{stop("Wernhil", -22.5609, 17.0658)}}
	nearer := &models.Route{RouteID: "nearer", Stops: models.Stops{stop("Post Street", -22.5700, 17.0836)}}

	f.repo.EXPECT().ListRoutes(gomock.Any(), true).Return([]*models.Route{far, near, nearer}, nil)

	routes, err := f.uc.FindRoutesNear(context.Background(), -22.5705, 17.0840)
	require.NoError(t, err)
	require.Len(t, routes, 2)
	assert.Equal(t, "nearer", routes[0].RouteID)
	assert.Equal(t, "near", routes[1].RouteID)

	_, err = f.uc.FindRoutesNear(context.Background(), 91, 0)
	assert.Equal(t, constants.ErrCodeValidation, apperror.CodeOf(err))
}

func TestCreateTrip_FareAndSeatsFromRoute(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().GetRoute(gomock.Any(), "r-1").
		Return(&models.Route{RouteID: "r-1", RouteNumber: "21", BaseFare: 14.5, Active: true}, nil)
	f.repo.EXPECT().CreateTrip(gomock.Any(), gomock.Any()).Return(nil)

	trip, err := f.uc.CreateTrip(context.Background(), &models.CreateTripRequest{
		RouteID:            "r-1",
		ScheduledDeparture: departure,
		ScheduledArrival:   departure.Add(time.Hour),
		TotalSeats:         40,
	})
	require.NoError(t, err)
	assert.Equal(t, models.TripStatusScheduled, trip.Status)
	assert.Equal(t, 40, trip.AvailableSeats)
	assert.Equal(t, 14.5, trip.Fare)
	assert.Equal(t, "21", trip.RouteNumber)
}

func TestCreateTrip_InactiveRoute(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().GetRoute(gomock.Any(), "r-1").Return(&models.Route{RouteID: "r-1", Active: false}, nil)

	_, err := f.uc.CreateTrip(context.Background(), &models.CreateTripRequest{RouteID: "r-1"})
	assert.Equal(t, constants.ErrCodeValidation, apperror.CodeOf(err))
}

func TestUpdateTrip_IllegalTransitionWritesNothing(t *testing.T) {
	f := newFixture(t)

	completed := scheduledTrip()
	completed.Status = models.TripStatusCompleted
	f.repo.EXPECT().GetTrip(gomock.Any(), "t-1").Return(completed, nil)

	_, err := f.uc.UpdateTripStatus(context.Background(), "t-1", models.TripStatusInProgress)
	assert.Equal(t, constants.ErrCodeInvalidStatusTransition, apperror.CodeOf(err))
}

func TestUpdateTrip_ConcurrentWriterDetected(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().GetTrip(gomock.Any(), "t-1").Return(scheduledTrip(), nil)
	f.repo.EXPECT().UpdateTrip(gomock.Any(), gomock.Any(), models.TripStatusScheduled).Return(false, nil)

	_, err := f.uc.CancelTrip(context.Background(), "t-1", "Bus breakdown")
	assert.Equal(t, constants.ErrCodeInvalidStatusTransition, apperror.CodeOf(err))
}

func TestUpdateTrip_PublishFailureDoesNotFailUpdate(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().GetTrip(gomock.Any(), "t-1").Return(scheduledTrip(), nil)
	f.repo.EXPECT().UpdateTrip(gomock.Any(), gomock.Any(), models.TripStatusScheduled).Return(true, nil)
	f.publisher.EXPECT().
		Publish(gomock.Any(), gomock.Any(), models.TripStatusScheduled, events.EventTypeCancellation).
		Return(models.PublishResult{Success: false, ErrorMessage: "broker down"})

	trip, err := f.uc.CancelTrip(context.Background(), "t-1", "Bus breakdown")
	require.NoError(t, err)
	assert.Equal(t, models.TripStatusCancelled, trip.Status)
	assert.Equal(t, "Bus breakdown", trip.DelayReason)
}

func TestDelayTrip(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().GetTrip(gomock.Any(), "t-1").Return(scheduledTrip(), nil)
	f.repo.EXPECT().UpdateTrip(gomock.Any(), gomock.Any(), models.TripStatusScheduled).
		DoAndReturn(func(_ context.Context, trip *models.Trip, _ models.TripStatus) (bool, error) {
			assert.Equal(t, 25, trip.DelayMinutes)
			assert.Equal(t, fixedNow, trip.UpdatedAt)
			return true, nil
		})
	f.publisher.EXPECT().
		Publish(gomock.Any(), gomock.Any(), models.TripStatusScheduled, events.EventTypeDelay).
		Return(models.PublishResult{Success: true})

	trip, err := f.uc.DelayTrip(context.Background(), "t-1", 25, "Traffic")
	require.NoError(t, err)
	assert.Equal(t, models.TripStatusDelayed, trip.Status)

	_, err = f.uc.DelayTrip(context.Background(), "t-1", 0, "Traffic")
	assert.Equal(t, constants.ErrCodeValidation, apperror.CodeOf(err))
}

func TestUpdateTripStatus_StampsActualDeparture(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().GetTrip(gomock.Any(), "t-1").Return(scheduledTrip(), nil)
	f.repo.EXPECT().UpdateTrip(gomock.Any(), gomock.Any(), models.TripStatusScheduled).Return(true, nil)
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), events.EventTypeScheduleChange).
		Return(models.PublishResult{Success: true})

	trip, err := f.uc.UpdateTripStatus(context.Background(), "t-1", models.TripStatusInProgress)
	require.NoError(t, err)
	require.NotNil(t, trip.ActualDeparture)
	assert.Equal(t, fixedNow, *trip.ActualDeparture)
}

func TestUpdateTrip_NoStatusChangeProducesNoMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockTransportRepo(ctrl)
	bus := broker.NewMemoryBus()

	uc := NewTransportUC(&models.Config{}, repo, gateway.NewSchedulePublisher(bus, "schedule-updates"))

	repo.EXPECT().GetTrip(gomock.Any(), "t-1").Return(scheduledTrip(), nil)
	repo.EXPECT().UpdateTrip(gomock.Any(), gomock.Any(), models.TripStatusScheduled).Return(true, nil)

	driver := "Johannes Nakale"
	trip, err := uc.UpdateTrip(context.Background(), "t-1", models.TripUpdate{DriverName: &driver})
	require.NoError(t, err)
	assert.Equal(t, driver, trip.DriverName)
	assert.Empty(t, bus.Published("schedule-updates"))
}

func TestUpdateTrip_ArrivalBeforeDeparture(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().GetTrip(gomock.Any(), "t-1").Return(scheduledTrip(), nil)

	early := departure.Add(-time.Minute)
	_, err := f.uc.UpdateTrip(context.Background(), "t-1", models.TripUpdate{ScheduledArrival: &early})
	assert.Equal(t, constants.ErrCodeValidation, apperror.CodeOf(err))
}

func TestReserveSeat(t *testing.T) {
	t.Run("reserved", func(t *testing.T) {
		f := newFixture(t)
		after := scheduledTrip()
		after.AvailableSeats = 11

		f.repo.EXPECT().ReserveSeat(gomock.Any(), "t-1").Return(true, nil)
		f.repo.EXPECT().GetTrip(gomock.Any(), "t-1").Return(after, nil)

		trip, err := f.uc.ReserveSeat(context.Background(), "t-1")
		require.NoError(t, err)
		assert.Equal(t, 11, trip.AvailableSeats)
	})

	t.Run("sold out", func(t *testing.T) {
		f := newFixture(t)
		full := scheduledTrip()
		full.AvailableSeats = 0

		f.repo.EXPECT().ReserveSeat(gomock.Any(), "t-1").Return(false, nil)
		f.repo.EXPECT().GetTrip(gomock.Any(), "t-1").Return(full, nil)

		_, err := f.uc.ReserveSeat(context.Background(), "t-1")
		assert.Equal(t, constants.ErrCodeNoSeats, apperror.CodeOf(err))
	})

	t.Run("not scheduled", func(t *testing.T) {
		f := newFixture(t)
		running := scheduledTrip()
		running.Status = models.TripStatusInProgress

		f.repo.EXPECT().ReserveSeat(gomock.Any(), "t-1").Return(false, nil)
		f.repo.EXPECT().GetTrip(gomock.Any(), "t-1").Return(running, nil)

		_, err := f.uc.ReserveSeat(context.Background(), "t-1")
		assert.Equal(t, constants.ErrCodeInvalidTripStatus, apperror.CodeOf(err))
	})

	t.Run("unknown trip", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().ReserveSeat(gomock.Any(), "t-x").Return(false, nil)
		f.repo.EXPECT().GetTrip(gomock.Any(), "t-x").
			Return(nil, apperror.NotFound(constants.ErrCodeTripNotFound, "Trip t-x not found"))

		_, err := f.uc.ReserveSeat(context.Background(), "t-x")
		assert.Equal(t, constants.ErrCodeTripNotFound, apperror.CodeOf(err))
	})
}

func TestReleaseSeat_AtCapacityIsNoop(t *testing.T) {
	f := newFixture(t)
	full := scheduledTrip()
	full.AvailableSeats = full.TotalSeats

	f.repo.EXPECT().ReleaseSeat(gomock.Any(), "t-1").Return(false, nil)
	f.repo.EXPECT().GetTrip(gomock.Any(), "t-1").Return(full, nil)

	trip, err := f.uc.ReleaseSeat(context.Background(), "t-1")
	require.NoError(t, err)
	assert.Equal(t, 40, trip.AvailableSeats)
}
