package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/apperror"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/constants"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
	"github.com/davidNdantsi/DSA-Assignment2-2025/services/transport/repository"
)

var (
	routeCols = []string{"route_id", "route_number", "name", "origin", "destination", "stops", "base_fare", "active", "created_at"}
	tripCols  = []string{"trip_id", "route_id", "route_number", "scheduled_departure", "scheduled_arrival",
		"actual_departure", "actual_arrival", "total_seats", "available_seats", "fare", "status",
		"delay_reason", "delay_minutes", "driver_name", "vehicle_id", "created_at", "updated_at"}
	departure = time.Date(2025, 10, 1, 7, 30, 0, 0, time.UTC)
)

func setupMockDB(t *testing.T) (*repository.TransportRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	return repository.NewTransportRepository(sqlx.NewDb(mockDB, "sqlmock")), mock
}

func tripRow(rows *sqlmock.Rows, id string, status string, seats int) *sqlmock.Rows {
	return rows.AddRow(id, "r-1", "21", departure, departure.Add(45*time.Minute),
		nil, nil, 40, seats, 14.5, status, "", 0, "", "", departure, departure)
}

func TestCreateRoute(t *testing.T) {
	repo, mock := setupMockDB(t)
	route := &models.Route{RouteID: "r-1", RouteNumber: "21", Name: "Katutura - CBD", BaseFare: 14.5, Active: true, CreatedAt: departure}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO routes")).
		WithArgs("r-1", "21", "Katutura - CBD", "", "", sqlmock.AnyArg(), 14.5, true, departure).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.CreateRoute(context.Background(), route))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRoute_DecodesStops(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM routes WHERE route_id = $1")).
		WithArgs("r-1").
		WillReturnRows(sqlmock.NewRows(routeCols).AddRow("r-1", "21", "Katutura - CBD", "Katutura", "CBD",
			[]byte(`[{"name":"Wernhil","latitude":-22.56,"longitude":17.08,"geohash":"kdmx"}]`), 14.5, true, departure))

	route, err := repo.GetRoute(context.Background(), "r-1")
	require.NoError(t, err)
	require.Len(t, route.Stops, 1)
	assert.Equal(t, "Wernhil", route.Stops[0].Name)
}

func TestGetRoute_NotFound(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM routes WHERE route_id = $1")).
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows(routeCols))

	_, err := repo.GetRoute(context.Background(), "nope")
	assert.Equal(t, constants.ErrCodeRouteNotFound, apperror.CodeOf(err))
}

func TestListRoutes_ActiveOnly(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM routes WHERE active = TRUE ORDER BY route_number")).
		WillReturnRows(sqlmock.NewRows(routeCols))

	routes, err := repo.ListRoutes(context.Background(), true)
	require.NoError(t, err)
	assert.Empty(t, routes)
}

func TestGetTrip(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM trips WHERE trip_id = $1")).
		WithArgs("t-1").
		WillReturnRows(tripRow(sqlmock.NewRows(tripCols), "t-1", "SCHEDULED", 12))

	trip, err := repo.GetTrip(context.Background(), "t-1")
	require.NoError(t, err)
	assert.Equal(t, models.TripStatusScheduled, trip.Status)
	assert.Equal(t, 12, trip.AvailableSeats)
	assert.Nil(t, trip.ActualDeparture)
}

func TestGetTrip_NotFound(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM trips WHERE trip_id = $1")).
		WithArgs("t-x").
		WillReturnRows(sqlmock.NewRows(tripCols))

	_, err := repo.GetTrip(context.Background(), "t-x")
	assert.Equal(t, constants.ErrCodeTripNotFound, apperror.CodeOf(err))
}

func TestGetTrip_UnknownStatusFails(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM trips WHERE trip_id = $1")).
		WithArgs("t-1").
		WillReturnRows(tripRow(sqlmock.NewRows(tripCols), "t-1", "BOARDING", 12))

	_, err := repo.GetTrip(context.Background(), "t-1")
	require.Error(t, err)
	assert.False(t, apperror.IsNotFound(err))
}

func TestListTrips_Filters(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM trips WHERE route_id = $1 AND status = $2 ORDER BY scheduled_departure")).
		WithArgs("r-1", models.TripStatusDelayed).
		WillReturnRows(tripRow(sqlmock.NewRows(tripCols), "t-1", "DELAYED", 3))

	trips, err := repo.ListTrips(context.Background(), models.TripFilter{RouteID: "r-1", Status: models.TripStatusDelayed})
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, models.TripStatusDelayed, trips[0].Status)
}

func TestUpdateTrip_GuardedByPreviousStatus(t *testing.T) {
	repo, mock := setupMockDB(t)
	trip := &models.Trip{TripID: "t-1", Status: models.TripStatusDelayed, DelayMinutes: 20, DelayReason: "Traffic"}

	mock.ExpectExec(regexp.QuoteMeta("WHERE trip_id = $1 AND status = $2")).
		WithArgs("t-1", models.TripStatusScheduled, models.TripStatusDelayed,
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			"Traffic", 20, "", "", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.UpdateTrip(context.Background(), trip, models.TripStatusScheduled)
	require.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectExec(regexp.QuoteMeta("WHERE trip_id = $1 AND status = $2")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err = repo.UpdateTrip(context.Background(), trip, models.TripStatusScheduled)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReserveSeat(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta("available_seats = available_seats - 1")).
		WithArgs("t-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("available_seats > 0 AND status = 'SCHEDULED'")).
		WithArgs("t-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.ReserveSeat(context.Background(), "t-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.ReserveSeat(context.Background(), "t-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReleaseSeat_Error(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta("available_seats < total_seats")).
		WithArgs("t-1").
		WillReturnError(assert.AnError)

	_, err := repo.ReleaseSeat(context.Background(), "t-1")
	assert.ErrorIs(t, err, assert.AnError)
}
