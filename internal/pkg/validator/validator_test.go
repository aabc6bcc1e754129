package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/apperror"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/constants"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
)

func TestValidate_OK(t *testing.T) {
	v := New()
	assert.NoError(t, v.Validate(&models.PurchaseTicketRequest{PassengerID: "p-1", TripID: "t-1"}))
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := New()
	err := v.Validate(&models.PurchaseTicketRequest{})
	require.Error(t, err)

	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindValidation, appErr.Kind)
	assert.Equal(t, constants.ErrCodeValidation, appErr.Code)
	assert.Contains(t, appErr.Message, "passengerId is required")
	assert.Contains(t, appErr.Message, "tripId is required")
}

func TestValidate_TripTimes(t *testing.T) {
	v := New()
	now := time.Now()
	err := v.Validate(&models.CreateTripRequest{
		RouteID:            "r-1",
		ScheduledDeparture: now,
		ScheduledArrival:   now.Add(-time.Hour),
		TotalSeats:         40,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scheduledArrival must be after")
}

func TestValidate_Email(t *testing.T) {
	v := New()
	err := v.Validate(&models.LoginRequest{Email: "not-an-email", Password: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email must be a valid email address")
}
