package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/apperror"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/constants"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/validator"
	"github.com/davidNdantsi/DSA-Assignment2-2025/services/transport/mocks"
)

func setup(t *testing.T) (*echo.Echo, *TransportHandler, *mocks.MockTransportUC) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockTransportUC(ctrl)
	e := echo.New()
	e.Validator = validator.New()
	return e, NewTransportHandler(uc), uc
}

func call(e *echo.Echo, method, target, body string, tripID string, handler echo.HandlerFunc) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if tripID != "" {
		c.SetParamNames("tripID")
		c.SetParamValues(tripID)
	}
	_ = handler(c)
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	var body struct {
		ErrorCode string `json:"errorCode"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.ErrorCode
}

func TestDelayTrip(t *testing.T) {
	e, h, uc := setup(t)

	uc.EXPECT().DelayTrip(gomock.Any(), "t-1", 20, "Traffic").
		Return(&models.Trip{TripID: "t-1", Status: models.TripStatusDelayed}, nil)

	rec := call(e, http.MethodPost, "/", `{"minutes":20,"reason":"Traffic"}`, "t-1", h.DelayTrip)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = call(e, http.MethodPost, "/", `{"minutes":0}`, "t-1", h.DelayTrip)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, constants.ErrCodeValidation, errorCode(t, rec))
}

func TestUpdateTripStatus_InvalidTransition(t *testing.T) {
	e, h, uc := setup(t)

	uc.EXPECT().UpdateTripStatus(gomock.Any(), "t-1", models.TripStatusInProgress).
		Return(nil, apperror.Validation(constants.ErrCodeInvalidStatusTransition, "Cannot change trip status from COMPLETED to IN_PROGRESS"))

	rec := call(e, http.MethodPatch, "/", `{"status":"IN_PROGRESS"}`, "t-1", h.UpdateTripStatus)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, constants.ErrCodeInvalidStatusTransition, errorCode(t, rec))
}

func TestUpdateTrip_PartialBody(t *testing.T) {
	e, h, uc := setup(t)

	uc.EXPECT().UpdateTrip(gomock.Any(), "t-1", gomock.Any()).
		DoAndReturn(func(_ interface{}, _ string, u models.TripUpdate) (*models.Trip, error) {
			assert.Nil(t, u.Status)
			require.NotNil(t, u.DriverName)
			assert.Equal(t, "Johannes", *u.DriverName)
			return &models.Trip{TripID: "t-1", DriverName: "Johannes"}, nil
		})

	rec := call(e, http.MethodPut, "/", `{"driverName":"Johannes"}`, "t-1", h.UpdateTrip)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReserveSeat_NoSeats(t *testing.T) {
	e, h, uc := setup(t)

	uc.EXPECT().ReserveSeat(gomock.Any(), "t-1").
		Return(nil, apperror.Validation(constants.ErrCodeNoSeats, "Trip t-1 has no seats available"))

	rec := call(e, http.MethodPost, "/", "", "t-1", h.ReserveSeat)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, constants.ErrCodeNoSeats, errorCode(t, rec))
}

func TestGetTrip_NotFound(t *testing.T) {
	e, h, uc := setup(t)

	uc.EXPECT().GetTrip(gomock.Any(), "t-x").
		Return(nil, apperror.NotFound(constants.ErrCodeTripNotFound, "Trip t-x not found"))

	rec := call(e, http.MethodGet, "/", "", "t-x", h.GetTrip)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNearbyRoutes(t *testing.T) {
	e, h, uc := setup(t)

	uc.EXPECT().FindRoutesNear(gomock.Any(), -22.57, 17.08).Return([]*models.Route{{RouteID: "r-1"}}, nil)

	rec := call(e, http.MethodGet, "/api/v1/routes/nearby?lat=-22.57&lng=17.08", "", "", h.NearbyRoutes)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = call(e, http.MethodGet, "/api/v1/routes/nearby?lat=abc&lng=17.08", "", "", h.NearbyRoutes)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateRoute_Validation(t *testing.T) {
	e, h, _ := setup(t)

	rec := call(e, http.MethodPost, "/", `{"routeNumber":"21"}`, "", h.CreateRoute)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, constants.ErrCodeValidation, errorCode(t, rec))
}
