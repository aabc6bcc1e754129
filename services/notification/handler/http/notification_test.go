package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/apperror"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/constants"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/middleware"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
	"github.com/davidNdantsi/DSA-Assignment2-2025/services/notification/mocks"
)

func newContext(passengerID, param, value string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames(param)
	c.SetParamValues(value)
	if passengerID != "" {
		c.Set(middleware.ContextPassengerID, passengerID)
	}
	return c, rec
}

func TestGetNotification(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockNotificationUC(ctrl)
	h := NewNotificationHandler(uc)

	uc.EXPECT().GetNotification(gomock.Any(), "n-1").Return(&models.Notification{NotificationID: "n-1", PassengerID: "p-1"}, nil)
	uc.EXPECT().GetNotification(gomock.Any(), "n-2").Return(&models.Notification{NotificationID: "n-2", PassengerID: models.BroadcastRecipient}, nil)
	uc.EXPECT().GetNotification(gomock.Any(), "n-3").Return(&models.Notification{NotificationID: "n-3", PassengerID: "p-9"}, nil)
	uc.EXPECT().GetNotification(gomock.Any(), "n-4").
		Return(nil, apperror.NotFound(constants.ErrCodeNotificationNotFound, "Notification n-4 not found"))

	cases := map[string]int{"n-1": http.StatusOK, "n-2": http.StatusOK, "n-3": http.StatusForbidden, "n-4": http.StatusNotFound}
	for id, want := range cases {
		c, rec := newContext("p-1", "notificationID", id)
		_ = h.GetNotification(c)
		assert.Equal(t, want, rec.Code, id)
	}
}

func TestListByPassenger(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockNotificationUC(ctrl)
	h := NewNotificationHandler(uc)

	uc.EXPECT().ListByPassenger(gomock.Any(), "p-1", 0).Return([]*models.Notification{}, nil)

	c, rec := newContext("p-1", "passengerID", "p-1")
	_ = h.ListByPassenger(c)
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newContext("p-2", "passengerID", "p-1")
	_ = h.ListByPassenger(c)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
