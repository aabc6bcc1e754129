package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/events"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
	"github.com/davidNdantsi/DSA-Assignment2-2025/services/notification/mocks"
)

var fixedNow = time.Date(2025, 10, 1, 6, 0, 0, 0, time.UTC)

type fixture struct {
	uc      *notifierUC
	repo    *mocks.MockNotificationRepo
	printed []*models.Notification
}

func newFixture(t *testing.T, console, storage bool) *fixture {
	ctrl := gomock.NewController(t)
	cfg := &models.Config{}
	cfg.Notification.ConsoleEnabled = console
	cfg.Notification.StorageEnabled = storage

	f := &fixture{repo: mocks.NewMockNotificationRepo(ctrl)}
	f.uc = NewNotifierUC(cfg, f.repo).(*notifierUC)
	f.uc.now = func() time.Time { return fixedNow }
	f.uc.newID = func() string { return "n-1" }
	f.uc.console = func(n *models.Notification) { f.printed = append(f.printed, n) }
	return f
}

func delayEvent() *events.ScheduleUpdateEvent {
	return &events.ScheduleUpdateEvent{
		EventID:        "ev-1",
		DisruptionID:   "ev-1",
		EventType:      events.EventTypeDelay,
		Severity:       events.SeverityHigh,
		TripID:         "t-1",
		RouteID:        "r-1",
		RouteNumber:    "21",
		PreviousStatus: models.TripStatusScheduled,
		NewStatus:      models.TripStatusDelayed,
		DelayMinutes:   35,
		Reason:         "Road works",
		Timestamp:      fixedNow,
	}
}

func TestNotifyScheduleUpdate_Delivered(t *testing.T) {
	f := newFixture(t, true, true)

	f.repo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n *models.Notification) error {
			assert.Equal(t, models.NotificationStatusPending, n.Status)
			return nil
		})
	f.repo.EXPECT().UpdateStatus(gomock.Any(), "n-1", models.NotificationStatusDelivered, gomock.Any(), nil).Return(nil)

	n, err := f.uc.NotifyScheduleUpdate(context.Background(), delayEvent())
	require.NoError(t, err)

	assert.Equal(t, models.NotificationStatusDelivered, n.Status)
	assert.Equal(t, models.BroadcastRecipient, n.PassengerID)
	assert.Equal(t, models.NotificationChannelInApp, n.Channel)
	assert.Equal(t, "Route 21: trip delayed by 35 min", n.Subject)
	assert.Equal(t, "t-1", n.Metadata["tripId"])
	assert.Equal(t, "r-1", n.Metadata["routeId"])
	assert.Equal(t, "35", n.Metadata["delayMinutes"])
	require.NotNil(t, n.SentAt)
	assert.Len(t, f.printed, 1)

	assert.True(t, strings.HasPrefix(n.Message, "+---"))
	assert.Contains(t, n.Message, "SCHEDULE UPDATE")
	assert.Contains(t, n.Message, "SCHEDULED -> DELAYED")
	assert.Contains(t, n.Message, "Road works")
}

func TestSend_StorageDisabledMarksSent(t *testing.T) {
	f := newFixture(t, true, false)

	n, err := f.uc.NotifyTicketCreated(context.Background(), &events.TicketCreatedEvent{
		TicketID: "tk-1", PassengerID: "p-1", TripID: "t-1", RouteNumber: "21", Fare: 14.5,
		QRCode: "QR", PurchaseTime: fixedNow, ValidUntil: fixedNow.Add(24 * time.Hour),
	})
	require.NoError(t, err)

	assert.Equal(t, models.NotificationStatusSent, n.Status)
	assert.Equal(t, "p-1", n.PassengerID)
	assert.Contains(t, n.Message, "N$ 14.50")
	assert.Nil(t, n.SentAt)
	assert.Len(t, f.printed, 1)
}

func TestSend_ConsoleDisabled(t *testing.T) {
	f := newFixture(t, false, false)

	_, err := f.uc.NotifyTicketValidated(context.Background(), &events.TicketValidatedEvent{
		ValidationID: "v-1", TicketID: "tk-1", PassengerID: "p-1", ValidatedAt: fixedNow,
	})
	require.NoError(t, err)
	assert.Empty(t, f.printed)
}

func TestSend_PersistFailureMarksFailed(t *testing.T) {
	f := newFixture(t, false, true)

	f.repo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

	n, err := f.uc.NotifyTicketValidated(context.Background(), &events.TicketValidatedEvent{
		ValidationID: "v-1", TicketID: "tk-1", PassengerID: "p-1", ValidatedAt: fixedNow,
	})
	require.NoError(t, err)

	assert.Equal(t, models.NotificationStatusFailed, n.Status)
	require.NotNil(t, n.ErrorMessage)
	assert.Contains(t, *n.ErrorMessage, "connection reset")
	assert.Nil(t, n.SentAt)
}

func TestSend_StatusUpdateFailureIsSoft(t *testing.T) {
	f := newFixture(t, false, true)

	f.repo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(nil)
	f.repo.EXPECT().UpdateStatus(gomock.Any(), "n-1", models.NotificationStatusDelivered, gomock.Any(), nil).
		Return(errors.New("timeout"))

	n, err := f.uc.NotifyScheduleUpdate(context.Background(), delayEvent())
	require.NoError(t, err)
	assert.Equal(t, models.NotificationStatusDelivered, n.Status)
}

func TestHandle_Dispatch(t *testing.T) {
	f := newFixture(t, false, false)

	cases := []struct {
		msg  events.Message
		want models.NotificationType
	}{
		{delayEvent(), models.NotificationTypeScheduleUpdate},
		{&events.TicketCreatedEvent{TicketID: "tk-1", PassengerID: "p-1"}, models.NotificationTypeTicketCreated},
		{&events.TicketValidatedEvent{ValidationID: "v-1", TicketID: "tk-1", PassengerID: "p-1"}, models.NotificationTypeTicketValidated},
	}
	for _, tc := range cases {
		n, err := f.uc.Handle(context.Background(), tc.msg)
		require.NoError(t, err)
		assert.Equal(t, tc.want, n.NotificationType)
	}
}

func TestScheduleHeadline(t *testing.T) {
	ev := delayEvent()
	ev.EventType = events.EventTypeCancellation
	assert.Equal(t, "trip cancelled", scheduleHeadline(ev))

	ev.EventType = events.EventTypeScheduleChange
	ev.NewStatus = models.TripStatusInProgress
	assert.Equal(t, "trip now IN_PROGRESS", scheduleHeadline(ev))
}

func TestListByPassenger_RequiresID(t *testing.T) {
	f := newFixture(t, false, true)

	_, err := f.uc.ListByPassenger(context.Background(), "", 10)
	assert.Error(t, err)
}
