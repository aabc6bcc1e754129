package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load(viper.New())

	assert.Equal(t, models.BrokerDriverNATS, cfg.Broker.Driver)
	assert.Equal(t, "notification-service", cfg.Broker.ConsumerGroup)
	assert.Equal(t, []string{"schedule-updates", "ticket-validated", "ticket-created"}, cfg.Broker.Topics.All())
	assert.Equal(t, 24*time.Hour, cfg.Ticketing.ValidityWindow)
	assert.Equal(t, 5*time.Minute, cfg.Ticketing.SweepInterval)
	assert.Equal(t, 0.95, cfg.Payment.SuccessRate)
	assert.Equal(t, 2*time.Second, cfg.Payment.Latency)
	assert.True(t, cfg.Notification.ConsoleEnabled)
	assert.True(t, cfg.Notification.StorageEnabled)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Broker.Brokers)
	assert.Empty(t, cfg.Broker.NSQLookupd)
}

func TestLoad_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("BROKER_DRIVER", "Kafka")
	v.Set("BROKER_KAFKA_BROKERS", "k1:9092, k2:9092,")
	v.Set("PAYMENT_SUCCESS_RATE", "0.5")
	v.Set("TICKET_VALIDITY_WINDOW", "90m")
	v.Set("TOPIC_SCHEDULE_UPDATES", "trips.schedule")

	cfg := Load(v)

	assert.Equal(t, models.BrokerDriverKafka, cfg.Broker.Driver)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Broker.Brokers)
	assert.Equal(t, 0.5, cfg.Payment.SuccessRate)
	assert.Equal(t, 90*time.Minute, cfg.Ticketing.ValidityWindow)
	assert.Equal(t, "trips.schedule", cfg.Broker.Topics.ScheduleUpdates)
}

func TestInitConfig_FromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SERVER_PORT", "9100")
	t.Setenv("NOTIFICATION_STORAGE", "false")

	cfg := InitConfig("does-not-exist.env")

	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, 9100, cfg.Server.Port)
	assert.False(t, cfg.Notification.StorageEnabled)
}

func TestRequestTimeout(t *testing.T) {
	assert.Equal(t, 10*time.Second, RequestTimeout(&models.Config{}))
	cfg := &models.Config{}
	cfg.Services.RequestTimeout = 3 * time.Second
	assert.Equal(t, 3*time.Second, RequestTimeout(cfg))
}
