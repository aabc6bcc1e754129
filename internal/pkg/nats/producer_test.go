package nats

import (
	"testing"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
)

func TestNewClient(t *testing.T) {
	t.Run("invalid address", func(t *testing.T) {
		client, err := NewClient("invalid://address", "test")
		assert.Error(t, err)
		assert.Nil(t, client)
		assert.Contains(t, err.Error(), "failed to connect to NATS server")
	})
}

func TestTransitStreamConfig(t *testing.T) {
	cfg := TransitStreamConfig("TRANSIT_STREAM", []string{"schedule-updates", "ticket-created"})

	assert.Equal(t, "TRANSIT_STREAM", cfg.Name)
	assert.Equal(t, []string{"schedule-updates", "ticket-created"}, cfg.Subjects)
	assert.Equal(t, jetstream.FileStorage, cfg.Storage)
	assert.Equal(t, 7*24*time.Hour, cfg.MaxAge)

	js := cfg.toJetStream()
	assert.Equal(t, cfg.Subjects, js.Subjects)
	assert.Equal(t, jetstream.DiscardOld, js.Discard)
}

func TestGroupConsumerConfig(t *testing.T) {
	topics := []string{"schedule-updates", "ticket-validated", "ticket-created"}
	cfg := GroupConsumerConfig("TRANSIT_STREAM", "notification-service", topics)

	js := cfg.toJetStream()
	assert.Equal(t, "notification-service", js.Durable)
	assert.Equal(t, topics, js.FilterSubjects)
	assert.Equal(t, jetstream.AckExplicitPolicy, js.AckPolicy)
	assert.Equal(t, jetstream.DeliverAllPolicy, js.DeliverPolicy)
	assert.Equal(t, 5, js.MaxDeliver)
}
