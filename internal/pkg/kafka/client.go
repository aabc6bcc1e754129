// Package kafka adapts sarama producers and consumer groups to the broker interfaces.
package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

// Config holds runtime configuration for Kafka
type Config struct {
	Brokers  []string
	GroupID  string
	ClientID string
}

// NewSaramaConfig returns the producer/consumer settings shared by every service
func NewSaramaConfig(clientID string) *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.ClientID = clientID
	cfg.Version = sarama.V3_6_0_0
	cfg.Producer.Return.Successes = true
	cfg.Producer.Idempotent = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Net.MaxOpenRequests = 1
	cfg.Consumer.Return.Errors = true
	cfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	cfg.Consumer.Offsets.AutoCommit.Enable = true
	cfg.Consumer.Offsets.AutoCommit.Interval = time.Second
	cfg.Metadata.Retry.Max = 5
	cfg.Metadata.Retry.Backoff = 2 * time.Second
	return cfg
}
