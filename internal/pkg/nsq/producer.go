package nsq

import (
	"context"
	"fmt"

	"github.com/nsqio/go-nsq"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/broker"
)

// Producer handles publishing messages to NSQ topics
type Producer struct {
	producer *nsq.Producer
}

// NewProducer creates a new NSQ producer
func NewProducer(address string) (*Producer, error) {
	config := nsq.NewConfig()
	producer, err := nsq.NewProducer(address, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ producer: %w", err)
	}
	producer.SetLoggerLevel(nsq.LogLevelWarning)

	// Ping the NSQ daemon to ensure connectivity
	if err := producer.Ping(); err != nil {
		producer.Stop()
		return nil, fmt.Errorf("failed to ping NSQ daemon: %w", err)
	}

	return &Producer{producer: producer}, nil
}

// Publish sends data to topic. NSQ has no message keys; the key travels
// inside the payload.
func (p *Producer) Publish(ctx context.Context, topic, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := p.producer.Publish(topic, data); err != nil {
		return fmt.Errorf("failed to publish message to %s: %w", topic, err)
	}
	return nil
}

// Close gracefully stops the producer
func (p *Producer) Close() error {
	p.producer.Stop()
	return nil
}

var _ broker.Publisher = (*Producer)(nil)
