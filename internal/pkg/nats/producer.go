package nats

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/broker"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/constants"
)

// Producer publishes to JetStream subjects named after topics
type Producer struct {
	client *Client
}

// NewProducer creates a producer on an existing client
func NewProducer(client *Client) *Producer {
	return &Producer{client: client}
}

// Publish sends data to topic and waits for the stream ack
func (p *Producer) Publish(ctx context.Context, topic, key string, data []byte) error {
	msg := nats.NewMsg(topic)
	msg.Data = data
	if key != "" {
		msg.Header.Set(constants.HeaderMessageKey, key)
	}

	if _, err := p.client.js.PublishMsg(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish message to %s: %w", topic, err)
	}
	return nil
}

// Close closes the underlying connection
func (p *Producer) Close() error {
	p.client.Close()
	return nil
}

var _ broker.Publisher = (*Producer)(nil)
