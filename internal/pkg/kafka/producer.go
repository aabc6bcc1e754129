package kafka

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/broker"
)

// Producer publishes through a sarama SyncProducer
type Producer struct {
	producer sarama.SyncProducer
}

// NewProducer dials the brokers
func NewProducer(cfg Config) (*Producer, error) {
	p, err := sarama.NewSyncProducer(cfg.Brokers, NewSaramaConfig(cfg.ClientID))
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}
	return &Producer{producer: p}, nil
}

// NewProducerFrom wraps an existing sarama producer
func NewProducerFrom(p sarama.SyncProducer) *Producer {
	return &Producer{producer: p}
}

// Publish sends data keyed by key so one trip's events share a partition
func (p *Producer) Publish(ctx context.Context, topic, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: topic,
		Value: sarama.ByteEncoder(data),
	}
	if key != "" {
		msg.Key = sarama.StringEncoder(key)
	}
	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("failed to publish message to %s: %w", topic, err)
	}
	return nil
}

// Close flushes and closes the producer
func (p *Producer) Close() error {
	return p.producer.Close()
}

var _ broker.Publisher = (*Producer)(nil)
