// Package broker abstracts the message bus the services publish to and
// the notification service polls from.
package broker

import (
	"context"
	"errors"
	"time"
)

//go:generate mockgen -destination=mocks/mock_broker.go -package=mocks github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/broker Publisher,Subscriber

// ErrClosed is returned by operations on a closed publisher or subscriber
var ErrClosed = errors.New("broker: closed")

// Publisher sends raw payloads to a named topic
type Publisher interface {
	Publish(ctx context.Context, topic, key string, data []byte) error
	Close() error
}

// Subscriber pulls batches of records for one consumer group
type Subscriber interface {
	// Poll blocks up to wait for at most max records. An empty batch with a
	// nil error means nothing arrived in time.
	Poll(ctx context.Context, max int, wait time.Duration) ([]*Record, error)
	Close() error
}

// Record is one message delivered to a subscriber
type Record struct {
	Topic     string
	Key       string
	Value     []byte
	Offset    int64
	Timestamp time.Time

	ack func() error
}

// NewRecord builds a record whose Ack calls ack
func NewRecord(topic, key string, value []byte, offset int64, ts time.Time, ack func() error) *Record {
	return &Record{
		Topic:     topic,
		Key:       key,
		Value:     value,
		Offset:    offset,
		Timestamp: ts,
		ack:       ack,
	}
}

// Ack advances the group's position past this record
func (r *Record) Ack() error {
	if r.ack == nil {
		return nil
	}
	return r.ack()
}
