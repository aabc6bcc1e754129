// Package rabbitmq publishes to a topic exchange and consumes through one
// durable queue per consumer group.
package rabbitmq

import (
	"context"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/broker"
)

// Connection owns an AMQP connection and one channel
type Connection struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

// Dial opens a connection and declares the topic exchange
func Dial(url, exchange string) (*Connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}

	return &Connection{conn: conn, ch: ch, exchange: exchange}, nil
}

// Close closes the channel and connection
func (c *Connection) Close() error {
	_ = c.ch.Close()
	return c.conn.Close()
}

// Publisher routes messages by topic through the exchange
type Publisher struct {
	conn *Connection
	mu   sync.Mutex
}

// NewPublisher creates a publisher on conn
func NewPublisher(conn *Connection) *Publisher {
	return &Publisher{conn: conn}
}

// Publish sends data with the topic as routing key
func (p *Publisher) Publish(ctx context.Context, topic, key string, data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	err := p.conn.ch.PublishWithContext(ctx, p.conn.exchange, topic, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    key,
		Timestamp:    time.Now(),
		Body:         data,
	})
	if err != nil {
		return fmt.Errorf("failed to publish message to %s: %w", topic, err)
	}
	return nil
}

// Close closes the underlying connection
func (p *Publisher) Close() error {
	return p.conn.Close()
}

// Subscriber reads the group's queue
type Subscriber struct {
	conn       *Connection
	deliveries <-chan amqp.Delivery
}

// NewSubscriber declares the group's durable queue, binds it to every topic
// and starts a manual-ack consumer
func NewSubscriber(conn *Connection, group string, topics []string, prefetch int) (*Subscriber, error) {
	q, err := conn.ch.QueueDeclare(group, true, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to declare queue %s: %w", group, err)
	}

	for _, topic := range topics {
		if err := conn.ch.QueueBind(q.Name, topic, conn.exchange, false, nil); err != nil {
			return nil, fmt.Errorf("failed to bind %s to %s: %w", q.Name, topic, err)
		}
	}

	if err := conn.ch.Qos(prefetch, 0, false); err != nil {
		return nil, fmt.Errorf("failed to set qos: %w", err)
	}

	deliveries, err := conn.ch.Consume(q.Name, group, false, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to start consuming %s: %w", q.Name, err)
	}

	return &Subscriber{conn: conn, deliveries: deliveries}, nil
}

func toRecord(d amqp.Delivery) *broker.Record {
	return broker.NewRecord(d.RoutingKey, d.MessageId, d.Body, int64(d.DeliveryTag), d.Timestamp, func() error {
		return d.Ack(false)
	})
}

// Poll drains up to max deliveries, waiting at most wait for the first
func (s *Subscriber) Poll(ctx context.Context, max int, wait time.Duration) ([]*broker.Record, error) {
	timer := time.NewTimer(wait)
	defer timer.Stop()

	var out []*broker.Record
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
		return nil, nil
	case d, ok := <-s.deliveries:
		if !ok {
			return nil, broker.ErrClosed
		}
		out = append(out, toRecord(d))
	}

	for len(out) < max {
		select {
		case d, ok := <-s.deliveries:
			if !ok {
				return out, nil
			}
			out = append(out, toRecord(d))
		default:
			return out, nil
		}
	}
	return out, nil
}

// Close closes the underlying connection
func (s *Subscriber) Close() error {
	return s.conn.Close()
}

var (
	_ broker.Publisher  = (*Publisher)(nil)
	_ broker.Subscriber = (*Subscriber)(nil)
)
