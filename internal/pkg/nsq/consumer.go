package nsq

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nsqio/go-nsq"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/broker"
)

// Consumer subscribes one NSQ consumer per topic on a shared channel named
// after the consumer group and funnels messages into Poll
type Consumer struct {
	consumers []*nsq.Consumer
	records   chan *broker.Record
	done      chan struct{}
	closeOnce sync.Once
}

// Config holds the NSQ consumer settings
type Config struct {
	NSQDAddress  string
	LookupdAddrs []string
	Channel      string
	MaxInFlight  int
}

// NewConsumer creates consumers for topics and connects them
func NewConsumer(cfg Config, topics []string) (*Consumer, error) {
	if cfg.MaxInFlight <= 0 {
		cfg.MaxInFlight = 10
	}
	c := &Consumer{
		records: make(chan *broker.Record, cfg.MaxInFlight*len(topics)),
		done:    make(chan struct{}),
	}

	for _, topic := range topics {
		config := nsq.NewConfig()
		config.MaxInFlight = cfg.MaxInFlight

		consumer, err := nsq.NewConsumer(topic, cfg.Channel, config)
		if err != nil {
			c.stopAll()
			return nil, fmt.Errorf("failed to create NSQ consumer for %s: %w", topic, err)
		}
		consumer.SetLoggerLevel(nsq.LogLevelWarning)
		consumer.AddHandler(c.handler(topic))

		if err := connect(consumer, cfg); err != nil {
			consumer.Stop()
			c.stopAll()
			return nil, err
		}
		c.consumers = append(c.consumers, consumer)
	}

	return c, nil
}

func connect(consumer *nsq.Consumer, cfg Config) error {
	if len(cfg.LookupdAddrs) > 0 {
		if err := consumer.ConnectToNSQLookupds(cfg.LookupdAddrs); err != nil {
			return fmt.Errorf("failed to connect to NSQ lookupd: %w", err)
		}
		return nil
	}
	if err := consumer.ConnectToNSQD(cfg.NSQDAddress); err != nil {
		return fmt.Errorf("failed to connect to NSQ daemon: %w", err)
	}
	return nil
}

// handler parks each message in the buffer; the message is finished only when the record is acked
func (c *Consumer) handler(topic string) nsq.Handler {
	return nsq.HandlerFunc(func(message *nsq.Message) error {
		message.DisableAutoResponse()
		select {
		case c.records <- toRecord(topic, message):
		case <-c.done:
			message.Requeue(-1)
		}
		return nil
	})
}

func toRecord(topic string, message *nsq.Message) *broker.Record {
	return broker.NewRecord(topic, string(message.ID[:]), message.Body, 0,
		time.Unix(0, message.Timestamp), func() error {
			message.Finish()
			return nil
		})
}

// Poll drains up to max buffered records, waiting at most wait for the first
func (c *Consumer) Poll(ctx context.Context, max int, wait time.Duration) ([]*broker.Record, error) {
	timer := time.NewTimer(wait)
	defer timer.Stop()

	var out []*broker.Record
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
		return nil, nil
	case r := <-c.records:
		out = append(out, r)
	}

	for len(out) < max {
		select {
		case r := <-c.records:
			out = append(out, r)
		default:
			return out, nil
		}
	}
	return out, nil
}

func (c *Consumer) stopAll() {
	for _, consumer := range c.consumers {
		consumer.Stop()
		<-consumer.StopChan
	}
}

// Close gracefully stops every topic consumer
func (c *Consumer) Close() error {
	c.closeOnce.Do(func() {
		close(c.done)
		c.stopAll()
	})
	return nil
}

var _ broker.Subscriber = (*Consumer)(nil)
