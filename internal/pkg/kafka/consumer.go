package kafka

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/IBM/sarama"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/broker"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/logger"
)

// GroupConsumer runs a sarama consumer group in the background and hands
// claimed messages to Poll through a buffered channel. Acking a record marks
// its offset for commit.
type GroupConsumer struct {
	group   sarama.ConsumerGroup
	topics  []string
	records chan *broker.Record
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewGroupConsumer joins cfg.GroupID on topics
func NewGroupConsumer(cfg Config, topics []string, buffer int) (*GroupConsumer, error) {
	group, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.GroupID, NewSaramaConfig(cfg.ClientID))
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka consumer group: %w", err)
	}
	return newGroupConsumer(group, topics, buffer), nil
}

func newGroupConsumer(group sarama.ConsumerGroup, topics []string, buffer int) *GroupConsumer {
	if buffer <= 0 {
		buffer = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	c := &GroupConsumer{
		group:   group,
		topics:  topics,
		records: make(chan *broker.Record, buffer),
		cancel:  cancel,
	}

	c.wg.Add(2)
	go c.consumeLoop(ctx)
	go c.errorLoop()
	return c
}

func (c *GroupConsumer) consumeLoop(ctx context.Context) {
	defer c.wg.Done()
	defer close(c.records)

	h := &claimHandler{records: c.records}
	for {
		// Consume returns on every rebalance; loop to rejoin
		if err := c.group.Consume(ctx, c.topics, h); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return
			}
			logger.Error("Kafka consume error", logger.Err(err))
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Second):
			}
		}
		if ctx.Err() != nil {
			return
		}
	}
}

func (c *GroupConsumer) errorLoop() {
	defer c.wg.Done()
	for err := range c.group.Errors() {
		logger.Error("Kafka consumer group error", logger.Err(err))
	}
}

// Poll drains up to max buffered records, waiting at most wait for the first
func (c *GroupConsumer) Poll(ctx context.Context, max int, wait time.Duration) ([]*broker.Record, error) {
	timer := time.NewTimer(wait)
	defer timer.Stop()

	var out []*broker.Record
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
		return nil, nil
	case r, ok := <-c.records:
		if !ok {
			return nil, broker.ErrClosed
		}
		out = append(out, r)
	}

	for len(out) < max {
		select {
		case r, ok := <-c.records:
			if !ok {
				return out, nil
			}
			out = append(out, r)
		default:
			return out, nil
		}
	}
	return out, nil
}

// Close leaves the group and stops the background loops
func (c *GroupConsumer) Close() error {
	c.cancel()
	err := c.group.Close()
	c.wg.Wait()
	return err
}

type claimHandler struct {
	records chan<- *broker.Record
}

func (h *claimHandler) Setup(_ sarama.ConsumerGroupSession) error   { return nil }
func (h *claimHandler) Cleanup(_ sarama.ConsumerGroupSession) error { return nil }

func (h *claimHandler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case <-sess.Context().Done():
			return nil
		case msg, ok := <-claim.Messages():
			if !ok {
				return nil
			}
			m := msg
			rec := broker.NewRecord(m.Topic, string(m.Key), m.Value, m.Offset, m.Timestamp, func() error {
				sess.MarkMessage(m, "")
				return nil
			})
			select {
			case h.records <- rec:
			case <-sess.Context().Done():
				return nil
			}
		}
	}
}

var _ broker.Subscriber = (*GroupConsumer)(nil)
