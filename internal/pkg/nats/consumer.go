package nats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/broker"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/constants"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/logger"
)

// PullConsumer fetches batches from a durable JetStream pull consumer
type PullConsumer struct {
	client   *Client
	consumer jetstream.Consumer
}

// NewPullConsumer ensures the stream and the group's durable consumer exist
func NewPullConsumer(ctx context.Context, client *Client, stream StreamConfig, cfg ConsumerConfig) (*PullConsumer, error) {
	if client == nil {
		return nil, fmt.Errorf("client cannot be nil")
	}
	if _, err := client.EnsureStream(ctx, stream); err != nil {
		return nil, err
	}
	consumer, err := client.EnsureConsumer(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &PullConsumer{client: client, consumer: consumer}, nil
}

// Poll fetches up to max messages, waiting at most wait
func (c *PullConsumer) Poll(ctx context.Context, max int, wait time.Duration) ([]*broker.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	batch, err := c.consumer.Fetch(max, jetstream.FetchMaxWait(wait))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	var records []*broker.Record
	for msg := range batch.Messages() {
		records = append(records, toRecord(msg))
	}

	if err := batch.Error(); err != nil && !isFetchTimeout(err) {
		return records, fmt.Errorf("error during fetch: %w", err)
	}
	return records, nil
}

func toRecord(msg jetstream.Msg) *broker.Record {
	var (
		offset int64
		ts     time.Time
	)
	if meta, err := msg.Metadata(); err == nil {
		offset = int64(meta.Sequence.Stream)
		ts = meta.Timestamp
	} else {
		logger.Debug("JetStream message without metadata",
			logger.String("subject", msg.Subject()),
			logger.Err(err))
	}

	var key string
	if h := msg.Headers(); h != nil {
		key = h.Get(constants.HeaderMessageKey)
	}

	return broker.NewRecord(msg.Subject(), key, msg.Data(), offset, ts, msg.Ack)
}

func isFetchTimeout(err error) bool {
	return errors.Is(err, nats.ErrTimeout) || errors.Is(err, context.DeadlineExceeded)
}

// GetPendingMessages returns the number of messages not yet delivered
func (c *PullConsumer) GetPendingMessages(ctx context.Context) (uint64, error) {
	info, err := c.consumer.Info(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get consumer info: %w", err)
	}
	return info.NumPending, nil
}

// Close closes the underlying connection; the durable consumer survives on the server
func (c *PullConsumer) Close() error {
	c.client.Close()
	return nil
}

var _ broker.Subscriber = (*PullConsumer)(nil)
