// Package bus drains the event topics into the notifier.
package bus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/broker"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/events"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/logger"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/metrics"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
	nrpkg "github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/newrelic"
	"github.com/davidNdantsi/DSA-Assignment2-2025/services/notification"
)

// Consume outcomes, used as the metrics label
const (
	OutcomeProcessed = "processed"
	OutcomeDuplicate = "duplicate"
	OutcomeDropped   = "dropped"
	OutcomeFailed    = "failed"
)

const (
	defaultBatchSize = 10
	defaultPollWait  = time.Second
	pollErrorPause   = 2 * time.Second
)

// Consumer polls the bus and hands every record to the notifier, one at a time
type Consumer struct {
	sub       broker.Subscriber
	notifier  notification.NotificationUC
	processed notification.ProcessedStore
	nrApp     *newrelic.Application

	batch int
	wait  time.Duration
	pause time.Duration
}

// NewConsumer creates a consumer. processed may be nil to disable deduplication.
func NewConsumer(sub broker.Subscriber, notifier notification.NotificationUC, processed notification.ProcessedStore,
	cfg models.BrokerConfig, nrApp *newrelic.Application) *Consumer {
	c := &Consumer{
		sub:       sub,
		notifier:  notifier,
		processed: processed,
		nrApp:     nrApp,
		batch:     cfg.PollBatchSize,
		wait:      cfg.PollWait,
		pause:     pollErrorPause,
	}
	if c.batch <= 0 {
		c.batch = defaultBatchSize
	}
	if c.wait <= 0 {
		c.wait = defaultPollWait
	}
	return c
}

// Run polls until ctx is cancelled. Records are processed in order and each
// one is acked whatever its outcome.
func (c *Consumer) Run(ctx context.Context) error {
	logger.Info("Notification consumer started",
		logger.Int("batch_size", c.batch),
		logger.Duration("poll_wait", c.wait))

	for {
		if ctx.Err() != nil {
			logger.Info("Notification consumer stopped")
			return nil
		}

		records, err := c.sub.Poll(ctx, c.batch, c.wait)
		if err != nil {
			if ctx.Err() != nil {
				continue
			}
			if errors.Is(err, broker.ErrClosed) {
				return err
			}
			logger.Error("Failed to poll bus", logger.Err(err))
			select {
			case <-ctx.Done():
			case <-time.After(c.pause):
			}
			continue
		}

		for _, rec := range records {
			outcome := c.handle(ctx, rec)
			metrics.RecordConsumed(rec.Topic, outcome)

			if err := rec.Ack(); err != nil {
				logger.Warn("Failed to ack record",
					logger.String("topic", rec.Topic),
					logger.Int64("offset", rec.Offset),
					logger.Err(err))
			}
		}
	}
}

func (c *Consumer) handle(ctx context.Context, rec *broker.Record) (outcome string) {
	ctx, end := nrpkg.StartMessageTransaction(ctx, c.nrApp, rec.Topic, rec.Key)
	defer end()

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("panic handling record: %v", r)
			logger.ErrorCtx(ctx, "Recovered while handling record",
				logger.String("topic", rec.Topic),
				logger.Err(err))
			nrpkg.NoticeError(ctx, err)
			outcome = OutcomeFailed
		}
	}()

	msg, err := events.Decode(rec.Value)
	if err != nil {
		logger.WarnCtx(ctx, "Dropping unrecognised message",
			logger.String("topic", rec.Topic),
			logger.Int64("offset", rec.Offset),
			logger.Err(err))
		return OutcomeDropped
	}
	nrpkg.AddAttribute(ctx, "message.kind", msg.Kind().String())

	// Marking before Handle makes delivery at-most-once: a record whose
	// handling fails is not retried on redelivery. Keyless messages are
	// never deduplicated.
	if key := msg.Key(); c.processed != nil && key != "" {
		first, err := c.processed.MarkProcessed(ctx, rec.Topic, key)
		switch {
		case err != nil:
			logger.WarnCtx(ctx, "Dedupe check failed, processing anyway",
				logger.String("topic", rec.Topic),
				logger.String("message_key", key),
				logger.Err(err))
		case !first:
			logger.InfoCtx(ctx, "Skipping already processed message",
				logger.String("topic", rec.Topic),
				logger.String("message_key", key))
			return OutcomeDuplicate
		}
	}

	n, err := c.notifier.Handle(ctx, msg)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to handle message",
			logger.String("topic", rec.Topic),
			logger.String("kind", msg.Kind().String()),
			logger.Err(err))
		nrpkg.NoticeError(ctx, err)
		return OutcomeFailed
	}

	logger.InfoCtx(ctx, "Message handled",
		logger.String("topic", rec.Topic),
		logger.String("kind", msg.Kind().String()),
		logger.String("notification_id", n.NotificationID),
		logger.String("status", n.Status.String()))
	return OutcomeProcessed
}
