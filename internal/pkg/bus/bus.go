// Package bus opens the configured broker driver.
package bus

import (
	"context"
	"fmt"
	"strings"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/broker"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/constants"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/kafka"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/logger"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/nats"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/nsq"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/rabbitmq"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/retry"
)

// shared by every memory publisher and subscriber in the process
var memoryBus = broker.NewMemoryBus()

// MemoryBus returns the process-wide in-memory bus
func MemoryBus() *broker.MemoryBus {
	return memoryBus
}

type memoryPublisher struct {
	*broker.MemoryBus
}

// Close leaves the shared bus open for other publishers
func (memoryPublisher) Close() error { return nil }

func driverOf(cfg models.BrokerConfig) string {
	if cfg.Driver == "" {
		return models.BrokerDriverNATS
	}
	return strings.ToLower(cfg.Driver)
}

// NewPublisher connects a publisher for cfg.Driver, retrying the dial with backoff
func NewPublisher(ctx context.Context, cfg models.BrokerConfig, clientName string) (broker.Publisher, error) {
	driver := driverOf(cfg)
	var pub broker.Publisher

	dial := func(ctx context.Context) error {
		var err error
		switch driver {
		case models.BrokerDriverNATS:
			var client *nats.Client
			client, err = nats.NewClient(cfg.URL, clientName)
			if err == nil {
				if _, err = client.EnsureStream(ctx, nats.TransitStreamConfig(constants.StreamName, cfg.Topics.All())); err != nil {
					client.Close()
				} else {
					pub = nats.NewProducer(client)
				}
			}
		case models.BrokerDriverKafka:
			pub, err = kafka.NewProducer(kafka.Config{Brokers: cfg.Brokers, ClientID: clientName})
		case models.BrokerDriverNSQ:
			pub, err = nsq.NewProducer(cfg.NSQDAddress)
		case models.BrokerDriverRabbitMQ:
			var conn *rabbitmq.Connection
			conn, err = rabbitmq.Dial(cfg.URL, constants.ExchangeName)
			if err == nil {
				pub = rabbitmq.NewPublisher(conn)
			}
		case models.BrokerDriverMemory:
			pub = memoryPublisher{memoryBus}
		}
		return err
	}

	if !isKnown(driver) {
		return nil, fmt.Errorf("unknown broker driver %q", cfg.Driver)
	}
	if err := retry.New(retry.StartupConfig(), logger.GetGlobalLogger()).Execute(ctx, "connect "+driver+" publisher", dial); err != nil {
		return nil, err
	}

	logger.Info("Broker publisher connected", logger.String("driver", driver))
	return pub, nil
}

// NewSubscriber joins group on topics for cfg.Driver, retrying the dial with backoff
func NewSubscriber(ctx context.Context, cfg models.BrokerConfig, group string, topics []string) (broker.Subscriber, error) {
	driver := driverOf(cfg)
	var sub broker.Subscriber

	dial := func(ctx context.Context) error {
		var err error
		switch driver {
		case models.BrokerDriverNATS:
			var client *nats.Client
			client, err = nats.NewClient(cfg.URL, group)
			if err == nil {
				stream := nats.TransitStreamConfig(constants.StreamName, cfg.Topics.All())
				sub, err = nats.NewPullConsumer(ctx, client, stream, nats.GroupConsumerConfig(constants.StreamName, group, topics))
				if err != nil {
					client.Close()
				}
			}
		case models.BrokerDriverKafka:
			sub, err = kafka.NewGroupConsumer(kafka.Config{Brokers: cfg.Brokers, GroupID: group, ClientID: group}, topics, cfg.PollBatchSize)
		case models.BrokerDriverNSQ:
			sub, err = nsq.NewConsumer(nsq.Config{
				NSQDAddress:  cfg.NSQDAddress,
				LookupdAddrs: cfg.NSQLookupd,
				Channel:      group,
				MaxInFlight:  cfg.PollBatchSize,
			}, topics)
		case models.BrokerDriverRabbitMQ:
			var conn *rabbitmq.Connection
			conn, err = rabbitmq.Dial(cfg.URL, constants.ExchangeName)
			if err == nil {
				sub, err = rabbitmq.NewSubscriber(conn, group, topics, cfg.PollBatchSize)
				if err != nil {
					_ = conn.Close()
				}
			}
		case models.BrokerDriverMemory:
			sub = memoryBus.Subscribe(group, topics)
		}
		return err
	}

	if !isKnown(driver) {
		return nil, fmt.Errorf("unknown broker driver %q", cfg.Driver)
	}
	if err := retry.New(retry.StartupConfig(), logger.GetGlobalLogger()).Execute(ctx, "connect "+driver+" subscriber", dial); err != nil {
		return nil, err
	}

	logger.Info("Broker subscriber connected",
		logger.String("driver", driver),
		logger.String("group", group),
		logger.Strings("topics", topics))
	return sub, nil
}

func isKnown(driver string) bool {
	switch driver {
	case models.BrokerDriverNATS, models.BrokerDriverKafka, models.BrokerDriverNSQ,
		models.BrokerDriverRabbitMQ, models.BrokerDriverMemory:
		return true
	}
	return false
}
