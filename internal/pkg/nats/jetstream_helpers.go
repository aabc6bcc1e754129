package nats

import (
	"time"

	"github.com/nats-io/nats.go/jetstream"
)

// StreamConfig describes a JetStream stream
type StreamConfig struct {
	Name      string
	Subjects  []string
	Retention jetstream.RetentionPolicy
	Storage   jetstream.StorageType
	Replicas  int
	MaxAge    time.Duration
	MaxBytes  int64
	MaxMsgs   int64
	Discard   jetstream.DiscardPolicy
}

func (c StreamConfig) toJetStream() jetstream.StreamConfig {
	return jetstream.StreamConfig{
		Name:      c.Name,
		Subjects:  c.Subjects,
		Retention: c.Retention,
		Storage:   c.Storage,
		Replicas:  c.Replicas,
		MaxAge:    c.MaxAge,
		MaxBytes:  c.MaxBytes,
		MaxMsgs:   c.MaxMsgs,
		Discard:   c.Discard,
	}
}

// ConsumerConfig describes a durable JetStream consumer
type ConsumerConfig struct {
	StreamName     string
	ConsumerName   string
	FilterSubjects []string
	DeliverPolicy  jetstream.DeliverPolicy
	AckPolicy      jetstream.AckPolicy
	AckWait        time.Duration
	MaxDeliver     int
	MaxAckPending  int
}

func (c ConsumerConfig) toJetStream() jetstream.ConsumerConfig {
	return jetstream.ConsumerConfig{
		Durable:        c.ConsumerName,
		FilterSubjects: c.FilterSubjects,
		DeliverPolicy:  c.DeliverPolicy,
		AckPolicy:      c.AckPolicy,
		AckWait:        c.AckWait,
		MaxDeliver:     c.MaxDeliver,
		MaxAckPending:  c.MaxAckPending,
	}
}

// StreamConfigBuilder helps build stream configurations
type StreamConfigBuilder struct {
	config StreamConfig
}

// NewStreamConfigBuilder creates a new stream configuration builder
func NewStreamConfigBuilder(name string) *StreamConfigBuilder {
	return &StreamConfigBuilder{
		config: StreamConfig{
			Name:      name,
			Retention: jetstream.LimitsPolicy,
			Storage:   jetstream.FileStorage,
			Replicas:  1,
			MaxAge:    7 * 24 * time.Hour,
			MaxBytes:  100 * 1024 * 1024, // 100MB
			MaxMsgs:   1000000,
			Discard:   jetstream.DiscardOld,
		},
	}
}

// WithSubjects sets the subjects for the stream
func (b *StreamConfigBuilder) WithSubjects(subjects ...string) *StreamConfigBuilder {
	b.config.Subjects = subjects
	return b
}

// WithStorage sets the storage type
func (b *StreamConfigBuilder) WithStorage(storage jetstream.StorageType) *StreamConfigBuilder {
	b.config.Storage = storage
	return b
}

// WithMaxAge sets the maximum age for messages
func (b *StreamConfigBuilder) WithMaxAge(maxAge time.Duration) *StreamConfigBuilder {
	b.config.MaxAge = maxAge
	return b
}

// Build returns the stream configuration
func (b *StreamConfigBuilder) Build() StreamConfig {
	return b.config
}

// ConsumerConfigBuilder helps build consumer configurations
type ConsumerConfigBuilder struct {
	config ConsumerConfig
}

// NewConsumerConfigBuilder creates a new consumer configuration builder
func NewConsumerConfigBuilder(streamName, consumerName string) *ConsumerConfigBuilder {
	return &ConsumerConfigBuilder{
		config: ConsumerConfig{
			StreamName:    streamName,
			ConsumerName:  consumerName,
			DeliverPolicy: jetstream.DeliverAllPolicy,
			AckPolicy:     jetstream.AckExplicitPolicy,
			AckWait:       30 * time.Second,
			MaxDeliver:    3,
			MaxAckPending: 1000,
		},
	}
}

// WithSubjects sets the filter subjects
func (b *ConsumerConfigBuilder) WithSubjects(subjects ...string) *ConsumerConfigBuilder {
	b.config.FilterSubjects = subjects
	return b
}

// WithDeliverPolicy sets the deliver policy
func (b *ConsumerConfigBuilder) WithDeliverPolicy(policy jetstream.DeliverPolicy) *ConsumerConfigBuilder {
	b.config.DeliverPolicy = policy
	return b
}

// WithAckWait sets how long the server waits for an ack before redelivering
func (b *ConsumerConfigBuilder) WithAckWait(ackWait time.Duration) *ConsumerConfigBuilder {
	b.config.AckWait = ackWait
	return b
}

// WithMaxDeliver sets the maximum delivery attempts
func (b *ConsumerConfigBuilder) WithMaxDeliver(maxDeliver int) *ConsumerConfigBuilder {
	b.config.MaxDeliver = maxDeliver
	return b
}

// Build returns the consumer configuration
func (b *ConsumerConfigBuilder) Build() ConsumerConfig {
	return b.config
}

// TransitStreamConfig is the single stream carrying every transit topic
func TransitStreamConfig(name string, topics []string) StreamConfig {
	return NewStreamConfigBuilder(name).
		WithSubjects(topics...).
		WithStorage(jetstream.FileStorage).
		WithMaxAge(7 * 24 * time.Hour). // keep a week for replay
		Build()
}

// GroupConsumerConfig is one durable pull consumer spanning topics, named after the group
func GroupConsumerConfig(streamName, group string, topics []string) ConsumerConfig {
	return NewConsumerConfigBuilder(streamName, group).
		WithSubjects(topics...).
		WithDeliverPolicy(jetstream.DeliverAllPolicy).
		WithMaxDeliver(5).
		Build()
}
