package nats

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/logger"
)

// Client wraps a NATS connection and its JetStream context
type Client struct {
	conn *nats.Conn
	js   jetstream.JetStream
}

// NewClient connects to NATS and opens JetStream
func NewClient(url, name string) (*Client, error) {
	conn, err := nats.Connect(url,
		nats.Name(name),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("NATS disconnected", logger.Err(err))
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("NATS reconnected", logger.String("url", c.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS server: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	return &Client{conn: conn, js: js}, nil
}

// GetConn returns the underlying NATS connection
func (c *Client) GetConn() *nats.Conn {
	return c.conn
}

// JetStream returns the JetStream context
func (c *Client) JetStream() jetstream.JetStream {
	return c.js
}

// EnsureStream creates the stream or updates it to match cfg
func (c *Client) EnsureStream(ctx context.Context, cfg StreamConfig) (jetstream.Stream, error) {
	stream, err := c.js.CreateOrUpdateStream(ctx, cfg.toJetStream())
	if err != nil {
		return nil, fmt.Errorf("failed to ensure stream %s: %w", cfg.Name, err)
	}
	logger.Info("JetStream stream ready",
		logger.String("stream", cfg.Name),
		logger.Any("subjects", cfg.Subjects))
	return stream, nil
}

// EnsureConsumer creates the durable consumer or updates it to match cfg
func (c *Client) EnsureConsumer(ctx context.Context, cfg ConsumerConfig) (jetstream.Consumer, error) {
	consumer, err := c.js.CreateOrUpdateConsumer(ctx, cfg.StreamName, cfg.toJetStream())
	if err != nil {
		return nil, fmt.Errorf("failed to ensure consumer %s on %s: %w", cfg.ConsumerName, cfg.StreamName, err)
	}
	logger.Info("JetStream consumer ready",
		logger.String("stream", cfg.StreamName),
		logger.String("consumer", cfg.ConsumerName))
	return consumer, nil
}

// IsConnected reports the connection state
func (c *Client) IsConnected() bool {
	return c.conn != nil && c.conn.IsConnected()
}

// Close drains and closes the NATS connection
func (c *Client) Close() {
	if c.conn != nil {
		if err := c.conn.Drain(); err != nil {
			c.conn.Close()
		}
	}
}
