package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/constants"
)

const defaultProcessedTTL = 24 * time.Hour

// ProcessedStore marks consumed bus messages in Redis so redeliveries are skipped
type ProcessedStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewProcessedStore creates a Redis-backed processed-message store
func NewProcessedStore(client *redis.Client, ttl time.Duration) *ProcessedStore {
	if ttl <= 0 {
		ttl = defaultProcessedTTL
	}
	return &ProcessedStore{client: client, ttl: ttl}
}

// MarkProcessed sets the marker only if absent
func (s *ProcessedStore) MarkProcessed(ctx context.Context, topic, key string) (bool, error) {
	first, err := s.client.SetNX(ctx, fmt.Sprintf(constants.KeyProcessedMessage, topic, key), time.Now().Unix(), s.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to mark message processed: %w", err)
	}
	return first, nil
}
