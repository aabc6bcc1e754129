package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/constants"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
)

func setup(t *testing.T) (*JSONCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewJSONCache(client, constants.KeyPassengerCache, 30*time.Second), mr
}

func TestJSONCache_RoundTripAndExpiry(t *testing.T) {
	c, mr := setup(t)
	ctx := context.Background()

	var got models.Passenger
	found, err := c.Get(ctx, "p-1", &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, "p-1", &models.Passenger{PassengerID: "p-1", Status: models.PassengerStatusActive}))
	assert.True(t, mr.Exists("ticketing:passenger:p-1"))

	found, err = c.Get(ctx, "p-1", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, models.PassengerStatusActive, got.Status)

	mr.FastForward(31 * time.Second)
	found, err = c.Get(ctx, "p-1", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestJSONCache_Invalidate(t *testing.T) {
	c, mr := setup(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "p-2", map[string]string{"a": "b"}))
	require.NoError(t, c.Invalidate(ctx, "p-2"))
	assert.False(t, mr.Exists("ticketing:passenger:p-2"))
}

func TestJSONCache_RedisDown(t *testing.T) {
	c, mr := setup(t)
	mr.Close()

	var got models.Passenger
	_, err := c.Get(context.Background(), "p-1", &got)
	assert.Error(t, err)
}
