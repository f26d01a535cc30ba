package redis

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_AllowWithinLimit(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	limiter := NewRateLimiter(client, time.Minute)
	ctx := context.Background()
	key := fmt.Sprintf("test-key-%d", time.Now().UnixNano())

	for i := 0; i < 3; i++ {
		ok, err := limiter.Allow(ctx, key, 3)
		require.NoError(t, err)
		assert.True(t, ok, "hit %d should be allowed", i+1)
	}

	ok, err := limiter.Allow(ctx, key, 3)
	require.NoError(t, err)
	assert.False(t, ok, "hit beyond the limit should be rejected")
}

func TestRateLimiter_KeysAreIndependent(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	limiter := NewRateLimiter(client, time.Minute)
	ctx := context.Background()
	keyA := fmt.Sprintf("client-a-%d", time.Now().UnixNano())
	keyB := fmt.Sprintf("client-b-%d", time.Now().UnixNano())

	ok, err := limiter.Allow(ctx, keyA, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = limiter.Allow(ctx, keyA, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	// A different key still has budget.
	ok, err = limiter.Allow(ctx, keyB, 1)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRateLimiter_WindowExpiry(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	limiter := NewRateLimiter(client, 200*time.Millisecond)
	ctx := context.Background()
	key := fmt.Sprintf("expiry-%d", time.Now().UnixNano())

	ok, err := limiter.Allow(ctx, key, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = limiter.Allow(ctx, key, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	time.Sleep(300 * time.Millisecond)

	ok, err = limiter.Allow(ctx, key, 1)
	require.NoError(t, err)
	assert.True(t, ok, "a fresh window should start after expiry")
}

func TestRateLimiter_NonPositiveLimitDisables(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	limiter := NewRateLimiter(client, time.Minute)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		ok, err := limiter.Allow(ctx, "unlimited", 0)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestRateLimiter_Reset(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	limiter := NewRateLimiter(client, time.Minute)
	ctx := context.Background()
	key := fmt.Sprintf("reset-%d", time.Now().UnixNano())

	ok, err := limiter.Allow(ctx, key, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = limiter.Allow(ctx, key, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, limiter.Reset(ctx, key))

	ok, err = limiter.Allow(ctx, key, 1)
	require.NoError(t, err)
	assert.True(t, ok)
}
