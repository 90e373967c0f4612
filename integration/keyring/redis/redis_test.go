package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/wisdom2788/youthguard-go/integration/keyring/redis"
)

func TestConnect(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty connection URL", func(t *testing.T) {
		t.Parallel()

		_, err := redis.Connect(context.Background(), redis.Config{ConnectionURL: "   "})
		require.ErrorIs(t, err, redis.ErrEmptyConnectionURL)
	})

	t.Run("rejects unsupported scheme", func(t *testing.T) {
		t.Parallel()

		_, err := redis.Connect(context.Background(), redis.Config{ConnectionURL: "http://localhost:6379"})
		require.ErrorIs(t, err, redis.ErrFailedToParseRedisConnString)
	})

	t.Run("rejects malformed URL", func(t *testing.T) {
		t.Parallel()

		_, err := redis.Connect(context.Background(), redis.Config{ConnectionURL: "redis://[::1"})
		require.ErrorIs(t, err, redis.ErrFailedToParseRedisConnString)
	})

	t.Run("reports unreachable server", func(t *testing.T) {
		t.Parallel()

		// Reserved TEST-NET-1 address, nothing listens there.
		_, err := redis.Connect(context.Background(), redis.Config{
			ConnectionURL:  "redis://192.0.2.1:6379/0",
			RetryAttempts:  1,
			ConnectTimeout: 100 * time.Millisecond,
		})
		require.ErrorIs(t, err, redis.ErrRedisNotReady)
	})
}
