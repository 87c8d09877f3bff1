package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hajar-aswad/Learnzone/pkg/redis"
)

func TestConnect(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		mr := miniredis.RunT(t)
		cfg := redis.DefaultConfig()
		cfg.ConnectionURL = "redis://" + mr.Addr() + "/0"

		client, err := redis.Connect(context.Background(), cfg)
		require.NoError(t, err)
		defer client.Close()

		assert.NoError(t, redis.Healthcheck(client)(context.Background()))
	})

	t.Run("empty url", func(t *testing.T) {
		_, err := redis.Connect(context.Background(), redis.Config{})
		assert.ErrorIs(t, err, redis.ErrEmptyConnectionURL)
	})

	t.Run("invalid url", func(t *testing.T) {
		_, err := redis.Connect(context.Background(), redis.Config{ConnectionURL: "http://nope"})
		assert.ErrorIs(t, err, redis.ErrInvalidConnectionURL)
	})

	t.Run("server down", func(t *testing.T) {
		mr := miniredis.RunT(t)
		addr := mr.Addr()
		mr.Close()

		cfg := redis.Config{
			ConnectionURL:  "redis://" + addr + "/0",
			RetryAttempts:  2,
			RetryInterval:  10 * time.Millisecond,
			ConnectTimeout: time.Second,
		}
		_, err := redis.Connect(context.Background(), cfg)
		assert.ErrorIs(t, err, redis.ErrNotReady)
	})
}

func TestHealthcheck_Failure(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	cfg := redis.DefaultConfig()
	cfg.ConnectionURL = "redis://" + mr.Addr() + "/0"
	client, err := redis.Connect(context.Background(), cfg)
	require.NoError(t, err)
	defer client.Close()

	mr.Close()
	assert.ErrorIs(t, redis.Healthcheck(client)(context.Background()), redis.ErrHealthcheckFailed)
}
