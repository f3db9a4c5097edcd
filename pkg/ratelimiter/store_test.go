package ratelimiter_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/myflix/pkg/ratelimiter"
)

var testConfig = ratelimiter.Config{
	Capacity:       3,
	RefillRate:     1,
	RefillInterval: 10 * time.Second,
}

type storeFactory func(t *testing.T, clock *fakeClock) ratelimiter.Store

func memoryFactory(t *testing.T, clock *fakeClock) ratelimiter.Store {
	store := ratelimiter.NewMemoryStore(
		ratelimiter.WithCleanupInterval(0),
		ratelimiter.WithMemoryClock(clock.Now),
	)
	t.Cleanup(store.Close)
	return store
}

func redisFactory(t *testing.T, clock *fakeClock) ratelimiter.Store {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return ratelimiter.NewRedisStore(client,
		ratelimiter.WithKeyPrefix("test:"),
		ratelimiter.WithRedisClock(clock.Now),
	)
}

func TestStores(t *testing.T) {
	t.Parallel()

	factories := map[string]storeFactory{
		"memory": memoryFactory,
		"redis":  redisFactory,
	}

	for name, factory := range factories {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			t.Run("consumes up to capacity then denies", func(t *testing.T) {
				t.Parallel()
				clock := newFakeClock()
				store := factory(t, clock)
				ctx := context.Background()

				for want := testConfig.Capacity - 1; want >= 0; want-- {
					remaining, _, err := store.ConsumeTokens(ctx, "ip:1", 1, testConfig)
					require.NoError(t, err)
					assert.Equal(t, want, remaining)
				}

				remaining, resetAt, err := store.ConsumeTokens(ctx, "ip:1", 1, testConfig)
				require.NoError(t, err)
				assert.Equal(t, -1, remaining)
				assert.WithinDuration(t, clock.Now().Add(testConfig.RefillInterval), resetAt, 0)
			})

			t.Run("denied requests do not drain the bucket", func(t *testing.T) {
				t.Parallel()
				clock := newFakeClock()
				store := factory(t, clock)
				ctx := context.Background()

				for range testConfig.Capacity + 5 {
					_, _, err := store.ConsumeTokens(ctx, "ip:2", 1, testConfig)
					require.NoError(t, err)
				}

				clock.Advance(testConfig.RefillInterval)
				remaining, _, err := store.ConsumeTokens(ctx, "ip:2", 1, testConfig)
				require.NoError(t, err)
				assert.Equal(t, 0, remaining)
			})

			t.Run("refills over time up to capacity", func(t *testing.T) {
				t.Parallel()
				clock := newFakeClock()
				store := factory(t, clock)
				ctx := context.Background()

				_, _, err := store.ConsumeTokens(ctx, "ip:3", 3, testConfig)
				require.NoError(t, err)

				clock.Advance(2 * testConfig.RefillInterval)
				remaining, _, err := store.ConsumeTokens(ctx, "ip:3", 0, testConfig)
				require.NoError(t, err)
				assert.Equal(t, 2, remaining)

				clock.Advance(time.Hour)
				remaining, _, err = store.ConsumeTokens(ctx, "ip:3", 0, testConfig)
				require.NoError(t, err)
				assert.Equal(t, testConfig.Capacity, remaining)
			})

			t.Run("keys are independent", func(t *testing.T) {
				t.Parallel()
				clock := newFakeClock()
				store := factory(t, clock)
				ctx := context.Background()

				_, _, err := store.ConsumeTokens(ctx, "ip:a", 3, testConfig)
				require.NoError(t, err)

				remaining, _, err := store.ConsumeTokens(ctx, "ip:b", 1, testConfig)
				require.NoError(t, err)
				assert.Equal(t, 2, remaining)
			})

			t.Run("reset restores a full bucket", func(t *testing.T) {
				t.Parallel()
				clock := newFakeClock()
				store := factory(t, clock)
				ctx := context.Background()

				_, _, err := store.ConsumeTokens(ctx, "ip:r", 3, testConfig)
				require.NoError(t, err)
				require.NoError(t, store.Reset(ctx, "ip:r"))

				remaining, _, err := store.ConsumeTokens(ctx, "ip:r", 1, testConfig)
				require.NoError(t, err)
				assert.Equal(t, 2, remaining)
			})
		})
	}
}

func TestRedisStore_SetsExpiry(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := ratelimiter.NewRedisStore(client)
	_, _, err := store.ConsumeTokens(context.Background(), "ip:ttl", 1, testConfig)
	require.NoError(t, err)

	assert.True(t, mr.Exists("myflix:ratelimit:ip:ttl"))
	assert.Equal(t, 40*time.Second, mr.TTL("myflix:ratelimit:ip:ttl"))
}

func TestRedisStore_Unavailable(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	mr.Close()

	store := ratelimiter.NewRedisStore(client)
	_, _, err := store.ConsumeTokens(context.Background(), "ip:down", 1, testConfig)
	assert.ErrorIs(t, err, ratelimiter.ErrStoreUnavailable)
	assert.ErrorIs(t, store.Reset(context.Background(), "ip:down"), ratelimiter.ErrStoreUnavailable)
}
