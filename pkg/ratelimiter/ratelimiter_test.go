package ratelimiter_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/myflix/pkg/ratelimiter"
)

func TestNewBucket_Validation(t *testing.T) {
	t.Parallel()

	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0))
	t.Cleanup(store.Close)

	tests := map[string]ratelimiter.Config{
		"zero capacity": {Capacity: 0, RefillRate: 1, RefillInterval: time.Second},
		"zero rate":     {Capacity: 1, RefillRate: 0, RefillInterval: time.Second},
		"zero interval": {Capacity: 1, RefillRate: 1},
	}
	for name, cfg := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := ratelimiter.NewBucket(store, cfg)
			assert.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)
		})
	}

	_, err := ratelimiter.NewBucket(nil, testConfig)
	assert.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)
}

func TestBucket(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0), ratelimiter.WithMemoryClock(clock.Now))
	t.Cleanup(store.Close)

	bucket, err := ratelimiter.NewBucket(store, testConfig)
	require.NoError(t, err)
	assert.Equal(t, testConfig, bucket.Config())

	ctx := context.Background()

	_, err = bucket.AllowN(ctx, "k", 0)
	assert.ErrorIs(t, err, ratelimiter.ErrInvalidTokenCount)

	res, err := bucket.AllowN(ctx, "k", 2)
	require.NoError(t, err)
	assert.True(t, res.Allowed())
	assert.Equal(t, 3, res.Limit)
	assert.Equal(t, 1, res.Remaining)
	assert.Zero(t, res.RetryAfter())

	status, err := bucket.Status(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, 1, status.Remaining)

	res, err = bucket.AllowN(ctx, "k", 2)
	require.NoError(t, err)
	assert.False(t, res.Allowed())

	require.NoError(t, bucket.Reset(ctx, "k"))
	res, err = bucket.Allow(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Remaining)
}

func TestResult_RetryAfter(t *testing.T) {
	t.Parallel()

	denied := &ratelimiter.Result{Remaining: -1, ResetAt: time.Now().Add(time.Minute)}
	assert.InDelta(t, time.Minute.Seconds(), denied.RetryAfter().Seconds(), 1)

	stale := &ratelimiter.Result{Remaining: -1, ResetAt: time.Now().Add(-time.Minute)}
	assert.Zero(t, stale.RetryAfter())
}
