package sortedstorage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQueue(t *testing.T, ttl time.Duration) (*RedisSortedQueue, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisSortedQueue(client, ttl), srv
}

func TestRedisSortedQueue(t *testing.T) {
	ctx := context.Background()
	const key = "mazes:recent"

	q, srv := newQueue(t, time.Hour)

	for n, member := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, q.Enqueue(ctx, key, float64(n), member))
	}
	count, err := q.Count(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
	assert.Equal(t, time.Hour, srv.TTL(key))

	newest, err := q.Newest(ctx, key, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"e", "d", "c"}, newest)

	require.NoError(t, q.Trim(ctx, key, 2))
	newest, err = q.Newest(ctx, key, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"e", "d"}, newest)

	// Trimming below the limit is a no-op.
	require.NoError(t, q.Trim(ctx, key, 5))
	count, err = q.Count(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	require.NoError(t, q.Remove(ctx, key, "e"))
	newest, err = q.Newest(ctx, key, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"d"}, newest)

	empty, err := q.Newest(ctx, key, 0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestRedisSortedQueueKeepsExistingTTL(t *testing.T) {
	ctx := context.Background()
	q, srv := newQueue(t, time.Hour)

	require.NoError(t, q.Enqueue(ctx, "k", 1, "a"))
	srv.FastForward(30 * time.Minute)
	require.NoError(t, q.Enqueue(ctx, "k", 2, "b"))

	assert.Equal(t, 30*time.Minute, srv.TTL("k"))
}

func TestRedisSortedQueueTrimReleasesLock(t *testing.T) {
	q, srv := newQueue(t, 0)
	const key = "k"

	for n, member := range []string{"a", "b", "c"} {
		require.NoError(t, q.Enqueue(context.Background(), key, float64(n), member))
	}

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, q.Trim(ctx, key, 1))
	cancel()

	assert.False(t, srv.Exists(key+trimLockSuffix), "lock is released after trim")

	// A second trim must not wait for the first lock to expire.
	done := make(chan error, 1)
	go func() { done <- q.Trim(context.Background(), key, 1) }()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("trim blocked on a stale lock")
	}

	count, err := q.Count(context.Background(), "missing")
	require.NoError(t, err)
	assert.Zero(t, count)
}
