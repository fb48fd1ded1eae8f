package sortedstorage

import (
	"context"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const (
	trimLockSuffix = ":trim_lock"
	unlockTimeout  = 2 * time.Second
)

// RedisSortedQueue manages a sorted set in Redis with TTL support.
type RedisSortedQueue struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisSortedQueue initializes a RedisSortedQueue with the provided Redis client and TTL.
func NewRedisSortedQueue(client *redis.Client, ttl time.Duration) *RedisSortedQueue {
	return &RedisSortedQueue{
		client: client,
		locker: redsync.New(goredis.NewPool(client)),
		ttl:    ttl,
	}
}

// Enqueue adds a member to the sorted set with a given score and sets expiration if necessary.
func (rsq *RedisSortedQueue) Enqueue(ctx context.Context, queueKey string, score float64, member string) error {
	if err := rsq.client.ZAdd(ctx, queueKey, redis.Z{Score: score, Member: member}).Err(); err != nil {
		return err
	}

	// Set expiration only if it's not already set
	ttl, err := rsq.client.TTL(ctx, queueKey).Result()
	if err == nil && ttl == -1 && rsq.ttl > 0 {
		_ = rsq.client.Expire(ctx, queueKey, rsq.ttl).Err()
	}

	return nil
}

// Newest returns up to amount members with the highest scores, highest first.
func (rsq *RedisSortedQueue) Newest(ctx context.Context, queueKey string, amount int64) ([]string, error) {
	if amount <= 0 {
		return nil, nil
	}
	return rsq.client.ZRevRange(ctx, queueKey, 0, amount-1).Result()
}

// Trim removes the lowest-scored members beyond keep. Concurrent trims of
// one key are serialized through a redsync mutex.
func (rsq *RedisSortedQueue) Trim(ctx context.Context, queueKey string, keep int64) error {
	mutex := rsq.locker.NewMutex(queueKey + trimLockSuffix)
	if err := mutex.LockContext(ctx); err != nil {
		return err
	}
	// Unlock outlives the caller's context so a cancelled request cannot
	// leave the lock held until it expires.
	defer func() {
		unlockCtx, cancel := context.WithTimeout(context.Background(), unlockTimeout)
		defer cancel()
		_, _ = mutex.UnlockContext(unlockCtx)
	}()

	count, err := rsq.client.ZCard(ctx, queueKey).Result()
	if err != nil {
		return err
	}
	if count <= keep {
		return nil
	}

	// Ranks are ascending by score, so the oldest members come first.
	return rsq.client.ZRemRangeByRank(ctx, queueKey, 0, count-keep-1).Err()
}

// Remove deletes member from the sorted set.
func (rsq *RedisSortedQueue) Remove(ctx context.Context, queueKey string, member string) error {
	return rsq.client.ZRem(ctx, queueKey, member).Err()
}

// Count returns the number of members in the sorted set.
func (rsq *RedisSortedQueue) Count(ctx context.Context, queueKey string) (int64, error) {
	return rsq.client.ZCard(ctx, queueKey).Result()
}
