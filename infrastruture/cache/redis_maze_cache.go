package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/backtrack-maze/domain"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
)

const keyPrefix = "maze:"

// RedisMazeCache keeps maze records in Redis, encoded with the same bson
// layout the store uses.
type RedisMazeCache struct {
	client *redis.Client
}

// NewRedisMazeCache creates a cache on client.
func NewRedisMazeCache(client *redis.Client) *RedisMazeCache {
	return &RedisMazeCache{client: client}
}

// Get returns the cached record or nil on a miss.
func (c *RedisMazeCache) Get(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	raw, err := c.client.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var record dmn.MazeRecord
	if err := bson.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("decoding cached maze %s: %w", id, err)
	}
	return &record, nil
}

// GetMany reads ids with a single MGET. Misses and entries that fail to
// decode are left out of the result.
func (c *RedisMazeCache) GetMany(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*dmn.MazeRecord, error) {
	records := make(map[uuid.UUID]*dmn.MazeRecord, len(ids))
	if len(ids) == 0 {
		return records, nil
	}

	keys := make([]string, len(ids))
	for n, id := range ids {
		keys[n] = key(id)
	}

	values, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	for n, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var record dmn.MazeRecord
		if err := bson.Unmarshal([]byte(raw), &record); err != nil {
			continue
		}
		records[ids[n]] = &record
	}
	return records, nil
}

// Set stores record for ttl.
func (c *RedisMazeCache) Set(ctx context.Context, record *dmn.MazeRecord, ttl time.Duration) error {
	raw, err := bson.Marshal(record)
	if err != nil {
		return fmt.Errorf("encoding maze %s: %w", record.ID, err)
	}
	return c.client.Set(ctx, key(record.ID), raw, ttl).Err()
}

// Delete evicts the record with id.
func (c *RedisMazeCache) Delete(ctx context.Context, id uuid.UUID) error {
	return c.client.Del(ctx, key(id)).Err()
}

func key(id uuid.UUID) string {
	return keyPrefix + id.String()
}
