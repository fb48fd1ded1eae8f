package i

import (
	"context"
	"time"

	dmn "github.com/beka-birhanu/backtrack-maze/domain"
	"github.com/google/uuid"
)

// MazeCache keeps recently served mazes close at hand.
type MazeCache interface {
	// Get returns the cached maze, or nil without error on a miss.
	Get(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error)

	// GetMany fetches ids in one round trip. Misses are absent from the map.
	GetMany(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*dmn.MazeRecord, error)

	Set(ctx context.Context, record *dmn.MazeRecord, ttl time.Duration) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SortedQueue is a scored set of members shared between service instances.
type SortedQueue interface {
	// Enqueue adds member with score, setting the key's TTL on first insert.
	Enqueue(ctx context.Context, queueKey string, score float64, member string) error

	// Newest returns up to amount members with the highest scores, highest first.
	Newest(ctx context.Context, queueKey string, amount int64) ([]string, error)

	// Trim drops the lowest-scored members so at most keep remain.
	Trim(ctx context.Context, queueKey string, keep int64) error

	// Remove deletes member from the queue.
	Remove(ctx context.Context, queueKey string, member string) error

	// Count returns the number of members in the queue.
	Count(ctx context.Context, queueKey string) (int64, error)
}
