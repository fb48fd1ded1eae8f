package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	dmn "github.com/beka-birhanu/backtrack-maze/domain"
	"github.com/beka-birhanu/backtrack-maze/maze"
	"github.com/beka-birhanu/backtrack-maze/service/i"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	defaultRecentKey    = "mazes:recent"
	defaultRecentLimit  = 100
	defaultCacheTTL     = 10 * time.Minute
	defaultMaxDimension = 50
)

// MazeConfig wires a MazeService.
type MazeConfig struct {
	Repo   i.MazeRepo
	Cache  i.MazeCache
	Recent i.SortedQueue
	Logger logrus.FieldLogger

	MaxDimension int           // Largest accepted width or height
	ExitAttempts int           // Passed to maze.WithExitAttempts; zero keeps the generator default
	CacheTTL     time.Duration // Lifetime of cached mazes
	RecentKey    string        // Sorted set holding recent maze IDs
	RecentLimit  int64         // Members kept in the recent set
	SeedSource   *rand.Rand    // Source of seeds for requests without one
}

// MazeService generates mazes and keeps the saved ones in the store, the
// cache and the recent index.
type MazeService struct {
	repo   i.MazeRepo
	cache  i.MazeCache
	recent i.SortedQueue
	logger logrus.FieldLogger

	maxDimension int
	exitAttempts int
	cacheTTL     time.Duration
	recentKey    string
	recentLimit  int64

	seedMu sync.Mutex
	seeds  *rand.Rand
}

// NewMazeService validates c and creates a MazeService.
func NewMazeService(c *MazeConfig) (*MazeService, error) {
	if c == nil || c.Repo == nil || c.Cache == nil || c.Recent == nil {
		return nil, errors.New("maze service needs a repository, a cache and a recent index")
	}

	s := &MazeService{
		repo:         c.Repo,
		cache:        c.Cache,
		recent:       c.Recent,
		logger:       c.Logger,
		maxDimension: c.MaxDimension,
		exitAttempts: c.ExitAttempts,
		cacheTTL:     c.CacheTTL,
		recentKey:    c.RecentKey,
		recentLimit:  c.RecentLimit,
		seeds:        c.SeedSource,
	}

	if s.logger == nil {
		s.logger = logrus.StandardLogger()
	}
	if s.maxDimension <= 0 {
		s.maxDimension = defaultMaxDimension
	}
	if s.cacheTTL <= 0 {
		s.cacheTTL = defaultCacheTTL
	}
	if s.recentKey == "" {
		s.recentKey = defaultRecentKey
	}
	if s.recentLimit <= 0 {
		s.recentLimit = defaultRecentLimit
	}
	if s.seeds == nil {
		s.seeds = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return s, nil
}

// Preview generates a maze without storing it.
func (s *MazeService) Preview(width, height int, seed *int64) (*dmn.MazeRecord, error) {
	m, err := s.generate(width, height, seed)
	if err != nil {
		return nil, err
	}
	return dmn.NewMazeRecord(uuid.Nil, width, height, m), nil
}

// Create generates a maze for owner, stores it, and indexes it as recent.
// Cache and index failures are logged; only the store is authoritative.
func (s *MazeService) Create(ctx context.Context, owner uuid.UUID, width, height int, seed *int64) (*dmn.MazeRecord, error) {
	m, err := s.generate(width, height, seed)
	if err != nil {
		return nil, err
	}

	record := dmn.NewMazeRecord(owner, width, height, m)
	if err := s.repo.Save(ctx, record); err != nil {
		return nil, fmt.Errorf("saving maze: %w", err)
	}

	log := s.logger.WithFields(logrus.Fields{"maze_id": record.ID, "owner_id": owner})

	if err := s.cache.Set(ctx, record, s.cacheTTL); err != nil {
		log.WithError(err).Warn("caching new maze")
	}

	score := float64(record.CreatedAt.UnixNano())
	if err := s.recent.Enqueue(ctx, s.recentKey, score, record.ID.String()); err != nil {
		log.WithError(err).Warn("indexing new maze")
	} else if err := s.recent.Trim(ctx, s.recentKey, s.recentLimit); err != nil {
		log.WithError(err).Warn("trimming recent mazes")
	}

	log.WithFields(logrus.Fields{"width": width, "height": height, "seed": record.Seed}).Info("maze created")
	return record, nil
}

// ByID returns a stored maze, reading through the cache. Cached records
// that no longer decode are evicted; a corrupt stored record is an error
// wrapping dmn.ErrCorruptMazeRecord.
func (s *MazeService) ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	cached, err := s.cache.Get(ctx, id)
	if err != nil {
		s.logger.WithField("maze_id", id).WithError(err).Warn("reading maze cache")
	}
	if cached != nil && s.validCached(ctx, cached) {
		return cached, nil
	}
	return s.load(ctx, id)
}

// Recent returns up to n of the newest mazes. IDs whose maze is gone are
// dropped from the index and corrupt mazes are skipped.
func (s *MazeService) Recent(ctx context.Context, n int64) ([]*dmn.MazeRecord, error) {
	if n <= 0 || n > s.recentLimit {
		n = s.recentLimit
	}

	count, err := s.recent.Count(ctx, s.recentKey)
	if err != nil {
		return nil, fmt.Errorf("counting recent mazes: %w", err)
	}
	if count == 0 {
		return []*dmn.MazeRecord{}, nil
	}

	members, err := s.recent.Newest(ctx, s.recentKey, n)
	if err != nil {
		return nil, fmt.Errorf("reading recent mazes: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(members))
	for _, member := range members {
		id, err := uuid.Parse(member)
		if err != nil {
			s.logger.WithField("member", member).Warn("non-UUID value in recent index")
			_ = s.recent.Remove(ctx, s.recentKey, member)
			continue
		}
		ids = append(ids, id)
	}

	cached, err := s.cache.GetMany(ctx, ids)
	if err != nil {
		s.logger.WithError(err).Warn("reading maze cache")
	}

	records := make([]*dmn.MazeRecord, 0, len(ids))
	for _, id := range ids {
		if record := cached[id]; record != nil && s.validCached(ctx, record) {
			records = append(records, record)
			continue
		}

		record, err := s.load(ctx, id)
		switch {
		case errors.Is(err, dmn.ErrMazeNotFound):
			_ = s.recent.Remove(ctx, s.recentKey, id.String())
			continue
		case errors.Is(err, dmn.ErrCorruptMazeRecord):
			s.logger.WithField("maze_id", id).WithError(err).Warn("skipping corrupt maze")
			continue
		case err != nil:
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// validCached reports whether a cached record still decodes, evicting it
// when it does not.
func (s *MazeService) validCached(ctx context.Context, record *dmn.MazeRecord) bool {
	_, err := record.Maze()
	if err == nil {
		return true
	}

	log := s.logger.WithField("maze_id", record.ID)
	log.WithError(err).Warn("evicting corrupt cached maze")
	if err := s.cache.Delete(ctx, record.ID); err != nil {
		log.WithError(err).Warn("evicting maze")
	}
	return false
}

// load reads a maze from the store, checks it and refills the cache.
func (s *MazeService) load(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	record, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := record.Maze(); err != nil {
		return nil, fmt.Errorf("loading maze %s: %w", id, err)
	}

	if err := s.cache.Set(ctx, record, s.cacheTTL); err != nil {
		s.logger.WithField("maze_id", id).WithError(err).Warn("caching maze")
	}
	return record, nil
}

// ByOwner lists the mazes of owner, newest first.
func (s *MazeService) ByOwner(ctx context.Context, owner uuid.UUID, limit int64) ([]*dmn.MazeRecord, error) {
	if limit <= 0 || limit > s.recentLimit {
		limit = s.recentLimit
	}
	return s.repo.ByOwner(ctx, owner, limit)
}

// Delete removes a maze owned by owner from the store, cache and index.
func (s *MazeService) Delete(ctx context.Context, id, owner uuid.UUID) error {
	if err := s.repo.Delete(ctx, id, owner); err != nil {
		return err
	}

	log := s.logger.WithField("maze_id", id)
	if err := s.cache.Delete(ctx, id); err != nil {
		log.WithError(err).Warn("evicting deleted maze")
	}
	if err := s.recent.Remove(ctx, s.recentKey, id.String()); err != nil {
		log.WithError(err).Warn("unindexing deleted maze")
	}

	log.Info("maze deleted")
	return nil
}

func (s *MazeService) generate(width, height int, seed *int64) (*maze.Maze, error) {
	if width > s.maxDimension || height > s.maxDimension {
		return nil, fmt.Errorf("%w: limit is %d", dmn.ErrDimensionTooLarge, s.maxDimension)
	}

	opts := []maze.Option{maze.WithSeed(s.seedOrNext(seed))}
	if s.exitAttempts != 0 {
		opts = append(opts, maze.WithExitAttempts(s.exitAttempts))
	}

	g, err := maze.New(width, height, opts...)
	if err != nil {
		return nil, err
	}
	return g.Generate()
}

// seedOrNext returns *seed, or draws a new one. Handlers run concurrently,
// so the shared source is locked.
func (s *MazeService) seedOrNext(seed *int64) int64 {
	if seed != nil {
		return *seed
	}
	s.seedMu.Lock()
	defer s.seedMu.Unlock()
	return s.seeds.Int63()
}
