package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	dmn "github.com/beka-birhanu/backtrack-maze/domain"
	"github.com/google/uuid"
)

var errUnavailable = errors.New("backend unavailable")

type memMazeRepo struct {
	sync.Mutex
	records map[uuid.UUID]*dmn.MazeRecord
	reads   int
}

func newMemMazeRepo() *memMazeRepo {
	return &memMazeRepo{records: map[uuid.UUID]*dmn.MazeRecord{}}
}

func (r *memMazeRepo) Save(_ context.Context, record *dmn.MazeRecord) error {
	r.Lock()
	defer r.Unlock()
	r.records[record.ID] = record
	return nil
}

func (r *memMazeRepo) ByID(_ context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	r.Lock()
	defer r.Unlock()
	r.reads++
	record, ok := r.records[id]
	if !ok {
		return nil, dmn.ErrMazeNotFound
	}
	return record, nil
}

func (r *memMazeRepo) ByOwner(_ context.Context, owner uuid.UUID, limit int64) ([]*dmn.MazeRecord, error) {
	r.Lock()
	defer r.Unlock()
	var out []*dmn.MazeRecord
	for _, record := range r.records {
		if record.OwnerID == owner {
			out = append(out, record)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].CreatedAt.After(out[b].CreatedAt) })
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memMazeRepo) Delete(_ context.Context, id, owner uuid.UUID) error {
	r.Lock()
	defer r.Unlock()
	record, ok := r.records[id]
	if !ok || record.OwnerID != owner {
		return dmn.ErrMazeNotFound
	}
	delete(r.records, id)
	return nil
}

type memMazeCache struct {
	records map[uuid.UUID]*dmn.MazeRecord
	fail    bool
	batches int
}

func newMemMazeCache() *memMazeCache {
	return &memMazeCache{records: map[uuid.UUID]*dmn.MazeRecord{}}
}

func (c *memMazeCache) Get(_ context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	if c.fail {
		return nil, errUnavailable
	}
	return c.records[id], nil
}

func (c *memMazeCache) GetMany(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]*dmn.MazeRecord, error) {
	if c.fail {
		return nil, errUnavailable
	}
	c.batches++
	out := map[uuid.UUID]*dmn.MazeRecord{}
	for _, id := range ids {
		if r, ok := c.records[id]; ok {
			out[id] = r
		}
	}
	return out, nil
}

func (c *memMazeCache) Set(_ context.Context, record *dmn.MazeRecord, _ time.Duration) error {
	if c.fail {
		return errUnavailable
	}
	c.records[record.ID] = record
	return nil
}

func (c *memMazeCache) Delete(_ context.Context, id uuid.UUID) error {
	delete(c.records, id)
	return nil
}

type memSortedQueue struct {
	scores map[string]float64
	counts int
	reads  int
}

func newMemSortedQueue() *memSortedQueue {
	return &memSortedQueue{scores: map[string]float64{}}
}

func (q *memSortedQueue) Enqueue(_ context.Context, _ string, score float64, member string) error {
	q.scores[member] = score
	return nil
}

func (q *memSortedQueue) sorted() []string {
	members := make([]string, 0, len(q.scores))
	for m := range q.scores {
		members = append(members, m)
	}
	sort.Slice(members, func(a, b int) bool { return q.scores[members[a]] > q.scores[members[b]] })
	return members
}

func (q *memSortedQueue) Newest(_ context.Context, _ string, amount int64) ([]string, error) {
	q.reads++
	members := q.sorted()
	if int64(len(members)) > amount {
		members = members[:amount]
	}
	return members, nil
}

func (q *memSortedQueue) Trim(_ context.Context, _ string, keep int64) error {
	members := q.sorted()
	for idx, m := range members {
		if int64(idx) >= keep {
			delete(q.scores, m)
		}
	}
	return nil
}

func (q *memSortedQueue) Remove(_ context.Context, _ string, member string) error {
	delete(q.scores, member)
	return nil
}

func (q *memSortedQueue) Count(context.Context, string) (int64, error) {
	q.counts++
	return int64(len(q.scores)), nil
}

type memUserRepo struct {
	users map[string]*dmn.User
}

func (r *memUserRepo) Save(_ context.Context, user *dmn.User) error {
	r.users[user.Username] = user
	return nil
}

func (r *memUserRepo) ByID(_ context.Context, id uuid.UUID) (*dmn.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, dmn.ErrUserNotFound
}

func (r *memUserRepo) ByUsername(_ context.Context, username string) (*dmn.User, error) {
	if u, ok := r.users[username]; ok {
		return u, nil
	}
	return nil, dmn.ErrUserNotFound
}

type stubTokenizer struct {
	claims map[string]interface{}
}

func (s *stubTokenizer) Generate(claims map[string]interface{}, _ time.Duration) (string, error) {
	s.claims = claims
	return "signed-token", nil
}

func (s *stubTokenizer) Decode(string) (map[string]interface{}, error) {
	return s.claims, nil
}
