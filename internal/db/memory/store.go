// Package memory implements db.Store as an in-process expirable LRU.
package memory

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/kailas-cloud/ghsearch/internal/db"
)

// DefaultSize is the number of entries kept when Config.Size is not set.
const DefaultSize = 1024

var _ db.Store = (*Store)(nil)

// Config holds the in-memory store settings.
type Config struct {
	Size int
	// TTL bounds every entry; per-key TTLs shorter than this are honored on read.
	TTL time.Duration
}

type entry struct {
	value     []byte
	expiresAt time.Time
}

// Store is safe for concurrent use.
type Store struct {
	cache *expirable.LRU[string, entry]
	now   func() time.Time
}

// NewStore creates an in-memory store.
func NewStore(cfg Config) *Store {
	size := cfg.Size
	if size <= 0 {
		size = DefaultSize
	}
	return &Store{
		cache: expirable.NewLRU[string, entry](size, nil, cfg.TTL),
		now:   time.Now,
	}
}

// Ping always succeeds.
func (s *Store) Ping(context.Context) error { return nil }

// Close drops all entries.
func (s *Store) Close() { s.cache.Purge() }

// WaitForReady returns immediately.
func (s *Store) WaitForReady(context.Context, time.Duration) error { return nil }

// Get returns a copy of the stored value.
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	e, ok := s.cache.Get(key)
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	if !e.expiresAt.IsZero() && !s.now().Before(e.expiresAt) {
		s.cache.Remove(key)
		return nil, db.ErrKeyNotFound
	}
	return append([]byte(nil), e.value...), nil
}

// Set stores value, bounded only by the store-wide TTL.
func (s *Store) Set(_ context.Context, key string, value []byte) error {
	s.cache.Add(key, entry{value: append([]byte(nil), value...)})
	return nil
}

// SetWithTTL stores value for at most ttl.
func (s *Store) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return s.Set(ctx, key, value)
	}
	s.cache.Add(key, entry{
		value:     append([]byte(nil), value...),
		expiresAt: s.now().Add(ttl),
	})
	return nil
}

// Del removes key.
func (s *Store) Del(_ context.Context, key string) error {
	s.cache.Remove(key)
	return nil
}

// Len returns the number of entries, including ones not yet evicted.
func (s *Store) Len() int { return s.cache.Len() }
