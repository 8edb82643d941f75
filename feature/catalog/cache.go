package catalog

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// snapshot is one cached read result.
type snapshot struct {
	value any
	built time.Time
	ttl   time.Duration
}

func (s *snapshot) expired(now time.Time) bool {
	if s.ttl == 0 {
		return true // No caching
	}
	return now.Sub(s.built) > s.ttl
}

// snapshotCache holds read results keyed by query name until their TTL passes
// or a sync commit invalidates them.
type snapshotCache struct {
	mu      sync.RWMutex
	entries map[string]*snapshot
	gen     uint64
	sf      singleflight.Group
	ttl     time.Duration
	now     func() time.Time
}

func newSnapshotCache(ttl time.Duration) *snapshotCache {
	return &snapshotCache{
		entries: make(map[string]*snapshot),
		ttl:     ttl,
		now:     time.Now,
	}
}

// get returns the cached value for key or builds it. Concurrent misses for
// the same key share one build.
func (c *snapshotCache) get(ctx context.Context, key string, build func(context.Context) (any, error)) (any, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if ok && !entry.expired(c.now()) {
		return entry.value, nil
	}

	v, err, _ := c.sf.Do(key, func() (any, error) {
		c.mu.RLock()
		entry, ok := c.entries[key]
		gen := c.gen
		c.mu.RUnlock()

		if ok && !entry.expired(c.now()) {
			return entry.value, nil
		}

		value, err := build(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		// A commit landed while building; the value may predate it.
		if c.gen == gen && c.ttl > 0 {
			c.entries[key] = &snapshot{value: value, built: c.now(), ttl: c.ttl}
		}
		c.mu.Unlock()

		return value, nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// invalidate drops every snapshot.
func (c *snapshotCache) invalidate() {
	c.mu.Lock()
	c.entries = make(map[string]*snapshot)
	c.gen++
	c.mu.Unlock()
}
