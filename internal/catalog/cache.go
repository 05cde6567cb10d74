package catalog

import (
	"sync/atomic"
	"time"

	"github.com/Adrianenache82/local-vibe/internal/venue"
)

const DefaultTTL = 24 * time.Hour

// Snapshot is an immutable catalog. Callers must not modify Venues.
type Snapshot struct {
	Venues    []venue.Venue
	FetchedAt time.Time
	byID      map[string]int
}

func newSnapshot(venues []venue.Venue, fetchedAt time.Time) *Snapshot {
	byID := make(map[string]int, len(venues))
	for i, v := range venues {
		byID[v.ID] = i
	}
	return &Snapshot{Venues: venues, FetchedAt: fetchedAt, byID: byID}
}

func (s *Snapshot) Lookup(id string) (venue.Venue, bool) {
	i, ok := s.byID[id]
	if !ok {
		return venue.Venue{}, false
	}
	return s.Venues[i], true
}

// Cache holds the current snapshot. Replacement is a single atomic swap, so
// readers see either the previous snapshot or the new one.
type Cache struct {
	ttl     time.Duration
	now     func() time.Time
	current atomic.Pointer[Snapshot]
}

func NewCache(ttl time.Duration, now func() time.Time) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if now == nil {
		now = time.Now
	}
	return &Cache{ttl: ttl, now: now}
}

// Load returns the current snapshot, expired or not, or nil if none was stored.
func (c *Cache) Load() *Snapshot {
	return c.current.Load()
}

func (c *Cache) Store(venues []venue.Venue) *Snapshot {
	snap := newSnapshot(venues, c.now())
	c.current.Store(snap)
	return snap
}

func (c *Cache) IsExpired() bool {
	snap := c.current.Load()
	return snap == nil || snap.FetchedAt.IsZero() || c.now().Sub(snap.FetchedAt) >= c.ttl
}

// Invalidate marks the current snapshot expired. It stays loadable as a
// stale fallback until replaced.
func (c *Cache) Invalidate() {
	snap := c.current.Load()
	if snap == nil {
		return
	}
	c.current.CompareAndSwap(snap, &Snapshot{Venues: snap.Venues, byID: snap.byID})
}
