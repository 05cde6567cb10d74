package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Adrianenache82/local-vibe/internal/shared/geo"
	"github.com/Adrianenache82/local-vibe/internal/venue"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

var ErrEmptyCatalog = errors.New("catalog is empty")

// Topic is the notification topic for catalog events.
const Topic = "catalog"

type Notifier interface {
	Broadcast(topic string, payload []byte)
}

type Event struct {
	Type      string    `json:"type"`
	Venues    int       `json:"venues"`
	FetchedAt time.Time `json:"fetched_at"`
}

type CategoryCount struct {
	Category venue.Category `json:"category"`
	Count    int            `json:"count"`
}

type Service struct {
	policy   *Policy
	live     LiveSource
	cache    *Cache
	notifier Notifier
	logger   zerolog.Logger

	group singleflight.Group

	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewService(policy *Policy, live LiveSource, cache *Cache, notifier Notifier, rng *rand.Rand, logger zerolog.Logger) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{
		policy:   policy,
		live:     live,
		cache:    cache,
		notifier: notifier,
		rng:      rng,
		logger:   logger,
	}
}

// snapshot returns the cached catalog while fresh, otherwise acquires a new
// one. A failed acquisition falls back to the stale snapshot if there is one.
func (s *Service) snapshot(ctx context.Context) (*Snapshot, error) {
	if snap := s.cache.Load(); snap != nil && !s.cache.IsExpired() {
		return snap, nil
	}
	snap, err := s.acquire(ctx)
	if err != nil {
		if stale := s.cache.Load(); stale != nil {
			s.logger.Warn().Err(err).Msg("catalog acquisition failed, serving stale snapshot")
			return stale, nil
		}
		return nil, err
	}
	return snap, nil
}

// acquire runs one acquisition shared by all concurrent callers.
func (s *Service) acquire(ctx context.Context) (*Snapshot, error) {
	v, err, _ := s.group.Do("catalog", func() (any, error) {
		venues, err := s.policy.AcquireAll(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		snap := s.cache.Store(venues)
		s.publish(snap)
		return snap, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Snapshot), nil
}

func (s *Service) publish(snap *Snapshot) {
	if s.notifier == nil {
		return
	}
	payload, err := json.Marshal(Event{Type: "catalog.updated", Venues: len(snap.Venues), FetchedAt: snap.FetchedAt})
	if err != nil {
		return
	}
	s.notifier.Broadcast(Topic, payload)
}

// Refresh forces a new acquisition and replaces the snapshot.
func (s *Service) Refresh(ctx context.Context) error {
	_, err := s.acquire(ctx)
	return err
}

func (s *Service) Invalidate() {
	s.cache.Invalidate()
}

func (s *Service) GetAllVenues(ctx context.Context) ([]venue.Venue, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return append([]venue.Venue(nil), snap.Venues...), nil
}

func (s *Service) GetVenuesByCategory(ctx context.Context, category venue.Category) ([]venue.Venue, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	var out []venue.Venue
	for _, v := range snap.Venues {
		if v.Category == category {
			out = append(out, v)
		}
	}
	return out, nil
}

// GetVenueByID reports found=false for unknown ids. Live ids missing from the
// snapshot are looked up at the source; a failed lookup is also not found.
func (s *Service) GetVenueByID(ctx context.Context, id string) (venue.Venue, bool, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return venue.Venue{}, false, err
	}
	if v, ok := snap.Lookup(id); ok {
		return v, true, nil
	}
	if s.live == nil || !strings.HasPrefix(id, venue.LivePrefix) {
		return venue.Venue{}, false, nil
	}

	raw, err := s.live.GetDetails(ctx, strings.TrimPrefix(id, venue.LivePrefix))
	if err != nil {
		s.logger.Debug().Err(err).Str("id", id).Msg("live details lookup failed")
		return venue.Venue{}, false, nil
	}
	return venue.FromRawPlace(raw, venue.CategoryForTypes(raw.Types), s.policy.Defaults()), true, nil
}

func (s *Service) GetRandomVenue(ctx context.Context) (venue.Venue, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return venue.Venue{}, err
	}
	if len(snap.Venues) == 0 {
		return venue.Venue{}, ErrEmptyCatalog
	}
	s.rngMu.Lock()
	i := s.rng.Intn(len(snap.Venues))
	s.rngMu.Unlock()
	return snap.Venues[i], nil
}

// SearchVenues matches query case-insensitively against name and description.
func (s *Service) SearchVenues(ctx context.Context, query string) ([]venue.Venue, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return append([]venue.Venue(nil), snap.Venues...), nil
	}
	var out []venue.Venue
	for _, v := range snap.Venues {
		if strings.Contains(strings.ToLower(v.Name), q) || strings.Contains(strings.ToLower(v.Description), q) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (s *Service) Categories(ctx context.Context) ([]CategoryCount, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	counts := map[venue.Category]int{}
	for _, v := range snap.Venues {
		counts[v.Category]++
	}
	out := make([]CategoryCount, 0, len(counts))
	for _, c := range venue.Categories() {
		out = append(out, CategoryCount{Category: c, Count: counts[c]})
	}
	return out, nil
}

// WithDistances returns copies of venues annotated with their distance from
// origin, nearest first.
func WithDistances(venues []venue.Venue, origin venue.Coordinates) []venue.Venue {
	out := make([]venue.Venue, len(venues))
	for i, v := range venues {
		d := geo.HaversineKm(origin.Latitude, origin.Longitude, v.Coordinates.Latitude, v.Coordinates.Longitude)
		v.DistanceKm = &d
		out[i] = v
	}
	sort.SliceStable(out, func(i, j int) bool { return *out[i].DistanceKm < *out[j].DistanceKm })
	return out
}
