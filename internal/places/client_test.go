package places

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Adrianenache82/local-vibe/internal/venue"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func newTestClient(srv *httptest.Server, cache ResponseCache) *Client {
	return NewClient(Options{
		APIKey:   "test-key",
		BaseURL:  srv.URL,
		Referer:  "http://localhost:8080",
		Cache:    cache,
		Logger:   zerolog.Nop(),
		CacheTTL: time.Hour,
	})
}

func TestSearchByCategoryNotConfigured(t *testing.T) {
	c := NewClient(Options{})
	if _, err := c.SearchByCategory(context.Background(), venue.Bar, venue.ServiceCenter, 1000); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected not configured error, got %v", err)
	}
	if _, err := c.GetDetails(context.Background(), "abc"); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected not configured error, got %v", err)
	}
}

func TestSearchByCategoryPaginates(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		if r.URL.Path != "/nearbysearch/json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("expected api key")
		}
		if r.Header.Get("Referer") == "" || r.Header.Get("User-Agent") != userAgent {
			t.Errorf("expected referer and user agent headers")
		}
		q := r.URL.Query()
		switch {
		case q.Get("pagetoken") == "page-2":
			fmt.Fprint(w, `{"status":"OK","results":[
				{"place_id":"c","name":"Cafe C","vicinity":"3 Main St","geometry":{"location":{"lat":33.31,"lng":-111.84}}},
				{"place_id":"a","name":"Cafe A duplicate"}
			]}`)
		case q.Get("type") == "cafe":
			if q.Get("radius") != "20000" || q.Get("location") == "" {
				t.Errorf("expected location and radius")
			}
			fmt.Fprint(w, `{"status":"OK","next_page_token":"page-2","results":[
				{"place_id":"a","name":"Cafe A","rating":4.5,"types":["cafe"],"photos":[{"photo_reference":"ref-a"}],"geometry":{"location":{"lat":33.3,"lng":-111.8}}},
				{"place_id":"b","name":"Cafe B","formatted_address":"2 Main St","editorial_summary":{"overview":"Good coffee"}}
			]}`)
		case q.Get("type") == "bakery":
			fmt.Fprint(w, `{"status":"ZERO_RESULTS","results":[]}`)
		default:
			t.Errorf("unexpected query %v", q)
		}
	}))
	defer srv.Close()

	c := newTestClient(srv, nil)
	raw, err := c.SearchByCategory(context.Background(), venue.CoffeeShop, venue.ServiceCenter, 20000)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(raw) != 3 {
		t.Fatalf("expected 3 unique places, got %d", len(raw))
	}
	if raw[0].ExternalID != "a" || raw[0].Rating == nil || *raw[0].Rating != 4.5 || raw[0].PhotoRefs[0] != "ref-a" {
		t.Fatalf("unexpected first place %+v", raw[0])
	}
	if raw[1].Location != nil || raw[1].Summary != "Good coffee" {
		t.Fatalf("expected missing location and summary on second place: %+v", raw[1])
	}
	if raw[2].Vicinity != "3 Main St" {
		t.Fatalf("unexpected third place %+v", raw[2])
	}
	if atomic.LoadInt32(&calls) != 3 {
		t.Fatalf("expected 3 requests, got %d", calls)
	}
}

func TestSearchByCategoryRespectsMaxResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"OK","next_page_token":"more","results":[
			{"place_id":"1","name":"One"},{"place_id":"2","name":"Two"},{"place_id":"3","name":"Three"}
		]}`)
	}))
	defer srv.Close()

	c := NewClient(Options{APIKey: "k", BaseURL: srv.URL, MaxResults: 2, Logger: zerolog.Nop()})
	raw, err := c.SearchByCategory(context.Background(), venue.Bar, venue.ServiceCenter, 1000)
	if err != nil || len(raw) != 2 {
		t.Fatalf("expected 2 places, got %d (%v)", len(raw), err)
	}
}

func TestSearchByCategoryStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"REQUEST_DENIED","error_message":"bad key","results":[]}`)
	}))
	defer srv.Close()

	_, err := newTestClient(srv, nil).SearchByCategory(context.Background(), venue.Bar, venue.ServiceCenter, 1000)
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.Status != "REQUEST_DENIED" {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestSearchByCategoryHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	if _, err := newTestClient(srv, nil).SearchByCategory(context.Background(), venue.Bar, venue.ServiceCenter, 1000); err == nil {
		t.Fatalf("expected http error")
	}
}

func TestSearchByCategoryMalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":`)
	}))
	defer srv.Close()

	if _, err := newTestClient(srv, nil).SearchByCategory(context.Background(), venue.Bar, venue.ServiceCenter, 1000); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestSearchByCategoryUsesCache(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		fmt.Fprint(w, `{"status":"OK","results":[{"place_id":"x","name":"X"}]}`)
	}))
	defer srv.Close()

	c := newTestClient(srv, NewMemoryCache(nil))
	for i := 0; i < 2; i++ {
		raw, err := c.SearchByCategory(context.Background(), venue.SocialClub, venue.ServiceCenter, 1000)
		if err != nil || len(raw) != 1 || raw[0].ExternalID != "x" {
			t.Fatalf("unexpected result %v %v", raw, err)
		}
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Fatalf("expected second search served from cache, got %d calls", calls)
	}
}

func TestGetDetails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/details/json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		switch r.URL.Query().Get("place_id") {
		case "known":
			fmt.Fprint(w, `{"status":"OK","result":{"place_id":"known","name":"Known","types":["park"]}}`)
		default:
			fmt.Fprint(w, `{"status":"NOT_FOUND"}`)
		}
	}))
	defer srv.Close()

	c := newTestClient(srv, NewMemoryCache(nil))
	raw, err := c.GetDetails(context.Background(), "known")
	if err != nil || raw.Name != "Known" || raw.Types[0] != "park" {
		t.Fatalf("unexpected details %+v %v", raw, err)
	}
	if _, err := c.GetDetails(context.Background(), "missing"); err == nil {
		t.Fatalf("expected error for unknown place")
	}
}

func TestPhotoURL(t *testing.T) {
	if got := PhotoURL("/api/places")("abc/def"); got != "/api/places/photo/abc%2Fdef?maxwidth=400" {
		t.Fatalf("unexpected photo url %s", got)
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	cache := NewMemoryCache(func() time.Time { return now })
	ctx := context.Background()

	_ = cache.Set(ctx, "k", []byte("v"), time.Hour)
	if body, ok, _ := cache.Get(ctx, "k"); !ok || string(body) != "v" {
		t.Fatalf("expected cache hit")
	}
	now = now.Add(2 * time.Hour)
	if _, ok, _ := cache.Get(ctx, "k"); ok {
		t.Fatalf("expected expired entry")
	}
}

func TestRedisCache(t *testing.T) {
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	defer client.Close()

	cache := NewRedisCache(client)
	ctx := context.Background()

	if _, ok, err := cache.Get(ctx, "missing"); ok || err != nil {
		t.Fatalf("expected clean miss, got %v %v", ok, err)
	}
	if err := cache.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	if body, ok, err := cache.Get(ctx, "k"); !ok || err != nil || string(body) != "v" {
		t.Fatalf("expected hit")
	}
	if !s.Exists("localvibe:places:k") {
		t.Fatalf("expected prefixed key")
	}
	s.FastForward(2 * time.Minute)
	if _, ok, _ := cache.Get(ctx, "k"); ok {
		t.Fatalf("expected expired key")
	}
}

func TestRedisCacheErrorFallsThrough(t *testing.T) {
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	defer client.Close()
	s.Close()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"OK","results":[{"place_id":"x","name":"X"}]}`)
	}))
	defer srv.Close()

	raw, err := newTestClient(srv, NewRedisCache(client)).SearchByCategory(context.Background(), venue.Club, venue.ServiceCenter, 1000)
	if err != nil || len(raw) != 1 {
		t.Fatalf("expected live result despite cache failure: %v", err)
	}
}

func TestRateLimiterWait(t *testing.T) {
	r := NewRateLimiter(50 * time.Millisecond)
	ctx := context.Background()
	if err := r.Wait(ctx); err != nil {
		t.Fatalf("first wait: %v", err)
	}
	start := time.Now()
	if err := r.Wait(ctx); err != nil {
		t.Fatalf("second wait: %v", err)
	}
	if time.Since(start) < 40*time.Millisecond {
		t.Fatalf("expected second call to be delayed")
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if err := r.Wait(cancelled); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancellation, got %v", err)
	}
}
