package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Adrianenache82/local-vibe/internal/config"
	"github.com/Adrianenache82/local-vibe/internal/venue"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func TestHealthRoute(t *testing.T) {
	s := NewServer(config.Config{ServerPort: ":0"}, nil, nil)

	req := httptest.NewRequest("GET", "/health", nil)
	resp, err := s.App.Test(req)
	if err != nil {
		t.Fatalf("test request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200 status")
	}
}

func TestRoutesWithoutExternalServices(t *testing.T) {
	s := NewServer(config.Config{ServerPort: ":0", GeneratorSeed: 7}, nil, nil)

	resp, err := s.App.Test(httptest.NewRequest(http.MethodGet, "/venues/", nil), -1)
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("venues status: %v", err)
	}
	var venues []venue.Venue
	if err := json.NewDecoder(resp.Body).Decode(&venues); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(venues) != 500 {
		t.Fatalf("expected 500 venues, got %d", len(venues))
	}

	cases := []struct {
		method string
		target string
		status int
	}{
		{http.MethodGet, "/catalog/status", http.StatusOK},
		{http.MethodGet, "/venues/category/bar", http.StatusOK},
		{http.MethodGet, "/venues/unknown-id", http.StatusNotFound},
		{http.MethodGet, "/api/places/photo/ref", http.StatusNotFound},
		{http.MethodGet, "/stream/ws/catalog", http.StatusUpgradeRequired},
		{http.MethodGet, "/seeds/?category=club", http.StatusOK},
		{http.MethodDelete, "/seeds/x", http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		resp, err := s.App.Test(httptest.NewRequest(tc.method, tc.target, nil), -1)
		if err != nil || resp.StatusCode != tc.status {
			t.Fatalf("%s %s: expected %d, got %v (%v)", tc.method, tc.target, tc.status, resp.StatusCode, err)
		}
	}
}

func TestNewServerWithRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	s := NewServer(config.Config{ServerPort: ":0"}, nil, rdb)
	defer s.Stream.Close()
	if s.Places == nil || s.Seeds == nil || s.Catalog == nil || s.Updater == nil {
		t.Fatalf("expected components wired")
	}
}

func TestNewLogger(t *testing.T) {
	if NewLogger("debug").GetLevel() != zerolog.DebugLevel {
		t.Fatalf("expected debug level")
	}
	if NewLogger("nonsense").GetLevel() != zerolog.InfoLevel {
		t.Fatalf("expected info fallback")
	}
	if NewLogger("").GetLevel() != zerolog.InfoLevel {
		t.Fatalf("expected info default")
	}
}

func TestPhotoMount(t *testing.T) {
	if photoMount("/img") != "/img" || photoMount("") != "/api/places" || photoMount("https://cdn") != "/api/places" {
		t.Fatalf("unexpected photo mount")
	}
}

func TestSeedFixturesUseConfiguredCenter(t *testing.T) {
	cfg := config.Config{ServerPort: ":0", CenterLat: 33.4484, CenterLng: -112.074}
	s := NewServer(cfg, nil, nil)

	resp, err := s.App.Test(httptest.NewRequest(http.MethodGet, "/seeds/?category=bar", nil), -1)
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("seeds status: %v", err)
	}
	if serviceCenter(cfg) != (venue.Coordinates{Latitude: 33.4484, Longitude: -112.074}) {
		t.Fatalf("unexpected center %+v", serviceCenter(cfg))
	}
	if serviceCenter(config.Config{}) != venue.ServiceCenter {
		t.Fatalf("expected service center default")
	}
}
