package geo

import "testing"

func TestHaversineKm(t *testing.T) {
	// Chandler (33.3062, -111.8413) to Tempe (33.4255, -111.9400) ~ 16 km
	d := HaversineKm(33.3062, -111.8413, 33.4255, -111.9400)
	if d < 14 || d > 18 {
		t.Fatalf("unexpected distance: %v", d)
	}
}

func TestHaversineKmSamePoint(t *testing.T) {
	if d := HaversineKm(33.3, -111.8, 33.3, -111.8); d != 0 {
		t.Fatalf("expected zero distance, got %v", d)
	}
}
