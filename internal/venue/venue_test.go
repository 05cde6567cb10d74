package venue

import (
	"encoding/json"
	"testing"
)

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		got, ok := ParseCategory(string(c))
		if !ok || got != c {
			t.Fatalf("expected %s to parse", c)
		}
	}
	if _, ok := ParseCategory("restaurant"); ok {
		t.Fatalf("expected unknown category to be rejected")
	}
	if len(Categories()) != 10 {
		t.Fatalf("expected 10 categories")
	}
}

func TestCategoryForTypes(t *testing.T) {
	cases := []struct {
		name string
		tags []string
		want Category
	}{
		{"cafe", []string{"cafe", "food"}, CoffeeShop},
		{"first tag wins", []string{"park", "cafe"}, NatureWalk},
		{"skips unknown tags", []string{"point_of_interest", "gym"}, SportsClub},
		{"shared tag resolves to earliest category", []string{"night_club"}, Bar},
		{"restaurant falls back to bar", []string{"restaurant"}, Bar},
		{"store", []string{"store"}, ThriftStore},
		{"unresolvable", []string{"establishment"}, FallbackCategory},
		{"empty", nil, FallbackCategory},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CategoryForTypes(tc.tags); got != tc.want {
				t.Fatalf("got %s want %s", got, tc.want)
			}
		})
	}
}

func TestSearchTypesCoverEveryCategory(t *testing.T) {
	for _, c := range Categories() {
		if len(SearchTypes(c)) == 0 {
			t.Fatalf("expected search types for %s", c)
		}
		if DefaultImage(c) == "" || DefaultDescription(c, "x") == "" {
			t.Fatalf("expected defaults for %s", c)
		}
		d := EmptyDetails(c)
		if d == nil || d.Category() != c {
			t.Fatalf("expected empty details for %s", c)
		}
	}
}

func TestClampRating(t *testing.T) {
	if ClampRating(7) != MaxRating || ClampRating(-1) != MinRating || ClampRating(3.5) != 3.5 {
		t.Fatalf("unexpected clamp result")
	}
}

func TestFromRawPlaceDefaults(t *testing.T) {
	v := FromRawPlace(RawPlace{ExternalID: "abc"}, Bar, Defaults{})
	if v.ID != "place_abc" {
		t.Fatalf("unexpected id %s", v.ID)
	}
	if v.Name != UnknownName {
		t.Fatalf("expected placeholder name")
	}
	if v.Coordinates != ServiceCenter {
		t.Fatalf("expected service center coordinates")
	}
	if v.Rating != DefaultRating {
		t.Fatalf("expected default rating")
	}
	if v.ImageURL != DefaultImage(Bar) || v.Description == "" {
		t.Fatalf("expected default image and description")
	}
	if _, ok := v.Details.(BarDetails); !ok {
		t.Fatalf("expected bar details")
	}
}

func TestFromRawPlaceDetailsHook(t *testing.T) {
	var gotKey string
	v := FromRawPlace(RawPlace{ExternalID: "abc"}, Club, Defaults{
		Details: func(c Category, key string) Details {
			gotKey = key
			return ClubDetails{Focus: "salsa"}
		},
	})
	if gotKey != "abc" {
		t.Fatalf("expected details keyed by external id, got %q", gotKey)
	}
	if d, ok := v.Details.(ClubDetails); !ok || d.Focus != "salsa" {
		t.Fatalf("expected hook details, got %#v", v.Details)
	}

	v = FromRawPlace(RawPlace{ExternalID: "abc"}, Club, Defaults{
		Details: func(Category, string) Details { return nil },
	})
	if _, ok := v.Details.(ClubDetails); !ok {
		t.Fatalf("expected empty club details when the hook has none")
	}
}

func TestSearchTypesDoNotOverlap(t *testing.T) {
	owner := map[string]Category{}
	for _, c := range Categories() {
		for _, tag := range SearchTypes(c) {
			if prev, ok := owner[tag]; ok {
				t.Fatalf("search type %q used by both %s and %s", tag, prev, c)
			}
			owner[tag] = c
		}
	}
}

func TestFromRawPlaceFields(t *testing.T) {
	rating := 9.0
	center := Coordinates{Latitude: 1, Longitude: 2}
	raw := RawPlace{
		ExternalID: "xyz",
		Name:       " Peixoto ",
		Vicinity:   "11 W Boston St",
		Location:   &Coordinates{Latitude: 33.3031, Longitude: -111.8421},
		Rating:     &rating,
		PhotoRefs:  []string{"ref-1"},
		Summary:    "Single-origin coffee.",
	}
	v := FromRawPlace(raw, CoffeeShop, Defaults{
		Center:   center,
		PhotoURL: func(ref string) string { return "/photo/" + ref },
	})
	if v.Name != "Peixoto" || v.Address != "11 W Boston St" {
		t.Fatalf("unexpected name/address: %q %q", v.Name, v.Address)
	}
	if v.Rating != MaxRating {
		t.Fatalf("expected clamped rating, got %v", v.Rating)
	}
	if v.ImageURL != "/photo/ref-1" || v.Description != "Single-origin coffee." {
		t.Fatalf("unexpected image/description")
	}
	if v.Coordinates.Latitude != 33.3031 {
		t.Fatalf("expected raw coordinates")
	}
}

func TestVenueJSONRoundTrip(t *testing.T) {
	price := 15.0
	in := Venue{
		ID:          "v-1",
		Name:        "Tempe Improv",
		Category:    ComedyVenue,
		Rating:      4.7,
		Coordinates: Coordinates{Latitude: 33.4221, Longitude: -111.9282},
		Details:     ComedyVenueDetails{PerformanceDays: []string{"Friday"}, TicketPrice: &price},
	}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out Venue
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	d, ok := out.Details.(ComedyVenueDetails)
	if !ok || d.TicketPrice == nil || *d.TicketPrice != 15 || d.PerformanceDays[0] != "Friday" {
		t.Fatalf("unexpected details %+v", out.Details)
	}
	if out.Category != ComedyVenue || out.Name != in.Name {
		t.Fatalf("unexpected venue %+v", out)
	}
}

func TestDecodeDetails(t *testing.T) {
	d, err := DecodeDetails(NatureWalk, []byte(`{"difficulty":"hard","length_miles":4.5}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	walk, ok := d.(NatureWalkDetails)
	if !ok || walk.Difficulty != "hard" || walk.LengthMiles != 4.5 {
		t.Fatalf("unexpected details %+v", d)
	}

	d, err = DecodeDetails(Club, nil)
	if err != nil || d.Category() != Club {
		t.Fatalf("expected empty club details")
	}

	if _, err := DecodeDetails("restaurant", nil); err == nil {
		t.Fatalf("expected unknown category error")
	}
	if _, err := DecodeDetails(Bar, []byte(`{"specialties":"nope"}`)); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestNormalizeReplacesMismatchedDetails(t *testing.T) {
	v := Venue{Category: Bar, Details: ClubDetails{}, Rating: 3}.Normalize(ServiceCenter)
	if v.Details.Category() != Bar {
		t.Fatalf("expected bar details")
	}
}
