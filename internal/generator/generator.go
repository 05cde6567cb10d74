package generator

import (
	"errors"
	"fmt"
	"hash/fnv"
	"math"
	"math/rand"
	"strings"
	"sync"

	"github.com/Adrianenache82/local-vibe/internal/venue"

	"github.com/google/uuid"
)

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrInvalidCount    = errors.New("count must not be negative")
)

// Spread is the maximum offset, in degrees, of generated coordinates from the center.
const Spread = 0.08

// Generator produces synthetic venues from an injected random source, so a
// given seed always yields the same sequence. It is safe for concurrent use.
type Generator struct {
	mu     sync.Mutex
	rng    *rand.Rand
	center venue.Coordinates
}

func New(rng *rand.Rand, center venue.Coordinates) *Generator {
	if center.IsZero() {
		center = venue.ServiceCenter
	}
	return &Generator{rng: rng, center: center}
}

func NewSeeded(seed int64, center venue.Coordinates) *Generator {
	return New(rand.New(rand.NewSource(seed)), center)
}

func (g *Generator) Generate(category venue.Category, count int) ([]venue.Venue, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	if count < 0 {
		return nil, ErrInvalidCount
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	used := make(map[string]struct{}, count)
	out := make([]venue.Venue, 0, count)
	for i := 0; i < count; i++ {
		v, err := g.one(category, used)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (g *Generator) one(category venue.Category, used map[string]struct{}) (venue.Venue, error) {
	id, err := uuid.NewRandomFromReader(g.rng)
	if err != nil {
		return venue.Venue{}, fmt.Errorf("generate id: %w", err)
	}
	name := g.name(category, used)
	return venue.Venue{
		ID:          id.String(),
		Name:        name,
		Address:     g.address(),
		Description: fmt.Sprintf(g.pick(descriptions[category]), name),
		ImageURL:    venue.DefaultImage(category),
		Rating:      round(3.5+g.rng.Float64()*1.5, 1),
		Category:    category,
		Coordinates: venue.Coordinates{
			Latitude:  round(g.center.Latitude+(g.rng.Float64()*2-1)*Spread, 6),
			Longitude: round(g.center.Longitude+(g.rng.Float64()*2-1)*Spread, 6),
		},
		Details: g.details(category),
	}, nil
}

func (g *Generator) name(category venue.Category, used map[string]struct{}) string {
	var name string
	for attempt := 0; attempt < 20; attempt++ {
		parts := []string{g.pick(prefixes), g.pick(nouns[category])}
		if s := g.pick(suffixes); s != "" {
			parts = append(parts, s)
		}
		name = strings.Join(parts, " ")
		if _, taken := used[name]; !taken {
			used[name] = struct{}{}
			return name
		}
	}
	name = fmt.Sprintf("%s No. %d", name, len(used)+1)
	used[name] = struct{}{}
	return name
}

func (g *Generator) address() string {
	city := cities[g.rng.Intn(len(cities))]
	return fmt.Sprintf("%d %s %s, %s, AZ %s",
		100+g.rng.Intn(9900), g.pick(directions), g.pick(streets), city.name, g.pick(city.zips))
}

// DetailsFor derives category details from key, so a live place keeps the
// same details across refreshes.
func DetailsFor(category venue.Category, key string) venue.Details {
	if !category.Valid() {
		return nil
	}
	h := fnv.New64a()
	_, _ = h.Write([]byte(key))
	g := New(rand.New(rand.NewSource(int64(h.Sum64()))), venue.ServiceCenter)
	return g.details(category)
}

func (g *Generator) details(category venue.Category) venue.Details {
	switch category {
	case venue.Bar:
		d := venue.BarDetails{Specialties: g.pickN(specialties[venue.Bar], 2+g.rng.Intn(2))}
		if g.chance(0.7) {
			start := 15 + g.rng.Intn(3)
			d.HappyHour = &venue.TimeWindow{
				Start: fmt.Sprintf("%02d:00", start),
				End:   fmt.Sprintf("%02d:00", start+2),
			}
		}
		return d
	case venue.CoffeeShop:
		return venue.CoffeeShopDetails{
			Specialties: g.pickN(specialties[venue.CoffeeShop], 2+g.rng.Intn(2)),
			HasWifi:     g.chance(0.85),
		}
	case venue.ArtFestival:
		month := 1 + g.rng.Intn(12)
		day := 1 + g.rng.Intn(25)
		return venue.ArtFestivalDetails{
			StartDate:      fmt.Sprintf("2025-%02d-%02d", month, day),
			EndDate:        fmt.Sprintf("2025-%02d-%02d", month, day+2),
			Artists:        g.pickN(artists, 2+g.rng.Intn(3)),
			Admission:      g.pick([]string{"Free", "$5", "$10", "$15"}),
			FamilyFriendly: g.chance(0.8),
		}
	case venue.ComedyVenue:
		return venue.ComedyVenueDetails{
			PerformanceDays: g.pickN(weekdays[3:], 2+g.rng.Intn(2)),
			Comedians:       g.pickN(performers, 2),
			TicketPrice:     g.price(10, 35),
			AgeRestriction:  g.pick([]string{"18+", "21+", "All ages"}),
		}
	case venue.NatureWalk:
		return venue.NatureWalkDetails{
			Difficulty:  g.pick(difficulties),
			LengthMiles: round(0.5+g.rng.Float64()*7.5, 1),
			Features:    g.pickN(trailFeatures, 2+g.rng.Intn(2)),
			BestSeason:  g.pick(seasons),
		}
	case venue.MusicVenue:
		return venue.MusicVenueDetails{
			Genres:        g.pickN(genres, 2+g.rng.Intn(2)),
			Capacity:      100 + g.rng.Intn(20)*50,
			UpcomingShows: g.pickN(performers, 1+g.rng.Intn(2)),
			TicketPrice:   g.price(15, 60),
		}
	case venue.ThriftStore:
		d := venue.ThriftStoreDetails{
			Specialties:     g.pickN(specialties[venue.ThriftStore], 2+g.rng.Intn(2)),
			PriceRange:      g.pick(priceRanges[:2]),
			HasVintageItems: g.chance(0.6),
		}
		if g.chance(0.5) {
			d.CharitySupported = g.pick(charities)
		}
		return d
	case venue.SocialClub:
		d := venue.SocialClubDetails{
			Activities:         g.pickN(activities, 2+g.rng.Intn(2)),
			AgeGroup:           g.pick([]string{"All ages", "21+", "Adults", "Seniors"}),
			MeetingSchedule:    fmt.Sprintf("Every %s evening", g.pick(weekdays)),
			MembershipRequired: g.chance(0.4),
		}
		if d.MembershipRequired {
			d.MembershipFee = g.price(20, 120)
		}
		return d
	case venue.SportsClub:
		return venue.SportsClubDetails{
			Sports:          g.pickN(sports, 1+g.rng.Intn(3)),
			Facilities:      g.pickN(facilities, 2+g.rng.Intn(2)),
			MembershipFee:   g.price(25, 150),
			Leagues:         g.pickN([]string{"Adult Rec", "Youth", "Competitive", "Co-ed"}, 1+g.rng.Intn(2)),
			OpenToPublic:    g.chance(0.6),
			EquipmentRental: g.chance(0.5),
		}
	case venue.Club:
		return venue.ClubDetails{
			Focus:        g.pick(clubFocus),
			Activities:   g.pickN(activities, 2),
			Schedule:     fmt.Sprintf("%s and %s nights", g.pick(weekdays[3:5]), g.pick(weekdays[5:])),
			Requirements: g.pick([]string{"", "21+ with ID", "Membership card"}),
			Amenities:    g.pickN(amenities, 2+g.rng.Intn(2)),
		}
	}
	return venue.EmptyDetails(category)
}

func (g *Generator) pick(options []string) string {
	return options[g.rng.Intn(len(options))]
}

// pickN returns n distinct options in random order.
func (g *Generator) pickN(options []string, n int) []string {
	if n > len(options) {
		n = len(options)
	}
	out := make([]string, 0, n)
	for _, i := range g.rng.Perm(len(options))[:n] {
		out = append(out, options[i])
	}
	return out
}

func (g *Generator) chance(p float64) bool {
	return g.rng.Float64() < p
}

func (g *Generator) price(lo, hi int) *float64 {
	p := float64(lo + g.rng.Intn(hi-lo+1))
	return &p
}

func round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
