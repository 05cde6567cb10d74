package venue

import (
	"hash/fnv"
	"strings"
)

// LivePrefix marks ids of venues that came from the live places source.
const LivePrefix = "place_"

// RawPlace is a place record as returned by an external places source.
type RawPlace struct {
	ExternalID       string
	Name             string
	FormattedAddress string
	Vicinity         string
	Location         *Coordinates
	Rating           *float64
	PhotoRefs        []string
	Types            []string
	Summary          string
}

// Defaults supplies the values substituted for missing raw fields. Details,
// when set, fills category details keyed by the external id.
type Defaults struct {
	Center   Coordinates
	PhotoURL func(ref string) string
	Details  func(c Category, key string) Details
}

var defaultImages = map[Category]string{
	Bar:         "https://images.unsplash.com/photo-1514933651103-005eec06c04b?auto=format&fit=crop&w=1350&q=80",
	CoffeeShop:  "https://images.unsplash.com/photo-1501339847302-ac426a4a7cbb?auto=format&fit=crop&w=1350&q=80",
	ArtFestival: "https://images.unsplash.com/photo-1459749411175-04bf5292ceea?auto=format&fit=crop&w=1350&q=80",
	ComedyVenue: "https://images.unsplash.com/photo-1527224857830-43a7acc85260?auto=format&fit=crop&w=1350&q=80",
	NatureWalk:  "https://images.unsplash.com/photo-1500964757637-c85e8a162699?auto=format&fit=crop&w=1350&q=80",
	MusicVenue:  "https://images.unsplash.com/photo-1501386761578-eac5c94b800a?auto=format&fit=crop&w=1350&q=80",
	ThriftStore: "https://images.unsplash.com/photo-1567401893414-76b7b1e5a7a5?auto=format&fit=crop&w=1350&q=80",
	SocialClub:  "https://images.unsplash.com/photo-1475721027785-f74eccf877e2?auto=format&fit=crop&w=1350&q=80",
	SportsClub:  "https://images.unsplash.com/photo-1595435934249-5df7ed86e1c0?auto=format&fit=crop&w=1350&q=80",
	Club:        "https://images.unsplash.com/photo-1452587925148-ce544e77e70d?auto=format&fit=crop&w=1350&q=80",
}

var defaultDescriptions = map[Category][]string{
	Bar: {
		"A local bar with a relaxed atmosphere and a solid drink list.",
		"Neighborhood watering hole serving craft beer and cocktails.",
	},
	CoffeeShop: {
		"Cozy coffee shop serving espresso drinks and pastries.",
		"Local cafe with house-roasted coffee and plenty of seating.",
	},
	ArtFestival: {
		"Art space showcasing work from local and regional artists.",
		"Gallery and event venue hosting rotating exhibitions.",
	},
	ComedyVenue: {
		"Live comedy with stand-up and improv shows throughout the week.",
		"Intimate venue for comedy nights and open mics.",
	},
	NatureWalk: {
		"Outdoor area with walking trails and desert scenery.",
		"Park with paths for walking, running and bird watching.",
	},
	MusicVenue: {
		"Live music venue hosting local and touring acts.",
		"Performance space with regular concerts across genres.",
	},
	ThriftStore: {
		"Secondhand store with clothing, furniture and home goods.",
		"Resale shop with vintage finds and everyday bargains.",
	},
	SocialClub: {
		"Community gathering place with regular meetups and events.",
		"Social club offering activities for members and guests.",
	},
	SportsClub: {
		"Sports facility with courts, classes and league play.",
		"Fitness and recreation club open to all skill levels.",
	},
	Club: {
		"Club hosting themed nights, dancing and special events.",
		"Members club with regular meetings and workshops.",
	},
}

func DefaultImage(c Category) string {
	return defaultImages[c]
}

// DefaultDescription picks a category description deterministically from key.
func DefaultDescription(c Category, key string) string {
	options := defaultDescriptions[c]
	if len(options) == 0 {
		return ""
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return options[h.Sum32()%uint32(len(options))]
}

// FromRawPlace translates a raw record into a venue of the given category.
// Missing fields are replaced with defaults rather than rejected.
func FromRawPlace(raw RawPlace, category Category, d Defaults) Venue {
	v := Venue{
		ID:       LivePrefix + raw.ExternalID,
		Name:     strings.TrimSpace(raw.Name),
		Address:  raw.FormattedAddress,
		Category: category,
		Rating:   DefaultRating,
		Details:  EmptyDetails(category),
	}
	if d.Details != nil {
		if details := d.Details(category, raw.ExternalID); details != nil {
			v.Details = details
		}
	}
	if v.Address == "" {
		v.Address = raw.Vicinity
	}
	if raw.Location != nil {
		v.Coordinates = *raw.Location
	}
	if raw.Rating != nil {
		v.Rating = *raw.Rating
	}
	if len(raw.PhotoRefs) > 0 && raw.PhotoRefs[0] != "" && d.PhotoURL != nil {
		v.ImageURL = d.PhotoURL(raw.PhotoRefs[0])
	} else {
		v.ImageURL = DefaultImage(category)
	}
	if summary := strings.TrimSpace(raw.Summary); summary != "" {
		v.Description = summary
	} else {
		v.Description = DefaultDescription(category, raw.ExternalID)
	}
	return v.Normalize(d.Center)
}
