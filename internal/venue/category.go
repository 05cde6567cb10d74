package venue

type Category string

const (
	Bar         Category = "bar"
	CoffeeShop  Category = "coffee-shop"
	ArtFestival Category = "art-festival"
	ComedyVenue Category = "comedy-venue"
	NatureWalk  Category = "nature-walk"
	MusicVenue  Category = "music-venue"
	ThriftStore Category = "thrift-store"
	SocialClub  Category = "social-club"
	SportsClub  Category = "sports-club"
	Club        Category = "club"
)

// FallbackCategory is assigned when no type tag resolves.
const FallbackCategory = Bar

var categories = []Category{
	Bar, CoffeeShop, ArtFestival, ComedyVenue, NatureWalk,
	MusicVenue, ThriftStore, SocialClub, SportsClub, Club,
}

// Categories returns the closed category set in canonical order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

func ParseCategory(s string) (Category, bool) {
	for _, c := range categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

func (c Category) Valid() bool {
	_, ok := ParseCategory(string(c))
	return ok
}

// typeTags lists, per category, the external place type tags that resolve to it.
// A tag claimed by several categories resolves to the first one in canonical order.
var typeTags = map[Category][]string{
	Bar:         {"bar", "pub", "night_club", "restaurant", "food"},
	CoffeeShop:  {"cafe", "coffee_shop", "bakery"},
	ArtFestival: {"art_gallery", "museum", "tourist_attraction"},
	ComedyVenue: {"comedy_club", "theater", "movie_theater"},
	NatureWalk:  {"park", "natural_feature", "trail", "campground"},
	MusicVenue:  {"music_venue", "concert_hall", "performing_arts_theater"},
	ThriftStore: {"thrift_store", "second_hand_store", "clothing_store", "store", "shopping_mall"},
	SocialClub:  {"social_club", "community_center", "club"},
	SportsClub:  {"gym", "sports_club", "stadium", "fitness_center"},
	Club:        {"dance_club", "entertainment"},
}

var tagIndex = buildTagIndex()

func buildTagIndex() map[string]Category {
	idx := make(map[string]Category)
	for _, c := range categories {
		for _, tag := range typeTags[c] {
			if _, taken := idx[tag]; !taken {
				idx[tag] = c
			}
		}
	}
	return idx
}

var searchTypes = map[Category][]string{
	Bar:         {"bar", "pub"},
	CoffeeShop:  {"cafe", "bakery"},
	ArtFestival: {"art_gallery", "museum", "tourist_attraction"},
	ComedyVenue: {"comedy_club", "movie_theater"},
	NatureWalk:  {"park", "campground"},
	MusicVenue:  {"music_venue", "concert_hall", "performing_arts_theater"},
	ThriftStore: {"second_hand_store", "clothing_store"},
	SocialClub:  {"community_center"},
	SportsClub:  {"gym", "stadium"},
	Club:        {"night_club", "dance_club"},
}

// SearchTypes returns the type tags used to query a live source for a category.
func SearchTypes(c Category) []string {
	tags := searchTypes[c]
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}

// CategoryForTypes resolves free-text type tags; the first tag found in the table wins.
func CategoryForTypes(tags []string) Category {
	for _, tag := range tags {
		if c, ok := tagIndex[tag]; ok {
			return c
		}
	}
	return FallbackCategory
}
