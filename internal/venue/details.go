package venue

import (
	"encoding/json"
	"fmt"
)

// Details holds the category-specific fields of a venue. The set of
// implementations is closed; each reports the category it belongs to.
type Details interface {
	Category() Category
	sealed()
}

type TimeWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type BarDetails struct {
	HappyHour   *TimeWindow `json:"happy_hour,omitempty"`
	Specialties []string    `json:"specialties"`
}

type CoffeeShopDetails struct {
	Specialties []string `json:"specialties"`
	HasWifi     bool     `json:"has_wifi"`
}

type ArtFestivalDetails struct {
	StartDate      string   `json:"start_date"`
	EndDate        string   `json:"end_date"`
	Artists        []string `json:"artists"`
	Admission      string   `json:"admission"`
	FamilyFriendly bool     `json:"family_friendly"`
}

type ComedyVenueDetails struct {
	PerformanceDays []string `json:"performance_days"`
	Comedians       []string `json:"comedians"`
	TicketPrice     *float64 `json:"ticket_price,omitempty"`
	AgeRestriction  string   `json:"age_restriction,omitempty"`
}

type NatureWalkDetails struct {
	Difficulty  string   `json:"difficulty"`
	LengthMiles float64  `json:"length_miles"`
	Features    []string `json:"features"`
	BestSeason  string   `json:"best_season,omitempty"`
}

type MusicVenueDetails struct {
	Genres        []string `json:"genres"`
	Capacity      int      `json:"capacity,omitempty"`
	UpcomingShows []string `json:"upcoming_shows"`
	TicketPrice   *float64 `json:"ticket_price,omitempty"`
}

type ThriftStoreDetails struct {
	Specialties      []string `json:"specialties"`
	PriceRange       string   `json:"price_range"`
	CharitySupported string   `json:"charity_supported,omitempty"`
	HasVintageItems  bool     `json:"has_vintage_items"`
}

type SocialClubDetails struct {
	Activities         []string `json:"activities"`
	MembershipFee      *float64 `json:"membership_fee,omitempty"`
	AgeGroup           string   `json:"age_group,omitempty"`
	MeetingSchedule    string   `json:"meeting_schedule"`
	MembershipRequired bool     `json:"membership_required"`
}

type SportsClubDetails struct {
	Sports          []string `json:"sports"`
	Facilities      []string `json:"facilities"`
	MembershipFee   *float64 `json:"membership_fee,omitempty"`
	Leagues         []string `json:"leagues"`
	OpenToPublic    bool     `json:"open_to_public"`
	EquipmentRental bool     `json:"equipment_rental"`
}

type ClubDetails struct {
	Focus         string   `json:"focus"`
	Activities    []string `json:"activities"`
	MembershipFee *float64 `json:"membership_fee,omitempty"`
	Schedule      string   `json:"schedule"`
	Requirements  string   `json:"requirements,omitempty"`
	Amenities     []string `json:"amenities"`
}

func (BarDetails) Category() Category         { return Bar }
func (CoffeeShopDetails) Category() Category  { return CoffeeShop }
func (ArtFestivalDetails) Category() Category { return ArtFestival }
func (ComedyVenueDetails) Category() Category { return ComedyVenue }
func (NatureWalkDetails) Category() Category  { return NatureWalk }
func (MusicVenueDetails) Category() Category  { return MusicVenue }
func (ThriftStoreDetails) Category() Category { return ThriftStore }
func (SocialClubDetails) Category() Category  { return SocialClub }
func (SportsClubDetails) Category() Category  { return SportsClub }
func (ClubDetails) Category() Category        { return Club }

func (BarDetails) sealed()         {}
func (CoffeeShopDetails) sealed()  {}
func (ArtFestivalDetails) sealed() {}
func (ComedyVenueDetails) sealed() {}
func (NatureWalkDetails) sealed()  {}
func (MusicVenueDetails) sealed()  {}
func (ThriftStoreDetails) sealed() {}
func (SocialClubDetails) sealed()  {}
func (SportsClubDetails) sealed()  {}
func (ClubDetails) sealed()        {}

// EmptyDetails returns the zero variant for a category, or nil if the category is unknown.
func EmptyDetails(c Category) Details {
	switch c {
	case Bar:
		return BarDetails{Specialties: []string{}}
	case CoffeeShop:
		return CoffeeShopDetails{Specialties: []string{}}
	case ArtFestival:
		return ArtFestivalDetails{Artists: []string{}}
	case ComedyVenue:
		return ComedyVenueDetails{PerformanceDays: []string{}, Comedians: []string{}}
	case NatureWalk:
		return NatureWalkDetails{Difficulty: "easy", Features: []string{}}
	case MusicVenue:
		return MusicVenueDetails{Genres: []string{}, UpcomingShows: []string{}}
	case ThriftStore:
		return ThriftStoreDetails{Specialties: []string{}, PriceRange: "$"}
	case SocialClub:
		return SocialClubDetails{Activities: []string{}}
	case SportsClub:
		return SportsClubDetails{Sports: []string{}, Facilities: []string{}, Leagues: []string{}}
	case Club:
		return ClubDetails{Activities: []string{}, Amenities: []string{}}
	}
	return nil
}

// DecodeDetails decodes the JSON form of a category's variant. Empty input yields EmptyDetails.
func DecodeDetails(c Category, raw []byte) (Details, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("unknown category %q", c)
	}
	if len(raw) == 0 || string(raw) == "null" {
		return EmptyDetails(c), nil
	}

	var (
		d   Details
		err error
	)
	switch c {
	case Bar:
		var v BarDetails
		err = json.Unmarshal(raw, &v)
		d = v
	case CoffeeShop:
		var v CoffeeShopDetails
		err = json.Unmarshal(raw, &v)
		d = v
	case ArtFestival:
		var v ArtFestivalDetails
		err = json.Unmarshal(raw, &v)
		d = v
	case ComedyVenue:
		var v ComedyVenueDetails
		err = json.Unmarshal(raw, &v)
		d = v
	case NatureWalk:
		var v NatureWalkDetails
		err = json.Unmarshal(raw, &v)
		d = v
	case MusicVenue:
		var v MusicVenueDetails
		err = json.Unmarshal(raw, &v)
		d = v
	case ThriftStore:
		var v ThriftStoreDetails
		err = json.Unmarshal(raw, &v)
		d = v
	case SocialClub:
		var v SocialClubDetails
		err = json.Unmarshal(raw, &v)
		d = v
	case SportsClub:
		var v SportsClubDetails
		err = json.Unmarshal(raw, &v)
		d = v
	case Club:
		var v ClubDetails
		err = json.Unmarshal(raw, &v)
		d = v
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s details: %w", c, err)
	}
	return d, nil
}
