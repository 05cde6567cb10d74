package seed

import "github.com/Adrianenache82/local-vibe/internal/venue"

func price(p float64) *float64 { return &p }

var builtin = []venue.Venue{
	{
		ID: "seed-bar-1", Name: "The Perch Brewery", Category: venue.Bar,
		Address:     "232 S Wall St, Chandler, AZ 85225",
		Description: "Rooftop brewery with craft beers, cocktails, and a unique atmosphere with rescued tropical birds.",
		Rating:      4.7, Coordinates: venue.Coordinates{Latitude: 33.3008, Longitude: -111.8412},
		Details: venue.BarDetails{
			HappyHour:   &venue.TimeWindow{Start: "15:00", End: "18:00"},
			Specialties: []string{"Craft Beer", "Rooftop"},
		},
	},
	{
		ID: "seed-bar-2", Name: "SanTan Brewing Company", Category: venue.Bar,
		Address:     "8 S San Marcos Pl, Chandler, AZ 85225",
		Description: "Popular local brewery with handcrafted beers and southwestern pub fare in a lively atmosphere.",
		Rating:      4.5, Coordinates: venue.Coordinates{Latitude: 33.3025, Longitude: -111.8417},
		Details: venue.BarDetails{
			HappyHour:   &venue.TimeWindow{Start: "15:00", End: "18:00"},
			Specialties: []string{"Local Brews", "Pub Fare"},
		},
	},
	{
		ID: "seed-coffee-1", Name: "Peixoto Coffee Roasters", Category: venue.CoffeeShop,
		Address:     "11 W Boston St, Chandler, AZ 85225",
		Description: "Family-owned coffee shop serving single-origin beans from their own farm in Brazil.",
		Rating:      4.8, Coordinates: venue.Coordinates{Latitude: 33.3031, Longitude: -111.8421},
		Details:     venue.CoffeeShopDetails{Specialties: []string{"Single Origin", "Pour Over"}, HasWifi: true},
	},
	{
		ID: "seed-coffee-2", Name: "Sip Coffee & Beer House", Category: venue.CoffeeShop,
		Address:     "3617 E Chandler Blvd, Phoenix, AZ 85048",
		Description: "Trendy spot offering craft coffee by day and local beers by night with a relaxed atmosphere.",
		Rating:      4.6, Coordinates: venue.Coordinates{Latitude: 33.3046, Longitude: -111.9908},
		Details:     venue.CoffeeShopDetails{Specialties: []string{"Espresso", "Craft Beer"}, HasWifi: true},
	},
	{
		ID: "seed-art-1", Name: "Chandler Art Walk", Category: venue.ArtFestival,
		Address:     "Downtown Chandler, AZ 85225",
		Description: "Monthly art walk featuring local artists, live music, and food vendors in historic downtown Chandler.",
		Rating:      4.7, Coordinates: venue.Coordinates{Latitude: 33.3022, Longitude: -111.8419},
		Details: venue.ArtFestivalDetails{
			StartDate: "2025-03-21", EndDate: "2025-03-21",
			Artists: []string{"Local Artists"}, Admission: "Free", FamilyFriendly: true,
		},
	},
	{
		ID: "seed-art-2", Name: "Chandler Craft Spirits Festival", Category: venue.ArtFestival,
		Address:     "Dr. AJ Chandler Park, 178 E Commonwealth Ave, Chandler, AZ 85225",
		Description: "Annual festival celebrating craft spirits, cocktails, and local food with live entertainment.",
		Rating:      4.6, Coordinates: venue.Coordinates{Latitude: 33.3035, Longitude: -111.8401},
		Details: venue.ArtFestivalDetails{
			StartDate: "2025-04-12", EndDate: "2025-04-12",
			Artists: []string{"Local Distillers"}, Admission: "$45",
		},
	},
	{
		ID: "seed-comedy-1", Name: "Tempe Improv", Category: venue.ComedyVenue,
		Address:     "930 E University Dr, Tempe, AZ 85281",
		Description: "Premier comedy club featuring national headliners in an intimate setting with full food and drink service.",
		Rating:      4.7, Coordinates: venue.Coordinates{Latitude: 33.4221, Longitude: -111.9282},
		Details: venue.ComedyVenueDetails{
			PerformanceDays: []string{"Thursday", "Friday", "Saturday", "Sunday"},
			Comedians:       []string{}, TicketPrice: price(25), AgeRestriction: "18+",
		},
	},
	{
		ID: "seed-comedy-2", Name: "Stand Up Live Phoenix", Category: venue.ComedyVenue,
		Address:     "50 W Jefferson St, Phoenix, AZ 85003",
		Description: "Upscale comedy theater in downtown Phoenix featuring top-tier comedians and a full restaurant and bar.",
		Rating:      4.6, Coordinates: venue.Coordinates{Latitude: 33.4484, Longitude: -112.0740},
		Details: venue.ComedyVenueDetails{
			PerformanceDays: []string{"Wednesday", "Thursday", "Friday", "Saturday"},
			Comedians:       []string{}, TicketPrice: price(30), AgeRestriction: "21+",
		},
	},
	{
		ID: "seed-nature-1", Name: "Veterans Oasis Park", Category: venue.NatureWalk,
		Address:     "4050 E Chandler Heights Rd, Chandler, AZ 85249",
		Description: "A 113-acre park featuring a 5-acre lake, wetlands, and desert habitats with 4.5 miles of trails for hiking and biking.",
		Rating:      4.8, Coordinates: venue.Coordinates{Latitude: 33.2367, Longitude: -111.7868},
		Details: venue.NatureWalkDetails{
			Difficulty: "easy", LengthMiles: 4.5,
			Features: []string{"Lake", "Wetlands", "Bird Watching"}, BestSeason: "Winter",
		},
	},
	{
		ID: "seed-nature-2", Name: "Paseo Vista Recreation Area", Category: venue.NatureWalk,
		Address:     "3850 S McQueen Rd, Chandler, AZ 85286",
		Description: "Former landfill transformed into a 64-acre recreation area with hiking trails, disc golf course, and panoramic views of the East Valley.",
		Rating:      4.6, Coordinates: venue.Coordinates{Latitude: 33.2720, Longitude: -111.8411},
		Details: venue.NatureWalkDetails{
			Difficulty: "moderate", LengthMiles: 2.2,
			Features: []string{"Disc Golf", "Mountain Views"}, BestSeason: "Fall",
		},
	},
	{
		ID: "seed-music-1", Name: "The Marquee Theatre", Category: venue.MusicVenue,
		Address:     "730 N Mill Ave, Tempe, AZ 85281",
		Description: "Popular mid-sized concert venue hosting national touring acts across all genres in an intimate setting.",
		Rating:      4.6, Coordinates: venue.Coordinates{Latitude: 33.4356, Longitude: -111.9431},
		Details: venue.MusicVenueDetails{
			Genres: []string{"Rock", "Hip Hop", "Electronic"}, Capacity: 1500, UpcomingShows: []string{},
		},
	},
	{
		ID: "seed-music-2", Name: "Chandler Center for the Arts", Category: venue.MusicVenue,
		Address:     "250 N Arizona Ave, Chandler, AZ 85225",
		Description: "Premier performing arts venue featuring concerts, theater productions, and cultural performances in downtown Chandler.",
		Rating:      4.8, Coordinates: venue.Coordinates{Latitude: 33.3052, Longitude: -111.8413},
		Details: venue.MusicVenueDetails{
			Genres: []string{"Classical", "Jazz", "Folk"}, Capacity: 1500, UpcomingShows: []string{},
		},
	},
	{
		ID: "seed-thrift-1", Name: "Goodwill Chandler", Category: venue.ThriftStore,
		Address:     "2075 W Chandler Blvd, Chandler, AZ 85224",
		Description: "Large thrift store offering a wide selection of clothing, furniture, books, and household items at affordable prices.",
		Rating:      4.2, Coordinates: venue.Coordinates{Latitude: 33.3063, Longitude: -111.8742},
		Details: venue.ThriftStoreDetails{
			Specialties: []string{"Clothing", "Furniture", "Books"}, PriceRange: "$",
			CharitySupported: "Goodwill", HasVintageItems: true,
		},
	},
	{
		ID: "seed-thrift-2", Name: "Buffalo Exchange Tempe", Category: venue.ThriftStore,
		Address:     "227 W University Dr, Tempe, AZ 85281",
		Description: "Trendy resale shop specializing in vintage and contemporary fashion with a curated selection of clothing and accessories.",
		Rating:      4.6, Coordinates: venue.Coordinates{Latitude: 33.4219, Longitude: -111.9419},
		Details: venue.ThriftStoreDetails{
			Specialties: []string{"Vintage Clothing", "Accessories"}, PriceRange: "$$", HasVintageItems: true,
		},
	},
	{
		ID: "seed-social-1", Name: "Chandler Toastmasters Club", Category: venue.SocialClub,
		Address:     "125 E Commonwealth Ave, Chandler, AZ 85225",
		Description: "Public speaking and leadership development club that meets weekly to help members improve communication skills in a supportive environment.",
		Rating:      4.8, Coordinates: venue.Coordinates{Latitude: 33.3033, Longitude: -111.8398},
		Details: venue.SocialClubDetails{
			Activities: []string{"Public Speaking", "Leadership"}, MembershipFee: price(60),
			AgeGroup: "Adults", MeetingSchedule: "Every Tuesday evening", MembershipRequired: true,
		},
	},
	{
		ID: "seed-social-2", Name: "East Valley Book Club", Category: venue.SocialClub,
		Address:     "775 N Greenfield Rd, Gilbert, AZ 85234",
		Description: "Community book club that meets monthly to discuss selected books across various genres in a friendly, inclusive atmosphere.",
		Rating:      4.7, Coordinates: venue.Coordinates{Latitude: 33.3683, Longitude: -111.7389},
		Details: venue.SocialClubDetails{
			Activities: []string{"Book Discussion"}, AgeGroup: "All ages",
			MeetingSchedule: "First Thursday of the month",
		},
	},
	{
		ID: "seed-sports-1", Name: "Chandler Tennis Club", Category: venue.SportsClub,
		Address:     "2250 S McQueen Rd, Chandler, AZ 85286",
		Description: "Premier tennis facility with multiple courts, professional instruction, leagues, and tournaments for all skill levels.",
		Rating:      4.7, Coordinates: venue.Coordinates{Latitude: 33.2784, Longitude: -111.8411},
		Details: venue.SportsClubDetails{
			Sports: []string{"Tennis"}, Facilities: []string{"Courts", "Pro Shop"},
			MembershipFee: price(75), Leagues: []string{"Adult Rec", "Junior"}, OpenToPublic: true,
		},
	},
	{
		ID: "seed-sports-2", Name: "Ocotillo Golf Club", Category: venue.SportsClub,
		Address:     "3751 S Clubhouse Dr, Chandler, AZ 85248",
		Description: "Upscale 27-hole golf course with lush landscaping, water features, and a full-service clubhouse in south Chandler.",
		Rating:      4.8, Coordinates: venue.Coordinates{Latitude: 33.2484, Longitude: -111.8311},
		Details: venue.SportsClubDetails{
			Sports: []string{"Golf"}, Facilities: []string{"Clubhouse", "Driving Range"},
			Leagues: []string{"Men's League"}, OpenToPublic: true, EquipmentRental: true,
		},
	},
	{
		ID: "seed-club-1", Name: "Chandler Photography Club", Category: venue.Club,
		Address:     "125 E Commonwealth Ave, Chandler, AZ 85225",
		Description: "Community of photography enthusiasts who meet to share techniques, critique work, and organize photo walks and exhibitions.",
		Rating:      4.7, Coordinates: venue.Coordinates{Latitude: 33.3033, Longitude: -111.8398},
		Details: venue.ClubDetails{
			Focus: "Photography", Activities: []string{"Photo Walks", "Critiques"},
			Schedule: "Second Monday of the month", Amenities: []string{"Studio Space"},
		},
	},
	{
		ID: "seed-club-2", Name: "Desert Botanical Garden Club", Category: venue.Club,
		Address:     "1201 N Galvin Pkwy, Phoenix, AZ 85008",
		Description: "Group dedicated to desert plant conservation, education, and appreciation with regular meetings, workshops, and garden tours.",
		Rating:      4.9, Coordinates: venue.Coordinates{Latitude: 33.4628, Longitude: -111.9439},
		Details: venue.ClubDetails{
			Focus: "Gardening", Activities: []string{"Workshops", "Garden Tours"},
			Schedule: "Monthly", Amenities: []string{"Garden Access"},
		},
	},
}

// Builtin returns the built-in fixtures for a category.
func Builtin(category venue.Category) []venue.Venue {
	var out []venue.Venue
	for _, v := range builtin {
		if v.Category == category {
			v.ImageURL = venue.DefaultImage(category)
			out = append(out, v)
		}
	}
	return out
}
