package generator

import "github.com/Adrianenache82/local-vibe/internal/venue"

var prefixes = []string{
	"Desert", "Saguaro", "Copper", "Mesquite", "Sonoran", "Ocotillo",
	"Canyon", "Sunset", "Cactus", "Agave", "Mirage", "Roadrunner",
	"Javelina", "Camelback", "Superstition", "Palo Verde", "Monsoon", "Adobe",
}

var nouns = map[venue.Category][]string{
	venue.Bar:         {"Tap House", "Saloon", "Brewing", "Taproom", "Lounge", "Cantina", "Alehouse"},
	venue.CoffeeShop:  {"Coffee", "Roasters", "Espresso Bar", "Cafe", "Bean Co.", "Brew Lab"},
	venue.ArtFestival: {"Art Walk", "Arts Festival", "Gallery Night", "Craft Fair", "Mural Fest", "Art Market"},
	venue.ComedyVenue: {"Comedy Club", "Improv", "Laugh Lounge", "Comedy Theater", "Stand-Up Room"},
	venue.NatureWalk:  {"Trail", "Preserve", "Wash Loop", "Nature Park", "Wetlands Path", "Ridge Walk"},
	venue.MusicVenue:  {"Music Hall", "Amphitheater", "Live Room", "Sound Stage", "Jazz Club", "Concert Hall"},
	venue.ThriftStore: {"Thrift", "Resale", "Vintage Market", "Secondhand Shop", "Swap Shop", "Closet"},
	venue.SocialClub:  {"Social Club", "Community Circle", "Meetup Society", "Neighbors Guild", "Book Club"},
	venue.SportsClub:  {"Athletic Club", "Tennis Center", "Pickleball Club", "Sports Complex", "Climbing Gym"},
	venue.Club:        {"Dance Club", "Nightclub", "Photography Club", "Garden Club", "Maker Club", "Social House"},
}

var suffixes = []string{"", "", "", "East", "West", "Co.", "Collective", "on Main", "& Friends", "Downtown"}

var streets = []string{
	"Arizona Ave", "Chandler Blvd", "Ray Rd", "Warner Rd", "Alma School Rd", "Dobson Rd",
	"McQueen Rd", "Gilbert Rd", "Elliot Rd", "Ocotillo Rd", "Germann Rd", "Pecos Rd",
	"Price Rd", "Cooper Rd", "Val Vista Dr", "Rural Rd", "Mill Ave", "University Dr",
	"Baseline Rd", "Southern Ave",
}

var directions = []string{"N", "S", "E", "W"}

var cities = []struct {
	name string
	zips []string
}{
	{"Chandler", []string{"85224", "85225", "85226", "85248", "85249", "85286"}},
	{"Gilbert", []string{"85233", "85234", "85295", "85296"}},
	{"Tempe", []string{"85281", "85282", "85283"}},
	{"Mesa", []string{"85201", "85202", "85210"}},
}

var descriptions = map[venue.Category][]string{
	venue.Bar: {
		"%s pours local craft beer and seasonal cocktails in a laid-back setting.",
		"%s is a neighborhood favorite for happy hour and weekend nights out.",
	},
	venue.CoffeeShop: {
		"%s serves small-batch roasts, pour-overs and fresh pastries.",
		"%s is a quiet spot to work or catch up over espresso.",
	},
	venue.ArtFestival: {
		"%s brings together local painters, sculptors and makers.",
		"%s features rotating exhibits, live music and food trucks.",
	},
	venue.ComedyVenue: {
		"%s hosts stand-up showcases and improv nights every week.",
		"%s books touring headliners and local comics alike.",
	},
	venue.NatureWalk: {
		"%s winds through desert washes with views of the surrounding mountains.",
		"%s offers shaded paths and bird watching near the water.",
	},
	venue.MusicVenue: {
		"%s showcases live bands from indie rock to mariachi.",
		"%s is an intimate room with a great sound system and regular shows.",
	},
	venue.ThriftStore: {
		"%s stocks vintage clothing, records and mid-century furniture.",
		"%s offers everyday bargains with proceeds supporting local causes.",
	},
	venue.SocialClub: {
		"%s organizes game nights, potlucks and volunteer days.",
		"%s is a welcoming group for meeting new people around town.",
	},
	venue.SportsClub: {
		"%s runs leagues, clinics and open play for all skill levels.",
		"%s has courts, training space and friendly weekend tournaments.",
	},
	venue.Club: {
		"%s hosts themed nights, guest DJs and special events.",
		"%s brings members together for workshops and regular meetups.",
	},
}

var specialties = map[venue.Category][]string{
	venue.Bar:         {"Craft Beer", "Cocktails", "Whiskey", "Wine", "Mezcal", "Local Brews", "Sports Viewing"},
	venue.CoffeeShop:  {"Pour Over", "Cold Brew", "Espresso", "Pastries", "Tea", "Breakfast"},
	venue.ThriftStore: {"Clothing", "Furniture", "Books", "Records", "Housewares", "Jewelry"},
}

var (
	weekdays      = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	performers    = []string{"Ali Ramos", "Jess Carter", "Sam Ortiz", "Dana Lee", "Chris Nguyen", "Morgan Blake"}
	artists       = []string{"Maria Lopez", "Kai Tanaka", "Ruth Begay", "Leo Grant", "Nina Patel", "Omar Haddad"}
	genres        = []string{"Rock", "Jazz", "Country", "Hip Hop", "Electronic", "Folk", "Latin", "Blues"}
	trailFeatures = []string{"Lake", "Wetlands", "Desert Flora", "Bird Watching", "Mountain Views", "Shade Ramadas"}
	difficulties  = []string{"easy", "moderate", "hard"}
	seasons       = []string{"Fall", "Winter", "Spring"}
	activities    = []string{"Game Night", "Book Discussion", "Volunteering", "Potluck", "Workshops", "Trivia", "Hiking"}
	sports        = []string{"Tennis", "Pickleball", "Basketball", "Soccer", "Volleyball", "Climbing", "Golf"}
	facilities    = []string{"Courts", "Locker Rooms", "Pro Shop", "Pool", "Weight Room", "Cafe"}
	amenities     = []string{"Dance Floor", "VIP Area", "Patio", "Full Bar", "Coat Check", "Studio Space"}
	clubFocus     = []string{"Dance", "Photography", "Gardening", "Making", "Nightlife"}
	charities     = []string{"Habitat for Humanity", "St. Vincent de Paul", "Local Animal Shelter", "Goodwill"}
	priceRanges   = []string{"$", "$$", "$$$"}
)
