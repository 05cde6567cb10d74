package venue

import (
	"encoding/json"
	"math"
)

const (
	MinRating     = 0.0
	MaxRating     = 5.0
	DefaultRating = 4.0
	UnknownName   = "Unknown Venue"
)

// ServiceCenter is the default center of the service area (Chandler, AZ).
var ServiceCenter = Coordinates{Latitude: 33.3062, Longitude: -111.8413}

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (c Coordinates) IsZero() bool {
	return c.Latitude == 0 && c.Longitude == 0
}

type Venue struct {
	ID          string
	Name        string
	Address     string
	Description string
	ImageURL    string
	Rating      float64
	Category    Category
	Coordinates Coordinates
	DistanceKm  *float64
	Details     Details
}

type venueJSON struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Type        Category        `json:"type"`
	Address     string          `json:"address"`
	Description string          `json:"description"`
	ImageURL    string          `json:"image_url"`
	Rating      float64         `json:"rating"`
	Coordinates Coordinates     `json:"coordinates"`
	DistanceKm  *float64        `json:"distance_km,omitempty"`
	Details     json.RawMessage `json:"details"`
}

func (v Venue) MarshalJSON() ([]byte, error) {
	details := v.Details
	if details == nil {
		details = EmptyDetails(v.Category)
	}
	raw, err := json.Marshal(details)
	if err != nil {
		return nil, err
	}
	return json.Marshal(venueJSON{
		ID:          v.ID,
		Name:        v.Name,
		Type:        v.Category,
		Address:     v.Address,
		Description: v.Description,
		ImageURL:    v.ImageURL,
		Rating:      v.Rating,
		Coordinates: v.Coordinates,
		DistanceKm:  v.DistanceKm,
		Details:     raw,
	})
}

func (v *Venue) UnmarshalJSON(data []byte) error {
	var in venueJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	details, err := DecodeDetails(in.Type, in.Details)
	if err != nil {
		return err
	}
	*v = Venue{
		ID:          in.ID,
		Name:        in.Name,
		Address:     in.Address,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Rating:      in.Rating,
		Category:    in.Type,
		Coordinates: in.Coordinates,
		DistanceKm:  in.DistanceKm,
		Details:     details,
	}
	return nil
}

func ClampRating(r float64) float64 {
	if math.IsNaN(r) {
		return DefaultRating
	}
	return math.Max(MinRating, math.Min(MaxRating, r))
}

// Normalize substitutes defaults for missing fields and clamps the rating.
func (v Venue) Normalize(center Coordinates) Venue {
	if v.Name == "" {
		v.Name = UnknownName
	}
	if v.Coordinates.IsZero() {
		if center.IsZero() {
			center = ServiceCenter
		}
		v.Coordinates = center
	}
	v.Rating = ClampRating(v.Rating)
	if v.Details == nil || v.Details.Category() != v.Category {
		v.Details = EmptyDetails(v.Category)
	}
	return v
}
