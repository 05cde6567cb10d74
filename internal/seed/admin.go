package seed

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/Adrianenache82/local-vibe/internal/venue"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrNoDatabase = errors.New("seed database not configured")
	ErrNotFound   = errors.New("seed venue not found")
	ErrInvalid    = errors.New("seed venue requires a name and a known type")
)

func validate(v venue.Venue) error {
	if v.Name == "" || !v.Category.Valid() {
		return ErrInvalid
	}
	return nil
}

// prepare fills defaults for a fixture about to be written.
func (s *Store) prepare(v venue.Venue) (venue.Venue, []byte, error) {
	v = v.Normalize(s.center)
	v.DistanceKm = nil
	if v.ImageURL == "" {
		v.ImageURL = venue.DefaultImage(v.Category)
	}
	details, err := json.Marshal(v.Details)
	if err != nil {
		return venue.Venue{}, nil, err
	}
	return v, details, nil
}

func (s *Store) Create(ctx context.Context, v venue.Venue) (venue.Venue, error) {
	if s.db == nil {
		return venue.Venue{}, ErrNoDatabase
	}
	if err := validate(v); err != nil {
		return venue.Venue{}, err
	}
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	v, details, err := s.prepare(v)
	if err != nil {
		return venue.Venue{}, err
	}

	_, err = s.db.Exec(ctx, `
		INSERT INTO seed_venues (id, name, address, description, image_url, rating, category, location, details)
		VALUES ($1,$2,$3,$4,$5,$6,$7, ST_SetSRID(ST_MakePoint($8,$9), 4326)::geography, $10)
	`, v.ID, v.Name, v.Address, v.Description, v.ImageURL, v.Rating, string(v.Category),
		v.Coordinates.Longitude, v.Coordinates.Latitude, details)
	if err != nil {
		return venue.Venue{}, err
	}
	return v, nil
}

const fixtureColumns = `id, name, address, description, COALESCE(image_url, ''), rating, category,
		       ST_Y(location::geometry), ST_X(location::geometry), details`

func (s *Store) scanFixture(row pgx.Row) (venue.Venue, error) {
	var (
		v        venue.Venue
		category string
		details  []byte
	)
	if err := row.Scan(&v.ID, &v.Name, &v.Address, &v.Description, &v.ImageURL, &v.Rating, &category,
		&v.Coordinates.Latitude, &v.Coordinates.Longitude, &details); err != nil {
		return venue.Venue{}, err
	}
	v.Category = venue.Category(category)
	var err error
	if v.Details, err = venue.DecodeDetails(v.Category, details); err != nil {
		return venue.Venue{}, err
	}
	return v.Normalize(s.center), nil
}

func (s *Store) Get(ctx context.Context, id string) (venue.Venue, error) {
	if s.db == nil {
		return venue.Venue{}, ErrNoDatabase
	}
	v, err := s.scanFixture(s.db.QueryRow(ctx, `SELECT `+fixtureColumns+` FROM seed_venues WHERE id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return venue.Venue{}, ErrNotFound
	}
	return v, err
}

// Replace overwrites the fixture stored under id.
func (s *Store) Replace(ctx context.Context, id string, v venue.Venue) (venue.Venue, error) {
	if s.db == nil {
		return venue.Venue{}, ErrNoDatabase
	}
	if err := validate(v); err != nil {
		return venue.Venue{}, err
	}
	v.ID = id
	v, details, err := s.prepare(v)
	if err != nil {
		return venue.Venue{}, err
	}

	tag, err := s.db.Exec(ctx, `
		UPDATE seed_venues
		SET name=$2, address=$3, description=$4, image_url=$5, rating=$6, category=$7,
		    location=ST_SetSRID(ST_MakePoint($8,$9), 4326)::geography, details=$10
		WHERE id=$1
	`, v.ID, v.Name, v.Address, v.Description, v.ImageURL, v.Rating, string(v.Category),
		v.Coordinates.Longitude, v.Coordinates.Latitude, details)
	if err != nil {
		return venue.Venue{}, err
	}
	if tag.RowsAffected() == 0 {
		return venue.Venue{}, ErrNotFound
	}
	return v, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	if s.db == nil {
		return ErrNoDatabase
	}
	tag, err := s.db.Exec(ctx, `DELETE FROM seed_venues WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Nearby lists fixtures within radiusKm of center, nearest first.
func (s *Store) Nearby(ctx context.Context, center venue.Coordinates, radiusKm float64) ([]venue.Venue, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}
	rows, err := s.db.Query(ctx, `
		SELECT `+fixtureColumns+`
		FROM seed_venues
		WHERE ST_DWithin(location, ST_SetSRID(ST_MakePoint($1,$2), 4326)::geography, $3)
		ORDER BY ST_Distance(location, ST_SetSRID(ST_MakePoint($1,$2), 4326)::geography)
	`, center.Longitude, center.Latitude, radiusKm*1000)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	venues := []venue.Venue{}
	for rows.Next() {
		v, err := s.scanFixture(rows)
		if err != nil {
			return nil, err
		}
		venues = append(venues, v)
	}
	return venues, rows.Err()
}
