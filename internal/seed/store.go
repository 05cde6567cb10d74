package seed

import (
	"context"

	"github.com/Adrianenache82/local-vibe/internal/db"
	"github.com/Adrianenache82/local-vibe/internal/venue"

	"github.com/rs/zerolog"
)

// Store serves seed fixtures from the seed_venues table, or from the
// built-in set when no database is configured or the query fails.
type Store struct {
	db     db.Querier
	center venue.Coordinates
	logger zerolog.Logger
}

// NewStore normalizes fixtures against center, the service center when zero.
func NewStore(q db.Querier, center venue.Coordinates, logger zerolog.Logger) *Store {
	if center.IsZero() {
		center = venue.ServiceCenter
	}
	return &Store{db: q, center: center, logger: logger}
}

func (s *Store) Seeds(ctx context.Context, category venue.Category) ([]venue.Venue, error) {
	if s.db == nil {
		return Builtin(category), nil
	}
	venues, err := s.query(ctx, category)
	if err != nil {
		s.logger.Warn().Err(err).Str("category", string(category)).Msg("seed query failed, using built-in fixtures")
		return Builtin(category), nil
	}
	return venues, nil
}

func (s *Store) query(ctx context.Context, category venue.Category) ([]venue.Venue, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, address, description, COALESCE(image_url, ''), rating,
		       ST_Y(location::geometry), ST_X(location::geometry), details
		FROM seed_venues WHERE category=$1
		ORDER BY id
	`, string(category))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var venues []venue.Venue
	for rows.Next() {
		v := venue.Venue{Category: category}
		var details []byte
		if err := rows.Scan(&v.ID, &v.Name, &v.Address, &v.Description, &v.ImageURL, &v.Rating,
			&v.Coordinates.Latitude, &v.Coordinates.Longitude, &details); err != nil {
			return nil, err
		}
		if v.Details, err = venue.DecodeDetails(category, details); err != nil {
			return nil, err
		}
		if v.ImageURL == "" {
			v.ImageURL = venue.DefaultImage(category)
		}
		venues = append(venues, v.Normalize(s.center))
	}
	return venues, rows.Err()
}
