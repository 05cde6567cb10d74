package catalog

import (
	"errors"
	"strconv"

	"github.com/Adrianenache82/local-vibe/internal/venue"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service) {
	r.Get("/", func(c *fiber.Ctx) error {
		var (
			venues []venue.Venue
			err    error
		)
		switch {
		case c.Query("category") != "":
			category, ok := venue.ParseCategory(c.Query("category"))
			if !ok {
				return fiber.NewError(fiber.StatusBadRequest, "unknown category")
			}
			venues, err = svc.GetVenuesByCategory(c.Context(), category)
		case c.Query("q") != "":
			venues, err = svc.SearchVenues(c.Context(), c.Query("q"))
		default:
			venues, err = svc.GetAllVenues(c.Context())
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if origin, ok := originFromQuery(c); ok {
			venues = WithDistances(venues, origin)
		}
		return c.JSON(nonNil(venues))
	})

	r.Get("/random", func(c *fiber.Ctx) error {
		v, err := svc.GetRandomVenue(c.Context())
		if errors.Is(err, ErrEmptyCatalog) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(v)
	})

	r.Get("/search", func(c *fiber.Ctx) error {
		venues, err := svc.SearchVenues(c.Context(), c.Query("q"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(nonNil(venues))
	})

	r.Get("/categories", func(c *fiber.Ctx) error {
		counts, err := svc.Categories(c.Context())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(counts)
	})

	r.Get("/category/:category", func(c *fiber.Ctx) error {
		category, ok := venue.ParseCategory(c.Params("category"))
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "unknown category")
		}
		venues, err := svc.GetVenuesByCategory(c.Context(), category)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(nonNil(venues))
	})

	r.Get("/:id", func(c *fiber.Ctx) error {
		v, found, err := svc.GetVenueByID(c.Context(), c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if !found {
			return fiber.NewError(fiber.StatusNotFound, "venue not found")
		}
		return c.JSON(v)
	})
}

func originFromQuery(c *fiber.Ctx) (venue.Coordinates, bool) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil {
		return venue.Coordinates{}, false
	}
	return venue.Coordinates{Latitude: lat, Longitude: lng}, true
}

func nonNil(venues []venue.Venue) []venue.Venue {
	if venues == nil {
		return []venue.Venue{}
	}
	return venues
}
