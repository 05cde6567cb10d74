package seed

import (
	"errors"
	"strconv"

	"github.com/Adrianenache82/local-vibe/internal/venue"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts fixture management. onChange runs after every
// successful write so the catalog can be marked stale.
func RegisterRoutes(r fiber.Router, store *Store, onChange func()) {
	changed := func() {
		if onChange != nil {
			onChange()
		}
	}

	r.Get("/", func(c *fiber.Ctx) error {
		category, ok := venue.ParseCategory(c.Query("category"))
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "unknown category")
		}
		venues, err := store.Seeds(c.Context(), category)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(venues)
	})

	r.Get("/nearby", func(c *fiber.Ctx) error {
		lat, _ := strconv.ParseFloat(c.Query("lat"), 64)
		lng, _ := strconv.ParseFloat(c.Query("lng"), 64)
		radius, _ := strconv.ParseFloat(c.Query("radius_km"), 64)
		if radius == 0 {
			radius = 5
		}
		center := venue.Coordinates{Latitude: lat, Longitude: lng}
		if center.IsZero() {
			center = venue.ServiceCenter
		}
		venues, err := store.Nearby(c.Context(), center, radius)
		if err != nil {
			return storeError(err)
		}
		return c.JSON(venues)
	})

	r.Post("/", func(c *fiber.Ctx) error {
		var req venue.Venue
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		v, err := store.Create(c.Context(), req)
		if err != nil {
			return storeError(err)
		}
		changed()
		return c.Status(fiber.StatusCreated).JSON(v)
	})

	r.Get("/:id", func(c *fiber.Ctx) error {
		v, err := store.Get(c.Context(), c.Params("id"))
		if err != nil {
			return storeError(err)
		}
		return c.JSON(v)
	})

	r.Put("/:id", func(c *fiber.Ctx) error {
		var req venue.Venue
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		v, err := store.Replace(c.Context(), c.Params("id"), req)
		if err != nil {
			return storeError(err)
		}
		changed()
		return c.JSON(v)
	})

	r.Delete("/:id", func(c *fiber.Ctx) error {
		if err := store.Delete(c.Context(), c.Params("id")); err != nil {
			return storeError(err)
		}
		changed()
		return c.SendStatus(fiber.StatusNoContent)
	})
}

func storeError(err error) error {
	switch {
	case errors.Is(err, ErrInvalid):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, ErrNoDatabase):
		return fiber.NewError(fiber.StatusServiceUnavailable, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}
