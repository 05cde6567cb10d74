package places

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the photo proxy so image URLs never carry the API key.
func RegisterRoutes(r fiber.Router, client *Client) {
	r.Get("/photo/:ref", func(c *fiber.Ctx) error {
		body, contentType, err := client.Photo(c.UserContext(), c.Params("ref"), c.QueryInt("maxwidth", 400))
		if errors.Is(err, ErrNotConfigured) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, err.Error())
		}
		if contentType == "" {
			contentType = "image/jpeg"
		}
		c.Set(fiber.HeaderContentType, contentType)
		c.Set(fiber.HeaderCacheControl, "public, max-age=86400")
		return c.Send(body)
	})
}
