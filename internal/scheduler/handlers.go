package scheduler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, u *Updater) {
	r.Get("/status", func(c *fiber.Ctx) error {
		return c.JSON(u.Status())
	})

	r.Post("/refresh", func(c *fiber.Ctx) error {
		err := u.RunNow(c.UserContext())
		if errors.Is(err, ErrInProgress) {
			return fiber.NewError(fiber.StatusConflict, err.Error())
		}
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, err.Error())
		}
		return c.JSON(u.Status())
	})
}
