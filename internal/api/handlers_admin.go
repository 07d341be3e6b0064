package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetUsage(c *fiber.Ctx) error {
	return c.JSON(handler.usage.Snapshot())
}

func (handler *Handler) ResetUsage(c *fiber.Ctx) error {
	handler.usage.Reset()
	return c.SendStatus(fiber.StatusNoContent)
}
