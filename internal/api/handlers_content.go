package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/fertilitrack/internal/analytics"
)

func (handler *Handler) GetRecommendedContent(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	limit, err := queryInt(c, "limit", analytics.DefaultRecommendationLimit)
	if err != nil || limit < 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid limit")
	}

	items, err := handler.contentService.Recommend(c.UserContext(), user.ID, limit)
	if err != nil {
		return respondServiceError(c, err, "failed to load recommendations")
	}
	handler.usage.Record("recommend_content")
	return c.JSON(newContentResponses(items))
}

func (handler *Handler) RecordContentInteraction(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	contentID := strings.TrimSpace(c.Params("id"))
	if contentID == "" {
		return apiError(c, fiber.StatusBadRequest, "invalid content id")
	}

	var input interactionInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	if err := handler.contentService.RecordInteraction(c.UserContext(), user.ID, contentID, input.Type, handler.now()); err != nil {
		return respondServiceError(c, err, "failed to record interaction")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
