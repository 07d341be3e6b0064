package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) InvitePartner(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	link, err := handler.partnerService.Invite(c.UserContext(), user, handler.now())
	if err != nil {
		return respondServiceError(c, err, "failed to create invite")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"invite_code": link.InviteCode,
		"status":      link.Status,
	})
}

func (handler *Handler) AcceptPartnerInvite(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input acceptInviteInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	link, err := handler.partnerService.Accept(c.UserContext(), user, input.InviteCode, handler.now())
	if err != nil {
		return respondServiceError(c, err, "failed to accept invite")
	}
	return c.JSON(fiber.Map{
		"owner_id":    link.OwnerID,
		"status":      link.Status,
		"accepted_at": link.AcceptedAt,
	})
}
