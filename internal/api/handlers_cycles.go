package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/fertilitrack/internal/models"
	"github.com/terraincognita07/fertilitrack/internal/services"
)

func (handler *Handler) ListCycles(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	cycles, err := handler.cycleService.List(c.UserContext(), user.ID)
	if err != nil {
		return respondServiceError(c, err, "failed to load cycles")
	}

	responses := make([]cycleResponse, 0, len(cycles))
	for _, cycle := range cycles {
		responses = append(responses, newCycleResponse(cycle))
	}
	return c.JSON(responses)
}

func (handler *Handler) CreateCycle(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input cycleInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	startDate, err := parseDay(input.StartDate)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid start date")
	}
	endDate, err := parseOptionalDay(input.EndDate)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid end date")
	}

	cycle, err := handler.cycleService.Create(c.UserContext(), user.ID, models.CycleRecord{
		StartDate: startDate,
		EndDate:   endDate,
		Flow:      input.Flow,
		Notes:     input.Notes,
	}, handler.now())
	if err != nil {
		return respondServiceError(c, err, "failed to create cycle")
	}
	return c.Status(fiber.StatusCreated).JSON(newCycleResponse(cycle))
}

func (handler *Handler) UpdateCycle(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	cycleID, err := paramUint(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid cycle id")
	}

	var input cyclePatchInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	endDate, err := parseOptionalDay(input.EndDate)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid end date")
	}

	cycle, err := handler.cycleService.Update(c.UserContext(), user.ID, cycleID, services.CycleUpdate{
		EndDate: endDate,
		Flow:    input.Flow,
		Notes:   input.Notes,
	}, handler.now())
	if err != nil {
		return respondServiceError(c, err, "failed to update cycle")
	}
	return c.JSON(newCycleResponse(cycle))
}
