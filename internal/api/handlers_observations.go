package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/fertilitrack/internal/models"
)

func (handler *Handler) LogTemperature(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input temperatureInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	day, err := parseDay(input.Date)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	record, err := handler.observationService.LogTemperature(c.UserContext(), models.TemperatureRecord{
		UserID: user.ID,
		Date:   day,
		Time:   input.Time,
		Value:  input.Value,
		Notes:  input.Notes,
	}, handler.now())
	if err != nil {
		return respondServiceError(c, err, "failed to save temperature")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":    record.ID,
		"date":  formatDay(record.Date),
		"time":  record.Time,
		"value": record.Value,
		"notes": record.Notes,
	})
}

func (handler *Handler) LogCervicalMucus(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input cervicalMucusInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	day, err := parseDay(input.Date)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	record, err := handler.observationService.LogCervicalMucus(c.UserContext(), models.CervicalMucusRecord{
		UserID: user.ID,
		Date:   day,
		Type:   input.Type,
		Amount: input.Amount,
		Notes:  input.Notes,
	}, handler.now())
	if err != nil {
		return respondServiceError(c, err, "failed to save cervical mucus")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":     record.ID,
		"date":   formatDay(record.Date),
		"type":   record.Type,
		"amount": record.Amount,
		"notes":  record.Notes,
	})
}
