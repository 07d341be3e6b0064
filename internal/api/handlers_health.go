package api

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/fertilitrack/internal/models"
	"github.com/terraincognita07/fertilitrack/internal/services"
)

func (handler *Handler) GetSpermScore(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var panelID uint
	if raw := strings.TrimSpace(c.Query("id")); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || parsed == 0 {
			return apiError(c, fiber.StatusBadRequest, "invalid panel id")
		}
		panelID = uint(parsed)
	}

	scored, err := handler.healthService.ScorePanel(c.UserContext(), user.ID, panelID)
	if err != nil {
		return respondServiceError(c, err, "failed to score panel")
	}
	handler.usage.Record("score_panel")

	return c.JSON(scoreResponse{
		PanelID:     scored.Panel.ID,
		Date:        formatDay(scored.Panel.Date),
		ScoreResult: scored.Score,
	})
}

func (handler *Handler) GetSpermTrends(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	months, err := queryInt(c, "months", services.DefaultSpermTrendMonths)
	if err != nil || months <= 0 || months > handler.limits.MaxTrendMonths {
		return apiError(c, fiber.StatusBadRequest, "invalid months")
	}

	report, err := handler.healthService.SpermTrends(c.UserContext(), user.ID, months, handler.now())
	if err != nil {
		return respondServiceError(c, err, "failed to calculate trends")
	}
	handler.usage.Record("sperm_trends")

	records := make([]scoredPanelResponse, 0, len(report.Records))
	for _, record := range report.Records {
		records = append(records, scoredPanelResponse{Date: formatDay(record.Date), Score: record.Score})
	}
	return c.JSON(spermTrendsResponse{
		Message: report.Message,
		Trends:  report.Trends,
		Records: records,
	})
}

func (handler *Handler) GetTemperatureTrends(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	days, err := queryInt(c, "days", services.DefaultTemperatureTrendDays)
	if err != nil || days <= 0 || days > handler.limits.MaxDays {
		return apiError(c, fiber.StatusBadRequest, "invalid days")
	}

	report, err := handler.healthService.TemperatureTrend(c.UserContext(), user.ID, days, handler.now())
	if err != nil {
		return respondServiceError(c, err, "failed to calculate trend")
	}
	handler.usage.Record("temperature_trend")

	records := make([]temperaturePointResponse, 0, len(report.Records))
	for _, record := range report.Records {
		records = append(records, temperaturePointResponse{Date: formatDay(record.Date), Time: record.Time, Value: record.Value})
	}
	return c.JSON(temperatureTrendResponse{
		Message: report.Message,
		Trend:   report.Trend,
		Records: records,
	})
}

func (handler *Handler) LogSpermPanel(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input spermPanelInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	day, err := parseDay(input.Date)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	panel, err := handler.observationService.LogSpermPanel(c.UserContext(), models.SpermHealthPanel{
		UserID:     user.ID,
		Date:       day,
		Count:      input.Count,
		Motility:   input.Motility,
		Morphology: input.Morphology,
		Volume:     input.Volume,
		Notes:      input.Notes,
	}, handler.now())
	if err != nil {
		return respondServiceError(c, err, "failed to save panel")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":         panel.ID,
		"date":       formatDay(panel.Date),
		"count":      panel.Count,
		"motility":   panel.Motility,
		"morphology": panel.Morphology,
		"volume":     panel.Volume,
		"notes":      panel.Notes,
	})
}
