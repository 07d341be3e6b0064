package api

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/fertilitrack/internal/analytics"
	"github.com/terraincognita07/fertilitrack/internal/services"
)

const isoDateLayout = "2006-01-02"

type errorMapping struct {
	err    error
	status int
}

// serviceErrorStatuses is checked in order; the first match wins.
var serviceErrorStatuses = []errorMapping{
	{analytics.ErrMissingStartDate, fiber.StatusUnprocessableEntity},

	{services.ErrUserNotFound, fiber.StatusNotFound},
	{services.ErrPanelNotFound, fiber.StatusNotFound},
	{services.ErrCycleNotFound, fiber.StatusNotFound},
	{services.ErrContentNotFound, fiber.StatusNotFound},
	{services.ErrInviteNotFound, fiber.StatusNotFound},

	{services.ErrCycleOverlap, fiber.StatusConflict},
	{services.ErrPartnerAlreadyLinked, fiber.StatusConflict},
	{services.ErrPartnerInviteForbidden, fiber.StatusForbidden},
	{services.ErrPartnerAcceptForbidden, fiber.StatusForbidden},

	{services.ErrCycleStartDateRequired, fiber.StatusBadRequest},
	{services.ErrCycleEndBeforeStart, fiber.StatusBadRequest},
	{services.ErrInvalidFlow, fiber.StatusBadRequest},
	{services.ErrFutureDate, fiber.StatusBadRequest},
	{services.ErrTemperatureOutOfRange, fiber.StatusBadRequest},
	{services.ErrInvalidClock, fiber.StatusBadRequest},
	{services.ErrInvalidMucusType, fiber.StatusBadRequest},
	{services.ErrInvalidMucusAmount, fiber.StatusBadRequest},
	{services.ErrEmptySpermPanel, fiber.StatusBadRequest},
	{services.ErrNegativeMeasurement, fiber.StatusBadRequest},
	{services.ErrInvalidInteractionType, fiber.StatusBadRequest},
	{services.ErrAppointmentTitleRequired, fiber.StatusBadRequest},
	{services.ErrAppointmentTitleTooLong, fiber.StatusBadRequest},
	{services.ErrAppointmentDateRequired, fiber.StatusBadRequest},
	{services.ErrAppointmentRangeInvalid, fiber.StatusBadRequest},
	{services.ErrPartnerInviteSelf, fiber.StatusBadRequest},
	{services.ErrMeasurementOutOfRange, fiber.StatusBadRequest},
}

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// respondServiceError maps known sentinels to their status and hides everything else behind a 500.
func respondServiceError(c *fiber.Ctx, err error, fallback string) error {
	for _, mapping := range serviceErrorStatuses {
		if errors.Is(err, mapping.err) {
			return apiError(c, mapping.status, mapping.err.Error())
		}
	}

	slog.ErrorContext(c.UserContext(), "request failed",
		"method", c.Method(),
		"path", c.Path(),
		"error", err,
	)
	return apiError(c, fiber.StatusInternalServerError, fallback)
}

func parseDay(raw string) (time.Time, error) {
	return time.Parse(isoDateLayout, strings.TrimSpace(raw))
}

func parseOptionalDay(raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	day, err := parseDay(*raw)
	if err != nil {
		return nil, err
	}
	return &day, nil
}

// queryInt returns fallback when the parameter is absent and an error when it is not a number.
func queryInt(c *fiber.Ctx, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	return value, nil
}

func paramUint(c *fiber.Ctx, name string) (uint, error) {
	value, err := strconv.ParseUint(strings.TrimSpace(c.Params(name)), 10, 64)
	if err != nil || value == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(value), nil
}

func formatDay(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.Format(isoDateLayout)
}

func formatOptionalDay(value *time.Time) *string {
	if value == nil {
		return nil
	}
	formatted := formatDay(*value)
	return &formatted
}
