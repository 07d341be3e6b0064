package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/fertilitrack/internal/analytics"
	"github.com/terraincognita07/fertilitrack/internal/models"
	"github.com/terraincognita07/fertilitrack/internal/services"
)

func (handler *Handler) CreateAppointment(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input appointmentInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	day, err := parseDay(input.Date)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	appointment, err := handler.appointmentService.Create(c.UserContext(), user.ID, models.Appointment{
		Title:       input.Title,
		Date:        day,
		Time:        input.Time,
		Location:    input.Location,
		Notes:       input.Notes,
		IsShared:    input.IsShared,
		AttendeeIDs: input.AttendeeIDs,
	})
	if err != nil {
		return respondServiceError(c, err, "failed to create appointment")
	}
	return c.Status(fiber.StatusCreated).JSON(newAppointmentResponse(appointment))
}

// ListAppointments defaults to the upcoming lookahead window when from/to are omitted.
func (handler *Handler) ListAppointments(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	from := services.CalendarDay(handler.now(), handler.location)
	if raw := strings.TrimSpace(c.Query("from")); raw != "" {
		parsed, err := parseDay(raw)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid from date")
		}
		from = parsed
	}
	to := from.AddDate(0, 0, analytics.DefaultLookaheadDays)
	if raw := strings.TrimSpace(c.Query("to")); raw != "" {
		parsed, err := parseDay(raw)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid to date")
		}
		to = parsed
	}
	if analytics.DaysBetween(from, to) > handler.limits.MaxDays {
		return apiError(c, fiber.StatusBadRequest, "range too large")
	}

	appointments, err := handler.appointmentService.List(c.UserContext(), user.ID, from, to)
	if err != nil {
		return respondServiceError(c, err, "failed to load appointments")
	}

	responses := make([]appointmentResponse, 0, len(appointments))
	for _, appointment := range appointments {
		responses = append(responses, newAppointmentResponse(appointment))
	}
	return c.JSON(responses)
}
