package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/fertilitrack/internal/analytics"
)

func (handler *Handler) GetUpcomingEvents(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	days, err := queryInt(c, "days", analytics.DefaultLookaheadDays)
	if err != nil || days < 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid days")
	}

	upcoming, err := handler.calendarService.Upcoming(c.UserContext(), user.ID, days, handler.now())
	if err != nil {
		return respondServiceError(c, err, "failed to load upcoming events")
	}
	handler.usage.Record("upcoming_events")

	return c.JSON(upcomingResponse{
		Events: newEventResponses(upcoming.Events),
		DateRange: dateRangeResponse{
			Start: formatDay(upcoming.Window.Today),
			End:   formatDay(upcoming.Window.End()),
		},
	})
}
