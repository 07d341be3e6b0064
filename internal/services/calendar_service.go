package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/terraincognita07/fertilitrack/internal/analytics"
	"github.com/terraincognita07/fertilitrack/internal/models"
	"gorm.io/gorm"
)

type CalendarUserReader interface {
	FindByID(ctx context.Context, userID uint) (models.User, error)
}

type CalendarPartnerReader interface {
	FindAcceptedForUser(ctx context.Context, userID uint) (models.PartnerLink, bool, error)
}

type CalendarAppointmentReader interface {
	ListByOwnerRange(ctx context.Context, ownerID uint, from time.Time, to time.Time) ([]models.Appointment, error)
	ListSharedByOwnerRange(ctx context.Context, ownerID uint, from time.Time, to time.Time) ([]models.Appointment, error)
}

type CalendarService struct {
	users        CalendarUserReader
	partners     CalendarPartnerReader
	appointments CalendarAppointmentReader
	cycles       RecentCycleReader
	location     *time.Location
	maxDays      int
}

type UpcomingEvents struct {
	Events []analytics.Event
	Window analytics.EventWindow
}

func NewCalendarService(
	users CalendarUserReader,
	partners CalendarPartnerReader,
	appointments CalendarAppointmentReader,
	cycles RecentCycleReader,
	location *time.Location,
	maxDays int,
) *CalendarService {
	return &CalendarService{
		users:        users,
		partners:     partners,
		appointments: appointments,
		cycles:       cycles,
		location:     location,
		maxDays:      maxDays,
	}
}

// Upcoming merges the user's appointments, cycle predictions and the linked partner's shared
// appointments over the next days days.
func (service *CalendarService) Upcoming(ctx context.Context, userID uint, days int, now time.Time) (UpcomingEvents, error) {
	if service.maxDays > 0 && days > service.maxDays {
		days = service.maxDays
	}
	window := analytics.NewEventWindow(CalendarDay(now, service.location), days)

	if _, err := service.users.FindByID(ctx, userID); err != nil {
		return UpcomingEvents{}, notFound(err, ErrUserNotFound)
	}

	sources := analytics.EventSources{}
	own, err := service.appointments.ListByOwnerRange(ctx, userID, window.Today, window.End())
	if err != nil {
		return UpcomingEvents{}, fmt.Errorf("load appointments: %w", err)
	}
	sources.Appointments = own

	if err := service.attachPartner(ctx, userID, window, &sources); err != nil {
		return UpcomingEvents{}, err
	}

	cycles, err := service.cycles.ListRecent(ctx, userID, analytics.PredictionCycleWindow)
	if err != nil {
		return UpcomingEvents{}, fmt.Errorf("load recent cycles: %w", err)
	}
	prediction, err := analytics.PredictCycle(cycles)
	if err != nil {
		return UpcomingEvents{}, err
	}
	sources.Prediction = prediction

	return UpcomingEvents{
		Events: analytics.BuildUpcomingEvents(sources, window),
		Window: window,
	}, nil
}

func (service *CalendarService) attachPartner(ctx context.Context, userID uint, window analytics.EventWindow, sources *analytics.EventSources) error {
	link, found, err := service.partners.FindAcceptedForUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("load partner link: %w", err)
	}
	if !found {
		return nil
	}
	partnerID, ok := link.CounterpartOf(userID)
	if !ok {
		return nil
	}

	partner, err := service.users.FindByID(ctx, partnerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		slog.WarnContext(ctx, "linked partner missing", "user_id", userID, "partner_id", partnerID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("load partner: %w", err)
	}
	shared, err := service.appointments.ListSharedByOwnerRange(ctx, partnerID, window.Today, window.End())
	if err != nil {
		return fmt.Errorf("load partner appointments: %w", err)
	}

	sources.PartnerAppointments = SanitizeAppointmentsForPartner(shared)
	sources.PartnerName = partner.Name()
	return nil
}
