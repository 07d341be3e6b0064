package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/terraincognita07/fertilitrack/internal/models"
)

const DefaultLookaheadDays = 30

const midnightClock = "00:00:00"

type EventType string

const (
	EventAppointment        EventType = "appointment"
	EventPartnerAppointment EventType = "partner_appointment"
	EventPeriod             EventType = "period"
	EventOvulation          EventType = "ovulation"
	EventFertileWindowStart EventType = "fertile_window_start"
	EventFertileWindowEnd   EventType = "fertile_window_end"
)

type Event struct {
	Type  EventType      `json:"type"`
	Title string         `json:"title"`
	Date  time.Time      `json:"date"`
	Time  *string        `json:"time"`
	Data  map[string]any `json:"data"`
}

type EventWindow struct {
	Today time.Time
	Days  int
}

// NewEventWindow normalizes today to a calendar day and applies the default lookahead.
func NewEventWindow(today time.Time, days int) EventWindow {
	if days <= 0 {
		days = DefaultLookaheadDays
	}
	return EventWindow{Today: DateOnly(today), Days: days}
}

func (window EventWindow) End() time.Time {
	return window.Today.AddDate(0, 0, window.Days)
}

// Contains is inclusive on both ends.
func (window EventWindow) Contains(day time.Time) bool {
	return WithinDays(day, window.Today, window.Days)
}

type EventSources struct {
	Appointments        []models.Appointment
	PartnerAppointments []models.Appointment
	PartnerName         string
	Prediction          *CyclePrediction
}

// BuildUpcomingEvents merges own appointments, cycle predictions and the partner's shared
// appointments, in that order, and sorts them by date and time. Events with the same
// timestamp keep that construction order.
func BuildUpcomingEvents(sources EventSources, window EventWindow) []Event {
	events := make([]Event, 0, len(sources.Appointments)+len(sources.PartnerAppointments)+4)

	for _, appointment := range sources.Appointments {
		if !window.Contains(appointment.Date) {
			continue
		}
		events = append(events, appointmentEvent(EventAppointment, appointment.Title, appointment))
	}

	events = append(events, PredictionEvents(sources.Prediction, window)...)

	for _, appointment := range sources.PartnerAppointments {
		if !appointment.IsShared || !window.Contains(appointment.Date) {
			continue
		}
		title := appointment.Title
		if sources.PartnerName != "" {
			title = fmt.Sprintf("%s (%s)", appointment.Title, sources.PartnerName)
		}
		events = append(events, appointmentEvent(EventPartnerAppointment, title, appointment))
	}

	sort.SliceStable(events, func(i, j int) bool {
		left := DateOnly(events[i].Date)
		right := DateOnly(events[j].Date)
		if !left.Equal(right) {
			return left.Before(right)
		}
		return eventClock(events[i]) < eventClock(events[j])
	})
	return events
}

// PredictionEvents turns a prediction into the dated events that land inside window.
func PredictionEvents(prediction *CyclePrediction, window EventWindow) []Event {
	if prediction == nil {
		return nil
	}

	data := map[string]any{"average_cycle_length": prediction.AverageCycleLength}
	candidates := []Event{
		{Type: EventPeriod, Title: "Predicted period", Date: prediction.NextPeriodDate, Data: data},
		{Type: EventOvulation, Title: "Predicted ovulation", Date: prediction.OvulationDate, Data: data},
		{Type: EventFertileWindowStart, Title: "Fertile window starts", Date: prediction.FertileWindowStart, Data: data},
		{Type: EventFertileWindowEnd, Title: "Fertile window ends", Date: prediction.FertileWindowEnd, Data: data},
	}

	events := make([]Event, 0, len(candidates))
	for _, candidate := range candidates {
		if window.Contains(candidate.Date) {
			events = append(events, candidate)
		}
	}
	return events
}

func appointmentEvent(kind EventType, title string, appointment models.Appointment) Event {
	return Event{
		Type:  kind,
		Title: title,
		Date:  DateOnly(appointment.Date),
		Time:  appointment.Time,
		Data: map[string]any{
			"appointment_id": appointment.ID,
			"owner_id":       appointment.OwnerID,
			"location":       appointment.Location,
			"notes":          appointment.Notes,
			"is_shared":      appointment.IsShared,
		},
	}
}

func eventClock(event Event) string {
	if event.Time == nil || *event.Time == "" {
		return midnightClock
	}
	return NormalizeClock(*event.Time)
}

// NormalizeClock pads "HH:MM" to "HH:MM:SS" so clock strings compare lexically.
func NormalizeClock(value string) string {
	if len(value) == len("15:04") {
		return value + ":00"
	}
	return value
}
