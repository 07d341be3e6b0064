package analytics

import (
	"testing"
	"time"

	"github.com/terraincognita07/fertilitrack/internal/models"
)

func TestBuildUpcomingEventsWindowBounds(t *testing.T) {
	t.Parallel()

	today := mustParseDay("2025-06-01")
	window := NewEventWindow(today, 10)
	appointments := []models.Appointment{
		{ID: 1, Title: "Yesterday", Date: mustParseDay("2025-05-31")},
		{ID: 2, Title: "Today", Date: today},
		{ID: 3, Title: "Last day", Date: mustParseDay("2025-06-11")},
		{ID: 4, Title: "Too late", Date: mustParseDay("2025-06-12")},
	}

	events := BuildUpcomingEvents(EventSources{Appointments: appointments}, window)
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Title != "Today" || events[1].Title != "Last day" {
		t.Fatalf("unexpected events %#v", events)
	}
}

func TestNewEventWindowDefaults(t *testing.T) {
	t.Parallel()

	window := NewEventWindow(mustParseDay("2025-06-01").Add(15*time.Hour), 0)
	if window.Days != DefaultLookaheadDays {
		t.Fatalf("expected default lookahead %d, got %d", DefaultLookaheadDays, window.Days)
	}
	if window.Today.Hour() != 0 {
		t.Fatal("expected today to be truncated to midnight")
	}
	if window.End().Format("2006-01-02") != "2025-07-01" {
		t.Fatalf("unexpected window end %s", window.End().Format("2006-01-02"))
	}
}

func TestBuildUpcomingEventsMergesAndSorts(t *testing.T) {
	t.Parallel()

	prediction, err := PredictCycle([]models.CycleRecord{makeCycle("2025-05-04"), makeCycle("2025-04-06")})
	if err != nil {
		t.Fatalf("PredictCycle returned error: %v", err)
	}
	// next period 2025-06-01, ovulation 2025-05-18, fertile window 2025-05-13..2025-05-19
	window := NewEventWindow(mustParseDay("2025-05-15"), 20)

	sources := EventSources{
		Appointments: []models.Appointment{
			{ID: 1, Title: "Scan", Date: mustParseDay("2025-05-18"), Time: stringPtr("09:30")},
			{ID: 2, Title: "Blood test", Date: mustParseDay("2025-05-18")},
		},
		PartnerAppointments: []models.Appointment{
			{ID: 3, Title: "Semen analysis", Date: mustParseDay("2025-05-18"), IsShared: true},
			{ID: 4, Title: "Private", Date: mustParseDay("2025-05-16"), IsShared: false},
		},
		PartnerName: "Alex",
		Prediction:  prediction,
	}

	events := BuildUpcomingEvents(sources, window)

	want := []struct {
		kind  EventType
		title string
	}{
		{EventAppointment, "Blood test"},
		{EventOvulation, "Predicted ovulation"},
		{EventPartnerAppointment, "Semen analysis (Alex)"},
		{EventAppointment, "Scan"},
		{EventFertileWindowEnd, "Fertile window ends"},
		{EventPeriod, "Predicted period"},
	}
	if len(events) != len(want) {
		t.Fatalf("expected %d events, got %d: %#v", len(want), len(events), events)
	}
	for index, expected := range want {
		if events[index].Type != expected.kind || events[index].Title != expected.title {
			t.Fatalf("event %d = %s %q, want %s %q", index, events[index].Type, events[index].Title, expected.kind, expected.title)
		}
	}
}

func TestBuildUpcomingEventsWithoutPrediction(t *testing.T) {
	t.Parallel()

	window := NewEventWindow(mustParseDay("2025-05-01"), 30)
	events := BuildUpcomingEvents(EventSources{
		Appointments: []models.Appointment{{Title: "Checkup", Date: mustParseDay("2025-05-02")}},
	}, window)
	if len(events) != 1 || events[0].Type != EventAppointment {
		t.Fatalf("expected only the appointment, got %#v", events)
	}
	if events[0].Time != nil {
		t.Fatal("expected appointment without time to keep a nil time")
	}
}

func TestPredictionEventsMatchDateComparison(t *testing.T) {
	t.Parallel()

	prediction, err := PredictCycle([]models.CycleRecord{makeCycle("2025-01-01"), makeCycle("2025-01-31")})
	if err != nil {
		t.Fatalf("PredictCycle returned error: %v", err)
	}

	for offset := -10; offset <= 40; offset++ {
		window := NewEventWindow(mustParseDay("2025-02-01").AddDate(0, 0, offset), 14)
		events := PredictionEvents(prediction, window)

		included := make(map[EventType]bool, len(events))
		for _, event := range events {
			included[event.Type] = true
		}

		dates := map[EventType]string{
			EventPeriod:             prediction.NextPeriodDate.Format("2006-01-02"),
			EventOvulation:          prediction.OvulationDate.Format("2006-01-02"),
			EventFertileWindowStart: prediction.FertileWindowStart.Format("2006-01-02"),
			EventFertileWindowEnd:   prediction.FertileWindowEnd.Format("2006-01-02"),
		}
		start := window.Today.Format("2006-01-02")
		end := window.End().Format("2006-01-02")
		for kind, date := range dates {
			expected := date >= start && date <= end
			if included[kind] != expected {
				t.Fatalf("offset %d: %s on %s included=%v, want %v", offset, kind, date, included[kind], expected)
			}
		}
	}
}

func TestNormalizeClock(t *testing.T) {
	t.Parallel()

	if got := NormalizeClock("08:15"); got != "08:15:00" {
		t.Fatalf("expected padded clock, got %q", got)
	}
	if got := NormalizeClock("08:15:30"); got != "08:15:30" {
		t.Fatalf("expected clock unchanged, got %q", got)
	}
}
