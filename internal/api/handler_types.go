package api

import (
	"github.com/terraincognita07/fertilitrack/internal/analytics"
	"github.com/terraincognita07/fertilitrack/internal/models"
)

type credentialsInput struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type cycleInput struct {
	StartDate string      `json:"start_date"`
	EndDate   *string     `json:"end_date"`
	Flow      models.Flow `json:"flow"`
	Notes     string      `json:"notes"`
}

type cyclePatchInput struct {
	EndDate *string      `json:"end_date"`
	Flow    *models.Flow `json:"flow"`
	Notes   *string      `json:"notes"`
}

type temperatureInput struct {
	Date  string  `json:"date"`
	Time  string  `json:"time"`
	Value float64 `json:"value"`
	Notes string  `json:"notes"`
}

type cervicalMucusInput struct {
	Date   string             `json:"date"`
	Type   models.MucusType   `json:"type"`
	Amount models.MucusAmount `json:"amount"`
	Notes  string             `json:"notes"`
}

type spermPanelInput struct {
	Date       string   `json:"date"`
	Count      *float64 `json:"count"`
	Motility   *float64 `json:"motility"`
	Morphology *float64 `json:"morphology"`
	Volume     *float64 `json:"volume"`
	Notes      string   `json:"notes"`
}

type appointmentInput struct {
	Title       string  `json:"title"`
	Date        string  `json:"date"`
	Time        *string `json:"time"`
	Location    string  `json:"location"`
	Notes       string  `json:"notes"`
	IsShared    bool    `json:"is_shared"`
	AttendeeIDs []uint  `json:"attendee_ids"`
}

type interactionInput struct {
	Type models.InteractionType `json:"type"`
}

type acceptInviteInput struct {
	InviteCode string `json:"invite_code"`
}

type predictionResponse struct {
	AverageCycleLength int    `json:"average_cycle_length"`
	CycleLengths       []int  `json:"cycle_lengths"`
	LastPeriodStart    string `json:"last_period_start"`
	NextPeriodDate     string `json:"next_period_date"`
	OvulationDate      string `json:"ovulation_date"`
	FertileWindowStart string `json:"fertile_window_start"`
	FertileWindowEnd   string `json:"fertile_window_end"`
}

type scoreResponse struct {
	PanelID uint   `json:"panel_id"`
	Date    string `json:"date"`
	analytics.ScoreResult
}

type scoredPanelResponse struct {
	Date  string `json:"date"`
	Score int    `json:"score"`
}

type spermTrendsResponse struct {
	Message string                 `json:"message"`
	Trends  *analytics.SpermTrends `json:"trends"`
	Records []scoredPanelResponse  `json:"records"`
}

type temperaturePointResponse struct {
	Date  string  `json:"date"`
	Time  string  `json:"time,omitempty"`
	Value float64 `json:"value"`
}

type temperatureTrendResponse struct {
	Message string                     `json:"message"`
	Trend   analytics.TrendResult      `json:"trend"`
	Records []temperaturePointResponse `json:"records"`
}

type contentResponse struct {
	ID          string                 `json:"id"`
	Title       string                 `json:"title"`
	Summary     string                 `json:"summary,omitempty"`
	Category    models.ContentCategory `json:"category"`
	Tags        []string               `json:"tags"`
	PublishedAt string                 `json:"published_at"`
}

type eventResponse struct {
	Type  analytics.EventType `json:"type"`
	Title string              `json:"title"`
	Date  string              `json:"date"`
	Time  *string             `json:"time"`
	Data  map[string]any      `json:"data"`
}

type dateRangeResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type upcomingResponse struct {
	Events    []eventResponse   `json:"events"`
	DateRange dateRangeResponse `json:"dateRange"`
}

type cycleResponse struct {
	ID        uint        `json:"id"`
	StartDate string      `json:"start_date"`
	EndDate   *string     `json:"end_date"`
	Flow      models.Flow `json:"flow,omitempty"`
	Notes     string      `json:"notes,omitempty"`
}

type appointmentResponse struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Date        string  `json:"date"`
	Time        *string `json:"time"`
	Location    string  `json:"location,omitempty"`
	Notes       string  `json:"notes,omitempty"`
	IsShared    bool    `json:"is_shared"`
	AttendeeIDs []uint  `json:"attendee_ids"`
}

func newPredictionResponse(prediction *analytics.CyclePrediction) *predictionResponse {
	if prediction == nil {
		return nil
	}
	return &predictionResponse{
		AverageCycleLength: prediction.AverageCycleLength,
		CycleLengths:       prediction.CycleLengths,
		LastPeriodStart:    formatDay(prediction.LastPeriodStart),
		NextPeriodDate:     formatDay(prediction.NextPeriodDate),
		OvulationDate:      formatDay(prediction.OvulationDate),
		FertileWindowStart: formatDay(prediction.FertileWindowStart),
		FertileWindowEnd:   formatDay(prediction.FertileWindowEnd),
	}
}

func newContentResponses(items []models.ContentItem) []contentResponse {
	responses := make([]contentResponse, 0, len(items))
	for _, item := range items {
		tags := item.Tags
		if tags == nil {
			tags = []string{}
		}
		responses = append(responses, contentResponse{
			ID:          item.ID,
			Title:       item.Title,
			Summary:     item.Summary,
			Category:    item.Category,
			Tags:        tags,
			PublishedAt: formatDay(item.PublishedAt),
		})
	}
	return responses
}

func newEventResponses(events []analytics.Event) []eventResponse {
	responses := make([]eventResponse, 0, len(events))
	for _, event := range events {
		responses = append(responses, eventResponse{
			Type:  event.Type,
			Title: event.Title,
			Date:  formatDay(event.Date),
			Time:  event.Time,
			Data:  event.Data,
		})
	}
	return responses
}

func newCycleResponse(cycle models.CycleRecord) cycleResponse {
	return cycleResponse{
		ID:        cycle.ID,
		StartDate: formatDay(cycle.StartDate),
		EndDate:   formatOptionalDay(cycle.EndDate),
		Flow:      cycle.Flow,
		Notes:     cycle.Notes,
	}
}

func newAppointmentResponse(appointment models.Appointment) appointmentResponse {
	attendees := appointment.AttendeeIDs
	if attendees == nil {
		attendees = []uint{}
	}
	return appointmentResponse{
		ID:          appointment.ID,
		Title:       appointment.Title,
		Date:        formatDay(appointment.Date),
		Time:        appointment.Time,
		Location:    appointment.Location,
		Notes:       appointment.Notes,
		IsShared:    appointment.IsShared,
		AttendeeIDs: attendees,
	}
}
