package services

import (
	"context"
	"fmt"
	"time"

	"github.com/terraincognita07/fertilitrack/internal/analytics"
	"github.com/terraincognita07/fertilitrack/internal/models"
)

const (
	DefaultSpermTrendMonths     = 6
	DefaultTemperatureTrendDays = 30
	temperatureTrendsMessage    = "Temperature trend calculated"
	temperatureNotEnoughMessage = "Not enough data to calculate trends"
)

type SpermPanelReader interface {
	FindSpermPanel(ctx context.Context, userID uint, panelID uint) (models.SpermHealthPanel, error)
	LatestSpermPanel(ctx context.Context, userID uint) (models.SpermHealthPanel, error)
	ListSpermPanelsSince(ctx context.Context, userID uint, from time.Time) ([]models.SpermHealthPanel, error)
}

type TemperatureReader interface {
	ListTemperaturesSince(ctx context.Context, userID uint, from time.Time) ([]models.TemperatureRecord, error)
}

type HealthService struct {
	panels       SpermPanelReader
	temperatures TemperatureReader
	location     *time.Location
}

type PanelScore struct {
	Panel models.SpermHealthPanel
	Score analytics.ScoreResult
}

type TemperatureTrendReport struct {
	Message string
	Trend   analytics.TrendResult
	Records []models.TemperatureRecord
}

func NewHealthService(panels SpermPanelReader, temperatures TemperatureReader, location *time.Location) *HealthService {
	return &HealthService{panels: panels, temperatures: temperatures, location: location}
}

// ScorePanel scores the given panel, or the most recent one when panelID is 0.
func (service *HealthService) ScorePanel(ctx context.Context, userID uint, panelID uint) (PanelScore, error) {
	var (
		panel models.SpermHealthPanel
		err   error
	)
	if panelID == 0 {
		panel, err = service.panels.LatestSpermPanel(ctx, userID)
	} else {
		panel, err = service.panels.FindSpermPanel(ctx, userID, panelID)
	}
	if err != nil {
		return PanelScore{}, notFound(err, ErrPanelNotFound)
	}
	return PanelScore{Panel: panel, Score: analytics.ScoreSpermPanel(panel)}, nil
}

func (service *HealthService) SpermTrends(ctx context.Context, userID uint, months int, now time.Time) (analytics.SpermTrendReport, error) {
	if months <= 0 {
		months = DefaultSpermTrendMonths
	}
	from := CalendarDay(now, service.location).AddDate(0, -months, 0)

	panels, err := service.panels.ListSpermPanelsSince(ctx, userID, from)
	if err != nil {
		return analytics.SpermTrendReport{}, fmt.Errorf("load sperm panels: %w", err)
	}
	return analytics.BuildSpermTrends(panels), nil
}

func (service *HealthService) TemperatureTrend(ctx context.Context, userID uint, days int, now time.Time) (TemperatureTrendReport, error) {
	if days <= 0 {
		days = DefaultTemperatureTrendDays
	}
	from := CalendarDay(now, service.location).AddDate(0, 0, -days)

	records, err := service.temperatures.ListTemperaturesSince(ctx, userID, from)
	if err != nil {
		return TemperatureTrendReport{}, fmt.Errorf("load temperatures: %w", err)
	}

	points := make([]analytics.TrendPoint, 0, len(records))
	for _, record := range records {
		points = append(points, analytics.TrendPoint{Date: record.Date, Value: record.Value})
	}

	message := temperatureTrendsMessage
	if len(points) < 2 {
		message = temperatureNotEnoughMessage
	}
	return TemperatureTrendReport{
		Message: message,
		Trend:   analytics.CalculateTrend(points),
		Records: records,
	}, nil
}
