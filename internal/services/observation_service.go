package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/terraincognita07/fertilitrack/internal/models"
)

var (
	ErrTemperatureOutOfRange = errors.New("temperature out of range")
	ErrInvalidClock          = errors.New("invalid time of day")
	ErrInvalidMucusType      = errors.New("invalid cervical mucus type")
	ErrInvalidMucusAmount    = errors.New("invalid cervical mucus amount")
	ErrEmptySpermPanel       = errors.New("sperm panel has no measurements")
	ErrNegativeMeasurement   = errors.New("measurement must not be negative")
	ErrMeasurementOutOfRange = errors.New("measurement out of range")
	ErrFutureDate            = errors.New("date is in the future")
)

var clockPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d(:[0-5]\d)?$`)

type ObservationRepository interface {
	UpsertTemperature(ctx context.Context, record *models.TemperatureRecord) error
	UpsertCervicalMucus(ctx context.Context, record *models.CervicalMucusRecord) error
	UpsertSpermPanel(ctx context.Context, panel *models.SpermHealthPanel) error
}

// ObservationService validates and stores the per-day observations. Logging a date that
// already has a record replaces it.
type ObservationService struct {
	observations ObservationRepository
	location     *time.Location
}

func NewObservationService(observations ObservationRepository, location *time.Location) *ObservationService {
	return &ObservationService{observations: observations, location: location}
}

func ValidateClock(value string) error {
	if value == "" || clockPattern.MatchString(value) {
		return nil
	}
	return ErrInvalidClock
}

func (service *ObservationService) checkDate(day time.Time, now time.Time) error {
	if day.After(CalendarDay(now, service.location)) {
		return ErrFutureDate
	}
	return nil
}

func (service *ObservationService) LogTemperature(ctx context.Context, record models.TemperatureRecord, now time.Time) (models.TemperatureRecord, error) {
	if err := service.checkDate(record.Date, now); err != nil {
		return models.TemperatureRecord{}, err
	}
	if record.Value < models.MinTemperatureCelsius || record.Value > models.MaxTemperatureCelsius {
		return models.TemperatureRecord{}, ErrTemperatureOutOfRange
	}
	record.Time = strings.TrimSpace(record.Time)
	if err := ValidateClock(record.Time); err != nil {
		return models.TemperatureRecord{}, err
	}
	record.Notes = strings.TrimSpace(record.Notes)

	if err := service.observations.UpsertTemperature(ctx, &record); err != nil {
		return models.TemperatureRecord{}, fmt.Errorf("store temperature: %w", err)
	}
	return record, nil
}

func (service *ObservationService) LogCervicalMucus(ctx context.Context, record models.CervicalMucusRecord, now time.Time) (models.CervicalMucusRecord, error) {
	if err := service.checkDate(record.Date, now); err != nil {
		return models.CervicalMucusRecord{}, err
	}
	if !record.Type.Valid() {
		return models.CervicalMucusRecord{}, ErrInvalidMucusType
	}
	if !record.Amount.Valid() {
		return models.CervicalMucusRecord{}, ErrInvalidMucusAmount
	}
	record.Notes = strings.TrimSpace(record.Notes)

	if err := service.observations.UpsertCervicalMucus(ctx, &record); err != nil {
		return models.CervicalMucusRecord{}, fmt.Errorf("store cervical mucus: %w", err)
	}
	return record, nil
}

func (service *ObservationService) LogSpermPanel(ctx context.Context, panel models.SpermHealthPanel, now time.Time) (models.SpermHealthPanel, error) {
	if err := service.checkDate(panel.Date, now); err != nil {
		return models.SpermHealthPanel{}, err
	}

	measured := 0
	for _, value := range []*float64{panel.Count, panel.Motility, panel.Morphology, panel.Volume} {
		if value == nil {
			continue
		}
		if *value < 0 {
			return models.SpermHealthPanel{}, ErrNegativeMeasurement
		}
		measured++
	}
	if measured == 0 {
		return models.SpermHealthPanel{}, ErrEmptySpermPanel
	}
	// Motility and morphology are percentages of the sample.
	for _, value := range []*float64{panel.Motility, panel.Morphology} {
		if value != nil && *value > models.MaxPercentMeasurement {
			return models.SpermHealthPanel{}, ErrMeasurementOutOfRange
		}
	}
	panel.Notes = strings.TrimSpace(panel.Notes)

	if err := service.observations.UpsertSpermPanel(ctx, &panel); err != nil {
		return models.SpermHealthPanel{}, fmt.Errorf("store sperm panel: %w", err)
	}
	return panel, nil
}
