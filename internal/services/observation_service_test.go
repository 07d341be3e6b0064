package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/terraincognita07/fertilitrack/internal/models"
)

type stubObservationRepo struct {
	temperatures []models.TemperatureRecord
	mucus        []models.CervicalMucusRecord
	panels       []models.SpermHealthPanel
}

func (stub *stubObservationRepo) UpsertTemperature(_ context.Context, record *models.TemperatureRecord) error {
	stub.temperatures = append(stub.temperatures, *record)
	return nil
}

func (stub *stubObservationRepo) UpsertCervicalMucus(_ context.Context, record *models.CervicalMucusRecord) error {
	stub.mucus = append(stub.mucus, *record)
	return nil
}

func (stub *stubObservationRepo) UpsertSpermPanel(_ context.Context, panel *models.SpermHealthPanel) error {
	stub.panels = append(stub.panels, *panel)
	return nil
}

func TestObservationServiceLogTemperature(t *testing.T) {
	repo := &stubObservationRepo{}
	service := NewObservationService(repo, time.UTC)
	now := mustDay("2025-04-10")

	tests := []struct {
		name    string
		record  models.TemperatureRecord
		wantErr error
	}{
		{name: "valid", record: models.TemperatureRecord{UserID: 1, Date: mustDay("2025-04-10"), Value: 36.55, Time: "06:45"}},
		{name: "too cold", record: models.TemperatureRecord{UserID: 1, Date: mustDay("2025-04-10"), Value: 34.9}, wantErr: ErrTemperatureOutOfRange},
		{name: "too hot", record: models.TemperatureRecord{UserID: 1, Date: mustDay("2025-04-10"), Value: 42.1}, wantErr: ErrTemperatureOutOfRange},
		{name: "bad clock", record: models.TemperatureRecord{UserID: 1, Date: mustDay("2025-04-10"), Value: 36.5, Time: "25:00"}, wantErr: ErrInvalidClock},
		{name: "future date", record: models.TemperatureRecord{UserID: 1, Date: mustDay("2025-04-11"), Value: 36.5}, wantErr: ErrFutureDate},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := service.LogTemperature(context.Background(), testCase.record, now)
			if testCase.wantErr == nil && err != nil {
				t.Fatalf("expected temperature to be stored, got %v", err)
			}
			if testCase.wantErr != nil && !errors.Is(err, testCase.wantErr) {
				t.Fatalf("expected %v, got %v", testCase.wantErr, err)
			}
		})
	}
	if len(repo.temperatures) != 1 {
		t.Fatalf("expected only the valid record stored, got %d", len(repo.temperatures))
	}
}

func TestObservationServiceLogCervicalMucus(t *testing.T) {
	service := NewObservationService(&stubObservationRepo{}, time.UTC)
	now := mustDay("2025-04-10")

	valid := models.CervicalMucusRecord{UserID: 1, Date: now, Type: models.MucusEggWhite, Amount: models.MucusAmountAbundant}
	if _, err := service.LogCervicalMucus(context.Background(), valid, now); err != nil {
		t.Fatalf("LogCervicalMucus() unexpected error: %v", err)
	}

	badType := valid
	badType.Type = "watery"
	if _, err := service.LogCervicalMucus(context.Background(), badType, now); !errors.Is(err, ErrInvalidMucusType) {
		t.Fatalf("expected ErrInvalidMucusType, got %v", err)
	}

	badAmount := valid
	badAmount.Amount = "heavy"
	if _, err := service.LogCervicalMucus(context.Background(), badAmount, now); !errors.Is(err, ErrInvalidMucusAmount) {
		t.Fatalf("expected ErrInvalidMucusAmount, got %v", err)
	}
}

func TestObservationServiceLogSpermPanel(t *testing.T) {
	service := NewObservationService(&stubObservationRepo{}, time.UTC)
	now := mustDay("2025-04-10")

	if _, err := service.LogSpermPanel(context.Background(), models.SpermHealthPanel{UserID: 1, Date: now}, now); !errors.Is(err, ErrEmptySpermPanel) {
		t.Fatalf("expected ErrEmptySpermPanel, got %v", err)
	}
	if _, err := service.LogSpermPanel(context.Background(), models.SpermHealthPanel{UserID: 1, Date: now, Volume: floatPtr(-1)}, now); !errors.Is(err, ErrNegativeMeasurement) {
		t.Fatalf("expected ErrNegativeMeasurement, got %v", err)
	}
	if _, err := service.LogSpermPanel(context.Background(), models.SpermHealthPanel{UserID: 1, Date: now, Count: floatPtr(22)}, now); err != nil {
		t.Fatalf("LogSpermPanel() unexpected error: %v", err)
	}

	percentCases := []struct {
		name  string
		panel models.SpermHealthPanel
		want  error
	}{
		{name: "motility above 100", panel: models.SpermHealthPanel{Motility: floatPtr(250)}, want: ErrMeasurementOutOfRange},
		{name: "morphology above 100", panel: models.SpermHealthPanel{Count: floatPtr(40), Morphology: floatPtr(900)}, want: ErrMeasurementOutOfRange},
		{name: "motility at 100", panel: models.SpermHealthPanel{Motility: floatPtr(100)}},
		{name: "large count is not a percentage", panel: models.SpermHealthPanel{Count: floatPtr(250)}},
	}
	for _, testCase := range percentCases {
		t.Run(testCase.name, func(t *testing.T) {
			panel := testCase.panel
			panel.UserID = 1
			panel.Date = now
			_, err := service.LogSpermPanel(context.Background(), panel, now)
			if !errors.Is(err, testCase.want) {
				t.Fatalf("LogSpermPanel() error = %v, want %v", err, testCase.want)
			}
		})
	}
}
