package services

import (
	"context"
	"fmt"

	"github.com/terraincognita07/fertilitrack/internal/analytics"
	"github.com/terraincognita07/fertilitrack/internal/models"
)

type RecentCycleReader interface {
	ListRecent(ctx context.Context, userID uint, limit int) ([]models.CycleRecord, error)
}

type PredictionService struct {
	cycles RecentCycleReader
}

func NewPredictionService(cycles RecentCycleReader) *PredictionService {
	return &PredictionService{cycles: cycles}
}

// PredictOvulation returns nil without an error when the user has fewer than two cycles.
func (service *PredictionService) PredictOvulation(ctx context.Context, userID uint) (*analytics.CyclePrediction, error) {
	cycles, err := service.cycles.ListRecent(ctx, userID, analytics.PredictionCycleWindow)
	if err != nil {
		return nil, fmt.Errorf("load recent cycles: %w", err)
	}
	return analytics.PredictCycle(cycles)
}
