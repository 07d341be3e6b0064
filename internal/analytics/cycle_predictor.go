package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/terraincognita07/fertilitrack/internal/models"
)

const (
	// PredictionCycleWindow is how many recent cycles callers load for a prediction.
	PredictionCycleWindow = 6
	// MinCyclesForPrediction is the smallest history that yields a cycle length.
	MinCyclesForPrediction = 2

	LutealPhaseDays        = 14
	FertileWindowLeadDays  = 5
	FertileWindowTrailDays = 1
)

type CyclePrediction struct {
	AverageCycleLength int       `json:"average_cycle_length"`
	CycleLengths       []int     `json:"cycle_lengths"`
	LastPeriodStart    time.Time `json:"last_period_start"`
	NextPeriodDate     time.Time `json:"next_period_date"`
	OvulationDate      time.Time `json:"ovulation_date"`
	FertileWindowStart time.Time `json:"fertile_window_start"`
	FertileWindowEnd   time.Time `json:"fertile_window_end"`
}

// PredictCycle projects the next period, ovulation and fertile window from start-date deltas.
// It returns a nil prediction and no error when fewer than two cycles are known.
func PredictCycle(cycles []models.CycleRecord) (*CyclePrediction, error) {
	for index, cycle := range cycles {
		if cycle.StartDate.IsZero() {
			return nil, fmt.Errorf("cycle %d (id %d): %w", index, cycle.ID, ErrMissingStartDate)
		}
	}
	if len(cycles) < MinCyclesForPrediction {
		return nil, nil
	}

	starts := make([]time.Time, 0, len(cycles))
	for _, cycle := range cycles {
		starts = append(starts, DateOnly(cycle.StartDate))
	}
	sort.SliceStable(starts, func(i, j int) bool {
		return starts[i].Before(starts[j])
	})

	lengths := make([]int, 0, len(starts)-1)
	total := 0
	for index := 1; index < len(starts); index++ {
		length := absInt(DaysBetween(starts[index-1], starts[index]))
		lengths = append(lengths, length)
		total += length
	}

	average := roundHalfUp(float64(total) / float64(len(lengths)))
	lastStart := starts[len(starts)-1]
	nextPeriod := lastStart.AddDate(0, 0, average)
	ovulation := nextPeriod.AddDate(0, 0, -LutealPhaseDays)

	return &CyclePrediction{
		AverageCycleLength: average,
		CycleLengths:       lengths,
		LastPeriodStart:    lastStart,
		NextPeriodDate:     nextPeriod,
		OvulationDate:      ovulation,
		FertileWindowStart: ovulation.AddDate(0, 0, -FertileWindowLeadDays),
		FertileWindowEnd:   ovulation.AddDate(0, 0, FertileWindowTrailDays),
	}, nil
}

// InFertileWindow reports whether day lies inside the predicted fertile window.
func (prediction *CyclePrediction) InFertileWindow(day time.Time) bool {
	if prediction == nil {
		return false
	}
	return WithinDays(day, prediction.FertileWindowStart, DaysBetween(prediction.FertileWindowStart, prediction.FertileWindowEnd))
}

// IsOvulationDay reports whether day is the predicted ovulation date.
func (prediction *CyclePrediction) IsOvulationDay(day time.Time) bool {
	return prediction != nil && sameCalendarDay(day, prediction.OvulationDate)
}
