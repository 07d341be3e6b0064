package analytics

import (
	"sort"
	"time"

	"github.com/terraincognita07/fertilitrack/internal/models"
)

const (
	spermTrendsMessage          = "Trends calculated successfully"
	spermTrendsNotEnoughMessage = "Not enough data to calculate trends"
)

type SpermTrends struct {
	Count        TrendResult `json:"count"`
	Motility     TrendResult `json:"motility"`
	Morphology   TrendResult `json:"morphology"`
	Volume       TrendResult `json:"volume"`
	OverallScore TrendResult `json:"overall_score"`
}

type ScoredPanel struct {
	Date  time.Time `json:"date"`
	Score int       `json:"score"`
}

type SpermTrendReport struct {
	Message string        `json:"message"`
	Trends  *SpermTrends  `json:"trends"`
	Records []ScoredPanel `json:"records"`
}

// BuildSpermTrends scores every panel and runs the trend calculator per parameter.
// A parameter only contributes points from panels where it was measured.
func BuildSpermTrends(panels []models.SpermHealthPanel) SpermTrendReport {
	sorted := make([]models.SpermHealthPanel, 0, len(panels))
	sorted = append(sorted, panels...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	records := make([]ScoredPanel, 0, len(sorted))
	scorePoints := make([]TrendPoint, 0, len(sorted))
	parameterPoints := make(map[SpermParameter][]TrendPoint, len(SpermParameters))
	for _, panel := range sorted {
		score := ScoreSpermPanel(panel)
		records = append(records, ScoredPanel{Date: panel.Date, Score: score.OverallScore})
		if len(score.PerParameterScores) > 0 {
			scorePoints = append(scorePoints, TrendPoint{Date: panel.Date, Value: float64(score.OverallScore)})
		}
		for _, parameter := range SpermParameters {
			value := panelValue(panel, parameter)
			if value == nil || *value <= 0 {
				continue
			}
			parameterPoints[parameter] = append(parameterPoints[parameter], TrendPoint{Date: panel.Date, Value: *value})
		}
	}

	if len(sorted) < 2 {
		return SpermTrendReport{Message: spermTrendsNotEnoughMessage, Records: records}
	}

	return SpermTrendReport{
		Message: spermTrendsMessage,
		Trends: &SpermTrends{
			Count:        CalculateTrend(parameterPoints[ParameterCount]),
			Motility:     CalculateTrend(parameterPoints[ParameterMotility]),
			Morphology:   CalculateTrend(parameterPoints[ParameterMorphology]),
			Volume:       CalculateTrend(parameterPoints[ParameterVolume]),
			OverallScore: CalculateTrend(scorePoints),
		},
		Records: records,
	}
}
