package analytics

import (
	"fmt"
	"sort"
	"time"
)

type TrendDirection string

const (
	TrendImproving TrendDirection = "improving"
	TrendDeclining TrendDirection = "declining"
	TrendStable    TrendDirection = "stable"
	TrendUnknown   TrendDirection = "unknown"
)

// TrendThresholdPercent is the absolute change a series needs before it stops being stable.
const TrendThresholdPercent = 5

const (
	trendNotEnoughDataMessage = "Not enough data"
	trendStableMessage        = "No significant change"
)

type TrendPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

type TrendResult struct {
	Direction        TrendDirection `json:"direction"`
	PercentageChange int            `json:"percentage_change"`
	Message          string         `json:"message"`
}

// CalculateTrend compares the earliest and latest values of a series.
// The input is copied and sorted by date; it does not have to be ordered.
func CalculateTrend(points []TrendPoint) TrendResult {
	if len(points) < 2 {
		return TrendResult{
			Direction:        TrendUnknown,
			PercentageChange: 0,
			Message:          trendNotEnoughDataMessage,
		}
	}

	sorted := make([]TrendPoint, 0, len(points))
	sorted = append(sorted, points...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	first := sorted[0].Value
	last := sorted[len(sorted)-1].Value

	if first == 0 {
		if last > 0 {
			return TrendResult{Direction: TrendImproving, Message: "Improved from zero"}
		}
		return TrendResult{Direction: TrendStable, Message: trendStableMessage}
	}

	change := roundHalfUp((last - first) / first * 100)
	switch {
	case change > TrendThresholdPercent:
		return TrendResult{
			Direction:        TrendImproving,
			PercentageChange: change,
			Message:          fmt.Sprintf("Improved by %d%%", absInt(change)),
		}
	case change < -TrendThresholdPercent:
		return TrendResult{
			Direction:        TrendDeclining,
			PercentageChange: change,
			Message:          fmt.Sprintf("Declined by %d%%", absInt(change)),
		}
	default:
		return TrendResult{
			Direction:        TrendStable,
			PercentageChange: change,
			Message:          trendStableMessage,
		}
	}
}
