package analytics

import "github.com/terraincognita07/fertilitrack/internal/models"

type ReferenceRange struct {
	Min     float64
	Optimal float64
}

type SpermParameter string

const (
	ParameterCount      SpermParameter = "count"
	ParameterMotility   SpermParameter = "motility"
	ParameterMorphology SpermParameter = "morphology"
	ParameterVolume     SpermParameter = "volume"
)

// SpermParameters fixes the evaluation and recommendation order.
var SpermParameters = []SpermParameter{ParameterCount, ParameterMotility, ParameterMorphology, ParameterVolume}

// Reference ranges (count in million/mL, motility and morphology in %, volume in mL)
// and the score anchors of the piecewise-linear scale.
var referenceRanges = map[SpermParameter]ReferenceRange{
	ParameterCount:      {Min: 15, Optimal: 40},
	ParameterMotility:   {Min: 40, Optimal: 60},
	ParameterMorphology: {Min: 4, Optimal: 15},
	ParameterVolume:     {Min: 1.5, Optimal: 4},
}

const (
	scoreAtOptimal = 100.0
	scoreAtMinimum = 50.0

	excellentThreshold = 80
	goodThreshold      = 60
	fairThreshold      = 40
)

type ScoreCategory string

const (
	CategoryExcellent ScoreCategory = "Excellent"
	CategoryGood      ScoreCategory = "Good"
	CategoryFair      ScoreCategory = "Fair"
	CategoryPoor      ScoreCategory = "Poor"
	CategoryUnknown   ScoreCategory = "Unknown"
)

var categoryDescriptions = map[ScoreCategory]string{
	CategoryExcellent: "All measured parameters are at or near optimal levels.",
	CategoryGood:      "Most parameters are within healthy reference ranges.",
	CategoryFair:      "Some parameters are below optimal levels and may benefit from lifestyle changes.",
	CategoryPoor:      "Several parameters are below reference ranges. Consider consulting a fertility specialist.",
	CategoryUnknown:   "Not enough data to calculate a health score.",
}

var lowParameterAdvice = map[SpermParameter]string{
	ParameterCount:      "Sperm count is below the reference range. Limiting alcohol, avoiding smoking and maintaining a healthy weight can help.",
	ParameterMotility:   "Motility is below the reference range. Regular moderate exercise and antioxidant-rich foods may improve sperm movement.",
	ParameterMorphology: "Morphology is below the reference range. Avoid prolonged heat exposure such as hot tubs or laptops on the lap.",
	ParameterVolume:     "Semen volume is below the reference range. Stay well hydrated and mention it to a specialist if it persists.",
}

type ScoreResult struct {
	OverallScore       int                    `json:"overall_score"`
	Category           ScoreCategory          `json:"category"`
	Description        string                 `json:"description"`
	PerParameterScores map[SpermParameter]int `json:"per_parameter_scores"`
	Recommendations    []string               `json:"recommendations"`
}

// ReferenceRangeFor returns the fixed range of a parameter.
func ReferenceRangeFor(parameter SpermParameter) (ReferenceRange, bool) {
	reference, ok := referenceRanges[parameter]
	return reference, ok
}

// ScoreParameter maps a measurement onto 0..100. The bool is false when the value is
// absent or zero, in which case the parameter must be left out of the composite.
func ScoreParameter(value *float64, reference ReferenceRange) (float64, bool) {
	if value == nil || *value <= 0 {
		return 0, false
	}
	x := *value
	switch {
	case x >= reference.Optimal:
		return scoreAtOptimal, true
	case x >= reference.Min:
		return scoreAtMinimum + (x-reference.Min)/(reference.Optimal-reference.Min)*(scoreAtOptimal-scoreAtMinimum), true
	default:
		return x / reference.Min * scoreAtMinimum, true
	}
}

// ScoreSpermPanel is total: every panel, including an empty one, yields a result.
func ScoreSpermPanel(panel models.SpermHealthPanel) ScoreResult {
	result := ScoreResult{
		PerParameterScores: make(map[SpermParameter]int, len(SpermParameters)),
		Recommendations:    []string{},
	}

	total := 0.0
	included := 0
	for _, parameter := range SpermParameters {
		value := panelValue(panel, parameter)
		reference := referenceRanges[parameter]
		score, ok := ScoreParameter(value, reference)
		if !ok {
			continue
		}
		total += score
		included++
		result.PerParameterScores[parameter] = roundHalfUp(score)
		if *value < reference.Min {
			result.Recommendations = append(result.Recommendations, lowParameterAdvice[parameter])
		}
	}

	if included > 0 {
		result.OverallScore = roundHalfUp(total / float64(included))
	}
	result.Category = CategorizeScore(result.OverallScore)
	result.Description = categoryDescriptions[result.Category]
	return result
}

// CategorizeScore buckets a composite score.
func CategorizeScore(score int) ScoreCategory {
	switch {
	case score >= excellentThreshold:
		return CategoryExcellent
	case score >= goodThreshold:
		return CategoryGood
	case score >= fairThreshold:
		return CategoryFair
	case score > 0:
		return CategoryPoor
	default:
		return CategoryUnknown
	}
}

func panelValue(panel models.SpermHealthPanel, parameter SpermParameter) *float64 {
	switch parameter {
	case ParameterCount:
		return panel.Count
	case ParameterMotility:
		return panel.Motility
	case ParameterMorphology:
		return panel.Morphology
	case ParameterVolume:
		return panel.Volume
	default:
		return nil
	}
}
