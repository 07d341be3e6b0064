package analytics

import (
	"errors"
	"testing"

	"github.com/terraincognita07/fertilitrack/internal/models"
)

func TestPredictCycleTwoCycles(t *testing.T) {
	t.Parallel()

	prediction, err := PredictCycle([]models.CycleRecord{makeCycle("2025-01-29"), makeCycle("2025-01-01")})
	if err != nil {
		t.Fatalf("PredictCycle returned error: %v", err)
	}
	if prediction == nil {
		t.Fatal("expected prediction for two cycles")
	}
	if prediction.AverageCycleLength != 28 {
		t.Fatalf("expected average cycle length 28, got %d", prediction.AverageCycleLength)
	}
	if len(prediction.CycleLengths) != 1 || prediction.CycleLengths[0] != 28 {
		t.Fatalf("unexpected cycle lengths %#v", prediction.CycleLengths)
	}

	expected := map[string]string{
		"last period start":    "2025-01-29",
		"next period":          "2025-02-26",
		"ovulation":            "2025-02-12",
		"fertile window start": "2025-02-07",
		"fertile window end":   "2025-02-13",
	}
	got := map[string]string{
		"last period start":    prediction.LastPeriodStart.Format("2006-01-02"),
		"next period":          prediction.NextPeriodDate.Format("2006-01-02"),
		"ovulation":            prediction.OvulationDate.Format("2006-01-02"),
		"fertile window start": prediction.FertileWindowStart.Format("2006-01-02"),
		"fertile window end":   prediction.FertileWindowEnd.Format("2006-01-02"),
	}
	for key, want := range expected {
		if got[key] != want {
			t.Fatalf("unexpected %s: got %s, want %s", key, got[key], want)
		}
	}

	if DaysBetween(prediction.OvulationDate, prediction.NextPeriodDate) != LutealPhaseDays {
		t.Fatal("expected ovulation to sit one luteal phase before the next period")
	}
	if DaysBetween(prediction.FertileWindowStart, prediction.FertileWindowEnd) != 6 {
		t.Fatal("expected a six day span between fertile window bounds")
	}
}

func TestPredictCycleNotEnoughData(t *testing.T) {
	t.Parallel()

	for _, cycles := range [][]models.CycleRecord{nil, {makeCycle("2025-01-01")}} {
		prediction, err := PredictCycle(cycles)
		if err != nil {
			t.Fatalf("expected no error for %d cycles, got %v", len(cycles), err)
		}
		if prediction != nil {
			t.Fatalf("expected nil prediction for %d cycles", len(cycles))
		}
	}
}

func TestPredictCycleAveragesAndRounds(t *testing.T) {
	t.Parallel()

	cycles := []models.CycleRecord{
		makeCycle("2025-03-27"),
		makeCycle("2025-02-27"),
		makeCycle("2025-01-30"),
		makeCycle("2025-01-01"),
	}
	prediction, err := PredictCycle(cycles)
	if err != nil {
		t.Fatalf("PredictCycle returned error: %v", err)
	}

	want := []int{29, 28, 28}
	for index, length := range want {
		if prediction.CycleLengths[index] != length {
			t.Fatalf("unexpected cycle lengths %#v", prediction.CycleLengths)
		}
	}
	if prediction.AverageCycleLength != 28 {
		t.Fatalf("expected rounded average 28, got %d", prediction.AverageCycleLength)
	}
	if prediction.NextPeriodDate.Format("2006-01-02") != "2025-04-24" {
		t.Fatalf("unexpected next period %s", prediction.NextPeriodDate.Format("2006-01-02"))
	}
}

func TestPredictCycleIgnoresEndDate(t *testing.T) {
	t.Parallel()

	ongoing := makeCycle("2025-01-29")
	ended := makeCycle("2025-01-01")
	end := mustParseDay("2025-01-05")
	ended.EndDate = &end
	ended.Flow = models.FlowHeavy

	withEnd, err := PredictCycle([]models.CycleRecord{ongoing, ended})
	if err != nil {
		t.Fatalf("PredictCycle returned error: %v", err)
	}
	withoutEnd, err := PredictCycle([]models.CycleRecord{makeCycle("2025-01-29"), makeCycle("2025-01-01")})
	if err != nil {
		t.Fatalf("PredictCycle returned error: %v", err)
	}
	if !withEnd.NextPeriodDate.Equal(withoutEnd.NextPeriodDate) {
		t.Fatal("expected end date to have no effect on the prediction")
	}
}

func TestPredictCycleRejectsMissingStartDate(t *testing.T) {
	t.Parallel()

	_, err := PredictCycle([]models.CycleRecord{makeCycle("2025-01-01"), {ID: 7}})
	if !errors.Is(err, ErrMissingStartDate) {
		t.Fatalf("expected ErrMissingStartDate, got %v", err)
	}
}

func TestCyclePredictionWindowHelpers(t *testing.T) {
	t.Parallel()

	prediction, err := PredictCycle([]models.CycleRecord{makeCycle("2025-01-01"), makeCycle("2025-01-29")})
	if err != nil {
		t.Fatalf("PredictCycle returned error: %v", err)
	}
	if !prediction.InFertileWindow(mustParseDay("2025-02-07")) || !prediction.InFertileWindow(mustParseDay("2025-02-13")) {
		t.Fatal("expected fertile window bounds to be inclusive")
	}
	if prediction.InFertileWindow(mustParseDay("2025-02-14")) {
		t.Fatal("expected day after fertile window to be excluded")
	}
	if !prediction.IsOvulationDay(mustParseDay("2025-02-12")) {
		t.Fatal("expected ovulation day match")
	}

	var missing *CyclePrediction
	if missing.InFertileWindow(mustParseDay("2025-02-10")) || missing.IsOvulationDay(mustParseDay("2025-02-12")) {
		t.Fatal("expected nil prediction helpers to report false")
	}
}
