package analytics

import (
	"time"

	"github.com/terraincognita07/fertilitrack/internal/models"
)

func mustParseDay(raw string) time.Time {
	parsed, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		panic(err)
	}
	return parsed
}

func makeCycle(start string) models.CycleRecord {
	return models.CycleRecord{StartDate: mustParseDay(start)}
}

func floatPtr(value float64) *float64 {
	return &value
}

func stringPtr(value string) *string {
	return &value
}
