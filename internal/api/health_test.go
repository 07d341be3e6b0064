package api

import (
	"net/http"
	"testing"

	"github.com/terraincognita07/fertilitrack/internal/analytics"
	"github.com/terraincognita07/fertilitrack/internal/models"
)

func TestSpermScoreLatestPanel(t *testing.T) {
	env := newTestApp(t)
	env.createUser(t, "partner@example.com", models.RolePartner, "")
	token := env.login(t, "partner@example.com")

	missing := env.do(t, http.MethodGet, "/api/health/sperm/score", token, nil)
	missing.Body.Close()
	expectStatus(t, missing, http.StatusNotFound)

	created := env.do(t, http.MethodPost, "/api/health/sperm", token, map[string]any{
		"date":       "2025-04-01",
		"count":      40,
		"motility":   60,
		"morphology": 15,
		"volume":     4,
	})
	created.Body.Close()
	expectStatus(t, created, http.StatusCreated)

	response := env.do(t, http.MethodGet, "/api/health/sperm/score", token, nil)
	defer response.Body.Close()
	expectStatus(t, response, http.StatusOK)

	var payload scoreResponse
	decodeJSON(t, response.Body, &payload)
	if payload.OverallScore != 100 || payload.Category != analytics.CategoryExcellent || len(payload.Recommendations) != 0 {
		t.Fatalf("unexpected score %#v", payload)
	}
	if payload.Date != "2025-04-01" || payload.PanelID == 0 {
		t.Fatalf("expected panel metadata, got id=%d date=%q", payload.PanelID, payload.Date)
	}
}

func TestSpermScoreRejectsBadID(t *testing.T) {
	env := newTestApp(t)
	env.createUser(t, "partner@example.com", models.RolePartner, "")
	token := env.login(t, "partner@example.com")

	response := env.do(t, http.MethodGet, "/api/health/sperm/score?id=abc", token, nil)
	defer response.Body.Close()
	expectStatus(t, response, http.StatusBadRequest)
}

func TestSpermPanelRejectsPercentagesAbove100(t *testing.T) {
	env := newTestApp(t)
	env.createUser(t, "partner@example.com", models.RolePartner, "")
	token := env.login(t, "partner@example.com")

	created := env.do(t, http.MethodPost, "/api/health/sperm", token, map[string]any{
		"date": "2025-04-09", "count": 40, "motility": 250, "morphology": 900,
	})
	defer created.Body.Close()
	expectStatus(t, created, http.StatusBadRequest)

	missing := env.do(t, http.MethodGet, "/api/health/sperm/score", token, nil)
	missing.Body.Close()
	expectStatus(t, missing, http.StatusNotFound)
}

func TestSpermTrendsOverLoggedPanels(t *testing.T) {
	env := newTestApp(t)
	env.createUser(t, "partner@example.com", models.RolePartner, "")
	token := env.login(t, "partner@example.com")

	for _, panel := range []map[string]any{
		{"date": "2025-01-15", "count": 20, "motility": 50},
		{"date": "2025-03-15", "count": 30, "motility": 50},
	} {
		created := env.do(t, http.MethodPost, "/api/health/sperm", token, panel)
		created.Body.Close()
		expectStatus(t, created, http.StatusCreated)
	}

	response := env.do(t, http.MethodGet, "/api/health/sperm/trends?months=6", token, nil)
	defer response.Body.Close()
	expectStatus(t, response, http.StatusOK)

	var payload spermTrendsResponse
	decodeJSON(t, response.Body, &payload)
	if payload.Trends == nil {
		t.Fatalf("expected trends, got %#v", payload)
	}
	if payload.Trends.Count.Direction != analytics.TrendImproving || payload.Trends.Count.PercentageChange != 50 {
		t.Fatalf("unexpected count trend %#v", payload.Trends.Count)
	}
	if payload.Trends.Motility.Direction != analytics.TrendStable {
		t.Fatalf("unexpected motility trend %#v", payload.Trends.Motility)
	}
	if len(payload.Records) != 2 || payload.Records[0].Date != "2025-01-15" {
		t.Fatalf("unexpected records %#v", payload.Records)
	}

	invalid := env.do(t, http.MethodGet, "/api/health/sperm/trends?months=0", token, nil)
	defer invalid.Body.Close()
	expectStatus(t, invalid, http.StatusBadRequest)
}

func TestTemperatureLoggingAndTrend(t *testing.T) {
	env := newTestApp(t)
	env.createUser(t, "owner@example.com", models.RoleOwner, "")
	token := env.login(t, "owner@example.com")

	outOfRange := env.do(t, http.MethodPost, "/api/temperatures", token, map[string]any{"date": "2025-04-01", "value": 43.2})
	defer outOfRange.Body.Close()
	expectStatus(t, outOfRange, http.StatusBadRequest)
	if message := readAPIError(t, outOfRange.Body); message != "temperature out of range" {
		t.Fatalf("unexpected error %q", message)
	}

	for _, entry := range []map[string]any{
		{"date": "2025-04-01", "value": 36.2, "time": "06:30"},
		{"date": "2025-04-01", "value": 36.3, "time": "06:40"},
		{"date": "2025-04-09", "value": 36.9},
	} {
		created := env.do(t, http.MethodPost, "/api/temperatures", token, entry)
		created.Body.Close()
		expectStatus(t, created, http.StatusCreated)
	}

	response := env.do(t, http.MethodGet, "/api/health/temperature/trends?days=30", token, nil)
	defer response.Body.Close()
	expectStatus(t, response, http.StatusOK)

	var payload temperatureTrendResponse
	decodeJSON(t, response.Body, &payload)
	if len(payload.Records) != 2 {
		t.Fatalf("expected one record per day, got %#v", payload.Records)
	}
	if payload.Records[0].Value != 36.3 {
		t.Fatalf("expected relogged value 36.3, got %v", payload.Records[0].Value)
	}
	if payload.Trend.Direction != analytics.TrendStable {
		t.Fatalf("expected stable temperature trend, got %#v", payload.Trend)
	}
}

func TestCervicalMucusValidation(t *testing.T) {
	env := newTestApp(t)
	env.createUser(t, "owner@example.com", models.RoleOwner, "")
	token := env.login(t, "owner@example.com")

	created := env.do(t, http.MethodPost, "/api/cervical-mucus", token, map[string]any{"date": "2025-04-08", "type": "egg-white", "amount": "abundant"})
	created.Body.Close()
	expectStatus(t, created, http.StatusCreated)

	invalid := env.do(t, http.MethodPost, "/api/cervical-mucus", token, map[string]any{"date": "2025-04-08", "type": "watery", "amount": "light"})
	defer invalid.Body.Close()
	expectStatus(t, invalid, http.StatusBadRequest)
}
