package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/fertilitrack/internal/db"
	"github.com/terraincognita07/fertilitrack/internal/models"
	"github.com/terraincognita07/fertilitrack/internal/services"
)

const testPassword = "StrongPass1"

var testNow = time.Date(2025, 4, 10, 9, 0, 0, 0, time.UTC)

type testEnv struct {
	app   *fiber.App
	repos *db.Repositories
	auth  *services.AuthService
}

func newTestApp(t *testing.T) *testEnv {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "fertilitrack-api-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	repos := db.NewRepositories(database)
	now := func() time.Time { return testNow }
	authService := services.NewAuthService(repos.Users)

	handler, err := NewHandler(Options{
		SecretKey: "test-secret-key-with-enough-length-123",
		TokenTTL:  time.Hour,
		Location:  time.UTC,
		Now:       now,
	}, Dependencies{
		AuthService:        authService,
		PredictionService:  services.NewPredictionService(repos.Cycles),
		HealthService:      services.NewHealthService(repos.Observations, repos.Observations, time.UTC),
		ObservationService: services.NewObservationService(repos.Observations, time.UTC),
		CycleService:       services.NewCycleService(repos.Cycles, time.UTC),
		ContentService:     services.NewContentService(repos.Content, 0),
		CalendarService:    services.NewCalendarService(repos.Users, repos.Partners, repos.Appointments, repos.Cycles, time.UTC, 365),
		AppointmentService: services.NewAppointmentService(repos.Appointments),
		PartnerService:     services.NewPartnerService(repos.Partners),
		Usage:              services.NewUsageMeter(now),
	})
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	return &testEnv{app: app, repos: repos, auth: authService}
}

func (env *testEnv) createUser(t *testing.T, email string, role models.Role, displayName string) models.User {
	t.Helper()

	user, err := env.auth.RegisterUser(context.Background(), email, testPassword, displayName, role, testNow)
	if err != nil {
		t.Fatalf("register user %s: %v", email, err)
	}
	return user
}

func (env *testEnv) do(t *testing.T, method string, path string, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encode request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, reader)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := env.app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func (env *testEnv) login(t *testing.T, email string) string {
	t.Helper()

	response := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"email": email, "password": testPassword})
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected login status 200, got %d", response.StatusCode)
	}

	payload := struct {
		Token string `json:"token"`
	}{}
	decodeJSON(t, response.Body, &payload)
	if payload.Token == "" {
		t.Fatal("expected non-empty token")
	}
	return payload.Token
}

func expectStatus(t *testing.T, response *http.Response, want int) {
	t.Helper()
	if response.StatusCode != want {
		body, _ := io.ReadAll(response.Body)
		t.Fatalf("expected status %d, got %d: %s", want, response.StatusCode, string(body))
	}
}

func decodeJSON(t *testing.T, body io.Reader, target any) {
	t.Helper()

	raw, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		t.Fatalf("decode response body %q: %v", string(raw), err)
	}
}

func readAPIError(t *testing.T, body io.Reader) string {
	t.Helper()

	payload := map[string]string{}
	decodeJSON(t, body, &payload)
	return payload["error"]
}

func uintString(value uint) string {
	return strconv.FormatUint(uint64(value), 10)
}
