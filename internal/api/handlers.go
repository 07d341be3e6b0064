package api

import (
	"errors"
	"time"

	"github.com/terraincognita07/fertilitrack/internal/services"
)

const (
	defaultAuthTokenTTL   = 7 * 24 * time.Hour
	defaultMaxDays        = 365
	defaultMaxTrendMonths = 24
)

type Handler struct {
	secretKey    []byte
	tokenTTL     time.Duration
	location     *time.Location
	now          func() time.Time
	limits       Limits
	loginLimiter *attemptLimiter

	authService        *services.AuthService
	predictionService  *services.PredictionService
	healthService      *services.HealthService
	observationService *services.ObservationService
	cycleService       *services.CycleService
	contentService     *services.ContentService
	calendarService    *services.CalendarService
	appointmentService *services.AppointmentService
	partnerService     *services.PartnerService
	usage              *services.UsageMeter
}

type Dependencies struct {
	AuthService        *services.AuthService
	PredictionService  *services.PredictionService
	HealthService      *services.HealthService
	ObservationService *services.ObservationService
	CycleService       *services.CycleService
	ContentService     *services.ContentService
	CalendarService    *services.CalendarService
	AppointmentService *services.AppointmentService
	PartnerService     *services.PartnerService
	Usage              *services.UsageMeter
}

// Limits bounds the query windows a client may ask for.
type Limits struct {
	MaxDays        int
	MaxTrendMonths int
}

type Options struct {
	SecretKey string
	TokenTTL  time.Duration
	Location  *time.Location
	Now       func() time.Time
	Limits    Limits
}

func NewHandler(options Options, dependencies Dependencies) (*Handler, error) {
	if options.SecretKey == "" {
		return nil, errors.New("secret key is required")
	}
	if dependencies.AuthService == nil {
		return nil, errors.New("auth service is required")
	}
	if options.TokenTTL <= 0 {
		options.TokenTTL = defaultAuthTokenTTL
	}
	if options.Location == nil {
		options.Location = time.UTC
	}
	if options.Now == nil {
		options.Now = time.Now
	}
	if options.Limits.MaxDays <= 0 {
		options.Limits.MaxDays = defaultMaxDays
	}
	if options.Limits.MaxTrendMonths <= 0 {
		options.Limits.MaxTrendMonths = defaultMaxTrendMonths
	}
	if dependencies.Usage == nil {
		dependencies.Usage = services.NewUsageMeter(options.Now)
	}

	return &Handler{
		secretKey:    []byte(options.SecretKey),
		tokenTTL:     options.TokenTTL,
		location:     options.Location,
		now:          options.Now,
		limits:       options.Limits,
		loginLimiter: newAttemptLimiter(),

		authService:        dependencies.AuthService,
		predictionService:  dependencies.PredictionService,
		healthService:      dependencies.HealthService,
		observationService: dependencies.ObservationService,
		cycleService:       dependencies.CycleService,
		contentService:     dependencies.ContentService,
		calendarService:    dependencies.CalendarService,
		appointmentService: dependencies.AppointmentService,
		partnerService:     dependencies.PartnerService,
		usage:              dependencies.Usage,
	}, nil
}
