package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/terraincognita07/fertilitrack/internal/api"
	"github.com/terraincognita07/fertilitrack/internal/config"
	"github.com/terraincognita07/fertilitrack/internal/db"
	"github.com/terraincognita07/fertilitrack/internal/reminders"
	"github.com/terraincognita07/fertilitrack/internal/services"
	"gorm.io/gorm"
)

// Runtime holds the opened database and every service built on top of it.
type Runtime struct {
	Config   *config.Config
	Location *time.Location
	Database *gorm.DB
	Repos    *db.Repositories

	Auth         *services.AuthService
	Predictions  *services.PredictionService
	Health       *services.HealthService
	Observations *services.ObservationService
	Cycles       *services.CycleService
	Content      *services.ContentService
	Calendar     *services.CalendarService
	Appointments *services.AppointmentService
	Partners     *services.PartnerService
	Usage        *services.UsageMeter
}

func Open(cfg *config.Config) (*Runtime, error) {
	database, err := db.OpenSQLite(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	location := cfg.Server.Location()
	repos := db.NewRepositories(database)
	return &Runtime{
		Config:   cfg,
		Location: location,
		Database: database,
		Repos:    repos,

		Auth:         services.NewAuthService(repos.Users),
		Predictions:  services.NewPredictionService(repos.Cycles),
		Health:       services.NewHealthService(repos.Observations, repos.Observations, location),
		Observations: services.NewObservationService(repos.Observations, location),
		Cycles:       services.NewCycleService(repos.Cycles, location),
		Content:      services.NewContentService(repos.Content, cfg.Analytics.MaxRecommendations),
		Calendar:     services.NewCalendarService(repos.Users, repos.Partners, repos.Appointments, repos.Cycles, location, cfg.Analytics.MaxLookaheadDays),
		Appointments: services.NewAppointmentService(repos.Appointments),
		Partners:     services.NewPartnerService(repos.Partners),
		Usage:        services.NewUsageMeter(time.Now),
	}, nil
}

func (runtime *Runtime) Close() error {
	sqlDB, err := runtime.Database.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// NewServer builds the Fiber app with middleware and every route registered.
func (runtime *Runtime) NewServer() (*fiber.App, error) {
	handler, err := api.NewHandler(api.Options{
		SecretKey: runtime.Config.Auth.SecretKey,
		TokenTTL:  runtime.Config.Auth.TokenTTL,
		Location:  runtime.Location,
		Limits: api.Limits{
			MaxDays:        runtime.Config.Analytics.MaxLookaheadDays,
			MaxTrendMonths: runtime.Config.Analytics.MaxTrendMonths,
		},
	}, api.Dependencies{
		AuthService:        runtime.Auth,
		PredictionService:  runtime.Predictions,
		HealthService:      runtime.Health,
		ObservationService: runtime.Observations,
		CycleService:       runtime.Cycles,
		ContentService:     runtime.Content,
		CalendarService:    runtime.Calendar,
		AppointmentService: runtime.Appointments,
		PartnerService:     runtime.Partners,
		Usage:              runtime.Usage,
	})
	if err != nil {
		return nil, fmt.Errorf("handler init failed: %w", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "Fertilitrack",
		DisableStartupMessage: true,
		ErrorHandler:          jsonErrorHandler,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
	}))

	api.RegisterRoutes(app, handler)
	return app, nil
}

func jsonErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "internal error"
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status = fiberErr.Code
		message = fiberErr.Message
	} else {
		slog.ErrorContext(c.UserContext(), "unhandled request error", "path", c.Path(), "error", err)
	}
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// Run serves the API and the reminder scheduler until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config) error {
	NewLogger(cfg.Log)

	runtime, err := Open(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := runtime.Close(); err != nil {
			slog.Warn("database close failed", "error", err)
		}
	}()

	app, err := runtime.NewServer()
	if err != nil {
		return err
	}

	if cfg.Reminders.Enabled {
		scheduler := reminders.NewScheduler(cfg.Reminders, runtime.Repos.Users, runtime.Calendar,
			reminders.NewLogNotifier(slog.Default()), runtime.Location)
		if err := scheduler.Start(ctx); err != nil {
			return err
		}
		defer scheduler.Stop()
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			slog.Error("server shutdown failed", "error", err)
		}
	}()

	slog.Info("fertilitrack listening",
		"port", cfg.Server.Port,
		"db", cfg.Database.Path,
		"tz", runtime.Location.String(),
	)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}
