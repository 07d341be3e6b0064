package reminders

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/terraincognita07/fertilitrack/internal/analytics"
	"github.com/terraincognita07/fertilitrack/internal/config"
	"github.com/terraincognita07/fertilitrack/internal/models"
	"github.com/terraincognita07/fertilitrack/internal/services"
)

const maxSentKeys = 500

type OwnerLister interface {
	ListOwners(ctx context.Context) ([]models.User, error)
}

type UpcomingSource interface {
	Upcoming(ctx context.Context, userID uint, days int, now time.Time) (services.UpcomingEvents, error)
}

type Scheduler struct {
	owners        OwnerLister
	events        UpcomingSource
	notifier      Notifier
	location      *time.Location
	schedule      string
	leadDays      int
	lookaheadDays int
	now           func() time.Time

	cron *cron.Cron

	mu   sync.Mutex
	sent map[string]time.Time
}

func NewScheduler(cfg config.RemindersConfig, owners OwnerLister, events UpcomingSource, notifier Notifier, location *time.Location) *Scheduler {
	if location == nil {
		location = time.UTC
	}
	return &Scheduler{
		owners:        owners,
		events:        events,
		notifier:      notifier,
		location:      location,
		schedule:      cfg.Schedule,
		leadDays:      cfg.LeadDays,
		lookaheadDays: cfg.LookaheadDays,
		now:           time.Now,
		sent:          make(map[string]time.Time),
	}
}

// Start registers the scan on the cron schedule. Scans run until Stop is called.
func (scheduler *Scheduler) Start(ctx context.Context) error {
	runner := cron.New(cron.WithLocation(scheduler.location))
	if _, err := runner.AddFunc(scheduler.schedule, func() {
		sent := scheduler.RunOnce(ctx)
		slog.InfoContext(ctx, "reminder scan finished", "sent", sent)
	}); err != nil {
		return fmt.Errorf("schedule reminders %q: %w", scheduler.schedule, err)
	}
	runner.Start()
	scheduler.cron = runner
	slog.InfoContext(ctx, "reminder scheduler started", "schedule", scheduler.schedule, "lead_days", scheduler.leadDays)
	return nil
}

// Stop waits for a running scan to finish.
func (scheduler *Scheduler) Stop() {
	if scheduler.cron == nil {
		return
	}
	<-scheduler.cron.Stop().Done()
}

// RunOnce scans every owner and returns how many reminders were handed to the notifier.
func (scheduler *Scheduler) RunOnce(ctx context.Context) int {
	owners, err := scheduler.owners.ListOwners(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "reminders: list owners failed", "error", err)
		return 0
	}

	now := scheduler.now()
	sent := 0
	for _, owner := range owners {
		upcoming, err := scheduler.events.Upcoming(ctx, owner.ID, scheduler.lookaheadDays, now)
		if err != nil {
			slog.ErrorContext(ctx, "reminders: upcoming events failed", "user_id", owner.ID, "error", err)
			continue
		}

		today := upcoming.Window.Today
		for _, event := range upcoming.Events {
			daysUntil := analytics.DaysBetween(today, event.Date)
			if daysUntil != scheduler.leadDays {
				continue
			}

			key := fmt.Sprintf("%s:%d:%s:%s", event.Type, owner.ID, event.Date.Format(time.DateOnly), event.Title)
			if !scheduler.shouldSend(key, today) {
				continue
			}

			reminder := Reminder{UserID: owner.ID, Email: owner.Email, Event: event, DaysUntil: daysUntil}
			if err := scheduler.notifier.Notify(ctx, reminder); err != nil {
				slog.ErrorContext(ctx, "reminders: notify failed", "user_id", owner.ID, "event_type", event.Type, "error", err)
				scheduler.release(key)
				continue
			}
			sent++
		}
	}
	return sent
}

// shouldSend claims key for today. A claim whose delivery fails is handed back with release
// so the next scan retries it.
func (scheduler *Scheduler) shouldSend(key string, today time.Time) bool {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()

	if sentOn, ok := scheduler.sent[key]; ok && sentOn.Equal(today) {
		return false
	}

	if len(scheduler.sent) >= maxSentKeys {
		scheduler.sent = make(map[string]time.Time)
	}
	scheduler.sent[key] = today
	return true
}

func (scheduler *Scheduler) release(key string) {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()

	delete(scheduler.sent, key)
}
