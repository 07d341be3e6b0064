package reminders

import (
	"context"
	"log/slog"
	"time"

	"github.com/terraincognita07/fertilitrack/internal/analytics"
)

type Reminder struct {
	UserID    uint
	Email     string
	Event     analytics.Event
	DaysUntil int
}

type Notifier interface {
	Notify(ctx context.Context, reminder Reminder) error
}

// LogNotifier writes reminders to the structured log instead of an external channel.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

func (notifier *LogNotifier) Notify(ctx context.Context, reminder Reminder) error {
	notifier.logger.InfoContext(ctx, "reminder",
		"user_id", reminder.UserID,
		"email", reminder.Email,
		"event_type", reminder.Event.Type,
		"title", reminder.Event.Title,
		"date", reminder.Event.Date.Format(time.DateOnly),
		"days_until", reminder.DaysUntil,
	)
	return nil
}
