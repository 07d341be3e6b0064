package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

const minSecretKeyLength = 32

var insecureSecretKeys = map[string]bool{
	"change_me_in_production": true,
	"secret":                  true,
}

// Validate checks the loaded configuration for values the server cannot run with.
func (c *Config) Validate() error {
	var errs []error

	if err := validateSecretKey(c.Auth.SecretKey); err != nil {
		errs = append(errs, err)
	}
	if c.Auth.TokenTTL <= 0 {
		errs = append(errs, errors.New("auth.token_ttl must be positive"))
	}
	if port, err := strconv.Atoi(c.Server.Port); err != nil || port <= 0 || port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %q is not a valid port", c.Server.Port))
	}
	if _, err := time.LoadLocation(c.Server.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("server.timezone %q: %w", c.Server.Timezone, err))
	}
	if strings.TrimSpace(c.Database.Path) == "" {
		errs = append(errs, errors.New("database.path is required"))
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log.format %q must be json or text", c.Log.Format))
	}

	if c.Reminders.Enabled {
		if _, err := cron.ParseStandard(c.Reminders.Schedule); err != nil {
			errs = append(errs, fmt.Errorf("reminders.schedule %q: %w", c.Reminders.Schedule, err))
		}
		if c.Reminders.LeadDays < 0 {
			errs = append(errs, errors.New("reminders.lead_days must not be negative"))
		}
		if c.Reminders.LookaheadDays < c.Reminders.LeadDays {
			errs = append(errs, errors.New("reminders.lookahead_days must cover lead_days"))
		}
	}

	if c.Analytics.MaxRecommendations <= 0 || c.Analytics.MaxLookaheadDays <= 0 || c.Analytics.MaxTrendMonths <= 0 {
		errs = append(errs, errors.New("analytics limits must be positive"))
	}

	return errors.Join(errs...)
}

func validateSecretKey(secret string) error {
	trimmed := strings.TrimSpace(secret)
	switch {
	case trimmed == "":
		return errors.New("auth.secret_key is required")
	case insecureSecretKeys[strings.ToLower(trimmed)]:
		return errors.New("auth.secret_key uses an insecure placeholder")
	case len(trimmed) < minSecretKeyLength:
		return fmt.Errorf("auth.secret_key must be at least %d characters", minSecretKeyLength)
	}
	return nil
}
