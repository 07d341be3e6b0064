package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	Reminders RemindersConfig `yaml:"reminders"`
	Analytics AnalyticsConfig `yaml:"analytics"`
}

type ServerConfig struct {
	Port            string        `yaml:"port"             env:"PORT"                    env-default:"8080"`
	Timezone        string        `yaml:"timezone"         env:"TZ"                      env-default:"UTC"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

type DatabaseConfig struct {
	Path string `yaml:"path" env:"DB_PATH" env-default:"data/fertilitrack.db"`
}

type AuthConfig struct {
	SecretKey string        `yaml:"secret_key" env:"SECRET_KEY"`
	TokenTTL  time.Duration `yaml:"token_ttl"  env:"AUTH_TOKEN_TTL" env-default:"168h"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RemindersConfig drives the daily reminder scan.
type RemindersConfig struct {
	Enabled       bool   `yaml:"enabled"        env:"REMINDERS_ENABLED"        env-default:"true"`
	Schedule      string `yaml:"schedule"       env:"REMINDERS_SCHEDULE"       env-default:"0 8 * * *"`
	LeadDays      int    `yaml:"lead_days"      env:"REMINDERS_LEAD_DAYS"      env-default:"2"`
	LookaheadDays int    `yaml:"lookahead_days" env:"REMINDERS_LOOKAHEAD_DAYS" env-default:"7"`
}

type AnalyticsConfig struct {
	MaxRecommendations int `yaml:"max_recommendations" env:"ANALYTICS_MAX_RECOMMENDATIONS" env-default:"50"`
	MaxLookaheadDays   int `yaml:"max_lookahead_days"  env:"ANALYTICS_MAX_LOOKAHEAD_DAYS"  env-default:"365"`
	MaxTrendMonths     int `yaml:"max_trend_months"    env:"ANALYTICS_MAX_TREND_MONTHS"    env-default:"24"`
}

// Location resolves the configured timezone; Validate guarantees it loads.
func (c ServerConfig) Location() *time.Location {
	location, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return location
}
