package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config carries everything main needs to wire the application. Values come
// from environment variables with sensible local defaults.
type Config struct {
	AppPort         string
	DatabaseURL     string // postgres DSN; empty means use SQLite
	SQLitePath      string
	SlackWebhookURL string
	NotifyTimeout   time.Duration
	RabbitMQURL     string // empty disables event publishing
	AdminPassword   string
	JWTSecret       string
}

// Load reads configuration from the environment.
func Load() Config {
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("SQLITE_PATH", "orderdesk.db")
	viper.SetDefault("SLACK_WEBHOOK_URL", "")
	viper.SetDefault("NOTIFY_TIMEOUT", "10s")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("ADMIN_PASSWORD", "")
	viper.SetDefault("JWT_SECRET", "dev-only-secret")
	viper.AutomaticEnv()

	return Config{
		AppPort:         viper.GetString("APP_PORT"),
		DatabaseURL:     viper.GetString("DATABASE_URL"),
		SQLitePath:      viper.GetString("SQLITE_PATH"),
		SlackWebhookURL: viper.GetString("SLACK_WEBHOOK_URL"),
		NotifyTimeout:   viper.GetDuration("NOTIFY_TIMEOUT"),
		RabbitMQURL:     viper.GetString("RABBITMQ_URL"),
		AdminPassword:   viper.GetString("ADMIN_PASSWORD"),
		JWTSecret:       viper.GetString("JWT_SECRET"),
	}
}
