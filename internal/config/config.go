package config

import (
	"log/slog"
	"os"
	"strconv"
)

// Config is the process-wide configuration, read once at startup and
// never mutated afterwards.
type Config struct {
	Port        string
	Env         string
	DatabaseDSN string
	AppSecret   string
	FrontendURL string
	Mail        MailConfig
}

// MailConfig holds SMTP transport settings.
type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Load reads configuration from the environment. APP_SECRET has no
// fallback: it signs every session token, so the process refuses to
// start without it.
func Load() Config {
	cfg := Config{
		Port:        getEnv("PORT", "4444"),
		Env:         getEnv("ENV", "development"),
		DatabaseDSN: getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/fitstore?parseTime=true"),
		AppSecret:   os.Getenv("APP_SECRET"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:7777"),
		Mail: MailConfig{
			Host:     getEnv("MAIL_HOST", "localhost"),
			Port:     getEnvInt("MAIL_PORT", 2525),
			Username: getEnv("MAIL_USER", ""),
			Password: getEnv("MAIL_PASS", ""),
			From:     getEnv("MAIL_FROM", "store@fitstore.local"),
		},
	}

	if cfg.AppSecret == "" {
		slog.Error("APP_SECRET must be set")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid integer in environment", "key", key, "value", v)
		return fallback
	}
	return parsed
}
