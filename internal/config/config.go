package config

import (
	"os"
	"path/filepath"
	"time"
)

const defaultBaseURL = "https://meshpay-backend.onrender.com/api"

type Config struct {
	// BaseURL is the backend API root all gateway calls target.
	BaseURL string
	// PollInterval drives the dashboard notification poller.
	PollInterval time.Duration
	// SessionPath is where the signed-in user record is persisted.
	SessionPath string
}

func Load() *Config {
	return &Config{
		BaseURL:      getEnvAsString("MESHPAY_BASE_URL", defaultBaseURL),
		PollInterval: getEnvAsDuration("MESHPAY_POLL_INTERVAL", 5*time.Second),
		SessionPath:  getEnvAsString("MESHPAY_SESSION_FILE", defaultSessionPath()),
	}
}

func defaultSessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".meshpay_session.json"
	}
	return filepath.Join(dir, "meshpay", "session.json")
}

func getEnvAsString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
