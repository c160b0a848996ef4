package config

import (
	"os"
	"time"

	"github.com/harshpatel5/Event-Ticket-System/internal/backend"
)

type Config struct {
	BackendBaseURL string
	JWTSecret      string
	RequestTimeout time.Duration
}

func LoadConfig() (*Config, error) {
	baseURL := os.Getenv("API_BASE_URL")
	if baseURL == "" {
		baseURL = "http://127.0.0.1:5000/api"
	}

	timeout := 10 * time.Second
	if raw := os.Getenv("REQUEST_TIMEOUT"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			timeout = parsed
		}
	}

	return &Config{
		BackendBaseURL: baseURL,
		JWTSecret:      os.Getenv("JWT_SECRET"),
		RequestTimeout: timeout,
	}, nil
}

// InitBackendClient builds the upstream API client from the loaded config.
func InitBackendClient(cfg *Config) *backend.Client {
	return backend.NewClient(cfg.BackendBaseURL, cfg.RequestTimeout)
}
