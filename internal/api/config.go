package api

import (
	"os"
	"time"
)

// DefaultBaseURL is the hosted EduGenie backend.
const DefaultBaseURL = "https://ai-learning-website.onrender.com"

// Config holds HTTP client configuration.
type Config struct {
	// BaseURL is the backend root. No trailing slash.
	BaseURL string

	// Timeout is the maximum duration for a single request. Summarization
	// endpoints chew through whole documents server-side, so this is
	// generous. Default: 120s.
	Timeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL: DefaultBaseURL,
		Timeout: 120 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if u := os.Getenv("EDUGENIE_SERVER_URL"); u != "" {
		cfg.BaseURL = u
	}
	if d := os.Getenv("EDUGENIE_TIMEOUT"); d != "" {
		if parsed, err := time.ParseDuration(d); err == nil {
			cfg.Timeout = parsed
		}
	}
	return cfg
}
