package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// APIConfig holds the remote sports-day API settings.
type APIConfig struct {
	// BaseURL is the API root, e.g. "http://localhost:5000/api".
	BaseURL string
	// Timeout bounds a single API call. Zero means no client-side timeout;
	// calls are still cancelled with the inbound request.
	Timeout time.Duration
}

// LoadAPIConfigFromEnv loads API configuration from environment variables.
func LoadAPIConfigFromEnv() APIConfig {
	return APIConfig{
		BaseURL: strings.TrimRight(GetEnv("API_BASE_URL", "http://localhost:5000/api"), "/"),
		Timeout: GetEnvDuration("API_TIMEOUT", 0),
	}
}

// Validate validates API configuration.
func (c APIConfig) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("API_BASE_URL is required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid API_BASE_URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid API_BASE_URL scheme: %q (must be http or https)", u.Scheme)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("API_TIMEOUT must not be negative")
	}
	return nil
}
