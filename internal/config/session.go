package config

import (
	"fmt"
	"time"
)

// SessionConfig holds admin session cookie settings.
type SessionConfig struct {
	// Secret signs the session cookie.
	Secret string
	// CookieName is the name of the session cookie.
	CookieName string
	// Secure marks the cookie as HTTPS-only.
	Secure bool
	// MaxAge is the cookie lifetime.
	MaxAge time.Duration
}

// LoadSessionConfigFromEnv loads session configuration from environment variables.
func LoadSessionConfigFromEnv() SessionConfig {
	return SessionConfig{
		Secret:     GetEnv("SESSION_SECRET", ""),
		CookieName: GetEnv("SESSION_COOKIE", "sportsday_session"),
		Secure:     GetEnvBool("SESSION_SECURE", false),
		MaxAge:     GetEnvDuration("SESSION_MAX_AGE", 7*24*time.Hour),
	}
}

// Validate validates session configuration.
func (c SessionConfig) Validate() error {
	if len(c.Secret) < 16 {
		return fmt.Errorf("SESSION_SECRET must be at least 16 characters")
	}
	if c.CookieName == "" {
		return fmt.Errorf("SESSION_COOKIE must not be empty")
	}
	if c.MaxAge <= 0 {
		return fmt.Errorf("SESSION_MAX_AGE must be greater than 0")
	}
	return nil
}
