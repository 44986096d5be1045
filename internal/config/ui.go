package config

import (
	"fmt"
	"time"
)

// UIConfig holds timings of the interactive admin views.
type UIConfig struct {
	// RosterPollInterval is how often the team builder refreshes available students.
	RosterPollInterval time.Duration
	// FlashTTL is how long an inline success/error message stays visible.
	FlashTTL time.Duration
}

// LoadUIConfigFromEnv loads UI configuration from environment variables.
func LoadUIConfigFromEnv() UIConfig {
	return UIConfig{
		RosterPollInterval: GetEnvDuration("ROSTER_POLL_INTERVAL", 5*time.Second),
		FlashTTL:           GetEnvDuration("FLASH_TTL", 3*time.Second),
	}
}

// Validate validates UI configuration.
func (c UIConfig) Validate() error {
	if c.RosterPollInterval <= 0 {
		return fmt.Errorf("ROSTER_POLL_INTERVAL must be greater than 0")
	}
	if c.FlashTTL <= 0 {
		return fmt.Errorf("FLASH_TTL must be greater than 0")
	}
	return nil
}
