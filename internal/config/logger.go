package config

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

// LoggerConfig holds logger configuration.
type LoggerConfig struct {
	// Level is a zap level name: debug, info, warn or error.
	Level string
	// Format is json or console.
	Format string
	// Output is stdout, stderr or a file path.
	Output string
}

// LoadLoggerConfigFromEnv loads logger configuration from environment variables.
func LoadLoggerConfigFromEnv() LoggerConfig {
	return LoggerConfig{
		Level:  GetEnv("LOG_LEVEL", "info"),
		Format: GetEnv("LOG_FORMAT", "json"),
		Output: GetEnv("LOG_OUTPUT", "stdout"),
	}
}

// Validate validates logger configuration.
func (c LoggerConfig) Validate() error {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil || level > zapcore.ErrorLevel {
		return fmt.Errorf("invalid LOG_LEVEL: %q (must be: debug, info, warn, error)", c.Level)
	}
	if c.Format != "json" && c.Format != "console" {
		return fmt.Errorf("invalid LOG_FORMAT: %q (must be: json, console)", c.Format)
	}
	return nil
}

// ZapLevel returns the configured level, or info when Level does not parse.
func (c LoggerConfig) ZapLevel() zapcore.Level {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}

// IsProduction reports whether zap's production defaults apply: json output
// above debug level.
func (c LoggerConfig) IsProduction() bool {
	return c.Format == "json" && c.ZapLevel() > zapcore.DebugLevel
}
