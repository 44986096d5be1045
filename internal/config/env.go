package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads variables from the given .env files (".env" when none given).
// Variables already set in the process win; a missing file is ignored.
func LoadDotEnv(files ...string) {
	_ = godotenv.Load(files...)
}

// GetEnv reads an environment variable with a default fallback.
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAs falls back to defaultValue when key is unset or does not parse.
func getEnvAs[T any](key string, defaultValue T, parse func(string) (T, error)) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := parse(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// GetEnvInt reads an integer environment variable.
func GetEnvInt(key string, defaultValue int) int {
	return getEnvAs(key, defaultValue, strconv.Atoi)
}

// GetEnvBool reads a boolean environment variable ("true", "1", "false", ...).
func GetEnvBool(key string, defaultValue bool) bool {
	return getEnvAs(key, defaultValue, strconv.ParseBool)
}

// GetEnvFloat reads a float environment variable.
func GetEnvFloat(key string, defaultValue float64) float64 {
	return getEnvAs(key, defaultValue, func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
}

// GetEnvDuration reads a duration such as "1m30s". A bare integer is taken as
// seconds, so ROSTER_POLL_INTERVAL=5 means five seconds.
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	return getEnvAs(key, defaultValue, parseDuration)
}

func parseDuration(s string) (time.Duration, error) {
	if secs, err := strconv.Atoi(s); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	return time.ParseDuration(s)
}
