package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	appConfig "github.com/festy23/sportsday/internal/config"
)

func TestNew(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("LOG_OUTPUT", "stderr")

	logger, err := New()
	require.NoError(t, err)
	assert.True(t, logger.Desugar().Core().Enabled(zapcore.DebugLevel))
}

func TestNewWithConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     appConfig.LoggerConfig
		enabled zapcore.Level
		skipped zapcore.Level
	}{
		{
			name:    "json info",
			cfg:     appConfig.LoggerConfig{Level: "info", Format: "json", Output: "stdout"},
			enabled: zapcore.InfoLevel,
			skipped: zapcore.DebugLevel,
		},
		{
			name:    "console debug",
			cfg:     appConfig.LoggerConfig{Level: "debug", Format: "console", Output: "stdout"},
			enabled: zapcore.DebugLevel,
			skipped: zapcore.DebugLevel - 1,
		},
		{
			name:    "warn to stderr",
			cfg:     appConfig.LoggerConfig{Level: "warn", Format: "json", Output: "stderr"},
			enabled: zapcore.WarnLevel,
			skipped: zapcore.InfoLevel,
		},
		{
			name:    "invalid level falls back to info",
			cfg:     appConfig.LoggerConfig{Level: "loud", Format: "json", Output: "stdout"},
			enabled: zapcore.InfoLevel,
			skipped: zapcore.DebugLevel,
		},
		{
			name:    "empty output means stdout",
			cfg:     appConfig.LoggerConfig{Level: "error", Format: "json"},
			enabled: zapcore.ErrorLevel,
			skipped: zapcore.WarnLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewWithConfig(tt.cfg)
			require.NoError(t, err)

			core := logger.Desugar().Core()
			assert.True(t, core.Enabled(tt.enabled))
			assert.False(t, core.Enabled(tt.skipped))
		})
	}
}

func TestNewWithConfig_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portal.log")

	logger, err := NewWithConfig(appConfig.LoggerConfig{Level: "info", Format: "json", Output: path})
	require.NoError(t, err)

	logger.Infow("bracket generated", "sport", "relay")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(string(data))), &entry))
	assert.Equal(t, "bracket generated", entry["msg"])
	assert.Equal(t, "relay", entry["sport"])
	assert.Equal(t, ServiceName, entry["service"])
}

func TestNewWithConfig_BadPath(t *testing.T) {
	_, err := NewWithConfig(appConfig.LoggerConfig{
		Level:  "info",
		Format: "json",
		Output: filepath.Join(t.TempDir(), "missing", "dir", "portal.log"),
	})

	assert.Error(t, err)
}
