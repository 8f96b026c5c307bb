package logging

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trebuchet-org/mkt/internal/domain/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.in))
		})
	}
}

func TestNewLoggerDebugOverridesEnv(t *testing.T) {
	t.Setenv("MKT_LOG_LEVEL", "error")

	logger := NewLogger(&config.RuntimeConfig{Debug: true})
	assert.True(t, logger.Handler().Enabled(t.Context(), slog.LevelDebug))

	logger = NewLogger(&config.RuntimeConfig{})
	assert.False(t, logger.Handler().Enabled(t.Context(), slog.LevelWarn))
}

func TestShortPath(t *testing.T) {
	assert.Equal(t, "internal/usecase/run_suite.go", shortPath("/home/dev/src/mkt/internal/usecase/run_suite.go"))
	assert.Equal(t, "main.go", shortPath("/somewhere/else/main.go"))
}
