package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLoggerWithConfig(t *testing.T) {
	tests := []struct {
		name   string
		level  string
		format string
	}{
		{name: "json info", level: "info", format: "json"},
		{name: "text debug", level: "debug", format: "text"},
		{name: "unknown level falls back to info", level: "verbose", format: "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := InitLoggerWithConfig(tt.level, tt.format)
			require.NotNil(t, log)
			assert.Same(t, Logger, log)
		})
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLevel("WARN"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
}

func TestContextLogger_WithContext(t *testing.T) {
	InitLogger()
	cl := NewContextLogger(Logger)

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-123")
	log := cl.WithContext(ctx)
	require.NotNil(t, log)

	// A context with no known keys returns a usable logger too.
	require.NotNil(t, cl.WithContext(context.Background()))
}
