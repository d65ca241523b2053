package logger

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "warning", want: slog.LevelWarn},
		{in: " error ", want: slog.LevelError},
		{in: "verbose", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), "level %q", tt.in)
	}
}

func TestNew_WritesToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "keypad.log")

	log := New(Config{Level: "warn", File: file})
	assert.False(t, log.Enabled(context.Background(), slog.LevelInfo))

	log.Warn("session update conflict", "session_id", "s1")

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "session update conflict")
	assert.Contains(t, string(data), "session_id=s1")
}
