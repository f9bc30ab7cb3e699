package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"restaurant/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":    slog.LevelDebug,
		" WARN ":   slog.LevelWarn,
		"warning":  slog.LevelWarn,
		"error":    slog.LevelError,
		"info":     slog.LevelInfo,
		"":         slog.LevelInfo,
		"verbose!": slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, logger.ParseLevel(in), in)
	}
}

func TestNew(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var buf bytes.Buffer
	log := logger.New(logger.Options{Service: "restaurant", Env: "test", Level: "warn", Output: &buf})

	log.Info("dropped")
	log.Warn("kept", "order_id", "o-1")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "restaurant", entry["service"])
	assert.Equal(t, "test", entry["env"])
	assert.Equal(t, "o-1", entry["order_id"])
	assert.Same(t, log, slog.Default())
}
