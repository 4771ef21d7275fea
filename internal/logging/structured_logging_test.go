package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredLogger(t *testing.T) {
	t.Run("creates JSON logger with proper configuration", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		logger.Info("test message",
			slog.String("component", "test"),
			slog.Int("count", 42))

		output := buf.String()

		// Verify JSON structure
		assert.Contains(t, output, `"level":"INFO"`)
		assert.Contains(t, output, `"msg":"test message"`)
		assert.Contains(t, output, `"component":"test"`)
		assert.Contains(t, output, `"count":42`)
		assert.Contains(t, output, `"time":`)
	})

	t.Run("respects log level configuration", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelWarn)

		// These should not appear
		logger.Debug("debug message")
		logger.Info("info message")

		// This should appear
		logger.Warn("warning message")

		output := buf.String()
		assert.NotContains(t, output, "debug message")
		assert.NotContains(t, output, "info message")
		assert.Contains(t, output, "warning message")
	})
}

func TestLoggerHelpers(t *testing.T) {
	t.Run("LogError creates structured error log", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		err := assert.AnError
		LogError(logger, "failed to decode trip payload", err,
			slog.String("trip_id", "trip-42"),
			slog.String("component", "rest_api"))

		output := buf.String()
		assert.Contains(t, output, `"level":"ERROR"`)
		assert.Contains(t, output, `"msg":"failed to decode trip payload"`)
		assert.Contains(t, output, `"error":"assert.AnError general error for testing"`)
		assert.Contains(t, output, `"trip_id":"trip-42"`)
		assert.Contains(t, output, `"component":"rest_api"`)
	})

	t.Run("LogOperation logs structured operation info", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		LogOperation(logger, "style_config_loaded",
			slog.String("path", "style.yaml"),
			slog.Int("status_colors", 4),
			slog.Duration("duration", 0)) // Will be ignored if zero

		output := buf.String()
		assert.Contains(t, output, `"level":"INFO"`)
		assert.Contains(t, output, `"msg":"style_config_loaded"`)
		assert.Contains(t, output, `"path":"style.yaml"`)
		assert.Contains(t, output, `"status_colors":4`)
		assert.NotContains(t, output, `"duration"`)
	})

	t.Run("LogRender logs document details", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		LogRender(logger, "log_sheet", "trip-42", 18231,
			slog.String("log_date", "2025-06-01"))

		output := buf.String()
		assert.Contains(t, output, `"msg":"render"`)
		assert.Contains(t, output, `"document":"log_sheet"`)
		assert.Contains(t, output, `"trip_id":"trip-42"`)
		assert.Contains(t, output, `"bytes":18231`)
		assert.Contains(t, output, `"log_date":"2025-06-01"`)
	})

	t.Run("LogHTTPRequest logs request details", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		LogHTTPRequest(logger, "POST", "/api/render/route-map.svg", 200, 1.5,
			slog.String("user_agent", "test-client"))

		output := buf.String()
		assert.Contains(t, output, `"level":"INFO"`)
		assert.Contains(t, output, `"msg":"http_request"`)
		assert.Contains(t, output, `"method":"POST"`)
		assert.Contains(t, output, `"path":"/api/render/route-map.svg"`)
		assert.Contains(t, output, `"status":200`)
		assert.Contains(t, output, `"duration_ms":1.5`)
		assert.Contains(t, output, `"user_agent":"test-client"`)
	})

	t.Run("helpers are nil-logger safe", func(t *testing.T) {
		LogError(nil, "x", assert.AnError)
		LogOperation(nil, "x")
		LogRender(nil, "x", "y", 0)
		LogHTTPRequest(nil, "GET", "/", 200, 0)
	})
}

func TestContextLogger(t *testing.T) {
	t.Run("stores and retrieves logger from context", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		ctx := context.Background()
		ctx = WithLogger(ctx, logger)

		retrievedLogger := FromContext(ctx)
		require.NotNil(t, retrievedLogger)

		retrievedLogger.Info("test from context")

		output := buf.String()
		assert.Contains(t, output, "test from context")
	})

	t.Run("returns default logger when not in context", func(t *testing.T) {
		ctx := context.Background()
		logger := FromContext(ctx)

		// Should not panic and should return a usable logger
		require.NotNil(t, logger)
		logger.Info("test message") // Should not panic
	})
}
