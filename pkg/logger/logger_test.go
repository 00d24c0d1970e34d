package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pabio/localekit/pkg/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("writes json records", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf))

		log.Info("hello", "key", "value")

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		require.Equal(t, "hello", record["msg"])
		require.Equal(t, "value", record["key"])
	})

	t.Run("component attribute tags every record", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithComponent("locale"))

		log.Info("hello")

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		require.Equal(t, "locale", record["component"])
	})

	t.Run("level filters records", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelWarn))

		log.Info("dropped")
		require.Zero(t, buf.Len())

		log.Warn("kept")
		require.NotZero(t, buf.Len())
	})
}

func TestNop(t *testing.T) {
	t.Parallel()

	log := logger.Nop()
	require.NotNil(t, log)
	log.Error("goes nowhere")
}

func TestNewWithSentry(t *testing.T) {
	t.Parallel()

	t.Run("empty dsn degrades to stdout only", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.NewWithSentry(logger.SentryConfig{}, logger.WithOutput(&buf))

		log.Info("hello")
		require.NotZero(t, buf.Len())
	})
}
