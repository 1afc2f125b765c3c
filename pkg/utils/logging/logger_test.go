package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/taskflow/memberctl/pkg/utils/logging"
)

func TestParseLogLevel(t *testing.T) {
	for input, want := range map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"Error":   slog.LevelError,
		"":        slog.LevelWarn,
		"verbose": slog.LevelWarn,
	} {
		t.Run(input, func(t *testing.T) {
			gt.Equal(t, want, logging.ParseLogLevel(input))
		})
	}
}

func TestAutoFormatWritesJSONToBuffer(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger(slog.LevelInfo, &buf)
	logger.Debug("hidden")
	logger.Info("loaded users", "count", 2)

	var record map[string]any
	gt.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	gt.Equal(t, "loaded users", record["msg"])
	gt.Equal(t, float64(2), record["count"])
}

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLoggerWithFormat(slog.LevelWarn, &buf, logging.FormatConsole)
	logger.Info("hidden")
	logger.Warn("token refresh failed")

	gt.S(t, buf.String()).Contains("token refresh failed")
	gt.False(t, bytes.Contains(buf.Bytes(), []byte("hidden")))
}
