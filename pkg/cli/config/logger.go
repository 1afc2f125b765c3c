package config

import (
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/taskflow/memberctl/pkg/domain/model"
	"github.com/taskflow/memberctl/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = map[string]logging.Format{
		"auto":    logging.FormatAuto,
		"console": logging.FormatConsole,
		"json":    logging.FormatJSON,
	}
)

// Logger holds diagnostics settings. Logs go to stderr so that stdout
// carries only rendered output.
type Logger struct {
	Level  string
	Format string
}

// Flags returns CLI flags for Logger configuration
func (l *Logger) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (" + strings.Join(logLevels, ", ") + ")",
			Category:    "Logging",
			Value:       "warn",
			Sources:     cli.EnvVars("MEMBERCTL_LOG_LEVEL"),
			Destination: &l.Level,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "Log format (auto, console, json)",
			Category:    "Logging",
			Value:       "auto",
			Sources:     cli.EnvVars("MEMBERCTL_LOG_FORMAT"),
			Destination: &l.Format,
		},
	}
}

// Configure creates the logger
func (l *Logger) Configure() (*slog.Logger, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	format := logFormats[strings.ToLower(l.Format)]
	if l.Format == "" {
		format = logging.FormatAuto
	}
	return logging.NewLoggerWithFormat(logging.ParseLogLevel(l.Level), os.Stderr, format), nil
}

// LogValue returns structured log value
func (l Logger) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("level", l.Level),
		slog.String("format", l.Format),
	)
}

// Validate rejects unknown levels and formats
func (l *Logger) Validate() error {
	if !slices.Contains(logLevels, strings.ToLower(l.Level)) {
		return goerr.New("invalid log level",
			goerr.V("level", l.Level),
			goerr.T(model.ErrTagMissingInput))
	}
	if _, ok := logFormats[strings.ToLower(l.Format)]; !ok && l.Format != "" {
		return goerr.New("invalid log format",
			goerr.V("format", l.Format),
			goerr.T(model.ErrTagMissingInput))
	}
	return nil
}
