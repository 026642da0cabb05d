// Package logging configures the process-wide slog logger. The TUI owns
// the terminal, so log output goes to a file under the data directory.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"

	"github.com/luki/weathermon/internal/config"
)

// Setup opens the log sink and installs the default slog logger, tagged
// with the app name, version, and a fresh session id. The caller closes
// the returned file on shutdown.
func Setup(cfg config.Config, appName, version string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
		return nil, fmt.Errorf("cannot create log dir: %w", err)
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	var handler slog.Handler
	if cfg.AppEnv == "prod" {
		handler = slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: cfg.LogLevel,
		})
	} else {
		handler = tint.NewHandler(f, &tint.Options{
			Level:      cfg.LogLevel,
			TimeFormat: time.DateTime,
			NoColor:    !isatty.IsTerminal(f.Fd()),
		})
	}

	logger := slog.New(handler).With(
		"app", appName,
		"version", version,
		"session", uuid.NewString(),
	)
	slog.SetDefault(logger)

	return f, nil
}
