package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/luki/weathermon/internal/config"
)

func TestSetupWritesToLogFile(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	cfg := config.Config{
		AppEnv:   "dev",
		LogLevel: slog.LevelInfo,
		LogFile:  filepath.Join(t.TempDir(), "logs", "weathermon.log"),
		Interval: 5 * time.Second,
	}

	f, err := Setup(cfg, "weathermon", "test")
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}

	slog.Info("hello from the test")
	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(cfg.LogFile)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "hello from the test") {
		t.Errorf("log file missing entry: %q", data)
	}
	if !strings.Contains(string(data), "session=") {
		t.Errorf("log file missing session id: %q", data)
	}
}

func TestSetupJSONHandlerInProd(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	cfg := config.Config{
		AppEnv:   "prod",
		LogLevel: slog.LevelInfo,
		LogFile:  filepath.Join(t.TempDir(), "weathermon.log"),
	}

	f, err := Setup(cfg, "weathermon", "1.0.0")
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}

	slog.Info("structured entry")
	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(cfg.LogFile)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"structured entry"`) {
		t.Errorf("expected JSON log line, got %q", data)
	}
	if !strings.Contains(string(data), `"version":"1.0.0"`) {
		t.Errorf("expected version attribute, got %q", data)
	}
}
