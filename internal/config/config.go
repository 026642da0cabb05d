// Package config loads runtime settings from the environment. Every
// value has a default, so the interactive flow needs no setup at all.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const dirName = ".weathermon"

// Config carries the runtime settings for one invocation.
type Config struct {
	AppEnv   string        // dev or prod, selects the log handler
	LogLevel slog.Level
	DataFile string        // JSON history location
	LogFile  string        // log sink location
	Interval time.Duration // default monitoring interval
}

// LoadFromEnv reads the configuration from environment variables,
// falling back to defaults rooted in ~/.weathermon.
func LoadFromEnv() (Config, error) {
	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	switch appEnv {
	case "dev", "prod":
	default:
		return Config{}, fmt.Errorf("invalid APP_ENV %q (allowed: dev, prod)", appEnv)
	}

	logLevelStr := strings.TrimSpace(os.Getenv("LOG_LEVEL"))
	if logLevelStr == "" {
		logLevelStr = "info"
	}
	level, err := parseLogLevel(logLevelStr)
	if err != nil {
		return Config{}, err
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("cannot find home dir: %w", err)
	}
	dataDir := filepath.Join(home, dirName)

	dataFile := strings.TrimSpace(os.Getenv("WEATHERMON_DATA_FILE"))
	if dataFile == "" {
		dataFile = filepath.Join(dataDir, "weather_data.json")
	}

	logFile := strings.TrimSpace(os.Getenv("WEATHERMON_LOG_FILE"))
	if logFile == "" {
		logFile = filepath.Join(dataDir, "weathermon.log")
	}

	interval := 5 * time.Second
	if v := strings.TrimSpace(os.Getenv("WEATHERMON_INTERVAL")); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			return Config{}, fmt.Errorf("invalid WEATHERMON_INTERVAL %q (want a positive number of seconds)", v)
		}
		interval = time.Duration(secs) * time.Second
	}

	return Config{
		AppEnv:   appEnv,
		LogLevel: level,
		DataFile: dataFile,
		LogFile:  logFile,
		Interval: interval,
	}, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q (allowed: debug, info, warn, error)", s)
	}
}
