package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/luki/weathermon/internal/app"
	"github.com/luki/weathermon/internal/config"
	"github.com/luki/weathermon/internal/logging"
)

const appName = "weathermon"

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "weathermon",
	Short: "Terminal weather monitoring with simulated sensors",
	Long: `weathermon simulates a weather station in the terminal. Readings of
temperature, humidity, and air quality are taken on a fixed interval
and appended to a JSON history file that keeps the last hundred
entries. A statistics screen aggregates whatever has been recorded.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// .env is a dev convenience; absence is fine.
		_ = godotenv.Load()

		cfg, err := config.LoadFromEnv()
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}

		logFile, err := logging.Setup(cfg, appName, version)
		if err != nil {
			return err
		}
		defer logFile.Close()

		slog.Info("starting",
			"version", version,
			"env", cfg.AppEnv,
			"data_file", cfg.DataFile,
			"log_level", cfg.LogLevel.String(),
		)

		return app.Run(cfg)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the weathermon version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s %s\n", appName, version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
