// Package cmd provides CLI commands for dul-works.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func setupLogger() {
	logLevel := strings.ToUpper(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "INFO"
	}

	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN", "WARNING":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	logger := slog.New(handler)

	slog.SetDefault(logger)
}

var rootCmd = &cobra.Command{
	Use:   "dul-works",
	Short: "Generate portfolio site data from the content workspace",
	Long: `dul-works reads the studio's content workspace and emits the JSON
page props the static site is built from.

Records live in two databases: a work database holding projects,
exhibitions and timeline entries, and an artwork database holding the
individual pieces. Field names in the workspace drift over time, so every
logical field is resolved through an alias table that can be extended
from a YAML file.

Examples:
  dul-works generate --config config.yaml
  dul-works generate --pretty --out public/data
  dul-works slugs --config config.yaml
  dul-works audit --config config.yaml`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	setupLogger()
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(slugsCmd)
	rootCmd.AddCommand(auditCmd)
}
