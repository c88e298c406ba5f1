package main

import (
	"log/slog"

	"github.com/hyperengineering/stride/internal/config"
	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags: -ldflags "-X main.Version=1.0.0"
var Version = "dev"

var (
	workbookOverride string
	verbose          bool

	// cfg is resolved by initRuntime before any subcommand runs.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "stride",
	Short: "Stride - backlog tracking in a single spreadsheet",
	Long: "Stride tracks tasks, goals, plans, and obstacles in one .xlsx workbook.\n" +
		"The workbook is the database: one sheet per record type, one row per record.",
	PersistentPreRunE: initRuntime,
}

func init() {
	rootCmd.Version = Version

	rootCmd.PersistentFlags().StringVar(&workbookOverride, "file", "",
		"Workbook path (overrides config and STRIDE_WORKBOOK)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false,
		"Enable debug logging")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(interactiveCmd)
}

// initRuntime loads configuration and installs the process-wide logger.
// It runs before every subcommand.
func initRuntime(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load()
	if err != nil {
		return err
	}
	if workbookOverride != "" {
		loaded.Workbook.Path = workbookOverride
	}

	level := parseLogLevel(loaded.Log.Level)
	if verbose {
		level = slog.LevelDebug
	}

	// Logs go to stderr so stdout stays clean for tables and JSON.
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if loaded.Log.Format == "json" {
		handler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	} else {
		handler = slog.NewTextHandler(cmd.ErrOrStderr(), opts)
	}

	// One run id per invocation so log lines from the same command group together.
	slog.SetDefault(slog.New(handler).With("run_id", ulid.Make().String()))

	cfg = loaded
	return nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
