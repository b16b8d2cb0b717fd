// Package cmd implements the CLI commands for sysfuzz.
package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"sysfuzz/logging"
)

// Version information set at build time.
var (
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// Global flags.
var (
	globalLogPath   string
	globalLogFormat string
	globalDebug     bool
)

// rootCmd is the base command for sysfuzz.
var rootCmd = &cobra.Command{
	Use:   "sysfuzz",
	Short: "Linux syscall fuzzer",
	Long: `sysfuzz drives a pool of worker processes that synthesise and invoke
Linux syscalls with pseudo-random arguments, watched by an independent
watchdog for stuck or crashed workers and kernel taint.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// GetContext returns a context that cancels on SIGINT/SIGTERM.
func GetContext() context.Context {
	ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	return ctx
}

func init() {
	rootCmd.PersistentFlags().StringVar(&globalLogPath, "log", "", "set the log file path")
	rootCmd.PersistentFlags().StringVar(&globalLogFormat, "log-format", "text", "set the format for log output (text or json)")
	rootCmd.PersistentFlags().BoolVar(&globalDebug, "debug", false, "enable debug logging")
}

func setupLogging() {
	logOutput := os.Stderr
	if globalLogPath != "" {
		f, err := os.OpenFile(globalLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err == nil {
			logOutput = f
		}
	}

	logLevel := slog.LevelInfo
	if globalDebug {
		logLevel = slog.LevelDebug
	}

	logger := logging.NewLogger(logging.Config{
		Level:  logLevel,
		Format: globalLogFormat,
		Output: logOutput,
	})
	logging.SetDefault(logger)
}
