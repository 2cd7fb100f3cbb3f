package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/warp-agent-action/internal/logger"
	"github.com/oshokin/warp-agent-action/internal/service/runner"
	"github.com/oshokin/warp-agent-action/internal/version"
)

var (
	// configPath is an optional YAML inputs file for local runs.
	configPath string

	// logLevel sets the minimum level for step logs.
	logLevel string

	// rootCmd represents the base command: install the agent tool and run it
	// with arguments derived from the step inputs.
	rootCmd = &cobra.Command{
		Use:   "warp-agent-action",
		Short: "Install the Warp agent tool and run it with the configured task",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if lvl, ok := logger.ParseLogLevel(logLevel); ok {
				logger.SetLevel(lvl)
			}

			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return runner.Run(ctx, &runner.Options{
				ConfigPath: configPath,
			})
		},
	}
)

// Execute runs the warp-agent-action CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML inputs file (inputs come from the environment when omitted)")
	rootCmd.Flags().StringVarP(&logLevel, "log-level", "l", "info", "minimum log level (debug, info, warn, error)")
}
