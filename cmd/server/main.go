// Package main implements the entry point for the task service, an HTTP
// API managing an in-memory collection of tasks.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/phrazzld/task-service/internal/config"
	"github.com/phrazzld/task-service/internal/platform/logger"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "task-service: %v\n", err)
		os.Exit(1)
	}
}

// newRootCommand builds the task-service command. Running it loads the
// configuration, sets up logging, wires the application and serves HTTP
// until interrupted.
func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task-service",
		Short: "HTTP service managing an in-memory task list",
		Long: `task-service exposes CRUD operations over an in-memory collection of tasks,
plus health, readiness and Prometheus metrics endpoints.

CONFIGURATION:
  Configuration follows this priority order: flags > environment > config file > defaults

    TASK_SERVER_PORT, PORT                 Listen port (default: 5000)
    TASK_SERVER_LOG_LEVEL, LOG_LEVEL       debug, info, warn or error (default: info)
    TASK_SERVER_SHUTDOWN_TIMEOUT           Graceful shutdown timeout (default: 10s)
    TASK_SERVER_READ_HEADER_TIMEOUT        Request header read timeout (default: 5s)
    TASK_STORE_SEED                        Load sample tasks at startup (default: true)
    TASK_METRICS_ENABLED                   Serve Prometheus metrics (default: true)
    TASK_METRICS_PATH                      Metrics path (default: /metrics)`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), cmd)
		},
	}

	flags := cmd.Flags()
	flags.String(config.FlagConfig, "", "Path to a YAML config file (default: ./config.yaml if present)")
	flags.Int(config.FlagPort, config.DefaultPort, "Listen port (overrides TASK_SERVER_PORT and PORT)")
	flags.String(config.FlagLogLevel, config.DefaultLogLevel, "Log level (overrides TASK_SERVER_LOG_LEVEL and LOG_LEVEL)")

	return cmd
}

// runServer loads configuration and runs the application until ctx is
// canceled or the process receives SIGINT or SIGTERM.
func runServer(ctx context.Context, cmd *cobra.Command) error {
	cfg, err := config.LoadWithFlags(cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.Bool("seed", cfg.Store.Seed),
		slog.Bool("metrics_enabled", cfg.Metrics.Enabled))

	app, err := newApplication(cfg, l)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
