// codeframe coordinates AI-driven development work: it schedules tasks
// over their dependency graph, dispatches them to worker agents, and
// gates completions on quality checks.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/frankbria/codeframe/pkg/database"
	"github.com/frankbria/codeframe/pkg/version"
)

var (
	flagEnvFile string
	flagProject string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:           "codeframe",
	Short:         "Dependency-aware coordination engine for AI development workflows",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := godotenv.Load(flagEnvFile); err != nil {
			slog.Debug("no .env file loaded", "path", flagEnvFile, "error", err)
		}
		level := slog.LevelInfo
		if flagVerbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: level})))
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the build version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Full())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", ".env", "environment file to load")
	rootCmd.PersistentFlags().StringVar(&flagProject, "project", "", "project id (defaults per command)")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd, initCmd, prdCmd, tasksCmd, workCmd, serveCmd)
}

// openDB connects to PostgreSQL using the DB_* environment and runs
// pending migrations.
func openDB(ctx context.Context) (*database.Client, error) {
	cfg, err := database.LoadConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("loading database config: %w", err)
	}
	client, err := database.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	return client, nil
}

// requireProject returns the project id from --project or fails with a
// usage hint.
func requireProject() (string, error) {
	if flagProject == "" {
		return "", fmt.Errorf("--project is required")
	}
	return flagProject, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
