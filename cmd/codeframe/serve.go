package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/frankbria/codeframe/pkg/api"
	"github.com/frankbria/codeframe/pkg/cleanup"
	"github.com/frankbria/codeframe/pkg/metrics"
)

var flagServeAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP API and Prometheus metrics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		db, err := openDB(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		recovery := cleanup.NewService(db.Client, cleanup.DefaultConfig())
		recovery.Start(ctx)
		defer recovery.Stop()

		exporter := metrics.NewExporter(metrics.Config{})
		server := &http.Server{
			Addr:    flagServeAddr,
			Handler: api.NewServer(db, exporter.Handler()).Router(),
		}

		errCh := make(chan error, 1)
		go func() {
			slog.Info("HTTP server listening", "addr", flagServeAddr)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()

		select {
		case <-ctx.Done():
			slog.Info("Shutdown signal received")
		case err := <-errCh:
			return fmt.Errorf("http server: %w", err)
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down http server: %w", err)
		}
		slog.Info("Shutdown complete")
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagServeAddr, "addr", ":8080", "listen address")
}
