// Package cleanup recovers orphaned work left behind by interrupted
// supervisor runs.
package cleanup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/frankbria/codeframe/ent"
	"github.com/frankbria/codeframe/ent/task"
)

// Config bounds the recovery loop.
type Config struct {
	// StaleAfter is how long a task may sit in_progress before it is
	// considered orphaned.
	StaleAfter time.Duration

	// Interval between background sweeps.
	Interval time.Duration
}

// DefaultConfig returns the default recovery configuration.
func DefaultConfig() Config {
	return Config{
		StaleAfter: 30 * time.Minute,
		Interval:   5 * time.Minute,
	}
}

// Service requeues tasks orphaned in_progress by a crashed or killed
// supervisor. All operations are idempotent and safe to run from
// multiple replicas.
type Service struct {
	client *ent.Client
	config Config

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a recovery service over the ent client.
func NewService(client *ent.Client, cfg Config) *Service {
	if cfg.StaleAfter <= 0 {
		cfg.StaleAfter = DefaultConfig().StaleAfter
	}
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultConfig().Interval
	}
	return &Service{client: client, config: cfg}
}

// RecoverOrphans requeues every task that has been in_progress longer
// than the stale threshold. Returns the number of tasks requeued.
func (s *Service) RecoverOrphans(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-s.config.StaleAfter)
	orphans, err := s.client.Task.Query().
		Where(
			task.StatusEQ(task.StatusInProgress),
			task.UpdatedAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("querying orphaned tasks: %w", err)
	}

	requeued := 0
	for _, t := range orphans {
		ic := map[string]any{}
		for k, v := range t.InterventionContext {
			ic[k] = v
		}
		ic["instruction"] = "The previous attempt was interrupted before completing; resume the task."
		_, err := t.Update().
			SetStatus(task.StatusReady).
			SetInterventionContext(ic).
			Save(ctx)
		if err != nil {
			return requeued, fmt.Errorf("requeueing task %s: %w", t.TaskNumber, err)
		}
		slog.Info("Recovered orphaned task",
			"task", t.TaskNumber,
			"stale_for", time.Since(t.UpdatedAt).Round(time.Second))
		requeued++
	}
	return requeued, nil
}

// Start launches the background recovery loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Orphan recovery started",
		"stale_after", s.config.StaleAfter,
		"interval", s.config.Interval)
}

// Stop signals the loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Orphan recovery stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.sweep(ctx)

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	if _, err := s.RecoverOrphans(ctx); err != nil {
		slog.Error("Orphan recovery sweep failed", "error", err)
	}
}
