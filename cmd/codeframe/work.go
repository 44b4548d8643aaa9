package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/frankbria/codeframe/ent/project"
	"github.com/frankbria/codeframe/ent/task"
	"github.com/frankbria/codeframe/pkg/cleanup"
	"github.com/frankbria/codeframe/pkg/config"
	"github.com/frankbria/codeframe/pkg/gates"
	"github.com/frankbria/codeframe/pkg/llm"
	"github.com/frankbria/codeframe/pkg/metrics"
	"github.com/frankbria/codeframe/pkg/models"
	"github.com/frankbria/codeframe/pkg/services"
	"github.com/frankbria/codeframe/pkg/supervisor"
)

var (
	flagWorkExecute   bool
	flagWorkDryRun    bool
	flagWorkEngine    string
	flagWorkAgentsDir string
)

var workCmd = &cobra.Command{
	Use:   "work",
	Short: "Run the supervisor over the project's ready tasks",
}

var workStartCmd = &cobra.Command{
	Use:   "start [task_number]",
	Short: "Dispatch ready tasks to worker agents",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectID, err := requireProject()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		db, err := openDB(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		projects := services.NewProjectService(db.Client)
		proj, err := projects.GetProject(ctx, projectID)
		if err != nil {
			return err
		}
		tasks := services.NewTaskService(db.Client)

		// A named task is promoted to ready before the run.
		var target string
		if len(args) == 1 {
			target = args[0]
			t, err := tasks.GetTaskByNumber(ctx, projectID, target)
			if err != nil {
				return err
			}
			if t.Status == task.StatusPending {
				if _, err := tasks.UpdateStatus(ctx, t.ID, task.StatusReady); err != nil {
					return err
				}
			}
		}

		if flagWorkDryRun || !flagWorkExecute {
			return printPlan(cmd, tasks, projectID)
		}

		registry, err := config.LoadRegistry(flagWorkAgentsDir)
		if err != nil {
			return fmt.Errorf("loading agent definitions: %w", err)
		}
		adapter, err := newAdapter(flagWorkEngine)
		if err != nil {
			return err
		}
		exporter := metrics.NewExporter(metrics.Config{})

		if proj.Phase == project.PhasePlanning {
			if _, err := projects.TransitionPhase(ctx, projectID, project.PhaseActive); err != nil {
				return err
			}
		}

		// One-shot recovery of tasks orphaned by an interrupted run.
		recovery := cleanup.NewService(db.Client, cleanup.DefaultConfig())
		if n, err := recovery.RecoverOrphans(ctx); err != nil {
			return err
		} else if n > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "Requeued %d orphaned tasks\n", n)
		}

		sup := supervisor.New(
			tasks,
			services.NewBlockerService(db.Client),
			services.NewMemoryService(db.Client),
			services.NewMetricsService(db.Client),
			adapter,
			registry,
			gates.NewRunner(),
			supervisor.WithWorkspace(proj.WorkspacePath),
			supervisor.WithObserver(exporter.ObserveUsage),
		)

		// Requeue blocked tasks whose blockers were answered since the
		// last run.
		if resumed, err := sup.ResumeBlocked(ctx, projectID); err != nil {
			return err
		} else if len(resumed) > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "Resumed blocked tasks: %s\n", strings.Join(resumed, ", "))
		}

		report, err := sup.Run(ctx, projectID)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(),
			"Run finished: %d completed, %d blocked, %d interventions\n",
			report.Completed, report.Blocked, report.Interventions)

		if target != "" {
			t, err := tasks.GetTaskByNumber(ctx, projectID, target)
			if err != nil {
				return err
			}
			if t.Status != task.StatusCompleted {
				return fmt.Errorf("task %s finished in status %s", target, t.Status)
			}
		} else if report.Blocked > 0 {
			return fmt.Errorf("%d tasks are blocked awaiting answers", report.Blocked)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Task completed successfully")
		return nil
	},
}

// printPlan shows the ready set and blocked dependencies without
// dispatching anything.
func printPlan(cmd *cobra.Command, tasks *services.TaskService, projectID string) error {
	ctx := cmd.Context()
	resolver, err := tasks.BuildResolver(ctx, projectID)
	if err != nil {
		return err
	}
	all, err := tasks.ListTasksByProject(ctx, projectID, models.TaskFilter{})
	if err != nil {
		return err
	}
	byNumber := make(map[string]string, len(all))
	for _, t := range all {
		byNumber[t.TaskNumber] = t.Title
	}

	ready := resolver.Ready()
	fmt.Fprintf(cmd.OutOrStdout(), "%d tasks, %d ready to dispatch:\n", len(all), len(ready))
	for _, num := range ready {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s  %s\n", num, byNumber[num])
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Re-run with --execute to dispatch.")
	return nil
}

// newAdapter builds the retrying OpenAI-compatible adapter; model ""
// keeps the default.
func newAdapter(model string) (llm.Adapter, error) {
	var opts []llm.OpenAIOption
	if model != "" {
		opts = append(opts, llm.WithModel(model))
	}
	inner, err := llm.NewOpenAIAdapter(opts...)
	if err != nil {
		return nil, err
	}
	return llm.NewRetryingAdapter(inner), nil
}

func init() {
	workStartCmd.Flags().BoolVar(&flagWorkExecute, "execute", false, "dispatch tasks to worker agents")
	workStartCmd.Flags().BoolVar(&flagWorkDryRun, "dry-run", false, "print the dispatch plan without executing")
	workStartCmd.Flags().StringVar(&flagWorkEngine, "engine", "", "model name override for worker calls")
	workStartCmd.Flags().StringVar(&flagWorkAgentsDir, "agents-dir", "./agents", "directory of agent definition YAML files")
	workCmd.AddCommand(workStartCmd)
}
