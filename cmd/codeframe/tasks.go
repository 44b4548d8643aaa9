package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/frankbria/codeframe/ent/memory"
	"github.com/frankbria/codeframe/ent/task"
	"github.com/frankbria/codeframe/pkg/llm"
	"github.com/frankbria/codeframe/pkg/models"
	"github.com/frankbria/codeframe/pkg/services"
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Generate and manage the project's task list",
}

const taskGenerationPrompt = `You are a technical project planner. Break the
requirements document into issues and tasks. Respond with a JSON array only,
no prose, where each element has the fields: issue_number, issue_title,
task_number (issue.sequence form, e.g. "2.1"), title, description,
depends_on (comma-separated task numbers, may be empty), priority (1-5),
estimated_hours (number).`

// generatedTask is one element of the planner's JSON response.
type generatedTask struct {
	IssueNumber    string  `json:"issue_number"`
	IssueTitle     string  `json:"issue_title"`
	TaskNumber     string  `json:"task_number"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	DependsOn      string  `json:"depends_on"`
	Priority       int     `json:"priority"`
	EstimatedHours float64 `json:"estimated_hours"`
}

var tasksGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate tasks from the stored requirements document",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
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

		memories := services.NewMemoryService(db.Client)
		cold, err := memories.GetByCategory(ctx, projectID, memory.CategoryCold)
		if err != nil {
			return err
		}
		var prd string
		for _, m := range cold {
			if m.Key == "prd" {
				prd = m.Content
				break
			}
		}
		if prd == "" {
			return fmt.Errorf("no requirements document stored; run `codeframe prd add` first")
		}

		adapter, err := newAdapter("")
		if err != nil {
			return err
		}
		resp, err := adapter.Complete(ctx, llm.Request{
			System:   taskGenerationPrompt,
			Messages: []llm.Message{{Role: "user", Content: prd}},
			Purpose:  "task_generation",
		})
		if err != nil {
			return fmt.Errorf("task generation failed: %w", err)
		}

		var generated []generatedTask
		if err := json.Unmarshal([]byte(stripFences(resp.Content)), &generated); err != nil {
			return fmt.Errorf("planner returned malformed JSON: %w", err)
		}
		if len(generated) == 0 {
			return fmt.Errorf("planner returned no tasks")
		}

		usage := services.NewMetricsService(db.Client)
		_, _ = usage.RecordTokenUsage(ctx, models.TokenUsageRecord{
			ProjectID:    projectID,
			Model:        resp.Model,
			CallType:     "task_generation",
			InputTokens:  resp.InputTokens,
			OutputTokens: resp.OutputTokens,
		})

		tasks := services.NewTaskService(db.Client)
		for _, g := range generated {
			_, err := tasks.CreateTaskWithIssue(ctx, models.CreateTaskRequest{
				ProjectID:      projectID,
				IssueNumber:    g.IssueNumber,
				IssueTitle:     g.IssueTitle,
				TaskNumber:     g.TaskNumber,
				Title:          g.Title,
				Description:    g.Description,
				DependsOn:      g.DependsOn,
				Priority:       g.Priority,
				EstimatedHours: g.EstimatedHours,
			})
			if err != nil {
				return fmt.Errorf("creating task %s: %w", g.TaskNumber, err)
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Generated %d tasks for project %s\n", len(generated), projectID)
		return nil
	},
}

var flagStatusAll bool

var tasksSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set task attributes",
}

var tasksSetStatusCmd = &cobra.Command{
	Use:   "status <status> [task_number...]",
	Short: "Move tasks through the status state machine",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectID, err := requireProject()
		if err != nil {
			return err
		}
		to := task.Status(strings.ToLower(args[0]))
		if err := task.StatusValidator(to); err != nil {
			return fmt.Errorf("unknown status %q", args[0])
		}
		numbers := args[1:]
		if len(numbers) == 0 && !flagStatusAll {
			return fmt.Errorf("name task numbers or pass --all")
		}

		ctx := cmd.Context()
		db, err := openDB(ctx)
		if err != nil {
			return err
		}
		defer db.Close()
		tasks := services.NewTaskService(db.Client)

		if flagStatusAll {
			all, err := tasks.ListTasksByProject(ctx, projectID, models.TaskFilter{Status: string(task.StatusPending)})
			if err != nil {
				return err
			}
			for _, t := range all {
				numbers = append(numbers, t.TaskNumber)
			}
		}

		for _, num := range numbers {
			t, err := tasks.GetTaskByNumber(ctx, projectID, num)
			if err != nil {
				return fmt.Errorf("task %s: %w", num, err)
			}
			if _, err := tasks.UpdateStatus(ctx, t.ID, to); err != nil {
				return fmt.Errorf("task %s: %w", num, err)
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated %d tasks to %s\n", len(numbers), to)
		return nil
	},
}

// stripFences removes a surrounding markdown code fence from a model
// response, tolerating a language tag.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func init() {
	tasksSetStatusCmd.Flags().BoolVar(&flagStatusAll, "all", false, "apply to every pending task")
	tasksSetCmd.AddCommand(tasksSetStatusCmd)
	tasksCmd.AddCommand(tasksGenerateCmd, tasksSetCmd)
}
