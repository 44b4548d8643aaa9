package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/frankbria/codeframe/ent"
	"github.com/frankbria/codeframe/ent/issue"
	"github.com/frankbria/codeframe/ent/task"
	"github.com/frankbria/codeframe/pkg/graph"
	"github.com/frankbria/codeframe/pkg/models"
)

// taskTransitions is the task status state machine. Statuses are
// strictly monotonic per task except for the supervised retry loops
// (in_progress → ready, blocked → in_progress).
var taskTransitions = map[task.Status][]task.Status{
	task.StatusPending:    {task.StatusReady, task.StatusAbandoned},
	task.StatusReady:      {task.StatusInProgress, task.StatusAbandoned},
	task.StatusInProgress: {task.StatusCompleted, task.StatusBlocked, task.StatusFailed, task.StatusReady},
	task.StatusBlocked:    {task.StatusInProgress, task.StatusReady, task.StatusAbandoned},
	task.StatusFailed:     {task.StatusReady, task.StatusAbandoned},
	task.StatusCompleted:  {},
	task.StatusAbandoned:  {},
}

// TaskService manages the atomic units of agent work
type TaskService struct {
	client *ent.Client
}

// NewTaskService creates a new TaskService
func NewTaskService(client *ent.Client) *TaskService {
	return &TaskService{client: client}
}

// CreateTaskWithIssue creates a task under its issue in one
// transaction. When the issue number is unknown for the project, the
// issue is created first using req.IssueTitle.
func (s *TaskService) CreateTaskWithIssue(httpCtx context.Context, req models.CreateTaskRequest) (*ent.Task, error) {
	if req.ProjectID == "" {
		return nil, NewValidationError("project_id", "required")
	}
	if req.IssueNumber == "" {
		return nil, NewValidationError("issue_number", "required")
	}
	if req.TaskNumber == "" {
		return nil, NewValidationError("task_number", "required")
	}
	if req.Title == "" {
		return nil, NewValidationError("title", "required")
	}
	if !taskNumberRefinesIssue(req.TaskNumber, req.IssueNumber) {
		return nil, NewValidationError("task_number",
			fmt.Sprintf("must have the form %s.<n>", req.IssueNumber))
	}
	deps := graph.ParseDependsOn(req.DependsOn)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	parent, err := tx.Issue.Query().
		Where(issue.ProjectID(req.ProjectID), issue.IssueNumber(req.IssueNumber)).
		Only(ctx)
	if ent.IsNotFound(err) {
		title := req.IssueTitle
		if title == "" {
			title = fmt.Sprintf("Issue %s", req.IssueNumber)
		}
		parent, err = tx.Issue.Create().
			SetID(uuid.New().String()).
			SetProjectID(req.ProjectID).
			SetIssueNumber(req.IssueNumber).
			SetTitle(title).
			Save(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve issue %s: %w", req.IssueNumber, err)
	}

	builder := tx.Task.Create().
		SetID(uuid.New().String()).
		SetProjectID(req.ProjectID).
		SetIssueID(parent.ID).
		SetTaskNumber(req.TaskNumber).
		SetTitle(req.Title).
		SetStatus(task.StatusPending)
	if req.Description != "" {
		builder.SetDescription(req.Description)
	}
	if len(deps) > 0 {
		builder.SetDependsOn(graph.FormatDependsOn(deps))
	}
	if req.Priority > 0 {
		builder.SetPriority(req.Priority)
	}
	if req.EstimatedHours > 0 {
		builder.SetEstimatedHours(req.EstimatedHours)
	}

	t, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return t, nil
}

// GetTask fetches a task by id.
func (s *TaskService) GetTask(ctx context.Context, id string) (*ent.Task, error) {
	t, err := s.client.Task.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: task %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return t, nil
}

// GetTaskByNumber fetches a task by its project-scoped number.
func (s *TaskService) GetTaskByNumber(ctx context.Context, projectID, taskNumber string) (*ent.Task, error) {
	t, err := s.client.Task.Query().
		Where(task.ProjectID(projectID), task.TaskNumber(taskNumber)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: task %s in project %s", ErrNotFound, taskNumber, projectID)
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return t, nil
}

// ListTasksByProject returns a project's tasks, optionally filtered by
// status, ordered by task number.
func (s *TaskService) ListTasksByProject(ctx context.Context, projectID string, filter models.TaskFilter) ([]*ent.Task, error) {
	q := s.client.Task.Query().Where(task.ProjectID(projectID))
	if filter.Status != "" {
		st := task.Status(filter.Status)
		if err := task.StatusValidator(st); err != nil {
			return nil, NewValidationError("status", err.Error())
		}
		q = q.Where(task.StatusEQ(st))
	}
	tasks, err := q.Order(ent.Asc(task.FieldTaskNumber)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// UpdateStatus moves a task through the status state machine.
func (s *TaskService) UpdateStatus(httpCtx context.Context, id string, to task.Status) (*ent.Task, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	t, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	if !taskTransitionAllowed(t.Status, to) {
		return nil, fmt.Errorf("%w: task status %s → %s", ErrInvalidTransition, t.Status, to)
	}

	builder := t.Update().SetStatus(to)
	if to == task.StatusCompleted {
		builder.SetCompletedAt(time.Now())
	}
	updated, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update task status: %w", err)
	}
	return updated, nil
}

// CompleteTask marks a task completed and persists the files-changed
// set in one write.
func (s *TaskService) CompleteTask(httpCtx context.Context, id string, filesChanged []string) (*ent.Task, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	t, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	if !taskTransitionAllowed(t.Status, task.StatusCompleted) {
		return nil, fmt.Errorf("%w: task status %s → %s", ErrInvalidTransition, t.Status, task.StatusCompleted)
	}

	builder := t.Update().
		SetStatus(task.StatusCompleted).
		SetCompletedAt(time.Now())
	if len(filesChanged) > 0 {
		builder.SetFilesChanged(filesChanged)
	}
	updated, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to complete task: %w", err)
	}
	return updated, nil
}

// SetInterventionContext stores the supervisor's retry context for the
// next dispatch.
func (s *TaskService) SetInterventionContext(httpCtx context.Context, id string, ic map[string]any) (*ent.Task, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	t, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	updated, err := t.Update().SetInterventionContext(ic).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to set intervention context: %w", err)
	}
	return updated, nil
}

// GetInterventionContext reads the stored retry context; nil when none
// was written.
func (s *TaskService) GetInterventionContext(ctx context.Context, id string) (map[string]any, error) {
	t, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	return t.InterventionContext, nil
}

// AddDependency appends dep to the task's depends_on list after
// checking the project graph stays acyclic.
func (s *TaskService) AddDependency(httpCtx context.Context, projectID, taskNumber, dep string) (*ent.Task, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	t, err := s.GetTaskByNumber(ctx, projectID, taskNumber)
	if err != nil {
		return nil, err
	}

	resolver, err := s.buildResolver(ctx, projectID)
	if err != nil {
		return nil, err
	}
	ok, edgeErr := resolver.ValidEdge(dep, taskNumber)
	if edgeErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, edgeErr)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s → %s", ErrDependencyCycle, dep, taskNumber)
	}

	deps := graph.ParseDependsOn(t.DependsOn)
	for _, d := range deps {
		if d == dep {
			return t, nil // already present
		}
	}
	deps = append(deps, dep)

	updated, err := t.Update().SetDependsOn(graph.FormatDependsOn(deps)).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to add dependency: %w", err)
	}
	return updated, nil
}

// RemoveDependency drops dep from the task's depends_on list.
func (s *TaskService) RemoveDependency(httpCtx context.Context, projectID, taskNumber, dep string) (*ent.Task, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	t, err := s.GetTaskByNumber(ctx, projectID, taskNumber)
	if err != nil {
		return nil, err
	}
	deps := graph.ParseDependsOn(t.DependsOn)
	kept := deps[:0]
	for _, d := range deps {
		if d != dep {
			kept = append(kept, d)
		}
	}

	updated, err := t.Update().SetDependsOn(graph.FormatDependsOn(kept)).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to remove dependency: %w", err)
	}
	return updated, nil
}

// BuildResolver constructs the dependency resolver for a project from
// its persisted tasks, with completed tasks pre-marked.
func (s *TaskService) BuildResolver(ctx context.Context, projectID string) (*graph.Resolver, error) {
	return s.buildResolver(ctx, projectID)
}

func (s *TaskService) buildResolver(ctx context.Context, projectID string) (*graph.Resolver, error) {
	tasks, err := s.ListTasksByProject(ctx, projectID, models.TaskFilter{})
	if err != nil {
		return nil, err
	}

	inputs := make([]graph.TaskInput, 0, len(tasks))
	for _, t := range tasks {
		inputs = append(inputs, graph.TaskInput{ID: t.TaskNumber, DependsOn: t.DependsOn})
	}
	resolver := graph.NewResolver()
	if err := resolver.Build(inputs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	for _, t := range tasks {
		if t.Status == task.StatusCompleted {
			resolver.MarkCompleted(t.TaskNumber)
		}
	}
	return resolver, nil
}

// taskNumberRefinesIssue reports whether taskNumber extends
// issueNumber by exactly one numeric segment, e.g. "2.3" under
// issue "2".
func taskNumberRefinesIssue(taskNumber, issueNumber string) bool {
	suffix, ok := strings.CutPrefix(taskNumber, issueNumber+".")
	if !ok || suffix == "" {
		return false
	}
	for _, r := range suffix {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func taskTransitionAllowed(from, to task.Status) bool {
	for _, next := range taskTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
