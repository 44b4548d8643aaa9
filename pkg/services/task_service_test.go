package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankbria/codeframe/ent/task"
	"github.com/frankbria/codeframe/pkg/models"
)

func TestTaskService_CreateTaskWithIssue(t *testing.T) {
	client := setupClient(t)
	svc := NewTaskService(client)
	ctx := context.Background()
	createTestProject(t, client, "proj-t")

	t.Run("creates issue and task together", func(t *testing.T) {
		created, err := svc.CreateTaskWithIssue(ctx, models.CreateTaskRequest{
			ProjectID:   "proj-t",
			IssueNumber: "2",
			IssueTitle:  "Search feature",
			TaskNumber:  "2.1",
			Title:       "Add search endpoint",
			DependsOn:   "[1.1, 1.2]",
		})
		require.NoError(t, err)
		assert.Equal(t, task.StatusPending, created.Status)
		assert.Equal(t, "1.1,1.2", created.DependsOn, "depends_on is persisted canonically")

		issues, err := NewIssueService(client).ListIssuesByProject(ctx, "proj-t")
		require.NoError(t, err)
		require.Len(t, issues, 1)
		assert.Equal(t, "Search feature", issues[0].Title)
	})

	t.Run("reuses existing issue", func(t *testing.T) {
		_, err := svc.CreateTaskWithIssue(ctx, models.CreateTaskRequest{
			ProjectID:   "proj-t",
			IssueNumber: "2",
			TaskNumber:  "2.2",
			Title:       "Index documents",
		})
		require.NoError(t, err)

		issues, err := NewIssueService(client).ListIssuesByProject(ctx, "proj-t")
		require.NoError(t, err)
		assert.Len(t, issues, 1)
	})

	t.Run("rejects duplicate task number", func(t *testing.T) {
		_, err := svc.CreateTaskWithIssue(ctx, models.CreateTaskRequest{
			ProjectID:   "proj-t",
			IssueNumber: "2",
			TaskNumber:  "2.1",
			Title:       "Duplicate",
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("rejects task number outside its issue", func(t *testing.T) {
		for _, number := range []string{"9.1", "2", "2.1.1", "2.x", "2."} {
			_, err := svc.CreateTaskWithIssue(ctx, models.CreateTaskRequest{
				ProjectID:   "proj-t",
				IssueNumber: "2",
				TaskNumber:  number,
				Title:       "Misnumbered",
			})
			assert.True(t, IsValidationError(err), "task number %q should be rejected", number)
		}
	})
}

func TestTaskNumberRefinesIssue(t *testing.T) {
	cases := []struct {
		taskNumber  string
		issueNumber string
		want        bool
	}{
		{"2.1", "2", true},
		{"2.10", "2", true},
		{"9.1", "2", false},
		{"2", "2", false},
		{"2.1.1", "2", false},
		{"2.-1", "2", false},
		{"22.1", "2", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, taskNumberRefinesIssue(tc.taskNumber, tc.issueNumber),
			"%s under issue %s", tc.taskNumber, tc.issueNumber)
	}
}

func TestTaskService_StatusStateMachine(t *testing.T) {
	client := setupClient(t)
	svc := NewTaskService(client)
	ctx := context.Background()
	createTestProject(t, client, "proj-s")
	created := createTestTask(t, client, "proj-s", "1.1", "")

	t.Run("pending to ready to in_progress", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, created.ID, task.StatusReady)
		require.NoError(t, err)
		_, err = svc.UpdateStatus(ctx, created.ID, task.StatusInProgress)
		require.NoError(t, err)
	})

	t.Run("rejects pending to completed shortcut", func(t *testing.T) {
		other := createTestTask(t, client, "proj-s", "1.2", "")
		_, err := svc.UpdateStatus(ctx, other.ID, task.StatusCompleted)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("in_progress back to ready for intervention retry", func(t *testing.T) {
		updated, err := svc.UpdateStatus(ctx, created.ID, task.StatusReady)
		require.NoError(t, err)
		assert.Equal(t, task.StatusReady, updated.Status)
	})

	t.Run("completed is terminal and stamps completed_at", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, created.ID, task.StatusInProgress)
		require.NoError(t, err)
		done, err := svc.CompleteTask(ctx, created.ID, []string{"src/search.go"})
		require.NoError(t, err)
		require.NotNil(t, done.CompletedAt)
		assert.Equal(t, []string{"src/search.go"}, done.FilesChanged)

		_, err = svc.UpdateStatus(ctx, created.ID, task.StatusReady)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestTaskService_Dependencies(t *testing.T) {
	client := setupClient(t)
	svc := NewTaskService(client)
	ctx := context.Background()
	createTestProject(t, client, "proj-d")
	createTestTask(t, client, "proj-d", "1.1", "")
	createTestTask(t, client, "proj-d", "1.2", "1.1")
	createTestTask(t, client, "proj-d", "1.3", "1.2")

	t.Run("add dependency", func(t *testing.T) {
		updated, err := svc.AddDependency(ctx, "proj-d", "1.3", "1.1")
		require.NoError(t, err)
		assert.Equal(t, "1.2,1.1", updated.DependsOn)
	})

	t.Run("adding is idempotent", func(t *testing.T) {
		updated, err := svc.AddDependency(ctx, "proj-d", "1.3", "1.1")
		require.NoError(t, err)
		assert.Equal(t, "1.2,1.1", updated.DependsOn)
	})

	t.Run("rejects cycle", func(t *testing.T) {
		_, err := svc.AddDependency(ctx, "proj-d", "1.1", "1.3")
		assert.ErrorIs(t, err, ErrDependencyCycle)
	})

	t.Run("rejects self dependency", func(t *testing.T) {
		_, err := svc.AddDependency(ctx, "proj-d", "1.1", "1.1")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("remove dependency", func(t *testing.T) {
		updated, err := svc.RemoveDependency(ctx, "proj-d", "1.3", "1.1")
		require.NoError(t, err)
		assert.Equal(t, "1.2", updated.DependsOn)
	})
}

func TestTaskService_ListAndFilter(t *testing.T) {
	client := setupClient(t)
	svc := NewTaskService(client)
	ctx := context.Background()
	createTestProject(t, client, "proj-l")
	a := createTestTask(t, client, "proj-l", "1.1", "")
	createTestTask(t, client, "proj-l", "1.2", "1.1")

	_, err := svc.UpdateStatus(ctx, a.ID, task.StatusReady)
	require.NoError(t, err)

	all, err := svc.ListTasksByProject(ctx, "proj-l", models.TaskFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	ready, err := svc.ListTasksByProject(ctx, "proj-l", models.TaskFilter{Status: "ready"})
	require.NoError(t, err)
	require.Len(t, ready, 1)
	assert.Equal(t, "1.1", ready[0].TaskNumber)

	_, err = svc.ListTasksByProject(ctx, "proj-l", models.TaskFilter{Status: "bogus"})
	assert.True(t, IsValidationError(err))
}

func TestTaskService_InterventionContext(t *testing.T) {
	client := setupClient(t)
	svc := NewTaskService(client)
	ctx := context.Background()
	createTestProject(t, client, "proj-i")
	created := createTestTask(t, client, "proj-i", "1.1", "")

	ic, err := svc.GetInterventionContext(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, ic)

	_, err = svc.SetInterventionContext(ctx, created.ID, map[string]any{
		"strategy":    "CONVERT_CREATE_TO_EDIT",
		"known_files": []any{"src/Button.tsx"},
	})
	require.NoError(t, err)

	ic, err = svc.GetInterventionContext(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "CONVERT_CREATE_TO_EDIT", ic["strategy"])
}

func TestTaskService_BuildResolver(t *testing.T) {
	client := setupClient(t)
	svc := NewTaskService(client)
	ctx := context.Background()
	createTestProject(t, client, "proj-r")
	a := createTestTask(t, client, "proj-r", "1.1", "")
	createTestTask(t, client, "proj-r", "1.2", "1.1")

	_, err := svc.UpdateStatus(ctx, a.ID, task.StatusReady)
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, a.ID, task.StatusInProgress)
	require.NoError(t, err)
	_, err = svc.CompleteTask(ctx, a.ID, nil)
	require.NoError(t, err)

	resolver, err := svc.BuildResolver(ctx, "proj-r")
	require.NoError(t, err)
	assert.Equal(t, []string{"1.2"}, resolver.Ready())
}
