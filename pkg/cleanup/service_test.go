package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankbria/codeframe/ent"
	"github.com/frankbria/codeframe/ent/task"
	"github.com/frankbria/codeframe/pkg/models"
	"github.com/frankbria/codeframe/pkg/services"
	testdb "github.com/frankbria/codeframe/test/database"
)

func setupTasks(t *testing.T) (*ent.Client, *services.TaskService) {
	t.Helper()
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()

	_, err := services.NewProjectService(client).CreateProject(ctx, models.CreateProjectRequest{
		ProjectID: "proj-orphan",
		Name:      "Orphan Recovery",
	})
	require.NoError(t, err)
	return client, services.NewTaskService(client)
}

func createInProgressTask(t *testing.T, client *ent.Client, tasks *services.TaskService, number string, updatedAt time.Time) string {
	t.Helper()
	ctx := context.Background()

	created, err := tasks.CreateTaskWithIssue(ctx, models.CreateTaskRequest{
		ProjectID:   "proj-orphan",
		IssueNumber: "1",
		TaskNumber:  number,
		Title:       "Task " + number,
	})
	require.NoError(t, err)

	_, err = tasks.UpdateStatus(ctx, created.ID, task.StatusReady)
	require.NoError(t, err)
	_, err = tasks.UpdateStatus(ctx, created.ID, task.StatusInProgress)
	require.NoError(t, err)

	_, err = client.Task.UpdateOneID(created.ID).
		SetUpdatedAt(updatedAt).
		Save(ctx)
	require.NoError(t, err)
	return created.ID
}

func TestRecoverOrphansRequeuesStaleTasks(t *testing.T) {
	client, tasks := setupTasks(t)
	ctx := context.Background()

	staleID := createInProgressTask(t, client, tasks, "1.1", time.Now().Add(-2*time.Hour))
	freshID := createInProgressTask(t, client, tasks, "1.2", time.Now())

	svc := NewService(client, Config{StaleAfter: 30 * time.Minute})
	n, err := svc.RecoverOrphans(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	stale, err := client.Task.Get(ctx, staleID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusReady, stale.Status)
	assert.Contains(t, stale.InterventionContext["instruction"], "interrupted before completing")

	fresh, err := client.Task.Get(ctx, freshID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusInProgress, fresh.Status)
}

func TestRecoverOrphansIsIdempotent(t *testing.T) {
	client, tasks := setupTasks(t)
	ctx := context.Background()

	createInProgressTask(t, client, tasks, "1.1", time.Now().Add(-time.Hour))

	svc := NewService(client, Config{StaleAfter: 30 * time.Minute})
	n, err := svc.RecoverOrphans(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = svc.RecoverOrphans(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestStartStop(t *testing.T) {
	client, _ := setupTasks(t)

	svc := NewService(client, Config{StaleAfter: time.Minute, Interval: time.Hour})
	svc.Start(context.Background())
	svc.Stop()
}
