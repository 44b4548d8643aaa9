package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/frankbria/codeframe/ent"
	"github.com/frankbria/codeframe/pkg/models"
	testdb "github.com/frankbria/codeframe/test/database"
)

// setupClient returns an ent client backed by a fresh test schema.
func setupClient(t *testing.T) *ent.Client {
	return testdb.NewTestClient(t).Client
}

// createTestProject persists a project for tests that need a parent row.
func createTestProject(t *testing.T, client *ent.Client, id string) *ent.Project {
	t.Helper()
	p, err := NewProjectService(client).CreateProject(context.Background(), models.CreateProjectRequest{
		ProjectID: id,
		Name:      "Test Project " + id,
	})
	require.NoError(t, err)
	return p
}

// createTestTask persists a task (and its issue) under the project.
func createTestTask(t *testing.T, client *ent.Client, projectID, taskNumber, dependsOn string) *ent.Task {
	t.Helper()
	task, err := NewTaskService(client).CreateTaskWithIssue(context.Background(), models.CreateTaskRequest{
		ProjectID:   projectID,
		IssueNumber: "1",
		TaskNumber:  taskNumber,
		Title:       "Task " + taskNumber,
		DependsOn:   dependsOn,
	})
	require.NoError(t, err)
	return task
}
