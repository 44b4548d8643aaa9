package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankbria/codeframe/ent/project"
	"github.com/frankbria/codeframe/pkg/models"
)

func TestProjectService_CreateProject(t *testing.T) {
	client := setupClient(t)
	svc := NewProjectService(client)
	ctx := context.Background()

	t.Run("creates project in discovery phase", func(t *testing.T) {
		p, err := svc.CreateProject(ctx, models.CreateProjectRequest{
			ProjectID: "proj-1",
			Name:      "Checkout Revamp",
		})
		require.NoError(t, err)
		assert.Equal(t, "proj-1", p.ID)
		assert.Equal(t, project.PhaseDiscovery, p.Phase)
		assert.False(t, p.CreatedAt.IsZero())
	})

	t.Run("rejects duplicate id", func(t *testing.T) {
		_, err := svc.CreateProject(ctx, models.CreateProjectRequest{
			ProjectID: "proj-1",
			Name:      "Duplicate",
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := svc.CreateProject(ctx, models.CreateProjectRequest{Name: "no id"})
		assert.True(t, IsValidationError(err))
	})
}

func TestProjectService_TransitionPhase(t *testing.T) {
	client := setupClient(t)
	svc := NewProjectService(client)
	ctx := context.Background()
	createTestProject(t, client, "proj-phase")

	t.Run("walks the happy path to complete", func(t *testing.T) {
		for _, phase := range []project.Phase{
			project.PhasePlanning,
			project.PhaseActive,
			project.PhaseReview,
			project.PhaseComplete,
		} {
			p, err := svc.TransitionPhase(ctx, "proj-phase", phase)
			require.NoError(t, err)
			assert.Equal(t, phase, p.Phase)
		}
	})

	t.Run("complete is terminal", func(t *testing.T) {
		_, err := svc.TransitionPhase(ctx, "proj-phase", project.PhaseReview)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("rejects skipping phases", func(t *testing.T) {
		createTestProject(t, client, "proj-skip")
		_, err := svc.TransitionPhase(ctx, "proj-skip", project.PhaseActive)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("allows planning back to discovery", func(t *testing.T) {
		createTestProject(t, client, "proj-back")
		_, err := svc.TransitionPhase(ctx, "proj-back", project.PhasePlanning)
		require.NoError(t, err)
		p, err := svc.TransitionPhase(ctx, "proj-back", project.PhaseDiscovery)
		require.NoError(t, err)
		assert.Equal(t, project.PhaseDiscovery, p.Phase)
	})

	t.Run("unknown project", func(t *testing.T) {
		_, err := svc.TransitionPhase(ctx, "ghost", project.PhasePlanning)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
