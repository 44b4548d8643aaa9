package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankbria/codeframe/ent/blocker"
	"github.com/frankbria/codeframe/pkg/models"
)

func TestBlockerService_CreateAndAnswer(t *testing.T) {
	client := setupClient(t)
	svc := NewBlockerService(client)
	ctx := context.Background()
	createTestProject(t, client, "proj-b")

	created, err := svc.CreateBlocker(ctx, models.CreateBlockerRequest{
		ProjectID: "proj-b",
		Kind:      "sync",
		Question:  "Which auth provider should the login flow use?",
		TaskID:    "task-1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, blocker.KindSync, created.Kind)
	assert.Nil(t, created.AnsweredAt)

	answered, err := svc.AnswerBlocker(ctx, created.ID, "Use OIDC via Keycloak")
	require.NoError(t, err)
	require.NotNil(t, answered.AnsweredAt)
	require.NotNil(t, answered.Answer)
	assert.Equal(t, "Use OIDC via Keycloak", *answered.Answer)

	t.Run("answering twice keeps the original answer", func(t *testing.T) {
		again, err := svc.AnswerBlocker(ctx, created.ID, "Different answer")
		require.NoError(t, err)
		assert.Equal(t, "Use OIDC via Keycloak", *again.Answer)
		assert.Equal(t, answered.AnsweredAt.Unix(), again.AnsweredAt.Unix())
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		_, err := svc.CreateBlocker(ctx, models.CreateBlockerRequest{
			ProjectID: "proj-b",
			Kind:      "urgent",
			Question:  "q",
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestBlockerService_ListFilters(t *testing.T) {
	client := setupClient(t)
	svc := NewBlockerService(client)
	ctx := context.Background()
	createTestProject(t, client, "proj-bl")

	first, err := svc.CreateBlocker(ctx, models.CreateBlockerRequest{
		ProjectID: "proj-bl", Kind: "sync", Question: "first question",
	})
	require.NoError(t, err)
	_, err = svc.CreateBlocker(ctx, models.CreateBlockerRequest{
		ProjectID: "proj-bl", Kind: "async", Question: "second question",
	})
	require.NoError(t, err)

	_, err = svc.AnswerBlocker(ctx, first.ID, "answered")
	require.NoError(t, err)

	pending, err := svc.ListBlockersByProject(ctx, "proj-bl", models.BlockerFilter{State: "pending"})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "second question", pending[0].Question)

	answered, err := svc.ListBlockersByProject(ctx, "proj-bl", models.BlockerFilter{State: "answered"})
	require.NoError(t, err)
	require.Len(t, answered, 1)
	assert.Equal(t, first.ID, answered[0].ID)

	syncOnly, err := svc.ListBlockersByProject(ctx, "proj-bl", models.BlockerFilter{Kind: "sync"})
	require.NoError(t, err)
	assert.Len(t, syncOnly, 1)

	all, err := svc.ListBlockersByProject(ctx, "proj-bl", models.BlockerFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = svc.ListBlockersByProject(ctx, "proj-bl", models.BlockerFilter{State: "weird"})
	assert.True(t, IsValidationError(err))
}

func TestParseResumeMetadata(t *testing.T) {
	meta, ok := ParseResumeMetadata("Discovery paused. session:disc-42 progress:3/7 Answer to continue.")
	require.True(t, ok)
	assert.Equal(t, "disc-42", meta.SessionID)
	assert.Equal(t, 3, meta.Current)
	assert.Equal(t, 7, meta.Total)

	_, ok = ParseResumeMetadata("A plain question with no metadata")
	assert.False(t, ok)
}
