package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankbria/codeframe/ent/memory"
	"github.com/frankbria/codeframe/pkg/models"
)

func TestMemoryService_Upsert(t *testing.T) {
	client := setupClient(t)
	svc := NewMemoryService(client)
	ctx := context.Background()
	createTestProject(t, client, "proj-m")

	created, err := svc.UpsertMemory(ctx, models.UpsertMemoryRequest{
		ProjectID: "proj-m",
		Category:  "hot",
		Key:       "stack",
		Content:   "Go service with PostgreSQL",
	})
	require.NoError(t, err)
	assert.Equal(t, memory.CategoryHot, created.Category)

	t.Run("same key replaces content", func(t *testing.T) {
		updated, err := svc.UpsertMemory(ctx, models.UpsertMemoryRequest{
			ProjectID: "proj-m",
			Category:  "hot",
			Key:       "stack",
			Content:   "Go service with PostgreSQL and Redis",
		})
		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, "Go service with PostgreSQL and Redis", updated.Content)

		items, err := svc.GetByCategory(ctx, "proj-m", memory.CategoryHot)
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("same key in another category is a new item", func(t *testing.T) {
		_, err := svc.UpsertMemory(ctx, models.UpsertMemoryRequest{
			ProjectID: "proj-m",
			Category:  "warm",
			Key:       "stack",
			Content:   "Older stack notes",
		})
		require.NoError(t, err)

		warm, err := svc.GetByCategory(ctx, "proj-m", memory.CategoryWarm)
		require.NoError(t, err)
		assert.Len(t, warm, 1)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		_, err := svc.UpsertMemory(ctx, models.UpsertMemoryRequest{
			ProjectID: "proj-m",
			Category:  "lukewarm",
			Key:       "k",
			Content:   "c",
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestMemoryService_DeleteByCategory(t *testing.T) {
	client := setupClient(t)
	svc := NewMemoryService(client)
	ctx := context.Background()
	createTestProject(t, client, "proj-md")

	for _, key := range []string{"a", "b", "c"} {
		_, err := svc.UpsertMemory(ctx, models.UpsertMemoryRequest{
			ProjectID: "proj-md", Category: "warm", Key: key, Content: "v",
		})
		require.NoError(t, err)
	}

	n, err := svc.DeleteByCategory(ctx, "proj-md", memory.CategoryWarm)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	left, err := svc.GetByCategory(ctx, "proj-md", memory.CategoryWarm)
	require.NoError(t, err)
	assert.Empty(t, left)
}
