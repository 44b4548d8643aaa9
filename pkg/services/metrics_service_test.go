package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankbria/codeframe/pkg/models"
)

func TestMetricsService_RecordAndAggregate(t *testing.T) {
	client := setupClient(t)
	svc := NewMetricsService(client)
	ctx := context.Background()
	createTestProject(t, client, "proj-tok")

	for _, rec := range []models.TokenUsageRecord{
		{ProjectID: "proj-tok", Model: "gpt-4o", CallType: "task_execution", TaskID: "t1", AgentID: "imp", InputTokens: 1200, OutputTokens: 300},
		{ProjectID: "proj-tok", Model: "gpt-4o", CallType: "review", TaskID: "t1", InputTokens: 800, OutputTokens: 150},
	} {
		_, err := svc.RecordTokenUsage(ctx, rec)
		require.NoError(t, err)
	}

	totals, err := svc.ProjectTotals(ctx, "proj-tok")
	require.NoError(t, err)
	assert.Equal(t, 2, totals.Calls)
	assert.Equal(t, 2000, totals.InputTokens)
	assert.Equal(t, 450, totals.OutputTokens)
}

func TestMetricsService_Validation(t *testing.T) {
	client := setupClient(t)
	svc := NewMetricsService(client)
	ctx := context.Background()

	_, err := svc.RecordTokenUsage(ctx, models.TokenUsageRecord{Model: "gpt-4o", CallType: "x"})
	assert.True(t, IsValidationError(err))

	_, err = svc.RecordTokenUsage(ctx, models.TokenUsageRecord{ProjectID: "p", CallType: "x"})
	assert.True(t, IsValidationError(err))
}
