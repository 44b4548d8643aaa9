package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/frankbria/codeframe/ent"
	"github.com/frankbria/codeframe/ent/tokenusage"
	"github.com/frankbria/codeframe/pkg/models"
)

// MetricsService records per-call token usage
type MetricsService struct {
	client *ent.Client
}

// NewMetricsService creates a new MetricsService
func NewMetricsService(client *ent.Client) *MetricsService {
	return &MetricsService{client: client}
}

// RecordTokenUsage persists one LLM call's accounting entry.
func (s *MetricsService) RecordTokenUsage(httpCtx context.Context, rec models.TokenUsageRecord) (*ent.TokenUsage, error) {
	if rec.ProjectID == "" {
		return nil, NewValidationError("project_id", "required")
	}
	if rec.Model == "" {
		return nil, NewValidationError("model", "required")
	}
	if rec.CallType == "" {
		return nil, NewValidationError("call_type", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.TokenUsage.Create().
		SetID(uuid.New().String()).
		SetProjectID(rec.ProjectID).
		SetModel(rec.Model).
		SetCallType(rec.CallType).
		SetInputTokens(rec.InputTokens).
		SetOutputTokens(rec.OutputTokens)
	if rec.SessionID != "" {
		builder.SetSessionID(rec.SessionID)
	}
	if rec.TaskID != "" {
		builder.SetTaskID(rec.TaskID)
	}
	if rec.AgentID != "" {
		builder.SetAgentID(rec.AgentID)
	}

	u, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record token usage: %w", err)
	}
	return u, nil
}

// ProjectTotals aggregates token usage for one project.
func (s *MetricsService) ProjectTotals(ctx context.Context, projectID string) (*models.TokenTotals, error) {
	rows, err := s.client.TokenUsage.Query().
		Where(tokenusage.ProjectID(projectID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query token usage: %w", err)
	}

	totals := &models.TokenTotals{Calls: len(rows)}
	for _, r := range rows {
		totals.InputTokens += r.InputTokens
		totals.OutputTokens += r.OutputTokens
	}
	return totals, nil
}
