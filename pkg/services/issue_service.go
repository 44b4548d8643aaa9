package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/frankbria/codeframe/ent"
	"github.com/frankbria/codeframe/ent/issue"
	"github.com/frankbria/codeframe/pkg/models"
)

// IssueService manages feature-level issues
type IssueService struct {
	client *ent.Client
}

// NewIssueService creates a new IssueService
func NewIssueService(client *ent.Client) *IssueService {
	return &IssueService{client: client}
}

// CreateIssue adds an issue to a project. Issue numbers are unique per
// project.
func (s *IssueService) CreateIssue(httpCtx context.Context, req models.CreateIssueRequest) (*ent.Issue, error) {
	if req.ProjectID == "" {
		return nil, NewValidationError("project_id", "required")
	}
	if req.IssueNumber == "" {
		return nil, NewValidationError("issue_number", "required")
	}
	if req.Title == "" {
		return nil, NewValidationError("title", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.Issue.Create().
		SetID(uuid.New().String()).
		SetProjectID(req.ProjectID).
		SetIssueNumber(req.IssueNumber).
		SetTitle(req.Title)
	if req.Description != "" {
		builder.SetDescription(req.Description)
	}
	if req.Priority > 0 {
		builder.SetPriority(req.Priority)
	}

	is, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create issue: %w", err)
	}
	return is, nil
}

// GetIssue fetches an issue by id.
func (s *IssueService) GetIssue(ctx context.Context, id string) (*ent.Issue, error) {
	is, err := s.client.Issue.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: issue %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get issue: %w", err)
	}
	return is, nil
}

// ListIssuesByProject returns a project's issues ordered by number.
func (s *IssueService) ListIssuesByProject(ctx context.Context, projectID string) ([]*ent.Issue, error) {
	issues, err := s.client.Issue.Query().
		Where(issue.ProjectID(projectID)).
		Order(ent.Asc(issue.FieldIssueNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list issues: %w", err)
	}
	return issues, nil
}
