// Package services implements the persistence contract over the ent
// client. Each exported operation is atomic.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/frankbria/codeframe/ent"
	"github.com/frankbria/codeframe/ent/project"
	"github.com/frankbria/codeframe/pkg/models"
)

// phaseTransitions is the sparse DAG of allowed project phase moves.
// complete is terminal.
var phaseTransitions = map[project.Phase][]project.Phase{
	project.PhaseDiscovery: {project.PhasePlanning},
	project.PhasePlanning:  {project.PhaseDiscovery, project.PhaseActive},
	project.PhaseActive:    {project.PhasePlanning, project.PhaseReview},
	project.PhaseReview:    {project.PhaseActive, project.PhaseComplete},
	project.PhaseComplete:  {},
}

// ProjectService manages project lifecycle
type ProjectService struct {
	client *ent.Client
}

// NewProjectService creates a new ProjectService
func NewProjectService(client *ent.Client) *ProjectService {
	return &ProjectService{client: client}
}

// CreateProject creates a project in the discovery phase.
func (s *ProjectService) CreateProject(httpCtx context.Context, req models.CreateProjectRequest) (*ent.Project, error) {
	if req.ProjectID == "" {
		return nil, NewValidationError("project_id", "required")
	}
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.Project.Create().
		SetID(req.ProjectID).
		SetName(req.Name).
		SetPhase(project.PhaseDiscovery)
	if req.WorkspacePath != "" {
		builder.SetWorkspacePath(req.WorkspacePath)
	}
	if req.Metadata != nil {
		builder.SetMetadata(req.Metadata)
	}

	p, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return p, nil
}

// GetProject fetches a project by id.
func (s *ProjectService) GetProject(ctx context.Context, id string) (*ent.Project, error) {
	p, err := s.client.Project.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: project %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}

// ListProjects returns all projects ordered by creation time.
func (s *ProjectService) ListProjects(ctx context.Context) ([]*ent.Project, error) {
	projects, err := s.client.Project.Query().
		Order(ent.Asc(project.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// TransitionPhase moves a project to a new lifecycle phase, enforcing
// the transition table. Moving to the current phase is rejected.
func (s *ProjectService) TransitionPhase(httpCtx context.Context, id string, to project.Phase) (*ent.Project, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	p, err := s.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}
	if !phaseTransitionAllowed(p.Phase, to) {
		return nil, fmt.Errorf("%w: project phase %s → %s", ErrInvalidTransition, p.Phase, to)
	}

	updated, err := p.Update().SetPhase(to).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update project phase: %w", err)
	}
	return updated, nil
}

func phaseTransitionAllowed(from, to project.Phase) bool {
	for _, next := range phaseTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
