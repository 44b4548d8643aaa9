package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/frankbria/codeframe/ent"
	"github.com/frankbria/codeframe/ent/memory"
	"github.com/frankbria/codeframe/pkg/models"
)

// MemoryService stores project context items for prompt assembly
type MemoryService struct {
	client *ent.Client
}

// NewMemoryService creates a new MemoryService
func NewMemoryService(client *ent.Client) *MemoryService {
	return &MemoryService{client: client}
}

// UpsertMemory writes a memory item keyed by (project, category, key),
// replacing any existing content.
func (s *MemoryService) UpsertMemory(httpCtx context.Context, req models.UpsertMemoryRequest) (*ent.Memory, error) {
	if req.ProjectID == "" {
		return nil, NewValidationError("project_id", "required")
	}
	if req.Key == "" {
		return nil, NewValidationError("key", "required")
	}
	category := memory.Category(req.Category)
	if err := memory.CategoryValidator(category); err != nil {
		return nil, NewValidationError("category", err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := s.client.Memory.Query().
		Where(
			memory.ProjectID(req.ProjectID),
			memory.CategoryEQ(category),
			memory.Key(req.Key),
		).
		Only(ctx)
	switch {
	case err == nil:
		updated, err := existing.Update().SetContent(req.Content).Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update memory: %w", err)
		}
		return updated, nil
	case ent.IsNotFound(err):
		created, err := s.client.Memory.Create().
			SetID(uuid.New().String()).
			SetProjectID(req.ProjectID).
			SetCategory(category).
			SetKey(req.Key).
			SetContent(req.Content).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create memory: %w", err)
		}
		return created, nil
	default:
		return nil, fmt.Errorf("failed to query memory: %w", err)
	}
}

// GetByCategory returns a project's memory items in one category,
// newest first.
func (s *MemoryService) GetByCategory(ctx context.Context, projectID string, category memory.Category) ([]*ent.Memory, error) {
	if err := memory.CategoryValidator(category); err != nil {
		return nil, NewValidationError("category", err.Error())
	}
	items, err := s.client.Memory.Query().
		Where(memory.ProjectID(projectID), memory.CategoryEQ(category)).
		Order(ent.Desc(memory.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list memories: %w", err)
	}
	return items, nil
}

// DeleteByCategory removes every memory item in a category and
// returns how many were deleted.
func (s *MemoryService) DeleteByCategory(httpCtx context.Context, projectID string, category memory.Category) (int, error) {
	if err := memory.CategoryValidator(category); err != nil {
		return 0, NewValidationError("category", err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	n, err := s.client.Memory.Delete().
		Where(memory.ProjectID(projectID), memory.CategoryEQ(category)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete memories: %w", err)
	}
	return n, nil
}
