// Package supervisor runs a project's agent-driven execution loop:
// dispatching ready tasks to worker agents, intervening on recoverable
// failures, and gating completions on quality checks.
package supervisor

import (
	"context"

	"github.com/frankbria/codeframe/ent"
	"github.com/frankbria/codeframe/ent/memory"
	"github.com/frankbria/codeframe/ent/task"
	"github.com/frankbria/codeframe/pkg/graph"
	"github.com/frankbria/codeframe/pkg/models"
)

// TaskStore is the slice of the task service the supervisor mutates.
type TaskStore interface {
	ListTasksByProject(ctx context.Context, projectID string, filter models.TaskFilter) ([]*ent.Task, error)
	UpdateStatus(ctx context.Context, id string, to task.Status) (*ent.Task, error)
	CompleteTask(ctx context.Context, id string, filesChanged []string) (*ent.Task, error)
	SetInterventionContext(ctx context.Context, id string, ic map[string]any) (*ent.Task, error)
	BuildResolver(ctx context.Context, projectID string) (*graph.Resolver, error)
}

// BlockerStore persists the blockers the supervisor raises and reads
// answers back when resuming.
type BlockerStore interface {
	CreateBlocker(ctx context.Context, req models.CreateBlockerRequest) (*ent.Blocker, error)
	ListBlockersByProject(ctx context.Context, projectID string, filter models.BlockerFilter) ([]*ent.Blocker, error)
}

// MemoryStore supplies prompt context.
type MemoryStore interface {
	GetByCategory(ctx context.Context, projectID string, category memory.Category) ([]*ent.Memory, error)
}

// UsageRecorder persists per-call token accounting.
type UsageRecorder interface {
	RecordTokenUsage(ctx context.Context, rec models.TokenUsageRecord) (*ent.TokenUsage, error)
}

// UsageObserver is notified after every recorded LLM call so totals
// can be aggregated without polling.
type UsageObserver func(rec models.TokenUsageRecord)
