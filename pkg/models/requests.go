// Package models holds the request and filter structs shared by the
// service layer and the HTTP surface.
package models

// CreateProjectRequest creates a project in the discovery phase.
type CreateProjectRequest struct {
	ProjectID     string         `json:"project_id" binding:"required"`
	Name          string         `json:"name" binding:"required"`
	WorkspacePath string         `json:"workspace_path,omitempty"`
	Metadata      map[string]any `json:"metadata,omitempty"`
}

// CreateIssueRequest adds an issue to a project.
type CreateIssueRequest struct {
	ProjectID   string `json:"project_id" binding:"required"`
	IssueNumber string `json:"issue_number" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description,omitempty"`
	Priority    int    `json:"priority,omitempty"`
}

// CreateTaskRequest creates a task under an issue; when the issue does
// not exist yet it is created in the same transaction.
type CreateTaskRequest struct {
	ProjectID      string  `json:"project_id" binding:"required"`
	IssueNumber    string  `json:"issue_number" binding:"required"`
	IssueTitle     string  `json:"issue_title,omitempty"`
	TaskNumber     string  `json:"task_number" binding:"required"`
	Title          string  `json:"title" binding:"required"`
	Description    string  `json:"description,omitempty"`
	DependsOn      string  `json:"depends_on,omitempty"`
	Priority       int     `json:"priority,omitempty"`
	EstimatedHours float64 `json:"estimated_hours,omitempty"`
}

// TaskFilter narrows task listings.
type TaskFilter struct {
	Status string `form:"status" json:"status,omitempty"`
}

// CreateBlockerRequest persists a new blocker.
type CreateBlockerRequest struct {
	ProjectID string `json:"project_id" binding:"required"`
	Kind      string `json:"kind" binding:"required"` // sync | async
	Question  string `json:"question" binding:"required"`
	TaskID    string `json:"task_id,omitempty"`
	SessionID string `json:"session_id,omitempty"`
}

// AnswerBlockerRequest answers a pending blocker.
type AnswerBlockerRequest struct {
	Answer string `json:"answer" binding:"required"`
}

// BlockerFilter selects pending or answered blockers; empty means all.
type BlockerFilter struct {
	State string `form:"state" json:"state,omitempty"` // pending | answered
	Kind  string `form:"kind" json:"kind,omitempty"`   // sync | async
}

// UpsertMemoryRequest writes one memory item keyed by
// (project, category, key).
type UpsertMemoryRequest struct {
	ProjectID string `json:"project_id" binding:"required"`
	Category  string `json:"category" binding:"required"` // hot | warm | cold
	Key       string `json:"key" binding:"required"`
	Content   string `json:"content" binding:"required"`
}

// TokenUsageRecord is one LLM call's accounting entry.
type TokenUsageRecord struct {
	ProjectID    string `json:"project_id"`
	SessionID    string `json:"session_id,omitempty"`
	TaskID       string `json:"task_id,omitempty"`
	AgentID      string `json:"agent_id,omitempty"`
	Model        string `json:"model"`
	CallType     string `json:"call_type"`
	InputTokens  int    `json:"input_tokens"`
	OutputTokens int    `json:"output_tokens"`
}

// TokenTotals aggregates usage for a project.
type TokenTotals struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	Calls        int `json:"calls"`
}
