// Package llm is the provider adapter the supervisor talks to. It
// exposes completion and streaming with distinct error kinds so the
// caller can decide retry versus blocker.
package llm

import (
	"context"
	"errors"
)

var (
	// ErrAuthentication indicates a rejected or missing API key
	ErrAuthentication = errors.New("llm authentication failed")

	// ErrRateLimit indicates the provider throttled the request
	ErrRateLimit = errors.New("llm rate limit exceeded")

	// ErrConnection indicates a network-level failure
	ErrConnection = errors.New("llm connection failed")

	// ErrTimeout indicates the call exceeded its deadline
	ErrTimeout = errors.New("llm request timed out")
)

// IsTransient reports whether an error is worth retrying with backoff.
// Authentication failures are not.
func IsTransient(err error) bool {
	return errors.Is(err, ErrRateLimit) ||
		errors.Is(err, ErrConnection) ||
		errors.Is(err, ErrTimeout)
}

// Message is one turn of a conversation.
type Message struct {
	Role       string `json:"role"` // system, user, assistant, tool
	Content    string `json:"content"`
	ToolCallID string `json:"tool_call_id,omitempty"`
	IsError    bool   `json:"is_error,omitempty"`
}

// Tool describes a callable function offered to the model.
type Tool struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Parameters  string `json:"parameters"` // JSON Schema
}

// ToolCall is the model's request to invoke a tool.
type ToolCall struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Input string `json:"input"`
}

// Request is one completion request.
type Request struct {
	System      string    `json:"system,omitempty"`
	Messages    []Message `json:"messages"`
	Purpose     string    `json:"purpose"` // call_type recorded in token usage
	Tools       []Tool    `json:"tools,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float64   `json:"temperature,omitempty"`
}

// Response is the adapter's completion result.
type Response struct {
	Content      string     `json:"content"`
	ToolCalls    []ToolCall `json:"tool_calls,omitempty"`
	StopReason   string     `json:"stop_reason"`
	Model        string     `json:"model"`
	InputTokens  int        `json:"input_tokens"`
	OutputTokens int        `json:"output_tokens"`
}

// Adapter is the completion contract consumed by the supervisor.
type Adapter interface {
	// Complete runs one blocking completion.
	Complete(ctx context.Context, req Request) (*Response, error)

	// Stream yields text chunks on the returned channel; the error
	// channel delivers at most one terminal error. Both channels close
	// when the stream ends.
	Stream(ctx context.Context, req Request) (<-chan string, <-chan error)
}
