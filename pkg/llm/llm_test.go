package llm

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedAdapter struct {
	responses []any // *Response or error, consumed in order
	calls     int
}

func (s *scriptedAdapter) Complete(_ context.Context, _ Request) (*Response, error) {
	if s.calls >= len(s.responses) {
		return nil, fmt.Errorf("unexpected call %d", s.calls)
	}
	item := s.responses[s.calls]
	s.calls++
	if err, ok := item.(error); ok {
		return nil, err
	}
	return item.(*Response), nil
}

func (s *scriptedAdapter) Stream(ctx context.Context, _ Request) (<-chan string, <-chan error) {
	chunks := make(chan string)
	errs := make(chan error, 1)
	close(chunks)
	close(errs)
	return chunks, errs
}

func fastRetrier(inner Adapter) *RetryingAdapter {
	r := NewRetryingAdapter(inner)
	r.baseBackoff = time.Millisecond
	return r
}

func TestRetrySucceedsAfterTransient(t *testing.T) {
	inner := &scriptedAdapter{responses: []any{
		fmt.Errorf("wrapped: %w", ErrRateLimit),
		fmt.Errorf("wrapped: %w", ErrConnection),
		&Response{Content: "done", InputTokens: 10, OutputTokens: 5},
	}}

	resp, err := fastRetrier(inner).Complete(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, "done", resp.Content)
	assert.Equal(t, 3, inner.calls)
}

func TestRetryExhaustion(t *testing.T) {
	inner := &scriptedAdapter{responses: []any{
		ErrRateLimit, ErrRateLimit, ErrRateLimit,
	}}

	_, err := fastRetrier(inner).Complete(context.Background(), Request{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRateLimit)
	assert.Contains(t, err.Error(), "after 3 attempts")
	assert.Equal(t, 3, inner.calls)
}

func TestAuthErrorNotRetried(t *testing.T) {
	inner := &scriptedAdapter{responses: []any{ErrAuthentication}}

	_, err := fastRetrier(inner).Complete(context.Background(), Request{})
	assert.ErrorIs(t, err, ErrAuthentication)
	assert.Equal(t, 1, inner.calls)
}

func TestIsTransient(t *testing.T) {
	assert.True(t, IsTransient(ErrRateLimit))
	assert.True(t, IsTransient(ErrConnection))
	assert.True(t, IsTransient(ErrTimeout))
	assert.False(t, IsTransient(ErrAuthentication))
	assert.False(t, IsTransient(fmt.Errorf("arbitrary")))
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"401", &openai.APIError{HTTPStatusCode: 401}, ErrAuthentication},
		{"403", &openai.APIError{HTTPStatusCode: 403}, ErrAuthentication},
		{"429", &openai.APIError{HTTPStatusCode: 429}, ErrRateLimit},
		{"500", &openai.APIError{HTTPStatusCode: 500}, ErrConnection},
		{"deadline", context.DeadlineExceeded, ErrTimeout},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, classifyError(tt.err), tt.want)
		})
	}

	// 4xx contract errors pass through unclassified.
	badReq := &openai.APIError{HTTPStatusCode: 400}
	got := classifyError(badReq)
	assert.False(t, IsTransient(got))
	assert.NotErrorIs(t, got, ErrAuthentication)
}

func TestNewOpenAIAdapterRequiresKey(t *testing.T) {
	t.Setenv(APIKeyEnv, "")

	_, err := NewOpenAIAdapter()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAuthentication)
	assert.Contains(t, err.Error(), APIKeyEnv)
}

func TestNewOpenAIAdapterWithKey(t *testing.T) {
	t.Setenv(APIKeyEnv, "test-key")

	a, err := NewOpenAIAdapter(WithModel("gpt-4o-mini"), WithBaseURL("http://localhost:9999/v1"))
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", a.model)
}

func TestBuildRequestMessageMapping(t *testing.T) {
	t.Setenv(APIKeyEnv, "test-key")
	a, err := NewOpenAIAdapter()
	require.NoError(t, err)

	out := a.buildRequest(Request{
		System: "be precise",
		Messages: []Message{
			{Role: "user", Content: "do the task"},
			{Role: "assistant", Content: ""},
			{ToolCallID: "call-1", Content: "boom", IsError: true},
		},
		Tools:       []Tool{{Name: "edit_file", Parameters: `{"type":"object"}`}},
		MaxTokens:   256,
		Temperature: 0.3,
	}, false)

	require.Len(t, out.Messages, 4)
	assert.Equal(t, openai.ChatMessageRoleSystem, out.Messages[0].Role)
	assert.Equal(t, openai.ChatMessageRoleTool, out.Messages[3].Role)
	assert.Equal(t, "call-1", out.Messages[3].ToolCallID)
	assert.Equal(t, "ERROR: boom", out.Messages[3].Content)
	require.Len(t, out.Tools, 1)
	assert.Equal(t, "edit_file", out.Tools[0].Function.Name)
	assert.Equal(t, 256, out.MaxTokens)
}
