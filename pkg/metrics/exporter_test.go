package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankbria/codeframe/pkg/models"
)

func TestExporterCounters(t *testing.T) {
	e := NewExporter(Config{})

	e.RecordTaskCompleted("proj-a")
	e.RecordTaskCompleted("proj-a")
	e.RecordTaskBlocked("proj-a", "gate_failure")
	e.RecordIntervention("proj-a", "file_already_exists")
	e.RecordGateRun("tests", "code_implementation", true)
	e.RecordGateRun("code_review", "code_implementation", false)

	assert.Equal(t, 2.0, testutil.ToFloat64(e.tasksCompleted.WithLabelValues("proj-a")))
	assert.Equal(t, 1.0, testutil.ToFloat64(e.tasksBlocked.WithLabelValues("proj-a", "gate_failure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(e.interventions.WithLabelValues("proj-a", "file_already_exists")))
	assert.Equal(t, 2.0, testutil.ToFloat64(e.gateRuns))
	assert.Equal(t, 1.0, testutil.ToFloat64(e.gateFailures.WithLabelValues("code_review", "code_implementation")))
}

func TestObserveUsage(t *testing.T) {
	e := NewExporter(Config{})

	e.ObserveUsage(models.TokenUsageRecord{
		Model: "gpt-4o", CallType: "task_execution",
		InputTokens: 1200, OutputTokens: 300,
	})
	e.ObserveUsage(models.TokenUsageRecord{
		Model: "gpt-4o", CallType: "task_execution",
		InputTokens: 800, OutputTokens: 100,
	})

	assert.Equal(t, 2.0, testutil.ToFloat64(e.llmCalls.WithLabelValues("gpt-4o", "task_execution")))
	assert.Equal(t, 2000.0, testutil.ToFloat64(e.llmTokens.WithLabelValues("gpt-4o", "input")))
	assert.Equal(t, 400.0, testutil.ToFloat64(e.llmTokens.WithLabelValues("gpt-4o", "output")))
}

func TestHandlerServesTextFormat(t *testing.T) {
	e := NewExporter(Config{})
	e.RecordTaskCompleted("proj-a")
	e.RecordLLMLatency("gpt-4o", 1200*time.Millisecond)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)
	e.Handler().ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "codeframe_supervisor_tasks_completed_total"))
	assert.True(t, strings.Contains(body, "codeframe_llm_call_latency_seconds_bucket"))
}
