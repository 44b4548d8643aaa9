// Package metrics exports coordination-engine metrics in Prometheus
// format: task outcomes, supervisor interventions, gate verdicts, and
// LLM token spend.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/frankbria/codeframe/pkg/models"
)

// Exporter owns the registry and the collectors.
type Exporter struct {
	registry *prometheus.Registry

	tasksCompleted *prometheus.CounterVec
	tasksBlocked   *prometheus.CounterVec
	interventions  *prometheus.CounterVec

	gateRuns     *prometheus.CounterVec
	gateFailures *prometheus.CounterVec

	llmCalls   *prometheus.CounterVec
	llmTokens  *prometheus.CounterVec
	llmLatency *prometheus.HistogramVec
}

// Config configures the exporter.
type Config struct {
	// Registry to use; nil creates a private one.
	Registry *prometheus.Registry

	// LatencyBuckets for the LLM call histogram, in seconds.
	LatencyBuckets []float64
}

// DefaultConfig returns the default exporter configuration.
func DefaultConfig() Config {
	return Config{
		LatencyBuckets: []float64{0.5, 1, 2, 5, 10, 30, 60, 120, 300},
	}
}

// NewExporter creates and registers the collectors.
func NewExporter(cfg Config) *Exporter {
	if len(cfg.LatencyBuckets) == 0 {
		cfg.LatencyBuckets = DefaultConfig().LatencyBuckets
	}
	registry := cfg.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	e := &Exporter{registry: registry}

	e.tasksCompleted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "codeframe",
			Subsystem: "supervisor",
			Name:      "tasks_completed_total",
			Help:      "Tasks that passed their quality gates and completed",
		},
		[]string{"project"},
	)
	e.tasksBlocked = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "codeframe",
			Subsystem: "supervisor",
			Name:      "tasks_blocked_total",
			Help:      "Tasks parked behind a SYNC blocker",
		},
		[]string{"project", "reason"},
	)
	e.interventions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "codeframe",
			Subsystem: "supervisor",
			Name:      "interventions_total",
			Help:      "Tactical interventions applied to failing tasks",
		},
		[]string{"project", "pattern"},
	)

	e.gateRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "codeframe",
			Subsystem: "gates",
			Name:      "runs_total",
			Help:      "Quality gate executions",
		},
		[]string{"gate", "category"},
	)
	e.gateFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "codeframe",
			Subsystem: "gates",
			Name:      "failures_total",
			Help:      "Quality gate failures",
		},
		[]string{"gate", "category"},
	)

	e.llmCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "codeframe",
			Subsystem: "llm",
			Name:      "calls_total",
			Help:      "LLM completions issued",
		},
		[]string{"model", "call_type"},
	)
	e.llmTokens = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "codeframe",
			Subsystem: "llm",
			Name:      "tokens_total",
			Help:      "LLM tokens consumed",
		},
		[]string{"model", "token_type"},
	)
	e.llmLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "codeframe",
			Subsystem: "llm",
			Name:      "call_latency_seconds",
			Help:      "LLM completion latency in seconds",
			Buckets:   cfg.LatencyBuckets,
		},
		[]string{"model"},
	)

	registry.MustRegister(
		e.tasksCompleted,
		e.tasksBlocked,
		e.interventions,
		e.gateRuns,
		e.gateFailures,
		e.llmCalls,
		e.llmTokens,
		e.llmLatency,
	)
	return e
}

// RecordTaskCompleted counts one completed task.
func (e *Exporter) RecordTaskCompleted(project string) {
	e.tasksCompleted.WithLabelValues(project).Inc()
}

// RecordTaskBlocked counts one blocked task with the blocking reason
// ("intervention_limit", "unrecognised_error", "gate_failure").
func (e *Exporter) RecordTaskBlocked(project, reason string) {
	e.tasksBlocked.WithLabelValues(project, reason).Inc()
}

// RecordIntervention counts one tactical intervention by pattern id.
func (e *Exporter) RecordIntervention(project, pattern string) {
	e.interventions.WithLabelValues(project, pattern).Inc()
}

// RecordGateRun counts one gate execution and, when failed, one
// failure.
func (e *Exporter) RecordGateRun(gate, category string, passed bool) {
	e.gateRuns.WithLabelValues(gate, category).Inc()
	if !passed {
		e.gateFailures.WithLabelValues(gate, category).Inc()
	}
}

// RecordLLMLatency observes one completion's wall-clock latency.
func (e *Exporter) RecordLLMLatency(model string, latency time.Duration) {
	e.llmLatency.WithLabelValues(model).Observe(latency.Seconds())
}

// ObserveUsage is the token-accounting observer hook: it is handed to
// the supervisor and called after every recorded LLM call.
func (e *Exporter) ObserveUsage(rec models.TokenUsageRecord) {
	e.llmCalls.WithLabelValues(rec.Model, rec.CallType).Inc()
	e.llmTokens.WithLabelValues(rec.Model, "input").Add(float64(rec.InputTokens))
	e.llmTokens.WithLabelValues(rec.Model, "output").Add(float64(rec.OutputTokens))
}

// Handler returns the /metrics HTTP handler for this registry.
func (e *Exporter) Handler() http.Handler {
	return promhttp.HandlerFor(e.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for test assertions.
func (e *Exporter) Registry() *prometheus.Registry {
	return e.registry
}
