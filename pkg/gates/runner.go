package gates

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Gate names one quality gate.
type Gate string

// Quality gates.
const (
	GateTests         Gate = "tests"
	GateCoverage      Gate = "coverage"
	GateTypeCheck     Gate = "type_check"
	GateLinting       Gate = "linting"
	GateCodeReview    Gate = "code_review"
	GateSkipDetection Gate = "skip_detection"
)

// gateOrder is the execution order within one run.
var gateOrder = []Gate{
	GateTests, GateCoverage, GateTypeCheck,
	GateLinting, GateCodeReview, GateSkipDetection,
}

// applicability is the category → gate matrix.
var applicability = map[Category]map[Gate]bool{
	CategoryCodeImplementation: {
		GateTests: true, GateCoverage: true, GateTypeCheck: true,
		GateLinting: true, GateCodeReview: true, GateSkipDetection: true,
	},
	CategoryDesign: {
		GateCodeReview: true,
	},
	CategoryDocumentation: {
		GateLinting: true,
	},
	CategoryConfiguration: {
		GateTypeCheck: true, GateLinting: true,
	},
	CategoryTesting: {
		GateTests: true, GateCoverage: true, GateSkipDetection: true,
	},
	CategoryRefactoring: {
		GateTests: true, GateCoverage: true, GateTypeCheck: true,
		GateLinting: true, GateCodeReview: true, GateSkipDetection: true,
	},
	CategoryMixed: {
		GateTests: true, GateCoverage: true, GateTypeCheck: true,
		GateLinting: true, GateCodeReview: true, GateSkipDetection: true,
	},
}

// RequiresTestEvidence reports whether the category's gate set
// includes the tests gate, i.e. completion demands a real test run.
func RequiresTestEvidence(c Category) bool {
	return applicability[c][GateTests]
}

// skipReason explains why a gate is not applicable to a category.
func skipReason(category Category, gate Gate) string {
	switch category {
	case CategoryDesign:
		return "design tasks do not produce executable code"
	case CategoryDocumentation:
		if gate == GateTests || gate == GateCoverage || gate == GateTypeCheck || gate == GateSkipDetection {
			return "documentation tasks do not produce executable code"
		}
	case CategoryConfiguration:
		if gate == GateTests || gate == GateCoverage || gate == GateSkipDetection {
			return "configuration tasks have no test suite to run"
		}
	case CategoryTesting:
		if gate == GateTypeCheck || gate == GateLinting {
			return "testing tasks are verified by their test outcomes"
		}
	}
	return fmt.Sprintf("%s tasks do not require the %s gate", category, gate)
}

// ToolRunner executes an external tool (type checker, linter) and
// returns its combined output and exit code. Implementations apply
// their own wall-clock timeout on top of ctx.
type ToolRunner interface {
	RunTool(ctx context.Context, name string, args ...string) (output string, exitCode int, err error)
}

// TaskInput carries everything the gate pipeline needs about one
// finished task attempt.
type TaskInput struct {
	TaskNumber  string
	Title       string
	Description string

	Files []FileContent

	// Test evidence, collected by the probe layer.
	TestsTotal     int
	TestsPassed    int
	TestsFailed    int
	CoveragePct    float64
	SkipViolations []string

	// Tool invocations for the subprocess gates, e.g.
	// {"type_check": {"mypy", "src/"}}. Missing entries skip the gate
	// with a reason.
	ToolCommands map[Gate][]string
}

// GateResult is one gate's outcome.
type GateResult struct {
	Gate       Gate      `json:"gate"`
	Passed     bool      `json:"passed"`
	Skipped    bool      `json:"skipped"`
	SkipReason string    `json:"skip_reason,omitempty"`
	Findings   []Finding `json:"findings,omitempty"`
	Detail     string    `json:"detail,omitempty"`
}

// RunReport aggregates a full gate run for one task.
type RunReport struct {
	Category        Category      `json:"category"`
	Results         []GateResult  `json:"results"`
	Passed          bool          `json:"passed"`
	Review          *ReviewResult `json:"review,omitempty"`
	BlockerQuestion string        `json:"blocker_question,omitempty"`
}

// Findings returns all findings across gates.
func (r *RunReport) Findings() []Finding {
	out := make([]Finding, 0)
	for _, g := range r.Results {
		out = append(out, g.Findings...)
	}
	return out
}

// Runner selects and executes the gates applicable to a task's
// category.
type Runner struct {
	tools       ToolRunner
	minCoverage float64
	toolTimeout time.Duration
	logger      *slog.Logger
}

const (
	defaultMinCoverage = 70.0
	defaultToolTimeout = 5 * time.Minute
)

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithToolRunner installs the subprocess executor for type_check and
// linting gates.
func WithToolRunner(t ToolRunner) RunnerOption {
	return func(r *Runner) { r.tools = t }
}

// WithMinCoverage overrides the coverage gate threshold.
func WithMinCoverage(pct float64) RunnerOption {
	return func(r *Runner) { r.minCoverage = pct }
}

// WithLogger overrides the default logger.
func WithLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) { r.logger = l }
}

// NewRunner builds a gate runner with defaults.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		minCoverage: defaultMinCoverage,
		toolTimeout: defaultToolTimeout,
		logger:      slog.Default(),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Run classifies the task, executes the applicable gates in order, and
// returns the aggregated report. The report's BlockerQuestion is
// non-empty when a failing gate should raise a SYNC blocker.
func (r *Runner) Run(ctx context.Context, in TaskInput) (*RunReport, error) {
	category := Classify(in.Title, in.Description)
	report := &RunReport{Category: category, Passed: true}

	r.logger.Info("running quality gates",
		slog.String("task", in.TaskNumber),
		slog.String("category", string(category)))

	for _, gate := range gateOrder {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if !applicability[category][gate] {
			report.Results = append(report.Results, GateResult{
				Gate:       gate,
				Skipped:    true,
				SkipReason: skipReason(category, gate),
			})
			continue
		}

		res := r.runGate(ctx, gate, in, report)
		report.Results = append(report.Results, res)
		if !res.Passed && !res.Skipped {
			report.Passed = false
		}
	}

	if !report.Passed {
		report.BlockerQuestion = r.blockerQuestion(in, report)
	}
	return report, nil
}

func (r *Runner) runGate(ctx context.Context, gate Gate, in TaskInput, report *RunReport) GateResult {
	switch gate {
	case GateTests:
		return r.runTestsGate(in)
	case GateCoverage:
		return r.runCoverageGate(in)
	case GateTypeCheck, GateLinting:
		return r.runToolGate(ctx, gate, in)
	case GateCodeReview:
		return r.runReviewGate(in, report)
	case GateSkipDetection:
		return r.runSkipGate(in)
	}
	return GateResult{Gate: gate, Skipped: true, SkipReason: "unknown gate"}
}

func (r *Runner) runTestsGate(in TaskInput) GateResult {
	res := GateResult{Gate: GateTests}
	switch {
	case in.TestsTotal == 0:
		res.Detail = "no tests were executed"
	case in.TestsFailed > 0:
		res.Detail = fmt.Sprintf("%d of %d tests failed", in.TestsFailed, in.TestsTotal)
	default:
		res.Passed = true
		res.Detail = fmt.Sprintf("%d tests passed", in.TestsPassed)
	}
	return res
}

func (r *Runner) runCoverageGate(in TaskInput) GateResult {
	res := GateResult{
		Gate:   GateCoverage,
		Detail: fmt.Sprintf("coverage %.1f%% (threshold %.1f%%)", in.CoveragePct, r.minCoverage),
	}
	res.Passed = in.CoveragePct >= r.minCoverage
	return res
}

func (r *Runner) runToolGate(ctx context.Context, gate Gate, in TaskInput) GateResult {
	cmd, ok := in.ToolCommands[gate]
	if !ok || len(cmd) == 0 {
		return GateResult{
			Gate:       gate,
			Skipped:    true,
			SkipReason: fmt.Sprintf("no %s tool configured for this project", gate),
		}
	}
	if r.tools == nil {
		return GateResult{
			Gate:       gate,
			Skipped:    true,
			SkipReason: "no tool runner available",
		}
	}

	toolCtx, cancel := context.WithTimeout(ctx, r.toolTimeout)
	defer cancel()

	output, exitCode, err := r.tools.RunTool(toolCtx, cmd[0], cmd[1:]...)
	if err != nil {
		r.logger.Warn("gate tool failed to run",
			slog.String("gate", string(gate)),
			slog.String("tool", cmd[0]),
			slog.Any("error", err))
		return GateResult{
			Gate:   gate,
			Detail: fmt.Sprintf("%s failed to run: %v", cmd[0], err),
		}
	}
	res := GateResult{Gate: gate, Passed: exitCode == 0}
	if !res.Passed {
		res.Detail = truncateOutput(output, 2000)
	}
	return res
}

func (r *Runner) runReviewGate(in TaskInput, report *RunReport) GateResult {
	review := Review(in.Files, in.CoveragePct)
	report.Review = review

	res := GateResult{
		Gate:     GateCodeReview,
		Passed:   review.Decision.Approved(),
		Findings: review.Findings,
		Detail:   fmt.Sprintf("score %.1f (%s)", review.Score, review.Decision),
	}
	return res
}

func (r *Runner) runSkipGate(in TaskInput) GateResult {
	res := GateResult{Gate: GateSkipDetection, Passed: len(in.SkipViolations) == 0}
	if !res.Passed {
		res.Detail = fmt.Sprintf("skipped or stubbed tests detected: %s",
			strings.Join(in.SkipViolations, "; "))
	}
	return res
}

func (r *Runner) blockerQuestion(in TaskInput, report *RunReport) string {
	if report.Review != nil && !report.Review.Decision.Approved() {
		return report.Review.BlockerQuestion(in.TaskNumber)
	}
	var failed []string
	for _, g := range report.Results {
		if !g.Passed && !g.Skipped {
			line := string(g.Gate)
			if g.Detail != "" {
				line += ": " + g.Detail
			}
			failed = append(failed, line)
		}
	}
	return fmt.Sprintf(
		"Quality gates failed for task %s:\n- %s\nHow should the task proceed?",
		in.TaskNumber, strings.Join(failed, "\n- "))
}

func truncateOutput(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "\n... (truncated)"
}
