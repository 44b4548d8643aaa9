// Package verify gates task completion on empirical test evidence
// rather than agent self-reports.
package verify

import (
	"fmt"
	"strings"

	"github.com/frankbria/codeframe/pkg/probe"
)

// minOutputLength is the shortest raw test output accepted as real.
const minOutputLength = 10

// Evidence is the verification envelope attached to a completed task.
type Evidence struct {
	Tests          *probe.TestResult `json:"tests"`
	SkipViolations []string          `json:"skip_violations,omitempty"`
	Language       probe.Language    `json:"language"`
	Framework      string            `json:"framework"`
	AgentID        string            `json:"agent_id"`
	TaskDesc       string            `json:"task_description"`
	Verified       bool              `json:"verified"`
	Errors         []string          `json:"errors,omitempty"`
}

// Verifier checks test evidence against completion policy.
type Verifier struct {
	RequireCoverage bool
	MinCoverage     float64
	AllowSkipped    bool
	MinPassRate     float64
}

// NewVerifier returns a verifier with the default policy: coverage
// required at 85%, no skipped tests, 100% pass rate.
func NewVerifier() *Verifier {
	return &Verifier{
		RequireCoverage: true,
		MinCoverage:     85,
		AllowSkipped:    false,
		MinPassRate:     100,
	}
}

// Verify evaluates a test run and returns the Evidence envelope.
// Verified is true only when the error list is empty.
func (v *Verifier) Verify(tests *probe.TestResult, skipViolations []string,
	lang probe.Language, framework, agentID, taskDesc string) *Evidence {

	ev := &Evidence{
		Tests:          tests,
		SkipViolations: skipViolations,
		Language:       lang,
		Framework:      framework,
		AgentID:        agentID,
		TaskDesc:       taskDesc,
	}

	if tests == nil || len(strings.TrimSpace(tests.RawOutput)) < minOutputLength {
		ev.Errors = append(ev.Errors, "Test output missing or too short")
		return ev
	}

	if tests.Failed > 0 {
		ev.Errors = append(ev.Errors, fmt.Sprintf("Tests failed: %d failures", tests.Failed))
	}
	if tests.PassRate < v.MinPassRate {
		ev.Errors = append(ev.Errors, fmt.Sprintf("Pass rate too low: %.1f%% (min %.1f%%)",
			tests.PassRate, v.MinPassRate))
	}
	if v.RequireCoverage && !tests.HasCoverage {
		ev.Errors = append(ev.Errors, "Coverage data missing (required)")
	}
	if tests.HasCoverage && tests.CoveragePct < v.MinCoverage {
		ev.Errors = append(ev.Errors, fmt.Sprintf("Coverage too low: %.1f%% (min %.1f%%)",
			tests.CoveragePct, v.MinCoverage))
	}
	if len(skipViolations) > 0 {
		ev.Errors = append(ev.Errors, fmt.Sprintf("Skip violations detected: %d", len(skipViolations)))
	}
	if !v.AllowSkipped && tests.Skipped > 0 {
		ev.Errors = append(ev.Errors, fmt.Sprintf("Skipped tests detected: %d", tests.Skipped))
	}

	ev.Verified = len(ev.Errors) == 0
	return ev
}

// Claim is an agent's self-reported test outcome.
type Claim struct {
	TestsPassed bool    `json:"tests_passed"`
	Total       int     `json:"total"`
	CoveragePct float64 `json:"coverage_pct"`
}

// ValidateClaim compares an agent's claim against the evidence and
// returns the discrepancies, empty when the claim holds up.
func ValidateClaim(claim Claim, ev *Evidence) []string {
	var discrepancies []string
	if ev == nil || ev.Tests == nil {
		if claim.TestsPassed {
			discrepancies = append(discrepancies,
				"agent claims tests passed but no evidence was collected")
		}
		return discrepancies
	}

	if claim.TestsPassed && ev.Tests.Failed > 0 {
		discrepancies = append(discrepancies, fmt.Sprintf(
			"agent claims tests passed but %d failed", ev.Tests.Failed))
	}
	if claim.Total != 0 && claim.Total != ev.Tests.Total {
		discrepancies = append(discrepancies, fmt.Sprintf(
			"agent claims %d tests but %d were executed", claim.Total, ev.Tests.Total))
	}
	if claim.CoveragePct != 0 {
		if !ev.Tests.HasCoverage {
			discrepancies = append(discrepancies, fmt.Sprintf(
				"agent claims %.1f%% coverage but no coverage data was collected", claim.CoveragePct))
		} else if claim.CoveragePct > ev.Tests.CoveragePct+1 {
			discrepancies = append(discrepancies, fmt.Sprintf(
				"agent claims %.1f%% coverage but measured %.1f%%",
				claim.CoveragePct, ev.Tests.CoveragePct))
		}
	}
	return discrepancies
}
