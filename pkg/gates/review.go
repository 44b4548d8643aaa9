package gates

import (
	"fmt"
	"math"
)

// ReviewDecision is the outcome of a code review gate.
type ReviewDecision string

// Review decisions.
const (
	DecisionApprovedExcellent   ReviewDecision = "approved_excellent"
	DecisionApprovedSuggestions ReviewDecision = "approved_with_suggestions"
	DecisionChangesRequested    ReviewDecision = "changes_requested"
	DecisionRejected            ReviewDecision = "rejected"
)

// SubScores are the four 0-100 review dimensions.
type SubScores struct {
	Complexity float64 `json:"complexity"`
	Security   float64 `json:"security"`
	Style      float64 `json:"style"`
	Coverage   float64 `json:"coverage"`
}

// ReviewResult is the scored review with its findings.
type ReviewResult struct {
	Scores   SubScores      `json:"scores"`
	Score    float64        `json:"score"`
	Decision ReviewDecision `json:"decision"`
	Findings []Finding      `json:"findings"`
}

// Sub-score weights.
const (
	weightComplexity = 0.3
	weightSecurity   = 0.4
	weightStyle      = 0.2
	weightCoverage   = 0.1
)

// CombineScores applies the weighted sum 0.3·complexity +
// 0.4·security + 0.2·style + 0.1·coverage, rounded to one decimal.
func CombineScores(s SubScores) float64 {
	raw := weightComplexity*s.Complexity +
		weightSecurity*s.Security +
		weightStyle*s.Style +
		weightCoverage*s.Coverage
	return math.Round(raw*10) / 10
}

// Decide maps a combined score and the finding set to a decision. Any
// critical finding rejects regardless of score.
func Decide(score float64, findings []Finding) ReviewDecision {
	for _, f := range findings {
		if f.Severity == SeverityCritical {
			return DecisionRejected
		}
	}
	switch {
	case score >= 90:
		return DecisionApprovedExcellent
	case score >= 70:
		return DecisionApprovedSuggestions
	case score >= 50:
		return DecisionChangesRequested
	default:
		return DecisionRejected
	}
}

// Approved reports whether the decision lets the task through without
// a blocker.
func (d ReviewDecision) Approved() bool {
	return d == DecisionApprovedExcellent || d == DecisionApprovedSuggestions
}

// FileContent is one changed file handed to the reviewer.
type FileContent struct {
	Path    string
	Content string
}

// Review runs the static analysers over the changed files, derives
// sub-scores from the findings plus the measured coverage percentage,
// and returns the scored result.
func Review(files []FileContent, coveragePct float64) *ReviewResult {
	findings := make([]Finding, 0)
	for _, f := range files {
		findings = append(findings, AnalyzeComplexity(f.Path, f.Content)...)
		findings = append(findings, AnalyzeSecurity(f.Path, f.Content)...)
		findings = append(findings, AnalyzeStyle(f.Path, f.Content)...)
	}

	scores := SubScores{
		Complexity: deductionScore(findings, FindingComplexity),
		Security:   deductionScore(findings, FindingSecurity),
		Style: deductionScore(findings, FindingStyle,
			FindingMaintainability, FindingPerformance),
		Coverage: clampScore(coveragePct),
	}
	score := CombineScores(scores)
	return &ReviewResult{
		Scores:   scores,
		Score:    score,
		Decision: Decide(score, findings),
		Findings: findings,
	}
}

// severityDeduction is how many points each finding costs its
// dimension's 0-100 sub-score.
var severityDeduction = map[Severity]float64{
	SeverityCritical: 40,
	SeverityHigh:     20,
	SeverityMedium:   10,
	SeverityLow:      5,
	SeverityInfo:     1,
}

func deductionScore(findings []Finding, categories ...FindingCategory) float64 {
	score := 100.0
	for _, f := range findings {
		for _, c := range categories {
			if f.Category == c {
				score -= severityDeduction[f.Severity]
				break
			}
		}
	}
	return clampScore(score)
}

func clampScore(v float64) float64 {
	return math.Min(100, math.Max(0, v))
}

// BlockerQuestion formats the review result into the question text of
// the SYNC blocker raised on changes_requested or rejected.
func (r *ReviewResult) BlockerQuestion(taskNumber string) string {
	return fmt.Sprintf(
		"Code review for task %s scored %.1f (%s).\n%s\nHow should these findings be addressed?",
		taskNumber, r.Score, r.Decision, FormatFindings(r.Findings))
}
