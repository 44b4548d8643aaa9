package gates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombineScores(t *testing.T) {
	score := CombineScores(SubScores{
		Complexity: 60,
		Security:   60,
		Style:      90,
		Coverage:   80,
	})
	assert.Equal(t, 68.0, score)
}

func TestCombineScoresRounding(t *testing.T) {
	score := CombineScores(SubScores{
		Complexity: 77.7,
		Security:   88.8,
		Style:      55.5,
		Coverage:   33.3,
	})
	// 23.31 + 35.52 + 11.1 + 3.33 = 73.26 → 73.3
	assert.Equal(t, 73.3, score)
}

func TestDecideThresholds(t *testing.T) {
	tests := []struct {
		score float64
		want  ReviewDecision
	}{
		{95, DecisionApprovedExcellent},
		{90, DecisionApprovedExcellent},
		{89.9, DecisionApprovedSuggestions},
		{70, DecisionApprovedSuggestions},
		{68, DecisionChangesRequested},
		{50, DecisionChangesRequested},
		{49.9, DecisionRejected},
		{0, DecisionRejected},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Decide(tt.score, nil), "score %v", tt.score)
	}
}

func TestDecideCriticalFindingRejects(t *testing.T) {
	findings := []Finding{{Category: FindingSecurity, Severity: SeverityCritical}}
	assert.Equal(t, DecisionRejected, Decide(99, findings))
}

func TestReviewCleanFileApproved(t *testing.T) {
	files := []FileContent{{
		Path:    "pkg/sum/sum.go",
		Content: "package sum\n\nfunc Add(a, b int) int {\n\treturn a + b\n}\n",
	}}
	res := Review(files, 95)

	assert.True(t, res.Decision.Approved())
	assert.Equal(t, 100.0, res.Scores.Security)
	assert.Equal(t, 95.0, res.Scores.Coverage)
}

func TestReviewEvalIsRejected(t *testing.T) {
	files := []FileContent{{
		Path:    "handler.py",
		Content: "def run(expr):\n    return eval(expr)\n",
	}}
	res := Review(files, 95)

	assert.Equal(t, DecisionRejected, res.Decision)
	require.NotEmpty(t, res.Findings)
	assert.Equal(t, SeverityCritical, res.Findings[0].Severity)
}

func TestReviewHardcodedCredentialExclusions(t *testing.T) {
	findings := AnalyzeSecurity("settings.py", strings.Join([]string{
		`password = "hunter2-prod"`,
		`password = "example-placeholder"`,
		`api_key = ""`,
	}, "\n"))

	require.Len(t, findings, 1)
	assert.Contains(t, findings[0].Message, "hardcoded_credentials")
	require.NotNil(t, findings[0].Line)
	assert.Equal(t, 1, *findings[0].Line)
}

func TestMapScannerSeverity(t *testing.T) {
	assert.Equal(t, SeverityCritical, MapScannerSeverity("HIGH"))
	assert.Equal(t, SeverityHigh, MapScannerSeverity("medium"))
	assert.Equal(t, SeverityMedium, MapScannerSeverity("LOW"))
	assert.Equal(t, SeverityMedium, MapScannerSeverity("whatever"))
}

func TestBlockerQuestionContainsFindings(t *testing.T) {
	res := &ReviewResult{
		Score:    42.0,
		Decision: DecisionRejected,
		Findings: []Finding{{
			Category: FindingSecurity,
			Severity: SeverityHigh,
			File:     "db.go",
			Message:  "shell command assembled from variables",
		}},
	}
	q := res.BlockerQuestion("1.2")
	assert.Contains(t, q, "task 1.2")
	assert.Contains(t, q, "42.0")
	assert.Contains(t, q, "shell command assembled from variables")
}

func TestAnalyzeComplexityBands(t *testing.T) {
	var b strings.Builder
	b.WriteString("def busy(x):\n")
	for i := 0; i < 12; i++ {
		b.WriteString("    if x:\n        pass\n")
	}
	findings := AnalyzeComplexity("busy.py", b.String())

	require.NotEmpty(t, findings)
	assert.Equal(t, FindingComplexity, findings[0].Category)
	assert.Equal(t, SeverityHigh, findings[0].Severity)
	assert.Contains(t, findings[0].Message, "busy")
}

func TestAnalyzeComplexitySimpleFunctionClean(t *testing.T) {
	findings := AnalyzeComplexity("ok.go", "func ok() int {\n\treturn 1\n}\n")
	assert.Empty(t, findings)
}
