package gates

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeToolRunner struct {
	output   string
	exitCode int
	err      error
	calls    [][]string
}

func (f *fakeToolRunner) RunTool(_ context.Context, name string, args ...string) (string, int, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	return f.output, f.exitCode, f.err
}

func gateByName(t *testing.T, report *RunReport, gate Gate) GateResult {
	t.Helper()
	for _, g := range report.Results {
		if g.Gate == gate {
			return g
		}
	}
	t.Fatalf("gate %s not in report", gate)
	return GateResult{}
}

func TestDesignTaskRunsOnlyCodeReview(t *testing.T) {
	runner := NewRunner()

	report, err := runner.Run(context.Background(), TaskInput{
		TaskNumber:  "2.1",
		Title:       "Design the dashboard architecture",
		Description: "produce a wireframe of the layout",
		Files: []FileContent{{
			Path:    "docs/dashboard.md",
			Content: "The dashboard has three panels.\n",
		}},
	})
	require.NoError(t, err)
	assert.Equal(t, CategoryDesign, report.Category)

	review := gateByName(t, report, GateCodeReview)
	assert.False(t, review.Skipped)
	assert.True(t, review.Passed)

	for _, gate := range []Gate{GateTests, GateCoverage, GateTypeCheck, GateLinting, GateSkipDetection} {
		res := gateByName(t, report, gate)
		assert.True(t, res.Skipped, "gate %s should be skipped", gate)
		assert.NotEmpty(t, res.SkipReason)
	}
	assert.Equal(t, "design tasks do not produce executable code",
		gateByName(t, report, GateTests).SkipReason)

	assert.True(t, report.Passed)
	assert.Empty(t, report.BlockerQuestion)
}

// noisyShellFile has two high-complexity functions each assembling a
// shell command from variables, which lands the review score in the
// changes_requested band when coverage is low.
func noisyShellFile() string {
	var b strings.Builder
	b.WriteString("import subprocess\n\n")
	for _, fn := range []string{"sync_one", "sync_two"} {
		b.WriteString("def " + fn + "(cmd):\n")
		for i := 0; i < 12; i++ {
			b.WriteString("    if cmd:\n        pass\n")
		}
		b.WriteString("    subprocess.call(\"ls \" + cmd, shell=True)\n\n")
	}
	return b.String()
}

func TestLowReviewScoreRaisesBlocker(t *testing.T) {
	runner := NewRunner()

	report, err := runner.Run(context.Background(), TaskInput{
		TaskNumber:  "3.4",
		Title:       "Implement the sync endpoint",
		Description: "add the API handler",
		Files: []FileContent{{
			Path:    "sync.py",
			Content: noisyShellFile(),
		}},
		TestsTotal:  10,
		TestsPassed: 10,
		CoveragePct: 30,
	})
	require.NoError(t, err)
	assert.Equal(t, CategoryCodeImplementation, report.Category)

	require.NotNil(t, report.Review)
	assert.Equal(t, 60.0, report.Review.Scores.Complexity)
	assert.Equal(t, 60.0, report.Review.Scores.Security)
	assert.Equal(t, DecisionChangesRequested, report.Review.Decision)

	assert.False(t, report.Passed)
	assert.Contains(t, report.BlockerQuestion, "task 3.4")
	assert.Contains(t, report.BlockerQuestion, "shell command assembled from variables")
}

func TestTestsGateFailures(t *testing.T) {
	runner := NewRunner()

	report, err := runner.Run(context.Background(), TaskInput{
		TaskNumber:  "1.1",
		Title:       "Write tests for the parser",
		Description: "pytest coverage",
		TestsTotal:  8,
		TestsPassed: 6,
		TestsFailed: 2,
		CoveragePct: 90,
	})
	require.NoError(t, err)
	assert.Equal(t, CategoryTesting, report.Category)

	tests := gateByName(t, report, GateTests)
	assert.False(t, tests.Passed)
	assert.Contains(t, tests.Detail, "2 of 8 tests failed")
	assert.False(t, report.Passed)
}

func TestNoTestsExecutedFailsTestsGate(t *testing.T) {
	runner := NewRunner()

	report, err := runner.Run(context.Background(), TaskInput{
		TaskNumber:  "1.2",
		Title:       "Write tests for the exporter",
		Description: "pytest",
		CoveragePct: 90,
	})
	require.NoError(t, err)

	tests := gateByName(t, report, GateTests)
	assert.False(t, tests.Passed)
	assert.Contains(t, tests.Detail, "no tests were executed")
}

func TestSkipDetectionGate(t *testing.T) {
	runner := NewRunner()

	report, err := runner.Run(context.Background(), TaskInput{
		TaskNumber:     "1.3",
		Title:          "Write tests for billing",
		Description:    "pytest suite",
		TestsTotal:     5,
		TestsPassed:    5,
		CoveragePct:    90,
		SkipViolations: []string{"billing_test.py:42 @pytest.mark.skip"},
	})
	require.NoError(t, err)

	skip := gateByName(t, report, GateSkipDetection)
	assert.False(t, skip.Passed)
	assert.Contains(t, skip.Detail, "billing_test.py:42")
	assert.False(t, report.Passed)
}

func TestLintingToolGate(t *testing.T) {
	tool := &fakeToolRunner{output: "README.md:3 MD013 line too long", exitCode: 1}
	runner := NewRunner(WithToolRunner(tool))

	report, err := runner.Run(context.Background(), TaskInput{
		TaskNumber:  "4.1",
		Title:       "Update README docs",
		Description: "document the new flags",
		ToolCommands: map[Gate][]string{
			GateLinting: {"markdownlint", "README.md"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, CategoryDocumentation, report.Category)

	lint := gateByName(t, report, GateLinting)
	assert.False(t, lint.Passed)
	assert.Contains(t, lint.Detail, "MD013")
	require.Len(t, tool.calls, 1)
	assert.Equal(t, []string{"markdownlint", "README.md"}, tool.calls[0])

	assert.False(t, report.Passed)
	assert.Contains(t, report.BlockerQuestion, "linting")
}

func TestToolGateSkippedWithoutCommand(t *testing.T) {
	runner := NewRunner(WithToolRunner(&fakeToolRunner{}))

	report, err := runner.Run(context.Background(), TaskInput{
		TaskNumber:  "4.2",
		Title:       "Update the deployment config",
		Description: "environment setup",
	})
	require.NoError(t, err)
	assert.Equal(t, CategoryConfiguration, report.Category)

	lint := gateByName(t, report, GateLinting)
	assert.True(t, lint.Skipped)
	assert.Contains(t, lint.SkipReason, "no linting tool configured")
	assert.True(t, report.Passed, "missing tools skip, they do not fail")
}

func TestCoverageThreshold(t *testing.T) {
	runner := NewRunner(WithMinCoverage(80))

	report, err := runner.Run(context.Background(), TaskInput{
		TaskNumber:  "5.1",
		Title:       "Refactor the storage layer",
		Description: "restructure modules",
		Files: []FileContent{{
			Path:    "store.go",
			Content: "func get() int {\n\treturn 1\n}\n",
		}},
		TestsTotal:  3,
		TestsPassed: 3,
		CoveragePct: 75,
	})
	require.NoError(t, err)
	assert.Equal(t, CategoryRefactoring, report.Category)

	cov := gateByName(t, report, GateCoverage)
	assert.False(t, cov.Passed)
	assert.Contains(t, cov.Detail, "threshold 80.0%")
}

func TestApplicabilityMatrix(t *testing.T) {
	tests := []struct {
		category Category
		want     []Gate
	}{
		{CategoryCodeImplementation, []Gate{GateTests, GateCoverage, GateTypeCheck, GateLinting, GateCodeReview, GateSkipDetection}},
		{CategoryDesign, []Gate{GateCodeReview}},
		{CategoryDocumentation, []Gate{GateLinting}},
		{CategoryConfiguration, []Gate{GateTypeCheck, GateLinting}},
		{CategoryTesting, []Gate{GateTests, GateCoverage, GateSkipDetection}},
		{CategoryRefactoring, []Gate{GateTests, GateCoverage, GateTypeCheck, GateLinting, GateCodeReview, GateSkipDetection}},
		{CategoryMixed, []Gate{GateTests, GateCoverage, GateTypeCheck, GateLinting, GateCodeReview, GateSkipDetection}},
	}
	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			var got []Gate
			for _, g := range gateOrder {
				if applicability[tt.category][g] {
					got = append(got, g)
				}
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequiresTestEvidence(t *testing.T) {
	assert.True(t, RequiresTestEvidence(CategoryCodeImplementation))
	assert.True(t, RequiresTestEvidence(CategoryTesting))
	assert.True(t, RequiresTestEvidence(CategoryRefactoring))
	assert.True(t, RequiresTestEvidence(CategoryMixed))
	assert.False(t, RequiresTestEvidence(CategoryDesign))
	assert.False(t, RequiresTestEvidence(CategoryDocumentation))
	assert.False(t, RequiresTestEvidence(CategoryConfiguration))
}

func TestRunHonoursContextCancellation(t *testing.T) {
	runner := NewRunner()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Run(ctx, TaskInput{TaskNumber: "6.1", Title: "implement feature"})
	assert.ErrorIs(t, err, context.Canceled)
}
