package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankbria/codeframe/pkg/probe"
)

func passingRun() *probe.TestResult {
	return &probe.TestResult{
		Total:       10,
		Passed:      10,
		PassRate:    100,
		CoveragePct: 92,
		HasCoverage: true,
		RawOutput:   "== 10 passed in 1.2s ==",
	}
}

func TestVerifyPassing(t *testing.T) {
	ev := NewVerifier().Verify(passingRun(), nil, probe.LangPython, "pytest", "agent-1", "implement login")

	assert.True(t, ev.Verified)
	assert.Empty(t, ev.Errors)
	assert.Equal(t, "agent-1", ev.AgentID)
	assert.Equal(t, probe.LangPython, ev.Language)
}

func TestVerifyFailuresAndPassRate(t *testing.T) {
	run := passingRun()
	run.Passed = 8
	run.Failed = 2
	run.PassRate = 80

	ev := NewVerifier().Verify(run, nil, probe.LangGo, "go test", "agent-1", "")
	assert.False(t, ev.Verified)
	assert.Contains(t, ev.Errors, "Tests failed: 2 failures")
	assert.Contains(t, ev.Errors, "Pass rate too low: 80.0% (min 100.0%)")
}

func TestVerifyCoverageMissing(t *testing.T) {
	run := passingRun()
	run.HasCoverage = false
	run.CoveragePct = 0

	ev := NewVerifier().Verify(run, nil, probe.LangGo, "go test", "agent-1", "")
	assert.False(t, ev.Verified)
	assert.Contains(t, ev.Errors, "Coverage data missing (required)")
}

func TestVerifyCoverageTooLow(t *testing.T) {
	run := passingRun()
	run.CoveragePct = 70

	ev := NewVerifier().Verify(run, nil, probe.LangGo, "go test", "agent-1", "")
	assert.Contains(t, ev.Errors, "Coverage too low: 70.0% (min 85.0%)")
}

func TestVerifyCoverageOptional(t *testing.T) {
	run := passingRun()
	run.HasCoverage = false
	run.CoveragePct = 0

	v := NewVerifier()
	v.RequireCoverage = false
	ev := v.Verify(run, nil, probe.LangGo, "go test", "agent-1", "")
	assert.True(t, ev.Verified)
}

func TestVerifySkips(t *testing.T) {
	run := passingRun()
	run.Skipped = 1

	ev := NewVerifier().Verify(run, []string{"test_auth.py:3: @pytest.mark.skip"},
		probe.LangPython, "pytest", "agent-1", "")
	assert.Contains(t, ev.Errors, "Skip violations detected: 1")
	assert.Contains(t, ev.Errors, "Skipped tests detected: 1")
}

func TestVerifyShortOutput(t *testing.T) {
	run := passingRun()
	run.RawOutput = "ok"

	ev := NewVerifier().Verify(run, nil, probe.LangGo, "go test", "agent-1", "")
	require.Equal(t, []string{"Test output missing or too short"}, ev.Errors)
	assert.False(t, ev.Verified)
}

func TestVerifyNilRun(t *testing.T) {
	ev := NewVerifier().Verify(nil, nil, probe.LangUnknown, "", "agent-1", "")
	assert.Equal(t, []string{"Test output missing or too short"}, ev.Errors)
}

func TestValidateClaim(t *testing.T) {
	ev := NewVerifier().Verify(passingRun(), nil, probe.LangPython, "pytest", "agent-1", "")

	assert.Empty(t, ValidateClaim(Claim{TestsPassed: true, Total: 10, CoveragePct: 92}, ev))

	d := ValidateClaim(Claim{TestsPassed: true, Total: 12, CoveragePct: 99}, ev)
	require.Len(t, d, 2)
	assert.Contains(t, d[0], "12 tests but 10")
	assert.Contains(t, d[1], "99.0% coverage but measured 92.0%")
}

func TestValidateClaimAgainstFailures(t *testing.T) {
	run := passingRun()
	run.Failed = 3
	ev := NewVerifier().Verify(run, nil, probe.LangPython, "pytest", "agent-1", "")

	d := ValidateClaim(Claim{TestsPassed: true}, ev)
	require.Len(t, d, 1)
	assert.Contains(t, d[0], "3 failed")
}

func TestValidateClaimNoEvidence(t *testing.T) {
	d := ValidateClaim(Claim{TestsPassed: true}, nil)
	require.Len(t, d, 1)
	assert.Contains(t, d[0], "no evidence")
}
