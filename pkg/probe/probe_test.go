package probe

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestDetectPython(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pyproject.toml", "[tool.poetry]\n")

	d := Detect(dir)
	assert.Equal(t, LangPython, d.Language)
	assert.Equal(t, "pytest", d.Framework)
	assert.InDelta(t, 1.0, d.Confidence, 1e-9)
}

func TestDetectExtraMarkersRaiseConfidence(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "setup.py", "")
	writeFile(t, dir, "requirements.txt", "pytest\n")

	d := Detect(dir)
	assert.Equal(t, LangPython, d.Language)
	// 0.9 strongest marker + 0.1 for the second.
	assert.InDelta(t, 1.0, d.Confidence, 1e-9)
}

func TestDetectGo(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/m\n")

	d := Detect(dir)
	assert.Equal(t, LangGo, d.Language)
	assert.Equal(t, "go test -v -cover ./...", d.TestCommand)
}

func TestDetectTypeScriptPromotion(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "package.json", `{"devDependencies": {"jest": "^29.0.0"}}`)
	writeFile(t, dir, "tsconfig.json", "{}")

	d := Detect(dir)
	assert.Equal(t, LangTypeScript, d.Language)
	assert.Equal(t, "jest", d.Framework)
}

func TestDetectNodeWithoutFramework(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "package.json", `{"dependencies": {"express": "^4.0.0"}}`)

	d := Detect(dir)
	assert.Equal(t, LangUnknown, d.Language)
}

func TestDetectRubyNeedsRspec(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Gemfile", "gem 'rails'\ngem 'rspec'\n")

	d := Detect(dir)
	assert.Equal(t, LangRuby, d.Language)
	assert.InDelta(t, 0.9, d.Confidence, 1e-9)
}

func TestDetectEmptyDir(t *testing.T) {
	d := Detect(t.TempDir())
	assert.Equal(t, LangUnknown, d.Language)
	assert.Zero(t, d.Confidence)
}

func TestParseTestOutput(t *testing.T) {
	tests := []struct {
		name      string
		framework string
		output    string
		want      TestResult
	}{
		{
			name:      "pytest",
			framework: "pytest",
			output:    "== 10 passed, 2 failed, 1 skipped in 3.21s ==\nTOTAL    120    24    80%\n",
			want:      TestResult{Total: 13, Passed: 10, Failed: 2, Skipped: 1, CoveragePct: 80, HasCoverage: true},
		},
		{
			name:      "go test",
			framework: "go test",
			output:    "--- PASS: TestA (0.00s)\n--- PASS: TestB (0.00s)\n--- FAIL: TestC (0.01s)\n--- SKIP: TestD (0.00s)\nFAIL\ncoverage: 73.5% of statements\n",
			want:      TestResult{Total: 4, Passed: 2, Failed: 1, Skipped: 1, CoveragePct: 73.5, HasCoverage: true},
		},
		{
			name:      "jest",
			framework: "jest",
			output:    "Tests:       1 failed, 2 skipped, 7 passed, 10 total\nAll files      |   85.7 |\n",
			want:      TestResult{Total: 10, Passed: 7, Failed: 1, Skipped: 2, CoveragePct: 85.7, HasCoverage: true},
		},
		{
			name:      "cargo",
			framework: "cargo test",
			output:    "test result: ok. 12 passed; 0 failed; 2 ignored; 0 measured\n",
			want:      TestResult{Total: 14, Passed: 12, Failed: 0, Skipped: 2},
		},
		{
			name:      "maven",
			framework: "maven",
			output:    "Tests run: 20, Failures: 1, Errors: 1, Skipped: 3\n",
			want:      TestResult{Total: 20, Passed: 15, Failed: 2, Skipped: 3},
		},
		{
			name:      "rspec",
			framework: "rspec",
			output:    "15 examples, 2 failures, 1 pending\n",
			want:      TestResult{Total: 15, Passed: 12, Failed: 2, Skipped: 1},
		},
		{
			name:      "dotnet",
			framework: "dotnet test",
			output:    "Failed: 0, Passed: 9, Skipped: 1, Total: 10",
			want:      TestResult{Total: 10, Passed: 9, Failed: 0, Skipped: 1},
		},
		{
			name:      "unknown framework",
			framework: "mystery",
			output:    "something",
			want:      TestResult{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTestOutput(tt.framework, tt.output)
			assert.Equal(t, tt.want.Total, got.Total)
			assert.Equal(t, tt.want.Passed, got.Passed)
			assert.Equal(t, tt.want.Failed, got.Failed)
			assert.Equal(t, tt.want.Skipped, got.Skipped)
			assert.Equal(t, tt.want.HasCoverage, got.HasCoverage)
			assert.InDelta(t, tt.want.CoveragePct, got.CoveragePct, 1e-9)
			assert.Equal(t, tt.output, got.RawOutput)
		})
	}
}

func TestPassRate(t *testing.T) {
	res := ParseTestOutput("pytest", "8 passed, 2 failed, 2 skipped")
	// 8 of 10 executed tests passed.
	assert.InDelta(t, 80.0, res.PassRate, 1e-9)
}

func TestNeedsShell(t *testing.T) {
	assert.False(t, needsShell("pytest -q --cov"))
	assert.True(t, needsShell("pytest && coverage report"))
	assert.True(t, needsShell("make test | tee out.log"))
	assert.True(t, needsShell("echo `date`"))
	assert.True(t, needsShell("cat <input"))
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"go", "test", "./..."}, tokenize("go test ./..."))
	assert.Equal(t, []string{"pytest", "-k", "not slow"}, tokenize(`pytest -k "not slow"`))
	assert.Equal(t, []string{"echo", "a b"}, tokenize("echo 'a b'"))
}

func TestScanSkips(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "test_auth.py", "import pytest\n\n@pytest.mark.skip\ndef test_login():\n    pass\n")
	writeFile(t, dir, "helpers.py", "pytest.skip # not a test file, ignored\n")

	violations, err := ScanSkips(dir, LangPython)
	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0], "test_auth.py:3")
	assert.Contains(t, violations[0], "@pytest.mark.skip")
}

func TestScanSkipsGo(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "thing_test.go", "func TestX(t *testing.T) {\n\tt.Skip(\"flaky\")\n}\n")

	violations, err := ScanSkips(dir, LangGo)
	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0], "thing_test.go:2")
}

func TestScanSkipsUnknownLanguage(t *testing.T) {
	violations, err := ScanSkips(t.TempDir(), LangUnknown)
	require.NoError(t, err)
	assert.Empty(t, violations)
}
