package probe

import (
	"regexp"
	"strconv"
	"strings"
)

// TestResult is the parsed outcome of one test-suite run.
type TestResult struct {
	Total       int     `json:"total"`
	Passed      int     `json:"passed"`
	Failed      int     `json:"failed"`
	Skipped     int     `json:"skipped"`
	PassRate    float64 `json:"pass_rate"`
	CoveragePct float64 `json:"coverage_pct"`
	HasCoverage bool    `json:"has_coverage"`
	RawOutput   string  `json:"-"`
}

func (r *TestResult) finalize(raw string) *TestResult {
	r.RawOutput = raw
	if r.Total == 0 {
		r.Total = r.Passed + r.Failed + r.Skipped
	}
	executed := r.Total - r.Skipped
	if executed > 0 {
		r.PassRate = 100 * float64(r.Passed) / float64(executed)
	}
	return r
}

var (
	pytestPassedExpr   = regexp.MustCompile(`(\d+) passed`)
	pytestFailedExpr   = regexp.MustCompile(`(\d+) failed`)
	pytestErrorExpr    = regexp.MustCompile(`(\d+) error`)
	pytestSkippedExpr  = regexp.MustCompile(`(\d+) skipped`)
	pytestCoverageExpr = regexp.MustCompile(`TOTAL\s+\d+\s+\d+\s+(\d+)%`)

	goPassExpr     = regexp.MustCompile(`(?m)^(?:\s+)?--- PASS`)
	goFailExpr     = regexp.MustCompile(`(?m)^(?:\s+)?--- FAIL`)
	goSkipExpr     = regexp.MustCompile(`(?m)^(?:\s+)?--- SKIP`)
	goCoverageExpr = regexp.MustCompile(`coverage: ([\d.]+)% of statements`)

	jestSummaryExpr  = regexp.MustCompile(`Tests:\s+(?:(\d+) failed, )?(?:(\d+) skipped, )?(\d+) passed, (\d+) total`)
	jestCoverageExpr = regexp.MustCompile(`All files[^|]*\|\s*([\d.]+)`)

	cargoSummaryExpr = regexp.MustCompile(`test result: \w+\. (\d+) passed; (\d+) failed; (\d+) ignored`)

	mavenSummaryExpr = regexp.MustCompile(`Tests run: (\d+), Failures: (\d+), Errors: (\d+), Skipped: (\d+)`)

	rspecSummaryExpr = regexp.MustCompile(`(\d+) examples?, (\d+) failures?(?:, (\d+) pending)?`)

	dotnetSummaryExpr = regexp.MustCompile(`Failed:\s*(\d+), Passed:\s*(\d+), Skipped:\s*(\d+), Total:\s*(\d+)`)
)

// ParseTestOutput extracts counts and coverage from a framework's raw
// output. Unknown frameworks yield an all-zero result carrying the raw
// output.
func ParseTestOutput(framework, output string) *TestResult {
	res := &TestResult{}
	switch strings.ToLower(framework) {
	case "pytest":
		res.Passed = firstInt(pytestPassedExpr, output)
		res.Failed = firstInt(pytestFailedExpr, output) + firstInt(pytestErrorExpr, output)
		res.Skipped = firstInt(pytestSkippedExpr, output)
		if m := pytestCoverageExpr.FindStringSubmatch(output); m != nil {
			res.CoveragePct = atof(m[1])
			res.HasCoverage = true
		}
	case "go test":
		res.Passed = len(goPassExpr.FindAllString(output, -1))
		res.Failed = len(goFailExpr.FindAllString(output, -1))
		res.Skipped = len(goSkipExpr.FindAllString(output, -1))
		if m := goCoverageExpr.FindStringSubmatch(output); m != nil {
			res.CoveragePct = atof(m[1])
			res.HasCoverage = true
		}
	case "jest", "vitest":
		if m := jestSummaryExpr.FindStringSubmatch(output); m != nil {
			res.Failed = atoi(m[1])
			res.Skipped = atoi(m[2])
			res.Passed = atoi(m[3])
			res.Total = atoi(m[4])
		}
		if m := jestCoverageExpr.FindStringSubmatch(output); m != nil {
			res.CoveragePct = atof(m[1])
			res.HasCoverage = true
		}
	case "cargo test":
		for _, m := range cargoSummaryExpr.FindAllStringSubmatch(output, -1) {
			res.Passed += atoi(m[1])
			res.Failed += atoi(m[2])
			res.Skipped += atoi(m[3])
		}
	case "maven", "gradle":
		for _, m := range mavenSummaryExpr.FindAllStringSubmatch(output, -1) {
			res.Total += atoi(m[1])
			res.Failed += atoi(m[2]) + atoi(m[3])
			res.Skipped += atoi(m[4])
		}
		res.Passed = res.Total - res.Failed - res.Skipped
	case "rspec":
		if m := rspecSummaryExpr.FindStringSubmatch(output); m != nil {
			res.Total = atoi(m[1])
			res.Failed = atoi(m[2])
			res.Skipped = atoi(m[3])
			res.Passed = res.Total - res.Failed - res.Skipped
		}
	case "dotnet test":
		if m := dotnetSummaryExpr.FindStringSubmatch(output); m != nil {
			res.Failed = atoi(m[1])
			res.Passed = atoi(m[2])
			res.Skipped = atoi(m[3])
			res.Total = atoi(m[4])
		}
	}
	return res.finalize(output)
}

func firstInt(expr *regexp.Regexp, s string) int {
	if m := expr.FindStringSubmatch(s); m != nil {
		return atoi(m[1])
	}
	return 0
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func atof(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}
