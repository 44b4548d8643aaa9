package gates

import (
	"fmt"
	"regexp"
	"strings"
)

// Function length thresholds in lines.
const (
	functionLengthMedium = 50
	functionLengthHigh   = 100
)

// decisionPointExpr counts branch points for the cyclomatic estimate.
// Deliberately language-agnostic: it over-counts strings and comments
// slightly, which is acceptable for a review heuristic.
var decisionPointExpr = regexp.MustCompile(
	`\b(if|for|while|case|when|elif|catch|except|rescue)\b|&&|\|\||\?\s*.+\s*:`)

// functionStartExpr recognises function definitions across the
// languages the probe detects.
var functionStartExpr = regexp.MustCompile(
	`^\s*(func\s+|def\s+|fn\s+|function\s+|(public|private|protected)\s+[\w<>\[\]]+\s+\w+\s*\()`)

type functionSpan struct {
	name  string
	start int // 1-based line
	lines int
	score int // cyclomatic count
}

// AnalyzeComplexity estimates cyclomatic complexity per function and
// flags over-long functions. Complexity bands: 1-5 ok, 6-10 medium,
// 11-20 high, 21-50 high (urgent), 51+ critical.
func AnalyzeComplexity(path, content string) []Finding {
	findings := make([]Finding, 0)
	for _, fn := range splitFunctions(content) {
		fn := fn
		if sev, urgent := complexityBand(fn.score); sev != "" {
			msg := fmt.Sprintf("function %s has cyclomatic complexity %d", fn.name, fn.score)
			suggestion := "extract helper functions to reduce branching"
			if urgent {
				msg += " (urgent)"
			}
			findings = append(findings, Finding{
				Category:   FindingComplexity,
				Severity:   sev,
				File:       path,
				Line:       &fn.start,
				Message:    msg,
				Suggestion: suggestion,
				Tool:       "complexity",
			})
		}
		if fn.lines > functionLengthMedium {
			sev := SeverityMedium
			if fn.lines > functionLengthHigh {
				sev = SeverityHigh
			}
			findings = append(findings, Finding{
				Category:   FindingComplexity,
				Severity:   sev,
				File:       path,
				Line:       &fn.start,
				Message:    fmt.Sprintf("function %s is %d lines long", fn.name, fn.lines),
				Suggestion: "split into smaller functions",
				Tool:       "complexity",
			})
		}
	}
	return findings
}

// complexityBand maps a cyclomatic count to a severity. The second
// return marks the 21-50 band, which stays high but is called out as
// urgent in the message.
func complexityBand(score int) (Severity, bool) {
	switch {
	case score <= 5:
		return "", false
	case score <= 10:
		return SeverityMedium, false
	case score <= 20:
		return SeverityHigh, false
	case score <= 50:
		return SeverityHigh, true
	default:
		return SeverityCritical, false
	}
}

// splitFunctions slices content into function spans. Each function
// runs until the next definition; cyclomatic count starts at 1.
func splitFunctions(content string) []functionSpan {
	lines := strings.Split(content, "\n")
	spans := make([]functionSpan, 0)

	flush := func(span *functionSpan, end int) {
		if span == nil {
			return
		}
		span.lines = end - span.start + 1
		spans = append(spans, *span)
	}

	var current *functionSpan
	for i, line := range lines {
		if functionStartExpr.MatchString(line) {
			flush(current, i)
			current = &functionSpan{
				name:  functionName(line),
				start: i + 1,
				score: 1,
			}
			continue
		}
		if current != nil {
			current.score += len(decisionPointExpr.FindAllString(line, -1))
		}
	}
	flush(current, len(lines))
	return spans
}

var functionNameExpr = regexp.MustCompile(`(?:func|def|fn|function)\s+(?:\([^)]*\)\s*)?(\w+)`)

func functionName(line string) string {
	if m := functionNameExpr.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	return "(anonymous)"
}
