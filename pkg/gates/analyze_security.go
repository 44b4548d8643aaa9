package gates

import (
	"fmt"
	"regexp"
	"strings"
)

// securityRule is one OWASP-overlay pattern.
type securityRule struct {
	id         string
	severity   Severity
	expr       *regexp.Regexp
	message    string
	suggestion string
	// exclude drops lines that match (e.g. test fixtures).
	exclude *regexp.Regexp
}

var securityRules = []securityRule{
	{
		id:       "sql_injection",
		severity: SeverityCritical,
		expr: regexp.MustCompile(
			`(?i)["'](select|insert|update|delete)\b[^"']*["']\s*(\+|%|\|\|)|(?i)\b(select|insert|update|delete)\b[^"\n]*(\.format\(|f["']|fmt\.Sprintf)`),
		message:    "SQL statement built by string concatenation",
		suggestion: "use parameterised queries",
	},
	{
		id:         "eval_usage",
		severity:   SeverityCritical,
		expr:       regexp.MustCompile(`\beval\s*\(`),
		message:    "eval() on dynamic input",
		suggestion: "remove eval; parse the input explicitly",
	},
	{
		id:       "shell_with_variables",
		severity: SeverityHigh,
		expr: regexp.MustCompile(
			`(?i)(os\.system|subprocess\.(call|run|Popen)|shell=True|exec\.Command|child_process)\s*[\(,][^\n]*(\+|\$\{|%s|\.format\(|f["'])`),
		message:    "shell command assembled from variables",
		suggestion: "pass a tokenised argument vector instead of a shell string",
	},
	{
		id:       "hardcoded_credentials",
		severity: SeverityCritical,
		expr: regexp.MustCompile(
			`(?i)\b(password|passwd|secret|api_key|apikey|auth_token|access_token)\b\s*[:=]\s*["'][^"']+["']`),
		message:    "hardcoded credential assignment",
		suggestion: "load the credential from the environment or a secret store",
		exclude:    regexp.MustCompile(`(?i)test|example|dummy|mock|placeholder`),
	},
	{
		id:       "weak_password_length",
		severity: SeverityMedium,
		expr: regexp.MustCompile(
			`(?i)(len\(\s*\w*pass\w*\s*\)|\w*pass\w*\.(length|len)\(?\)?)\s*[<>]=?\s*[0-7]\b`),
		message:    "password length check weaker than 8 characters",
		suggestion: "require at least 8 characters",
	},
}

// AnalyzeSecurity scans content line by line with the OWASP overlay
// rules and returns findings. Lines excluded by a rule's exclusion
// pattern (test fixtures, placeholders) are skipped.
func AnalyzeSecurity(path, content string) []Finding {
	findings := make([]Finding, 0)
	for i, line := range strings.Split(content, "\n") {
		for _, rule := range securityRules {
			if !rule.expr.MatchString(line) {
				continue
			}
			if rule.exclude != nil && rule.exclude.MatchString(line) {
				continue
			}
			lineNo := i + 1
			findings = append(findings, Finding{
				Category:   FindingSecurity,
				Severity:   rule.severity,
				File:       path,
				Line:       &lineNo,
				Message:    fmt.Sprintf("%s (%s)", rule.message, rule.id),
				Suggestion: rule.suggestion,
				Tool:       "owasp-overlay",
			})
		}
	}
	return findings
}

// styleRules are lightweight style checks feeding the style sub-score.
var (
	longLineLimit     = 120
	trailingSpaceExpr = regexp.MustCompile(`[ \t]+$`)
	commentedTodoExpr = regexp.MustCompile(`(?i)\b(TODO|FIXME|XXX)\b`)
)

// AnalyzeStyle flags long lines, trailing whitespace, and leftover
// TODO markers.
func AnalyzeStyle(path, content string) []Finding {
	findings := make([]Finding, 0)
	for i, line := range strings.Split(content, "\n") {
		lineNo := i + 1
		if len(line) > longLineLimit {
			n := lineNo
			findings = append(findings, Finding{
				Category: FindingStyle,
				Severity: SeverityLow,
				File:     path,
				Line:     &n,
				Message:  fmt.Sprintf("line exceeds %d characters", longLineLimit),
				Tool:     "style",
			})
		}
		if trailingSpaceExpr.MatchString(line) {
			n := lineNo
			findings = append(findings, Finding{
				Category: FindingStyle,
				Severity: SeverityInfo,
				File:     path,
				Line:     &n,
				Message:  "trailing whitespace",
				Tool:     "style",
			})
		}
		if commentedTodoExpr.MatchString(line) {
			n := lineNo
			findings = append(findings, Finding{
				Category: FindingMaintainability,
				Severity: SeverityInfo,
				File:     path,
				Line:     &n,
				Message:  "leftover TODO marker",
				Tool:     "style",
			})
		}
	}
	return findings
}
