package gates

import (
	"fmt"
	"strings"
)

// FindingCategory classifies a review finding.
type FindingCategory string

// Finding categories.
const (
	FindingComplexity      FindingCategory = "complexity"
	FindingSecurity        FindingCategory = "security"
	FindingStyle           FindingCategory = "style"
	FindingMaintainability FindingCategory = "maintainability"
	FindingPerformance     FindingCategory = "performance"
)

// Severity orders review findings.
type Severity string

// Finding severities.
const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
	SeverityInfo     Severity = "info"
)

// Finding is a single issue produced by a gate or analyser.
type Finding struct {
	Category   FindingCategory `json:"category"`
	Severity   Severity        `json:"severity"`
	File       string          `json:"file"`
	Line       *int            `json:"line,omitempty"`
	Message    string          `json:"message"`
	Suggestion string          `json:"suggestion,omitempty"`
	Tool       string          `json:"tool"`
}

// MapScannerSeverity maps an external security scanner's severity
// label onto the internal scale: HIGH → critical, MEDIUM → high,
// LOW → medium. Unknown labels map to medium.
func MapScannerSeverity(external string) Severity {
	switch strings.ToUpper(external) {
	case "HIGH":
		return SeverityCritical
	case "MEDIUM":
		return SeverityHigh
	case "LOW":
		return SeverityMedium
	default:
		return SeverityMedium
	}
}

// FormatFindings renders findings into the human-readable block used
// in blocker questions.
func FormatFindings(findings []Finding) string {
	if len(findings) == 0 {
		return "No findings."
	}
	var b strings.Builder
	for _, f := range findings {
		loc := f.File
		if f.Line != nil {
			loc = fmt.Sprintf("%s:%d", f.File, *f.Line)
		}
		fmt.Fprintf(&b, "- [%s/%s] %s: %s", f.Severity, f.Category, loc, f.Message)
		if f.Suggestion != "" {
			fmt.Fprintf(&b, " (suggestion: %s)", f.Suggestion)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
