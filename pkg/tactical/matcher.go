// Package tactical maps raw agent error output to recoverable
// intervention strategies. Patterns are ordered; the first match wins.
package tactical

import (
	"log/slog"
	"regexp"
	"strings"
)

// Strategy identifies a prescribed intervention for a recognised error.
type Strategy string

// Intervention strategies.
const (
	StrategyConvertCreateToEdit Strategy = "convert_create_to_edit"
	StrategySkipFileCreation    Strategy = "skip_file_creation"
	StrategyCreateBackup        Strategy = "create_backup"
	StrategyRetryWithContext    Strategy = "retry_with_context"
)

// Instruction returns the instruction text embedded into the task's
// intervention context for the next dispatch.
func (s Strategy) Instruction() string {
	switch s {
	case StrategyConvertCreateToEdit:
		return "The target file already exists. Modify the existing file in place instead of trying to create a new one; do not create a duplicate."
	case StrategySkipFileCreation:
		return "The target directory already exists. Skip the creation step and continue with the remaining work."
	case StrategyCreateBackup:
		return "Create a backup copy of the file before changing it, then retry the modification."
	case StrategyRetryWithContext:
		return "The referenced file was not found. Check the known project files listed below, use the correct existing path, and create the file first if it genuinely does not exist."
	default:
		return ""
	}
}

// Pattern is a recognised recoverable error signature.
type Pattern struct {
	ID          string
	Category    string
	Strategy    Strategy
	Description string
	matcher     *regexp.Regexp
}

// MatchResult carries diagnostics alongside the matched pattern.
type MatchResult struct {
	Matched           *Pattern
	PatternsChecked   int
	ErrorMessageEmpty bool
}

// Matcher holds the ordered pattern list.
type Matcher struct {
	patterns []*Pattern
}

// NewMatcher creates a matcher preloaded with the default patterns.
func NewMatcher() *Matcher {
	m := &Matcher{}
	defaults := []struct {
		id, category, description, expr string
		strategy                        Strategy
	}{
		{
			id:          "file_already_exists",
			category:    "filesystem",
			strategy:    StrategyConvertCreateToEdit,
			description: "Create attempted on an existing file",
			expr:        `file already exists|FileExistsError|Errno 17`,
		},
		{
			id:          "directory_already_exists",
			category:    "filesystem",
			strategy:    StrategySkipFileCreation,
			description: "Directory creation attempted on an existing directory",
			expr:        `directory already exists|is a directory`,
		},
		{
			id:          "file_not_found",
			category:    "filesystem",
			strategy:    StrategyRetryWithContext,
			description: "Edit attempted on a missing file",
			expr:        `no such file|FileNotFoundError|Errno 2|cannot modify non-existent`,
		},
		{
			id:          "permission_denied",
			category:    "filesystem",
			strategy:    StrategyCreateBackup,
			description: "Write rejected on a protected file",
			expr:        `permission denied|PermissionError|Errno 13`,
		},
	}
	for _, d := range defaults {
		// Default expressions are compile-checked by tests; ignore error.
		_ = m.Add(d.id, d.expr, d.category, d.strategy, d.description)
	}
	return m
}

// Add appends a pattern. A malformed regex is logged and skipped; the
// compile error is returned so callers can surface it.
func (m *Matcher) Add(id, expr, category string, strategy Strategy, description string) error {
	re, err := regexp.Compile(`(?i)` + expr)
	if err != nil {
		slog.Warn("Skipping tactical pattern with malformed regex",
			"pattern_id", id, "error", err)
		return err
	}
	m.patterns = append(m.patterns, &Pattern{
		ID:          id,
		Category:    category,
		Strategy:    strategy,
		Description: description,
		matcher:     re,
	})
	return nil
}

// Remove deletes a pattern by id. Returns false if no pattern matched.
func (m *Matcher) Remove(id string) bool {
	for i, p := range m.patterns {
		if p.ID == id {
			m.patterns = append(m.patterns[:i], m.patterns[i+1:]...)
			return true
		}
	}
	return false
}

// Patterns returns the current ordered pattern list.
func (m *Matcher) Patterns() []*Pattern {
	return append([]*Pattern(nil), m.patterns...)
}

// Match returns the first pattern matching the error text, or nil.
// Empty input never matches.
func (m *Matcher) Match(errorText string) *Pattern {
	return m.MatchWithDiagnostics(errorText).Matched
}

// MatchWithDiagnostics behaves like Match and also reports how many
// patterns were checked and whether the input was empty.
func (m *Matcher) MatchWithDiagnostics(errorText string) *MatchResult {
	if strings.TrimSpace(errorText) == "" {
		return &MatchResult{ErrorMessageEmpty: true}
	}
	checked := 0
	for _, p := range m.patterns {
		checked++
		if p.matcher.MatchString(errorText) {
			return &MatchResult{Matched: p, PatternsChecked: checked}
		}
	}
	return &MatchResult{PatternsChecked: checked}
}

// filePathExprs are tried in order by ExtractFilePath.
var filePathExprs = []*regexp.Regexp{
	regexp.MustCompile(`(?i)exists:\s*(\S+)`),
	regexp.MustCompile(`(?i)directory:\s*'([^']+)'`),
	regexp.MustCompile(`(?i)non-existent file:\s*(\S+)`),
	regexp.MustCompile(`:\s*(\S+\.\w+)`),
}

// ExtractFilePath pulls a file path out of error text using a small
// ordered set of regexes. Returns "" when nothing plausible is found.
func ExtractFilePath(errorText string) string {
	if strings.TrimSpace(errorText) == "" {
		return ""
	}
	for _, re := range filePathExprs {
		if match := re.FindStringSubmatch(errorText); match != nil {
			return strings.TrimRight(match[1], `.,;:'")`)
		}
	}
	return ""
}
