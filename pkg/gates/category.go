// Package gates classifies tasks and runs the category-aware quality
// gate pipeline on agent output.
package gates

import (
	"regexp"
	"strings"
)

// Category is the task category driving gate selection.
type Category string

// Task categories.
const (
	CategoryCodeImplementation Category = "code_implementation"
	CategoryDesign             Category = "design"
	CategoryDocumentation      Category = "documentation"
	CategoryConfiguration      Category = "configuration"
	CategoryTesting            Category = "testing"
	CategoryRefactoring        Category = "refactoring"
	CategoryMixed              Category = "mixed"
)

var (
	testingKeywords = []string{
		"test", "tests", "testing", "pytest", "coverage", "e2e", "qa",
	}
	refactoringKeywords = []string{
		"refactor", "refactoring", "restructure", "cleanup", "simplify",
	}
	designKeywords = []string{
		"design", "architecture", "wireframe", "mockup", "diagram", "spec",
	}
	documentationKeywords = []string{
		"document", "documentation", "readme", "docs", "changelog", "guide",
	}
	configurationKeywords = []string{
		"config", "configuration", "setup", "environment", "deploy", "deployment", "ci",
	}
	codeKeywords = []string{
		"implement", "implementation", "code", "function", "class", "api",
		"endpoint", "component", "feature", "bug", "fix", "module", "migration",
	}
)

// wordExprs holds one word-boundary regexp per keyword, compiled once
// at init so Classify stays read-only and safe for concurrent use.
var wordExprs = func() map[string]*regexp.Regexp {
	exprs := make(map[string]*regexp.Regexp)
	for _, list := range [][]string{
		testingKeywords, refactoringKeywords, designKeywords,
		documentationKeywords, configurationKeywords, codeKeywords,
	} {
		for _, w := range list {
			exprs[w] = regexp.MustCompile(`\b` + regexp.QuoteMeta(w) + `\b`)
		}
	}
	return exprs
}()

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if wordExprs[w].MatchString(text) {
			return true
		}
	}
	return false
}

// Classify inspects title and description (case-insensitive,
// word-boundary matched) and returns the task category. Priority:
// testing > refactoring > mixed (strong non-code AND strong code) >
// design > documentation > configuration > code. The conservative
// default is code_implementation. "spec" counts toward design only
// when no testing keyword is present.
func Classify(title, description string) Category {
	text := strings.ToLower(title + " " + description)

	if containsAny(text, testingKeywords) {
		return CategoryTesting
	}
	if containsAny(text, refactoringKeywords) {
		return CategoryRefactoring
	}

	nonCode := containsAny(text, designKeywords) ||
		containsAny(text, documentationKeywords) ||
		containsAny(text, configurationKeywords)
	code := containsAny(text, codeKeywords)

	switch {
	case nonCode && code:
		return CategoryMixed
	case containsAny(text, designKeywords):
		return CategoryDesign
	case containsAny(text, documentationKeywords):
		return CategoryDocumentation
	case containsAny(text, configurationKeywords):
		return CategoryConfiguration
	default:
		return CategoryCodeImplementation
	}
}
