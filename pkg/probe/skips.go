package probe

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// skipPatterns are the per-language markers of skipped or disabled
// tests.
var skipPatterns = map[Language]*regexp.Regexp{
	LangPython:     regexp.MustCompile(`@pytest\.mark\.skip|@unittest\.skip|pytest\.skip\(`),
	LangJavaScript: regexp.MustCompile(`\bit\.skip\b|\bdescribe\.skip\b|\btest\.skip\b|\bxit\b|\bxdescribe\b`),
	LangTypeScript: regexp.MustCompile(`\bit\.skip\b|\bdescribe\.skip\b|\btest\.skip\b|\bxit\b|\bxdescribe\b`),
	LangGo:         regexp.MustCompile(`\bt\.Skip\(|\bt\.Skipf\(|\bt\.SkipNow\(`),
	LangRust:       regexp.MustCompile(`#\[ignore\]`),
	LangJava:       regexp.MustCompile(`@Ignore\b|@Disabled\b`),
	LangRuby:       regexp.MustCompile(`\bskip\b|\bpending\b|\bxit\b`),
	LangCSharp:     regexp.MustCompile(`\[Ignore\]|\[Skip\]`),
}

// testFileExprs limit the scan to test sources.
var testFileExprs = map[Language]*regexp.Regexp{
	LangPython:     regexp.MustCompile(`(^|_)test.*\.py$|_test\.py$`),
	LangJavaScript: regexp.MustCompile(`\.(test|spec)\.[jt]sx?$`),
	LangTypeScript: regexp.MustCompile(`\.(test|spec)\.[jt]sx?$`),
	LangGo:         regexp.MustCompile(`_test\.go$`),
	LangRust:       regexp.MustCompile(`\.rs$`),
	LangJava:       regexp.MustCompile(`Test\.java$`),
	LangRuby:       regexp.MustCompile(`_spec\.rb$`),
	LangCSharp:     regexp.MustCompile(`Tests?\.cs$`),
}

// ScanSkips walks the project tree looking for skipped-test markers in
// test files and returns one "path:line: match" violation per hit.
// Unreadable files are ignored.
func ScanSkips(root string, lang Language) ([]string, error) {
	pattern, ok := skipPatterns[lang]
	if !ok {
		return nil, nil
	}
	fileExpr := testFileExprs[lang]

	var violations []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			name := d.Name()
			if name == ".git" || name == "node_modules" || name == "vendor" {
				return filepath.SkipDir
			}
			return nil
		}
		if fileExpr != nil && !fileExpr.MatchString(d.Name()) {
			return nil
		}
		raw, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}
		for i, line := range strings.Split(string(raw), "\n") {
			if m := pattern.FindString(line); m != "" {
				violations = append(violations, fmt.Sprintf("%s:%d: %s", rel, i+1, m))
			}
		}
		return nil
	})
	return violations, err
}
