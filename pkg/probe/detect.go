// Package probe detects a project's language and test framework from
// marker files and runs its test suite.
package probe

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"regexp"
)

// Language identifies a detected project language.
type Language string

// Detected languages.
const (
	LangPython     Language = "python"
	LangJavaScript Language = "javascript"
	LangTypeScript Language = "typescript"
	LangGo         Language = "go"
	LangRust       Language = "rust"
	LangJava       Language = "java"
	LangRuby       Language = "ruby"
	LangCSharp     Language = "csharp"
	LangUnknown    Language = "unknown"
)

// Detection is the probe's verdict for one project root.
type Detection struct {
	Language    Language `json:"language"`
	Framework   string   `json:"framework"`
	Confidence  float64  `json:"confidence"`
	TestCommand string   `json:"test_command"`
}

type marker struct {
	file   string
	weight float64
}

var languageMarkers = map[Language][]marker{
	LangPython: {
		{"pyproject.toml", 1.0},
		{"pytest.ini", 1.0},
		{"setup.py", 0.9},
		{"requirements.txt", 0.7},
	},
	LangGo:   {{"go.mod", 1.0}},
	LangRust: {{"Cargo.toml", 1.0}},
	LangJava: {
		{"pom.xml", 1.0},
		{"build.gradle", 1.0},
	},
}

var frameworkCommands = map[Language]struct {
	framework string
	command   string
}{
	LangPython:     {"pytest", "pytest -q --cov"},
	LangJavaScript: {"jest", "npx jest --coverage"},
	LangTypeScript: {"jest", "npx jest --coverage"},
	LangGo:         {"go test", "go test -v -cover ./..."},
	LangRust:       {"cargo test", "cargo test"},
	LangJava:       {"maven", "mvn test"},
	LangRuby:       {"rspec", "bundle exec rspec"},
	LangCSharp:     {"dotnet test", "dotnet test"},
}

// Detect ranks candidate languages by marker-file presence and returns
// the best one. Confidence is the strongest marker's weight plus 0.1
// per extra marker, capped at 1.0. An empty or unrecognised directory
// yields LangUnknown with zero confidence.
func Detect(root string) Detection {
	best := Detection{Language: LangUnknown}

	consider := func(lang Language, confidence float64) {
		if confidence > best.Confidence {
			fc := frameworkCommands[lang]
			best = Detection{
				Language:    lang,
				Framework:   fc.framework,
				Confidence:  confidence,
				TestCommand: fc.command,
			}
		}
	}

	for lang, markers := range languageMarkers {
		maxWeight, found := 0.0, 0
		for _, m := range markers {
			if fileExists(filepath.Join(root, m.file)) {
				found++
				maxWeight = math.Max(maxWeight, m.weight)
			}
		}
		if found > 0 {
			consider(lang, capConfidence(maxWeight+0.1*float64(found-1)))
		}
	}

	if lang, conf := detectNode(root); lang != LangUnknown {
		consider(lang, conf)
	}
	if conf := rubyConfidence(root); conf > 0 {
		consider(LangRuby, conf)
	}
	if csprojExists(root) {
		consider(LangCSharp, 1.0)
	}

	// Gradle projects run through gradle, not maven.
	if best.Language == LangJava && fileExists(filepath.Join(root, "build.gradle")) &&
		!fileExists(filepath.Join(root, "pom.xml")) {
		best.Framework = "gradle"
		best.TestCommand = "gradle test"
	}
	return best
}

// detectNode reads package.json, requires a known test-framework
// dependency, and promotes to TypeScript when tsconfig.json exists.
func detectNode(root string) (Language, float64) {
	raw, err := os.ReadFile(filepath.Join(root, "package.json"))
	if err != nil {
		return LangUnknown, 0
	}
	var pkg struct {
		Dependencies    map[string]string `json:"dependencies"`
		DevDependencies map[string]string `json:"devDependencies"`
	}
	if err := json.Unmarshal(raw, &pkg); err != nil {
		return LangUnknown, 0
	}

	hasFramework := false
	for _, deps := range []map[string]string{pkg.Dependencies, pkg.DevDependencies} {
		for _, name := range []string{"jest", "mocha", "vitest", "jasmine"} {
			if _, ok := deps[name]; ok {
				hasFramework = true
			}
		}
	}
	if !hasFramework {
		return LangUnknown, 0
	}
	if fileExists(filepath.Join(root, "tsconfig.json")) {
		return LangTypeScript, capConfidence(1.0)
	}
	return LangJavaScript, 0.9
}

var rspecGemExpr = regexp.MustCompile(`\brspec\b`)

// rubyConfidence requires a Gemfile that mentions rspec.
func rubyConfidence(root string) float64 {
	raw, err := os.ReadFile(filepath.Join(root, "Gemfile"))
	if err != nil {
		return 0
	}
	if rspecGemExpr.Match(raw) {
		return 0.9
	}
	return 0
}

func csprojExists(root string) bool {
	matches, err := filepath.Glob(filepath.Join(root, "*.csproj"))
	return err == nil && len(matches) > 0
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func capConfidence(v float64) float64 {
	return math.Min(v, 1.0)
}
