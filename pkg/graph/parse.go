package graph

import (
	"log/slog"
	"strconv"
	"strings"
)

// ParseDependsOn parses the persisted depends_on field. Both the
// bracketed list form "[1, 2]" and the bare comma-separated form
// "1,2" (including a single bare "3") are accepted. Malformed items
// are logged and ignored; the canonical persisted form is the bare
// comma-separated string.
func ParseDependsOn(raw string) []string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}

	if strings.HasPrefix(trimmed, "[") {
		if !strings.HasSuffix(trimmed, "]") {
			slog.Warn("Malformed depends_on value ignored", "depends_on", raw)
			return nil
		}
		trimmed = trimmed[1 : len(trimmed)-1]
	} else if strings.HasSuffix(trimmed, "]") {
		slog.Warn("Malformed depends_on value ignored", "depends_on", raw)
		return nil
	}

	parts := strings.Split(trimmed, ",")
	deps := make([]string, 0, len(parts))
	seen := make(map[string]bool, len(parts))
	for _, part := range parts {
		dep := strings.Trim(strings.TrimSpace(part), `"'`)
		if dep == "" {
			continue
		}
		if !validTaskNumber(dep) {
			slog.Warn("Malformed depends_on item ignored", "item", part, "depends_on", raw)
			continue
		}
		if !seen[dep] {
			seen[dep] = true
			deps = append(deps, dep)
		}
	}
	return deps
}

// FormatDependsOn renders the canonical persisted depends_on form.
func FormatDependsOn(deps []string) string {
	return strings.Join(deps, ",")
}

// validTaskNumber accepts dotted decimal task numbers like "3" or "2.1".
func validTaskNumber(s string) bool {
	for _, seg := range strings.Split(s, ".") {
		if seg == "" {
			return false
		}
		if _, err := strconv.Atoi(seg); err != nil {
			return false
		}
	}
	return true
}

// CompareTaskNumbers orders dotted task numbers segment by segment,
// numerically where possible ("2.10" > "2.9"), falling back to string
// comparison for non-numeric segments.
func CompareTaskNumbers(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	for i := 0; i < len(as) && i < len(bs); i++ {
		an, aerr := strconv.Atoi(as[i])
		bn, berr := strconv.Atoi(bs[i])
		if aerr == nil && berr == nil {
			if an != bn {
				if an < bn {
					return -1
				}
				return 1
			}
			continue
		}
		if as[i] != bs[i] {
			if as[i] < bs[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(as) < len(bs):
		return -1
	case len(as) > len(bs):
		return 1
	default:
		return 0
	}
}
