// Package version derives the build identity reported by the CLI and
// the health endpoint.
package version

import (
	"runtime/debug"
	"sync"
)

// AppName prefixes every version string.
const AppName = "codeframe"

// commit may be injected with
// -ldflags "-X github.com/frankbria/codeframe/pkg/version.commit=<sha>"
// for builds without VCS metadata, e.g. container builds from a
// source tarball.
var commit string

const shortLen = 8

var resolve = sync.OnceValue(func() string {
	if commit != "" {
		return shorten(commit)
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return shorten(s.Value)
			}
		}
	}
	return "dev"
})

func shorten(rev string) string {
	if len(rev) > shortLen {
		return rev[:shortLen]
	}
	return rev
}

// Commit returns the short git revision, or "dev" when unknown.
func Commit() string { return resolve() }

// Full returns "codeframe/<commit>" for logs and user-agent strings.
func Full() string { return AppName + "/" + resolve() }
