package probe

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// testTimeout caps one test-suite invocation.
const testTimeout = 5 * time.Minute

// shellOperators force a shell fallback when present in the command.
var shellOperators = []string{";", "&&", "||", "|", "`", "$(", ">>", ">", "<"}

// TestRunner executes a detected test command in a project directory.
type TestRunner struct {
	logger *slog.Logger
}

// NewTestRunner builds a runner logging through the given logger, or
// slog.Default when nil.
func NewTestRunner(logger *slog.Logger) *TestRunner {
	if logger == nil {
		logger = slog.Default()
	}
	return &TestRunner{logger: logger}
}

// Run executes command in dir and parses the output with the
// framework's parser. A non-zero exit is not an error here; it shows
// up as failed tests in the result. Commands containing shell
// operators run through `sh -c` with a warning, everything else runs
// as a tokenised argv.
func (r *TestRunner) Run(ctx context.Context, dir, command, framework string) (*TestResult, error) {
	if strings.TrimSpace(command) == "" {
		return nil, fmt.Errorf("empty test command")
	}

	runCtx, cancel := context.WithTimeout(ctx, testTimeout)
	defer cancel()

	var cmd *exec.Cmd
	if needsShell(command) {
		r.logger.Warn("test command contains shell operators, falling back to shell",
			slog.String("command", command))
		cmd = exec.CommandContext(runCtx, "sh", "-c", command)
	} else {
		argv := tokenize(command)
		cmd = exec.CommandContext(runCtx, argv[0], argv[1:]...)
	}
	cmd.Dir = dir

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	runErr := cmd.Run()
	if runCtx.Err() == context.DeadlineExceeded {
		return nil, fmt.Errorf("test run timed out after %s", testTimeout)
	}
	if runErr != nil {
		if _, ok := runErr.(*exec.ExitError); !ok {
			return nil, fmt.Errorf("starting test command: %w", runErr)
		}
	}

	result := ParseTestOutput(framework, out.String())
	return result, nil
}

func needsShell(command string) bool {
	for _, op := range shellOperators {
		if strings.Contains(command, op) {
			return true
		}
	}
	return false
}

// tokenize splits a command into argv, honouring single and double
// quotes.
func tokenize(command string) []string {
	var (
		argv    []string
		current strings.Builder
		quote   rune
		inTok   bool
	)
	flush := func() {
		if inTok {
			argv = append(argv, current.String())
			current.Reset()
			inTok = false
		}
	}
	for _, r := range command {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
			inTok = true
		case r == ' ' || r == '\t':
			flush()
		default:
			current.WriteRune(r)
			inTok = true
		}
	}
	flush()
	return argv
}
