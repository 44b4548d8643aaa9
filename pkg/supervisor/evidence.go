package supervisor

import (
	"context"
	"log/slog"

	"github.com/frankbria/codeframe/pkg/probe"
	"github.com/frankbria/codeframe/pkg/verify"
)

// EvidenceCollector gathers empirical test evidence from the workspace
// after a worker reports success.
type EvidenceCollector interface {
	Collect(ctx context.Context, workspace, agentID, taskDesc string) (*verify.Evidence, error)
}

// ProbeCollector detects the workspace's language and test framework,
// runs the test suite, scans for skipped tests, and verifies the
// outcome against completion policy.
type ProbeCollector struct {
	runner   *probe.TestRunner
	verifier *verify.Verifier
	logger   *slog.Logger
}

// NewProbeCollector builds the default collector. A nil logger falls
// back to slog.Default.
func NewProbeCollector(logger *slog.Logger) *ProbeCollector {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProbeCollector{
		runner:   probe.NewTestRunner(logger),
		verifier: verify.NewVerifier(),
		logger:   logger,
	}
}

// Collect returns nil evidence when the workspace is unset or no test
// stack is detectable; the gate pipeline then sees zero test counts
// and fails the tests gate for categories that require it.
func (c *ProbeCollector) Collect(ctx context.Context, workspace, agentID, taskDesc string) (*verify.Evidence, error) {
	if workspace == "" {
		return nil, nil
	}
	det := probe.Detect(workspace)
	if det.Language == probe.LangUnknown || det.TestCommand == "" {
		c.logger.Warn("no test stack detected in workspace",
			slog.String("workspace", workspace))
		return nil, nil
	}

	tests, err := c.runner.Run(ctx, workspace, det.TestCommand, det.Framework)
	if err != nil {
		return nil, err
	}
	skips, err := probe.ScanSkips(workspace, det.Language)
	if err != nil {
		c.logger.Warn("skip scan failed",
			slog.String("workspace", workspace), slog.Any("error", err))
	}
	return c.verifier.Verify(tests, skips, det.Language, det.Framework, agentID, taskDesc), nil
}
