package supervisor

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/frankbria/codeframe/ent"
	"github.com/frankbria/codeframe/ent/task"
	"github.com/frankbria/codeframe/pkg/config"
	"github.com/frankbria/codeframe/pkg/gates"
	"github.com/frankbria/codeframe/pkg/graph"
	"github.com/frankbria/codeframe/pkg/llm"
	"github.com/frankbria/codeframe/pkg/models"
	"github.com/frankbria/codeframe/pkg/schedule"
	"github.com/frankbria/codeframe/pkg/tactical"
	"github.com/frankbria/codeframe/pkg/verify"
)

// maxInterventions bounds supervisor retries per task; the next
// failure raises a SYNC blocker instead.
const maxInterventions = 2

// Supervisor owns one project's run loop. The resolver and all stores
// are mutated only from the Run goroutine; workers communicate by
// returning values.
type Supervisor struct {
	tasks     TaskStore
	blockers  BlockerStore
	memories  MemoryStore
	usage     UsageRecorder
	adapter   llm.Adapter
	registry  *config.Registry
	matcher   *tactical.Matcher
	gates     *gates.Runner
	collector EvidenceCollector
	slots     int
	workspace string
	logger    *slog.Logger
	observer  UsageObserver
}

// Option configures a Supervisor.
type Option func(*Supervisor)

// WithSlots overrides the dispatch concurrency (default: registry
// size).
func WithSlots(n int) Option {
	return func(s *Supervisor) {
		if n > 0 {
			s.slots = n
		}
	}
}

// WithWorkspace points the gate runner at the project tree so the
// review gate can read changed files.
func WithWorkspace(root string) Option {
	return func(s *Supervisor) { s.workspace = root }
}

// WithObserver registers the token-usage observer.
func WithObserver(fn UsageObserver) Option {
	return func(s *Supervisor) { s.observer = fn }
}

// WithLogger overrides the default logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Supervisor) { s.logger = l }
}

// WithEvidenceCollector overrides how test evidence is gathered after
// a worker reports success.
func WithEvidenceCollector(c EvidenceCollector) Option {
	return func(s *Supervisor) { s.collector = c }
}

// New wires a supervisor from its collaborators.
func New(tasks TaskStore, blockers BlockerStore, memories MemoryStore, usage UsageRecorder,
	adapter llm.Adapter, registry *config.Registry, runner *gates.Runner, opts ...Option) *Supervisor {

	s := &Supervisor{
		tasks:    tasks,
		blockers: blockers,
		memories: memories,
		usage:    usage,
		adapter:  adapter,
		registry: registry,
		matcher:  tactical.NewMatcher(),
		gates:    runner,
		slots:    registry.Size(),
		logger:   slog.Default(),
	}
	if s.slots < 1 {
		s.slots = 1
	}
	for _, o := range opts {
		o(s)
	}
	if s.collector == nil {
		s.collector = NewProbeCollector(s.logger)
	}
	return s
}

// Report summarises one supervisor run.
type Report struct {
	Dispatched    int     `json:"dispatched"`
	Completed     int     `json:"completed"`
	Blocked       int     `json:"blocked"`
	Interventions int     `json:"interventions"`
	Cancelled     int     `json:"cancelled"`
	EstimatedDays float64 `json:"estimated_days"`
}

// dispatchResult is what a worker goroutine hands back to the loop.
type dispatchResult struct {
	t         *ent.Task
	resp      *llm.Response
	err       error
	cancelled bool
}

// Run executes the project's ready tasks until every task is terminal
// or every non-terminal task is blocked. It is resumable: completed
// tasks are skipped, blocked tasks wait for answers, ready tasks
// redispatch.
func (s *Supervisor) Run(ctx context.Context, projectID string) (*Report, error) {
	resolver, err := s.tasks.BuildResolver(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("building dependency graph: %w", err)
	}

	all, err := s.tasks.ListTasksByProject(ctx, projectID, models.TaskFilter{})
	if err != nil {
		return nil, err
	}
	byNumber := make(map[string]*ent.Task, len(all))
	durations := make(map[string]float64, len(all))
	for _, t := range all {
		byNumber[t.TaskNumber] = t
		durations[t.TaskNumber] = t.EstimatedHours
	}

	report := &Report{}
	if plan, err := schedule.NewScheduler(resolver).Schedule(durations, s.slots); err == nil {
		report.EstimatedDays = plan.TotalDuration / schedule.DefaultWorkingHoursPerDay
		s.logger.Info("initial schedule computed",
			slog.String("project", projectID),
			slog.Float64("total_hours", plan.TotalDuration),
			slog.Int("slots", s.slots))
	}

	interventions := make(map[string]int)
	results := make(chan dispatchResult)
	inflight := make(map[string]bool)

	for {
		if ctx.Err() == nil {
			for _, num := range resolver.Ready() {
				if len(inflight) >= s.slots {
					break
				}
				t, ok := byNumber[num]
				if !ok || inflight[num] {
					continue
				}
				if t.Status != task.StatusPending && t.Status != task.StatusReady {
					continue
				}
				dispatched, err := s.dispatch(ctx, projectID, t, results)
				if err != nil {
					s.logger.Error("dispatch failed",
						slog.String("task", num), slog.Any("error", err))
					continue
				}
				byNumber[num] = dispatched
				inflight[num] = true
				report.Dispatched++
			}
		}

		if len(inflight) == 0 {
			break
		}

		res := <-results
		delete(inflight, res.t.TaskNumber)
		s.handleResult(ctx, projectID, resolver, byNumber, interventions, report, res)
	}

	return report, ctx.Err()
}

// dispatch marks the task in progress and launches its worker.
func (s *Supervisor) dispatch(ctx context.Context, projectID string, t *ent.Task,
	results chan<- dispatchResult) (*ent.Task, error) {

	if t.Status == task.StatusPending {
		if _, err := s.tasks.UpdateStatus(ctx, t.ID, task.StatusReady); err != nil {
			return nil, err
		}
	}
	t, err := s.tasks.UpdateStatus(ctx, t.ID, task.StatusInProgress)
	if err != nil {
		return nil, err
	}

	agent, err := s.pickAgent(t)
	if err != nil {
		return nil, err
	}
	req, err := s.buildPrompt(ctx, projectID, t, agent.Definition.SystemPrompt)
	if err != nil {
		return nil, err
	}
	if c := agent.Definition.Constraints; c != nil {
		if c.MaxTokens != nil {
			req.MaxTokens = *c.MaxTokens
		}
		if c.Temperature != nil {
			req.Temperature = *c.Temperature
		}
	}

	s.logger.Info("dispatching task",
		slog.String("task", t.TaskNumber),
		slog.String("agent", agent.Definition.Name))

	go func(t *ent.Task) {
		resp, err := s.adapter.Complete(ctx, req)
		res := dispatchResult{t: t, resp: resp, err: err}
		if err != nil && ctx.Err() != nil {
			res.cancelled = true
		}
		if resp != nil {
			s.recordUsage(projectID, t, agent.ID, resp)
		}
		results <- res
	}(t)
	return t, nil
}

// pickAgent selects the worker definition for a task: an
// implementation agent when one exists, otherwise the first registered
// definition.
func (s *Supervisor) pickAgent(t *ent.Task) (*config.WorkerAgent, error) {
	defs := s.registry.FilterByType(config.AgentTypeImplementation)
	if len(defs) == 0 {
		defs = s.registry.List()
	}
	if len(defs) == 0 {
		return nil, fmt.Errorf("agent registry is empty")
	}
	return s.registry.CreateAgent(defs[0].Name, "worker-"+t.TaskNumber)
}

// handleResult runs on the supervisor goroutine and is the only place
// the resolver mutates.
func (s *Supervisor) handleResult(ctx context.Context, projectID string,
	resolver *graph.Resolver, byNumber map[string]*ent.Task,
	interventions map[string]int, report *Report, res dispatchResult) {

	t := res.t
	switch {
	case res.cancelled:
		report.Cancelled++
		s.requeue(t, byNumber, map[string]any{
			"instruction": "The previous attempt was cancelled before completing; resume the task.",
		})
	case res.err != nil:
		s.handleFailure(ctx, projectID, t, byNumber, interventions, report, res.err)
	default:
		s.handleSuccess(ctx, projectID, resolver, t, byNumber, report, res.resp)
	}
}

func (s *Supervisor) handleFailure(ctx context.Context, projectID string, t *ent.Task,
	byNumber map[string]*ent.Task, interventions map[string]int, report *Report, callErr error) {

	pattern := s.matcher.Match(callErr.Error())
	if pattern != nil && interventions[t.TaskNumber] < maxInterventions {
		interventions[t.TaskNumber]++
		report.Interventions++

		known := knownFiles(byNumber)
		if path := tactical.ExtractFilePath(callErr.Error()); path != "" {
			known = appendUnique(known, path)
		}
		ic := map[string]any{
			"strategy":    string(pattern.Strategy),
			"instruction": pattern.Strategy.Instruction(),
			"error":       callErr.Error(),
			"known_files": toAnySlice(known),
		}
		s.logger.Info("tactical intervention",
			slog.String("task", t.TaskNumber),
			slog.String("pattern", pattern.ID),
			slog.Int("attempt", interventions[t.TaskNumber]))
		s.requeue(t, byNumber, ic)
		return
	}

	question := fmt.Sprintf("Task %s failed: %s\nHow should it proceed?", t.TaskNumber, callErr)
	if pattern != nil {
		question = fmt.Sprintf("Task %s keeps failing after %d interventions (last error: %s). How should it proceed?",
			t.TaskNumber, interventions[t.TaskNumber], callErr)
	}
	s.block(ctx, projectID, t, byNumber, report, question)
}

func (s *Supervisor) handleSuccess(ctx context.Context, projectID string,
	resolver *graph.Resolver, t *ent.Task, byNumber map[string]*ent.Task,
	report *Report, resp *llm.Response) {

	files := parseFilesChanged(resp.Content)

	ev, err := s.collector.Collect(ctx, s.workspace, "worker-"+t.TaskNumber, t.Description)
	if err != nil {
		s.logger.Error("evidence collection failed",
			slog.String("task", t.TaskNumber), slog.Any("error", err))
		s.block(ctx, projectID, t, byNumber, report, fmt.Sprintf(
			"Evidence collection for task %s failed: %s\nHow should it proceed?", t.TaskNumber, err))
		return
	}

	in := gates.TaskInput{
		TaskNumber:  t.TaskNumber,
		Title:       t.Title,
		Description: t.Description,
		Files:       s.loadFiles(files),
	}
	if ev != nil {
		if ev.Tests != nil {
			in.TestsTotal = ev.Tests.Total
			in.TestsPassed = ev.Tests.Passed
			in.TestsFailed = ev.Tests.Failed
			in.CoveragePct = ev.Tests.CoveragePct
		}
		in.SkipViolations = ev.SkipViolations
	}

	gateReport, err := s.gates.Run(ctx, in)
	if err != nil {
		s.logger.Error("gate run failed",
			slog.String("task", t.TaskNumber), slog.Any("error", err))
		s.requeue(t, byNumber, nil)
		return
	}

	if !gateReport.Passed {
		s.block(ctx, projectID, t, byNumber, report, gateReport.BlockerQuestion)
		return
	}

	// The gates pass on counts alone; the verifier additionally rejects
	// skipped tests, missing coverage data, and suspiciously short
	// output for categories whose gates demand test evidence.
	if ev != nil && !ev.Verified && gates.RequiresTestEvidence(gateReport.Category) {
		s.block(ctx, projectID, t, byNumber, report, verificationQuestion(t.TaskNumber, ev))
		return
	}

	if updated, err := s.tasks.CompleteTask(ctx, t.ID, files); err != nil {
		s.logger.Error("failed to persist completion",
			slog.String("task", t.TaskNumber), slog.Any("error", err))
	} else {
		byNumber[t.TaskNumber] = updated
	}
	report.Completed++

	newlyReady := resolver.Unblock(t.TaskNumber)
	if len(newlyReady) > 0 {
		s.logger.Info("tasks unblocked",
			slog.String("completed", t.TaskNumber),
			slog.Any("ready", newlyReady))
	}
}

// verificationQuestion formats the evidence verifier's failures into a
// SYNC blocker question.
func verificationQuestion(taskNumber string, ev *verify.Evidence) string {
	return fmt.Sprintf(
		"Test evidence for task %s failed verification:\n- %s\nHow should the task proceed?",
		taskNumber, strings.Join(ev.Errors, "\n- "))
}

// requeue writes intervention context (when given) and returns the
// task to READY for another dispatch.
func (s *Supervisor) requeue(t *ent.Task, byNumber map[string]*ent.Task, ic map[string]any) {
	ctx := context.Background()
	if ic != nil {
		if updated, err := s.tasks.SetInterventionContext(ctx, t.ID, ic); err == nil {
			t = updated
		}
	}
	if updated, err := s.tasks.UpdateStatus(ctx, t.ID, task.StatusReady); err == nil {
		byNumber[t.TaskNumber] = updated
	}
}

// block raises a SYNC blocker and parks the task.
func (s *Supervisor) block(ctx context.Context, projectID string, t *ent.Task,
	byNumber map[string]*ent.Task, report *Report, question string) {

	// Blockers must survive even when the run context is cancelled.
	bctx := context.WithoutCancel(ctx)
	if _, err := s.blockers.CreateBlocker(bctx, models.CreateBlockerRequest{
		ProjectID: projectID,
		Kind:      "sync",
		Question:  question,
		TaskID:    t.ID,
	}); err != nil {
		s.logger.Error("failed to create blocker",
			slog.String("task", t.TaskNumber), slog.Any("error", err))
	}
	if updated, err := s.tasks.UpdateStatus(bctx, t.ID, task.StatusBlocked); err == nil {
		byNumber[t.TaskNumber] = updated
	}
	report.Blocked++
}

// ResumeBlocked scans the project's blocked tasks and requeues those
// whose SYNC blockers have been answered, embedding the answer in the
// task's intervention context. It returns the requeued task numbers.
func (s *Supervisor) ResumeBlocked(ctx context.Context, projectID string) ([]string, error) {
	answered, err := s.blockers.ListBlockersByProject(ctx, projectID, models.BlockerFilter{
		State: "answered", Kind: "sync",
	})
	if err != nil {
		return nil, err
	}
	answerByTask := make(map[string]string)
	for _, b := range answered {
		if b.TaskID != nil && b.Answer != nil {
			answerByTask[*b.TaskID] = *b.Answer
		}
	}

	blocked, err := s.tasks.ListTasksByProject(ctx, projectID, models.TaskFilter{Status: "blocked"})
	if err != nil {
		return nil, err
	}

	var resumed []string
	for _, t := range blocked {
		answer, ok := answerByTask[t.ID]
		if !ok {
			continue
		}
		ic := map[string]any{}
		for k, v := range t.InterventionContext {
			ic[k] = v
		}
		ic["blocker_answer"] = answer
		if _, err := s.tasks.SetInterventionContext(ctx, t.ID, ic); err != nil {
			return resumed, err
		}
		if _, err := s.tasks.UpdateStatus(ctx, t.ID, task.StatusReady); err != nil {
			return resumed, err
		}
		resumed = append(resumed, t.TaskNumber)
	}
	return resumed, nil
}

// loadFiles reads changed files from the workspace for the review
// gate. Unreadable files are passed through with empty content so the
// path still appears in findings.
func (s *Supervisor) loadFiles(paths []string) []gates.FileContent {
	files := make([]gates.FileContent, 0, len(paths))
	for _, p := range paths {
		fc := gates.FileContent{Path: p}
		if s.workspace != "" {
			if raw, err := os.ReadFile(filepath.Join(s.workspace, p)); err == nil {
				fc.Content = string(raw)
			}
		}
		files = append(files, fc)
	}
	return files
}

func (s *Supervisor) recordUsage(projectID string, t *ent.Task, agentID string, resp *llm.Response) {
	rec := models.TokenUsageRecord{
		ProjectID:    projectID,
		TaskID:       t.ID,
		AgentID:      agentID,
		Model:        resp.Model,
		CallType:     "task_execution",
		InputTokens:  resp.InputTokens,
		OutputTokens: resp.OutputTokens,
	}
	if _, err := s.usage.RecordTokenUsage(context.Background(), rec); err != nil {
		s.logger.Warn("failed to record token usage", slog.Any("error", err))
	}
	if s.observer != nil {
		s.observer(rec)
	}
}

func knownFiles(byNumber map[string]*ent.Task) []string {
	var out []string
	for _, t := range byNumber {
		for _, f := range t.FilesChanged {
			out = appendUnique(out, f)
		}
	}
	return out
}

func appendUnique(list []string, item string) []string {
	for _, v := range list {
		if v == item {
			return list
		}
	}
	return append(list, item)
}

func toAnySlice(in []string) []any {
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}
