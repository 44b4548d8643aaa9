package supervisor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankbria/codeframe/ent"
	"github.com/frankbria/codeframe/ent/memory"
	"github.com/frankbria/codeframe/ent/task"
	"github.com/frankbria/codeframe/pkg/config"
	"github.com/frankbria/codeframe/pkg/gates"
	"github.com/frankbria/codeframe/pkg/graph"
	"github.com/frankbria/codeframe/pkg/llm"
	"github.com/frankbria/codeframe/pkg/models"
	"github.com/frankbria/codeframe/pkg/probe"
	"github.com/frankbria/codeframe/pkg/verify"
)

// --- fakes ---

type fakeTasks struct {
	mu             sync.Mutex
	tasks          map[string]*ent.Task
	completedOrder []string
	interventions  map[string][]map[string]any
}

func newFakeTasks(tasks ...*ent.Task) *fakeTasks {
	f := &fakeTasks{
		tasks:         make(map[string]*ent.Task),
		interventions: make(map[string][]map[string]any),
	}
	for _, t := range tasks {
		f.tasks[t.ID] = t
	}
	return f
}

func (f *fakeTasks) ListTasksByProject(_ context.Context, _ string, filter models.TaskFilter) ([]*ent.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*ent.Task
	for _, t := range f.tasks {
		if filter.Status != "" && string(t.Status) != filter.Status {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TaskNumber < out[j].TaskNumber })
	return out, nil
}

func (f *fakeTasks) UpdateStatus(_ context.Context, id string, to task.Status) (*ent.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tasks[id]
	if !ok {
		return nil, errors.New("not found")
	}
	t.Status = to
	return t, nil
}

func (f *fakeTasks) CompleteTask(_ context.Context, id string, filesChanged []string) (*ent.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tasks[id]
	if !ok {
		return nil, errors.New("not found")
	}
	now := time.Now()
	t.Status = task.StatusCompleted
	t.FilesChanged = filesChanged
	t.CompletedAt = &now
	f.completedOrder = append(f.completedOrder, t.TaskNumber)
	return t, nil
}

func (f *fakeTasks) SetInterventionContext(_ context.Context, id string, ic map[string]any) (*ent.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tasks[id]
	if !ok {
		return nil, errors.New("not found")
	}
	t.InterventionContext = ic
	f.interventions[t.TaskNumber] = append(f.interventions[t.TaskNumber], ic)
	return t, nil
}

func (f *fakeTasks) BuildResolver(_ context.Context, _ string) (*graph.Resolver, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	inputs := make([]graph.TaskInput, 0, len(f.tasks))
	for _, t := range f.tasks {
		inputs = append(inputs, graph.TaskInput{ID: t.TaskNumber, DependsOn: t.DependsOn})
	}
	r := graph.NewResolver()
	if err := r.Build(inputs); err != nil {
		return nil, err
	}
	for _, t := range f.tasks {
		if t.Status == task.StatusCompleted {
			r.MarkCompleted(t.TaskNumber)
		}
	}
	return r, nil
}

func (f *fakeTasks) get(id string) *ent.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tasks[id]
}

type fakeBlockers struct {
	mu       sync.Mutex
	created  []models.CreateBlockerRequest
	answered []*ent.Blocker
}

func (f *fakeBlockers) CreateBlocker(_ context.Context, req models.CreateBlockerRequest) (*ent.Blocker, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, req)
	return &ent.Blocker{ID: fmt.Sprintf("blk-%d", len(f.created))}, nil
}

func (f *fakeBlockers) ListBlockersByProject(_ context.Context, _ string, filter models.BlockerFilter) ([]*ent.Blocker, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if filter.State == "answered" {
		return f.answered, nil
	}
	return nil, nil
}

type fakeMemories struct {
	hot  []*ent.Memory
	warm []*ent.Memory
}

func (f *fakeMemories) GetByCategory(_ context.Context, _ string, category memory.Category) ([]*ent.Memory, error) {
	switch category {
	case memory.CategoryHot:
		return f.hot, nil
	case memory.CategoryWarm:
		return f.warm, nil
	}
	return nil, nil
}

type fakeUsage struct {
	mu      sync.Mutex
	records []models.TokenUsageRecord
}

func (f *fakeUsage) RecordTokenUsage(_ context.Context, rec models.TokenUsageRecord) (*ent.TokenUsage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, rec)
	return nil, nil
}

// fakeAdapter routes each completion through a handler keyed by task
// number (parsed from the prompt) and the per-task attempt count.
type fakeAdapter struct {
	mu       sync.Mutex
	attempts map[string]int
	handler  func(taskNumber string, attempt int, req llm.Request) (*llm.Response, error)
}

var promptTaskExpr = regexp.MustCompile(`Task (\S+):`)

func (a *fakeAdapter) Complete(_ context.Context, req llm.Request) (*llm.Response, error) {
	num := ""
	if len(req.Messages) > 0 {
		if m := promptTaskExpr.FindStringSubmatch(req.Messages[0].Content); m != nil {
			num = m[1]
		}
	}
	a.mu.Lock()
	if a.attempts == nil {
		a.attempts = make(map[string]int)
	}
	a.attempts[num]++
	attempt := a.attempts[num]
	a.mu.Unlock()
	return a.handler(num, attempt, req)
}

func (a *fakeAdapter) Stream(context.Context, llm.Request) (<-chan string, <-chan error) {
	out := make(chan string)
	errs := make(chan error)
	close(out)
	close(errs)
	return out, errs
}

type fakeCollector struct {
	mu    sync.Mutex
	ev    *verify.Evidence
	err   error
	calls int
}

func (f *fakeCollector) Collect(context.Context, string, string, string) (*verify.Evidence, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.ev, f.err
}

// passingEvidence is a verified test run with healthy coverage.
func passingEvidence() *verify.Evidence {
	return &verify.Evidence{
		Tests: &probe.TestResult{
			Total: 6, Passed: 6, PassRate: 100,
			CoveragePct: 92, HasCoverage: true,
			RawOutput: "6 passed in 0.41s",
		},
		Language:  probe.LangPython,
		Framework: "pytest",
		Verified:  true,
	}
}

func okResponse(files ...string) *llm.Response {
	content := "Done."
	if len(files) > 0 {
		content += "\nFILES_CHANGED: " + strings.Join(files, ", ")
	}
	return &llm.Response{
		Content:      content,
		StopReason:   "stop",
		Model:        "gpt-4o",
		InputTokens:  120,
		OutputTokens: 40,
	}
}

// --- helpers ---

func newTestRegistry(t *testing.T) *config.Registry {
	t.Helper()
	dir := t.TempDir()
	def := "name: implementer\ntype: implementation\nsystem_prompt: You implement tasks.\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "implementer.yaml"), []byte(def), 0o644))
	reg, err := config.LoadRegistry(dir)
	require.NoError(t, err)
	return reg
}

func newTask(id, number, title, dependsOn string) *ent.Task {
	return &ent.Task{
		ID:         id,
		TaskNumber: number,
		Title:      title,
		DependsOn:  dependsOn,
		Status:     task.StatusPending,
	}
}

func newTestSupervisor(t *testing.T, tasks *fakeTasks, blockers *fakeBlockers, adapter llm.Adapter, opts ...Option) (*Supervisor, *fakeUsage) {
	t.Helper()
	usage := &fakeUsage{}
	opts = append([]Option{WithEvidenceCollector(&fakeCollector{ev: passingEvidence()})}, opts...)
	s := New(tasks, blockers, &fakeMemories{}, usage, adapter, newTestRegistry(t), gates.NewRunner(), opts...)
	return s, usage
}

// --- tests ---

func TestRunCompletesTasksInDependencyOrder(t *testing.T) {
	tasks := newFakeTasks(
		newTask("t1", "1.1", "Implement config loader", ""),
		newTask("t2", "1.2", "Implement server startup", "1.1"),
	)
	blockers := &fakeBlockers{}
	adapter := &fakeAdapter{handler: func(num string, _ int, _ llm.Request) (*llm.Response, error) {
		return okResponse(num + ".go"), nil
	}}

	var observed []models.TokenUsageRecord
	sup, usage := newTestSupervisor(t, tasks, blockers, adapter,
		WithObserver(func(rec models.TokenUsageRecord) { observed = append(observed, rec) }))

	report, err := sup.Run(context.Background(), "proj")
	require.NoError(t, err)

	assert.Equal(t, 2, report.Completed)
	assert.Equal(t, 0, report.Blocked)
	assert.Equal(t, []string{"1.1", "1.2"}, tasks.completedOrder)
	assert.Equal(t, task.StatusCompleted, tasks.get("t1").Status)
	assert.Equal(t, []string{"1.2.go"}, tasks.get("t2").FilesChanged)
	assert.Empty(t, blockers.created)

	require.Len(t, usage.records, 2)
	assert.Equal(t, "task_execution", usage.records[0].CallType)
	assert.Equal(t, 120, usage.records[0].InputTokens)
	assert.Len(t, observed, 2)
}

func TestRunInterventionThenRecovery(t *testing.T) {
	tasks := newFakeTasks(newTask("t1", "1.1", "Implement parser", ""))
	blockers := &fakeBlockers{}
	adapter := &fakeAdapter{handler: func(_ string, attempt int, _ llm.Request) (*llm.Response, error) {
		if attempt == 1 {
			return nil, errors.New("FileExistsError: [Errno 17] File exists: 'src/parser.py'")
		}
		return okResponse("src/parser.py"), nil
	}}

	sup, _ := newTestSupervisor(t, tasks, blockers, adapter)
	report, err := sup.Run(context.Background(), "proj")
	require.NoError(t, err)

	assert.Equal(t, 1, report.Completed)
	assert.Equal(t, 1, report.Interventions)
	assert.Empty(t, blockers.created)

	require.Len(t, tasks.interventions["1.1"], 1)
	ic := tasks.interventions["1.1"][0]
	assert.Equal(t, "convert_create_to_edit", ic["strategy"])
	assert.Contains(t, ic["instruction"], "Modify the existing file")
}

func TestRunSecondDispatchSeesInterventionNotes(t *testing.T) {
	tasks := newFakeTasks(newTask("t1", "1.1", "Implement parser", ""))
	var retryPrompt string
	adapter := &fakeAdapter{handler: func(_ string, attempt int, req llm.Request) (*llm.Response, error) {
		if attempt == 1 {
			return nil, errors.New("FileNotFoundError: no such file 'src/missing.py'")
		}
		retryPrompt = req.Messages[0].Content
		return okResponse(), nil
	}}

	sup, _ := newTestSupervisor(t, tasks, &fakeBlockers{}, adapter)
	_, err := sup.Run(context.Background(), "proj")
	require.NoError(t, err)

	assert.Contains(t, retryPrompt, "Notes from the previous attempt:")
	assert.Contains(t, retryPrompt, "use the correct existing path")
}

func TestRunRepeatedFailureRaisesBlocker(t *testing.T) {
	tasks := newFakeTasks(newTask("t1", "1.1", "Implement parser", ""))
	blockers := &fakeBlockers{}
	adapter := &fakeAdapter{handler: func(string, int, llm.Request) (*llm.Response, error) {
		return nil, errors.New("FileExistsError: File exists: 'src/parser.py'")
	}}

	sup, _ := newTestSupervisor(t, tasks, blockers, adapter)
	report, err := sup.Run(context.Background(), "proj")
	require.NoError(t, err)

	assert.Equal(t, 0, report.Completed)
	assert.Equal(t, maxInterventions, report.Interventions)
	assert.Equal(t, 1, report.Blocked)
	assert.Equal(t, task.StatusBlocked, tasks.get("t1").Status)

	require.Len(t, blockers.created, 1)
	assert.Equal(t, "sync", blockers.created[0].Kind)
	assert.Contains(t, blockers.created[0].Question, "keeps failing after 2 interventions")
	assert.Equal(t, "t1", blockers.created[0].TaskID)
}

func TestRunUnrecognisedErrorBlocksImmediately(t *testing.T) {
	tasks := newFakeTasks(newTask("t1", "1.1", "Implement parser", ""))
	blockers := &fakeBlockers{}
	adapter := &fakeAdapter{handler: func(string, int, llm.Request) (*llm.Response, error) {
		return nil, errors.New("segmentation fault in worker")
	}}

	sup, _ := newTestSupervisor(t, tasks, blockers, adapter)
	report, err := sup.Run(context.Background(), "proj")
	require.NoError(t, err)

	assert.Equal(t, 0, report.Interventions)
	assert.Equal(t, 1, report.Blocked)
	require.Len(t, blockers.created, 1)
	assert.Contains(t, blockers.created[0].Question, "Task 1.1 failed: segmentation fault")
}

func TestRunGateFailureRaisesReviewBlocker(t *testing.T) {
	workspace := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(workspace, "bad.py"),
		[]byte("def run(user_input):\n    return eval(user_input)\n"), 0o644))

	tasks := newFakeTasks(newTask("t1", "2.3", "Implement expression runner", ""))
	blockers := &fakeBlockers{}
	adapter := &fakeAdapter{handler: func(string, int, llm.Request) (*llm.Response, error) {
		return okResponse("bad.py"), nil
	}}

	sup, _ := newTestSupervisor(t, tasks, blockers, adapter, WithWorkspace(workspace))
	report, err := sup.Run(context.Background(), "proj")
	require.NoError(t, err)

	assert.Equal(t, 0, report.Completed)
	assert.Equal(t, 1, report.Blocked)
	assert.Equal(t, task.StatusBlocked, tasks.get("t1").Status)

	require.Len(t, blockers.created, 1)
	assert.Contains(t, blockers.created[0].Question, "Code review for task 2.3")
	assert.Contains(t, blockers.created[0].Question, "eval() on dynamic input")
}

func TestRunFailedTestsRaiseGateBlocker(t *testing.T) {
	tasks := newFakeTasks(newTask("t1", "1.1", "Implement parser", ""))
	blockers := &fakeBlockers{}
	adapter := &fakeAdapter{handler: func(string, int, llm.Request) (*llm.Response, error) {
		return okResponse("src/parser.py"), nil
	}}

	ev := passingEvidence()
	ev.Tests.Passed, ev.Tests.Failed, ev.Tests.PassRate = 4, 2, 66.7
	ev.Verified = false
	ev.Errors = []string{"Tests failed: 2 failures"}

	sup, _ := newTestSupervisor(t, tasks, blockers, adapter,
		WithEvidenceCollector(&fakeCollector{ev: ev}))
	report, err := sup.Run(context.Background(), "proj")
	require.NoError(t, err)

	assert.Equal(t, 0, report.Completed)
	assert.Equal(t, 1, report.Blocked)
	assert.Equal(t, task.StatusBlocked, tasks.get("t1").Status)

	require.Len(t, blockers.created, 1)
	assert.Contains(t, blockers.created[0].Question, "Quality gates failed for task 1.1")
	assert.Contains(t, blockers.created[0].Question, "2 of 6 tests failed")
}

func TestRunNoEvidenceFailsTestsGate(t *testing.T) {
	tasks := newFakeTasks(newTask("t1", "1.1", "Implement parser", ""))
	blockers := &fakeBlockers{}
	adapter := &fakeAdapter{handler: func(string, int, llm.Request) (*llm.Response, error) {
		return okResponse(), nil
	}}

	collector := &fakeCollector{}
	sup, _ := newTestSupervisor(t, tasks, blockers, adapter,
		WithEvidenceCollector(collector))
	report, err := sup.Run(context.Background(), "proj")
	require.NoError(t, err)

	assert.Equal(t, 1, collector.calls)
	assert.Equal(t, 0, report.Completed)
	assert.Equal(t, 1, report.Blocked)
	require.Len(t, blockers.created, 1)
	assert.Contains(t, blockers.created[0].Question, "no tests were executed")
}

func TestRunUnverifiedEvidenceBlocksCompletion(t *testing.T) {
	tasks := newFakeTasks(newTask("t1", "1.1", "Implement parser", ""))
	blockers := &fakeBlockers{}
	adapter := &fakeAdapter{handler: func(string, int, llm.Request) (*llm.Response, error) {
		return okResponse(), nil
	}}

	// Counts alone pass the gates; the verifier rejects the skips.
	ev := passingEvidence()
	ev.Tests.Passed, ev.Tests.Skipped = 4, 2
	ev.Verified = false
	ev.Errors = []string{"Skipped tests detected: 2"}

	sup, _ := newTestSupervisor(t, tasks, blockers, adapter,
		WithEvidenceCollector(&fakeCollector{ev: ev}))
	report, err := sup.Run(context.Background(), "proj")
	require.NoError(t, err)

	assert.Equal(t, 0, report.Completed)
	assert.Equal(t, 1, report.Blocked)
	assert.Equal(t, task.StatusBlocked, tasks.get("t1").Status)

	require.Len(t, blockers.created, 1)
	assert.Contains(t, blockers.created[0].Question, "Test evidence for task 1.1 failed verification")
	assert.Contains(t, blockers.created[0].Question, "Skipped tests detected: 2")
}

func TestRunDesignTaskSkipsEvidenceGating(t *testing.T) {
	tasks := newFakeTasks(newTask("t1", "1.1", "Design the storage architecture", ""))
	blockers := &fakeBlockers{}
	adapter := &fakeAdapter{handler: func(string, int, llm.Request) (*llm.Response, error) {
		return okResponse(), nil
	}}

	sup, _ := newTestSupervisor(t, tasks, blockers, adapter,
		WithEvidenceCollector(&fakeCollector{}))
	report, err := sup.Run(context.Background(), "proj")
	require.NoError(t, err)

	assert.Equal(t, 1, report.Completed)
	assert.Equal(t, 0, report.Blocked)
	assert.Empty(t, blockers.created)
}

func TestRunEvidenceCollectionErrorRaisesBlocker(t *testing.T) {
	tasks := newFakeTasks(newTask("t1", "1.1", "Implement parser", ""))
	blockers := &fakeBlockers{}
	adapter := &fakeAdapter{handler: func(string, int, llm.Request) (*llm.Response, error) {
		return okResponse(), nil
	}}

	collector := &fakeCollector{err: errors.New("test run timed out after 5m0s")}
	sup, _ := newTestSupervisor(t, tasks, blockers, adapter,
		WithEvidenceCollector(collector))
	report, err := sup.Run(context.Background(), "proj")
	require.NoError(t, err)

	assert.Equal(t, 1, report.Blocked)
	require.Len(t, blockers.created, 1)
	assert.Contains(t, blockers.created[0].Question, "Evidence collection for task 1.1 failed")
	assert.Contains(t, blockers.created[0].Question, "timed out")
}

func TestProbeCollectorWithoutDetectableStack(t *testing.T) {
	c := NewProbeCollector(nil)

	ev, err := c.Collect(context.Background(), "", "worker-1.1", "desc")
	require.NoError(t, err)
	assert.Nil(t, ev)

	ev, err = c.Collect(context.Background(), t.TempDir(), "worker-1.1", "desc")
	require.NoError(t, err)
	assert.Nil(t, ev)
}

func TestRunCancellationRequeuesInFlightTask(t *testing.T) {
	tasks := newFakeTasks(newTask("t1", "1.1", "Implement parser", ""))
	ctx, cancel := context.WithCancel(context.Background())
	adapter := &fakeAdapter{handler: func(string, int, llm.Request) (*llm.Response, error) {
		cancel()
		<-ctx.Done()
		return nil, ctx.Err()
	}}

	sup, _ := newTestSupervisor(t, tasks, &fakeBlockers{}, adapter)
	report, err := sup.Run(ctx, "proj")
	assert.ErrorIs(t, err, context.Canceled)

	assert.Equal(t, 1, report.Cancelled)
	assert.Equal(t, task.StatusReady, tasks.get("t1").Status)
	require.Len(t, tasks.interventions["1.1"], 1)
	assert.Contains(t, tasks.interventions["1.1"][0]["instruction"], "cancelled before completing")
}

func TestResumeBlocked(t *testing.T) {
	blocked := newTask("t1", "1.1", "Implement parser", "")
	blocked.Status = task.StatusBlocked
	blocked.InterventionContext = map[string]any{"instruction": "earlier note"}
	tasks := newFakeTasks(blocked)

	taskID := "t1"
	answer := "Use the streaming parser from pkg/probe."
	blockers := &fakeBlockers{answered: []*ent.Blocker{
		{ID: "blk-1", TaskID: &taskID, Answer: &answer},
	}}

	sup, _ := newTestSupervisor(t, tasks, blockers, &fakeAdapter{})
	resumed, err := sup.ResumeBlocked(context.Background(), "proj")
	require.NoError(t, err)

	assert.Equal(t, []string{"1.1"}, resumed)
	got := tasks.get("t1")
	assert.Equal(t, task.StatusReady, got.Status)
	assert.Equal(t, answer, got.InterventionContext["blocker_answer"])
	assert.Equal(t, "earlier note", got.InterventionContext["instruction"])
}

func TestResumeBlockedIgnoresUnansweredTasks(t *testing.T) {
	blocked := newTask("t1", "1.1", "Implement parser", "")
	blocked.Status = task.StatusBlocked
	tasks := newFakeTasks(blocked)

	sup, _ := newTestSupervisor(t, tasks, &fakeBlockers{}, &fakeAdapter{})
	resumed, err := sup.ResumeBlocked(context.Background(), "proj")
	require.NoError(t, err)

	assert.Empty(t, resumed)
	assert.Equal(t, task.StatusBlocked, tasks.get("t1").Status)
}

func TestBuildPromptBoundsWarmContext(t *testing.T) {
	mems := &fakeMemories{
		hot: []*ent.Memory{{Key: "stack", Content: "Go with PostgreSQL"}},
	}
	for i := 0; i < 25; i++ {
		mems.warm = append(mems.warm, &ent.Memory{
			Key:     fmt.Sprintf("note-%02d", i),
			Content: strings.Repeat("x", 600),
		})
	}

	sup := New(newFakeTasks(), &fakeBlockers{}, mems, &fakeUsage{}, &fakeAdapter{},
		newTestRegistry(t), gates.NewRunner())

	req, err := sup.buildPrompt(context.Background(), "proj",
		newTask("t1", "2.1", "Implement cache", "1.3"), "system prompt")
	require.NoError(t, err)

	prompt := req.Messages[0].Content
	assert.Equal(t, "system prompt", req.System)
	assert.Contains(t, prompt, "stack: Go with PostgreSQL")
	assert.Contains(t, prompt, "Depends on completed tasks: 1.3")

	assert.Contains(t, prompt, "note-19")
	assert.NotContains(t, prompt, "note-20")
	assert.NotContains(t, prompt, strings.Repeat("x", 501))
	assert.Contains(t, prompt, strings.Repeat("x", 500))
}

func TestParseFilesChanged(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"marker with list", "All done.\nFILES_CHANGED: a.go, b.go\n", []string{"a.go", "b.go"}},
		{"no marker", "All done.", nil},
		{"empty list", "FILES_CHANGED:\n", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseFilesChanged(tt.content))
		})
	}
}
