package graph

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var diamondDurations = map[string]float64{"A": 2, "B": 3, "C": 1, "D": 2}

func TestCriticalPathDiamond(t *testing.T) {
	r := diamond(t)

	res, ok := r.CriticalPath(diamondDurations)
	require.True(t, ok)

	assert.Equal(t, []string{"A", "B", "D"}, res.CriticalTasks)
	assert.InDelta(t, 7.0, res.TotalDuration, 1e-9)

	slack, ok := r.Slack(diamondDurations)
	require.True(t, ok)
	assert.InDelta(t, 0.0, slack["A"], 1e-9)
	assert.InDelta(t, 0.0, slack["B"], 1e-9)
	assert.InDelta(t, 2.0, slack["C"], 1e-9)
	assert.InDelta(t, 0.0, slack["D"], 1e-9)
}

func TestCriticalPathMissingDurationsDefaultToZero(t *testing.T) {
	r := diamond(t)
	res, ok := r.CriticalPath(map[string]float64{"B": 3})
	require.True(t, ok)
	assert.InDelta(t, 3.0, res.TotalDuration, 1e-9)
}

func TestParallelWaves(t *testing.T) {
	r := diamond(t)
	waves, ok := r.ParallelWaves()
	require.True(t, ok)
	require.Len(t, waves, 3)
	assert.Equal(t, []string{"A"}, waves[0])
	assert.Equal(t, []string{"B", "C"}, waves[1])
	assert.Equal(t, []string{"D"}, waves[2])
}

func TestDetectConflictsLongChain(t *testing.T) {
	tasks := []TaskInput{{ID: "1"}}
	for i := 2; i <= 8; i++ {
		tasks = append(tasks, TaskInput{
			ID:        taskNum(i),
			DependsOn: taskNum(i - 1),
		})
	}
	r := buildResolver(t, tasks)

	conflicts, ok := r.DetectConflicts(nil)
	require.True(t, ok)
	require.NotEmpty(t, conflicts)

	var longChains int
	for _, c := range conflicts {
		if c.Type == "long_chain" {
			longChains++
			assert.Contains(t, []string{"critical", "high", "medium"}, c.Severity)
			assert.NotEmpty(t, c.Recommendation)
		}
	}
	assert.Equal(t, 3, longChains, "chains of length 6, 7, 8 flagged")
}

func TestDetectConflictsBottleneck(t *testing.T) {
	// One root with five dependents, all with equal durations, so every
	// task lands on the critical path.
	tasks := []TaskInput{{ID: "1"}}
	for i := 2; i <= 6; i++ {
		tasks = append(tasks, TaskInput{ID: taskNum(i), DependsOn: "1"})
	}
	r := buildResolver(t, tasks)

	durations := map[string]float64{"1": 1, "2": 1, "3": 1, "4": 1, "5": 1, "6": 1}
	conflicts, ok := r.DetectConflicts(durations)
	require.True(t, ok)

	var found bool
	for _, c := range conflicts {
		if c.Type == "bottleneck" && c.TaskID == "1" {
			found = true
			assert.InDelta(t, 5.0, c.Detail, 1e-9)
		}
	}
	assert.True(t, found, "root with 5 critical dependents must be flagged")
}

func taskNum(i int) string {
	return strconv.Itoa(i)
}
