package schedule

import (
	"testing"
	"time"

	"github.com/frankbria/codeframe/pkg/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var diamondDurations = map[string]float64{"A": 2, "B": 3, "C": 1, "D": 2}

func diamondScheduler(t *testing.T) *Scheduler {
	t.Helper()
	r := graph.NewResolver()
	require.NoError(t, r.Build([]graph.TaskInput{
		{ID: "A"},
		{ID: "B", DependsOn: "A"},
		{ID: "C", DependsOn: "A"},
		{ID: "D", DependsOn: "B,C"},
	}))
	return NewScheduler(r)
}

func TestScheduleDiamondTwoAgents(t *testing.T) {
	s := diamondScheduler(t)

	result, err := s.Schedule(diamondDurations, 2)
	require.NoError(t, err)
	assert.InDelta(t, 7.0, result.TotalDuration, 1e-9)
}

func TestScheduleDiamondOneAgent(t *testing.T) {
	s := diamondScheduler(t)

	result, err := s.Schedule(diamondDurations, 1)
	require.NoError(t, err)
	assert.InDelta(t, 8.0, result.TotalDuration, 1e-9)
	assert.Equal(t, 1, result.AgentsUsed)
}

func TestScheduleRespectsDependencies(t *testing.T) {
	s := diamondScheduler(t)

	for _, slots := range []int{1, 2, 3, 4} {
		result, err := s.Schedule(diamondDurations, slots)
		require.NoError(t, err)

		d := result.Assignments["D"]
		b := result.Assignments["B"]
		c := result.Assignments["C"]
		assert.GreaterOrEqual(t, d.Start, b.End)
		assert.GreaterOrEqual(t, d.Start, c.End)
	}
}

func TestScheduleNoSlotOverlap(t *testing.T) {
	s := diamondScheduler(t)

	result, err := s.Schedule(diamondDurations, 2)
	require.NoError(t, err)

	for id1, a1 := range result.Assignments {
		for id2, a2 := range result.Assignments {
			if id1 >= id2 || a1.Slot != a2.Slot {
				continue
			}
			overlaps := a1.Start < a2.End && a2.Start < a1.End
			assert.False(t, overlaps, "tasks %s and %s overlap on slot %d", id1, id2, a1.Slot)
		}
	}
}

func TestMoreAgentsNeverSlower(t *testing.T) {
	s := diamondScheduler(t)

	prev := -1.0
	for slots := 1; slots <= 4; slots++ {
		result, err := s.Schedule(diamondDurations, slots)
		require.NoError(t, err)
		if prev >= 0 {
			assert.LessOrEqual(t, result.TotalDuration, prev)
		}
		prev = result.TotalDuration
	}
}

func TestScheduleRejectsZeroSlots(t *testing.T) {
	s := diamondScheduler(t)
	_, err := s.Schedule(diamondDurations, 0)
	assert.ErrorIs(t, err, ErrNoAgents)
}

func TestTimelineOrdering(t *testing.T) {
	s := diamondScheduler(t)

	result, err := s.Schedule(diamondDurations, 2)
	require.NoError(t, err)
	require.NotEmpty(t, result.Timeline)

	for i := 1; i < len(result.Timeline); i++ {
		prev, cur := result.Timeline[i-1], result.Timeline[i]
		assert.LessOrEqual(t, prev.Time, cur.Time)
		if prev.Time == cur.Time && prev.Kind != cur.Kind {
			// Start events precede end events at identical times.
			assert.Equal(t, "start", prev.Kind)
		}
	}
}

func TestOptimizeImproves(t *testing.T) {
	s := diamondScheduler(t)

	serial, err := s.Schedule(diamondDurations, 1)
	require.NoError(t, err)

	opt, err := s.Optimize(serial, diamondDurations, 2)
	require.NoError(t, err)
	assert.True(t, opt.Improved)
	assert.InDelta(t, 7.0, opt.Schedule.TotalDuration, 1e-9)
	assert.InDelta(t, 12.5, opt.ImprovementPercent, 1e-9)
	assert.NotEmpty(t, opt.Changes)
}

func TestOptimizeKeepsScheduleWhenNoGain(t *testing.T) {
	s := diamondScheduler(t)

	parallel, err := s.Schedule(diamondDurations, 2)
	require.NoError(t, err)

	opt, err := s.Optimize(parallel, diamondDurations, 1)
	require.NoError(t, err)
	assert.False(t, opt.Improved)
	assert.Equal(t, parallel, opt.Schedule)
}

func TestPredictCompletion(t *testing.T) {
	s := diamondScheduler(t)

	result, err := s.Schedule(diamondDurations, 2)
	require.NoError(t, err)

	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC) // a Monday
	pred := s.PredictCompletion(result, map[string]string{"A": "completed"}, start, 8)

	assert.InDelta(t, 6.0, pred.RemainingHours, 1e-9)
	assert.InDelta(t, 25.0, pred.CompletedPercentage, 1e-9)
	assert.Equal(t, time.Tuesday, pred.PredictedDate.Weekday())
	assert.False(t, pred.EarlyDate.After(pred.PredictedDate))
	assert.False(t, pred.PredictedDate.After(pred.LateDate))
}

func TestFindBottlenecks(t *testing.T) {
	r := graph.NewResolver()
	require.NoError(t, r.Build([]graph.TaskInput{
		{ID: "1"},
		{ID: "2", DependsOn: "1"},
		{ID: "3", DependsOn: "2"},
	}))
	s := NewScheduler(r)

	// Task 2 runs far longer than average and sits on the critical path.
	bottlenecks, err := s.FindBottlenecks(map[string]float64{"1": 1, "2": 10, "3": 1})
	require.NoError(t, err)

	var found bool
	for _, b := range bottlenecks {
		if b.TaskID == "2" && b.Type == "duration" {
			found = true
			assert.Positive(t, b.ImpactHours)
			assert.NotEmpty(t, b.Recommendation)
		}
	}
	assert.True(t, found)
}
