package graph

import (
	"fmt"
	"math"
)

// TaskTiming holds the forward/backward pass results for one task.
// All values are hours relative to t=0.
type TaskTiming struct {
	EarliestStart  float64 `json:"earliest_start"`
	EarliestFinish float64 `json:"earliest_finish"`
	LatestStart    float64 `json:"latest_start"`
	LatestFinish   float64 `json:"latest_finish"`
	Slack          float64 `json:"slack"`
}

// CriticalPathResult is the output of CriticalPath.
type CriticalPathResult struct {
	CriticalTasks []string              `json:"critical_tasks"`
	TotalDuration float64               `json:"total_duration"`
	Timings       map[string]TaskTiming `json:"timings"`
}

// Conflict flags a structural risk in the graph.
type Conflict struct {
	TaskID         string  `json:"task_id"`
	Type           string  `json:"type"`     // "bottleneck" or "long_chain"
	Severity       string  `json:"severity"` // "critical", "high", "medium"
	Detail         float64 `json:"detail"`   // dependent count or chain length
	Recommendation string  `json:"recommendation"`
}

// bottleneckDependentThreshold is the number of critical-path
// dependents above which a task is flagged as a bottleneck.
const bottleneckDependentThreshold = 3

// maxHealthyChainLength is the longest dependency chain that does not
// get flagged.
const maxHealthyChainLength = 5

// CriticalPath computes earliest start/finish via a forward pass over
// the topological order and latest start/finish via a backward pass
// from the project end. A task is critical iff its slack is zero.
// Missing durations default to 0. Returns ok=false on a cyclic graph.
func (r *Resolver) CriticalPath(durations map[string]float64) (*CriticalPathResult, bool) {
	order, ok := r.TopologicalOrder()
	if !ok {
		return nil, false
	}

	timings := make(map[string]TaskTiming, len(order))

	// Forward pass
	totalDuration := 0.0
	for _, id := range order {
		es := 0.0
		for _, dep := range r.deps[id] {
			if t, known := timings[dep]; known && t.EarliestFinish > es {
				es = t.EarliestFinish
			}
		}
		ef := es + durations[id]
		timings[id] = TaskTiming{EarliestStart: es, EarliestFinish: ef}
		if ef > totalDuration {
			totalDuration = ef
		}
	}

	// Backward pass
	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		lf := totalDuration
		for _, dep := range r.dependents[id] {
			if t, known := timings[dep]; known && t.LatestStart < lf {
				lf = t.LatestStart
			}
		}
		t := timings[id]
		t.LatestFinish = lf
		t.LatestStart = lf - durations[id]
		t.Slack = t.LatestStart - t.EarliestStart
		timings[id] = t
	}

	critical := make([]string, 0)
	for _, id := range order {
		if math.Abs(timings[id].Slack) < 1e-9 {
			critical = append(critical, id)
		}
	}
	sortTaskIDs(critical)

	return &CriticalPathResult{
		CriticalTasks: critical,
		TotalDuration: totalDuration,
		Timings:       timings,
	}, true
}

// Slack maps task id → latest start minus earliest start.
func (r *Resolver) Slack(durations map[string]float64) (map[string]float64, bool) {
	res, ok := r.CriticalPath(durations)
	if !ok {
		return nil, false
	}
	slack := make(map[string]float64, len(res.Timings))
	for id, t := range res.Timings {
		slack[id] = t.Slack
	}
	return slack, true
}

// ParallelWaves partitions tasks into waves where wave k holds every
// task whose longest dependency chain from a root has length k. All
// tasks within a wave are mutually independent.
func (r *Resolver) ParallelWaves() ([][]string, bool) {
	order, ok := r.TopologicalOrder()
	if !ok {
		return nil, false
	}

	depth := make(map[string]int, len(order))
	maxDepth := 0
	for _, id := range order {
		d := 0
		for _, dep := range r.deps[id] {
			if dd, known := depth[dep]; known && dd+1 > d {
				d = dd + 1
			}
		}
		depth[id] = d
		if d > maxDepth {
			maxDepth = d
		}
	}

	waves := make([][]string, maxDepth+1)
	for _, id := range order {
		waves[depth[id]] = append(waves[depth[id]], id)
	}
	for i := range waves {
		sortTaskIDs(waves[i])
	}
	return waves, true
}

// DetectConflicts flags bottleneck tasks (too many critical-path
// dependents) and over-long dependency chains, each with a severity
// and a human-readable recommendation.
func (r *Resolver) DetectConflicts(durations map[string]float64) ([]Conflict, bool) {
	res, ok := r.CriticalPath(durations)
	if !ok {
		return nil, false
	}
	criticalSet := make(map[string]bool, len(res.CriticalTasks))
	for _, id := range res.CriticalTasks {
		criticalSet[id] = true
	}

	conflicts := make([]Conflict, 0)

	// Bottlenecks: many dependents sitting on the critical path.
	for _, id := range r.TaskIDs() {
		if !criticalSet[id] {
			continue
		}
		criticalDependents := 0
		for _, dep := range r.dependents[id] {
			if criticalSet[dep] {
				criticalDependents++
			}
		}
		if criticalDependents > bottleneckDependentThreshold {
			severity := "high"
			if criticalDependents >= 2*bottleneckDependentThreshold {
				severity = "critical"
			}
			conflicts = append(conflicts, Conflict{
				TaskID:   id,
				Type:     "bottleneck",
				Severity: severity,
				Detail:   float64(criticalDependents),
				Recommendation: fmt.Sprintf(
					"Task %s blocks %d critical-path tasks; consider splitting it or relaxing its dependents", id, criticalDependents),
			})
		}
	}

	// Long chains: walk the longest chain ending at each task.
	chainLen := make(map[string]int, len(r.deps))
	order, _ := r.TopologicalOrder()
	for _, id := range order {
		longest := 0
		for _, dep := range r.deps[id] {
			if chainLen[dep] > longest {
				longest = chainLen[dep]
			}
		}
		chainLen[id] = longest + 1
		if chainLen[id] > maxHealthyChainLength {
			severity := "medium"
			if chainLen[id] > 2*maxHealthyChainLength {
				severity = "high"
			}
			conflicts = append(conflicts, Conflict{
				TaskID:   id,
				Type:     "long_chain",
				Severity: severity,
				Detail:   float64(chainLen[id]),
				Recommendation: fmt.Sprintf(
					"Task %s sits at the end of a %d-task chain; look for dependencies that can run in parallel", id, chainLen[id]),
			})
		}
	}

	return conflicts, true
}
