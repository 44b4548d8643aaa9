// Package schedule assigns tasks to agent slots over time. It consumes
// a built graph.Resolver and produces wall-clock schedules respecting
// dependencies and slot capacity.
package schedule

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/frankbria/codeframe/pkg/graph"
)

// Sentinel errors for scheduling operations.
var (
	// ErrNoAgents indicates the requested slot count is not positive.
	ErrNoAgents = errors.New("agent slot count must be positive")

	// ErrCyclicGraph indicates the resolver's graph is not a DAG.
	ErrCyclicGraph = errors.New("cannot schedule a cyclic graph")
)

// Assignment places one task on one agent slot.
type Assignment struct {
	TaskID string  `json:"task_id"`
	Slot   int     `json:"slot"`
	Start  float64 `json:"start"`
	End    float64 `json:"end"`
}

// Event is a single start or end marker on the schedule timeline.
type Event struct {
	Time   float64 `json:"time"`
	Kind   string  `json:"kind"` // "start" or "end"
	TaskID string  `json:"task_id"`
	Slot   int     `json:"slot"`
}

// Result is a complete schedule. Times are non-negative hours
// relative to t=0.
type Result struct {
	Assignments   map[string]Assignment `json:"assignments"`
	TotalDuration float64               `json:"total_duration"`
	Timeline      []Event               `json:"timeline"`
	AgentsUsed    int                   `json:"agents_used"`
}

// Scheduler produces schedules over a built resolver.
type Scheduler struct {
	resolver *graph.Resolver
}

// NewScheduler creates a scheduler for the given resolver.
func NewScheduler(resolver *graph.Resolver) *Scheduler {
	return &Scheduler{resolver: resolver}
}

// Schedule runs wave-by-wave greedy list scheduling:
// within each wave tasks are packed longest-first, each onto the slot
// that lets it start earliest. A task never starts before the end of
// any dependency. Ties break toward the lower slot index.
func (s *Scheduler) Schedule(durations map[string]float64, agentSlots int) (*Result, error) {
	if agentSlots <= 0 {
		return nil, ErrNoAgents
	}
	waves, ok := s.resolver.ParallelWaves()
	if !ok {
		return nil, ErrCyclicGraph
	}

	slotEnd := make([]float64, agentSlots)
	assignments := make(map[string]Assignment)
	used := make(map[int]bool)

	for _, wave := range waves {
		// Longest-first packing within the wave; equal durations keep
		// task-number order from the resolver.
		ordered := append([]string(nil), wave...)
		sort.SliceStable(ordered, func(i, j int) bool {
			return durations[ordered[i]] > durations[ordered[j]]
		})

		for _, id := range ordered {
			earliest := 0.0
			for _, dep := range s.resolver.Dependencies(id) {
				if a, scheduled := assignments[dep]; scheduled && a.End > earliest {
					earliest = a.End
				}
			}

			best := 0
			bestStart := math.Inf(1)
			for slot := 0; slot < agentSlots; slot++ {
				start := math.Max(earliest, slotEnd[slot])
				if start < bestStart {
					bestStart = start
					best = slot
				}
			}

			end := bestStart + durations[id]
			slotEnd[best] = end
			used[best] = true
			assignments[id] = Assignment{TaskID: id, Slot: best, Start: bestStart, End: end}
		}
	}

	total := 0.0
	for _, a := range assignments {
		if a.End > total {
			total = a.End
		}
	}

	return &Result{
		Assignments:   assignments,
		TotalDuration: total,
		Timeline:      buildTimeline(assignments),
		AgentsUsed:    len(used),
	}, nil
}

// buildTimeline emits start/end events sorted by time. At identical
// times start events precede end events so wave boundaries stay
// visible in the output.
func buildTimeline(assignments map[string]Assignment) []Event {
	events := make([]Event, 0, 2*len(assignments))
	for _, a := range assignments {
		events = append(events, Event{Time: a.Start, Kind: "start", TaskID: a.TaskID, Slot: a.Slot})
		events = append(events, Event{Time: a.End, Kind: "end", TaskID: a.TaskID, Slot: a.Slot})
	}
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Time != events[j].Time {
			return events[i].Time < events[j].Time
		}
		if events[i].Kind != events[j].Kind {
			return events[i].Kind == "start"
		}
		return graph.CompareTaskNumbers(events[i].TaskID, events[j].TaskID) < 0
	})
	return events
}

// OptimizeResult reports the outcome of re-scheduling under a
// different parallelism constraint.
type OptimizeResult struct {
	Schedule           *Result  `json:"schedule"`
	Improved           bool     `json:"improved"`
	ImprovementPercent float64  `json:"improvement_percent"`
	Changes            []string `json:"changes"`
}

// Optimize re-runs the scheduler with maxParallel slots. If the new
// schedule is not strictly shorter, the original is returned unchanged.
func (s *Scheduler) Optimize(current *Result, durations map[string]float64, maxParallel int) (*OptimizeResult, error) {
	candidate, err := s.Schedule(durations, maxParallel)
	if err != nil {
		return nil, err
	}

	if current == nil || current.TotalDuration <= 0 || candidate.TotalDuration >= current.TotalDuration {
		return &OptimizeResult{
			Schedule: current,
			Improved: false,
			Changes:  []string{"no improvement found; schedule unchanged"},
		}, nil
	}

	improvement := (current.TotalDuration - candidate.TotalDuration) / current.TotalDuration * 100
	changes := []string{
		fmt.Sprintf("total duration %.1fh → %.1fh with %d agent slots",
			current.TotalDuration, candidate.TotalDuration, maxParallel),
	}
	if candidate.AgentsUsed != current.AgentsUsed {
		changes = append(changes, fmt.Sprintf("agents used %d → %d", current.AgentsUsed, candidate.AgentsUsed))
	}

	return &OptimizeResult{
		Schedule:           candidate,
		Improved:           true,
		ImprovementPercent: improvement,
		Changes:            changes,
	}, nil
}
