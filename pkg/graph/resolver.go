// Package graph owns the project task dependency graph. It answers
// which tasks are ready, what becomes ready when a task completes,
// whether an edge is safe to add, and where the critical path runs.
package graph

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

// Sentinel errors for graph operations.
var (
	// ErrCycle indicates the dependency graph contains a cycle.
	ErrCycle = errors.New("dependency cycle detected")

	// ErrSelfDependency indicates a task depends on itself.
	ErrSelfDependency = errors.New("task cannot depend on itself")

	// ErrUnknownTask indicates a task id is not registered in the graph.
	ErrUnknownTask = errors.New("unknown task")
)

// TaskInput is the minimal task view the resolver needs at build time.
// DependsOn is the raw persisted form: "[1,2]", "1,2", or a bare "3".
type TaskInput struct {
	ID        string
	DependsOn string
}

// Resolver holds the dependency graph for one project.
// Not safe for concurrent use; the supervisor goroutine owns it.
type Resolver struct {
	deps       map[string][]string // task id → ordered dependency ids
	dependents map[string][]string // task id → tasks that depend on it
	completed  map[string]bool
}

// NewResolver creates an empty resolver.
func NewResolver() *Resolver {
	return &Resolver{
		deps:       make(map[string][]string),
		dependents: make(map[string][]string),
		completed:  make(map[string]bool),
	}
}

// Build clears state and registers every task with its parsed
// dependencies. Edges pointing outside the task set are kept with a
// warning — they permanently block the dependent until the graph is
// rebuilt. A cycle is a hard error naming the cycle path.
func (r *Resolver) Build(tasks []TaskInput) error {
	r.deps = make(map[string][]string, len(tasks))
	r.dependents = make(map[string][]string)
	r.completed = make(map[string]bool)

	for _, t := range tasks {
		if _, exists := r.deps[t.ID]; exists {
			return fmt.Errorf("duplicate task id %q", t.ID)
		}
		parsed := ParseDependsOn(t.DependsOn)
		deps := make([]string, 0, len(parsed))
		for _, dep := range parsed {
			if dep == t.ID {
				return fmt.Errorf("%w: %s", ErrSelfDependency, t.ID)
			}
			deps = append(deps, dep)
		}
		r.deps[t.ID] = deps
	}

	for id, deps := range r.deps {
		for _, dep := range deps {
			if _, known := r.deps[dep]; !known {
				slog.Warn("Dependency target not in task set; dependent will stay blocked",
					"task_id", id, "depends_on", dep)
				continue
			}
			r.dependents[dep] = append(r.dependents[dep], id)
		}
	}
	for dep := range r.dependents {
		sortTaskIDs(r.dependents[dep])
	}

	if cycle := r.findCycle(); cycle != nil {
		return fmt.Errorf("%w: %s", ErrCycle, strings.Join(cycle, " → "))
	}
	return nil
}

// Has reports whether the task id is registered.
func (r *Resolver) Has(id string) bool {
	_, ok := r.deps[id]
	return ok
}

// TaskIDs returns all registered task ids, sorted.
func (r *Resolver) TaskIDs() []string {
	ids := make([]string, 0, len(r.deps))
	for id := range r.deps {
		ids = append(ids, id)
	}
	sortTaskIDs(ids)
	return ids
}

// Dependencies returns the direct dependencies of a task.
func (r *Resolver) Dependencies(id string) []string {
	return append([]string(nil), r.deps[id]...)
}

// Dependents returns the tasks that directly depend on the given task.
func (r *Resolver) Dependents(id string) []string {
	return append([]string(nil), r.dependents[id]...)
}

// MarkCompleted records a task as completed without computing the
// newly-ready set. Unknown ids are ignored.
func (r *Resolver) MarkCompleted(id string) {
	if _, ok := r.deps[id]; ok {
		r.completed[id] = true
	}
}

// Ready returns the sorted list of task ids whose dependency set is a
// subset of the completed set. Completed tasks are excluded.
func (r *Resolver) Ready() []string {
	ready := make([]string, 0)
	for id, deps := range r.deps {
		if r.completed[id] {
			continue
		}
		if r.depsSatisfied(deps) {
			ready = append(ready, id)
		}
	}
	sortTaskIDs(ready)
	return ready
}

// Unblock marks the task completed and returns the subset of its
// direct dependents that became ready, sorted. Calling it again for
// the same task returns an empty set.
func (r *Resolver) Unblock(id string) []string {
	if r.completed[id] {
		return nil
	}
	r.MarkCompleted(id)

	newlyReady := make([]string, 0)
	for _, dep := range r.dependents[id] {
		if r.completed[dep] {
			continue
		}
		if r.depsSatisfied(r.deps[dep]) {
			newlyReady = append(newlyReady, dep)
		}
	}
	sortTaskIDs(newlyReady)
	return newlyReady
}

// ValidEdge reports whether adding the edge u→v (v depends on u) would
// keep the graph acyclic. A self-edge is an error; edges touching
// unregistered tasks are invalid.
func (r *Resolver) ValidEdge(u, v string) (bool, error) {
	if u == v {
		return false, fmt.Errorf("%w: %s", ErrSelfDependency, u)
	}
	if !r.Has(u) || !r.Has(v) {
		return false, nil
	}
	// Adding u→v creates a cycle iff v is already reachable from u
	// through existing dependency edges.
	return !r.reachable(u, v), nil
}

// TopologicalOrder returns a total order via Kahn's algorithm, or
// ok=false if the graph is cyclic. Ties break toward the lower task id.
func (r *Resolver) TopologicalOrder() ([]string, bool) {
	indegree := make(map[string]int, len(r.deps))
	for id, deps := range r.deps {
		count := 0
		for _, dep := range deps {
			if r.Has(dep) {
				count++
			}
		}
		indegree[id] = count
	}

	frontier := make([]string, 0)
	for id, deg := range indegree {
		if deg == 0 {
			frontier = append(frontier, id)
		}
	}
	sortTaskIDs(frontier)

	order := make([]string, 0, len(r.deps))
	for len(frontier) > 0 {
		id := frontier[0]
		frontier = frontier[1:]
		order = append(order, id)

		added := false
		for _, dep := range r.dependents[id] {
			indegree[dep]--
			if indegree[dep] == 0 {
				frontier = append(frontier, dep)
				added = true
			}
		}
		if added {
			sortTaskIDs(frontier)
		}
	}

	if len(order) != len(r.deps) {
		return nil, false
	}
	return order, true
}

// depsSatisfied reports whether every dependency is completed. Unknown
// dependency targets never satisfy, so the dependent stays blocked.
func (r *Resolver) depsSatisfied(deps []string) bool {
	for _, dep := range deps {
		if !r.completed[dep] {
			return false
		}
	}
	return true
}

// reachable reports whether `to` can be reached from `from` by walking
// dependency edges (from → its deps → ...).
func (r *Resolver) reachable(from, to string) bool {
	seen := make(map[string]bool)
	stack := []string{from}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if id == to {
			return true
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		stack = append(stack, r.deps[id]...)
	}
	return false
}

// findCycle runs DFS with a recursion stack and returns the cycle path
// as [a, b, ..., a], or nil if the graph is acyclic.
func (r *Resolver) findCycle() []string {
	const (
		white = 0 // unvisited
		grey  = 1 // on recursion stack
		black = 2 // done
	)
	color := make(map[string]int, len(r.deps))
	parent := make(map[string]string)

	var cycle []string
	var visit func(id string) bool
	visit = func(id string) bool {
		color[id] = grey
		for _, dep := range r.deps[id] {
			if !r.Has(dep) {
				continue
			}
			switch color[dep] {
			case white:
				parent[dep] = id
				if visit(dep) {
					return true
				}
			case grey:
				// Walk back from id to dep to reconstruct the cycle,
				// then reverse into visit order and close the loop.
				path := make([]string, 0, 4)
				for cur := id; cur != dep; cur = parent[cur] {
					path = append(path, cur)
				}
				path = append(path, dep)
				for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
					path[i], path[j] = path[j], path[i]
				}
				cycle = append(path, dep)
				return true
			}
		}
		color[id] = black
		return false
	}

	ids := r.TaskIDs()
	for _, id := range ids {
		if color[id] == white {
			if visit(id) {
				return cycle
			}
		}
	}
	return nil
}

// sortTaskIDs sorts ids treating dotted numbers numerically, so "2.10"
// sorts after "2.9" and plain strings fall back to lexicographic order.
func sortTaskIDs(ids []string) {
	sort.Slice(ids, func(i, j int) bool {
		return CompareTaskNumbers(ids[i], ids[j]) < 0
	})
}
