package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildResolver(t *testing.T, tasks []TaskInput) *Resolver {
	t.Helper()
	r := NewResolver()
	require.NoError(t, r.Build(tasks))
	return r
}

func diamond(t *testing.T) *Resolver {
	// B and C depend on A; D depends on both.
	return buildResolver(t, []TaskInput{
		{ID: "A"},
		{ID: "B", DependsOn: "A"},
		{ID: "C", DependsOn: "A"},
		{ID: "D", DependsOn: "B,C"},
	})
}

func TestBuildRejectsCycle(t *testing.T) {
	r := NewResolver()
	err := r.Build([]TaskInput{
		{ID: "1", DependsOn: "2"},
		{ID: "2", DependsOn: "3"},
		{ID: "3", DependsOn: "1"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCycle)
	// The cycle path (or a rotation of it) must be printed.
	assert.Regexp(t, `(1 → 2 → 3 → 1|2 → 3 → 1 → 2|3 → 1 → 2 → 3)`, err.Error())
}

func TestBuildRejectsSelfLoop(t *testing.T) {
	r := NewResolver()
	err := r.Build([]TaskInput{{ID: "1", DependsOn: "1"}})
	assert.ErrorIs(t, err, ErrSelfDependency)
}

func TestBuildRejectsDuplicateID(t *testing.T) {
	r := NewResolver()
	err := r.Build([]TaskInput{{ID: "1"}, {ID: "1"}})
	assert.Error(t, err)
}

func TestBuildKeepsUnknownDependencyEdge(t *testing.T) {
	r := buildResolver(t, []TaskInput{
		{ID: "1", DependsOn: "99"},
		{ID: "2"},
	})
	// Task 1 can never become ready: its dependency is outside the set.
	assert.Equal(t, []string{"2"}, r.Ready())
	r.MarkCompleted("2")
	assert.Empty(t, r.Ready())
}

func TestReadyAndUnblock(t *testing.T) {
	r := diamond(t)

	assert.Equal(t, []string{"A"}, r.Ready())

	newly := r.Unblock("A")
	assert.Equal(t, []string{"B", "C"}, newly)
	assert.Equal(t, []string{"B", "C"}, r.Ready())

	assert.Empty(t, r.Unblock("B"))
	newly = r.Unblock("C")
	assert.Equal(t, []string{"D"}, newly)
	assert.Equal(t, []string{"D"}, r.Ready())
}

func TestUnblockIdempotent(t *testing.T) {
	r := diamond(t)
	first := r.Unblock("A")
	assert.Equal(t, []string{"B", "C"}, first)
	assert.Empty(t, r.Unblock("A"))
}

func TestTopologicalOrderLinearChain(t *testing.T) {
	r := buildResolver(t, []TaskInput{
		{ID: "1"},
		{ID: "2", DependsOn: "1"},
		{ID: "3", DependsOn: "2"},
		{ID: "4", DependsOn: "3"},
	})
	order, ok := r.TopologicalOrder()
	require.True(t, ok)
	assert.Equal(t, []string{"1", "2", "3", "4"}, order)
}

func TestTopologicalOrderIsLinearExtension(t *testing.T) {
	r := diamond(t)
	order, ok := r.TopologicalOrder()
	require.True(t, ok)

	pos := make(map[string]int, len(order))
	for i, id := range order {
		pos[id] = i
	}
	for _, id := range r.TaskIDs() {
		for _, dep := range r.Dependencies(id) {
			assert.Less(t, pos[dep], pos[id], "%s must come after %s", id, dep)
		}
	}
}

func TestValidEdge(t *testing.T) {
	r := diamond(t)

	ok, err := r.ValidEdge("D", "A")
	require.NoError(t, err)
	assert.False(t, ok, "A→...→D exists, so D→A would close a cycle")

	ok, err = r.ValidEdge("B", "C")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = r.ValidEdge("A", "A")
	assert.ErrorIs(t, err, ErrSelfDependency)

	ok, err = r.ValidEdge("A", "nope")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestParseDependsOn(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty", "", nil},
		{"bare single", "3", []string{"3"}},
		{"comma separated", "1,2", []string{"1", "2"}},
		{"bracketed", "[1, 2]", []string{"1", "2"}},
		{"bracketed with quotes", `["1.1", "1.2"]`, []string{"1.1", "1.2"}},
		{"dotted numbers", "2.1,2.2", []string{"2.1", "2.2"}},
		{"duplicates collapsed", "1,1,2", []string{"1", "2"}},
		{"malformed items skipped", "1,abc,2", []string{"1", "2"}},
		{"unterminated bracket", "[1,2", nil},
		{"whitespace only", "   ", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDependsOn(tt.raw))
		})
	}
}

func TestCompareTaskNumbers(t *testing.T) {
	assert.Negative(t, CompareTaskNumbers("2.9", "2.10"))
	assert.Positive(t, CompareTaskNumbers("10", "9"))
	assert.Zero(t, CompareTaskNumbers("1.2", "1.2"))
	assert.Negative(t, CompareTaskNumbers("1", "1.1"))
}
