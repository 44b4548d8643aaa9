// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Blocker is the predicate function for blocker builders.
type Blocker func(*sql.Selector)

// Issue is the predicate function for issue builders.
type Issue func(*sql.Selector)

// Memory is the predicate function for memory builders.
type Memory func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// TokenUsage is the predicate function for tokenusage builders.
type TokenUsage func(*sql.Selector)
