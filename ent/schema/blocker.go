package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Blocker holds the schema definition for the Blocker entity.
// A blocker is a persisted pause reason awaiting a human or
// asynchronous answer. SYNC blockers halt their task; ASYNC blockers
// let the task continue but must eventually be answered.
type Blocker struct {
	ent.Schema
}

// Fields of the Blocker.
func (Blocker) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("blocker_id").
			Unique().
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.Enum("kind").
			Values("sync", "async"),
		field.Text("question").
			Comment("May embed discovery resume metadata (session:<id> progress:<n>/<m>)"),
		field.String("task_id").
			Optional().
			Nillable(),
		field.String("session_id").
			Optional().
			Nillable(),
		field.Text("answer").
			Optional().
			Nillable(),
		field.JSON("resume_metadata", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("answered_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Blocker.
func (Blocker) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("blockers").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Blocker.
func (Blocker) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "created_at"),
		index.Fields("task_id"),
	}
}
