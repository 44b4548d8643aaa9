package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TokenUsage holds the schema definition for the TokenUsage entity.
// One row per LLM call, so totals can be aggregated by project.
type TokenUsage struct {
	ent.Schema
}

// Fields of the TokenUsage.
func (TokenUsage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("usage_id").
			Unique().
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.String("session_id").
			Optional().
			Nillable(),
		field.String("task_id").
			Optional().
			Nillable(),
		field.String("agent_id").
			Optional().
			Nillable(),
		field.String("model"),
		field.String("call_type").
			Comment("e.g. 'task_execution', 'decomposition', 'review'"),
		field.Int("input_tokens"),
		field.Int("output_tokens"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TokenUsage.
func (TokenUsage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("token_usages").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the TokenUsage.
func (TokenUsage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "created_at"),
	}
}
