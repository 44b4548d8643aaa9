package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Project holds the schema definition for the Project entity.
// A project is the root container for issues, tasks, blockers, and memories.
type Project struct {
	ent.Schema
}

// Fields of the Project.
func (Project) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("project_id").
			Unique().
			Immutable(),
		field.String("name").
			Comment("Human-readable project name"),
		field.Enum("phase").
			Values("discovery", "planning", "active", "review", "complete").
			Default("discovery").
			Comment("Lifecycle phase; transitions enforced by ProjectService"),
		field.String("workspace_path").
			Optional().
			Comment("Filesystem root of the managed workspace"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Project.
func (Project) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("issues", Issue.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("tasks", Task.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("blockers", Blocker.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("memories", Memory.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("token_usages", TokenUsage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Project.
func (Project) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("phase"),
	}
}
