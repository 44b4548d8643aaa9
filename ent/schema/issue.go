package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Issue holds the schema definition for the Issue entity.
// An issue is a feature-level unit decomposed into 3-8 linearly
// dependent tasks before scheduling.
type Issue struct {
	ent.Schema
}

// Fields of the Issue.
func (Issue) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("issue_id").
			Unique().
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.String("issue_number").
			Comment("Hierarchical number, e.g. '2.1'"),
		field.String("title"),
		field.Text("description").
			Optional(),
		field.Int("priority").
			Default(3).
			Comment("1 = highest"),
		field.String("workflow_step").
			Optional().
			Comment("Current step in the delivery workflow"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Issue.
func (Issue) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("issues").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
		edge.To("tasks", Task.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Issue.
func (Issue) Indexes() []ent.Index {
	return []ent.Index{
		// Issue numbers are unique within a project
		index.Fields("project_id", "issue_number").
			Unique(),
	}
}
