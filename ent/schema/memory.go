package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Memory holds the schema definition for the Memory entity.
// Memories carry project context into agent prompts: HOT items are
// always included, WARM items are included up to a bounded slice.
type Memory struct {
	ent.Schema
}

// Fields of the Memory.
func (Memory) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("memory_id").
			Unique().
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.Enum("category").
			Values("hot", "warm", "cold"),
		field.String("key"),
		field.Text("content"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Memory.
func (Memory) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("memories").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Memory.
func (Memory) Indexes() []ent.Index {
	return []ent.Index{
		// Upsert key: one entry per (project, category, key)
		index.Fields("project_id", "category", "key").
			Unique(),
	}
}
