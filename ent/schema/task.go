package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity.
// A task is the atomic unit of agent work. Tasks are never deleted
// once scheduled; abandonment is a status, not a removal.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.String("issue_id").
			Immutable(),
		field.String("task_number").
			Comment("Pattern <issue>.<idx>, unique per project"),
		field.String("title"),
		field.Text("description").
			Optional(),
		field.Enum("status").
			Values("pending", "ready", "in_progress", "blocked", "completed", "failed", "abandoned").
			Default("pending"),
		field.String("depends_on").
			Optional().
			Comment("Comma-separated task numbers (canonical persisted form)"),
		field.Bool("can_parallelize").
			Default(false).
			Comment("Always false for tasks within one issue"),
		field.Int("priority").
			Default(3).
			Comment("Inherited from parent issue"),
		field.Float("estimated_hours").
			Default(1.0),
		field.Int("complexity_score").
			Default(3).
			Comment("1-5"),
		field.Enum("uncertainty_level").
			Values("low", "medium", "high").
			Default("medium"),
		field.JSON("intervention_context", map[string]interface{}{}).
			Optional().
			Comment("Opaque blob written by the supervisor, read by the next dispatch"),
		field.String("assigned_agent").
			Optional().
			Nillable(),
		field.String("category").
			Optional().
			Comment("Task category resolved by the gate classifier"),
		field.JSON("files_changed", []string{}).
			Optional().
			Comment("Files touched by completed attempts"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("tasks").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
		edge.From("issue", Issue.Type).
			Ref("tasks").
			Field("issue_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "task_number").
			Unique(),
		index.Fields("status"),
		index.Fields("project_id", "status"),
	}
}
