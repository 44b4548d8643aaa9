// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BlockersColumns holds the columns for the "blockers" table.
	BlockersColumns = []*schema.Column{
		{Name: "blocker_id", Type: field.TypeString, Unique: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"sync", "async"}},
		{Name: "question", Type: field.TypeString, Size: 2147483647},
		{Name: "task_id", Type: field.TypeString, Nullable: true},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "answer", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "resume_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "answered_at", Type: field.TypeTime, Nullable: true},
		{Name: "project_id", Type: field.TypeString},
	}
	// BlockersTable holds the schema information for the "blockers" table.
	BlockersTable = &schema.Table{
		Name:       "blockers",
		Columns:    BlockersColumns,
		PrimaryKey: []*schema.Column{BlockersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "blockers_projects_blockers",
				Columns:    []*schema.Column{BlockersColumns[9]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "blocker_project_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{BlockersColumns[9], BlockersColumns[7]},
			},
			{
				Name:    "blocker_task_id",
				Unique:  false,
				Columns: []*schema.Column{BlockersColumns[3]},
			},
		},
	}
	// IssuesColumns holds the columns for the "issues" table.
	IssuesColumns = []*schema.Column{
		{Name: "issue_id", Type: field.TypeString, Unique: true},
		{Name: "issue_number", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "priority", Type: field.TypeInt, Default: 3},
		{Name: "workflow_step", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeString},
	}
	// IssuesTable holds the schema information for the "issues" table.
	IssuesTable = &schema.Table{
		Name:       "issues",
		Columns:    IssuesColumns,
		PrimaryKey: []*schema.Column{IssuesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "issues_projects_issues",
				Columns:    []*schema.Column{IssuesColumns[8]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "issue_project_id_issue_number",
				Unique:  true,
				Columns: []*schema.Column{IssuesColumns[8], IssuesColumns[1]},
			},
		},
	}
	// MemoriesColumns holds the columns for the "memories" table.
	MemoriesColumns = []*schema.Column{
		{Name: "memory_id", Type: field.TypeString, Unique: true},
		{Name: "category", Type: field.TypeEnum, Enums: []string{"hot", "warm", "cold"}},
		{Name: "key", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeString},
	}
	// MemoriesTable holds the schema information for the "memories" table.
	MemoriesTable = &schema.Table{
		Name:       "memories",
		Columns:    MemoriesColumns,
		PrimaryKey: []*schema.Column{MemoriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "memories_projects_memories",
				Columns:    []*schema.Column{MemoriesColumns[6]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "memory_project_id_category_key",
				Unique:  true,
				Columns: []*schema.Column{MemoriesColumns[6], MemoriesColumns[1], MemoriesColumns[2]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "project_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "phase", Type: field.TypeEnum, Enums: []string{"discovery", "planning", "active", "review", "complete"}, Default: "discovery"},
		{Name: "workspace_path", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "project_phase",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[2]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "task_number", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "ready", "in_progress", "blocked", "completed", "failed", "abandoned"}, Default: "pending"},
		{Name: "depends_on", Type: field.TypeString, Nullable: true},
		{Name: "can_parallelize", Type: field.TypeBool, Default: false},
		{Name: "priority", Type: field.TypeInt, Default: 3},
		{Name: "estimated_hours", Type: field.TypeFloat64, Default: 1},
		{Name: "complexity_score", Type: field.TypeInt, Default: 3},
		{Name: "uncertainty_level", Type: field.TypeEnum, Enums: []string{"low", "medium", "high"}, Default: "medium"},
		{Name: "intervention_context", Type: field.TypeJSON, Nullable: true},
		{Name: "assigned_agent", Type: field.TypeString, Nullable: true},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "files_changed", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "issue_id", Type: field.TypeString},
		{Name: "project_id", Type: field.TypeString},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tasks_issues_tasks",
				Columns:    []*schema.Column{TasksColumns[18]},
				RefColumns: []*schema.Column{IssuesColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "tasks_projects_tasks",
				Columns:    []*schema.Column{TasksColumns[19]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "task_project_id_task_number",
				Unique:  true,
				Columns: []*schema.Column{TasksColumns[19], TasksColumns[1]},
			},
			{
				Name:    "task_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[4]},
			},
			{
				Name:    "task_project_id_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[19], TasksColumns[4]},
			},
		},
	}
	// TokenUsagesColumns holds the columns for the "token_usages" table.
	TokenUsagesColumns = []*schema.Column{
		{Name: "usage_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "task_id", Type: field.TypeString, Nullable: true},
		{Name: "agent_id", Type: field.TypeString, Nullable: true},
		{Name: "model", Type: field.TypeString},
		{Name: "call_type", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt},
		{Name: "output_tokens", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeString},
	}
	// TokenUsagesTable holds the schema information for the "token_usages" table.
	TokenUsagesTable = &schema.Table{
		Name:       "token_usages",
		Columns:    TokenUsagesColumns,
		PrimaryKey: []*schema.Column{TokenUsagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "token_usages_projects_token_usages",
				Columns:    []*schema.Column{TokenUsagesColumns[9]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "tokenusage_project_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{TokenUsagesColumns[9], TokenUsagesColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BlockersTable,
		IssuesTable,
		MemoriesTable,
		ProjectsTable,
		TasksTable,
		TokenUsagesTable,
	}
)

func init() {
	BlockersTable.ForeignKeys[0].RefTable = ProjectsTable
	IssuesTable.ForeignKeys[0].RefTable = ProjectsTable
	MemoriesTable.ForeignKeys[0].RefTable = ProjectsTable
	TasksTable.ForeignKeys[0].RefTable = IssuesTable
	TasksTable.ForeignKeys[1].RefTable = ProjectsTable
	TokenUsagesTable.ForeignKeys[0].RefTable = ProjectsTable
}
