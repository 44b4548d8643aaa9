// Code generated by ent, DO NOT EDIT.

package task

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the task type in the database.
	Label = "task"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "task_id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldIssueID holds the string denoting the issue_id field in the database.
	FieldIssueID = "issue_id"
	// FieldTaskNumber holds the string denoting the task_number field in the database.
	FieldTaskNumber = "task_number"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldDependsOn holds the string denoting the depends_on field in the database.
	FieldDependsOn = "depends_on"
	// FieldCanParallelize holds the string denoting the can_parallelize field in the database.
	FieldCanParallelize = "can_parallelize"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldEstimatedHours holds the string denoting the estimated_hours field in the database.
	FieldEstimatedHours = "estimated_hours"
	// FieldComplexityScore holds the string denoting the complexity_score field in the database.
	FieldComplexityScore = "complexity_score"
	// FieldUncertaintyLevel holds the string denoting the uncertainty_level field in the database.
	FieldUncertaintyLevel = "uncertainty_level"
	// FieldInterventionContext holds the string denoting the intervention_context field in the database.
	FieldInterventionContext = "intervention_context"
	// FieldAssignedAgent holds the string denoting the assigned_agent field in the database.
	FieldAssignedAgent = "assigned_agent"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldFilesChanged holds the string denoting the files_changed field in the database.
	FieldFilesChanged = "files_changed"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// EdgeIssue holds the string denoting the issue edge name in mutations.
	EdgeIssue = "issue"
	// ProjectFieldID holds the string denoting the ID field of the Project.
	ProjectFieldID = "project_id"
	// IssueFieldID holds the string denoting the ID field of the Issue.
	IssueFieldID = "issue_id"
	// Table holds the table name of the task in the database.
	Table = "tasks"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "tasks"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "project_id"
	// IssueTable is the table that holds the issue relation/edge.
	IssueTable = "tasks"
	// IssueInverseTable is the table name for the Issue entity.
	// It exists in this package in order to avoid circular dependency with the "issue" package.
	IssueInverseTable = "issues"
	// IssueColumn is the table column denoting the issue relation/edge.
	IssueColumn = "issue_id"
)

// Columns holds all SQL columns for task fields.
var Columns = []string{
	FieldID,
	FieldProjectID,
	FieldIssueID,
	FieldTaskNumber,
	FieldTitle,
	FieldDescription,
	FieldStatus,
	FieldDependsOn,
	FieldCanParallelize,
	FieldPriority,
	FieldEstimatedHours,
	FieldComplexityScore,
	FieldUncertaintyLevel,
	FieldInterventionContext,
	FieldAssignedAgent,
	FieldCategory,
	FieldFilesChanged,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldCompletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCanParallelize holds the default value on creation for the "can_parallelize" field.
	DefaultCanParallelize bool
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority int
	// DefaultEstimatedHours holds the default value on creation for the "estimated_hours" field.
	DefaultEstimatedHours float64
	// DefaultComplexityScore holds the default value on creation for the "complexity_score" field.
	DefaultComplexityScore int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending    Status = "pending"
	StatusReady      Status = "ready"
	StatusInProgress Status = "in_progress"
	StatusBlocked    Status = "blocked"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusAbandoned  Status = "abandoned"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusReady, StatusInProgress, StatusBlocked, StatusCompleted, StatusFailed, StatusAbandoned:
		return nil
	default:
		return fmt.Errorf("task: invalid enum value for status field: %q", s)
	}
}

// UncertaintyLevel defines the type for the "uncertainty_level" enum field.
type UncertaintyLevel string

// UncertaintyLevelMedium is the default value of the UncertaintyLevel enum.
const DefaultUncertaintyLevel = UncertaintyLevelMedium

// UncertaintyLevel values.
const (
	UncertaintyLevelLow    UncertaintyLevel = "low"
	UncertaintyLevelMedium UncertaintyLevel = "medium"
	UncertaintyLevelHigh   UncertaintyLevel = "high"
)

func (ul UncertaintyLevel) String() string {
	return string(ul)
}

// UncertaintyLevelValidator is a validator for the "uncertainty_level" field enum values. It is called by the builders before save.
func UncertaintyLevelValidator(ul UncertaintyLevel) error {
	switch ul {
	case UncertaintyLevelLow, UncertaintyLevelMedium, UncertaintyLevelHigh:
		return nil
	default:
		return fmt.Errorf("task: invalid enum value for uncertainty_level field: %q", ul)
	}
}

// OrderOption defines the ordering options for the Task queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByIssueID orders the results by the issue_id field.
func ByIssueID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIssueID, opts...).ToFunc()
}

// ByTaskNumber orders the results by the task_number field.
func ByTaskNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskNumber, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByDependsOn orders the results by the depends_on field.
func ByDependsOn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDependsOn, opts...).ToFunc()
}

// ByCanParallelize orders the results by the can_parallelize field.
func ByCanParallelize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCanParallelize, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByEstimatedHours orders the results by the estimated_hours field.
func ByEstimatedHours(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedHours, opts...).ToFunc()
}

// ByComplexityScore orders the results by the complexity_score field.
func ByComplexityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComplexityScore, opts...).ToFunc()
}

// ByUncertaintyLevel orders the results by the uncertainty_level field.
func ByUncertaintyLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUncertaintyLevel, opts...).ToFunc()
}

// ByAssignedAgent orders the results by the assigned_agent field.
func ByAssignedAgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignedAgent, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByProjectField orders the results by project field.
func ByProjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProjectStep(), sql.OrderByField(field, opts...))
	}
}

// ByIssueField orders the results by issue field.
func ByIssueField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newIssueStep(), sql.OrderByField(field, opts...))
	}
}
func newProjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectInverseTable, ProjectFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
	)
}
func newIssueStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(IssueInverseTable, IssueFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, IssueTable, IssueColumn),
	)
}
