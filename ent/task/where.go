// Code generated by ent, DO NOT EDIT.

package task

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/frankbria/codeframe/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldProjectID, v))
}

// IssueID applies equality check predicate on the "issue_id" field. It's identical to IssueIDEQ.
func IssueID(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldIssueID, v))
}

// TaskNumber applies equality check predicate on the "task_number" field. It's identical to TaskNumberEQ.
func TaskNumber(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTaskNumber, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDescription, v))
}

// DependsOn applies equality check predicate on the "depends_on" field. It's identical to DependsOnEQ.
func DependsOn(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDependsOn, v))
}

// CanParallelize applies equality check predicate on the "can_parallelize" field. It's identical to CanParallelizeEQ.
func CanParallelize(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCanParallelize, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPriority, v))
}

// EstimatedHours applies equality check predicate on the "estimated_hours" field. It's identical to EstimatedHoursEQ.
func EstimatedHours(v float64) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldEstimatedHours, v))
}

// ComplexityScore applies equality check predicate on the "complexity_score" field. It's identical to ComplexityScoreEQ.
func ComplexityScore(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldComplexityScore, v))
}

// AssignedAgent applies equality check predicate on the "assigned_agent" field. It's identical to AssignedAgentEQ.
func AssignedAgent(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldAssignedAgent, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCategory, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldUpdatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCompletedAt, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldProjectID, v))
}

// IssueIDEQ applies the EQ predicate on the "issue_id" field.
func IssueIDEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldIssueID, v))
}

// IssueIDNEQ applies the NEQ predicate on the "issue_id" field.
func IssueIDNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldIssueID, v))
}

// IssueIDIn applies the In predicate on the "issue_id" field.
func IssueIDIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldIssueID, vs...))
}

// IssueIDNotIn applies the NotIn predicate on the "issue_id" field.
func IssueIDNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldIssueID, vs...))
}

// IssueIDGT applies the GT predicate on the "issue_id" field.
func IssueIDGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldIssueID, v))
}

// IssueIDGTE applies the GTE predicate on the "issue_id" field.
func IssueIDGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldIssueID, v))
}

// IssueIDLT applies the LT predicate on the "issue_id" field.
func IssueIDLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldIssueID, v))
}

// IssueIDLTE applies the LTE predicate on the "issue_id" field.
func IssueIDLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldIssueID, v))
}

// IssueIDContains applies the Contains predicate on the "issue_id" field.
func IssueIDContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldIssueID, v))
}

// IssueIDHasPrefix applies the HasPrefix predicate on the "issue_id" field.
func IssueIDHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldIssueID, v))
}

// IssueIDHasSuffix applies the HasSuffix predicate on the "issue_id" field.
func IssueIDHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldIssueID, v))
}

// IssueIDEqualFold applies the EqualFold predicate on the "issue_id" field.
func IssueIDEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldIssueID, v))
}

// IssueIDContainsFold applies the ContainsFold predicate on the "issue_id" field.
func IssueIDContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldIssueID, v))
}

// TaskNumberEQ applies the EQ predicate on the "task_number" field.
func TaskNumberEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTaskNumber, v))
}

// TaskNumberNEQ applies the NEQ predicate on the "task_number" field.
func TaskNumberNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldTaskNumber, v))
}

// TaskNumberIn applies the In predicate on the "task_number" field.
func TaskNumberIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldTaskNumber, vs...))
}

// TaskNumberNotIn applies the NotIn predicate on the "task_number" field.
func TaskNumberNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldTaskNumber, vs...))
}

// TaskNumberGT applies the GT predicate on the "task_number" field.
func TaskNumberGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldTaskNumber, v))
}

// TaskNumberGTE applies the GTE predicate on the "task_number" field.
func TaskNumberGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldTaskNumber, v))
}

// TaskNumberLT applies the LT predicate on the "task_number" field.
func TaskNumberLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldTaskNumber, v))
}

// TaskNumberLTE applies the LTE predicate on the "task_number" field.
func TaskNumberLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldTaskNumber, v))
}

// TaskNumberContains applies the Contains predicate on the "task_number" field.
func TaskNumberContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldTaskNumber, v))
}

// TaskNumberHasPrefix applies the HasPrefix predicate on the "task_number" field.
func TaskNumberHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldTaskNumber, v))
}

// TaskNumberHasSuffix applies the HasSuffix predicate on the "task_number" field.
func TaskNumberHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldTaskNumber, v))
}

// TaskNumberEqualFold applies the EqualFold predicate on the "task_number" field.
func TaskNumberEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldTaskNumber, v))
}

// TaskNumberContainsFold applies the ContainsFold predicate on the "task_number" field.
func TaskNumberContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldTaskNumber, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldDescription, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldStatus, vs...))
}

// DependsOnEQ applies the EQ predicate on the "depends_on" field.
func DependsOnEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDependsOn, v))
}

// DependsOnNEQ applies the NEQ predicate on the "depends_on" field.
func DependsOnNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldDependsOn, v))
}

// DependsOnIn applies the In predicate on the "depends_on" field.
func DependsOnIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldDependsOn, vs...))
}

// DependsOnNotIn applies the NotIn predicate on the "depends_on" field.
func DependsOnNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldDependsOn, vs...))
}

// DependsOnGT applies the GT predicate on the "depends_on" field.
func DependsOnGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldDependsOn, v))
}

// DependsOnGTE applies the GTE predicate on the "depends_on" field.
func DependsOnGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldDependsOn, v))
}

// DependsOnLT applies the LT predicate on the "depends_on" field.
func DependsOnLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldDependsOn, v))
}

// DependsOnLTE applies the LTE predicate on the "depends_on" field.
func DependsOnLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldDependsOn, v))
}

// DependsOnContains applies the Contains predicate on the "depends_on" field.
func DependsOnContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldDependsOn, v))
}

// DependsOnHasPrefix applies the HasPrefix predicate on the "depends_on" field.
func DependsOnHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldDependsOn, v))
}

// DependsOnHasSuffix applies the HasSuffix predicate on the "depends_on" field.
func DependsOnHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldDependsOn, v))
}

// DependsOnIsNil applies the IsNil predicate on the "depends_on" field.
func DependsOnIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldDependsOn))
}

// DependsOnNotNil applies the NotNil predicate on the "depends_on" field.
func DependsOnNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldDependsOn))
}

// DependsOnEqualFold applies the EqualFold predicate on the "depends_on" field.
func DependsOnEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldDependsOn, v))
}

// DependsOnContainsFold applies the ContainsFold predicate on the "depends_on" field.
func DependsOnContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldDependsOn, v))
}

// CanParallelizeEQ applies the EQ predicate on the "can_parallelize" field.
func CanParallelizeEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCanParallelize, v))
}

// CanParallelizeNEQ applies the NEQ predicate on the "can_parallelize" field.
func CanParallelizeNEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCanParallelize, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldPriority, v))
}

// EstimatedHoursEQ applies the EQ predicate on the "estimated_hours" field.
func EstimatedHoursEQ(v float64) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldEstimatedHours, v))
}

// EstimatedHoursNEQ applies the NEQ predicate on the "estimated_hours" field.
func EstimatedHoursNEQ(v float64) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldEstimatedHours, v))
}

// EstimatedHoursIn applies the In predicate on the "estimated_hours" field.
func EstimatedHoursIn(vs ...float64) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldEstimatedHours, vs...))
}

// EstimatedHoursNotIn applies the NotIn predicate on the "estimated_hours" field.
func EstimatedHoursNotIn(vs ...float64) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldEstimatedHours, vs...))
}

// EstimatedHoursGT applies the GT predicate on the "estimated_hours" field.
func EstimatedHoursGT(v float64) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldEstimatedHours, v))
}

// EstimatedHoursGTE applies the GTE predicate on the "estimated_hours" field.
func EstimatedHoursGTE(v float64) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldEstimatedHours, v))
}

// EstimatedHoursLT applies the LT predicate on the "estimated_hours" field.
func EstimatedHoursLT(v float64) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldEstimatedHours, v))
}

// EstimatedHoursLTE applies the LTE predicate on the "estimated_hours" field.
func EstimatedHoursLTE(v float64) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldEstimatedHours, v))
}

// ComplexityScoreEQ applies the EQ predicate on the "complexity_score" field.
func ComplexityScoreEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldComplexityScore, v))
}

// ComplexityScoreNEQ applies the NEQ predicate on the "complexity_score" field.
func ComplexityScoreNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldComplexityScore, v))
}

// ComplexityScoreIn applies the In predicate on the "complexity_score" field.
func ComplexityScoreIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldComplexityScore, vs...))
}

// ComplexityScoreNotIn applies the NotIn predicate on the "complexity_score" field.
func ComplexityScoreNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldComplexityScore, vs...))
}

// ComplexityScoreGT applies the GT predicate on the "complexity_score" field.
func ComplexityScoreGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldComplexityScore, v))
}

// ComplexityScoreGTE applies the GTE predicate on the "complexity_score" field.
func ComplexityScoreGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldComplexityScore, v))
}

// ComplexityScoreLT applies the LT predicate on the "complexity_score" field.
func ComplexityScoreLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldComplexityScore, v))
}

// ComplexityScoreLTE applies the LTE predicate on the "complexity_score" field.
func ComplexityScoreLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldComplexityScore, v))
}

// UncertaintyLevelEQ applies the EQ predicate on the "uncertainty_level" field.
func UncertaintyLevelEQ(v UncertaintyLevel) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldUncertaintyLevel, v))
}

// UncertaintyLevelNEQ applies the NEQ predicate on the "uncertainty_level" field.
func UncertaintyLevelNEQ(v UncertaintyLevel) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldUncertaintyLevel, v))
}

// UncertaintyLevelIn applies the In predicate on the "uncertainty_level" field.
func UncertaintyLevelIn(vs ...UncertaintyLevel) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldUncertaintyLevel, vs...))
}

// UncertaintyLevelNotIn applies the NotIn predicate on the "uncertainty_level" field.
func UncertaintyLevelNotIn(vs ...UncertaintyLevel) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldUncertaintyLevel, vs...))
}

// InterventionContextIsNil applies the IsNil predicate on the "intervention_context" field.
func InterventionContextIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldInterventionContext))
}

// InterventionContextNotNil applies the NotNil predicate on the "intervention_context" field.
func InterventionContextNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldInterventionContext))
}

// AssignedAgentEQ applies the EQ predicate on the "assigned_agent" field.
func AssignedAgentEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldAssignedAgent, v))
}

// AssignedAgentNEQ applies the NEQ predicate on the "assigned_agent" field.
func AssignedAgentNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldAssignedAgent, v))
}

// AssignedAgentIn applies the In predicate on the "assigned_agent" field.
func AssignedAgentIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldAssignedAgent, vs...))
}

// AssignedAgentNotIn applies the NotIn predicate on the "assigned_agent" field.
func AssignedAgentNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldAssignedAgent, vs...))
}

// AssignedAgentGT applies the GT predicate on the "assigned_agent" field.
func AssignedAgentGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldAssignedAgent, v))
}

// AssignedAgentGTE applies the GTE predicate on the "assigned_agent" field.
func AssignedAgentGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldAssignedAgent, v))
}

// AssignedAgentLT applies the LT predicate on the "assigned_agent" field.
func AssignedAgentLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldAssignedAgent, v))
}

// AssignedAgentLTE applies the LTE predicate on the "assigned_agent" field.
func AssignedAgentLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldAssignedAgent, v))
}

// AssignedAgentContains applies the Contains predicate on the "assigned_agent" field.
func AssignedAgentContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldAssignedAgent, v))
}

// AssignedAgentHasPrefix applies the HasPrefix predicate on the "assigned_agent" field.
func AssignedAgentHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldAssignedAgent, v))
}

// AssignedAgentHasSuffix applies the HasSuffix predicate on the "assigned_agent" field.
func AssignedAgentHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldAssignedAgent, v))
}

// AssignedAgentIsNil applies the IsNil predicate on the "assigned_agent" field.
func AssignedAgentIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldAssignedAgent))
}

// AssignedAgentNotNil applies the NotNil predicate on the "assigned_agent" field.
func AssignedAgentNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldAssignedAgent))
}

// AssignedAgentEqualFold applies the EqualFold predicate on the "assigned_agent" field.
func AssignedAgentEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldAssignedAgent, v))
}

// AssignedAgentContainsFold applies the ContainsFold predicate on the "assigned_agent" field.
func AssignedAgentContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldAssignedAgent, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryIsNil applies the IsNil predicate on the "category" field.
func CategoryIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldCategory))
}

// CategoryNotNil applies the NotNil predicate on the "category" field.
func CategoryNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldCategory))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldCategory, v))
}

// FilesChangedIsNil applies the IsNil predicate on the "files_changed" field.
func FilesChangedIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldFilesChanged))
}

// FilesChangedNotNil applies the NotNil predicate on the "files_changed" field.
func FilesChangedNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldFilesChanged))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldUpdatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldCompletedAt))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasIssue applies the HasEdge predicate on the "issue" edge.
func HasIssue() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, IssueTable, IssueColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasIssueWith applies the HasEdge predicate on the "issue" edge with a given conditions (other predicates).
func HasIssueWith(preds ...predicate.Issue) predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := newIssueStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Task) predicate.Task {
	return predicate.Task(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Task) predicate.Task {
	return predicate.Task(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Task) predicate.Task {
	return predicate.Task(sql.NotPredicates(p))
}
