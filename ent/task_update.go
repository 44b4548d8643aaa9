// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/frankbria/codeframe/ent/predicate"
	"github.com/frankbria/codeframe/ent/task"
)

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTaskNumber sets the "task_number" field.
func (_u *TaskUpdate) SetTaskNumber(v string) *TaskUpdate {
	_u.mutation.SetTaskNumber(v)
	return _u
}

// SetNillableTaskNumber sets the "task_number" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableTaskNumber(v *string) *TaskUpdate {
	if v != nil {
		_u.SetTaskNumber(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *TaskUpdate) SetTitle(v string) *TaskUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableTitle(v *string) *TaskUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskUpdate) SetDescription(v string) *TaskUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableDescription(v *string) *TaskUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TaskUpdate) ClearDescription() *TaskUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdate) SetStatus(v task.Status) *TaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStatus(v *task.Status) *TaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDependsOn sets the "depends_on" field.
func (_u *TaskUpdate) SetDependsOn(v string) *TaskUpdate {
	_u.mutation.SetDependsOn(v)
	return _u
}

// SetNillableDependsOn sets the "depends_on" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableDependsOn(v *string) *TaskUpdate {
	if v != nil {
		_u.SetDependsOn(*v)
	}
	return _u
}

// ClearDependsOn clears the value of the "depends_on" field.
func (_u *TaskUpdate) ClearDependsOn() *TaskUpdate {
	_u.mutation.ClearDependsOn()
	return _u
}

// SetCanParallelize sets the "can_parallelize" field.
func (_u *TaskUpdate) SetCanParallelize(v bool) *TaskUpdate {
	_u.mutation.SetCanParallelize(v)
	return _u
}

// SetNillableCanParallelize sets the "can_parallelize" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCanParallelize(v *bool) *TaskUpdate {
	if v != nil {
		_u.SetCanParallelize(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TaskUpdate) SetPriority(v int) *TaskUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TaskUpdate) SetNillablePriority(v *int) *TaskUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *TaskUpdate) AddPriority(v int) *TaskUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetEstimatedHours sets the "estimated_hours" field.
func (_u *TaskUpdate) SetEstimatedHours(v float64) *TaskUpdate {
	_u.mutation.ResetEstimatedHours()
	_u.mutation.SetEstimatedHours(v)
	return _u
}

// SetNillableEstimatedHours sets the "estimated_hours" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableEstimatedHours(v *float64) *TaskUpdate {
	if v != nil {
		_u.SetEstimatedHours(*v)
	}
	return _u
}

// AddEstimatedHours adds value to the "estimated_hours" field.
func (_u *TaskUpdate) AddEstimatedHours(v float64) *TaskUpdate {
	_u.mutation.AddEstimatedHours(v)
	return _u
}

// SetComplexityScore sets the "complexity_score" field.
func (_u *TaskUpdate) SetComplexityScore(v int) *TaskUpdate {
	_u.mutation.ResetComplexityScore()
	_u.mutation.SetComplexityScore(v)
	return _u
}

// SetNillableComplexityScore sets the "complexity_score" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableComplexityScore(v *int) *TaskUpdate {
	if v != nil {
		_u.SetComplexityScore(*v)
	}
	return _u
}

// AddComplexityScore adds value to the "complexity_score" field.
func (_u *TaskUpdate) AddComplexityScore(v int) *TaskUpdate {
	_u.mutation.AddComplexityScore(v)
	return _u
}

// SetUncertaintyLevel sets the "uncertainty_level" field.
func (_u *TaskUpdate) SetUncertaintyLevel(v task.UncertaintyLevel) *TaskUpdate {
	_u.mutation.SetUncertaintyLevel(v)
	return _u
}

// SetNillableUncertaintyLevel sets the "uncertainty_level" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableUncertaintyLevel(v *task.UncertaintyLevel) *TaskUpdate {
	if v != nil {
		_u.SetUncertaintyLevel(*v)
	}
	return _u
}

// SetInterventionContext sets the "intervention_context" field.
func (_u *TaskUpdate) SetInterventionContext(v map[string]interface{}) *TaskUpdate {
	_u.mutation.SetInterventionContext(v)
	return _u
}

// ClearInterventionContext clears the value of the "intervention_context" field.
func (_u *TaskUpdate) ClearInterventionContext() *TaskUpdate {
	_u.mutation.ClearInterventionContext()
	return _u
}

// SetAssignedAgent sets the "assigned_agent" field.
func (_u *TaskUpdate) SetAssignedAgent(v string) *TaskUpdate {
	_u.mutation.SetAssignedAgent(v)
	return _u
}

// SetNillableAssignedAgent sets the "assigned_agent" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableAssignedAgent(v *string) *TaskUpdate {
	if v != nil {
		_u.SetAssignedAgent(*v)
	}
	return _u
}

// ClearAssignedAgent clears the value of the "assigned_agent" field.
func (_u *TaskUpdate) ClearAssignedAgent() *TaskUpdate {
	_u.mutation.ClearAssignedAgent()
	return _u
}

// SetCategory sets the "category" field.
func (_u *TaskUpdate) SetCategory(v string) *TaskUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCategory(v *string) *TaskUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *TaskUpdate) ClearCategory() *TaskUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetFilesChanged sets the "files_changed" field.
func (_u *TaskUpdate) SetFilesChanged(v []string) *TaskUpdate {
	_u.mutation.SetFilesChanged(v)
	return _u
}

// AppendFilesChanged appends value to the "files_changed" field.
func (_u *TaskUpdate) AppendFilesChanged(v []string) *TaskUpdate {
	_u.mutation.AppendFilesChanged(v)
	return _u
}

// ClearFilesChanged clears the value of the "files_changed" field.
func (_u *TaskUpdate) ClearFilesChanged() *TaskUpdate {
	_u.mutation.ClearFilesChanged()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdate) SetUpdatedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskUpdate) SetCompletedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCompletedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskUpdate) ClearCompletedAt() *TaskUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdate) Mutation() *TaskMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UncertaintyLevel(); ok {
		if err := task.UncertaintyLevelValidator(v); err != nil {
			return &ValidationError{Name: "uncertainty_level", err: fmt.Errorf(`ent: validator failed for field "Task.uncertainty_level": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Task.project"`)
	}
	if _u.mutation.IssueCleared() && len(_u.mutation.IssueIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Task.issue"`)
	}
	return nil
}

func (_u *TaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TaskNumber(); ok {
		_spec.SetField(task.FieldTaskNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(task.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DependsOn(); ok {
		_spec.SetField(task.FieldDependsOn, field.TypeString, value)
	}
	if _u.mutation.DependsOnCleared() {
		_spec.ClearField(task.FieldDependsOn, field.TypeString)
	}
	if value, ok := _u.mutation.CanParallelize(); ok {
		_spec.SetField(task.FieldCanParallelize, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(task.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(task.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EstimatedHours(); ok {
		_spec.SetField(task.FieldEstimatedHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEstimatedHours(); ok {
		_spec.AddField(task.FieldEstimatedHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ComplexityScore(); ok {
		_spec.SetField(task.FieldComplexityScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedComplexityScore(); ok {
		_spec.AddField(task.FieldComplexityScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UncertaintyLevel(); ok {
		_spec.SetField(task.FieldUncertaintyLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.InterventionContext(); ok {
		_spec.SetField(task.FieldInterventionContext, field.TypeJSON, value)
	}
	if _u.mutation.InterventionContextCleared() {
		_spec.ClearField(task.FieldInterventionContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.AssignedAgent(); ok {
		_spec.SetField(task.FieldAssignedAgent, field.TypeString, value)
	}
	if _u.mutation.AssignedAgentCleared() {
		_spec.ClearField(task.FieldAssignedAgent, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(task.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(task.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.FilesChanged(); ok {
		_spec.SetField(task.FieldFilesChanged, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFilesChanged(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldFilesChanged, value)
		})
	}
	if _u.mutation.FilesChangedCleared() {
		_spec.ClearField(task.FieldFilesChanged, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(task.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMutation
}

// SetTaskNumber sets the "task_number" field.
func (_u *TaskUpdateOne) SetTaskNumber(v string) *TaskUpdateOne {
	_u.mutation.SetTaskNumber(v)
	return _u
}

// SetNillableTaskNumber sets the "task_number" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableTaskNumber(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetTaskNumber(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *TaskUpdateOne) SetTitle(v string) *TaskUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableTitle(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskUpdateOne) SetDescription(v string) *TaskUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableDescription(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TaskUpdateOne) ClearDescription() *TaskUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdateOne) SetStatus(v task.Status) *TaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStatus(v *task.Status) *TaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDependsOn sets the "depends_on" field.
func (_u *TaskUpdateOne) SetDependsOn(v string) *TaskUpdateOne {
	_u.mutation.SetDependsOn(v)
	return _u
}

// SetNillableDependsOn sets the "depends_on" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableDependsOn(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetDependsOn(*v)
	}
	return _u
}

// ClearDependsOn clears the value of the "depends_on" field.
func (_u *TaskUpdateOne) ClearDependsOn() *TaskUpdateOne {
	_u.mutation.ClearDependsOn()
	return _u
}

// SetCanParallelize sets the "can_parallelize" field.
func (_u *TaskUpdateOne) SetCanParallelize(v bool) *TaskUpdateOne {
	_u.mutation.SetCanParallelize(v)
	return _u
}

// SetNillableCanParallelize sets the "can_parallelize" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCanParallelize(v *bool) *TaskUpdateOne {
	if v != nil {
		_u.SetCanParallelize(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TaskUpdateOne) SetPriority(v int) *TaskUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillablePriority(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *TaskUpdateOne) AddPriority(v int) *TaskUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetEstimatedHours sets the "estimated_hours" field.
func (_u *TaskUpdateOne) SetEstimatedHours(v float64) *TaskUpdateOne {
	_u.mutation.ResetEstimatedHours()
	_u.mutation.SetEstimatedHours(v)
	return _u
}

// SetNillableEstimatedHours sets the "estimated_hours" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableEstimatedHours(v *float64) *TaskUpdateOne {
	if v != nil {
		_u.SetEstimatedHours(*v)
	}
	return _u
}

// AddEstimatedHours adds value to the "estimated_hours" field.
func (_u *TaskUpdateOne) AddEstimatedHours(v float64) *TaskUpdateOne {
	_u.mutation.AddEstimatedHours(v)
	return _u
}

// SetComplexityScore sets the "complexity_score" field.
func (_u *TaskUpdateOne) SetComplexityScore(v int) *TaskUpdateOne {
	_u.mutation.ResetComplexityScore()
	_u.mutation.SetComplexityScore(v)
	return _u
}

// SetNillableComplexityScore sets the "complexity_score" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableComplexityScore(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetComplexityScore(*v)
	}
	return _u
}

// AddComplexityScore adds value to the "complexity_score" field.
func (_u *TaskUpdateOne) AddComplexityScore(v int) *TaskUpdateOne {
	_u.mutation.AddComplexityScore(v)
	return _u
}

// SetUncertaintyLevel sets the "uncertainty_level" field.
func (_u *TaskUpdateOne) SetUncertaintyLevel(v task.UncertaintyLevel) *TaskUpdateOne {
	_u.mutation.SetUncertaintyLevel(v)
	return _u
}

// SetNillableUncertaintyLevel sets the "uncertainty_level" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableUncertaintyLevel(v *task.UncertaintyLevel) *TaskUpdateOne {
	if v != nil {
		_u.SetUncertaintyLevel(*v)
	}
	return _u
}

// SetInterventionContext sets the "intervention_context" field.
func (_u *TaskUpdateOne) SetInterventionContext(v map[string]interface{}) *TaskUpdateOne {
	_u.mutation.SetInterventionContext(v)
	return _u
}

// ClearInterventionContext clears the value of the "intervention_context" field.
func (_u *TaskUpdateOne) ClearInterventionContext() *TaskUpdateOne {
	_u.mutation.ClearInterventionContext()
	return _u
}

// SetAssignedAgent sets the "assigned_agent" field.
func (_u *TaskUpdateOne) SetAssignedAgent(v string) *TaskUpdateOne {
	_u.mutation.SetAssignedAgent(v)
	return _u
}

// SetNillableAssignedAgent sets the "assigned_agent" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableAssignedAgent(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetAssignedAgent(*v)
	}
	return _u
}

// ClearAssignedAgent clears the value of the "assigned_agent" field.
func (_u *TaskUpdateOne) ClearAssignedAgent() *TaskUpdateOne {
	_u.mutation.ClearAssignedAgent()
	return _u
}

// SetCategory sets the "category" field.
func (_u *TaskUpdateOne) SetCategory(v string) *TaskUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCategory(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *TaskUpdateOne) ClearCategory() *TaskUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetFilesChanged sets the "files_changed" field.
func (_u *TaskUpdateOne) SetFilesChanged(v []string) *TaskUpdateOne {
	_u.mutation.SetFilesChanged(v)
	return _u
}

// AppendFilesChanged appends value to the "files_changed" field.
func (_u *TaskUpdateOne) AppendFilesChanged(v []string) *TaskUpdateOne {
	_u.mutation.AppendFilesChanged(v)
	return _u
}

// ClearFilesChanged clears the value of the "files_changed" field.
func (_u *TaskUpdateOne) ClearFilesChanged() *TaskUpdateOne {
	_u.mutation.ClearFilesChanged()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdateOne) SetUpdatedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskUpdateOne) SetCompletedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCompletedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskUpdateOne) ClearCompletedAt() *TaskUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdateOne) Mutation() *TaskMutation {
	return _u.mutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Task entity.
func (_u *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UncertaintyLevel(); ok {
		if err := task.UncertaintyLevelValidator(v); err != nil {
			return &ValidationError{Name: "uncertainty_level", err: fmt.Errorf(`ent: validator failed for field "Task.uncertainty_level": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Task.project"`)
	}
	if _u.mutation.IssueCleared() && len(_u.mutation.IssueIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Task.issue"`)
	}
	return nil
}

func (_u *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != task.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TaskNumber(); ok {
		_spec.SetField(task.FieldTaskNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(task.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DependsOn(); ok {
		_spec.SetField(task.FieldDependsOn, field.TypeString, value)
	}
	if _u.mutation.DependsOnCleared() {
		_spec.ClearField(task.FieldDependsOn, field.TypeString)
	}
	if value, ok := _u.mutation.CanParallelize(); ok {
		_spec.SetField(task.FieldCanParallelize, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(task.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(task.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EstimatedHours(); ok {
		_spec.SetField(task.FieldEstimatedHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEstimatedHours(); ok {
		_spec.AddField(task.FieldEstimatedHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ComplexityScore(); ok {
		_spec.SetField(task.FieldComplexityScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedComplexityScore(); ok {
		_spec.AddField(task.FieldComplexityScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UncertaintyLevel(); ok {
		_spec.SetField(task.FieldUncertaintyLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.InterventionContext(); ok {
		_spec.SetField(task.FieldInterventionContext, field.TypeJSON, value)
	}
	if _u.mutation.InterventionContextCleared() {
		_spec.ClearField(task.FieldInterventionContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.AssignedAgent(); ok {
		_spec.SetField(task.FieldAssignedAgent, field.TypeString, value)
	}
	if _u.mutation.AssignedAgentCleared() {
		_spec.ClearField(task.FieldAssignedAgent, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(task.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(task.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.FilesChanged(); ok {
		_spec.SetField(task.FieldFilesChanged, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFilesChanged(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldFilesChanged, value)
		})
	}
	if _u.mutation.FilesChangedCleared() {
		_spec.ClearField(task.FieldFilesChanged, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(task.FieldCompletedAt, field.TypeTime)
	}
	_node = &Task{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
