// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/frankbria/codeframe/ent/issue"
	"github.com/frankbria/codeframe/ent/project"
	"github.com/frankbria/codeframe/ent/task"
)

// TaskCreate is the builder for creating a Task entity.
type TaskCreate struct {
	config
	mutation *TaskMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProjectID sets the "project_id" field.
func (_c *TaskCreate) SetProjectID(v string) *TaskCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetIssueID sets the "issue_id" field.
func (_c *TaskCreate) SetIssueID(v string) *TaskCreate {
	_c.mutation.SetIssueID(v)
	return _c
}

// SetTaskNumber sets the "task_number" field.
func (_c *TaskCreate) SetTaskNumber(v string) *TaskCreate {
	_c.mutation.SetTaskNumber(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *TaskCreate) SetTitle(v string) *TaskCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *TaskCreate) SetDescription(v string) *TaskCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *TaskCreate) SetNillableDescription(v *string) *TaskCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *TaskCreate) SetStatus(v task.Status) *TaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TaskCreate) SetNillableStatus(v *task.Status) *TaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetDependsOn sets the "depends_on" field.
func (_c *TaskCreate) SetDependsOn(v string) *TaskCreate {
	_c.mutation.SetDependsOn(v)
	return _c
}

// SetNillableDependsOn sets the "depends_on" field if the given value is not nil.
func (_c *TaskCreate) SetNillableDependsOn(v *string) *TaskCreate {
	if v != nil {
		_c.SetDependsOn(*v)
	}
	return _c
}

// SetCanParallelize sets the "can_parallelize" field.
func (_c *TaskCreate) SetCanParallelize(v bool) *TaskCreate {
	_c.mutation.SetCanParallelize(v)
	return _c
}

// SetNillableCanParallelize sets the "can_parallelize" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCanParallelize(v *bool) *TaskCreate {
	if v != nil {
		_c.SetCanParallelize(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *TaskCreate) SetPriority(v int) *TaskCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *TaskCreate) SetNillablePriority(v *int) *TaskCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetEstimatedHours sets the "estimated_hours" field.
func (_c *TaskCreate) SetEstimatedHours(v float64) *TaskCreate {
	_c.mutation.SetEstimatedHours(v)
	return _c
}

// SetNillableEstimatedHours sets the "estimated_hours" field if the given value is not nil.
func (_c *TaskCreate) SetNillableEstimatedHours(v *float64) *TaskCreate {
	if v != nil {
		_c.SetEstimatedHours(*v)
	}
	return _c
}

// SetComplexityScore sets the "complexity_score" field.
func (_c *TaskCreate) SetComplexityScore(v int) *TaskCreate {
	_c.mutation.SetComplexityScore(v)
	return _c
}

// SetNillableComplexityScore sets the "complexity_score" field if the given value is not nil.
func (_c *TaskCreate) SetNillableComplexityScore(v *int) *TaskCreate {
	if v != nil {
		_c.SetComplexityScore(*v)
	}
	return _c
}

// SetUncertaintyLevel sets the "uncertainty_level" field.
func (_c *TaskCreate) SetUncertaintyLevel(v task.UncertaintyLevel) *TaskCreate {
	_c.mutation.SetUncertaintyLevel(v)
	return _c
}

// SetNillableUncertaintyLevel sets the "uncertainty_level" field if the given value is not nil.
func (_c *TaskCreate) SetNillableUncertaintyLevel(v *task.UncertaintyLevel) *TaskCreate {
	if v != nil {
		_c.SetUncertaintyLevel(*v)
	}
	return _c
}

// SetInterventionContext sets the "intervention_context" field.
func (_c *TaskCreate) SetInterventionContext(v map[string]interface{}) *TaskCreate {
	_c.mutation.SetInterventionContext(v)
	return _c
}

// SetAssignedAgent sets the "assigned_agent" field.
func (_c *TaskCreate) SetAssignedAgent(v string) *TaskCreate {
	_c.mutation.SetAssignedAgent(v)
	return _c
}

// SetNillableAssignedAgent sets the "assigned_agent" field if the given value is not nil.
func (_c *TaskCreate) SetNillableAssignedAgent(v *string) *TaskCreate {
	if v != nil {
		_c.SetAssignedAgent(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *TaskCreate) SetCategory(v string) *TaskCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCategory(v *string) *TaskCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetFilesChanged sets the "files_changed" field.
func (_c *TaskCreate) SetFilesChanged(v []string) *TaskCreate {
	_c.mutation.SetFilesChanged(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TaskCreate) SetCreatedAt(v time.Time) *TaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCreatedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TaskCreate) SetUpdatedAt(v time.Time) *TaskCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableUpdatedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *TaskCreate) SetCompletedAt(v time.Time) *TaskCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCompletedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TaskCreate) SetID(v string) *TaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *TaskCreate) SetProject(v *Project) *TaskCreate {
	return _c.SetProjectID(v.ID)
}

// SetIssue sets the "issue" edge to the Issue entity.
func (_c *TaskCreate) SetIssue(v *Issue) *TaskCreate {
	return _c.SetIssueID(v.ID)
}

// Mutation returns the TaskMutation object of the builder.
func (_c *TaskCreate) Mutation() *TaskMutation {
	return _c.mutation
}

// Save creates the Task in the database.
func (_c *TaskCreate) Save(ctx context.Context) (*Task, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskCreate) SaveX(ctx context.Context) *Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := task.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CanParallelize(); !ok {
		v := task.DefaultCanParallelize
		_c.mutation.SetCanParallelize(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := task.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.EstimatedHours(); !ok {
		v := task.DefaultEstimatedHours
		_c.mutation.SetEstimatedHours(v)
	}
	if _, ok := _c.mutation.ComplexityScore(); !ok {
		v := task.DefaultComplexityScore
		_c.mutation.SetComplexityScore(v)
	}
	if _, ok := _c.mutation.UncertaintyLevel(); !ok {
		v := task.DefaultUncertaintyLevel
		_c.mutation.SetUncertaintyLevel(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := task.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := task.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "Task.project_id"`)}
	}
	if _, ok := _c.mutation.IssueID(); !ok {
		return &ValidationError{Name: "issue_id", err: errors.New(`ent: missing required field "Task.issue_id"`)}
	}
	if _, ok := _c.mutation.TaskNumber(); !ok {
		return &ValidationError{Name: "task_number", err: errors.New(`ent: missing required field "Task.task_number"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Task.title"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Task.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CanParallelize(); !ok {
		return &ValidationError{Name: "can_parallelize", err: errors.New(`ent: missing required field "Task.can_parallelize"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Task.priority"`)}
	}
	if _, ok := _c.mutation.EstimatedHours(); !ok {
		return &ValidationError{Name: "estimated_hours", err: errors.New(`ent: missing required field "Task.estimated_hours"`)}
	}
	if _, ok := _c.mutation.ComplexityScore(); !ok {
		return &ValidationError{Name: "complexity_score", err: errors.New(`ent: missing required field "Task.complexity_score"`)}
	}
	if _, ok := _c.mutation.UncertaintyLevel(); !ok {
		return &ValidationError{Name: "uncertainty_level", err: errors.New(`ent: missing required field "Task.uncertainty_level"`)}
	}
	if v, ok := _c.mutation.UncertaintyLevel(); ok {
		if err := task.UncertaintyLevelValidator(v); err != nil {
			return &ValidationError{Name: "uncertainty_level", err: fmt.Errorf(`ent: validator failed for field "Task.uncertainty_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Task.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Task.updated_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "Task.project"`)}
	}
	if len(_c.mutation.IssueIDs()) == 0 {
		return &ValidationError{Name: "issue", err: errors.New(`ent: missing required edge "Task.issue"`)}
	}
	return nil
}

func (_c *TaskCreate) sqlSave(ctx context.Context) (*Task, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Task.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TaskCreate) createSpec() (*Task, *sqlgraph.CreateSpec) {
	var (
		_node = &Task{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(task.Table, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TaskNumber(); ok {
		_spec.SetField(task.FieldTaskNumber, field.TypeString, value)
		_node.TaskNumber = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.DependsOn(); ok {
		_spec.SetField(task.FieldDependsOn, field.TypeString, value)
		_node.DependsOn = value
	}
	if value, ok := _c.mutation.CanParallelize(); ok {
		_spec.SetField(task.FieldCanParallelize, field.TypeBool, value)
		_node.CanParallelize = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(task.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.EstimatedHours(); ok {
		_spec.SetField(task.FieldEstimatedHours, field.TypeFloat64, value)
		_node.EstimatedHours = value
	}
	if value, ok := _c.mutation.ComplexityScore(); ok {
		_spec.SetField(task.FieldComplexityScore, field.TypeInt, value)
		_node.ComplexityScore = value
	}
	if value, ok := _c.mutation.UncertaintyLevel(); ok {
		_spec.SetField(task.FieldUncertaintyLevel, field.TypeEnum, value)
		_node.UncertaintyLevel = value
	}
	if value, ok := _c.mutation.InterventionContext(); ok {
		_spec.SetField(task.FieldInterventionContext, field.TypeJSON, value)
		_node.InterventionContext = value
	}
	if value, ok := _c.mutation.AssignedAgent(); ok {
		_spec.SetField(task.FieldAssignedAgent, field.TypeString, value)
		_node.AssignedAgent = &value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(task.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.FilesChanged(); ok {
		_spec.SetField(task.FieldFilesChanged, field.TypeJSON, value)
		_node.FilesChanged = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(task.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.ProjectTable,
			Columns: []string{task.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProjectID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.IssueIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.IssueTable,
			Columns: []string{task.IssueColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(issue.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.IssueID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Task.Create().
//		SetProjectID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskCreate) OnConflict(opts ...sql.ConflictOption) *TaskUpsertOne {
	_c.conflict = opts
	return &TaskUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskCreate) OnConflictColumns(columns ...string) *TaskUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskUpsertOne{
		create: _c,
	}
}

type (
	// TaskUpsertOne is the builder for "upsert"-ing
	//  one Task node.
	TaskUpsertOne struct {
		create *TaskCreate
	}

	// TaskUpsert is the "OnConflict" setter.
	TaskUpsert struct {
		*sql.UpdateSet
	}
)

// SetTaskNumber sets the "task_number" field.
func (u *TaskUpsert) SetTaskNumber(v string) *TaskUpsert {
	u.Set(task.FieldTaskNumber, v)
	return u
}

// UpdateTaskNumber sets the "task_number" field to the value that was provided on create.
func (u *TaskUpsert) UpdateTaskNumber() *TaskUpsert {
	u.SetExcluded(task.FieldTaskNumber)
	return u
}

// SetTitle sets the "title" field.
func (u *TaskUpsert) SetTitle(v string) *TaskUpsert {
	u.Set(task.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *TaskUpsert) UpdateTitle() *TaskUpsert {
	u.SetExcluded(task.FieldTitle)
	return u
}

// SetDescription sets the "description" field.
func (u *TaskUpsert) SetDescription(v string) *TaskUpsert {
	u.Set(task.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TaskUpsert) UpdateDescription() *TaskUpsert {
	u.SetExcluded(task.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *TaskUpsert) ClearDescription() *TaskUpsert {
	u.SetNull(task.FieldDescription)
	return u
}

// SetStatus sets the "status" field.
func (u *TaskUpsert) SetStatus(v task.Status) *TaskUpsert {
	u.Set(task.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TaskUpsert) UpdateStatus() *TaskUpsert {
	u.SetExcluded(task.FieldStatus)
	return u
}

// SetDependsOn sets the "depends_on" field.
func (u *TaskUpsert) SetDependsOn(v string) *TaskUpsert {
	u.Set(task.FieldDependsOn, v)
	return u
}

// UpdateDependsOn sets the "depends_on" field to the value that was provided on create.
func (u *TaskUpsert) UpdateDependsOn() *TaskUpsert {
	u.SetExcluded(task.FieldDependsOn)
	return u
}

// ClearDependsOn clears the value of the "depends_on" field.
func (u *TaskUpsert) ClearDependsOn() *TaskUpsert {
	u.SetNull(task.FieldDependsOn)
	return u
}

// SetCanParallelize sets the "can_parallelize" field.
func (u *TaskUpsert) SetCanParallelize(v bool) *TaskUpsert {
	u.Set(task.FieldCanParallelize, v)
	return u
}

// UpdateCanParallelize sets the "can_parallelize" field to the value that was provided on create.
func (u *TaskUpsert) UpdateCanParallelize() *TaskUpsert {
	u.SetExcluded(task.FieldCanParallelize)
	return u
}

// SetPriority sets the "priority" field.
func (u *TaskUpsert) SetPriority(v int) *TaskUpsert {
	u.Set(task.FieldPriority, v)
	return u
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *TaskUpsert) UpdatePriority() *TaskUpsert {
	u.SetExcluded(task.FieldPriority)
	return u
}

// AddPriority adds v to the "priority" field.
func (u *TaskUpsert) AddPriority(v int) *TaskUpsert {
	u.Add(task.FieldPriority, v)
	return u
}

// SetEstimatedHours sets the "estimated_hours" field.
func (u *TaskUpsert) SetEstimatedHours(v float64) *TaskUpsert {
	u.Set(task.FieldEstimatedHours, v)
	return u
}

// UpdateEstimatedHours sets the "estimated_hours" field to the value that was provided on create.
func (u *TaskUpsert) UpdateEstimatedHours() *TaskUpsert {
	u.SetExcluded(task.FieldEstimatedHours)
	return u
}

// AddEstimatedHours adds v to the "estimated_hours" field.
func (u *TaskUpsert) AddEstimatedHours(v float64) *TaskUpsert {
	u.Add(task.FieldEstimatedHours, v)
	return u
}

// SetComplexityScore sets the "complexity_score" field.
func (u *TaskUpsert) SetComplexityScore(v int) *TaskUpsert {
	u.Set(task.FieldComplexityScore, v)
	return u
}

// UpdateComplexityScore sets the "complexity_score" field to the value that was provided on create.
func (u *TaskUpsert) UpdateComplexityScore() *TaskUpsert {
	u.SetExcluded(task.FieldComplexityScore)
	return u
}

// AddComplexityScore adds v to the "complexity_score" field.
func (u *TaskUpsert) AddComplexityScore(v int) *TaskUpsert {
	u.Add(task.FieldComplexityScore, v)
	return u
}

// SetUncertaintyLevel sets the "uncertainty_level" field.
func (u *TaskUpsert) SetUncertaintyLevel(v task.UncertaintyLevel) *TaskUpsert {
	u.Set(task.FieldUncertaintyLevel, v)
	return u
}

// UpdateUncertaintyLevel sets the "uncertainty_level" field to the value that was provided on create.
func (u *TaskUpsert) UpdateUncertaintyLevel() *TaskUpsert {
	u.SetExcluded(task.FieldUncertaintyLevel)
	return u
}

// SetInterventionContext sets the "intervention_context" field.
func (u *TaskUpsert) SetInterventionContext(v map[string]interface{}) *TaskUpsert {
	u.Set(task.FieldInterventionContext, v)
	return u
}

// UpdateInterventionContext sets the "intervention_context" field to the value that was provided on create.
func (u *TaskUpsert) UpdateInterventionContext() *TaskUpsert {
	u.SetExcluded(task.FieldInterventionContext)
	return u
}

// ClearInterventionContext clears the value of the "intervention_context" field.
func (u *TaskUpsert) ClearInterventionContext() *TaskUpsert {
	u.SetNull(task.FieldInterventionContext)
	return u
}

// SetAssignedAgent sets the "assigned_agent" field.
func (u *TaskUpsert) SetAssignedAgent(v string) *TaskUpsert {
	u.Set(task.FieldAssignedAgent, v)
	return u
}

// UpdateAssignedAgent sets the "assigned_agent" field to the value that was provided on create.
func (u *TaskUpsert) UpdateAssignedAgent() *TaskUpsert {
	u.SetExcluded(task.FieldAssignedAgent)
	return u
}

// ClearAssignedAgent clears the value of the "assigned_agent" field.
func (u *TaskUpsert) ClearAssignedAgent() *TaskUpsert {
	u.SetNull(task.FieldAssignedAgent)
	return u
}

// SetCategory sets the "category" field.
func (u *TaskUpsert) SetCategory(v string) *TaskUpsert {
	u.Set(task.FieldCategory, v)
	return u
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *TaskUpsert) UpdateCategory() *TaskUpsert {
	u.SetExcluded(task.FieldCategory)
	return u
}

// ClearCategory clears the value of the "category" field.
func (u *TaskUpsert) ClearCategory() *TaskUpsert {
	u.SetNull(task.FieldCategory)
	return u
}

// SetFilesChanged sets the "files_changed" field.
func (u *TaskUpsert) SetFilesChanged(v []string) *TaskUpsert {
	u.Set(task.FieldFilesChanged, v)
	return u
}

// UpdateFilesChanged sets the "files_changed" field to the value that was provided on create.
func (u *TaskUpsert) UpdateFilesChanged() *TaskUpsert {
	u.SetExcluded(task.FieldFilesChanged)
	return u
}

// ClearFilesChanged clears the value of the "files_changed" field.
func (u *TaskUpsert) ClearFilesChanged() *TaskUpsert {
	u.SetNull(task.FieldFilesChanged)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TaskUpsert) SetUpdatedAt(v time.Time) *TaskUpsert {
	u.Set(task.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TaskUpsert) UpdateUpdatedAt() *TaskUpsert {
	u.SetExcluded(task.FieldUpdatedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *TaskUpsert) SetCompletedAt(v time.Time) *TaskUpsert {
	u.Set(task.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *TaskUpsert) UpdateCompletedAt() *TaskUpsert {
	u.SetExcluded(task.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *TaskUpsert) ClearCompletedAt() *TaskUpsert {
	u.SetNull(task.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(task.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TaskUpsertOne) UpdateNewValues() *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(task.FieldID)
		}
		if _, exists := u.create.mutation.ProjectID(); exists {
			s.SetIgnore(task.FieldProjectID)
		}
		if _, exists := u.create.mutation.IssueID(); exists {
			s.SetIgnore(task.FieldIssueID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(task.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Task.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TaskUpsertOne) Ignore() *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskUpsertOne) DoNothing() *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskCreate.OnConflict
// documentation for more info.
func (u *TaskUpsertOne) Update(set func(*TaskUpsert)) *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetTaskNumber sets the "task_number" field.
func (u *TaskUpsertOne) SetTaskNumber(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetTaskNumber(v)
	})
}

// UpdateTaskNumber sets the "task_number" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateTaskNumber() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateTaskNumber()
	})
}

// SetTitle sets the "title" field.
func (u *TaskUpsertOne) SetTitle(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateTitle() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *TaskUpsertOne) SetDescription(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateDescription() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *TaskUpsertOne) ClearDescription() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearDescription()
	})
}

// SetStatus sets the "status" field.
func (u *TaskUpsertOne) SetStatus(v task.Status) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateStatus() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateStatus()
	})
}

// SetDependsOn sets the "depends_on" field.
func (u *TaskUpsertOne) SetDependsOn(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetDependsOn(v)
	})
}

// UpdateDependsOn sets the "depends_on" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateDependsOn() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateDependsOn()
	})
}

// ClearDependsOn clears the value of the "depends_on" field.
func (u *TaskUpsertOne) ClearDependsOn() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearDependsOn()
	})
}

// SetCanParallelize sets the "can_parallelize" field.
func (u *TaskUpsertOne) SetCanParallelize(v bool) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetCanParallelize(v)
	})
}

// UpdateCanParallelize sets the "can_parallelize" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateCanParallelize() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCanParallelize()
	})
}

// SetPriority sets the "priority" field.
func (u *TaskUpsertOne) SetPriority(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *TaskUpsertOne) AddPriority(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdatePriority() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdatePriority()
	})
}

// SetEstimatedHours sets the "estimated_hours" field.
func (u *TaskUpsertOne) SetEstimatedHours(v float64) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetEstimatedHours(v)
	})
}

// AddEstimatedHours adds v to the "estimated_hours" field.
func (u *TaskUpsertOne) AddEstimatedHours(v float64) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddEstimatedHours(v)
	})
}

// UpdateEstimatedHours sets the "estimated_hours" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateEstimatedHours() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateEstimatedHours()
	})
}

// SetComplexityScore sets the "complexity_score" field.
func (u *TaskUpsertOne) SetComplexityScore(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetComplexityScore(v)
	})
}

// AddComplexityScore adds v to the "complexity_score" field.
func (u *TaskUpsertOne) AddComplexityScore(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddComplexityScore(v)
	})
}

// UpdateComplexityScore sets the "complexity_score" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateComplexityScore() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateComplexityScore()
	})
}

// SetUncertaintyLevel sets the "uncertainty_level" field.
func (u *TaskUpsertOne) SetUncertaintyLevel(v task.UncertaintyLevel) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetUncertaintyLevel(v)
	})
}

// UpdateUncertaintyLevel sets the "uncertainty_level" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateUncertaintyLevel() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateUncertaintyLevel()
	})
}

// SetInterventionContext sets the "intervention_context" field.
func (u *TaskUpsertOne) SetInterventionContext(v map[string]interface{}) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetInterventionContext(v)
	})
}

// UpdateInterventionContext sets the "intervention_context" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateInterventionContext() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateInterventionContext()
	})
}

// ClearInterventionContext clears the value of the "intervention_context" field.
func (u *TaskUpsertOne) ClearInterventionContext() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearInterventionContext()
	})
}

// SetAssignedAgent sets the "assigned_agent" field.
func (u *TaskUpsertOne) SetAssignedAgent(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetAssignedAgent(v)
	})
}

// UpdateAssignedAgent sets the "assigned_agent" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateAssignedAgent() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateAssignedAgent()
	})
}

// ClearAssignedAgent clears the value of the "assigned_agent" field.
func (u *TaskUpsertOne) ClearAssignedAgent() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearAssignedAgent()
	})
}

// SetCategory sets the "category" field.
func (u *TaskUpsertOne) SetCategory(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateCategory() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCategory()
	})
}

// ClearCategory clears the value of the "category" field.
func (u *TaskUpsertOne) ClearCategory() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearCategory()
	})
}

// SetFilesChanged sets the "files_changed" field.
func (u *TaskUpsertOne) SetFilesChanged(v []string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetFilesChanged(v)
	})
}

// UpdateFilesChanged sets the "files_changed" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateFilesChanged() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateFilesChanged()
	})
}

// ClearFilesChanged clears the value of the "files_changed" field.
func (u *TaskUpsertOne) ClearFilesChanged() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearFilesChanged()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TaskUpsertOne) SetUpdatedAt(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateUpdatedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *TaskUpsertOne) SetCompletedAt(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateCompletedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *TaskUpsertOne) ClearCompletedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *TaskUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TaskUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TaskUpsertOne.ID is not supported by MySQL driver. Use TaskUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TaskUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TaskCreateBulk is the builder for creating many Task entities in bulk.
type TaskCreateBulk struct {
	config
	err      error
	builders []*TaskCreate
	conflict []sql.ConflictOption
}

// Save creates the Task entities in the database.
func (_c *TaskCreateBulk) Save(ctx context.Context) ([]*Task, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Task, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TaskCreateBulk) SaveX(ctx context.Context) []*Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Task.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskCreateBulk) OnConflict(opts ...sql.ConflictOption) *TaskUpsertBulk {
	_c.conflict = opts
	return &TaskUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskCreateBulk) OnConflictColumns(columns ...string) *TaskUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskUpsertBulk{
		create: _c,
	}
}

// TaskUpsertBulk is the builder for "upsert"-ing
// a bulk of Task nodes.
type TaskUpsertBulk struct {
	create *TaskCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(task.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TaskUpsertBulk) UpdateNewValues() *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(task.FieldID)
			}
			if _, exists := b.mutation.ProjectID(); exists {
				s.SetIgnore(task.FieldProjectID)
			}
			if _, exists := b.mutation.IssueID(); exists {
				s.SetIgnore(task.FieldIssueID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(task.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TaskUpsertBulk) Ignore() *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskUpsertBulk) DoNothing() *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskCreateBulk.OnConflict
// documentation for more info.
func (u *TaskUpsertBulk) Update(set func(*TaskUpsert)) *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetTaskNumber sets the "task_number" field.
func (u *TaskUpsertBulk) SetTaskNumber(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetTaskNumber(v)
	})
}

// UpdateTaskNumber sets the "task_number" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateTaskNumber() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateTaskNumber()
	})
}

// SetTitle sets the "title" field.
func (u *TaskUpsertBulk) SetTitle(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateTitle() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *TaskUpsertBulk) SetDescription(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateDescription() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *TaskUpsertBulk) ClearDescription() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearDescription()
	})
}

// SetStatus sets the "status" field.
func (u *TaskUpsertBulk) SetStatus(v task.Status) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateStatus() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateStatus()
	})
}

// SetDependsOn sets the "depends_on" field.
func (u *TaskUpsertBulk) SetDependsOn(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetDependsOn(v)
	})
}

// UpdateDependsOn sets the "depends_on" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateDependsOn() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateDependsOn()
	})
}

// ClearDependsOn clears the value of the "depends_on" field.
func (u *TaskUpsertBulk) ClearDependsOn() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearDependsOn()
	})
}

// SetCanParallelize sets the "can_parallelize" field.
func (u *TaskUpsertBulk) SetCanParallelize(v bool) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetCanParallelize(v)
	})
}

// UpdateCanParallelize sets the "can_parallelize" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateCanParallelize() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCanParallelize()
	})
}

// SetPriority sets the "priority" field.
func (u *TaskUpsertBulk) SetPriority(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *TaskUpsertBulk) AddPriority(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdatePriority() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdatePriority()
	})
}

// SetEstimatedHours sets the "estimated_hours" field.
func (u *TaskUpsertBulk) SetEstimatedHours(v float64) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetEstimatedHours(v)
	})
}

// AddEstimatedHours adds v to the "estimated_hours" field.
func (u *TaskUpsertBulk) AddEstimatedHours(v float64) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddEstimatedHours(v)
	})
}

// UpdateEstimatedHours sets the "estimated_hours" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateEstimatedHours() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateEstimatedHours()
	})
}

// SetComplexityScore sets the "complexity_score" field.
func (u *TaskUpsertBulk) SetComplexityScore(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetComplexityScore(v)
	})
}

// AddComplexityScore adds v to the "complexity_score" field.
func (u *TaskUpsertBulk) AddComplexityScore(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddComplexityScore(v)
	})
}

// UpdateComplexityScore sets the "complexity_score" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateComplexityScore() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateComplexityScore()
	})
}

// SetUncertaintyLevel sets the "uncertainty_level" field.
func (u *TaskUpsertBulk) SetUncertaintyLevel(v task.UncertaintyLevel) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetUncertaintyLevel(v)
	})
}

// UpdateUncertaintyLevel sets the "uncertainty_level" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateUncertaintyLevel() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateUncertaintyLevel()
	})
}

// SetInterventionContext sets the "intervention_context" field.
func (u *TaskUpsertBulk) SetInterventionContext(v map[string]interface{}) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetInterventionContext(v)
	})
}

// UpdateInterventionContext sets the "intervention_context" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateInterventionContext() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateInterventionContext()
	})
}

// ClearInterventionContext clears the value of the "intervention_context" field.
func (u *TaskUpsertBulk) ClearInterventionContext() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearInterventionContext()
	})
}

// SetAssignedAgent sets the "assigned_agent" field.
func (u *TaskUpsertBulk) SetAssignedAgent(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetAssignedAgent(v)
	})
}

// UpdateAssignedAgent sets the "assigned_agent" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateAssignedAgent() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateAssignedAgent()
	})
}

// ClearAssignedAgent clears the value of the "assigned_agent" field.
func (u *TaskUpsertBulk) ClearAssignedAgent() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearAssignedAgent()
	})
}

// SetCategory sets the "category" field.
func (u *TaskUpsertBulk) SetCategory(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateCategory() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCategory()
	})
}

// ClearCategory clears the value of the "category" field.
func (u *TaskUpsertBulk) ClearCategory() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearCategory()
	})
}

// SetFilesChanged sets the "files_changed" field.
func (u *TaskUpsertBulk) SetFilesChanged(v []string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetFilesChanged(v)
	})
}

// UpdateFilesChanged sets the "files_changed" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateFilesChanged() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateFilesChanged()
	})
}

// ClearFilesChanged clears the value of the "files_changed" field.
func (u *TaskUpsertBulk) ClearFilesChanged() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearFilesChanged()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TaskUpsertBulk) SetUpdatedAt(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateUpdatedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *TaskUpsertBulk) SetCompletedAt(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateCompletedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *TaskUpsertBulk) ClearCompletedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *TaskUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TaskCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
