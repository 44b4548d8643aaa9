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

// IssueCreate is the builder for creating a Issue entity.
type IssueCreate struct {
	config
	mutation *IssueMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProjectID sets the "project_id" field.
func (_c *IssueCreate) SetProjectID(v string) *IssueCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetIssueNumber sets the "issue_number" field.
func (_c *IssueCreate) SetIssueNumber(v string) *IssueCreate {
	_c.mutation.SetIssueNumber(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *IssueCreate) SetTitle(v string) *IssueCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *IssueCreate) SetDescription(v string) *IssueCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *IssueCreate) SetNillableDescription(v *string) *IssueCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *IssueCreate) SetPriority(v int) *IssueCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *IssueCreate) SetNillablePriority(v *int) *IssueCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetWorkflowStep sets the "workflow_step" field.
func (_c *IssueCreate) SetWorkflowStep(v string) *IssueCreate {
	_c.mutation.SetWorkflowStep(v)
	return _c
}

// SetNillableWorkflowStep sets the "workflow_step" field if the given value is not nil.
func (_c *IssueCreate) SetNillableWorkflowStep(v *string) *IssueCreate {
	if v != nil {
		_c.SetWorkflowStep(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *IssueCreate) SetCreatedAt(v time.Time) *IssueCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *IssueCreate) SetNillableCreatedAt(v *time.Time) *IssueCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *IssueCreate) SetUpdatedAt(v time.Time) *IssueCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *IssueCreate) SetNillableUpdatedAt(v *time.Time) *IssueCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *IssueCreate) SetID(v string) *IssueCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *IssueCreate) SetProject(v *Project) *IssueCreate {
	return _c.SetProjectID(v.ID)
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_c *IssueCreate) AddTaskIDs(ids ...string) *IssueCreate {
	_c.mutation.AddTaskIDs(ids...)
	return _c
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_c *IssueCreate) AddTasks(v ...*Task) *IssueCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTaskIDs(ids...)
}

// Mutation returns the IssueMutation object of the builder.
func (_c *IssueCreate) Mutation() *IssueMutation {
	return _c.mutation
}

// Save creates the Issue in the database.
func (_c *IssueCreate) Save(ctx context.Context) (*Issue, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IssueCreate) SaveX(ctx context.Context) *Issue {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IssueCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IssueCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IssueCreate) defaults() {
	if _, ok := _c.mutation.Priority(); !ok {
		v := issue.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := issue.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := issue.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IssueCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "Issue.project_id"`)}
	}
	if _, ok := _c.mutation.IssueNumber(); !ok {
		return &ValidationError{Name: "issue_number", err: errors.New(`ent: missing required field "Issue.issue_number"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Issue.title"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Issue.priority"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Issue.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Issue.updated_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "Issue.project"`)}
	}
	return nil
}

func (_c *IssueCreate) sqlSave(ctx context.Context) (*Issue, error) {
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
			return nil, fmt.Errorf("unexpected Issue.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *IssueCreate) createSpec() (*Issue, *sqlgraph.CreateSpec) {
	var (
		_node = &Issue{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(issue.Table, sqlgraph.NewFieldSpec(issue.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.IssueNumber(); ok {
		_spec.SetField(issue.FieldIssueNumber, field.TypeString, value)
		_node.IssueNumber = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(issue.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(issue.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(issue.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.WorkflowStep(); ok {
		_spec.SetField(issue.FieldWorkflowStep, field.TypeString, value)
		_node.WorkflowStep = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(issue.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(issue.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   issue.ProjectTable,
			Columns: []string{issue.ProjectColumn},
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
	if nodes := _c.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   issue.TasksTable,
			Columns: []string{issue.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Issue.Create().
//		SetProjectID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.IssueUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *IssueCreate) OnConflict(opts ...sql.ConflictOption) *IssueUpsertOne {
	_c.conflict = opts
	return &IssueUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Issue.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *IssueCreate) OnConflictColumns(columns ...string) *IssueUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &IssueUpsertOne{
		create: _c,
	}
}

type (
	// IssueUpsertOne is the builder for "upsert"-ing
	//  one Issue node.
	IssueUpsertOne struct {
		create *IssueCreate
	}

	// IssueUpsert is the "OnConflict" setter.
	IssueUpsert struct {
		*sql.UpdateSet
	}
)

// SetIssueNumber sets the "issue_number" field.
func (u *IssueUpsert) SetIssueNumber(v string) *IssueUpsert {
	u.Set(issue.FieldIssueNumber, v)
	return u
}

// UpdateIssueNumber sets the "issue_number" field to the value that was provided on create.
func (u *IssueUpsert) UpdateIssueNumber() *IssueUpsert {
	u.SetExcluded(issue.FieldIssueNumber)
	return u
}

// SetTitle sets the "title" field.
func (u *IssueUpsert) SetTitle(v string) *IssueUpsert {
	u.Set(issue.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *IssueUpsert) UpdateTitle() *IssueUpsert {
	u.SetExcluded(issue.FieldTitle)
	return u
}

// SetDescription sets the "description" field.
func (u *IssueUpsert) SetDescription(v string) *IssueUpsert {
	u.Set(issue.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *IssueUpsert) UpdateDescription() *IssueUpsert {
	u.SetExcluded(issue.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *IssueUpsert) ClearDescription() *IssueUpsert {
	u.SetNull(issue.FieldDescription)
	return u
}

// SetPriority sets the "priority" field.
func (u *IssueUpsert) SetPriority(v int) *IssueUpsert {
	u.Set(issue.FieldPriority, v)
	return u
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *IssueUpsert) UpdatePriority() *IssueUpsert {
	u.SetExcluded(issue.FieldPriority)
	return u
}

// AddPriority adds v to the "priority" field.
func (u *IssueUpsert) AddPriority(v int) *IssueUpsert {
	u.Add(issue.FieldPriority, v)
	return u
}

// SetWorkflowStep sets the "workflow_step" field.
func (u *IssueUpsert) SetWorkflowStep(v string) *IssueUpsert {
	u.Set(issue.FieldWorkflowStep, v)
	return u
}

// UpdateWorkflowStep sets the "workflow_step" field to the value that was provided on create.
func (u *IssueUpsert) UpdateWorkflowStep() *IssueUpsert {
	u.SetExcluded(issue.FieldWorkflowStep)
	return u
}

// ClearWorkflowStep clears the value of the "workflow_step" field.
func (u *IssueUpsert) ClearWorkflowStep() *IssueUpsert {
	u.SetNull(issue.FieldWorkflowStep)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *IssueUpsert) SetUpdatedAt(v time.Time) *IssueUpsert {
	u.Set(issue.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *IssueUpsert) UpdateUpdatedAt() *IssueUpsert {
	u.SetExcluded(issue.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Issue.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(issue.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *IssueUpsertOne) UpdateNewValues() *IssueUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(issue.FieldID)
		}
		if _, exists := u.create.mutation.ProjectID(); exists {
			s.SetIgnore(issue.FieldProjectID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(issue.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Issue.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *IssueUpsertOne) Ignore() *IssueUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *IssueUpsertOne) DoNothing() *IssueUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the IssueCreate.OnConflict
// documentation for more info.
func (u *IssueUpsertOne) Update(set func(*IssueUpsert)) *IssueUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&IssueUpsert{UpdateSet: update})
	}))
	return u
}

// SetIssueNumber sets the "issue_number" field.
func (u *IssueUpsertOne) SetIssueNumber(v string) *IssueUpsertOne {
	return u.Update(func(s *IssueUpsert) {
		s.SetIssueNumber(v)
	})
}

// UpdateIssueNumber sets the "issue_number" field to the value that was provided on create.
func (u *IssueUpsertOne) UpdateIssueNumber() *IssueUpsertOne {
	return u.Update(func(s *IssueUpsert) {
		s.UpdateIssueNumber()
	})
}

// SetTitle sets the "title" field.
func (u *IssueUpsertOne) SetTitle(v string) *IssueUpsertOne {
	return u.Update(func(s *IssueUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *IssueUpsertOne) UpdateTitle() *IssueUpsertOne {
	return u.Update(func(s *IssueUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *IssueUpsertOne) SetDescription(v string) *IssueUpsertOne {
	return u.Update(func(s *IssueUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *IssueUpsertOne) UpdateDescription() *IssueUpsertOne {
	return u.Update(func(s *IssueUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *IssueUpsertOne) ClearDescription() *IssueUpsertOne {
	return u.Update(func(s *IssueUpsert) {
		s.ClearDescription()
	})
}

// SetPriority sets the "priority" field.
func (u *IssueUpsertOne) SetPriority(v int) *IssueUpsertOne {
	return u.Update(func(s *IssueUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *IssueUpsertOne) AddPriority(v int) *IssueUpsertOne {
	return u.Update(func(s *IssueUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *IssueUpsertOne) UpdatePriority() *IssueUpsertOne {
	return u.Update(func(s *IssueUpsert) {
		s.UpdatePriority()
	})
}

// SetWorkflowStep sets the "workflow_step" field.
func (u *IssueUpsertOne) SetWorkflowStep(v string) *IssueUpsertOne {
	return u.Update(func(s *IssueUpsert) {
		s.SetWorkflowStep(v)
	})
}

// UpdateWorkflowStep sets the "workflow_step" field to the value that was provided on create.
func (u *IssueUpsertOne) UpdateWorkflowStep() *IssueUpsertOne {
	return u.Update(func(s *IssueUpsert) {
		s.UpdateWorkflowStep()
	})
}

// ClearWorkflowStep clears the value of the "workflow_step" field.
func (u *IssueUpsertOne) ClearWorkflowStep() *IssueUpsertOne {
	return u.Update(func(s *IssueUpsert) {
		s.ClearWorkflowStep()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *IssueUpsertOne) SetUpdatedAt(v time.Time) *IssueUpsertOne {
	return u.Update(func(s *IssueUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *IssueUpsertOne) UpdateUpdatedAt() *IssueUpsertOne {
	return u.Update(func(s *IssueUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *IssueUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for IssueCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *IssueUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *IssueUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: IssueUpsertOne.ID is not supported by MySQL driver. Use IssueUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *IssueUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// IssueCreateBulk is the builder for creating many Issue entities in bulk.
type IssueCreateBulk struct {
	config
	err      error
	builders []*IssueCreate
	conflict []sql.ConflictOption
}

// Save creates the Issue entities in the database.
func (_c *IssueCreateBulk) Save(ctx context.Context) ([]*Issue, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Issue, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IssueMutation)
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
func (_c *IssueCreateBulk) SaveX(ctx context.Context) []*Issue {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IssueCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IssueCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Issue.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.IssueUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *IssueCreateBulk) OnConflict(opts ...sql.ConflictOption) *IssueUpsertBulk {
	_c.conflict = opts
	return &IssueUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Issue.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *IssueCreateBulk) OnConflictColumns(columns ...string) *IssueUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &IssueUpsertBulk{
		create: _c,
	}
}

// IssueUpsertBulk is the builder for "upsert"-ing
// a bulk of Issue nodes.
type IssueUpsertBulk struct {
	create *IssueCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Issue.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(issue.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *IssueUpsertBulk) UpdateNewValues() *IssueUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(issue.FieldID)
			}
			if _, exists := b.mutation.ProjectID(); exists {
				s.SetIgnore(issue.FieldProjectID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(issue.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Issue.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *IssueUpsertBulk) Ignore() *IssueUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *IssueUpsertBulk) DoNothing() *IssueUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the IssueCreateBulk.OnConflict
// documentation for more info.
func (u *IssueUpsertBulk) Update(set func(*IssueUpsert)) *IssueUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&IssueUpsert{UpdateSet: update})
	}))
	return u
}

// SetIssueNumber sets the "issue_number" field.
func (u *IssueUpsertBulk) SetIssueNumber(v string) *IssueUpsertBulk {
	return u.Update(func(s *IssueUpsert) {
		s.SetIssueNumber(v)
	})
}

// UpdateIssueNumber sets the "issue_number" field to the value that was provided on create.
func (u *IssueUpsertBulk) UpdateIssueNumber() *IssueUpsertBulk {
	return u.Update(func(s *IssueUpsert) {
		s.UpdateIssueNumber()
	})
}

// SetTitle sets the "title" field.
func (u *IssueUpsertBulk) SetTitle(v string) *IssueUpsertBulk {
	return u.Update(func(s *IssueUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *IssueUpsertBulk) UpdateTitle() *IssueUpsertBulk {
	return u.Update(func(s *IssueUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *IssueUpsertBulk) SetDescription(v string) *IssueUpsertBulk {
	return u.Update(func(s *IssueUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *IssueUpsertBulk) UpdateDescription() *IssueUpsertBulk {
	return u.Update(func(s *IssueUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *IssueUpsertBulk) ClearDescription() *IssueUpsertBulk {
	return u.Update(func(s *IssueUpsert) {
		s.ClearDescription()
	})
}

// SetPriority sets the "priority" field.
func (u *IssueUpsertBulk) SetPriority(v int) *IssueUpsertBulk {
	return u.Update(func(s *IssueUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *IssueUpsertBulk) AddPriority(v int) *IssueUpsertBulk {
	return u.Update(func(s *IssueUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *IssueUpsertBulk) UpdatePriority() *IssueUpsertBulk {
	return u.Update(func(s *IssueUpsert) {
		s.UpdatePriority()
	})
}

// SetWorkflowStep sets the "workflow_step" field.
func (u *IssueUpsertBulk) SetWorkflowStep(v string) *IssueUpsertBulk {
	return u.Update(func(s *IssueUpsert) {
		s.SetWorkflowStep(v)
	})
}

// UpdateWorkflowStep sets the "workflow_step" field to the value that was provided on create.
func (u *IssueUpsertBulk) UpdateWorkflowStep() *IssueUpsertBulk {
	return u.Update(func(s *IssueUpsert) {
		s.UpdateWorkflowStep()
	})
}

// ClearWorkflowStep clears the value of the "workflow_step" field.
func (u *IssueUpsertBulk) ClearWorkflowStep() *IssueUpsertBulk {
	return u.Update(func(s *IssueUpsert) {
		s.ClearWorkflowStep()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *IssueUpsertBulk) SetUpdatedAt(v time.Time) *IssueUpsertBulk {
	return u.Update(func(s *IssueUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *IssueUpsertBulk) UpdateUpdatedAt() *IssueUpsertBulk {
	return u.Update(func(s *IssueUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *IssueUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the IssueCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for IssueCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *IssueUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
