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
	"github.com/frankbria/codeframe/ent/project"
	"github.com/frankbria/codeframe/ent/tokenusage"
)

// TokenUsageCreate is the builder for creating a TokenUsage entity.
type TokenUsageCreate struct {
	config
	mutation *TokenUsageMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProjectID sets the "project_id" field.
func (_c *TokenUsageCreate) SetProjectID(v string) *TokenUsageCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *TokenUsageCreate) SetSessionID(v string) *TokenUsageCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *TokenUsageCreate) SetNillableSessionID(v *string) *TokenUsageCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *TokenUsageCreate) SetTaskID(v string) *TokenUsageCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_c *TokenUsageCreate) SetNillableTaskID(v *string) *TokenUsageCreate {
	if v != nil {
		_c.SetTaskID(*v)
	}
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *TokenUsageCreate) SetAgentID(v string) *TokenUsageCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_c *TokenUsageCreate) SetNillableAgentID(v *string) *TokenUsageCreate {
	if v != nil {
		_c.SetAgentID(*v)
	}
	return _c
}

// SetModel sets the "model" field.
func (_c *TokenUsageCreate) SetModel(v string) *TokenUsageCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetCallType sets the "call_type" field.
func (_c *TokenUsageCreate) SetCallType(v string) *TokenUsageCreate {
	_c.mutation.SetCallType(v)
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *TokenUsageCreate) SetInputTokens(v int) *TokenUsageCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *TokenUsageCreate) SetOutputTokens(v int) *TokenUsageCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TokenUsageCreate) SetCreatedAt(v time.Time) *TokenUsageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TokenUsageCreate) SetNillableCreatedAt(v *time.Time) *TokenUsageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TokenUsageCreate) SetID(v string) *TokenUsageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *TokenUsageCreate) SetProject(v *Project) *TokenUsageCreate {
	return _c.SetProjectID(v.ID)
}

// Mutation returns the TokenUsageMutation object of the builder.
func (_c *TokenUsageCreate) Mutation() *TokenUsageMutation {
	return _c.mutation
}

// Save creates the TokenUsage in the database.
func (_c *TokenUsageCreate) Save(ctx context.Context) (*TokenUsage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TokenUsageCreate) SaveX(ctx context.Context) *TokenUsage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TokenUsageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TokenUsageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TokenUsageCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := tokenusage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TokenUsageCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "TokenUsage.project_id"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "TokenUsage.model"`)}
	}
	if _, ok := _c.mutation.CallType(); !ok {
		return &ValidationError{Name: "call_type", err: errors.New(`ent: missing required field "TokenUsage.call_type"`)}
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		return &ValidationError{Name: "input_tokens", err: errors.New(`ent: missing required field "TokenUsage.input_tokens"`)}
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		return &ValidationError{Name: "output_tokens", err: errors.New(`ent: missing required field "TokenUsage.output_tokens"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TokenUsage.created_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "TokenUsage.project"`)}
	}
	return nil
}

func (_c *TokenUsageCreate) sqlSave(ctx context.Context) (*TokenUsage, error) {
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
			return nil, fmt.Errorf("unexpected TokenUsage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TokenUsageCreate) createSpec() (*TokenUsage, *sqlgraph.CreateSpec) {
	var (
		_node = &TokenUsage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tokenusage.Table, sqlgraph.NewFieldSpec(tokenusage.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(tokenusage.FieldSessionID, field.TypeString, value)
		_node.SessionID = &value
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(tokenusage.FieldTaskID, field.TypeString, value)
		_node.TaskID = &value
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(tokenusage.FieldAgentID, field.TypeString, value)
		_node.AgentID = &value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(tokenusage.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.CallType(); ok {
		_spec.SetField(tokenusage.FieldCallType, field.TypeString, value)
		_node.CallType = value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(tokenusage.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(tokenusage.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tokenusage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   tokenusage.ProjectTable,
			Columns: []string{tokenusage.ProjectColumn},
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
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TokenUsage.Create().
//		SetProjectID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TokenUsageUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *TokenUsageCreate) OnConflict(opts ...sql.ConflictOption) *TokenUsageUpsertOne {
	_c.conflict = opts
	return &TokenUsageUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TokenUsage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TokenUsageCreate) OnConflictColumns(columns ...string) *TokenUsageUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TokenUsageUpsertOne{
		create: _c,
	}
}

type (
	// TokenUsageUpsertOne is the builder for "upsert"-ing
	//  one TokenUsage node.
	TokenUsageUpsertOne struct {
		create *TokenUsageCreate
	}

	// TokenUsageUpsert is the "OnConflict" setter.
	TokenUsageUpsert struct {
		*sql.UpdateSet
	}
)

// SetSessionID sets the "session_id" field.
func (u *TokenUsageUpsert) SetSessionID(v string) *TokenUsageUpsert {
	u.Set(tokenusage.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *TokenUsageUpsert) UpdateSessionID() *TokenUsageUpsert {
	u.SetExcluded(tokenusage.FieldSessionID)
	return u
}

// ClearSessionID clears the value of the "session_id" field.
func (u *TokenUsageUpsert) ClearSessionID() *TokenUsageUpsert {
	u.SetNull(tokenusage.FieldSessionID)
	return u
}

// SetTaskID sets the "task_id" field.
func (u *TokenUsageUpsert) SetTaskID(v string) *TokenUsageUpsert {
	u.Set(tokenusage.FieldTaskID, v)
	return u
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *TokenUsageUpsert) UpdateTaskID() *TokenUsageUpsert {
	u.SetExcluded(tokenusage.FieldTaskID)
	return u
}

// ClearTaskID clears the value of the "task_id" field.
func (u *TokenUsageUpsert) ClearTaskID() *TokenUsageUpsert {
	u.SetNull(tokenusage.FieldTaskID)
	return u
}

// SetAgentID sets the "agent_id" field.
func (u *TokenUsageUpsert) SetAgentID(v string) *TokenUsageUpsert {
	u.Set(tokenusage.FieldAgentID, v)
	return u
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *TokenUsageUpsert) UpdateAgentID() *TokenUsageUpsert {
	u.SetExcluded(tokenusage.FieldAgentID)
	return u
}

// ClearAgentID clears the value of the "agent_id" field.
func (u *TokenUsageUpsert) ClearAgentID() *TokenUsageUpsert {
	u.SetNull(tokenusage.FieldAgentID)
	return u
}

// SetModel sets the "model" field.
func (u *TokenUsageUpsert) SetModel(v string) *TokenUsageUpsert {
	u.Set(tokenusage.FieldModel, v)
	return u
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *TokenUsageUpsert) UpdateModel() *TokenUsageUpsert {
	u.SetExcluded(tokenusage.FieldModel)
	return u
}

// SetCallType sets the "call_type" field.
func (u *TokenUsageUpsert) SetCallType(v string) *TokenUsageUpsert {
	u.Set(tokenusage.FieldCallType, v)
	return u
}

// UpdateCallType sets the "call_type" field to the value that was provided on create.
func (u *TokenUsageUpsert) UpdateCallType() *TokenUsageUpsert {
	u.SetExcluded(tokenusage.FieldCallType)
	return u
}

// SetInputTokens sets the "input_tokens" field.
func (u *TokenUsageUpsert) SetInputTokens(v int) *TokenUsageUpsert {
	u.Set(tokenusage.FieldInputTokens, v)
	return u
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *TokenUsageUpsert) UpdateInputTokens() *TokenUsageUpsert {
	u.SetExcluded(tokenusage.FieldInputTokens)
	return u
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *TokenUsageUpsert) AddInputTokens(v int) *TokenUsageUpsert {
	u.Add(tokenusage.FieldInputTokens, v)
	return u
}

// SetOutputTokens sets the "output_tokens" field.
func (u *TokenUsageUpsert) SetOutputTokens(v int) *TokenUsageUpsert {
	u.Set(tokenusage.FieldOutputTokens, v)
	return u
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *TokenUsageUpsert) UpdateOutputTokens() *TokenUsageUpsert {
	u.SetExcluded(tokenusage.FieldOutputTokens)
	return u
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *TokenUsageUpsert) AddOutputTokens(v int) *TokenUsageUpsert {
	u.Add(tokenusage.FieldOutputTokens, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.TokenUsage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(tokenusage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TokenUsageUpsertOne) UpdateNewValues() *TokenUsageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(tokenusage.FieldID)
		}
		if _, exists := u.create.mutation.ProjectID(); exists {
			s.SetIgnore(tokenusage.FieldProjectID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(tokenusage.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TokenUsage.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TokenUsageUpsertOne) Ignore() *TokenUsageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TokenUsageUpsertOne) DoNothing() *TokenUsageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TokenUsageCreate.OnConflict
// documentation for more info.
func (u *TokenUsageUpsertOne) Update(set func(*TokenUsageUpsert)) *TokenUsageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TokenUsageUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *TokenUsageUpsertOne) SetSessionID(v string) *TokenUsageUpsertOne {
	return u.Update(func(s *TokenUsageUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *TokenUsageUpsertOne) UpdateSessionID() *TokenUsageUpsertOne {
	return u.Update(func(s *TokenUsageUpsert) {
		s.UpdateSessionID()
	})
}

// ClearSessionID clears the value of the "session_id" field.
func (u *TokenUsageUpsertOne) ClearSessionID() *TokenUsageUpsertOne {
	return u.Update(func(s *TokenUsageUpsert) {
		s.ClearSessionID()
	})
}

// SetTaskID sets the "task_id" field.
func (u *TokenUsageUpsertOne) SetTaskID(v string) *TokenUsageUpsertOne {
	return u.Update(func(s *TokenUsageUpsert) {
		s.SetTaskID(v)
	})
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *TokenUsageUpsertOne) UpdateTaskID() *TokenUsageUpsertOne {
	return u.Update(func(s *TokenUsageUpsert) {
		s.UpdateTaskID()
	})
}

// ClearTaskID clears the value of the "task_id" field.
func (u *TokenUsageUpsertOne) ClearTaskID() *TokenUsageUpsertOne {
	return u.Update(func(s *TokenUsageUpsert) {
		s.ClearTaskID()
	})
}

// SetAgentID sets the "agent_id" field.
func (u *TokenUsageUpsertOne) SetAgentID(v string) *TokenUsageUpsertOne {
	return u.Update(func(s *TokenUsageUpsert) {
		s.SetAgentID(v)
	})
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *TokenUsageUpsertOne) UpdateAgentID() *TokenUsageUpsertOne {
	return u.Update(func(s *TokenUsageUpsert) {
		s.UpdateAgentID()
	})
}

// ClearAgentID clears the value of the "agent_id" field.
func (u *TokenUsageUpsertOne) ClearAgentID() *TokenUsageUpsertOne {
	return u.Update(func(s *TokenUsageUpsert) {
		s.ClearAgentID()
	})
}

// SetModel sets the "model" field.
func (u *TokenUsageUpsertOne) SetModel(v string) *TokenUsageUpsertOne {
	return u.Update(func(s *TokenUsageUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *TokenUsageUpsertOne) UpdateModel() *TokenUsageUpsertOne {
	return u.Update(func(s *TokenUsageUpsert) {
		s.UpdateModel()
	})
}

// SetCallType sets the "call_type" field.
func (u *TokenUsageUpsertOne) SetCallType(v string) *TokenUsageUpsertOne {
	return u.Update(func(s *TokenUsageUpsert) {
		s.SetCallType(v)
	})
}

// UpdateCallType sets the "call_type" field to the value that was provided on create.
func (u *TokenUsageUpsertOne) UpdateCallType() *TokenUsageUpsertOne {
	return u.Update(func(s *TokenUsageUpsert) {
		s.UpdateCallType()
	})
}

// SetInputTokens sets the "input_tokens" field.
func (u *TokenUsageUpsertOne) SetInputTokens(v int) *TokenUsageUpsertOne {
	return u.Update(func(s *TokenUsageUpsert) {
		s.SetInputTokens(v)
	})
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *TokenUsageUpsertOne) AddInputTokens(v int) *TokenUsageUpsertOne {
	return u.Update(func(s *TokenUsageUpsert) {
		s.AddInputTokens(v)
	})
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *TokenUsageUpsertOne) UpdateInputTokens() *TokenUsageUpsertOne {
	return u.Update(func(s *TokenUsageUpsert) {
		s.UpdateInputTokens()
	})
}

// SetOutputTokens sets the "output_tokens" field.
func (u *TokenUsageUpsertOne) SetOutputTokens(v int) *TokenUsageUpsertOne {
	return u.Update(func(s *TokenUsageUpsert) {
		s.SetOutputTokens(v)
	})
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *TokenUsageUpsertOne) AddOutputTokens(v int) *TokenUsageUpsertOne {
	return u.Update(func(s *TokenUsageUpsert) {
		s.AddOutputTokens(v)
	})
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *TokenUsageUpsertOne) UpdateOutputTokens() *TokenUsageUpsertOne {
	return u.Update(func(s *TokenUsageUpsert) {
		s.UpdateOutputTokens()
	})
}

// Exec executes the query.
func (u *TokenUsageUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TokenUsageCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TokenUsageUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TokenUsageUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TokenUsageUpsertOne.ID is not supported by MySQL driver. Use TokenUsageUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TokenUsageUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TokenUsageCreateBulk is the builder for creating many TokenUsage entities in bulk.
type TokenUsageCreateBulk struct {
	config
	err      error
	builders []*TokenUsageCreate
	conflict []sql.ConflictOption
}

// Save creates the TokenUsage entities in the database.
func (_c *TokenUsageCreateBulk) Save(ctx context.Context) ([]*TokenUsage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TokenUsage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TokenUsageMutation)
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
func (_c *TokenUsageCreateBulk) SaveX(ctx context.Context) []*TokenUsage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TokenUsageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TokenUsageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TokenUsage.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TokenUsageUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *TokenUsageCreateBulk) OnConflict(opts ...sql.ConflictOption) *TokenUsageUpsertBulk {
	_c.conflict = opts
	return &TokenUsageUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TokenUsage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TokenUsageCreateBulk) OnConflictColumns(columns ...string) *TokenUsageUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TokenUsageUpsertBulk{
		create: _c,
	}
}

// TokenUsageUpsertBulk is the builder for "upsert"-ing
// a bulk of TokenUsage nodes.
type TokenUsageUpsertBulk struct {
	create *TokenUsageCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TokenUsage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(tokenusage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TokenUsageUpsertBulk) UpdateNewValues() *TokenUsageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(tokenusage.FieldID)
			}
			if _, exists := b.mutation.ProjectID(); exists {
				s.SetIgnore(tokenusage.FieldProjectID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(tokenusage.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TokenUsage.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TokenUsageUpsertBulk) Ignore() *TokenUsageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TokenUsageUpsertBulk) DoNothing() *TokenUsageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TokenUsageCreateBulk.OnConflict
// documentation for more info.
func (u *TokenUsageUpsertBulk) Update(set func(*TokenUsageUpsert)) *TokenUsageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TokenUsageUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *TokenUsageUpsertBulk) SetSessionID(v string) *TokenUsageUpsertBulk {
	return u.Update(func(s *TokenUsageUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *TokenUsageUpsertBulk) UpdateSessionID() *TokenUsageUpsertBulk {
	return u.Update(func(s *TokenUsageUpsert) {
		s.UpdateSessionID()
	})
}

// ClearSessionID clears the value of the "session_id" field.
func (u *TokenUsageUpsertBulk) ClearSessionID() *TokenUsageUpsertBulk {
	return u.Update(func(s *TokenUsageUpsert) {
		s.ClearSessionID()
	})
}

// SetTaskID sets the "task_id" field.
func (u *TokenUsageUpsertBulk) SetTaskID(v string) *TokenUsageUpsertBulk {
	return u.Update(func(s *TokenUsageUpsert) {
		s.SetTaskID(v)
	})
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *TokenUsageUpsertBulk) UpdateTaskID() *TokenUsageUpsertBulk {
	return u.Update(func(s *TokenUsageUpsert) {
		s.UpdateTaskID()
	})
}

// ClearTaskID clears the value of the "task_id" field.
func (u *TokenUsageUpsertBulk) ClearTaskID() *TokenUsageUpsertBulk {
	return u.Update(func(s *TokenUsageUpsert) {
		s.ClearTaskID()
	})
}

// SetAgentID sets the "agent_id" field.
func (u *TokenUsageUpsertBulk) SetAgentID(v string) *TokenUsageUpsertBulk {
	return u.Update(func(s *TokenUsageUpsert) {
		s.SetAgentID(v)
	})
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *TokenUsageUpsertBulk) UpdateAgentID() *TokenUsageUpsertBulk {
	return u.Update(func(s *TokenUsageUpsert) {
		s.UpdateAgentID()
	})
}

// ClearAgentID clears the value of the "agent_id" field.
func (u *TokenUsageUpsertBulk) ClearAgentID() *TokenUsageUpsertBulk {
	return u.Update(func(s *TokenUsageUpsert) {
		s.ClearAgentID()
	})
}

// SetModel sets the "model" field.
func (u *TokenUsageUpsertBulk) SetModel(v string) *TokenUsageUpsertBulk {
	return u.Update(func(s *TokenUsageUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *TokenUsageUpsertBulk) UpdateModel() *TokenUsageUpsertBulk {
	return u.Update(func(s *TokenUsageUpsert) {
		s.UpdateModel()
	})
}

// SetCallType sets the "call_type" field.
func (u *TokenUsageUpsertBulk) SetCallType(v string) *TokenUsageUpsertBulk {
	return u.Update(func(s *TokenUsageUpsert) {
		s.SetCallType(v)
	})
}

// UpdateCallType sets the "call_type" field to the value that was provided on create.
func (u *TokenUsageUpsertBulk) UpdateCallType() *TokenUsageUpsertBulk {
	return u.Update(func(s *TokenUsageUpsert) {
		s.UpdateCallType()
	})
}

// SetInputTokens sets the "input_tokens" field.
func (u *TokenUsageUpsertBulk) SetInputTokens(v int) *TokenUsageUpsertBulk {
	return u.Update(func(s *TokenUsageUpsert) {
		s.SetInputTokens(v)
	})
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *TokenUsageUpsertBulk) AddInputTokens(v int) *TokenUsageUpsertBulk {
	return u.Update(func(s *TokenUsageUpsert) {
		s.AddInputTokens(v)
	})
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *TokenUsageUpsertBulk) UpdateInputTokens() *TokenUsageUpsertBulk {
	return u.Update(func(s *TokenUsageUpsert) {
		s.UpdateInputTokens()
	})
}

// SetOutputTokens sets the "output_tokens" field.
func (u *TokenUsageUpsertBulk) SetOutputTokens(v int) *TokenUsageUpsertBulk {
	return u.Update(func(s *TokenUsageUpsert) {
		s.SetOutputTokens(v)
	})
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *TokenUsageUpsertBulk) AddOutputTokens(v int) *TokenUsageUpsertBulk {
	return u.Update(func(s *TokenUsageUpsert) {
		s.AddOutputTokens(v)
	})
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *TokenUsageUpsertBulk) UpdateOutputTokens() *TokenUsageUpsertBulk {
	return u.Update(func(s *TokenUsageUpsert) {
		s.UpdateOutputTokens()
	})
}

// Exec executes the query.
func (u *TokenUsageUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TokenUsageCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TokenUsageCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TokenUsageUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
