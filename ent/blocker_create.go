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
	"github.com/frankbria/codeframe/ent/blocker"
	"github.com/frankbria/codeframe/ent/project"
)

// BlockerCreate is the builder for creating a Blocker entity.
type BlockerCreate struct {
	config
	mutation *BlockerMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProjectID sets the "project_id" field.
func (_c *BlockerCreate) SetProjectID(v string) *BlockerCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *BlockerCreate) SetKind(v blocker.Kind) *BlockerCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetQuestion sets the "question" field.
func (_c *BlockerCreate) SetQuestion(v string) *BlockerCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *BlockerCreate) SetTaskID(v string) *BlockerCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_c *BlockerCreate) SetNillableTaskID(v *string) *BlockerCreate {
	if v != nil {
		_c.SetTaskID(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *BlockerCreate) SetSessionID(v string) *BlockerCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *BlockerCreate) SetNillableSessionID(v *string) *BlockerCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetAnswer sets the "answer" field.
func (_c *BlockerCreate) SetAnswer(v string) *BlockerCreate {
	_c.mutation.SetAnswer(v)
	return _c
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_c *BlockerCreate) SetNillableAnswer(v *string) *BlockerCreate {
	if v != nil {
		_c.SetAnswer(*v)
	}
	return _c
}

// SetResumeMetadata sets the "resume_metadata" field.
func (_c *BlockerCreate) SetResumeMetadata(v map[string]interface{}) *BlockerCreate {
	_c.mutation.SetResumeMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BlockerCreate) SetCreatedAt(v time.Time) *BlockerCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BlockerCreate) SetNillableCreatedAt(v *time.Time) *BlockerCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetAnsweredAt sets the "answered_at" field.
func (_c *BlockerCreate) SetAnsweredAt(v time.Time) *BlockerCreate {
	_c.mutation.SetAnsweredAt(v)
	return _c
}

// SetNillableAnsweredAt sets the "answered_at" field if the given value is not nil.
func (_c *BlockerCreate) SetNillableAnsweredAt(v *time.Time) *BlockerCreate {
	if v != nil {
		_c.SetAnsweredAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BlockerCreate) SetID(v string) *BlockerCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *BlockerCreate) SetProject(v *Project) *BlockerCreate {
	return _c.SetProjectID(v.ID)
}

// Mutation returns the BlockerMutation object of the builder.
func (_c *BlockerCreate) Mutation() *BlockerMutation {
	return _c.mutation
}

// Save creates the Blocker in the database.
func (_c *BlockerCreate) Save(ctx context.Context) (*Blocker, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BlockerCreate) SaveX(ctx context.Context) *Blocker {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BlockerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BlockerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BlockerCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := blocker.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BlockerCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "Blocker.project_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "Blocker.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := blocker.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Blocker.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "Blocker.question"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Blocker.created_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "Blocker.project"`)}
	}
	return nil
}

func (_c *BlockerCreate) sqlSave(ctx context.Context) (*Blocker, error) {
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
			return nil, fmt.Errorf("unexpected Blocker.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BlockerCreate) createSpec() (*Blocker, *sqlgraph.CreateSpec) {
	var (
		_node = &Blocker{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(blocker.Table, sqlgraph.NewFieldSpec(blocker.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(blocker.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(blocker.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(blocker.FieldTaskID, field.TypeString, value)
		_node.TaskID = &value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(blocker.FieldSessionID, field.TypeString, value)
		_node.SessionID = &value
	}
	if value, ok := _c.mutation.Answer(); ok {
		_spec.SetField(blocker.FieldAnswer, field.TypeString, value)
		_node.Answer = &value
	}
	if value, ok := _c.mutation.ResumeMetadata(); ok {
		_spec.SetField(blocker.FieldResumeMetadata, field.TypeJSON, value)
		_node.ResumeMetadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(blocker.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.AnsweredAt(); ok {
		_spec.SetField(blocker.FieldAnsweredAt, field.TypeTime, value)
		_node.AnsweredAt = &value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   blocker.ProjectTable,
			Columns: []string{blocker.ProjectColumn},
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
//	client.Blocker.Create().
//		SetProjectID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BlockerUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *BlockerCreate) OnConflict(opts ...sql.ConflictOption) *BlockerUpsertOne {
	_c.conflict = opts
	return &BlockerUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Blocker.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BlockerCreate) OnConflictColumns(columns ...string) *BlockerUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BlockerUpsertOne{
		create: _c,
	}
}

type (
	// BlockerUpsertOne is the builder for "upsert"-ing
	//  one Blocker node.
	BlockerUpsertOne struct {
		create *BlockerCreate
	}

	// BlockerUpsert is the "OnConflict" setter.
	BlockerUpsert struct {
		*sql.UpdateSet
	}
)

// SetKind sets the "kind" field.
func (u *BlockerUpsert) SetKind(v blocker.Kind) *BlockerUpsert {
	u.Set(blocker.FieldKind, v)
	return u
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *BlockerUpsert) UpdateKind() *BlockerUpsert {
	u.SetExcluded(blocker.FieldKind)
	return u
}

// SetQuestion sets the "question" field.
func (u *BlockerUpsert) SetQuestion(v string) *BlockerUpsert {
	u.Set(blocker.FieldQuestion, v)
	return u
}

// UpdateQuestion sets the "question" field to the value that was provided on create.
func (u *BlockerUpsert) UpdateQuestion() *BlockerUpsert {
	u.SetExcluded(blocker.FieldQuestion)
	return u
}

// SetTaskID sets the "task_id" field.
func (u *BlockerUpsert) SetTaskID(v string) *BlockerUpsert {
	u.Set(blocker.FieldTaskID, v)
	return u
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *BlockerUpsert) UpdateTaskID() *BlockerUpsert {
	u.SetExcluded(blocker.FieldTaskID)
	return u
}

// ClearTaskID clears the value of the "task_id" field.
func (u *BlockerUpsert) ClearTaskID() *BlockerUpsert {
	u.SetNull(blocker.FieldTaskID)
	return u
}

// SetSessionID sets the "session_id" field.
func (u *BlockerUpsert) SetSessionID(v string) *BlockerUpsert {
	u.Set(blocker.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *BlockerUpsert) UpdateSessionID() *BlockerUpsert {
	u.SetExcluded(blocker.FieldSessionID)
	return u
}

// ClearSessionID clears the value of the "session_id" field.
func (u *BlockerUpsert) ClearSessionID() *BlockerUpsert {
	u.SetNull(blocker.FieldSessionID)
	return u
}

// SetAnswer sets the "answer" field.
func (u *BlockerUpsert) SetAnswer(v string) *BlockerUpsert {
	u.Set(blocker.FieldAnswer, v)
	return u
}

// UpdateAnswer sets the "answer" field to the value that was provided on create.
func (u *BlockerUpsert) UpdateAnswer() *BlockerUpsert {
	u.SetExcluded(blocker.FieldAnswer)
	return u
}

// ClearAnswer clears the value of the "answer" field.
func (u *BlockerUpsert) ClearAnswer() *BlockerUpsert {
	u.SetNull(blocker.FieldAnswer)
	return u
}

// SetResumeMetadata sets the "resume_metadata" field.
func (u *BlockerUpsert) SetResumeMetadata(v map[string]interface{}) *BlockerUpsert {
	u.Set(blocker.FieldResumeMetadata, v)
	return u
}

// UpdateResumeMetadata sets the "resume_metadata" field to the value that was provided on create.
func (u *BlockerUpsert) UpdateResumeMetadata() *BlockerUpsert {
	u.SetExcluded(blocker.FieldResumeMetadata)
	return u
}

// ClearResumeMetadata clears the value of the "resume_metadata" field.
func (u *BlockerUpsert) ClearResumeMetadata() *BlockerUpsert {
	u.SetNull(blocker.FieldResumeMetadata)
	return u
}

// SetAnsweredAt sets the "answered_at" field.
func (u *BlockerUpsert) SetAnsweredAt(v time.Time) *BlockerUpsert {
	u.Set(blocker.FieldAnsweredAt, v)
	return u
}

// UpdateAnsweredAt sets the "answered_at" field to the value that was provided on create.
func (u *BlockerUpsert) UpdateAnsweredAt() *BlockerUpsert {
	u.SetExcluded(blocker.FieldAnsweredAt)
	return u
}

// ClearAnsweredAt clears the value of the "answered_at" field.
func (u *BlockerUpsert) ClearAnsweredAt() *BlockerUpsert {
	u.SetNull(blocker.FieldAnsweredAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Blocker.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(blocker.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BlockerUpsertOne) UpdateNewValues() *BlockerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(blocker.FieldID)
		}
		if _, exists := u.create.mutation.ProjectID(); exists {
			s.SetIgnore(blocker.FieldProjectID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(blocker.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Blocker.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BlockerUpsertOne) Ignore() *BlockerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BlockerUpsertOne) DoNothing() *BlockerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BlockerCreate.OnConflict
// documentation for more info.
func (u *BlockerUpsertOne) Update(set func(*BlockerUpsert)) *BlockerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BlockerUpsert{UpdateSet: update})
	}))
	return u
}

// SetKind sets the "kind" field.
func (u *BlockerUpsertOne) SetKind(v blocker.Kind) *BlockerUpsertOne {
	return u.Update(func(s *BlockerUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *BlockerUpsertOne) UpdateKind() *BlockerUpsertOne {
	return u.Update(func(s *BlockerUpsert) {
		s.UpdateKind()
	})
}

// SetQuestion sets the "question" field.
func (u *BlockerUpsertOne) SetQuestion(v string) *BlockerUpsertOne {
	return u.Update(func(s *BlockerUpsert) {
		s.SetQuestion(v)
	})
}

// UpdateQuestion sets the "question" field to the value that was provided on create.
func (u *BlockerUpsertOne) UpdateQuestion() *BlockerUpsertOne {
	return u.Update(func(s *BlockerUpsert) {
		s.UpdateQuestion()
	})
}

// SetTaskID sets the "task_id" field.
func (u *BlockerUpsertOne) SetTaskID(v string) *BlockerUpsertOne {
	return u.Update(func(s *BlockerUpsert) {
		s.SetTaskID(v)
	})
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *BlockerUpsertOne) UpdateTaskID() *BlockerUpsertOne {
	return u.Update(func(s *BlockerUpsert) {
		s.UpdateTaskID()
	})
}

// ClearTaskID clears the value of the "task_id" field.
func (u *BlockerUpsertOne) ClearTaskID() *BlockerUpsertOne {
	return u.Update(func(s *BlockerUpsert) {
		s.ClearTaskID()
	})
}

// SetSessionID sets the "session_id" field.
func (u *BlockerUpsertOne) SetSessionID(v string) *BlockerUpsertOne {
	return u.Update(func(s *BlockerUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *BlockerUpsertOne) UpdateSessionID() *BlockerUpsertOne {
	return u.Update(func(s *BlockerUpsert) {
		s.UpdateSessionID()
	})
}

// ClearSessionID clears the value of the "session_id" field.
func (u *BlockerUpsertOne) ClearSessionID() *BlockerUpsertOne {
	return u.Update(func(s *BlockerUpsert) {
		s.ClearSessionID()
	})
}

// SetAnswer sets the "answer" field.
func (u *BlockerUpsertOne) SetAnswer(v string) *BlockerUpsertOne {
	return u.Update(func(s *BlockerUpsert) {
		s.SetAnswer(v)
	})
}

// UpdateAnswer sets the "answer" field to the value that was provided on create.
func (u *BlockerUpsertOne) UpdateAnswer() *BlockerUpsertOne {
	return u.Update(func(s *BlockerUpsert) {
		s.UpdateAnswer()
	})
}

// ClearAnswer clears the value of the "answer" field.
func (u *BlockerUpsertOne) ClearAnswer() *BlockerUpsertOne {
	return u.Update(func(s *BlockerUpsert) {
		s.ClearAnswer()
	})
}

// SetResumeMetadata sets the "resume_metadata" field.
func (u *BlockerUpsertOne) SetResumeMetadata(v map[string]interface{}) *BlockerUpsertOne {
	return u.Update(func(s *BlockerUpsert) {
		s.SetResumeMetadata(v)
	})
}

// UpdateResumeMetadata sets the "resume_metadata" field to the value that was provided on create.
func (u *BlockerUpsertOne) UpdateResumeMetadata() *BlockerUpsertOne {
	return u.Update(func(s *BlockerUpsert) {
		s.UpdateResumeMetadata()
	})
}

// ClearResumeMetadata clears the value of the "resume_metadata" field.
func (u *BlockerUpsertOne) ClearResumeMetadata() *BlockerUpsertOne {
	return u.Update(func(s *BlockerUpsert) {
		s.ClearResumeMetadata()
	})
}

// SetAnsweredAt sets the "answered_at" field.
func (u *BlockerUpsertOne) SetAnsweredAt(v time.Time) *BlockerUpsertOne {
	return u.Update(func(s *BlockerUpsert) {
		s.SetAnsweredAt(v)
	})
}

// UpdateAnsweredAt sets the "answered_at" field to the value that was provided on create.
func (u *BlockerUpsertOne) UpdateAnsweredAt() *BlockerUpsertOne {
	return u.Update(func(s *BlockerUpsert) {
		s.UpdateAnsweredAt()
	})
}

// ClearAnsweredAt clears the value of the "answered_at" field.
func (u *BlockerUpsertOne) ClearAnsweredAt() *BlockerUpsertOne {
	return u.Update(func(s *BlockerUpsert) {
		s.ClearAnsweredAt()
	})
}

// Exec executes the query.
func (u *BlockerUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BlockerCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BlockerUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BlockerUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: BlockerUpsertOne.ID is not supported by MySQL driver. Use BlockerUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BlockerUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BlockerCreateBulk is the builder for creating many Blocker entities in bulk.
type BlockerCreateBulk struct {
	config
	err      error
	builders []*BlockerCreate
	conflict []sql.ConflictOption
}

// Save creates the Blocker entities in the database.
func (_c *BlockerCreateBulk) Save(ctx context.Context) ([]*Blocker, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Blocker, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BlockerMutation)
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
func (_c *BlockerCreateBulk) SaveX(ctx context.Context) []*Blocker {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BlockerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BlockerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Blocker.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BlockerUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *BlockerCreateBulk) OnConflict(opts ...sql.ConflictOption) *BlockerUpsertBulk {
	_c.conflict = opts
	return &BlockerUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Blocker.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BlockerCreateBulk) OnConflictColumns(columns ...string) *BlockerUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BlockerUpsertBulk{
		create: _c,
	}
}

// BlockerUpsertBulk is the builder for "upsert"-ing
// a bulk of Blocker nodes.
type BlockerUpsertBulk struct {
	create *BlockerCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Blocker.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(blocker.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BlockerUpsertBulk) UpdateNewValues() *BlockerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(blocker.FieldID)
			}
			if _, exists := b.mutation.ProjectID(); exists {
				s.SetIgnore(blocker.FieldProjectID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(blocker.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Blocker.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BlockerUpsertBulk) Ignore() *BlockerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BlockerUpsertBulk) DoNothing() *BlockerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BlockerCreateBulk.OnConflict
// documentation for more info.
func (u *BlockerUpsertBulk) Update(set func(*BlockerUpsert)) *BlockerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BlockerUpsert{UpdateSet: update})
	}))
	return u
}

// SetKind sets the "kind" field.
func (u *BlockerUpsertBulk) SetKind(v blocker.Kind) *BlockerUpsertBulk {
	return u.Update(func(s *BlockerUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *BlockerUpsertBulk) UpdateKind() *BlockerUpsertBulk {
	return u.Update(func(s *BlockerUpsert) {
		s.UpdateKind()
	})
}

// SetQuestion sets the "question" field.
func (u *BlockerUpsertBulk) SetQuestion(v string) *BlockerUpsertBulk {
	return u.Update(func(s *BlockerUpsert) {
		s.SetQuestion(v)
	})
}

// UpdateQuestion sets the "question" field to the value that was provided on create.
func (u *BlockerUpsertBulk) UpdateQuestion() *BlockerUpsertBulk {
	return u.Update(func(s *BlockerUpsert) {
		s.UpdateQuestion()
	})
}

// SetTaskID sets the "task_id" field.
func (u *BlockerUpsertBulk) SetTaskID(v string) *BlockerUpsertBulk {
	return u.Update(func(s *BlockerUpsert) {
		s.SetTaskID(v)
	})
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *BlockerUpsertBulk) UpdateTaskID() *BlockerUpsertBulk {
	return u.Update(func(s *BlockerUpsert) {
		s.UpdateTaskID()
	})
}

// ClearTaskID clears the value of the "task_id" field.
func (u *BlockerUpsertBulk) ClearTaskID() *BlockerUpsertBulk {
	return u.Update(func(s *BlockerUpsert) {
		s.ClearTaskID()
	})
}

// SetSessionID sets the "session_id" field.
func (u *BlockerUpsertBulk) SetSessionID(v string) *BlockerUpsertBulk {
	return u.Update(func(s *BlockerUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *BlockerUpsertBulk) UpdateSessionID() *BlockerUpsertBulk {
	return u.Update(func(s *BlockerUpsert) {
		s.UpdateSessionID()
	})
}

// ClearSessionID clears the value of the "session_id" field.
func (u *BlockerUpsertBulk) ClearSessionID() *BlockerUpsertBulk {
	return u.Update(func(s *BlockerUpsert) {
		s.ClearSessionID()
	})
}

// SetAnswer sets the "answer" field.
func (u *BlockerUpsertBulk) SetAnswer(v string) *BlockerUpsertBulk {
	return u.Update(func(s *BlockerUpsert) {
		s.SetAnswer(v)
	})
}

// UpdateAnswer sets the "answer" field to the value that was provided on create.
func (u *BlockerUpsertBulk) UpdateAnswer() *BlockerUpsertBulk {
	return u.Update(func(s *BlockerUpsert) {
		s.UpdateAnswer()
	})
}

// ClearAnswer clears the value of the "answer" field.
func (u *BlockerUpsertBulk) ClearAnswer() *BlockerUpsertBulk {
	return u.Update(func(s *BlockerUpsert) {
		s.ClearAnswer()
	})
}

// SetResumeMetadata sets the "resume_metadata" field.
func (u *BlockerUpsertBulk) SetResumeMetadata(v map[string]interface{}) *BlockerUpsertBulk {
	return u.Update(func(s *BlockerUpsert) {
		s.SetResumeMetadata(v)
	})
}

// UpdateResumeMetadata sets the "resume_metadata" field to the value that was provided on create.
func (u *BlockerUpsertBulk) UpdateResumeMetadata() *BlockerUpsertBulk {
	return u.Update(func(s *BlockerUpsert) {
		s.UpdateResumeMetadata()
	})
}

// ClearResumeMetadata clears the value of the "resume_metadata" field.
func (u *BlockerUpsertBulk) ClearResumeMetadata() *BlockerUpsertBulk {
	return u.Update(func(s *BlockerUpsert) {
		s.ClearResumeMetadata()
	})
}

// SetAnsweredAt sets the "answered_at" field.
func (u *BlockerUpsertBulk) SetAnsweredAt(v time.Time) *BlockerUpsertBulk {
	return u.Update(func(s *BlockerUpsert) {
		s.SetAnsweredAt(v)
	})
}

// UpdateAnsweredAt sets the "answered_at" field to the value that was provided on create.
func (u *BlockerUpsertBulk) UpdateAnsweredAt() *BlockerUpsertBulk {
	return u.Update(func(s *BlockerUpsert) {
		s.UpdateAnsweredAt()
	})
}

// ClearAnsweredAt clears the value of the "answered_at" field.
func (u *BlockerUpsertBulk) ClearAnsweredAt() *BlockerUpsertBulk {
	return u.Update(func(s *BlockerUpsert) {
		s.ClearAnsweredAt()
	})
}

// Exec executes the query.
func (u *BlockerUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the BlockerCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BlockerCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BlockerUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
