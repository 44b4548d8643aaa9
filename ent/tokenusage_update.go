// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/frankbria/codeframe/ent/predicate"
	"github.com/frankbria/codeframe/ent/tokenusage"
)

// TokenUsageUpdate is the builder for updating TokenUsage entities.
type TokenUsageUpdate struct {
	config
	hooks    []Hook
	mutation *TokenUsageMutation
}

// Where appends a list predicates to the TokenUsageUpdate builder.
func (_u *TokenUsageUpdate) Where(ps ...predicate.TokenUsage) *TokenUsageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *TokenUsageUpdate) SetSessionID(v string) *TokenUsageUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TokenUsageUpdate) SetNillableSessionID(v *string) *TokenUsageUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *TokenUsageUpdate) ClearSessionID() *TokenUsageUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *TokenUsageUpdate) SetTaskID(v string) *TokenUsageUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *TokenUsageUpdate) SetNillableTaskID(v *string) *TokenUsageUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// ClearTaskID clears the value of the "task_id" field.
func (_u *TokenUsageUpdate) ClearTaskID() *TokenUsageUpdate {
	_u.mutation.ClearTaskID()
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *TokenUsageUpdate) SetAgentID(v string) *TokenUsageUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *TokenUsageUpdate) SetNillableAgentID(v *string) *TokenUsageUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *TokenUsageUpdate) ClearAgentID() *TokenUsageUpdate {
	_u.mutation.ClearAgentID()
	return _u
}

// SetModel sets the "model" field.
func (_u *TokenUsageUpdate) SetModel(v string) *TokenUsageUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *TokenUsageUpdate) SetNillableModel(v *string) *TokenUsageUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetCallType sets the "call_type" field.
func (_u *TokenUsageUpdate) SetCallType(v string) *TokenUsageUpdate {
	_u.mutation.SetCallType(v)
	return _u
}

// SetNillableCallType sets the "call_type" field if the given value is not nil.
func (_u *TokenUsageUpdate) SetNillableCallType(v *string) *TokenUsageUpdate {
	if v != nil {
		_u.SetCallType(*v)
	}
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *TokenUsageUpdate) SetInputTokens(v int) *TokenUsageUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *TokenUsageUpdate) SetNillableInputTokens(v *int) *TokenUsageUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *TokenUsageUpdate) AddInputTokens(v int) *TokenUsageUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *TokenUsageUpdate) SetOutputTokens(v int) *TokenUsageUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *TokenUsageUpdate) SetNillableOutputTokens(v *int) *TokenUsageUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *TokenUsageUpdate) AddOutputTokens(v int) *TokenUsageUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// Mutation returns the TokenUsageMutation object of the builder.
func (_u *TokenUsageUpdate) Mutation() *TokenUsageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TokenUsageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TokenUsageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TokenUsageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TokenUsageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TokenUsageUpdate) check() error {
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TokenUsage.project"`)
	}
	return nil
}

func (_u *TokenUsageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tokenusage.Table, tokenusage.Columns, sqlgraph.NewFieldSpec(tokenusage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(tokenusage.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(tokenusage.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(tokenusage.FieldTaskID, field.TypeString, value)
	}
	if _u.mutation.TaskIDCleared() {
		_spec.ClearField(tokenusage.FieldTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(tokenusage.FieldAgentID, field.TypeString, value)
	}
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(tokenusage.FieldAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(tokenusage.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.CallType(); ok {
		_spec.SetField(tokenusage.FieldCallType, field.TypeString, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(tokenusage.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(tokenusage.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(tokenusage.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(tokenusage.FieldOutputTokens, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tokenusage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TokenUsageUpdateOne is the builder for updating a single TokenUsage entity.
type TokenUsageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TokenUsageMutation
}

// SetSessionID sets the "session_id" field.
func (_u *TokenUsageUpdateOne) SetSessionID(v string) *TokenUsageUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TokenUsageUpdateOne) SetNillableSessionID(v *string) *TokenUsageUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *TokenUsageUpdateOne) ClearSessionID() *TokenUsageUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *TokenUsageUpdateOne) SetTaskID(v string) *TokenUsageUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *TokenUsageUpdateOne) SetNillableTaskID(v *string) *TokenUsageUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// ClearTaskID clears the value of the "task_id" field.
func (_u *TokenUsageUpdateOne) ClearTaskID() *TokenUsageUpdateOne {
	_u.mutation.ClearTaskID()
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *TokenUsageUpdateOne) SetAgentID(v string) *TokenUsageUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *TokenUsageUpdateOne) SetNillableAgentID(v *string) *TokenUsageUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *TokenUsageUpdateOne) ClearAgentID() *TokenUsageUpdateOne {
	_u.mutation.ClearAgentID()
	return _u
}

// SetModel sets the "model" field.
func (_u *TokenUsageUpdateOne) SetModel(v string) *TokenUsageUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *TokenUsageUpdateOne) SetNillableModel(v *string) *TokenUsageUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetCallType sets the "call_type" field.
func (_u *TokenUsageUpdateOne) SetCallType(v string) *TokenUsageUpdateOne {
	_u.mutation.SetCallType(v)
	return _u
}

// SetNillableCallType sets the "call_type" field if the given value is not nil.
func (_u *TokenUsageUpdateOne) SetNillableCallType(v *string) *TokenUsageUpdateOne {
	if v != nil {
		_u.SetCallType(*v)
	}
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *TokenUsageUpdateOne) SetInputTokens(v int) *TokenUsageUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *TokenUsageUpdateOne) SetNillableInputTokens(v *int) *TokenUsageUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *TokenUsageUpdateOne) AddInputTokens(v int) *TokenUsageUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *TokenUsageUpdateOne) SetOutputTokens(v int) *TokenUsageUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *TokenUsageUpdateOne) SetNillableOutputTokens(v *int) *TokenUsageUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *TokenUsageUpdateOne) AddOutputTokens(v int) *TokenUsageUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// Mutation returns the TokenUsageMutation object of the builder.
func (_u *TokenUsageUpdateOne) Mutation() *TokenUsageMutation {
	return _u.mutation
}

// Where appends a list predicates to the TokenUsageUpdate builder.
func (_u *TokenUsageUpdateOne) Where(ps ...predicate.TokenUsage) *TokenUsageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TokenUsageUpdateOne) Select(field string, fields ...string) *TokenUsageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TokenUsage entity.
func (_u *TokenUsageUpdateOne) Save(ctx context.Context) (*TokenUsage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TokenUsageUpdateOne) SaveX(ctx context.Context) *TokenUsage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TokenUsageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TokenUsageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TokenUsageUpdateOne) check() error {
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TokenUsage.project"`)
	}
	return nil
}

func (_u *TokenUsageUpdateOne) sqlSave(ctx context.Context) (_node *TokenUsage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tokenusage.Table, tokenusage.Columns, sqlgraph.NewFieldSpec(tokenusage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TokenUsage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tokenusage.FieldID)
		for _, f := range fields {
			if !tokenusage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tokenusage.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(tokenusage.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(tokenusage.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(tokenusage.FieldTaskID, field.TypeString, value)
	}
	if _u.mutation.TaskIDCleared() {
		_spec.ClearField(tokenusage.FieldTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(tokenusage.FieldAgentID, field.TypeString, value)
	}
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(tokenusage.FieldAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(tokenusage.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.CallType(); ok {
		_spec.SetField(tokenusage.FieldCallType, field.TypeString, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(tokenusage.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(tokenusage.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(tokenusage.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(tokenusage.FieldOutputTokens, field.TypeInt, value)
	}
	_node = &TokenUsage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tokenusage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
