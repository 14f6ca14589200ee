// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Riverstargroup/cultiva-finanzas/ent/activityday"
	"github.com/Riverstargroup/cultiva-finanzas/ent/predicate"
)

// ActivityDayUpdate is the builder for updating ActivityDay entities.
type ActivityDayUpdate struct {
	config
	hooks    []Hook
	mutation *ActivityDayMutation
}

// Where appends a list predicates to the ActivityDayUpdate builder.
func (_u *ActivityDayUpdate) Where(ps ...predicate.ActivityDay) *ActivityDayUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ActivityDayUpdate) SetUserID(v string) *ActivityDayUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ActivityDayUpdate) SetNillableUserID(v *string) *ActivityDayUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetDay sets the "day" field.
func (_u *ActivityDayUpdate) SetDay(v string) *ActivityDayUpdate {
	_u.mutation.SetDay(v)
	return _u
}

// SetNillableDay sets the "day" field if the given value is not nil.
func (_u *ActivityDayUpdate) SetNillableDay(v *string) *ActivityDayUpdate {
	if v != nil {
		_u.SetDay(*v)
	}
	return _u
}

// SetMinutes sets the "minutes" field.
func (_u *ActivityDayUpdate) SetMinutes(v int) *ActivityDayUpdate {
	_u.mutation.ResetMinutes()
	_u.mutation.SetMinutes(v)
	return _u
}

// SetNillableMinutes sets the "minutes" field if the given value is not nil.
func (_u *ActivityDayUpdate) SetNillableMinutes(v *int) *ActivityDayUpdate {
	if v != nil {
		_u.SetMinutes(*v)
	}
	return _u
}

// AddMinutes adds value to the "minutes" field.
func (_u *ActivityDayUpdate) AddMinutes(v int) *ActivityDayUpdate {
	_u.mutation.AddMinutes(v)
	return _u
}

// Mutation returns the ActivityDayMutation object of the builder.
func (_u *ActivityDayUpdate) Mutation() *ActivityDayMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ActivityDayUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivityDayUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ActivityDayUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivityDayUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActivityDayUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := activityday.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ActivityDay.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Day(); ok {
		if err := activityday.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`ent: validator failed for field "ActivityDay.day": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Minutes(); ok {
		if err := activityday.MinutesValidator(v); err != nil {
			return &ValidationError{Name: "minutes", err: fmt.Errorf(`ent: validator failed for field "ActivityDay.minutes": %w`, err)}
		}
	}
	return nil
}

func (_u *ActivityDayUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activityday.Table, activityday.Columns, sqlgraph.NewFieldSpec(activityday.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(activityday.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Day(); ok {
		_spec.SetField(activityday.FieldDay, field.TypeString, value)
	}
	if value, ok := _u.mutation.Minutes(); ok {
		_spec.SetField(activityday.FieldMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinutes(); ok {
		_spec.AddField(activityday.FieldMinutes, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activityday.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ActivityDayUpdateOne is the builder for updating a single ActivityDay entity.
type ActivityDayUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ActivityDayMutation
}

// SetUserID sets the "user_id" field.
func (_u *ActivityDayUpdateOne) SetUserID(v string) *ActivityDayUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ActivityDayUpdateOne) SetNillableUserID(v *string) *ActivityDayUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetDay sets the "day" field.
func (_u *ActivityDayUpdateOne) SetDay(v string) *ActivityDayUpdateOne {
	_u.mutation.SetDay(v)
	return _u
}

// SetNillableDay sets the "day" field if the given value is not nil.
func (_u *ActivityDayUpdateOne) SetNillableDay(v *string) *ActivityDayUpdateOne {
	if v != nil {
		_u.SetDay(*v)
	}
	return _u
}

// SetMinutes sets the "minutes" field.
func (_u *ActivityDayUpdateOne) SetMinutes(v int) *ActivityDayUpdateOne {
	_u.mutation.ResetMinutes()
	_u.mutation.SetMinutes(v)
	return _u
}

// SetNillableMinutes sets the "minutes" field if the given value is not nil.
func (_u *ActivityDayUpdateOne) SetNillableMinutes(v *int) *ActivityDayUpdateOne {
	if v != nil {
		_u.SetMinutes(*v)
	}
	return _u
}

// AddMinutes adds value to the "minutes" field.
func (_u *ActivityDayUpdateOne) AddMinutes(v int) *ActivityDayUpdateOne {
	_u.mutation.AddMinutes(v)
	return _u
}

// Mutation returns the ActivityDayMutation object of the builder.
func (_u *ActivityDayUpdateOne) Mutation() *ActivityDayMutation {
	return _u.mutation
}

// Where appends a list predicates to the ActivityDayUpdate builder.
func (_u *ActivityDayUpdateOne) Where(ps ...predicate.ActivityDay) *ActivityDayUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ActivityDayUpdateOne) Select(field string, fields ...string) *ActivityDayUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ActivityDay entity.
func (_u *ActivityDayUpdateOne) Save(ctx context.Context) (*ActivityDay, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivityDayUpdateOne) SaveX(ctx context.Context) *ActivityDay {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ActivityDayUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivityDayUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActivityDayUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := activityday.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ActivityDay.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Day(); ok {
		if err := activityday.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`ent: validator failed for field "ActivityDay.day": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Minutes(); ok {
		if err := activityday.MinutesValidator(v); err != nil {
			return &ValidationError{Name: "minutes", err: fmt.Errorf(`ent: validator failed for field "ActivityDay.minutes": %w`, err)}
		}
	}
	return nil
}

func (_u *ActivityDayUpdateOne) sqlSave(ctx context.Context) (_node *ActivityDay, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activityday.Table, activityday.Columns, sqlgraph.NewFieldSpec(activityday.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ActivityDay.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, activityday.FieldID)
		for _, f := range fields {
			if !activityday.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != activityday.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(activityday.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Day(); ok {
		_spec.SetField(activityday.FieldDay, field.TypeString, value)
	}
	if value, ok := _u.mutation.Minutes(); ok {
		_spec.SetField(activityday.FieldMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinutes(); ok {
		_spec.AddField(activityday.FieldMinutes, field.TypeInt, value)
	}
	_node = &ActivityDay{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activityday.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
