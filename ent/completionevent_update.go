// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Riverstargroup/cultiva-finanzas/ent/completionevent"
	"github.com/Riverstargroup/cultiva-finanzas/ent/predicate"
)

// CompletionEventUpdate is the builder for updating CompletionEvent entities.
type CompletionEventUpdate struct {
	config
	hooks    []Hook
	mutation *CompletionEventMutation
}

// Where appends a list predicates to the CompletionEventUpdate builder.
func (_u *CompletionEventUpdate) Where(ps ...predicate.CompletionEvent) *CompletionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *CompletionEventUpdate) SetUserID(v string) *CompletionEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillableUserID(v *string) *CompletionEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *CompletionEventUpdate) SetCourseID(v string) *CompletionEventUpdate {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillableCourseID(v *string) *CompletionEventUpdate {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetScenarioID sets the "scenario_id" field.
func (_u *CompletionEventUpdate) SetScenarioID(v string) *CompletionEventUpdate {
	_u.mutation.SetScenarioID(v)
	return _u
}

// SetNillableScenarioID sets the "scenario_id" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillableScenarioID(v *string) *CompletionEventUpdate {
	if v != nil {
		_u.SetScenarioID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *CompletionEventUpdate) SetScore(v float64) *CompletionEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillableScore(v *float64) *CompletionEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *CompletionEventUpdate) AddScore(v float64) *CompletionEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetQuality sets the "quality" field.
func (_u *CompletionEventUpdate) SetQuality(v int) *CompletionEventUpdate {
	_u.mutation.ResetQuality()
	_u.mutation.SetQuality(v)
	return _u
}

// SetNillableQuality sets the "quality" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillableQuality(v *int) *CompletionEventUpdate {
	if v != nil {
		_u.SetQuality(*v)
	}
	return _u
}

// AddQuality adds value to the "quality" field.
func (_u *CompletionEventUpdate) AddQuality(v int) *CompletionEventUpdate {
	_u.mutation.AddQuality(v)
	return _u
}

// SetFirstCompletion sets the "first_completion" field.
func (_u *CompletionEventUpdate) SetFirstCompletion(v bool) *CompletionEventUpdate {
	_u.mutation.SetFirstCompletion(v)
	return _u
}

// SetNillableFirstCompletion sets the "first_completion" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillableFirstCompletion(v *bool) *CompletionEventUpdate {
	if v != nil {
		_u.SetFirstCompletion(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *CompletionEventUpdate) SetSessionID(v string) *CompletionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillableSessionID(v *string) *CompletionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *CompletionEventUpdate) ClearSessionID() *CompletionEventUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// Mutation returns the CompletionEventMutation object of the builder.
func (_u *CompletionEventUpdate) Mutation() *CompletionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CompletionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompletionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CompletionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompletionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompletionEventUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := completionevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CourseID(); ok {
		if err := completionevent.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.course_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScenarioID(); ok {
		if err := completionevent.ScenarioIDValidator(v); err != nil {
			return &ValidationError{Name: "scenario_id", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.scenario_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Quality(); ok {
		if err := completionevent.QualityValidator(v); err != nil {
			return &ValidationError{Name: "quality", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.quality": %w`, err)}
		}
	}
	return nil
}

func (_u *CompletionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(completionevent.Table, completionevent.Columns, sqlgraph.NewFieldSpec(completionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(completionevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(completionevent.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScenarioID(); ok {
		_spec.SetField(completionevent.FieldScenarioID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(completionevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(completionevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Quality(); ok {
		_spec.SetField(completionevent.FieldQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuality(); ok {
		_spec.AddField(completionevent.FieldQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FirstCompletion(); ok {
		_spec.SetField(completionevent.FieldFirstCompletion, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(completionevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(completionevent.FieldSessionID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{completionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CompletionEventUpdateOne is the builder for updating a single CompletionEvent entity.
type CompletionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CompletionEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *CompletionEventUpdateOne) SetUserID(v string) *CompletionEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillableUserID(v *string) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *CompletionEventUpdateOne) SetCourseID(v string) *CompletionEventUpdateOne {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillableCourseID(v *string) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetScenarioID sets the "scenario_id" field.
func (_u *CompletionEventUpdateOne) SetScenarioID(v string) *CompletionEventUpdateOne {
	_u.mutation.SetScenarioID(v)
	return _u
}

// SetNillableScenarioID sets the "scenario_id" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillableScenarioID(v *string) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetScenarioID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *CompletionEventUpdateOne) SetScore(v float64) *CompletionEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillableScore(v *float64) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *CompletionEventUpdateOne) AddScore(v float64) *CompletionEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetQuality sets the "quality" field.
func (_u *CompletionEventUpdateOne) SetQuality(v int) *CompletionEventUpdateOne {
	_u.mutation.ResetQuality()
	_u.mutation.SetQuality(v)
	return _u
}

// SetNillableQuality sets the "quality" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillableQuality(v *int) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetQuality(*v)
	}
	return _u
}

// AddQuality adds value to the "quality" field.
func (_u *CompletionEventUpdateOne) AddQuality(v int) *CompletionEventUpdateOne {
	_u.mutation.AddQuality(v)
	return _u
}

// SetFirstCompletion sets the "first_completion" field.
func (_u *CompletionEventUpdateOne) SetFirstCompletion(v bool) *CompletionEventUpdateOne {
	_u.mutation.SetFirstCompletion(v)
	return _u
}

// SetNillableFirstCompletion sets the "first_completion" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillableFirstCompletion(v *bool) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetFirstCompletion(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *CompletionEventUpdateOne) SetSessionID(v string) *CompletionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillableSessionID(v *string) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *CompletionEventUpdateOne) ClearSessionID() *CompletionEventUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// Mutation returns the CompletionEventMutation object of the builder.
func (_u *CompletionEventUpdateOne) Mutation() *CompletionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the CompletionEventUpdate builder.
func (_u *CompletionEventUpdateOne) Where(ps ...predicate.CompletionEvent) *CompletionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CompletionEventUpdateOne) Select(field string, fields ...string) *CompletionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CompletionEvent entity.
func (_u *CompletionEventUpdateOne) Save(ctx context.Context) (*CompletionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompletionEventUpdateOne) SaveX(ctx context.Context) *CompletionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CompletionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompletionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompletionEventUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := completionevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CourseID(); ok {
		if err := completionevent.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.course_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScenarioID(); ok {
		if err := completionevent.ScenarioIDValidator(v); err != nil {
			return &ValidationError{Name: "scenario_id", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.scenario_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Quality(); ok {
		if err := completionevent.QualityValidator(v); err != nil {
			return &ValidationError{Name: "quality", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.quality": %w`, err)}
		}
	}
	return nil
}

func (_u *CompletionEventUpdateOne) sqlSave(ctx context.Context) (_node *CompletionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(completionevent.Table, completionevent.Columns, sqlgraph.NewFieldSpec(completionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CompletionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, completionevent.FieldID)
		for _, f := range fields {
			if !completionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != completionevent.FieldID {
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
		_spec.SetField(completionevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(completionevent.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScenarioID(); ok {
		_spec.SetField(completionevent.FieldScenarioID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(completionevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(completionevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Quality(); ok {
		_spec.SetField(completionevent.FieldQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuality(); ok {
		_spec.AddField(completionevent.FieldQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FirstCompletion(); ok {
		_spec.SetField(completionevent.FieldFirstCompletion, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(completionevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(completionevent.FieldSessionID, field.TypeString)
	}
	_node = &CompletionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{completionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
