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
	"github.com/Riverstargroup/cultiva-finanzas/ent/courseprogress"
	"github.com/Riverstargroup/cultiva-finanzas/ent/predicate"
)

// CourseProgressUpdate is the builder for updating CourseProgress entities.
type CourseProgressUpdate struct {
	config
	hooks    []Hook
	mutation *CourseProgressMutation
}

// Where appends a list predicates to the CourseProgressUpdate builder.
func (_u *CourseProgressUpdate) Where(ps ...predicate.CourseProgress) *CourseProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *CourseProgressUpdate) SetUserID(v string) *CourseProgressUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CourseProgressUpdate) SetNillableUserID(v *string) *CourseProgressUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *CourseProgressUpdate) SetCourseID(v string) *CourseProgressUpdate {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *CourseProgressUpdate) SetNillableCourseID(v *string) *CourseProgressUpdate {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetCompletedScenarios sets the "completed_scenarios" field.
func (_u *CourseProgressUpdate) SetCompletedScenarios(v []string) *CourseProgressUpdate {
	_u.mutation.SetCompletedScenarios(v)
	return _u
}

// AppendCompletedScenarios appends value to the "completed_scenarios" field.
func (_u *CourseProgressUpdate) AppendCompletedScenarios(v []string) *CourseProgressUpdate {
	_u.mutation.AppendCompletedScenarios(v)
	return _u
}

// SetMasteryScore sets the "mastery_score" field.
func (_u *CourseProgressUpdate) SetMasteryScore(v float64) *CourseProgressUpdate {
	_u.mutation.ResetMasteryScore()
	_u.mutation.SetMasteryScore(v)
	return _u
}

// SetNillableMasteryScore sets the "mastery_score" field if the given value is not nil.
func (_u *CourseProgressUpdate) SetNillableMasteryScore(v *float64) *CourseProgressUpdate {
	if v != nil {
		_u.SetMasteryScore(*v)
	}
	return _u
}

// AddMasteryScore adds value to the "mastery_score" field.
func (_u *CourseProgressUpdate) AddMasteryScore(v float64) *CourseProgressUpdate {
	_u.mutation.AddMasteryScore(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *CourseProgressUpdate) SetCompletedAt(v time.Time) *CourseProgressUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *CourseProgressUpdate) SetNillableCompletedAt(v *time.Time) *CourseProgressUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *CourseProgressUpdate) ClearCompletedAt() *CourseProgressUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CourseProgressUpdate) SetUpdatedAt(v time.Time) *CourseProgressUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CourseProgressMutation object of the builder.
func (_u *CourseProgressUpdate) Mutation() *CourseProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CourseProgressUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CourseProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CourseProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CourseProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CourseProgressUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := courseprogress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CourseProgressUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := courseprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "CourseProgress.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CourseID(); ok {
		if err := courseprogress.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "CourseProgress.course_id": %w`, err)}
		}
	}
	return nil
}

func (_u *CourseProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(courseprogress.Table, courseprogress.Columns, sqlgraph.NewFieldSpec(courseprogress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(courseprogress.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(courseprogress.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedScenarios(); ok {
		_spec.SetField(courseprogress.FieldCompletedScenarios, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompletedScenarios(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, courseprogress.FieldCompletedScenarios, value)
		})
	}
	if value, ok := _u.mutation.MasteryScore(); ok {
		_spec.SetField(courseprogress.FieldMasteryScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryScore(); ok {
		_spec.AddField(courseprogress.FieldMasteryScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(courseprogress.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(courseprogress.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(courseprogress.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{courseprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CourseProgressUpdateOne is the builder for updating a single CourseProgress entity.
type CourseProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CourseProgressMutation
}

// SetUserID sets the "user_id" field.
func (_u *CourseProgressUpdateOne) SetUserID(v string) *CourseProgressUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CourseProgressUpdateOne) SetNillableUserID(v *string) *CourseProgressUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *CourseProgressUpdateOne) SetCourseID(v string) *CourseProgressUpdateOne {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *CourseProgressUpdateOne) SetNillableCourseID(v *string) *CourseProgressUpdateOne {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetCompletedScenarios sets the "completed_scenarios" field.
func (_u *CourseProgressUpdateOne) SetCompletedScenarios(v []string) *CourseProgressUpdateOne {
	_u.mutation.SetCompletedScenarios(v)
	return _u
}

// AppendCompletedScenarios appends value to the "completed_scenarios" field.
func (_u *CourseProgressUpdateOne) AppendCompletedScenarios(v []string) *CourseProgressUpdateOne {
	_u.mutation.AppendCompletedScenarios(v)
	return _u
}

// SetMasteryScore sets the "mastery_score" field.
func (_u *CourseProgressUpdateOne) SetMasteryScore(v float64) *CourseProgressUpdateOne {
	_u.mutation.ResetMasteryScore()
	_u.mutation.SetMasteryScore(v)
	return _u
}

// SetNillableMasteryScore sets the "mastery_score" field if the given value is not nil.
func (_u *CourseProgressUpdateOne) SetNillableMasteryScore(v *float64) *CourseProgressUpdateOne {
	if v != nil {
		_u.SetMasteryScore(*v)
	}
	return _u
}

// AddMasteryScore adds value to the "mastery_score" field.
func (_u *CourseProgressUpdateOne) AddMasteryScore(v float64) *CourseProgressUpdateOne {
	_u.mutation.AddMasteryScore(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *CourseProgressUpdateOne) SetCompletedAt(v time.Time) *CourseProgressUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *CourseProgressUpdateOne) SetNillableCompletedAt(v *time.Time) *CourseProgressUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *CourseProgressUpdateOne) ClearCompletedAt() *CourseProgressUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CourseProgressUpdateOne) SetUpdatedAt(v time.Time) *CourseProgressUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CourseProgressMutation object of the builder.
func (_u *CourseProgressUpdateOne) Mutation() *CourseProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the CourseProgressUpdate builder.
func (_u *CourseProgressUpdateOne) Where(ps ...predicate.CourseProgress) *CourseProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CourseProgressUpdateOne) Select(field string, fields ...string) *CourseProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CourseProgress entity.
func (_u *CourseProgressUpdateOne) Save(ctx context.Context) (*CourseProgress, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CourseProgressUpdateOne) SaveX(ctx context.Context) *CourseProgress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CourseProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CourseProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CourseProgressUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := courseprogress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CourseProgressUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := courseprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "CourseProgress.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CourseID(); ok {
		if err := courseprogress.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "CourseProgress.course_id": %w`, err)}
		}
	}
	return nil
}

func (_u *CourseProgressUpdateOne) sqlSave(ctx context.Context) (_node *CourseProgress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(courseprogress.Table, courseprogress.Columns, sqlgraph.NewFieldSpec(courseprogress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CourseProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, courseprogress.FieldID)
		for _, f := range fields {
			if !courseprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != courseprogress.FieldID {
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
		_spec.SetField(courseprogress.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(courseprogress.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedScenarios(); ok {
		_spec.SetField(courseprogress.FieldCompletedScenarios, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompletedScenarios(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, courseprogress.FieldCompletedScenarios, value)
		})
	}
	if value, ok := _u.mutation.MasteryScore(); ok {
		_spec.SetField(courseprogress.FieldMasteryScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryScore(); ok {
		_spec.AddField(courseprogress.FieldMasteryScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(courseprogress.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(courseprogress.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(courseprogress.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &CourseProgress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{courseprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
