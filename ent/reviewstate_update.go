// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Riverstargroup/cultiva-finanzas/ent/predicate"
	"github.com/Riverstargroup/cultiva-finanzas/ent/reviewstate"
)

// ReviewStateUpdate is the builder for updating ReviewState entities.
type ReviewStateUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewStateMutation
}

// Where appends a list predicates to the ReviewStateUpdate builder.
func (_u *ReviewStateUpdate) Where(ps ...predicate.ReviewState) *ReviewStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ReviewStateUpdate) SetUserID(v string) *ReviewStateUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ReviewStateUpdate) SetNillableUserID(v *string) *ReviewStateUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *ReviewStateUpdate) SetCourseID(v string) *ReviewStateUpdate {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *ReviewStateUpdate) SetNillableCourseID(v *string) *ReviewStateUpdate {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetScenarioID sets the "scenario_id" field.
func (_u *ReviewStateUpdate) SetScenarioID(v string) *ReviewStateUpdate {
	_u.mutation.SetScenarioID(v)
	return _u
}

// SetNillableScenarioID sets the "scenario_id" field if the given value is not nil.
func (_u *ReviewStateUpdate) SetNillableScenarioID(v *string) *ReviewStateUpdate {
	if v != nil {
		_u.SetScenarioID(*v)
	}
	return _u
}

// SetRepetitions sets the "repetitions" field.
func (_u *ReviewStateUpdate) SetRepetitions(v int) *ReviewStateUpdate {
	_u.mutation.ResetRepetitions()
	_u.mutation.SetRepetitions(v)
	return _u
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_u *ReviewStateUpdate) SetNillableRepetitions(v *int) *ReviewStateUpdate {
	if v != nil {
		_u.SetRepetitions(*v)
	}
	return _u
}

// AddRepetitions adds value to the "repetitions" field.
func (_u *ReviewStateUpdate) AddRepetitions(v int) *ReviewStateUpdate {
	_u.mutation.AddRepetitions(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ReviewStateUpdate) SetIntervalDays(v int) *ReviewStateUpdate {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ReviewStateUpdate) SetNillableIntervalDays(v *int) *ReviewStateUpdate {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ReviewStateUpdate) AddIntervalDays(v int) *ReviewStateUpdate {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetEaseFactor sets the "ease_factor" field.
func (_u *ReviewStateUpdate) SetEaseFactor(v float64) *ReviewStateUpdate {
	_u.mutation.ResetEaseFactor()
	_u.mutation.SetEaseFactor(v)
	return _u
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_u *ReviewStateUpdate) SetNillableEaseFactor(v *float64) *ReviewStateUpdate {
	if v != nil {
		_u.SetEaseFactor(*v)
	}
	return _u
}

// AddEaseFactor adds value to the "ease_factor" field.
func (_u *ReviewStateUpdate) AddEaseFactor(v float64) *ReviewStateUpdate {
	_u.mutation.AddEaseFactor(v)
	return _u
}

// SetNextDueAt sets the "next_due_at" field.
func (_u *ReviewStateUpdate) SetNextDueAt(v time.Time) *ReviewStateUpdate {
	_u.mutation.SetNextDueAt(v)
	return _u
}

// SetNillableNextDueAt sets the "next_due_at" field if the given value is not nil.
func (_u *ReviewStateUpdate) SetNillableNextDueAt(v *time.Time) *ReviewStateUpdate {
	if v != nil {
		_u.SetNextDueAt(*v)
	}
	return _u
}

// SetLastQuality sets the "last_quality" field.
func (_u *ReviewStateUpdate) SetLastQuality(v int) *ReviewStateUpdate {
	_u.mutation.ResetLastQuality()
	_u.mutation.SetLastQuality(v)
	return _u
}

// SetNillableLastQuality sets the "last_quality" field if the given value is not nil.
func (_u *ReviewStateUpdate) SetNillableLastQuality(v *int) *ReviewStateUpdate {
	if v != nil {
		_u.SetLastQuality(*v)
	}
	return _u
}

// AddLastQuality adds value to the "last_quality" field.
func (_u *ReviewStateUpdate) AddLastQuality(v int) *ReviewStateUpdate {
	_u.mutation.AddLastQuality(v)
	return _u
}

// SetLastScore sets the "last_score" field.
func (_u *ReviewStateUpdate) SetLastScore(v float64) *ReviewStateUpdate {
	_u.mutation.ResetLastScore()
	_u.mutation.SetLastScore(v)
	return _u
}

// SetNillableLastScore sets the "last_score" field if the given value is not nil.
func (_u *ReviewStateUpdate) SetNillableLastScore(v *float64) *ReviewStateUpdate {
	if v != nil {
		_u.SetLastScore(*v)
	}
	return _u
}

// AddLastScore adds value to the "last_score" field.
func (_u *ReviewStateUpdate) AddLastScore(v float64) *ReviewStateUpdate {
	_u.mutation.AddLastScore(v)
	return _u
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (_u *ReviewStateUpdate) SetLastAttemptAt(v time.Time) *ReviewStateUpdate {
	_u.mutation.SetLastAttemptAt(v)
	return _u
}

// SetNillableLastAttemptAt sets the "last_attempt_at" field if the given value is not nil.
func (_u *ReviewStateUpdate) SetNillableLastAttemptAt(v *time.Time) *ReviewStateUpdate {
	if v != nil {
		_u.SetLastAttemptAt(*v)
	}
	return _u
}

// ClearLastAttemptAt clears the value of the "last_attempt_at" field.
func (_u *ReviewStateUpdate) ClearLastAttemptAt() *ReviewStateUpdate {
	_u.mutation.ClearLastAttemptAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReviewStateUpdate) SetUpdatedAt(v time.Time) *ReviewStateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ReviewStateMutation object of the builder.
func (_u *ReviewStateUpdate) Mutation() *ReviewStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewStateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReviewStateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reviewstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewStateUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := reviewstate.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ReviewState.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CourseID(); ok {
		if err := reviewstate.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "ReviewState.course_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScenarioID(); ok {
		if err := reviewstate.ScenarioIDValidator(v); err != nil {
			return &ValidationError{Name: "scenario_id", err: fmt.Errorf(`ent: validator failed for field "ReviewState.scenario_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Repetitions(); ok {
		if err := reviewstate.RepetitionsValidator(v); err != nil {
			return &ValidationError{Name: "repetitions", err: fmt.Errorf(`ent: validator failed for field "ReviewState.repetitions": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IntervalDays(); ok {
		if err := reviewstate.IntervalDaysValidator(v); err != nil {
			return &ValidationError{Name: "interval_days", err: fmt.Errorf(`ent: validator failed for field "ReviewState.interval_days": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EaseFactor(); ok {
		if err := reviewstate.EaseFactorValidator(v); err != nil {
			return &ValidationError{Name: "ease_factor", err: fmt.Errorf(`ent: validator failed for field "ReviewState.ease_factor": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastQuality(); ok {
		if err := reviewstate.LastQualityValidator(v); err != nil {
			return &ValidationError{Name: "last_quality", err: fmt.Errorf(`ent: validator failed for field "ReviewState.last_quality": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewstate.Table, reviewstate.Columns, sqlgraph.NewFieldSpec(reviewstate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(reviewstate.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(reviewstate.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScenarioID(); ok {
		_spec.SetField(reviewstate.FieldScenarioID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Repetitions(); ok {
		_spec.SetField(reviewstate.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRepetitions(); ok {
		_spec.AddField(reviewstate.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(reviewstate.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(reviewstate.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EaseFactor(); ok {
		_spec.SetField(reviewstate.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseFactor(); ok {
		_spec.AddField(reviewstate.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NextDueAt(); ok {
		_spec.SetField(reviewstate.FieldNextDueAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastQuality(); ok {
		_spec.SetField(reviewstate.FieldLastQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastQuality(); ok {
		_spec.AddField(reviewstate.FieldLastQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastScore(); ok {
		_spec.SetField(reviewstate.FieldLastScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLastScore(); ok {
		_spec.AddField(reviewstate.FieldLastScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastAttemptAt(); ok {
		_spec.SetField(reviewstate.FieldLastAttemptAt, field.TypeTime, value)
	}
	if _u.mutation.LastAttemptAtCleared() {
		_spec.ClearField(reviewstate.FieldLastAttemptAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(reviewstate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewStateUpdateOne is the builder for updating a single ReviewState entity.
type ReviewStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewStateMutation
}

// SetUserID sets the "user_id" field.
func (_u *ReviewStateUpdateOne) SetUserID(v string) *ReviewStateUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ReviewStateUpdateOne) SetNillableUserID(v *string) *ReviewStateUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *ReviewStateUpdateOne) SetCourseID(v string) *ReviewStateUpdateOne {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *ReviewStateUpdateOne) SetNillableCourseID(v *string) *ReviewStateUpdateOne {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetScenarioID sets the "scenario_id" field.
func (_u *ReviewStateUpdateOne) SetScenarioID(v string) *ReviewStateUpdateOne {
	_u.mutation.SetScenarioID(v)
	return _u
}

// SetNillableScenarioID sets the "scenario_id" field if the given value is not nil.
func (_u *ReviewStateUpdateOne) SetNillableScenarioID(v *string) *ReviewStateUpdateOne {
	if v != nil {
		_u.SetScenarioID(*v)
	}
	return _u
}

// SetRepetitions sets the "repetitions" field.
func (_u *ReviewStateUpdateOne) SetRepetitions(v int) *ReviewStateUpdateOne {
	_u.mutation.ResetRepetitions()
	_u.mutation.SetRepetitions(v)
	return _u
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_u *ReviewStateUpdateOne) SetNillableRepetitions(v *int) *ReviewStateUpdateOne {
	if v != nil {
		_u.SetRepetitions(*v)
	}
	return _u
}

// AddRepetitions adds value to the "repetitions" field.
func (_u *ReviewStateUpdateOne) AddRepetitions(v int) *ReviewStateUpdateOne {
	_u.mutation.AddRepetitions(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ReviewStateUpdateOne) SetIntervalDays(v int) *ReviewStateUpdateOne {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ReviewStateUpdateOne) SetNillableIntervalDays(v *int) *ReviewStateUpdateOne {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ReviewStateUpdateOne) AddIntervalDays(v int) *ReviewStateUpdateOne {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetEaseFactor sets the "ease_factor" field.
func (_u *ReviewStateUpdateOne) SetEaseFactor(v float64) *ReviewStateUpdateOne {
	_u.mutation.ResetEaseFactor()
	_u.mutation.SetEaseFactor(v)
	return _u
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_u *ReviewStateUpdateOne) SetNillableEaseFactor(v *float64) *ReviewStateUpdateOne {
	if v != nil {
		_u.SetEaseFactor(*v)
	}
	return _u
}

// AddEaseFactor adds value to the "ease_factor" field.
func (_u *ReviewStateUpdateOne) AddEaseFactor(v float64) *ReviewStateUpdateOne {
	_u.mutation.AddEaseFactor(v)
	return _u
}

// SetNextDueAt sets the "next_due_at" field.
func (_u *ReviewStateUpdateOne) SetNextDueAt(v time.Time) *ReviewStateUpdateOne {
	_u.mutation.SetNextDueAt(v)
	return _u
}

// SetNillableNextDueAt sets the "next_due_at" field if the given value is not nil.
func (_u *ReviewStateUpdateOne) SetNillableNextDueAt(v *time.Time) *ReviewStateUpdateOne {
	if v != nil {
		_u.SetNextDueAt(*v)
	}
	return _u
}

// SetLastQuality sets the "last_quality" field.
func (_u *ReviewStateUpdateOne) SetLastQuality(v int) *ReviewStateUpdateOne {
	_u.mutation.ResetLastQuality()
	_u.mutation.SetLastQuality(v)
	return _u
}

// SetNillableLastQuality sets the "last_quality" field if the given value is not nil.
func (_u *ReviewStateUpdateOne) SetNillableLastQuality(v *int) *ReviewStateUpdateOne {
	if v != nil {
		_u.SetLastQuality(*v)
	}
	return _u
}

// AddLastQuality adds value to the "last_quality" field.
func (_u *ReviewStateUpdateOne) AddLastQuality(v int) *ReviewStateUpdateOne {
	_u.mutation.AddLastQuality(v)
	return _u
}

// SetLastScore sets the "last_score" field.
func (_u *ReviewStateUpdateOne) SetLastScore(v float64) *ReviewStateUpdateOne {
	_u.mutation.ResetLastScore()
	_u.mutation.SetLastScore(v)
	return _u
}

// SetNillableLastScore sets the "last_score" field if the given value is not nil.
func (_u *ReviewStateUpdateOne) SetNillableLastScore(v *float64) *ReviewStateUpdateOne {
	if v != nil {
		_u.SetLastScore(*v)
	}
	return _u
}

// AddLastScore adds value to the "last_score" field.
func (_u *ReviewStateUpdateOne) AddLastScore(v float64) *ReviewStateUpdateOne {
	_u.mutation.AddLastScore(v)
	return _u
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (_u *ReviewStateUpdateOne) SetLastAttemptAt(v time.Time) *ReviewStateUpdateOne {
	_u.mutation.SetLastAttemptAt(v)
	return _u
}

// SetNillableLastAttemptAt sets the "last_attempt_at" field if the given value is not nil.
func (_u *ReviewStateUpdateOne) SetNillableLastAttemptAt(v *time.Time) *ReviewStateUpdateOne {
	if v != nil {
		_u.SetLastAttemptAt(*v)
	}
	return _u
}

// ClearLastAttemptAt clears the value of the "last_attempt_at" field.
func (_u *ReviewStateUpdateOne) ClearLastAttemptAt() *ReviewStateUpdateOne {
	_u.mutation.ClearLastAttemptAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReviewStateUpdateOne) SetUpdatedAt(v time.Time) *ReviewStateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ReviewStateMutation object of the builder.
func (_u *ReviewStateUpdateOne) Mutation() *ReviewStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReviewStateUpdate builder.
func (_u *ReviewStateUpdateOne) Where(ps ...predicate.ReviewState) *ReviewStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewStateUpdateOne) Select(field string, fields ...string) *ReviewStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReviewState entity.
func (_u *ReviewStateUpdateOne) Save(ctx context.Context) (*ReviewState, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewStateUpdateOne) SaveX(ctx context.Context) *ReviewState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReviewStateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reviewstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewStateUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := reviewstate.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ReviewState.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CourseID(); ok {
		if err := reviewstate.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "ReviewState.course_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScenarioID(); ok {
		if err := reviewstate.ScenarioIDValidator(v); err != nil {
			return &ValidationError{Name: "scenario_id", err: fmt.Errorf(`ent: validator failed for field "ReviewState.scenario_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Repetitions(); ok {
		if err := reviewstate.RepetitionsValidator(v); err != nil {
			return &ValidationError{Name: "repetitions", err: fmt.Errorf(`ent: validator failed for field "ReviewState.repetitions": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IntervalDays(); ok {
		if err := reviewstate.IntervalDaysValidator(v); err != nil {
			return &ValidationError{Name: "interval_days", err: fmt.Errorf(`ent: validator failed for field "ReviewState.interval_days": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EaseFactor(); ok {
		if err := reviewstate.EaseFactorValidator(v); err != nil {
			return &ValidationError{Name: "ease_factor", err: fmt.Errorf(`ent: validator failed for field "ReviewState.ease_factor": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastQuality(); ok {
		if err := reviewstate.LastQualityValidator(v); err != nil {
			return &ValidationError{Name: "last_quality", err: fmt.Errorf(`ent: validator failed for field "ReviewState.last_quality": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewStateUpdateOne) sqlSave(ctx context.Context) (_node *ReviewState, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewstate.Table, reviewstate.Columns, sqlgraph.NewFieldSpec(reviewstate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewstate.FieldID)
		for _, f := range fields {
			if !reviewstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewstate.FieldID {
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
		_spec.SetField(reviewstate.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(reviewstate.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScenarioID(); ok {
		_spec.SetField(reviewstate.FieldScenarioID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Repetitions(); ok {
		_spec.SetField(reviewstate.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRepetitions(); ok {
		_spec.AddField(reviewstate.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(reviewstate.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(reviewstate.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EaseFactor(); ok {
		_spec.SetField(reviewstate.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseFactor(); ok {
		_spec.AddField(reviewstate.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NextDueAt(); ok {
		_spec.SetField(reviewstate.FieldNextDueAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastQuality(); ok {
		_spec.SetField(reviewstate.FieldLastQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastQuality(); ok {
		_spec.AddField(reviewstate.FieldLastQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastScore(); ok {
		_spec.SetField(reviewstate.FieldLastScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLastScore(); ok {
		_spec.AddField(reviewstate.FieldLastScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastAttemptAt(); ok {
		_spec.SetField(reviewstate.FieldLastAttemptAt, field.TypeTime, value)
	}
	if _u.mutation.LastAttemptAtCleared() {
		_spec.ClearField(reviewstate.FieldLastAttemptAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(reviewstate.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ReviewState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
