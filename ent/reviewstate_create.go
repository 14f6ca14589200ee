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
	"github.com/Riverstargroup/cultiva-finanzas/ent/reviewstate"
)

// ReviewStateCreate is the builder for creating a ReviewState entity.
type ReviewStateCreate struct {
	config
	mutation *ReviewStateMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *ReviewStateCreate) SetUserID(v string) *ReviewStateCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetCourseID sets the "course_id" field.
func (_c *ReviewStateCreate) SetCourseID(v string) *ReviewStateCreate {
	_c.mutation.SetCourseID(v)
	return _c
}

// SetScenarioID sets the "scenario_id" field.
func (_c *ReviewStateCreate) SetScenarioID(v string) *ReviewStateCreate {
	_c.mutation.SetScenarioID(v)
	return _c
}

// SetRepetitions sets the "repetitions" field.
func (_c *ReviewStateCreate) SetRepetitions(v int) *ReviewStateCreate {
	_c.mutation.SetRepetitions(v)
	return _c
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_c *ReviewStateCreate) SetNillableRepetitions(v *int) *ReviewStateCreate {
	if v != nil {
		_c.SetRepetitions(*v)
	}
	return _c
}

// SetIntervalDays sets the "interval_days" field.
func (_c *ReviewStateCreate) SetIntervalDays(v int) *ReviewStateCreate {
	_c.mutation.SetIntervalDays(v)
	return _c
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_c *ReviewStateCreate) SetNillableIntervalDays(v *int) *ReviewStateCreate {
	if v != nil {
		_c.SetIntervalDays(*v)
	}
	return _c
}

// SetEaseFactor sets the "ease_factor" field.
func (_c *ReviewStateCreate) SetEaseFactor(v float64) *ReviewStateCreate {
	_c.mutation.SetEaseFactor(v)
	return _c
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_c *ReviewStateCreate) SetNillableEaseFactor(v *float64) *ReviewStateCreate {
	if v != nil {
		_c.SetEaseFactor(*v)
	}
	return _c
}

// SetNextDueAt sets the "next_due_at" field.
func (_c *ReviewStateCreate) SetNextDueAt(v time.Time) *ReviewStateCreate {
	_c.mutation.SetNextDueAt(v)
	return _c
}

// SetLastQuality sets the "last_quality" field.
func (_c *ReviewStateCreate) SetLastQuality(v int) *ReviewStateCreate {
	_c.mutation.SetLastQuality(v)
	return _c
}

// SetNillableLastQuality sets the "last_quality" field if the given value is not nil.
func (_c *ReviewStateCreate) SetNillableLastQuality(v *int) *ReviewStateCreate {
	if v != nil {
		_c.SetLastQuality(*v)
	}
	return _c
}

// SetLastScore sets the "last_score" field.
func (_c *ReviewStateCreate) SetLastScore(v float64) *ReviewStateCreate {
	_c.mutation.SetLastScore(v)
	return _c
}

// SetNillableLastScore sets the "last_score" field if the given value is not nil.
func (_c *ReviewStateCreate) SetNillableLastScore(v *float64) *ReviewStateCreate {
	if v != nil {
		_c.SetLastScore(*v)
	}
	return _c
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (_c *ReviewStateCreate) SetLastAttemptAt(v time.Time) *ReviewStateCreate {
	_c.mutation.SetLastAttemptAt(v)
	return _c
}

// SetNillableLastAttemptAt sets the "last_attempt_at" field if the given value is not nil.
func (_c *ReviewStateCreate) SetNillableLastAttemptAt(v *time.Time) *ReviewStateCreate {
	if v != nil {
		_c.SetLastAttemptAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ReviewStateCreate) SetUpdatedAt(v time.Time) *ReviewStateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ReviewStateCreate) SetNillableUpdatedAt(v *time.Time) *ReviewStateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ReviewStateMutation object of the builder.
func (_c *ReviewStateCreate) Mutation() *ReviewStateMutation {
	return _c.mutation
}

// Save creates the ReviewState in the database.
func (_c *ReviewStateCreate) Save(ctx context.Context) (*ReviewState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReviewStateCreate) SaveX(ctx context.Context) *ReviewState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReviewStateCreate) defaults() {
	if _, ok := _c.mutation.Repetitions(); !ok {
		v := reviewstate.DefaultRepetitions
		_c.mutation.SetRepetitions(v)
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		v := reviewstate.DefaultIntervalDays
		_c.mutation.SetIntervalDays(v)
	}
	if _, ok := _c.mutation.EaseFactor(); !ok {
		v := reviewstate.DefaultEaseFactor
		_c.mutation.SetEaseFactor(v)
	}
	if _, ok := _c.mutation.LastQuality(); !ok {
		v := reviewstate.DefaultLastQuality
		_c.mutation.SetLastQuality(v)
	}
	if _, ok := _c.mutation.LastScore(); !ok {
		v := reviewstate.DefaultLastScore
		_c.mutation.SetLastScore(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := reviewstate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReviewStateCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ReviewState.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := reviewstate.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ReviewState.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CourseID(); !ok {
		return &ValidationError{Name: "course_id", err: errors.New(`ent: missing required field "ReviewState.course_id"`)}
	}
	if v, ok := _c.mutation.CourseID(); ok {
		if err := reviewstate.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "ReviewState.course_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScenarioID(); !ok {
		return &ValidationError{Name: "scenario_id", err: errors.New(`ent: missing required field "ReviewState.scenario_id"`)}
	}
	if v, ok := _c.mutation.ScenarioID(); ok {
		if err := reviewstate.ScenarioIDValidator(v); err != nil {
			return &ValidationError{Name: "scenario_id", err: fmt.Errorf(`ent: validator failed for field "ReviewState.scenario_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Repetitions(); !ok {
		return &ValidationError{Name: "repetitions", err: errors.New(`ent: missing required field "ReviewState.repetitions"`)}
	}
	if v, ok := _c.mutation.Repetitions(); ok {
		if err := reviewstate.RepetitionsValidator(v); err != nil {
			return &ValidationError{Name: "repetitions", err: fmt.Errorf(`ent: validator failed for field "ReviewState.repetitions": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		return &ValidationError{Name: "interval_days", err: errors.New(`ent: missing required field "ReviewState.interval_days"`)}
	}
	if v, ok := _c.mutation.IntervalDays(); ok {
		if err := reviewstate.IntervalDaysValidator(v); err != nil {
			return &ValidationError{Name: "interval_days", err: fmt.Errorf(`ent: validator failed for field "ReviewState.interval_days": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EaseFactor(); !ok {
		return &ValidationError{Name: "ease_factor", err: errors.New(`ent: missing required field "ReviewState.ease_factor"`)}
	}
	if v, ok := _c.mutation.EaseFactor(); ok {
		if err := reviewstate.EaseFactorValidator(v); err != nil {
			return &ValidationError{Name: "ease_factor", err: fmt.Errorf(`ent: validator failed for field "ReviewState.ease_factor": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NextDueAt(); !ok {
		return &ValidationError{Name: "next_due_at", err: errors.New(`ent: missing required field "ReviewState.next_due_at"`)}
	}
	if _, ok := _c.mutation.LastQuality(); !ok {
		return &ValidationError{Name: "last_quality", err: errors.New(`ent: missing required field "ReviewState.last_quality"`)}
	}
	if v, ok := _c.mutation.LastQuality(); ok {
		if err := reviewstate.LastQualityValidator(v); err != nil {
			return &ValidationError{Name: "last_quality", err: fmt.Errorf(`ent: validator failed for field "ReviewState.last_quality": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastScore(); !ok {
		return &ValidationError{Name: "last_score", err: errors.New(`ent: missing required field "ReviewState.last_score"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ReviewState.updated_at"`)}
	}
	return nil
}

func (_c *ReviewStateCreate) sqlSave(ctx context.Context) (*ReviewState, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReviewStateCreate) createSpec() (*ReviewState, *sqlgraph.CreateSpec) {
	var (
		_node = &ReviewState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reviewstate.Table, sqlgraph.NewFieldSpec(reviewstate.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(reviewstate.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.CourseID(); ok {
		_spec.SetField(reviewstate.FieldCourseID, field.TypeString, value)
		_node.CourseID = value
	}
	if value, ok := _c.mutation.ScenarioID(); ok {
		_spec.SetField(reviewstate.FieldScenarioID, field.TypeString, value)
		_node.ScenarioID = value
	}
	if value, ok := _c.mutation.Repetitions(); ok {
		_spec.SetField(reviewstate.FieldRepetitions, field.TypeInt, value)
		_node.Repetitions = value
	}
	if value, ok := _c.mutation.IntervalDays(); ok {
		_spec.SetField(reviewstate.FieldIntervalDays, field.TypeInt, value)
		_node.IntervalDays = value
	}
	if value, ok := _c.mutation.EaseFactor(); ok {
		_spec.SetField(reviewstate.FieldEaseFactor, field.TypeFloat64, value)
		_node.EaseFactor = value
	}
	if value, ok := _c.mutation.NextDueAt(); ok {
		_spec.SetField(reviewstate.FieldNextDueAt, field.TypeTime, value)
		_node.NextDueAt = value
	}
	if value, ok := _c.mutation.LastQuality(); ok {
		_spec.SetField(reviewstate.FieldLastQuality, field.TypeInt, value)
		_node.LastQuality = value
	}
	if value, ok := _c.mutation.LastScore(); ok {
		_spec.SetField(reviewstate.FieldLastScore, field.TypeFloat64, value)
		_node.LastScore = value
	}
	if value, ok := _c.mutation.LastAttemptAt(); ok {
		_spec.SetField(reviewstate.FieldLastAttemptAt, field.TypeTime, value)
		_node.LastAttemptAt = &value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(reviewstate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ReviewState.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReviewStateUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *ReviewStateCreate) OnConflict(opts ...sql.ConflictOption) *ReviewStateUpsertOne {
	_c.conflict = opts
	return &ReviewStateUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ReviewState.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReviewStateCreate) OnConflictColumns(columns ...string) *ReviewStateUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReviewStateUpsertOne{
		create: _c,
	}
}

type (
	// ReviewStateUpsertOne is the builder for "upsert"-ing
	//  one ReviewState node.
	ReviewStateUpsertOne struct {
		create *ReviewStateCreate
	}

	// ReviewStateUpsert is the "OnConflict" setter.
	ReviewStateUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *ReviewStateUpsert) SetUserID(v string) *ReviewStateUpsert {
	u.Set(reviewstate.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ReviewStateUpsert) UpdateUserID() *ReviewStateUpsert {
	u.SetExcluded(reviewstate.FieldUserID)
	return u
}

// SetCourseID sets the "course_id" field.
func (u *ReviewStateUpsert) SetCourseID(v string) *ReviewStateUpsert {
	u.Set(reviewstate.FieldCourseID, v)
	return u
}

// UpdateCourseID sets the "course_id" field to the value that was provided on create.
func (u *ReviewStateUpsert) UpdateCourseID() *ReviewStateUpsert {
	u.SetExcluded(reviewstate.FieldCourseID)
	return u
}

// SetScenarioID sets the "scenario_id" field.
func (u *ReviewStateUpsert) SetScenarioID(v string) *ReviewStateUpsert {
	u.Set(reviewstate.FieldScenarioID, v)
	return u
}

// UpdateScenarioID sets the "scenario_id" field to the value that was provided on create.
func (u *ReviewStateUpsert) UpdateScenarioID() *ReviewStateUpsert {
	u.SetExcluded(reviewstate.FieldScenarioID)
	return u
}

// SetRepetitions sets the "repetitions" field.
func (u *ReviewStateUpsert) SetRepetitions(v int) *ReviewStateUpsert {
	u.Set(reviewstate.FieldRepetitions, v)
	return u
}

// UpdateRepetitions sets the "repetitions" field to the value that was provided on create.
func (u *ReviewStateUpsert) UpdateRepetitions() *ReviewStateUpsert {
	u.SetExcluded(reviewstate.FieldRepetitions)
	return u
}

// AddRepetitions adds v to the "repetitions" field.
func (u *ReviewStateUpsert) AddRepetitions(v int) *ReviewStateUpsert {
	u.Add(reviewstate.FieldRepetitions, v)
	return u
}

// SetIntervalDays sets the "interval_days" field.
func (u *ReviewStateUpsert) SetIntervalDays(v int) *ReviewStateUpsert {
	u.Set(reviewstate.FieldIntervalDays, v)
	return u
}

// UpdateIntervalDays sets the "interval_days" field to the value that was provided on create.
func (u *ReviewStateUpsert) UpdateIntervalDays() *ReviewStateUpsert {
	u.SetExcluded(reviewstate.FieldIntervalDays)
	return u
}

// AddIntervalDays adds v to the "interval_days" field.
func (u *ReviewStateUpsert) AddIntervalDays(v int) *ReviewStateUpsert {
	u.Add(reviewstate.FieldIntervalDays, v)
	return u
}

// SetEaseFactor sets the "ease_factor" field.
func (u *ReviewStateUpsert) SetEaseFactor(v float64) *ReviewStateUpsert {
	u.Set(reviewstate.FieldEaseFactor, v)
	return u
}

// UpdateEaseFactor sets the "ease_factor" field to the value that was provided on create.
func (u *ReviewStateUpsert) UpdateEaseFactor() *ReviewStateUpsert {
	u.SetExcluded(reviewstate.FieldEaseFactor)
	return u
}

// AddEaseFactor adds v to the "ease_factor" field.
func (u *ReviewStateUpsert) AddEaseFactor(v float64) *ReviewStateUpsert {
	u.Add(reviewstate.FieldEaseFactor, v)
	return u
}

// SetNextDueAt sets the "next_due_at" field.
func (u *ReviewStateUpsert) SetNextDueAt(v time.Time) *ReviewStateUpsert {
	u.Set(reviewstate.FieldNextDueAt, v)
	return u
}

// UpdateNextDueAt sets the "next_due_at" field to the value that was provided on create.
func (u *ReviewStateUpsert) UpdateNextDueAt() *ReviewStateUpsert {
	u.SetExcluded(reviewstate.FieldNextDueAt)
	return u
}

// SetLastQuality sets the "last_quality" field.
func (u *ReviewStateUpsert) SetLastQuality(v int) *ReviewStateUpsert {
	u.Set(reviewstate.FieldLastQuality, v)
	return u
}

// UpdateLastQuality sets the "last_quality" field to the value that was provided on create.
func (u *ReviewStateUpsert) UpdateLastQuality() *ReviewStateUpsert {
	u.SetExcluded(reviewstate.FieldLastQuality)
	return u
}

// AddLastQuality adds v to the "last_quality" field.
func (u *ReviewStateUpsert) AddLastQuality(v int) *ReviewStateUpsert {
	u.Add(reviewstate.FieldLastQuality, v)
	return u
}

// SetLastScore sets the "last_score" field.
func (u *ReviewStateUpsert) SetLastScore(v float64) *ReviewStateUpsert {
	u.Set(reviewstate.FieldLastScore, v)
	return u
}

// UpdateLastScore sets the "last_score" field to the value that was provided on create.
func (u *ReviewStateUpsert) UpdateLastScore() *ReviewStateUpsert {
	u.SetExcluded(reviewstate.FieldLastScore)
	return u
}

// AddLastScore adds v to the "last_score" field.
func (u *ReviewStateUpsert) AddLastScore(v float64) *ReviewStateUpsert {
	u.Add(reviewstate.FieldLastScore, v)
	return u
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (u *ReviewStateUpsert) SetLastAttemptAt(v time.Time) *ReviewStateUpsert {
	u.Set(reviewstate.FieldLastAttemptAt, v)
	return u
}

// UpdateLastAttemptAt sets the "last_attempt_at" field to the value that was provided on create.
func (u *ReviewStateUpsert) UpdateLastAttemptAt() *ReviewStateUpsert {
	u.SetExcluded(reviewstate.FieldLastAttemptAt)
	return u
}

// ClearLastAttemptAt clears the value of the "last_attempt_at" field.
func (u *ReviewStateUpsert) ClearLastAttemptAt() *ReviewStateUpsert {
	u.SetNull(reviewstate.FieldLastAttemptAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ReviewStateUpsert) SetUpdatedAt(v time.Time) *ReviewStateUpsert {
	u.Set(reviewstate.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ReviewStateUpsert) UpdateUpdatedAt() *ReviewStateUpsert {
	u.SetExcluded(reviewstate.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ReviewState.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ReviewStateUpsertOne) UpdateNewValues() *ReviewStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ReviewState.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ReviewStateUpsertOne) Ignore() *ReviewStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReviewStateUpsertOne) DoNothing() *ReviewStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReviewStateCreate.OnConflict
// documentation for more info.
func (u *ReviewStateUpsertOne) Update(set func(*ReviewStateUpsert)) *ReviewStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReviewStateUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *ReviewStateUpsertOne) SetUserID(v string) *ReviewStateUpsertOne {
	return u.Update(func(s *ReviewStateUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ReviewStateUpsertOne) UpdateUserID() *ReviewStateUpsertOne {
	return u.Update(func(s *ReviewStateUpsert) {
		s.UpdateUserID()
	})
}

// SetCourseID sets the "course_id" field.
func (u *ReviewStateUpsertOne) SetCourseID(v string) *ReviewStateUpsertOne {
	return u.Update(func(s *ReviewStateUpsert) {
		s.SetCourseID(v)
	})
}

// UpdateCourseID sets the "course_id" field to the value that was provided on create.
func (u *ReviewStateUpsertOne) UpdateCourseID() *ReviewStateUpsertOne {
	return u.Update(func(s *ReviewStateUpsert) {
		s.UpdateCourseID()
	})
}

// SetScenarioID sets the "scenario_id" field.
func (u *ReviewStateUpsertOne) SetScenarioID(v string) *ReviewStateUpsertOne {
	return u.Update(func(s *ReviewStateUpsert) {
		s.SetScenarioID(v)
	})
}

// UpdateScenarioID sets the "scenario_id" field to the value that was provided on create.
func (u *ReviewStateUpsertOne) UpdateScenarioID() *ReviewStateUpsertOne {
	return u.Update(func(s *ReviewStateUpsert) {
		s.UpdateScenarioID()
	})
}

// SetRepetitions sets the "repetitions" field.
func (u *ReviewStateUpsertOne) SetRepetitions(v int) *ReviewStateUpsertOne {
	return u.Update(func(s *ReviewStateUpsert) {
		s.SetRepetitions(v)
	})
}

// AddRepetitions adds v to the "repetitions" field.
func (u *ReviewStateUpsertOne) AddRepetitions(v int) *ReviewStateUpsertOne {
	return u.Update(func(s *ReviewStateUpsert) {
		s.AddRepetitions(v)
	})
}

// UpdateRepetitions sets the "repetitions" field to the value that was provided on create.
func (u *ReviewStateUpsertOne) UpdateRepetitions() *ReviewStateUpsertOne {
	return u.Update(func(s *ReviewStateUpsert) {
		s.UpdateRepetitions()
	})
}

// SetIntervalDays sets the "interval_days" field.
func (u *ReviewStateUpsertOne) SetIntervalDays(v int) *ReviewStateUpsertOne {
	return u.Update(func(s *ReviewStateUpsert) {
		s.SetIntervalDays(v)
	})
}

// AddIntervalDays adds v to the "interval_days" field.
func (u *ReviewStateUpsertOne) AddIntervalDays(v int) *ReviewStateUpsertOne {
	return u.Update(func(s *ReviewStateUpsert) {
		s.AddIntervalDays(v)
	})
}

// UpdateIntervalDays sets the "interval_days" field to the value that was provided on create.
func (u *ReviewStateUpsertOne) UpdateIntervalDays() *ReviewStateUpsertOne {
	return u.Update(func(s *ReviewStateUpsert) {
		s.UpdateIntervalDays()
	})
}

// SetEaseFactor sets the "ease_factor" field.
func (u *ReviewStateUpsertOne) SetEaseFactor(v float64) *ReviewStateUpsertOne {
	return u.Update(func(s *ReviewStateUpsert) {
		s.SetEaseFactor(v)
	})
}

// AddEaseFactor adds v to the "ease_factor" field.
func (u *ReviewStateUpsertOne) AddEaseFactor(v float64) *ReviewStateUpsertOne {
	return u.Update(func(s *ReviewStateUpsert) {
		s.AddEaseFactor(v)
	})
}

// UpdateEaseFactor sets the "ease_factor" field to the value that was provided on create.
func (u *ReviewStateUpsertOne) UpdateEaseFactor() *ReviewStateUpsertOne {
	return u.Update(func(s *ReviewStateUpsert) {
		s.UpdateEaseFactor()
	})
}

// SetNextDueAt sets the "next_due_at" field.
func (u *ReviewStateUpsertOne) SetNextDueAt(v time.Time) *ReviewStateUpsertOne {
	return u.Update(func(s *ReviewStateUpsert) {
		s.SetNextDueAt(v)
	})
}

// UpdateNextDueAt sets the "next_due_at" field to the value that was provided on create.
func (u *ReviewStateUpsertOne) UpdateNextDueAt() *ReviewStateUpsertOne {
	return u.Update(func(s *ReviewStateUpsert) {
		s.UpdateNextDueAt()
	})
}

// SetLastQuality sets the "last_quality" field.
func (u *ReviewStateUpsertOne) SetLastQuality(v int) *ReviewStateUpsertOne {
	return u.Update(func(s *ReviewStateUpsert) {
		s.SetLastQuality(v)
	})
}

// AddLastQuality adds v to the "last_quality" field.
func (u *ReviewStateUpsertOne) AddLastQuality(v int) *ReviewStateUpsertOne {
	return u.Update(func(s *ReviewStateUpsert) {
		s.AddLastQuality(v)
	})
}

// UpdateLastQuality sets the "last_quality" field to the value that was provided on create.
func (u *ReviewStateUpsertOne) UpdateLastQuality() *ReviewStateUpsertOne {
	return u.Update(func(s *ReviewStateUpsert) {
		s.UpdateLastQuality()
	})
}

// SetLastScore sets the "last_score" field.
func (u *ReviewStateUpsertOne) SetLastScore(v float64) *ReviewStateUpsertOne {
	return u.Update(func(s *ReviewStateUpsert) {
		s.SetLastScore(v)
	})
}

// AddLastScore adds v to the "last_score" field.
func (u *ReviewStateUpsertOne) AddLastScore(v float64) *ReviewStateUpsertOne {
	return u.Update(func(s *ReviewStateUpsert) {
		s.AddLastScore(v)
	})
}

// UpdateLastScore sets the "last_score" field to the value that was provided on create.
func (u *ReviewStateUpsertOne) UpdateLastScore() *ReviewStateUpsertOne {
	return u.Update(func(s *ReviewStateUpsert) {
		s.UpdateLastScore()
	})
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (u *ReviewStateUpsertOne) SetLastAttemptAt(v time.Time) *ReviewStateUpsertOne {
	return u.Update(func(s *ReviewStateUpsert) {
		s.SetLastAttemptAt(v)
	})
}

// UpdateLastAttemptAt sets the "last_attempt_at" field to the value that was provided on create.
func (u *ReviewStateUpsertOne) UpdateLastAttemptAt() *ReviewStateUpsertOne {
	return u.Update(func(s *ReviewStateUpsert) {
		s.UpdateLastAttemptAt()
	})
}

// ClearLastAttemptAt clears the value of the "last_attempt_at" field.
func (u *ReviewStateUpsertOne) ClearLastAttemptAt() *ReviewStateUpsertOne {
	return u.Update(func(s *ReviewStateUpsert) {
		s.ClearLastAttemptAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ReviewStateUpsertOne) SetUpdatedAt(v time.Time) *ReviewStateUpsertOne {
	return u.Update(func(s *ReviewStateUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ReviewStateUpsertOne) UpdateUpdatedAt() *ReviewStateUpsertOne {
	return u.Update(func(s *ReviewStateUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ReviewStateUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReviewStateCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReviewStateUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ReviewStateUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ReviewStateUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ReviewStateCreateBulk is the builder for creating many ReviewState entities in bulk.
type ReviewStateCreateBulk struct {
	config
	err      error
	builders []*ReviewStateCreate
	conflict []sql.ConflictOption
}

// Save creates the ReviewState entities in the database.
func (_c *ReviewStateCreateBulk) Save(ctx context.Context) ([]*ReviewState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReviewState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReviewStateMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *ReviewStateCreateBulk) SaveX(ctx context.Context) []*ReviewState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ReviewState.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReviewStateUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *ReviewStateCreateBulk) OnConflict(opts ...sql.ConflictOption) *ReviewStateUpsertBulk {
	_c.conflict = opts
	return &ReviewStateUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ReviewState.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReviewStateCreateBulk) OnConflictColumns(columns ...string) *ReviewStateUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReviewStateUpsertBulk{
		create: _c,
	}
}

// ReviewStateUpsertBulk is the builder for "upsert"-ing
// a bulk of ReviewState nodes.
type ReviewStateUpsertBulk struct {
	create *ReviewStateCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ReviewState.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ReviewStateUpsertBulk) UpdateNewValues() *ReviewStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ReviewState.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ReviewStateUpsertBulk) Ignore() *ReviewStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReviewStateUpsertBulk) DoNothing() *ReviewStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReviewStateCreateBulk.OnConflict
// documentation for more info.
func (u *ReviewStateUpsertBulk) Update(set func(*ReviewStateUpsert)) *ReviewStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReviewStateUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *ReviewStateUpsertBulk) SetUserID(v string) *ReviewStateUpsertBulk {
	return u.Update(func(s *ReviewStateUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ReviewStateUpsertBulk) UpdateUserID() *ReviewStateUpsertBulk {
	return u.Update(func(s *ReviewStateUpsert) {
		s.UpdateUserID()
	})
}

// SetCourseID sets the "course_id" field.
func (u *ReviewStateUpsertBulk) SetCourseID(v string) *ReviewStateUpsertBulk {
	return u.Update(func(s *ReviewStateUpsert) {
		s.SetCourseID(v)
	})
}

// UpdateCourseID sets the "course_id" field to the value that was provided on create.
func (u *ReviewStateUpsertBulk) UpdateCourseID() *ReviewStateUpsertBulk {
	return u.Update(func(s *ReviewStateUpsert) {
		s.UpdateCourseID()
	})
}

// SetScenarioID sets the "scenario_id" field.
func (u *ReviewStateUpsertBulk) SetScenarioID(v string) *ReviewStateUpsertBulk {
	return u.Update(func(s *ReviewStateUpsert) {
		s.SetScenarioID(v)
	})
}

// UpdateScenarioID sets the "scenario_id" field to the value that was provided on create.
func (u *ReviewStateUpsertBulk) UpdateScenarioID() *ReviewStateUpsertBulk {
	return u.Update(func(s *ReviewStateUpsert) {
		s.UpdateScenarioID()
	})
}

// SetRepetitions sets the "repetitions" field.
func (u *ReviewStateUpsertBulk) SetRepetitions(v int) *ReviewStateUpsertBulk {
	return u.Update(func(s *ReviewStateUpsert) {
		s.SetRepetitions(v)
	})
}

// AddRepetitions adds v to the "repetitions" field.
func (u *ReviewStateUpsertBulk) AddRepetitions(v int) *ReviewStateUpsertBulk {
	return u.Update(func(s *ReviewStateUpsert) {
		s.AddRepetitions(v)
	})
}

// UpdateRepetitions sets the "repetitions" field to the value that was provided on create.
func (u *ReviewStateUpsertBulk) UpdateRepetitions() *ReviewStateUpsertBulk {
	return u.Update(func(s *ReviewStateUpsert) {
		s.UpdateRepetitions()
	})
}

// SetIntervalDays sets the "interval_days" field.
func (u *ReviewStateUpsertBulk) SetIntervalDays(v int) *ReviewStateUpsertBulk {
	return u.Update(func(s *ReviewStateUpsert) {
		s.SetIntervalDays(v)
	})
}

// AddIntervalDays adds v to the "interval_days" field.
func (u *ReviewStateUpsertBulk) AddIntervalDays(v int) *ReviewStateUpsertBulk {
	return u.Update(func(s *ReviewStateUpsert) {
		s.AddIntervalDays(v)
	})
}

// UpdateIntervalDays sets the "interval_days" field to the value that was provided on create.
func (u *ReviewStateUpsertBulk) UpdateIntervalDays() *ReviewStateUpsertBulk {
	return u.Update(func(s *ReviewStateUpsert) {
		s.UpdateIntervalDays()
	})
}

// SetEaseFactor sets the "ease_factor" field.
func (u *ReviewStateUpsertBulk) SetEaseFactor(v float64) *ReviewStateUpsertBulk {
	return u.Update(func(s *ReviewStateUpsert) {
		s.SetEaseFactor(v)
	})
}

// AddEaseFactor adds v to the "ease_factor" field.
func (u *ReviewStateUpsertBulk) AddEaseFactor(v float64) *ReviewStateUpsertBulk {
	return u.Update(func(s *ReviewStateUpsert) {
		s.AddEaseFactor(v)
	})
}

// UpdateEaseFactor sets the "ease_factor" field to the value that was provided on create.
func (u *ReviewStateUpsertBulk) UpdateEaseFactor() *ReviewStateUpsertBulk {
	return u.Update(func(s *ReviewStateUpsert) {
		s.UpdateEaseFactor()
	})
}

// SetNextDueAt sets the "next_due_at" field.
func (u *ReviewStateUpsertBulk) SetNextDueAt(v time.Time) *ReviewStateUpsertBulk {
	return u.Update(func(s *ReviewStateUpsert) {
		s.SetNextDueAt(v)
	})
}

// UpdateNextDueAt sets the "next_due_at" field to the value that was provided on create.
func (u *ReviewStateUpsertBulk) UpdateNextDueAt() *ReviewStateUpsertBulk {
	return u.Update(func(s *ReviewStateUpsert) {
		s.UpdateNextDueAt()
	})
}

// SetLastQuality sets the "last_quality" field.
func (u *ReviewStateUpsertBulk) SetLastQuality(v int) *ReviewStateUpsertBulk {
	return u.Update(func(s *ReviewStateUpsert) {
		s.SetLastQuality(v)
	})
}

// AddLastQuality adds v to the "last_quality" field.
func (u *ReviewStateUpsertBulk) AddLastQuality(v int) *ReviewStateUpsertBulk {
	return u.Update(func(s *ReviewStateUpsert) {
		s.AddLastQuality(v)
	})
}

// UpdateLastQuality sets the "last_quality" field to the value that was provided on create.
func (u *ReviewStateUpsertBulk) UpdateLastQuality() *ReviewStateUpsertBulk {
	return u.Update(func(s *ReviewStateUpsert) {
		s.UpdateLastQuality()
	})
}

// SetLastScore sets the "last_score" field.
func (u *ReviewStateUpsertBulk) SetLastScore(v float64) *ReviewStateUpsertBulk {
	return u.Update(func(s *ReviewStateUpsert) {
		s.SetLastScore(v)
	})
}

// AddLastScore adds v to the "last_score" field.
func (u *ReviewStateUpsertBulk) AddLastScore(v float64) *ReviewStateUpsertBulk {
	return u.Update(func(s *ReviewStateUpsert) {
		s.AddLastScore(v)
	})
}

// UpdateLastScore sets the "last_score" field to the value that was provided on create.
func (u *ReviewStateUpsertBulk) UpdateLastScore() *ReviewStateUpsertBulk {
	return u.Update(func(s *ReviewStateUpsert) {
		s.UpdateLastScore()
	})
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (u *ReviewStateUpsertBulk) SetLastAttemptAt(v time.Time) *ReviewStateUpsertBulk {
	return u.Update(func(s *ReviewStateUpsert) {
		s.SetLastAttemptAt(v)
	})
}

// UpdateLastAttemptAt sets the "last_attempt_at" field to the value that was provided on create.
func (u *ReviewStateUpsertBulk) UpdateLastAttemptAt() *ReviewStateUpsertBulk {
	return u.Update(func(s *ReviewStateUpsert) {
		s.UpdateLastAttemptAt()
	})
}

// ClearLastAttemptAt clears the value of the "last_attempt_at" field.
func (u *ReviewStateUpsertBulk) ClearLastAttemptAt() *ReviewStateUpsertBulk {
	return u.Update(func(s *ReviewStateUpsert) {
		s.ClearLastAttemptAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ReviewStateUpsertBulk) SetUpdatedAt(v time.Time) *ReviewStateUpsertBulk {
	return u.Update(func(s *ReviewStateUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ReviewStateUpsertBulk) UpdateUpdatedAt() *ReviewStateUpsertBulk {
	return u.Update(func(s *ReviewStateUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ReviewStateUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ReviewStateCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReviewStateCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReviewStateUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
