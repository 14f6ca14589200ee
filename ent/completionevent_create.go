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
	"github.com/Riverstargroup/cultiva-finanzas/ent/completionevent"
)

// CompletionEventCreate is the builder for creating a CompletionEvent entity.
type CompletionEventCreate struct {
	config
	mutation *CompletionEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSequence sets the "sequence" field.
func (_c *CompletionEventCreate) SetSequence(v int64) *CompletionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *CompletionEventCreate) SetTimestamp(v time.Time) *CompletionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *CompletionEventCreate) SetNillableTimestamp(v *time.Time) *CompletionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *CompletionEventCreate) SetUserID(v string) *CompletionEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetCourseID sets the "course_id" field.
func (_c *CompletionEventCreate) SetCourseID(v string) *CompletionEventCreate {
	_c.mutation.SetCourseID(v)
	return _c
}

// SetScenarioID sets the "scenario_id" field.
func (_c *CompletionEventCreate) SetScenarioID(v string) *CompletionEventCreate {
	_c.mutation.SetScenarioID(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *CompletionEventCreate) SetScore(v float64) *CompletionEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetQuality sets the "quality" field.
func (_c *CompletionEventCreate) SetQuality(v int) *CompletionEventCreate {
	_c.mutation.SetQuality(v)
	return _c
}

// SetFirstCompletion sets the "first_completion" field.
func (_c *CompletionEventCreate) SetFirstCompletion(v bool) *CompletionEventCreate {
	_c.mutation.SetFirstCompletion(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *CompletionEventCreate) SetSessionID(v string) *CompletionEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *CompletionEventCreate) SetNillableSessionID(v *string) *CompletionEventCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// Mutation returns the CompletionEventMutation object of the builder.
func (_c *CompletionEventCreate) Mutation() *CompletionEventMutation {
	return _c.mutation
}

// Save creates the CompletionEvent in the database.
func (_c *CompletionEventCreate) Save(ctx context.Context) (*CompletionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CompletionEventCreate) SaveX(ctx context.Context) *CompletionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompletionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompletionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CompletionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := completionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CompletionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "CompletionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "CompletionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "CompletionEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := completionevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CourseID(); !ok {
		return &ValidationError{Name: "course_id", err: errors.New(`ent: missing required field "CompletionEvent.course_id"`)}
	}
	if v, ok := _c.mutation.CourseID(); ok {
		if err := completionevent.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.course_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScenarioID(); !ok {
		return &ValidationError{Name: "scenario_id", err: errors.New(`ent: missing required field "CompletionEvent.scenario_id"`)}
	}
	if v, ok := _c.mutation.ScenarioID(); ok {
		if err := completionevent.ScenarioIDValidator(v); err != nil {
			return &ValidationError{Name: "scenario_id", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.scenario_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "CompletionEvent.score"`)}
	}
	if _, ok := _c.mutation.Quality(); !ok {
		return &ValidationError{Name: "quality", err: errors.New(`ent: missing required field "CompletionEvent.quality"`)}
	}
	if v, ok := _c.mutation.Quality(); ok {
		if err := completionevent.QualityValidator(v); err != nil {
			return &ValidationError{Name: "quality", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.quality": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FirstCompletion(); !ok {
		return &ValidationError{Name: "first_completion", err: errors.New(`ent: missing required field "CompletionEvent.first_completion"`)}
	}
	return nil
}

func (_c *CompletionEventCreate) sqlSave(ctx context.Context) (*CompletionEvent, error) {
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

func (_c *CompletionEventCreate) createSpec() (*CompletionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &CompletionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(completionevent.Table, sqlgraph.NewFieldSpec(completionevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(completionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(completionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(completionevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.CourseID(); ok {
		_spec.SetField(completionevent.FieldCourseID, field.TypeString, value)
		_node.CourseID = value
	}
	if value, ok := _c.mutation.ScenarioID(); ok {
		_spec.SetField(completionevent.FieldScenarioID, field.TypeString, value)
		_node.ScenarioID = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(completionevent.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Quality(); ok {
		_spec.SetField(completionevent.FieldQuality, field.TypeInt, value)
		_node.Quality = value
	}
	if value, ok := _c.mutation.FirstCompletion(); ok {
		_spec.SetField(completionevent.FieldFirstCompletion, field.TypeBool, value)
		_node.FirstCompletion = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(completionevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CompletionEvent.Create().
//		SetSequence(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CompletionEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *CompletionEventCreate) OnConflict(opts ...sql.ConflictOption) *CompletionEventUpsertOne {
	_c.conflict = opts
	return &CompletionEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CompletionEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CompletionEventCreate) OnConflictColumns(columns ...string) *CompletionEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CompletionEventUpsertOne{
		create: _c,
	}
}

type (
	// CompletionEventUpsertOne is the builder for "upsert"-ing
	//  one CompletionEvent node.
	CompletionEventUpsertOne struct {
		create *CompletionEventCreate
	}

	// CompletionEventUpsert is the "OnConflict" setter.
	CompletionEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *CompletionEventUpsert) SetUserID(v string) *CompletionEventUpsert {
	u.Set(completionevent.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *CompletionEventUpsert) UpdateUserID() *CompletionEventUpsert {
	u.SetExcluded(completionevent.FieldUserID)
	return u
}

// SetCourseID sets the "course_id" field.
func (u *CompletionEventUpsert) SetCourseID(v string) *CompletionEventUpsert {
	u.Set(completionevent.FieldCourseID, v)
	return u
}

// UpdateCourseID sets the "course_id" field to the value that was provided on create.
func (u *CompletionEventUpsert) UpdateCourseID() *CompletionEventUpsert {
	u.SetExcluded(completionevent.FieldCourseID)
	return u
}

// SetScenarioID sets the "scenario_id" field.
func (u *CompletionEventUpsert) SetScenarioID(v string) *CompletionEventUpsert {
	u.Set(completionevent.FieldScenarioID, v)
	return u
}

// UpdateScenarioID sets the "scenario_id" field to the value that was provided on create.
func (u *CompletionEventUpsert) UpdateScenarioID() *CompletionEventUpsert {
	u.SetExcluded(completionevent.FieldScenarioID)
	return u
}

// SetScore sets the "score" field.
func (u *CompletionEventUpsert) SetScore(v float64) *CompletionEventUpsert {
	u.Set(completionevent.FieldScore, v)
	return u
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *CompletionEventUpsert) UpdateScore() *CompletionEventUpsert {
	u.SetExcluded(completionevent.FieldScore)
	return u
}

// AddScore adds v to the "score" field.
func (u *CompletionEventUpsert) AddScore(v float64) *CompletionEventUpsert {
	u.Add(completionevent.FieldScore, v)
	return u
}

// SetQuality sets the "quality" field.
func (u *CompletionEventUpsert) SetQuality(v int) *CompletionEventUpsert {
	u.Set(completionevent.FieldQuality, v)
	return u
}

// UpdateQuality sets the "quality" field to the value that was provided on create.
func (u *CompletionEventUpsert) UpdateQuality() *CompletionEventUpsert {
	u.SetExcluded(completionevent.FieldQuality)
	return u
}

// AddQuality adds v to the "quality" field.
func (u *CompletionEventUpsert) AddQuality(v int) *CompletionEventUpsert {
	u.Add(completionevent.FieldQuality, v)
	return u
}

// SetFirstCompletion sets the "first_completion" field.
func (u *CompletionEventUpsert) SetFirstCompletion(v bool) *CompletionEventUpsert {
	u.Set(completionevent.FieldFirstCompletion, v)
	return u
}

// UpdateFirstCompletion sets the "first_completion" field to the value that was provided on create.
func (u *CompletionEventUpsert) UpdateFirstCompletion() *CompletionEventUpsert {
	u.SetExcluded(completionevent.FieldFirstCompletion)
	return u
}

// SetSessionID sets the "session_id" field.
func (u *CompletionEventUpsert) SetSessionID(v string) *CompletionEventUpsert {
	u.Set(completionevent.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *CompletionEventUpsert) UpdateSessionID() *CompletionEventUpsert {
	u.SetExcluded(completionevent.FieldSessionID)
	return u
}

// ClearSessionID clears the value of the "session_id" field.
func (u *CompletionEventUpsert) ClearSessionID() *CompletionEventUpsert {
	u.SetNull(completionevent.FieldSessionID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.CompletionEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CompletionEventUpsertOne) UpdateNewValues() *CompletionEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(completionevent.FieldSequence)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(completionevent.FieldTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CompletionEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CompletionEventUpsertOne) Ignore() *CompletionEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CompletionEventUpsertOne) DoNothing() *CompletionEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CompletionEventCreate.OnConflict
// documentation for more info.
func (u *CompletionEventUpsertOne) Update(set func(*CompletionEventUpsert)) *CompletionEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CompletionEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *CompletionEventUpsertOne) SetUserID(v string) *CompletionEventUpsertOne {
	return u.Update(func(s *CompletionEventUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *CompletionEventUpsertOne) UpdateUserID() *CompletionEventUpsertOne {
	return u.Update(func(s *CompletionEventUpsert) {
		s.UpdateUserID()
	})
}

// SetCourseID sets the "course_id" field.
func (u *CompletionEventUpsertOne) SetCourseID(v string) *CompletionEventUpsertOne {
	return u.Update(func(s *CompletionEventUpsert) {
		s.SetCourseID(v)
	})
}

// UpdateCourseID sets the "course_id" field to the value that was provided on create.
func (u *CompletionEventUpsertOne) UpdateCourseID() *CompletionEventUpsertOne {
	return u.Update(func(s *CompletionEventUpsert) {
		s.UpdateCourseID()
	})
}

// SetScenarioID sets the "scenario_id" field.
func (u *CompletionEventUpsertOne) SetScenarioID(v string) *CompletionEventUpsertOne {
	return u.Update(func(s *CompletionEventUpsert) {
		s.SetScenarioID(v)
	})
}

// UpdateScenarioID sets the "scenario_id" field to the value that was provided on create.
func (u *CompletionEventUpsertOne) UpdateScenarioID() *CompletionEventUpsertOne {
	return u.Update(func(s *CompletionEventUpsert) {
		s.UpdateScenarioID()
	})
}

// SetScore sets the "score" field.
func (u *CompletionEventUpsertOne) SetScore(v float64) *CompletionEventUpsertOne {
	return u.Update(func(s *CompletionEventUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *CompletionEventUpsertOne) AddScore(v float64) *CompletionEventUpsertOne {
	return u.Update(func(s *CompletionEventUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *CompletionEventUpsertOne) UpdateScore() *CompletionEventUpsertOne {
	return u.Update(func(s *CompletionEventUpsert) {
		s.UpdateScore()
	})
}

// SetQuality sets the "quality" field.
func (u *CompletionEventUpsertOne) SetQuality(v int) *CompletionEventUpsertOne {
	return u.Update(func(s *CompletionEventUpsert) {
		s.SetQuality(v)
	})
}

// AddQuality adds v to the "quality" field.
func (u *CompletionEventUpsertOne) AddQuality(v int) *CompletionEventUpsertOne {
	return u.Update(func(s *CompletionEventUpsert) {
		s.AddQuality(v)
	})
}

// UpdateQuality sets the "quality" field to the value that was provided on create.
func (u *CompletionEventUpsertOne) UpdateQuality() *CompletionEventUpsertOne {
	return u.Update(func(s *CompletionEventUpsert) {
		s.UpdateQuality()
	})
}

// SetFirstCompletion sets the "first_completion" field.
func (u *CompletionEventUpsertOne) SetFirstCompletion(v bool) *CompletionEventUpsertOne {
	return u.Update(func(s *CompletionEventUpsert) {
		s.SetFirstCompletion(v)
	})
}

// UpdateFirstCompletion sets the "first_completion" field to the value that was provided on create.
func (u *CompletionEventUpsertOne) UpdateFirstCompletion() *CompletionEventUpsertOne {
	return u.Update(func(s *CompletionEventUpsert) {
		s.UpdateFirstCompletion()
	})
}

// SetSessionID sets the "session_id" field.
func (u *CompletionEventUpsertOne) SetSessionID(v string) *CompletionEventUpsertOne {
	return u.Update(func(s *CompletionEventUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *CompletionEventUpsertOne) UpdateSessionID() *CompletionEventUpsertOne {
	return u.Update(func(s *CompletionEventUpsert) {
		s.UpdateSessionID()
	})
}

// ClearSessionID clears the value of the "session_id" field.
func (u *CompletionEventUpsertOne) ClearSessionID() *CompletionEventUpsertOne {
	return u.Update(func(s *CompletionEventUpsert) {
		s.ClearSessionID()
	})
}

// Exec executes the query.
func (u *CompletionEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CompletionEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CompletionEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CompletionEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CompletionEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CompletionEventCreateBulk is the builder for creating many CompletionEvent entities in bulk.
type CompletionEventCreateBulk struct {
	config
	err      error
	builders []*CompletionEventCreate
	conflict []sql.ConflictOption
}

// Save creates the CompletionEvent entities in the database.
func (_c *CompletionEventCreateBulk) Save(ctx context.Context) ([]*CompletionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CompletionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CompletionEventMutation)
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
func (_c *CompletionEventCreateBulk) SaveX(ctx context.Context) []*CompletionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompletionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompletionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CompletionEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CompletionEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *CompletionEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *CompletionEventUpsertBulk {
	_c.conflict = opts
	return &CompletionEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CompletionEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CompletionEventCreateBulk) OnConflictColumns(columns ...string) *CompletionEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CompletionEventUpsertBulk{
		create: _c,
	}
}

// CompletionEventUpsertBulk is the builder for "upsert"-ing
// a bulk of CompletionEvent nodes.
type CompletionEventUpsertBulk struct {
	create *CompletionEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CompletionEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CompletionEventUpsertBulk) UpdateNewValues() *CompletionEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(completionevent.FieldSequence)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(completionevent.FieldTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CompletionEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CompletionEventUpsertBulk) Ignore() *CompletionEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CompletionEventUpsertBulk) DoNothing() *CompletionEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CompletionEventCreateBulk.OnConflict
// documentation for more info.
func (u *CompletionEventUpsertBulk) Update(set func(*CompletionEventUpsert)) *CompletionEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CompletionEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *CompletionEventUpsertBulk) SetUserID(v string) *CompletionEventUpsertBulk {
	return u.Update(func(s *CompletionEventUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *CompletionEventUpsertBulk) UpdateUserID() *CompletionEventUpsertBulk {
	return u.Update(func(s *CompletionEventUpsert) {
		s.UpdateUserID()
	})
}

// SetCourseID sets the "course_id" field.
func (u *CompletionEventUpsertBulk) SetCourseID(v string) *CompletionEventUpsertBulk {
	return u.Update(func(s *CompletionEventUpsert) {
		s.SetCourseID(v)
	})
}

// UpdateCourseID sets the "course_id" field to the value that was provided on create.
func (u *CompletionEventUpsertBulk) UpdateCourseID() *CompletionEventUpsertBulk {
	return u.Update(func(s *CompletionEventUpsert) {
		s.UpdateCourseID()
	})
}

// SetScenarioID sets the "scenario_id" field.
func (u *CompletionEventUpsertBulk) SetScenarioID(v string) *CompletionEventUpsertBulk {
	return u.Update(func(s *CompletionEventUpsert) {
		s.SetScenarioID(v)
	})
}

// UpdateScenarioID sets the "scenario_id" field to the value that was provided on create.
func (u *CompletionEventUpsertBulk) UpdateScenarioID() *CompletionEventUpsertBulk {
	return u.Update(func(s *CompletionEventUpsert) {
		s.UpdateScenarioID()
	})
}

// SetScore sets the "score" field.
func (u *CompletionEventUpsertBulk) SetScore(v float64) *CompletionEventUpsertBulk {
	return u.Update(func(s *CompletionEventUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *CompletionEventUpsertBulk) AddScore(v float64) *CompletionEventUpsertBulk {
	return u.Update(func(s *CompletionEventUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *CompletionEventUpsertBulk) UpdateScore() *CompletionEventUpsertBulk {
	return u.Update(func(s *CompletionEventUpsert) {
		s.UpdateScore()
	})
}

// SetQuality sets the "quality" field.
func (u *CompletionEventUpsertBulk) SetQuality(v int) *CompletionEventUpsertBulk {
	return u.Update(func(s *CompletionEventUpsert) {
		s.SetQuality(v)
	})
}

// AddQuality adds v to the "quality" field.
func (u *CompletionEventUpsertBulk) AddQuality(v int) *CompletionEventUpsertBulk {
	return u.Update(func(s *CompletionEventUpsert) {
		s.AddQuality(v)
	})
}

// UpdateQuality sets the "quality" field to the value that was provided on create.
func (u *CompletionEventUpsertBulk) UpdateQuality() *CompletionEventUpsertBulk {
	return u.Update(func(s *CompletionEventUpsert) {
		s.UpdateQuality()
	})
}

// SetFirstCompletion sets the "first_completion" field.
func (u *CompletionEventUpsertBulk) SetFirstCompletion(v bool) *CompletionEventUpsertBulk {
	return u.Update(func(s *CompletionEventUpsert) {
		s.SetFirstCompletion(v)
	})
}

// UpdateFirstCompletion sets the "first_completion" field to the value that was provided on create.
func (u *CompletionEventUpsertBulk) UpdateFirstCompletion() *CompletionEventUpsertBulk {
	return u.Update(func(s *CompletionEventUpsert) {
		s.UpdateFirstCompletion()
	})
}

// SetSessionID sets the "session_id" field.
func (u *CompletionEventUpsertBulk) SetSessionID(v string) *CompletionEventUpsertBulk {
	return u.Update(func(s *CompletionEventUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *CompletionEventUpsertBulk) UpdateSessionID() *CompletionEventUpsertBulk {
	return u.Update(func(s *CompletionEventUpsert) {
		s.UpdateSessionID()
	})
}

// ClearSessionID clears the value of the "session_id" field.
func (u *CompletionEventUpsertBulk) ClearSessionID() *CompletionEventUpsertBulk {
	return u.Update(func(s *CompletionEventUpsert) {
		s.ClearSessionID()
	})
}

// Exec executes the query.
func (u *CompletionEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CompletionEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CompletionEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CompletionEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
