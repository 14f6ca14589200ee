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
	"github.com/Riverstargroup/cultiva-finanzas/ent/courseprogress"
)

// CourseProgressCreate is the builder for creating a CourseProgress entity.
type CourseProgressCreate struct {
	config
	mutation *CourseProgressMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *CourseProgressCreate) SetUserID(v string) *CourseProgressCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetCourseID sets the "course_id" field.
func (_c *CourseProgressCreate) SetCourseID(v string) *CourseProgressCreate {
	_c.mutation.SetCourseID(v)
	return _c
}

// SetCompletedScenarios sets the "completed_scenarios" field.
func (_c *CourseProgressCreate) SetCompletedScenarios(v []string) *CourseProgressCreate {
	_c.mutation.SetCompletedScenarios(v)
	return _c
}

// SetMasteryScore sets the "mastery_score" field.
func (_c *CourseProgressCreate) SetMasteryScore(v float64) *CourseProgressCreate {
	_c.mutation.SetMasteryScore(v)
	return _c
}

// SetNillableMasteryScore sets the "mastery_score" field if the given value is not nil.
func (_c *CourseProgressCreate) SetNillableMasteryScore(v *float64) *CourseProgressCreate {
	if v != nil {
		_c.SetMasteryScore(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *CourseProgressCreate) SetStartedAt(v time.Time) *CourseProgressCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *CourseProgressCreate) SetNillableStartedAt(v *time.Time) *CourseProgressCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *CourseProgressCreate) SetCompletedAt(v time.Time) *CourseProgressCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *CourseProgressCreate) SetNillableCompletedAt(v *time.Time) *CourseProgressCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CourseProgressCreate) SetUpdatedAt(v time.Time) *CourseProgressCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CourseProgressCreate) SetNillableUpdatedAt(v *time.Time) *CourseProgressCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the CourseProgressMutation object of the builder.
func (_c *CourseProgressCreate) Mutation() *CourseProgressMutation {
	return _c.mutation
}

// Save creates the CourseProgress in the database.
func (_c *CourseProgressCreate) Save(ctx context.Context) (*CourseProgress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CourseProgressCreate) SaveX(ctx context.Context) *CourseProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CourseProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CourseProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CourseProgressCreate) defaults() {
	if _, ok := _c.mutation.MasteryScore(); !ok {
		v := courseprogress.DefaultMasteryScore
		_c.mutation.SetMasteryScore(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := courseprogress.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := courseprogress.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CourseProgressCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "CourseProgress.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := courseprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "CourseProgress.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CourseID(); !ok {
		return &ValidationError{Name: "course_id", err: errors.New(`ent: missing required field "CourseProgress.course_id"`)}
	}
	if v, ok := _c.mutation.CourseID(); ok {
		if err := courseprogress.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "CourseProgress.course_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CompletedScenarios(); !ok {
		return &ValidationError{Name: "completed_scenarios", err: errors.New(`ent: missing required field "CourseProgress.completed_scenarios"`)}
	}
	if _, ok := _c.mutation.MasteryScore(); !ok {
		return &ValidationError{Name: "mastery_score", err: errors.New(`ent: missing required field "CourseProgress.mastery_score"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "CourseProgress.started_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CourseProgress.updated_at"`)}
	}
	return nil
}

func (_c *CourseProgressCreate) sqlSave(ctx context.Context) (*CourseProgress, error) {
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

func (_c *CourseProgressCreate) createSpec() (*CourseProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &CourseProgress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(courseprogress.Table, sqlgraph.NewFieldSpec(courseprogress.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(courseprogress.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.CourseID(); ok {
		_spec.SetField(courseprogress.FieldCourseID, field.TypeString, value)
		_node.CourseID = value
	}
	if value, ok := _c.mutation.CompletedScenarios(); ok {
		_spec.SetField(courseprogress.FieldCompletedScenarios, field.TypeJSON, value)
		_node.CompletedScenarios = value
	}
	if value, ok := _c.mutation.MasteryScore(); ok {
		_spec.SetField(courseprogress.FieldMasteryScore, field.TypeFloat64, value)
		_node.MasteryScore = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(courseprogress.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(courseprogress.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(courseprogress.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CourseProgress.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CourseProgressUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *CourseProgressCreate) OnConflict(opts ...sql.ConflictOption) *CourseProgressUpsertOne {
	_c.conflict = opts
	return &CourseProgressUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CourseProgress.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CourseProgressCreate) OnConflictColumns(columns ...string) *CourseProgressUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CourseProgressUpsertOne{
		create: _c,
	}
}

type (
	// CourseProgressUpsertOne is the builder for "upsert"-ing
	//  one CourseProgress node.
	CourseProgressUpsertOne struct {
		create *CourseProgressCreate
	}

	// CourseProgressUpsert is the "OnConflict" setter.
	CourseProgressUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *CourseProgressUpsert) SetUserID(v string) *CourseProgressUpsert {
	u.Set(courseprogress.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *CourseProgressUpsert) UpdateUserID() *CourseProgressUpsert {
	u.SetExcluded(courseprogress.FieldUserID)
	return u
}

// SetCourseID sets the "course_id" field.
func (u *CourseProgressUpsert) SetCourseID(v string) *CourseProgressUpsert {
	u.Set(courseprogress.FieldCourseID, v)
	return u
}

// UpdateCourseID sets the "course_id" field to the value that was provided on create.
func (u *CourseProgressUpsert) UpdateCourseID() *CourseProgressUpsert {
	u.SetExcluded(courseprogress.FieldCourseID)
	return u
}

// SetCompletedScenarios sets the "completed_scenarios" field.
func (u *CourseProgressUpsert) SetCompletedScenarios(v []string) *CourseProgressUpsert {
	u.Set(courseprogress.FieldCompletedScenarios, v)
	return u
}

// UpdateCompletedScenarios sets the "completed_scenarios" field to the value that was provided on create.
func (u *CourseProgressUpsert) UpdateCompletedScenarios() *CourseProgressUpsert {
	u.SetExcluded(courseprogress.FieldCompletedScenarios)
	return u
}

// SetMasteryScore sets the "mastery_score" field.
func (u *CourseProgressUpsert) SetMasteryScore(v float64) *CourseProgressUpsert {
	u.Set(courseprogress.FieldMasteryScore, v)
	return u
}

// UpdateMasteryScore sets the "mastery_score" field to the value that was provided on create.
func (u *CourseProgressUpsert) UpdateMasteryScore() *CourseProgressUpsert {
	u.SetExcluded(courseprogress.FieldMasteryScore)
	return u
}

// AddMasteryScore adds v to the "mastery_score" field.
func (u *CourseProgressUpsert) AddMasteryScore(v float64) *CourseProgressUpsert {
	u.Add(courseprogress.FieldMasteryScore, v)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *CourseProgressUpsert) SetCompletedAt(v time.Time) *CourseProgressUpsert {
	u.Set(courseprogress.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *CourseProgressUpsert) UpdateCompletedAt() *CourseProgressUpsert {
	u.SetExcluded(courseprogress.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *CourseProgressUpsert) ClearCompletedAt() *CourseProgressUpsert {
	u.SetNull(courseprogress.FieldCompletedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CourseProgressUpsert) SetUpdatedAt(v time.Time) *CourseProgressUpsert {
	u.Set(courseprogress.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CourseProgressUpsert) UpdateUpdatedAt() *CourseProgressUpsert {
	u.SetExcluded(courseprogress.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.CourseProgress.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CourseProgressUpsertOne) UpdateNewValues() *CourseProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.StartedAt(); exists {
			s.SetIgnore(courseprogress.FieldStartedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CourseProgress.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CourseProgressUpsertOne) Ignore() *CourseProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CourseProgressUpsertOne) DoNothing() *CourseProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CourseProgressCreate.OnConflict
// documentation for more info.
func (u *CourseProgressUpsertOne) Update(set func(*CourseProgressUpsert)) *CourseProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CourseProgressUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *CourseProgressUpsertOne) SetUserID(v string) *CourseProgressUpsertOne {
	return u.Update(func(s *CourseProgressUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *CourseProgressUpsertOne) UpdateUserID() *CourseProgressUpsertOne {
	return u.Update(func(s *CourseProgressUpsert) {
		s.UpdateUserID()
	})
}

// SetCourseID sets the "course_id" field.
func (u *CourseProgressUpsertOne) SetCourseID(v string) *CourseProgressUpsertOne {
	return u.Update(func(s *CourseProgressUpsert) {
		s.SetCourseID(v)
	})
}

// UpdateCourseID sets the "course_id" field to the value that was provided on create.
func (u *CourseProgressUpsertOne) UpdateCourseID() *CourseProgressUpsertOne {
	return u.Update(func(s *CourseProgressUpsert) {
		s.UpdateCourseID()
	})
}

// SetCompletedScenarios sets the "completed_scenarios" field.
func (u *CourseProgressUpsertOne) SetCompletedScenarios(v []string) *CourseProgressUpsertOne {
	return u.Update(func(s *CourseProgressUpsert) {
		s.SetCompletedScenarios(v)
	})
}

// UpdateCompletedScenarios sets the "completed_scenarios" field to the value that was provided on create.
func (u *CourseProgressUpsertOne) UpdateCompletedScenarios() *CourseProgressUpsertOne {
	return u.Update(func(s *CourseProgressUpsert) {
		s.UpdateCompletedScenarios()
	})
}

// SetMasteryScore sets the "mastery_score" field.
func (u *CourseProgressUpsertOne) SetMasteryScore(v float64) *CourseProgressUpsertOne {
	return u.Update(func(s *CourseProgressUpsert) {
		s.SetMasteryScore(v)
	})
}

// AddMasteryScore adds v to the "mastery_score" field.
func (u *CourseProgressUpsertOne) AddMasteryScore(v float64) *CourseProgressUpsertOne {
	return u.Update(func(s *CourseProgressUpsert) {
		s.AddMasteryScore(v)
	})
}

// UpdateMasteryScore sets the "mastery_score" field to the value that was provided on create.
func (u *CourseProgressUpsertOne) UpdateMasteryScore() *CourseProgressUpsertOne {
	return u.Update(func(s *CourseProgressUpsert) {
		s.UpdateMasteryScore()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *CourseProgressUpsertOne) SetCompletedAt(v time.Time) *CourseProgressUpsertOne {
	return u.Update(func(s *CourseProgressUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *CourseProgressUpsertOne) UpdateCompletedAt() *CourseProgressUpsertOne {
	return u.Update(func(s *CourseProgressUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *CourseProgressUpsertOne) ClearCompletedAt() *CourseProgressUpsertOne {
	return u.Update(func(s *CourseProgressUpsert) {
		s.ClearCompletedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CourseProgressUpsertOne) SetUpdatedAt(v time.Time) *CourseProgressUpsertOne {
	return u.Update(func(s *CourseProgressUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CourseProgressUpsertOne) UpdateUpdatedAt() *CourseProgressUpsertOne {
	return u.Update(func(s *CourseProgressUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CourseProgressUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CourseProgressCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CourseProgressUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CourseProgressUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CourseProgressUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CourseProgressCreateBulk is the builder for creating many CourseProgress entities in bulk.
type CourseProgressCreateBulk struct {
	config
	err      error
	builders []*CourseProgressCreate
	conflict []sql.ConflictOption
}

// Save creates the CourseProgress entities in the database.
func (_c *CourseProgressCreateBulk) Save(ctx context.Context) ([]*CourseProgress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CourseProgress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CourseProgressMutation)
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
func (_c *CourseProgressCreateBulk) SaveX(ctx context.Context) []*CourseProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CourseProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CourseProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CourseProgress.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CourseProgressUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *CourseProgressCreateBulk) OnConflict(opts ...sql.ConflictOption) *CourseProgressUpsertBulk {
	_c.conflict = opts
	return &CourseProgressUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CourseProgress.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CourseProgressCreateBulk) OnConflictColumns(columns ...string) *CourseProgressUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CourseProgressUpsertBulk{
		create: _c,
	}
}

// CourseProgressUpsertBulk is the builder for "upsert"-ing
// a bulk of CourseProgress nodes.
type CourseProgressUpsertBulk struct {
	create *CourseProgressCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CourseProgress.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CourseProgressUpsertBulk) UpdateNewValues() *CourseProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.StartedAt(); exists {
				s.SetIgnore(courseprogress.FieldStartedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CourseProgress.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CourseProgressUpsertBulk) Ignore() *CourseProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CourseProgressUpsertBulk) DoNothing() *CourseProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CourseProgressCreateBulk.OnConflict
// documentation for more info.
func (u *CourseProgressUpsertBulk) Update(set func(*CourseProgressUpsert)) *CourseProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CourseProgressUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *CourseProgressUpsertBulk) SetUserID(v string) *CourseProgressUpsertBulk {
	return u.Update(func(s *CourseProgressUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *CourseProgressUpsertBulk) UpdateUserID() *CourseProgressUpsertBulk {
	return u.Update(func(s *CourseProgressUpsert) {
		s.UpdateUserID()
	})
}

// SetCourseID sets the "course_id" field.
func (u *CourseProgressUpsertBulk) SetCourseID(v string) *CourseProgressUpsertBulk {
	return u.Update(func(s *CourseProgressUpsert) {
		s.SetCourseID(v)
	})
}

// UpdateCourseID sets the "course_id" field to the value that was provided on create.
func (u *CourseProgressUpsertBulk) UpdateCourseID() *CourseProgressUpsertBulk {
	return u.Update(func(s *CourseProgressUpsert) {
		s.UpdateCourseID()
	})
}

// SetCompletedScenarios sets the "completed_scenarios" field.
func (u *CourseProgressUpsertBulk) SetCompletedScenarios(v []string) *CourseProgressUpsertBulk {
	return u.Update(func(s *CourseProgressUpsert) {
		s.SetCompletedScenarios(v)
	})
}

// UpdateCompletedScenarios sets the "completed_scenarios" field to the value that was provided on create.
func (u *CourseProgressUpsertBulk) UpdateCompletedScenarios() *CourseProgressUpsertBulk {
	return u.Update(func(s *CourseProgressUpsert) {
		s.UpdateCompletedScenarios()
	})
}

// SetMasteryScore sets the "mastery_score" field.
func (u *CourseProgressUpsertBulk) SetMasteryScore(v float64) *CourseProgressUpsertBulk {
	return u.Update(func(s *CourseProgressUpsert) {
		s.SetMasteryScore(v)
	})
}

// AddMasteryScore adds v to the "mastery_score" field.
func (u *CourseProgressUpsertBulk) AddMasteryScore(v float64) *CourseProgressUpsertBulk {
	return u.Update(func(s *CourseProgressUpsert) {
		s.AddMasteryScore(v)
	})
}

// UpdateMasteryScore sets the "mastery_score" field to the value that was provided on create.
func (u *CourseProgressUpsertBulk) UpdateMasteryScore() *CourseProgressUpsertBulk {
	return u.Update(func(s *CourseProgressUpsert) {
		s.UpdateMasteryScore()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *CourseProgressUpsertBulk) SetCompletedAt(v time.Time) *CourseProgressUpsertBulk {
	return u.Update(func(s *CourseProgressUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *CourseProgressUpsertBulk) UpdateCompletedAt() *CourseProgressUpsertBulk {
	return u.Update(func(s *CourseProgressUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *CourseProgressUpsertBulk) ClearCompletedAt() *CourseProgressUpsertBulk {
	return u.Update(func(s *CourseProgressUpsert) {
		s.ClearCompletedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CourseProgressUpsertBulk) SetUpdatedAt(v time.Time) *CourseProgressUpsertBulk {
	return u.Update(func(s *CourseProgressUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CourseProgressUpsertBulk) UpdateUpdatedAt() *CourseProgressUpsertBulk {
	return u.Update(func(s *CourseProgressUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CourseProgressUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CourseProgressCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CourseProgressCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CourseProgressUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
