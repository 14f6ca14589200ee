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
	"github.com/Riverstargroup/cultiva-finanzas/ent/activityday"
)

// ActivityDayCreate is the builder for creating a ActivityDay entity.
type ActivityDayCreate struct {
	config
	mutation *ActivityDayMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *ActivityDayCreate) SetUserID(v string) *ActivityDayCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetDay sets the "day" field.
func (_c *ActivityDayCreate) SetDay(v string) *ActivityDayCreate {
	_c.mutation.SetDay(v)
	return _c
}

// SetMinutes sets the "minutes" field.
func (_c *ActivityDayCreate) SetMinutes(v int) *ActivityDayCreate {
	_c.mutation.SetMinutes(v)
	return _c
}

// SetNillableMinutes sets the "minutes" field if the given value is not nil.
func (_c *ActivityDayCreate) SetNillableMinutes(v *int) *ActivityDayCreate {
	if v != nil {
		_c.SetMinutes(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ActivityDayCreate) SetCreatedAt(v time.Time) *ActivityDayCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ActivityDayCreate) SetNillableCreatedAt(v *time.Time) *ActivityDayCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the ActivityDayMutation object of the builder.
func (_c *ActivityDayCreate) Mutation() *ActivityDayMutation {
	return _c.mutation
}

// Save creates the ActivityDay in the database.
func (_c *ActivityDayCreate) Save(ctx context.Context) (*ActivityDay, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ActivityDayCreate) SaveX(ctx context.Context) *ActivityDay {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActivityDayCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActivityDayCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ActivityDayCreate) defaults() {
	if _, ok := _c.mutation.Minutes(); !ok {
		v := activityday.DefaultMinutes
		_c.mutation.SetMinutes(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := activityday.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ActivityDayCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ActivityDay.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := activityday.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ActivityDay.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Day(); !ok {
		return &ValidationError{Name: "day", err: errors.New(`ent: missing required field "ActivityDay.day"`)}
	}
	if v, ok := _c.mutation.Day(); ok {
		if err := activityday.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`ent: validator failed for field "ActivityDay.day": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Minutes(); !ok {
		return &ValidationError{Name: "minutes", err: errors.New(`ent: missing required field "ActivityDay.minutes"`)}
	}
	if v, ok := _c.mutation.Minutes(); ok {
		if err := activityday.MinutesValidator(v); err != nil {
			return &ValidationError{Name: "minutes", err: fmt.Errorf(`ent: validator failed for field "ActivityDay.minutes": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ActivityDay.created_at"`)}
	}
	return nil
}

func (_c *ActivityDayCreate) sqlSave(ctx context.Context) (*ActivityDay, error) {
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

func (_c *ActivityDayCreate) createSpec() (*ActivityDay, *sqlgraph.CreateSpec) {
	var (
		_node = &ActivityDay{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(activityday.Table, sqlgraph.NewFieldSpec(activityday.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(activityday.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Day(); ok {
		_spec.SetField(activityday.FieldDay, field.TypeString, value)
		_node.Day = value
	}
	if value, ok := _c.mutation.Minutes(); ok {
		_spec.SetField(activityday.FieldMinutes, field.TypeInt, value)
		_node.Minutes = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(activityday.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ActivityDay.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ActivityDayUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *ActivityDayCreate) OnConflict(opts ...sql.ConflictOption) *ActivityDayUpsertOne {
	_c.conflict = opts
	return &ActivityDayUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ActivityDay.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ActivityDayCreate) OnConflictColumns(columns ...string) *ActivityDayUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ActivityDayUpsertOne{
		create: _c,
	}
}

type (
	// ActivityDayUpsertOne is the builder for "upsert"-ing
	//  one ActivityDay node.
	ActivityDayUpsertOne struct {
		create *ActivityDayCreate
	}

	// ActivityDayUpsert is the "OnConflict" setter.
	ActivityDayUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *ActivityDayUpsert) SetUserID(v string) *ActivityDayUpsert {
	u.Set(activityday.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ActivityDayUpsert) UpdateUserID() *ActivityDayUpsert {
	u.SetExcluded(activityday.FieldUserID)
	return u
}

// SetDay sets the "day" field.
func (u *ActivityDayUpsert) SetDay(v string) *ActivityDayUpsert {
	u.Set(activityday.FieldDay, v)
	return u
}

// UpdateDay sets the "day" field to the value that was provided on create.
func (u *ActivityDayUpsert) UpdateDay() *ActivityDayUpsert {
	u.SetExcluded(activityday.FieldDay)
	return u
}

// SetMinutes sets the "minutes" field.
func (u *ActivityDayUpsert) SetMinutes(v int) *ActivityDayUpsert {
	u.Set(activityday.FieldMinutes, v)
	return u
}

// UpdateMinutes sets the "minutes" field to the value that was provided on create.
func (u *ActivityDayUpsert) UpdateMinutes() *ActivityDayUpsert {
	u.SetExcluded(activityday.FieldMinutes)
	return u
}

// AddMinutes adds v to the "minutes" field.
func (u *ActivityDayUpsert) AddMinutes(v int) *ActivityDayUpsert {
	u.Add(activityday.FieldMinutes, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ActivityDay.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ActivityDayUpsertOne) UpdateNewValues() *ActivityDayUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(activityday.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ActivityDay.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ActivityDayUpsertOne) Ignore() *ActivityDayUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ActivityDayUpsertOne) DoNothing() *ActivityDayUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ActivityDayCreate.OnConflict
// documentation for more info.
func (u *ActivityDayUpsertOne) Update(set func(*ActivityDayUpsert)) *ActivityDayUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ActivityDayUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *ActivityDayUpsertOne) SetUserID(v string) *ActivityDayUpsertOne {
	return u.Update(func(s *ActivityDayUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ActivityDayUpsertOne) UpdateUserID() *ActivityDayUpsertOne {
	return u.Update(func(s *ActivityDayUpsert) {
		s.UpdateUserID()
	})
}

// SetDay sets the "day" field.
func (u *ActivityDayUpsertOne) SetDay(v string) *ActivityDayUpsertOne {
	return u.Update(func(s *ActivityDayUpsert) {
		s.SetDay(v)
	})
}

// UpdateDay sets the "day" field to the value that was provided on create.
func (u *ActivityDayUpsertOne) UpdateDay() *ActivityDayUpsertOne {
	return u.Update(func(s *ActivityDayUpsert) {
		s.UpdateDay()
	})
}

// SetMinutes sets the "minutes" field.
func (u *ActivityDayUpsertOne) SetMinutes(v int) *ActivityDayUpsertOne {
	return u.Update(func(s *ActivityDayUpsert) {
		s.SetMinutes(v)
	})
}

// AddMinutes adds v to the "minutes" field.
func (u *ActivityDayUpsertOne) AddMinutes(v int) *ActivityDayUpsertOne {
	return u.Update(func(s *ActivityDayUpsert) {
		s.AddMinutes(v)
	})
}

// UpdateMinutes sets the "minutes" field to the value that was provided on create.
func (u *ActivityDayUpsertOne) UpdateMinutes() *ActivityDayUpsertOne {
	return u.Update(func(s *ActivityDayUpsert) {
		s.UpdateMinutes()
	})
}

// Exec executes the query.
func (u *ActivityDayUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ActivityDayCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ActivityDayUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ActivityDayUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ActivityDayUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ActivityDayCreateBulk is the builder for creating many ActivityDay entities in bulk.
type ActivityDayCreateBulk struct {
	config
	err      error
	builders []*ActivityDayCreate
	conflict []sql.ConflictOption
}

// Save creates the ActivityDay entities in the database.
func (_c *ActivityDayCreateBulk) Save(ctx context.Context) ([]*ActivityDay, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ActivityDay, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ActivityDayMutation)
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
func (_c *ActivityDayCreateBulk) SaveX(ctx context.Context) []*ActivityDay {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActivityDayCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActivityDayCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ActivityDay.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ActivityDayUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *ActivityDayCreateBulk) OnConflict(opts ...sql.ConflictOption) *ActivityDayUpsertBulk {
	_c.conflict = opts
	return &ActivityDayUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ActivityDay.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ActivityDayCreateBulk) OnConflictColumns(columns ...string) *ActivityDayUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ActivityDayUpsertBulk{
		create: _c,
	}
}

// ActivityDayUpsertBulk is the builder for "upsert"-ing
// a bulk of ActivityDay nodes.
type ActivityDayUpsertBulk struct {
	create *ActivityDayCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ActivityDay.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ActivityDayUpsertBulk) UpdateNewValues() *ActivityDayUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(activityday.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ActivityDay.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ActivityDayUpsertBulk) Ignore() *ActivityDayUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ActivityDayUpsertBulk) DoNothing() *ActivityDayUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ActivityDayCreateBulk.OnConflict
// documentation for more info.
func (u *ActivityDayUpsertBulk) Update(set func(*ActivityDayUpsert)) *ActivityDayUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ActivityDayUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *ActivityDayUpsertBulk) SetUserID(v string) *ActivityDayUpsertBulk {
	return u.Update(func(s *ActivityDayUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ActivityDayUpsertBulk) UpdateUserID() *ActivityDayUpsertBulk {
	return u.Update(func(s *ActivityDayUpsert) {
		s.UpdateUserID()
	})
}

// SetDay sets the "day" field.
func (u *ActivityDayUpsertBulk) SetDay(v string) *ActivityDayUpsertBulk {
	return u.Update(func(s *ActivityDayUpsert) {
		s.SetDay(v)
	})
}

// UpdateDay sets the "day" field to the value that was provided on create.
func (u *ActivityDayUpsertBulk) UpdateDay() *ActivityDayUpsertBulk {
	return u.Update(func(s *ActivityDayUpsert) {
		s.UpdateDay()
	})
}

// SetMinutes sets the "minutes" field.
func (u *ActivityDayUpsertBulk) SetMinutes(v int) *ActivityDayUpsertBulk {
	return u.Update(func(s *ActivityDayUpsert) {
		s.SetMinutes(v)
	})
}

// AddMinutes adds v to the "minutes" field.
func (u *ActivityDayUpsertBulk) AddMinutes(v int) *ActivityDayUpsertBulk {
	return u.Update(func(s *ActivityDayUpsert) {
		s.AddMinutes(v)
	})
}

// UpdateMinutes sets the "minutes" field to the value that was provided on create.
func (u *ActivityDayUpsertBulk) UpdateMinutes() *ActivityDayUpsertBulk {
	return u.Update(func(s *ActivityDayUpsert) {
		s.UpdateMinutes()
	})
}

// Exec executes the query.
func (u *ActivityDayUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ActivityDayCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ActivityDayCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ActivityDayUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
