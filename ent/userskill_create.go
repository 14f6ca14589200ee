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
	"github.com/Riverstargroup/cultiva-finanzas/ent/userskill"
)

// UserSkillCreate is the builder for creating a UserSkill entity.
type UserSkillCreate struct {
	config
	mutation *UserSkillMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *UserSkillCreate) SetUserID(v string) *UserSkillCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSkillID sets the "skill_id" field.
func (_c *UserSkillCreate) SetSkillID(v string) *UserSkillCreate {
	_c.mutation.SetSkillID(v)
	return _c
}

// SetMastery sets the "mastery" field.
func (_c *UserSkillCreate) SetMastery(v float64) *UserSkillCreate {
	_c.mutation.SetMastery(v)
	return _c
}

// SetNillableMastery sets the "mastery" field if the given value is not nil.
func (_c *UserSkillCreate) SetNillableMastery(v *float64) *UserSkillCreate {
	if v != nil {
		_c.SetMastery(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *UserSkillCreate) SetStatus(v string) *UserSkillCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *UserSkillCreate) SetNillableStatus(v *string) *UserSkillCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UserSkillCreate) SetUpdatedAt(v time.Time) *UserSkillCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UserSkillCreate) SetNillableUpdatedAt(v *time.Time) *UserSkillCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the UserSkillMutation object of the builder.
func (_c *UserSkillCreate) Mutation() *UserSkillMutation {
	return _c.mutation
}

// Save creates the UserSkill in the database.
func (_c *UserSkillCreate) Save(ctx context.Context) (*UserSkill, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserSkillCreate) SaveX(ctx context.Context) *UserSkill {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserSkillCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserSkillCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserSkillCreate) defaults() {
	if _, ok := _c.mutation.Mastery(); !ok {
		v := userskill.DefaultMastery
		_c.mutation.SetMastery(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := userskill.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := userskill.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserSkillCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UserSkill.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := userskill.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UserSkill.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SkillID(); !ok {
		return &ValidationError{Name: "skill_id", err: errors.New(`ent: missing required field "UserSkill.skill_id"`)}
	}
	if v, ok := _c.mutation.SkillID(); ok {
		if err := userskill.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "UserSkill.skill_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Mastery(); !ok {
		return &ValidationError{Name: "mastery", err: errors.New(`ent: missing required field "UserSkill.mastery"`)}
	}
	if v, ok := _c.mutation.Mastery(); ok {
		if err := userskill.MasteryValidator(v); err != nil {
			return &ValidationError{Name: "mastery", err: fmt.Errorf(`ent: validator failed for field "UserSkill.mastery": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "UserSkill.status"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "UserSkill.updated_at"`)}
	}
	return nil
}

func (_c *UserSkillCreate) sqlSave(ctx context.Context) (*UserSkill, error) {
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

func (_c *UserSkillCreate) createSpec() (*UserSkill, *sqlgraph.CreateSpec) {
	var (
		_node = &UserSkill{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(userskill.Table, sqlgraph.NewFieldSpec(userskill.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(userskill.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SkillID(); ok {
		_spec.SetField(userskill.FieldSkillID, field.TypeString, value)
		_node.SkillID = value
	}
	if value, ok := _c.mutation.Mastery(); ok {
		_spec.SetField(userskill.FieldMastery, field.TypeFloat64, value)
		_node.Mastery = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(userskill.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(userskill.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UserSkill.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserSkillUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *UserSkillCreate) OnConflict(opts ...sql.ConflictOption) *UserSkillUpsertOne {
	_c.conflict = opts
	return &UserSkillUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UserSkill.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UserSkillCreate) OnConflictColumns(columns ...string) *UserSkillUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UserSkillUpsertOne{
		create: _c,
	}
}

type (
	// UserSkillUpsertOne is the builder for "upsert"-ing
	//  one UserSkill node.
	UserSkillUpsertOne struct {
		create *UserSkillCreate
	}

	// UserSkillUpsert is the "OnConflict" setter.
	UserSkillUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *UserSkillUpsert) SetUserID(v string) *UserSkillUpsert {
	u.Set(userskill.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *UserSkillUpsert) UpdateUserID() *UserSkillUpsert {
	u.SetExcluded(userskill.FieldUserID)
	return u
}

// SetSkillID sets the "skill_id" field.
func (u *UserSkillUpsert) SetSkillID(v string) *UserSkillUpsert {
	u.Set(userskill.FieldSkillID, v)
	return u
}

// UpdateSkillID sets the "skill_id" field to the value that was provided on create.
func (u *UserSkillUpsert) UpdateSkillID() *UserSkillUpsert {
	u.SetExcluded(userskill.FieldSkillID)
	return u
}

// SetMastery sets the "mastery" field.
func (u *UserSkillUpsert) SetMastery(v float64) *UserSkillUpsert {
	u.Set(userskill.FieldMastery, v)
	return u
}

// UpdateMastery sets the "mastery" field to the value that was provided on create.
func (u *UserSkillUpsert) UpdateMastery() *UserSkillUpsert {
	u.SetExcluded(userskill.FieldMastery)
	return u
}

// AddMastery adds v to the "mastery" field.
func (u *UserSkillUpsert) AddMastery(v float64) *UserSkillUpsert {
	u.Add(userskill.FieldMastery, v)
	return u
}

// SetStatus sets the "status" field.
func (u *UserSkillUpsert) SetStatus(v string) *UserSkillUpsert {
	u.Set(userskill.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *UserSkillUpsert) UpdateStatus() *UserSkillUpsert {
	u.SetExcluded(userskill.FieldStatus)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UserSkillUpsert) SetUpdatedAt(v time.Time) *UserSkillUpsert {
	u.Set(userskill.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UserSkillUpsert) UpdateUpdatedAt() *UserSkillUpsert {
	u.SetExcluded(userskill.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.UserSkill.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *UserSkillUpsertOne) UpdateNewValues() *UserSkillUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UserSkill.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *UserSkillUpsertOne) Ignore() *UserSkillUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserSkillUpsertOne) DoNothing() *UserSkillUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserSkillCreate.OnConflict
// documentation for more info.
func (u *UserSkillUpsertOne) Update(set func(*UserSkillUpsert)) *UserSkillUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserSkillUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *UserSkillUpsertOne) SetUserID(v string) *UserSkillUpsertOne {
	return u.Update(func(s *UserSkillUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *UserSkillUpsertOne) UpdateUserID() *UserSkillUpsertOne {
	return u.Update(func(s *UserSkillUpsert) {
		s.UpdateUserID()
	})
}

// SetSkillID sets the "skill_id" field.
func (u *UserSkillUpsertOne) SetSkillID(v string) *UserSkillUpsertOne {
	return u.Update(func(s *UserSkillUpsert) {
		s.SetSkillID(v)
	})
}

// UpdateSkillID sets the "skill_id" field to the value that was provided on create.
func (u *UserSkillUpsertOne) UpdateSkillID() *UserSkillUpsertOne {
	return u.Update(func(s *UserSkillUpsert) {
		s.UpdateSkillID()
	})
}

// SetMastery sets the "mastery" field.
func (u *UserSkillUpsertOne) SetMastery(v float64) *UserSkillUpsertOne {
	return u.Update(func(s *UserSkillUpsert) {
		s.SetMastery(v)
	})
}

// AddMastery adds v to the "mastery" field.
func (u *UserSkillUpsertOne) AddMastery(v float64) *UserSkillUpsertOne {
	return u.Update(func(s *UserSkillUpsert) {
		s.AddMastery(v)
	})
}

// UpdateMastery sets the "mastery" field to the value that was provided on create.
func (u *UserSkillUpsertOne) UpdateMastery() *UserSkillUpsertOne {
	return u.Update(func(s *UserSkillUpsert) {
		s.UpdateMastery()
	})
}

// SetStatus sets the "status" field.
func (u *UserSkillUpsertOne) SetStatus(v string) *UserSkillUpsertOne {
	return u.Update(func(s *UserSkillUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *UserSkillUpsertOne) UpdateStatus() *UserSkillUpsertOne {
	return u.Update(func(s *UserSkillUpsert) {
		s.UpdateStatus()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UserSkillUpsertOne) SetUpdatedAt(v time.Time) *UserSkillUpsertOne {
	return u.Update(func(s *UserSkillUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UserSkillUpsertOne) UpdateUpdatedAt() *UserSkillUpsertOne {
	return u.Update(func(s *UserSkillUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *UserSkillUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UserSkillCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserSkillUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *UserSkillUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *UserSkillUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// UserSkillCreateBulk is the builder for creating many UserSkill entities in bulk.
type UserSkillCreateBulk struct {
	config
	err      error
	builders []*UserSkillCreate
	conflict []sql.ConflictOption
}

// Save creates the UserSkill entities in the database.
func (_c *UserSkillCreateBulk) Save(ctx context.Context) ([]*UserSkill, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UserSkill, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserSkillMutation)
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
func (_c *UserSkillCreateBulk) SaveX(ctx context.Context) []*UserSkill {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserSkillCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserSkillCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UserSkill.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserSkillUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *UserSkillCreateBulk) OnConflict(opts ...sql.ConflictOption) *UserSkillUpsertBulk {
	_c.conflict = opts
	return &UserSkillUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UserSkill.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UserSkillCreateBulk) OnConflictColumns(columns ...string) *UserSkillUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UserSkillUpsertBulk{
		create: _c,
	}
}

// UserSkillUpsertBulk is the builder for "upsert"-ing
// a bulk of UserSkill nodes.
type UserSkillUpsertBulk struct {
	create *UserSkillCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.UserSkill.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *UserSkillUpsertBulk) UpdateNewValues() *UserSkillUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UserSkill.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *UserSkillUpsertBulk) Ignore() *UserSkillUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserSkillUpsertBulk) DoNothing() *UserSkillUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserSkillCreateBulk.OnConflict
// documentation for more info.
func (u *UserSkillUpsertBulk) Update(set func(*UserSkillUpsert)) *UserSkillUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserSkillUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *UserSkillUpsertBulk) SetUserID(v string) *UserSkillUpsertBulk {
	return u.Update(func(s *UserSkillUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *UserSkillUpsertBulk) UpdateUserID() *UserSkillUpsertBulk {
	return u.Update(func(s *UserSkillUpsert) {
		s.UpdateUserID()
	})
}

// SetSkillID sets the "skill_id" field.
func (u *UserSkillUpsertBulk) SetSkillID(v string) *UserSkillUpsertBulk {
	return u.Update(func(s *UserSkillUpsert) {
		s.SetSkillID(v)
	})
}

// UpdateSkillID sets the "skill_id" field to the value that was provided on create.
func (u *UserSkillUpsertBulk) UpdateSkillID() *UserSkillUpsertBulk {
	return u.Update(func(s *UserSkillUpsert) {
		s.UpdateSkillID()
	})
}

// SetMastery sets the "mastery" field.
func (u *UserSkillUpsertBulk) SetMastery(v float64) *UserSkillUpsertBulk {
	return u.Update(func(s *UserSkillUpsert) {
		s.SetMastery(v)
	})
}

// AddMastery adds v to the "mastery" field.
func (u *UserSkillUpsertBulk) AddMastery(v float64) *UserSkillUpsertBulk {
	return u.Update(func(s *UserSkillUpsert) {
		s.AddMastery(v)
	})
}

// UpdateMastery sets the "mastery" field to the value that was provided on create.
func (u *UserSkillUpsertBulk) UpdateMastery() *UserSkillUpsertBulk {
	return u.Update(func(s *UserSkillUpsert) {
		s.UpdateMastery()
	})
}

// SetStatus sets the "status" field.
func (u *UserSkillUpsertBulk) SetStatus(v string) *UserSkillUpsertBulk {
	return u.Update(func(s *UserSkillUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *UserSkillUpsertBulk) UpdateStatus() *UserSkillUpsertBulk {
	return u.Update(func(s *UserSkillUpsert) {
		s.UpdateStatus()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UserSkillUpsertBulk) SetUpdatedAt(v time.Time) *UserSkillUpsertBulk {
	return u.Update(func(s *UserSkillUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UserSkillUpsertBulk) UpdateUpdatedAt() *UserSkillUpsertBulk {
	return u.Update(func(s *UserSkillUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *UserSkillUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the UserSkillCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UserSkillCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserSkillUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
