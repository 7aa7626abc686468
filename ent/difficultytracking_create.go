// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cogniplay/ent/difficultytracking"
)

// DifficultyTrackingCreate is the builder for creating a DifficultyTracking entity.
type DifficultyTrackingCreate struct {
	config
	mutation *DifficultyTrackingMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *DifficultyTrackingCreate) SetUserID(v string) *DifficultyTrackingCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *DifficultyTrackingCreate) SetLevel(v int) *DifficultyTrackingCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_c *DifficultyTrackingCreate) SetNillableLevel(v *int) *DifficultyTrackingCreate {
	if v != nil {
		_c.SetLevel(*v)
	}
	return _c
}

// SetConsecutiveSuccesses sets the "consecutive_successes" field.
func (_c *DifficultyTrackingCreate) SetConsecutiveSuccesses(v int) *DifficultyTrackingCreate {
	_c.mutation.SetConsecutiveSuccesses(v)
	return _c
}

// SetNillableConsecutiveSuccesses sets the "consecutive_successes" field if the given value is not nil.
func (_c *DifficultyTrackingCreate) SetNillableConsecutiveSuccesses(v *int) *DifficultyTrackingCreate {
	if v != nil {
		_c.SetConsecutiveSuccesses(*v)
	}
	return _c
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (_c *DifficultyTrackingCreate) SetConsecutiveFailures(v int) *DifficultyTrackingCreate {
	_c.mutation.SetConsecutiveFailures(v)
	return _c
}

// SetNillableConsecutiveFailures sets the "consecutive_failures" field if the given value is not nil.
func (_c *DifficultyTrackingCreate) SetNillableConsecutiveFailures(v *int) *DifficultyTrackingCreate {
	if v != nil {
		_c.SetConsecutiveFailures(*v)
	}
	return _c
}

// SetLastOutcome sets the "last_outcome" field.
func (_c *DifficultyTrackingCreate) SetLastOutcome(v string) *DifficultyTrackingCreate {
	_c.mutation.SetLastOutcome(v)
	return _c
}

// SetNillableLastOutcome sets the "last_outcome" field if the given value is not nil.
func (_c *DifficultyTrackingCreate) SetNillableLastOutcome(v *string) *DifficultyTrackingCreate {
	if v != nil {
		_c.SetLastOutcome(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DifficultyTrackingCreate) SetUpdatedAt(v time.Time) *DifficultyTrackingCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DifficultyTrackingCreate) SetNillableUpdatedAt(v *time.Time) *DifficultyTrackingCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the DifficultyTrackingMutation object of the builder.
func (_c *DifficultyTrackingCreate) Mutation() *DifficultyTrackingMutation {
	return _c.mutation
}

// Save creates the DifficultyTracking in the database.
func (_c *DifficultyTrackingCreate) Save(ctx context.Context) (*DifficultyTracking, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DifficultyTrackingCreate) SaveX(ctx context.Context) *DifficultyTracking {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DifficultyTrackingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DifficultyTrackingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DifficultyTrackingCreate) defaults() {
	if _, ok := _c.mutation.Level(); !ok {
		v := difficultytracking.DefaultLevel
		_c.mutation.SetLevel(v)
	}
	if _, ok := _c.mutation.ConsecutiveSuccesses(); !ok {
		v := difficultytracking.DefaultConsecutiveSuccesses
		_c.mutation.SetConsecutiveSuccesses(v)
	}
	if _, ok := _c.mutation.ConsecutiveFailures(); !ok {
		v := difficultytracking.DefaultConsecutiveFailures
		_c.mutation.SetConsecutiveFailures(v)
	}
	if _, ok := _c.mutation.LastOutcome(); !ok {
		v := difficultytracking.DefaultLastOutcome
		_c.mutation.SetLastOutcome(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := difficultytracking.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DifficultyTrackingCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "DifficultyTracking.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := difficultytracking.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "DifficultyTracking.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "DifficultyTracking.level"`)}
	}
	if _, ok := _c.mutation.ConsecutiveSuccesses(); !ok {
		return &ValidationError{Name: "consecutive_successes", err: errors.New(`ent: missing required field "DifficultyTracking.consecutive_successes"`)}
	}
	if _, ok := _c.mutation.ConsecutiveFailures(); !ok {
		return &ValidationError{Name: "consecutive_failures", err: errors.New(`ent: missing required field "DifficultyTracking.consecutive_failures"`)}
	}
	if _, ok := _c.mutation.LastOutcome(); !ok {
		return &ValidationError{Name: "last_outcome", err: errors.New(`ent: missing required field "DifficultyTracking.last_outcome"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "DifficultyTracking.updated_at"`)}
	}
	return nil
}

func (_c *DifficultyTrackingCreate) sqlSave(ctx context.Context) (*DifficultyTracking, error) {
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

func (_c *DifficultyTrackingCreate) createSpec() (*DifficultyTracking, *sqlgraph.CreateSpec) {
	var (
		_node = &DifficultyTracking{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(difficultytracking.Table, sqlgraph.NewFieldSpec(difficultytracking.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(difficultytracking.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(difficultytracking.FieldLevel, field.TypeInt, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.ConsecutiveSuccesses(); ok {
		_spec.SetField(difficultytracking.FieldConsecutiveSuccesses, field.TypeInt, value)
		_node.ConsecutiveSuccesses = value
	}
	if value, ok := _c.mutation.ConsecutiveFailures(); ok {
		_spec.SetField(difficultytracking.FieldConsecutiveFailures, field.TypeInt, value)
		_node.ConsecutiveFailures = value
	}
	if value, ok := _c.mutation.LastOutcome(); ok {
		_spec.SetField(difficultytracking.FieldLastOutcome, field.TypeString, value)
		_node.LastOutcome = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(difficultytracking.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// DifficultyTrackingCreateBulk is the builder for creating many DifficultyTracking entities in bulk.
type DifficultyTrackingCreateBulk struct {
	config
	err      error
	builders []*DifficultyTrackingCreate
}

// Save creates the DifficultyTracking entities in the database.
func (_c *DifficultyTrackingCreateBulk) Save(ctx context.Context) ([]*DifficultyTracking, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DifficultyTracking, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DifficultyTrackingMutation)
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
func (_c *DifficultyTrackingCreateBulk) SaveX(ctx context.Context) []*DifficultyTracking {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DifficultyTrackingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DifficultyTrackingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
